/*
  Contains built-in StageRunner implementations
*/

package runners

import (
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"golang.org/x/xerrors"
)

// process runs proc on in. Errors are tagged with the stage index and
// reported on the stage error channel. A nil result means the payload went
// no further and has been marked as processed.
func process(ctx context.Context, proc pipeline.Processor, in pipeline.Payload, params pipeline.StageParams) pipeline.Payload {
	out, err := proc.Process(ctx, in)
	if err != nil {
		emitError(xerrors.Errorf("pipeline stage %d: %w", params.StageIndex(), err), params.Error())
	}
	if out == nil {
		in.MarkAsProcessed()
	}
	return out
}

// forward blocks until out is accepted by the next stage. It reports false
// if ctx is cancelled first.
func forward(ctx context.Context, out pipeline.Payload, next chan<- pipeline.Payload) bool {
	select {
	case next <- out:
		return true
	case <-ctx.Done():
		return false
	}
}

func emitError(err error, errCh chan<- error) {
	select {
	case errCh <- err:
	default: // error channel is full.
	}
}
