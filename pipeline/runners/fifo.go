package runners

import (
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
)

type fifo struct {
	proc pipeline.Processor
}

// FIFO returns a StageRunner that hands the stage input to proc one payload
// at a time, in arrival order, and forwards whatever proc returns.
func FIFO(proc pipeline.Processor) pipeline.StageRunner {
	return fifo{proc: proc}
}

func (r fifo) Run(ctx context.Context, params pipeline.StageParams) {
	for {
		var (
			in   pipeline.Payload
			open bool
		)
		select {
		case <-ctx.Done():
			return
		case in, open = <-params.Input():
		}
		if !open {
			return
		}

		out := process(ctx, r.proc, in, params)
		if out == nil {
			continue
		}
		if !forward(ctx, out, params.Output()) {
			return
		}
	}
}
