package runners

import (
	"context"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
)

type fixedWorkerPool struct {
	runners []pipeline.StageRunner
}

// FixedWorkerPool returns a StageRunner that starts a pool of numWorkers FIFO
// runners sharing the stage input.
func FixedWorkerPool(proc pipeline.Processor, numWorkers int) pipeline.StageRunner {
	if numWorkers <= 0 {
		panic("FixedWorkerPool: number of workers should be greater than 0")
	}
	runners := make([]pipeline.StageRunner, numWorkers)
	for i := range runners {
		runners[i] = FIFO(proc)
	}

	return &fixedWorkerPool{runners: runners}
}

func (p *fixedWorkerPool) Run(ctx context.Context, params pipeline.StageParams) {
	var wg sync.WaitGroup
	wg.Add(len(p.runners))
	for i := range p.runners {
		go func(runnerIndex int) {
			defer wg.Done()
			p.runners[runnerIndex].Run(ctx, params)
		}(i)
	}
	wg.Wait()
}
