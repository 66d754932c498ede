package ranker

import (
	"math"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

const (
	// DefaultTolerance is the largest per-page change in a sweep that is
	// still treated as converged.
	DefaultTolerance = 0.001

	// DefaultMaxSweeps bounds the number of sweeps of the iterative
	// estimator.
	DefaultMaxSweeps = 1000
)

// IterateOptions tunes the stop condition of Iterate. Zero values select the
// defaults.
type IterateOptions struct {
	Tolerance float64
	MaxSweeps int
}

func (o IterateOptions) withDefaults() IterateOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxSweeps <= 0 {
		o.MaxSweeps = DefaultMaxSweeps
	}
	return o
}

// Iterate computes PageRank by applying the PageRank recurrence to every page
// until no value changes by more than the tolerance in a full sweep. It
// returns the scores and the number of sweeps performed.
//
// Each sweep reads only the scores of the previous sweep, so the outcome does
// not depend on page order and the scores keep summing to 1. If the scores
// have not settled after MaxSweeps sweeps, Iterate fails with
// ErrNotConverged.
func Iterate(corpus *graph.Corpus, dampingFactor float64, opts IterateOptions) (Distribution, int, error) {
	if err := checkInputs(corpus, dampingFactor); err != nil {
		return nil, 0, xerrors.Errorf("iterate: %w", err)
	}
	opts = opts.withDefaults()

	var (
		m        = newTransitionMatrix(corpus)
		numPages = float64(len(m.pages))
		base     = (1 - dampingFactor) / numPages
		cur      = make([]float64, len(m.pages))
		next     = make([]float64, len(m.pages))
	)
	for i := range cur {
		cur[i] = 1 / numPages
	}

	for sweep := 1; sweep <= opts.MaxSweeps; sweep++ {
		// A dangling page links to every page, so its mass is shared
		// by all of them.
		var dangling float64
		for i, links := range m.out {
			if len(links) == 0 {
				dangling += cur[i] / numPages
			}
		}
		for i := range next {
			next[i] = base + dampingFactor*dangling
		}
		for i, links := range m.out {
			if len(links) == 0 {
				continue
			}
			share := dampingFactor * cur[i] / float64(len(links))
			for _, j := range links {
				next[j] += share
			}
		}

		var maxDelta float64
		for i := range next {
			maxDelta = math.Max(maxDelta, math.Abs(next[i]-cur[i]))
		}
		cur, next = next, cur

		if maxDelta < opts.Tolerance {
			return fromRow(m.pages, cur), sweep, nil
		}
	}

	return nil, opts.MaxSweeps, xerrors.Errorf("iterate: no convergence after %d sweeps: %w", opts.MaxSweeps, ErrNotConverged)
}
