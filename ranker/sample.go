package ranker

import (
	"sort"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/Ahmed-Sermani/go-pagerank/ranker Random

// Random is the source of randomness used by the sampling estimator.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}

// Sample estimates PageRank by walking n pages of the corpus as a random
// surfer and returning the fraction of the walk spent on each page.
//
// The first page is chosen uniformly. Each following page is drawn from the
// transition distribution of the current one. Every visit, the first one
// included, is credited 1/n so the result sums to 1.
func Sample(corpus *graph.Corpus, dampingFactor float64, n int, rnd Random) (Distribution, error) {
	if err := checkInputs(corpus, dampingFactor); err != nil {
		return nil, xerrors.Errorf("sample: %w", err)
	}
	if n < 1 {
		return nil, xerrors.Errorf("sample: %d: %w", n, ErrInvalidSampleCount)
	}
	if rnd == nil {
		return nil, xerrors.Errorf("sample: %w", ErrNilRandom)
	}

	m := newTransitionMatrix(corpus)
	numPages := len(m.pages)

	// cdfs[i] is built on the first visit of page i.
	cdfs := make([][]float64, numPages)
	cdf := func(i int) []float64 {
		if cdfs[i] == nil {
			cdfs[i] = cumulative(m.row(i, dampingFactor))
		}
		return cdfs[i]
	}

	var (
		visits = make([]int, numPages)
		cur    = rnd.Intn(numPages)
	)
	for sample := 0; ; sample++ {
		visits[cur]++
		if sample == n-1 {
			break
		}
		cur = pick(cdf(cur), rnd.Float64())
	}

	row := make([]float64, numPages)
	for i, v := range visits {
		row[i] = float64(v) / float64(n)
	}
	return fromRow(m.pages, row), nil
}

// cumulative returns the running sum of probs.
func cumulative(probs []float64) []float64 {
	cdf := make([]float64, len(probs))
	var sum float64
	for i, p := range probs {
		sum += p
		cdf[i] = sum
	}
	return cdf
}

// pick returns the index of the segment of cdf that contains draw. Segments
// of zero width are never selected. A draw past the last cumulative value,
// which rounding can cause, selects the last segment with non-zero width.
func pick(cdf []float64, draw float64) int {
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i] > draw })
	if i < len(cdf) {
		return i
	}

	for i = len(cdf) - 1; i > 0; i-- {
		if cdf[i] > cdf[i-1] {
			break
		}
	}
	return i
}
