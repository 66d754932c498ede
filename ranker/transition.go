package ranker

import (
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// Transition returns the probability distribution over the page the random
// surfer visits next when currently on page.
//
// With probability dampingFactor the surfer follows one of the outbound links
// of page, chosen uniformly. Otherwise it jumps to any page of the corpus.
// A dangling page behaves as if it linked to every page, itself included.
func Transition(corpus *graph.Corpus, page string, dampingFactor float64) (Distribution, error) {
	if err := checkInputs(corpus, dampingFactor); err != nil {
		return nil, xerrors.Errorf("transition: %w", err)
	}
	idx, err := corpus.Index(page)
	if err != nil {
		return nil, xerrors.Errorf("transition: %w", err)
	}

	m := newTransitionMatrix(corpus)
	return fromRow(m.pages, m.row(idx, dampingFactor)), nil
}

// transitionMatrix holds the corpus in index form so rows can be computed
// without string lookups.
type transitionMatrix struct {
	pages []string
	// out[i] holds the indices of the pages linked from page i.
	out [][]int
}

func newTransitionMatrix(corpus *graph.Corpus) *transitionMatrix {
	pages := corpus.Pages()
	m := &transitionMatrix{
		pages: pages,
		out:   make([][]int, len(pages)),
	}
	for i := range pages {
		m.out[i] = corpus.OutLinks(i)
	}
	return m
}

// row computes the transition probabilities out of page i in sorted page
// order.
func (m *transitionMatrix) row(i int, d float64) []float64 {
	n := len(m.pages)
	base := (1 - d) / float64(n)

	row := make([]float64, n)
	for j := range row {
		row[j] = base
	}

	links := m.out[i]
	if len(links) == 0 {
		share := d / float64(n)
		for j := range row {
			row[j] += share
		}
		return row
	}

	share := d / float64(len(links))
	for _, j := range links {
		row[j] += share
	}
	return row
}

func checkInputs(corpus *graph.Corpus, dampingFactor float64) error {
	if corpus == nil || corpus.Len() == 0 {
		return graph.ErrEmptyCorpus
	}
	// Written this way so NaN is rejected too.
	if !(dampingFactor >= 0 && dampingFactor <= 1) {
		return xerrors.Errorf("%v: %w", dampingFactor, ErrInvalidDampingFactor)
	}
	return nil
}
