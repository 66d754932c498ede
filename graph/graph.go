/*
Models the corpus of pages and the links between them
*/
package graph

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

var (
	// ErrEmptyCorpus is returned when a corpus is built without any pages.
	ErrEmptyCorpus = xerrors.New("corpus contains no pages")

	// ErrInvalidPage is returned when looking up a page that is not part
	// of the corpus.
	ErrInvalidPage = xerrors.New("page is not part of the corpus")

	// ErrUnknownLinkTarget is returned when a link points to a page that
	// is not part of the corpus.
	ErrUnknownLinkTarget = xerrors.New("link target is not part of the corpus")
)

// Corpus is an immutable set of pages together with the outbound links of
// each page. Every link target is itself a page of the corpus.
// A Corpus is never modified after construction so it can be shared between
// goroutines without locking.
type Corpus struct {
	// pages are kept sorted; this is the key order used by every
	// consumer that needs to be deterministic.
	pages []string
	index map[string]int
	links map[string][]string
	// out[i] holds the sorted positions of the pages linked from pages[i].
	out [][]int
}

// NewCorpus creates a corpus from a map of page to outbound links. Duplicate
// links collapse into one.
func NewCorpus(links map[string][]string) (*Corpus, error) {
	if len(links) == 0 {
		return nil, xerrors.Errorf("new corpus: %w", ErrEmptyCorpus)
	}

	c := &Corpus{
		pages: make([]string, 0, len(links)),
		index: make(map[string]int, len(links)),
		links: make(map[string][]string, len(links)),
		out:   make([][]int, len(links)),
	}
	for page := range links {
		c.pages = append(c.pages, page)
	}
	sort.Strings(c.pages)
	for i, page := range c.pages {
		c.index[page] = i
	}

	var err error
	for _, src := range c.pages {
		seen := make(map[string]struct{}, len(links[src]))
		dsts := make([]string, 0, len(links[src]))
		for _, dst := range links[src] {
			if _, ok := c.index[dst]; !ok {
				err = multierror.Append(err, xerrors.Errorf("link %q -> %q: %w", src, dst, ErrUnknownLinkTarget))
				continue
			}
			if _, dup := seen[dst]; dup {
				continue
			}
			seen[dst] = struct{}{}
			dsts = append(dsts, dst)
		}
		sort.Strings(dsts)
		c.links[src] = dsts

		out := make([]int, len(dsts))
		for j, dst := range dsts {
			out[j] = c.index[dst]
		}
		c.out[c.index[src]] = out
	}
	if err != nil {
		return nil, xerrors.Errorf("new corpus: %w", err)
	}

	return c, nil
}

// Len returns the number of pages in the corpus.
func (c *Corpus) Len() int { return len(c.pages) }

// Pages returns a sorted copy of the corpus pages.
func (c *Corpus) Pages() []string {
	return append([]string(nil), c.pages...)
}

// Has reports whether page belongs to the corpus.
func (c *Corpus) Has(page string) bool {
	_, ok := c.index[page]
	return ok
}

// Index returns the position of page in the sorted page order.
func (c *Corpus) Index(page string) (int, error) {
	i, ok := c.index[page]
	if !ok {
		return -1, xerrors.Errorf("page %q: %w", page, ErrInvalidPage)
	}
	return i, nil
}

// OutLinks returns a copy of the sorted positions, as given by Index, of the
// pages linked from the page at position i. It panics if i is out of range.
func (c *Corpus) OutLinks(i int) []int {
	return append([]int(nil), c.out[i]...)
}

// Links returns a sorted copy of the outbound links of page.
func (c *Corpus) Links(page string) ([]string, error) {
	if !c.Has(page) {
		return nil, xerrors.Errorf("page %q: %w", page, ErrInvalidPage)
	}
	return append([]string(nil), c.links[page]...), nil
}

// OutDegree returns the number of distinct pages that page links to.
func (c *Corpus) OutDegree(page string) (int, error) {
	if !c.Has(page) {
		return 0, xerrors.Errorf("page %q: %w", page, ErrInvalidPage)
	}
	return len(c.links[page]), nil
}

// IsDangling reports whether page has no outbound links.
func (c *Corpus) IsDangling(page string) (bool, error) {
	n, err := c.OutDegree(page)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// LinksTo reports whether src has an outbound link to dst.
func (c *Corpus) LinksTo(src, dst string) bool {
	dsts := c.links[src]
	i := sort.SearchStrings(dsts, dst)
	return i < len(dsts) && dsts[i] == dst
}
