package graph

import "sync"

// Builder accumulates pages and links discovered by a crawler and turns them
// into a Corpus. It is safe for concurrent use.
type Builder struct {
	mu    sync.Mutex
	links map[string]map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		links: make(map[string]map[string]struct{}),
	}
}

// AddPage registers page as part of the corpus. Adding a page twice keeps the
// links recorded so far.
func (b *Builder) AddPage(page string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.addPage(page)
}

// AddLinks registers page and records its outbound links. Targets do not
// have to be known yet; they are resolved when Build is called.
func (b *Builder) AddLinks(page string, dsts ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set := b.addPage(page)
	for _, dst := range dsts {
		set[dst] = struct{}{}
	}
}

func (b *Builder) addPage(page string) map[string]struct{} {
	set := b.links[page]
	if set == nil {
		set = make(map[string]struct{})
		b.links[page] = set
	}
	return set
}

// Build returns a Corpus with every registered page. Self-links and links to
// pages that were never registered are dropped.
func (b *Builder) Build() (*Corpus, error) {
	b.mu.Lock()
	links := make(map[string][]string, len(b.links))
	for src, dsts := range b.links {
		list := make([]string, 0, len(dsts))
		for dst := range dsts {
			if dst == src {
				continue
			}
			if _, known := b.links[dst]; !known {
				continue
			}
			list = append(list, dst)
		}
		links[src] = list
	}
	b.mu.Unlock()

	return NewCorpus(links)
}
