package crawler

import (
	"context"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
)

type pageSource struct {
	pages  []string
	curIdx int
}

func (ps *pageSource) Error() error { return nil }

func (ps *pageSource) Next(context.Context) bool {
	if ps.curIdx >= len(ps.pages) {
		return false
	}
	ps.curIdx++
	return true
}

func (ps *pageSource) Payload() pipeline.Payload {
	payload := payloadPool.Get().(*crawlerPayload)
	payload.Page = ps.pages[ps.curIdx-1]
	return payload
}

type builderSink struct {
	builder *graph.Builder

	mu    sync.Mutex
	links int
}

func (s *builderSink) Consume(_ context.Context, p pipeline.Payload) error {
	payload := p.(*crawlerPayload)
	s.builder.AddLinks(payload.Page, payload.Links...)

	s.mu.Lock()
	s.links += len(payload.Links)
	s.mu.Unlock()
	return nil
}

func (s *builderSink) linkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.links
}
