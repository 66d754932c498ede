package crawler

import (
	"bytes"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
)

var (
	_ pipeline.Payload = (*crawlerPayload)(nil)

	// payloads are recycled to take pressure off the GC while many pages
	// are in flight.
	payloadPool = sync.Pool{
		New: func() any { return new(crawlerPayload) },
	}
)

type crawlerPayload struct {
	Page string

	RawContent bytes.Buffer

	Links []string
}

func (p *crawlerPayload) Clone() pipeline.Payload {
	newp := payloadPool.Get().(*crawlerPayload)
	newp.Page = p.Page
	newp.Links = append(newp.Links[:0], p.Links...)
	newp.RawContent.Reset()
	_, _ = newp.RawContent.Write(p.RawContent.Bytes())
	return newp
}

// MarkAsProcessed resets the payload and returns it to the pool. Slice and
// buffer capacities are kept so that recycled payloads reuse their memory.
func (p *crawlerPayload) MarkAsProcessed() {
	p.Page = p.Page[:0]
	p.RawContent.Reset()
	p.Links = p.Links[:0]
	payloadPool.Put(p)
}
