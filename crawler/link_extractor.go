package crawler

import (
	"bytes"
	"context"
	"io"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"golang.org/x/net/html"
	"golang.org/x/xerrors"
)

var _ pipeline.Processor = (*linkExtractor)(nil)

type linkExtractor struct{}

func newLinkExtractor() *linkExtractor {
	return &linkExtractor{}
}

// Process collects the href attribute of every anchor element in the page.
// Link targets are kept verbatim; resolving them against the corpus is left to
// the graph builder.
func (le *linkExtractor) Process(_ context.Context, p pipeline.Payload) (pipeline.Payload, error) {
	payload := p.(*crawlerPayload)

	z := html.NewTokenizer(bytes.NewReader(payload.RawContent.Bytes()))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, xerrors.Errorf("extract links from %q: %w", payload.Page, err)
			}
			return payload, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			if href, ok := anchorHref(z); ok {
				payload.Links = append(payload.Links, href)
			}
		}
	}
}

// anchorHref returns the href attribute of the current token if it is an
// anchor element.
func anchorHref(z *html.Tokenizer) (string, bool) {
	name, hasAttr := z.TagName()
	if string(name) != "a" || !hasAttr {
		return "", false
	}
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}
