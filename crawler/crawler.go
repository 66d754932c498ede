/*
   Builds a corpus from a directory of HTML pages
*/

package crawler

import (
	"context"
	"io"
	"io/fs"
	"path"
	"runtime"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"github.com/Ahmed-Sermani/go-pagerank/pipeline/runners"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Crawler implements a corpus building pipeline consisting of the following
// stages:
//
// - Given a page name, read the page contents from the file system.
// - Extract the targets of the anchor links within the page.
// - Record the page and its links in a graph.Builder.
//
// Only files with an .html extension at the root of the file system are
// pages. Links to files outside the corpus and self-links are dropped.
type Crawler struct {
	cfg      Config
	pipeline *pipeline.Pipeline
}

// Config encapsulates the settings for creating a new Crawler.
type Config struct {
	// FS holds the pages of the corpus.
	FS fs.FS

	// The number of workers used for reading and parsing pages. If not
	// specified, the number of CPUs will be used instead.
	Workers int

	// Logger for crawl details. Defaults to a logger that discards output.
	Logger *logrus.Entry
}

func (c *Config) validate() error {
	if c.FS == nil {
		return xerrors.New("crawler: FS must be specified")
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = logrus.NewEntry(l)
	}
	return nil
}

// NewCrawler returns a Crawler for the pages held by cfg.FS.
func NewCrawler(cfg Config) (*Crawler, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Crawler{
		cfg:      cfg,
		pipeline: assembleCrawlerPipeline(cfg),
	}, nil
}

func assembleCrawlerPipeline(cfg Config) *pipeline.Pipeline {
	return pipeline.New(
		runners.FixedWorkerPool(newPageReader(cfg.FS), cfg.Workers),
		runners.FixedWorkerPool(newLinkExtractor(), cfg.Workers),
	)
}

// Crawl reads every page and returns the resulting corpus. Calls to Crawl
// block until all pages are processed, an error occurs or the context is
// cancelled.
func (c *Crawler) Crawl(ctx context.Context) (*graph.Corpus, error) {
	pages, err := listPages(c.cfg.FS)
	if err != nil {
		return nil, xerrors.Errorf("crawl: %w", err)
	}
	c.cfg.Logger.WithField("pages", len(pages)).Debug("crawling corpus")

	builder := graph.NewBuilder()
	source := &pageSource{pages: pages}
	sink := &builderSink{builder: builder}
	if err := c.pipeline.Process(ctx, source, sink); err != nil {
		return nil, xerrors.Errorf("crawl: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, xerrors.Errorf("crawl: %w", err)
	}

	corpus, err := builder.Build()
	if err != nil {
		return nil, xerrors.Errorf("crawl: %w", err)
	}
	c.cfg.Logger.WithFields(logrus.Fields{
		"pages": corpus.Len(),
		"links": sink.linkCount(),
	}).Info("corpus crawled")
	return corpus, nil
}

// listPages returns the names of the .html files at the root of fsys.
func listPages(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var pages []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".html" {
			continue
		}
		pages = append(pages, e.Name())
	}
	return pages, nil
}
