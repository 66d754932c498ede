package graph_test

import (
	"sync"
	"testing"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(CorpusTestSuite))

func Test(t *testing.T) {
	gc.TestingT(t)
}

type CorpusTestSuite struct{}

func (s *CorpusTestSuite) TestNewCorpus(c *gc.C) {
	corpus, err := graph.NewCorpus(map[string][]string{
		"c.html": nil,
		"a.html": {"c.html", "b.html", "b.html"},
		"b.html": {"a.html"},
	})
	c.Assert(err, gc.IsNil)

	c.Assert(corpus.Len(), gc.Equals, 3)
	c.Assert(corpus.Pages(), gc.DeepEquals, []string{"a.html", "b.html", "c.html"})

	links, err := corpus.Links("a.html")
	c.Assert(err, gc.IsNil)
	c.Assert(links, gc.DeepEquals, []string{"b.html", "c.html"})

	deg, err := corpus.OutDegree("a.html")
	c.Assert(err, gc.IsNil)
	c.Assert(deg, gc.Equals, 2)

	dangling, err := corpus.IsDangling("c.html")
	c.Assert(err, gc.IsNil)
	c.Assert(dangling, gc.Equals, true)

	c.Assert(corpus.LinksTo("b.html", "a.html"), gc.Equals, true)
	c.Assert(corpus.LinksTo("a.html", "a.html"), gc.Equals, false)

	idx, err := corpus.Index("b.html")
	c.Assert(err, gc.IsNil)
	c.Assert(idx, gc.Equals, 1)
}

func (s *CorpusTestSuite) TestPagesReturnsCopy(c *gc.C) {
	corpus, err := graph.NewCorpus(map[string][]string{"a": {"b"}, "b": nil})
	c.Assert(err, gc.IsNil)

	pages := corpus.Pages()
	pages[0] = "mutated"
	c.Assert(corpus.Pages(), gc.DeepEquals, []string{"a", "b"})

	links, err := corpus.Links("a")
	c.Assert(err, gc.IsNil)
	links[0] = "mutated"
	c.Assert(corpus.LinksTo("a", "b"), gc.Equals, true)
}

func (s *CorpusTestSuite) TestEmptyCorpus(c *gc.C) {
	_, err := graph.NewCorpus(nil)
	c.Assert(xerrors.Is(err, graph.ErrEmptyCorpus), gc.Equals, true)
}

func (s *CorpusTestSuite) TestUnknownLinkTarget(c *gc.C) {
	_, err := graph.NewCorpus(map[string][]string{
		"a": {"b", "x"},
		"b": {"y"},
	})
	c.Assert(xerrors.Is(err, graph.ErrUnknownLinkTarget), gc.Equals, true)
	c.Assert(err, gc.ErrorMatches, `(?s)new corpus: .*"a" -> "x".*"b" -> "y".*`)
}

func (s *CorpusTestSuite) TestInvalidPage(c *gc.C) {
	corpus, err := graph.NewCorpus(map[string][]string{"a": nil})
	c.Assert(err, gc.IsNil)

	_, err = corpus.Links("missing")
	c.Assert(xerrors.Is(err, graph.ErrInvalidPage), gc.Equals, true)
	_, err = corpus.OutDegree("missing")
	c.Assert(xerrors.Is(err, graph.ErrInvalidPage), gc.Equals, true)
	_, err = corpus.IsDangling("missing")
	c.Assert(xerrors.Is(err, graph.ErrInvalidPage), gc.Equals, true)
	_, err = corpus.Index("missing")
	c.Assert(xerrors.Is(err, graph.ErrInvalidPage), gc.Equals, true)
	c.Assert(corpus.Has("missing"), gc.Equals, false)
}

var _ = gc.Suite(new(BuilderTestSuite))

type BuilderTestSuite struct{}

func (s *BuilderTestSuite) TestBuildFiltersLinks(c *gc.C) {
	b := graph.NewBuilder()
	b.AddLinks("1.html", "1.html", "2.html", "https://example.com")
	b.AddLinks("2.html", "3.html")
	b.AddPage("3.html")

	corpus, err := b.Build()
	c.Assert(err, gc.IsNil)
	c.Assert(corpus.Pages(), gc.DeepEquals, []string{"1.html", "2.html", "3.html"})

	links, err := corpus.Links("1.html")
	c.Assert(err, gc.IsNil)
	c.Assert(links, gc.DeepEquals, []string{"2.html"})

	dangling, err := corpus.IsDangling("3.html")
	c.Assert(err, gc.IsNil)
	c.Assert(dangling, gc.Equals, true)
}

func (s *BuilderTestSuite) TestAddPageKeepsLinks(c *gc.C) {
	b := graph.NewBuilder()
	b.AddLinks("a", "b")
	b.AddPage("a")
	b.AddPage("b")

	corpus, err := b.Build()
	c.Assert(err, gc.IsNil)
	c.Assert(corpus.LinksTo("a", "b"), gc.Equals, true)
}

func (s *BuilderTestSuite) TestBuildEmpty(c *gc.C) {
	_, err := graph.NewBuilder().Build()
	c.Assert(xerrors.Is(err, graph.ErrEmptyCorpus), gc.Equals, true)
}

func (s *BuilderTestSuite) TestConcurrentAdds(c *gc.C) {
	b := graph.NewBuilder()

	var wg sync.WaitGroup
	numPages := 100
	wg.Add(numPages)
	for i := 0; i < numPages; i++ {
		go func(i int) {
			defer wg.Done()
			b.AddLinks(pageName(i), pageName((i+1)%numPages))
		}(i)
	}
	wg.Wait()

	corpus, err := b.Build()
	c.Assert(err, gc.IsNil)
	c.Assert(corpus.Len(), gc.Equals, numPages)
	for i := 0; i < numPages; i++ {
		c.Assert(corpus.LinksTo(pageName(i), pageName((i+1)%numPages)), gc.Equals, true)
	}
}

func pageName(i int) string {
	return string(rune('A'+i/26)) + string(rune('a'+i%26))
}

func (s *CorpusTestSuite) TestOutLinks(c *gc.C) {
	corpus, err := graph.NewCorpus(map[string][]string{
		"c": {"a"},
		"a": {"c", "b"},
		"b": nil,
	})
	c.Assert(err, gc.IsNil)

	c.Assert(corpus.OutLinks(0), gc.DeepEquals, []int{1, 2})
	c.Assert(corpus.OutLinks(1), gc.HasLen, 0)
	c.Assert(corpus.OutLinks(2), gc.DeepEquals, []int{0})

	out := corpus.OutLinks(0)
	out[0] = 2
	c.Assert(corpus.OutLinks(0), gc.DeepEquals, []int{1, 2})
}
