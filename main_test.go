package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(MainTestSuite))

func Test(t *testing.T) {
	gc.TestingT(t)
}

type MainTestSuite struct{}

func (s *MainTestSuite) TestPrintRanks(c *gc.C) {
	var buf bytes.Buffer
	printRanks(&buf, "PageRank Results from Iteration", ranker.Distribution{
		"2.html": 0.25,
		"1.html": 0.123456,
		"3.html": 0.626544,
	})

	c.Assert(buf.String(), gc.Equals, "PageRank Results from Iteration\n"+
		"  1.html: 0.1235\n"+
		"  2.html: 0.2500\n"+
		"  3.html: 0.6265\n")
}

func (s *MainTestSuite) TestSetupConfigDefaults(c *gc.C) {
	var out bytes.Buffer
	crawlerCfg, rankerCfg, level, err := setupConfig([]string{c.MkDir()}, &out)
	c.Assert(err, gc.IsNil)

	c.Assert(*rankerCfg.DampingFactor, gc.Equals, ranker.DefaultDampingFactor)
	c.Assert(rankerCfg.Samples, gc.Equals, ranker.DefaultSamples)
	c.Assert(rankerCfg.Tolerance, gc.Equals, ranker.DefaultTolerance)
	c.Assert(rankerCfg.MaxSweeps, gc.Equals, ranker.DefaultMaxSweeps)
	c.Assert(rankerCfg.Seed, gc.Not(gc.Equals), int64(0))
	c.Assert(crawlerCfg.FS, gc.NotNil)
	c.Assert(crawlerCfg.Workers > 0, gc.Equals, true)
	c.Assert(level, gc.Equals, logrus.InfoLevel)
}

func (s *MainTestSuite) TestSetupConfigExplicitZeroDampingFactor(c *gc.C) {
	var out bytes.Buffer
	_, rankerCfg, level, err := setupConfig([]string{
		"-damping-factor", "0",
		"-samples", "50",
		"-seed", "7",
		"-log-level", "debug",
		c.MkDir(),
	}, &out)
	c.Assert(err, gc.IsNil)

	c.Assert(rankerCfg.DampingFactor, gc.NotNil)
	c.Assert(*rankerCfg.DampingFactor, gc.Equals, 0.0)
	c.Assert(rankerCfg.Samples, gc.Equals, 50)
	c.Assert(rankerCfg.Seed, gc.Equals, int64(7))
	c.Assert(level, gc.Equals, logrus.DebugLevel)

	r, err := ranker.NewRanker(rankerCfg)
	c.Assert(err, gc.IsNil)
	c.Assert(*r.Config().DampingFactor, gc.Equals, 0.0)
}

func (s *MainTestSuite) TestSetupConfigErrors(c *gc.C) {
	var out bytes.Buffer
	_, _, _, err := setupConfig(nil, &out)
	c.Assert(err, gc.ErrorMatches, "exactly one corpus directory must be specified")
	c.Assert(out.String(), gc.Matches, "(?s)Usage: PageRank \\[flags\\] CORPUS_DIR.*")

	_, _, _, err = setupConfig([]string{"-log-level", "loud", c.MkDir()}, &out)
	c.Assert(err, gc.ErrorMatches, "could not parse log level: .*")

	_, _, _, err = setupConfig([]string{"-samples", "many", c.MkDir()}, &out)
	c.Assert(err, gc.NotNil)
}

func (s *MainTestSuite) TestRun(c *gc.C) {
	dir := c.MkDir()
	writePage(c, dir, "1.html", `<a href="2.html">2</a>`)
	writePage(c, dir, "2.html", `<a href="1.html">1</a>`)

	logger, _ := test.NewNullLogger()
	var out bytes.Buffer
	err := run([]string{"-samples", "1000", "-seed", "3", dir}, &out, logger, logrus.NewEntry(logger))
	c.Assert(err, gc.IsNil)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	c.Assert(lines, gc.HasLen, 6)
	c.Assert(lines[0], gc.Equals, "PageRank Results from Sampling (n = 1000)")
	c.Assert(lines[1], gc.Matches, `  1\.html: 0\.\d{4}`)
	c.Assert(lines[3], gc.Equals, "PageRank Results from Iteration")
	c.Assert(lines[4], gc.Equals, "  1.html: 0.5000")
	c.Assert(lines[5], gc.Equals, "  2.html: 0.5000")
}

func (s *MainTestSuite) TestRunEmptyCorpus(c *gc.C) {
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer
	err := run([]string{c.MkDir()}, &out, logger, logrus.NewEntry(logger))
	c.Assert(xerrors.Is(err, graph.ErrEmptyCorpus), gc.Equals, true)
}

func writePage(c *gc.C, dir, name, body string) {
	err := os.WriteFile(filepath.Join(dir, name), []byte("<html><body>"+body+"</body></html>"), 0o644)
	c.Assert(err, gc.IsNil)
}
