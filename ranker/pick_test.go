package ranker

import gc "gopkg.in/check.v1"

var _ = gc.Suite(new(PickTestSuite))

type PickTestSuite struct{}

func (s *PickTestSuite) TestPick(c *gc.C) {
	specs := []struct {
		descr string
		cdf   []float64
		draw  float64
		exp   int
	}{
		{descr: "single segment", cdf: []float64{1}, draw: 0.3, exp: 0},
		{descr: "inside first segment", cdf: []float64{0.2, 0.5, 1}, draw: 0.1, exp: 0},
		{descr: "on a boundary", cdf: []float64{0.2, 0.5, 1}, draw: 0.2, exp: 1},
		{descr: "skips leading zero width", cdf: []float64{0, 0, 1}, draw: 0, exp: 2},
		{descr: "skips inner zero width", cdf: []float64{0, 0.5, 0.5, 1}, draw: 0.5, exp: 3},
		{descr: "draw past the total", cdf: []float64{0.2, 0.5, 0.5}, draw: 0.6, exp: 1},
		{descr: "draw past a rounded total", cdf: []float64{0.5, 0.9999999999999999, 0.9999999999999999}, draw: 1, exp: 1},
	}

	for _, spec := range specs {
		c.Assert(pick(spec.cdf, spec.draw), gc.Equals, spec.exp, gc.Commentf("%s", spec.descr))
	}
}

func (s *PickTestSuite) TestCumulative(c *gc.C) {
	c.Assert(cumulative([]float64{0.25, 0, 0.25, 0.5}), gc.DeepEquals, []float64{0.25, 0.25, 0.5, 1})
}
