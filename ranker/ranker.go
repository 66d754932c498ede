/*
Implements Google's first PageRank algorithm https://en.wikipedia.org/wiki/PageRank
with two independent estimators
*/
package ranker

import (
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

/*
   PageRank works by counting the number and quality of links to
   a page to determine a rough estimate of how important the page is.
   The underlying assumption is that more important pages are likely
   to receive more links from other pages.

   The score of each page follows from the model of the random surfer.
   A surfer lands on a page of the corpus and from then on randomly
   selects one of the following two options:

       Follow any outgoing link from the current page. Surfers choose
       this option with a probability we refer to as the damping factor.

       Teleport to a random page of the corpus.

   A page without outgoing links leaves the surfer no link to follow, so
   the surfer teleports from it to any page, itself included.

   PageRank score values reflect the probability that a surfer lands on a
   particular page:
       Each PageRank score is a value in the [0, 1] range
       The sum of all assigned PageRank scores is equal to 1

   Sample simulates the surfer directly; Iterate solves the same model
   as a fixed point.
*/

// Ranker runs the PageRank estimators with a fixed configuration. Rankers
// share no state, so several of them can run side by side.
type Ranker struct {
	cfg Config
}

// NewRanker returns a new Ranker instance using the provided config options.
func NewRanker(cfg Config) (*Ranker, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("PageRank ranker config validation failed: %w", err)
	}
	return &Ranker{cfg: cfg}, nil
}

// Config returns the configuration of the ranker with defaults applied.
func (r *Ranker) Config() Config {
	cfg := r.cfg
	d := *r.cfg.DampingFactor
	cfg.DampingFactor = &d
	return cfg
}

// Sample runs the sampling estimator over corpus using the configured
// damping factor, sample count and random source.
//
// The random source is not safe for concurrent use, so calls to Sample on
// the same Ranker must not overlap.
func (r *Ranker) Sample(corpus *graph.Corpus) (Distribution, error) {
	logger := r.runLogger("sample")
	start := r.cfg.Clock.Now()

	ranks, err := Sample(corpus, *r.cfg.DampingFactor, r.cfg.Samples, r.cfg.Rand)
	if err != nil {
		logger.WithField("err", err).Error("sampling failed")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"pages":   corpus.Len(),
		"samples": r.cfg.Samples,
		"elapsed": r.cfg.Clock.Now().Sub(start),
	}).Info("sampling completed")
	return ranks, nil
}

// Iterate runs the iterative estimator over corpus using the configured
// damping factor, tolerance and sweep cap.
func (r *Ranker) Iterate(corpus *graph.Corpus) (Distribution, error) {
	logger := r.runLogger("iterate")
	start := r.cfg.Clock.Now()

	ranks, sweeps, err := Iterate(corpus, *r.cfg.DampingFactor, IterateOptions{
		Tolerance: r.cfg.Tolerance,
		MaxSweeps: r.cfg.MaxSweeps,
	})
	if err != nil {
		logger.WithField("err", err).Error("iteration failed")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"pages":   corpus.Len(),
		"sweeps":  sweeps,
		"elapsed": r.cfg.Clock.Now().Sub(start),
	}).Info("iteration converged")
	return ranks, nil
}

func (r *Ranker) runLogger(method string) *logrus.Entry {
	return r.cfg.Logger.WithFields(logrus.Fields{
		"method":         method,
		"run_id":         uuid.New().String(),
		"damping_factor": *r.cfg.DampingFactor,
	})
}
