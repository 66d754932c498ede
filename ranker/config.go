package ranker

import (
	"io"
	"math/rand"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const (
	// DefaultDampingFactor is used when Config.DampingFactor is left nil.
	DefaultDampingFactor = 0.85

	// DefaultSamples is used when Config.Samples is left zero.
	DefaultSamples = 10000
)

var (
	// ErrInvalidDampingFactor is returned for damping factors outside [0, 1].
	ErrInvalidDampingFactor = xerrors.New("damping factor must be in the range [0, 1]")

	// ErrInvalidSampleCount is returned when asking for less than one sample.
	ErrInvalidSampleCount = xerrors.New("sample count must be at least 1")

	// ErrNotConverged is returned when the iterative estimator reaches its
	// sweep limit before the scores settle.
	ErrNotConverged = xerrors.New("pagerank scores did not converge")

	// ErrNilRandom is returned when sampling without a random source.
	ErrNilRandom = xerrors.New("random source must not be nil")
)

// Config encapsulates the parameters for creating a new Ranker instance.
type Config struct {
	// DampingFactor is the probability that a random surfer will click on
	// one of the outgoing links on the page they are currently visiting
	// instead of teleporting to a random page of the corpus.
	//
	// If nil, a default value of 0.85 will be used instead. A value of 0
	// makes the surfer always teleport.
	DampingFactor *float64

	// Samples is the number of pages visited by the sampling estimator.
	//
	// If not specified, a default value of 10000 will be used instead.
	Samples int

	// The iterative estimator keeps sweeping until no score changes by
	// Tolerance or more.
	//
	// If not specified, a default value of 0.001 will be used instead.
	Tolerance float64

	// MaxSweeps caps the number of sweeps of the iterative estimator.
	//
	// If not specified, a default value of 1000 will be used instead.
	MaxSweeps int

	// Seed initializes the random source of the sampling estimator when
	// Rand is not set.
	Seed int64

	// Rand, if set, is used by the sampling estimator instead of a source
	// seeded with Seed.
	Rand Random

	// Clock is used for timing runs. Defaults to the wall clock.
	Clock clock.Clock

	// Logger for run details. Defaults to a logger that discards output.
	Logger *logrus.Entry
}

// validate checks whether the ranker configuration is valid and sets the
// default values where required.
func (c *Config) validate() error {
	var err error
	d := DefaultDampingFactor
	if c.DampingFactor != nil {
		d = *c.DampingFactor
	}
	if !(d >= 0 && d <= 1.0) {
		err = multierror.Append(err, xerrors.Errorf("DampingFactor %v: %w", d, ErrInvalidDampingFactor))
	}
	c.DampingFactor = &d

	if c.Samples < 0 {
		err = multierror.Append(err, xerrors.Errorf("Samples %d: %w", c.Samples, ErrInvalidSampleCount))
	} else if c.Samples == 0 {
		c.Samples = DefaultSamples
	}

	if !(c.Tolerance >= 0 && c.Tolerance < 1.0) {
		err = multierror.Append(err, xerrors.New("Tolerance must be in the range (0, 1)"))
	} else if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}

	if c.MaxSweeps < 0 {
		err = multierror.Append(err, xerrors.New("MaxSweeps must not be negative"))
	} else if c.MaxSweeps == 0 {
		c.MaxSweeps = DefaultMaxSweeps
	}

	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(c.Seed))
	}
	if c.Clock == nil {
		c.Clock = clock.WallClock
	}
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = logrus.NewEntry(l)
	}

	return err
}
