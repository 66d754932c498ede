package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Ahmed-Sermani/go-pagerank/crawler"
	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	appName = "PageRank"
	appSha  = ""
)

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"sha":  appSha,
		"host": host,
	})

	if err := run(os.Args[1:], os.Stdout, rootLogger, logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to error")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, rootLogger *logrus.Logger, logger *logrus.Entry) error {
	crawlerCfg, rankerCfg, level, err := setupConfig(args, stdout)
	if err != nil {
		return err
	}
	rootLogger.SetLevel(level)

	rankerCfg.Logger = logger.WithField("component", "ranker")
	rnk, err := ranker.NewRanker(rankerCfg)
	if err != nil {
		return err
	}

	crawlerCfg.Logger = logger.WithField("component", "crawler")
	cr, err := crawler.NewCrawler(crawlerCfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGHUP)
	defer cancel()

	corpus, err := cr.Crawl(ctx)
	if err != nil {
		return err
	}

	ranks, err := rnk.Sample(corpus)
	if err != nil {
		return err
	}
	printRanks(stdout, fmt.Sprintf("PageRank Results from Sampling (n = %d)", rnk.Config().Samples), ranks)

	if ranks, err = rnk.Iterate(corpus); err != nil {
		return err
	}
	printRanks(stdout, "PageRank Results from Iteration", ranks)
	return nil
}

// setupConfig binds the command line flags in args to the crawler and ranker
// configurations and returns the requested log level.
func setupConfig(args []string, out io.Writer) (crawler.Config, ranker.Config, logrus.Level, error) {
	var (
		crawlerCfg crawler.Config
		rankerCfg  ranker.Config
		fs         = flag.NewFlagSet(appName, flag.ContinueOnError)
	)
	fs.SetOutput(out)

	dampingFactor := fs.Float64("damping-factor", ranker.DefaultDampingFactor, "The probability that the random surfer follows a link of the current page")
	fs.IntVar(&rankerCfg.Samples, "samples", ranker.DefaultSamples, "The number of pages visited by the sampling estimator")
	fs.Int64Var(&rankerCfg.Seed, "seed", 0, "The seed of the sampling estimator (a time based seed is used when 0)")
	fs.Float64Var(&rankerCfg.Tolerance, "tolerance", ranker.DefaultTolerance, "The largest per-page score change at which the iterative estimator stops")
	fs.IntVar(&rankerCfg.MaxSweeps, "max-sweeps", ranker.DefaultMaxSweeps, "The maximum number of sweeps performed by the iterative estimator")

	fs.IntVar(&crawlerCfg.Workers, "crawler-num-workers", runtime.NumCPU(), "The number of workers to use for parsing pages (defaults to number of CPUs)")

	logLevel := fs.String("log-level", "info", "The log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] CORPUS_DIR\n", appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return crawlerCfg, rankerCfg, 0, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return crawlerCfg, rankerCfg, 0, xerrors.New("exactly one corpus directory must be specified")
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return crawlerCfg, rankerCfg, 0, xerrors.Errorf("could not parse log level: %w", err)
	}

	rankerCfg.DampingFactor = dampingFactor
	if rankerCfg.Seed == 0 {
		rankerCfg.Seed = time.Now().UnixNano()
	}
	crawlerCfg.FS = os.DirFS(fs.Arg(0))
	return crawlerCfg, rankerCfg, level, nil
}

func printRanks(w io.Writer, title string, ranks ranker.Distribution) {
	fmt.Fprintln(w, title)
	for _, page := range ranks.Pages() {
		fmt.Fprintf(w, "  %s: %.4f\n", page, ranks[page])
	}
}
