// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dectest runs General Decimal Arithmetic .decTest files against
// decnum and prints a summary of the results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"github.com/db47h/decnum/internal/dectest"
)

type options struct {
	config   string
	files    []string
	parallel int
	skip     []string
	skipOps  []string
	maxPrec  int64
	noCR     bool
	verbose  bool
	failures bool
}

func main() {
	var opts options
	app := kingpin.New("dectest", "Run .decTest files against decnum.")
	app.Flag("config", "YAML configuration file.").Short('c').StringVar(&opts.config)
	app.Flag("parallel", "Maximum number of files run concurrently.").Short('j').IntVar(&opts.parallel)
	app.Flag("skip", "Skip test case ids matching this pattern. Repeatable.").StringsVar(&opts.skip)
	app.Flag("skip-op", "Skip this operation. Repeatable.").StringsVar(&opts.skipOps)
	app.Flag("max-prec", "Skip test cases with a larger precision.").Int64Var(&opts.maxPrec)
	app.Flag("no-cr", "Disable correct rounding of exp, ln, log10 and power.").BoolVar(&opts.noCR)
	app.Flag("verbose", "Log every test case.").Short('v').BoolVar(&opts.verbose)
	app.Flag("failures", "Print failed test cases.").Default("true").BoolVar(&opts.failures)
	app.Arg("files", ".decTest files to run.").Required().StringsVar(&opts.files)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, afero.NewOsFs(), &opts, os.Stdout, os.Stderr))
}

// run runs the files in opts and returns the process exit code: 0 if all
// test cases passed or were skipped, 1 on failures and 2 on errors.
func run(ctx context.Context, fs afero.Fs, opts *options, stdout, stderr io.Writer) int {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	if opts.verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		return 2
	}

	start := time.Now()
	results, err := dectest.NewRunner(fs, *cfg, logger).RunFiles(ctx, opts.files)
	if err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		return 2
	}
	if printSummary(stdout, results, time.Since(start), opts.failures) > 0 {
		return 1
	}
	return 0
}

// loadConfig reads the configuration file, if any, and applies the command
// line flags on top of it.
func loadConfig(fs afero.Fs, opts *options) (*dectest.Config, error) {
	cfg := &dectest.Config{}
	if opts.config != "" {
		var err error
		if cfg, err = dectest.LoadConfig(fs, opts.config); err != nil {
			return nil, err
		}
	}
	if opts.parallel != 0 {
		cfg.Parallel = opts.parallel
	}
	cfg.Skip = append(cfg.Skip, opts.skip...)
	cfg.SkipOps = append(cfg.SkipOps, opts.skipOps...)
	if opts.maxPrec != 0 {
		cfg.MaxPrecision = opts.maxPrec
	}
	cfg.NoCR = cfg.NoCR || opts.noCR
	return cfg, cfg.Validate()
}

// printSummary prints one line per file and a total line, and returns the
// number of failed test cases.
func printSummary(w io.Writer, results []*dectest.Result, elapsed time.Duration, failures bool) int {
	var (
		bold = color.New(color.Bold)
		red  = color.New(color.FgRed)
		pass = color.New(color.FgGreen)
		skip = color.New(color.FgYellow)

		total dectest.Result
	)
	for _, r := range results {
		status := pass.Sprint("ok  ")
		if r.Failed > 0 {
			status = red.Sprint("FAIL")
		}
		fmt.Fprintf(w, "%s %s\t%s passed, %s failed, %s skipped (%v)\n",
			status, r.File,
			humanize.Comma(int64(r.Passed)),
			humanize.Comma(int64(r.Failed)),
			humanize.Comma(int64(r.Skipped)),
			r.Elapsed.Round(time.Millisecond))
		if failures {
			for _, f := range r.Failures {
				fmt.Fprintf(w, "\t%s\n", red.Sprint(f))
			}
		}
		total.Passed += r.Passed
		total.Failed += r.Failed
		total.Skipped += r.Skipped
	}
	bold.Fprintf(w, "%s test cases in %s files: ", humanize.Comma(int64(total.Total())), humanize.Comma(int64(len(results))))
	fmt.Fprintf(w, "%s passed, %s failed, %s skipped in %v\n",
		pass.Sprint(humanize.Comma(int64(total.Passed))),
		red.Sprint(humanize.Comma(int64(total.Failed))),
		skip.Sprint(humanize.Comma(int64(total.Skipped))),
		elapsed.Round(time.Millisecond))
	return total.Failed
}
