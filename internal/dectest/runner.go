// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dectest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/decnum"
)

// Outcome is the result of running a single test case.
type Outcome int

// Test case outcomes.
const (
	Pass Outcome = iota
	Fail
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// A Failure records a test case whose result or conditions did not match.
type Failure struct {
	Case   *Case
	Got    string
	Status decnum.Status
}

func (f *Failure) String() string {
	return fmt.Sprintf("%s:%d: %s\n\tgot: %s %s", f.Case.File, f.Case.Line, f.Case, f.Got, conditionNames(f.Status))
}

// Result summarizes the run of a file.
type Result struct {
	File     string
	Passed   int
	Failed   int
	Skipped  int
	Failures []*Failure
	Elapsed  time.Duration
}

// Total returns the number of test cases in r.
func (r *Result) Total() int { return r.Passed + r.Failed + r.Skipped }

// Runner runs .decTest files read from a file system.
type Runner struct {
	fs     afero.Fs
	cfg    Config
	logger log.Logger
}

// NewRunner returns a Runner reading files from fs. A nil logger discards
// log output.
func NewRunner(fs afero.Fs, cfg Config, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Runner{fs: fs, cfg: cfg, logger: logger}
}

// RunFiles runs the named files concurrently, at most Config.Parallel at a
// time, and returns their results in the same order. It stops at the first
// file that cannot be read or parsed.
func (r *Runner) RunFiles(ctx context.Context, names []string) ([]*Result, error) {
	results := make([]*Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	if r.cfg.Parallel > 0 {
		g.SetLimit(r.cfg.Parallel)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.RunFile(name)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunFile runs all test cases in the named file.
func (r *Runner) RunFile(name string) (*Result, error) {
	start := time.Now()
	cases, err := ParseFile(r.fs, name)
	if err != nil {
		return nil, err
	}
	res := &Result{File: name}
	logger := log.With(r.logger, "file", name)
	for _, c := range cases {
		o, f, reason := r.RunCase(c)
		switch o {
		case Pass:
			res.Passed++
		case Skip:
			res.Skipped++
			level.Debug(logger).Log("msg", "skipped", "id", c.ID, "reason", reason)
		case Fail:
			res.Failed++
			res.Failures = append(res.Failures, f)
			level.Warn(logger).Log("msg", "test case failed", "id", c.ID, "case", c, "got", f.Got, "status", f.Status)
		}
	}
	res.Elapsed = time.Since(start)
	level.Info(logger).Log("msg", "done", "passed", res.Passed, "failed", res.Failed, "skipped", res.Skipped, "elapsed", res.Elapsed)
	return res, nil
}

// RunCase runs a single test case. It returns a non-nil Failure if the
// outcome is Fail and the reason for a skip.
func (r *Runner) RunCase(c *Case) (Outcome, *Failure, string) {
	if reason := r.cfg.skipReason(c); reason != "" {
		return Skip, nil, reason
	}
	op, ok := operations[c.Op]
	if !ok {
		return Skip, nil, "unsupported operation " + c.Op
	}
	if len(c.Operands) != op.arity {
		return Skip, nil, fmt.Sprintf("%s takes %d operands", c.Op, op.arity)
	}
	if c.Result == "#" || hasNull(c.Operands) {
		return Skip, nil, "null or encoded operand"
	}
	want, reason := conditions(c.Conditions)
	if reason != "" {
		return Skip, nil, reason
	}
	ctx, reason := c.Env.decContext()
	if reason != "" {
		return Skip, nil, reason
	}
	ctx.SetCR(!r.cfg.NoCR)

	var st decnum.Status
	args := make([]*decnum.Decimal, len(c.Operands))
	for i, s := range c.Operands {
		if op.round {
			args[i] = decnum.New().SetString(s, &ctx, &st)
		} else {
			var cs decnum.Status
			args[i] = decnum.New().SetStringExact(s, &cs)
		}
	}
	got := op.eval(args, &ctx, &st)
	for _, a := range args {
		a.Free()
	}

	if st != want || c.Result != "?" && !strings.EqualFold(got, c.Result) {
		return Fail, &Failure{Case: c, Got: got, Status: st}, ""
	}
	level.Debug(r.logger).Log("msg", "passed", "id", c.ID)
	return Pass, nil, ""
}

func hasNull(operands []string) bool {
	for _, o := range operands {
		if strings.HasPrefix(o, "#") {
			return true
		}
	}
	return false
}

// conditions converts condition names to a Status. lost_digits only applies
// to the subset arithmetic and is ignored.
func conditions(names []string) (decnum.Status, string) {
	var st decnum.Status
	for _, n := range names {
		switch n {
		case "lost_digits":
			continue
		case "insufficient_storage":
			st |= decnum.MallocError
			continue
		}
		s, ok := decnum.ParseStatus(n)
		if !ok {
			return 0, "unknown condition " + n
		}
		st |= s
	}
	return st, ""
}

// conditionNames renders st with decTest condition names.
func conditionNames(st decnum.Status) string {
	if st == 0 {
		return ""
	}
	var names []string
	for _, n := range strings.Split(st.String(), "|") {
		var b strings.Builder
		for i, c := range n {
			if c >= 'A' && c <= 'Z' {
				if i > 0 {
					b.WriteByte('_')
				}
				c += 'a' - 'A'
			}
			b.WriteRune(c)
		}
		names = append(names, b.String())
	}
	return strings.Join(names, " ")
}

var roundingModes = map[string]decnum.RoundingMode{
	"ceiling":   decnum.ToPositiveInf,
	"down":      decnum.ToZero,
	"floor":     decnum.ToNegativeInf,
	"half_down": decnum.ToNearestZero,
	"half_even": decnum.ToNearestEven,
	"half_up":   decnum.ToNearestAway,
	"up":        decnum.AwayFromZero,
	"05up":      decnum.ZeroFiveUp,
}

// decContext returns the decnum context for env, or the reason why no such
// context exists.
func (env *Env) decContext() (decnum.Context, string) {
	ctx := decnum.MaxContext()
	ctx.SetTraps(0)
	if !env.Extended {
		return ctx, "subset arithmetic"
	}
	mode, ok := roundingModes[env.Rounding]
	if !ok {
		return ctx, "unsupported rounding " + env.Rounding
	}
	if !ctx.SetPrec(env.Precision) || !ctx.SetEmax(env.MaxExponent) || !ctx.SetEmin(env.MinExponent) {
		return ctx, fmt.Sprintf("unsupported context %d/%d/%d", env.Precision, env.MaxExponent, env.MinExponent)
	}
	ctx.SetRound(mode)
	ctx.SetClamp(env.Clamp)
	return ctx, ""
}
