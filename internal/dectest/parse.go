// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dectest reads General Decimal Arithmetic .decTest files and runs
// their test cases against decnum.
package dectest

import (
	"bufio"
	"path"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Env holds the settings in effect for a test case, as set by the
// directives that precede it.
type Env struct {
	Precision   int64
	Rounding    string
	MaxExponent int64
	MinExponent int64
	Clamp       bool
	Extended    bool
}

var defaultEnv = Env{
	Precision:   9,
	Rounding:    "half_up",
	MaxExponent: 999,
	MinExponent: -999,
	Extended:    true,
}

// Case is a single test case.
type Case struct {
	ID         string
	Op         string // lower case
	Operands   []string
	Result     string
	Conditions []string // lower case
	Env        Env
	File       string
	Line       int
}

func (c *Case) String() string {
	var b strings.Builder
	b.WriteString(c.ID)
	b.WriteByte(' ')
	b.WriteString(c.Op)
	for _, o := range c.Operands {
		b.WriteByte(' ')
		b.WriteString(quote(o))
	}
	b.WriteString(" -> ")
	b.WriteString(quote(c.Result))
	for _, cond := range c.Conditions {
		b.WriteByte(' ')
		b.WriteString(cond)
	}
	return b.String()
}

func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t'\"") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// maxIncludeDepth bounds nested dectest: directives.
const maxIncludeDepth = 16

// ParseFile reads the test cases of the named file from fs. Files named by
// dectest: directives are read from the same directory with a .decTest
// extension and their cases are inserted in place.
func ParseFile(fs afero.Fs, name string) ([]*Case, error) {
	env := defaultEnv
	return parseFile(fs, name, &env, 0)
}

func parseFile(fs afero.Fs, name string, env *Env, depth int) ([]*Case, error) {
	if depth > maxIncludeDepth {
		return nil, errors.Errorf("%s: too many nested includes", name)
	}
	f, err := fs.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "dectest")
	}
	defer f.Close()

	var cases []*Case
	s := bufio.NewScanner(f)
	s.Buffer(nil, 1<<20)
	for line := 1; s.Scan(); line++ {
		toks, err := tokenize(s.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, line)
		}
		if len(toks) == 0 {
			continue
		}
		if key, val, ok := directive(toks); ok {
			if key == "dectest" {
				inc := path.Join(path.Dir(name), val+".decTest")
				sub, err := parseFile(fs, inc, env, depth+1)
				if err != nil {
					return nil, errors.Wrapf(err, "%s:%d", name, line)
				}
				cases = append(cases, sub...)
				continue
			}
			if err := env.set(key, val); err != nil {
				return nil, errors.Wrapf(err, "%s:%d", name, line)
			}
			continue
		}
		c, err := parseCase(toks)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, line)
		}
		c.Env, c.File, c.Line = *env, name, line
		cases = append(cases, c)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return cases, nil
}

// tokenize splits a line into whitespace separated tokens. Tokens may be
// quoted with ' or ", a doubled quote standing for itself. A -- outside
// quotes starts a comment.
func tokenize(line string) ([]string, error) {
	var toks []string
	for i := 0; i < len(line); {
		switch c := line[i]; {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case strings.HasPrefix(line[i:], "--"):
			return toks, nil
		case c == '\'' || c == '"':
			var b strings.Builder
			i++
			for {
				if i >= len(line) {
					return nil, errors.New("unterminated quoted string")
				}
				if line[i] == c {
					if i+1 < len(line) && line[i+1] == c {
						b.WriteByte(c)
						i += 2
						continue
					}
					i++
					break
				}
				b.WriteByte(line[i])
				i++
			}
			toks = append(toks, b.String())
		default:
			j := i
			for j < len(line) && line[j] != ' ' && line[j] != '\t' && line[j] != '\r' {
				j++
			}
			toks = append(toks, line[i:j])
			i = j
		}
	}
	return toks, nil
}

// directive reports whether toks is a "keyword: value" directive line.
func directive(toks []string) (key, val string, ok bool) {
	k, v, found := strings.Cut(toks[0], ":")
	if !found || len(toks) > 2 {
		return "", "", false
	}
	if v == "" && len(toks) == 2 {
		v = toks[1]
	} else if len(toks) == 2 {
		return "", "", false
	}
	return strings.ToLower(k), v, true
}

func (env *Env) set(key, val string) error {
	var err error
	switch key {
	case "precision":
		env.Precision, err = strconv.ParseInt(val, 10, 64)
	case "rounding":
		env.Rounding = strings.ToLower(val)
	case "maxexponent":
		env.MaxExponent, err = strconv.ParseInt(val, 10, 64)
	case "minexponent":
		env.MinExponent, err = strconv.ParseInt(val, 10, 64)
	case "clamp":
		env.Clamp = val != "0"
	case "extended":
		env.Extended = val != "0"
	case "version":
	default:
		return errors.Errorf("unknown directive %q", key)
	}
	return errors.Wrapf(err, "directive %s", key)
}

func parseCase(toks []string) (*Case, error) {
	arrow := -1
	for i, t := range toks {
		if t == "->" {
			arrow = i
			break
		}
	}
	if arrow < 2 || arrow+1 >= len(toks) {
		return nil, errors.Errorf("malformed test case %q", strings.Join(toks, " "))
	}
	c := &Case{
		ID:       toks[0],
		Op:       strings.ToLower(toks[1]),
		Operands: toks[2:arrow],
		Result:   toks[arrow+1],
	}
	for _, cond := range toks[arrow+2:] {
		c.Conditions = append(c.Conditions, strings.ToLower(cond))
	}
	return c, nil
}
