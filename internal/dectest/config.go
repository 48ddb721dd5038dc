// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dectest

import (
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a test run.
type Config struct {
	// Parallel is the maximum number of files run concurrently. Zero or a
	// negative value means no limit.
	Parallel int `yaml:"parallel"`
	// Skip lists test case ids to skip. Entries are path.Match patterns,
	// like "pwsx8*".
	Skip []string `yaml:"skip"`
	// SkipOps lists lower case operation names to skip.
	SkipOps []string `yaml:"skip_ops"`
	// MaxPrecision skips test cases with a larger precision. Zero means no
	// limit.
	MaxPrecision int64 `yaml:"max_precision"`
	// NoCR disables correct rounding of Exp, Ln, Log10 and Pow.
	NoCR bool `yaml:"no_cr"`
}

// LoadConfig reads a YAML configuration from the named file in fs. Unknown
// fields are an error.
func LoadConfig(fs afero.Fs, name string) (*Config, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "load config %s", name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load config %s", name)
	}
	return &cfg, nil
}

// Validate checks the skip patterns of cfg.
func (cfg *Config) Validate() error {
	for _, p := range cfg.Skip {
		if _, err := path.Match(p, ""); err != nil {
			return errors.Wrapf(err, "skip pattern %q", p)
		}
	}
	if cfg.MaxPrecision < 0 {
		return errors.Errorf("invalid max_precision %d", cfg.MaxPrecision)
	}
	return nil
}

// skipReason returns a non-empty reason if c must not be run.
func (cfg *Config) skipReason(c *Case) string {
	for _, p := range cfg.Skip {
		if ok, _ := path.Match(p, c.ID); ok {
			return "skipped by configuration"
		}
	}
	for _, op := range cfg.SkipOps {
		if op == c.Op {
			return "operation skipped by configuration"
		}
	}
	if cfg.MaxPrecision > 0 && c.Env.Precision > cfg.MaxPrecision {
		return "precision above max_precision"
	}
	return ""
}
