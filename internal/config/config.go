// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads disciplineplot settings.
//
// Settings are layered: built-in defaults, then a TOML file, then a
// .env file, then the process environment. Command-line flags are
// applied last by the caller.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gradviz/disciplines/discipline"
	"github.com/gradviz/disciplines/layout"
	"github.com/gradviz/disciplines/render"
	"github.com/joho/godotenv"
)

// Config is the complete set of settings.
type Config struct {
	Layout    layout.Dimensions `toml:"layout"`
	Style     render.Style      `toml:"style"`
	Selection Selection         `toml:"selection"`
}

// Selection is what to draw and how to write it.
type Selection struct {
	Metric string `toml:"metric"`
	Calc   string `toml:"calc"`
	Format string `toml:"format"`
}

// Formats are the output formats disciplineplot can write.
var Formats = []string{"svg", "png", "table"}

// Environment variables that override the selection.
const (
	EnvMetric = "DISCIPLINES_METRIC"
	EnvCalc   = "DISCIPLINES_CALC"
	EnvFormat = "DISCIPLINES_FORMAT"
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Layout: layout.DefaultDimensions,
		Style:  render.DefaultStyle,
		Selection: Selection{
			Metric: discipline.DefaultSelection.Metric.String(),
			Calc:   discipline.DefaultSelection.Calc.String(),
			Format: "svg",
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path and
// the environment. If path is "", no file is read. If envFile is
// non-empty and exists, its variables apply where the process
// environment does not set them.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			var names []string
			for _, k := range keys {
				names = append(names, k.String())
			}
			sort.Strings(names)
			return nil, fmt.Errorf("%s: unknown keys %s", path, strings.Join(names, ", "))
		}
	}

	env := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
		for k, v := range m {
			env[k] = v
		}
	}
	for _, k := range []string{EnvMetric, EnvCalc, EnvFormat} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}
	cfg.applyEnv(env)
	return cfg, nil
}

func (c *Config) applyEnv(env map[string]string) {
	for k, dst := range map[string]*string{
		EnvMetric: &c.Selection.Metric,
		EnvCalc:   &c.Selection.Calc,
		EnvFormat: &c.Selection.Format,
	} {
		if v := strings.TrimSpace(env[k]); v != "" {
			*dst = v
		}
	}
}

// Selected returns the metric and calculation method c selects.
func (c *Config) Selected() (discipline.Selection, error) {
	m, err := discipline.ParseMetric(c.Selection.Metric)
	if err != nil {
		return discipline.Selection{}, err
	}
	calc, err := discipline.ParseCalc(c.Selection.Calc)
	if err != nil {
		return discipline.Selection{}, err
	}
	sel := discipline.Selection{Metric: m, Calc: calc}
	return sel, sel.Validate()
}

// Validate returns an error if any setting is unusable.
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if err := c.Style.Validate(); err != nil {
		return err
	}
	if _, err := c.Selected(); err != nil {
		return err
	}
	for _, f := range Formats {
		if c.Selection.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q; want one of %s", c.Selection.Format, strings.Join(Formats, ", "))
}
