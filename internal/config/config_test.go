// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gradviz/disciplines/discipline"
	"github.com/gradviz/disciplines/layout"
	"github.com/gradviz/disciplines/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0666))
	return path
}

// clearEnv unsets the selection variables for the duration of t.
func clearEnv(t *testing.T) {
	for _, k := range []string{EnvMetric, EnvCalc, EnvFormat} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, layout.DefaultDimensions, cfg.Layout)
	assert.Equal(t, render.DefaultStyle, cfg.Style)
	require.NoError(t, cfg.Validate())

	sel, err := cfg.Selected()
	require.NoError(t, err)
	assert.Equal(t, discipline.DefaultSelection, sel)
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "disciplines.toml", `
[layout]
section_width = 200.0
discipline_height = 32.0

[style]
highlight = "#CC0000"

[selection]
metric = "unemployment"
calc = "percent"
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 200.0, cfg.Layout.SectionWidth)
	assert.Equal(t, 32.0, cfg.Layout.DisciplineHeight)
	assert.Equal(t, layout.DefaultDimensions.ChordSize, cfg.Layout.ChordSize)
	assert.Equal(t, "#CC0000", cfg.Style.Highlight)
	assert.Equal(t, render.DefaultStyle.Chord, cfg.Style.Chord)

	sel, err := cfg.Selected()
	require.NoError(t, err)
	assert.Equal(t, discipline.Selection{Metric: discipline.Unemployment, Calc: discipline.Percent}, sel)
	assert.Equal(t, "svg", cfg.Selection.Format)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), "")
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", "[layout\n"), "")
	assert.Error(t, err)

	_, err = Load(writeFile(t, "typo.toml", "[layout]\nsection_widht = 1\n"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.section_widht")
}

func TestEnvOverlay(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "c.toml", "[selection]\nmetric = \"unemployment\"\nformat = \"png\"\n")
	env := writeFile(t, ".env", "DISCIPLINES_METRIC=earnings\nDISCIPLINES_FORMAT=table\n")
	t.Setenv(EnvFormat, "svg")

	cfg, err := Load(path, env)
	require.NoError(t, err)
	// The .env file beats the TOML file and the environment beats
	// both.
	assert.Equal(t, "earnings", cfg.Selection.Metric)
	assert.Equal(t, "svg", cfg.Selection.Format)
	assert.Equal(t, "population", cfg.Selection.Calc)

	// A missing .env file is not an error.
	_, err = Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	for name, mod := range map[string]func(*Config){
		"metric":    func(c *Config) { c.Selection.Metric = "happiness" },
		"calc":      func(c *Config) { c.Selection.Calc = "median" },
		"format":    func(c *Config) { c.Selection.Format = "pdf" },
		"selection": func(c *Config) { c.Selection.Metric, c.Selection.Calc = "unemployment", "percent_by_pop_group" },
		"style":     func(c *Config) { c.Style.Foreground = "grey" },
		"layout":    func(c *Config) { c.Layout.NumSections = 2 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mod(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Layout.SectionWidth = -1
	var ce *discipline.ConfigurationError
	assert.True(t, errors.As(cfg.Validate(), &ce))
}
