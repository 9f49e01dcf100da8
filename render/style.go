// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style is the look of a rendered chart. Colors are "#rrggbb".
type Style struct {
	// Foreground colors bars, rules, and labels.
	Foreground string `toml:"foreground"`

	// EthnicityText colors the labels beside the ethnicity bars.
	EthnicityText string `toml:"ethnicity_text"`

	Chord        string  `toml:"chord"`
	ChordOpacity float64 `toml:"chord_opacity"`

	// Highlight colors emphasized elements, which are drawn fully
	// opaque.
	Highlight string `toml:"highlight"`

	Background string `toml:"background"`

	FontSize   float64 `toml:"font_size"`
	FontFamily string  `toml:"font_family"`
}

// DefaultStyle is the standard look of the chart.
var DefaultStyle = Style{
	Foreground:    "#838383",
	EthnicityText: "#B1B1B1",
	Chord:         "#C1C1C1",
	ChordOpacity:  0.3,
	Highlight:     "#000000",
	Background:    "#FFFFFF",
	FontSize:      11,
	FontFamily:    "sans-serif",
}

// Validate returns an error if any field of s is malformed.
func (s Style) Validate() error {
	for _, c := range []struct{ name, val string }{
		{"foreground", s.Foreground},
		{"ethnicity_text", s.EthnicityText},
		{"chord", s.Chord},
		{"highlight", s.Highlight},
		{"background", s.Background},
	} {
		if _, err := parseColor(c.val); err != nil {
			return fmt.Errorf("style %s: %w", c.name, err)
		}
	}
	if s.ChordOpacity < 0 || s.ChordOpacity > 1 {
		return fmt.Errorf("style chord_opacity %g not in [0, 1]", s.ChordOpacity)
	}
	if !(s.FontSize > 0) {
		return fmt.Errorf("style font_size %g must be positive", s.FontSize)
	}
	return nil
}

// paint is a color and opacity to fill or stroke with.
type paint struct {
	color   string
	opacity float64
}

// nrgba returns p as a non-premultiplied color. Malformed colors are
// black.
func (p paint) nrgba() color.NRGBA {
	c, _ := parseColor(p.color)
	c.A = uint8(p.opacity*0xff + 0.5)
	return c
}

// parseColor parses a "#rrggbb" color.
func parseColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return color.NRGBA{A: 0xff}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
