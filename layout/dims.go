// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/gradviz/disciplines/discipline"
)

// Dimensions is the pixel budget of the chart. All lengths are in
// pixels.
//
// The chart is laid out left to right as a gender flow diagram
// (ChordSize wide), NumSections sections of SectionWidth each, and an
// ethnicity flow diagram (ChordSize wide). Each discipline occupies a
// row DisciplineHeight tall; row i starts at (i+1)*DisciplineHeight,
// leaving the first row for headers.
type Dimensions struct {
	SectionWidth     float64 `toml:"section_width"`
	SectionPadding   float64 `toml:"section_padding"`
	NumSections      int     `toml:"num_sections"`
	DisciplineHeight float64 `toml:"discipline_height"`
	TotalHeight      float64 `toml:"total_height"`

	// ChordSize is the width of each flow diagram and
	// ChordGlyphSize the width of its total bars.
	ChordSize      float64 `toml:"chord_size"`
	ChordGlyphSize float64 `toml:"chord_glyph_size"`
	ChordEndInset  float64 `toml:"chord_end_inset"`
	MaxStrokeWidth float64 `toml:"max_stroke_width"`
	TotalBarHeight float64 `toml:"total_bar_height"`

	BarThickness float64 `toml:"bar_thickness"`

	// EthnicityBarPadding is reserved to the left of the
	// ethnicity bars for their labels.
	EthnicityBarPadding float64 `toml:"ethnicity_bar_padding"`
	EthnicityBarTop     float64 `toml:"ethnicity_bar_top"`
	EthnicityBarStep    float64 `toml:"ethnicity_bar_step"`

	HeaderTextOffset           float64 `toml:"header_text_offset"`
	ChordGlyphHeaderRectOffset float64 `toml:"chord_glyph_header_rect_offset"`
}

// DefaultDimensions is the standard layout of the chart.
var DefaultDimensions = Dimensions{
	SectionWidth:     180,
	SectionPadding:   4,
	NumSections:      4,
	DisciplineHeight: 40,
	TotalHeight:      680,

	ChordSize:      190,
	ChordGlyphSize: 70,
	ChordEndInset:  4,
	MaxStrokeWidth: 10,
	TotalBarHeight: 10,

	BarThickness: 5,

	EthnicityBarPadding: 60,
	EthnicityBarTop:     3,
	EthnicityBarStep:    8,

	HeaderTextOffset:           5,
	ChordGlyphHeaderRectOffset: 10,
}

// Width returns the total width of the chart.
func (d Dimensions) Width() float64 {
	return 2*d.ChordSize + d.SectionWidth*float64(d.NumSections)
}

// Height returns the total height of the chart.
func (d Dimensions) Height() float64 {
	return d.TotalHeight
}

// genderBarWidth is the longest a gender bar can be.
func (d Dimensions) genderBarWidth() float64 {
	return d.SectionWidth - d.SectionPadding
}

// ethnicityBarWidth is the longest an ethnicity bar can be.
func (d Dimensions) ethnicityBarWidth() float64 {
	return d.SectionWidth - d.SectionPadding - d.EthnicityBarPadding
}

// Validate returns a *discipline.ConfigurationError if d cannot hold
// a chart.
func (d Dimensions) Validate() error {
	bad := func(key string, v float64) error {
		return &discipline.ConfigurationError{Table: "dimensions", Key: fmt.Sprintf("%s=%g", key, v)}
	}
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"section_width", d.SectionWidth},
		{"discipline_height", d.DisciplineHeight},
		{"total_height", d.TotalHeight},
		{"chord_size", d.ChordSize},
		{"chord_glyph_size", d.ChordGlyphSize},
		{"bar_thickness", d.BarThickness},
		{"total_bar_height", d.TotalBarHeight},
		{"max_stroke_width", d.MaxStrokeWidth},
	} {
		if !(f.v > 0) {
			return bad(f.key, f.v)
		}
	}
	if d.NumSections < 4 {
		return bad("num_sections", float64(d.NumSections))
	}
	if d.SectionPadding < 0 || d.genderBarWidth() <= 0 {
		return bad("section_padding", d.SectionPadding)
	}
	if d.EthnicityBarPadding < 0 || d.ethnicityBarWidth() <= 0 {
		return bad("ethnicity_bar_padding", d.EthnicityBarPadding)
	}
	if d.ChordGlyphSize >= d.ChordSize {
		return bad("chord_glyph_size", d.ChordGlyphSize)
	}
	return nil
}
