// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/gradviz/disciplines/discipline"
)

// Header is a column heading and the rule beneath it, in chart
// coordinates.
type Header struct {
	Text Label
	Rule Rect
}

// Row is the static frame of one discipline row. Positions are
// relative to Origin.
type Row struct {
	Discipline string
	Index      int
	Origin     Point

	Label       Label
	HoverRegion Rect

	// BottomRules separate this row from the next, one per
	// section.
	BottomRules []Rect
}

// Frame is the part of the chart that does not depend on the data
// values.
type Frame struct {
	Headers []Header
	Rows    []Row
}

// LayoutFrame lays out the headers of the chart and the frame of each
// discipline row of ds in order.
func LayoutFrame(ds *discipline.Dataset, order []string, dims Dimensions) *Frame {
	f := new(Frame)

	textY := dims.DisciplineHeight/2 + dims.HeaderTextOffset
	ruleY := dims.DisciplineHeight/2 + dims.ChordGlyphHeaderRectOffset
	sectionRule := func(section int) Rect {
		x := dims.ChordSize + dims.SectionWidth*float64(section)
		return Rect{X: x, Y: ruleY, W: dims.genderBarWidth(), H: 1}
	}
	inner := func(text string, section int, offset float64) Header {
		x := dims.ChordSize + dims.SectionWidth*float64(section) + offset
		return Header{Label{X: x, Y: textY, Text: text}, sectionRule(section)}
	}
	innerRight := func(text string, section int, offset float64) Header {
		x := dims.ChordSize + dims.SectionWidth*float64(section+1) - dims.SectionPadding + offset
		return Header{Label{X: x, Y: textY, Text: text, Anchor: AnchorEnd}, sectionRule(section)}
	}
	outer := func(text string, x float64) Header {
		return Header{
			Label{X: x, Y: textY, Text: text},
			Rect{X: x, Y: ruleY, W: dims.ChordSize - dims.SectionPadding, H: 1},
		}
	}

	f.Headers = []Header{
		outer("Gender", 0),
		outer("Ethnicity", dims.ChordSize+dims.SectionWidth*float64(dims.NumSections)),
		inner("Degree", 0, 0),
		innerRight("Men with Degree", 1, -10),
		inner("Women with Degree", 2, 10),
		inner("Degree by Ethnicity", 3, 0),
	}

	for i, e := range ds.Entries(order) {
		row := Row{
			Discipline: e.Name,
			Index:      i,
			Origin:     Point{dims.ChordSize, float64(i+1) * dims.DisciplineHeight},
			Label:      Label{X: 0, Y: dims.DisciplineHeight/2 - 5, Text: e.Name},
			HoverRegion: Rect{
				W: dims.SectionWidth * 4,
				H: dims.DisciplineHeight - dims.SectionPadding,
			},
		}
		for k := 0; k < 4; k++ {
			row.BottomRules = append(row.BottomRules, Rect{
				X: dims.SectionWidth * float64(k),
				Y: dims.DisciplineHeight - dims.SectionPadding,
				W: dims.genderBarWidth(),
				H: 1,
			})
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}
