// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a laid out chart as SVG or PNG.
package render

import (
	"log"
	"os"
	"strings"

	"github.com/gradviz/disciplines/discipline"
	"github.com/gradviz/disciplines/layout"
)

// Warning is the logger for ignorable rendering problems, such as a
// highlight target that is not in the chart.
var Warning = log.New(os.Stderr, "[render] ", 0)

// Options control rendering.
type Options struct {
	// Style is the look of the chart. The zero value means
	// DefaultStyle.
	Style Style

	// HighlightDiscipline and HighlightGroup name a discipline
	// row and a group key whose elements are drawn emphasized, as
	// if hovered over. Either may be empty.
	HighlightDiscipline string
	HighlightGroup      string

	// Command, if non-empty, is recorded in the output as the
	// command line that produced it.
	Command []string

	// Scale is the PNG supersampling factor. 0 means 2.
	Scale int
}

func (o Options) style() Style {
	if o.Style == (Style{}) {
		return DefaultStyle
	}
	return o.Style
}

// Highlight resolves the highlight targets of opts against c. Targets
// that c does not contain are reported to Warning and ignored.
func Highlight(c *layout.Chart, opts Options) *layout.Highlight {
	var h *layout.Highlight
	if name := opts.HighlightDiscipline; name != "" {
		if hd, ok := c.HighlightDiscipline(name); ok {
			h = hd
		} else {
			Warning.Printf("no discipline %q to highlight", name)
		}
	}
	if key := opts.HighlightGroup; key != "" {
		g, err := discipline.ParseGroup(key)
		if err != nil {
			Warning.Print(err)
		} else if hg, ok := c.HighlightGroup(g); ok {
			h = h.Union(hg)
		} else {
			Warning.Printf("no %s flow source under %s", key, c.Selection)
		}
	}
	return h
}

// surface is a drawing target. Positions are relative to the origin
// of the innermost open group.
type surface interface {
	// group opens a group translated to origin. title, if
	// non-empty, describes the group's contents.
	group(class string, origin layout.Point, title string)
	end()

	rect(class string, r layout.Rect, fill paint)
	text(class string, l layout.Label, fill paint)
	path(class string, p layout.Path, width float64, stroke paint)
}

// drawChart walks c onto s, emphasizing the elements in h.
func drawChart(s surface, c *layout.Chart, h *layout.Highlight, st Style) {
	fg := paint{st.Foreground, 1}
	hi := paint{st.Highlight, 1}
	pick := func(on bool, normal paint) paint {
		if on {
			return hi
		}
		return normal
	}
	invisible := paint{st.Background, 0}

	s.group("header", layout.Point{}, "")
	for _, hd := range c.Frame.Headers {
		s.text("header-text", hd.Text, fg)
		s.rect("header-rule", hd.Rule, fg)
	}
	s.end()

	for _, fl := range c.Flows() {
		drawFlow(s, c, fl, h, st)
	}

	genderBars := make(map[string]layout.GenderRow)
	for _, row := range c.GenderBars {
		genderBars[row.Discipline] = row
	}
	ethBars := make(map[string]layout.EthnicityRow)
	for _, row := range c.EthnicityBars {
		ethBars[row.Discipline] = row
	}
	for _, row := range c.Frame.Rows {
		var title string
		if d, ok := c.HighlightDiscipline(row.Discipline); ok {
			title = tooltip(d.Details)
		}
		on := h.Row(row.Discipline)

		s.group("discipline-group", row.Origin, title)
		s.rect("degree-hover-region", row.HoverRegion, invisible)
		s.text("overview-text", row.Label, pick(on, fg))
		for _, r := range row.BottomRules {
			s.rect("bottom-bar", r, fg)
		}
		if gb, ok := genderBars[row.Discipline]; ok {
			s.rect("men-display", gb.Men, pick(on, fg))
			s.rect("women-display", gb.Women, pick(on, fg))
		}
		if eb, ok := ethBars[row.Discipline]; ok {
			for k := range eb.Bars {
				s.rect("ethnicity-bar", eb.Bars[k], pick(on, fg))
				s.text("ethnicity-text", eb.Labels[k], pick(on, paint{st.EthnicityText, 1}))
			}
		}
		s.end()
	}
}

func drawFlow(s surface, c *layout.Chart, fl *layout.FlowGeometry, h *layout.Highlight, st Style) {
	class := "left-flow-group"
	if fl.Direction == layout.Right {
		class = "right-flow-group"
	}
	s.group(class, fl.Origin, "")

	// Emphasized chords go on top.
	normal := paint{st.Chord, st.ChordOpacity}
	hi := paint{st.Highlight, 1}
	for pass := 0; pass < 2; pass++ {
		for n, ch := range fl.Chords {
			on := h.Chord(fl.Dimension, n)
			if on != (pass == 1) || ch.StrokeWidth <= 0 {
				continue
			}
			p := normal
			if on {
				p = hi
			}
			s.path("flow-source-chord", ch.Path, ch.StrokeWidth, p)
		}
	}

	for _, src := range fl.Sources {
		var title string
		if d, ok := c.HighlightGroup(src.Group); ok {
			title = tooltip(d.Details)
		}
		p := paint{st.Foreground, 1}
		if h.Source(src.Group) {
			p = hi
		}
		s.group("flow-sources", layout.Point{}, title)
		s.rect("flow-sources-rect", src.Bar, p)
		s.text("flow-label", src.Label, p)
		s.rect("flow-sources-hover-region", src.HoverRegion, paint{st.Background, 0})
		s.end()
	}
	s.end()
}

// tooltip formats details one per line, skipping those without a
// caption.
func tooltip(details []layout.Detail) string {
	var lines []string
	for _, d := range details {
		if d.Caption == "" {
			continue
		}
		lines = append(lines, d.Caption+": "+d.Value)
	}
	return strings.Join(lines, "\n")
}
