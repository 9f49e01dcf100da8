// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	"github.com/gradviz/disciplines/layout"
	"github.com/kballard/go-shellquote"
)

// SVG writes c to w as an SVG document.
//
// Every discipline row and flow source carries a <title> with its
// captioned values, which viewers show as a tooltip.
func SVG(w io.Writer, c *layout.Chart, opts Options) error {
	st := opts.style()
	if err := st.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	width, height := c.Dims.Width(), c.Dims.Height()
	canvas.Start(width, height)
	canvas.Title(c.Title)
	if len(opts.Command) > 0 {
		canvas.Desc(shellquote.Join(opts.Command...))
	}
	canvas.Rect(0, 0, width, height, "fill:"+st.Background)
	canvas.Group(`font-family="`+st.FontFamily+`"`, fmt.Sprintf(`font-size="%g"`, st.FontSize))
	drawChart(&svgSurface{canvas}, c, Highlight(c, opts), st)
	canvas.Gend()
	canvas.End()
	return bw.Flush()
}

type svgSurface struct {
	canvas *svg.SVG
}

func (s *svgSurface) group(class string, origin layout.Point, title string) {
	if origin == (layout.Point{}) {
		s.canvas.Group(`class="` + class + `"`)
	} else {
		s.canvas.Group(`class="`+class+`"`, fmt.Sprintf(`transform="translate(%s,%s)"`, num(origin.X), num(origin.Y)))
	}
	if title != "" {
		s.canvas.Title(title)
	}
}

func (s *svgSurface) end() {
	s.canvas.Gend()
}

func (s *svgSurface) rect(class string, r layout.Rect, fill paint) {
	s.canvas.Rect(r.X, r.Y, r.W, r.H, `class="`+class+`"`, fillStyle(fill))
}

func (s *svgSurface) text(class string, l layout.Label, fill paint) {
	attrs := []string{`class="` + class + `"`, fillStyle(fill)}
	if l.Anchor != layout.AnchorStart {
		attrs = append(attrs, `text-anchor="`+l.Anchor.String()+`"`)
	}
	s.canvas.Text(l.X, l.Y, l.Text, attrs...)
}

func (s *svgSurface) path(class string, p layout.Path, width float64, stroke paint) {
	st := "fill:none;stroke:" + stroke.color + ";stroke-width:" + num(width)
	if stroke.opacity != 1 {
		st += ";stroke-opacity:" + num(stroke.opacity)
	}
	s.canvas.Path(p.String(), `class="`+class+`"`, st)
}

func fillStyle(p paint) string {
	if p.opacity == 0 {
		return "fill:none;pointer-events:all"
	}
	st := "fill:" + p.color
	if p.opacity != 1 {
		st += ";fill-opacity:" + num(p.opacity)
	}
	return st
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
