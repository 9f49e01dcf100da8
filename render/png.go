// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/gradviz/disciplines/layout"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// PNG writes c to w as a PNG image.
func PNG(w io.Writer, c *layout.Chart, opts Options) error {
	img, err := Rasterize(c, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize draws c into an image one pixel per layout unit.
//
// The chart is drawn at opts.Scale times the size and then scaled
// down, which antialiases text.
func Rasterize(c *layout.Chart, opts Options) (*image.RGBA, error) {
	st := opts.style()
	if err := st.Validate(); err != nil {
		return nil, err
	}
	k := opts.Scale
	if k <= 0 {
		k = 2
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    st.FontSize * float64(k),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	w, h := int(math.Ceil(c.Dims.Width())), int(math.Ceil(c.Dims.Height()))
	big := image.NewRGBA(image.Rect(0, 0, w*k, h*k))
	bg := paint{st.Background, 1}.nrgba()
	draw.Draw(big, big.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w*k, h*k, big, big.Bounds())
	s := &pngSurface{
		img:    big,
		scale:  float64(k),
		filler: rasterx.NewFiller(w*k, h*k, scanner),
		dasher: rasterx.NewDasher(w*k, h*k, scanner),
		face:   face,
	}
	drawChart(s, c, Highlight(c, opts), st)

	// Scale down to the layout size.
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(img, img.Bounds(), big, big.Bounds(), draw.Src, nil)
	return img, nil
}

type pngSurface struct {
	img    *image.RGBA
	scale  float64
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	face   font.Face

	// origins is the stack of open group origins, in absolute
	// coordinates.
	origins []layout.Point
}

func (s *pngSurface) origin() layout.Point {
	if len(s.origins) == 0 {
		return layout.Point{}
	}
	return s.origins[len(s.origins)-1]
}

// fix converts a layout point in the current group to a device point.
func (s *pngSurface) fix(p layout.Point) fixed.Point26_6 {
	o := s.origin()
	return rasterx.ToFixedP((o.X+p.X)*s.scale, (o.Y+p.Y)*s.scale)
}

func (s *pngSurface) group(class string, origin layout.Point, title string) {
	o := s.origin()
	s.origins = append(s.origins, layout.Point{X: o.X + origin.X, Y: o.Y + origin.Y})
}

func (s *pngSurface) end() {
	s.origins = s.origins[:len(s.origins)-1]
}

func (s *pngSurface) rect(class string, r layout.Rect, fill paint) {
	if fill.opacity == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	f := s.filler
	f.Clear()
	f.SetColor(fill.nrgba())
	f.Start(s.fix(layout.Point{X: r.X, Y: r.Y}))
	f.Line(s.fix(layout.Point{X: r.X + r.W, Y: r.Y}))
	f.Line(s.fix(layout.Point{X: r.X + r.W, Y: r.Y + r.H}))
	f.Line(s.fix(layout.Point{X: r.X, Y: r.Y + r.H}))
	f.Stop(true)
	f.Draw()
}

func (s *pngSurface) text(class string, l layout.Label, fill paint) {
	if l.Text == "" {
		return
	}
	dot := s.fix(layout.Point{X: l.X, Y: l.Y})
	switch l.Anchor {
	case layout.AnchorMiddle:
		dot.X -= font.MeasureString(s.face, l.Text) / 2
	case layout.AnchorEnd:
		dot.X -= font.MeasureString(s.face, l.Text)
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(fill.nrgba()),
		Face: s.face,
		Dot:  dot,
	}
	d.DrawString(l.Text)
}

func (s *pngSurface) path(class string, p layout.Path, width float64, stroke paint) {
	if len(p) == 0 {
		return
	}
	d := s.dasher
	d.Clear()
	d.SetStroke(fixed.Int26_6(width*s.scale*64), 4<<6, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip, nil, 0)
	d.SetColor(stroke.nrgba())
	for _, seg := range p {
		switch seg.Op {
		case layout.MoveTo:
			d.Start(s.fix(seg.Pts[0]))
		case layout.LineTo:
			d.Line(s.fix(seg.Pts[0]))
		case layout.CubeTo:
			d.CubeBezier(s.fix(seg.Pts[0]), s.fix(seg.Pts[1]), s.fix(seg.Pts[2]))
		}
	}
	d.Stop(false)
	d.Draw()
}
