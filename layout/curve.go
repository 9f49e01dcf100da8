// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"strconv"
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// dot4 returns the weighted sum of p.
func dot4(w [4]float64, p [4]Point) Point {
	return p[0].mul(w[0]).add(p[1].mul(w[1])).add(p[2].mul(w[2])).add(p[3].mul(w[3]))
}

// Op is a path drawing operation.
type Op int

const (
	MoveTo Op = iota
	LineTo
	CubeTo
)

// Segment is one operation of a Path. MoveTo and LineTo use Pts[0];
// CubeTo uses Pts[0] and Pts[1] as control points and Pts[2] as the
// end point.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// End returns the point at which s leaves the pen.
func (s Segment) End() Point {
	if s.Op == CubeTo {
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Path is a sequence of drawing operations.
type Path []Segment

// String returns p in SVG path data syntax.
func (p Path) String() string {
	var buf []byte
	pt := func(q Point) {
		buf = strconv.AppendFloat(buf, q.X, 'g', 6, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, q.Y, 'g', 6, 64)
	}
	for _, s := range p {
		switch s.Op {
		case MoveTo:
			buf = append(buf, 'M')
			pt(s.Pts[0])
		case LineTo:
			buf = append(buf, 'L')
			pt(s.Pts[0])
		case CubeTo:
			buf = append(buf, 'C')
			pt(s.Pts[0])
			buf = append(buf, ',')
			pt(s.Pts[1])
			buf = append(buf, ',')
			pt(s.Pts[2])
		}
	}
	return string(buf)
}

// Polyline returns the path through pts joined by straight lines.
func Polyline(pts []Point) Path {
	if len(pts) == 0 {
		return nil
	}
	p := Path{{Op: MoveTo, Pts: [3]Point{pts[0]}}}
	for _, q := range pts[1:] {
		p = append(p, Segment{Op: LineTo, Pts: [3]Point{q}})
	}
	return p
}

// Weights of the uniform cubic B-spline basis converted to Bezier
// form.
var (
	basisCtrl1 = [4]float64{0, 2.0 / 3, 1.0 / 3, 0}
	basisCtrl2 = [4]float64{0, 1.0 / 3, 2.0 / 3, 0}
	basisEnd   = [4]float64{0, 1.0 / 6, 2.0 / 3, 1.0 / 6}
)

// Basis returns a smooth path that starts at pts[0], ends at the
// last point, and is pulled toward the points in between, using
// the uniform cubic B-spline with clamped end points. The path
// opens and closes with short straight runs into the spline.
//
// With fewer than 3 points, Basis returns a Polyline.
func Basis(pts []Point) Path {
	n := len(pts)
	if n < 3 {
		return Polyline(pts)
	}

	// Slide a 4-point window over the points with the first point
	// tripled and the last point doubled.
	w := [4]Point{pts[0], pts[0], pts[0], pts[1]}
	p := Path{
		{Op: MoveTo, Pts: [3]Point{pts[0]}},
		{Op: LineTo, Pts: [3]Point{dot4(basisEnd, w)}},
	}
	for i := 2; i <= n; i++ {
		next := pts[n-1]
		if i < n {
			next = pts[i]
		}
		w = [4]Point{w[1], w[2], w[3], next}
		p = append(p, Segment{Op: CubeTo, Pts: [3]Point{
			dot4(basisCtrl1, w),
			dot4(basisCtrl2, w),
			dot4(basisEnd, w),
		}})
	}
	p = append(p, Segment{Op: LineTo, Pts: [3]Point{pts[n-1]}})
	return p
}
