// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/gradviz/disciplines/discipline"
)

// Direction selects which side of the chart a flow diagram sits on.
type Direction int

const (
	// Left flow diagrams grow their total bars leftward toward
	// the glyph edge and send chords right.
	Left Direction = iota

	// Right flow diagrams start their total bars at the glyph
	// edge and send chords left.
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// FlowSource is the aggregate total of one group in a flow diagram.
type FlowSource struct {
	Group discipline.Group
	Value float64

	// Y is the vertical position at which this group's chords
	// start.
	Y float64

	Bar         Rect
	Label       Label
	HoverRegion Rect
}

// Chord links one group's source to one discipline row.
type Chord struct {
	Group      discipline.Group
	Discipline string
	// Index is the discipline's row.
	Index int
	Value float64

	// Points are the start point, the two control points, and the
	// end point that Path is interpolated through.
	Points      [4]Point
	Path        Path
	StrokeWidth float64
}

// FlowGeometry is a laid out flow diagram. Positions are relative to
// Origin.
type FlowGeometry struct {
	Direction Direction
	Dimension discipline.Dimension
	Origin    Point

	Sources []FlowSource
	Chords  []Chord

	// Stroke is the scale from a chord's value to its stroke
	// width.
	Stroke Scale
}

// Flow lays out a flow diagram of metric m linking each of groups to
// every discipline of ds in order. Every group must belong to dim.
//
// Each group's total bar is read from the Total pseudo-discipline and
// scaled against the largest total into ChordGlyphSize. Each chord
// runs from the group's placement height to the third of its
// discipline row and is stroked in proportion to its value against
// the largest value of any (group, discipline) pair.
func Flow(ds *discipline.Dataset, m discipline.Metric, groups []discipline.Group, order []string, dim discipline.Dimension, placement discipline.Placement, dir Direction, dims Dimensions) (*FlowGeometry, error) {
	if order == nil {
		order = discipline.DisciplineOrder
	}
	if !m.Has(dim) {
		return nil, &discipline.DataShapeError{Discipline: discipline.TotalKey, Metric: m.String(), Field: dim.Key()}
	}
	for _, g := range groups {
		if g.Dimension() != dim {
			return nil, &discipline.ConfigurationError{Table: dim.Key() + " groups", Key: g.Key()}
		}
	}

	fg := &FlowGeometry{Direction: dir, Dimension: dim}
	if dir == Right {
		fg.Origin = Point{dims.ChordSize + dims.SectionWidth*float64(dims.NumSections), 0}
	}

	// Total bars.
	totals := make([]float64, len(groups))
	ys := make([]float64, len(groups))
	for i, g := range groups {
		v, err := ds.Value(discipline.TotalKey, m, g)
		if err != nil {
			return nil, err
		}
		f, err := placement.Fraction(g)
		if err != nil {
			return nil, err
		}
		totals[i], ys[i] = v, f*dims.TotalHeight
	}
	totalScale := NewScale(maxOf(totals), dims.ChordGlyphSize)
	for i, g := range groups {
		src := FlowSource{Group: g, Value: totals[i], Y: ys[i]}
		w := totalScale.Map(totals[i])
		src.Bar = Rect{Y: ys[i] - dims.TotalBarHeight/2, W: w, H: dims.TotalBarHeight}
		src.Label = Label{Y: ys[i] - 10, Text: g.Label()}
		switch dir {
		case Left:
			src.Bar.X = dims.ChordGlyphSize - w
			src.Label.X, src.Label.Anchor = dims.ChordGlyphSize, AnchorEnd
		case Right:
			src.Bar.X = dims.ChordSize - dims.ChordGlyphSize
			src.Label.X, src.Label.Anchor = dims.ChordSize-dims.ChordGlyphSize, AnchorStart
		}
		src.HoverRegion = Rect{X: 0, Y: ys[i] - 35, W: dims.ChordSize, H: 50}
		fg.Sources = append(fg.Sources, src)
	}

	// Chords. The stroke domain spans every pair, so collect all
	// values before scaling any of them.
	startX, endX := dims.ChordGlyphSize+1, dims.ChordSize-dims.ChordEndInset
	if dir == Right {
		startX, endX = dims.ChordSize-dims.ChordGlyphSize-1, dims.ChordEndInset
	}
	span := endX - startX
	var values []float64
	for gi, g := range groups {
		for i, name := range order {
			v, err := ds.Value(name, m, g)
			if err != nil {
				return nil, err
			}
			startY := ys[gi]
			endY := float64(i+1)*dims.DisciplineHeight + dims.DisciplineHeight/3
			pts := [4]Point{
				{startX, startY},
				{startX + 0.2*span, startY},
				{startX + 0.8*span, endY},
				{endX, endY},
			}
			fg.Chords = append(fg.Chords, Chord{
				Group:      g,
				Discipline: name,
				Index:      i,
				Value:      v,
				Points:     pts,
				Path:       Basis(pts[:]),
			})
			values = append(values, v)
		}
	}
	fg.Stroke = NewScale(maxOf(values), dims.MaxStrokeWidth)
	for i := range fg.Chords {
		fg.Chords[i].StrokeWidth = fg.Stroke.Map(fg.Chords[i].Value)
	}
	return fg, nil
}

// GenderFlow lays out the left flow diagram from the gender totals to
// each discipline.
func GenderFlow(ds *discipline.Dataset, m discipline.Metric, order []string, dims Dimensions) (*FlowGeometry, error) {
	return Flow(ds, m, discipline.GenderOrder.Groups(), order, discipline.ByGender, discipline.GenderPlacement, Left, dims)
}

// EthnicityFlow lays out the right flow diagram from the ethnicity
// totals to each discipline. Callers must not invoke it for a metric
// without an ethnicity breakdown.
func EthnicityFlow(ds *discipline.Dataset, m discipline.Metric, order []string, dims Dimensions) (*FlowGeometry, error) {
	return Flow(ds, m, discipline.EthnicityOrder.Groups(), order, discipline.ByEthnicity, discipline.EthnicityPlacement, Right, dims)
}

// maxOf returns the largest of xs, or 0 if xs is empty.
func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	_, max := stats.Bounds(xs)
	return max
}
