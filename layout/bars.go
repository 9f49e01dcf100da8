// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/gradviz/disciplines/discipline"
)

// Rect is an axis-aligned rectangle with its top-left corner at
// (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Anchor is the horizontal alignment of a Label relative to its
// position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "start"
}

// Label is a text label whose baseline starts at (X, Y).
type Label struct {
	X, Y   float64
	Text   string
	Anchor Anchor
}

// GenderRow is the gender bar geometry of one discipline row, in the
// row's coordinate space.
type GenderRow struct {
	Discipline string
	Index      int

	// Men grows leftward and Women grows rightward from a shared
	// center line.
	Men, Women Rect

	Values [2]float64
}

// EthnicityRow is the ethnicity bar geometry of one discipline row,
// in the row's coordinate space. Bars, Labels, and Values are indexed
// by discipline.Ethnicity.
type EthnicityRow struct {
	Discipline string
	Index      int

	Bars   [4]Rect
	Labels [4]Label
	Values [4]float64
}

// GenderBars lays out the men and women bars of every discipline in
// ds that appears in order, in order. If order is nil, it uses
// discipline.DisciplineOrder.
//
// Both bars of all rows share one scale whose domain is the largest
// gender value of m over order. The men's bar ends at the center
// line SectionWidth*2-SectionPadding and grows left; the women's bar
// starts at SectionWidth*2 and grows right.
func GenderBars(ds *discipline.Dataset, m discipline.Metric, order []string, dims Dimensions) ([]GenderRow, error) {
	max, err := MaxByGender(ds, m, order)
	if err != nil {
		return nil, err
	}
	sc := NewScale(max, dims.genderBarWidth())

	y := dims.DisciplineHeight/2 - dims.BarThickness
	center := dims.SectionWidth*2 - dims.SectionPadding
	var rows []GenderRow
	for i, e := range ds.Entries(order) {
		row := GenderRow{Discipline: e.Name, Index: i}
		for _, g := range discipline.GenderOrder {
			row.Values[g], err = ds.Value(e.Name, m, g)
			if err != nil {
				return nil, err
			}
		}

		w := sc.Map(row.Values[discipline.Men])
		row.Men = Rect{X: center - w, Y: y, W: w, H: dims.BarThickness}
		w = sc.Map(row.Values[discipline.Women])
		row.Women = Rect{X: dims.SectionWidth * 2, Y: y, W: w, H: dims.BarThickness}

		rows = append(rows, row)
	}
	return rows, nil
}

// EthnicityBars lays out the four ethnicity bars of every discipline
// in ds that appears in order, in order.
//
// The bars are stacked EthnicityBarStep apart and left-aligned after
// the label reservation in the fourth section. If m has no ethnicity
// breakdown, EthnicityBars returns no rows and no error.
func EthnicityBars(ds *discipline.Dataset, m discipline.Metric, order []string, dims Dimensions) ([]EthnicityRow, error) {
	max, ok, err := MaxByEthnicity(ds, m, order)
	if err != nil || !ok {
		return nil, err
	}
	sc := NewScale(max, dims.ethnicityBarWidth())

	x := dims.SectionWidth*3 + dims.EthnicityBarPadding
	var rows []EthnicityRow
	for i, e := range ds.Entries(order) {
		row := EthnicityRow{Discipline: e.Name, Index: i}
		for k, eth := range discipline.EthnicityOrder {
			v, err := ds.Value(e.Name, m, eth)
			if err != nil {
				return nil, err
			}
			y := dims.EthnicityBarTop + float64(k)*dims.EthnicityBarStep
			row.Values[eth] = v
			row.Bars[eth] = Rect{X: x, Y: y, W: sc.Map(v), H: dims.BarThickness}
			row.Labels[eth] = Label{X: x - 2, Y: y + 3, Text: eth.Label(), Anchor: AnchorEnd}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
