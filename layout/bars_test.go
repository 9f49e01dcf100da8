// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/gradviz/disciplines/discipline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenderBarsMirrored(t *testing.T) {
	const name = "Art / humanities other"
	ds := discipline.NewDataset(discipline.Population)
	ds.Set(name, discipline.Earnings, discipline.StatRecord{ByGender: [2]float64{118, 118}})

	dims := DefaultDimensions
	rows, err := GenderBars(ds, discipline.Earnings, []string{name}, dims)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	w := dims.SectionWidth - dims.SectionPadding
	anchor := dims.SectionWidth*2 - dims.SectionPadding
	assert.Equal(t, Rect{X: anchor - w, Y: 15, W: w, H: 5}, rows[0].Men)
	assert.Equal(t, Rect{X: dims.SectionWidth * 2, Y: 15, W: w, H: 5}, rows[0].Women)
	assert.Equal(t, 180.0, rows[0].Men.X)
	assert.Equal(t, 360.0, rows[0].Women.X)

	// The two bars meet across the padding gap.
	assert.Equal(t, dims.SectionPadding, rows[0].Women.X-(rows[0].Men.X+rows[0].Men.W))
}

func TestGenderBars(t *testing.T) {
	ds := testDataset(t)
	rows, err := GenderBars(ds, discipline.Earnings, testOrder, DefaultDimensions)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	art, bio := rows[0], rows[1]
	assert.Equal(t, testOrder[0], art.Discipline)
	assert.Equal(t, 0, art.Index)
	assert.Equal(t, testOrder[1], bio.Discipline)
	assert.Equal(t, 1, bio.Index)

	assert.Equal(t, [2]float64{118, 88}, art.Values)
	assert.InDelta(t, 176, art.Men.W, 1e-9)
	assert.InDelta(t, 88.0/118*176, art.Women.W, 1e-9)
	assert.InDelta(t, 110.0/118*176, bio.Men.W, 1e-9)
	for _, row := range rows {
		// Men's bars always end at the center line.
		assert.InDelta(t, 356, row.Men.X+row.Men.W, 1e-9)
		assert.Equal(t, 360.0, row.Women.X)
	}
}

func TestGenderBarsIdempotent(t *testing.T) {
	ds := testDataset(t)
	a, err := GenderBars(ds, discipline.Size, testOrder, DefaultDimensions)
	require.NoError(t, err)
	b, err := GenderBars(ds, discipline.Size, testOrder, DefaultDimensions)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := EthnicityBars(ds, discipline.Size, testOrder, DefaultDimensions)
	require.NoError(t, err)
	d, err := EthnicityBars(ds, discipline.Size, testOrder, DefaultDimensions)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestBarsOrder(t *testing.T) {
	ds := discipline.NewDataset(discipline.Population)
	rec := discipline.StatRecord{ByGender: [2]float64{1, 2}}
	ds.Set("Underwater basket weaving", discipline.Size, rec)
	ds.Set(testOrder[1], discipline.Size, rec)
	ds.Set(testOrder[0], discipline.Size, rec)

	rows, err := GenderBars(ds, discipline.Size, testOrder, DefaultDimensions)
	require.NoError(t, err)
	var names []string
	for _, row := range rows {
		names = append(names, row.Discipline)
	}
	assert.Equal(t, testOrder, names)
}

func TestEthnicityBarsProportional(t *testing.T) {
	const name = "Art / humanities other"
	ds := discipline.NewDataset(discipline.Population)
	ds.Set(name, discipline.Size, discipline.StatRecord{
		ByEthnicity: &[4]float64{100, 75, 50, 25},
	})

	dims := DefaultDimensions
	rows, err := EthnicityBars(ds, discipline.Size, []string{name}, dims)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	w := dims.SectionWidth - dims.SectionPadding - dims.EthnicityBarPadding
	require.Equal(t, 116.0, w)
	for k, frac := range []float64{1, 0.75, 0.5, 0.25} {
		bar := rows[0].Bars[k]
		assert.InDelta(t, w*frac, bar.W, 1e-9, "bar %d", k)
		assert.Equal(t, 600.0, bar.X, "bar %d", k)
		assert.Equal(t, 3+8*float64(k), bar.Y, "bar %d", k)
		assert.Equal(t, 5.0, bar.H, "bar %d", k)

		label := rows[0].Labels[k]
		assert.Equal(t, Label{X: 598, Y: 6 + 8*float64(k), Text: discipline.EthnicityOrder[k].Label(), Anchor: AnchorEnd}, label)
	}
}

func TestEthnicityBarsEarnings(t *testing.T) {
	ds := testDataset(t)
	rows, err := EthnicityBars(ds, discipline.Earnings, testOrder, DefaultDimensions)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBarsAllZero(t *testing.T) {
	const name = "Engineering"
	ds := discipline.NewDataset(discipline.Percent)
	ds.Set(name, discipline.Unemployment, discipline.StatRecord{ByEthnicity: &[4]float64{}})

	rows, err := GenderBars(ds, discipline.Unemployment, []string{name}, DefaultDimensions)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rows[0].Men.W)
	assert.Equal(t, 356.0, rows[0].Men.X)
	assert.Equal(t, 0.0, rows[0].Women.W)

	erows, err := EthnicityBars(ds, discipline.Unemployment, []string{name}, DefaultDimensions)
	require.NoError(t, err)
	for _, bar := range erows[0].Bars {
		assert.Equal(t, 0.0, bar.W)
	}
}
