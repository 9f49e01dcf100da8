// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gradviz/disciplines/discipline"
	"github.com/gradviz/disciplines/layout"
	"github.com/gradviz/disciplines/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrder = []string{"Physical sciences", "Psychology"}

const testDoc = `{
  "percent": {
    "Physical sciences": {
      "size": {"by_gender": {"men": 60, "women": 40},
               "by_ethnicity": {"white_not_hispanic": 70, "asian": 15,
                                "black_or_african_american": 7, "hispanic_or_latino": 8},
               "total": 100},
      "earnings": {"by_gender": {"men": 120, "women": 95}, "total": 110}
    },
    "Psychology": {
      "size": {"by_gender": {"men": 25, "women": 75},
               "by_ethnicity": {"white_not_hispanic": 68, "asian": 6,
                                "black_or_african_american": 12, "hispanic_or_latino": 14},
               "total": 100},
      "earnings": {"by_gender": {"men": 90, "women": 80}, "total": 85}
    },
    "Total": {
      "size": {"by_gender": {"men": 48, "women": 52},
               "by_ethnicity": {"white_not_hispanic": 69, "asian": 9,
                                "black_or_african_american": 10, "hispanic_or_latino": 12},
               "total": 100},
      "earnings": {"by_gender": {"men": 100, "women": 80}, "total": 90}
    }
  }
}`

func testChart(t *testing.T, m discipline.Metric) *layout.Chart {
	t.Helper()
	ds, err := discipline.MustParseString(testDoc).Dataset(discipline.Percent)
	require.NoError(t, err)
	c, err := layout.Compute(ds, discipline.Selection{Metric: m, Calc: discipline.Percent}, layout.Options{Order: testOrder})
	require.NoError(t, err)
	return c
}

func TestChartToTable(t *testing.T) {
	c := testChart(t, discipline.Size)
	tab := chartToTable(c)

	// 2 rows of 2 gender bars and 4 ethnicity bars, 2+4 sources, and
	// one chord per source and row.
	assert.Equal(t, 2*2+2*4+6+6*2, tab.Len())

	kinds := tab.Column("kind").([]string)
	discs := tab.Column("discipline").([]string)
	groups := tab.Column("group").([]string)
	xs := tab.Column("x").([]float64)
	ys := tab.Column("y").([]float64)
	values := tab.Column("value").([]float64)

	// The second row's women bar sits right of the center line in
	// the second discipline row.
	i := 3
	assert.Equal(t, "gender bar", kinds[i])
	assert.Equal(t, testOrder[1], discs[i])
	assert.Equal(t, "women", groups[i])
	assert.Equal(t, 75.0, values[i])
	row, ok := c.Row(testOrder[1])
	require.True(t, ok)
	assert.Equal(t, row.Origin.X+c.GenderBars[1].Women.X, xs[i])
	assert.Equal(t, row.Origin.Y+c.GenderBars[1].Women.Y, ys[i])

	for k, kind := range kinds {
		if kind == "chord" {
			assert.NotEmpty(t, discs[k])
			assert.NotEmpty(t, groups[k])
		}
	}
}

func TestChartToTableEarnings(t *testing.T) {
	tab := chartToTable(testChart(t, discipline.Earnings))
	assert.Equal(t, 2*2+2+2*2, tab.Len())
	for _, kind := range tab.Column("kind").([]string) {
		assert.NotEqual(t, "ethnicity bar", kind)
	}
}

func TestWriteChart(t *testing.T) {
	c := testChart(t, discipline.Size)

	var buf bytes.Buffer
	require.NoError(t, writeChart(&buf, c, "table", render.Options{}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "kind"))
	for _, kind := range []string{"gender bar", "ethnicity bar", "source", "chord"} {
		assert.Contains(t, out, "-- /"+kind+"\n")
	}

	buf.Reset()
	require.NoError(t, writeChart(&buf, c, "svg", render.Options{}))
	assert.Contains(t, buf.String(), "<svg")

	assert.Error(t, writeChart(&buf, c, "gif", render.Options{}))
}
