// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPoint(t *testing.T, want, got Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msgAndArgs...)
}

func TestBasis(t *testing.T) {
	pts := []Point{{0, 0}, {6, 0}, {12, 6}, {18, 6}}
	want := Path{
		{Op: MoveTo, Pts: [3]Point{{0, 0}}},
		{Op: LineTo, Pts: [3]Point{{1, 0}}},
		{Op: CubeTo, Pts: [3]Point{{2, 0}, {4, 0}, {6, 1}}},
		{Op: CubeTo, Pts: [3]Point{{8, 2}, {10, 4}, {12, 5}}},
		{Op: CubeTo, Pts: [3]Point{{14, 6}, {16, 6}, {17, 6}}},
		{Op: LineTo, Pts: [3]Point{{18, 6}}},
	}

	got := Basis(pts)
	require.Len(t, got, len(want))
	for i := range want {
		require.Equal(t, want[i].Op, got[i].Op, "segment %d", i)
		n := 1
		if want[i].Op == CubeTo {
			n = 3
		}
		for j := 0; j < n; j++ {
			assertPoint(t, want[i].Pts[j], got[i].Pts[j], "segment %d point %d", i, j)
		}
	}

	// The curve starts and ends exactly at the outer points.
	assert.Equal(t, pts[0], got[0].End())
	assert.Equal(t, pts[3], got[len(got)-1].End())
}

func TestBasisShort(t *testing.T) {
	assert.Nil(t, Basis(nil))

	pts := []Point{{0, 0}, {10, 5}}
	assert.Equal(t, Polyline(pts), Basis(pts))
}

func TestPathString(t *testing.T) {
	p := Path{
		{Op: MoveTo, Pts: [3]Point{{0, 0}}},
		{Op: LineTo, Pts: [3]Point{{1.5, 2}}},
		{Op: CubeTo, Pts: [3]Point{{2, 0}, {4, 0}, {6, 1}}},
	}
	assert.Equal(t, "M0,0L1.5,2C2,0,4,0,6,1", p.String())
	assert.Equal(t, "", Path(nil).String())
}
