// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Scale maps values in [0, DomainMax] linearly to lengths in
// [0, RangeMax]. Values outside the domain extrapolate.
//
// A Scale whose DomainMax is 0, NaN, or infinite maps everything to
// 0.
type Scale struct {
	DomainMax, RangeMax float64

	s    scale.Linear
	zero bool
}

// NewScale returns a Scale from [0, domainMax] to [0, rangeMax].
func NewScale(domainMax, rangeMax float64) Scale {
	zero := domainMax == 0 || math.IsNaN(domainMax) || math.IsInf(domainMax, 0)
	return Scale{
		DomainMax: domainMax,
		RangeMax:  rangeMax,
		s:         scale.Linear{Min: 0, Max: domainMax},
		zero:      zero,
	}
}

// Map returns the length of value v.
func (s Scale) Map(v float64) float64 {
	if s.zero {
		return 0
	}
	// scale.Linear maps the domain to [0, 1].
	return s.s.Map(v) * s.RangeMax
}

// Degenerate reports whether s maps everything to 0.
func (s Scale) Degenerate() bool {
	return s.zero
}
