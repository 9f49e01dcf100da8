// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/gradviz/disciplines/discipline"
)

// MaxAcross returns the maximum value of metric m across groups over
// every discipline in order. If order is nil, it uses
// discipline.DisciplineOrder. Every group must belong to the same
// dimension.
//
// If m has no breakdown along the groups' dimension (earnings by
// ethnicity), MaxAcross returns ok == false and no error. A
// discipline, metric, or sub-grouping missing from ds is a
// *discipline.DataShapeError. An empty order or group list yields
// 0.
func MaxAcross(ds *discipline.Dataset, m discipline.Metric, groups []discipline.Group, order []string) (max float64, ok bool, err error) {
	if order == nil {
		order = discipline.DisciplineOrder
	}
	if len(groups) == 0 || len(order) == 0 {
		return 0, true, nil
	}
	if !m.Has(groups[0].Dimension()) {
		return 0, false, nil
	}

	perDiscipline := make([]float64, 0, len(order))
	vals := make([]float64, len(groups))
	for _, name := range order {
		for i, g := range groups {
			vals[i], err = ds.Value(name, m, g)
			if err != nil {
				return 0, false, err
			}
		}
		_, dmax := stats.Bounds(vals)
		perDiscipline = append(perDiscipline, dmax)
	}
	_, max = stats.Bounds(perDiscipline)
	return max, true, nil
}

// MaxByGender returns the maximum of metric m between men and women
// over the disciplines in order.
func MaxByGender(ds *discipline.Dataset, m discipline.Metric, order []string) (float64, error) {
	max, _, err := MaxAcross(ds, m, discipline.GenderOrder.Groups(), order)
	return max, err
}

// MaxByEthnicity returns the maximum of metric m across every
// ethnicity over the disciplines in order. ok is false if m has no
// ethnicity breakdown.
func MaxByEthnicity(ds *discipline.Dataset, m discipline.Metric, order []string) (max float64, ok bool, err error) {
	return MaxAcross(ds, m, discipline.EthnicityOrder.Groups(), order)
}
