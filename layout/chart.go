// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/gradviz/disciplines/discipline"
)

// Options control Compute.
type Options struct {
	// Dims is the pixel budget. The zero value means
	// DefaultDimensions.
	Dims Dimensions

	// Order is the display order of disciplines. nil means
	// discipline.DisciplineOrder.
	Order []string
}

// Chart is the complete geometry of one chart for one Selection.
type Chart struct {
	Selection discipline.Selection
	Title     string
	Dims      Dimensions

	Frame *Frame

	GenderBars []GenderRow
	// EthnicityBars is nil if the metric has no ethnicity
	// breakdown.
	EthnicityBars []EthnicityRow

	GenderFlow *FlowGeometry
	// EthnicityFlow is nil if the metric has no ethnicity
	// breakdown.
	EthnicityFlow *FlowGeometry
}

// Compute lays out the whole chart of ds for sel. It returns the first
// error encountered and never partial geometry.
func Compute(ds *discipline.Dataset, sel discipline.Selection, opts Options) (*Chart, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if ds.Calc != sel.Calc {
		return nil, fmt.Errorf("dataset holds %s values, selection %s wants %s", ds.Calc, sel, sel.Calc)
	}
	dims := opts.Dims
	if dims == (Dimensions{}) {
		dims = DefaultDimensions
	}
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	c := &Chart{
		Selection: sel,
		Title:     discipline.Title(sel),
		Dims:      dims,
		Frame:     LayoutFrame(ds, opts.Order, dims),
	}
	var err error
	if c.GenderBars, err = GenderBars(ds, sel.Metric, opts.Order, dims); err != nil {
		return nil, err
	}
	if c.GenderFlow, err = GenderFlow(ds, sel.Metric, opts.Order, dims); err != nil {
		return nil, err
	}
	if !sel.Metric.Has(discipline.ByEthnicity) {
		return c, nil
	}
	if c.EthnicityBars, err = EthnicityBars(ds, sel.Metric, opts.Order, dims); err != nil {
		return nil, err
	}
	if c.EthnicityFlow, err = EthnicityFlow(ds, sel.Metric, opts.Order, dims); err != nil {
		return nil, err
	}
	return c, nil
}

// Flows returns the flow diagrams of c that were laid out.
func (c *Chart) Flows() []*FlowGeometry {
	fs := []*FlowGeometry{c.GenderFlow}
	if c.EthnicityFlow != nil {
		fs = append(fs, c.EthnicityFlow)
	}
	return fs
}

// Row returns the frame row of the named discipline.
func (c *Chart) Row(name string) (*Row, bool) {
	for i := range c.Frame.Rows {
		if c.Frame.Rows[i].Discipline == name {
			return &c.Frame.Rows[i], true
		}
	}
	return nil, false
}
