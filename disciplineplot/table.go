// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/gradviz/disciplines/discipline"
	"github.com/gradviz/disciplines/layout"
)

// primitives accumulates the columns of a geometry table.
type primitives struct {
	kind, disc, group []string
	x, y, w, h        []float64
	value, stroke     []float64
}

func (p *primitives) add(kind, disc string, g discipline.Group, origin layout.Point, r layout.Rect, value, stroke float64) {
	var key string
	if g != nil {
		key = g.Key()
	}
	p.kind = append(p.kind, kind)
	p.disc = append(p.disc, disc)
	p.group = append(p.group, key)
	p.x = append(p.x, origin.X+r.X)
	p.y = append(p.y, origin.Y+r.Y)
	p.w = append(p.w, r.W)
	p.h = append(p.h, r.H)
	p.value = append(p.value, value)
	p.stroke = append(p.stroke, stroke)
}

// chartToTable returns one row per bar, flow source, and chord of c,
// in chart coordinates. Chords are given by their end points.
func chartToTable(c *layout.Chart) *table.Table {
	var p primitives

	for _, row := range c.GenderBars {
		o := rowOrigin(c, row.Discipline)
		p.add("gender bar", row.Discipline, discipline.Men, o, row.Men, row.Values[discipline.Men], 0)
		p.add("gender bar", row.Discipline, discipline.Women, o, row.Women, row.Values[discipline.Women], 0)
	}
	for _, row := range c.EthnicityBars {
		o := rowOrigin(c, row.Discipline)
		for _, eth := range discipline.EthnicityOrder {
			p.add("ethnicity bar", row.Discipline, eth, o, row.Bars[eth], row.Values[eth], 0)
		}
	}
	for _, fl := range c.Flows() {
		for _, src := range fl.Sources {
			p.add("source", "", src.Group, fl.Origin, src.Bar, src.Value, 0)
		}
		for _, ch := range fl.Chords {
			start, end := ch.Points[0], ch.Points[len(ch.Points)-1]
			r := layout.Rect{X: start.X, Y: start.Y, W: end.X - start.X, H: end.Y - start.Y}
			p.add("chord", ch.Discipline, ch.Group, fl.Origin, r, ch.Value, ch.StrokeWidth)
		}
	}

	return new(table.Builder).
		Add("kind", p.kind).
		Add("discipline", p.disc).
		Add("group", p.group).
		Add("x", p.x).
		Add("y", p.y).
		Add("w", p.w).
		Add("h", p.h).
		Add("value", p.value).
		Add("stroke", p.stroke).
		Done()
}

func rowOrigin(c *layout.Chart, name string) layout.Point {
	if row, ok := c.Row(name); ok {
		return row.Origin
	}
	return layout.Point{}
}

// printTable writes the geometry of c to w, grouped by kind.
func printTable(w io.Writer, c *layout.Chart) error {
	table.Fprint(w, table.GroupBy(chartToTable(c), "kind"))
	return nil
}
