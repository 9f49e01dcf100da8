// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/gradviz/disciplines/discipline"
)

// ChordRef identifies a chord by the dimension of its flow diagram and
// its index in FlowGeometry.Chords.
type ChordRef struct {
	Dimension discipline.Dimension
	N         int
}

// Detail is one captioned value describing a highlighted element.
type Detail struct {
	Caption string
	Value   string
}

// A Highlight is the set of chart elements to emphasize in response to
// hovering over a discipline row or a flow source.
//
// A nil *Highlight emphasizes nothing.
type Highlight struct {
	Rows    map[string]bool
	Sources map[discipline.Group]bool
	Chords  map[ChordRef]bool

	Details []Detail
}

// Row reports whether the named discipline row is emphasized.
func (h *Highlight) Row(name string) bool {
	return h != nil && h.Rows[name]
}

// Source reports whether g's flow source is emphasized.
func (h *Highlight) Source(g discipline.Group) bool {
	return h != nil && h.Sources[g]
}

// Chord reports whether chord n of the flow diagram of dim is
// emphasized.
func (h *Highlight) Chord(dim discipline.Dimension, n int) bool {
	return h != nil && h.Chords[ChordRef{dim, n}]
}

func newHighlight() *Highlight {
	return &Highlight{
		Rows:    make(map[string]bool),
		Sources: make(map[discipline.Group]bool),
		Chords:  make(map[ChordRef]bool),
	}
}

// HighlightDiscipline returns the elements emphasized by hovering over
// the named discipline row: the row and every chord ending at it. The
// details are the row's value for each group. ok is false if c has no
// such row.
func (c *Chart) HighlightDiscipline(name string) (h *Highlight, ok bool) {
	if _, found := c.Row(name); !found {
		return nil, false
	}
	h = newHighlight()
	h.Rows[name] = true
	for _, fg := range c.Flows() {
		for n, ch := range fg.Chords {
			if ch.Discipline == name {
				h.Chords[ChordRef{fg.Dimension, n}] = true
			}
		}
	}

	sel := c.Selection
	for _, row := range c.GenderBars {
		if row.Discipline != name {
			continue
		}
		for _, g := range discipline.GenderOrder {
			h.Details = append(h.Details, Detail{discipline.RowCaption(sel, g), discipline.Format(sel, row.Values[g])})
		}
	}
	var eth *EthnicityRow
	for i := range c.EthnicityBars {
		if c.EthnicityBars[i].Discipline == name {
			eth = &c.EthnicityBars[i]
		}
	}
	for _, e := range discipline.EthnicityOrder {
		d := Detail{Caption: discipline.RowCaption(sel, e)}
		if eth != nil {
			d.Value = discipline.Format(sel, eth.Values[e])
		}
		h.Details = append(h.Details, d)
	}
	return h, true
}

// HighlightGroup returns the elements emphasized by hovering over g's
// flow source: the source and every chord leaving it. The detail is
// the group's total. ok is false if c has no flow source for g.
func (c *Chart) HighlightGroup(g discipline.Group) (h *Highlight, ok bool) {
	for _, fg := range c.Flows() {
		for _, src := range fg.Sources {
			if src.Group != g {
				continue
			}
			h = newHighlight()
			h.Sources[g] = true
			for n, ch := range fg.Chords {
				if ch.Group == g {
					h.Chords[ChordRef{fg.Dimension, n}] = true
				}
			}
			h.Details = []Detail{{
				discipline.FlowCaption(c.Selection, g),
				discipline.Format(c.Selection, src.Value),
			}}
			return h, true
		}
	}
	return nil, false
}

// Union returns the elements emphasized by either h or o.
func (h *Highlight) Union(o *Highlight) *Highlight {
	if h == nil {
		return o
	} else if o == nil {
		return h
	}
	u := newHighlight()
	for _, x := range []*Highlight{h, o} {
		for k := range x.Rows {
			u.Rows[k] = true
		}
		for k := range x.Sources {
			u.Sources[k] = true
		}
		for k := range x.Chords {
			u.Chords[k] = true
		}
		u.Details = append(u.Details, x.Details...)
	}
	return u
}
