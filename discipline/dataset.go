// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discipline models statistics on bachelor's degree holders
// broken down by discipline, gender, and ethnicity.
//
// A Document holds one Dataset per calculation method. A Dataset maps
// each discipline (plus the "Total" pseudo-discipline) and metric to a
// StatRecord.
package discipline

import "sort"

// StatRecord is the value of one metric for one discipline.
type StatRecord struct {
	// ByGender is indexed by Gender.
	ByGender [numGenders]float64

	// ByEthnicity is indexed by Ethnicity. It is nil if the
	// metric has no ethnicity breakdown.
	ByEthnicity *[numEthnicities]float64

	Total float64
}

// Value returns the value of r for group g. It returns false if r
// does not carry g's dimension.
func (r *StatRecord) Value(g Group) (float64, bool) {
	switch g := g.(type) {
	case Gender:
		return r.ByGender[g], true
	case Ethnicity:
		if r.ByEthnicity == nil {
			return 0, false
		}
		return r.ByEthnicity[g], true
	}
	return 0, false
}

// Dataset is the set of statistics for one calculation method.
type Dataset struct {
	Calc Calc

	records map[string]map[Metric]*StatRecord
	names   []string
}

// NewDataset returns an empty Dataset.
func NewDataset(calc Calc) *Dataset {
	return &Dataset{Calc: calc, records: make(map[string]map[Metric]*StatRecord)}
}

// Set records r as the value of metric m for discipline name. It is
// meant for building a Dataset; a Dataset must not be modified once
// it is handed to layout.
func (d *Dataset) Set(name string, m Metric, r StatRecord) {
	ms, ok := d.records[name]
	if !ok {
		ms = make(map[Metric]*StatRecord)
		d.records[name] = ms
		if name != TotalKey {
			d.names = append(d.names, name)
		}
	}
	ms[m] = &r
}

// Lookup returns the record of metric m for discipline name.
func (d *Dataset) Lookup(name string, m Metric) (*StatRecord, error) {
	ms, ok := d.records[name]
	if !ok {
		return nil, &DataShapeError{Discipline: name}
	}
	r, ok := ms[m]
	if !ok {
		return nil, &DataShapeError{Discipline: name, Metric: m.String()}
	}
	return r, nil
}

// Value returns the value of metric m for group g in discipline
// name.
func (d *Dataset) Value(name string, m Metric, g Group) (float64, error) {
	r, err := d.Lookup(name, m)
	if err != nil {
		return 0, err
	}
	v, ok := r.Value(g)
	if !ok {
		return 0, &DataShapeError{Discipline: name, Metric: m.String(), Field: g.Dimension().Key()}
	}
	return v, nil
}

// Total returns the population-wide record for metric m.
func (d *Dataset) Total(m Metric) (*StatRecord, error) {
	return d.Lookup(TotalKey, m)
}

// Names returns the disciplines in d in the order they were added,
// excluding the Total pseudo-discipline.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Entry is one discipline's row of statistics.
type Entry struct {
	Name    string
	Metrics map[Metric]*StatRecord
}

// Entries returns the disciplines of d that appear in order, sorted
// by their position in order. Disciplines not in order are dropped.
// If order is nil, DisciplineOrder is used.
func (d *Dataset) Entries(order []string) []Entry {
	if order == nil {
		order = DisciplineOrder
	}
	var entries []Entry
	for _, name := range d.names {
		if OrderIndex(order, name) < 0 {
			continue
		}
		entries = append(entries, Entry{name, d.records[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return OrderIndex(order, entries[i].Name) < OrderIndex(order, entries[j].Name)
	})
	return entries
}

// Document is a full statistics source: one Dataset per calculation
// method.
type Document struct {
	sets map[Calc]*Dataset
}

// Dataset returns the Dataset for calc.
func (doc *Document) Dataset(calc Calc) (*Dataset, error) {
	ds, ok := doc.sets[calc]
	if !ok {
		return nil, &DataShapeError{Field: calc.String() + " section"}
	}
	return ds, nil
}

// Calcs returns the calculation methods present in doc.
func (doc *Document) Calcs() []Calc {
	var out []Calc
	for _, c := range Calcs {
		if _, ok := doc.sets[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
