// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/tidwall/gjson"
)

// Parse reads a statistics document from r.
//
// The document is a JSON object whose top-level keys are calculation
// methods ("population", "percent", "percent_by_pop_group"). Each maps
// discipline names, plus "Total", to an object of metrics, and each
// metric is a StatRecord:
//
//	{"by_gender": {"men": 1, "women": 2},
//	 "by_ethnicity": {"white_not_hispanic": 1, ...},
//	 "total": 3}
//
// Unknown calculation methods and metrics are ignored. The
// by_ethnicity object of the earnings metric is discarded even if
// present, since there is no ethnicity breakdown of earnings.
func Parse(r io.Reader) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, &DataShapeError{Field: "JSON document"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &DataShapeError{Field: "top-level object"}
	}

	doc := &Document{sets: make(map[Calc]*Dataset)}
	for _, calc := range Calcs {
		section := root.Get(calc.String())
		if !section.Exists() {
			continue
		}
		ds, err := parseDataset(calc, section)
		if err != nil {
			return nil, err
		}
		doc.sets[calc] = ds
	}
	if len(doc.sets) == 0 {
		return nil, &DataShapeError{Field: "calculation method section"}
	}
	return doc, nil
}

func parseDataset(calc Calc, section gjson.Result) (*Dataset, error) {
	if !section.IsObject() {
		return nil, &DataShapeError{Field: calc.String() + " section"}
	}
	ds := NewDataset(calc)
	var err error
	section.ForEach(func(name, value gjson.Result) bool {
		for _, m := range Metrics {
			raw := value.Get(m.String())
			if !raw.Exists() {
				continue
			}
			var rec StatRecord
			rec, err = parseRecord(name.String(), m, raw)
			if err != nil {
				return false
			}
			ds.Set(name.String(), m, rec)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func parseRecord(name string, m Metric, raw gjson.Result) (StatRecord, error) {
	var rec StatRecord
	field := func(path string) (float64, error) {
		v := raw.Get(path)
		if v.Type != gjson.Number {
			return 0, &DataShapeError{Discipline: name, Metric: m.String(), Field: path}
		}
		return v.Float(), nil
	}

	for _, g := range GenderOrder {
		v, err := field(ByGender.Key() + "." + g.Key())
		if err != nil {
			return rec, err
		}
		rec.ByGender[g] = v
	}

	if m.Has(ByEthnicity) && raw.Get(ByEthnicity.Key()).Exists() {
		var eth [numEthnicities]float64
		for _, e := range EthnicityOrder {
			v, err := field(ByEthnicity.Key() + "." + e.Key())
			if err != nil {
				return rec, err
			}
			eth[e] = v
		}
		rec.ByEthnicity = &eth
	}

	if t := raw.Get("total"); t.Exists() {
		if t.Type != gjson.Number {
			return rec, &DataShapeError{Discipline: name, Metric: m.String(), Field: "total"}
		}
		rec.Total = t.Float()
	}
	return rec, nil
}

// MustParseString is like Parse, but reads from a string and panics
// on error. It is intended for fixtures.
func MustParseString(s string) *Document {
	doc, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("discipline: %v", err))
	}
	return doc
}
