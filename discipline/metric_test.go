// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

import (
	"errors"
	"testing"
)

func TestSelectionValidate(t *testing.T) {
	for _, m := range Metrics {
		for _, c := range Calcs {
			err := Selection{m, c}.Validate()
			bad := m == Unemployment && c == PercentByPopGroup
			if bad != (err != nil) {
				t.Errorf("%v/%v: got error %v", m, c, err)
			}
		}
	}
}

func TestParseNames(t *testing.T) {
	for _, m := range Metrics {
		if got, err := ParseMetric(m.String()); err != nil || got != m {
			t.Errorf("ParseMetric(%q) = %v, %v", m, got, err)
		}
	}
	for _, c := range Calcs {
		if got, err := ParseCalc(c.String()); err != nil || got != c {
			t.Errorf("ParseCalc(%q) = %v, %v", c, got, err)
		}
	}
	if _, err := ParseMetric("income"); err == nil {
		t.Errorf("ParseMetric(income) succeeded")
	}
	for _, d := range []Dimension{ByGender, ByEthnicity} {
		for _, g := range d.Groups() {
			got, err := ParseGroup(g.Key())
			if err != nil || got != g {
				t.Errorf("ParseGroup(%q) = %v, %v", g.Key(), got, err)
			}
			if g.Dimension() != d {
				t.Errorf("%v.Dimension() = %v, want %v", g, g.Dimension(), d)
			}
		}
	}
}

func TestMetricHas(t *testing.T) {
	if Earnings.Has(ByEthnicity) {
		t.Errorf("earnings should have no ethnicity breakdown")
	}
	if !Earnings.Has(ByGender) || !Size.Has(ByEthnicity) || !Unemployment.Has(ByEthnicity) {
		t.Errorf("Has reports missing breakdowns")
	}
}

func TestPlacement(t *testing.T) {
	for _, g := range GenderOrder {
		if _, err := GenderPlacement.Fraction(g); err != nil {
			t.Error(err)
		}
	}
	for _, e := range EthnicityOrder {
		if _, err := EthnicityPlacement.Fraction(e); err != nil {
			t.Error(err)
		}
	}
	_, err := GenderPlacement.Fraction(Asian)
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) || cerr.Key != "asian" {
		t.Errorf("want ConfigurationError for asian, got %v", err)
	}
}

func TestTitle(t *testing.T) {
	for _, test := range []struct {
		sel  Selection
		want string
	}{
		{Selection{Size, Population}, "Employed working age population by bachelor's degree held."},
		{Selection{Earnings, Percent}, "Median income by bachelor's degree held as % of all degree holders."},
		{Selection{Unemployment, Percent}, "Unemployment rate by bachelor's degree held as % of all degree holders."},
		{Selection{Size, PercentByPopGroup}, "Employed working age population by bachelor's degree held as % of overall population."},
	} {
		if got := Title(test.sel); got != test.want {
			t.Errorf("Title(%v) = %q, want %q", test.sel, got, test.want)
		}
	}
}

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		sel  Selection
		v    float64
		want string
	}{
		{Selection{Size, Population}, 1234567, "1,234,567"},
		{Selection{Earnings, Population}, 52000, "52,000"},
		{Selection{Size, Percent}, 12.3456, "12.35"},
		{Selection{Unemployment, Population}, 4, "4.00"},
	} {
		if got := Format(test.sel, test.v); got != test.want {
			t.Errorf("Format(%v, %v) = %q, want %q", test.sel, test.v, got, test.want)
		}
	}
}

func TestCaptions(t *testing.T) {
	sel := Selection{Earnings, Population}
	if got := RowCaption(sel, Women); got != "USD for Women with selected degree" {
		t.Errorf("RowCaption = %q", got)
	}
	if got := RowCaption(sel, Asian); got != "" {
		t.Errorf("earnings ethnicity caption = %q, want empty", got)
	}
	if got := FlowCaption(Selection{Unemployment, Percent}, Black); got != "Black % comp. to all with bachelor's" {
		t.Errorf("FlowCaption = %q", got)
	}
}
