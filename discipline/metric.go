// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

import "fmt"

// Metric is a measured quantity.
type Metric int

const (
	// Size is the employed working-age population.
	Size Metric = iota
	// Unemployment is the unemployment rate.
	Unemployment
	// Earnings is median income. There is no ethnicity breakdown
	// for Earnings.
	Earnings
)

// Metrics lists every Metric.
var Metrics = []Metric{Size, Unemployment, Earnings}

func (m Metric) String() string {
	switch m {
	case Size:
		return "size"
	case Unemployment:
		return "unemployment"
	case Earnings:
		return "earnings"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Has reports whether records for m carry the d sub-grouping.
func (m Metric) Has(d Dimension) bool {
	return !(m == Earnings && d == ByEthnicity)
}

// ParseMetric parses the data-source name of a metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Calc is the method used to express a metric: raw numbers,
// relative to everyone holding the degree, or relative to the
// population subgroup.
type Calc int

const (
	Population Calc = iota
	Percent
	PercentByPopGroup
)

// Calcs lists every Calc.
var Calcs = []Calc{Population, Percent, PercentByPopGroup}

func (c Calc) String() string {
	switch c {
	case Population:
		return "population"
	case Percent:
		return "percent"
	case PercentByPopGroup:
		return "percent_by_pop_group"
	}
	return fmt.Sprintf("Calc(%d)", int(c))
}

// ParseCalc parses the data-source name of a calculation method.
func ParseCalc(s string) (Calc, error) {
	for _, c := range Calcs {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown calculation method %q", s)
}

// Selection is the metric and calculation method to display.
type Selection struct {
	Metric Metric
	Calc   Calc
}

// DefaultSelection is the selection shown when nothing else is
// requested.
var DefaultSelection = Selection{Size, Population}

// Validate returns an error if s is a combination the data does not
// support. There are no unemployment figures relative to the
// population subgroup.
func (s Selection) Validate() error {
	if s.Metric == Unemployment && s.Calc == PercentByPopGroup {
		return fmt.Errorf("metric %s is not available as %s", s.Metric, s.Calc)
	}
	return nil
}

func (s Selection) String() string {
	return s.Metric.String() + "/" + s.Calc.String()
}
