// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

// DisciplineOrder is the order in which disciplines are displayed,
// top to bottom.
var DisciplineOrder = []string{
	"Computers, maths, and stats",
	"Engineering",
	"Physical and related sci",
	"Bio, agricult, and enviro sci",
	"Psychology",
	"Social sciences",
	"Multidisciplinary studies",
	"Sci / eng related",
	"Business",
	"Education",
	"Literature / languages",
	"Liberal arts / history",
	"Visual / performing arts",
	"Communications",
	"Art / humanities other",
}

// TotalKey is the pseudo-discipline holding population-wide totals.
const TotalKey = "Total"

// Genders is an ordered list of genders.
type Genders []Gender

// Groups returns gs as a list of Groups.
func (gs Genders) Groups() []Group {
	out := make([]Group, len(gs))
	for i, g := range gs {
		out[i] = g
	}
	return out
}

// Ethnicities is an ordered list of ethnicities.
type Ethnicities []Ethnicity

// Groups returns es as a list of Groups.
func (es Ethnicities) Groups() []Group {
	out := make([]Group, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// GenderOrder is the order in which genders are displayed.
var GenderOrder = Genders{Men, Women}

// EthnicityOrder is the order in which ethnicities are displayed.
var EthnicityOrder = Ethnicities{White, Asian, Black, Hispanic}

// A Placement maps each group to the fraction of the total chart
// height, from the top, at which that group's flow source sits.
type Placement map[Group]float64

// Fraction returns the placement of g, or a *ConfigurationError if
// the table has no entry for g.
func (p Placement) Fraction(g Group) (float64, error) {
	f, ok := p[g]
	if !ok {
		return 0, &ConfigurationError{Table: "placement", Key: g.Key()}
	}
	return f, nil
}

// GenderPlacement places the gender flow sources in the left chord
// diagram.
var GenderPlacement = Placement{
	Men:   1.0 / 3,
	Women: 2.0 / 3,
}

// EthnicityPlacement places the ethnicity flow sources in the right
// chord diagram.
var EthnicityPlacement = Placement{
	White:    0.2,
	Asian:    0.4,
	Black:    0.6,
	Hispanic: 0.8,
}

// OrderIndex returns the position of name in order, or -1.
func OrderIndex(order []string, name string) int {
	for i, o := range order {
		if o == name {
			return i
		}
	}
	return -1
}
