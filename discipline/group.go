// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

import "fmt"

// A Group is one population subgroup that a StatRecord breaks a
// metric down by. Gender and Ethnicity are the only Groups.
type Group interface {
	// Key returns the name of this group in the data source, such
	// as "men" or "hispanic_or_latino".
	Key() string

	// Label returns a short human-readable name for this group.
	Label() string

	// Dimension returns the sub-grouping this group belongs to.
	Dimension() Dimension
}

// Gender is a Group of the ByGender dimension.
type Gender int

const (
	Men Gender = iota
	Women

	numGenders = iota
)

func (g Gender) Key() string {
	switch g {
	case Men:
		return "men"
	case Women:
		return "women"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

func (g Gender) Label() string {
	switch g {
	case Men:
		return "Men"
	case Women:
		return "Women"
	}
	return g.Key()
}

func (g Gender) Dimension() Dimension { return ByGender }

func (g Gender) String() string { return g.Key() }

// Ethnicity is a Group of the ByEthnicity dimension.
type Ethnicity int

const (
	White Ethnicity = iota
	Asian
	Black
	Hispanic

	numEthnicities = iota
)

func (e Ethnicity) Key() string {
	switch e {
	case White:
		return "white_not_hispanic"
	case Asian:
		return "asian"
	case Black:
		return "black_or_african_american"
	case Hispanic:
		return "hispanic_or_latino"
	}
	return fmt.Sprintf("Ethnicity(%d)", int(e))
}

func (e Ethnicity) Label() string {
	switch e {
	case White:
		return "White"
	case Asian:
		return "Asian"
	case Black:
		return "Black, Af Am."
	case Hispanic:
		return "Hispanic, Latino"
	}
	return e.Key()
}

func (e Ethnicity) Dimension() Dimension { return ByEthnicity }

func (e Ethnicity) String() string { return e.Key() }

// Dimension identifies a sub-grouping of a StatRecord.
type Dimension int

const (
	ByGender Dimension = iota
	ByEthnicity
)

// Key returns the name of the sub-grouping in the data source.
func (d Dimension) Key() string {
	switch d {
	case ByGender:
		return "by_gender"
	case ByEthnicity:
		return "by_ethnicity"
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

func (d Dimension) String() string { return d.Key() }

// Groups returns the canonical ordering of the groups in d.
func (d Dimension) Groups() []Group {
	switch d {
	case ByGender:
		return GenderOrder.Groups()
	case ByEthnicity:
		return EthnicityOrder.Groups()
	}
	return nil
}

// ParseGroup returns the Group whose Key is key.
func ParseGroup(key string) (Group, error) {
	for _, g := range GenderOrder {
		if g.Key() == key {
			return g, nil
		}
	}
	for _, e := range EthnicityOrder {
		if e.Key() == key {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown group %q", key)
}
