// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Title returns the chart title for s.
func Title(s Selection) string {
	var metric, calc string
	switch s.Metric {
	case Size:
		metric = "Employed working age population by bachelor's degree held"
	case Unemployment:
		metric = "Unemployment rate by bachelor's degree held"
	case Earnings:
		metric = "Median income by bachelor's degree held"
	}
	switch s.Calc {
	case Population:
		calc = "."
	case Percent:
		calc = " as % of all degree holders."
	case PercentByPopGroup:
		calc = " as % of overall population."
	}
	return metric + calc
}

var printer = message.NewPrinter(language.English)

// FormatComma formats v with thousands separators.
func FormatComma(v float64) string {
	return printer.Sprint(number.Decimal(v))
}

// FormatDecimal formats v rounded to the hundredths place.
func FormatDecimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Format formats a value of selection s for display.
func Format(s Selection, v float64) string {
	if s.Calc == Population && (s.Metric == Size || s.Metric == Earnings) {
		return FormatComma(v)
	}
	return FormatDecimal(v)
}

type captions struct {
	gender    [numGenders]string
	ethnicity [numEthnicities]string
}

func (c captions) get(g Group) string {
	switch g := g.(type) {
	case Gender:
		return c.gender[g]
	case Ethnicity:
		return c.ethnicity[g]
	}
	return ""
}

// RowCaption returns the caption describing group g's value within
// a discipline row under selection s. It returns "" where there is
// nothing to describe, such as ethnicity under earnings.
func RowCaption(s Selection, g Group) string {
	return rowCaptions[s].get(g)
}

// FlowCaption returns the caption describing group g's
// population-wide total in a flow diagram under selection s.
func FlowCaption(s Selection, g Group) string {
	return flowCaptions[s].get(g)
}

var rowCaptions = map[Selection]captions{
	{Size, Population}: {
		[...]string{"Men with selected degree", "Women with selected degree"},
		[...]string{
			"White persons with selected degree",
			"Asian persons with selected degree",
			"Black persons with selected degree",
			"Hisp / Lat persons with selected degree",
		},
	},
	{Size, Percent}: {
		[...]string{"% with selected degree are Men", "% with selected degree are Women"},
		[...]string{
			"% with selected degree are White",
			"% with selected degree are Asian",
			"% with selected degree are Black",
			"% with selected degree are Hisp / Lat",
		},
	},
	{Size, PercentByPopGroup}: {
		[...]string{"% of Men have selected degree", "% of Women have selected degree"},
		[...]string{
			"% of White pop have selected degree",
			"% of Asian pop have selected degree",
			"% of Black pop have selected degree",
			"% of Hisp / Lat pop have selected degree",
		},
	},
	{Unemployment, Population}: {
		[...]string{"% Men unemployment rate", "% Women unemployment rate"},
		[...]string{
			"% White unemployment rate",
			"% Asian unemployment rate",
			"% Black unemployment rate",
			"% Hisp / Lat unemployment rate",
		},
	},
	{Unemployment, Percent}: {
		[...]string{"Men % compared to overall degree unempl.", "Women % compared to overall degree unempl."},
		[...]string{
			"White % compared to overall degree unempl.",
			"Asian % compared to overall degree unempl.",
			"Black % compared to overall degree unempl.",
			"Hisp / Lat % compared to overall degree unempl.",
		},
	},
	{Earnings, Population}: {
		gender: [...]string{"USD for Men with selected degree", "USD for Women with selected degree"},
	},
	{Earnings, Percent}: {
		gender: [...]string{"% compared to overall degree Men", "% compared to overall degree Women"},
	},
	{Earnings, PercentByPopGroup}: {
		gender: [...]string{"% compared to overall US Men", "% compared to overall US Women"},
	},
}

var flowCaptions = map[Selection]captions{
	{Size, Population}: {
		[...]string{"Men with bachelor's degree", "Women with bachelor's degree"},
		[...]string{
			"White persons with bachelor's degree",
			"Asian persons with bachelor's degree",
			"Black persons with bachelor's degree",
			"Hisp / Lat persons with bachelor's degree",
		},
	},
	{Size, Percent}: {
		[...]string{"% with a bachelor's degree are Men", "% with a bachelor's degree are Women"},
		[...]string{
			"% with a bachelor's degree are White",
			"% with a bachelor's degree are Asian",
			"% with a bachelor's degree are Black",
			"% with a bachelor's degree are Hisp / Lat",
		},
	},
	{Size, PercentByPopGroup}: {
		[...]string{"% of Men have a bachelor's degree", "% of Women have a bachelor's degree"},
		[...]string{
			"% of White pop have a bachelor's degree",
			"% of Asian pop have a bachelor's degree",
			"% of Black pop have a bachelor's degree",
			"% of Hisp / Lat pop have a bachelor's degree",
		},
	},
	{Unemployment, Population}: {
		[...]string{"% Men unemployment rate", "% Women unemployment rate"},
		[...]string{
			"% White unemployment rate",
			"% Asian unemployment rate",
			"% Black unemployment rate",
			"% Hisp / Lat unemployment rate",
		},
	},
	{Unemployment, Percent}: {
		[...]string{"Men % compared to all with bachelor's degree", "Women % compared to all with bachelor's degree"},
		[...]string{
			"White % compared to all with bachelor's degree",
			"Asian % compared to all with bachelor's degree",
			"Black % comp. to all with bachelor's",
			"Hisp / Lat % compared to all with bachelor's",
		},
	},
	{Earnings, Population}: {
		gender: [...]string{"USD for Men", "USD for Women"},
	},
	{Earnings, Percent}: {
		gender: [...]string{
			"% compared to overall US persons with a bachelor's",
			"% compared to overall US persons with a bachelor's",
		},
	},
	{Earnings, PercentByPopGroup}: {
		gender: [...]string{"% compared to overall US Men", "% compared to overall US Women"},
	},
}
