// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discipline

import "fmt"

// DataShapeError reports that a dataset is missing a discipline,
// metric, or sub-grouping that a computation needs.
type DataShapeError struct {
	// Discipline is the discipline being read, or "" if the
	// problem is not specific to one discipline.
	Discipline string

	// Metric is the metric being read, or "".
	Metric string

	// Field is the missing or malformed field, such as
	// "by_ethnicity" or "by_gender.men".
	Field string
}

func (e *DataShapeError) Error() string {
	switch {
	case e.Metric == "" && e.Field == "":
		return fmt.Sprintf("dataset has no discipline %q", e.Discipline)
	case e.Field == "":
		return fmt.Sprintf("discipline %q has no metric %q", e.Discipline, e.Metric)
	case e.Discipline == "":
		return fmt.Sprintf("dataset: bad %s", e.Field)
	}
	return fmt.Sprintf("discipline %q metric %q has no %s", e.Discipline, e.Metric, e.Field)
}

// ConfigurationError reports that an ordering, placement, or
// dimension table lacks an entry that a layout call references.
type ConfigurationError struct {
	Table string
	Key   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s table has no valid entry for %q", e.Table, e.Key)
}
