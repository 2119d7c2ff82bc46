// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"cmp"
	"fmt"
)

// DateParts is a date decomposed into year, month and day of the month.
//
// DateParts carries no validation. Producers are responsible for returning
// parts which are valid under the schema they belong to.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or
// after q. Comparison is only meaningful for parts of the same schema.
func (p DateParts) Compare(q DateParts) int {
	if c := cmp.Compare(p.Year, q.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Month, q.Month); c != 0 {
		return c
	}
	return cmp.Compare(p.Day, q.Day)
}

// String formats p as year-month-day.
func (p DateParts) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
}

// OrdinalParts is a date decomposed into year and day of the year.
type OrdinalParts struct {
	Year      int
	DayOfYear int
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or
// after q.
func (p OrdinalParts) Compare(q OrdinalParts) int {
	if c := cmp.Compare(p.Year, q.Year); c != 0 {
		return c
	}
	return cmp.Compare(p.DayOfYear, q.DayOfYear)
}

// String formats p as year-dayOfYear.
func (p OrdinalParts) String() string {
	return fmt.Sprintf("%04d-%03d", p.Year, p.DayOfYear)
}

// MonthParts is a calendar month.
type MonthParts struct {
	Year  int
	Month int
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or
// after q.
func (p MonthParts) Compare(q MonthParts) int {
	if c := cmp.Compare(p.Year, q.Year); c != 0 {
		return c
	}
	return cmp.Compare(p.Month, q.Month)
}

// String formats p as year-month.
func (p MonthParts) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Range is a closed interval of integers. The zero Range contains 0.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v is in r.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// Count returns the number of integers in r.
func (r Range) Count() int {
	return r.Max - r.Min + 1
}

// IsSubsetOf reports whether r is included in s.
func (r Range) IsSubsetOf(s Range) bool {
	return s.Min <= r.Min && r.Max <= s.Max
}

// String formats r as an interval.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
