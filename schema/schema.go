// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema contains calendrical schemas: abstract descriptions of how a
// calendar divides years into months and days.
//
// A schema converts between date parts, i.e. (year, month, day) or
// (year, day-of-year), and a linear count of days since its epoch. The epoch
// is always the first day of the first month of year 1, which has day count
// 0. Years before year 1 are proleptic: year 0 precedes year 1, and so on.
//
// Every schema is built on an integer cycle of years containing a fixed
// number of days, and its conversions are closed-form integer formulas
// derived from that cycle. None of the methods validate their arguments;
// the results are only meaningful for date parts that are valid for the
// schema and for years within [Schema.SupportedYears]. Use a [Segment] to
// validate parts.
//
// Schemas are immutable and safe for concurrent use.
package schema

import (
	"errors"
	"fmt"

	"gonih.org/calendar/internal/intmath"
)

var (
	// ErrInvalid is returned when a value violates a structural
	// precondition: invalid date parts, a year range outside of the range
	// supported by a schema, or a segment that is not suitable for an
	// arithmetic strategy.
	ErrInvalid = errors.New("invalid calendrical value")

	// ErrOverflow is returned when an operation would produce a value
	// outside of the supported range, or when an integer computation
	// overflows.
	ErrOverflow = errors.New("calendrical overflow")
)

// Family identifies the family of cycle formulas a schema is built on.
type Family int

const (
	FamilyGregorian Family = iota + 1
	FamilyJulian
	FamilyCoptic
	FamilyEgyptian
	FamilyFrenchRepublican
	FamilyPersian2820
	FamilyTabularIslamic
	FamilyWorld
	FamilyPositivist
	FamilyInternationalFixed
	FamilyLunisolar
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case FamilyGregorian:
		return "Gregorian"
	case FamilyJulian:
		return "Julian"
	case FamilyCoptic:
		return "Coptic"
	case FamilyEgyptian:
		return "Egyptian"
	case FamilyFrenchRepublican:
		return "FrenchRepublican"
	case FamilyPersian2820:
		return "Persian2820"
	case FamilyTabularIslamic:
		return "TabularIslamic"
	case FamilyWorld:
		return "World"
	case FamilyPositivist:
		return "Positivist"
	case FamilyInternationalFixed:
		return "InternationalFixed"
	case FamilyLunisolar:
		return "Lunisolar"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// DefaultSupportedYears is the range of years supported by all predefined
// schemas. Every day count and month count computed for a year in this range
// fits in a 32-bit signed integer.
var DefaultSupportedYears = Range{Min: -999_998, Max: 999_999}

// Schema describes the structure of one calendar family.
type Schema interface {
	// Family returns the family of cycle formulas used by the schema.
	Family() Family
	// String returns the name of the schema.
	String() string

	// MinDaysInYear returns the minimum number of days in a year.
	MinDaysInYear() int
	// MinDaysInMonth returns the minimum number of days in a month.
	MinDaysInMonth() int
	// IsRegular reports whether every year has the same number of months,
	// and if so, how many.
	IsRegular() (monthsInYear int, ok bool)
	// SupportedYears returns the maximal range of years for which the
	// schema methods are total and all counts fit in 32 bits.
	SupportedYears() Range

	IsLeapYear(y int) bool
	IsIntercalaryMonth(y, m int) bool
	// IsIntercalaryDay reports whether the day only exists in leap years.
	IsIntercalaryDay(y, m, d int) bool
	// IsSupplementaryDay reports whether the day is outside of the regular
	// grid of months, e.g. an epagomenal or blank day.
	IsSupplementaryDay(y, m, d int) bool

	CountMonthsInYear(y int) int
	CountDaysInYear(y int) int
	CountDaysInMonth(y, m int) int
	// CountDaysInYearBeforeMonth counts the days in year y before the
	// first day of month m.
	CountDaysInYearBeforeMonth(y, m int) int

	// CountMonthsSinceEpoch counts the months from the first month of year
	// 1 to month m of year y.
	CountMonthsSinceEpoch(y, m int) int
	// GetMonthParts is the inverse of CountMonthsSinceEpoch.
	GetMonthParts(monthsSinceEpoch int) (y, m int)

	// CountDaysSinceEpoch counts the days from the epoch to the given date.
	CountDaysSinceEpoch(y, m, d int) int
	// GetDateParts is the inverse of CountDaysSinceEpoch.
	GetDateParts(daysSinceEpoch int) (y, m, d int)
	// GetYear returns the year and the (1-based) day of the year of the
	// given day count.
	GetYear(daysSinceEpoch int) (y, doy int)
	// GetMonth returns the month and day of the month of the given
	// (1-based) day of year y.
	GetMonth(y, doy int) (m, d int)
	// GetStartOfYear returns the day count of the first day of year y.
	GetStartOfYear(y int) int
}

// MonthBounder is implemented by irregular schemas that know the largest
// number of months in any of their years.
type MonthBounder interface {
	MaxMonthsInYear() int
}

// MaxMonthsInYear returns the largest number of months in a year of s within
// years. Irregular schemas not implementing [MonthBounder] are scanned year by
// year.
func MaxMonthsInYear(s Schema, years Range) int {
	if n, ok := s.IsRegular(); ok {
		return n
	}
	if b, ok := s.(MonthBounder); ok {
		return b.MaxMonthsInYear()
	}
	var n int
	for y := years.Min; y <= years.Max; y++ {
		n = max(n, s.CountMonthsInYear(y))
	}
	return n
}

// GetEndOfYear returns the day count of the last day of year y.
func GetEndOfYear(s Schema, y int) int {
	return s.GetStartOfYear(y) + s.CountDaysInYear(y) - 1
}

// GetStartOfMonth returns the day count of the first day of month m of year
// y.
func GetStartOfMonth(s Schema, y, m int) int {
	return s.GetStartOfYear(y) + s.CountDaysInYearBeforeMonth(y, m)
}

// CountOrdinalDaysSinceEpoch counts the days from the epoch to day doy of
// year y.
func CountOrdinalDaysSinceEpoch(s Schema, y, doy int) int {
	return s.GetStartOfYear(y) + doy - 1
}

// GetDayOfYear returns the (1-based) day of the year of the given date.
func GetDayOfYear(s Schema, y, m, d int) int {
	return s.CountDaysInYearBeforeMonth(y, m) + d
}

// base holds the characteristics every schema declares.
type base struct {
	name           string
	family         Family
	minDaysInYear  int
	minDaysInMonth int
}

func (b base) Family() Family { return b.family }
func (b base) String() string { return b.name }
func (b base) MinDaysInYear() int { return b.minDaysInYear }
func (b base) MinDaysInMonth() int { return b.minDaysInMonth }
func (b base) SupportedYears() Range { return DefaultSupportedYears }

// regular implements month counting for schemas with a fixed number of
// months per year.
type regular int

func (r regular) IsRegular() (int, bool) { return int(r), true }
func (r regular) CountMonthsInYear(y int) int { return int(r) }
func (r regular) IsIntercalaryMonth(y, m int) bool { return false }

func (r regular) CountMonthsSinceEpoch(y, m int) int {
	return int(r)*(y-1) + m - 1
}

func (r regular) GetMonthParts(monthsSinceEpoch int) (y, m int) {
	q, rem := intmath.DivMod(monthsSinceEpoch, int(r))
	return q + 1, rem + 1
}

// countDaysSinceEpoch composes the start of the year with the day of the
// year. Schemas without a dedicated formula use it.
func countDaysSinceEpoch(s Schema, y, m, d int) int {
	return s.GetStartOfYear(y) + s.CountDaysInYearBeforeMonth(y, m) + d - 1
}

// getDateParts composes GetYear with GetMonth. Schemas without a dedicated
// formula use it.
func getDateParts(s Schema, daysSinceEpoch int) (y, m, d int) {
	y, doy := s.GetYear(daysSinceEpoch)
	m, d = s.GetMonth(y, doy)
	return y, m, d
}
