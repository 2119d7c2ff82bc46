// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arith implements calendar-aware arithmetic on date parts.
//
// An [Arithmetic] operates within a [schema.Segment]. Its methods assume
// that their arguments are valid parts of the segment, as checked by
// [schema.Segment.CheckDate] and friends. Results which would fall outside
// of the segment, or which would overflow a 32-bit integer, are reported with
// an error wrapping [schema.ErrOverflow]; they are never clamped.
//
// The standard operations (adding days to a date, or months to a month) are
// exact. Adding years to a date, or months to a date, is not: the target
// month may be shorter than the day of the original date, or may not exist
// at all. Those operations clamp the result to the last valid day and report
// how far it was moved, the roundoff. A [Math] applies an [AdditionRule] to
// the roundoff.
package arith

import (
	"fmt"

	"gonih.org/calendar/schema"
)

// Arithmetic is calendar arithmetic within a segment.
type Arithmetic interface {
	// Segment returns the segment the arithmetic operates in.
	Segment() *schema.Segment

	AddDays(p schema.DateParts, days int) (schema.DateParts, error)
	NextDay(p schema.DateParts) (schema.DateParts, error)
	PreviousDay(p schema.DateParts) (schema.DateParts, error)
	// CountDaysBetween returns the number of days from p to q.
	CountDaysBetween(p, q schema.DateParts) int

	AddOrdinalDays(p schema.OrdinalParts, days int) (schema.OrdinalParts, error)
	NextOrdinalDay(p schema.OrdinalParts) (schema.OrdinalParts, error)
	PreviousOrdinalDay(p schema.OrdinalParts) (schema.OrdinalParts, error)
	// CountOrdinalDaysBetween returns the number of days from p to q.
	CountOrdinalDaysBetween(p, q schema.OrdinalParts) int

	AddMonths(p schema.MonthParts, months int) (schema.MonthParts, error)
	NextMonth(p schema.MonthParts) (schema.MonthParts, error)
	PreviousMonth(p schema.MonthParts) (schema.MonthParts, error)
	// CountMonthsBetween returns the number of months from p to q.
	CountMonthsBetween(p, q schema.MonthParts) int

	// AddYears adds years to the year of p. If the resulting date does not
	// exist, it is clamped to the last day of the month, or to the last day
	// of the year if the month does not exist, and roundoff is the number of
	// days that were cut off.
	AddYears(p schema.DateParts, years int) (q schema.DateParts, roundoff int, err error)
	// AddDateMonths adds months to the month of p, clamping the day the
	// same way as AddYears.
	AddDateMonths(p schema.DateParts, months int) (q schema.DateParts, roundoff int, err error)
	// AddOrdinalYears adds years to the year of p, clamping the day of the
	// year to the length of the target year.
	AddOrdinalYears(p schema.OrdinalParts, years int) (q schema.OrdinalParts, roundoff int, err error)
	// AddMonthYears adds years to the year of p. If the month does not exist
	// in the target year, it is clamped to the last month of that year and
	// roundoff is the number of months that were cut off.
	AddMonthYears(p schema.MonthParts, years int) (q schema.MonthParts, roundoff int, err error)
}

// New returns the fastest arithmetic available for seg: a [Regular] if the
// segment allows it, a [Plain] otherwise.
func New(seg *schema.Segment) Arithmetic {
	if r, err := NewRegular(seg); err == nil {
		return r
	}
	return NewPlain(seg)
}

func overflowf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, schema.ErrOverflow)...)
}

// clampDay clamps the day of the month to the length of the month.
func clampDay(s schema.Schema, y, m, d int) (schema.DateParts, int) {
	if n := s.CountDaysInMonth(y, m); d > n {
		return schema.DateParts{Year: y, Month: m, Day: n}, d - n
	}
	return schema.DateParts{Year: y, Month: m, Day: d}, 0
}

// clampDate returns the date y-m-d, where m and d are taken from a date of
// another year. If month m does not exist in year y, the result is the last
// day of y and the roundoff counts the days of the original year past that
// point, at least one.
func clampDate(s schema.Schema, y int, p schema.DateParts) (schema.DateParts, int) {
	if n := s.CountMonthsInYear(y); p.Month > n {
		doy := schema.GetDayOfYear(s, p.Year, p.Month, p.Day)
		last := s.CountDaysInMonth(y, n)
		return schema.DateParts{Year: y, Month: n, Day: last}, max(1, doy-s.CountDaysInYear(y))
	}
	return clampDay(s, y, p.Month, p.Day)
}

func clampOrdinal(s schema.Schema, y, doy int) (schema.OrdinalParts, int) {
	if n := s.CountDaysInYear(y); doy > n {
		return schema.OrdinalParts{Year: y, DayOfYear: n}, doy - n
	}
	return schema.OrdinalParts{Year: y, DayOfYear: doy}, 0
}

func clampMonth(s schema.Schema, y, m int) (schema.MonthParts, int) {
	if n := s.CountMonthsInYear(y); m > n {
		return schema.MonthParts{Year: y, Month: n}, m - n
	}
	return schema.MonthParts{Year: y, Month: m}, 0
}
