// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
)

// A Segment is the range of dates a calendar supports under a schema.
//
// It is described by a closed interval of day counts, together with the
// derived intervals of years and month counts and the first and last dates
// in the various representations. A Segment is computed once and never
// changes, so it is safe for concurrent use.
type Segment struct {
	schema   Schema
	days     Range
	months   Range
	years    Range
	complete bool

	minDate, maxDate       DateParts
	minOrdinal, maxOrdinal OrdinalParts
	minMonth, maxMonth     MonthParts
}

// NewSegment returns the segment of s spanning the given years, from the
// first day of years.Min to the last day of years.Max. The returned segment
// is complete.
func NewSegment(s Schema, years Range) (*Segment, error) {
	if years.Min > years.Max {
		return nil, fmt.Errorf("segment %v is empty: %w", years, ErrInvalid)
	}
	if sup := s.SupportedYears(); !years.IsSubsetOf(sup) {
		return nil, fmt.Errorf("years %v not within the years %v supported by %v: %w", years, sup, s, ErrInvalid)
	}
	days := Range{
		Min: s.GetStartOfYear(years.Min),
		Max: GetEndOfYear(s, years.Max),
	}
	return newSegment(s, days), nil
}

// NewSegmentFromDays returns the segment of s spanning the given day
// counts. The segment is complete if days.Min is the first day of a year and
// days.Max the last day of a year.
func NewSegmentFromDays(s Schema, days Range) (*Segment, error) {
	if days.Min > days.Max {
		return nil, fmt.Errorf("segment %v is empty: %w", days, ErrInvalid)
	}
	sup := s.SupportedYears()
	supDays := Range{Min: s.GetStartOfYear(sup.Min), Max: GetEndOfYear(s, sup.Max)}
	if !days.IsSubsetOf(supDays) {
		return nil, fmt.Errorf("days %v not within the days %v supported by %v: %w", days, supDays, s, ErrInvalid)
	}
	return newSegment(s, days), nil
}

func newSegment(s Schema, days Range) *Segment {
	seg := &Segment{schema: s, days: days}

	y, m, d := s.GetDateParts(days.Min)
	seg.minDate = DateParts{y, m, d}
	seg.minOrdinal = OrdinalParts{y, GetDayOfYear(s, y, m, d)}
	seg.minMonth = MonthParts{y, m}

	y, m, d = s.GetDateParts(days.Max)
	seg.maxDate = DateParts{y, m, d}
	seg.maxOrdinal = OrdinalParts{y, GetDayOfYear(s, y, m, d)}
	seg.maxMonth = MonthParts{y, m}

	seg.years = Range{Min: seg.minDate.Year, Max: seg.maxDate.Year}
	seg.months = Range{
		Min: s.CountMonthsSinceEpoch(seg.minMonth.Year, seg.minMonth.Month),
		Max: s.CountMonthsSinceEpoch(seg.maxMonth.Year, seg.maxMonth.Month),
	}
	seg.complete = seg.minOrdinal.DayOfYear == 1 &&
		seg.maxOrdinal.DayOfYear == s.CountDaysInYear(seg.maxOrdinal.Year)
	return seg
}

// Schema returns the schema of seg.
func (seg *Segment) Schema() Schema { return seg.schema }

// Days returns the range of day counts in seg.
func (seg *Segment) Days() Range { return seg.days }

// Months returns the range of month counts in seg. Months at the boundaries
// of an incomplete segment are only partially included.
func (seg *Segment) Months() Range { return seg.months }

// Years returns the range of years in seg. Years at the boundaries of an
// incomplete segment are only partially included.
func (seg *Segment) Years() Range { return seg.years }

// IsComplete reports whether seg starts on the first day of a year and ends
// on the last day of a year.
func (seg *Segment) IsComplete() bool { return seg.complete }

// MinDate returns the first date of seg.
func (seg *Segment) MinDate() DateParts { return seg.minDate }

// MaxDate returns the last date of seg.
func (seg *Segment) MaxDate() DateParts { return seg.maxDate }

// MinOrdinal returns the first date of seg as ordinal parts.
func (seg *Segment) MinOrdinal() OrdinalParts { return seg.minOrdinal }

// MaxOrdinal returns the last date of seg as ordinal parts.
func (seg *Segment) MaxOrdinal() OrdinalParts { return seg.maxOrdinal }

// MinMonth returns the first (possibly partial) month of seg.
func (seg *Segment) MinMonth() MonthParts { return seg.minMonth }

// MaxMonth returns the last (possibly partial) month of seg.
func (seg *Segment) MaxMonth() MonthParts { return seg.maxMonth }

// String implements fmt.Stringer.
func (seg *Segment) String() string {
	return fmt.Sprintf("%v %v..%v", seg.schema, seg.minDate, seg.maxDate)
}

// CheckYear returns an error if y is not a year of seg.
func (seg *Segment) CheckYear(y int) error {
	if !seg.years.Contains(y) {
		return fmt.Errorf("year %d out of range %v: %w", y, seg.years, ErrInvalid)
	}
	return nil
}

// CheckMonth returns an error if p is not a valid month of seg.
func (seg *Segment) CheckMonth(p MonthParts) error {
	if err := seg.CheckYear(p.Year); err != nil {
		return err
	}
	if p.Month < 1 || p.Month > seg.schema.CountMonthsInYear(p.Year) {
		return fmt.Errorf("month %v out of range: %w", p, ErrInvalid)
	}
	if !seg.complete && (p.Compare(seg.minMonth) < 0 || p.Compare(seg.maxMonth) > 0) {
		return fmt.Errorf("month %v out of range %v..%v: %w", p, seg.minMonth, seg.maxMonth, ErrInvalid)
	}
	return nil
}

// CheckDate returns an error if p is not a valid date of seg.
func (seg *Segment) CheckDate(p DateParts) error {
	if err := seg.CheckYear(p.Year); err != nil {
		return err
	}
	if p.Month < 1 || p.Month > seg.schema.CountMonthsInYear(p.Year) {
		return fmt.Errorf("date %v: month out of range: %w", p, ErrInvalid)
	}
	if p.Day < 1 || p.Day > seg.schema.CountDaysInMonth(p.Year, p.Month) {
		return fmt.Errorf("date %v: day out of range: %w", p, ErrInvalid)
	}
	if !seg.complete && (p.Compare(seg.minDate) < 0 || p.Compare(seg.maxDate) > 0) {
		return fmt.Errorf("date %v out of range %v..%v: %w", p, seg.minDate, seg.maxDate, ErrInvalid)
	}
	return nil
}

// CheckOrdinal returns an error if p is not a valid ordinal date of seg.
func (seg *Segment) CheckOrdinal(p OrdinalParts) error {
	if err := seg.CheckYear(p.Year); err != nil {
		return err
	}
	if p.DayOfYear < 1 || p.DayOfYear > seg.schema.CountDaysInYear(p.Year) {
		return fmt.Errorf("ordinal date %v: day of year out of range: %w", p, ErrInvalid)
	}
	if !seg.complete && (p.Compare(seg.minOrdinal) < 0 || p.Compare(seg.maxOrdinal) > 0) {
		return fmt.Errorf("ordinal date %v out of range %v..%v: %w", p, seg.minOrdinal, seg.maxOrdinal, ErrInvalid)
	}
	return nil
}

// CheckDays returns an error wrapping ErrOverflow if days is not a day
// count of seg.
func (seg *Segment) CheckDays(days int) error {
	if !seg.days.Contains(days) {
		return fmt.Errorf("day count %d out of range %v: %w", days, seg.days, ErrOverflow)
	}
	return nil
}
