// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arith

import (
	"gonih.org/calendar/internal/intmath"
	"gonih.org/calendar/schema"
)

// Plain is the generic arithmetic. It works for any schema and any segment,
// by converting parts to a linear count, adding to the count and converting
// back.
type Plain struct {
	seg    *schema.Segment
	schema schema.Schema
}

var _ Arithmetic = (*Plain)(nil)

// NewPlain returns the generic arithmetic for seg.
func NewPlain(seg *schema.Segment) *Plain {
	return &Plain{seg: seg, schema: seg.Schema()}
}

// Segment implements Arithmetic.
func (a *Plain) Segment() *schema.Segment { return a.seg }

func (a *Plain) addDays(days, n int) (int, error) {
	r, ok := intmath.Add(days, n)
	if !ok {
		return 0, overflowf("adding %d days to day %d", n, days)
	}
	if err := a.seg.CheckDays(r); err != nil {
		return 0, err
	}
	return r, nil
}

func (a *Plain) AddDays(p schema.DateParts, days int) (schema.DateParts, error) {
	n, err := a.addDays(a.schema.CountDaysSinceEpoch(p.Year, p.Month, p.Day), days)
	if err != nil {
		return schema.DateParts{}, err
	}
	y, m, d := a.schema.GetDateParts(n)
	return schema.DateParts{Year: y, Month: m, Day: d}, nil
}

func (a *Plain) NextDay(p schema.DateParts) (schema.DateParts, error) {
	return a.AddDays(p, 1)
}

func (a *Plain) PreviousDay(p schema.DateParts) (schema.DateParts, error) {
	return a.AddDays(p, -1)
}

func (a *Plain) CountDaysBetween(p, q schema.DateParts) int {
	return a.schema.CountDaysSinceEpoch(q.Year, q.Month, q.Day) - a.schema.CountDaysSinceEpoch(p.Year, p.Month, p.Day)
}

func (a *Plain) AddOrdinalDays(p schema.OrdinalParts, days int) (schema.OrdinalParts, error) {
	n, err := a.addDays(schema.CountOrdinalDaysSinceEpoch(a.schema, p.Year, p.DayOfYear), days)
	if err != nil {
		return schema.OrdinalParts{}, err
	}
	y, doy := a.schema.GetYear(n)
	return schema.OrdinalParts{Year: y, DayOfYear: doy}, nil
}

func (a *Plain) NextOrdinalDay(p schema.OrdinalParts) (schema.OrdinalParts, error) {
	return a.AddOrdinalDays(p, 1)
}

func (a *Plain) PreviousOrdinalDay(p schema.OrdinalParts) (schema.OrdinalParts, error) {
	return a.AddOrdinalDays(p, -1)
}

func (a *Plain) CountOrdinalDaysBetween(p, q schema.OrdinalParts) int {
	return schema.CountOrdinalDaysSinceEpoch(a.schema, q.Year, q.DayOfYear) - schema.CountOrdinalDaysSinceEpoch(a.schema, p.Year, p.DayOfYear)
}

func (a *Plain) AddMonths(p schema.MonthParts, months int) (schema.MonthParts, error) {
	n, ok := intmath.Add(a.schema.CountMonthsSinceEpoch(p.Year, p.Month), months)
	if !ok || !a.seg.Months().Contains(n) {
		return schema.MonthParts{}, overflowf("adding %d months to %v", months, p)
	}
	y, m := a.schema.GetMonthParts(n)
	return schema.MonthParts{Year: y, Month: m}, nil
}

func (a *Plain) NextMonth(p schema.MonthParts) (schema.MonthParts, error) {
	return a.AddMonths(p, 1)
}

func (a *Plain) PreviousMonth(p schema.MonthParts) (schema.MonthParts, error) {
	return a.AddMonths(p, -1)
}

func (a *Plain) CountMonthsBetween(p, q schema.MonthParts) int {
	return a.schema.CountMonthsSinceEpoch(q.Year, q.Month) - a.schema.CountMonthsSinceEpoch(p.Year, p.Month)
}

// addYears returns the year y + years, if it is a year of the segment.
func (a *Plain) addYears(y, years int) (int, error) {
	r, ok := intmath.Add(y, years)
	if !ok || !a.seg.Years().Contains(r) {
		return 0, overflowf("adding %d years to year %d", years, y)
	}
	return r, nil
}

// checkDate reports an overflow for dates past the ends of an incomplete
// segment.
func (a *Plain) checkDate(q schema.DateParts) error {
	if a.seg.IsComplete() {
		return nil
	}
	return a.seg.CheckDays(a.schema.CountDaysSinceEpoch(q.Year, q.Month, q.Day))
}

func (a *Plain) AddYears(p schema.DateParts, years int) (schema.DateParts, int, error) {
	y, err := a.addYears(p.Year, years)
	if err != nil {
		return schema.DateParts{}, 0, err
	}
	q, roundoff := clampDate(a.schema, y, p)
	if err := a.checkDate(q); err != nil {
		return schema.DateParts{}, 0, err
	}
	return q, roundoff, nil
}

func (a *Plain) AddDateMonths(p schema.DateParts, months int) (schema.DateParts, int, error) {
	mp, err := a.AddMonths(schema.MonthParts{Year: p.Year, Month: p.Month}, months)
	if err != nil {
		return schema.DateParts{}, 0, err
	}
	q, roundoff := clampDay(a.schema, mp.Year, mp.Month, p.Day)
	if err := a.checkDate(q); err != nil {
		return schema.DateParts{}, 0, err
	}
	return q, roundoff, nil
}

func (a *Plain) AddOrdinalYears(p schema.OrdinalParts, years int) (schema.OrdinalParts, int, error) {
	y, err := a.addYears(p.Year, years)
	if err != nil {
		return schema.OrdinalParts{}, 0, err
	}
	q, roundoff := clampOrdinal(a.schema, y, p.DayOfYear)
	if !a.seg.IsComplete() {
		if err := a.seg.CheckDays(schema.CountOrdinalDaysSinceEpoch(a.schema, q.Year, q.DayOfYear)); err != nil {
			return schema.OrdinalParts{}, 0, err
		}
	}
	return q, roundoff, nil
}

func (a *Plain) AddMonthYears(p schema.MonthParts, years int) (schema.MonthParts, int, error) {
	y, err := a.addYears(p.Year, years)
	if err != nil {
		return schema.MonthParts{}, 0, err
	}
	q, roundoff := clampMonth(a.schema, y, p.Month)
	if n := a.schema.CountMonthsSinceEpoch(q.Year, q.Month); !a.seg.Months().Contains(n) {
		return schema.MonthParts{}, 0, overflowf("adding %d years to %v", years, p)
	}
	return q, roundoff, nil
}
