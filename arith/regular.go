// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arith

import (
	"fmt"

	"cloudeng.io/errors"
	"gonih.org/calendar/internal/intmath"
	"gonih.org/calendar/schema"
)

// MinMinDaysInMonth is the smallest value of [schema.Schema.MinDaysInMonth]
// for which a [Regular] can be built.
const MinMinDaysInMonth = 7

// Regular is the arithmetic for regular schemas. Small additions stay within
// a month or a year and never convert to a linear count; larger ones fall
// back to the generic arithmetic.
//
// Adding at most MinDaysInMonth days to a date crosses at most one month
// boundary, and adding at most MinDaysInYear days crosses at most one year
// boundary. Both shortcuts rely on those bounds.
type Regular struct {
	plain          *Plain
	schema         schema.Schema
	monthsInYear   int
	minDaysInYear  int
	minDaysInMonth int
	years          schema.Range
}

var _ Arithmetic = (*Regular)(nil)

// NewRegular returns the arithmetic for seg, which must be a complete
// segment of a regular schema whose months have at least
// [MinMinDaysInMonth] days. The returned error lists every violated
// requirement and wraps [schema.ErrInvalid].
func NewRegular(seg *schema.Segment) (*Regular, error) {
	s := seg.Schema()
	errs := errors.M{}
	monthsInYear, ok := s.IsRegular()
	if !ok {
		errs.Append(fmt.Errorf("schema %v is not regular: %w", s, schema.ErrInvalid))
	}
	if !seg.IsComplete() {
		errs.Append(fmt.Errorf("segment %v is not complete: %w", seg, schema.ErrInvalid))
	}
	if n := s.MinDaysInMonth(); n < MinMinDaysInMonth {
		errs.Append(fmt.Errorf("schema %v has months of %d days, want at least %d: %w", s, n, MinMinDaysInMonth, schema.ErrInvalid))
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Regular{
		plain:          NewPlain(seg),
		schema:         s,
		monthsInYear:   monthsInYear,
		minDaysInYear:  s.MinDaysInYear(),
		minDaysInMonth: s.MinDaysInMonth(),
		years:          seg.Years(),
	}, nil
}

// Segment implements Arithmetic.
func (a *Regular) Segment() *schema.Segment { return a.plain.seg }

func (a *Regular) AddDays(p schema.DateParts, days int) (schema.DateParts, error) {
	if -a.minDaysInMonth <= days && days <= a.minDaysInMonth {
		return a.addDaysInMonth(p, days)
	}
	if -a.minDaysInYear <= days && days <= a.minDaysInYear {
		o, err := a.addDaysInYear(p.Year, schema.GetDayOfYear(a.schema, p.Year, p.Month, p.Day), days)
		if err != nil {
			return schema.DateParts{}, err
		}
		m, d := a.schema.GetMonth(o.Year, o.DayOfYear)
		return schema.DateParts{Year: o.Year, Month: m, Day: d}, nil
	}
	return a.plain.AddDays(p, days)
}

// addDaysInMonth adds at most minDaysInMonth days to p, crossing at most one
// month boundary.
func (a *Regular) addDaysInMonth(p schema.DateParts, days int) (schema.DateParts, error) {
	y, m, d := p.Year, p.Month, p.Day+days
	if d >= 1 {
		if d <= a.minDaysInMonth {
			return schema.DateParts{Year: y, Month: m, Day: d}, nil
		}
		n := a.schema.CountDaysInMonth(y, m)
		if d <= n {
			return schema.DateParts{Year: y, Month: m, Day: d}, nil
		}
		d -= n
		if m < a.monthsInYear {
			return schema.DateParts{Year: y, Month: m + 1, Day: d}, nil
		}
		if y == a.years.Max {
			return schema.DateParts{}, overflowf("adding %d days to %v", days, p)
		}
		return schema.DateParts{Year: y + 1, Month: 1, Day: d}, nil
	}
	if m > 1 {
		return schema.DateParts{Year: y, Month: m - 1, Day: d + a.schema.CountDaysInMonth(y, m-1)}, nil
	}
	if y == a.years.Min {
		return schema.DateParts{}, overflowf("adding %d days to %v", days, p)
	}
	y--
	m = a.monthsInYear
	return schema.DateParts{Year: y, Month: m, Day: d + a.schema.CountDaysInMonth(y, m)}, nil
}

// addDaysInYear adds at most minDaysInYear days to day doy of year y,
// crossing at most one year boundary.
func (a *Regular) addDaysInYear(y, doy, days int) (schema.OrdinalParts, error) {
	doy += days
	if doy < 1 {
		if y == a.years.Min {
			return schema.OrdinalParts{}, overflowf("adding %d days to year %d", days, y)
		}
		y--
		return schema.OrdinalParts{Year: y, DayOfYear: doy + a.schema.CountDaysInYear(y)}, nil
	}
	if doy <= a.minDaysInYear {
		return schema.OrdinalParts{Year: y, DayOfYear: doy}, nil
	}
	n := a.schema.CountDaysInYear(y)
	if doy <= n {
		return schema.OrdinalParts{Year: y, DayOfYear: doy}, nil
	}
	if y == a.years.Max {
		return schema.OrdinalParts{}, overflowf("adding %d days to year %d", days, y)
	}
	return schema.OrdinalParts{Year: y + 1, DayOfYear: doy - n}, nil
}

func (a *Regular) NextDay(p schema.DateParts) (schema.DateParts, error) {
	switch {
	case p.Day < a.minDaysInMonth || p.Day < a.schema.CountDaysInMonth(p.Year, p.Month):
		return schema.DateParts{Year: p.Year, Month: p.Month, Day: p.Day + 1}, nil
	case p.Month < a.monthsInYear:
		return schema.DateParts{Year: p.Year, Month: p.Month + 1, Day: 1}, nil
	case p.Year < a.years.Max:
		return schema.DateParts{Year: p.Year + 1, Month: 1, Day: 1}, nil
	}
	return schema.DateParts{}, overflowf("day after %v", p)
}

func (a *Regular) PreviousDay(p schema.DateParts) (schema.DateParts, error) {
	switch {
	case p.Day > 1:
		return schema.DateParts{Year: p.Year, Month: p.Month, Day: p.Day - 1}, nil
	case p.Month > 1:
		return schema.DateParts{Year: p.Year, Month: p.Month - 1, Day: a.schema.CountDaysInMonth(p.Year, p.Month-1)}, nil
	case p.Year > a.years.Min:
		y := p.Year - 1
		return schema.DateParts{Year: y, Month: a.monthsInYear, Day: a.schema.CountDaysInMonth(y, a.monthsInYear)}, nil
	}
	return schema.DateParts{}, overflowf("day before %v", p)
}

func (a *Regular) CountDaysBetween(p, q schema.DateParts) int {
	if p.Year == q.Year && p.Month == q.Month {
		return q.Day - p.Day
	}
	return a.plain.CountDaysBetween(p, q)
}

func (a *Regular) AddOrdinalDays(p schema.OrdinalParts, days int) (schema.OrdinalParts, error) {
	if -a.minDaysInYear <= days && days <= a.minDaysInYear {
		return a.addDaysInYear(p.Year, p.DayOfYear, days)
	}
	return a.plain.AddOrdinalDays(p, days)
}

func (a *Regular) NextOrdinalDay(p schema.OrdinalParts) (schema.OrdinalParts, error) {
	switch {
	case p.DayOfYear < a.minDaysInYear || p.DayOfYear < a.schema.CountDaysInYear(p.Year):
		return schema.OrdinalParts{Year: p.Year, DayOfYear: p.DayOfYear + 1}, nil
	case p.Year < a.years.Max:
		return schema.OrdinalParts{Year: p.Year + 1, DayOfYear: 1}, nil
	}
	return schema.OrdinalParts{}, overflowf("day after %v", p)
}

func (a *Regular) PreviousOrdinalDay(p schema.OrdinalParts) (schema.OrdinalParts, error) {
	switch {
	case p.DayOfYear > 1:
		return schema.OrdinalParts{Year: p.Year, DayOfYear: p.DayOfYear - 1}, nil
	case p.Year > a.years.Min:
		return schema.OrdinalParts{Year: p.Year - 1, DayOfYear: a.schema.CountDaysInYear(p.Year - 1)}, nil
	}
	return schema.OrdinalParts{}, overflowf("day before %v", p)
}

func (a *Regular) CountOrdinalDaysBetween(p, q schema.OrdinalParts) int {
	if p.Year == q.Year {
		return q.DayOfYear - p.DayOfYear
	}
	return a.plain.CountOrdinalDaysBetween(p, q)
}

func (a *Regular) AddMonths(p schema.MonthParts, months int) (schema.MonthParts, error) {
	m0, ok := intmath.Add(p.Month-1, months)
	if !ok {
		return schema.MonthParts{}, overflowf("adding %d months to %v", months, p)
	}
	years, m0 := intmath.DivMod(m0, a.monthsInYear)
	y, ok := intmath.Add(p.Year, years)
	if !ok || !a.years.Contains(y) {
		return schema.MonthParts{}, overflowf("adding %d months to %v", months, p)
	}
	return schema.MonthParts{Year: y, Month: m0 + 1}, nil
}

func (a *Regular) NextMonth(p schema.MonthParts) (schema.MonthParts, error) {
	switch {
	case p.Month < a.monthsInYear:
		return schema.MonthParts{Year: p.Year, Month: p.Month + 1}, nil
	case p.Year < a.years.Max:
		return schema.MonthParts{Year: p.Year + 1, Month: 1}, nil
	}
	return schema.MonthParts{}, overflowf("month after %v", p)
}

func (a *Regular) PreviousMonth(p schema.MonthParts) (schema.MonthParts, error) {
	switch {
	case p.Month > 1:
		return schema.MonthParts{Year: p.Year, Month: p.Month - 1}, nil
	case p.Year > a.years.Min:
		return schema.MonthParts{Year: p.Year - 1, Month: a.monthsInYear}, nil
	}
	return schema.MonthParts{}, overflowf("month before %v", p)
}

func (a *Regular) CountMonthsBetween(p, q schema.MonthParts) int {
	return a.monthsInYear*(q.Year-p.Year) + q.Month - p.Month
}

func (a *Regular) addYears(y, years int) (int, error) {
	r, ok := intmath.Add(y, years)
	if !ok || !a.years.Contains(r) {
		return 0, overflowf("adding %d years to year %d", years, y)
	}
	return r, nil
}

func (a *Regular) AddYears(p schema.DateParts, years int) (schema.DateParts, int, error) {
	y, err := a.addYears(p.Year, years)
	if err != nil {
		return schema.DateParts{}, 0, err
	}
	if p.Day <= a.minDaysInMonth {
		return schema.DateParts{Year: y, Month: p.Month, Day: p.Day}, 0, nil
	}
	q, roundoff := clampDay(a.schema, y, p.Month, p.Day)
	return q, roundoff, nil
}

func (a *Regular) AddDateMonths(p schema.DateParts, months int) (schema.DateParts, int, error) {
	mp, err := a.AddMonths(schema.MonthParts{Year: p.Year, Month: p.Month}, months)
	if err != nil {
		return schema.DateParts{}, 0, err
	}
	if p.Day <= a.minDaysInMonth {
		return schema.DateParts{Year: mp.Year, Month: mp.Month, Day: p.Day}, 0, nil
	}
	q, roundoff := clampDay(a.schema, mp.Year, mp.Month, p.Day)
	return q, roundoff, nil
}

func (a *Regular) AddOrdinalYears(p schema.OrdinalParts, years int) (schema.OrdinalParts, int, error) {
	y, err := a.addYears(p.Year, years)
	if err != nil {
		return schema.OrdinalParts{}, 0, err
	}
	if p.DayOfYear <= a.minDaysInYear {
		return schema.OrdinalParts{Year: y, DayOfYear: p.DayOfYear}, 0, nil
	}
	q, roundoff := clampOrdinal(a.schema, y, p.DayOfYear)
	return q, roundoff, nil
}

// AddMonthYears never rounds off: every year has the same months.
func (a *Regular) AddMonthYears(p schema.MonthParts, years int) (schema.MonthParts, int, error) {
	y, err := a.addYears(p.Year, years)
	if err != nil {
		return schema.MonthParts{}, 0, err
	}
	return schema.MonthParts{Year: y, Month: p.Month}, 0, nil
}
