// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"gonih.org/calendar/arith"
	"gonih.org/calendar/internal/intmath"
	"gonih.org/calendar/schema"
)

// A Date represents a day of a calendar, as the number of days since the
// first day of year 1 of the calendar. The zero value of Date is 0001-01-01
// of the [Gregorian] calendar, the same date as the zero value of time.Time.
//
// Dates of the same calendar can be compared using ==. Use [Date.Compare] to
// order dates, possibly of different calendars.
type Date struct {
	cal  *Calendar
	days int
}

// Calendar returns the calendar of d.
func (d Date) Calendar() *Calendar {
	if d.cal == nil {
		return gregorian
	}
	return d.cal
}

// DayNumber returns the position of d on the common time line.
func (d Date) DayNumber() DayNumber {
	return d.Calendar().epoch + DayNumber(d.days)
}

// Date returns the year, month and day specified by d.
func (d Date) Date() (year, month, day int) {
	return d.Calendar().schema.GetDateParts(d.days)
}

// Year returns the year in which d occurs.
func (d Date) Year() int {
	y, _ := d.Calendar().schema.GetYear(d.days)
	return y
}

// Month returns the month of the year specified by d.
func (d Date) Month() int {
	_, m, _ := d.Date()
	return m
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// YearDay returns the day of the year specified by d, starting at 1.
func (d Date) YearDay() int {
	_, doy := d.Calendar().schema.GetYear(d.days)
	return doy
}

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	// 0001-01-01 of the Gregorian calendar was a Monday.
	return time.Weekday(intmath.Modulo(int(time.Monday)+int(d.DayNumber()), 7))
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs,
// whatever the calendar of d. Week ranges from 1 to 53. Jan 01 to Jan 03 of
// year n might belong to week 52 or 53 of year n-1, and Dec 29 to Dec 31
// might belong to week 1 of year n+1.
func (d Date) ISOWeek() (year, week int) {
	// Weeks belong to the year of their Thursday.
	offset := time.Thursday - d.Weekday()
	if offset == 4 {
		offset = -3
	}
	year, yday := schema.Gregorian().GetYear(int(d.DayNumber()) + int(offset))
	return year, (yday-1)/7 + 1
}

// IsIntercalary reports whether d only exists in leap years, either as a
// leap day or as a day of a leap month.
func (d Date) IsIntercalary() bool {
	y, m, day := d.Date()
	s := d.Calendar().schema
	return s.IsIntercalaryDay(y, m, day) || s.IsIntercalaryMonth(y, m)
}

// IsSupplementary reports whether d lies outside of the regular months of
// its calendar, like the epagomenal days of the Coptic calendar or the blank
// days of the World calendar.
func (d Date) IsSupplementary() bool {
	y, m, day := d.Date()
	return d.Calendar().schema.IsSupplementaryDay(y, m, day)
}

func (d Date) parts() schema.DateParts {
	y, m, day := d.Date()
	return schema.DateParts{Year: y, Month: m, Day: day}
}

// fromParts returns the date of d's calendar with the given parts.
func (d Date) fromParts(p schema.DateParts) Date {
	c := d.Calendar()
	return c.newDate(c.schema.CountDaysSinceEpoch(p.Year, p.Month, p.Day))
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) (Date, error) {
	p, err := d.Calendar().arith.AddDays(d.parts(), n)
	if err != nil {
		return Date{}, err
	}
	return d.fromParts(p), nil
}

// NextDay returns the day after d.
func (d Date) NextDay() (Date, error) {
	p, err := d.Calendar().arith.NextDay(d.parts())
	if err != nil {
		return Date{}, err
	}
	return d.fromParts(p), nil
}

// PreviousDay returns the day before d.
func (d Date) PreviousDay() (Date, error) {
	p, err := d.Calendar().arith.PreviousDay(d.parts())
	if err != nil {
		return Date{}, err
	}
	return d.fromParts(p), nil
}

// Sub returns the number of days from e to d. The dates may be of different
// calendars.
func (d Date) Sub(e Date) int {
	return int(d.DayNumber() - e.DayNumber())
}

// AddMonths returns the date n months after d. If the day of d does not
// exist in the target month, rule decides the result.
func (d Date) AddMonths(n int, rule arith.AdditionRule) (Date, error) {
	p, err := arith.NewMath(d.Calendar().arith, rule).AddMonths(d.parts(), n)
	if err != nil {
		return Date{}, err
	}
	return d.fromParts(p), nil
}

// AddYears returns the date n years after d. If the month and day of d do
// not exist in the target year, rule decides the result.
func (d Date) AddYears(n int, rule arith.AdditionRule) (Date, error) {
	p, err := arith.NewMath(d.Calendar().arith, rule).AddYears(d.parts(), n)
	if err != nil {
		return Date{}, err
	}
	return d.fromParts(p), nil
}

// In returns the same day in calendar c.
func (d Date) In(c *Calendar) (Date, error) {
	return c.FromDayNumber(d.DayNumber())
}

// Compare returns -1, 0 or +1 depending on whether d is before, on the same
// day as, or after e.
func (d Date) Compare(e Date) int {
	return cmp.Compare(d.DayNumber(), e.DayNumber())
}

// GoString implements fmt.GoStringer and formats d to be printed in Go
// source code.
func (d Date) GoString() string {
	year, month, day := d.Date()
	return fmt.Sprintf("calendar.MustDate(%q, %d, %d, %d)", d.Calendar().name, year, month, day)
}

// String returns the date formatted as ISO 8601, extended to all calendars.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	return d.Format(RFC3339)
}

// Time returns the given moment in time in the given location, on the day
// of d.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(1, 1, 1+int(d.DayNumber()), hour, min, sec, nsec, loc)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date
// is represented as a [binary.Varint] of its DayNumber; the calendar is not
// encoded.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, int64(d.DayNumber()))], nil
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format, in its calendar; the calendar is not
// encoded.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// date is decoded in the calendar of d.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || int64(int(v)) != v:
		return errors.New("encoded date overflows int")
	case i != len(b):
		return errors.New("extra data after date")
	}
	nd, err := d.Calendar().FromDayNumber(DayNumber(v))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format, and is parsed in the calendar of d.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := d.Calendar().Parse(RFC3339, string(b))
	if err == nil {
		*d = v
	}
	return err
}

// MustDate returns the date of the predefined calendar with the given name.
// It panics if there is no such calendar or if the date is invalid. It is
// intended for initializing variables and for tests.
func MustDate(name string, year, month, day int) Date {
	c, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("calendar: unknown calendar %q", name))
	}
	d, err := c.Date(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}
