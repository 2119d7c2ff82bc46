// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/internal/intmath"
)

// Days in a given period of Gregorian years.
const (
	daysPer400Years = 146097
	daysPer4Years   = 1461

	// Day 0 of the epoch is January 1st of year 1. Counting from March 1st
	// of year 0 instead puts the leap day at the end of the (shifted)
	// year, which is what makes the closed-form month formulas work.
	daysFromMarchToJanuary = 306
)

// daysBefore[m] counts the number of days in a common year before month m+1
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func isGregorianLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// gregorianStartOfYear returns the number of days from January 1st of year 1
// to January 1st of year y. This is basically (y-1) * 365, but accounting
// for leap days.
func gregorianStartOfYear(y int) int {
	y--
	return 365*y + intmath.Divide(y, 4) - intmath.Divide(y, 100) + intmath.Divide(y, 400)
}

// gregorianYear returns the year of the given day count.
func gregorianYear(daysSinceEpoch int) int {
	d := daysSinceEpoch + daysFromMarchToJanuary

	// Account for centuries. All centuries of a 400-year cycle have 36524
	// days, except the last one which ends with a leap year.
	c := intmath.Divide(4*d+3, daysPer400Years)
	d -= intmath.Div4(daysPer400Years * c)

	// Account for years within the century.
	y := (4*d + 3) / daysPer4Years
	d -= intmath.Div4(daysPer4Years * y)

	y += 100 * c
	// d is the day of the March-based year; January and February belong to
	// the next civil year.
	if d >= daysFromMarchToJanuary {
		y++
	}
	return y
}

// gregorian implements the proleptic Gregorian calendar.
type gregorian struct {
	base
	regular
}

// Gregorian returns the schema of the proleptic Gregorian calendar.
func Gregorian() Schema {
	return gregorian{
		base: base{
			name:           "Gregorian",
			family:         FamilyGregorian,
			minDaysInYear:  365,
			minDaysInMonth: 28,
		},
		regular: 12,
	}
}

func (gregorian) IsLeapYear(y int) bool {
	return isGregorianLeapYear(y)
}

func (gregorian) IsIntercalaryDay(y, m, d int) bool {
	return m == 2 && d == 29
}

func (gregorian) IsSupplementaryDay(y, m, d int) bool {
	return false
}

func (gregorian) CountDaysInYear(y int) int {
	if isGregorianLeapYear(y) {
		return 366
	}
	return 365
}

func (gregorian) CountDaysInMonth(y, m int) int {
	if m == 2 && isGregorianLeapYear(y) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

func (gregorian) CountDaysInYearBeforeMonth(y, m int) int {
	n := daysBefore[m-1]
	if m > 2 && isGregorianLeapYear(y) {
		n++
	}
	return n
}

// CountDaysSinceEpoch uses the March-based formula: treating March as the
// first month makes the leap day fall at the end of the year, so the month
// offset is the linear interpolation (153m + 2) / 5.
func (gregorian) CountDaysSinceEpoch(y, m, d int) int {
	if m < 3 {
		y--
		m += 9
	} else {
		m -= 3
	}
	c, y := intmath.DivMod(y, 100)
	return intmath.Div4(daysPer400Years*c) +
		intmath.Div4(daysPer4Years*y) +
		(153*m+2)/5 + d - 1 - daysFromMarchToJanuary
}

func (gregorian) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	d = daysSinceEpoch + daysFromMarchToJanuary

	c := intmath.Divide(4*d+3, daysPer400Years)
	d -= intmath.Div4(daysPer400Years * c)

	y = (4*d + 3) / daysPer4Years
	d -= intmath.Div4(daysPer4Years * y)

	// d is now the 0-based day of the March-based year.
	m = (5*d + 2) / 153
	d -= (153*m+2)/5 - 1

	y += 100 * c
	if m < 10 {
		m += 3
	} else {
		m -= 9
		y++
	}
	return y, m, d
}

func (gregorian) GetYear(daysSinceEpoch int) (y, doy int) {
	y = gregorianYear(daysSinceEpoch)
	return y, daysSinceEpoch - gregorianStartOfYear(y) + 1
}

func (gregorian) GetMonth(y, doy int) (m, d int) {
	return gregorianMonth(isGregorianLeapYear(y), doy)
}

func (gregorian) GetStartOfYear(y int) int {
	return gregorianStartOfYear(y)
}

// gregorianMonth returns the month and day of the given day of the year,
// the same way the Go time package does it.
func gregorianMonth(leap bool, doy int) (m, d int) {
	d = doy - 1
	if leap {
		switch {
		case d > 31+29-1:
			// After leap day; pretend it wasn't there.
			d--
		case d == 31+29-1:
			// Leap day.
			return 2, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	m = d / 31
	end := daysBefore[m+1]
	var begin int
	if d >= end {
		m++
		begin = end
	} else {
		begin = daysBefore[m]
	}

	m++ // because January is 1
	d = d - begin + 1
	return m, d
}
