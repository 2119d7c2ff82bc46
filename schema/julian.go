// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/internal/intmath"
)

func isJulianLeapYear(y int) bool {
	return intmath.Mod4(y) == 0
}

// julian implements the proleptic Julian calendar. It shares the month
// structure of the Gregorian calendar, but every fourth year is a leap year.
type julian struct {
	base
	regular
}

// Julian returns the schema of the proleptic Julian calendar.
func Julian() Schema {
	return julian{
		base: base{
			name:           "Julian",
			family:         FamilyJulian,
			minDaysInYear:  365,
			minDaysInMonth: 28,
		},
		regular: 12,
	}
}

func (julian) IsLeapYear(y int) bool {
	return isJulianLeapYear(y)
}

func (julian) IsIntercalaryDay(y, m, d int) bool {
	return m == 2 && d == 29
}

func (julian) IsSupplementaryDay(y, m, d int) bool {
	return false
}

func (julian) CountDaysInYear(y int) int {
	if isJulianLeapYear(y) {
		return 366
	}
	return 365
}

func (julian) CountDaysInMonth(y, m int) int {
	if m == 2 && isJulianLeapYear(y) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

func (julian) CountDaysInYearBeforeMonth(y, m int) int {
	n := daysBefore[m-1]
	if m > 2 && isJulianLeapYear(y) {
		n++
	}
	return n
}

func (julian) CountDaysSinceEpoch(y, m, d int) int {
	if m < 3 {
		y--
		m += 9
	} else {
		m -= 3
	}
	return intmath.Div4(daysPer4Years*y) + (153*m+2)/5 + d - 1 - daysFromMarchToJanuary
}

func (julian) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	d = daysSinceEpoch + daysFromMarchToJanuary

	y = intmath.Divide(4*d+3, daysPer4Years)
	d -= intmath.Div4(daysPer4Years * y)

	m = (5*d + 2) / 153
	d -= (153*m+2)/5 - 1

	if m < 10 {
		m += 3
	} else {
		m -= 9
		y++
	}
	return y, m, d
}

func (julian) GetYear(daysSinceEpoch int) (y, doy int) {
	d := daysSinceEpoch + daysFromMarchToJanuary
	y = intmath.Divide(4*d+3, daysPer4Years)
	if d-intmath.Div4(daysPer4Years*y) >= daysFromMarchToJanuary {
		y++
	}
	return y, daysSinceEpoch - julianStartOfYear(y) + 1
}

func (julian) GetMonth(y, doy int) (m, d int) {
	return gregorianMonth(isJulianLeapYear(y), doy)
}

func (julian) GetStartOfYear(y int) int {
	return julianStartOfYear(y)
}

func julianStartOfYear(y int) int {
	y--
	return 365*y + intmath.Div4(y)
}
