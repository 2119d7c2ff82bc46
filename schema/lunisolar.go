// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/internal/intmath"
)

// The 19-year cycle of the lunisolar schema has 235 months, 7 of which are
// leap months. Months alternate between 30 and 29 days and a leap month has
// 30 days, so a common year has 354 days and a leap year 384.
const (
	lunisolarMonthsPer19Years = 235
	lunisolarDaysPer19Years   = 19*354 + 7*30
)

// lunisolarMonthsBefore counts the months from the start of the epoch to the
// start of year y.
func lunisolarMonthsBefore(y int) int {
	return intmath.Divide(lunisolarMonthsPer19Years*y-234, 19)
}

func isLunisolarLeapYear(y int) bool {
	return intmath.Modulo(7*y+1, 19) < 7
}

func lunisolarStartOfYear(y int) int {
	leaps := lunisolarMonthsBefore(y) - 12*(y-1)
	return 354*(y-1) + 30*leaps
}

// lunisolar implements a fictitious lunisolar calendar: years of 12 or 13
// months, following the Metonic pattern of leap years 3, 6, 8, 11, 14, 17 and
// 19 of each 19-year cycle. The leap month is the thirteenth month.
//
// It is the only predefined schema that is not regular.
type lunisolar struct {
	base
}

// Lunisolar returns the schema of a fictitious lunisolar calendar.
func Lunisolar() Schema {
	return lunisolar{
		base: base{
			name:           "Lunisolar",
			family:         FamilyLunisolar,
			minDaysInYear:  354,
			minDaysInMonth: 29,
		},
	}
}

func (lunisolar) IsRegular() (int, bool) {
	return 0, false
}

func (lunisolar) MaxMonthsInYear() int { return 13 }

func (lunisolar) IsLeapYear(y int) bool {
	return isLunisolarLeapYear(y)
}

func (lunisolar) IsIntercalaryMonth(y, m int) bool {
	return m == 13
}

func (lunisolar) IsIntercalaryDay(y, m, d int) bool {
	return false
}

func (lunisolar) IsSupplementaryDay(y, m, d int) bool {
	return false
}

func (lunisolar) CountMonthsInYear(y int) int {
	if isLunisolarLeapYear(y) {
		return 13
	}
	return 12
}

func (lunisolar) CountDaysInYear(y int) int {
	if isLunisolarLeapYear(y) {
		return 384
	}
	return 354
}

func (lunisolar) CountDaysInMonth(y, m int) int {
	if m%2 == 1 {
		return 30
	}
	return 29
}

func (lunisolar) CountDaysInYearBeforeMonth(y, m int) int {
	return 29*(m-1) + m/2
}

func (lunisolar) CountMonthsSinceEpoch(y, m int) int {
	return lunisolarMonthsBefore(y) + m - 1
}

func (lunisolar) GetMonthParts(monthsSinceEpoch int) (y, m int) {
	y = intmath.Divide(19*monthsSinceEpoch+252, lunisolarMonthsPer19Years)
	return y, monthsSinceEpoch - lunisolarMonthsBefore(y) + 1
}

func (lunisolar) CountDaysSinceEpoch(y, m, d int) int {
	return lunisolarStartOfYear(y) + 29*(m-1) + m/2 + d - 1
}

func (s lunisolar) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

// GetYear starts from the mean year length, which is off by at most one
// year. 19 * daysSinceEpoch does not fit in 32 bits.
func (lunisolar) GetYear(daysSinceEpoch int) (y, doy int) {
	y = int(intmath.Divide64(19*int64(daysSinceEpoch), lunisolarDaysPer19Years)) + 1
	for lunisolarStartOfYear(y) > daysSinceEpoch {
		y--
	}
	for lunisolarStartOfYear(y+1) <= daysSinceEpoch {
		y++
	}
	return y, daysSinceEpoch - lunisolarStartOfYear(y) + 1
}

func (lunisolar) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	m = 2*d0/59 + 1
	return m, d0 - 29*(m-1) - m/2 + 1
}

func (lunisolar) GetStartOfYear(y int) int {
	return lunisolarStartOfYear(y)
}
