// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/internal/intmath"
)

// The 30-year cycle of the tabular Islamic calendar has 19 common years of
// 354 days and 11 leap years of 355 days.
const islamicDaysPer30Years = 30*354 + 11

func isIslamicLeapYear(y int) bool {
	return intmath.Modulo(14+11*y, 30) < 11
}

func islamicStartOfYear(y int) int {
	return 354*(y-1) + intmath.Divide(3+11*y, 30)
}

// tabularIslamic implements the civil tabular Islamic calendar (leap years
// 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29 of each 30-year cycle).
type tabularIslamic struct {
	base
	regular
}

// TabularIslamic returns the schema of the civil tabular Islamic calendar.
func TabularIslamic() Schema {
	return tabularIslamic{
		base: base{
			name:           "TabularIslamic",
			family:         FamilyTabularIslamic,
			minDaysInYear:  354,
			minDaysInMonth: 29,
		},
		regular: 12,
	}
}

func (tabularIslamic) IsLeapYear(y int) bool {
	return isIslamicLeapYear(y)
}

func (tabularIslamic) IsIntercalaryDay(y, m, d int) bool {
	return m == 12 && d == 30
}

func (tabularIslamic) IsSupplementaryDay(y, m, d int) bool {
	return false
}

func (tabularIslamic) CountDaysInYear(y int) int {
	if isIslamicLeapYear(y) {
		return 355
	}
	return 354
}

// Odd months have 30 days, even months 29, except for the last month of a
// leap year.
func (tabularIslamic) CountDaysInMonth(y, m int) int {
	if m%2 == 1 || m == 12 && isIslamicLeapYear(y) {
		return 30
	}
	return 29
}

func (tabularIslamic) CountDaysInYearBeforeMonth(y, m int) int {
	return 29*(m-1) + m/2
}

func (tabularIslamic) CountDaysSinceEpoch(y, m, d int) int {
	return islamicStartOfYear(y) + 29*(m-1) + m/2 + d - 1
}

func (s tabularIslamic) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

// GetYear inverts islamicStartOfYear. 30 * daysSinceEpoch does not fit in
// 32 bits.
func (tabularIslamic) GetYear(daysSinceEpoch int) (y, doy int) {
	y = int(intmath.Divide64(30*int64(daysSinceEpoch)+10646, islamicDaysPer30Years))
	return y, daysSinceEpoch - islamicStartOfYear(y) + 1
}

func (tabularIslamic) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	m = 2*d0/59 + 1
	if m > 12 {
		// 30th day of the last month of a leap year.
		m = 12
	}
	return m, d0 - 29*(m-1) - m/2 + 1
}

func (tabularIslamic) GetStartOfYear(y int) int {
	return islamicStartOfYear(y)
}
