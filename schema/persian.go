// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/internal/intmath"
)

// The 2820-year grand cycle of the arithmetical Persian calendar contains
// 683 leap years. It is made of 21 cycles of 128 years and one of 132
// years, which are in turn made of sub-cycles of 29, 33 and 37 years. The
// leap years of the grand cycle are spread evenly, so that the number of
// leap years before year y of the cycle is floor((682y - 110) / 2816).
const (
	persianYearsPerCycle = 2820
	persianDaysPerCycle  = 2820*365 + 683

	// Years are counted within the cycle from persianYearZero, so that
	// year persianYearZero+1 is the first year of the first complete cycle.
	persianYearZero = 474
)

// persianCycleYear returns the number of complete cycles before year y and
// the position of y in its cycle, in the range [474, 3293].
func persianCycleYear(y int) (cycles, yc int) {
	cycles, yc = intmath.DivMod(y-persianYearZero, persianYearsPerCycle)
	return cycles, yc + persianYearZero
}

func isPersianLeapYear(y int) bool {
	_, yc := persianCycleYear(y)
	return intmath.Modulo((yc+38)*682, 2816) < 682
}

func persianStartOfYear(y int) int {
	cycles, yc := persianCycleYear(y)
	return persianDaysPerCycle*cycles + 365*(yc-1) + intmath.Divide(682*yc-110, 2816)
}

// persian implements the arithmetical Persian calendar with a 2820-year
// cycle.
type persian struct {
	base
	regular
}

// Persian2820 returns the schema of the arithmetical Persian calendar based
// on a 2820-year cycle.
func Persian2820() Schema {
	return persian{
		base: base{
			name:           "Persian2820",
			family:         FamilyPersian2820,
			minDaysInYear:  365,
			minDaysInMonth: 29,
		},
		regular: 12,
	}
}

func (persian) IsLeapYear(y int) bool {
	return isPersianLeapYear(y)
}

func (persian) IsIntercalaryDay(y, m, d int) bool {
	return m == 12 && d == 30
}

func (persian) IsSupplementaryDay(y, m, d int) bool {
	return false
}

func (persian) CountDaysInYear(y int) int {
	if isPersianLeapYear(y) {
		return 366
	}
	return 365
}

// The first six months have 31 days, the next five 30 days, and the last
// one 29 or 30 days.
func (persian) CountDaysInMonth(y, m int) int {
	switch {
	case m <= 6:
		return 31
	case m <= 11:
		return 30
	case isPersianLeapYear(y):
		return 30
	}
	return 29
}

func (persian) CountDaysInYearBeforeMonth(y, m int) int {
	if m <= 7 {
		return 31 * (m - 1)
	}
	return 30*(m-1) + 6
}

func (s persian) CountDaysSinceEpoch(y, m, d int) int {
	return countDaysSinceEpoch(s, y, m, d)
}

func (s persian) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

// GetYear locates the 2820-year cycle first, then the year within the
// cycle. The intermediate product 2816 * d1 does not fit in 32 bits.
func (persian) GetYear(daysSinceEpoch int) (y, doy int) {
	d0 := daysSinceEpoch - persianStartOfYear(persianYearZero+1)
	cycles, d1 := intmath.DivMod(d0, persianDaysPerCycle)
	var yc int
	if d1 == persianDaysPerCycle-1 {
		// Last day of the last (leap) year of the cycle.
		yc = persianYearsPerCycle
	} else {
		yc = int(intmath.Divide64(2816*int64(d1)+1031337, 1028522))
	}
	y = persianYearZero + persianYearsPerCycle*cycles + yc
	return y, daysSinceEpoch - persianStartOfYear(y) + 1
}

func (persian) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	if d0 < 6*31 {
		return d0/31 + 1, d0%31 + 1
	}
	d0 -= 6 * 31
	return d0/30 + 7, d0%30 + 1
}

func (persian) GetStartOfYear(y int) int {
	return persianStartOfYear(y)
}
