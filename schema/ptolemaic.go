// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"gonih.org/calendar/internal/intmath"
)

// Ptolemaic calendars have twelve months of thirty days, followed by five
// or six epagomenal days. The epagomenal days are represented either as the
// days 31 to 36 of the twelfth month, or as a virtual thirteenth month.
//
// Both representations describe the same sequence of days, and so the same
// day counts.
type ptolemaic struct {
	base
	regular

	// virtual is true if the epagomenal days form a thirteenth month.
	virtual bool
	// cycle implements the leap-year rule.
	cycle ptolemaicCycle
}

// ptolemaicCycle is the leap-year rule of a ptolemaic calendar. The years
// are the only thing distinguishing the members of the family.
type ptolemaicCycle interface {
	isLeapYear(y int) bool
	startOfYear(y int) int
	year(daysSinceEpoch int) int
}

func newPtolemaic(name string, family Family, virtual bool, cycle ptolemaicCycle, minDaysInYear int) ptolemaic {
	s := ptolemaic{
		base: base{
			name:           name,
			family:         family,
			minDaysInYear:  minDaysInYear,
			minDaysInMonth: 30,
		},
		regular: 12,
		virtual: virtual,
		cycle:   cycle,
	}
	if virtual {
		s.regular = 13
		s.minDaysInMonth = 5
	}
	return s
}

// Coptic12 returns the schema of the Coptic calendar, with the epagomenal
// days attached to the twelfth month.
func Coptic12() Schema {
	return newPtolemaic("Coptic12", FamilyCoptic, false, copticCycle{}, 365)
}

// Coptic13 returns the schema of the Coptic calendar, with the epagomenal
// days forming a thirteenth month.
func Coptic13() Schema {
	return newPtolemaic("Coptic13", FamilyCoptic, true, copticCycle{}, 365)
}

// Egyptian12 returns the schema of the Egyptian calendar, with the
// epagomenal days attached to the twelfth month.
func Egyptian12() Schema {
	return newPtolemaic("Egyptian12", FamilyEgyptian, false, egyptianCycle{}, 365)
}

// Egyptian13 returns the schema of the Egyptian calendar, with the
// epagomenal days forming a thirteenth month.
func Egyptian13() Schema {
	return newPtolemaic("Egyptian13", FamilyEgyptian, true, egyptianCycle{}, 365)
}

// FrenchRepublican12 returns the schema of the French republican calendar,
// with the complementary days attached to the twelfth month.
func FrenchRepublican12() Schema {
	return newPtolemaic("FrenchRepublican12", FamilyFrenchRepublican, false, frenchCycle{}, 365)
}

// FrenchRepublican13 returns the schema of the French republican calendar,
// with the complementary days forming a thirteenth month.
func FrenchRepublican13() Schema {
	return newPtolemaic("FrenchRepublican13", FamilyFrenchRepublican, true, frenchCycle{}, 365)
}

func (s ptolemaic) IsLeapYear(y int) bool {
	return s.cycle.isLeapYear(y)
}

func (s ptolemaic) IsIntercalaryDay(y, m, d int) bool {
	if s.virtual {
		return m == 13 && d == 6
	}
	return m == 12 && d == 36
}

func (s ptolemaic) IsSupplementaryDay(y, m, d int) bool {
	if s.virtual {
		return m == 13
	}
	return m == 12 && d > 30
}

func (s ptolemaic) CountDaysInYear(y int) int {
	if s.cycle.isLeapYear(y) {
		return 366
	}
	return 365
}

func (s ptolemaic) CountDaysInMonth(y, m int) int {
	switch {
	case s.virtual && m == 13:
		return s.epagomenalDays(y)
	case !s.virtual && m == 12:
		return 30 + s.epagomenalDays(y)
	}
	return 30
}

func (s ptolemaic) epagomenalDays(y int) int {
	if s.cycle.isLeapYear(y) {
		return 6
	}
	return 5
}

func (ptolemaic) CountDaysInYearBeforeMonth(y, m int) int {
	return 30 * (m - 1)
}

func (s ptolemaic) CountDaysSinceEpoch(y, m, d int) int {
	return s.cycle.startOfYear(y) + 30*(m-1) + d - 1
}

func (s ptolemaic) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

func (s ptolemaic) GetYear(daysSinceEpoch int) (y, doy int) {
	y = s.cycle.year(daysSinceEpoch)
	return y, daysSinceEpoch - s.cycle.startOfYear(y) + 1
}

func (s ptolemaic) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	m, d = d0/30+1, d0%30+1
	if m == 13 && !s.virtual {
		m, d = 12, d+30
	}
	return m, d
}

func (s ptolemaic) GetStartOfYear(y int) int {
	return s.cycle.startOfYear(y)
}

// copticCycle is the 4-year cycle of the Coptic calendar: a year is leap if
// it precedes a year divisible by 4.
type copticCycle struct{}

func (copticCycle) isLeapYear(y int) bool {
	return intmath.Mod4(y) == 3
}

func (copticCycle) startOfYear(y int) int {
	return 365*(y-1) + intmath.Div4(y)
}

func (copticCycle) year(daysSinceEpoch int) int {
	// Inverse of startOfYear(y) = floor((1461y - 1460) / 4).
	return intmath.Divide(4*daysSinceEpoch+1463, daysPer4Years)
}

// egyptianCycle is the degenerate cycle of the Egyptian calendar: every
// year has 365 days.
type egyptianCycle struct{}

func (egyptianCycle) isLeapYear(y int) bool {
	return false
}

func (egyptianCycle) startOfYear(y int) int {
	return 365 * (y - 1)
}

func (egyptianCycle) year(daysSinceEpoch int) int {
	return intmath.Divide(daysSinceEpoch, 365) + 1
}

// Days in a 4000-year cycle of the French republican calendar.
const frenchDaysPer4000Years = 4000*365 + 1000 - 40 + 10 - 1

// frenchCycle is the 4000-year cycle of the French republican calendar. It
// uses the Gregorian leap-year rule, except that years divisible by 4000 are
// common.
type frenchCycle struct{}

func (frenchCycle) isLeapYear(y int) bool {
	return isGregorianLeapYear(y) && y%4000 != 0
}

func (frenchCycle) startOfYear(y int) int {
	return gregorianStartOfYear(y) - intmath.Divide(y-1, 4000)
}

func (c frenchCycle) year(daysSinceEpoch int) int {
	// The linear estimate is off by at most a few days, much less than a
	// year, so it is corrected by at most one step. 4000 * daysSinceEpoch
	// does not fit in 32 bits.
	y := int(intmath.Divide64(4000*int64(daysSinceEpoch), frenchDaysPer4000Years)) + 1
	if c.startOfYear(y) > daysSinceEpoch {
		y--
	} else if c.startOfYear(y+1) <= daysSinceEpoch {
		y++
	}
	return y
}
