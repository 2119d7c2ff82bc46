// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// Blank-day calendars follow the Gregorian leap-year rule, but one or two
// days per year are outside the regular grid of months. A blank day is
// attached to the month preceding it, as a day number past the genuine
// length of that month. No month is ever empty.

// world implements the World calendar. Each quarter has months of 31, 30
// and 30 days. Worldsday follows December 30th and is numbered December
// 31st; the leap day follows June 30th and is numbered June 31st.
type world struct {
	base
	regular
}

// World returns the schema of the World calendar.
func World() Schema {
	return world{
		base: base{
			name:           "World",
			family:         FamilyWorld,
			minDaysInYear:  365,
			minDaysInMonth: 30,
		},
		regular: 12,
	}
}

func (world) IsLeapYear(y int) bool {
	return isGregorianLeapYear(y)
}

func (world) IsIntercalaryDay(y, m, d int) bool {
	return m == 6 && d == 31
}

func (world) IsSupplementaryDay(y, m, d int) bool {
	return d == 31 && (m == 6 || m == 12)
}

func (world) CountDaysInYear(y int) int {
	if isGregorianLeapYear(y) {
		return 366
	}
	return 365
}

func (world) CountDaysInMonth(y, m int) int {
	switch {
	case m%3 == 1, m == 12:
		return 31
	case m == 6 && isGregorianLeapYear(y):
		return 31
	}
	return 30
}

func (world) CountDaysInYearBeforeMonth(y, m int) int {
	// Quarters have 91 genuine days.
	m--
	n := 91*(m/3) + 30*(m%3)
	if m%3 > 0 {
		n++
	}
	if m >= 6 && isGregorianLeapYear(y) {
		n++
	}
	return n
}

func (s world) CountDaysSinceEpoch(y, m, d int) int {
	return countDaysSinceEpoch(s, y, m, d)
}

func (s world) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

func (world) GetYear(daysSinceEpoch int) (y, doy int) {
	y = gregorianYear(daysSinceEpoch)
	return y, daysSinceEpoch - gregorianStartOfYear(y) + 1
}

func (world) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	if isGregorianLeapYear(y) {
		switch {
		case d0 == 182:
			return 6, 31
		case d0 > 182:
			d0--
		}
	}
	if d0 == 364 {
		return 12, 31
	}
	q, r := d0/91, d0%91
	if r < 31 {
		return 3*q + 1, r + 1
	}
	r -= 31
	return 3*q + 2 + r/30, r%30 + 1
}

func (world) GetStartOfYear(y int) int {
	return gregorianStartOfYear(y)
}

// Positivist years are numbered from 1789, and follow the Gregorian
// leap-year rule applied to the Gregorian year they start in.
const (
	positivistYearOffset = 1788
	// Gregorian day count of January 1st, 1789.
	positivistEpoch = 653054
)

func isPositivistLeapYear(y int) bool {
	return isGregorianLeapYear(y + positivistYearOffset)
}

func positivistStartOfYear(y int) int {
	return gregorianStartOfYear(y+positivistYearOffset) - positivistEpoch
}

// positivist implements the Positivist calendar: thirteen months of 28 days.
// The festival of all the dead follows the last month and is numbered as its
// 29th day; in leap years the festival of holy women follows as its 30th day.
type positivist struct {
	base
	regular
}

// Positivist returns the schema of the Positivist calendar.
func Positivist() Schema {
	return positivist{
		base: base{
			name:           "Positivist",
			family:         FamilyPositivist,
			minDaysInYear:  365,
			minDaysInMonth: 28,
		},
		regular: 13,
	}
}

func (positivist) IsLeapYear(y int) bool {
	return isPositivistLeapYear(y)
}

func (positivist) IsIntercalaryDay(y, m, d int) bool {
	return m == 13 && d == 30
}

func (positivist) IsSupplementaryDay(y, m, d int) bool {
	return m == 13 && d > 28
}

func (positivist) CountDaysInYear(y int) int {
	if isPositivistLeapYear(y) {
		return 366
	}
	return 365
}

func (positivist) CountDaysInMonth(y, m int) int {
	switch {
	case m < 13:
		return 28
	case isPositivistLeapYear(y):
		return 30
	}
	return 29
}

func (positivist) CountDaysInYearBeforeMonth(y, m int) int {
	return 28 * (m - 1)
}

func (positivist) CountDaysSinceEpoch(y, m, d int) int {
	return positivistStartOfYear(y) + 28*(m-1) + d - 1
}

func (s positivist) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

func (positivist) GetYear(daysSinceEpoch int) (y, doy int) {
	y = gregorianYear(daysSinceEpoch+positivistEpoch) - positivistYearOffset
	return y, daysSinceEpoch - positivistStartOfYear(y) + 1
}

func (positivist) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	if d0 >= 13*28 {
		return 13, d0 - 12*28 + 1
	}
	return d0/28 + 1, d0%28 + 1
}

func (positivist) GetStartOfYear(y int) int {
	return positivistStartOfYear(y)
}

// internationalFixed implements the International Fixed calendar: thirteen
// months of 28 days. The year day follows the last month and is numbered as
// its 29th day; in leap years, the leap day follows the sixth month and is
// numbered as its 29th day.
type internationalFixed struct {
	base
	regular
}

// InternationalFixed returns the schema of the International Fixed calendar.
func InternationalFixed() Schema {
	return internationalFixed{
		base: base{
			name:           "InternationalFixed",
			family:         FamilyInternationalFixed,
			minDaysInYear:  365,
			minDaysInMonth: 28,
		},
		regular: 13,
	}
}

func (internationalFixed) IsLeapYear(y int) bool {
	return isGregorianLeapYear(y)
}

func (internationalFixed) IsIntercalaryDay(y, m, d int) bool {
	return m == 6 && d == 29
}

func (internationalFixed) IsSupplementaryDay(y, m, d int) bool {
	return d == 29
}

func (internationalFixed) CountDaysInYear(y int) int {
	if isGregorianLeapYear(y) {
		return 366
	}
	return 365
}

func (internationalFixed) CountDaysInMonth(y, m int) int {
	if m == 13 || m == 6 && isGregorianLeapYear(y) {
		return 29
	}
	return 28
}

func (internationalFixed) CountDaysInYearBeforeMonth(y, m int) int {
	n := 28 * (m - 1)
	if m > 6 && isGregorianLeapYear(y) {
		n++
	}
	return n
}

func (s internationalFixed) CountDaysSinceEpoch(y, m, d int) int {
	return countDaysSinceEpoch(s, y, m, d)
}

func (s internationalFixed) GetDateParts(daysSinceEpoch int) (y, m, d int) {
	return getDateParts(s, daysSinceEpoch)
}

func (internationalFixed) GetYear(daysSinceEpoch int) (y, doy int) {
	y = gregorianYear(daysSinceEpoch)
	return y, daysSinceEpoch - gregorianStartOfYear(y) + 1
}

func (internationalFixed) GetMonth(y, doy int) (m, d int) {
	d0 := doy - 1
	if isGregorianLeapYear(y) {
		switch {
		case d0 == 6*28:
			return 6, 29
		case d0 > 6*28:
			d0--
		}
	}
	if d0 >= 13*28 {
		return 13, 29
	}
	return d0/28 + 1, d0%28 + 1
}

func (internationalFixed) GetStartOfYear(y int) int {
	return gregorianStartOfYear(y)
}
