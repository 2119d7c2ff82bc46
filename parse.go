// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Maximum number of digits of a signed year.
const maxYearDigits = 7

// Parse parses a formatted string as a date of the Gregorian calendar. It is
// shorthand for Gregorian().Parse(layout, value).
func Parse(layout, value string) (Date, error) {
	return gregorian.Parse(layout, value)
}

// Parse parses a formatted string and returns the date of c it represents.
// See the documentation for the constant called Layout to see how to
// represent the format. The second argument must be parseable using the
// format string (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be zero or, when zero is
// impossible, one. The day of the week is checked for syntax but is
// otherwise ignored.
func (c *Calendar) Parse(layout, value string) (Date, error) {
	p := parser{rest: value}
	f := fields{month: -1, day: -1, yday: -1}
	for _, i := range memo.Get(layout, parseLayout) {
		p.step(i)
		switch i.op {
		case opLiteral:
			p.literal(i.lit)
		case opLongYear:
			f.year = p.year()
		case opUnderLongYear:
			if p.literal("_"); !p.failed {
				f.year = p.year()
			}
		case opLongMonth:
			f.month = p.month(c.longMonthNames)
		case opMonth:
			f.month = p.month(c.shortMonthNames)
		case opNumMonth:
			f.month = p.digits(1, 2)
		case opZeroMonth:
			f.month = p.digits(2, 2)
		case opLongWeekDay, opWeekDay:
			p.weekday(i.op == opWeekDay)
		case opDay:
			f.day = p.digits(1, 2)
		case opZeroDay:
			f.day = p.digits(2, 2)
		case opUnderDay:
			p.space(1)
			f.day = p.digits(1, 2)
		case opZeroYearDay:
			f.yday = p.digits(3, 3)
		case opUnderYearDay:
			p.space(2)
			f.yday = p.digits(1, 3)
		default:
			panic("invalid inst " + i.String())
		}
		if p.failed {
			return Date{}, p.parseError(layout, value, "")
		}
		if f.month == 0 || f.month > c.monthsInYear {
			return Date{}, p.parseError(layout, value, "month out of range")
		}
	}
	if p.rest != "" {
		return Date{}, p.parseError(layout, value, "extra text: "+strconv.Quote(p.rest))
	}
	days, msg := c.resolve(f)
	if msg != "" {
		return Date{}, p.parseError(layout, value, msg)
	}
	return c.newDate(days), nil
}

// fields are the date components found by the parser. A negative month, day
// or yday was not present in the input.
type fields struct {
	year, month, day, yday int
}

// resolve validates f against the calendar and returns the day count of the
// date it describes. On failure, the returned message describes the problem.
func (c *Calendar) resolve(f fields) (days int, msg string) {
	s := c.schema
	if !c.seg.Years().Contains(f.year) {
		return 0, "year out of range"
	}
	if f.yday >= 0 {
		if f.yday < 1 || f.yday > s.CountDaysInYear(f.year) {
			return 0, "day-of-year out of range"
		}
		m, d := s.GetMonth(f.year, f.yday)
		if f.month >= 0 && f.month != m {
			return 0, "day-of-year does not match month"
		}
		if f.day >= 0 && f.day != d {
			return 0, "day-of-year does not match day"
		}
		f.month, f.day = m, d
	}
	f.month, f.day = max(f.month, 1), max(f.day, 1)
	if f.month > s.CountMonthsInYear(f.year) {
		return 0, "month out of range"
	}
	if f.day > s.CountDaysInMonth(f.year, f.month) {
		return 0, "day out of range"
	}
	return s.CountDaysSinceEpoch(f.year, f.month, f.day), ""
}

// parser consumes its input one layout instruction at a time. Once failed is
// set, the current instruction and the input it started at describe the
// error.
type parser struct {
	rest   string
	failed bool

	// for error reporting
	at     inst
	atRest string
}

// step records the start of instruction i.
func (p *parser) step(i inst) {
	p.at, p.atRest = i, p.rest
}

// parseError returns a *ParseError for value. If msg is empty, the error
// refers to the instruction that failed.
func (p *parser) parseError(layout, value, msg string) error {
	// Parts of the input end up in the error. Cloning them keeps value from
	// escaping, so that a successful Parse does not allocate.
	e := &ParseError{
		Layout: layout,
		Value:  strings.Clone(value),
	}
	if msg != "" {
		e.Message = msg
		return e
	}
	e.LayoutElem = strings.Clone(p.at.String())
	e.ValueElem = strings.Clone(p.atRest)
	return e
}

// literal consumes lit. A space in lit matches any run of spaces in the
// input, including an empty one at the end of it.
func (p *parser) literal(lit string) {
	for lit != "" {
		if lit[0] != ' ' {
			if p.rest == "" || p.rest[0] != lit[0] {
				p.failed = true
				return
			}
			lit, p.rest = lit[1:], p.rest[1:]
			continue
		}
		if p.rest != "" && p.rest[0] != ' ' {
			p.failed = true
			return
		}
		lit = strings.TrimLeft(lit, " ")
		p.rest = strings.TrimLeft(p.rest, " ")
	}
}

// space skips up to n leading spaces.
func (p *parser) space(n int) {
	for ; n > 0 && p.rest != "" && p.rest[0] == ' '; n-- {
		p.rest = p.rest[1:]
	}
}

// digits consumes a decimal number of at least lo and at most hi digits.
func (p *parser) digits(lo, hi int) int {
	n, v := 0, 0
	for ; n < hi && n < len(p.rest) && '0' <= p.rest[n] && p.rest[n] <= '9'; n++ {
		v = v*10 + int(p.rest[n]-'0')
	}
	if n < lo {
		p.failed = true
		return 0
	}
	p.rest = p.rest[n:]
	return v
}

// year consumes four digits, or a sign followed by four to maxYearDigits
// digits.
func (p *parser) year() int {
	if p.rest == "" || (p.rest[0] != '-' && p.rest[0] != '+') {
		return p.digits(4, 4)
	}
	neg := p.rest[0] == '-'
	p.rest = p.rest[1:]
	y := p.digits(4, maxYearDigits)
	if neg {
		return -y
	}
	return y
}

// month consumes one of names, case-insensitively, and returns its 1-based
// index. Without names, it consumes a month number.
func (p *parser) month(names []string) int {
	if len(names) == 0 {
		return p.digits(1, 2)
	}
	for i, n := range names {
		if p.prefix(n) {
			return i + 1
		}
	}
	p.failed = true
	return 0
}

// weekday consumes the name of a day of the week.
func (p *parser) weekday(short bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if p.prefix(weekdayName(wd, short)) {
			return
		}
	}
	p.failed = true
}

// prefix consumes s if the input starts with it, ignoring case.
func (p *parser) prefix(s string) bool {
	if len(p.rest) < len(s) || !strings.EqualFold(p.rest[:len(s)], s) {
		return false
	}
	p.rest = p.rest[len(s):]
	return true
}

// ParseError describes a problem parsing a date string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("parsing date %q: %s", e.Value, e.Message)
	}
	return fmt.Sprintf("parsing date %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
}
