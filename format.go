// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"
	"strings"
	"time"

	"gonih.org/calendar/internal/cache"
)

// These are predefined layouts for use in [Date.Format] and [Calendar.Parse].
// The reference date used in these layouts is the specific date:
//
//	January 2, 2006
//
// That value is recorded as the constant named [Layout], listed below. The date
// is chosen for compatibility with package [time].
//
// The format specification works the same as [time.Layout], except that format
// specifiers related to time and timezones are treated as literals and
// otherwise ignored, and that there is no two-digit year. Specifically, the
// recognized components are
//
//	Year: "2006" "_2006"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//
// Month names are taken from the calendar. For calendars without month
// names, "Jan" and "January" format and parse the month number.
//
// Years are formatted with at least four digits. Following ISO 8601, years
// after 9999 carry an explicit "+" sign, and years before 0 a "-" sign. When
// parsing, an unsigned year has exactly four digits and a signed one at
// least four.
const (
	Layout  = "01/02 2006" // The reference date, in numerical order
	RFC1123 = "02 Jan 2006"
	RFC3339 = "2006-01-02"
	Ordinal = "2006-002"
)

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear // "_" followed by a year, as in package time
	opUnderDay
	opUnderYearDay

	opInvalid
)

// opLayouts maps every operator to its layout component.
var opLayouts = [opInvalid]string{
	opLiteral:       "<literal>",
	opLongMonth:     "January",
	opMonth:         "Jan",
	opLongWeekDay:   "Monday",
	opWeekDay:       "Mon",
	opZeroYearDay:   "002",
	opZeroMonth:     "01",
	opZeroDay:       "02",
	opNumMonth:      "1",
	opLongYear:      "2006",
	opDay:           "2",
	opUnderLongYear: "_2006",
	opUnderDay:      "_2",
	opUnderYearDay:  "__2",
}

// String returns the layout component of op, or "<literal>" for opLiteral.
func (op fmtOp) String() string {
	if op < opLiteral || op >= opInvalid {
		panic("invalid fmtOp " + strconv.Itoa(int(op)))
	}
	return opLayouts[op]
}

// inst is one step of a compiled layout: a literal or an operator.
type inst struct {
	op  fmtOp
	lit string
}

func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// compiled layouts, keyed by layout string.
var memo = cache.New[string, []inst](cache.DefaultSize)

// parseLayout compiles layout into the instructions executed by Format and
// Parse. Text between operators becomes literal instructions.
func parseLayout(layout string) []inst {
	var (
		prog  []inst
		start int
	)
	for i := 0; i < len(layout); {
		op, n := matchOp(layout[i:])
		if op == opLiteral {
			i++
			continue
		}
		if start < i {
			prog = append(prog, inst{lit: layout[start:i]})
		}
		prog = append(prog, inst{op: op})
		i += n
		start = i
	}
	if start < len(layout) {
		prog = append(prog, inst{lit: layout[start:]})
	}
	return prog
}

// matchOp returns the preferred operator at the start of s and the length of
// its layout component. "Jan" and "Mon" only match as whole words, so that
// "Month" stays a literal.
func matchOp(s string) (fmtOp, int) {
	for op := opLongMonth; op < opInvalid; op++ {
		l := opLayouts[op]
		if !strings.HasPrefix(s, l) {
			continue
		}
		if (op == opMonth || op == opWeekDay) && len(s) > len(l) && 'a' <= s[len(l)] && s[len(l)] <= 'z' {
			continue
		}
		return op, len(l)
	}
	return opLiteral, 0
}

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See the documentation for
// the constant called Layout to see how to represent the layout format.
func (d Date) Format(layout string) string {
	var buf [64]byte
	return string(d.AppendFormat(buf[:0], layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	c := d.Calendar()
	year, month, day := d.Date()
	for _, i := range memo.Get(layout, parseLayout) {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opLongYear, opUnderLongYear:
			if i.op == opUnderLongYear {
				b = append(b, '_')
			}
			b = appendYear(b, year)
		case opLongMonth, opMonth:
			names := c.longMonthNames
			if i.op == opMonth {
				names = c.shortMonthNames
			}
			b = appendMonthName(b, names, month)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(month), 10)
		case opZeroMonth:
			b = appendPadded(b, month, 2, '0')
		case opLongWeekDay, opWeekDay:
			b = append(b, weekdayName(d.Weekday(), i.op == opWeekDay)...)
		case opDay:
			b = strconv.AppendInt(b, int64(day), 10)
		case opUnderDay:
			b = appendPadded(b, day, 2, ' ')
		case opZeroDay:
			b = appendPadded(b, day, 2, '0')
		case opUnderYearDay:
			b = appendPadded(b, d.YearDay(), 3, ' ')
		case opZeroYearDay:
			b = appendPadded(b, d.YearDay(), 3, '0')
		default:
			panic("invalid inst " + i.String())
		}
	}
	return b
}

// weekdayName returns the English name of wd, abbreviated to three letters
// if short is set.
func weekdayName(wd time.Weekday, short bool) string {
	if short {
		return wd.String()[:3]
	}
	return wd.String()
}

// appendPadded appends the non-negative v, padded to width with pad.
func appendPadded(b []byte, v, width int, pad byte) []byte {
	for w := 10; width > 1; w, width = w*10, width-1 {
		if v < w {
			b = append(b, pad)
		}
	}
	return strconv.AppendInt(b, int64(v), 10)
}

func appendYear(b []byte, y int) []byte {
	switch {
	case y < 0:
		b = append(b, '-')
		y = -y
	case y > 9999:
		b = append(b, '+')
	}
	return appendPadded(b, y, 4, '0')
}

func appendMonthName(b []byte, names []string, m int) []byte {
	if m > len(names) {
		return strconv.AppendInt(b, int64(m), 10)
	}
	return append(b, names[m-1]...)
}
