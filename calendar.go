// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar contains date types for a number of arithmetical
// calendars.
//
// A [Calendar] combines a [schema.Schema], which describes how years are
// divided into months and days, with an epoch, which anchors the first day
// of the schema on a common time line, and a range of supported years. The
// common time line is the [DayNumber]: the number of days since January 1st
// of year 1 of the proleptic Gregorian calendar.
//
// A [Date] is a day of a specific calendar. Dates of different calendars can
// be converted into each other using [Date.In], and compared using
// [Date.Compare] or [Date.Sub].
//
// The predefined calendars are built when the package is initialized and
// never change. Like all calendars, they are safe for concurrent use.
package calendar

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/errors"
	"gonih.org/calendar/arith"
	"gonih.org/calendar/internal/intmath"
	"gonih.org/calendar/schema"
)

// DayNumber counts days since 0001-01-01 of the proleptic Gregorian
// calendar. It is the common time line of all calendars.
type DayNumber int

// Calendar is a calendar with a fixed epoch and range of supported years.
type Calendar struct {
	name   string
	epoch  DayNumber
	schema schema.Schema
	seg    *schema.Segment
	arith  arith.Arithmetic

	// largest number of months in a year
	monthsInYear int

	longMonthNames  []string
	shortMonthNames []string
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithMonthNames sets the names of the months, used for formatting and
// parsing. long is used for the layout element "January" and short for the
// element "Jan". If short is nil, long is used for both.
func WithMonthNames(long, short []string) Option {
	return func(c *Calendar) {
		c.longMonthNames = long
		c.shortMonthNames = short
		if short == nil {
			c.shortMonthNames = long
		}
	}
}

// New returns a calendar using s for the given years. Day 0 of s is the day
// epoch on the common time line.
//
// All problems with the arguments are reported at once; the returned error
// wraps [schema.ErrInvalid].
func New(name string, epoch DayNumber, s schema.Schema, years schema.Range, opts ...Option) (*Calendar, error) {
	c := &Calendar{
		name:   name,
		epoch:  epoch,
		schema: s,
	}
	for _, o := range opts {
		o(c)
	}

	errs := errors.M{}
	if name == "" {
		errs.Append(fmt.Errorf("calendar name is empty: %w", schema.ErrInvalid))
	}
	seg, err := schema.NewSegment(s, years)
	errs.Append(err)
	if seg != nil {
		c.seg = seg
		for _, d := range []int{seg.Days().Min, seg.Days().Max} {
			if _, ok := intmath.Add(int(epoch), d); !ok {
				errs.Append(fmt.Errorf("day %d of %v with epoch %d does not fit in 32 bits: %w", d, s, epoch, schema.ErrInvalid))
			}
		}
		c.monthsInYear = schema.MaxMonthsInYear(c.schema, c.seg.Years())
		n := c.monthsInYear
		for _, names := range [][]string{c.longMonthNames, c.shortMonthNames} {
			if len(names) > 0 && len(names) < n {
				errs.Append(fmt.Errorf("calendar %q has %d month names, want %d: %w", name, len(names), n, schema.ErrInvalid))
			}
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	c.arith = arith.New(seg)
	return c, nil
}


func mustNew(name string, epoch DayNumber, s schema.Schema, opts ...Option) *Calendar {
	c, err := New(name, epoch, s, s.SupportedYears(), opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the name of c.
func (c *Calendar) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Calendar) String() string { return c.name }

// Epoch returns the day number of the first day of year 1 of c.
func (c *Calendar) Epoch() DayNumber { return c.epoch }

// Schema returns the schema of c.
func (c *Calendar) Schema() schema.Schema { return c.schema }

// Segment returns the range of dates supported by c.
func (c *Calendar) Segment() *schema.Segment { return c.seg }

// Arithmetic returns the arithmetic used by c.
func (c *Calendar) Arithmetic() arith.Arithmetic { return c.arith }

// Date returns the date with the given parts. Unlike [time.Date], the parts
// are not normalized; an error is returned if they do not describe a valid
// date of c.
func (c *Calendar) Date(year, month, day int) (Date, error) {
	if err := c.seg.CheckDate(schema.DateParts{Year: year, Month: month, Day: day}); err != nil {
		return Date{}, fmt.Errorf("%v: %w", c, err)
	}
	return c.newDate(c.schema.CountDaysSinceEpoch(year, month, day)), nil
}

// OrdinalDate returns the date of the given day of the year.
func (c *Calendar) OrdinalDate(year, yearDay int) (Date, error) {
	if err := c.seg.CheckOrdinal(schema.OrdinalParts{Year: year, DayOfYear: yearDay}); err != nil {
		return Date{}, fmt.Errorf("%v: %w", c, err)
	}
	return c.newDate(schema.CountOrdinalDaysSinceEpoch(c.schema, year, yearDay)), nil
}

// FromDayNumber returns the date of c with the given day number.
func (c *Calendar) FromDayNumber(n DayNumber) (Date, error) {
	days, ok := intmath.Sub(int(n), int(c.epoch))
	if !ok {
		return Date{}, fmt.Errorf("%v: day number %d: %w", c, n, schema.ErrOverflow)
	}
	if err := c.seg.CheckDays(days); err != nil {
		return Date{}, fmt.Errorf("%v: day number %d: %w", c, n, err)
	}
	return c.newDate(days), nil
}

// Today returns the current date of c, in the given location.
func (c *Calendar) Today(loc *time.Location) (Date, error) {
	y, m, d := time.Now().In(loc).Date()
	g, err := gregorian.Date(y, int(m), d)
	if err != nil {
		return Date{}, err
	}
	return g.In(c)
}

// MinDate returns the first date supported by c.
func (c *Calendar) MinDate() Date { return c.newDate(c.seg.Days().Min) }

// MaxDate returns the last date supported by c.
func (c *Calendar) MaxDate() Date { return c.newDate(c.seg.Days().Max) }

// newDate returns the date with the given day count. The Gregorian calendar
// is stored as nil, so that it compares equal to the zero Date.
func (c *Calendar) newDate(days int) Date {
	if c == gregorian {
		c = nil
	}
	return Date{cal: c, days: days}
}

var englishMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishShortMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var (
	gregorian = mustNew("gregorian", 0, schema.Gregorian(),
		WithMonthNames(englishMonths, englishShortMonths))

	julian = mustNew("julian", -2, schema.Julian(),
		WithMonthNames(englishMonths, englishShortMonths))

	coptic = mustNew("coptic", 103604, schema.Coptic13(),
		WithMonthNames([]string{
			"Thout", "Paopi", "Hathor", "Koiak", "Tobi", "Meshir", "Paremhat",
			"Parmouti", "Pashons", "Paoni", "Epip", "Mesori", "Pi Kogi Enavot",
		}, nil))

	coptic12 = mustNew("coptic12", 103604, schema.Coptic12())

	egyptian = mustNew("egyptian", -272788, schema.Egyptian13(),
		WithMonthNames([]string{
			"Thoth", "Phaophi", "Athyr", "Choiak", "Tybi", "Mechir", "Phamenoth",
			"Pharmuthi", "Pachon", "Payni", "Epiphi", "Mesore", "Epagomenae",
		}, nil))

	egyptian12 = mustNew("egyptian12", -272788, schema.Egyptian12())

	frenchRepublican = mustNew("french-republican", 654414, schema.FrenchRepublican13(),
		WithMonthNames([]string{
			"Vendémiaire", "Brumaire", "Frimaire", "Nivôse", "Pluviôse", "Ventôse", "Germinal",
			"Floréal", "Prairial", "Messidor", "Thermidor", "Fructidor", "Sansculottides",
		}, nil))

	frenchRepublican12 = mustNew("french-republican12", 654414, schema.FrenchRepublican12())

	persian = mustNew("persian", 226895, schema.Persian2820(),
		WithMonthNames([]string{
			"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
			"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
		}, nil))

	tabularIslamic = mustNew("tabular-islamic", 227014, schema.TabularIslamic(),
		WithMonthNames([]string{
			"Muharram", "Safar", "Rabi' al-awwal", "Rabi' al-thani", "Jumada al-awwal", "Jumada al-thani",
			"Rajab", "Sha'ban", "Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
		}, nil))

	world = mustNew("world", 0, schema.World(),
		WithMonthNames(englishMonths, englishShortMonths))

	positivist = mustNew("positivist", 653054, schema.Positivist(),
		WithMonthNames([]string{
			"Moses", "Homer", "Aristotle", "Archimedes", "Caesar", "Saint Paul", "Charlemagne",
			"Dante", "Gutenberg", "Shakespeare", "Descartes", "Frederick", "Bichat",
		}, nil))

	internationalFixed = mustNew("international-fixed", 0, schema.InternationalFixed(),
		WithMonthNames(
			slices.Insert(slices.Clone(englishMonths), 6, "Sol"),
			slices.Insert(slices.Clone(englishShortMonths), 6, "Sol"),
		))

	lunisolar = mustNew("lunisolar", 0, schema.Lunisolar())
)

// Gregorian returns the proleptic Gregorian calendar. It is the calendar of
// the zero Date.
func Gregorian() *Calendar { return gregorian }

// Julian returns the proleptic Julian calendar.
func Julian() *Calendar { return julian }

// Coptic returns the Coptic calendar, with the epagomenal days forming a
// thirteenth month.
func Coptic() *Calendar { return coptic }

// Egyptian returns the ancient Egyptian calendar, with the epagomenal days
// forming a thirteenth month.
func Egyptian() *Calendar { return egyptian }

// FrenchRepublican returns the French republican calendar, with the
// complementary days forming a thirteenth month. It uses the Romme rule:
// Gregorian leap years, except years divisible by 4000.
func FrenchRepublican() *Calendar { return frenchRepublican }

// Persian returns the arithmetical Persian calendar.
func Persian() *Calendar { return persian }

// TabularIslamic returns the civil tabular Islamic calendar.
func TabularIslamic() *Calendar { return tabularIslamic }

// World returns the World calendar.
func World() *Calendar { return world }

// Positivist returns the Positivist calendar, whose year 1 is the Gregorian
// year 1789.
func Positivist() *Calendar { return positivist }

// InternationalFixed returns the International Fixed calendar.
func InternationalFixed() *Calendar { return internationalFixed }

// Lunisolar returns a fictitious lunisolar calendar, with 12 or 13 months a
// year.
func Lunisolar() *Calendar { return lunisolar }

var registry = map[string]*Calendar{}

func init() {
	for _, c := range []*Calendar{
		gregorian, julian,
		coptic, coptic12,
		egyptian, egyptian12,
		frenchRepublican, frenchRepublican12,
		persian, tabularIslamic,
		world, positivist, internationalFixed,
		lunisolar,
	} {
		registry[c.name] = c
	}
}

// Lookup returns the predefined calendar with the given name.
func Lookup(name string) (*Calendar, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the names of all predefined calendars, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
