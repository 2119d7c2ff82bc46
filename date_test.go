// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gonih.org/calendar/arith"
	"gonih.org/calendar/schema"
)

var tcs = []struct {
	year  int
	month int
	day   int
	want  DayNumber
}{
	{1, 1, 1, 0},
	{2, 1, 1, 365},
	{3, 1, 1, 730},
	{4, 1, 1, 1095},
	{5, 1, 1, 1461},

	{1, 3, 1, 59},
	{2, 3, 1, 424},
	{3, 3, 1, 789},
	{4, 3, 1, 1155},
	{5, 3, 1, 1520},

	{1, 1, 31, 30},
	{1, 2, 1, 31},
	{0, 12, 31, -1},
	{0, 1, 1, -366},
	{-1, 12, 31, -367},
	{1964, 4, 12, 717072},
	{2023, 7, 14, 738714},
	{2024, 2, 29, 738944},
}

func TestGregorianDate(t *testing.T) {
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d, err := Gregorian().Date(tc.year, tc.month, tc.day)
			if err != nil {
				t.Fatalf("Date(%d, %d, %d) = _, %v, want <nil>", tc.year, tc.month, tc.day, err)
			}
			if got := d.DayNumber(); got != tc.want {
				t.Errorf("Date(%d, %d, %d).DayNumber() = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			check(t, tc.year, tc.month, tc.day)
		})
	}
}

func TestDateErrors(t *testing.T) {
	tcs := []struct {
		year, month, day int
	}{
		{1, 1, 32},
		{1, 1, 0},
		{1957, 96, 104},
		{2023, 2, 29},
		{2023, 13, 1},
		{2023, 0, 1},
		{1000000, 1, 1},
		{-999999, 12, 31},
	}
	for _, tc := range tcs {
		if d, err := Gregorian().Date(tc.year, tc.month, tc.day); !errors.Is(err, schema.ErrInvalid) {
			t.Errorf("Date(%d, %d, %d) = %v, %v, want error wrapping %v", tc.year, tc.month, tc.day, d, err, schema.ErrInvalid)
		}
	}
}

func TestZeroDate(t *testing.T) {
	var zero Date
	d, err := Gregorian().Date(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d != zero {
		t.Errorf("Date(1, 1, 1) = %#v, want the zero Date", d)
	}
	if got := zero.Calendar(); got != Gregorian() {
		t.Errorf("Date{}.Calendar() = %v, want %v", got, Gregorian())
	}
	if got, want := zero.String(), "0001-01-01"; got != want {
		t.Errorf("Date{}.String() = %q, want %q", got, want)
	}
	if got, want := zero.Time(0, 0, 0, 0, time.UTC), (time.Time{}); !got.Equal(want) {
		t.Errorf("Date{}.Time() = %v, want %v", got, want)
	}
}

func TestToday(t *testing.T) {
	for _, loc := range []*time.Location{time.UTC, time.Local} {
		got, err := Gregorian().Today(loc)
		if err != nil {
			t.Fatalf("Today(%v) = _, %v", loc, err)
		}
		y, m, d := time.Now().In(loc).Date()
		// Allow for the date changing while the test runs.
		if want := MustDate("gregorian", y, int(m), d); got != want {
			if prev, _ := want.PreviousDay(); got != prev {
				t.Errorf("Today(%v) = %v, want %v", loc, got, want)
			}
		}
	}
	got, err := Coptic().Today(time.UTC)
	if err != nil {
		t.Fatalf("Coptic().Today(time.UTC) = _, %v", err)
	}
	if got.Calendar() != Coptic() {
		t.Errorf("Coptic().Today(time.UTC).Calendar() = %v, want %v", got.Calendar(), Coptic())
	}
}

// TestConversions checks well-known dates against the Gregorian calendar.
func TestConversions(t *testing.T) {
	tcs := []struct {
		cal        string
		y, m, d    int
		gy, gm, gd int
	}{
		{"julian", 1582, 10, 5, 1582, 10, 15},
		{"julian", 1, 1, 1, 0, 12, 30},
		{"coptic", 1740, 1, 1, 2023, 9, 12},
		{"coptic12", 1740, 1, 1, 2023, 9, 12},
		{"coptic", 1739, 13, 6, 2023, 9, 11},
		{"french-republican", 1, 1, 1, 1792, 9, 22},
		{"french-republican", 232, 1, 1, 2023, 9, 22},
		{"persian", 1403, 1, 1, 2024, 3, 20},
		{"tabular-islamic", 1445, 1, 1, 2023, 7, 19},
		{"world", 2023, 1, 1, 2023, 1, 1},
		{"world", 2023, 12, 31, 2023, 12, 31},
		{"positivist", 1, 1, 1, 1789, 1, 1},
		{"positivist", 235, 1, 1, 2023, 1, 1},
		{"international-fixed", 2024, 1, 1, 2024, 1, 1},
		{"international-fixed", 2024, 13, 29, 2024, 12, 31},
	}
	for _, tc := range tcs {
		d := MustDate(tc.cal, tc.y, tc.m, tc.d)
		got, err := d.In(Gregorian())
		if err != nil {
			t.Errorf("%#v.In(Gregorian()) = _, %v", d, err)
			continue
		}
		if want := MustDate("gregorian", tc.gy, tc.gm, tc.gd); got != want {
			t.Errorf("%#v.In(Gregorian()) = %v, want %v", d, got, want)
		}
		back, err := got.In(d.Calendar())
		if err != nil || back != d {
			t.Errorf("%#v.In(%v) = %#v, %v, want %#v, <nil>", got, d.Calendar(), back, err, d)
		}
		if d.Compare(got) != 0 || d.Sub(got) != 0 {
			t.Errorf("%#v and %#v are not the same day", d, got)
		}
	}
}

func TestRegistry(t *testing.T) {
	want := map[string]DayNumber{
		"coptic":              103604,
		"coptic12":            103604,
		"egyptian":            -272788,
		"egyptian12":          -272788,
		"french-republican":   654414,
		"french-republican12": 654414,
		"gregorian":           0,
		"international-fixed": 0,
		"julian":              -2,
		"lunisolar":           0,
		"persian":             226895,
		"positivist":          653054,
		"tabular-islamic":     227014,
		"world":               0,
	}
	got := make(map[string]DayNumber)
	names := Names()
	for _, n := range names {
		c, ok := Lookup(n)
		if !ok {
			t.Fatalf("Lookup(%q) = _, false, want true", n)
		}
		if c.Name() != n {
			t.Errorf("Lookup(%q).Name() = %q", n, c.Name())
		}
		got[n] = c.Epoch()
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("epochs mismatch (-got +want):\n%s", diff)
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() = %q, want sorted", names)
	}
	if c, ok := Lookup("martian"); ok {
		t.Errorf("Lookup(%q) = %v, true, want false", "martian", c)
	}
}

// TestRoundTrip converts the first and last dates of every calendar, and
// some dates in between, into every other calendar and back.
func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for _, n := range Names() {
		c, _ := Lookup(n)
		dates := []Date{c.MinDate(), c.MaxDate()}
		for i := 0; i < 100; i++ {
			d, err := c.FromDayNumber(DayNumber(rnd.Intn(2e6) - 1e6))
			if err != nil {
				t.Fatalf("%v.FromDayNumber: %v", c, err)
			}
			dates = append(dates, d)
		}
		for _, d := range dates {
			y, m, day := d.Date()
			if e, err := c.Date(y, m, day); err != nil || e != d {
				t.Errorf("%v.Date(%d, %d, %d) = %#v, %v, want %#v, <nil>", c, y, m, day, e, err, d)
			}
			if e, err := c.OrdinalDate(y, d.YearDay()); err != nil || e != d {
				t.Errorf("%v.OrdinalDate(%d, %d) = %#v, %v, want %#v, <nil>", c, y, d.YearDay(), e, err, d)
			}
			for _, on := range Names() {
				o, _ := Lookup(on)
				e, err := d.In(o)
				if err != nil {
					// o does not cover d.
					continue
				}
				if back, err := e.In(c); err != nil || back != d {
					t.Errorf("%#v.In(%v).In(%v) = %#v, %v, want %#v", d, o, c, back, err, d)
				}
			}
		}
	}
}

func TestFromDayNumberErrors(t *testing.T) {
	for _, n := range Names() {
		c, _ := Lookup(n)
		if _, err := c.FromDayNumber(c.MaxDate().DayNumber() + 1); !errors.Is(err, schema.ErrOverflow) {
			t.Errorf("%v.FromDayNumber(max+1) = _, %v, want %v", c, err, schema.ErrOverflow)
		}
		if _, err := c.FromDayNumber(c.MinDate().DayNumber() - 1); !errors.Is(err, schema.ErrOverflow) {
			t.Errorf("%v.FromDayNumber(min-1) = _, %v, want %v", c, err, schema.ErrOverflow)
		}
	}
	if _, err := Julian().FromDayNumber(math.MaxInt32); !errors.Is(err, schema.ErrOverflow) {
		t.Errorf("Julian().FromDayNumber(MaxInt32) = _, %v, want %v", err, schema.ErrOverflow)
	}
}

func TestNew(t *testing.T) {
	years := schema.Range{Min: 1, Max: 400}
	c, err := New("proleptic", 0, schema.Gregorian(), years, WithMonthNames(englishMonths, nil))
	if err != nil {
		t.Fatalf("New = _, %v", err)
	}
	if got, want := c.MaxDate().String(), "0400-12-31"; got != want {
		t.Errorf("MaxDate() = %q, want %q", got, want)
	}
	if got, want := c.MinDate().Format("02 Jan 2006"), "01 January 0001"; got != want {
		t.Errorf("MinDate().Format = %q, want %q", got, want)
	}
	if _, err := c.Date(401, 1, 1); !errors.Is(err, schema.ErrInvalid) {
		t.Errorf("Date(401, 1, 1) = _, %v, want %v", err, schema.ErrInvalid)
	}

	errTcs := []struct {
		name  string
		epoch DayNumber
		years schema.Range
		opts  []Option
		want  int
	}{
		{"", 0, years, nil, 1},
		{"", 0, schema.Range{Min: 5, Max: 1}, nil, 2},
		{"short", 0, years, []Option{WithMonthNames([]string{"Jan"}, nil)}, 2},
		{"", math.MaxInt32, years, []Option{WithMonthNames(englishMonths, []string{"Jan"})}, 3},
	}
	for _, tc := range errTcs {
		_, err := New(tc.name, tc.epoch, schema.Gregorian(), tc.years, tc.opts...)
		if !errors.Is(err, schema.ErrInvalid) {
			t.Errorf("New(%q, %d, %v) = _, %v, want error wrapping %v", tc.name, tc.epoch, tc.years, err, schema.ErrInvalid)
			continue
		}
		var m interface{ Unwrap() []error }
		if !errors.As(err, &m) {
			t.Errorf("New(%q, %d, %v) = _, %v, want multiple errors", tc.name, tc.epoch, tc.years, err)
			continue
		}
		if got := len(m.Unwrap()); got != tc.want {
			t.Errorf("New(%q, %d, %v) returned %d errors, want %d: %v", tc.name, tc.epoch, tc.years, got, tc.want, err)
		}
	}
}

func TestAddDays(t *testing.T) {
	for _, n := range Names() {
		c, _ := Lookup(n)
		d, err := c.FromDayNumber(738817)
		if err != nil {
			t.Fatal(err)
		}
		for _, delta := range []int{-1000, -1, 0, 1, 29, 366, 10000} {
			e, err := d.AddDays(delta)
			if err != nil {
				t.Errorf("%#v.AddDays(%d) = _, %v", d, delta, err)
				continue
			}
			if got := e.Sub(d); got != delta {
				t.Errorf("%#v.AddDays(%d).Sub(d) = %d", d, delta, got)
			}
		}
		next, err := d.NextDay()
		if err != nil || next.Sub(d) != 1 {
			t.Errorf("%#v.NextDay() = %#v, %v", d, next, err)
		}
		prev, err := d.PreviousDay()
		if err != nil || prev.Sub(d) != -1 {
			t.Errorf("%#v.PreviousDay() = %#v, %v", d, prev, err)
		}
		if _, err := c.MaxDate().NextDay(); !errors.Is(err, schema.ErrOverflow) {
			t.Errorf("%v.MaxDate().NextDay() = _, %v, want %v", c, err, schema.ErrOverflow)
		}
		if _, err := c.MinDate().PreviousDay(); !errors.Is(err, schema.ErrOverflow) {
			t.Errorf("%v.MinDate().PreviousDay() = _, %v, want %v", c, err, schema.ErrOverflow)
		}
	}
}

func TestAddMonthsYears(t *testing.T) {
	type add func(Date, int, arith.AdditionRule) (Date, error)
	months, years := Date.AddMonths, Date.AddYears
	tcs := []struct {
		name string
		add  add
		from Date
		n    int
		rule arith.AdditionRule
		want Date
	}{
		{"MonthEndTruncate", months, MustDate("gregorian", 2023, 3, 31), 1, arith.Truncate, MustDate("gregorian", 2023, 4, 30)},
		{"MonthEndOverspill", months, MustDate("gregorian", 2023, 3, 31), 1, arith.Overspill, MustDate("gregorian", 2023, 5, 1)},
		{"MonthEndExact", months, MustDate("gregorian", 2023, 3, 31), 1, arith.Exact, MustDate("gregorian", 2023, 5, 1)},
		{"FebruaryTruncate", months, MustDate("gregorian", 2023, 1, 31), 1, arith.Truncate, MustDate("gregorian", 2023, 2, 28)},
		{"FebruaryOverspill", months, MustDate("gregorian", 2023, 1, 31), 1, arith.Overspill, MustDate("gregorian", 2023, 3, 1)},
		{"FebruaryExact", months, MustDate("gregorian", 2023, 1, 31), 1, arith.Exact, MustDate("gregorian", 2023, 3, 3)},
		{"Backwards", months, MustDate("gregorian", 2023, 3, 31), -13, arith.Truncate, MustDate("gregorian", 2022, 2, 28)},
		{"NoRoundoff", months, MustDate("gregorian", 2023, 3, 15), 25, arith.Overflow, MustDate("gregorian", 2025, 4, 15)},
		{"LeapDayTruncate", years, MustDate("gregorian", 2024, 2, 29), 1, arith.Truncate, MustDate("gregorian", 2025, 2, 28)},
		{"LeapDayOverspill", years, MustDate("gregorian", 2024, 2, 29), 1, arith.Overspill, MustDate("gregorian", 2025, 3, 1)},
		{"LeapDayFourYears", years, MustDate("gregorian", 2024, 2, 29), 4, arith.Overflow, MustDate("gregorian", 2028, 2, 29)},
		{"Epagomenal", years, MustDate("coptic", 1739, 13, 6), 1, arith.Truncate, MustDate("coptic", 1740, 13, 5)},
		{"EpagomenalMonths", months, MustDate("coptic", 1739, 12, 30), 1, arith.Overspill, MustDate("coptic", 1740, 1, 1)},
		{"Worldsday", months, MustDate("world", 2023, 12, 31), 2, arith.Truncate, MustDate("world", 2024, 2, 30)},
		{"Islamic", months, MustDate("tabular-islamic", 1445, 1, 30), 1, arith.Exact, MustDate("tabular-islamic", 1445, 3, 1)},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.add(tc.from, tc.n, tc.rule)
			if err != nil {
				t.Fatalf("adding %d to %#v with rule %v = _, %v", tc.n, tc.from, tc.rule, err)
			}
			if got != tc.want {
				t.Errorf("adding %d to %#v with rule %v = %#v, want %#v", tc.n, tc.from, tc.rule, got, tc.want)
			}
		})
	}

	if _, err := MustDate("gregorian", 2023, 3, 31).AddMonths(1, arith.Overflow); !errors.Is(err, schema.ErrOverflow) {
		t.Errorf("AddMonths(1, Overflow) = _, %v, want %v", err, schema.ErrOverflow)
	}
	if _, err := MustDate("gregorian", 2024, 2, 29).AddYears(1, arith.Overflow); !errors.Is(err, schema.ErrOverflow) {
		t.Errorf("AddYears(1, Overflow) = _, %v, want %v", err, schema.ErrOverflow)
	}
	if _, err := Gregorian().MaxDate().AddYears(1, arith.Truncate); !errors.Is(err, schema.ErrOverflow) {
		t.Errorf("MaxDate().AddYears(1) = _, %v, want %v", err, schema.ErrOverflow)
	}
}

func TestDayKinds(t *testing.T) {
	tcs := []struct {
		date          Date
		intercalary   bool
		supplementary bool
	}{
		{MustDate("gregorian", 2024, 2, 29), true, false},
		{MustDate("gregorian", 2024, 2, 28), false, false},
		{MustDate("coptic", 1739, 13, 6), true, true},
		{MustDate("coptic", 1739, 13, 5), false, true},
		{MustDate("world", 2024, 6, 31), true, true},
		{MustDate("world", 2023, 12, 31), false, true},
		{MustDate("international-fixed", 2024, 6, 29), true, true},
		{MustDate("international-fixed", 2023, 13, 29), false, true},
		{MustDate("lunisolar", 3, 13, 1), true, false},
	}
	for _, tc := range tcs {
		if got := tc.date.IsIntercalary(); got != tc.intercalary {
			t.Errorf("%#v.IsIntercalary() = %v, want %v", tc.date, got, tc.intercalary)
		}
		if got := tc.date.IsSupplementary(); got != tc.supplementary {
			t.Errorf("%#v.IsSupplementary() = %v, want %v", tc.date, got, tc.supplementary)
		}
	}
}

func TestGoString(t *testing.T) {
	d := MustDate("french-republican", 232, 1, 1)
	if got, want := d.GoString(), `calendar.MustDate("french-republican", 232, 1, 1)`; got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestMustDatePanics(t *testing.T) {
	for _, tc := range []struct {
		name             string
		year, month, day int
	}{
		{"martian", 1, 1, 1},
		{"gregorian", 2023, 2, 29},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MustDate(%q, %d, %d, %d) did not panic", tc.name, tc.year, tc.month, tc.day)
				}
			}()
			MustDate(tc.name, tc.year, tc.month, tc.day)
		}()
	}
}

func TestMarshalCalendars(t *testing.T) {
	for _, n := range Names() {
		c, _ := Lookup(n)
		mid, err := c.FromDayNumber(738817)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []Date{c.MinDate(), mid, c.MaxDate()} {
			b, err := want.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			got := c.MinDate()
			if err := got.UnmarshalText(b); err != nil || got != want {
				t.Errorf("UnmarshalText(%q) = %#v, %v, want %#v, <nil>", b, got, err, want)
			}

			b, err = want.MarshalBinary()
			if err != nil {
				t.Fatal(err)
			}
			got = c.MinDate()
			if err := got.UnmarshalBinary(b); err != nil || got != want {
				t.Errorf("UnmarshalBinary(%q) = %#v, %v, want %#v, <nil>", b, got, err, want)
			}
		}
	}
}

func addAll(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, tc.month, tc.day)
	}
}

func FuzzDate(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		if _, err := Gregorian().Date(year, month, day); err != nil {
			return
		}
		check(t, year, month, day)
	})
}

func FuzzMarshalText(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := Gregorian().Date(year, month, day)
		if err != nil {
			return
		}
		b, _ := want.MarshalText()
		t.Logf("Date(%d, %d, %d).MarshalText() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		d, err := Gregorian().FromDayNumber(DayNumber(rnd.Intn(1e6)))
		if err != nil {
			f.Fatal(err)
		}
		b, err := d.MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalText does not panic.
		d.UnmarshalText(b)
	})
}

func FuzzMarshalBinary(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := Gregorian().Date(year, month, day)
		if err != nil {
			return
		}
		b, _ := want.MarshalBinary()
		t.Logf("Date(%d, %d, %d).MarshalBinary() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalBinary(b); err != nil {
			t.Errorf("UnmarshalBinary(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalBinary(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		d, err := Gregorian().FromDayNumber(DayNumber(rnd.Intn(1e6)))
		if err != nil {
			f.Fatal(err)
		}
		b, err := d.MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalBinary does not panic.
		d.UnmarshalBinary(b)
	})
}

// check that the given year, month and day values produce the same date
// calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	d, err := Gregorian().Date(year, month, day)
	if err != nil {
		t.Fatalf("Date(%d, %d, %d) = _, %v", year, month, day, err)
	}
	got := d.Time(6, 0, 0, 0, time.UTC)
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Date(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	Y, M, D := d.Date()
	if wantY, wantM, wantD := want.Date(); Y != wantY || M != int(wantM) || D != wantD {
		t.Errorf("Date(%d, %d, %d).Date() = %d, %d, %d, want %d, %d, %d", year, month, day, Y, M, D, wantY, wantM, wantD)
	}
	if gotY, wantY := d.Year(), want.Year(); gotY != wantY {
		t.Errorf("Date(%d, %d, %d).Year() = %d, want %d", year, month, day, gotY, wantY)
	}
	if gotM, wantM := d.Month(), int(want.Month()); gotM != wantM {
		t.Errorf("Date(%d, %d, %d).Month() = %d, want %d", year, month, day, gotM, wantM)
	}
	if gotD, wantD := d.Day(), want.Day(); gotD != wantD {
		t.Errorf("Date(%d, %d, %d).Day() = %d, want %d", year, month, day, gotD, wantD)
	}
	if gotYD, wantYD := d.YearDay(), want.YearDay(); gotYD != wantYD {
		t.Errorf("Date(%d, %d, %d).YearDay() = %d, want %d", year, month, day, gotYD, wantYD)
	}
	if gotWD, wantWD := d.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("Date(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
	gotIY, gotIW := d.ISOWeek()
	wantIY, wantIW := want.ISOWeek()
	if gotIY != wantIY || gotIW != wantIW {
		t.Errorf("Date(%d, %d, %d).ISOWeek() = (%d, %d), want (%d, %d)", year, month, day, gotIY, gotIW, wantIY, wantIW)
	}
	// The same day in another calendar has the same weekday and ISO week.
	j, err := d.In(Julian())
	if err != nil {
		t.Fatalf("%#v.In(Julian()) = _, %v", d, err)
	}
	if j.Weekday() != d.Weekday() {
		t.Errorf("%#v.Weekday() = %v, want %v", j, j.Weekday(), d.Weekday())
	}
	if y, w := j.ISOWeek(); y != gotIY || w != gotIW {
		t.Errorf("%#v.ISOWeek() = (%d, %d), want (%d, %d)", j, y, w, gotIY, gotIW)
	}
}
