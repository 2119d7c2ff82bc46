// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar_test

import (
	"fmt"
	"time"

	"gonih.org/calendar"
	"gonih.org/calendar/arith"
)

// ExampleCalendar_Date demonstrates some useful patterns when creating
// dates.
func ExampleCalendar_Date() {
	// Create a fixed date:
	d, err := calendar.Gregorian().Date(2023, 12, 31)
	fmt.Println(d, err)

	// Dates are not normalized:
	_, err = calendar.Gregorian().Date(2023, 12, 40)
	fmt.Println(err)

	// Get the Date of a time.Time:
	t := time.Date(2024, 1, 10, 13, 24, 42, 0, time.UTC)
	y, m, day := t.Date()
	d, err = calendar.Gregorian().Date(y, int(m), day)
	fmt.Println(d, err)

	// Output:
	// 2023-12-31 <nil>
	// gregorian: date 2023-12-40: day out of range: invalid calendrical value
	// 2024-01-10 <nil>
}

// ExampleDate_In demonstrates converting dates between calendars.
func ExampleDate_In() {
	d := calendar.MustDate("gregorian", 2023, 9, 12)
	for _, c := range []*calendar.Calendar{
		calendar.Julian(),
		calendar.Coptic(),
		calendar.Persian(),
		calendar.TabularIslamic(),
	} {
		e, err := d.In(c)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%-15v %v (%v)\n", c, e, e.Format("2 January 2006"))
	}

	// Output:
	// julian          2023-08-30 (30 August 2023)
	// coptic          1740-01-01 (1 Thout 1740)
	// persian         1402-06-21 (21 Shahrivar 1402)
	// tabular-islamic 1445-02-26 (26 Safar 1445)
}

// ExampleDate_AddMonths demonstrates how the addition rules handle days
// missing in the target month.
func ExampleDate_AddMonths() {
	d := calendar.MustDate("gregorian", 2023, 1, 31)
	for _, rule := range []arith.AdditionRule{arith.Truncate, arith.Overspill, arith.Exact, arith.Overflow} {
		e, err := d.AddMonths(1, rule)
		if err != nil {
			fmt.Printf("%-9v %v\n", rule, err)
			continue
		}
		fmt.Printf("%-9v %v\n", rule, e)
	}

	// Output:
	// truncate  2023-02-28
	// overspill 2023-03-01
	// exact     2023-03-03
	// overflow  2023-01-31 does not exist, 3 days past 2023-02-28: calendrical overflow
}

// ExampleDate_Sub demonstrates how to check if two dates differ by a given
// amount.
func ExampleDate_Sub() {
	// When comparing by number of days, we can just check their difference:
	if d1, d2 := calendar.MustDate("gregorian", 2024, 3, 5), calendar.MustDate("gregorian", 2024, 2, 5); d1.Sub(d2) < 31 {
		fmt.Printf("%v and %v are less than 31 days apart.\n", d1, d2)
	}

	// However, if we want to check if they are a month apart, we use
	// AddMonths:
	d1, d2 := calendar.MustDate("gregorian", 2024, 2, 5), calendar.MustDate("gregorian", 2024, 3, 5)
	if next, err := d1.AddMonths(1, arith.Truncate); err == nil && next.Compare(d2) <= 0 {
		fmt.Printf("%v and %v are at least a month apart.\n", d1, d2)
	}

	// Dates of different calendars can be compared as well:
	if d1, d2 := calendar.MustDate("julian", 2024, 2, 5), calendar.MustDate("gregorian", 2024, 2, 5); d1.Compare(d2) > 0 {
		fmt.Printf("julian %v is %d days after gregorian %v.\n", d1, d1.Sub(d2), d2)
	}

	// Output:
	// 2024-03-05 and 2024-02-05 are less than 31 days apart.
	// 2024-02-05 and 2024-03-05 are at least a month apart.
	// julian 2024-02-05 is 13 days after gregorian 2024-02-05.
}

// ExampleParse demonstrates the usage of Parse.
func ExampleParse() {
	// Parse date according to RFC3339.
	fmt.Println(calendar.Parse(calendar.RFC3339, "2024-05-14"))

	// Parse the same date in E-Mail format.
	fmt.Println(calendar.Parse(calendar.RFC1123, "14 May 2024"))

	// Parse the same date in US date format
	fmt.Println(calendar.Parse("01/02/2006", "05/14/2024"))

	// Parse validates ranges.
	fmt.Println(calendar.Parse(calendar.RFC3339, "2024-13-01"))
	fmt.Println(calendar.Parse(calendar.RFC3339, "2024-02-29"))
	fmt.Println(calendar.Parse(calendar.RFC3339, "2023-02-29"))

	// But it does not validate whether the specified day of the week is
	// correct for the specified date, for compatibility with time.Time.
	d, err := calendar.Parse("Monday 2006-01-02", "Friday 2024-02-25")
	fmt.Println(d, err, d.Weekday())

	// Output:
	// 2024-05-14 <nil>
	// 2024-05-14 <nil>
	// 2024-05-14 <nil>
	// 0001-01-01 parsing date "2024-13-01": month out of range
	// 2024-02-29 <nil>
	// 0001-01-01 parsing date "2023-02-29": day out of range
	// 2024-02-25 <nil> Sunday
}

// ExampleCalendar_Parse demonstrates parsing dates with the month names of
// a calendar.
func ExampleCalendar_Parse() {
	d, err := calendar.FrenchRepublican().Parse("2 January 2006", "18 Brumaire 0008")
	fmt.Println(d, err)
	g, _ := d.In(calendar.Gregorian())
	fmt.Println(g.Format("Monday, 2 January 2006"))

	// Output:
	// 0008-02-18 <nil>
	// Friday, 8 November 1799
}
