// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calconv converts dates between calendars.
//
// Usage:
//
//	calconv [flags] [date]
//
// The date is parsed in the calendar given by -from, using -layout. If it
// is omitted, the current date is used. Years, months and days are then
// added, in that order, and the result is printed in the calendar given by
// -to.
//
// For example
//
//	calconv -to coptic -months 1 -rule overspill 2023-08-31
//
// prints the Coptic date of October 1st, 2023.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gonih.org/calendar"
	"gonih.org/calendar/arith"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "calconv:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("calconv", flag.ContinueOnError)
	var (
		from   = fs.String("from", "gregorian", "calendar of the input date")
		to     = fs.String("to", "", "calendar of the output date (default: the input calendar)")
		layout = fs.String("layout", calendar.RFC3339, "layout of the input and output dates")
		days   = fs.Int("days", 0, "number of days to add")
		months = fs.Int("months", 0, "number of months to add")
		years  = fs.Int("years", 0, "number of years to add")
		rule   = fs.String("rule", arith.Truncate.String(), "how to handle days missing from the target month: truncate, overspill, exact or overflow")
		list   = fs.Bool("list", false, "list the supported calendars and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *list {
		return listCalendars(w)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("too many arguments: %q", fs.Args())
	}

	src, err := lookup(*from)
	if err != nil {
		return err
	}
	dst := src
	if *to != "" {
		if dst, err = lookup(*to); err != nil {
			return err
		}
	}
	r, err := arith.ParseAdditionRule(*rule)
	if err != nil {
		return err
	}

	var d calendar.Date
	if fs.NArg() == 0 {
		d, err = src.Today(time.Local)
	} else {
		d, err = src.Parse(*layout, fs.Arg(0))
	}
	if err != nil {
		return err
	}
	if *years != 0 {
		if d, err = d.AddYears(*years, r); err != nil {
			return err
		}
	}
	if *months != 0 {
		if d, err = d.AddMonths(*months, r); err != nil {
			return err
		}
	}
	if *days != 0 {
		if d, err = d.AddDays(*days); err != nil {
			return err
		}
	}
	if d, err = d.In(dst); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, d.Format(*layout))
	return err
}

func lookup(name string) (*calendar.Calendar, error) {
	c, ok := calendar.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown calendar %q (see -list)", name)
	}
	return c, nil
}

func listCalendars(w io.Writer) error {
	for _, n := range calendar.Names() {
		c, _ := calendar.Lookup(n)
		if _, err := fmt.Fprintf(w, "%-20s %-18v %v\n", n, c.Schema().Family(), epochDate(c)); err != nil {
			return err
		}
	}
	return nil
}

// epochDate returns the Gregorian date of the first day of year 1 of c.
func epochDate(c *calendar.Calendar) calendar.Date {
	d, err := calendar.Gregorian().FromDayNumber(c.Epoch())
	if err != nil {
		panic(err)
	}
	return d
}
