// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arith

import (
	"fmt"
	"strings"

	"gonih.org/calendar/schema"
)

// AdditionRule decides what happens to a result that had to be clamped.
type AdditionRule int

const (
	// Truncate keeps the clamped result, the last valid day.
	Truncate AdditionRule = iota
	// Overspill moves the clamped result to the next day (or month).
	Overspill
	// Exact moves the clamped result by the roundoff, as if the missing
	// days had been there.
	Exact
	// Overflow rejects a result that had to be clamped.
	Overflow
)

var ruleNames = [...]string{
	Truncate:  "truncate",
	Overspill: "overspill",
	Exact:     "exact",
	Overflow:  "overflow",
}

// String implements fmt.Stringer.
func (r AdditionRule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("AdditionRule(%d)", int(r))
	}
	return ruleNames[r]
}

// ParseAdditionRule returns the rule with the given name, ignoring case.
func ParseAdditionRule(s string) (AdditionRule, error) {
	for r, name := range ruleNames {
		if strings.EqualFold(s, name) {
			return AdditionRule(r), nil
		}
	}
	return 0, fmt.Errorf("unknown addition rule %q: %w", s, schema.ErrInvalid)
}

// Math is arithmetic with a fixed addition rule.
type Math struct {
	a    Arithmetic
	rule AdditionRule
}

// NewMath returns a Math applying rule to the results of a.
func NewMath(a Arithmetic, rule AdditionRule) *Math {
	return &Math{a: a, rule: rule}
}

// Rule returns the addition rule of m.
func (m *Math) Rule() AdditionRule { return m.rule }

// AddYears adds years to p, applying the addition rule.
func (m *Math) AddYears(p schema.DateParts, years int) (schema.DateParts, error) {
	q, roundoff, err := m.a.AddYears(p, years)
	if err != nil {
		return schema.DateParts{}, err
	}
	return m.adjustDate(p, q, roundoff)
}

// AddMonths adds months to p, applying the addition rule.
func (m *Math) AddMonths(p schema.DateParts, months int) (schema.DateParts, error) {
	q, roundoff, err := m.a.AddDateMonths(p, months)
	if err != nil {
		return schema.DateParts{}, err
	}
	return m.adjustDate(p, q, roundoff)
}

func (m *Math) adjustDate(p, q schema.DateParts, roundoff int) (schema.DateParts, error) {
	if roundoff == 0 {
		return q, nil
	}
	switch m.rule {
	case Overspill:
		return m.a.NextDay(q)
	case Exact:
		return m.a.AddDays(q, roundoff)
	case Overflow:
		return schema.DateParts{}, overflowf("%v does not exist, %d days past %v", p, roundoff, q)
	}
	return q, nil
}

// AddOrdinalYears adds years to p, applying the addition rule.
func (m *Math) AddOrdinalYears(p schema.OrdinalParts, years int) (schema.OrdinalParts, error) {
	q, roundoff, err := m.a.AddOrdinalYears(p, years)
	if err != nil || roundoff == 0 {
		return q, err
	}
	switch m.rule {
	case Overspill:
		return m.a.NextOrdinalDay(q)
	case Exact:
		return m.a.AddOrdinalDays(q, roundoff)
	case Overflow:
		return schema.OrdinalParts{}, overflowf("%v does not exist, %d days past %v", p, roundoff, q)
	}
	return q, nil
}

// AddMonthYears adds years to p, applying the addition rule.
func (m *Math) AddMonthYears(p schema.MonthParts, years int) (schema.MonthParts, error) {
	q, roundoff, err := m.a.AddMonthYears(p, years)
	if err != nil || roundoff == 0 {
		return q, err
	}
	switch m.rule {
	case Overspill:
		return m.a.NextMonth(q)
	case Exact:
		return m.a.AddMonths(q, roundoff)
	case Overflow:
		return schema.MonthParts{}, overflowf("%v does not exist, %d months past %v", p, roundoff, q)
	}
	return q, nil
}
