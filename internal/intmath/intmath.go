// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intmath contains the integer helpers shared by all calendrical
// schemas.
//
// Calendrical formulas are only valid for negative (proleptic) years if
// divisions round towards negative infinity. Go's / and % truncate towards
// zero, so every schema goes through the helpers in this package instead.
package intmath

import "math"

// Divide returns floor(m / n). n must be positive.
func Divide(m, n int) int {
	q := m / n
	if m%n < 0 {
		q--
	}
	return q
}

// Modulo returns m mod n in the range [0, n). n must be positive.
func Modulo(m, n int) int {
	r := m % n
	if r < 0 {
		r += n
	}
	return r
}

// DivMod returns floor(m / n) and m mod n. n must be positive.
func DivMod(m, n int) (q, r int) {
	q, r = m/n, m%n
	if r < 0 {
		q--
		r += n
	}
	return q, r
}

// Divide64 is Divide on 64-bit integers. Schemas use it whenever an
// intermediate product may not fit in 32 bits.
func Divide64(m, n int64) int64 {
	q := m / n
	if m%n < 0 {
		q--
	}
	return q
}

// Div4 returns floor(m / 4). The arithmetic shift rounds towards negative
// infinity, so it agrees with Divide(m, 4) for every m.
func Div4(m int) int {
	return m >> 2
}

// Mod4 returns m mod 4 in the range [0, 4), using two's complement.
func Mod4(m int) int {
	return m & 3
}

// Add returns a + b and whether the sum fits in a 32-bit signed integer.
// Both operands are expected to fit in 32 bits.
func Add(a, b int) (int, bool) {
	s := int64(a) + int64(b)
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, false
	}
	return int(s), true
}

// Sub returns a - b and whether the difference fits in a 32-bit signed
// integer.
func Sub(a, b int) (int, bool) {
	s := int64(a) - int64(b)
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, false
	}
	return int(s), true
}
