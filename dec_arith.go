// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math/bits"
)

// A Word is a single digit of a coefficient in base _DB.
type Word uint

const (
	_W = bits.UintSize // word size in bits
	_S = _W / 8        // word size in bytes

	// _W * log10(2) = decimal digits per word. 9 decimal digits per 32 bits
	// word and 19 per 64 bits word.
	_DW = _W * 30103 / 100000
	// Decimal base for a word. 1e9 for 32 bits words and 1e19 for 64 bits
	// words. This breaks if bits.UintSize is neither 32 nor 64.
	_DB = 9999999998000000000*(_DW/19) + 1000000000*(_DW/9)
	// Maximum value of a decimal Word
	_DMax = _DB - 1
	// Bits per decimal Word: Log2(_DB)+1 = _DW * Log2(10) + 1
	_DWb = _DW*100000/30103 + 1
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow10 returns 10**n. n must be <= _DW.
func pow10(n uint) Word {
	if debugDecimal && n > _DW {
		panic("pow10: overflow")
	}
	return Word(pow10tab[n])
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n, that is the number of
// decimal digits of x. It returns 0 for x == 0.
func decDigits(x uint) (n uint) {
	if bits.UintSize == 32 {
		return decDigits32(uint32(x))
	}
	return decDigits64(uint64(x))
}

func decDigits64(x uint64) (n uint) {
	if x == 0 {
		return 0
	}
	n = pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

func decDigits32(x uint32) (n uint) {
	if x == 0 {
		return 0
	}
	n = pow2digitsTab[bits.Len32(x)]
	if x < uint32(pow10tab[n-1]) {
		n--
	}
	return n
}

// trailingZeroDigits returns the number of trailing zero digits of n != 0.
func trailingZeroDigits(n uint) uint {
	var d uint
	if bits.UintSize > 32 {
		if uint64(n)%10000000000000000 == 0 {
			n = uint(uint64(n) / uint64(10000000000000000))
			d += 16
		}
	}
	if n%100000000 == 0 {
		n /= 100000000
		d += 8
	}
	if n%10000 == 0 {
		n /= 10000
		d += 4
	}
	if n%100 == 0 {
		n /= 100
		d += 2
	}
	if n%10 == 0 {
		d++
	}
	return d
}

// pow10DivTab64 contains the "magic" numbers for fast division by 10**n
// where 1 <= n <= 19, x / 10**n = ((x >> pre) * m) >> (_W + post).
// See https://gmplib.org/~tege/divcnst-pldi94.pdf
var pow10DivTab64 = [...]magic{
	{10, 0xcccccccccccccccd, 0, 3},
	{100, 0xa3d70a3d70a3d70b, 1, 5},
	{1000, 0x83126e978d4fdf3c, 1, 8},
	{10000, 0xd1b71758e219652c, 0, 13},
	{100000, 0xa7c5ac471b478424, 1, 15},
	{1000000, 0x8637bd05af6c69b6, 0, 19},
	{10000000, 0xd6bf94d5e57a42bd, 1, 22},
	{100000000, 0xabcc77118461cefd, 0, 26},
	{1000000000, 0x89705f4136b4a598, 1, 28},
	{10000000000, 0xdbe6fecebdedd5bf, 0, 33},
	{100000000000, 0xafebff0bcb24aaff, 0, 36},
	{1000000000000, 0x8cbccc096f5088cc, 0, 39},
	{10000000000000, 0xe12e13424bb40e14, 1, 42},
	{100000000000000, 0xb424dc35095cd810, 1, 45},
	{1000000000000000, 0x901d7cf73ab0acda, 1, 48},
	{10000000000000000, 0xe69594bec44de15c, 1, 52},
	{100000000000000000, 0xb877aa3236a4b44a, 1, 55},
	{1000000000000000000, 0x9392ee8e921d5d08, 1, 58},
	{10000000000000000000, 0xec1e4a7db69561a6, 1, 62},
}

var pow10DivTab32 = [...]magic{
	{10, 0xcccccccd, 0, 3},
	{100, 0xa3d70a3e, 1, 5},
	{1000, 0x83126e98, 0, 9},
	{10000, 0xd1b71759, 0, 13},
	{100000, 0xa7c5ac48, 1, 15},
	{1000000, 0x8637bd06, 0, 19},
	{10000000, 0xd6bf94d6, 0, 23},
	{100000000, 0xabcc7712, 0, 26},
	{1000000000, 0x89705f42, 1, 28},
}

type magic struct {
	d    uint64 // divisor
	m    uint64 // multiplier
	pre  byte   // pre-shift
	post byte   // post-shift
}

func divisorPow10(n uint) magic {
	if debugDecimal && n == 0 {
		panic("divisorPow10: 10**0 is not a valid divisor")
	}
	if _W == 32 {
		return pow10DivTab32[n-1]
	}
	return pow10DivTab64[n-1]
}

func (m magic) div(n Word) (q, r Word) {
	h, _ := bits.Mul(uint(n)>>m.pre, uint(m.m))
	q = Word(h) >> m.post
	return q, n - q*Word(m.d)
}

//-----------------------------------------------------------------------------
// Binary word primitives (mirrors of math/big's arith.go)

// z1<<_W + z0 = x*y + c
func mulAddWWW_g(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	var cc uint
	lo, cc = bits.Add(lo, uint(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v, u1 < v
func divWW_g(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div(uint(u1), uint(u0), uint(v))
	return Word(qq), Word(rr)
}

//-----------------------------------------------------------------------------
// Decimal word primitives

// z1*_DB + z0 = x*y
func mul10WW_g(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul(uint(x), uint(y))
	return div10W_g(Word(hi), Word(lo))
}

// q = (u1*_DB + u0 - r)/v, u1 < v
func div10WW_g(u1, u0, v Word) (q, r Word) {
	// convert to base 2
	hi, lo := mulAddWWW_g(u1, _DB, u0)
	// q = (u-r)/v. Since v < _DB => r < _DB
	return divWW_g(hi, lo, v)
}

func add10WWW_g(x, y, cIn Word) (s, c Word) {
	r, cc := bits.Add(uint(x), uint(y), uint(cIn))
	var c1 uint
	// compiled without jumps on amd64.
	if r >= _DB {
		c1 = 1
	}
	cc |= c1
	r -= _DB & -cc
	return Word(r), Word(cc)
}

// The resulting carry c is either 0 or 1.
func add10VV_g(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = add10WWW_g(x[i], y[i], c)
	}
	return
}

func sub10WWW_g(x, y, b Word) (d, c Word) {
	dd, cc := bits.Sub(uint(x), uint(y), uint(b))
	if cc != 0 {
		dd += _DB
	}
	return Word(dd), Word(cc)
}

// The resulting borrow c is either 0 or 1.
func sub10VV_g(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = sub10WWW_g(x[i], y[i], c)
	}
	return
}

// add10VW sets z to x + y. The resulting carry c is either 0 or 1.
func add10VW_g(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], c = add10WWW_g(x[i], c, 0)
	}
	return
}

// sub10VW sets z to x - y. The resulting borrow c is either 0 or 1.
func sub10VW_g(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			copy(z[i:], x[i:])
			return 0
		}
		z[i], c = sub10WWW_g(x[i], c, 0)
	}
	return
}

// shl10VU sets z to x*(10**s) for 0 <= s < _DW and returns the digits shifted
// out of the most significant word. len(z) must equal len(x).
func shl10VU_g(z, x []Word, s uint) (r Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 || len(x) == 0 {
		return
	}
	d, m := divisorPow10(_DW-s), pow10(s)
	var h, l Word
	r, l = d.div(x[len(x)-1])
	for i := len(z) - 1; i > 0; i-- {
		t := l
		h, l = d.div(x[i-1])
		z[i] = t*m + h
	}
	z[0] = l * m
	return r
}

// shr10VU sets z to x/(10**s) for 0 <= s < _DW and returns the remainder
// x[0] % 10**s. len(z) must equal len(x).
func shr10VU_g(z, x []Word, s uint) (r Word) {
	if s == 0 {
		copy(z, x)
		return
	}
	if len(z) == 0 || len(x) == 0 {
		return
	}
	var h, l Word
	d, m := divisorPow10(s), pow10(_DW-s)
	h, r = d.div(x[0])
	for i := 1; i < len(z) && i < len(x); i++ {
		t := h
		h, l = d.div(x[i])
		z[i-1] = t + l*m
	}
	z[len(z)-1] = h
	return r
}

// mulAdd10VWW sets z to x*y + r and returns the carry. y, r < _DB.
func mulAdd10VWW_g(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := mulAddWWW_g(x[i], y, c)
		c, z[i] = div10W_g(hi, lo)
	}
	return
}

// addMul10VVW adds x*y to z and returns the carry. y < _DB.
func addMul10VVW_g(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		// x[i]*y + z[i] + c in base 2 => (hi+cc) * 2**_W + lo
		hi, z0 := mulAddWWW_g(x[i], y, z[i])
		lo, cc := bits.Add(uint(z0), uint(c), 0)
		c, z[i] = div10W_g(hi+Word(cc), Word(lo))
	}
	return
}

// div10VWW sets z to (xn*_DB**len(x) + x)/y and returns the remainder.
// xn < y.
func div10VWW_g(z, x []Word, y, xn Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = div10WW_g(r, x[i], y)
	}
	return
}

// div10W_g returns the quotient and remainder of a double-Word n divided by _DB:
//
// q = n/_DB, r = n%_DB
//
// with the dividend bits' upper half in parameter n1 and the lower half in
// parameter n0. It panics in debug mode if n1 > _DMax (quotient overflow).
//
// This function uses the algorithm from "Division by invariant integers using
// multiplication" by Torbjörn Granlund & Peter L. Montgomery, section 8,
// Dividing udword by uword. See https://gmplib.org/~tege/divcnst-pldi94.pdf.
//
// Additions or subtractions of 2**N in the paper are no-ops and have been
// removed below.
func div10W_g(n1, n0 Word) (q, r Word) {
	const (
		N     = _W
		d     = _DB
		l     = _DWb
		mP    = (1<<(N+l)-1)/d - 1<<N // m'
		dNorm = d << (N - l)
	)
	if debugDecimal && n1 > _DMax {
		panic("decnum: integer overflow")
	}

	// if N == 64, N == l => n2 == n1 && n10 == n0
	n2 := n1<<(N-l) + n0>>l
	n10 := n0 << (N - l)
	// -n1 = (n10 < 0 ? -1 : 0)
	_n1 := Word(int(n10) >> (N - 1))
	nAdj := n10 + (_n1 & dNorm)

	// q1 = n2 + HIGH(mP * (n2-_n1) + nAdj)
	q1, _ := mulAddWWW_g(mP, n2-_n1, nAdj)
	q1 += n2
	// dr = 2**N*n1 + n0 - 2**N*d + (-1-q1)*d
	//    = (-1-q1) * d + n0 +           (1)
	//      2**N * (n1 - d)              (2)
	// let t = -1 - q1 = ^q1
	t := ^q1
	drHi, drLo := mulAddWWW_g(t, d, n0) // (1)
	drHi += n1 - d                      // (2)
	// q = drHi - (-1-q1)
	// r = drLow + (d & drHi)
	return drHi - t, drLo + d&drHi
}
