// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Decimal-to-string conversion functions.

package decnum

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns x in scientific notation, the to-scientific-string
// conversion of the General Decimal Arithmetic: exponential notation is used
// if the exponent is positive or if the adjusted exponent is less than -6.
// Otherwise, x is printed in plain notation.
func (x *Decimal) String() string {
	return string(x.appendString(nil, false))
}

// EngString is like String, but uses engineering notation: the exponent, if
// any, is a multiple of three.
func (x *Decimal) EngString() string {
	return string(x.appendString(nil, true))
}

// Text converts x to a string according to the given format and precision
// prec. See Append.
func (x *Decimal) Text(format byte, prec int) string {
	const extra = 10 // sign, point and exponent
	return string(x.Append(make([]byte, 0, max(prec, 0)+extra), format, prec))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer. The format is one of:
//
//	'e'	-d.dddde±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'E'	-d.ddddE±dd, decimal exponent, at least two (possibly 0) exponent digits
//	'f'	-ddddd.dddd, no exponent
//	'g'	like 'e' for large exponents, like 'f' otherwise
//	'G'	like 'E' for large exponents, like 'f' otherwise
//	's'	scientific notation, like String
//
// For 'e', 'E' and 'f' the precision is the number of digits after the
// decimal point. For 'g', 'G' and 's' it is the total number of significant
// digits. A negative precision selects all the digits of x. Values are
// rounded half to even.
func (x *Decimal) Append(buf []byte, format byte, prec int) []byte {
	if x.isSpecial() {
		return x.appendString(buf, false)
	}
	if x.isNeg() {
		buf = append(buf, '-')
	}
	if format == 's' {
		if prec < 0 || int64(prec) >= x.ndigits() || x.isZeroCoeff() {
			return appendSci(buf, x.mant.appendDigits(nil), x.exp, false)
		}
		d := x.fmtDec()
		d.round(max(prec, 1))
		return appendSci(buf, d.mant, d.exp-int64(len(d.mant)), false)
	}

	d := x.fmtDec()
	shortest := prec < 0
	if shortest {
		d.trim()
		switch format {
		case 'e', 'E':
			prec = max(len(d.mant)-1, 0)
		case 'f':
			prec = int(max(int64(len(d.mant))-d.exp, 0))
		case 'g', 'G':
			prec = len(d.mant)
		}
	} else {
		switch format {
		case 'e', 'E':
			d.round(1 + prec)
		case 'f':
			d.round(int(d.exp + int64(prec)))
		case 'g', 'G':
			if prec == 0 {
				prec = 1
			}
			d.round(prec)
		}
	}

	switch format {
	case 'e', 'E':
		return fmtE(buf, format, prec, d)
	case 'f':
		return fmtF(buf, prec, d)
	case 'g', 'G':
		// trim trailing fractional zeros in %e format
		eprec := prec
		if eprec > len(d.mant) && int64(len(d.mant)) >= d.exp {
			eprec = len(d.mant)
		}
		// %e is used if the exponent from the conversion is less than -4 or
		// greater than or equal to the precision. If precision was the
		// shortest possible, use eprec = 6 for this decision.
		if shortest {
			eprec = 6
		}
		exp := d.exp - 1
		if exp < -4 || exp >= int64(eprec) {
			if prec > len(d.mant) {
				prec = len(d.mant)
			}
			return fmtE(buf, format+'e'-'g', prec-1, d)
		}
		if int64(prec) > d.exp {
			prec = len(d.mant)
		}
		return fmtF(buf, int(max(int64(prec)-d.exp, 0)), d)
	}

	// unknown format
	if x.isNeg() {
		buf = buf[:len(buf)-1] // sign was added prematurely - remove it again
	}
	return append(buf, '%', format)
}

// appendString appends the to-scientific-string (or to-engineering-string if
// eng is set) form of x to buf.
func (x *Decimal) appendString(buf []byte, eng bool) []byte {
	if x.isNeg() {
		buf = append(buf, '-')
	}
	switch {
	case x.IsInf():
		return append(buf, "Infinity"...)
	case x.IsNaN():
		if x.IsSNaN() {
			buf = append(buf, 's')
		}
		buf = append(buf, "NaN"...)
		if len(x.mant) > 0 {
			buf = x.mant.appendDigits(buf)
		}
		return buf
	}
	return appendSci(buf, x.mant.appendDigits(nil), x.exp, eng)
}

// appendSci appends the digits of coefficient c with exponent exp to buf in
// scientific or engineering notation.
func appendSci(buf, c []byte, exp int64, eng bool) []byte {
	n := int64(len(c))
	left := exp + n
	var dot int64
	switch {
	case exp <= 0 && left > -6:
		dot = left
	case !eng:
		dot = 1
	case c[0] == '0':
		// zero: the exponent becomes a multiple of three by padding
		// zeros after the decimal point
		dot = floorMod(left+1, 3) - 1
	default:
		dot = floorMod(left-1, 3) + 1
	}

	switch {
	case dot <= 0:
		buf = append(buf, '0', '.')
		for i := dot; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, c...)
	case dot >= n:
		buf = append(buf, c...)
		for i := n; i < dot; i++ {
			buf = append(buf, '0')
		}
	default:
		buf = append(buf, c[:dot]...)
		buf = append(buf, '.')
		buf = append(buf, c[dot:]...)
	}
	if left != dot {
		buf = append(buf, 'E')
		if left-dot > 0 {
			buf = append(buf, '+')
		}
		buf = strconv.AppendInt(buf, left-dot, 10)
	}
	return buf
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// fmtDec is the digit string of a finite Decimal, mant[0] being the most
// significant digit. Its value is 0.mant × 10**exp. Zero has an empty mant.
type fmtDec struct {
	mant []byte
	exp  int64
}

func (x *Decimal) fmtDec() fmtDec {
	if x.isZeroCoeff() {
		return fmtDec{}
	}
	return fmtDec{mant: x.mant.appendDigits(nil), exp: x.exp + x.dig}
}

// at returns the n'th digit of d, or '0' if n is out of range.
func (d *fmtDec) at(n int64) byte {
	if 0 <= n && n < int64(len(d.mant)) {
		return d.mant[n]
	}
	return '0'
}

// trim removes trailing zeros.
func (d *fmtDec) trim() {
	i := len(d.mant)
	for i > 0 && d.mant[i-1] == '0' {
		i--
	}
	d.mant = d.mant[:i]
	if i == 0 {
		d.exp = 0
	}
}

// round rounds d half to even to n digits.
func (d *fmtDec) round(n int) {
	if n < 0 || n >= len(d.mant) {
		if n < 0 {
			d.mant = d.mant[:0]
			d.exp = 0
		}
		return
	}
	if d.shouldRoundUp(n) {
		d.roundUp(n)
	} else {
		d.mant = d.mant[:n]
	}
	d.trim()
}

func (d *fmtDec) shouldRoundUp(n int) bool {
	if d.mant[n] == '5' && n+1 == len(strings.TrimRight(string(d.mant), "0")) {
		// exactly halfway - round to even
		return n > 0 && (d.mant[n-1]-'0')&1 != 0
	}
	return d.mant[n] >= '5'
}

func (d *fmtDec) roundUp(n int) {
	// find first digit < '9'
	for n > 0 && d.mant[n-1] >= '9' {
		n--
	}
	if n == 0 {
		// all digits are '9's
		d.mant = append(d.mant[:0], '1')
		d.exp++
		return
	}
	d.mant[n-1]++
	d.mant = d.mant[:n]
}

// %e: d.ddddde±dd
func fmtE(buf []byte, fmt byte, prec int, d fmtDec) []byte {
	// first digit
	ch := byte('0')
	if len(d.mant) > 0 {
		ch = d.mant[0]
	}
	buf = append(buf, ch)

	// .moredigits
	if prec > 0 {
		buf = append(buf, '.')
		i := 1
		m := min(len(d.mant), prec+1)
		if i < m {
			buf = append(buf, d.mant[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			buf = append(buf, '0')
		}
	}

	// e±
	buf = append(buf, fmt)
	var exp int64
	if len(d.mant) > 0 {
		exp = d.exp - 1 // -1 because first digit was printed before '.'
	}
	if exp < 0 {
		ch = '-'
		exp = -exp
	} else {
		ch = '+'
	}
	buf = append(buf, ch)

	// dd...d
	if exp < 10 {
		buf = append(buf, '0') // at least 2 exponent digits
	}
	return strconv.AppendInt(buf, exp, 10)
}

// %f: ddddddd.ddddd
func fmtF(buf []byte, prec int, d fmtDec) []byte {
	// integer, padded with zeros as needed
	if d.exp > 0 {
		m := min(int64(len(d.mant)), d.exp)
		buf = append(buf, d.mant[:m]...)
		for ; m < d.exp; m++ {
			buf = append(buf, '0')
		}
	} else {
		buf = append(buf, '0')
	}

	// fraction
	if prec > 0 {
		buf = append(buf, '.')
		for i := 1; i <= prec; i++ {
			buf = append(buf, d.at(d.exp-1+int64(i)))
		}
	}
	return buf
}

var _ fmt.Formatter = &decimalZero // *Decimal must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the formats 'e', 'E', 'f', 'F',
// 'g', 'G', 's' and 'v'. 's' and 'v' without precision print x like String.
// Format also supports specification of the minimum precision in digits, the
// output field width, as well as the format flags '+' and ' ' for sign
// control, '0' for space or zero padding, and '-' for left or right
// justification. See the fmt package for details.
func (x *Decimal) Format(s fmt.State, format rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 6 // default precision for 'e', 'f'
	}

	switch format {
	case 'e', 'E', 'f':
		// nothing to do
	case 'F':
		// (*Decimal).Text doesn't support 'F'; handle like 'f'
		format = 'f'
	case 'v', 's':
		format = 's'
		if !hasPrec {
			prec = -1
		}
	case 'g', 'G':
		if !hasPrec {
			prec = -1
		}
	default:
		fmt.Fprintf(s, "%%!%c(*decnum.Decimal=%s)", format, x.String())
		return
	}
	var buf []byte
	buf = x.Append(buf, byte(format), prec)
	if buf == nil {
		buf = []byte("?") // should never happen, but don't crash
	}
	// len(buf) > 0

	var sign string
	switch {
	case buf[0] == '-':
		sign = "-"
		buf = buf[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(buf) {
		padding = width - len(sign) - len(buf)
	}

	switch {
	case s.Flag('0') && x.IsFinite():
		// 0-padding on left
		writeMultiple(s, sign, 1)
		writeMultiple(s, "0", padding)
		s.Write(buf)
	case s.Flag('-'):
		// padding on right
		writeMultiple(s, sign, 1)
		s.Write(buf)
		writeMultiple(s, " ", padding)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		writeMultiple(s, sign, 1)
		s.Write(buf)
	}
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}
