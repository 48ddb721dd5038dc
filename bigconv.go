// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// setInt64 sets z to the exact value of v.
func (z *Decimal) setInt64(v int64, st *Status) *Decimal {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	var buf [64 / _W]Word
	return z.setTriple(v < 0, dec(buf[:0]).setUint64(u), 0, st)
}

// SetInt64 sets z to v rounded to ctx and returns z.
func (z *Decimal) SetInt64(v int64, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	return z.setInt64(v, st).finalize(ctx, st)
}

// SetUint64 sets z to v rounded to ctx and returns z.
func (z *Decimal) SetUint64(v uint64, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	var buf [64 / _W]Word
	return z.setTriple(false, dec(buf[:0]).setUint64(v), 0, st).finalize(ctx, st)
}

// setBits sets z to the value of the binary natural number b.
func (z dec) setBits(b []big.Word) dec {
	t := make([]big.Word, len(b))
	copy(t, b)
	z = z[:0]
	for n := len(t); n > 0; {
		var r uint
		for i := n - 1; i >= 0; i-- {
			var q uint
			q, r = bits.Div(r, uint(t[i]), _DB)
			t[i] = big.Word(q)
		}
		z = append(z, Word(r))
		for n > 0 && t[n-1] == 0 {
			n--
		}
	}
	return z
}

// bits returns x as a binary natural number.
func (x dec) bits() []big.Word {
	var z []big.Word
	for i := len(x) - 1; i >= 0; i-- {
		c := uint(x[i])
		for j := range z {
			hi, lo := bits.Mul(uint(z[j]), _DB)
			lo, cc := bits.Add(lo, c, 0)
			z[j], c = big.Word(lo), hi+cc
		}
		if c != 0 {
			z = append(z, big.Word(c))
		}
	}
	return z
}

// SetBigInt sets z to b rounded to ctx and returns z.
func (z *Decimal) SetBigInt(b *big.Int, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	return z.setTriple(b.Sign() < 0, dec(nil).setBits(b.Bits()), 0, st).finalize(ctx, st)
}

// SetFloat64 sets z to the exact value of f and returns z. NaN and ±Inf map
// to a quiet NaN and ±Infinity.
func (z *Decimal) SetFloat64(f float64, st *Status) *Decimal {
	switch {
	case math.IsNaN(f):
		return z.SetNaN(false)
	case math.IsInf(f, 0):
		return z.SetInf(f < 0)
	case f == 0:
		return z.setZero(math.Signbit(f), 0)
	}
	fr, e := math.Frexp(math.Abs(f))
	m := uint64(fr * (1 << 53))
	e -= 53
	tz := bits.TrailingZeros64(m)
	m >>= uint(tz)
	e += tz

	c := dec(nil).setUint64(m)
	var exp int64
	switch {
	case e > 0:
		// m×2**e, in steps that keep the multiplier below _DB
		for ; e > 0; e -= 29 {
			c = c.mulAddWW(c, Word(1)<<uint(min(e, 29)), 0)
		}
	case e < 0:
		// m×2**e = m×5**-e × 10**e
		exp = int64(e)
		for k := -e; k > 0; k -= pow5Max {
			c = c.mulAddWW(c, Word(pow5tab[min(k, pow5Max)]), 0)
		}
	}
	return z.setTriple(f < 0, c, exp, st)
}

// integral returns the coefficient of x scaled to an integer, or false if x
// is not a finite integer of at most maxDigits digits.
func (x *Decimal) integral(maxDigits int64) (dec, bool) {
	if !x.IsInteger() {
		return nil, false
	}
	if x.isZeroCoeff() {
		return nil, true
	}
	if x.exp >= 0 {
		if x.adjexp() >= maxDigits {
			return nil, false
		}
		return dec(nil).shl10(x.mant, uint(x.exp)), true
	}
	t, _ := dec(nil).shr10(x.mant, uint(-x.exp))
	return t, true
}

// Int64 returns the value of x as an int64. If x is not an integer or does
// not fit in an int64, it adds InvalidOperation to st and returns 0.
func (x *Decimal) Int64(st *Status) int64 {
	if c, ok := x.integral(20); ok {
		if u, ok := c.uint64(); ok {
			switch {
			case !x.isNeg() && u <= math.MaxInt64:
				return int64(u)
			case x.isNeg() && u <= 1<<63:
				return int64(-u)
			}
		}
	}
	*st |= InvalidOperation
	return 0
}

// Uint64 returns the value of x as a uint64. If x is not an integer or does
// not fit in a uint64, it adds InvalidOperation to st and returns 0.
func (x *Decimal) Uint64(st *Status) uint64 {
	if c, ok := x.integral(20); ok && (!x.isNeg() || len(c) == 0) {
		if u, ok := c.uint64(); ok {
			return u
		}
	}
	*st |= InvalidOperation
	return 0
}

// BigInt returns the value of x as a *big.Int. If x is not an integer, it
// adds InvalidOperation to st and returns nil. Integers of more than MaxPrec
// digits add MallocError instead.
func (x *Decimal) BigInt(st *Status) *big.Int {
	if !x.IsInteger() {
		*st |= InvalidOperation
		return nil
	}
	c, ok := x.integral(MaxPrec)
	if !ok {
		*st |= MallocError
		return nil
	}
	b := new(big.Int).SetBits(c.bits())
	if x.isNeg() {
		b.Neg(b)
	}
	return b
}

// Float64 returns the float64 nearest to x. Conversions which are not exact
// add Inexact and Rounded to st. NaNs convert to a float64 NaN.
func (x *Decimal) Float64(st *Status) float64 {
	switch {
	case x.IsNaN():
		return math.NaN()
	case x.IsInf():
		if x.isNeg() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// ParseFloat is correctly rounded; overflow yields ±Inf with a range
	// error.
	f, _ := strconv.ParseFloat(x.String(), 64)
	var t Decimal
	var ts Status
	defer t.Free()
	if t.SetFloat64(f, &ts); math.IsInf(f, 0) || cmp(&t, x) != 0 {
		*st |= Inexact | Rounded
	}
	return f
}
