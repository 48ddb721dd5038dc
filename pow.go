// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math"
)

// maxIntPow is the largest exponent computed by binary exponentiation.
const maxIntPow = 999999999999999999

// isOddInt reports whether the finite integral x is odd.
func (x *Decimal) isOddInt() bool {
	switch {
	case len(x.mant) == 0 || x.exp > 0:
		return false
	case x.exp == 0:
		return x.mant[0]&1 != 0
	}
	return x.mant.digit(uint(-x.exp))&1 != 0
}

// setOnePadded sets z to 1 with prec digits.
func (z *Decimal) setOnePadded(ctx *Context, st *Status) *Decimal {
	var one Decimal
	defer one.Free()
	one.setTriple(false, dec{1}, 0, st)
	return z.setInexact(&one, ctx, st)
}

// Pow sets z to x**y rounded to ctx and returns z.
//
// Integral powers are computed by binary exponentiation with enough guard
// digits that exact results are exact. Other powers are computed as
// e**(y×ln(x)) and are always Inexact. A negative x with a non-integral y is
// an InvalidOperation, as is 0**0.
func (z *Decimal) Pow(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaNs(x, y, ctx, st) {
		return z
	}
	yint := y.IsInteger()
	neg := x.isNeg() && yint && y.isOddInt()

	switch {
	case y.IsInf():
		if x.isNeg() && !x.IsZero() {
			return z.invalid(st)
		}
		var one Decimal
		one.setTriple(false, dec{1}, 0, st)
		c := cmpAbs(x, &one)
		one.Free()
		switch {
		case c == 0:
			return z.setOnePadded(ctx, st)
		case (c < 0) == y.isNeg():
			return z.SetInf(false)
		}
		return z.setZero(false, 0)

	case x.IsInf():
		switch {
		case y.IsZero():
			return z.setTriple(false, dec{1}, 0, st)
		case !yint && x.isNeg():
			return z.invalid(st)
		case y.isNeg():
			return z.setZero(neg, 0)
		}
		return z.SetInf(neg)

	case x.IsZero():
		switch {
		case y.IsZero():
			return z.invalid(st)
		case y.isNeg():
			return z.SetInf(neg)
		}
		return z.setZero(neg, 0)

	case y.IsZero():
		return z.setTriple(false, dec{1}, 0, st).finalize(ctx, st)

	case x.isNeg() && !yint:
		return z.invalid(st)

	case !yint && x.adjexp() == 0 && x.mant.isPow10():
		// ±1 ** non-integer
		return z.setOnePadded(ctx, st)
	}

	// magnitude of the result: 10**l
	var l float64
	if !(x.adjexp() == 0 && x.mant.isPow10()) {
		l = x.log10Approx() * y.float64Approx()
		margin := 2 + math.Abs(l)*1e-12
		switch {
		case l > float64(ctx.emax)+margin:
			return z.overflowFrom(neg, ctx, st)
		case l < float64(ctx.Etiny())-margin:
			return z.underflowFrom(neg, ctx, st)
		}
	}

	if yint {
		if n, ok := y.intMag(); ok && n <= maxIntPow {
			return z.powInt(x, n, y.isNeg(), neg, ctx, st)
		}
		if x.adjexp() == 0 && x.mant.isPow10() {
			// ±1 ** huge integer
			return z.setTriple(neg, dec{1}, 0, st).finalize(ctx, st)
		}
	}

	// integer digits of y×ln(x)
	td := int64(math.Log10(math.Abs(l)*math.Ln10+1)) + 1
	return z.ziv(func(a *Decimal, w int64, st *Status) {
		W := w + td + 4
		wc := workContext(W)
		ax := Decimal{mant: x.mant, dig: x.dig, exp: x.exp}
		a.lnApprox(&ax, W, st)
		a.Mul(a, y, &wc, st)
		a.expApprox(a, w+2, st)
		a.setNeg(neg)
	}, ctx, st)
}

// intMag returns the magnitude of the finite integral x if it fits in a
// uint64.
func (x *Decimal) intMag() (uint64, bool) {
	if x.exp > 19 {
		return 0, false
	}
	var m dec
	if x.exp >= 0 {
		m = dec(nil).shl10(x.mant, uint(x.exp))
	} else {
		m, _ = dec(nil).shr10(x.mant, uint(-x.exp))
	}
	return m.uint64()
}

// powInt sets z to x**n, or x**-n if inv is set, with the sign neg.
func (z *Decimal) powInt(x *Decimal, n uint64, inv, neg bool, ctx *Context, st *Status) *Decimal {
	nd := int64(decDigits64(n))
	w := ctx.prec + nd + 2
	ax := Decimal{mant: x.mant, dig: x.dig, exp: x.exp}
	var a, b, one Decimal
	defer a.Free()
	defer b.Free()
	defer one.Free()
	one.setTriple(false, dec{1}, 0, st)
	for i := 0; ; i++ {
		var ws Status
		wc := workContext(w)
		base := &ax
		if inv {
			// x**-n is (1/x)**n, exact whenever the result is representable
			base = b.Quo(&one, &ax, &wc, &ws)
		}
		a.powUint(base, n, &wc, &ws)
		if ws&Errors != 0 {
			*st |= ws & Errors
			z.setQNaN()
			return z
		}
		switch {
		case a.IsInf():
			return z.overflowFrom(neg, ctx, st)
		case a.IsZero() || ws&Underflow != 0:
			return z.underflowFrom(neg, ctx, st)
		}
		a.setNeg(neg)
		if ws&Inexact == 0 {
			return z.Set(&a, st).finalize(ctx, st)
		}
		// the error is within one unit of the digit at w - nd - 1
		if !ctx.allcr || i == zivMaxIter || zivStable(&a, w-nd-1, ctx) {
			return z.setInexact(&a, ctx, st)
		}
		w += w/2 + 1
	}
}
