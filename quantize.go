// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// Quantize sets z to x rounded or padded to the exponent of y and returns z.
// If the resulting coefficient would have more than ctx.Prec() digits, or if
// the exponent of y is outside [ctx.Etiny(), ctx.Emax()], z is set to NaN and
// InvalidOperation is signaled.
func (z *Decimal) Quantize(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	if x.isSpecial() || y.isSpecial() {
		if z.checkNaNs(x, y, ctx, st) {
			return z
		}
		if x.IsInf() && y.IsInf() {
			return z.Set(x, st)
		}
		return z.invalid(st)
	}
	if y.exp > ctx.emax || y.exp < ctx.Etiny() {
		return z.invalid(st)
	}
	return z.rescale(x, y.exp, ctx, st)
}

// Rescale sets z to x rounded or padded to the exponent exp and returns z.
// It is like Quantize, except that exp may be outside the exponent limits of
// ctx as long as the result is not.
func (z *Decimal) Rescale(x *Decimal, exp int64, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if x.IsInf() {
		return z.Set(x, st)
	}
	if exp > MaxEmax || exp < MinEtiny {
		return z.invalid(st)
	}
	return z.rescale(x, exp, ctx, st)
}

func (z *Decimal) rescale(x *Decimal, exp int64, ctx *Context, st *Status) *Decimal {
	if len(x.mant) == 0 {
		return z.setZero(x.isNeg(), exp).finalize(ctx, st)
	}
	diff := x.exp - exp
	if x.dig+diff > ctx.prec {
		return z.invalid(st)
	}
	var ws Status
	if diff >= 0 {
		if !z.Set(x, st).shl(diff, st) {
			return z
		}
		z.exp = exp
	} else {
		if z.Set(x, st).IsNaN() {
			return z
		}
		rnd := z.shrRound(-diff)
		z.exp = exp
		if ctx.round.roundUp(z.isNeg(), z.lastDigit(), rnd) && !z.incr(st) {
			return z
		}
		if z.dig > ctx.prec {
			return z.invalid(st)
		}
		ws |= Rounded
		if rnd != 0 {
			ws |= Inexact
		}
	}
	// adjusted exponent, a zero coefficient counting as one digit
	adj := z.exp + max(z.dig, 1) - 1
	if adj > ctx.emax || adj < ctx.Etiny() {
		return z.invalid(st)
	}
	if len(z.mant) > 0 && adj < ctx.emin {
		ws |= Subnormal
	}
	*st |= ws
	return z
}

// RoundToIntegral sets z to x rounded to an integer using the rounding mode
// of ctx, without signaling Inexact or Rounded, and returns z. Integers and
// infinities are left unchanged.
func (z *Decimal) RoundToIntegral(x *Decimal, ctx *Context, st *Status) *Decimal {
	var s Status
	z.roundToIntegral(x, ctx, &s)
	*st |= s &^ (Inexact | Rounded)
	return z
}

// RoundToIntegralExact is like RoundToIntegral but signals Rounded if x has
// a negative exponent, and Inexact if the result differs from x.
func (z *Decimal) RoundToIntegralExact(x *Decimal, ctx *Context, st *Status) *Decimal {
	return z.roundToIntegral(x, ctx, st)
}

func (z *Decimal) roundToIntegral(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if x.IsInf() || x.exp >= 0 {
		return z.Set(x, st)
	}
	neg := x.isNeg()
	if len(x.mant) == 0 {
		return z.setZero(neg, 0)
	}
	if z.Set(x, st).IsNaN() {
		return z
	}
	rnd := z.shrRound(-z.exp)
	z.exp = 0
	if ctx.round.roundUp(neg, z.lastDigit(), rnd) && !z.incr(st) {
		return z
	}
	*st |= Rounded
	if rnd != 0 {
		*st |= Inexact
	}
	return z
}

// Reduce sets z to x rounded to ctx, with all trailing zeros of the
// coefficient removed, and returns z. Zeros are reduced to ±0.
func (z *Decimal) Reduce(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if z.Set(x, st).finalize(ctx, st).isSpecial() {
		return z
	}
	if len(z.mant) == 0 {
		return z.setZero(z.isNeg(), 0)
	}
	maxExp := ctx.emax
	if ctx.clamp {
		maxExp = ctx.Etop()
	}
	shift := min(int64(z.mant.trailingZeros()), maxExp-z.exp)
	if shift > 0 {
		z.shrRound(shift)
		z.exp += shift
	}
	return z
}

// NextMinus sets z to the largest representable number smaller than x and
// returns z.
func (z *Decimal) NextMinus(x *Decimal, ctx *Context, st *Status) *Decimal {
	return z.next(x, true, ctx, st)
}

// NextPlus sets z to the smallest representable number larger than x and
// returns z.
func (z *Decimal) NextPlus(x *Decimal, ctx *Context, st *Status) *Decimal {
	return z.next(x, false, ctx, st)
}

func (z *Decimal) next(x *Decimal, down bool, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if x.IsInf() {
		if x.isNeg() == down {
			return z.SetInf(down)
		}
		// ∓Inf moves to the largest finite number of the same sign
		z.setZero(!down, ctx.Etop()).setMaxCoeff(ctx.prec, st)
		return z
	}
	wc := *ctx
	wc.traps, wc.status = 0, 0
	wc.round = ToPositiveInf
	if down {
		wc.round = ToNegativeInf
	}
	var ws Status
	z.Set(x, &ws).finalize(&wc, &ws)
	if ws&(Inexact|Errors) != 0 {
		// x had more digits than the precision: rounding moved it already
		*st |= ws & Errors
		return z
	}
	// add or subtract a value smaller than the smallest subnormal and let
	// the directed rounding pick the neighbor
	tiny := Decimal{mant: dec{1}, dig: 1, exp: ctx.Etiny() - 1}
	z.addFinite(z, z.isNeg(), &tiny, down, &wc, &ws)
	z.finalize(&wc, &ws)
	*st |= ws & Errors
	return z
}

// NextToward sets z to the representable number closest to x in the
// direction of y and returns z. If x and y are numerically equal, z is set
// to x with the sign of y.
func (z *Decimal) NextToward(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaNs(x, y, ctx, st) {
		return z
	}
	c := cmp(x, y)
	if c == 0 {
		return z.CopySign(x, y, st)
	}
	var ws Status
	z.next(x, c > 0, ctx, &ws)
	switch {
	case z.IsInf():
		ws |= Inexact | Overflow | Rounded
	case z.IsFinite() && z.adjexp() < ctx.emin:
		ws |= Underflow | Subnormal | Inexact | Rounded
		if len(z.mant) == 0 {
			ws |= Clamped
		}
	}
	*st |= ws
	return z
}

// Logb sets z to the adjusted exponent of x and returns z. Logb(±Inf) is
// +Inf and Logb(0) is -Inf with DivisionByZero.
func (z *Decimal) Logb(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if x.IsInf() {
		return z.SetInf(false)
	}
	if len(x.mant) == 0 {
		*st |= DivisionByZero
		return z.SetInf(true)
	}
	return z.SetInt64(x.adjexp(), ctx, st)
}

// Scaleb sets z to x × 10**y and returns z. y must be an integer with an
// exponent of 0.
func (z *Decimal) Scaleb(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaNs(x, y, ctx, st) {
		return z
	}
	if y.isSpecial() || y.exp != 0 {
		return z.invalid(st)
	}
	n, ok := y.mant.uint64()
	limit := uint64(2 * (ctx.emax + ctx.prec))
	if !ok || n > limit {
		return z.invalid(st)
	}
	if x.IsInf() {
		return z.Set(x, st)
	}
	e := int64(n)
	if y.isNeg() {
		e = -e
	}
	e += x.exp
	if z.Set(x, st).IsNaN() {
		return z
	}
	z.exp = e
	return z.finalize(ctx, st)
}
