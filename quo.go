// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// Quo sets z to the rounded quotient x/y and returns z.
//
// An exact quotient has the exponent closest to the ideal exponent
// x.Exponent() - y.Exponent() that does not lose digits.
func (z *Decimal) Quo(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	neg := x.isNeg() != y.isNeg()
	if x.isSpecial() || y.isSpecial() {
		if z.checkNaNs(x, y, ctx, st) {
			return z
		}
		if x.IsInf() {
			if y.IsInf() {
				return z.invalid(st)
			}
			return z.setSpecial(neg, flagInf)
		}
		// x / ±Inf
		*st |= Clamped
		return z.setZero(neg, ctx.Etiny())
	}
	if len(y.mant) == 0 {
		if len(x.mant) == 0 {
			*st |= DivisionUndefined
			z.setQNaN()
			return z
		}
		*st |= DivisionByZero
		return z.setSpecial(neg, flagInf)
	}
	ideal := x.exp - y.exp
	if len(x.mant) == 0 {
		return z.setZero(neg, ideal).finalize(ctx, st)
	}

	// scale x or y so that the quotient has prec+1 or prec+2 digits
	shift := y.dig - x.dig + ctx.prec + 1
	u, v := x.mant, y.mant
	var buf dec
	ok := true
	if shift > 0 {
		buf, ok = shl10Scratch(u, shift, st)
		u = buf
	} else if shift < 0 {
		buf, ok = shl10Scratch(v, -shift, st)
		v = buf
	}
	if !ok {
		z.setQNaN()
		return z
	}
	defer freeScratch(buf)
	q, r := dec(nil).div(nil, u, v)
	exp := ideal - shift
	if len(r) != 0 {
		// sticky digit
		if d := q[0] % 10; d == 0 || d == 5 {
			q = q.addW(q, 1)
		}
	} else if shift > 0 {
		tz := min(int64(q.trailingZeros()), shift)
		q, _ = q.shr10(q, uint(tz))
		exp += tz
	}
	z.setTriple(neg, q, exp, st)
	return z.finalize(ctx, st)
}

// divMod sets q and r to the quotient x/y truncated to an integer and to the
// remainder x - q*y. x and y must be finite, y non-zero. q or r may be nil.
// If the quotient does not fit in ctx.Prec() digits, divMod signals
// DivisionImpossible, sets q and r to NaN and returns false. It does the same,
// signaling MallocError, if its working buffer cannot be allocated.
func divMod(q, r *Decimal, x, y *Decimal, ctx *Context, st *Status) bool {
	qneg, xneg := x.isNeg() != y.isNeg(), x.isNeg()
	var qm, rm dec
	var rexp int64
	switch {
	case len(x.mant) == 0:
		rexp = min(x.exp, y.exp)
	case x.adjexp() < y.adjexp():
		// |x| < |y|
		rexp = min(x.exp, y.exp)
		rm = dec(nil).shl10(x.mant, uint(x.exp-rexp))
	case x.adjexp()-y.adjexp() > ctx.prec:
		*st |= DivisionImpossible
		setNaNs(q, r)
		return false
	default:
		u, v := x.mant, y.mant
		rexp = x.exp
		var buf dec
		ok := true
		switch {
		case x.exp > y.exp:
			buf, ok = shl10Scratch(u, x.exp-y.exp, st)
			u = buf
			rexp = y.exp
		case x.exp < y.exp:
			buf, ok = shl10Scratch(v, y.exp-x.exp, st)
			v = buf
		}
		if !ok {
			setNaNs(q, r)
			return false
		}
		qm, rm = dec(nil).div(nil, u, v)
		freeScratch(buf)
		if int64(qm.digits()) > ctx.prec {
			*st |= DivisionImpossible
			setNaNs(q, r)
			return false
		}
	}
	if q != nil {
		q.setTriple(qneg, qm, 0, st)
	}
	if r != nil {
		r.setTriple(xneg, rm, rexp, st)
	}
	return true
}

func setNaNs(q, r *Decimal) {
	if q != nil {
		q.setQNaN()
	}
	if r != nil {
		r.setQNaN()
	}
}

// QuoInt sets z to the integer part of the quotient x/y, truncated toward
// zero, and returns z. If the result does not fit in ctx.Prec() digits,
// QuoInt signals DivisionImpossible and sets z to NaN.
func (z *Decimal) QuoInt(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	neg := x.isNeg() != y.isNeg()
	if x.isSpecial() || y.isSpecial() {
		if z.checkNaNs(x, y, ctx, st) {
			return z
		}
		if x.IsInf() {
			if y.IsInf() {
				return z.invalid(st)
			}
			return z.setSpecial(neg, flagInf)
		}
		return z.setZero(neg, 0).finalize(ctx, st)
	}
	if len(y.mant) == 0 {
		if len(x.mant) == 0 {
			*st |= DivisionUndefined
			z.setQNaN()
			return z
		}
		*st |= DivisionByZero
		return z.setSpecial(neg, flagInf)
	}
	if divMod(z, nil, x, y, ctx, st) {
		z.finalize(ctx, st)
	}
	return z
}

// remSpecial handles the special operands of Rem and RemNear. It returns
// true if z has been set to the result.
func (z *Decimal) remSpecial(x, y *Decimal, ctx *Context, st *Status) bool {
	if x.isSpecial() || y.isSpecial() {
		switch {
		case z.checkNaNs(x, y, ctx, st):
		case x.IsInf():
			z.invalid(st)
		default:
			// x rem ±Inf
			z.Set(x, st).finalize(ctx, st)
		}
		return true
	}
	if len(y.mant) == 0 {
		if len(x.mant) == 0 {
			*st |= DivisionUndefined
			z.setQNaN()
		} else {
			z.invalid(st)
		}
		return true
	}
	return false
}

// Rem sets z to the remainder x - y*QuoInt(x, y) and returns z. The result
// has the sign of x.
func (z *Decimal) Rem(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.remSpecial(x, y, ctx, st) {
		return z
	}
	if divMod(nil, z, x, y, ctx, st) {
		z.finalize(ctx, st)
	}
	return z
}

// RemNear sets z to the IEEE 754 remainder x - y*n, where n is the integer
// nearest to x/y, ties to even, and returns z.
func (z *Decimal) RemNear(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.remSpecial(x, y, ctx, st) {
		return z
	}
	var q, r Decimal
	defer q.Free()
	defer r.Free()
	if !divMod(&q, &r, x, y, ctx, st) {
		z.setQNaN()
		return z
	}
	if len(r.mant) != 0 {
		var r2 Decimal
		defer r2.Free()
		r2.setTriple(false, dec(nil).add(r.mant, r.mant), r.exp, st)
		c := cmpAbs(&r2, y)
		if c > 0 || c == 0 && q.lastDigit()&1 != 0 {
			if q.dig+1 > ctx.prec && q.mant.isAllNines() {
				*st |= DivisionImpossible
				z.setQNaN()
				return z
			}
			// move r toward the opposite sign by |y|
			wc := workContext(MaxPrec)
			r.addFinite(&r, r.isNeg(), y, !r.isNeg(), &wc, st)
		}
	}
	return z.Set(&r, st).finalize(ctx, st)
}

// QuoRem sets q to QuoInt(x, y) and r to Rem(x, y), and returns q and r.
// q and r must be distinct.
func QuoRem(q, r *Decimal, x, y *Decimal, ctx *Context, st *Status) (*Decimal, *Decimal) {
	if !ctx.check(q, st) {
		r.setQNaN()
		return q, r
	}
	neg := x.isNeg() != y.isNeg()
	if x.isSpecial() || y.isSpecial() {
		if x.IsNaN() || y.IsNaN() {
			var nan Decimal
			nan.checkNaNs(x, y, ctx, st)
			q.Set(&nan, st)
			r.Set(&nan, st)
			nan.Free()
			return q, r
		}
		if x.IsInf() {
			if y.IsInf() {
				q.invalid(st)
				r.setQNaN()
				return q, r
			}
			q.setSpecial(neg, flagInf)
			r.invalid(st)
			return q, r
		}
		// x / ±Inf
		r.Set(x, st).finalize(ctx, st)
		q.setZero(neg, 0)
		return q, r
	}
	if len(y.mant) == 0 {
		if len(x.mant) == 0 {
			*st |= DivisionUndefined
			setNaNs(q, r)
			return q, r
		}
		*st |= DivisionByZero | InvalidOperation
		q.setSpecial(neg, flagInf)
		r.setQNaN()
		return q, r
	}
	if divMod(q, r, x, y, ctx, st) {
		q.finalize(ctx, st)
		r.finalize(ctx, st)
	}
	return q, r
}
