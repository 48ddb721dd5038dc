// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math"
	"math/bits"
)

// Exp, Ln, Log10 and non-integral powers are computed into an approximation
// with w digits whose error is below one unit in its last place. With
// Context.CR set, the result is accepted only if both neighbors of the
// approximation round to the same value, otherwise w is increased and the
// approximation computed again (Ziv's strategy).

const (
	zivGuard   = 3  // initial extra digits
	zivMaxIter = 10 // the working precision grows by 1.5x per iteration
)

// approxFunc sets z to an approximation of a function value with w digits
// and an error below one unit in the last place.
type approxFunc func(z *Decimal, w int64, st *Status)

// ziv sets z to the value computed by f rounded to ctx. The result is always
// Inexact and Rounded, and its coefficient is padded to ctx.prec digits.
func (z *Decimal) ziv(f approxFunc, ctx *Context, st *Status) *Decimal {
	var a Decimal
	defer a.Free()
	w := ctx.prec + zivGuard
	for i := 0; ; i++ {
		var ws Status
		f(&a, w, &ws)
		if ws&MallocError != 0 || a.IsNaN() {
			*st |= MallocError
			z.setQNaN()
			return z
		}
		if !a.IsFinite() || len(a.mant) == 0 {
			// the working exponent range was exceeded
			if a.IsInf() {
				return z.overflowFrom(a.isNeg(), ctx, st)
			}
			return z.underflowFrom(a.isNeg(), ctx, st)
		}
		if !ctx.allcr || i == zivMaxIter || zivStable(&a, w, ctx) {
			return z.setInexact(&a, ctx, st)
		}
		w += w/2 + 1
	}
}

// setInexact sets z to the approximation a rounded to ctx and padded to
// ctx.prec digits. It signals Inexact and Rounded.
func (z *Decimal) setInexact(a *Decimal, ctx *Context, st *Status) *Decimal {
	var rs Status
	z.Set(a, &rs).finalize(ctx, &rs).zeroPad(ctx, &rs)
	if rs&MallocError != 0 {
		*st |= MallocError
		return z
	}
	*st |= rs | Inexact | Rounded
	return z
}

// zivStable reports whether a ± 1 ulp at w digits round to the same value
// under ctx.
func zivStable(a *Decimal, w int64, ctx *Context) bool {
	var lo, hi Decimal
	defer lo.Free()
	defer hi.Free()
	var st Status
	wc := workContext(MaxPrec)
	ulp := Decimal{mant: dec{1}, dig: 1, exp: a.adjexp() - w + 1}
	lo.addFinite(a, a.isNeg(), &ulp, true, &wc, &st)
	hi.addFinite(a, a.isNeg(), &ulp, false, &wc, &st)
	lo.finalize(ctx, &st)
	hi.finalize(ctx, &st)
	return st&Errors == 0 && lo.CmpTotal(&hi) == 0
}

// overflowFrom sets z to the overflowed result of sign neg under ctx.
func (z *Decimal) overflowFrom(neg bool, ctx *Context, st *Status) *Decimal {
	z.setTriple(neg, dec{1}, ctx.emax+1, st)
	return z.finalize(ctx, st)
}

// underflowFrom sets z to the result of a non-zero value of sign neg too
// small to be represented under ctx.
func (z *Decimal) underflowFrom(neg bool, ctx *Context, st *Status) *Decimal {
	z.setTriple(neg, dec{1}, ctx.Etiny()-2, st)
	return z.finalize(ctx, st)
}

// float64Approx returns x as a float64 with a relative error < 1e-15.
// Results out of the float64 range are ±Inf or ±0.
func (x *Decimal) float64Approx() float64 {
	if len(x.mant) == 0 {
		return 0
	}
	s := max(0, x.dig-18)
	t, _ := dec(nil).shr10(x.mant, uint(s))
	v, _ := t.uint64()
	e := x.exp + s
	var f float64
	switch {
	case e > 400:
		f = math.Inf(1)
	case e < -400-18:
		f = 0
	default:
		f = float64(v) * math.Pow(10, float64(e))
	}
	if x.isNeg() {
		f = -f
	}
	return f
}

// log10Approx returns an approximation of log10(|x|) for a finite non-zero
// x.
func (x *Decimal) log10Approx() float64 {
	s := max(0, x.dig-18)
	t, _ := dec(nil).shr10(x.mant, uint(s))
	v, _ := t.uint64()
	return math.Log10(float64(v)) + float64(x.exp+s)
}

// isOne reports whether x is numerically equal to 1.
func (x *Decimal) isOne() bool {
	return x.IsFinite() && !x.isNeg() && x.adjexp() == 0 && x.mant.isPow10()
}

// Exp sets z to e**x rounded to ctx and returns z.
func (z *Decimal) Exp(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if x.IsInf() {
		if x.isNeg() {
			return z.setZero(false, 0)
		}
		return z.SetInf(false)
	}
	if len(x.mant) == 0 {
		return z.setTriple(false, dec{1}, 0, st).finalize(ctx, st)
	}
	// e**x = 10**(x/ln(10))
	if x.adjexp() >= 19 {
		if x.isNeg() {
			return z.underflowFrom(false, ctx, st)
		}
		return z.overflowFrom(false, ctx, st)
	}
	l := x.float64Approx() / math.Ln10
	switch {
	case l > float64(ctx.emax)+2:
		return z.overflowFrom(false, ctx, st)
	case l < float64(ctx.Etiny())-2:
		return z.underflowFrom(false, ctx, st)
	}
	return z.ziv(func(a *Decimal, w int64, st *Status) {
		a.expApprox(x, w, st)
	}, ctx, st)
}

// expApprox sets z to e**x with w digits for a finite x with |x| < 10**19.
func (z *Decimal) expApprox(x *Decimal, w int64, st *Status) {
	// e**x = (e**(x/10**t))**(10**t) with |x/10**t| < 1
	t := max(0, x.adjexp()+1)
	// the power amplifies the relative error by 10**t
	wc := workContext(w + t + 6)
	r := Decimal{mant: x.mant, dig: x.dig, exp: x.exp - t, flags: x.flags & flagNeg}

	var sum, term, n Decimal
	defer sum.Free()
	defer term.Free()
	defer n.Free()
	sum.setTriple(false, dec{1}, 0, st)
	term.setTriple(false, dec{1}, 0, st)
	for i := int64(1); ; i++ {
		term.Mul(&term, &r, &wc, st)
		term.Quo(&term, n.setInt64(i, st), &wc, st)
		if term.IsZero() || term.adjexp() < sum.adjexp()-wc.prec-1 || *st&Errors != 0 {
			break
		}
		sum.Add(&sum, &term, &wc, st)
	}
	if t > 0 {
		sum.powUint(&sum, pow10tab[t], &wc, st)
	}
	z.Set(&sum, st)
}

// powUint sets z to x**n rounded to ctx at each step. n must be > 0.
func (z *Decimal) powUint(x *Decimal, n uint64, ctx *Context, st *Status) *Decimal {
	var r Decimal
	defer r.Free()
	r.Set(x, st)
	for i := bits.Len64(n) - 2; i >= 0; i-- {
		r.Mul(&r, &r, ctx, st)
		if n>>uint(i)&1 != 0 {
			r.Mul(&r, x, ctx, st)
		}
	}
	return z.Set(&r, st)
}

// Ln sets z to the natural logarithm of x rounded to ctx and returns z.
func (z *Decimal) Ln(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.logSpecial(x, ctx, st) {
		return z
	}
	if x.isOne() {
		return z.setZero(false, 0)
	}
	return z.ziv(func(a *Decimal, w int64, st *Status) {
		a.lnApprox(x, w, st)
	}, ctx, st)
}

// logSpecial handles the NaN, infinite, zero and negative operands of Ln
// and Log10.
func (z *Decimal) logSpecial(x *Decimal, ctx *Context, st *Status) bool {
	switch {
	case z.checkNaN(x, ctx, st):
	case x.IsZero():
		z.SetInf(true)
	case x.isNeg():
		z.invalid(st)
	case x.IsInf():
		z.SetInf(false)
	default:
		return false
	}
	return true
}

// lnApprox sets z to ln(x) with w digits for a finite x > 0, x != 1.
func (z *Decimal) lnApprox(x *Decimal, w int64, st *Status) {
	// x = m × 10**k with 0.5 <= m < 5, ln(x) = ln(m) + k×ln(10)
	k := x.adjexp()
	m := Decimal{mant: x.mant, dig: x.dig, exp: 1 - x.dig}
	if m.mant.digit(uint(m.dig-1)) >= 5 {
		k++
		m.exp--
	}
	var g int64
	if k == 0 {
		// ln(m) ≈ m-1: extra digits for the cancellation
		var d Decimal
		wc := workContext(MaxPrec)
		d.addFinite(&m, false, &Decimal{mant: dec{1}, dig: 1}, true, &wc, st)
		if len(d.mant) != 0 {
			g = max(0, -d.adjexp())
		}
		d.Free()
	}
	kd := int64(decDigits64(uint64(abs64(k))))
	W := w + g + kd + 4
	z.lnNewton(&m, W, st)
	if k != 0 {
		var l10, kk Decimal
		defer l10.Free()
		defer kk.Free()
		wc := workContext(W)
		l10.lnNewton(&Decimal{mant: dec{10}, dig: 2}, W+kd, st)
		l10.Mul(&l10, kk.setInt64(k, st), &wc, st)
		z.Add(z, &l10, &wc, st)
	}
}

// lnNewton sets z to ln(m) with p digits for a finite m > 0, solving
// e**y = m with the Newton iteration y' = y + m×e**-y - 1 at doubling
// precisions.
func (z *Decimal) lnNewton(m *Decimal, p int64, st *Status) {
	var y, e, one Decimal
	defer y.Free()
	defer e.Free()
	defer one.Free()
	one.setTriple(false, dec{1}, 0, st)
	y.SetFloat64(math.Log(m.float64Approx()), st)
	// one more iteration at full precision once p is reached
	for q, last := int64(16), false; !last && *st&Errors == 0; {
		last = q == p
		q = min(2*q, p)
		wc := workContext(q + 3)
		e.expApprox(&y, q+3, st)
		e.Quo(m, &e, &wc, st)
		e.Sub(&e, &one, &wc, st)
		y.Add(&y, &e, &wc, st)
	}
	z.Set(&y, st)
}

// Log10 sets z to the base 10 logarithm of x rounded to ctx and returns z.
// The logarithm of a power of ten is exact.
func (z *Decimal) Log10(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.logSpecial(x, ctx, st) {
		return z
	}
	if x.mant.isPow10() {
		return z.SetInt64(x.adjexp(), ctx, st)
	}
	return z.ziv(func(a *Decimal, w int64, st *Status) {
		var l10 Decimal
		defer l10.Free()
		wc := workContext(w + 2)
		a.lnApprox(x, w+2, st)
		l10.lnNewton(&Decimal{mant: dec{10}, dig: 2}, w+2, st)
		a.Quo(a, &l10, &wc, st)
	}, ctx, st)
}
