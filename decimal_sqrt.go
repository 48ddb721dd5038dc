// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// Sqrt sets z to the square root of x, rounded to the precision of ctx
// using ToNearestEven regardless of the rounding mode of ctx, and returns z.
//
// √-0 = -0. The square root of any other negative value is NaN with
// InvalidOperation. An exact result has the exponent closest to
// ⌊x.Exponent()/2⌋.
func (z *Decimal) Sqrt(x *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if x.isNeg() && !x.IsZero() {
		return z.invalid(st)
	}
	if x.IsInf() {
		return z.SetInf(false)
	}
	// floor(exp/2)
	odd := x.exp & 1
	ideal := (x.exp - odd) / 2
	if len(x.mant) == 0 {
		return z.setZero(x.isNeg(), ideal).finalize(ctx, st)
	}

	// Compute √(c·10**(odd+2s)) with at least prec+1 digits, then
	// re-attach the halved exponent.
	s := max(0, ctx.prec+2-(x.dig+odd)/2)
	n, ok := shl10Scratch(x.mant, odd+2*s, st)
	if !ok {
		z.setQNaN()
		return z
	}
	defer freeScratch(n)
	r := dec(nil).sqrt(n)
	exp := ideal - s
	if dec(nil).sqr(r).cmp(n) != 0 {
		// sticky digit
		if d := r[0] % 10; d == 0 || d == 5 {
			r = r.addW(r, 1)
		}
	} else if s > 0 {
		tz := min(int64(r.trailingZeros()), s)
		r, _ = r.shr10(r, uint(tz))
		exp += tz
	}
	z.setTriple(false, r, exp, st)
	wc := *ctx
	wc.round = ToNearestEven
	return z.finalize(&wc, st)
}
