package math

import (
	"github.com/db47h/decnum"
)

// E sets z to e = exp(1) rounded to ctx and returns z.
func E(z *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	return z.Exp(one, ctx, st)
}

// Expm1 sets z to e**x - 1 rounded to ctx and returns z. The result is
// accurate for x close to zero, where computing Exp(x) - 1 would cancel
// most significant digits.
//
// Expm1(±0) = ±0, Expm1(+Inf) = +Inf and Expm1(-Inf) = -1, all exact.
func Expm1(z, x *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	switch {
	case !ctx.Valid() || x.IsNaN():
		return z.Plus(x, ctx, st)
	case x.IsZero():
		z.Plus(x, ctx, st)
		return z.CopySign(z, x, st)
	case x.IsInf() && x.Signbit():
		return z.Neg(one, ctx, st)
	case x.IsInf():
		return z.Plus(x, ctx, st)
	}
	return ziv(z, func(a *decnum.Decimal, w int64) { expm1Approx(a, x, w) }, ctx, st)
}

// expm1Approx sets z to e**x - 1 with w digits for a finite non-zero x.
func expm1Approx(z, x *decnum.Decimal, w int64) {
	var st decnum.Status
	if x.Adjexp() < -1 {
		expm1Series(z, x, w+guardDigits)
		wc := work(w)
		z.Plus(z, &wc, &st)
		return
	}
	// |x| >= 0.1: e**x - 1 loses at most one digit to cancellation.
	wc := work(w + guardDigits)
	z.Exp(x, &wc, &st)
	wc = work(w)
	z.Sub(z, one, &wc, &st)
}

// expm1Series sets z to e**x-1 computed with the Taylor series at a
// precision of p digits and returns z. It converges quickly for |x| < 0.1.
func expm1Series(z, x *decnum.Decimal, p int64) *decnum.Decimal {
	var st decnum.Status
	var (
		wc   = work(p)
		q    = decnum.New().Set(one, &st)
		fact = decnum.New().Set(one, &st)
		t    = decnum.New()
		xe   = decnum.New().Set(x, &st)
	)
	defer func() {
		for _, d := range []*decnum.Decimal{q, fact, t, xe} {
			d.Free()
		}
	}()
	z.Set(x, &st) // first term
	for {
		xe.Mul(xe, x, &wc, &st)
		fact.Mul(fact, q.Add(q, one, &wc, &st), &wc, &st)
		t.Quo(xe, fact, &wc, &st)
		if t.IsZero() || t.Adjexp() < z.Adjexp()-p {
			break
		}
		z.Add(z, t, &wc, &st)
	}
	return z
}
