package math

import (
	"github.com/db47h/decnum"
)

// Log sets z to the logarithm of x in the given base, rounded to ctx, and
// returns z.
//
// base must be finite, positive and not 1, otherwise z is set to NaN and
// InvalidOperation is added to st. If x is an exact integral power of base,
// the result is exact.
func Log(z, x, base *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	switch {
	case !ctx.Valid():
		return z.Plus(x, ctx, st)
	case x.IsNaN() || base.IsNaN():
		return z.Add(x, base, ctx, st)
	case !base.IsFinite() || base.Sign() <= 0 || base.Cmp(one, st) == 0,
		x.Sign() < 0:
		*st |= decnum.InvalidOperation
		return z.SetNaN(false)
	}
	up := base.Cmp(one, st) > 0
	switch {
	case x.IsZero():
		return z.SetInf(up)
	case x.IsInf():
		return z.SetInf(!up)
	case x.Cmp(one, st) == 0:
		return z.SetInt64(0, ctx, st)
	}

	var rs decnum.Status
	r := ziv(decnum.New(), func(a *decnum.Decimal, w int64) { logApprox(a, x, base, w) }, ctx, &rs)
	defer r.Free()
	if n, ok := exactLog(r, x, base); ok {
		return z.SetInt64(n, ctx, st)
	}
	*st |= rs
	return z.Set(r, st)
}

// Log2 sets z to the base 2 logarithm of x rounded to ctx and returns z.
func Log2(z, x *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	return Log(z, x, two, ctx, st)
}

// logApprox sets z to ln(x)/ln(base) with w digits.
func logApprox(z, x, base *decnum.Decimal, w int64) {
	var st decnum.Status
	wc := work(w + guardDigits)
	lb := decnum.New().Ln(base, &wc, &st)
	defer lb.Free()
	z.Ln(x, &wc, &st)
	wc = work(w)
	z.Quo(z, lb, &wc, &st)
}

// exactLog reports whether r is an integer n such that base**n == x
// exactly.
func exactLog(r, x, base *decnum.Decimal) (int64, bool) {
	var st decnum.Status
	if !r.IsInteger() || r.Adjexp() > 6 {
		return 0, false
	}
	n := r.Int64(&st)
	wc := work(x.Digits() + base.Digits() + guardDigits)
	p := decnum.New().Pow(base, r, &wc, &st)
	defer p.Free()
	return n, st&(decnum.Inexact|decnum.Errors) == 0 && p.Cmp(x, &st) == 0
}
