package math

import (
	"github.com/db47h/decnum"
)

// Hypot sets z to √(x²+y²) rounded to ctx and returns z.
//
// Hypot(±Inf, y) and Hypot(x, ±Inf) are +Inf, even if the other operand is
// a quiet NaN.
func Hypot(z, x, y *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	switch {
	case !ctx.Valid() || x.IsSNaN() || y.IsSNaN():
		return z.Add(x, y, ctx, st)
	case x.IsInf() || y.IsInf():
		return z.SetInf(false)
	case x.IsNaN() || y.IsNaN():
		return z.Add(x, y, ctx, st)
	case x.IsZero() && y.IsZero():
		return z.SetTriple(false, nil, min(x.Exponent(), y.Exponent()), ctx, st)
	}

	// Scale both operands so that the largest one is in [1, 10) and the
	// squares cannot overflow. The squares are exact and their sum carries
	// enough digits for the square root to be rounded only once.
	var s int64
	switch {
	case x.IsZero():
		s = y.Adjexp()
	case y.IsZero():
		s = x.Adjexp()
	default:
		s = max(x.Adjexp(), y.Adjexp())
	}
	var ws decnum.Status
	wc := work(2*(ctx.Prec()+max(x.Digits(), y.Digits())) + guardDigits)
	xs := decnum.New().SetTriple(false, x.Coefficient(), x.Exponent()-s, &wc, &ws)
	ys := decnum.New().SetTriple(false, y.Coefficient(), y.Exponent()-s, &wc, &ws)
	defer xs.Free()
	defer ys.Free()
	xs.Mul(xs, xs, &wc, &ws)
	ys.Mul(ys, ys, &wc, &ws)
	xs.Add(xs, ys, &wc, &ws)

	var rs decnum.Status
	rc := work(ctx.Prec())
	xs.Sqrt(xs, &rc, &rs)
	if ws&decnum.Errors != 0 {
		*st |= ws & decnum.Errors
		return z.SetNaN(false)
	}
	if ws&decnum.Inexact != 0 {
		rs |= decnum.Inexact | decnum.Rounded
	}
	*st |= rs & (decnum.Inexact | decnum.Rounded)
	return z.SetTriple(false, xs.Coefficient(), xs.Exponent()+s, ctx, st)
}
