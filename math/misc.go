// Package math provides constants and elementary functions of decnum.Decimal
// values that the decnum package does not implement.
package math

import (
	"github.com/db47h/decnum"
)

// constants
var (
	one     = newDecimal(1, 0)
	two     = newDecimal(2, 0)
	four    = newDecimal(4, 0)
	half    = newDecimal(5, -1)
	quarter = newDecimal(25, -2)
)

func newDecimal(m decnum.Word, exp int64) *decnum.Decimal {
	var st decnum.Status
	c := decnum.MaxContext()
	return decnum.New().SetTriple(false, []decnum.Word{m}, exp, &c, &st)
}

// work returns a quiet context with prec digits and the widest exponent
// range.
func work(prec int64) decnum.Context {
	c := decnum.MaxContext()
	c.SetPrec(min(prec, decnum.MaxPrec))
	c.SetTraps(0)
	return c
}

const (
	guardDigits = 3
	maxIter     = 10
)

// approxFunc sets z to an approximation of a function value with w digits
// and an error below one unit in the last place.
type approxFunc func(z *decnum.Decimal, w int64)

// ziv sets z to the value computed by f rounded to ctx. If ctx.CR() is
// set, the working precision is increased until the result is known to be
// correctly rounded.
func ziv(z *decnum.Decimal, f approxFunc, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	if !ctx.Valid() {
		return z.Plus(z, ctx, st)
	}
	a := decnum.New()
	defer a.Free()
	w := ctx.Prec() + guardDigits
	for i := 0; ; i++ {
		f(a, w)
		switch {
		case a.IsNaN():
			*st |= decnum.MallocError
			return z.SetNaN(false)
		case a.IsInf():
			return z.SetTriple(a.Signbit(), []decnum.Word{1}, ctx.Emax()+1, ctx, st)
		case a.IsZero():
			return z.SetTriple(a.Signbit(), []decnum.Word{1}, ctx.Etiny()-2, ctx, st)
		}
		if !ctx.CR() || i == maxIter || stable(a, w, ctx) {
			if e := a.Adjexp() - w + 1; a.Digits() < w && e >= decnum.MinEtiny {
				// inexact results carry a full coefficient
				var ws decnum.Status
				wc := work(w)
				a.Rescale(a, e, &wc, &ws)
			}
			z.Plus(a, ctx, st)
			*st |= decnum.Inexact | decnum.Rounded
			return z
		}
		w += w/2 + 1
	}
}

// stable reports whether a ± 1 ulp at w digits round to the same value
// under ctx.
func stable(a *decnum.Decimal, w int64, ctx *decnum.Context) bool {
	var st decnum.Status
	wc := work(w + 2)
	ulp := decnum.New().SetTriple(false, []decnum.Word{1}, a.Adjexp()-w+1, &wc, &st)
	lo := decnum.New().Sub(a, ulp, &wc, &st)
	hi := decnum.New().Add(a, ulp, &wc, &st)
	lo.Plus(lo, ctx, &st)
	hi.Plus(hi, ctx, &st)
	return st&decnum.Errors == 0 && lo.CmpTotal(hi) == 0
}
