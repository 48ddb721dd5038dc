package math

import (
	"sync"

	"github.com/db47h/decnum"
)

// π approximations are cached. A cached value with w digits serves any
// request for fewer digits.
var piCache struct {
	sync.Mutex
	v *decnum.Decimal
	w int64
}

// Pi sets z to π rounded to ctx and returns z. The result is always Inexact
// and Rounded. Pi is safe for concurrent use.
func Pi(z *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	return ziv(z, piApprox, ctx, st)
}

// piApprox sets z to π with w digits.
func piApprox(z *decnum.Decimal, w int64) {
	piCache.Lock()
	defer piCache.Unlock()
	if piCache.w < w {
		if piCache.v == nil {
			piCache.v = decnum.New()
		}
		pi(piCache.v, w)
		piCache.w = w
	}
	var st decnum.Status
	wc := work(w)
	z.Plus(piCache.v, &wc, &st)
}

// pi computes π with the Gauss-Legendre algorithm to prec decimal digits
// and returns z.
func pi(z *decnum.Decimal, prec int64) *decnum.Decimal {
	// With only 2 or 4 additional digits there are specific digit counts
	// for which the last digit is off by one (eg. at 57 and 761
	// respectively).
	var st decnum.Status
	var (
		pp      = prec + 19
		wc      = work(pp)
		a       = decnum.New().Set(one, &st)
		u       = decnum.New().Sqrt(two, &wc, &st)
		b       = decnum.New().Quo(one, u, &wc, &st)
		t       = decnum.New().Set(quarter, &st)
		p       = decnum.New().Set(one, &st)
		epsilon = decnum.New().SetTriple(false, []decnum.Word{1}, -pp, &wc, &st)
		tmp     = decnum.New()
	)
	defer func() {
		for _, d := range []*decnum.Decimal{a, u, b, t, p, epsilon, tmp} {
			d.Free()
		}
	}()

	for {
		u.Set(a, &st)                                  // a_n
		a.Mul(tmp.Add(a, b, &wc, &st), half, &wc, &st) // a_n+1
		b.Sqrt(tmp.Mul(u, b, &wc, &st), &wc, &st)      // b_n+1

		// t = t - p×(a_n - a_n+1)²
		tmp.Sub(u, a, &wc, &st)
		tmp.Mul(tmp, tmp, &wc, &st)
		tmp.Mul(tmp, p, &wc, &st)
		t.Sub(t, tmp, &wc, &st)

		tmp.Sub(a, b, &wc, &st)
		if tmp.Abs(tmp, &wc, &st).Cmp(epsilon, &st) <= 0 {
			break
		}
		p.Mul(p, two, &wc, &st)
	}
	tmp.Add(a, b, &wc, &st)
	a.Mul(tmp, tmp, &wc, &st)
	t.Mul(t, four, &wc, &st)
	return z.Quo(a, t, &wc, &st)
}
