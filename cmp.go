package decnum

// Unordered is the result of Cmp when an operand is a NaN.
const Unordered = 2

// cmpAbs compares |x| and |y|. x and y must not be NaNs.
func cmpAbs(x, y *Decimal) int {
	switch xi, yi := x.IsInf(), y.IsInf(); {
	case xi && yi:
		return 0
	case xi:
		return 1
	case yi:
		return -1
	}
	switch xz, yz := len(x.mant) == 0, len(y.mant) == 0; {
	case xz && yz:
		return 0
	case xz:
		return -1
	case yz:
		return 1
	}
	if xa, ya := x.adjexp(), y.adjexp(); xa != ya {
		if xa < ya {
			return -1
		}
		return 1
	}
	// same adjusted exponent: the shift is bounded by the digit count
	switch {
	case x.exp > y.exp:
		t := dec(nil).shl10(x.mant, uint(x.exp-y.exp))
		return t.cmp(y.mant)
	case x.exp < y.exp:
		t := dec(nil).shl10(y.mant, uint(y.exp-x.exp))
		return x.mant.cmp(t)
	}
	return x.mant.cmp(y.mant)
}

// cmp compares the values of the non-NaN x and y.
func cmp(x, y *Decimal) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	c := cmpAbs(x, y)
	if xs < 0 {
		c = -c
	}
	return c
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// If x or y is a NaN, Cmp adds InvalidOperation to st and returns Unordered.
func (x *Decimal) Cmp(y *Decimal, st *Status) int {
	if x.IsNaN() || y.IsNaN() {
		*st |= InvalidOperation
		return Unordered
	}
	return cmp(x, y)
}

// Compare sets z to -1, 0 or 1 depending on whether x is less than, equal to
// or greater than y, and returns z. If x or y is a NaN, z is set to NaN.
// Only signaling NaNs raise InvalidOperation.
func (z *Decimal) Compare(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaNs(x, y, ctx, st) {
		return z
	}
	return z.setCmp(cmp(x, y), st)
}

// CompareSignal is like Compare, except that all NaNs raise
// InvalidOperation.
func (z *Decimal) CompareSignal(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	if x.IsNaN() || y.IsNaN() {
		*st |= InvalidOperation
		z.checkNaNs(x, y, ctx, st)
		return z
	}
	return z.setCmp(cmp(x, y), st)
}

func (z *Decimal) setCmp(c int, st *Status) *Decimal {
	if c == 0 {
		return z.setZero(false, 0)
	}
	one := dec{1}
	return z.setTriple(c < 0, one, 0, st)
}

// totalClass orders the classes of the total ordering of positive values.
func (x *Decimal) totalClass() int {
	switch {
	case x.IsQNaN():
		return 3
	case x.IsSNaN():
		return 2
	case x.IsInf():
		return 1
	}
	return 0
}

func cmpTotalAbs(x, y *Decimal) int {
	xc, yc := x.totalClass(), y.totalClass()
	switch {
	case xc < yc:
		return -1
	case xc > yc:
		return 1
	case xc >= 2:
		// NaNs with the same signaling state are ordered by payload
		return x.mant.cmp(y.mant)
	}
	if c := cmpAbs(x, y); c != 0 || xc == 1 {
		return c
	}
	// equal values are ordered by exponent
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	return 0
}

// CmpTotal compares x and y using the total ordering of decimals:
//
//	-NaN < -sNaN < -Inf < -finite < -0 < +0 < +finite < +Inf < +sNaN < +NaN
//
// Numerically equal finite values are ordered by exponent, the smaller
// exponent first for positive values, last for negative ones. NaNs are
// ordered by payload.
func (x *Decimal) CmpTotal(y *Decimal) int {
	xn, yn := x.isNeg(), y.isNeg()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	c := cmpTotalAbs(x, y)
	if xn {
		c = -c
	}
	return c
}

// CmpTotalMag is like CmpTotal, but ignores the signs of x and y.
func (x *Decimal) CmpTotalMag(y *Decimal) int {
	return cmpTotalAbs(x, y)
}

// SameQuantum reports whether x and y have the same exponent, or are both
// infinite or both NaNs.
func (x *Decimal) SameQuantum(y *Decimal) bool {
	if x.isSpecial() || y.isSpecial() {
		return x.IsNaN() && y.IsNaN() || x.IsInf() && y.IsInf()
	}
	return x.exp == y.exp
}

// minMax sets z to the larger of x and y when wantMax is set, the smaller
// one otherwise, as ordered by cmpf. A quiet NaN operand is ignored in favor
// of a number.
func (z *Decimal) minMax(x, y *Decimal, wantMax bool, cmpf func(x, y *Decimal) int, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	switch {
	case x.IsSNaN() || y.IsSNaN():
		z.checkNaNs(x, y, ctx, st)
		return z
	case x.IsQNaN() && y.IsQNaN():
		z.checkNaNs(x, y, ctx, st)
		return z
	case x.IsQNaN():
		return z.Set(y, st).finalize(ctx, st)
	case y.IsQNaN():
		return z.Set(x, st).finalize(ctx, st)
	}
	c := cmpf(x, y)
	if c == 0 {
		c = x.CmpTotal(y)
	}
	if (c < 0) == wantMax {
		x = y
	}
	return z.Set(x, st).finalize(ctx, st)
}

// Max sets z to the larger of x and y, rounded to ctx, and returns z.
// If one operand is a quiet NaN and the other a number, z is set to the
// number.
func (z *Decimal) Max(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	return z.minMax(x, y, true, cmp, ctx, st)
}

// Min sets z to the smaller of x and y, rounded to ctx, and returns z.
// If one operand is a quiet NaN and the other a number, z is set to the
// number.
func (z *Decimal) Min(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	return z.minMax(x, y, false, cmp, ctx, st)
}

// MaxMag is like Max but compares the absolute values of x and y.
func (z *Decimal) MaxMag(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	return z.minMax(x, y, true, cmpMag, ctx, st)
}

// MinMag is like Min but compares the absolute values of x and y.
func (z *Decimal) MinMag(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	return z.minMax(x, y, false, cmpMag, ctx, st)
}

func cmpMag(x, y *Decimal) int {
	if c := cmpAbs(x, y); c != 0 {
		return c
	}
	return cmp(x, y)
}
