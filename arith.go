package decnum

// This file implements the arithmetic operations that only need addition and
// multiplication of coefficients.
//
// Every operation follows the same pattern: NaN and infinite operands are
// resolved first, the exact result is computed into temporary storage and
// only then written to z, so that z may alias any operand. The exact result
// is finally rounded to the context with z.finalize.

// setNaNFrom sets z to the quiet version of the NaN x, with its payload
// truncated to ctx.
func (z *Decimal) setNaNFrom(x *Decimal, ctx *Context, st *Status) *Decimal {
	neg := x.flags & flagNeg
	z.Set(x, st)
	z.setFlags(neg | flagNaN)
	z.fixNaN(ctx)
	return z
}

// checkNaN handles a NaN operand of a unary operation. It returns true if z
// has been set to the result.
func (z *Decimal) checkNaN(x *Decimal, ctx *Context, st *Status) bool {
	if !x.IsNaN() {
		return false
	}
	if x.IsSNaN() {
		*st |= InvalidOperation
	}
	z.setNaNFrom(x, ctx, st)
	return true
}

// checkNaNs handles NaN operands of a binary operation. A signaling NaN takes
// precedence over a quiet one, then x takes precedence over y.
func (z *Decimal) checkNaNs(x, y *Decimal, ctx *Context, st *Status) bool {
	return z.checkNaNs3(x, y, y, ctx, st)
}

// checkNaNs3 is checkNaNs for ternary operations.
func (z *Decimal) checkNaNs3(x, y, u *Decimal, ctx *Context, st *Status) bool {
	var nan *Decimal
	switch {
	case x.IsSNaN():
		nan = x
	case y.IsSNaN():
		nan = y
	case u.IsSNaN():
		nan = u
	case x.IsQNaN():
		nan = x
	case y.IsQNaN():
		nan = y
	case u.IsQNaN():
		nan = u
	default:
		return false
	}
	if nan.IsSNaN() {
		*st |= InvalidOperation
	}
	z.setNaNFrom(nan, ctx, st)
	return true
}

// invalid sets z to NaN and signals InvalidOperation.
func (z *Decimal) invalid(st *Status) *Decimal {
	*st |= InvalidOperation
	z.setQNaN()
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (z *Decimal) Add(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	return z.addSign(x, y, y.isNeg(), ctx, st)
}

// Sub sets z to the rounded difference x-y and returns z.
func (z *Decimal) Sub(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	return z.addSign(x, y, !y.isNeg(), ctx, st)
}

// addSign sets z to x + (-1)**yneg × |y|.
func (z *Decimal) addSign(x, y *Decimal, yneg bool, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	if x.isSpecial() || y.isSpecial() {
		if z.checkNaNs(x, y, ctx, st) {
			return z
		}
		if x.IsInf() {
			if y.IsInf() && x.isNeg() != yneg {
				return z.invalid(st)
			}
			return z.setSpecial(x.isNeg(), flagInf)
		}
		return z.setSpecial(yneg, flagInf)
	}
	z.addFinite(x, x.isNeg(), y, yneg, ctx, st)
	return z.finalize(ctx, st)
}

// addFinite sets z to the exact sum of the finite x and y with the given
// signs, except that digits of the smaller operand that cannot affect the
// rounded result are replaced by a single sticky digit.
func (z *Decimal) addFinite(x *Decimal, xneg bool, y *Decimal, yneg bool, ctx *Context, st *Status) {
	a, aneg, b, bneg := x, xneg, y, yneg
	if a.exp < b.exp {
		a, aneg, b, bneg = b, bneg, a, aneg
	}
	// a.exp >= b.exp
	bm, bexp := b.mant, b.exp
	var shift int64
	switch {
	case len(a.mant) == 0:
		shift = a.exp - bexp
	case len(bm) == 0:
		// padding a with more zeros than the precision can hold does not
		// change the rounded result
		shift = min(a.exp-bexp, max(0, ctx.prec-a.dig)+1)
	default:
		lo := min(a.exp, a.adjexp()-ctx.prec-1) - 1
		if b.adjexp() < lo {
			bm, bexp = dec{1}, lo-1
		}
		shift = a.exp - bexp
	}
	exp := a.exp - shift

	if shift > MaxPrec && len(a.mant) != 0 {
		z.allocFailed(st)
		return
	}
	am, ok := shl10Scratch(a.mant, shift, st)
	if !ok {
		z.setQNaN()
		return
	}
	defer freeScratch(am)
	neg := aneg
	var t dec
	if aneg == bneg {
		t = am.add(am, bm)
	} else {
		switch am.cmp(bm) {
		case -1:
			t = am.sub(bm, am)
			neg = bneg
		case 1:
			t = am.sub(am, bm)
		default:
			t = am[:0]
		}
	}
	if len(t) == 0 {
		neg = aneg && bneg || aneg != bneg && ctx.round == ToNegativeInf
	}
	z.setTriple(neg, t, exp, st)
}

// Mul sets z to the rounded product x*y and returns z.
func (z *Decimal) Mul(x, y *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	if !z.mulExact(x, y, ctx, st) {
		return z
	}
	return z.finalize(ctx, st)
}

// mulExact sets z to the exact product x*y. It returns false if the result
// is special and must not be rounded.
func (z *Decimal) mulExact(x, y *Decimal, ctx *Context, st *Status) bool {
	neg := x.isNeg() != y.isNeg()
	if x.isSpecial() || y.isSpecial() {
		if z.checkNaNs(x, y, ctx, st) {
			return false
		}
		if x.IsInf() && y.IsZero() || y.IsInf() && x.IsZero() {
			z.invalid(st)
			return false
		}
		z.setSpecial(neg, flagInf)
		return false
	}
	var t dec
	if same(x.mant, y.mant) {
		t = t.sqr(x.mant)
	} else {
		t = t.mul(x.mant, y.mant)
	}
	return z.setTriple(neg, t, x.exp+y.exp, st).IsFinite()
}

// FMA sets z to x*y+u computed with a single rounding and returns z.
func (z *Decimal) FMA(x, y, u *Decimal, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	if x.IsInf() && y.IsZero() || y.IsInf() && x.IsZero() {
		// invalid whatever u is, NaNs included
		return z.invalid(st)
	}
	if z.checkNaNs3(x, y, u, ctx, st) {
		return z
	}
	var p Decimal
	defer p.Free()
	if !p.mulExact(x, y, ctx, st) && p.IsNaN() {
		// out of memory
		z.setQNaN()
		return z
	}
	return z.addSign(&p, u, u.isNeg(), ctx, st)
}

// Abs sets z to the rounded absolute value of x and returns z.
func (z *Decimal) Abs(x *Decimal, ctx *Context, st *Status) *Decimal {
	return z.unary(x, false, ctx, st)
}

// Neg sets z to the rounded value of -x and returns z. Like Sub(0, x), the
// negation of a zero is +0, unless rounding toward -Inf.
func (z *Decimal) Neg(x *Decimal, ctx *Context, st *Status) *Decimal {
	if x.IsZero() && ctx.round != ToNegativeInf {
		return z.unary(x, false, ctx, st)
	}
	return z.unary(x, !x.isNeg(), ctx, st)
}

// Plus sets z to the value of x rounded to ctx and returns z. Plus(-0) is
// 0, unless rounding toward -Inf.
func (z *Decimal) Plus(x *Decimal, ctx *Context, st *Status) *Decimal {
	neg := x.isNeg()
	if x.IsZero() && ctx.round != ToNegativeInf {
		neg = false
	}
	return z.unary(x, neg, ctx, st)
}

// unary sets z to x with sign neg, rounded to ctx.
func (z *Decimal) unary(x *Decimal, neg bool, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) || z.checkNaN(x, ctx, st) {
		return z
	}
	if z.Set(x, st).IsNaN() {
		// out of memory
		return z
	}
	z.setNeg(neg)
	return z.finalize(ctx, st)
}

// CopySign sets z to x with the sign of y and returns z. No rounding takes
// place and no condition is raised.
func (z *Decimal) CopySign(x, y *Decimal, st *Status) *Decimal {
	neg := y.isNeg()
	z.Set(x, st).setNeg(neg)
	return z
}

// CopyAbs sets z to |x| without rounding and returns z.
func (z *Decimal) CopyAbs(x *Decimal, st *Status) *Decimal {
	z.Set(x, st).setNeg(false)
	return z
}

// CopyNeg sets z to x with the opposite sign without rounding and returns z.
func (z *Decimal) CopyNeg(x *Decimal, st *Status) *Decimal {
	neg := !x.isNeg()
	z.Set(x, st).setNeg(neg)
	return z
}
