package decnum

// roundUp reports whether a coefficient with last digit last must be
// incremented when digits with rounding indicator rnd (see dec.rounding) are
// discarded.
func (m RoundingMode) roundUp(neg bool, last Word, rnd int) bool {
	if rnd == 0 {
		return false
	}
	switch m {
	case ToNearestEven:
		return rnd > 5 || rnd == 5 && last&1 != 0
	case ToNearestAway:
		return rnd >= 5
	case ToNearestZero:
		return rnd > 5
	case AwayFromZero:
		return true
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	case ZeroFiveUp:
		return last == 0 || last == 5
	}
	// ToZero, Truncate
	return false
}

// lastDigit returns the least significant digit of the coefficient of x.
func (x *Decimal) lastDigit() Word {
	if len(x.mant) == 0 {
		return 0
	}
	return x.mant[0] % 10
}

// shrRound discards the s low digits of the coefficient of z and returns the
// rounding indicator. The exponent is not updated.
func (z *Decimal) shrRound(s int64) int {
	if s <= 0 {
		return 0
	}
	if s > z.dig+1 {
		s = z.dig + 1
	}
	var rnd int
	z.mant, rnd = z.mant.shr10(z.mant, uint(s))
	z.setDigits()
	return rnd
}

// shl multiplies the coefficient of z by 10**s. The exponent is not
// updated.
func (z *Decimal) shl(s int64, st *Status) bool {
	if s <= 0 || len(z.mant) == 0 {
		return true
	}
	m := len(z.mant)
	if s > MaxPrec {
		return z.allocFailed(st)
	}
	if !z.resize(m+int(s/_DW)+1, st) {
		return false
	}
	z.mant = z.mant.shl10(z.mant[:m], uint(s))
	z.dig += s
	return true
}

// incr adds 1 to the coefficient of z.
func (z *Decimal) incr(st *Status) bool {
	m := len(z.mant)
	if !z.resize(m+1, st) {
		return false
	}
	z.mant[m] = add10VW(z.mant[:m], z.mant[:m], 1)
	z.mant = z.mant.norm()
	z.setDigits()
	return true
}

// setMaxCoeff sets the coefficient of z to prec nines.
func (z *Decimal) setMaxCoeff(prec int64, st *Status) bool {
	n := int((prec + _DW - 1) / _DW)
	if !z.resize(n, st) {
		return false
	}
	for i := range z.mant {
		z.mant[i] = _DMax
	}
	if r := uint(prec % _DW); r != 0 {
		z.mant[n-1] = pow10(r) - 1
	}
	z.dig = prec
	return true
}

// finalize rounds z to the precision of ctx, applies the exponent limits and
// truncates NaN payloads.
func (z *Decimal) finalize(ctx *Context, st *Status) *Decimal {
	if z.isSpecial() {
		if z.IsNaN() {
			z.fixNaN(ctx)
		}
		return z
	}
	if z.checkExp(ctx, st) {
		z.checkRound(ctx, st)
	}
	if debugDecimal {
		z.validate()
	}
	return z
}

// fixNaN truncates the payload of a NaN to prec - clamp digits.
func (z *Decimal) fixNaN(ctx *Context) {
	n := ctx.prec
	if ctx.clamp {
		n--
	}
	if z.dig <= n {
		return
	}
	nw, r := n/_DW, uint(n%_DW)
	if r != 0 {
		z.mant[nw] %= pow10(r)
		nw++
	}
	z.mant = z.mant[:nw].norm()
	z.setDigits()
}

// overflow sets z to the overflow result of its sign and the rounding mode
// of ctx.
func (z *Decimal) overflow(ctx *Context, st *Status) {
	neg := z.isNeg()
	inf := true
	switch ctx.round {
	case ToZero, ZeroFiveUp:
		inf = false
	case ToPositiveInf:
		inf = !neg
	case ToNegativeInf:
		inf = neg
	}
	*st |= Overflow | Inexact | Rounded
	if inf {
		z.setSpecial(neg, flagInf)
		return
	}
	if z.setMaxCoeff(ctx.prec, st) {
		z.exp = ctx.emax - ctx.prec + 1
	}
}

// checkExp applies the exponent limits of ctx to the finite z. It returns
// false if z is no longer finite.
func (z *Decimal) checkExp(ctx *Context, st *Status) bool {
	adj := z.adjexp()
	switch {
	case adj > ctx.emax:
		if len(z.mant) == 0 {
			z.exp = ctx.emax
			if ctx.clamp {
				z.exp = ctx.Etop()
			}
			*st |= Clamped
			return true
		}
		z.overflow(ctx, st)
		return !z.isSpecial()

	case ctx.clamp && z.exp > ctx.Etop():
		etop := ctx.Etop()
		if !z.shl(z.exp-etop, st) {
			return false
		}
		z.exp = etop
		*st |= Clamped
		if len(z.mant) > 0 && adj < ctx.emin {
			*st |= Subnormal
		}

	case adj < ctx.emin:
		etiny := ctx.Etiny()
		if len(z.mant) == 0 {
			if z.exp < etiny {
				z.exp = etiny
				*st |= Clamped
			}
			return true
		}
		*st |= Subnormal
		if z.exp >= etiny {
			return true
		}
		rnd := z.shrRound(etiny - z.exp)
		z.exp = etiny
		if ctx.round.roundUp(z.isNeg(), z.lastDigit(), rnd) {
			if !z.incr(st) {
				return false
			}
		}
		*st |= Rounded
		if rnd != 0 {
			*st |= Inexact | Underflow
			if len(z.mant) == 0 {
				*st |= Clamped
			}
		}
	}
	return true
}

// checkRound rounds the coefficient of a finite z to ctx.prec digits.
func (z *Decimal) checkRound(ctx *Context, st *Status) {
	if z.dig <= ctx.prec {
		return
	}
	shift := z.dig - ctx.prec
	rnd := z.shrRound(shift)
	z.exp += shift
	*st |= Rounded
	if rnd != 0 {
		*st |= Inexact
	}
	if !ctx.round.roundUp(z.isNeg(), z.lastDigit(), rnd) {
		return
	}
	if !z.incr(st) {
		return
	}
	if z.dig > ctx.prec {
		// carry out of the most significant digit: coefficient is 10**prec
		z.mant, _ = z.mant.shr10(z.mant, 1)
		z.setDigits()
		z.exp++
		if z.adjexp() > ctx.emax {
			z.checkExp(ctx, st)
		}
	}
}

// zeroPad appends trailing zeros to the coefficient of a finite non-zero z
// until it has ctx.prec digits or its exponent reaches Etiny.
func (z *Decimal) zeroPad(ctx *Context, st *Status) *Decimal {
	if z.isSpecial() || len(z.mant) == 0 {
		return z
	}
	if s := min(ctx.prec-z.dig, z.exp-ctx.Etiny()); s > 0 && z.shl(s, st) {
		z.exp -= s
	}
	return z
}
