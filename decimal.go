package decnum

import (
	"fmt"
)

// A Decimal represents a decimal floating-point number of the form
//
//	sign × coefficient × 10**exponent
//
// where the coefficient is an arbitrary-precision unsigned integer, or one of
// the special values ±Infinity, NaN and sNaN (signaling NaN). NaNs may carry
// an integer payload in their coefficient.
//
// The zero value of a Decimal is 0.
//
// Internal representation: the coefficient of x is stored in x.mant, a dec
// slice of base _DB words, least significant word first; x.dig is the number
// of decimal digits of the coefficient and is 0 for a zero coefficient.
//
//	x                 flags          mant          exp
//	-----------------------------------------------------
//	±0                sign           -             exponent
//	0 < |x| < +Inf    sign           coefficient   exponent
//	±Inf              sign|inf       -             -
//	NaN, sNaN         sign|nan|snan  payload       -
type Decimal struct {
	mant  dec
	exp   int64
	dig   int64
	flags uint8
}

const (
	flagNeg uint8 = 1 << iota
	flagInf
	flagNaN
	flagSNaN
	flagStatic // coefficient storage is not owned by the Decimal

	flagSpecial = flagInf | flagNaN | flagSNaN
	flagAnyNaN  = flagNaN | flagSNaN
)

func (x *Decimal) isSpecial() bool { return x.flags&flagSpecial != 0 }
func (x *Decimal) isNeg() bool     { return x.flags&flagNeg != 0 }

// isZeroCoeff reports whether the coefficient of x is 0.
func (x *Decimal) isZeroCoeff() bool { return len(x.mant) == 0 }

// setFlags sets the sign and special value flags, preserving the storage
// flags.
func (z *Decimal) setFlags(f uint8) {
	z.flags = z.flags&flagStatic | f
}

func (z *Decimal) setNeg(neg bool) {
	if neg {
		z.flags |= flagNeg
	} else {
		z.flags &^= flagNeg
	}
}

func (z *Decimal) setQNaN() {
	z.setFlags(flagNaN)
	z.mant = z.mant[:0]
	z.dig = 0
	z.exp = 0
}

// setSpecial sets z to ±Inf, NaN or sNaN without payload.
func (z *Decimal) setSpecial(neg bool, f uint8) *Decimal {
	if neg {
		f |= flagNeg
	}
	z.setFlags(f)
	z.mant = z.mant[:0]
	z.dig = 0
	z.exp = 0
	return z
}

// setZero sets z to ±0 with the given exponent.
func (z *Decimal) setZero(neg bool, exp int64) *Decimal {
	z.setSpecial(neg, 0)
	z.exp = exp
	return z
}

// setDigits updates z.dig from the coefficient.
func (z *Decimal) setDigits() {
	z.dig = int64(z.mant.digits())
}

// ndigits returns the number of digits of the coefficient of x, 1 for a zero
// coefficient.
func (x *Decimal) ndigits() int64 {
	if x.dig == 0 {
		return 1
	}
	return x.dig
}

// adjexp returns the adjusted exponent of a finite x.
func (x *Decimal) adjexp() int64 {
	return x.exp + x.ndigits() - 1
}

// setTriple sets z to the finite value (-1)**neg × coeff × 10**exp without
// rounding.
func (z *Decimal) setTriple(neg bool, coeff dec, exp int64, st *Status) *Decimal {
	if !z.setMant(coeff, st) {
		return z
	}
	z.mant = z.mant.norm()
	f := uint8(0)
	if neg {
		f = flagNeg
	}
	z.setFlags(f)
	z.exp = exp
	z.setDigits()
	return z
}

// IsNaN reports whether x is a quiet or signaling NaN.
func (x *Decimal) IsNaN() bool { return x.flags&flagAnyNaN != 0 }

// IsQNaN reports whether x is a quiet NaN.
func (x *Decimal) IsQNaN() bool { return x.flags&flagNaN != 0 }

// IsSNaN reports whether x is a signaling NaN.
func (x *Decimal) IsSNaN() bool { return x.flags&flagSNaN != 0 }

// IsInf reports whether x is +Inf or -Inf.
func (x *Decimal) IsInf() bool { return x.flags&flagInf != 0 }

// IsFinite reports whether x is neither infinite nor a NaN.
func (x *Decimal) IsFinite() bool { return !x.isSpecial() }

// IsZero reports whether x is ±0.
func (x *Decimal) IsZero() bool { return !x.isSpecial() && x.isZeroCoeff() }

// IsInteger reports whether x is a finite integral value.
func (x *Decimal) IsInteger() bool {
	if x.isSpecial() {
		return false
	}
	if x.exp >= 0 || x.isZeroCoeff() {
		return true
	}
	return int64(x.mant.trailingZeros()) >= -x.exp
}

// IsNormal reports whether x is a finite non-zero number with an adjusted
// exponent >= ctx.Emin().
func (x *Decimal) IsNormal(ctx *Context) bool {
	return !x.isSpecial() && !x.isZeroCoeff() && x.adjexp() >= ctx.emin
}

// IsSubnormal reports whether x is a finite non-zero number with an adjusted
// exponent < ctx.Emin().
func (x *Decimal) IsSubnormal(ctx *Context) bool {
	return !x.isSpecial() && !x.isZeroCoeff() && x.adjexp() < ctx.emin
}

// Signbit reports whether x is negative, including -0 and negative NaNs.
func (x *Decimal) Signbit() bool { return x.isNeg() }

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x *Decimal) Sign() int {
	switch {
	case x.IsNaN() || x.IsZero():
		return 0
	case x.isNeg():
		return -1
	}
	return 1
}

// Digits returns the number of digits of the coefficient of x, or of the
// payload of a NaN. It returns 1 for zero and infinities.
func (x *Decimal) Digits() int64 { return x.ndigits() }

// Exponent returns the exponent of a finite x.
func (x *Decimal) Exponent() int64 { return x.exp }

// Adjexp returns the adjusted exponent of a finite x, Exponent() + Digits() - 1.
func (x *Decimal) Adjexp() int64 { return x.adjexp() }

// Coefficient returns the coefficient of x, or the payload of a NaN, as
// words in base 10**19 (10**9 with 32 bits words), least significant first.
// The returned slice shares storage with x.
func (x *Decimal) Coefficient() []Word { return x.mant }

// Set sets z to the exact value of x and returns z.
func (z *Decimal) Set(x *Decimal, st *Status) *Decimal {
	if z == x {
		return z
	}
	if !z.setMant(x.mant, st) {
		return z
	}
	z.setFlags(x.flags &^ flagStatic)
	z.exp = x.exp
	z.dig = x.dig
	return z
}

// SetInf sets z to -Inf if signbit is set, or +Inf otherwise.
func (z *Decimal) SetInf(signbit bool) *Decimal {
	return z.setSpecial(signbit, flagInf)
}

// SetNaN sets z to a quiet NaN without payload, or a signaling one if
// signaling is set.
func (z *Decimal) SetNaN(signaling bool) *Decimal {
	if signaling {
		return z.setSpecial(false, flagSNaN)
	}
	return z.setSpecial(false, flagNaN)
}

// SetTriple sets z to (-1)**neg × coeff × 10**exp, rounded to ctx.
// coeff holds words in base 10**19 (10**9 with 32 bits words), least
// significant first. A word >= the base is an InvalidOperation.
func (z *Decimal) SetTriple(neg bool, coeff []Word, exp int64, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	for _, w := range coeff {
		if w > _DMax {
			*st |= InvalidOperation
			z.setQNaN()
			return z
		}
	}
	z.setTriple(neg, coeff, exp, st)
	return z.finalize(ctx, st)
}

// Class returns the class of x in the General Decimal Arithmetic
// terminology: "sNaN", "NaN", "-Infinity", "-Normal", "-Subnormal", "-Zero",
// "+Zero", "+Subnormal", "+Normal" or "+Infinity".
func (x *Decimal) Class(ctx *Context) string {
	if x.IsSNaN() {
		return "sNaN"
	}
	if x.IsQNaN() {
		return "NaN"
	}
	s := "+"
	if x.isNeg() {
		s = "-"
	}
	switch {
	case x.IsInf():
		return s + "Infinity"
	case x.isZeroCoeff():
		return s + "Zero"
	case x.IsSubnormal(ctx):
		return s + "Subnormal"
	}
	return s + "Normal"
}

func (x *Decimal) validate() {
	if !debugDecimal {
		// avoid performance bugs
		panic("validate called but debugDecimal is not set")
	}
	m := len(x.mant)
	if m > 0 && x.mant[m-1] == 0 {
		panic(fmt.Sprintf("last word of %s is zero", x))
	}
	if d := int64(x.mant.digits()); x.dig != d {
		panic(fmt.Sprintf("digit count %d != real digit count %d for %s", x.dig, d, x))
	}
	if x.IsInf() && m != 0 {
		panic("infinity with a coefficient")
	}
}
