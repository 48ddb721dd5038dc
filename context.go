// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// Precision and exponent limits. The 32 bits values keep every intermediate
// exponent computation within int64 and coefficient lengths within int.
const (
	MaxPrec  = 999999999999999999*(_W/64) + 425000000*(1-_W/64)
	MaxEmax  = MaxPrec
	MinEmin  = -MaxPrec
	MinEtiny = MinEmin - (MaxPrec - 1)
)

// RoundingMode determines how a Decimal value is rounded to the precision of
// a Context.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
	ToNearestZero                     // round to nearest, ties toward zero
	ZeroFiveUp                        // away from zero if the last digit would be 0 or 5, toward zero otherwise
	Truncate                          // toward zero, but overflow gives infinity
	roundGuard
)

//go:generate stringer -type=RoundingMode

// A Context holds the precision, exponent limits, rounding mode and trap
// settings used by Decimal operations.
//
// Fields are only set through validating setters. The zero Context is not a
// valid context: operations using it set InvalidContext and return NaN.
type Context struct {
	prec   int64
	emax   int64
	emin   int64
	round  RoundingMode
	traps  Status
	status Status
	clamp  bool
	allcr  bool
}

// DefaultContext returns a context with a precision of 28 digits, exponent
// limits of ±999999, ToNearestEven rounding and traps on invalid operation,
// division by zero and overflow.
func DefaultContext() Context {
	return Context{
		prec:  28,
		emax:  999999,
		emin:  -999999,
		round: ToNearestEven,
		traps: IEEEInvalidOperation | DivisionByZero | Overflow,
		allcr: true,
	}
}

// BasicContext returns a context with a precision of 9 digits, the widest
// exponent limits, ToNearestAway rounding and traps on Traps and Clamped.
func BasicContext() Context {
	return Context{
		prec:  9,
		emax:  MaxEmax,
		emin:  MinEmin,
		round: ToNearestAway,
		traps: Traps | Clamped,
		allcr: true,
	}
}

// MaxContext returns a context with the largest precision and exponent
// limits and ToNearestEven rounding.
func MaxContext() Context {
	return Context{
		prec:  MaxPrec,
		emax:  MaxEmax,
		emin:  MinEmin,
		round: ToNearestEven,
		traps: Traps,
		allcr: true,
	}
}

// IEEEContext returns the context of the IEEE 754 decimal interchange format
// of the given width in bits. bits must be a multiple of 32 between 32 and
// 512 (256 with 32 bits words).
func IEEEContext(bits int) (Context, bool) {
	const maxBits = 512*(_W/64) + 256*(1-_W/64)
	if bits <= 0 || bits > maxBits || bits%32 != 0 {
		return Context{}, false
	}
	emax := int64(3) << (bits/16 + 3)
	return Context{
		prec:  int64(9*(bits/32) - 2),
		emax:  emax,
		emin:  1 - emax,
		round: ToNearestEven,
		clamp: true,
		allcr: true,
	}, true
}

// workContext returns a context with the given precision, capped to
// MaxPrec, the widest exponent limits and ToNearestEven rounding.
func workContext(prec int64) Context {
	c := MaxContext()
	c.prec = min(prec, MaxPrec)
	c.traps = 0
	return c
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() int64 { return c.prec }

// Emax returns the largest adjusted exponent.
func (c *Context) Emax() int64 { return c.emax }

// Emin returns the smallest adjusted exponent of a normal number.
func (c *Context) Emin() int64 { return c.emin }

// Round returns the rounding mode of c.
func (c *Context) Round() RoundingMode { return c.round }

// Traps returns the set of trapped conditions.
func (c *Context) Traps() Status { return c.traps }

// Status returns the conditions accumulated in c.
func (c *Context) Status() Status { return c.status }

// Clamp reports whether IEEE 754 exponent clamping is on.
func (c *Context) Clamp() bool { return c.clamp }

// CR reports whether Exp, Ln, Log10 and Pow return correctly rounded
// results.
func (c *Context) CR() bool { return c.allcr }

// Etiny returns the smallest exponent of a subnormal result,
// Emin - Prec + 1.
func (c *Context) Etiny() int64 { return c.emin - c.prec + 1 }

// Etop returns the largest exponent of a result when clamping is on,
// Emax - Prec + 1.
func (c *Context) Etop() int64 { return c.emax - c.prec + 1 }

// SetPrec sets the precision of c. It returns false and leaves c unchanged
// if prec is not in [1, MaxPrec].
func (c *Context) SetPrec(prec int64) bool {
	if prec < 1 || prec > MaxPrec {
		return false
	}
	c.prec = prec
	return true
}

// SetEmax sets the largest adjusted exponent. It returns false and leaves c
// unchanged if emax is not in [0, MaxEmax].
func (c *Context) SetEmax(emax int64) bool {
	if emax < 0 || emax > MaxEmax {
		return false
	}
	c.emax = emax
	return true
}

// SetEmin sets the smallest adjusted exponent of a normal number. It returns
// false and leaves c unchanged if emin is not in [MinEmin, 0].
func (c *Context) SetEmin(emin int64) bool {
	if emin > 0 || emin < MinEmin {
		return false
	}
	c.emin = emin
	return true
}

// SetRound sets the rounding mode.
func (c *Context) SetRound(mode RoundingMode) bool {
	if mode >= roundGuard {
		return false
	}
	c.round = mode
	return true
}

// SetTraps sets the trapped conditions.
func (c *Context) SetTraps(traps Status) bool {
	if traps&^Conditions != 0 {
		return false
	}
	c.traps = traps
	return true
}

// SetStatus sets the accumulated conditions.
func (c *Context) SetStatus(status Status) bool {
	if status&^Conditions != 0 {
		return false
	}
	c.status = status
	return true
}

// SetClamp turns IEEE 754 exponent clamping on or off.
func (c *Context) SetClamp(clamp bool) { c.clamp = clamp }

// SetCR requests correctly rounded (true) or faster, almost always correctly
// rounded (false) results from Exp, Ln, Log10 and Pow.
func (c *Context) SetCR(cr bool) { c.allcr = cr }

// Valid reports whether all settings of c are within their legal range.
func (c *Context) Valid() bool {
	return c.prec >= 1 && c.prec <= MaxPrec &&
		c.emax >= 0 && c.emax <= MaxEmax &&
		c.emin <= 0 && c.emin >= MinEmin &&
		c.round < roundGuard &&
		c.traps&^Conditions == 0 && c.status&^Conditions == 0
}

// check returns false and sets z to NaN if c is not valid.
func (c *Context) check(z *Decimal, st *Status) bool {
	if c.Valid() {
		return true
	}
	*st |= InvalidContext
	z.setQNaN()
	return false
}
