// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides raising contexts for Decimals.
//
// The arithmetic of package decnum is quiet: operations take a
// *decnum.Context and a *decnum.Status and only accumulate conditions. A
// Context of this package wraps a decnum.Context and accumulates the status of
// every operation performed through it. When an operation signals a condition
// that is part of the trap mask, the context's TrapHandler is called.
//
// Factory functions of the form
//
//	func (c *Context) NewT(x T) *decnum.Decimal
//
// create a new decnum.Decimal set to the value of x, rounded to c.
//
// Operators that set a receiver z to a function of other decimal arguments
// like:
//
//	func (c *Context) UnaryOp(z, x *decnum.Decimal) *decnum.Decimal
//	func (c *Context) BinaryOp(z, x, y *decnum.Decimal) *decnum.Decimal
//
// set z to the result of the operation rounded to c and return z.
//
// The default TrapHandler, PanicHandler, aborts by panicking with an error
// whose cause is a *TrapError. Install LatchHandler to record the error
// instead: the context then keeps the first *TrapError and further operations
// with the context are no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
package context

import (
	"math/big"

	"github.com/db47h/decnum"
	"github.com/pkg/errors"
)

// A TrapError reports trapped conditions.
type TrapError struct {
	Status decnum.Status
}

func (e *TrapError) Error() string {
	return "decnum: trapped " + e.Status.String()
}

// A TrapHandler is called with the name of the operation and the trapped
// conditions it signaled, after the operation has completed and its status
// has been accumulated in c.
type TrapHandler func(c *Context, op string, trapped decnum.Status)

// PanicHandler is the default TrapHandler. It panics with a *TrapError
// wrapped with the name of the operation.
func PanicHandler(c *Context, op string, trapped decnum.Status) {
	panic(errors.Wrap(&TrapError{Status: trapped}, op))
}

// LatchHandler records a *TrapError wrapped with the name of the operation
// in c. Operations with c are no-ops until c.Err is called.
func LatchHandler(c *Context, op string, trapped decnum.Status) {
	if c.err == nil {
		c.err = errors.Wrap(&TrapError{Status: trapped}, op)
	}
}

// A Context is a wrapper around decnum.Context that facilitates management of
// conditions and error handling. Embedded getters such as Prec or Traps are
// those of decnum.Context, setters signal InvalidContext instead of returning
// a boolean.
type Context struct {
	decnum.Context
	handler TrapHandler
	err     error
}

// New returns a new Context with the settings of ctx and the default trap
// handler.
func New(ctx decnum.Context) *Context {
	return &Context{Context: ctx, handler: PanicHandler}
}

// Default returns a new Context with the settings of decnum.DefaultContext.
func Default() *Context {
	return New(decnum.DefaultContext())
}

// SetTrapHandler sets the handler called when a trapped condition is
// signaled and returns c. A nil h restores PanicHandler.
func (c *Context) SetTrapHandler(h TrapHandler) *Context {
	if h == nil {
		h = PanicHandler
	}
	c.handler = h
	return c
}

// Err returns the first error recorded by LatchHandler since the last call to
// Err and clears the error state. errors.Cause(err) is a *TrapError.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// raise adds st to the accumulated status and calls the trap handler if st
// intersects the trap mask.
func (c *Context) raise(op string, st decnum.Status) {
	c.Context.SetStatus(c.Context.Status() | st)
	if t := st & c.Context.Traps(); t != 0 {
		if c.handler == nil {
			c.handler = PanicHandler
		}
		c.handler(c, op, t)
	}
}

// do runs f and raises the conditions it signals. It is a no-op while c holds
// an error.
func (c *Context) do(op string, z *decnum.Decimal, f func(st *decnum.Status)) *decnum.Decimal {
	if c.err != nil {
		return z
	}
	var st decnum.Status
	f(&st)
	c.raise(op, st)
	return z
}

func (c *Context) setter(op string, ok bool) *Context {
	if !ok {
		c.do(op, nil, func(st *decnum.Status) { *st |= decnum.InvalidContext })
	}
	return c
}

// SetPrec sets the precision of c and returns c.
func (c *Context) SetPrec(prec int64) *Context {
	return c.setter("SetPrec", c.Context.SetPrec(prec))
}

// SetEmax sets the largest adjusted exponent of c and returns c.
func (c *Context) SetEmax(emax int64) *Context {
	return c.setter("SetEmax", c.Context.SetEmax(emax))
}

// SetEmin sets the smallest adjusted exponent of c and returns c.
func (c *Context) SetEmin(emin int64) *Context {
	return c.setter("SetEmin", c.Context.SetEmin(emin))
}

// SetRound sets the rounding mode of c and returns c.
func (c *Context) SetRound(mode decnum.RoundingMode) *Context {
	return c.setter("SetRound", c.Context.SetRound(mode))
}

// SetTraps sets the trap mask of c and returns c.
func (c *Context) SetTraps(traps decnum.Status) *Context {
	return c.setter("SetTraps", c.Context.SetTraps(traps))
}

// New returns a new decnum.Decimal with value 0.
func (c *Context) New() *decnum.Decimal {
	return decnum.New()
}

// NewInt64 returns a new *decnum.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *decnum.Decimal {
	z := decnum.New()
	return c.do("NewInt64", z, func(st *decnum.Status) { z.SetInt64(x, &c.Context, st) })
}

// NewUint64 returns a new *decnum.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *decnum.Decimal {
	z := decnum.New()
	return c.do("NewUint64", z, func(st *decnum.Status) { z.SetUint64(x, &c.Context, st) })
}

// NewBigInt returns a new *decnum.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewBigInt(x *big.Int) *decnum.Decimal {
	z := decnum.New()
	return c.do("NewBigInt", z, func(st *decnum.Status) { z.SetBigInt(x, &c.Context, st) })
}

// NewFloat64 returns a new *decnum.Decimal set to the value of x rounded to
// c.
func (c *Context) NewFloat64(x float64) *decnum.Decimal {
	z := decnum.New()
	return c.do("NewFloat64", z, func(st *decnum.Status) {
		z.SetFloat64(x, st).Plus(z, &c.Context, st)
	})
}

// NewString returns a new *decnum.Decimal set to the value of s rounded to c.
// An invalid numeric string signals ConversionSyntax.
func (c *Context) NewString(s string) *decnum.Decimal {
	z := decnum.New()
	return c.do("NewString", z, func(st *decnum.Status) { z.SetString(s, &c.Context, st) })
}

// RoundTo sets z to the value of x rounded to c and returns z.
func (c *Context) RoundTo(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("RoundTo", z, func(st *decnum.Status) { z.Plus(x, &c.Context, st) })
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Add", z, func(st *decnum.Status) { z.Add(x, y, &c.Context, st) })
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Sub", z, func(st *decnum.Status) { z.Sub(x, y, &c.Context, st) })
}

// FMA sets z to x * y + u, computed with only one rounding. That is, FMA
// performs the fused multiply-add of x, y, and u.
func (c *Context) FMA(z, x, y, u *decnum.Decimal) *decnum.Decimal {
	return c.do("FMA", z, func(st *decnum.Status) { z.FMA(x, y, u, &c.Context, st) })
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Mul", z, func(st *decnum.Status) { z.Mul(x, y, &c.Context, st) })
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Quo", z, func(st *decnum.Status) { z.Quo(x, y, &c.Context, st) })
}

// QuoInt sets z to the integer part of x/y and returns z.
func (c *Context) QuoInt(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("QuoInt", z, func(st *decnum.Status) { z.QuoInt(x, y, &c.Context, st) })
}

// Rem sets z to the remainder of the integer division x/y and returns z.
func (c *Context) Rem(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Rem", z, func(st *decnum.Status) { z.Rem(x, y, &c.Context, st) })
}

// RemNear sets z to the IEEE 754 remainder of x/y and returns z.
func (c *Context) RemNear(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("RemNear", z, func(st *decnum.Status) { z.RemNear(x, y, &c.Context, st) })
}

// QuoRem sets q and r to the integer part and the remainder of x/y and
// returns them.
func (c *Context) QuoRem(q, r, x, y *decnum.Decimal) (*decnum.Decimal, *decnum.Decimal) {
	c.do("QuoRem", q, func(st *decnum.Status) { decnum.QuoRem(q, r, x, y, &c.Context, st) })
	return q, r
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Neg", z, func(st *decnum.Status) { z.Neg(x, &c.Context, st) })
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Abs", z, func(st *decnum.Status) { z.Abs(x, &c.Context, st) })
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Sqrt", z, func(st *decnum.Status) { z.Sqrt(x, &c.Context, st) })
}

// Exp sets z to the rounded value of e**x and returns z.
func (c *Context) Exp(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Exp", z, func(st *decnum.Status) { z.Exp(x, &c.Context, st) })
}

// Ln sets z to the rounded natural logarithm of x and returns z.
func (c *Context) Ln(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Ln", z, func(st *decnum.Status) { z.Ln(x, &c.Context, st) })
}

// Log10 sets z to the rounded base 10 logarithm of x and returns z.
func (c *Context) Log10(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Log10", z, func(st *decnum.Status) { z.Log10(x, &c.Context, st) })
}

// Pow sets z to the rounded value of x**y and returns z.
func (c *Context) Pow(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Pow", z, func(st *decnum.Status) { z.Pow(x, y, &c.Context, st) })
}

// Quantize sets z to x rounded or padded to the exponent of y and returns z.
func (c *Context) Quantize(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Quantize", z, func(st *decnum.Status) { z.Quantize(x, y, &c.Context, st) })
}

// Reduce sets z to x rounded with trailing zeros removed and returns z.
func (c *Context) Reduce(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("Reduce", z, func(st *decnum.Status) { z.Reduce(x, &c.Context, st) })
}

// RoundToIntegral sets z to x rounded to an integer and returns z.
func (c *Context) RoundToIntegral(z, x *decnum.Decimal) *decnum.Decimal {
	return c.do("RoundToIntegral", z, func(st *decnum.Status) { z.RoundToIntegral(x, &c.Context, st) })
}

// Max sets z to the larger of x and y and returns z.
func (c *Context) Max(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Max", z, func(st *decnum.Status) { z.Max(x, y, &c.Context, st) })
}

// Min sets z to the smaller of x and y and returns z.
func (c *Context) Min(z, x, y *decnum.Decimal) *decnum.Decimal {
	return c.do("Min", z, func(st *decnum.Status) { z.Min(x, y, &c.Context, st) })
}

// Cmp compares x and y and returns -1, 0 or +1. NaN operands signal
// InvalidOperation and return decnum.Unordered.
func (c *Context) Cmp(x, y *decnum.Decimal) (r int) {
	r = decnum.Unordered
	c.do("Cmp", nil, func(st *decnum.Status) { r = x.Cmp(y, st) })
	return r
}
