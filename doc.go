// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decnum implements arbitrary-precision decimal floating-point
arithmetic as defined by the General Decimal Arithmetic specification and
IEEE 754-2008.

The coefficient of a decimal is stored in a little-endian Word slice as
"declets" of 9 or 19 decimal digits per 32 or 64 bits Word. All arithmetic
operations are performed directly in base 10**9 or 10**19 without conversion
to/from binary. Multiplication switches from the schoolbook method to
Karatsuba, then to a number theoretic transform as operands grow; division
switches from Knuth's algorithm D to Newton iteration.

The zero value for a Decimal corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	x := new(Decimal)  // x is a *Decimal of value 0
	y := New()         // same

Contexts and status

Every operation that may round takes a *Context, which holds the precision,
the exponent limits and the rounding mode, and a *Status to which it adds
the exceptional conditions it encounters:

	ctx := DefaultContext()     // 28 digits, ToNearestEven
	var st Status
	z := New().Quo(x, y, &ctx, &st)
	if st&DivisionByZero != 0 {
		// ...
	}

Operations never clear a Status and never panic on numeric input: invalid
operations produce a quiet NaN and add InvalidOperation to the status.
Conditions are only reported; the trap settings of a Context are honored
by the decnum/context package, which wraps a Context and hands trapped
conditions to a trap handler that panics by default or latches a Go error.

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Decimal) SetV(v V, ctx *Context, st *Status) *Decimal  // z = v
	func (z *Decimal) Unary(x *Decimal, ctx *Context, st *Status) *Decimal
	func (z *Decimal) Binary(x, y *Decimal, ctx *Context, st *Status) *Decimal
	func (x *Decimal) Pred() P                                      // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z
in that case); if it is one of the operands x or y it may be safely
overwritten (and its memory reused). Operands are never modified.

Arithmetic expressions are typically written as a sequence of individual
method calls, with each call corresponding to an operation. The receiver
denotes the result and the method arguments are the operation's operands.
For instance, given three *Decimal values a, b and c, the invocation

	c.Add(a, b, &ctx, &st)

computes the sum a + b rounded to ctx and stores the result in c,
overwriting whatever value was held in c before. Operations permit aliasing
of parameters, so it is perfectly ok to write

	sum.Add(sum, x, &ctx, &st)

to accumulate values x in a sum.

(By always passing in a result value via the receiver, memory use can be
much better controlled. Instead of having to allocate new memory for each
result, an operation can reuse the space allocated for the result value, and
overwrite that value with the new result in the process.)

Memory

Coefficient buffers are obtained from an Allocator. Setup can replace the
default Go heap allocator and the minimum buffer size, but only before the
first buffer is allocated. A failed allocation leaves the result NaN with
MallocError in the status. Decimals created with NewStatic use a caller
provided buffer and only switch to the allocator if it is too small. Free
releases the buffer of a Decimal.

Conversions

Decimal implements the Stringer interface with the scientific string
representation of the value, EngString returns the engineering form and
SetString parses both. *Decimal satisfies the fmt package's Scanner
interface for scanning and the Formatter interface for formatted printing.
FormatSpec formats a value with a Python-style format specification.
Conversions to and from int64, uint64, float64 and *big.Int, and to and from
digits in arbitrary bases are provided as well.
*/
package decnum
