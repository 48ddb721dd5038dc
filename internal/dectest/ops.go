// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dectest

import (
	"strconv"

	"github.com/db47h/decnum"
)

type (
	unaryFunc   func(z, x *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal
	binaryFunc  func(z, x, y *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal
	ternaryFunc func(z, x, y, u *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal
)

// An operation computes the result string of a test case from its
// converted operands.
type operation struct {
	arity int
	// convert operands with rounding to the test context instead of exactly
	round bool
	eval  func(args []*decnum.Decimal, ctx *decnum.Context, st *decnum.Status) string
}

func unary(f unaryFunc) operation {
	return operation{1, false, func(args []*decnum.Decimal, ctx *decnum.Context, st *decnum.Status) string {
		return f(decnum.New(), args[0], ctx, st).String()
	}}
}

func binary(f binaryFunc) operation {
	return operation{2, false, func(args []*decnum.Decimal, ctx *decnum.Context, st *decnum.Status) string {
		return f(decnum.New(), args[0], args[1], ctx, st).String()
	}}
}

func ternary(f ternaryFunc) operation {
	return operation{3, false, func(args []*decnum.Decimal, ctx *decnum.Context, st *decnum.Status) string {
		return f(decnum.New(), args[0], args[1], args[2], ctx, st).String()
	}}
}

func conversion(f func(x *decnum.Decimal) string) operation {
	return operation{1, true, func(args []*decnum.Decimal, _ *decnum.Context, _ *decnum.Status) string {
		return f(args[0])
	}}
}

func total(f func(x, y *decnum.Decimal) int) operation {
	return operation{2, false, func(args []*decnum.Decimal, _ *decnum.Context, _ *decnum.Status) string {
		return strconv.Itoa(f(args[0], args[1]))
	}}
}

func copyOp(f func(z, x *decnum.Decimal, st *decnum.Status) *decnum.Decimal) operation {
	return unary(func(z, x *decnum.Decimal, _ *decnum.Context, st *decnum.Status) *decnum.Decimal {
		return f(z, x, st)
	})
}

// operations maps lower case operation names to their implementation.
// Logical operations (and, or, xor, invert, rotate, shift) are not
// implemented.
var operations = map[string]operation{
	"abs":           unary((*decnum.Decimal).Abs),
	"add":           binary((*decnum.Decimal).Add),
	"apply":         conversion((*decnum.Decimal).String),
	"canonical":     copyOp((*decnum.Decimal).Set),
	"class":         {1, false, class},
	"compare":       binary((*decnum.Decimal).Compare),
	"comparesig":    binary((*decnum.Decimal).CompareSignal),
	"comparetotal":  total((*decnum.Decimal).CmpTotal),
	"comparetotmag": total((*decnum.Decimal).CmpTotalMag),
	"copy":          copyOp((*decnum.Decimal).Set),
	"copyabs":       copyOp((*decnum.Decimal).CopyAbs),
	"copynegate":    copyOp((*decnum.Decimal).CopyNeg),
	"copysign":      {2, false, copySign},
	"divide":        binary((*decnum.Decimal).Quo),
	"divideint":     binary((*decnum.Decimal).QuoInt),
	"exp":           unary((*decnum.Decimal).Exp),
	"fma":           ternary((*decnum.Decimal).FMA),
	"ln":            unary((*decnum.Decimal).Ln),
	"log10":         unary((*decnum.Decimal).Log10),
	"logb":          unary((*decnum.Decimal).Logb),
	"max":           binary((*decnum.Decimal).Max),
	"maxmag":        binary((*decnum.Decimal).MaxMag),
	"min":           binary((*decnum.Decimal).Min),
	"minmag":        binary((*decnum.Decimal).MinMag),
	"minus":         unary((*decnum.Decimal).Neg),
	"multiply":      binary((*decnum.Decimal).Mul),
	"nextminus":     unary((*decnum.Decimal).NextMinus),
	"nextplus":      unary((*decnum.Decimal).NextPlus),
	"nexttoward":    binary((*decnum.Decimal).NextToward),
	"plus":          unary((*decnum.Decimal).Plus),
	"power":         binary((*decnum.Decimal).Pow),
	"quantize":      binary((*decnum.Decimal).Quantize),
	"reduce":        unary((*decnum.Decimal).Reduce),
	"remainder":     binary((*decnum.Decimal).Rem),
	"remaindernear": binary((*decnum.Decimal).RemNear),
	"rescale":       binary(rescale),
	"samequantum":   {2, false, sameQuantum},
	"scaleb":        binary((*decnum.Decimal).Scaleb),
	"squareroot":    unary((*decnum.Decimal).Sqrt),
	"subtract":      binary((*decnum.Decimal).Sub),
	"toeng":         conversion((*decnum.Decimal).EngString),
	"tointegral":    unary((*decnum.Decimal).RoundToIntegral),
	"tointegralx":   unary((*decnum.Decimal).RoundToIntegralExact),
	"tosci":         conversion((*decnum.Decimal).String),
}

func class(args []*decnum.Decimal, ctx *decnum.Context, _ *decnum.Status) string {
	return args[0].Class(ctx)
}

func copySign(args []*decnum.Decimal, _ *decnum.Context, st *decnum.Status) string {
	return decnum.New().CopySign(args[0], args[1], st).String()
}

func sameQuantum(args []*decnum.Decimal, _ *decnum.Context, _ *decnum.Status) string {
	if args[0].SameQuantum(args[1]) {
		return "1"
	}
	return "0"
}

// rescale sets z to x with the exponent given by the integral value of y.
func rescale(z, x, y *decnum.Decimal, ctx *decnum.Context, st *decnum.Status) *decnum.Decimal {
	if x.IsNaN() || y.IsNaN() {
		return z.Add(x, y, ctx, st)
	}
	if !y.IsInteger() {
		*st |= decnum.InvalidOperation
		return z.SetNaN(false)
	}
	var es decnum.Status
	exp := y.Int64(&es)
	if es != 0 {
		*st |= decnum.InvalidOperation
		return z.SetNaN(false)
	}
	return z.Rescale(x, exp, ctx, st)
}
