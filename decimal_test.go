// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"encoding"
	"encoding/gob"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

var (
	// required implemented interfaces
	_ fmt.Stringer             = &decimalZero
	_ fmt.Scanner              = &decimalZero
	_ fmt.Formatter            = &decimalZero
	_ encoding.TextMarshaler   = &decimalZero
	_ encoding.TextUnmarshaler = &decimalZero
	_ gob.GobEncoder           = &decimalZero
	_ gob.GobDecoder           = &decimalZero
)

// makeDecimal returns the exact value of s. It panics if s is not a valid
// number.
func makeDecimal(s string) *Decimal {
	var st Status
	z := new(Decimal).SetStringExact(s, &st)
	if st != 0 {
		panic(fmt.Sprintf("makeDecimal(%q): %v", s, st))
	}
	return z
}

// testContext returns DefaultContext with the given precision and rounding
// mode.
func testContext(prec int64, mode RoundingMode) Context {
	ctx := DefaultContext()
	if !ctx.SetPrec(prec) || !ctx.SetRound(mode) {
		panic(fmt.Sprintf("testContext(%d, %v)", prec, mode))
	}
	return ctx
}

type opFunc func(z *Decimal, args []*Decimal, ctx *Context, st *Status) *Decimal

func unaryOp(f func(z, x *Decimal, ctx *Context, st *Status) *Decimal) opFunc {
	return func(z *Decimal, a []*Decimal, ctx *Context, st *Status) *Decimal { return f(z, a[0], ctx, st) }
}

func binaryOp(f func(z, x, y *Decimal, ctx *Context, st *Status) *Decimal) opFunc {
	return func(z *Decimal, a []*Decimal, ctx *Context, st *Status) *Decimal { return f(z, a[0], a[1], ctx, st) }
}

var decimalOps = map[string]opFunc{
	"add":        binaryOp((*Decimal).Add),
	"sub":        binaryOp((*Decimal).Sub),
	"mul":        binaryOp((*Decimal).Mul),
	"quo":        binaryOp((*Decimal).Quo),
	"quoint":     binaryOp((*Decimal).QuoInt),
	"rem":        binaryOp((*Decimal).Rem),
	"remnear":    binaryOp((*Decimal).RemNear),
	"pow":        binaryOp((*Decimal).Pow),
	"quantize":   binaryOp((*Decimal).Quantize),
	"scaleb":     binaryOp((*Decimal).Scaleb),
	"nexttoward": binaryOp((*Decimal).NextToward),
	"max":        binaryOp((*Decimal).Max),
	"min":        binaryOp((*Decimal).Min),
	"maxmag":     binaryOp((*Decimal).MaxMag),
	"minmag":     binaryOp((*Decimal).MinMag),
	"compare":    binaryOp((*Decimal).Compare),
	"comparesig": binaryOp((*Decimal).CompareSignal),
	"sqrt":       unaryOp((*Decimal).Sqrt),
	"exp":        unaryOp((*Decimal).Exp),
	"ln":         unaryOp((*Decimal).Ln),
	"log10":      unaryOp((*Decimal).Log10),
	"logb":       unaryOp((*Decimal).Logb),
	"reduce":     unaryOp((*Decimal).Reduce),
	"rint":       unaryOp((*Decimal).RoundToIntegral),
	"rintx":      unaryOp((*Decimal).RoundToIntegralExact),
	"plus":       unaryOp((*Decimal).Plus),
	"neg":        unaryOp((*Decimal).Neg),
	"abs":        unaryOp((*Decimal).Abs),
	"nextplus":   unaryOp((*Decimal).NextPlus),
	"nextminus":  unaryOp((*Decimal).NextMinus),
	"fma": func(z *Decimal, a []*Decimal, ctx *Context, st *Status) *Decimal {
		return z.FMA(a[0], a[1], a[2], ctx, st)
	},
}

var decimalOpTests = []struct {
	op   string
	args []string
	prec int64
	mode RoundingMode
	want string
	st   Status
}{
	// addition and subtraction
	{"add", []string{"1", "1"}, 9, ToNearestEven, "2", 0},
	{"add", []string{"1.23456789", "1.000000001"}, 9, ToNearestAway, "2.23456789", Inexact | Rounded},
	{"add", []string{"12345678", "0.5"}, 9, ToNearestEven, "12345678.5", 0},
	{"add", []string{"12345677", "0.5"}, 9, ToNearestEven, "12345677.5", 0},
	{"add", []string{"12345678", "0.5"}, 9, ToNearestAway, "12345678.5", 0},
	{"add", []string{"999999999", "1"}, 9, ToZero, "1.00000000E+9", Rounded},
	{"add", []string{"1E+100", "1E-100"}, 9, ToNearestEven, "1.00000000E+100", Inexact | Rounded},
	{"add", []string{"1E+100", "1E-100"}, 9, ToPositiveInf, "1.00000001E+100", Inexact | Rounded},
	{"add", []string{"1.00", "-1"}, 9, ToNearestEven, "0.00", 0},
	{"add", []string{"1.00", "-1"}, 9, ToNegativeInf, "-0.00", 0},
	{"add", []string{"-0", "-0"}, 9, ToNearestEven, "-0", 0},
	{"add", []string{"-0", "0"}, 9, ToNearestEven, "0", 0},
	{"add", []string{"0E+5", "1E-5"}, 9, ToNearestEven, "0.00001", 0},
	{"add", []string{"0E-20", "0E+20"}, 9, ToNearestEven, "0E-20", 0},
	{"add", []string{"Infinity", "1"}, 9, ToNearestEven, "Infinity", 0},
	{"add", []string{"-Infinity", "-Infinity"}, 9, ToNearestEven, "-Infinity", 0},
	{"add", []string{"Infinity", "-Infinity"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"add", []string{"NaN12", "1"}, 9, ToNearestEven, "NaN12", 0},
	{"add", []string{"1", "sNaN34"}, 9, ToNearestEven, "NaN34", InvalidOperation},
	{"add", []string{"NaN1", "sNaN2"}, 9, ToNearestEven, "NaN2", InvalidOperation},
	{"sub", []string{"1.3", "1.07"}, 9, ToNearestEven, "0.23", 0},
	{"sub", []string{"1.3", "1.30"}, 9, ToNearestEven, "0.00", 0},
	{"sub", []string{"1.3", "2.07"}, 9, ToNearestEven, "-0.77", 0},
	{"sub", []string{"0", "1E-1000005"}, 9, ToNearestEven, "-1E-1000005", Subnormal},
	{"sub", []string{"9.99999999E+999999", "-1E+999999"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	// multiplication
	{"mul", []string{"1.20", "3"}, 9, ToNearestEven, "3.60", 0},
	{"mul", []string{"7", "3"}, 9, ToNearestEven, "21", 0},
	{"mul", []string{"0.9", "0.8"}, 9, ToNearestEven, "0.72", 0},
	{"mul", []string{"0.9", "-0"}, 9, ToNearestEven, "-0.0", 0},
	{"mul", []string{"654321", "654321"}, 9, ToNearestEven, "4.28135971E+11", Inexact | Rounded},
	{"mul", []string{"654321", "654321"}, 9, ToZero, "4.28135971E+11", Inexact | Rounded},
	{"mul", []string{"-Infinity", "0"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"mul", []string{"-Infinity", "-2"}, 9, ToNearestEven, "Infinity", 0},
	{"mul", []string{"1E-600000", "1E-600000"}, 9, ToNearestEven, "0E-1000007", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"mul", []string{"9E+600000", "9E+600000"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	{"mul", []string{"9E+600000", "9E+600000"}, 9, ToZero, "9.99999999E+999999", Inexact | Overflow | Rounded},
	{"mul", []string{"1.234E-999999", "0.01"}, 9, ToNearestEven, "1.234E-1000001", Subnormal},
	// fused multiply-add
	{"fma", []string{"3", "5", "7"}, 9, ToNearestEven, "22", 0},
	{"fma", []string{"888565290", "1557.96930", "-86087.7578"}, 9, ToNearestEven, "1.38435736E+12", Inexact | Rounded},
	{"fma", []string{"Infinity", "0", "NaN5"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"fma", []string{"Infinity", "-1", "Infinity"}, 9, ToNearestEven, "NaN", InvalidOperation},
	// division
	{"quo", []string{"1", "3"}, 9, ToNearestEven, "0.333333333", Inexact | Rounded},
	{"quo", []string{"2", "3"}, 9, ToNearestEven, "0.666666667", Inexact | Rounded},
	{"quo", []string{"5", "2"}, 9, ToNearestEven, "2.5", 0},
	{"quo", []string{"1", "10"}, 9, ToNearestEven, "0.1", 0},
	{"quo", []string{"12", "12"}, 9, ToNearestEven, "1", 0},
	{"quo", []string{"8.00", "2"}, 9, ToNearestEven, "4.00", 0},
	{"quo", []string{"2.400", "2.0"}, 9, ToNearestEven, "1.20", 0},
	{"quo", []string{"1000", "100"}, 9, ToNearestEven, "10", 0},
	{"quo", []string{"2.40E+6", "2"}, 9, ToNearestEven, "1.20E+6", 0},
	{"quo", []string{"-1", "0"}, 9, ToNearestEven, "-Infinity", DivisionByZero},
	{"quo", []string{"1", "Infinity"}, 9, ToNearestEven, "0E-1000007", Clamped},
	{"quo", []string{"Infinity", "-3"}, 9, ToNearestEven, "-Infinity", 0},
	{"quo", []string{"2", "3"}, 9, ToNearestAway, "0.666666667", Inexact | Rounded},
	{"quo", []string{"-2", "3"}, 9, ToZero, "-0.666666666", Inexact | Rounded},
	{"quo", []string{"-2", "3"}, 9, ToNegativeInf, "-0.666666667", Inexact | Rounded},
	{"quo", []string{"1", "7"}, 28, ToNearestEven, "0.1428571428571428571428571429", Inexact | Rounded},
	{"quo", []string{"1E-999999", "1E+10"}, 9, ToNearestEven, "0E-1000007", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"quoint", []string{"2", "3"}, 9, ToNearestEven, "0", 0},
	{"quoint", []string{"10", "3"}, 9, ToNearestEven, "3", 0},
	{"quoint", []string{"-10", "3"}, 9, ToNearestEven, "-3", 0},
	{"quoint", []string{"10.3", "3"}, 9, ToNearestEven, "3", 0},
	{"quoint", []string{"1", "0.3"}, 9, ToNearestEven, "3", 0},
	{"quoint", []string{"Infinity", "3"}, 9, ToNearestEven, "Infinity", 0},
	{"rem", []string{"2.1", "3"}, 9, ToNearestEven, "2.1", 0},
	{"rem", []string{"10", "3"}, 9, ToNearestEven, "1", 0},
	{"rem", []string{"-10", "3"}, 9, ToNearestEven, "-1", 0},
	{"rem", []string{"10.2", "1"}, 9, ToNearestEven, "0.2", 0},
	{"rem", []string{"10", "0.3"}, 9, ToNearestEven, "0.1", 0},
	{"rem", []string{"3.6", "1.3"}, 9, ToNearestEven, "1.0", 0},
	{"rem", []string{"5", "Infinity"}, 9, ToNearestEven, "5", 0},
	{"remnear", []string{"2.1", "3"}, 9, ToNearestEven, "-0.9", 0},
	{"remnear", []string{"10", "3"}, 9, ToNearestEven, "1", 0},
	{"remnear", []string{"-10", "3"}, 9, ToNearestEven, "-1", 0},
	{"remnear", []string{"10.2", "1"}, 9, ToNearestEven, "0.2", 0},
	{"remnear", []string{"10", "0.3"}, 9, ToNearestEven, "0.1", 0},
	{"remnear", []string{"3.6", "1.3"}, 9, ToNearestEven, "-0.3", 0},
	{"remnear", []string{"15", "2"}, 9, ToNearestEven, "-1", 0},
	{"remnear", []string{"17", "2"}, 9, ToNearestEven, "1", 0},
	// square root
	{"sqrt", []string{"0"}, 9, ToNearestEven, "0", 0},
	{"sqrt", []string{"-0"}, 9, ToNearestEven, "-0", 0},
	{"sqrt", []string{"0.39"}, 9, ToNearestEven, "0.624499800", Inexact | Rounded},
	{"sqrt", []string{"100"}, 9, ToNearestEven, "10", 0},
	{"sqrt", []string{"1.0"}, 9, ToNearestEven, "1.0", 0},
	{"sqrt", []string{"1.00"}, 9, ToNearestEven, "1.0", 0},
	{"sqrt", []string{"7"}, 9, ToNearestEven, "2.64575131", Inexact | Rounded},
	{"sqrt", []string{"10"}, 9, ToNearestEven, "3.16227766", Inexact | Rounded},
	{"sqrt", []string{"0E+7"}, 9, ToNearestEven, "0E+3", 0},
	{"sqrt", []string{"2.25E-4"}, 9, ToNearestEven, "0.015", 0},
	{"sqrt", []string{"Infinity"}, 9, ToNearestEven, "Infinity", 0},
	{"sqrt", []string{"-1"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"sqrt", []string{"2"}, 50, ToNearestEven, "1.4142135623730950488016887242096980785696718753769", Inexact | Rounded},
	{"sqrt", []string{"2"}, 9, ToZero, "1.41421356", Inexact | Rounded},
	// exponential and logarithms
	{"exp", []string{"-Infinity"}, 9, ToNearestEven, "0", 0},
	{"exp", []string{"0"}, 9, ToNearestEven, "1", 0},
	{"exp", []string{"1"}, 9, ToNearestEven, "2.71828183", Inexact | Rounded},
	{"exp", []string{"2"}, 9, ToNearestEven, "7.38905610", Inexact | Rounded},
	{"exp", []string{"-1"}, 9, ToNearestEven, "0.367879441", Inexact | Rounded},
	{"exp", []string{"0.5"}, 9, ToNearestEven, "1.64872127", Inexact | Rounded},
	{"exp", []string{"1E-20"}, 9, ToNearestEven, "1.00000000", Inexact | Rounded},
	{"exp", []string{"100"}, 9, ToNearestEven, "2.68811714E+43", Inexact | Rounded},
	{"exp", []string{"2400000"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	{"exp", []string{"-2400000"}, 9, ToNearestEven, "0E-1000007", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"exp", []string{"3.14159265358979323846"}, 40, ToNearestEven, "23.14069263277926900566791664796694308464", Inexact | Rounded},
	{"exp", []string{"1"}, 9, ToZero, "2.71828182", Inexact | Rounded},
	{"exp", []string{"1"}, 9, ToPositiveInf, "2.71828183", Inexact | Rounded},
	{"ln", []string{"0"}, 9, ToNearestEven, "-Infinity", 0},
	{"ln", []string{"1"}, 9, ToNearestEven, "0", 0},
	{"ln", []string{"2"}, 9, ToNearestEven, "0.693147181", Inexact | Rounded},
	{"ln", []string{"10"}, 9, ToNearestEven, "2.30258509", Inexact | Rounded},
	{"ln", []string{"0.5"}, 9, ToNearestEven, "-0.693147181", Inexact | Rounded},
	{"ln", []string{"1.000000001"}, 9, ToNearestEven, "1.00000000E-9", Inexact | Rounded},
	{"ln", []string{"1E+999999"}, 9, ToNearestEven, "2302582.79", Inexact | Rounded},
	{"ln", []string{"Infinity"}, 9, ToNearestEven, "Infinity", 0},
	{"ln", []string{"-1"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"ln", []string{"2"}, 40, ToNearestEven, "0.6931471805599453094172321214581765680755", Inexact | Rounded},
	{"log10", []string{"0"}, 9, ToNearestEven, "-Infinity", 0},
	{"log10", []string{"0.001"}, 9, ToNearestEven, "-3", 0},
	{"log10", []string{"1"}, 9, ToNearestEven, "0", 0},
	{"log10", []string{"2"}, 9, ToNearestEven, "0.301029996", Inexact | Rounded},
	{"log10", []string{"10"}, 9, ToNearestEven, "1", 0},
	{"log10", []string{"70"}, 9, ToNearestEven, "1.84509804", Inexact | Rounded},
	{"log10", []string{"1E+20"}, 9, ToNearestEven, "20", 0},
	{"log10", []string{"Infinity"}, 9, ToNearestEven, "Infinity", 0},
	{"ln", []string{"2"}, 16, ToNearestEven, "0.6931471805599453", Inexact | Rounded},
	{"ln", []string{"7"}, 16, ToNearestEven, "1.945910149055313", Inexact | Rounded},
	{"log10", []string{"70"}, 16, ToNearestEven, "1.845098040014257", Inexact | Rounded},
	{"log10", []string{"300"}, 9, ToNearestEven, "2.47712125", Inexact | Rounded},
	{"exp", []string{"3E-14"}, 16, ToNearestEven, "1.000000000000030", Inexact | Rounded},
	// power
	{"pow", []string{"2", "10"}, 9, ToNearestEven, "1024", 0},
	{"pow", []string{"2", "-2"}, 9, ToNearestEven, "0.25", 0},
	{"pow", []string{"2", "100"}, 9, ToNearestEven, "1.26765060E+30", Inexact | Rounded},
	{"pow", []string{"10", "-5"}, 9, ToNearestEven, "0.00001", 0},
	{"pow", []string{"1.1", "2"}, 9, ToNearestEven, "1.21", 0},
	{"pow", []string{"-2", "3"}, 9, ToNearestEven, "-8", 0},
	{"pow", []string{"2", "0.5"}, 9, ToNearestEven, "1.41421356", Inexact | Rounded},
	{"pow", []string{"0", "0"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"pow", []string{"0", "-2"}, 9, ToNearestEven, "Infinity", 0},
	{"pow", []string{"-0", "-3"}, 9, ToNearestEven, "-Infinity", 0},
	{"pow", []string{"-2", "0.5"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"pow", []string{"Infinity", "-1"}, 9, ToNearestEven, "0", 0},
	{"pow", []string{"-Infinity", "3"}, 9, ToNearestEven, "-Infinity", 0},
	{"pow", []string{"0.5", "Infinity"}, 9, ToNearestEven, "0", 0},
	{"pow", []string{"10", "999999"}, 9, ToNearestEven, "1.00000000E+999999", Rounded},
	{"pow", []string{"10", "1000000"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	{"pow", []string{"3", "1.5"}, 9, ToNearestEven, "5.19615242", Inexact | Rounded},
	{"pow", []string{"7", "-0.25"}, 9, ToNearestEven, "0.614788153", Inexact | Rounded},
	{"pow", []string{"2", "0.5"}, 16, ToNearestEven, "1.414213562373095", Inexact | Rounded},
	{"pow", []string{"10", "1E-100"}, 16, ToNearestEven, "1.000000000000000", Inexact | Rounded},
	{"pow", []string{"1", "Infinity"}, 9, ToNearestEven, "1.00000000", Inexact | Rounded},
	{"pow", []string{"1.0", "0.5"}, 9, ToNearestEven, "1.00000000", Inexact | Rounded},
	{"pow", []string{"1.00", "-0.5"}, 9, ToNearestEven, "1.00000000", Inexact | Rounded},
	{"pow", []string{"-5E-4", "-15"}, 5, ToNearestEven, "-3.2768E+49", 0},
	{"pow", []string{"4.0", "-2"}, 5, ToNearestEven, "0.0625", 0},
	{"pow", []string{"0.5", "-3"}, 5, ToNearestEven, "8", 0},
	{"pow", []string{"1.00", "-2"}, 5, ToNearestEven, "1", 0},
	{"pow", []string{"3", "-3"}, 5, ToNearestEven, "0.037037", Inexact | Rounded},
	{"pow", []string{"1.1", "-2"}, 5, ToNearestEven, "0.82645", Inexact | Rounded},
	{"pow", []string{"2", "0.5"}, 40, ToNearestEven, "1.414213562373095048801688724209698078570", Inexact | Rounded},
	// quantize and friends
	{"quantize", []string{"2.17", "0.001"}, 9, ToNearestEven, "2.170", 0},
	{"quantize", []string{"2.17", "0.01"}, 9, ToNearestEven, "2.17", 0},
	{"quantize", []string{"2.17", "0.1"}, 9, ToNearestEven, "2.2", Inexact | Rounded},
	{"quantize", []string{"2.17", "1E+1"}, 9, ToNearestEven, "0E+1", Inexact | Rounded},
	{"quantize", []string{"2.17", "1E+2"}, 9, ToNearestEven, "0E+2", Inexact | Rounded},
	{"quantize", []string{"-0.1", "1"}, 9, ToNearestEven, "-0", Inexact | Rounded},
	{"quantize", []string{"0", "1E+5"}, 9, ToNearestEven, "0E+5", 0},
	{"quantize", []string{"217", "1E-1"}, 9, ToNearestEven, "217.0", 0},
	{"quantize", []string{"217", "1E+1"}, 9, ToNearestEven, "2.2E+2", Inexact | Rounded},
	{"quantize", []string{"217", "1E+2"}, 9, ToNearestEven, "2E+2", Inexact | Rounded},
	{"quantize", []string{"1234567", "1E-3"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"quantize", []string{"Infinity", "Infinity"}, 9, ToNearestEven, "Infinity", 0},
	{"quantize", []string{"1", "Infinity"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"quantize", []string{"2.5", "1"}, 9, ToNearestAway, "3", Inexact | Rounded},
	{"quantize", []string{"2.5", "1"}, 9, ToNearestEven, "2", Inexact | Rounded},
	{"quantize", []string{"2.5", "1"}, 9, ToNearestZero, "2", Inexact | Rounded},
	{"reduce", []string{"2.1"}, 9, ToNearestEven, "2.1", 0},
	{"reduce", []string{"-2.0"}, 9, ToNearestEven, "-2", 0},
	{"reduce", []string{"1.200"}, 9, ToNearestEven, "1.2", 0},
	{"reduce", []string{"-120"}, 9, ToNearestEven, "-1.2E+2", 0},
	{"reduce", []string{"120.00"}, 9, ToNearestEven, "1.2E+2", 0},
	{"reduce", []string{"0.00"}, 9, ToNearestEven, "0", 0},
	{"rint", []string{"2.1"}, 9, ToNearestEven, "2", 0},
	{"rint", []string{"100"}, 9, ToNearestEven, "100", 0},
	{"rint", []string{"101.5"}, 9, ToNearestEven, "102", 0},
	{"rint", []string{"-101.5"}, 9, ToNearestEven, "-102", 0},
	{"rint", []string{"10E+5"}, 9, ToNearestEven, "1.0E+6", 0},
	{"rint", []string{"7.89E+77"}, 9, ToNearestEven, "7.89E+77", 0},
	{"rint", []string{"-Infinity"}, 9, ToNearestEven, "-Infinity", 0},
	{"rintx", []string{"2.1"}, 9, ToNearestEven, "2", Inexact | Rounded},
	{"rintx", []string{"101.5"}, 9, ToNearestEven, "102", Inexact | Rounded},
	{"rintx", []string{"100.0"}, 9, ToNearestEven, "100", Rounded},
	{"rintx", []string{"0.00"}, 9, ToNearestEven, "0", 0},
	{"rintx", []string{"-0.0"}, 9, ToNearestEven, "-0", 0},
	{"rintx", []string{"0E+3"}, 9, ToNearestEven, "0E+3", 0},
	{"rint", []string{"-0.000"}, 9, ToNearestEven, "-0", 0},
	{"logb", []string{"250"}, 9, ToNearestEven, "2", 0},
	{"logb", []string{"2.50"}, 9, ToNearestEven, "0", 0},
	{"logb", []string{"0.03"}, 9, ToNearestEven, "-2", 0},
	{"logb", []string{"0"}, 9, ToNearestEven, "-Infinity", DivisionByZero},
	{"scaleb", []string{"7.50", "-2"}, 9, ToNearestEven, "0.0750", 0},
	{"scaleb", []string{"7.50", "3"}, 9, ToNearestEven, "7.50E+3", 0},
	{"scaleb", []string{"1", "1000000"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	// sign and rounding
	{"plus", []string{"1.2345678901"}, 9, ToNearestEven, "1.23456789", Inexact | Rounded},
	{"plus", []string{"-0"}, 9, ToNearestEven, "0", 0},
	{"plus", []string{"-0"}, 9, ToNegativeInf, "-0", 0},
	{"neg", []string{"1.3"}, 9, ToNearestEven, "-1.3", 0},
	{"neg", []string{"0"}, 9, ToNearestEven, "0", 0},
	{"neg", []string{"-0"}, 9, ToNearestEven, "0", 0},
	{"abs", []string{"-101.5"}, 9, ToNearestEven, "101.5", 0},
	{"plus", []string{"12345.5"}, 5, ToNearestEven, "12346", Inexact | Rounded},
	{"plus", []string{"12344.5"}, 5, ToNearestEven, "12344", Inexact | Rounded},
	{"plus", []string{"12344.5"}, 5, ToNearestAway, "12345", Inexact | Rounded},
	{"plus", []string{"12345.5"}, 5, ToNearestZero, "12345", Inexact | Rounded},
	{"plus", []string{"12345.51"}, 5, ToNearestZero, "12346", Inexact | Rounded},
	{"plus", []string{"-12345.9"}, 5, ToZero, "-12345", Inexact | Rounded},
	{"plus", []string{"-12345.1"}, 5, AwayFromZero, "-12346", Inexact | Rounded},
	{"plus", []string{"-12345.9"}, 5, ToPositiveInf, "-12345", Inexact | Rounded},
	{"plus", []string{"12345.1"}, 5, ToPositiveInf, "12346", Inexact | Rounded},
	{"plus", []string{"-12345.1"}, 5, ToNegativeInf, "-12346", Inexact | Rounded},
	{"plus", []string{"12340.1"}, 5, ZeroFiveUp, "12341", Inexact | Rounded},
	{"plus", []string{"12345.1"}, 5, ZeroFiveUp, "12346", Inexact | Rounded},
	{"plus", []string{"12346.9"}, 5, ZeroFiveUp, "12346", Inexact | Rounded},
	{"plus", []string{"99999.5"}, 5, ToNearestEven, "1.0000E+5", Inexact | Rounded},
	{"plus", []string{"9.99995E+999999"}, 5, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	{"plus", []string{"9.99995E+999999"}, 5, ToZero, "9.9999E+999999", Inexact | Rounded},
	{"plus", []string{"1.2345E-1000000"}, 5, ToNearestEven, "1.234E-1000000", Inexact | Rounded | Subnormal | Underflow},
	{"plus", []string{"1E-1000004"}, 5, ToNearestEven, "0E-1000003", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"plus", []string{"1E-1000005"}, 5, ToNearestEven, "0E-1000003", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"plus", []string{"6E-1000008"}, 5, ToNearestEven, "0E-1000003", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"plus", []string{"1E+1000000"}, 5, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	{"plus", []string{"0E+1000000"}, 5, ToNearestEven, "0E+999999", Clamped},
	{"plus", []string{"0E-1000010"}, 5, ToNearestEven, "0E-1000003", Clamped},
	// next
	{"nextplus", []string{"1"}, 9, ToNearestEven, "1.00000001", 0},
	{"nextplus", []string{"-1E-1000007"}, 9, ToNearestEven, "-0E-1000007", 0},
	{"nextplus", []string{"9.99999999E+999999"}, 9, ToNearestEven, "Infinity", 0},
	{"nextplus", []string{"-Infinity"}, 9, ToNearestEven, "-9.99999999E+999999", 0},
	{"nextminus", []string{"1"}, 9, ToNearestEven, "0.999999999", 0},
	{"nextminus", []string{"0"}, 9, ToNearestEven, "-1E-1000007", 0},
	{"nextminus", []string{"Infinity"}, 9, ToNearestEven, "9.99999999E+999999", 0},
	{"nexttoward", []string{"1", "2"}, 9, ToNearestEven, "1.00000001", 0},
	{"nexttoward", []string{"-1", "-2"}, 9, ToNearestEven, "-1.00000001", 0},
	{"nexttoward", []string{"0", "-1"}, 9, ToNearestEven, "-1E-1000007", Inexact | Rounded | Subnormal | Underflow},
	{"nexttoward", []string{"1", "1.00"}, 9, ToNearestEven, "1", 0},
	{"nexttoward", []string{"1E-1000007", "0"}, 9, ToNearestEven, "0E-1000007", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"nexttoward", []string{"9.99999999E+999999", "Infinity"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	// min and max
	{"max", []string{"3", "2"}, 9, ToNearestEven, "3", 0},
	{"max", []string{"-10", "3"}, 9, ToNearestEven, "3", 0},
	{"max", []string{"1.0", "1"}, 9, ToNearestEven, "1", 0},
	{"max", []string{"7", "NaN"}, 9, ToNearestEven, "7", 0},
	{"max", []string{"-0", "0"}, 9, ToNearestEven, "0", 0},
	{"min", []string{"3", "2"}, 9, ToNearestEven, "2", 0},
	{"min", []string{"1.0", "1"}, 9, ToNearestEven, "1.0", 0},
	{"min", []string{"7", "NaN"}, 9, ToNearestEven, "7", 0},
	{"min", []string{"-0", "0"}, 9, ToNearestEven, "-0", 0},
	{"maxmag", []string{"-10", "3"}, 9, ToNearestEven, "-10", 0},
	{"maxmag", []string{"-1", "1"}, 9, ToNearestEven, "1", 0},
	{"minmag", []string{"-10", "3"}, 9, ToNearestEven, "3", 0},
	{"minmag", []string{"-1", "1"}, 9, ToNearestEven, "-1", 0},
	{"compare", []string{"2.1", "3"}, 9, ToNearestEven, "-1", 0},
	{"compare", []string{"2.1", "2.10"}, 9, ToNearestEven, "0", 0},
	{"compare", []string{"3", "-Infinity"}, 9, ToNearestEven, "1", 0},
	{"compare", []string{"NaN", "1"}, 9, ToNearestEven, "NaN", 0},
	{"comparesig", []string{"NaN", "1"}, 9, ToNearestEven, "NaN", InvalidOperation},
	{"compare", []string{"sNaN7", "1"}, 9, ToNearestEven, "NaN7", InvalidOperation},
	// conversion
	{"setstring", []string{"1.234567890123"}, 9, ToNearestEven, "1.23456789", Inexact | Rounded},
	{"setstring", []string{"-1234567895"}, 9, ToNearestEven, "-1.23456790E+9", Inexact | Rounded},
	{"setstring", []string{"0.000001234567895"}, 9, ToNearestEven, "0.00000123456790", Inexact | Rounded},
	{"setstring", []string{"1E+1000000"}, 9, ToNearestEven, "Infinity", Inexact | Overflow | Rounded},
	{"setstring", []string{"1E-1000100"}, 9, ToNearestEven, "0E-1000007", Clamped | Inexact | Rounded | Subnormal | Underflow},
	{"setstring", []string{"-inf"}, 9, ToNearestEven, "-Infinity", 0},
	{"setstring", []string{"NaN123"}, 9, ToNearestEven, "NaN123", 0},
	{"setstring", []string{"-sNaN0045"}, 9, ToNearestEven, "-sNaN45", 0},
	{"setstring", []string{"12.E-3"}, 9, ToNearestEven, "0.012", 0},
	{"setstring", []string{".5"}, 9, ToNearestEven, "0.5", 0},
}

func TestDecimalOps(t *testing.T) {
	for i, test := range decimalOpTests {
		ctx := testContext(test.prec, test.mode)
		var st Status
		var z *Decimal
		if test.op == "setstring" {
			z = new(Decimal).SetString(test.args[0], &ctx, &st)
		} else {
			f := decimalOps[test.op]
			if f == nil {
				t.Fatalf("%d: unknown operation %q", i, test.op)
			}
			args := make([]*Decimal, len(test.args))
			for j, a := range test.args {
				args[j] = makeDecimal(a)
			}
			z = f(new(Decimal), args, &ctx, &st)
		}
		if s := z.String(); s != test.want || st != test.st {
			t.Errorf("%d: %s(%s) prec=%d %v = %s (%v), want %s (%v)",
				i, test.op, strings.Join(test.args, ", "), test.prec, test.mode, s, st, test.want, test.st)
		}
	}
}

// TestDecimalOpsAliasing runs the operation table with the result aliasing
// each operand in turn, and checks that non-aliased operands are unchanged.
func TestDecimalOpsAliasing(t *testing.T) {
	for i, test := range decimalOpTests {
		if test.op == "setstring" {
			continue
		}
		f := decimalOps[test.op]
		for k := range test.args {
			ctx := testContext(test.prec, test.mode)
			args := make([]*Decimal, len(test.args))
			for j, a := range test.args {
				args[j] = makeDecimal(a)
			}
			var st Status
			z := f(args[k], args, &ctx, &st)
			if z != args[k] {
				t.Fatalf("%d: %s did not return its receiver", i, test.op)
			}
			if s := z.String(); s != test.want || st != test.st {
				t.Errorf("%d: %s(%s) aliased to operand %d = %s (%v), want %s (%v)",
					i, test.op, strings.Join(test.args, ", "), k, s, st, test.want, test.st)
			}
			for j, a := range test.args {
				if j != k && args[j].String() != makeDecimal(a).String() {
					t.Errorf("%d: %s modified operand %d: %s, want %s", i, test.op, j, args[j], a)
				}
			}
		}
	}
}

func TestDecimalSelfAliasing(t *testing.T) {
	ctx := testContext(20, ToNearestEven)
	var st Status
	x := makeDecimal("1.5")
	x.Add(x, x, &ctx, &st)
	x.Mul(x, x, &ctx, &st)
	x.FMA(x, x, x, &ctx, &st)
	if s := x.String(); s != "90.0000" || st != 0 {
		t.Errorf("got %s (%v), want 90.0000 (0)", s, st)
	}
	x.Quo(x, x, &ctx, &st)
	if s := x.String(); s != "1" || st != 0 {
		t.Errorf("x/x = %s (%v), want 1 (0)", s, st)
	}
}

func TestDecimalSpecialStatus(t *testing.T) {
	ctx := testContext(9, ToNearestEven)
	for i, test := range []struct {
		op   string
		args []string
		want string
		st   Status
	}{
		{"quo", []string{"0", "0"}, "NaN", DivisionUndefined},
		{"quo", []string{"-0", "0E+3"}, "NaN", DivisionUndefined},
		{"quoint", []string{"0", "0"}, "NaN", DivisionUndefined},
		{"quoint", []string{"1", "0"}, "Infinity", DivisionByZero},
		{"quoint", []string{"1E+10", "1"}, "NaN", DivisionImpossible},
		{"quoint", []string{"1234567890", "0.1"}, "NaN", DivisionImpossible},
		{"rem", []string{"0", "0"}, "NaN", DivisionUndefined},
		{"rem", []string{"1", "0"}, "NaN", InvalidOperation},
		{"rem", []string{"1E+10", "3"}, "NaN", DivisionImpossible},
		{"remnear", []string{"1E+10", "3"}, "NaN", DivisionImpossible},
		{"remnear", []string{"999999999.5", "1"}, "NaN", DivisionImpossible},
		{"quo", []string{"Infinity", "-Infinity"}, "NaN", InvalidOperation},
		{"ln", []string{"-0.5"}, "NaN", InvalidOperation},
		{"log10", []string{"-Infinity"}, "NaN", InvalidOperation},
		{"scaleb", []string{"1", "1.5"}, "NaN", InvalidOperation},
		{"scaleb", []string{"1", "Infinity"}, "NaN", InvalidOperation},
		{"sqrt", []string{"-sNaN3"}, "-NaN3", InvalidOperation},
		{"fma", []string{"Infinity", "0", "sNaN4"}, "NaN", InvalidOperation},
		{"fma", []string{"-0", "-Infinity", "sNaN123"}, "NaN", InvalidOperation},
		{"fma", []string{"2", "3", "sNaN4"}, "NaN4", InvalidOperation},
		{"fma", []string{"NaN1", "3", "sNaN4"}, "NaN4", InvalidOperation},
		{"max", []string{"NaN1", "sNaN2"}, "NaN2", InvalidOperation},
		{"min", []string{"NaN1", "NaN2"}, "NaN1", 0},
		{"plus", []string{"NaN1234567890"}, "NaN234567890", 0},
	} {
		args := make([]*Decimal, len(test.args))
		for j, a := range test.args {
			args[j] = makeDecimal(a)
		}
		var st Status
		z := decimalOps[test.op](new(Decimal), args, &ctx, &st)
		if s := z.String(); s != test.want || st != test.st {
			t.Errorf("%d: %s(%s) = %s (%v), want %s (%v)", i, test.op, strings.Join(test.args, ", "), s, st, test.want, test.st)
		}
	}
}

func TestDecimalQuoRem(t *testing.T) {
	ctx := testContext(9, ToNearestEven)
	for _, test := range []struct {
		x, y, q, r string
		st         Status
	}{
		{"10", "3", "3", "1", 0},
		{"-10", "3", "-3", "-1", 0},
		{"10.5", "-0.2", "-52", "0.1", 0},
		{"Infinity", "2", "Infinity", "NaN", InvalidOperation},
		{"2", "Infinity", "0", "2", 0},
		{"1", "0", "Infinity", "NaN", DivisionByZero | InvalidOperation},
		{"0", "0", "NaN", "NaN", DivisionUndefined},
		{"1E+20", "7", "NaN", "NaN", DivisionImpossible},
		{"sNaN5", "1", "NaN5", "NaN5", InvalidOperation},
	} {
		var st Status
		q, r := QuoRem(new(Decimal), new(Decimal), makeDecimal(test.x), makeDecimal(test.y), &ctx, &st)
		if q.String() != test.q || r.String() != test.r || st != test.st {
			t.Errorf("QuoRem(%s, %s) = %s, %s (%v), want %s, %s (%v)", test.x, test.y, q, r, st, test.q, test.r, test.st)
		}
	}
}

// TestDecimalDivMod checks that x = QuoInt(x, y)×y + Rem(x, y) for random
// operands.
func TestDecimalDivMod(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	ctx := testContext(100, ToNearestEven)
	exact := testContext(300, ToNearestEven)
	for i := 0; i < 500; i++ {
		x := randDecimal(rnd, 1+rnd.Intn(50))
		y := randDecimal(rnd, 1+rnd.Intn(30))
		if y.IsZero() {
			continue
		}
		var st Status
		q := new(Decimal).QuoInt(x, y, &ctx, &st)
		r := new(Decimal).Rem(x, y, &ctx, &st)
		if st&^(Rounded) != 0 {
			t.Fatalf("%s divmod %s: status %v", x, y, st)
		}
		if cmpAbs(r, y) >= 0 || r.Sign()*x.Sign() < 0 {
			t.Fatalf("%s rem %s = %s: remainder out of range", x, y, r)
		}
		z := new(Decimal).FMA(q, y, r, &exact, &st)
		if st&Inexact != 0 || z.Cmp(x, &st) != 0 {
			t.Fatalf("%s divmod %s: %s×%s + %s = %s", x, y, q, y, r, z)
		}
		n := new(Decimal).RemNear(x, y, &ctx, &st)
		var h Decimal
		h.Mul(n, makeDecimal("2"), &exact, &st)
		if cmpAbs(&h, y) > 0 {
			t.Fatalf("%s remnear %s = %s: remainder too large", x, y, n)
		}
	}
}

func randDecimal(rnd *rand.Rand, digits int) *Decimal {
	var b strings.Builder
	if rnd.Intn(2) == 0 {
		b.WriteByte('-')
	}
	for i := 0; i < digits; i++ {
		b.WriteByte(byte('0' + rnd.Intn(10)))
	}
	fmt.Fprintf(&b, "E%d", rnd.Intn(21)-10)
	return makeDecimal(b.String())
}

// TestDecimalRoundingModes checks each rounding mode against its definition
// on random values.
func TestDecimalRoundingModes(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		x := randDecimal(rnd, 2+rnd.Intn(40))
		prec := int64(1 + rnd.Intn(int(x.Digits())))
		for mode := ToNearestEven; mode < roundGuard; mode++ {
			ctx := testContext(prec, mode)
			var st Status
			z := new(Decimal).Plus(x, &ctx, &st)
			c := z.Cmp(x, &st)
			ok := true
			switch mode {
			case ToZero, Truncate:
				ok = cmpAbs(z, x) <= 0
			case AwayFromZero:
				ok = cmpAbs(z, x) >= 0
			case ToNegativeInf:
				ok = c <= 0
			case ToPositiveInf:
				ok = c >= 0
			case ZeroFiveUp:
				if cmpAbs(z, x) > 0 {
					d := z.lastDigit()
					ok = d == 1 || d == 6
				}
			}
			if !ok {
				t.Fatalf("%s rounded to %d digits %v = %s", x, prec, mode, z)
			}
			if (c != 0) != (st&Inexact != 0) || z.Digits() > prec {
				t.Fatalf("%s rounded to %d digits %v = %s (%v)", x, prec, mode, z, st)
			}
			// idempotent
			var st2 Status
			if y := new(Decimal).Plus(z, &ctx, &st2); y.String() != z.String() || st2&Inexact != 0 {
				t.Fatalf("rounding %s to %d digits %v is not idempotent: %s", z, prec, mode, y)
			}
		}
	}
}

func TestDecimalStatusAccumulates(t *testing.T) {
	ctx := testContext(9, ToNearestEven)
	st := Clamped | Subnormal
	z := new(Decimal).Add(makeDecimal("1"), makeDecimal("2"), &ctx, &st)
	if z.String() != "3" || st != Clamped|Subnormal {
		t.Errorf("got %s (%v)", z, st)
	}
	z.Quo(makeDecimal("1"), makeDecimal("3"), &ctx, &st)
	if st != Clamped|Subnormal|Inexact|Rounded {
		t.Errorf("got %v", st)
	}
}

func TestDecimalOverflow(t *testing.T) {
	ctx := DefaultContext()
	var st Status
	z := new(Decimal).SetString("-1E+1000000000", &ctx, &st)
	if !z.IsInf() || !z.Signbit() || st != Overflow|Inexact|Rounded {
		t.Errorf("SetString(-1E+1000000000) = %s (%v)", z, st)
	}
	ctx.SetRound(ToZero)
	st = 0
	z.SetString("1E+1000000000", &ctx, &st)
	if z.String() != "9.999999999999999999999999999E+999999" || st != Overflow|Inexact|Rounded {
		t.Errorf("SetString(1E+1000000000) toward zero = %s (%v)", z, st)
	}
	ctx.SetRound(Truncate)
	st = 0
	if z.SetString("1E+1000000000", &ctx, &st); !z.IsInf() {
		t.Errorf("SetString(1E+1000000000) truncated = %s (%v)", z, st)
	}

	ctx = MaxContext()
	st = 0
	x := makeDecimal("9E+999999999999999999")
	z.Mul(x, x, &ctx, &st)
	if !z.IsInf() || z.Signbit() || st != Overflow|Inexact|Rounded {
		t.Errorf("9E+999999999999999999² = %s (%v)", z, st)
	}
	st = 0
	z.SetString("1E+1000000000", &ctx, &st)
	if z.String() != "1E+1000000000" || st != 0 {
		t.Errorf("SetString(1E+1000000000) = %s (%v)", z, st)
	}
}

func TestDecimalQuantizeLimits(t *testing.T) {
	ctx := testContext(9, ToNearestEven)
	if !ctx.SetEmax(999) || !ctx.SetEmin(-999) {
		t.Fatal("SetEmax/SetEmin failed")
	}
	for _, test := range []struct {
		x    string
		exp  int64
		want string
		st   Status
	}{
		{"1.666666E-1000", -1005, "1.66667E-1000", Inexact | Rounded | Subnormal},
		{"1E-1007", -1007, "1E-1007", Subnormal},
		{"0.000", -1005, "0E-1005", 0},
		{"123.456", 2, "1E+2", Inexact | Rounded},
		{"1.2345678", -8, "1.23456780", 0},
		{"9.99999999E+999", 990, "NaN", InvalidOperation},
		{"-0.0001", -1007, "NaN", InvalidOperation},
		{"999999999.5", 0, "NaN", InvalidOperation},
	} {
		var st Status
		y := makeDecimal("1E" + strconv.FormatInt(test.exp, 10))
		z := new(Decimal).Quantize(makeDecimal(test.x), y, &ctx, &st)
		if s := z.String(); s != test.want || st != test.st {
			t.Errorf("Quantize(%s, %s) = %s (%v), want %s (%v)", test.x, y, s, st, test.want, test.st)
		}
		st = 0
		z = new(Decimal).Rescale(makeDecimal(test.x), test.exp, &ctx, &st)
		if s := z.String(); s != test.want || st != test.st {
			t.Errorf("Rescale(%s, %d) = %s (%v), want %s (%v)", test.x, test.exp, s, st, test.want, test.st)
		}
	}

	// Rescale accepts exponents outside the context limits, but not results
	for _, test := range []struct {
		x   string
		exp int64
	}{
		{"123.456", 1000000000},
		{"1E-1500", -1500},
		{"1E+1500", 1500},
	} {
		var st Status
		z := new(Decimal).Rescale(makeDecimal(test.x), test.exp, &ctx, &st)
		if !z.IsQNaN() || st != InvalidOperation {
			t.Errorf("Rescale(%s, %d) = %s (%v), want NaN (InvalidOperation)", test.x, test.exp, z, st)
		}
	}
}

func TestDecimalMaxContext(t *testing.T) {
	ctx := MaxContext()
	for _, test := range []struct {
		op   string
		args []string
	}{
		{"quo", []string{"1", "3"}},
		{"sqrt", []string{"2"}},
		{"pow", []string{"1", "0.5"}},
		{"pow", []string{"1", "Infinity"}},
	} {
		args := make([]*Decimal, len(test.args))
		for j, a := range test.args {
			args[j] = makeDecimal(a)
		}
		var st Status
		z := decimalOps[test.op](new(Decimal), args, &ctx, &st)
		if !z.IsQNaN() || st != MallocError {
			t.Errorf("%s(%s) = %s (%v), want NaN (MallocError)", test.op, strings.Join(test.args, ", "), z, st)
		}
	}

	// exact results do not need a working buffer of ctx.Prec() digits
	var st Status
	z := new(Decimal).Add(makeDecimal("1.5"), makeDecimal("2"), &ctx, &st)
	if z.String() != "3.5" || st != 0 {
		t.Errorf("1.5 + 2 = %s (%v)", z, st)
	}
}

func TestDecimalZeroValue(t *testing.T) {
	var x Decimal
	if s := x.String(); s != "0" {
		t.Errorf("zero value = %s, want 0", s)
	}
	if x.Sign() != 0 || !x.IsZero() || !x.IsFinite() || !x.IsInteger() || x.Signbit() {
		t.Errorf("zero value predicates")
	}
	if x.Digits() != 1 || x.Exponent() != 0 || x.Adjexp() != 0 {
		t.Errorf("zero value: Digits() = %d, Exponent() = %d", x.Digits(), x.Exponent())
	}
	ctx := DefaultContext()
	var st Status
	var y, z Decimal
	z.Add(&x, &y, &ctx, &st)
	if z.String() != "0" || st != 0 {
		t.Errorf("0 + 0 = %s (%v)", &z, st)
	}
	z.Add(&z, makeDecimal("1.5"), &ctx, &st)
	if z.String() != "1.5" {
		t.Errorf("0 + 1.5 = %s", &z)
	}
}

func TestDecimalPredicates(t *testing.T) {
	ctx := DefaultContext()
	for _, test := range []struct {
		x         string
		class     string
		sign      int
		integer   bool
		digits    int64
		signbit   bool
		normal    bool
		subnormal bool
	}{
		{"0", "+Zero", 0, true, 1, false, false, false},
		{"-0.00", "-Zero", 0, true, 1, true, false, false},
		{"12.30", "+Normal", 1, false, 4, false, true, false},
		{"123E-1", "+Normal", 1, false, 3, false, true, false},
		{"1230E-1", "+Normal", 1, true, 4, false, true, false},
		{"-5E+3", "-Normal", -1, true, 1, true, true, false},
		{"1E-999999", "+Normal", 1, false, 1, false, true, false},
		{"-1E-1000000", "-Subnormal", -1, false, 1, true, false, true},
		{"Infinity", "+Infinity", 1, false, 1, false, false, false},
		{"-Inf", "-Infinity", -1, false, 1, true, false, false},
		{"NaN", "NaN", 0, false, 1, false, false, false},
		{"-NaN123", "NaN", 0, false, 3, true, false, false},
		{"sNaN", "sNaN", 0, false, 1, false, false, false},
	} {
		x := makeDecimal(test.x)
		if c := x.Class(&ctx); c != test.class {
			t.Errorf("%s.Class() = %s, want %s", test.x, c, test.class)
		}
		if x.Sign() != test.sign || x.IsInteger() != test.integer || x.Digits() != test.digits || x.Signbit() != test.signbit {
			t.Errorf("%s: Sign() = %d, IsInteger() = %v, Digits() = %d, Signbit() = %v", test.x, x.Sign(), x.IsInteger(), x.Digits(), x.Signbit())
		}
		if x.IsNormal(&ctx) != test.normal || x.IsSubnormal(&ctx) != test.subnormal {
			t.Errorf("%s: IsNormal() = %v, IsSubnormal() = %v", test.x, x.IsNormal(&ctx), x.IsSubnormal(&ctx))
		}
	}
}

func TestDecimalCmp(t *testing.T) {
	for _, test := range []struct {
		x, y string
		cmp  int
		st   Status
	}{
		{"1", "1.00", 0, 0},
		{"-0", "0E+5", 0, 0},
		{"-Inf", "-Infinity", 0, 0},
		{"Infinity", "1E+999999", 1, 0},
		{"-1.5", "-1.49", -1, 0},
		{"1E+3", "999", 1, 0},
		{"NaN", "1", Unordered, InvalidOperation},
		{"1", "sNaN", Unordered, InvalidOperation},
	} {
		var st Status
		if c := makeDecimal(test.x).Cmp(makeDecimal(test.y), &st); c != test.cmp || st != test.st {
			t.Errorf("Cmp(%s, %s) = %d (%v), want %d (%v)", test.x, test.y, c, st, test.cmp, test.st)
		}
	}
}

func TestDecimalCmpTotal(t *testing.T) {
	for _, test := range []struct {
		x, y     string
		cmp, mag int
	}{
		{"1", "1.0", 1, 1},
		{"-1", "-1.0", -1, 1},
		{"0", "-0", 1, 0},
		{"NaN", "sNaN", 1, 1},
		{"-NaN", "-Infinity", -1, 1},
		{"12.30", "12.3", -1, -1},
		{"NaN2", "NaN10", -1, -1},
		{"Infinity", "NaN", -1, -1},
		{"-sNaN", "-NaN", 1, -1},
		{"1E+2", "100", 1, 1},
	} {
		x, y := makeDecimal(test.x), makeDecimal(test.y)
		if c := x.CmpTotal(y); c != test.cmp {
			t.Errorf("CmpTotal(%s, %s) = %d, want %d", test.x, test.y, c, test.cmp)
		}
		if c := x.CmpTotalMag(y); c != test.mag {
			t.Errorf("CmpTotalMag(%s, %s) = %d, want %d", test.x, test.y, c, test.mag)
		}
	}
	if !makeDecimal("1.23").SameQuantum(makeDecimal("-7.00")) || makeDecimal("1.2").SameQuantum(makeDecimal("1.20")) ||
		!makeDecimal("NaN").SameQuantum(makeDecimal("sNaN")) || makeDecimal("Inf").SameQuantum(makeDecimal("1")) {
		t.Error("SameQuantum")
	}
}

func TestDecimalCopySign(t *testing.T) {
	var st Status
	x := makeDecimal("-1.50")
	if z := new(Decimal).CopyAbs(x, &st); z.String() != "1.50" {
		t.Errorf("CopyAbs(%s) = %s", x, z)
	}
	if z := new(Decimal).CopyNeg(x, &st); z.String() != "1.50" {
		t.Errorf("CopyNeg(%s) = %s", x, z)
	}
	if z := new(Decimal).CopySign(makeDecimal("sNaN7"), x, &st); z.String() != "-sNaN7" {
		t.Errorf("CopySign(sNaN7, %s) = %s", x, z)
	}
	if st != 0 {
		t.Errorf("status = %v, want 0", st)
	}
}

func TestDecimalSetTriple(t *testing.T) {
	ctx := testContext(5, ToNearestEven)
	var st Status
	z := new(Decimal).SetTriple(true, []Word{123456}, -3, &ctx, &st)
	if z.String() != "-123.46" || st != Inexact|Rounded {
		t.Errorf("SetTriple = %s (%v)", z, st)
	}
	st = 0
	z.SetTriple(false, []Word{_DB}, 0, &ctx, &st)
	if !z.IsNaN() || st != InvalidOperation {
		t.Errorf("SetTriple with an invalid word = %s (%v)", z, st)
	}
}

func TestContext(t *testing.T) {
	ctx := DefaultContext()
	if ctx.Prec() != 28 || ctx.Emax() != 999999 || ctx.Emin() != -999999 || ctx.Round() != ToNearestEven ||
		ctx.Traps() != IEEEInvalidOperation|DivisionByZero|Overflow || ctx.Clamp() || !ctx.Valid() {
		t.Errorf("DefaultContext: %+v", ctx)
	}
	if ctx.Etiny() != -1000026 || ctx.Etop() != 999972 {
		t.Errorf("Etiny() = %d, Etop() = %d", ctx.Etiny(), ctx.Etop())
	}
	ctx = BasicContext()
	if ctx.Prec() != 9 || ctx.Round() != ToNearestAway || ctx.Traps() != Traps|Clamped {
		t.Errorf("BasicContext: %+v", ctx)
	}
	if ctx = MaxContext(); ctx.Prec() != MaxPrec || ctx.Emax() != MaxEmax || ctx.Emin() != MinEmin {
		t.Errorf("MaxContext: %+v", ctx)
	}

	for _, test := range []struct {
		bits       int
		prec, emax int64
	}{
		{32, 7, 96},
		{64, 16, 384},
		{128, 34, 6144},
	} {
		ctx, ok := IEEEContext(test.bits)
		if !ok || ctx.Prec() != test.prec || ctx.Emax() != test.emax || ctx.Emin() != 1-test.emax || !ctx.Clamp() || ctx.Traps() != 0 {
			t.Errorf("IEEEContext(%d) = %+v, %v", test.bits, ctx, ok)
		}
	}
	for _, bits := range []int{0, -32, 48, 1024} {
		if _, ok := IEEEContext(bits); ok {
			t.Errorf("IEEEContext(%d) succeeded", bits)
		}
	}

	ctx = DefaultContext()
	if ctx.SetPrec(0) || ctx.SetPrec(MaxPrec+1) || ctx.SetEmax(-1) || ctx.SetEmin(1) ||
		ctx.SetRound(roundGuard) || ctx.SetTraps(Conditions+1) || ctx.SetStatus(1<<20) {
		t.Error("setter accepted an invalid value")
	}
	if ctx != DefaultContext() {
		t.Error("failed setter modified the context")
	}
	if !ctx.SetPrec(MaxPrec) || !ctx.SetEmax(0) || !ctx.SetEmin(MinEmin) || !ctx.SetRound(Truncate) ||
		!ctx.SetTraps(Conditions) || !ctx.SetStatus(Inexact) {
		t.Error("setter rejected a valid value")
	}
	ctx.SetClamp(true)
	ctx.SetCR(false)
	if !ctx.Clamp() || ctx.CR() || ctx.Status() != Inexact || !ctx.Valid() {
		t.Errorf("got %+v", ctx)
	}

	var zero Context
	var st Status
	z := new(Decimal).Add(makeDecimal("1"), makeDecimal("2"), &zero, &st)
	if !z.IsQNaN() || st != InvalidContext {
		t.Errorf("Add with a zero Context = %s (%v)", z, st)
	}
}

func TestRoundingModeString(t *testing.T) {
	if s := ToNearestEven.String(); s != "ToNearestEven" {
		t.Errorf("got %s", s)
	}
	if s := ZeroFiveUp.String(); s != "ZeroFiveUp" {
		t.Errorf("got %s", s)
	}
}

func TestStatus(t *testing.T) {
	if s := (Inexact | Rounded).String(); s != "Inexact|Rounded" {
		t.Errorf("got %s", s)
	}
	if s := Status(0).String(); s != "0" {
		t.Errorf("got %s", s)
	}
	for _, test := range []struct {
		name string
		st   Status
		ok   bool
	}{
		{"Inexact", Inexact, true},
		{"division_by_zero", DivisionByZero, true},
		{"INVALID_OPERATION", InvalidOperation, true},
		{"Clamped", Clamped, true},
		{"Underflow", Underflow, true},
		{"lost_digits", 0, false},
		{"", 0, false},
	} {
		st, ok := ParseStatus(test.name)
		if st != test.st || ok != test.ok {
			t.Errorf("ParseStatus(%q) = %v, %v", test.name, st, ok)
		}
	}
	if Conditions != 1<<15-1 || Errors&Inexact != 0 || Traps&Underflow == 0 {
		t.Error("condition groups")
	}
}

type failingAllocator struct{}

func (failingAllocator) Malloc(int) []Word          { return nil }
func (failingAllocator) Calloc(int) []Word          { return nil }
func (failingAllocator) Realloc([]Word, int) []Word { return nil }
func (failingAllocator) Free([]Word)                {}

func TestDecimalMallocError(t *testing.T) {
	x, y := makeDecimal("123456789012345678901234567890"), makeDecimal("3")
	saved := allocator
	allocator = failingAllocator{}
	defer func() { allocator = saved }()

	ctx := testContext(40, ToNearestEven)
	var st Status
	z := new(Decimal).Mul(x, y, &ctx, &st)
	if !z.IsQNaN() || st&MallocError == 0 {
		t.Errorf("Mul with a failing allocator = %s (%v)", z, st)
	}
	st = 0
	z = new(Decimal).Quo(y, x, &ctx, &st)
	if !z.IsQNaN() || st != MallocError {
		t.Errorf("Quo with a failing allocator = %s (%v)", z, st)
	}
	st = 0
	z = new(Decimal).SetStringExact("42", &st)
	if !z.IsQNaN() || st != MallocError {
		t.Errorf("SetStringExact with a failing allocator = %s (%v)", z, st)
	}
	if z = New(); !z.IsZero() {
		t.Errorf("New with a failing allocator = %s", z)
	}
	if _, err := Parse("42"); err == nil {
		t.Error("Parse with a failing allocator succeeded")
	}

	// static storage does not need the allocator
	st = 0
	z = NewStatic(make([]Word, 4)).Mul(x, y, &ctx, &st)
	if z.String() != "370370367037037036703703703670" || st != 0 {
		t.Errorf("Mul into static storage = %s (%v)", z, st)
	}
}

func TestDecimalStatic(t *testing.T) {
	buf := make([]Word, 2)
	z := NewStatic(buf)
	var st Status
	z.SetStringExact("12345678901234567890123", &st)
	if c := z.Coefficient(); len(c) != 2 || &c[0] != &buf[0] {
		t.Fatalf("coefficient not in static storage")
	}
	z.SetStringExact("1234567890123456789012345678901234567890123", &st)
	if c := z.Coefficient(); len(c) != 3 || &c[0] == &buf[0] {
		t.Fatalf("coefficient still in static storage")
	}
	if st != 0 || z.String() != "1234567890123456789012345678901234567890123" {
		t.Errorf("got %s (%v)", z, st)
	}
	z.Free()
	if z.String() != "0" || z.Coefficient() != nil {
		t.Errorf("Free: got %s", z)
	}
}

func TestSetup(t *testing.T) {
	_ = New()
	if err := Setup(Config{MinAlloc: 8}); err == nil {
		t.Error("Setup succeeded after the first allocation")
	}
	if minAlloc != defaultMinAlloc {
		t.Errorf("minAlloc = %d", minAlloc)
	}
}
