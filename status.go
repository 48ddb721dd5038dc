// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"strings"
)

// Status is a set of exceptional conditions. Operations add conditions to
// the Status passed to them and never clear any.
//
// The bit assigned to each condition is part of the API and never changes.
type Status uint32

// Conditions.
const (
	Clamped Status = 1 << iota
	ConversionSyntax
	DivisionByZero
	DivisionImpossible
	DivisionUndefined
	FpuError
	Inexact
	InvalidContext
	InvalidOperation
	MallocError
	NotImplemented
	Overflow
	Rounded
	Subnormal
	Underflow
)

// Condition groups.
const (
	// IEEEInvalidOperation groups the conditions signaled as an IEEE 754
	// invalid operation.
	IEEEInvalidOperation = ConversionSyntax | DivisionImpossible | DivisionUndefined |
		FpuError | InvalidContext | InvalidOperation | MallocError
	// Errors are the conditions that turn the result into NaN or infinity.
	Errors = IEEEInvalidOperation | DivisionByZero
	// Traps is the default trap set of DefaultContext and BasicContext.
	Traps = IEEEInvalidOperation | DivisionByZero | Overflow | Underflow
	// Conditions is the set of all conditions.
	Conditions = Underflow<<1 - 1
)

var statusNames = [...]string{
	"Clamped",
	"ConversionSyntax",
	"DivisionByZero",
	"DivisionImpossible",
	"DivisionUndefined",
	"FpuError",
	"Inexact",
	"InvalidContext",
	"InvalidOperation",
	"MallocError",
	"NotImplemented",
	"Overflow",
	"Rounded",
	"Subnormal",
	"Underflow",
}

// String returns the names of the conditions in s separated by '|', like
// "Inexact|Rounded".
func (s Status) String() string {
	if s == 0 {
		return "0"
	}
	var b strings.Builder
	for i, n := range statusNames {
		if s&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n)
	}
	return b.String()
}

// ParseStatus returns the condition with the given name. Names are matched
// ignoring case and underscores, so that "Division_by_zero" matches
// DivisionByZero.
func ParseStatus(name string) (Status, bool) {
	name = strings.ReplaceAll(name, "_", "")
	for i, n := range statusNames {
		if strings.EqualFold(n, name) {
			return 1 << i, true
		}
	}
	return 0, false
}
