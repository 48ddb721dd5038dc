// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Decimals.

package decnum

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const decimalGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The sign, special value flags, exponent and coefficient (or NaN payload)
// of x are marshaled. The encoding does not depend on the word size.
func (x *Decimal) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 2, 2+binary.MaxVarintLen64+int(x.dig))
	buf[0] = decimalGobVersion
	buf[1] = x.flags &^ flagStatic
	buf = binary.AppendVarint(buf, x.exp)
	if len(x.mant) > 0 {
		buf = x.mant.appendDigits(buf)
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// z is set to the exact decoded value.
func (z *Decimal) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		z.Free()
		return nil
	}
	if buf[0] != decimalGobVersion {
		return errors.Errorf("Decimal.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 {
		return errors.New("Decimal.GobDecode: buffer too small")
	}
	f := buf[1]
	if f&^(flagNeg|flagSpecial) != 0 || f&flagInf != 0 && f&flagAnyNaN != 0 {
		return errors.Errorf("Decimal.GobDecode: invalid flags %#x", f)
	}
	exp, n := binary.Varint(buf[2:])
	if n <= 0 {
		return errors.New("Decimal.GobDecode: invalid exponent")
	}
	digits := buf[2+n:]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return errors.Errorf("Decimal.GobDecode: invalid coefficient digit %q", c)
		}
	}
	var st Status
	if !z.setMant(dec(nil).setString(string(digits)), &st) {
		return errors.Wrap(errors.New(st.String()), "Decimal.GobDecode")
	}
	z.setFlags(f)
	z.exp = exp
	z.setDigits()
	if z.IsInf() {
		z.mant = z.mant[:0]
		z.dig = 0
	}
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// x is marshaled in scientific notation, which preserves its exact value,
// including the exponent.
func (x *Decimal) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.appendString(nil, false), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// z is set to the exact value of text, see SetStringExact.
func (z *Decimal) UnmarshalText(text []byte) error {
	var st Status
	z.SetStringExact(string(text), &st)
	switch {
	case st&ConversionSyntax != 0:
		return errors.Errorf("decnum: cannot unmarshal %q into a *decnum.Decimal", text)
	case st&MallocError != 0:
		return errors.Errorf("decnum: out of memory unmarshaling a %d bytes number", len(text))
	}
	return nil
}
