// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"testing"
)

var decimalVals = []string{
	"0",
	"-0.000",
	"0E+7",
	"1",
	"-1.2300E-5",
	"123456789012345678901234567890123456789012345678901234567890",
	"9.99999999E+999999",
	"1E-1000007",
	"Infinity",
	"-Infinity",
	"NaN",
	"-NaN123",
	"sNaN12",
}

func TestDecimalGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range decimalVals {
		medium.Reset() // empty buffer for each test case (in case of failures)
		x := makeDecimal(test)
		if err := enc.Encode(x); err != nil {
			t.Errorf("encoding of %s failed: %s", test, err)
			continue
		}
		var y Decimal
		if err := dec.Decode(&y); err != nil {
			t.Errorf("decoding of %s failed: %s", test, err)
			continue
		}
		if y.String() != x.String() || y.CmpTotal(x) != 0 {
			t.Errorf("transmission of %s failed: got %s", test, &y)
		}
	}
}

func TestDecimalCorruptGob(t *testing.T) {
	var buf bytes.Buffer
	tx := makeDecimal("-1.25")
	if err := gob.NewEncoder(&buf).Encode(tx); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	var rx Decimal
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&rx); err != nil {
		t.Fatal(err)
	}
	if err := gob.NewDecoder(bytes.NewReader(b[:10])).Decode(&rx); err == nil {
		t.Error("decoding of a truncated gob succeeded")
	}

	for _, buf := range [][]byte{
		{2, 0, 0},
		{1, 0},
		{1, 0x80, 0},
		{1, flagInf | flagNaN, 0},
		{1, 0, 0x80},
		{1, 0, 0, '1', 'x'},
	} {
		if err := rx.GobDecode(buf); err == nil {
			t.Errorf("GobDecode(%v) succeeded: %s", buf, &rx)
		}
	}
	if err := rx.GobDecode(nil); err != nil || rx.String() != "0" {
		t.Errorf("GobDecode(nil) = %s, %v", &rx, err)
	}
	var nilDec *Decimal
	if b, err := nilDec.GobEncode(); b != nil || err != nil {
		t.Errorf("nil.GobEncode() = %v, %v", b, err)
	}
}

func TestDecimalJSONEncoding(t *testing.T) {
	for _, test := range decimalVals {
		x := makeDecimal(test)
		b, err := json.Marshal(x)
		if err != nil {
			t.Errorf("marshaling of %s failed: %s", test, err)
			continue
		}
		var y Decimal
		if err := json.Unmarshal(b, &y); err != nil {
			t.Errorf("unmarshaling of %s failed: %s", test, err)
			continue
		}
		if y.String() != x.String() || y.CmpTotal(x) != 0 {
			t.Errorf("JSON encoding of %s failed: got %s", test, &y)
		}
	}
	var y Decimal
	if err := json.Unmarshal([]byte(`"1..5"`), &y); err == nil {
		t.Error("unmarshaling of 1..5 succeeded")
	}
	var nilDec *Decimal
	if b, _ := nilDec.MarshalText(); string(b) != "<nil>" {
		t.Errorf("nil.MarshalText() = %s", b)
	}
}
