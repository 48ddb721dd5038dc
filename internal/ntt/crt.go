// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntt

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// crt reconstructs each convolution term from its residues r[0][i], r[1][i]
// and r[2][i] with Garner's algorithm:
//
//	v = a1 + p1*(a2 + p2*a3)
//
// then adds the running carry and splits the 192 bits result into one digit
// in the given base and the carry for the next term.
func crt[W constraints.Unsigned](z []W, r *[3][]uint64, base uint64) {
	p1, p2, p3 := moduli[0], moduli[1], moduli[2]
	var c0, c1, c2 uint64 // carry
	for i := range z {
		a1 := r[0][i]
		a2 := mulmod(submod(r[1][i], a1%p2, p2), inv1mod2, p2)
		t := submod(r[2][i], a1%p3, p3)
		t = submod(t, mulmod(a2%p3, p1mod3, p3), p3)
		a3 := mulmod(t, inv12mod3, p3)

		// s = a2 + p2*a3 < p2*p3
		sh, sl := bits.Mul64(p2, a3)
		var cc uint64
		sl, cc = bits.Add64(sl, a2, 0)
		sh += cc
		// v = p1*s + a1
		h, v0 := bits.Mul64(p1, sl)
		v2, l := bits.Mul64(p1, sh)
		v1, cc := bits.Add64(h, l, 0)
		v2 += cc
		v0, cc = bits.Add64(v0, a1, 0)
		v1, cc = bits.Add64(v1, 0, cc)
		v2 += cc
		// v += carry
		v0, cc = bits.Add64(v0, c0, 0)
		v1, cc = bits.Add64(v1, c1, cc)
		v2 += c2 + cc

		var rem uint64
		c2, rem = bits.Div64(0, v2, base)
		c1, rem = bits.Div64(rem, v1, base)
		c0, rem = bits.Div64(rem, v0, base)
		z[i] = W(rem)
	}
}
