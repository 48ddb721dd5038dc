// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntt

// fourStep computes the transform of a, len(a) = 3*c with c a power of two.
// With j = j2 + c*j1 and k = k1 + 3*k2:
//
//	1. length-3 transform of each column j2 with the third root of unity
//	2. multiply element (k1, j2) by kernel**(j2*k1)
//	3. length-c transforms of the rows with kernel**3
//	4. transpose the 3×c result to c×3
func fourStep(a []uint64, p *params) {
	n := len(a)
	c := n / 3
	m := p.m
	r1 := p.imag
	r2 := mulmod(r1, r1, m)

	x0, x1, x2 := a[:c], a[c:2*c], a[2*c:]
	for j := range x0 {
		u, v, w := x0[j], x1[j], x2[j]
		x0[j] = addmod(addmod(u, v, m), w, m)
		x1[j] = addmod(addmod(u, mulmod(r1, v, m), m), mulmod(r2, w, m), m)
		x2[j] = addmod(addmod(u, mulmod(r2, v, m), m), mulmod(r1, w, m), m)
	}

	for k1 := 1; k1 < 3; k1++ {
		row := a[k1*c : (k1+1)*c]
		tw := powmod(p.kernel, uint64(k1), m)
		f := uint64(1)
		for j := range row {
			row[j] = mulmod(row[j], f, m)
			f = mulmod(f, tw, m)
		}
	}

	w3 := powmod(p.kernel, 3, m)
	for k1 := 0; k1 < 3; k1++ {
		pow2Transform(a[k1*c:(k1+1)*c], w3, m)
	}

	t := make([]uint64, n)
	transpose(t, a, 3, c)
	copy(a, t)
}
