// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntt

import "golang.org/x/exp/constraints"

// Convolute returns the product of x and y as a vector of len(x)+len(y)
// digits in the given base. x and y are little endian vectors of digits
// < base, and base must not exceed 10**19. It returns false if the required
// transform length exceeds MaxLen.
func Convolute[W constraints.Unsigned](x, y []W, base uint64) ([]W, bool) {
	return convolute(x, y, base, false)
}

// AutoConvolute returns x*x as a vector of 2*len(x) digits. It is faster
// than Convolute(x, x) since the second forward transform is skipped.
func AutoConvolute[W constraints.Unsigned](x []W, base uint64) ([]W, bool) {
	return convolute(x, x, base, true)
}

func convolute[W constraints.Unsigned](x, y []W, base uint64, square bool) ([]W, bool) {
	lz := len(x) + len(y)
	n, ok := TransformLen(lz)
	if !ok {
		return nil, false
	}
	var res [3][]uint64
	for mod, m := range moduli {
		a := load(x, n)
		transform(a, mod, false)
		if square {
			for i, v := range a {
				a[i] = mulmod(v, v, m)
			}
		} else {
			b := load(y, n)
			transform(b, mod, false)
			for i, v := range b {
				a[i] = mulmod(a[i], v, m)
			}
		}
		transform(a, mod, true)
		ninv := invmod(uint64(n)%m, m)
		a = a[:lz]
		for i, v := range a {
			a[i] = mulmod(v, ninv, m)
		}
		res[mod] = a
	}
	z := make([]W, lz)
	crt(z, &res, base)
	return z, true
}

// load returns x zero-padded to n elements.
func load[W constraints.Unsigned](x []W, n int) []uint64 {
	a := make([]uint64, n)
	for i, v := range x {
		a[i] = uint64(v)
	}
	return a
}
