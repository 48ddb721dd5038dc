// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ntt implements number theoretic transforms over three word sized
// prime fields, and the convolution of two vectors of digits in an arbitrary
// base below 10**19, reconstructed from the three residues with the Chinese
// Remainder Theorem.
//
// Transform lengths are either powers of two or three times a power of two.
// Power of two lengths use a radix-2 decimation in frequency transform, or a
// six-step transform above sixStepThreshold. Lengths of the form 3*2**n use
// a four-step transform: one length-3 butterfly per column followed by power
// of two transforms on the rows.
package ntt

import "math"

// MaxLen is the largest supported transform length.
const MaxLen int64 = 3 << 32

// Power of two transforms longer than sixStepThreshold use the six-step
// algorithm.
var sixStepThreshold = 4096

// params holds the parameters of one forward or inverse transform.
type params struct {
	mod    int      // index into moduli
	m      uint64   // modulus
	imag   uint64   // primitive third root of unity (kernel**(n/3)) for lengths 3*2**n
	kernel uint64   // primitive n-th root of unity
	wtable []uint64 // kernel powers used by the radix-2 butterflies
}

func newParams(n, mod int, inverse bool) *params {
	p := &params{mod: mod, m: moduli[mod], kernel: kernel(n, mod, inverse)}
	switch {
	case n%3 == 0:
		p.imag = powmod(p.kernel, uint64(n/3), p.m)
	case n <= sixStepThreshold:
		p.wtable = powTable(p.kernel, n/2, p.m)
	}
	return p
}

// TransformLen returns the smallest supported transform length >= n.
func TransformLen(n int) (int, bool) {
	if n <= 1 {
		return 1, true
	}
	best := -1
	for _, start := range [...]int{1, 3} {
		l := start
		for l < n {
			if l > math.MaxInt/2 {
				l = -1
				break
			}
			l <<= 1
		}
		if l > 0 && int64(l) <= MaxLen && (best < 0 || l < best) {
			best = l
		}
	}
	return best, best > 0
}

// transform computes the forward or inverse (unscaled) transform of a in
// place, in natural order. len(a) must be a supported transform length.
func transform(a []uint64, mod int, inverse bool) {
	n := len(a)
	p := newParams(n, mod, inverse)
	switch {
	case n%3 == 0:
		fourStep(a, p)
	case n <= sixStepThreshold:
		dif2(a, p.wtable, p.m)
	default:
		sixStep(a, p.kernel, p.m)
	}
}

// pow2Transform transforms a, with len(a) a power of two, using the kernel
// w.
func pow2Transform(a []uint64, w, m uint64) {
	if len(a) <= sixStepThreshold {
		dif2(a, powTable(w, len(a)/2, m), m)
		return
	}
	sixStep(a, w, m)
}
