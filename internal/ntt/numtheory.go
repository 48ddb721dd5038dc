// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntt

import "math/bits"

// The three moduli are primes of the form 2**64 - 2**k + 1. For each of them,
// p-1 is divisible by 3*2**32, so that any transform length of the form 2**n
// or 3*2**n with n <= 32 has a primitive root of unity in each field. Their
// product is larger than 2**191.
var moduli = [3]uint64{
	18446744069414584321, // 2**64 - 2**32 + 1
	18446744056529682433, // 2**64 - 2**34 + 1
	18446742974197923841, // 2**64 - 2**40 + 1
}

// roots[i] generates the multiplicative subgroup of order 3*2**k for the
// largest k supported by moduli[i]. They are found at init time.
var roots [3]uint64

// CRT constants.
var (
	inv1mod2  uint64 // (p1 mod p2)**-1 mod p2
	p1mod3    uint64 // p1 mod p3
	inv12mod3 uint64 // (p1*p2 mod p3)**-1 mod p3
)

func init() {
	for i, p := range moduli {
		roots[i] = findRoot(p)
	}
	p1, p2, p3 := moduli[0], moduli[1], moduli[2]
	inv1mod2 = invmod(p1%p2, p2)
	p1mod3 = p1 % p3
	inv12mod3 = invmod(mulmod(p1mod3, p2%p3, p3), p3)
}

// findRoot returns the smallest g such that g**((p-1)/2) != 1 and
// g**((p-1)/3) != 1 mod p. The order of such a g contains the full power of
// 2 and 3 dividing p-1.
func findRoot(p uint64) uint64 {
	for g := uint64(2); ; g++ {
		if powmod(g, (p-1)/2, p) != 1 && powmod(g, (p-1)/3, p) != 1 {
			return g
		}
	}
}

func addmod(a, b, m uint64) uint64 {
	s, c := bits.Add64(a, b, 0)
	if c != 0 || s >= m {
		s -= m
	}
	return s
}

func submod(a, b, m uint64) uint64 {
	d, c := bits.Sub64(a, b, 0)
	if c != 0 {
		d += m
	}
	return d
}

// mulmod returns a*b mod m. a and b must be < m.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi, lo, m)
	return r
}

func powmod(b, e, m uint64) uint64 {
	r := uint64(1)
	for e != 0 {
		if e&1 != 0 {
			r = mulmod(r, b, m)
		}
		b = mulmod(b, b, m)
		e >>= 1
	}
	return r
}

// invmod returns a**-1 mod m for prime m.
func invmod(a, m uint64) uint64 {
	return powmod(a, m-2, m)
}

// kernel returns a primitive n-th root of unity modulo moduli[mod], or its
// inverse. n must be a supported transform length.
func kernel(n int, mod int, inverse bool) uint64 {
	p := moduli[mod]
	w := powmod(roots[mod], (p-1)/uint64(n), p)
	if inverse {
		w = invmod(w, p)
	}
	return w
}

// powTable returns [1, w, w**2, ..., w**(n-1)] mod m.
func powTable(w uint64, n int, m uint64) []uint64 {
	t := make([]uint64, n)
	if n == 0 {
		return t
	}
	t[0] = 1
	for i := 1; i < n; i++ {
		t[i] = mulmod(t[i-1], w, m)
	}
	return t
}
