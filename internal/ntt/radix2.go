// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntt

// dif2 computes the length-n transform of a in place, n = len(a) a power of
// two, with decimation in frequency butterflies followed by a bit reversal
// permutation. w[i] must be kernel**i for i < n/2.
func dif2(a []uint64, w []uint64, m uint64) {
	n := len(a)
	for l := n; l >= 2; l >>= 1 {
		h := l >> 1
		step := n / l
		for s := 0; s < n; s += l {
			x, y := a[s:s+h], a[s+h:s+l]
			for j := range x {
				u, v := x[j], y[j]
				x[j] = addmod(u, v, m)
				y[j] = mulmod(submod(u, v, m), w[j*step], m)
			}
		}
	}
	bitReverse(a)
}

func bitReverse(a []uint64) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}
