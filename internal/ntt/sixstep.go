// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntt

import "math/bits"

// sixStep computes the transform of a with kernel w, len(a) = n1*n2 a power
// of two. With j = j1 + n1*j2 and k = k2 + n2*k1:
//
//	1. transpose the n2×n1 input to n1×n2
//	2. length-n2 transforms of the rows with kernel w**n1
//	3. multiply element (j1, k2) by w**(j1*k2)
//	4. transpose to n2×n1
//	5. length-n1 transforms of the rows with kernel w**n2
//	6. transpose to n1×n2, which is the natural output order
func sixStep(a []uint64, w, m uint64) {
	n := len(a)
	lg := bits.TrailingZeros(uint(n))
	n1 := 1 << (lg / 2)
	n2 := n / n1

	t := make([]uint64, n)
	transpose(t, a, n2, n1)
	rowTransforms(t, n2, powmod(w, uint64(n1), m), m)
	for j1 := 1; j1 < n1; j1++ {
		row := t[j1*n2 : (j1+1)*n2]
		tw := powmod(w, uint64(j1), m)
		f := uint64(1)
		for k2 := range row {
			row[k2] = mulmod(row[k2], f, m)
			f = mulmod(f, tw, m)
		}
	}
	transpose(a, t, n1, n2)
	rowTransforms(a, n1, powmod(w, uint64(n2), m), m)
	transpose(t, a, n2, n1)
	copy(a, t)
}

// rowTransforms applies a length-l radix-2 transform with kernel w to each
// row of a.
func rowTransforms(a []uint64, l int, w, m uint64) {
	tab := powTable(w, l/2, m)
	for i := 0; i < len(a); i += l {
		dif2(a[i:i+l], tab, m)
	}
}

const transposeBlock = 64

// transpose sets dst to the transpose of the rows×cols matrix src.
func transpose(dst, src []uint64, rows, cols int) {
	for r0 := 0; r0 < rows; r0 += transposeBlock {
		r1 := min(r0+transposeBlock, rows)
		for c0 := 0; c0 < cols; c0 += transposeBlock {
			c1 := min(c0+transposeBlock, cols)
			for r := r0; r < r1; r++ {
				row := src[r*cols : (r+1)*cols]
				for c := c0; c < c1; c++ {
					dst[c*rows+r] = row[c]
				}
			}
		}
	}
}
