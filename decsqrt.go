package decnum

import "math"

// sqrt sets z = ⌊√x⌋.
//
// The Newton iteration
//
//	z' = ⌊(z + ⌊x/z⌋)/2⌋
//
// decreases monotonically towards ⌊√x⌋ from any starting point >= √x. The
// starting point is computed recursively from the square root of the top
// half of x, so that only one or two iterations are needed.
func (z dec) sqrt(x dec) dec {
	if len(x) == 0 || len(x) == 1 && x[0] < 2 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil
	}

	d := x.digits()
	if v, ok := x.uint64(); ok {
		return z.setUint64(isqrt64(v))
	}

	// seed = (⌊√(x/10**2h)⌋ + 1) * 10**h >= √x
	h := d / 4
	t, _ := dec(nil).shr10(x, 2*h)
	t = t.sqrt(t)
	t = t.addW(t, 1)
	z1 := dec(nil).shl10(t, h)

	var z2 dec
	for {
		z2, _ = z2.div(nil, x, z1)
		z2 = z2.add(z2, z1)
		z2, _ = z2.divW(z2, 2)
		if z2.cmp(z1) >= 0 {
			return z.set(z1)
		}
		z1, z2 = z2, z1
	}
}

// isqrt64 returns ⌊√x⌋.
func isqrt64(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	// float64 rounding may be off by one either way
	for r > 0 && (r > math.MaxUint32 || r*r > x) {
		r--
	}
	for r+1 <= math.MaxUint32 && (r+1)*(r+1) <= x {
		r++
	}
	return r
}
