// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// bigBase returns the largest power bb = base**n < 10**19 and n.
func bigBase(base uint32) (bb uint64, n int) {
	bb, n = uint64(base), 1
	for bb <= (1e19-1)/uint64(base) {
		bb *= uint64(base)
		n++
	}
	return bb, n
}

// Export returns the digits of the integer coefficient of |x| in the given
// base, least significant first. The sign of x is ignored. If base < 2 or x
// is not a finite integer, Export adds InvalidOperation to st and returns
// nil. Zero exports as a single 0 digit.
func (x *Decimal) Export(base uint32, st *Status) []uint32 {
	if base < 2 {
		*st |= InvalidOperation
		return nil
	}
	c, ok := x.integral(MaxPrec)
	if !ok {
		if x.IsInteger() {
			*st |= MallocError
		} else {
			*st |= InvalidOperation
		}
		return nil
	}
	if len(c) == 0 {
		return []uint32{0}
	}

	bb, n := bigBase(base)
	d := dec(nil).setUint64(bb)
	var out []uint32
	var r dec
	for len(c) > 0 {
		c, r = c.div(r, c, d)
		v, _ := r.uint64()
		for i := 0; i < n; i++ {
			out = append(out, uint32(v%uint64(base)))
			v /= uint64(base)
		}
	}
	// strip leading zero digits
	i := len(out)
	for i > 1 && out[i-1] == 0 {
		i--
	}
	return out[:i]
}

// Import sets z to the integer whose digits in the given base are words,
// least significant first, negated if neg is set, rounded to ctx, and
// returns z. If base < 2, words is empty or a word is >= base, z is set to
// NaN and InvalidOperation is added to st.
func (z *Decimal) Import(words []uint32, neg bool, base uint32, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	if base < 2 || len(words) == 0 {
		return z.invalid(st)
	}
	for _, w := range words {
		if w >= base {
			return z.invalid(st)
		}
	}

	bb, n := bigBase(base)
	d := dec(nil).setUint64(bb)
	var c, t dec
	// first chunk holds the len(words)%n most significant digits
	top := len(words) % n
	if top == 0 {
		top = n
	}
	for i := len(words); i > 0; {
		var v uint64
		for j := i - 1; j >= i-top; j-- {
			v = v*uint64(base) + uint64(words[j])
		}
		i -= top
		t = t.mul(c, d)
		c = c.add(t, dec(nil).setUint64(v))
		top = n
	}
	return z.setTriple(neg, c, 0, st).finalize(ctx, st)
}
