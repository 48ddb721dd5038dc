package decnum

import (
	"math/bits"
	"sync"
)

const debugDecimal = false

// dec is an unsigned integer x of the form
//
//   x = x[n-1]*_DB^(n-1) + x[n-2]*_DB^(n-2) + ... + x[1]*_DB + x[0]
//
// with 0 <= x[i] < _DB and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 words.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type dec []Word

func (z dec) clear() {
	for i := range z {
		z[i] = 0
	}
}

// norm strips leading zero words.
func (z dec) norm() dec {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

func (z dec) make(n int) dec {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most decs start small and stay that way; don't over-allocate.
		return make(dec, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(dec, n, n+e)
}

func (z dec) set(x dec) dec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z dec) setWord(x Word) dec {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z dec) setUint64(x uint64) dec {
	if x < _DB {
		return z.setWord(Word(x))
	}
	n := 0
	for t := x; t > 0; t /= _DB {
		n++
	}
	z = z.make(n)
	for i := range z {
		z[i] = Word(x % _DB)
		x /= _DB
	}
	return z
}

// setPow10 sets z to 10**n.
func (z dec) setPow10(n uint) dec {
	nw, ns := n/_DW, n%_DW
	z = z.make(int(nw) + 1)
	z.clear()
	z[nw] = pow10(ns)
	return z
}

// uint64 returns the value of x if it fits in a uint64.
func (x dec) uint64() (uint64, bool) {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(v, _DB)
		if hi != 0 {
			return 0, false
		}
		v = lo + uint64(x[i])
		if v < lo {
			return 0, false
		}
	}
	return v, true
}

func (x dec) cmp(y dec) (r int) {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// digits returns the number of decimal digits of x. It returns 0 for x == 0.
func (x dec) digits() uint {
	for msw := len(x) - 1; msw >= 0; msw-- {
		if x[msw] != 0 {
			return uint(msw)*_DW + decDigits(uint(x[msw]))
		}
	}
	return 0
}

// digit returns the n-th decimal digit of x, starting from the least
// significant one.
func (x dec) digit(n uint) uint {
	i, m := n/_DW, n%_DW
	if i >= uint(len(x)) {
		return 0
	}
	return (uint(x[i]) / uint(pow10(m))) % 10
}

// trailingZeros returns the number of trailing zero digits of x != 0.
func (x dec) trailingZeros() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*_DW + trailingZeroDigits(uint(w))
		}
	}
	return 0
}

// isPow10 reports whether x is a power of ten.
func (x dec) isPow10() bool {
	if len(x) == 0 {
		return false
	}
	n := x.digits() - 1
	return x.trailingZeros() == n && x.digit(n) == 1
}

func (z dec) add(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m + 1)
	c := add10VV(z[0:n], x, y)
	if m > n {
		c = add10VW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.norm()
}

// sub sets z to x - y. x must be >= y.
func (z dec) sub(x, y dec) dec {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("decnum: underflow")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		// result is x
		return z.set(x)
	}
	// m > 0

	z = z.make(m)
	c := sub10VV(z[0:n], x, y)
	if m > n {
		c = sub10VW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("decnum: underflow")
	}

	return z.norm()
}

func (z dec) addW(x dec, y Word) dec {
	m := len(x)
	if m == 0 {
		return z.setWord(y)
	}
	z = z.make(m + 1)
	z[m] = add10VW(z[0:m], x, y)
	return z.norm()
}

func (z dec) subW(x dec, y Word) dec {
	m := len(x)
	if m == 0 {
		if y != 0 {
			panic("decnum: underflow")
		}
		return z[:0]
	}
	z = z.make(m)
	if c := sub10VW(z, x, y); c != 0 {
		panic("decnum: underflow")
	}
	return z.norm()
}

// mulAddWW sets z to x*y + r. y and r must be < _DB.
func (z dec) mulAddWW(x dec, y, r Word) dec {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	// m > 0

	z = z.make(m + 1)
	z[m] = mulAdd10VWW(z[0:m], x, y, r)

	return z.norm()
}

// divW sets z to x / y and returns the remainder. y must be non-zero.
func (z dec) divW(x dec, y Word) (q dec, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("decnum: division by zero")
	case y == 1:
		q = z.set(x) // result is x
		return
	case m == 0:
		q = z[:0] // result is 0
		return
	}
	// m > 0
	z = z.make(m)
	r = div10VWW(z, x, y, 0)
	q = z.norm()
	return
}

// modW returns x % d.
func (x dec) modW(d Word) (r Word) {
	q := getDec(len(x))
	r = div10VWW(*q, x, d, 0)
	putDec(q)
	return r
}

// shl10 sets z to x*10**s.
func (z dec) shl10(x dec, s uint) dec {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	if s == 0 {
		return z.set(x)
	}
	nw, ns := int(s/_DW), s%_DW
	n := m + nw + 1
	z = z.make(n)
	// shl10VU runs from the most significant word down, so that z may
	// alias x.
	z[n-1] = shl10VU(z[nw:n-1], x, ns)
	z[0:nw].clear()
	return z.norm()
}

// rounding returns the rounding indicator for discarding the s > 0 low digits
// of x: 0 if all discarded digits are zero, 1 to 4 if they are below one half
// of the last kept digit, 5 for exactly one half and 6 to 9 above one half.
func (x dec) rounding(s uint) int {
	i, j := (s-1)/_DW, (s-1)%_DW
	if i >= uint(len(x)) {
		if len(x) > 0 {
			return 1
		}
		return 0
	}
	w := x[i]
	p := pow10(j)
	d := int((w / p) % 10)
	sticky := w%p != 0
	for k := uint(0); !sticky && k < i; k++ {
		sticky = x[k] != 0
	}
	if sticky && (d == 0 || d == 5) {
		d++
	}
	return d
}

// shr10 sets z to x/10**s and returns the rounding indicator of the
// discarded digits.
func (z dec) shr10(x dec, s uint) (dec, int) {
	if s == 0 {
		return z.set(x), 0
	}
	rnd := x.rounding(s)
	nw, ns := s/_DW, s%_DW
	if nw >= uint(len(x)) {
		return z[:0], rnd
	}
	n := len(x) - int(nw)
	z = z.make(n)
	copy(z, x[nw:])
	shr10VU(z, z, ns)
	return z.norm(), rnd
}

// getDec returns a *dec of len n. The contents may not be zero.
// The pool holds *dec to avoid allocation when converting to interface{}.
func getDec(n int) *dec {
	var z *dec
	if v := decPool.Get(); v != nil {
		z = v.(*dec)
	}
	if z == nil {
		z = new(dec)
	}
	*z = z.make(n)
	return z
}

func putDec(x *dec) {
	decPool.Put(x)
}

var decPool sync.Pool

// isAllNines reports whether all digits of x != 0 are nines.
func (x dec) isAllNines() bool {
	n := len(x)
	if n == 0 {
		return false
	}
	for _, w := range x[:n-1] {
		if w != _DMax {
			return false
		}
	}
	return x[n-1] == pow10(decDigits(uint(x[n-1])))-1
}
