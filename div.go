// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

// Divisions where both the divisor and the quotient are at least
// newtonThreshold words long use a Newton reciprocal instead of schoolbook
// long division. Both algorithms return the same quotient and remainder.
var newtonThreshold = 160

// div returns q = u/v and r = u%v. v must not be zero. z and z2 are used as
// storage for q and r.
func (z dec) div(z2, u, v dec) (q, r dec) {
	if len(v) == 0 {
		panic("decnum: division by zero")
	}

	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}

	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}

	if len(v) >= newtonThreshold && len(u)-len(v) >= newtonThreshold {
		return z.divNewton(z2, u, v)
	}
	return z.divKnuth(z2, u, v)
}

// divSchool is div without the Newton path.
func (z dec) divSchool(z2, u, v dec) (q, r dec) {
	if u.cmp(v) < 0 {
		return z[:0], z2.set(u)
	}
	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		return q, z2.setWord(r2)
	}
	return z.divKnuth(z2, u, v)
}

// divKnuth implements algorithm D from Knuth, The Art of Computer
// Programming, Vol. 2, section 4.3.1, in base _DB. len(v) >= 2 and u >= v.
func (z dec) divKnuth(u2, uIn, vIn dec) (q, r dec) {
	n := len(vIn)
	m := len(uIn) - n

	// D1.
	// Normalize so that v[n-1] >= _DB/2.
	d := Word(uint(_DB) / (uint(vIn[n-1]) + 1))
	vp := getDec(n)
	v := *vp
	if d == 1 {
		copy(v, vIn)
	} else {
		mulAdd10VWW(v, vIn, d, 0)
	}

	// determine if z can be reused
	if alias(z, uIn) || alias(z, vIn) {
		z = nil // z is an alias for uIn or vIn - cannot reuse
	}
	q = z.make(m + 1)

	// u may safely alias uIn or vIn, the value of uIn is used to set u and
	// vIn was already used
	if alias(u2, vIn) {
		u2 = nil
	}
	u := u2.make(len(uIn) + 1)
	u[len(uIn)] = mulAdd10VWW(u[0:len(uIn)], uIn, d, 0)

	qhatvp := getDec(n + 1)
	qhatv := *qhatvp

	vn1 := v[n-1]
	vn2 := v[n-2]

	// D2.
	for j := m; j >= 0; j-- {
		// D3.
		qhat := Word(_DMax)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = div10WW(ujn, u[j+n-1], vn1)

			// x1 | x2 = q̂v_{n-2}
			x1, x2 := mul10WW(qhat, vn2)
			// test if q̂v_{n-2} > br̂ + u_{j+n-2}
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				// r̂ >= _DB stops the test
				if rhat >= _DB-vn1 {
					break
				}
				rhat += vn1
				x1, x2 = mul10WW(qhat, vn2)
			}
		}

		// D4.
		qhatv[n] = mulAdd10VWW(qhatv[0:n], v, qhat, 0)

		c := sub10VV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			// D6. add back
			c := add10VV(u[j:j+n], u[j:], v)
			u[j+n], _ = add10WWW_g(u[j+n], c, 0)
			qhat--
		}

		q[j] = qhat
	}

	putDec(vp)
	putDec(qhatvp)

	q = q.norm()
	// D8. unnormalize
	un := u[:n].norm()
	r, _ = un.divW(un, d)
	return q, r
}

// divNewton computes q = u/v and r = u%v using a Newton reciprocal of v.
// len(v) >= 2 and u >= v.
func (z dec) divNewton(z2, u, v dec) (q, r dec) {
	n := len(u)
	x := recip(v, n) // floor(_DB**n / v)

	// q0 = floor(u*x / _DB**n) <= u/v, and u/v - q0 < 2
	t := dec(nil).mul(u, x)
	if len(t) > n {
		t = t[n:]
	} else {
		t = t[:0]
	}
	if alias(z, u) || alias(z, v) {
		z = nil
	}
	q = z.set(t)

	p := dec(nil).mul(q, v)
	rr := dec(nil).sub(u, p)
	for rr.cmp(v) >= 0 {
		rr = rr.sub(rr, v)
		q = q.addW(q, 1)
	}

	if alias(z2, u) || alias(z2, v) {
		z2 = nil
	}
	return q, z2.set(rr)
}

// recip returns floor(_DB**n / v), n >= len(v).
//
// The reciprocal is refined from a reciprocal of the top words of v,
// computed recursively at about half the precision, by one Newton step
//
//	x1 = 2*x0 - v*x0²/_DB**n
//
// followed by an exact correction from the residual _DB**n - v*x1.
func recip(v dec, n int) dec {
	m := len(v)
	k := n - m
	if k <= 4 {
		one := dec(nil).make(n + 1)
		one.clear()
		one[n] = 1
		x, _ := dec(nil).divSchool(nil, one, v)
		return x
	}

	p := (k+1)/2 + 1
	t := min(m, p+1)
	y := recip(v[m-t:], t+p)
	x0 := dec(nil).make(len(y) + k - p)
	x0[:k-p].clear()
	copy(x0[k-p:], y)
	x0 = x0.norm()

	// Newton step
	x1 := x0
	s := dec(nil).sqr(x0)
	s = s.mul(s, v)
	if len(s) > n {
		s = s[n:]
		d := dec(nil).add(x0, x0)
		if d.cmp(s) >= 0 {
			x1 = d.sub(d, s)
		}
	}

	// residual: _DB**n = v*x1 - e
	bn := dec(nil).make(n + 1)
	bn.clear()
	bn[n] = 1
	e := dec(nil).mul(v, x1)
	if e.cmp(bn) <= 0 {
		e = e.sub(bn, e)
		q, _ := dec(nil).divSchool(nil, e, v)
		return x1.add(x1, q)
	}
	e = e.sub(e, bn)
	q, r := dec(nil).divSchool(nil, e, v)
	x1 = x1.sub(x1, q)
	if len(r) > 0 {
		x1 = x1.subW(x1, 1)
	}
	return x1
}
