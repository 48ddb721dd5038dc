// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// An Allocator manages the coefficient storage of Decimals. Malloc and
// Calloc return a slice of length n, Realloc returns a slice of length n
// holding the first min(n, len(p)) words of p. All three return nil on
// failure. Free releases storage previously returned by the Allocator.
//
// Implementations must be safe for concurrent use.
type Allocator interface {
	Malloc(n int) []Word
	Calloc(n int) []Word
	Realloc(p []Word, n int) []Word
	Free(p []Word)
}

// Config holds the process wide memory settings.
type Config struct {
	// MinAlloc is the minimum capacity in words of a Decimal's coefficient
	// buffer. Zero selects the default of 4 words.
	MinAlloc int
	// Allocator, if not nil, replaces the default Go heap allocator.
	Allocator Allocator
}

const (
	defaultMinAlloc = 4
	maxMinAlloc     = 1 << 20

	// maxWords is the largest coefficient length whose size in bytes fits
	// in an int.
	maxWords = math.MaxInt / _S
)

var (
	minAlloc  = defaultMinAlloc
	allocator Allocator = heapAllocator{}
	sealed    atomic.Bool
)

// Setup sets the process wide memory settings. It must be called before any
// Decimal is allocated; once the first coefficient buffer has been
// allocated, the settings are sealed and Setup returns an error.
func Setup(cfg Config) error {
	if sealed.Load() {
		return errors.New("decnum: Setup called after the first allocation")
	}
	if cfg.MinAlloc < 0 || cfg.MinAlloc > maxMinAlloc {
		return errors.Errorf("decnum: MinAlloc %d out of range [0, %d]", cfg.MinAlloc, maxMinAlloc)
	}
	if cfg.MinAlloc > 0 {
		minAlloc = cfg.MinAlloc
	}
	if cfg.Allocator != nil {
		allocator = cfg.Allocator
	}
	return nil
}

// heapAllocator allocates from the Go heap. Allocation failures are
// reported by returning nil instead of crashing.
type heapAllocator struct{}

func (heapAllocator) Malloc(n int) (p []Word) {
	defer func() {
		if recover() != nil {
			p = nil
		}
	}()
	return make([]Word, n)
}

func (a heapAllocator) Calloc(n int) []Word {
	// make always clears memory
	return a.Malloc(n)
}

func (a heapAllocator) Realloc(p []Word, n int) []Word {
	if n <= cap(p) {
		return p[:n]
	}
	q := a.Malloc(n)
	if q != nil {
		copy(q, p)
	}
	return q
}

func (heapAllocator) Free([]Word) {}

// allocSize returns the capacity to request for a coefficient of n words, or
// false if n words cannot be represented in memory.
func allocSize(n int) (int, bool) {
	if n < 0 || n > maxWords {
		return 0, false
	}
	return max(n, minAlloc), true
}

// New returns a new Decimal of value 0 with a coefficient buffer of the
// configured minimum capacity.
func New() *Decimal {
	z := new(Decimal)
	sealed.Store(true)
	if p := allocator.Malloc(minAlloc); p != nil {
		z.mant = dec(p[:0])
	}
	return z
}

// NewStatic returns a new Decimal of value 0 using buf as coefficient
// storage. The Decimal never reallocates or frees buf: when a result does
// not fit, the coefficient moves to a buffer obtained from the Allocator.
func NewStatic(buf []Word) *Decimal {
	return &Decimal{mant: dec(buf[:0]), flags: flagStatic}
}

// Free releases the coefficient storage owned by z and resets z to 0.
// Storage passed to NewStatic is never released.
func (z *Decimal) Free() {
	z.release()
	*z = Decimal{}
}

func (z *Decimal) release() {
	if z.flags&flagStatic == 0 && cap(z.mant) > 0 {
		allocator.Free(z.mant[:cap(z.mant)])
	}
	z.mant = nil
	z.flags &^= flagStatic
}

// resize sets the length of z's coefficient to n words, preserving the low
// words. On failure, z is set to quiet NaN, MallocError is added to st and
// resize returns false.
func (z *Decimal) resize(n int, st *Status) bool {
	if n <= cap(z.mant) {
		z.mant = z.mant[:n]
		return true
	}
	sz, ok := allocSize(n)
	if !ok {
		return z.allocFailed(st)
	}
	sealed.Store(true)
	var p []Word
	switch {
	case z.flags&flagStatic != 0 || cap(z.mant) == 0:
		// switch to dynamic storage
		if p = allocator.Malloc(sz); p != nil {
			copy(p, z.mant)
		}
	default:
		p = allocator.Realloc(z.mant[:cap(z.mant)], sz)
	}
	if p == nil {
		return z.allocFailed(st)
	}
	z.flags &^= flagStatic
	z.mant = dec(p[:n])
	return true
}

// setMant sets z's coefficient to x, which may share storage with z.mant.
func (z *Decimal) setMant(x dec, st *Status) bool {
	n := len(x)
	if n <= cap(z.mant) {
		z.mant = z.mant[:n]
		copy(z.mant, x)
		return true
	}
	if !alias(x, z.mant) {
		if !z.resize(n, st) {
			return false
		}
		copy(z.mant, x)
		return true
	}
	// x lives in z's current buffer, which a Realloc could release
	sz, ok := allocSize(n)
	if !ok {
		return z.allocFailed(st)
	}
	sealed.Store(true)
	p := allocator.Malloc(sz)
	if p == nil {
		return z.allocFailed(st)
	}
	copy(p, x)
	z.release()
	z.mant = dec(p[:n])
	return true
}

func (z *Decimal) allocFailed(st *Status) bool {
	*st |= MallocError
	z.setQNaN()
	return false
}

// scratch returns a working buffer of n words from the Allocator. It must be
// returned with freeScratch once its contents have been copied out. On
// failure, MallocError is added to st and scratch returns false.
func scratch(n int64, st *Status) (dec, bool) {
	if n < 0 || n > maxWords {
		*st |= MallocError
		return nil, false
	}
	sz, _ := allocSize(int(n))
	sealed.Store(true)
	p := allocator.Malloc(sz)
	if p == nil {
		*st |= MallocError
		return nil, false
	}
	return dec(p[:n]), true
}

func freeScratch(p dec) {
	if cap(p) > 0 {
		allocator.Free(p[:cap(p)])
	}
}

// shl10Scratch returns x*10**s in a buffer obtained with scratch.
func shl10Scratch(x dec, s int64, st *Status) (dec, bool) {
	if len(x) == 0 {
		return nil, true
	}
	if s < 0 || s/_DW >= maxWords {
		*st |= MallocError
		return nil, false
	}
	z, ok := scratch(int64(len(x))+s/_DW+1, st)
	if !ok {
		return nil, false
	}
	return z.shl10(x, uint(s)), true
}
