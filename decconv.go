package decnum

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var decimalZero Decimal

// expLimit bounds the magnitude of parsed exponents. Larger exponents are
// saturated: they overflow or underflow in any valid context while sums
// of two exponents still fit in an int64.
const expLimit = 2 * (MaxEmax + MaxPrec)

// SetString sets z to the value of s rounded to ctx and returns z. s must be
// a numeric string of the form
//
//	number   = [ sign ] ( decimal [ exponent ] | infinity | nan ) .
//	sign     = "+" | "-" .
//	decimal  = digits "." [ digits ] | [ "." ] digits .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//	infinity = "Inf" | "Infinity" .
//	nan      = [ "s" ] "NaN" [ digits ] .
//	digits   = digit { digit } .
//
// The keywords are case insensitive. Leading or trailing white space is not
// allowed. If s is not a valid numeric string, z is set to a quiet NaN and
// ConversionSyntax is added to st. A NaN payload with more than
// ctx.Prec()-1 digits (ctx.Prec() without clamping) is a syntax error.
func (z *Decimal) SetString(s string, ctx *Context, st *Status) *Decimal {
	if !ctx.check(z, st) {
		return z
	}
	maxPayload := ctx.prec
	if ctx.clamp {
		maxPayload--
	}
	if !z.parse(s, maxPayload, st) {
		return z
	}
	return z.finalize(ctx, st)
}

// SetStringExact is like SetString but sets z to the exact value of s,
// without any rounding or exponent limit. Surrounding white space is ignored.
// Exponents beyond ±2×(MaxEmax+MaxPrec) are saturated.
func (z *Decimal) SetStringExact(s string, st *Status) *Decimal {
	z.parse(strings.TrimSpace(s), MaxPrec, st)
	return z
}

// Parse returns a new Decimal set to the exact value of s, or an error if s
// is not a valid numeric string.
func Parse(s string) (*Decimal, error) {
	var st Status
	z := new(Decimal).SetStringExact(s, &st)
	if st&ConversionSyntax != 0 {
		return nil, errors.Errorf("decnum: invalid numeric string %q", s)
	}
	if st&MallocError != 0 {
		return nil, errors.Errorf("decnum: out of memory parsing a %d bytes string", len(s))
	}
	return z, nil
}

// parse sets z to the exact value of s. It returns false if s is not a valid
// numeric string or if memory allocation failed.
func (z *Decimal) parse(s string, maxPayload int64, st *Status) bool {
	var neg bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return z.syntaxError(st)
	}
	switch ch := s[0] | 0x20; {
	case ch == 'i':
		if !strings.EqualFold(s, "inf") && !strings.EqualFold(s, "infinity") {
			return z.syntaxError(st)
		}
		z.SetInf(neg)
		return true
	case ch == 'n' || ch == 's':
		return z.parseNaN(s, neg, maxPayload, st)
	}

	// coefficient
	var (
		digits  strings.Builder
		nDigits int
		frac    int64
		dot     bool
	)
	i := 0
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case '0' <= ch && ch <= '9':
			if ch != '0' || digits.Len() > 0 {
				digits.WriteByte(ch)
			}
			nDigits++
			if dot {
				frac++
			}
			continue
		case ch == '.' && !dot:
			dot = true
			continue
		}
		break
	}
	if nDigits == 0 {
		return z.syntaxError(st)
	}

	// exponent
	var exp int64
	if i < len(s) {
		if s[i]|0x20 != 'e' {
			return z.syntaxError(st)
		}
		var ok bool
		if exp, ok = scanExponent(s[i+1:]); !ok {
			return z.syntaxError(st)
		}
	}
	exp -= frac
	if exp < -expLimit {
		exp = -expLimit
	}

	if !z.setMant(dec(nil).setString(digits.String()), st) {
		return false
	}
	z.setFlags(0)
	z.setNeg(neg)
	z.exp = exp
	z.setDigits()
	return true
}

// scanExponent parses the optionally signed decimal integer s, saturating
// its value to ±expLimit.
func scanExponent(s string) (int64, bool) {
	var neg bool
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, false
	}
	var e int64
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		if e <= expLimit/10 {
			e = e*10 + int64(ch-'0')
		} else {
			e = expLimit
		}
	}
	e = min(e, expLimit)
	if neg {
		e = -e
	}
	return e, true
}

// parseNaN parses "NaN" or "sNaN" followed by an optional payload.
func (z *Decimal) parseNaN(s string, neg bool, maxPayload int64, st *Status) bool {
	f := flagNaN
	if s[0]|0x20 == 's' {
		f = flagSNaN
		s = s[1:]
	}
	if len(s) < 3 || !strings.EqualFold(s[:3], "nan") {
		return z.syntaxError(st)
	}
	s = s[3:]
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return z.syntaxError(st)
		}
	}
	p := strings.TrimLeft(s, "0")
	if int64(len(p)) > maxPayload {
		return z.syntaxError(st)
	}
	if !z.setMant(dec(nil).setString(p), st) {
		return false
	}
	if neg {
		f |= flagNeg
	}
	z.setFlags(f)
	z.exp = 0
	z.setDigits()
	return true
}

func (z *Decimal) syntaxError(st *Status) bool {
	*st |= ConversionSyntax
	z.setQNaN()
	return false
}

var _ fmt.Scanner = &decimalZero // *Decimal must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the exact value of
// the scanned numeric string. It accepts the verbs 'e', 'E', 'f', 'F', 'g',
// 'G', 's' and 'v'.
func (z *Decimal) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'e', 'E', 'f', 'F', 'g', 'G', 's', 'v':
	default:
		return errors.Errorf("decnum: invalid verb %%%c for Decimal", ch)
	}
	s.SkipSpace()
	tok, err := scanToken(byteReader{s})
	if err != nil {
		return errors.Wrap(err, "decnum: scan")
	}
	var st Status
	if z.SetStringExact(tok, &st); st&ConversionSyntax != 0 {
		return errors.Errorf("decnum: invalid numeric string %q", tok)
	}
	return nil
}

// scanToken reads the longest sequence of bytes that may appear in a numeric
// string.
func scanToken(r io.ByteScanner) (string, error) {
	var b strings.Builder
	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if !isNumericByte(ch) {
			if err = r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		b.WriteByte(ch)
	}
	if b.Len() == 0 {
		return "", io.ErrUnexpectedEOF
	}
	return b.String(), nil
}

func isNumericByte(ch byte) bool {
	switch {
	case '0' <= ch && ch <= '9', ch == '+', ch == '-', ch == '.':
		return true
	}
	switch ch | 0x20 {
	case 'e', 'i', 'n', 'f', 't', 'y', 'a', 's':
		return true
	}
	return false
}
