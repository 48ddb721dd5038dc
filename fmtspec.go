// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decnum

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// A FormatSpec describes how Decimal.FormatSpec formats a value. It is usually
// obtained from ParseFormatSpec and then customized, for instance with locale
// specific separators.
type FormatSpec struct {
	Fill  rune // padding character
	Align byte // '<' left, '>' right, '=' after the sign, '^' centered
	Sign  byte // '-' negative only, '+' always, ' ' space for positive values
	Width int  // minimum width, 0 for none
	Prec  int  // precision, -1 for none
	// Type is one of 'e', 'E', 'f', 'F', 'g', 'G', '%' or 0 for
	// scientific notation.
	Type byte

	Dot      string // decimal point
	Sep      string // thousands separator
	Grouping []int  // digit group sizes, right to left; the last one repeats
}

// ParseFormatSpec parses a format specification of the form
//
//	[[fill]align][sign][0][width][,][.prec][type]
//
// A '0' before the width selects zero padding between the sign and the
// digits. A ',' groups the integer digits by three.
func ParseFormatSpec(s string) (*FormatSpec, error) {
	spec := &FormatSpec{Fill: ' ', Align: '>', Sign: '-', Prec: -1, Dot: "."}
	orig := s

	// [[fill]align]
	if r, n := utf8.DecodeRuneInString(s); n > 0 && len(s) > n && isAlign(s[n]) {
		spec.Fill, spec.Align = r, s[n]
		s = s[n+1:]
	} else if len(s) > 0 && isAlign(s[0]) {
		spec.Align = s[0]
		s = s[1:]
	} else if strings.HasPrefix(strings.TrimLeft(s, "+- "), "0") {
		// zero padding
		spec.Fill, spec.Align = '0', '='
	}

	// [sign]
	if len(s) > 0 && (s[0] == '+' || s[0] == '-' || s[0] == ' ') {
		spec.Sign = s[0]
		s = s[1:]
	}

	// [0][width]
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i > 0 {
		w, err := strconv.Atoi(s[:i])
		if err != nil {
			return nil, errors.Wrapf(err, "decnum: invalid width in format spec %q", orig)
		}
		spec.Width = w
		s = s[i:]
	}

	// [,]
	if len(s) > 0 && s[0] == ',' {
		spec.Sep, spec.Grouping = ",", []int{3}
		s = s[1:]
	}

	// [.prec]
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		i = 0
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return nil, errors.Errorf("decnum: missing precision in format spec %q", orig)
		}
		p, err := strconv.Atoi(s[:i])
		if err != nil {
			return nil, errors.Wrapf(err, "decnum: invalid precision in format spec %q", orig)
		}
		spec.Prec = p
		s = s[i:]
	}

	// [type]
	if len(s) > 0 {
		switch s[0] {
		case 'e', 'E', 'f', 'F', 'g', 'G', '%':
			spec.Type = s[0]
			s = s[1:]
		}
	}
	if len(s) > 0 {
		return nil, errors.Errorf("decnum: invalid format spec %q", orig)
	}
	return spec, nil
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '=' || c == '^'
}

// FormatSpec formats x according to spec. Rounding uses the rounding mode of
// ctx and may add Inexact and Rounded to st. Memory allocation failures add
// MallocError to st and return an empty string.
func (x *Decimal) FormatSpec(spec *FormatSpec, ctx *Context, st *Status) string {
	if !ctx.Valid() {
		*st |= InvalidContext
		return ""
	}
	var t Decimal
	defer t.Free()
	if t.Set(x, st).IsNaN() && !x.IsNaN() {
		return ""
	}
	if t.isSpecial() {
		body := strings.TrimPrefix(t.String(), "-")
		return spec.align(spec.sign(t.isNeg()), body)
	}

	typ := spec.Type
	if typ == '%' {
		t.exp += 2
	}

	// rounding
	wc := workContext(MaxPrec)
	wc.round = ctx.round
	var ws Status
	if spec.Prec >= 0 {
		switch typ {
		case 'e', 'E':
			wc.prec = int64(spec.Prec) + 1
			t.checkRound(&wc, &ws)
		case 'f', 'F', '%':
			t.rescale(&t, -int64(spec.Prec), &wc, &ws)
		case 'g', 'G', 0:
			wc.prec = max(int64(spec.Prec), 1)
			t.checkRound(&wc, &ws)
		}
	}
	if t.IsNaN() {
		*st |= ws & Errors
		return ""
	}
	*st |= ws & (Inexact | Rounded)
	if t.isZeroCoeff() && t.exp > 0 && (typ == 'f' || typ == 'F' || typ == '%') {
		t.exp = 0
	}

	// decimal point placement
	c := t.mant.appendDigits(nil)
	left := t.exp + int64(len(c))
	var dot int64
	switch typ {
	case 'e', 'E':
		dot = 1
		if t.isZeroCoeff() && spec.Prec >= 0 {
			dot = 1 - int64(spec.Prec)
		}
	case 'f', 'F', '%':
		dot = left
	default:
		if t.exp <= 0 && left > -6 {
			dot = left
		} else {
			dot = 1
		}
	}

	var intPart, fracPart []byte
	switch {
	case dot <= 0:
		intPart = []byte{'0'}
		fracPart = append(zeros(-dot), c...)
	case dot > int64(len(c)):
		intPart = append(c, zeros(dot-int64(len(c)))...)
	default:
		intPart, fracPart = c[:dot], c[dot:]
		if len(intPart) == 0 {
			intPart = []byte{'0'}
		}
	}
	exp := left - dot

	var tail []byte
	if len(fracPart) > 0 {
		tail = append([]byte(spec.Dot), fracPart...)
	}
	if exp != 0 || typ == 'e' || typ == 'E' {
		e := byte('E')
		if typ == 'e' || typ == 'g' {
			e = 'e'
		}
		tail = append(tail, e)
		if exp >= 0 {
			tail = append(tail, '+')
		}
		tail = strconv.AppendInt(tail, exp, 10)
	}
	if typ == '%' {
		tail = append(tail, '%')
	}

	sign := spec.sign(t.isNeg())
	minWidth := 0
	if spec.Fill == '0' && spec.Align == '=' {
		minWidth = spec.Width - utf8.RuneCount(tail) - len(sign)
	}
	body := spec.group(intPart, minWidth) + string(tail)
	return spec.align(sign, body)
}

func zeros(n int64) []byte {
	return []byte(strings.Repeat("0", int(n)))
}

func (spec *FormatSpec) sign(neg bool) string {
	switch {
	case neg:
		return "-"
	case spec.Sign == '+' || spec.Sign == ' ':
		return string(spec.Sign)
	}
	return ""
}

// group inserts thousands separators in the integer digits d, left padding
// with zeros to minWidth characters.
func (spec *FormatSpec) group(d []byte, minWidth int) string {
	var groups []string
	g := spec.Grouping
	for len(g) > 0 {
		l := g[0]
		if len(g) > 1 {
			g = g[1:]
		}
		if l <= 0 {
			break
		}
		l = min(max(len(d), minWidth, 1), l)
		groups = append(groups, zeroPad(d, l))
		d = d[:max(len(d)-l, 0)]
		minWidth -= l
		if len(d) == 0 && minWidth <= 0 {
			return joinReversed(groups, spec.Sep)
		}
		minWidth -= utf8.RuneCountInString(spec.Sep)
	}
	groups = append(groups, zeroPad(d, max(len(d), minWidth, 1)))
	return joinReversed(groups, spec.Sep)
}

// zeroPad returns the l last digits of d, left padded with zeros.
func zeroPad(d []byte, l int) string {
	if len(d) >= l {
		return string(d[len(d)-l:])
	}
	return strings.Repeat("0", l-len(d)) + string(d)
}

func joinReversed(s []string, sep string) string {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return strings.Join(s, sep)
}

func (spec *FormatSpec) align(sign, body string) string {
	n := spec.Width - utf8.RuneCountInString(sign) - utf8.RuneCountInString(body)
	if n <= 0 {
		return sign + body
	}
	pad := strings.Repeat(string(spec.Fill), n)
	switch spec.Align {
	case '<':
		return sign + body + pad
	case '=':
		return sign + pad + body
	case '^':
		h := n / 2
		return pad[:h*utf8.RuneLen(spec.Fill)] + sign + body + pad[h*utf8.RuneLen(spec.Fill):]
	}
	return pad + sign + body
}
