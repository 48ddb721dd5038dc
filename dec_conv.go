package decnum

// setString sets z to the value of the string of decimal digits s. s must
// only contain the characters '0' to '9'; leading zeros are allowed.
func (z dec) setString(s string) dec {
	for len(s) > 0 && s[0] == '0' {
		s = s[1:]
	}
	n := (len(s) + _DW - 1) / _DW
	z = z.make(n)
	// words are filled from the least significant digits
	for i := range z {
		j := max(0, len(s)-_DW)
		var w Word
		for _, ch := range []byte(s[j:]) {
			w = w*10 + Word(ch-'0')
		}
		z[i] = w
		s = s[:j]
	}
	return z.norm()
}

// appendDigits appends the decimal digits of x to buf, without leading
// zeros. Zero is rendered as "0".
func (x dec) appendDigits(buf []byte) []byte {
	n := len(x)
	if n == 0 {
		return append(buf, '0')
	}
	buf = appendWord(buf, x[n-1], 0)
	for i := n - 2; i >= 0; i-- {
		buf = appendWord(buf, x[i], _DW)
	}
	return buf
}

// appendWord appends the digits of w to buf, left padded with zeros to width
// digits.
func appendWord(buf []byte, w Word, width int) []byte {
	var b [_DW]byte
	i := len(b)
	for w >= 10 {
		q := w / 10
		i--
		b[i] = byte(w - q*10 + '0')
		w = q
	}
	i--
	b[i] = byte(w + '0')
	for ; len(b)-i < width; i-- {
		b[i-1] = '0'
	}
	return append(buf, b[i:]...)
}

// String returns the decimal digits of x.
func (x dec) String() string {
	return string(x.appendDigits(nil))
}
