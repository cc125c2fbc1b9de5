package rowtable

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DecodeSeparator interprets backslash escapes in s so a separator such as
// the two characters `\t` can be passed on a command line and used as a tab.
//
// Recognized escapes are \a \b \f \n \r \t \v \\ \' \", \xhh, \uhhhh,
// \Uhhhhhhhh and octal \o, \oo, \ooo. Any other backslash pair is kept as
// written; this includes named escapes such as \N{TAB}, which are not
// decoded. A trailing lone backslash or a truncated hex escape fails with
// [ErrInvalidEscape].
func DecodeSeparator(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("%w: trailing backslash in %q", ErrInvalidEscape, s)
		}
		esc := s[i+1]
		switch esc {
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '\\', '\'', '"':
			sb.WriteByte(esc)
		case 'x', 'u', 'U':
			size := hexDigits(esc)
			r, ok := parseHex(s, i+2, size)
			if !ok {
				return "", fmt.Errorf("%w: truncated \\%c escape in %q", ErrInvalidEscape, esc, s)
			}
			if !utf8.ValidRune(r) {
				return "", fmt.Errorf("%w: invalid code point \\%c%s in %q", ErrInvalidEscape, esc, s[i+2:i+2+size], s)
			}
			// \xhh names a code point, not a raw byte.
			sb.WriteRune(r)
			i += 2 + size
			continue
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := parseOctal(s, i+1)
			sb.WriteRune(rune(v))
			i += 1 + n
			continue
		default:
			sb.WriteByte('\\')
			sb.WriteByte(esc)
		}
		i += 2
	}
	return sb.String(), nil
}

func hexDigits(esc byte) int {
	switch esc {
	case 'x':
		return 2
	case 'u':
		return 4
	default:
		return 8
	}
}

func parseHex(s string, start, size int) (rune, bool) {
	if start+size > len(s) {
		return 0, false
	}
	var r rune
	for _, c := range []byte(s[start : start+size]) {
		var d byte
		switch {
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}

// parseOctal reads up to three octal digits starting at start.
func parseOctal(s string, start int) (int, int) {
	v, n := 0, 0
	for n < 3 && start+n < len(s) {
		c := s[start+n]
		if c < '0' || c > '7' {
			break
		}
		v = v*8 + int(c-'0')
		n++
	}
	return v, n
}
