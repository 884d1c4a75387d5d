// Copyright 2021 The Escaper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package escaper

import (
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// CSS escapes the string s, so it can be placed inside a quoted CSS
// property value, and writes it to w.
func CSS(w io.Writer, s string) error {
	return cssEscape(newStringWriter(w), s)
}

// CSSString escapes the string s, so it can be placed inside a quoted
// CSS property value, and returns the escaped string.
//
// ASCII letters and digits are unchanged. Every other character becomes
// '\' followed by the uppercase hex value of its UTF-16 code units,
// without leading zeros, and a terminating space. The space is part of
// the escape: without it a following hex digit would be read as part of
// the escape sequence. NUL becomes '\0 '. Each byte of an invalid UTF-8
// sequence becomes '\FFFD '.
//
// The escaped string is safe only inside a quoted property value. It is
// not safe for url(), behavior, expression() or unquoted values.
func CSSString(s string) string {
	for i := 0; i < len(s); i++ {
		if !isAlphanumeric(s[i]) {
			var b strings.Builder
			b.Grow(len(s) + 8)
			_ = cssEscape(&b, s)
			return b.String()
		}
	}
	return s
}

// isAlphanumeric indicates if c is an ASCII letter or digit.
func isAlphanumeric(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// cssEscape escapes the string s, so it can be placed inside a quoted
// CSS property value, and writes it to w.
func cssEscape(w stringWriter, s string) error {
	last := 0
	var buf []byte
	for i, c := range s {
		if c < utf8.RuneSelf && isAlphanumeric(byte(c)) {
			continue
		}
		size := utf8.RuneLen(c)
		if c == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(s[i:]); n == 1 {
				size = 1
			}
		}
		v := uint32(c)
		if c > 0xFFFF {
			hi, lo := utf16.EncodeRune(c)
			v = uint32(hi)<<16 | uint32(lo)
		}
		buf = appendHex(append(buf[:0], '\\'), v)
		buf = append(buf, ' ')
		if last != i {
			_, err := w.WriteString(s[last:i])
			if err != nil {
				return err
			}
		}
		_, err := w.Write(buf)
		if err != nil {
			return err
		}
		last = i + size
	}
	if last != len(s) {
		_, err := w.WriteString(s[last:])
		return err
	}
	return nil
}

// appendHex appends to b the uppercase hex digits of v, without leading
// zeros and with at least one digit, and returns the extended buffer.
func appendHex(b []byte, v uint32) []byte {
	shift := 28
	for shift > 0 && v>>shift == 0 {
		shift -= 4
	}
	for ; shift >= 0; shift -= 4 {
		b = append(b, hexchars[v>>shift&0xF])
	}
	return b
}
