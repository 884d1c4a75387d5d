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

// JS escapes the string s, so it can be placed inside a single or double
// quoted JavaScript string literal, and writes it to w.
func JS(w io.Writer, s string) error {
	return jsEscape(newStringWriter(w), s)
}

// JSString escapes the string s, so it can be placed inside a single or
// double quoted JavaScript string literal, and returns the escaped
// string.
//
// ASCII letters, digits, ',', '.' and '_' are unchanged. Every other
// character becomes '\xHH' if its value fits in one byte, otherwise
// '\uHHHH' on its UTF-16 code units, one escape per code unit, with
// uppercase zero-padded hex digits. Each byte of an invalid UTF-8
// sequence is replaced with U+FFFD and escaped as '\uFFFD'. The
// returned string contains only ASCII characters.
//
// The escaped string is safe only between quotes inside a script
// context. It does not make event handler bodies outside quoted
// literals or javascript: URLs safe.
func JSString(s string) string {
	for i := 0; i < len(s); i++ {
		if !isJSSafe(s[i]) {
			var b strings.Builder
			b.Grow(len(s) + 9)
			_ = jsEscape(&b, s)
			return b.String()
		}
	}
	return s
}

// isJSSafe indicates if the byte c passes unescaped in a JavaScript
// string literal.
func isJSSafe(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == ',' || c == '.' || c == '_'
}

// jsEscape escapes the string s, so it can be placed inside a single or
// double quoted JavaScript string literal, and writes it to w.
func jsEscape(w stringWriter, s string) error {
	last := 0
	var buf []byte
	for i, c := range s {
		if c < utf8.RuneSelf && isJSSafe(byte(c)) {
			continue
		}
		size := utf8.RuneLen(c)
		if c == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(s[i:]); n == 1 {
				size = 1
			}
		}
		switch {
		case c < 0x100:
			buf = append(buf[:0], '\\', 'x', hexchars[c>>4], hexchars[c&0xF])
		case c < 0x10000:
			buf = appendJSEscape(buf[:0], uint16(c))
		default:
			hi, lo := utf16.EncodeRune(c)
			buf = appendJSEscape(buf[:0], uint16(hi))
			buf = appendJSEscape(buf, uint16(lo))
		}
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

// appendJSEscape appends to b the escape of the UTF-16 code unit c, as
// '\uHHHH', and returns the extended buffer.
func appendJSEscape(b []byte, c uint16) []byte {
	return append(b, '\\', 'u',
		hexchars[c>>12], hexchars[c>>8&0xF], hexchars[c>>4&0xF], hexchars[c&0xF])
}
