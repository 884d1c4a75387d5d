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

// Text escapes the string s, so it can be placed inside HTML element
// content, and writes it to w.
func Text(w io.Writer, s string) error {
	return textEscape(newStringWriter(w), s)
}

// TextString escapes the string s, so it can be placed inside HTML element
// content, and returns the escaped string.
//
// It escapes the characters '&', '<', '>', '"' and the single quote as
// HTML entities, and '/' as '&#x2F;', so that a value containing "</"
// cannot close the enclosing element. All other characters are
// unchanged, except that each byte of an invalid UTF-8 sequence is
// replaced with U+FFFD.
func TextString(s string) string {
	more := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '>':
			more += 3
		case '&':
			more += 4
		case '"', '\'', '/':
			more += 5
		}
	}
	if more == 0 && utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + more)
	_ = textEscape(&b, s)
	return b.String()
}

// textEscape escapes the string s, so it can be placed inside HTML element
// content, and writes it to w.
func textEscape(w stringWriter, s string) error {
	last := 0
	for i, c := range s {
		var esc string
		switch c {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		case '\'':
			esc = "&#039;"
		case '/':
			esc = "&#x2F;"
		case utf8.RuneError:
			if _, n := utf8.DecodeRuneInString(s[i:]); n > 1 {
				// A replacement character already in s passes through.
				continue
			}
			esc = "�"
		default:
			continue
		}
		if last != i {
			_, err := w.WriteString(s[last:i])
			if err != nil {
				return err
			}
		}
		_, err := w.WriteString(esc)
		if err != nil {
			return err
		}
		last = i + 1
	}
	if last != len(s) {
		_, err := w.WriteString(s[last:])
		return err
	}
	return nil
}

// Attribute escapes the string s, so it can be placed inside a quoted
// value of a whitelisted HTML attribute, and writes it to w.
func Attribute(w io.Writer, s string) error {
	return attributeEscape(newStringWriter(w), s)
}

// AttributeString escapes the string s, so it can be placed inside a
// quoted value of a whitelisted HTML attribute, and returns the escaped
// string.
//
// ASCII letters, digits, ',', '.', '-' and '_' are unchanged. '"', '&',
// '<' and '>' become HTML entities. Control characters in the ranges
// U+0000-U+001F, except tab, newline and carriage return, and
// U+007F-U+009F become '&#xFFFD;', as does each byte of an invalid UTF-8
// sequence. Every other character becomes a numeric hex reference on its
// UTF-16 code units, one reference per code unit. The returned string
// contains only ASCII characters.
//
// See the package documentation for the attribute whitelist.
func AttributeString(s string) string {
	for i := 0; i < len(s); i++ {
		if !isAttrSafe(s[i]) {
			var b strings.Builder
			b.Grow(len(s) + 8)
			_ = attributeEscape(&b, s)
			return b.String()
		}
	}
	return s
}

// isAttrSafe indicates if the byte c passes unescaped in an HTML
// attribute value.
func isAttrSafe(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == ',' || c == '.' || c == '-' || c == '_'
}

// attributeEscape escapes the string s, so it can be placed inside a
// quoted value of a whitelisted HTML attribute, and writes it to w.
func attributeEscape(w stringWriter, s string) error {
	last := 0
	var buf []byte
	for i, c := range s {
		if c < utf8.RuneSelf && isAttrSafe(byte(c)) {
			continue
		}
		size := utf8.RuneLen(c)
		var esc string
		switch {
		case c == '"':
			esc = "&quot;"
		case c == '&':
			esc = "&amp;"
		case c == '<':
			esc = "&lt;"
		case c == '>':
			esc = "&gt;"
		case c < 0x20 && c != '\t' && c != '\n' && c != '\r' || 0x7F <= c && c <= 0x9F:
			esc = "&#xFFFD;"
		case c == utf8.RuneError:
			if _, n := utf8.DecodeRuneInString(s[i:]); n == 1 {
				esc = "&#xFFFD;"
				size = 1
			}
		}
		if esc == "" {
			switch {
			case c < 0x100:
				buf = append(buf[:0], '&', '#', 'x', hexchars[c>>4], hexchars[c&0xF], ';')
			case c < 0x10000:
				buf = appendCharRef(buf[:0], uint16(c))
			default:
				hi, lo := utf16.EncodeRune(c)
				buf = appendCharRef(buf[:0], uint16(hi))
				buf = appendCharRef(buf, uint16(lo))
			}
		}
		if last != i {
			_, err := w.WriteString(s[last:i])
			if err != nil {
				return err
			}
		}
		var err error
		if esc == "" {
			_, err = w.Write(buf)
		} else {
			_, err = w.WriteString(esc)
		}
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

// appendCharRef appends to b the numeric character reference of the
// UTF-16 code unit c, as '&#xHHHH;', and returns the extended buffer.
func appendCharRef(b []byte, c uint16) []byte {
	return append(b, '&', '#', 'x',
		hexchars[c>>12], hexchars[c>>8&0xF], hexchars[c>>4&0xF], hexchars[c&0xF], ';')
}
