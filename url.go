// Copyright 2021 The Escaper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package escaper

import (
	"io"
	"strings"
)

// URLParam escapes the string s, so it can be placed inside a URL query
// string as a parameter value, and writes it to w.
func URLParam(w io.Writer, s string) error {
	return urlParamEscape(newStringWriter(w), s)
}

// URLParamString escapes the string s, so it can be placed inside a URL
// query string as a parameter value, and returns the escaped string.
//
// ASCII letters, digits, '-', '.' and '_' are unchanged, space becomes
// '+' and every other byte becomes '%HH' with uppercase hex digits.
// Form decoding the escaped string returns the bytes of s exactly.
//
// It escapes a single parameter value, not a whole URL: escaping a URL
// with it would encode the scheme, host and path delimiters.
func URLParamString(s string) string {
	for i := 0; i < len(s); i++ {
		if !isURLParamSafe(s[i]) {
			var b strings.Builder
			b.Grow(len(s) + 6)
			_ = urlParamEscape(&b, s)
			return b.String()
		}
	}
	return s
}

// isURLParamSafe indicates if the byte c passes unescaped in a URL
// query parameter value.
func isURLParamSafe(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_'
}

// urlParamEscape escapes the string s, so it can be placed inside a URL
// query string as a parameter value, and writes it to w.
func urlParamEscape(w stringWriter, s string) error {
	last := 0
	var buf []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURLParamSafe(c) {
			continue
		}
		var esc string
		if c == ' ' {
			esc = "+"
		} else {
			if buf == nil {
				buf = make([]byte, 3)
				buf[0] = '%'
			}
			buf[1] = hexchars[c>>4]
			buf[2] = hexchars[c&0xF]
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
		last = i + 1
	}
	if last != len(s) {
		_, err := w.WriteString(s[last:])
		return err
	}
	return nil
}
