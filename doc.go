// Copyright 2021 The Escaper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package escaper escapes untrusted text for insertion into a specific
// syntactic context of a generated document.
//
// Each context has its own escaping function:
//
//	Text       HTML element content
//	Attribute  a quoted value of a whitelisted HTML attribute
//	CSS        a quoted CSS property value
//	JS         a single or double quoted JavaScript string literal
//	URLParam   a URL query string parameter value
//
// The functions are pure: same input, same output, no state, no I/O.
// They are safe for concurrent use. They never fail on text input; the
// writer variants return only the error of the writer they are given.
//
// The caller picks the function that matches the context where the text
// will be embedded. The package does not validate or sanitize: it does
// not detect malicious input, does not validate URL schemes, and does
// not make unsafe contexts safe. An attribute outside the whitelist, a
// CSS url() or behavior value, an unquoted JavaScript context and a
// whole URL remain unsafe no matter how their content is escaped.
//
// Attribute is safe only for the values of these attributes:
//
//	align, alink, alt, bgcolor, border, cellpadding, cellspacing,
//	class, color, cols, colspan, coords, dir, face, height, hspace,
//	ismap, lang, marginheight, marginwidth, multiple, nohref,
//	noresize, noshade, nowrap, ref, rel, rev, rows, rowspan,
//	scrolling, shape, span, summary, tabindex, title, usemap,
//	valign, value, vlink, vspace, width
//
// The whitelist is a contract with the caller, not a check made by the
// function.
//
// Escaping is not idempotent. Applying Text to its own output escapes
// the ampersand of each entity again: "&amp;" becomes "&amp;amp;".
//
// Invalid UTF-8 is never an error. Text and Attribute replace each
// invalid byte with the Unicode replacement character U+FFFD, escaped
// as the context requires; CSS and JS do the same. URLParam encodes
// bytes as they are, so that form decoding its output returns the
// original byte sequence exactly.
package escaper
