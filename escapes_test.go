// Copyright 2021 The Escaper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package escaper

import (
	"io"
	"strings"
	"testing"
)

var textCases = []struct {
	src      string
	expected string
}{
	{"", ""},
	{"abc", "abc"},
	{"a&b", "a&amp;b"},
	{"<abc", "&lt;abc"},
	{"abc>", "abc&gt;"},
	{`"'&<>/`, "&quot;&#039;&amp;&lt;&gt;&#x2F;"},
	{"<script>alert('xss')</script>", "&lt;script&gt;alert(&#039;xss&#039;)&lt;&#x2F;script&gt;"},
	{`<a href="https://domain">click</a>`, "&lt;a href=&quot;https:&#x2F;&#x2F;domain&quot;&gt;click&lt;&#x2F;a&gt;"},
	{"a = b", "a = b"},
	{"càfé", "càfé"},
	{"日本語", "日本語"},
	{"&amp;", "&amp;amp;"},
	{"�", "�"},
	{"\xff", "�"},
	{"a\x80b", "a�b"},
}

func TestText(t *testing.T) {
	for _, cas := range textCases {
		got := TextString(cas.src)
		if got != cas.expected {
			t.Fatalf("src: %q: expecting %q, got %q", cas.src, cas.expected, got)
		}
	}
}

var attributeCases = []struct {
	src      string
	expected string
}{
	{"", ""},
	{"abc,.-_", "abc,.-_"},
	{"ABC019", "ABC019"},
	{`"&<>`, "&quot;&amp;&lt;&gt;"},
	{"'", "&#x27;"},
	{" ", "&#x20;"},
	{"=`", "&#x3D;&#x60;"},
	{"\t\n\r", "&#x09;&#x0A;&#x0D;"},
	{"\x00", "&#xFFFD;"},
	{"\x1f", "&#xFFFD;"},
	{"\x7f", "&#xFFFD;"},
	{"", "&#xFFFD;"},
	{"", "&#xFFFD;"},
	{"é", "&#xE9;"},
	{"ÿ", "&#xFF;"},
	{"Ā", "&#x0100;"},
	{"€", "&#x20AC;"},
	{"�", "&#xFFFD;"},
	{"😀", "&#xD83D;&#xDE00;"},
	{"\xc3(", "&#xFFFD;&#x28;"},
	{"top.value", "top.value"},
	{`x onclick=alert(1)`, "x&#x20;onclick&#x3D;alert&#x28;1&#x29;"},
}

func TestAttribute(t *testing.T) {
	for _, cas := range attributeCases {
		got := AttributeString(cas.src)
		if got != cas.expected {
			t.Fatalf("src: %q: expecting %q, got %q", cas.src, cas.expected, got)
		}
	}
}

var cssCases = []struct {
	src      string
	expected string
}{
	{"", ""},
	{"abc123", "abc123"},
	{"red", "red"},
	{`;"'&<>`, `\3B \22 \27 \26 \3C \3E `},
	{"\x00", `\0 `},
	{" ", `\20 `},
	{"a b", `a\20 b`},
	{"-_", `\2D \5F `},
	{`\`, `\5C `},
	{"\n", `\A `},
	{"é", `\E9 `},
	{"€", `\20AC `},
	{"😀", `\D83DDE00 `},
	{"�", `\FFFD `},
	{"\xff", `\FFFD `},
	{"expression(alert(1))", `expression\28 alert\28 1\29 \29 `},
}

func TestCSS(t *testing.T) {
	for _, cas := range cssCases {
		got := CSSString(cas.src)
		if got != cas.expected {
			t.Fatalf("src: %q: expecting %q, got %q", cas.src, cas.expected, got)
		}
	}
}

var jsCases = []struct {
	src      string
	expected string
}{
	{"", ""},
	{"abc,._", "abc,._"},
	{`"&<>`, `\x22\x26\x3C\x3E`},
	{"'", `\x27`},
	{" ", `\x20`},
	{"\n\t", `\x0A\x09`},
	{`\`, `\x5C`},
	{"é", `\xE9`},
	{"ÿ", `\xFF`},
	{"Ā", `\u0100`},
	{"€", `\u20AC`},
	{"\u2028\u2029", `\u2028\u2029`},
	{"😀", `\uD83D\uDE00`},
	{"\xff", `\uFFFD`},
	{"alert(1)", `alert\x281\x29`},
}

func TestJS(t *testing.T) {
	for _, cas := range jsCases {
		got := JSString(cas.src)
		if got != cas.expected {
			t.Fatalf("src: %q: expecting %q, got %q", cas.src, cas.expected, got)
		}
	}
}

var urlParamCases = []struct {
	src      string
	expected string
}{
	{"", ""},
	{"abc-._", "abc-._"},
	{"a b", "a+b"},
	{"a/b+c?d#", "a%2Fb%2Bc%3Fd%23"},
	{"~", "%7E"},
	{"100%", "100%25"},
	{"€", "%E2%82%AC"},
	{"Привет Мир", "%D0%9F%D1%80%D0%B8%D0%B2%D0%B5%D1%82+%D0%9C%D0%B8%D1%80"},
	{"\xff\xfe", "%FF%FE"},
}

func TestURLParam(t *testing.T) {
	for _, cas := range urlParamCases {
		got := URLParamString(cas.src)
		if got != cas.expected {
			t.Fatalf("src: %q: expecting %q, got %q", cas.src, cas.expected, got)
		}
	}
}

func TestWriterVariants(t *testing.T) {
	escapes := []struct {
		name string
		w    func(io.Writer, string) error
		s    func(string) string
	}{
		{name: "Text", w: Text, s: TextString},
		{name: "Attribute", w: Attribute, s: AttributeString},
		{name: "CSS", w: CSS, s: CSSString},
		{name: "JS", w: JS, s: JSString},
		{name: "URLParam", w: URLParam, s: URLParamString},
	}
	inputs := []string{"", "abc", `"'&<>/`, " \t\n", "càfé €", "😀", "\xff\xc3("}
	for _, esc := range escapes {
		for _, src := range inputs {
			var b strings.Builder
			err := esc.w(&b, src)
			if err != nil {
				t.Fatalf("%s: src: %q: unexpected error %q", esc.name, src, err)
			}
			if got, want := b.String(), esc.s(src); got != want {
				t.Fatalf("%s: src: %q: expecting %q, got %q", esc.name, src, want, got)
			}
		}
	}
}

type failWriter struct{}

func (failWriter) Write(b []byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriterError(t *testing.T) {
	escapes := map[string]func(io.Writer, string) error{
		"Text":      Text,
		"Attribute": Attribute,
		"CSS":       CSS,
		"JS":        JS,
		"URLParam":  URLParam,
	}
	for name, esc := range escapes {
		if err := esc(failWriter{}, "< a <"); err != io.ErrClosedPipe {
			t.Fatalf("%s: expecting %q, got %v", name, io.ErrClosedPipe, err)
		}
	}
}
