// Copyright 2021 The Escaper Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package escaper

import "io"

const hexchars = "0123456789ABCDEF"

type stringWriter interface {
	Write(b []byte) (int, error)
	WriteString(s string) (int, error)
}

type stringWriterWrapper struct {
	w io.Writer
}

func (wr stringWriterWrapper) Write(b []byte) (int, error) {
	return wr.w.Write(b)
}

func (wr stringWriterWrapper) WriteString(s string) (int, error) {
	return wr.w.Write([]byte(s))
}

func newStringWriter(wr io.Writer) stringWriter {
	if sw, ok := wr.(stringWriter); ok {
		return sw
	}
	return stringWriterWrapper{wr}
}
