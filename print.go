// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import "bytes"

// A printer accumulates the rewritten text.
type printer struct {
	buf bytes.Buffer
}

func (p *printer) WriteStrings(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

func (p *printer) WriteString(s string) (int, error) {
	return p.buf.WriteString(s)
}

func (p *printer) String() string {
	return p.buf.String()
}

// printLink prints the anchor for href followed by the punctuation
// that trimHref removed from it.
// Nothing is escaped: href, text, and attrs are printed as given.
func (p *printer) printLink(href, text string, attrs []Attr, punct []string) {
	p.WriteStrings(`<a href="`, href, `"`)
	p.printAttrs(attrs)
	p.WriteStrings(">", text, "</a>")
	p.printPunct(punct)
}

// printAttrs prints attrs in order, each as a space and name="value".
func (p *printer) printAttrs(attrs []Attr) {
	for _, a := range attrs {
		p.WriteStrings(" ", a.Name, `="`, a.Value, `"`)
	}
}

// printPunct prints trimmed punctuation in its original order.
// punct holds the characters in the order they were removed
// from the end of the match, so it is printed backward.
func (p *printer) printPunct(punct []string) {
	for i := len(punct) - 1; i >= 0; i-- {
		p.buf.WriteString(punct[i])
	}
}
