// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autolink turns bare URLs in text into HTML links.
//
// The text may already contain HTML. A URL is rewritten only when it is
// not already part of the markup: URLs in tag attributes, as in
// <img src="http://x.com/a.png">, and URLs inside <a> elements are left alone,
// so running [Link] over its own output changes nothing.
//
// A URL starts with ftp://, http://, or https:// (in any case) or with www.,
// and runs up to the next space, '<', non-breaking space, or double quote.
// Trailing punctuation is moved outside the link:
//
//	Go to http://a.com.
//
// becomes
//
//	Go to <a href="http://a.com">http://a.com</a>.
//
// unless it is a closing bracket matched by an opening bracket earlier in the URL,
// as in http://en.wikipedia.org/wiki/Sprite_(computer_graphics).
// A www. link gets http:// prepended in its href attribute but keeps
// the text as written.
//
// The package does no HTML escaping of any kind.
// Callers linking untrusted text must escape it themselves first.
package autolink

import "strings"

// An Attr is an HTML attribute added to every generated <a> tag.
type Attr struct {
	Name  string
	Value string
}

// A Linker rewrites URLs in text as HTML links.
// The zero value is ready to use and produces plain <a href="..."> tags.
//
// A Linker is safe for concurrent use, provided its fields
// are not changed while Link is running.
type Linker struct {
	// Attrs lists attributes to add to each link, in order.
	Attrs []Attr

	// LinkText, if non-nil, computes the text of each link
	// from its URL, as the user wrote it (no http:// added).
	// The result is used verbatim and may contain HTML.
	LinkText func(href string) string

	// Domain, if set, is the host name of the site the text will
	// appear on. Links to that host are printed without
	// any target attribute; see [RemoveTargetIfLocal].
	Domain string
}

// Link returns text with its URLs rewritten as links
// carrying the given attributes.
func Link(text string, attrs ...Attr) string {
	l := &Linker{Attrs: attrs}
	return l.Link(text)
}

// Link returns text with each URL that is not already linked
// rewritten as an <a> element. All other text is copied unchanged.
func (l *Linker) Link(text string) string {
	if text == "" {
		return ""
	}

	// Only a match after some markup can already be linked.
	var g *guard
	if strings.IndexByte(text, '<') >= 0 {
		g = newGuard(text)
	}

	var p printer
	prev := 0
	for c := range candidates(text) {
		p.WriteString(text[prev:c.start])
		prev = c.end
		if g != nil && g.linked(c.start, c.end) {
			p.WriteString(c.text)
			continue
		}
		l.printMatch(&p, c)
	}
	if prev == 0 {
		// No candidates.
		return text
	}
	p.WriteString(text[prev:])
	return p.String()
}

// printMatch prints the link for a candidate that is not already linked.
func (l *Linker) printMatch(p *printer, c candidate) {
	href, punct := trimHref(c.text)

	text := href
	if l.LinkText != nil {
		text = l.LinkText(href)
	}
	if c.scheme == "" {
		href = "http://" + href
	}

	attrs := l.Attrs
	if l.Domain != "" {
		attrs = RemoveTargetIfLocal(href, l.Domain, attrs)
	}
	p.printLink(href, text, attrs, punct)
}
