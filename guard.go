// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import "strings"

// A guard decides which candidates in a text are already linked:
// either the match sits inside a tag, as in <img src="http://x.com/a.png">,
// or it is text inside an <a> element.
//
// The guard scans the text once, left to right, carrying its state
// from one candidate to the next, so the matches passed to linked
// must be in increasing order.
type guard struct {
	text string
	pos  int // text[:pos] has been scanned for '<' and '>'

	lastTag int // index of last '<' or '>' in text[:pos], or -1
	nextGT  int // index of a '>' at or after the last match end; -1 if unknown, len(text) if none

	// Anchor state: an <a> start tag is <a, an ASCII word boundary,
	// and then anything up to the first '>' on the same line.
	tagScan  int  // next index to look for '<' at
	open     int  // start of an <a tag whose '>' has not been seen, or -1
	openScan int  // next index to look for the end of open at
	inAnchor bool // the last <a> start tag has not been followed by </a>
}

func newGuard(text string) *guard {
	return &guard{text: text, lastTag: -1, nextGT: -1, open: -1}
}

// linked reports whether the match text[start:end] must be left alone.
func (g *guard) linked(start, end int) bool {
	g.advance(start)
	return g.insideTag(end) || g.inAnchor
}

// insideTag reports whether text[:start] ends in a tag that has
// been opened but not closed, and text[end:] goes on to close it.
// It must be called after advance(start).
func (g *guard) insideTag(end int) bool {
	i := g.lastTag
	if i < 0 || g.text[i] != '<' || i == g.pos-1 {
		return false
	}
	if g.nextGT == len(g.text) {
		return false
	}
	if g.nextGT < end {
		if j := strings.IndexByte(g.text[end:], '>'); j >= 0 {
			g.nextGT = end + j
		} else {
			// No '>' is left for any later match either.
			g.nextGT = len(g.text)
			return false
		}
	}
	return true
}

// advance scans text[g.pos:limit], updating the tag and anchor state.
func (g *guard) advance(limit int) {
	if i := strings.LastIndexAny(g.text[g.pos:limit], "<>"); i >= 0 {
		g.lastTag = g.pos + i
	}
	g.pos = limit

	for {
		if g.open >= 0 {
			j := strings.IndexAny(g.text[g.openScan:limit], ">\n")
			if j < 0 {
				g.openScan = limit
				return
			}
			j += g.openScan
			if g.text[j] == '>' {
				g.inAnchor = true
			}
			// Any <a between open and j also ends at j.
			g.tagScan = j + 1
			g.open = -1
		}

		i := strings.IndexByte(g.text[g.tagScan:limit], '<')
		if i < 0 {
			g.tagScan = limit
			return
		}
		p := g.tagScan + i
		rest := g.text[p:limit]
		switch {
		case len(rest) >= 3 && lower(rest[1]) == 'a' && !isASCIIWord(rest[2]):
			g.open = p
			g.openScan = p + 2
		case len(rest) >= 4 && strings.EqualFold(rest[:4], "</a>"):
			g.inAnchor = false
			g.tagScan = p + 4
		case len(rest) < 4 && (len(rest) < 3 && lower(rest[len(rest)-1]) == 'a' || strings.EqualFold(rest, "</a>"[:len(rest)])):
			// Too close to limit to tell; look again next time.
			g.tagScan = p
			return
		default:
			g.tagScan = p + 1
		}
	}
}

func lower(c byte) byte {
	return c | 0x20
}

// isASCIIWord reports whether c is an ASCII word character.
// Non-ASCII bytes count as non-word, as in a regexp \b.
func isASCIIWord(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '_'
}
