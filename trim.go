// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// wordTable holds the non-ASCII word characters:
// letters, marks, decimal and letter numbers, and connector punctuation.
var wordTable = rangetable.Merge(unicode.L, unicode.M, unicode.Nd, unicode.Nl, unicode.Pc)

// isWord reports whether r is a word character.
func isWord(r rune) bool {
	if r < utf8.RuneSelf {
		return 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '_'
	}
	return unicode.Is(wordTable, r)
}

// isTrailingPunct reports whether r, found at the end of a match,
// is punctuation that should not be part of the URL.
// Query strings often end in = or &, and paths in / or -,
// so those stay.
func isTrailingPunct(r rune) bool {
	switch r {
	case '/', '-', '=', '&':
		return false
	}
	return !isWord(r)
}

// openBracket maps each closing bracket to its opening bracket.
var openBracket = map[byte]byte{
	']': '[',
	')': '(',
	'}': '{',
}

// trimHref splits the matched text raw into the URL and the
// trailing punctuation that follows it.
// The punctuation is returned in the order it was removed,
// which is right to left; see [printer.printPunct].
//
// A trailing closing bracket is kept when the URL holds more of
// the matching opening bracket than of the closing one, as in
// http://en.wikipedia.org/wiki/Sprite_(computer_graphics).
// Keeping a bracket ends the trimming.
func trimHref(raw string) (href string, punct []string) {
	// n counts the ASCII bytes left in href,
	// so that checking the brackets does not rescan it.
	var n [utf8.RuneSelf]int
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c < utf8.RuneSelf {
			n[c]++
		}
	}

	href = raw
	for href != "" {
		r, size := utf8.DecodeLastRuneInString(href)
		if !isTrailingPunct(r) {
			break
		}
		c := href[len(href)-size:]
		href = href[:len(href)-size]
		if r < utf8.RuneSelf {
			n[r]--
			if open, ok := openBracket[byte(r)]; ok && n[open] > n[r] {
				return href + c, punct
			}
		}
		punct = append(punct, c)
	}
	return href, punct
}
