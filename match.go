// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"iter"
	"regexp"
)

// urlRE matches a URL-shaped run of text: an ftp, http, or https scheme
// followed by //, or a www. prefix, and then everything up to the next
// space, '<', non-breaking space, or double quote.
//
// The space set is \t \n \v \f \r and ' ', not Go's \s, which omits \v.
// Submatch 1 is the scheme including its colon, if there is one.
//
// Package regexp guarantees linear-time matching,
// so there is no input that makes the scan backtrack.
var urlRE = regexp.MustCompile(`(?i)(?:((?:ftp|http|https):)//|www\.)[^ \t\n\v\f\r<\x{00A0}"]+`)

// A candidate is a URL-shaped substring of the input,
// found before any context check or trimming.
type candidate struct {
	text   string // matched text, text[start:end] of the input
	scheme string // "http:", "HTtP:", ...; "" for a www. match
	start  int
	end    int
}

// candidates returns the URL-shaped substrings of s,
// leftmost first and non-overlapping.
//
// The sequence is lazy: each match is found only when the
// previous one has been consumed.
func candidates(s string) iter.Seq[candidate] {
	return func(yield func(candidate) bool) {
		for pos := 0; pos < len(s); {
			// urlRE has no anchors or word boundaries,
			// so matching against the suffix is the same as
			// resuming a scan of all of s.
			loc := urlRE.FindStringSubmatchIndex(s[pos:])
			if loc == nil {
				return
			}
			c := candidate{
				start: pos + loc[0],
				end:   pos + loc[1],
			}
			if loc[2] >= 0 {
				c.scheme = s[pos+loc[2] : pos+loc[3]]
			}
			c.text = s[c.start:c.end]
			if !yield(c) {
				return
			}
			pos = c.end
		}
	}
}
