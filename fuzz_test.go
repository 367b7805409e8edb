// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func Fuzz(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			f.Add(string(a.Files[i].Data))
		}
	}
	f.Fuzz(func(t *testing.T, s string) {
		out := Link(s)
		if !urlRE.MatchString(s) {
			if out != s {
				t.Fatalf("Link(%q) = %q, want unchanged", s, out)
			}
			return
		}
		if len(out) < len(s) {
			t.Fatalf("Link(%q) = %q, shorter than input", s, out)
		}

		// The candidates and the pieces trimHref cuts them into
		// must cover s exactly.
		var rebuilt strings.Builder
		pos := 0
		g := newGuard(s)
		for c := range candidates(s) {
			if have, want := g.linked(c.start, c.end), alreadyLinkedRE(s[:c.start], s[c.end:]); have != want {
				t.Fatalf("%q: match at %d: linked = %v, want %v", s, c.start, have, want)
			}
			rebuilt.WriteString(s[pos:c.start])
			pos = c.end
			href, punct := trimHref(c.text)
			if !strings.HasPrefix(c.text, href) {
				t.Fatalf("trimHref(%q) = %q, not a prefix", c.text, href)
			}
			var p printer
			p.printPunct(punct)
			if href+p.String() != c.text {
				t.Fatalf("trimHref(%q) = %q, %q, does not rebuild match", c.text, href, p.String())
			}
			rebuilt.WriteString(c.text)
		}
		rebuilt.WriteString(s[pos:])
		if rebuilt.String() != s {
			t.Fatalf("candidates(%q) do not cover input", s)
		}
	})
}
