// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

func repf(f func(int) string, n int) string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return strings.Join(out, "")
}

// wwwRun is rep("www.a.com,", 50000) without its final comma.
var wwwRun = strings.TrimSuffix(rep("www.a.com,", 50000), ",")

var bigTests = []struct {
	name string
	in   string
	out  string
}{
	{
		"long url",
		"http://" + rep("a", 1<<20),
		generate("http://"+rep("a", 1<<20), ""),
	},
	{
		"many urls",
		rep("http://a.com/x. ", 50000),
		rep(generate("http://a.com/x", "")+". ", 50000),
	},
	{
		"many www",
		rep("www.a.com,", 50000),
		generate(wwwRun, "http://"+wwwRun) + ",",
	},
	{
		"long trailing punctuation",
		"http://a.com/" + rep(".,;", 100000),
		generate("http://a.com/", "") + rep(".,;", 100000),
	},
	{
		"many closing brackets",
		"http://a.com/" + rep(")", 100000),
		generate("http://a.com/", "") + rep(")", 100000),
	},
	{
		"balanced brackets",
		"http://a.com/" + rep("(", 50000) + rep(")", 50001),
		generate("http://a.com/"+rep("(", 50000)+rep(")", 50000), "") + ")",
	},
	{
		"many schemes",
		rep("http:", 100000),
		rep("http:", 100000),
	},
	{
		"almost urls",
		rep("http:/ www ", 50000),
		rep("http:/ www ", 50000),
	},
	{
		"unclosed tag",
		"<" + rep("x http://a.com ", 50000),
		"<" + rep("x "+generate("http://a.com", "")+" ", 50000),
	},
	{
		"many anchors",
		rep(`<a href="http://a.com">http://a.com</a> `, 50000),
		rep(`<a href="http://a.com">http://a.com</a> `, 50000),
	},
	{
		"unclosed anchors",
		rep("<a http://a.com ", 50000),
		rep("<a "+generate("http://a.com", "")+" ", 50000),
	},
	{
		"anchors broken by newlines",
		rep("<a\nhttp://a.com ", 50000),
		rep("<a\n"+generate("http://a.com", "")+" ", 50000),
	},
	{
		"many paragraphs",
		repf(func(i int) string { return fmt.Sprintf("<p>http://a.com/%d</p>\n", i) }, 50000),
		repf(func(i int) string { return fmt.Sprintf("<p>%s</p>\n", generate(fmt.Sprintf("http://a.com/%d", i), "")) }, 50000),
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			out := Link(tt.in)
			if out != tt.out {
				t.Fatalf("%s: Link(%q):\nhave %q\nwant %q", tt.name, compress(tt.in), compress(out), compress(tt.out))
			}
		})
	}
}

func bench(b *testing.B, text string) {
	for i := 0; i < b.N; i++ {
		_ = Link(text)
	}
	b.SetBytes(int64(len(text)))
}

func BenchmarkPlain(b *testing.B) {
	bench(b, rep("Some text with a link to http://example.com/page. ", 1000))
}

func BenchmarkHTML(b *testing.B) {
	bench(b, repf(func(i int) string {
		return fmt.Sprintf(`<p>See <a href="http://example.com/%d">this</a> or www.example.com/%d.</p>`+"\n", i, i)
	}, 200))
}

func BenchmarkNoLinks(b *testing.B) {
	bench(b, rep("Nothing to see here, move along. ", 1000))
}
