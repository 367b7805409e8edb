// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autolink

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// RemoveTargetIfLocal returns attrs without any target attribute
// if href points at domain, and attrs unchanged otherwise.
// The attrs slice itself is never modified.
//
// A link is local when its host name equals domain exactly,
// ignoring case and after mapping internationalized names
// to their ASCII form, so that subdomains and other sites
// keep opening in whatever target the caller chose.
func RemoveTargetIfLocal(href, domain string, attrs []Attr) []Attr {
	if !isLocal(href, domain) {
		return attrs
	}
	var out []Attr
	for _, a := range attrs {
		if !strings.EqualFold(a.Name, "target") {
			out = append(out, a)
		}
	}
	return out
}

// isLocal reports whether the host of href is domain.
func isLocal(href, domain string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" || domain == "" {
		return false
	}
	return strings.EqualFold(asciiHost(host), asciiHost(domain))
}

// asciiHost returns the ASCII (punycode) form of host,
// or host itself if it is not a valid domain name.
func asciiHost(host string) string {
	host = strings.TrimSuffix(host, ".")
	if a, err := idna.Lookup.ToASCII(host); err == nil {
		return a
	}
	return host
}
