// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package config

import (
	"net/url"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// Allowlist matches pod origins against the configured glob patterns.
// A nil or empty allowlist permits every origin.
type Allowlist struct {
	globs []glob.Glob
}

// CompileAllowlist compiles the origin glob patterns. Patterns match
// whole origins, e.g. "https://*.pod.example" or "https://pod.example:*".
func CompileAllowlist(patterns []string) (*Allowlist, error) {
	a := &Allowlist{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, oops.In("config").
				Code("ORIGIN_PATTERN").
				With("pattern", pattern).
				Wrapf(err, "compiling origin pattern %q", pattern)
		}
		a.globs = append(a.globs, g)
	}
	return a, nil
}

// Allows reports whether the URL's origin passes the allowlist.
func (a *Allowlist) Allows(rawURL string) bool {
	if a == nil || len(a.globs) == 0 {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	origin := u.Scheme + "://" + u.Host
	for _, g := range a.globs {
		if g.Match(origin) {
			return true
		}
	}
	return false
}
