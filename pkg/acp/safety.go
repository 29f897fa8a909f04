// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import "strings"

// HasInaccessiblePolicies reports whether any active policy, or any
// matcher referenced by one, lives outside the ACR document itself.
//
// A policy hosted in a separate resource may be shared across many
// resources; interpreting it correctly would require data the caller
// has not fetched. The evaluator therefore refuses to answer instead
// of approximating: this check runs before every effective-access
// computation, and tripping it makes those computations report
// "cannot determine". Skipping it risks silently wrong access
// reporting, which is why ActorAccess performs it unconditionally.
//
// Active policies are the own and ACR-self kinds; member policies
// govern other resources and are not consulted here.
func HasInaccessiblePolicies(r Resource) bool {
	if r.ACR == nil {
		return false
	}
	for _, kind := range []PolicyKind{PolicyOwn, PolicyACRSelf} {
		for _, policyURL := range PolicyURLs(r, kind) {
			if !withinACR(r.ACR, policyURL) {
				return true
			}
			policy := ResolvePolicy(r.ACR, policyURL)
			if policy == nil {
				// Local but absent: unresolved, not inaccessible.
				continue
			}
			for _, matcherURL := range policy.MatcherURLs() {
				if !withinACR(r.ACR, matcherURL) {
					return true
				}
			}
		}
	}
	return false
}

// withinACR reports whether the URL is a fragment of the ACR document,
// by string prefix on the ACR's own URL.
func withinACR(acr *ACR, url string) bool {
	return strings.HasPrefix(url, acr.URL)
}
