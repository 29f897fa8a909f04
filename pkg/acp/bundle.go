// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import "sort"

// ExternalDocumentURLs returns the document URLs (fragments stripped)
// of every policy or matcher the ACR references outside its own
// document. The fetch layer resolves these concurrently into the
// bundle; a failed fetch leaves its policies unresolved, which is
// tolerated, while the URLs themselves still count as inaccessible
// for the safety check regardless of fetch success.
func ExternalDocumentURLs(r Resource) []string {
	if r.ACR == nil {
		return nil
	}
	acrDoc := documentURL(r.ACR.URL)
	seen := map[string]bool{}
	var out []string
	add := func(url string) {
		doc := documentURL(url)
		if doc != acrDoc && !seen[doc] {
			seen[doc] = true
			out = append(out, doc)
		}
	}

	kinds := []PolicyKind{PolicyOwn, PolicyOwnMembers, PolicyACRSelf, PolicyACRSelfMembers}
	for _, kind := range kinds {
		for _, policyURL := range PolicyURLs(r, kind) {
			add(policyURL)
			if p := ResolvePolicy(r.ACR, policyURL); p != nil {
				for _, matcherURL := range p.MatcherURLs() {
					add(matcherURL)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}
