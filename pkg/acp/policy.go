// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import (
	"sort"

	"github.com/podward/podward/internal/rdf"
)

// Policy is a resolved view of one policy node: its allow/deny mode
// sets and the three matcher reference sets.
type Policy struct {
	URL    string
	Allow  []string // mode IRIs (acl:Read, acl:Append, acl:Write)
	Deny   []string
	AllOf  []string // matcher URLs; every one must match
	AnyOf  []string // matcher URLs; empty means not restricting
	NoneOf []string // matcher URLs; none may match
}

// Allows reports whether the policy's allow set includes the mode IRI.
func (p *Policy) Allows(mode string) bool { return contains(p.Allow, mode) }

// Denies reports whether the policy's deny set includes the mode IRI.
func (p *Policy) Denies(mode string) bool { return contains(p.Deny, mode) }

// MatcherURLs returns the union of the policy's three matcher sets.
func (p *Policy) MatcherURLs() []string {
	seen := map[string]bool{}
	var out []string
	for _, set := range [][]string{p.AllOf, p.AnyOf, p.NoneOf} {
		for _, u := range set {
			if !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}
	sort.Strings(out)
	return out
}

// ResolvePolicy looks the policy URL up in the bundle: the ACR's own
// graph first, then the referenced external document for that URL.
// Returns nil when the URL is not present as a statement subject —
// the policy lives elsewhere and was not fetched, or fetching failed.
func ResolvePolicy(acr *ACR, url string) *Policy {
	thing := lookupThing(acr, url)
	if thing == nil {
		return nil
	}
	return &Policy{
		URL:    url,
		Allow:  thing.IRIs(rdf.ACPAllow),
		Deny:   thing.IRIs(rdf.ACPDeny),
		AllOf:  thing.IRIs(rdf.ACPAllOf),
		AnyOf:  thing.IRIs(rdf.ACPAnyOf),
		NoneOf: thing.IRIs(rdf.ACPNoneOf),
	}
}

// lookupThing finds a subject in the ACR graph or, for external URLs,
// in the referenced document fetched for it.
func lookupThing(acr *ACR, url string) *rdf.Thing {
	if thing := rdf.GetThing(acr.Graph, url); thing != nil {
		return thing
	}
	doc := documentURL(url)
	if doc == documentURL(acr.URL) {
		return nil
	}
	external, ok := acr.Referenced[doc]
	if !ok {
		return nil
	}
	return rdf.GetThing(external, url)
}

// resolvePolicies resolves each URL, dropping the unresolvable ones.
// An unresolved policy contributes nothing to access computation; it
// does not by itself make the ACR's policies inaccessible.
func resolvePolicies(acr *ACR, urls []string) []*Policy {
	out := make([]*Policy, 0, len(urls))
	for _, u := range urls {
		if p := ResolvePolicy(acr, u); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
