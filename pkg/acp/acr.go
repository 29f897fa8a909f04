// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package acp implements the Access Control Policy scheme: the ACR
// model, policy resolution, matcher evaluation, and the effective-
// access evaluator.
//
// Everything operates on already-fetched in-memory graphs. Values are
// immutable: mutating operations return new Resource/ACR values and
// never touch their inputs, so callers can cache and retry safely.
package acp

import (
	"sort"
	"strings"

	"github.com/samber/oops"

	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// ACR is a fetched Access Control Resource: the graph of its own
// document plus any referenced external policy documents, keyed by
// document URL (fragment stripped).
type ACR struct {
	// URL is the ACR document's own URL.
	URL string

	// AccessTo is the governed resource's URL. It is assigned at fetch
	// time; the graph alone does not determine it.
	AccessTo string

	// Graph holds the ACR document's statements.
	Graph rdf.Graph

	// Referenced holds graphs of external policy documents fetched in
	// the same bundle, keyed by document URL. A URL that failed to
	// fetch is simply absent; its policies resolve to nil.
	Referenced map[string]rdf.Graph
}

// Resource pairs a resource's server metadata with its ACR, when one
// was advertised and successfully fetched.
type Resource struct {
	Info solid.Info

	// ACR is nil when the resource has no accessible ACR: the server
	// advertised none, or fetching it failed (403, 404, network).
	ACR *ACR
}

// HasAccessibleACR reports whether the resource carries a fetched ACR.
func HasAccessibleACR(r Resource) bool {
	return r.ACR != nil
}

// ACRFrom returns the resource's ACR. Calling it without an accessible
// ACR is a programming error, reported with the resource URL.
func ACRFrom(r Resource) (*ACR, error) {
	if r.ACR == nil {
		return nil, oops.In("acp").
			Code("ACR_REQUIRED").
			With("resource", r.Info.URL).
			Errorf("resource %s has no accessible access control resource", r.Info.URL)
	}
	return r.ACR, nil
}

// SetACR returns a new Resource with the ACR's graph replaced. The
// input resource is not modified.
func SetACR(r Resource, g rdf.Graph) Resource {
	if r.ACR == nil {
		return r
	}
	acr := *r.ACR
	acr.Graph = g
	out := r
	out.ACR = &acr
	return out
}

// PolicyKind selects which policy relation a query or mutation targets.
type PolicyKind int

// PolicyKind constants define the four policy relation kinds.
const (
	PolicyOwn            PolicyKind = iota // own
	PolicyOwnMembers                       // own_members
	PolicyACRSelf                          // acr_self
	PolicyACRSelfMembers                   // acr_self_members
)

var policyKindStrings = [...]string{
	"own",
	"own_members",
	"acr_self",
	"acr_self_members",
}

func (k PolicyKind) String() string {
	if k >= 0 && int(k) < len(policyKindStrings) {
		return policyKindStrings[k]
	}
	return "unknown"
}

// relation returns the predicate carrying policy references for the kind.
func (k PolicyKind) relation() string {
	switch k {
	case PolicyOwn:
		return rdf.ACPApply
	case PolicyOwnMembers:
		return rdf.ACPApplyMembers
	case PolicyACRSelf:
		return rdf.ACPAccess
	case PolicyACRSelfMembers:
		return rdf.ACPAccessMembers
	}
	return ""
}

// onACRSubject reports whether the kind's relation lives on the ACR's
// own subject node rather than inside a typed Access Control node.
func (k PolicyKind) onACRSubject() bool {
	return k == PolicyACRSelf || k == PolicyACRSelfMembers
}

// accessControlThings returns the typed Access Control nodes that the
// ACR's own subject references via accessControl or memberAccessControl.
// A node missing either the type or the back-reference is not an
// Access Control and is skipped.
func accessControlThings(acr *ACR) []*rdf.Thing {
	self := rdf.GetThing(acr.Graph, acr.URL)
	if self == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []*rdf.Thing
	for _, rel := range []string{rdf.ACPAccessControlRel, rdf.ACPMemberAccessControl} {
		for _, url := range self.IRIs(rel) {
			if seen[url] {
				continue
			}
			seen[url] = true
			thing := rdf.GetThing(acr.Graph, url)
			if thing == nil || !thing.HasIRI(rdf.RDFType, rdf.ACPAccessControl) {
				continue
			}
			out = append(out, thing)
		}
	}
	return out
}

// PolicyURLs collects the de-duplicated policy URLs for the given kind.
// For the own kinds it reads the matching relation off every Access
// Control node; for the ACR-self kinds it reads the relation off the
// ACR's own subject node. The result is sorted so callers iterate
// deterministically; set semantics make insertion order irrelevant.
func PolicyURLs(r Resource, kind PolicyKind) []string {
	if r.ACR == nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	add := func(urls []string) {
		for _, u := range urls {
			if !seen[u] {
				seen[u] = true
				out = append(out, u)
			}
		}
	}

	if kind.onACRSubject() {
		if self := rdf.GetThing(r.ACR.Graph, r.ACR.URL); self != nil {
			add(self.IRIs(kind.relation()))
		}
	} else {
		for _, control := range accessControlThings(r.ACR) {
			add(control.IRIs(kind.relation()))
		}
	}
	sort.Strings(out)
	return out
}

// documentURL strips the fragment from a URL.
func documentURL(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i]
	}
	return url
}
