// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import (
	"time"

	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// ActorAccess computes the effective five-mode access vector for one
// actor on the resource. The second return is false when the answer
// cannot be determined: the resource has no accessible ACR, or the
// ACR references policies outside itself (fail-closed — unknown access
// is never reported as "no access" or "full access").
//
// The computation is a pure function of the fetched bundle and is
// independent of iteration order:
//
//  1. Resolve the ACR-self and own policy sets.
//  2. Allow pass: any applicable policy granting a mode sets it to
//     Granted (monotonic union).
//  3. Deny pass, strictly after all allows: any applicable policy
//     denying a mode overwrites it to Denied. Deny therefore always
//     wins when the same mode is both allowed and denied; that is a
//     deliberate policy design decision, not an accident.
//
// Modes untouched by any applicable policy remain Unset.
func ActorAccess(r Resource, actor solid.Actor) (solid.Access, bool) {
	start := time.Now()
	if !HasAccessibleACR(r) || HasInaccessiblePolicies(r) {
		recordEvaluation(time.Since(start), outcomeIndeterminate)
		return solid.Access{}, false
	}

	acrSelf := applicablePolicies(r.ACR, PolicyURLs(r, PolicyACRSelf), actor)
	own := applicablePolicies(r.ACR, PolicyURLs(r, PolicyOwn), actor)

	var access solid.Access

	// Allow pass.
	for _, p := range acrSelf {
		if p.Allows(rdf.ACLRead) {
			access.ControlRead = solid.Granted
		}
		if p.Allows(rdf.ACLWrite) {
			access.ControlWrite = solid.Granted
		}
	}
	for _, p := range own {
		if p.Allows(rdf.ACLRead) {
			access.Read = solid.Granted
		}
		if p.Allows(rdf.ACLAppend) {
			access.Append = solid.Granted
		}
		if p.Allows(rdf.ACLWrite) {
			access.Write = solid.Granted
		}
	}

	// Deny pass. Runs unconditionally after the allow pass and
	// unconditionally overwrites.
	for _, p := range acrSelf {
		if p.Denies(rdf.ACLRead) {
			access.ControlRead = solid.Denied
		}
		if p.Denies(rdf.ACLWrite) {
			access.ControlWrite = solid.Denied
		}
	}
	for _, p := range own {
		if p.Denies(rdf.ACLRead) {
			access.Read = solid.Denied
		}
		if p.Denies(rdf.ACLAppend) {
			access.Append = solid.Denied
		}
		if p.Denies(rdf.ACLWrite) {
			access.Write = solid.Denied
		}
	}

	recordEvaluation(time.Since(start), outcomeResolved)
	return access, true
}

// ActorAccessAll computes per-actor access for every distinct actor ID
// appearing in any matcher reachable from the active policies, for the
// given relation kind. Propagates the same indeterminate conditions as
// ActorAccess. Sentinel agent IRIs are skipped for non-agent relations,
// where they carry no meaning.
func ActorAccessAll(r Resource, kind solid.ActorKind) (map[string]solid.Access, bool) {
	if !HasAccessibleACR(r) || HasInaccessiblePolicies(r) {
		return nil, false
	}

	ids := map[string]bool{}
	for _, policyKind := range []PolicyKind{PolicyOwn, PolicyACRSelf} {
		for _, p := range resolvePolicies(r.ACR, PolicyURLs(r, policyKind)) {
			for _, matcherURL := range p.MatcherURLs() {
				m := ResolveMatcher(r.ACR, matcherURL)
				if m == nil {
					continue
				}
				for _, id := range m.actorIDs(kind) {
					if kind != solid.ActorAgent && (solid.Actor{Kind: kind, ID: id}).IsSentinel() {
						continue
					}
					ids[id] = true
				}
			}
		}
	}

	out := make(map[string]solid.Access, len(ids))
	for id := range ids {
		access, ok := ActorAccess(r, solid.Actor{Kind: kind, ID: id})
		if !ok {
			return nil, false
		}
		out[id] = access
	}
	return out, true
}

// applicablePolicies resolves the policy URLs and keeps those that
// apply to the actor.
func applicablePolicies(acr *ACR, urls []string, actor solid.Actor) []*Policy {
	var out []*Policy
	for _, p := range resolvePolicies(acr, urls) {
		if policyApplies(acr, p, actor) {
			out = append(out, p)
		}
	}
	return out
}

// policyApplies implements the allOf/anyOf/noneOf semantics: every
// allOf matcher matches (vacuously true when the set is empty), at
// least one anyOf matcher matches unless the set is empty, and no
// noneOf matcher matches. A policy with all three sets empty applies
// universally. An unresolvable matcher matches nothing.
func policyApplies(acr *ACR, p *Policy, actor solid.Actor) bool {
	for _, url := range p.AllOf {
		m := ResolveMatcher(acr, url)
		if m == nil || !MatcherMatches(m, actor) {
			return false
		}
	}
	if len(p.AnyOf) > 0 {
		any := false
		for _, url := range p.AnyOf {
			if m := ResolveMatcher(acr, url); m != nil && MatcherMatches(m, actor) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, url := range p.NoneOf {
		if m := ResolveMatcher(acr, url); m != nil && MatcherMatches(m, actor) {
			return false
		}
	}
	return true
}
