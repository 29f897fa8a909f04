// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import (
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// defaultAccessControlFragment names the Access Control node created
// when an ACR has none.
const defaultAccessControlFragment = "#defaultAccessControl"

// newFragmentID mints a sortable fragment identifier for policies and
// matchers created by this library.
var newFragmentID = func(prefix string) string {
	return "#" + prefix + "-" + ulid.Make().String()
}

// AddPolicyURL returns a new Resource whose ACR references the policy
// URL through the given relation kind. For the own kinds the reference
// is added to an Access Control node (created when none exists); for
// the ACR-self kinds it is added to the ACR's own subject node.
func AddPolicyURL(r Resource, kind PolicyKind, policyURL string) (Resource, error) {
	acr, err := ACRFrom(r)
	if err != nil {
		return r, err
	}
	g := acr.Graph

	if kind.onACRSubject() {
		self := rdf.GetThing(g, acr.URL)
		if self == nil {
			self = rdf.NewThing(acr.URL).AddIRI(rdf.RDFType, rdf.ACPAccessControlResource)
		}
		g = rdf.SetThing(g, self.AddIRI(kind.relation(), policyURL))
		return SetACR(r, g), nil
	}

	control, g := ensureAccessControl(acr, g)
	g = rdf.SetThing(g, control.AddIRI(kind.relation(), policyURL))
	return SetACR(r, g), nil
}

// RemovePolicyURL returns a new Resource with the policy URL removed
// from the given relation kind only. Other relation kinds on the same
// node are left untouched, so removing an own policy never disturbs a
// member policy sharing the Access Control node.
func RemovePolicyURL(r Resource, kind PolicyKind, policyURL string) (Resource, error) {
	acr, err := ACRFrom(r)
	if err != nil {
		return r, err
	}
	g := acr.Graph

	if kind.onACRSubject() {
		if self := rdf.GetThing(g, acr.URL); self != nil {
			g = rdf.SetThing(g, self.RemoveIRI(kind.relation(), policyURL))
		}
		return SetACR(r, g), nil
	}

	for _, control := range accessControlThings(acr) {
		g = rdf.SetThing(g, control.RemoveIRI(kind.relation(), policyURL))
	}
	return SetACR(r, g), nil
}

// SetActorAccess rewrites the actor's access on the resource: modes set
// in the partial vector are granted or denied, unset modes keep their
// current behavior. The actor's previous exclusive policies are folded
// into the replacement so earlier grants survive a later partial write.
// Returns a new Resource; the caller persists and re-reads.
//
// A mode denied by a broader (non-exclusive) policy cannot be granted
// this way, since deny wins; the re-read reports the actual outcome.
func SetActorAccess(r Resource, actor solid.Actor, partial solid.Access) (Resource, error) {
	if _, err := ACRFrom(r); err != nil {
		return r, err
	}

	// Detach the actor's exclusive policies, remembering their modes.
	prevOwnAllow, prevOwnDeny := map[string]bool{}, map[string]bool{}
	prevSelfAllow, prevSelfDeny := map[string]bool{}, map[string]bool{}

	r, err := removeExclusivePolicies(r, PolicyOwn, actor, prevOwnAllow, prevOwnDeny)
	if err != nil {
		return r, err
	}
	r, err = removeExclusivePolicies(r, PolicyACRSelf, actor, prevSelfAllow, prevSelfDeny)
	if err != nil {
		return r, err
	}

	applySetting := func(allow, deny map[string]bool, mode string, s solid.Setting) {
		switch s {
		case solid.Granted:
			allow[mode] = true
			delete(deny, mode)
		case solid.Denied:
			deny[mode] = true
			delete(allow, mode)
		}
	}
	applySetting(prevOwnAllow, prevOwnDeny, rdf.ACLRead, partial.Read)
	applySetting(prevOwnAllow, prevOwnDeny, rdf.ACLAppend, partial.Append)
	applySetting(prevOwnAllow, prevOwnDeny, rdf.ACLWrite, partial.Write)
	applySetting(prevSelfAllow, prevSelfDeny, rdf.ACLRead, partial.ControlRead)
	applySetting(prevSelfAllow, prevSelfDeny, rdf.ACLWrite, partial.ControlWrite)

	r, err = addExclusivePolicy(r, PolicyOwn, actor, prevOwnAllow, prevOwnDeny)
	if err != nil {
		return r, err
	}
	return addExclusivePolicy(r, PolicyACRSelf, actor, prevSelfAllow, prevSelfDeny)
}

// isExclusiveFor reports whether the policy applies to exactly this
// actor and nobody else: a single allOf matcher enumerating only the
// actor, with empty anyOf and noneOf sets.
func isExclusiveFor(acr *ACR, p *Policy, actor solid.Actor) bool {
	if len(p.AllOf) != 1 || len(p.AnyOf) != 0 || len(p.NoneOf) != 0 {
		return false
	}
	m := ResolveMatcher(acr, p.AllOf[0])
	if m == nil {
		return false
	}
	total := len(m.Agents) + len(m.Groups) + len(m.Clients)
	return total == 1 && contains(m.actorIDs(actor.Kind), actor.ID)
}

func removeExclusivePolicies(r Resource, kind PolicyKind, actor solid.Actor, allow, deny map[string]bool) (Resource, error) {
	for _, url := range PolicyURLs(r, kind) {
		p := ResolvePolicy(r.ACR, url)
		if p == nil || !isExclusiveFor(r.ACR, p, actor) {
			continue
		}
		for _, mode := range p.Allow {
			allow[mode] = true
		}
		for _, mode := range p.Deny {
			deny[mode] = true
		}
		var err error
		r, err = RemovePolicyURL(r, kind, url)
		if err != nil {
			return r, err
		}
		r = removeOrphanedThings(r, p)
	}
	return r, nil
}

// removeOrphanedThings drops the policy node and its matcher from the
// ACR graph when nothing references them anymore. A policy still
// reachable through another relation kind keeps granting that access,
// so its node (and with it its matcher) must survive.
func removeOrphanedThings(r Resource, p *Policy) Resource {
	acr := r.ACR
	g := acr.Graph
	if !policyReferenced(g, p.URL) {
		if thing := rdf.GetThing(g, p.URL); thing != nil {
			g = rdf.RemoveThing(g, thing)
		}
	}
	for _, matcherURL := range p.MatcherURLs() {
		if matcherReferenced(g, matcherURL) {
			continue
		}
		if thing := rdf.GetThing(g, matcherURL); thing != nil {
			g = rdf.RemoveThing(g, thing)
		}
	}
	return SetACR(r, g)
}

// policyReferenced reports whether any subject in the graph still
// references the policy URL through a policy relation.
func policyReferenced(g rdf.Graph, policyURL string) bool {
	for _, thing := range rdf.GetThingAll(g) {
		for _, rel := range []string{rdf.ACPApply, rdf.ACPApplyMembers, rdf.ACPAccess, rdf.ACPAccessMembers} {
			if thing.HasIRI(rel, policyURL) {
				return true
			}
		}
	}
	return false
}

// matcherReferenced reports whether any subject in the graph still
// references the matcher URL through a matcher-set relation.
func matcherReferenced(g rdf.Graph, matcherURL string) bool {
	for _, thing := range rdf.GetThingAll(g) {
		for _, rel := range []string{rdf.ACPAllOf, rdf.ACPAnyOf, rdf.ACPNoneOf} {
			if thing.HasIRI(rel, matcherURL) {
				return true
			}
		}
	}
	return false
}

func addExclusivePolicy(r Resource, kind PolicyKind, actor solid.Actor, allow, deny map[string]bool) (Resource, error) {
	if len(allow) == 0 && len(deny) == 0 {
		return r, nil
	}
	acr, err := ACRFrom(r)
	if err != nil {
		return r, err
	}

	matcherURL := acr.URL + newFragmentID("matcher")
	policyURL := acr.URL + newFragmentID("policy")

	matcher := rdf.NewThing(matcherURL).AddIRI(rdf.RDFType, rdf.ACPMatcher)
	switch actor.Kind {
	case solid.ActorAgent:
		matcher = matcher.AddIRI(rdf.ACPAgent, actor.ID)
	case solid.ActorGroup:
		matcher = matcher.AddIRI(rdf.ACPGroup, actor.ID)
	case solid.ActorClient:
		matcher = matcher.AddIRI(rdf.ACPClient, actor.ID)
	}

	policy := rdf.NewThing(policyURL).
		AddIRI(rdf.RDFType, rdf.ACPPolicy).
		AddIRI(rdf.ACPAllOf, matcherURL)
	for _, mode := range sortedKeys(allow) {
		policy = policy.AddIRI(rdf.ACPAllow, mode)
	}
	for _, mode := range sortedKeys(deny) {
		policy = policy.AddIRI(rdf.ACPDeny, mode)
	}

	g := rdf.SetThing(acr.Graph, matcher)
	g = rdf.SetThing(g, policy)
	return AddPolicyURL(SetACR(r, g), kind, policyURL)
}

// ensureAccessControl returns an Access Control node to attach own
// policies to, creating and linking one when the ACR has none.
func ensureAccessControl(acr *ACR, g rdf.Graph) (*rdf.Thing, rdf.Graph) {
	if controls := accessControlThings(acr); len(controls) > 0 {
		return controls[0], g
	}
	controlURL := acr.URL + defaultAccessControlFragment
	control := rdf.NewThing(controlURL).AddIRI(rdf.RDFType, rdf.ACPAccessControl)

	self := rdf.GetThing(g, acr.URL)
	if self == nil {
		self = rdf.NewThing(acr.URL).AddIRI(rdf.RDFType, rdf.ACPAccessControlResource)
	}
	g = rdf.SetThing(g, self.AddIRI(rdf.ACPAccessControlRel, controlURL))
	g = rdf.SetThing(g, control)
	return control, g
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
