// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package wac

import (
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// newRuleFragmentID mints a sortable fragment identifier for rules
// created by this library.
var newRuleFragmentID = func() string {
	return "#rule-" + ulid.Make().String()
}

// SetAgentAccess rewrites the WebID's granted modes. Granted modes in
// the partial vector are added, Denied modes are withdrawn (WAC cannot
// express denial, so a withdrawn mode reads back as unset), and Unset
// modes keep their current state. Control halves are collapsed into the
// single acl:Control mode; asking for different halves is not checked
// here but at the scheme dispatcher.
func SetAgentAccess(r Resource, webID string, partial solid.Access) (Resource, error) {
	return setActorAccess(r, rdf.ACLAgent, webID, partial)
}

// SetGroupAccess rewrites the group's granted modes.
func SetGroupAccess(r Resource, groupURL string, partial solid.Access) (Resource, error) {
	return setActorAccess(r, rdf.ACLAgentGroup, groupURL, partial)
}

// SetPublicAccess rewrites the modes granted to everyone.
func SetPublicAccess(r Resource, partial solid.Access) (Resource, error) {
	return setActorAccess(r, rdf.ACLAgentClass, rdf.FOAFAgent, partial)
}

// SetAuthenticatedAccess rewrites the modes granted to any logged-in
// agent.
func SetAuthenticatedAccess(r Resource, partial solid.Access) (Resource, error) {
	return setActorAccess(r, rdf.ACLAgentClass, rdf.ACLAuthenticatedAgent, partial)
}

func setActorAccess(r Resource, relation, id string, partial solid.Access) (Resource, error) {
	acl, err := ACLFrom(r)
	if err != nil {
		return r, err
	}

	// Detach the actor's exclusive rules, remembering their modes.
	prev := map[string]bool{}
	g := acl.Graph
	for _, rule := range rules(r) {
		if !isExclusiveFor(rule, relation, id, acl) {
			continue
		}
		for _, mode := range rule.IRIs(rdf.ACLMode) {
			prev[mode] = true
		}
		g = rdf.RemoveThing(g, rule)
	}
	r = SetACL(r, g)
	acl = r.ACL

	applySetting := func(mode string, s solid.Setting) {
		switch s {
		case solid.Granted:
			prev[mode] = true
		case solid.Denied:
			delete(prev, mode)
		}
	}
	applySetting(rdf.ACLRead, partial.Read)
	applySetting(rdf.ACLAppend, partial.Append)
	applySetting(rdf.ACLWrite, partial.Write)
	applySetting(rdf.ACLControl, controlSetting(partial))

	if len(prev) == 0 {
		return r, nil
	}

	relationToResource := rdf.ACLAccessTo
	if acl.Inherited {
		relationToResource = rdf.ACLDefault
	}

	rule := rdf.NewThing(acl.URL + newRuleFragmentID()).
		AddIRI(rdf.RDFType, rdf.ACLAuthorization).
		AddIRI(relationToResource, acl.AccessTo).
		AddIRI(relation, id)
	for _, mode := range sortedModes(prev) {
		rule = rule.AddIRI(rdf.ACLMode, mode)
	}
	return SetACL(r, rdf.SetThing(acl.Graph, rule)), nil
}

// controlSetting collapses the two control halves into the single WAC
// control mode. Either half set wins; the dispatcher rejects mismatched
// halves before they reach this point.
func controlSetting(partial solid.Access) solid.Setting {
	if partial.ControlWrite != solid.Unset {
		return partial.ControlWrite
	}
	return partial.ControlRead
}

// isExclusiveFor reports whether the rule names exactly this actor and
// governs exactly this ACL's resource, so rewriting it cannot disturb
// anyone else's access.
func isExclusiveFor(rule *rdf.Thing, relation, id string, acl *ACL) bool {
	actorEntries := len(rule.IRIs(rdf.ACLAgent)) +
		len(rule.IRIs(rdf.ACLAgentGroup)) +
		len(rule.IRIs(rdf.ACLAgentClass))
	if actorEntries != 1 || !rule.HasIRI(relation, id) {
		return false
	}

	for _, rel := range []string{rdf.ACLAccessTo, rdf.ACLDefault} {
		for _, target := range rule.IRIs(rel) {
			if target != acl.AccessTo {
				return false
			}
		}
	}
	return true
}

func sortedModes(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for mode := range set {
		out = append(out, mode)
	}
	sort.Strings(out)
	return out
}
