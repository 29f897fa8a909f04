// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package wac

import (
	"sort"

	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// accessFromModes folds acl:mode IRIs into an Access vector. acl:Write
// subsumes acl:Append, and acl:Control grants both control halves; WAC
// cannot express denial, so modes are Granted or left Unset.
func accessFromModes(modes []string) solid.Access {
	var access solid.Access
	for _, mode := range modes {
		switch mode {
		case rdf.ACLRead:
			access.Read = solid.Granted
		case rdf.ACLAppend:
			access.Append = solid.Granted
		case rdf.ACLWrite:
			access.Write = solid.Granted
			access.Append = solid.Granted
		case rdf.ACLControl:
			access.ControlRead = solid.Granted
			access.ControlWrite = solid.Granted
		}
	}
	return access
}

// matchedAccess unions the modes of every applicable rule matching the
// predicate.
func matchedAccess(r Resource, match func(*rdf.Thing) bool) (solid.Access, bool) {
	if !HasAccessibleACL(r) {
		return solid.Access{}, false
	}
	var access solid.Access
	for _, rule := range rules(r) {
		if !match(rule) {
			continue
		}
		access = access.Merge(accessFromModes(rule.IRIs(rdf.ACLMode)))
	}
	return access, true
}

// AgentAccess computes the modes granted to the WebID by explicit
// acl:agent entries.
func AgentAccess(r Resource, webID string) (solid.Access, bool) {
	return matchedAccess(r, func(rule *rdf.Thing) bool {
		return rule.HasIRI(rdf.ACLAgent, webID)
	})
}

// GroupAccess computes the modes granted to the group by acl:agentGroup
// entries.
func GroupAccess(r Resource, groupURL string) (solid.Access, bool) {
	return matchedAccess(r, func(rule *rdf.Thing) bool {
		return rule.HasIRI(rdf.ACLAgentGroup, groupURL)
	})
}

// PublicAccess computes the modes granted to everyone through the
// foaf:Agent agent class.
func PublicAccess(r Resource) (solid.Access, bool) {
	return matchedAccess(r, func(rule *rdf.Thing) bool {
		return rule.HasIRI(rdf.ACLAgentClass, rdf.FOAFAgent)
	})
}

// AuthenticatedAccess computes the modes granted to any signed-in agent
// through the acl:AuthenticatedAgent class.
func AuthenticatedAccess(r Resource) (solid.Access, bool) {
	return matchedAccess(r, func(rule *rdf.Thing) bool {
		return rule.HasIRI(rdf.ACLAgentClass, rdf.ACLAuthenticatedAgent)
	})
}

// AgentAccessAll computes per-WebID access for every agent named by an
// applicable rule.
func AgentAccessAll(r Resource) (map[string]solid.Access, bool) {
	return allAccess(r, rdf.ACLAgent, AgentAccess)
}

// GroupAccessAll computes per-group access for every group named by an
// applicable rule.
func GroupAccessAll(r Resource) (map[string]solid.Access, bool) {
	return allAccess(r, rdf.ACLAgentGroup, GroupAccess)
}

func allAccess(r Resource, relation string, lookup func(Resource, string) (solid.Access, bool)) (map[string]solid.Access, bool) {
	if !HasAccessibleACL(r) {
		return nil, false
	}
	seen := map[string]bool{}
	var ids []string
	for _, rule := range rules(r) {
		for _, id := range rule.IRIs(relation) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)

	out := make(map[string]solid.Access, len(ids))
	for _, id := range ids {
		access, ok := lookup(r, id)
		if !ok {
			return nil, false
		}
		out[id] = access
	}
	return out, true
}
