// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import (
	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// Matcher is a resolved view of one matcher node: the actors it
// enumerates per relation. The public/authenticated/creator sentinels
// appear as ordinary IRI values in the agent relation.
type Matcher struct {
	URL     string
	Agents  []string
	Groups  []string
	Clients []string
}

// ResolveMatcher looks the matcher URL up in the bundle. Returns nil
// when the URL is not a statement subject in any fetched graph.
func ResolveMatcher(acr *ACR, url string) *Matcher {
	thing := lookupThing(acr, url)
	if thing == nil {
		return nil
	}
	return &Matcher{
		URL:     url,
		Agents:  thing.IRIs(rdf.ACPAgent),
		Groups:  thing.IRIs(rdf.ACPGroup),
		Clients: thing.IRIs(rdf.ACPClient),
	}
}

// MatcherMatches reports whether the actor appears among the matcher's
// values for its relation. Pure membership: no network access, no
// recursive resolution, and sentinel IRIs get no special treatment.
func MatcherMatches(m *Matcher, actor solid.Actor) bool {
	switch actor.Kind {
	case solid.ActorAgent:
		return contains(m.Agents, actor.ID)
	case solid.ActorGroup:
		return contains(m.Groups, actor.ID)
	case solid.ActorClient:
		return contains(m.Clients, actor.ID)
	}
	return false
}

// actorIDs returns the matcher's values for the given relation kind.
func (m *Matcher) actorIDs(kind solid.ActorKind) []string {
	switch kind {
	case solid.ActorAgent:
		return m.Agents
	case solid.ActorGroup:
		return m.Groups
	case solid.ActorClient:
		return m.Clients
	}
	return nil
}
