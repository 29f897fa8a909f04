// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package solid

import "fmt"

// ActorKind identifies the relation an actor is matched through.
type ActorKind int

// ActorKind constants define the supported actor relations.
const (
	ActorAgent  ActorKind = iota // agent
	ActorGroup                   // group
	ActorClient                  // client
)

var actorKindStrings = [...]string{
	"agent",
	"group",
	"client",
}

func (k ActorKind) String() string {
	if k >= 0 && int(k) < len(actorKindStrings) {
		return actorKindStrings[k]
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Sentinel agent IRIs. These are ordinary IRI values in the agent
// relation; matching them reduces to plain membership.
const (
	PublicAgentIRI        = "http://www.w3.org/ns/solid/acp#PublicAgent"
	AuthenticatedAgentIRI = "http://www.w3.org/ns/solid/acp#AuthenticatedAgent"
	CreatorAgentIRI       = "http://www.w3.org/ns/solid/acp#CreatorAgent"
	PublicClientIRI       = "http://www.w3.org/ns/solid/acp#PublicClient"
)

// Actor is the subject of an access query: an agent WebID, a group
// URL, a client identifier, or one of the sentinel agents.
type Actor struct {
	Kind ActorKind
	ID   string
}

// Agent returns an actor matched through the agent relation by WebID.
func Agent(webID string) Actor {
	return Actor{Kind: ActorAgent, ID: webID}
}

// Group returns an actor matched through the group relation.
func Group(url string) Actor {
	return Actor{Kind: ActorGroup, ID: url}
}

// Client returns an actor matched through the client relation.
func Client(id string) Actor {
	return Actor{Kind: ActorClient, ID: id}
}

// Public returns the everyone sentinel actor.
func Public() Actor {
	return Actor{Kind: ActorAgent, ID: PublicAgentIRI}
}

// Authenticated returns the any-logged-in-agent sentinel actor.
func Authenticated() Actor {
	return Actor{Kind: ActorAgent, ID: AuthenticatedAgentIRI}
}

// Creator returns the resource-creator sentinel actor.
func Creator() Actor {
	return Actor{Kind: ActorAgent, ID: CreatorAgentIRI}
}

// IsSentinel reports whether the actor is one of the singleton agent
// sentinels rather than an explicit identifier.
func (a Actor) IsSentinel() bool {
	switch a.ID {
	case PublicAgentIRI, AuthenticatedAgentIRI, CreatorAgentIRI, PublicClientIRI:
		return true
	}
	return false
}

func (a Actor) String() string {
	return a.Kind.String() + ":" + a.ID
}
