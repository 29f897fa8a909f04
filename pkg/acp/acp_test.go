// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package acp

import (
	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// Shared fixtures for the package tests.
const (
	testResourceURL = "https://pod.example/container/resource"
	testACRURL      = "https://pod.example/container/resource.acr"
	aliceWebID      = "https://alice.example/profile#me"
	bobWebID        = "https://bob.example/profile#me"
	teamGroupURL    = "https://pod.example/groups#team"
)

// fixture assembles an ACR graph piece by piece.
type fixture struct {
	graph rdf.Graph
}

func newFixture() *fixture {
	self := rdf.NewThing(testACRURL).
		AddIRI(rdf.RDFType, rdf.ACPAccessControlResource).
		AddIRI(rdf.ACPAccessControlRel, testACRURL+"#ac")
	control := rdf.NewThing(testACRURL + "#ac").
		AddIRI(rdf.RDFType, rdf.ACPAccessControl)

	g := rdf.SetThing(rdf.NewGraph(), self)
	g = rdf.SetThing(g, control)
	return &fixture{graph: g}
}

// apply attaches a policy URL to the Access Control node's apply set.
func (f *fixture) apply(policyURL string) *fixture {
	control := rdf.GetThing(f.graph, testACRURL+"#ac")
	f.graph = rdf.SetThing(f.graph, control.AddIRI(rdf.ACPApply, policyURL))
	return f
}

// applyMembers attaches a policy URL to the Access Control node's
// applyMembers set.
func (f *fixture) applyMembers(policyURL string) *fixture {
	control := rdf.GetThing(f.graph, testACRURL+"#ac")
	f.graph = rdf.SetThing(f.graph, control.AddIRI(rdf.ACPApplyMembers, policyURL))
	return f
}

// access attaches a policy URL to the ACR subject's access set.
func (f *fixture) access(policyURL string) *fixture {
	self := rdf.GetThing(f.graph, testACRURL)
	f.graph = rdf.SetThing(f.graph, self.AddIRI(rdf.ACPAccess, policyURL))
	return f
}

// policy adds a policy node with the given mode and matcher sets.
func (f *fixture) policy(url string, allow, deny []string, build func(p *rdf.Thing) *rdf.Thing) *fixture {
	p := rdf.NewThing(url).AddIRI(rdf.RDFType, rdf.ACPPolicy)
	for _, mode := range allow {
		p = p.AddIRI(rdf.ACPAllow, mode)
	}
	for _, mode := range deny {
		p = p.AddIRI(rdf.ACPDeny, mode)
	}
	if build != nil {
		p = build(p)
	}
	f.graph = rdf.SetThing(f.graph, p)
	return f
}

// agentMatcher adds a matcher node enumerating agent IRIs.
func (f *fixture) agentMatcher(url string, agents ...string) *fixture {
	m := rdf.NewThing(url).AddIRI(rdf.RDFType, rdf.ACPMatcher)
	for _, a := range agents {
		m = m.AddIRI(rdf.ACPAgent, a)
	}
	f.graph = rdf.SetThing(f.graph, m)
	return f
}

// groupMatcher adds a matcher node enumerating group URLs.
func (f *fixture) groupMatcher(url string, groups ...string) *fixture {
	m := rdf.NewThing(url).AddIRI(rdf.RDFType, rdf.ACPMatcher)
	for _, g := range groups {
		m = m.AddIRI(rdf.ACPGroup, g)
	}
	f.graph = rdf.SetThing(f.graph, m)
	return f
}

// resource wraps the built graph into a Resource with an accessible ACR.
func (f *fixture) resource() Resource {
	return Resource{
		Info: solid.Info{URL: testResourceURL, ACRURL: testACRURL},
		ACR: &ACR{
			URL:      testACRURL,
			AccessTo: testResourceURL,
			Graph:    f.graph,
		},
	}
}

// allOf returns a policy builder step referencing allOf matchers.
func allOf(urls ...string) func(*rdf.Thing) *rdf.Thing {
	return func(p *rdf.Thing) *rdf.Thing {
		for _, u := range urls {
			p = p.AddIRI(rdf.ACPAllOf, u)
		}
		return p
	}
}
