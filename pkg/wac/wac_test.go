// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package wac

import (
	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// Shared fixtures for the package tests.
const (
	testResourceURL  = "https://pod.example/container/resource"
	testACLURL       = "https://pod.example/container/resource.acl"
	testContainerURL = "https://pod.example/container/"
	aliceWebID       = "https://alice.example/profile#me"
	bobWebID         = "https://bob.example/profile#me"
	teamGroupURL     = "https://pod.example/groups#team"
)

// aclFixture assembles an ACL graph rule by rule.
type aclFixture struct {
	graph rdf.Graph
}

func newACLFixture() *aclFixture {
	return &aclFixture{graph: rdf.NewGraph()}
}

// rule adds an acl:Authorization granting modes to the actor named by
// relation, applying to the given resource via acl:accessTo.
func (f *aclFixture) rule(fragment, relation, actor string, modes ...string) *aclFixture {
	return f.ruleVia(fragment, rdf.ACLAccessTo, testResourceURL, relation, actor, modes...)
}

// ruleVia adds a rule with an explicit resource relation and target.
func (f *aclFixture) ruleVia(fragment, resourceRel, target, relation, actor string, modes ...string) *aclFixture {
	rule := rdf.NewThing(testACLURL + fragment).
		AddIRI(rdf.RDFType, rdf.ACLAuthorization).
		AddIRI(resourceRel, target).
		AddIRI(relation, actor)
	for _, mode := range modes {
		rule = rule.AddIRI(rdf.ACLMode, mode)
	}
	f.graph = rdf.SetThing(f.graph, rule)
	return f
}

// resource wraps the built graph into a directly governed Resource.
func (f *aclFixture) resource() Resource {
	return Resource{
		Info: solid.Info{URL: testResourceURL, ACLURL: testACLURL},
		ACL: &ACL{
			URL:      testACLURL,
			AccessTo: testResourceURL,
			Graph:    f.graph,
		},
	}
}

// inherited wraps the graph as a container ACL applying via acl:default.
func (f *aclFixture) inherited() Resource {
	return Resource{
		Info: solid.Info{URL: testResourceURL},
		ACL: &ACL{
			URL:       testContainerURL + ".acl",
			AccessTo:  testContainerURL,
			Inherited: true,
			Graph:     f.graph,
		},
	}
}
