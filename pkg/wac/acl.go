// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package wac implements the legacy Web Access Control scheme. An ACL
// document holds acl:Authorization rules granting modes directly per
// agent, group, or agent class; there is no rule indirection and no
// deny, so access is either granted or unspecified.
package wac

import (
	"github.com/samber/oops"

	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

// ACL is a fetched Web Access Control document.
type ACL struct {
	// URL is the ACL document's own URL.
	URL string

	// AccessTo is the URL of the resource the document governs directly.
	// When the ACL is inherited from a container, this is the container.
	AccessTo string

	// Inherited is true when the document was found on an ancestor
	// container and applies here through acl:default rules.
	Inherited bool

	// Graph holds the ACL document's statements.
	Graph rdf.Graph
}

// Resource pairs a resource's server metadata with its ACL, when one
// was advertised and successfully fetched.
type Resource struct {
	Info solid.Info

	// ACL is nil when the resource has no accessible ACL.
	ACL *ACL
}

// HasAccessibleACL reports whether the resource carries a fetched ACL.
func HasAccessibleACL(r Resource) bool {
	return r.ACL != nil
}

// ACLFrom returns the resource's ACL. Calling it without an accessible
// ACL is a programming error, reported with the resource URL.
func ACLFrom(r Resource) (*ACL, error) {
	if r.ACL == nil {
		return nil, oops.In("wac").
			Code("ACL_REQUIRED").
			With("resource", r.Info.URL).
			Errorf("resource %s has no accessible access control list", r.Info.URL)
	}
	return r.ACL, nil
}

// SetACL returns a new Resource with the ACL's graph replaced. The
// input resource is not modified.
func SetACL(r Resource, g rdf.Graph) Resource {
	if r.ACL == nil {
		return r
	}
	acl := *r.ACL
	acl.Graph = g
	out := r
	out.ACL = &acl
	return out
}

// rules returns the acl:Authorization things that apply to the
// resource: direct rules via acl:accessTo, or acl:default rules when
// the ACL is inherited from a container.
func rules(r Resource) []*rdf.Thing {
	if r.ACL == nil {
		return nil
	}
	relation := rdf.ACLAccessTo
	if r.ACL.Inherited {
		relation = rdf.ACLDefault
	}

	var out []*rdf.Thing
	for _, thing := range rdf.GetThingAll(r.ACL.Graph) {
		if !thing.HasIRI(rdf.RDFType, rdf.ACLAuthorization) {
			continue
		}
		if !thing.HasIRI(relation, r.ACL.AccessTo) {
			continue
		}
		out = append(out, thing)
	}
	return out
}
