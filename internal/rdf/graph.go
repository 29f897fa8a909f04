// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package rdf provides an immutable triple graph with copy-on-write
// mutation, plus a Turtle-subset codec for the Solid wire format.
//
// A Graph is a set of (subject, predicate, object) statements grouped
// by subject into Things. Every mutating operation returns a new Graph
// or Thing; existing values are never changed in place. Callers may
// therefore hold snapshots across mutations without defensive copies.
package rdf

import (
	"sort"
)

// Object is the object position of a statement: an IRI or a literal.
type Object struct {
	Value    string
	Literal  bool
	Datatype string // datatype IRI for typed literals; empty otherwise
}

// IRI constructs an IRI object.
func IRI(iri string) Object {
	return Object{Value: iri}
}

// Literal constructs a plain string literal object.
func Literal(value string) Object {
	return Object{Value: value, Literal: true}
}

// TypedLiteral constructs a literal object with a datatype IRI.
func TypedLiteral(value, datatype string) Object {
	return Object{Value: value, Literal: true, Datatype: datatype}
}

// Thing is a read-only view of all statements sharing one subject.
// Mutating methods return a detached copy; the change becomes visible
// in a Graph only through SetThing.
type Thing struct {
	url        string
	predicates map[string][]Object
}

// NewThing creates an empty Thing for the given subject URL.
func NewThing(url string) *Thing {
	return &Thing{url: url, predicates: map[string][]Object{}}
}

// URL returns the Thing's subject URL.
func (t *Thing) URL() string { return t.url }

// Objects returns all objects for the given predicate, in insertion order.
func (t *Thing) Objects(predicate string) []Object {
	objs := t.predicates[predicate]
	out := make([]Object, len(objs))
	copy(out, objs)
	return out
}

// IRIs returns all IRI objects for the given predicate.
func (t *Thing) IRIs(predicate string) []string {
	var out []string
	for _, o := range t.predicates[predicate] {
		if !o.Literal {
			out = append(out, o.Value)
		}
	}
	return out
}

// HasIRI reports whether the predicate carries the given IRI object.
func (t *Thing) HasIRI(predicate, iri string) bool {
	for _, o := range t.predicates[predicate] {
		if !o.Literal && o.Value == iri {
			return true
		}
	}
	return false
}

// Predicates returns the sorted set of predicates present on the Thing.
func (t *Thing) Predicates() []string {
	out := make([]string, 0, len(t.predicates))
	for p := range t.predicates {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// clone returns a deep copy of the Thing.
func (t *Thing) clone() *Thing {
	preds := make(map[string][]Object, len(t.predicates))
	for p, objs := range t.predicates {
		cp := make([]Object, len(objs))
		copy(cp, objs)
		preds[p] = cp
	}
	return &Thing{url: t.url, predicates: preds}
}

// AddIRI returns a copy of the Thing with the IRI appended to the
// predicate's objects. Duplicate values are not added twice.
func (t *Thing) AddIRI(predicate, iri string) *Thing {
	if t.HasIRI(predicate, iri) {
		return t
	}
	c := t.clone()
	c.predicates[predicate] = append(c.predicates[predicate], IRI(iri))
	return c
}

// AddObject returns a copy of the Thing with the object appended.
func (t *Thing) AddObject(predicate string, obj Object) *Thing {
	c := t.clone()
	c.predicates[predicate] = append(c.predicates[predicate], obj)
	return c
}

// RemoveIRI returns a copy of the Thing with the IRI removed from the
// predicate's objects. Removing an absent value is a no-op.
func (t *Thing) RemoveIRI(predicate, iri string) *Thing {
	if !t.HasIRI(predicate, iri) {
		return t
	}
	c := t.clone()
	objs := c.predicates[predicate][:0:0]
	for _, o := range c.predicates[predicate] {
		if o.Literal || o.Value != iri {
			objs = append(objs, o)
		}
	}
	if len(objs) == 0 {
		delete(c.predicates, predicate)
	} else {
		c.predicates[predicate] = objs
	}
	return c
}

// SetIRI returns a copy of the Thing with the predicate's objects
// replaced by the single IRI.
func (t *Thing) SetIRI(predicate, iri string) *Thing {
	c := t.clone()
	c.predicates[predicate] = []Object{IRI(iri)}
	return c
}

// RemovePredicate returns a copy of the Thing without the predicate.
func (t *Thing) RemovePredicate(predicate string) *Thing {
	c := t.clone()
	delete(c.predicates, predicate)
	return c
}

// IsEmpty reports whether the Thing carries no statements.
func (t *Thing) IsEmpty() bool { return len(t.predicates) == 0 }

// Graph is an immutable set of statements grouped by subject.
// The zero value is an empty graph ready for use.
type Graph struct {
	things map[string]*Thing
}

// NewGraph creates an empty Graph.
func NewGraph() Graph {
	return Graph{}
}

// GetThing returns the Thing for the subject URL, or nil when the URL
// does not appear as a statement subject.
func GetThing(g Graph, url string) *Thing {
	return g.things[url]
}

// GetThingAll returns every Thing in the graph, sorted by subject URL
// so iteration order is deterministic.
func GetThingAll(g Graph) []*Thing {
	out := make([]*Thing, 0, len(g.things))
	for _, t := range g.things {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].url < out[j].url })
	return out
}

// SetThing returns a new Graph with the Thing inserted or replaced.
// An empty Thing removes the subject entirely.
func SetThing(g Graph, t *Thing) Graph {
	if t.IsEmpty() {
		return RemoveThing(g, t)
	}
	things := make(map[string]*Thing, len(g.things)+1)
	for url, existing := range g.things {
		things[url] = existing
	}
	things[t.url] = t
	return Graph{things: things}
}

// RemoveThing returns a new Graph without the Thing's subject.
func RemoveThing(g Graph, t *Thing) Graph {
	if _, ok := g.things[t.url]; !ok {
		return g
	}
	things := make(map[string]*Thing, len(g.things))
	for url, existing := range g.things {
		if url != t.url {
			things[url] = existing
		}
	}
	return Graph{things: things}
}

// Len returns the number of distinct subjects in the graph.
func (g Graph) Len() int { return len(g.things) }
