// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package rdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acrBase = "https://pod.example/resource.acr"

func TestParseString_PrefixedNames(t *testing.T) {
	doc := `
@prefix acp: <http://www.w3.org/ns/solid/acp#> .

<#policy> a acp:Policy ;
    acp:allOf <#matcher> .
`
	g, err := ParseString(acrBase, doc)
	require.NoError(t, err)

	policy := GetThing(g, acrBase+"#policy")
	require.NotNil(t, policy)
	assert.Equal(t, []string{ACPPolicy}, policy.IRIs(RDFType))
	assert.Equal(t, []string{acrBase + "#matcher"}, policy.IRIs(ACPAllOf))
}

func TestParseString_ObjectLists(t *testing.T) {
	doc := `
@prefix acp: <http://www.w3.org/ns/solid/acp#> .
@prefix acl: <http://www.w3.org/ns/auth/acl#> .

<#policy> acp:allow acl:Read, acl:Write ;
    acp:anyOf <#m1>, <#m2> .
`
	g, err := ParseString(acrBase, doc)
	require.NoError(t, err)

	policy := GetThing(g, acrBase+"#policy")
	require.NotNil(t, policy)
	assert.ElementsMatch(t, []string{ACLRead, ACLWrite}, policy.IRIs(ACPAllow))
	assert.ElementsMatch(t, []string{acrBase + "#m1", acrBase + "#m2"}, policy.IRIs(ACPAnyOf))
}

func TestParseString_BaseDirective(t *testing.T) {
	doc := `
@base <https://other.example/policies> .
<#shared> a <http://www.w3.org/ns/solid/acp#Policy> .
`
	g, err := ParseString(acrBase, doc)
	require.NoError(t, err)
	assert.NotNil(t, GetThing(g, "https://other.example/policies#shared"))
}

func TestParseString_AbsoluteIRIs(t *testing.T) {
	doc := `<https://alice.example/profile#me> <http://www.w3.org/ns/solid/acp#agent> <https://bob.example/profile#me> .`
	g, err := ParseString(acrBase, doc)
	require.NoError(t, err)

	thing := GetThing(g, "https://alice.example/profile#me")
	require.NotNil(t, thing)
	assert.Equal(t, []string{"https://bob.example/profile#me"}, thing.IRIs(ACPAgent))
}

func TestParseString_Literals(t *testing.T) {
	doc := `<#it> <https://pod.example/vocab#label> "hello \"world\"" ;
    <https://pod.example/vocab#count> "3"^^<http://www.w3.org/2001/XMLSchema#integer> .`
	g, err := ParseString(acrBase, doc)
	require.NoError(t, err)

	thing := GetThing(g, acrBase+"#it")
	require.NotNil(t, thing)
	objs := thing.Objects("https://pod.example/vocab#label")
	require.Len(t, objs, 1)
	assert.Equal(t, `hello "world"`, objs[0].Value)
	assert.True(t, objs[0].Literal)

	typed := thing.Objects("https://pod.example/vocab#count")
	require.Len(t, typed, 1)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", typed[0].Datatype)
}

func TestParseString_CommentsAndDanglingSemicolon(t *testing.T) {
	doc := `
# access control resource
<#policy> a <http://www.w3.org/ns/solid/acp#Policy> ; # inline comment
    .
`
	g, err := ParseString(acrBase, doc)
	require.NoError(t, err)
	assert.NotNil(t, GetThing(g, acrBase+"#policy"))
}

func TestParseString_UndeclaredPrefix(t *testing.T) {
	_, err := ParseString(acrBase, `<#p> a acp:Policy .`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acp")
}

func TestParseString_Malformed(t *testing.T) {
	_, err := ParseString(acrBase, `<#p> <#q>`)
	assert.Error(t, err)
}

func TestParse_Reader(t *testing.T) {
	g, err := Parse(acrBase, strings.NewReader(`<#p> a <http://www.w3.org/ns/solid/acp#Policy> .`))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
}

func TestWrite_Deterministic(t *testing.T) {
	g := NewGraph()
	g = SetThing(g, NewThing("https://pod.example/b").
		AddIRI(RDFType, ACPMatcher).
		AddIRI(ACPAgent, "https://alice.example/profile#me"))
	g = SetThing(g, NewThing("https://pod.example/a").
		AddObject("https://pod.example/vocab#label", Literal("line\nbreak")))

	want := `<https://pod.example/a> <https://pod.example/vocab#label> "line\nbreak" .
<https://pod.example/b> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/solid/acp#Matcher> .
<https://pod.example/b> <http://www.w3.org/ns/solid/acp#agent> <https://alice.example/profile#me> .
`
	assert.Equal(t, want, Serialize(g))
}

func TestRoundTrip(t *testing.T) {
	g := NewGraph()
	g = SetThing(g, NewThing(acrBase+"#policy").
		AddIRI(RDFType, ACPPolicy).
		AddIRI(ACPAllow, ACLRead).
		AddIRI(ACPAllOf, acrBase+"#matcher"))
	g = SetThing(g, NewThing(acrBase+"#matcher").
		AddIRI(RDFType, ACPMatcher).
		AddIRI(ACPAgent, "https://alice.example/profile#me"))

	parsed, err := ParseString(acrBase, Serialize(g))
	require.NoError(t, err)
	assert.Equal(t, Serialize(g), Serialize(parsed))
}
