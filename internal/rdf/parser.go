// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package rdf

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/oops"
)

// turtleLexer defines the token types for the Turtle subset.
// Prefixed names require a colon, so the bare keyword 'a' falls through
// to Ident. Local names exclude '.' so the statement terminator is not
// consumed by a greedy match.
var turtleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "IRIRef", Pattern: `<[^<>\s]*>`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Caret", Pattern: `\^\^`},
	{Name: "PrefixDir", Pattern: `@prefix`},
	{Name: "BaseDir", Pattern: `@base`},
	{Name: "PName", Pattern: `([A-Za-z][A-Za-z0-9_-]*)?:[A-Za-z0-9_#/%~-]*`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `[;,.]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// document is the AST root: a sequence of directives and triple blocks.
type document struct {
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Prefix  *prefixDecl `parser:"  @@"`
	Base    *baseDecl   `parser:"| @@"`
	Triples *triples    `parser:"| @@"`
}

type prefixDecl struct {
	Name string `parser:"PrefixDir @PName"`
	IRI  string `parser:"@IRIRef '.'"`
}

type baseDecl struct {
	IRI string `parser:"BaseDir @IRIRef '.'"`
}

// triples matches: subject verb objects (';' verb objects)* '.'
// A dangling ';' before the terminator is tolerated, as in full Turtle.
type triples struct {
	Subject    *iriNode   `parser:"@@"`
	Predicates []*predObj `parser:"@@ (';' @@?)* '.'"`
}

type predObj struct {
	Verb    *verb      `parser:"@@"`
	Objects []*objNode `parser:"@@ (',' @@)*"`
}

type verb struct {
	A   bool     `parser:"  @'a'"`
	IRI *iriNode `parser:"| @@"`
}

type iriNode struct {
	Ref   string `parser:"  @IRIRef"`
	PName string `parser:"| @PName"`
}

type objNode struct {
	IRI     *iriNode     `parser:"  @@"`
	Literal *literalNode `parser:"| @@"`
}

type literalNode struct {
	Value    string   `parser:"@String"`
	Datatype *iriNode `parser:"(Caret @@)?"`
}

// parser is the singleton participle parser instance.
var parser *participle.Parser[document]

func init() {
	var err error
	parser, err = participle.Build[document](
		participle.Lexer(turtleLexer),
		participle.Elide("comment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build turtle parser: %v", err))
	}
}

// Parse reads a Turtle-subset document and returns the Graph, with
// relative IRI references resolved against base. Constructs outside the
// subset (blank nodes, collections, language tags) are parse errors
// rather than silently dropped statements.
func Parse(base string, r io.Reader) (Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Graph{}, oops.In("rdf").Code("READ_FAILED").Wrap(err)
	}
	return ParseString(base, string(data))
}

// ParseString parses a Turtle-subset document held in memory.
func ParseString(base, text string) (Graph, error) {
	doc, err := parser.ParseString(base, text)
	if err != nil {
		return Graph{}, oops.In("rdf").
			Code("PARSE_FAILED").
			With("base", base).
			Wrap(err)
	}

	res := &resolver{base: base, prefixes: map[string]string{}}
	g := NewGraph()
	for _, st := range doc.Statements {
		switch {
		case st.Prefix != nil:
			name := strings.TrimSuffix(st.Prefix.Name, ":")
			res.prefixes[name] = trimIRIRef(st.Prefix.IRI)
		case st.Base != nil:
			res.base = res.resolveRef(trimIRIRef(st.Base.IRI))
		case st.Triples != nil:
			g, err = res.addTriples(g, st.Triples)
			if err != nil {
				return Graph{}, err
			}
		}
	}
	return g, nil
}

type resolver struct {
	base     string
	prefixes map[string]string
}

func (r *resolver) addTriples(g Graph, t *triples) (Graph, error) {
	subject, err := r.expand(t.Subject)
	if err != nil {
		return g, err
	}
	thing := GetThing(g, subject)
	if thing == nil {
		thing = NewThing(subject)
	}
	for _, po := range t.Predicates {
		if po == nil {
			continue
		}
		predicate := RDFType
		if !po.Verb.A {
			predicate, err = r.expand(po.Verb.IRI)
			if err != nil {
				return g, err
			}
		}
		for _, obj := range po.Objects {
			switch {
			case obj.IRI != nil:
				iri, expErr := r.expand(obj.IRI)
				if expErr != nil {
					return g, expErr
				}
				thing = thing.AddObject(predicate, IRI(iri))
			case obj.Literal != nil:
				value := unquote(obj.Literal.Value)
				if obj.Literal.Datatype != nil {
					dt, expErr := r.expand(obj.Literal.Datatype)
					if expErr != nil {
						return g, expErr
					}
					thing = thing.AddObject(predicate, TypedLiteral(value, dt))
				} else {
					thing = thing.AddObject(predicate, Literal(value))
				}
			}
		}
	}
	return SetThing(g, thing), nil
}

// expand turns an AST IRI node into an absolute IRI.
func (r *resolver) expand(n *iriNode) (string, error) {
	if n.Ref != "" {
		return r.resolveRef(trimIRIRef(n.Ref)), nil
	}
	name, local, _ := strings.Cut(n.PName, ":")
	ns, ok := r.prefixes[name]
	if !ok {
		return "", oops.In("rdf").
			Code("UNKNOWN_PREFIX").
			With("prefix", name).
			Errorf("undeclared prefix %q in %q", name, n.PName)
	}
	return ns + local, nil
}

// resolveRef resolves a possibly-relative IRI reference against the base.
func (r *resolver) resolveRef(ref string) string {
	if r.base == "" {
		return ref
	}
	baseURL, err := url.Parse(r.base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func trimIRIRef(ref string) string {
	return strings.TrimSuffix(strings.TrimPrefix(ref, "<"), ">")
}

// unquote strips surrounding quotes and decodes backslash escapes.
func unquote(s string) string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`)
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, c := range s {
		if !escaped {
			if c == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(c)
			continue
		}
		escaped = false
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
