// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package rdf

import (
	"io"
	"strings"

	"github.com/samber/oops"
)

// Write serializes the graph as one absolute-IRI statement per line
// (N-Triples compatible, which is also valid Turtle). Subjects and
// predicates are emitted in sorted order so output is deterministic;
// PUT bodies and golden tests rely on that.
func Write(w io.Writer, g Graph) error {
	var b strings.Builder
	for _, thing := range GetThingAll(g) {
		for _, predicate := range thing.Predicates() {
			for _, obj := range thing.Objects(predicate) {
				b.WriteString("<")
				b.WriteString(thing.URL())
				b.WriteString("> <")
				b.WriteString(predicate)
				b.WriteString("> ")
				writeObject(&b, obj)
				b.WriteString(" .\n")
			}
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return oops.In("rdf").Code("WRITE_FAILED").Wrap(err)
	}
	return nil
}

// Serialize returns the graph's wire form as a string.
func Serialize(g Graph) string {
	var b strings.Builder
	_ = Write(&b, g)
	return b.String()
}

func writeObject(b *strings.Builder, obj Object) {
	if !obj.Literal {
		b.WriteString("<")
		b.WriteString(obj.Value)
		b.WriteString(">")
		return
	}
	b.WriteString(`"`)
	b.WriteString(escape(obj.Value))
	b.WriteString(`"`)
	if obj.Datatype != "" {
		b.WriteString("^^<")
		b.WriteString(obj.Datatype)
		b.WriteString(">")
	}
}

func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}
