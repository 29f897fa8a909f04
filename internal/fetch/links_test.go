// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkHeaders(t *testing.T) {
	base := "https://pod.example/container/resource"

	tests := []struct {
		name    string
		headers []string
		wantACR string
		wantACL string
	}{
		{
			name:    "acp access control",
			headers: []string{`<resource.acr>; rel="http://www.w3.org/ns/solid/acp#accessControl"`},
			wantACR: "https://pod.example/container/resource.acr",
		},
		{
			name:    "wac acl",
			headers: []string{`<resource.acl>; rel="acl"`},
			wantACL: "https://pod.example/container/resource.acl",
		},
		{
			name: "both in one header",
			headers: []string{
				`<resource.acr>; rel="http://www.w3.org/ns/solid/acp#accessControl", <resource.acl>; rel="acl"`,
			},
			wantACR: "https://pod.example/container/resource.acr",
			wantACL: "https://pod.example/container/resource.acl",
		},
		{
			name: "absolute target",
			headers: []string{
				`<https://acr.pod.example/r.acr>; rel="http://www.w3.org/ns/solid/acp#accessControl"`,
			},
			wantACR: "https://acr.pod.example/r.acr",
		},
		{
			name:    "multi-valued rel",
			headers: []string{`<resource.acl>; rel="acl describedby"`},
			wantACL: "https://pod.example/container/resource.acl",
		},
		{
			name: "first match wins",
			headers: []string{
				`<first.acl>; rel="acl"`,
				`<second.acl>; rel="acl"`,
			},
			wantACL: "https://pod.example/container/first.acl",
		},
		{
			name:    "unrelated relations ignored",
			headers: []string{`<style.css>; rel="stylesheet"`, `<meta>; rel="describedby"`},
		},
		{
			name:    "malformed target ignored",
			headers: []string{`resource.acl; rel="acl"`},
		},
		{
			name: "comma inside quoted rel",
			headers: []string{
				`<meta>; rel="a,b", <resource.acl>; rel="acl"`,
			},
			wantACL: "https://pod.example/container/resource.acl",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := parseLinkHeaders(base, tt.headers)
			assert.Equal(t, tt.wantACR, links.acr, "acr")
			assert.Equal(t, tt.wantACL, links.acl, "acl")
		})
	}
}
