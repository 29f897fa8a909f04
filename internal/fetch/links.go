// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package fetch

import (
	"net/url"
	"strings"
)

// Relation values advertising authorization resources. ACP servers link
// the ACR with the acp:accessControl relation; WAC servers use "acl".
const (
	relACR = "http://www.w3.org/ns/solid/acp#accessControl"
	relACL = "acl"
)

type authLinks struct {
	acr string
	acl string
}

// parseLinkHeaders scans Link headers for authorization relations,
// resolving relative targets against the request URL. The first match
// per relation wins.
func parseLinkHeaders(base string, headers []string) authLinks {
	var links authLinks
	baseURL, err := url.Parse(base)
	if err != nil {
		return links
	}

	for _, header := range headers {
		for _, link := range splitLinks(header) {
			target, rels := parseLink(link)
			if target == "" {
				continue
			}
			resolved := resolve(baseURL, target)
			for _, rel := range rels {
				switch {
				case rel == relACR && links.acr == "":
					links.acr = resolved
				case rel == relACL && links.acl == "":
					links.acl = resolved
				}
			}
		}
	}
	return links
}

// splitLinks splits a Link header on commas outside <> and quotes.
func splitLinks(header string) []string {
	var parts []string
	var depth int
	var quoted bool
	start := 0
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '<':
			if !quoted {
				depth++
			}
		case '>':
			if !quoted && depth > 0 {
				depth--
			}
		case '"':
			quoted = !quoted
		case ',':
			if depth == 0 && !quoted {
				parts = append(parts, header[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, header[start:])
	return parts
}

// parseLink extracts the target and rel values from one link-value.
func parseLink(link string) (string, []string) {
	segments := strings.Split(link, ";")
	target := strings.TrimSpace(segments[0])
	if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
		return "", nil
	}
	target = target[1 : len(target)-1]

	var rels []string
	for _, segment := range segments[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(segment), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		// A rel attribute may carry multiple space-separated values.
		rels = append(rels, strings.Fields(value)...)
	}
	return target, rels
}

func resolve(base *url.URL, target string) string {
	ref, err := url.Parse(target)
	if err != nil {
		return target
	}
	return base.ResolveReference(ref).String()
}
