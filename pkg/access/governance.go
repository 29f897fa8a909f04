// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package access

import (
	"context"
	"fmt"

	"github.com/podward/podward/pkg/acp"
	"github.com/podward/podward/pkg/wac"
)

// Scheme identifies which authorization scheme governs a resource.
type Scheme int

// Scheme constants cover the two supported schemes plus ungoverned.
const (
	SchemeNone Scheme = iota // none
	SchemeACP                // acp
	SchemeWAC                // wac
)

var schemeStrings = [...]string{
	"none",
	"acp",
	"wac",
}

func (s Scheme) String() string {
	if s >= 0 && int(s) < len(schemeStrings) {
		return schemeStrings[s]
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// Governance is the scheme decision for a fetched resource, made once
// and matched on explicitly afterwards. Exactly one of ACP and WAC is
// populated, selected by Scheme.
type Governance struct {
	Scheme Scheme
	ACP    acp.Resource
	WAC    wac.Resource
}

// Resolve decides how the resource is governed: the advertised ACR is
// probed first, then the advertised ACL, and a resource advertising
// neither (or whose authorization documents cannot be fetched) is
// ungoverned. Fetch failures are deliberately indistinguishable from
// absence; callers must not learn why access state is unavailable.
func (c *Client) Resolve(ctx context.Context, resourceURL string) Governance {
	info, err := c.fetch.FetchResourceInfo(ctx, resourceURL)
	if err != nil {
		c.debug(ctx, "resource info fetch failed", err)
		return Governance{}
	}

	if info.HasLinkedACR() {
		acrGraph, _, err := c.fetch.FetchDataset(ctx, info.ACRURL)
		if err == nil {
			res := acp.Resource{
				Info: info,
				ACR: &acp.ACR{
					URL:      info.ACRURL,
					AccessTo: resourceURL,
					Graph:    acrGraph,
				},
			}
			res.ACR.Referenced = c.fetch.FetchAll(ctx, acp.ExternalDocumentURLs(res))
			return Governance{Scheme: SchemeACP, ACP: res}
		}
		c.debug(ctx, "acr fetch failed", err)
	}

	if info.HasLinkedACL() {
		aclGraph, _, err := c.fetch.FetchDataset(ctx, info.ACLURL)
		if err == nil {
			return Governance{Scheme: SchemeWAC, WAC: wac.Resource{
				Info: info,
				ACL: &wac.ACL{
					URL:      info.ACLURL,
					AccessTo: resourceURL,
					Graph:    aclGraph,
				},
			}}
		}
		c.debug(ctx, "acl fetch failed", err)
	}

	return Governance{}
}
