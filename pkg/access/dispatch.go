// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package access

import (
	"context"

	"github.com/samber/oops"

	"github.com/podward/podward/internal/errutil"
	"github.com/podward/podward/pkg/acp"
	"github.com/podward/podward/pkg/solid"
	"github.com/podward/podward/pkg/wac"
)

func (c *Client) actorAccess(ctx context.Context, resourceURL string, actor solid.Actor) (solid.Access, bool) {
	g := c.Resolve(ctx, resourceURL)
	return evaluate(g, actor)
}

// evaluate answers a read against an already-resolved governance.
func evaluate(g Governance, actor solid.Actor) (solid.Access, bool) {
	switch g.Scheme {
	case SchemeACP:
		return acp.ActorAccess(g.ACP, actor)
	case SchemeWAC:
		return wacActorAccess(g.WAC, actor)
	default:
		return solid.Access{}, false
	}
}

func wacActorAccess(r wac.Resource, actor solid.Actor) (solid.Access, bool) {
	switch {
	case actor.Kind == solid.ActorGroup:
		return wac.GroupAccess(r, actor.ID)
	case actor.ID == solid.PublicAgentIRI:
		return wac.PublicAccess(r)
	case actor.ID == solid.AuthenticatedAgentIRI:
		return wac.AuthenticatedAccess(r)
	default:
		return wac.AgentAccess(r, actor.ID)
	}
}

func (c *Client) actorAccessAll(ctx context.Context, resourceURL string, kind solid.ActorKind) (map[string]solid.Access, bool) {
	g := c.Resolve(ctx, resourceURL)
	switch g.Scheme {
	case SchemeACP:
		return acp.ActorAccessAll(g.ACP, kind)
	case SchemeWAC:
		if kind == solid.ActorGroup {
			return wac.GroupAccessAll(g.WAC)
		}
		return wac.AgentAccessAll(g.WAC)
	default:
		return nil, false
	}
}

// setActorAccess runs the write path: mutate the authorization graph,
// persist it, then re-read the effective access from the server. A
// persist failure collapses to not-ok; only the WAC control-mode
// conflict surfaces as an error, since it is a caller bug.
func (c *Client) setActorAccess(ctx context.Context, resourceURL string, actor solid.Actor, partial solid.Access) (solid.Access, bool, error) {
	g := c.Resolve(ctx, resourceURL)

	switch g.Scheme {
	case SchemeACP:
		updated, err := acp.SetActorAccess(g.ACP, actor, partial)
		if err != nil {
			errutil.LogWarn(c.logger, "building updated policy failed", err)
			return solid.Access{}, false, nil
		}
		if err := c.fetch.SaveDataset(ctx, updated.ACR.URL, updated.ACR.Graph); err != nil {
			errutil.LogWarn(c.logger, "persisting access control resource failed", err)
			return solid.Access{}, false, nil
		}

	case SchemeWAC:
		if partial.ControlRead != partial.ControlWrite {
			return solid.Access{}, false, oops.In("access").
				Code("WAC_CONTROL_MISMATCH").
				With("resource", resourceURL).
				Errorf("resource %s is governed by WAC, which cannot set controlRead and controlWrite separately", resourceURL)
		}
		updated, err := wacSetActorAccess(g.WAC, actor, partial)
		if err != nil {
			errutil.LogWarn(c.logger, "building updated acl failed", err)
			return solid.Access{}, false, nil
		}
		if err := c.fetch.SaveDataset(ctx, updated.ACL.URL, updated.ACL.Graph); err != nil {
			errutil.LogWarn(c.logger, "persisting access control list failed", err)
			return solid.Access{}, false, nil
		}

	default:
		return solid.Access{}, false, nil
	}

	access, ok := c.actorAccess(ctx, resourceURL, actor)
	return access, ok, nil
}

func wacSetActorAccess(r wac.Resource, actor solid.Actor, partial solid.Access) (wac.Resource, error) {
	switch {
	case actor.Kind == solid.ActorGroup:
		return wac.SetGroupAccess(r, actor.ID, partial)
	case actor.ID == solid.PublicAgentIRI:
		return wac.SetPublicAccess(r, partial)
	case actor.ID == solid.AuthenticatedAgentIRI:
		return wac.SetAuthenticatedAccess(r, partial)
	default:
		return wac.SetAgentAccess(r, actor.ID, partial)
	}
}
