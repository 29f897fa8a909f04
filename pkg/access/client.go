// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package access is the universal entry point of the client: it decides
// at runtime whether a resource is governed by ACP or WAC and routes
// get/set-access calls to the matching backend, normalizing both to the
// same five-mode Access vector.
//
// Every read operation reports (access, ok); ok is false whenever the
// state cannot be determined — the resource is ungoverned, its
// authorization documents cannot be read, or a policy reference leaves
// the ACR. Callers must treat not-ok as "cannot determine", never as
// "no access".
package access

import (
	"context"
	"log/slog"

	"github.com/podward/podward/internal/fetch"
	"github.com/podward/podward/pkg/solid"
)

// Client answers and mutates access questions about pod resources.
type Client struct {
	fetch  *fetch.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithFetcher replaces the pod HTTP client.
func WithFetcher(f *fetch.Client) Option {
	return func(c *Client) { c.fetch = f }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client with default fetch behavior.
func NewClient(opts ...Option) *Client {
	c := &Client{
		fetch:  fetch.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) debug(ctx context.Context, msg string, err error) {
	c.logger.DebugContext(ctx, msg, "error", err)
}

// AgentAccess reports the WebID's effective access on the resource.
func (c *Client) AgentAccess(ctx context.Context, resourceURL, webID string) (solid.Access, bool) {
	return c.actorAccess(ctx, resourceURL, solid.Agent(webID))
}

// GroupAccess reports the group's effective access on the resource.
func (c *Client) GroupAccess(ctx context.Context, resourceURL, groupURL string) (solid.Access, bool) {
	return c.actorAccess(ctx, resourceURL, solid.Group(groupURL))
}

// PublicAccess reports the access granted to everyone on the resource.
func (c *Client) PublicAccess(ctx context.Context, resourceURL string) (solid.Access, bool) {
	return c.actorAccess(ctx, resourceURL, solid.Public())
}

// AgentAccessAll reports effective access per WebID named anywhere in
// the resource's authorization data.
func (c *Client) AgentAccessAll(ctx context.Context, resourceURL string) (map[string]solid.Access, bool) {
	return c.actorAccessAll(ctx, resourceURL, solid.ActorAgent)
}

// GroupAccessAll reports effective access per named group.
func (c *Client) GroupAccessAll(ctx context.Context, resourceURL string) (map[string]solid.Access, bool) {
	return c.actorAccessAll(ctx, resourceURL, solid.ActorGroup)
}

// SetAgentAccess rewrites the WebID's access and reports the resulting
// effective access re-read from the server.
func (c *Client) SetAgentAccess(ctx context.Context, resourceURL, webID string, partial solid.Access) (solid.Access, bool, error) {
	return c.setActorAccess(ctx, resourceURL, solid.Agent(webID), partial)
}

// SetGroupAccess rewrites the group's access.
func (c *Client) SetGroupAccess(ctx context.Context, resourceURL, groupURL string, partial solid.Access) (solid.Access, bool, error) {
	return c.setActorAccess(ctx, resourceURL, solid.Group(groupURL), partial)
}

// SetPublicAccess rewrites the access granted to everyone.
func (c *Client) SetPublicAccess(ctx context.Context, resourceURL string, partial solid.Access) (solid.Access, bool, error) {
	return c.setActorAccess(ctx, resourceURL, solid.Public(), partial)
}
