// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package fetch is the pod HTTP layer: it moves Turtle documents and
// resource metadata between the client and Solid servers. Everything
// above it works on in-memory graphs.
package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/podward/podward/internal/config"
	"github.com/podward/podward/internal/rdf"
	"github.com/podward/podward/pkg/solid"
)

var tracer = otel.Tracer("podward/fetch")

const contentTypeTurtle = "text/turtle"

// maxBodySize caps response bodies; ACRs and policy documents are small.
const maxBodySize = 8 << 20

// TokenProvider supplies the bearer token for a request. Returning an
// empty token sends the request unauthenticated.
type TokenProvider func(ctx context.Context) (string, error)

// Client talks to Solid pod servers.
type Client struct {
	http        *http.Client
	token       TokenProvider
	retries     int
	concurrency int
	allowlist   *config.Allowlist
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenProvider sets the bearer token source.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.token = tp }
}

// WithStaticToken sends the given bearer token on every request.
func WithStaticToken(token string) Option {
	return WithTokenProvider(func(context.Context) (string, error) {
		return token, nil
	})
}

// WithRetries sets how many times idempotent requests are retried.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// WithConcurrency caps parallel requests in FetchAll.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithAllowlist restricts requests to matching origins.
func WithAllowlist(a *config.Allowlist) Option {
	return func(c *Client) { c.allowlist = a }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client. Without options it uses a 30 second timeout,
// three retries, and eight-way fetch concurrency.
func New(opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: 30 * time.Second},
		retries:     3,
		concurrency: 8,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchResourceInfo fetches the resource's server metadata without its
// body: the resource URL plus any advertised ACR and ACL URLs from the
// Link response headers.
func (c *Client) FetchResourceInfo(ctx context.Context, url string) (solid.Info, error) {
	ctx, span := tracer.Start(ctx, "fetch.resource_info",
		trace.WithAttributes(attribute.String("resource.url", url)))
	defer span.End()

	resp, err := c.do(ctx, http.MethodHead, url, "")
	if err != nil {
		return solid.Info{}, err
	}
	defer resp.Body.Close() //nolint:errcheck
	if err := statusError(url, resp.StatusCode); err != nil {
		return solid.Info{}, err
	}
	return infoFromResponse(url, resp), nil
}

// FetchDataset fetches a Turtle document and parses it into a graph,
// returning the resource metadata alongside.
func (c *Client) FetchDataset(ctx context.Context, url string) (rdf.Graph, solid.Info, error) {
	ctx, span := tracer.Start(ctx, "fetch.dataset",
		trace.WithAttributes(attribute.String("resource.url", url)))
	defer span.End()

	resp, err := c.do(ctx, http.MethodGet, url, "")
	if err != nil {
		return rdf.Graph{}, solid.Info{}, err
	}
	defer resp.Body.Close() //nolint:errcheck
	if err := statusError(url, resp.StatusCode); err != nil {
		return rdf.Graph{}, solid.Info{}, err
	}

	g, err := rdf.Parse(url, io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return rdf.Graph{}, solid.Info{}, oops.In("fetch").
			Code("PARSE_FAILED").
			With("url", url).
			Wrapf(err, "parsing document %s", url)
	}
	return g, infoFromResponse(url, resp), nil
}

// SaveDataset serializes the graph and PUTs it back as Turtle.
func (c *Client) SaveDataset(ctx context.Context, url string, g rdf.Graph) error {
	ctx, span := tracer.Start(ctx, "fetch.save_dataset",
		trace.WithAttributes(attribute.String("resource.url", url)))
	defer span.End()

	resp, err := c.do(ctx, http.MethodPut, url, rdf.Serialize(g))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck
	return statusError(url, resp.StatusCode)
}

// do runs one HTTP request. GET and HEAD are retried on transport
// errors and 5xx responses; writes go out exactly once.
func (c *Client) do(ctx context.Context, method, url, body string) (*http.Response, error) {
	if !c.allowlist.Allows(url) {
		return nil, oops.In("fetch").
			Code("ORIGIN_BLOCKED").
			With("url", url).
			Errorf("origin of %s is not in the allowlist", url)
	}

	idempotent := method == http.MethodGet || method == http.MethodHead
	attempts := 1
	if idempotent {
		attempts += c.retries
	}

	var resp *http.Response
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewExponential(250*time.Millisecond)) //nolint:gosec
	start := time.Now()
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := c.newRequest(ctx, method, url, body)
		if err != nil {
			return err
		}
		r, err := c.http.Do(req)
		if err != nil {
			err = oops.In("fetch").
				Code("NETWORK").
				With("url", url).
				With("method", method).
				Wrapf(err, "%s %s", method, url)
			if idempotent {
				return retry.RetryableError(err)
			}
			return err
		}
		if idempotent && r.StatusCode >= 500 {
			drain(r)
			return retry.RetryableError(oops.In("fetch").
				Code("SERVER_ERROR").
				With("url", url).
				With("status", r.StatusCode).
				Errorf("%s %s returned %d", method, url, r.StatusCode))
		}
		resp = r
		return nil
	})
	recordRequest(method, time.Since(start), resp, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, url, body string) (*http.Request, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, oops.In("fetch").
			Code("BAD_REQUEST").
			With("url", url).
			Wrapf(err, "building %s request for %s", method, url)
	}
	if method == http.MethodGet {
		req.Header.Set("Accept", contentTypeTurtle)
	}
	if method == http.MethodPut {
		req.Header.Set("Content-Type", contentTypeTurtle)
	}
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return nil, oops.In("fetch").
				Code("TOKEN_PROVIDER").
				Wrapf(err, "resolving bearer token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// statusError maps non-success statuses to coded errors.
func statusError(url string, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return oops.In("fetch").
			Code("FORBIDDEN").
			With("url", url).
			With("status", status).
			Errorf("access to %s refused with %d", url, status)
	case status == http.StatusNotFound || status == http.StatusGone:
		return oops.In("fetch").
			Code("NOT_FOUND").
			With("url", url).
			With("status", status).
			Errorf("%s not found", url)
	default:
		return oops.In("fetch").
			Code("UNEXPECTED_STATUS").
			With("url", url).
			With("status", status).
			Errorf("%s returned unexpected status %d", url, status)
	}
}

func infoFromResponse(url string, resp *http.Response) solid.Info {
	info := solid.Info{URL: url}
	links := parseLinkHeaders(url, resp.Header.Values("Link"))
	info.ACRURL = links.acr
	info.ACLURL = links.acl
	return info
}

func drain(r *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxBodySize))
	_ = r.Body.Close()
}
