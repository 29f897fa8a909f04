// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package fetch

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/podward/podward/internal/errutil"
	"github.com/podward/podward/internal/rdf"
)

// FetchAll fetches every URL concurrently and returns the graphs of the
// ones that succeeded, keyed by URL. Failures are logged and skipped:
// a policy document that cannot be fetched leaves its policies
// unresolved, which the evaluator tolerates.
func (c *Client) FetchAll(ctx context.Context, urls []string) map[string]rdf.Graph {
	ctx, span := tracer.Start(ctx, "fetch.all",
		trace.WithAttributes(attribute.Int("fetch.count", len(urls))))
	defer span.End()

	if len(urls) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		out    = make(map[string]rdf.Graph, len(urls))
		tokens = make(chan struct{}, c.concurrency)
	)

	for _, url := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			tokens <- struct{}{}
			defer func() { <-tokens }()

			g, _, err := c.FetchDataset(ctx, url)
			if err != nil {
				errutil.LogWarn(c.logger, "policy document fetch failed", err)
				return
			}
			mu.Lock()
			out[url] = g
			mu.Unlock()
		}(url)
	}
	wg.Wait()

	if len(out) == 0 {
		return nil
	}
	return out
}
