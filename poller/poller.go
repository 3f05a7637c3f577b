// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Fetch retrieves a fresh snapshot of whatever the observer is watching
// (tallies, logs). It must honor ctx cancellation.
type Fetch func(ctx context.Context) (interface{}, error)

// Apply receives the snapshot of a fetch that was still current when it
// finished. Superseded or skipped fetches never reach Apply.
type Apply func(snapshot interface{})

// Coordinator serializes one observer session's fetches. At most one fetch
// is in flight; a silent poll arriving while anything is in flight is
// skipped outright, and a manual poll cancels and supersedes the in-flight
// fetch so a slow stale result can never overwrite a fresher one.
type Coordinator struct {
	fetch Fetch
	apply Apply

	mu       sync.Mutex
	token    uint64 // incremented on every started fetch; stale results compare unequal
	inflight bool
	cancel   context.CancelFunc
}

// New returns a Coordinator for one observer session.
func New(fetch Fetch, apply Apply) *Coordinator {
	return &Coordinator{fetch: fetch, apply: apply}
}

// Silent attempts a background poll. It returns false without fetching when
// another fetch (of either kind) is in flight.
func (c *Coordinator) Silent(ctx context.Context) bool {
	c.mu.Lock()
	if c.inflight {
		c.mu.Unlock()
		return false
	}
	token, fctx, cancel := c.begin(ctx)
	c.mu.Unlock()

	c.run(fctx, cancel, token)
	return true
}

// Manual starts a user-initiated poll. Any in-flight fetch is cancelled and
// its result discarded; the manual fetch becomes the current one.
func (c *Coordinator) Manual(ctx context.Context) {
	c.mu.Lock()
	if c.inflight && c.cancel != nil {
		c.cancel()
	}
	token, fctx, cancel := c.begin(ctx)
	c.mu.Unlock()

	c.run(fctx, cancel, token)
}

// begin claims the next token and marks a fetch in flight. Callers hold mu.
func (c *Coordinator) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc) {
	c.token++
	c.inflight = true
	fctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	return c.token, fctx, cancel
}

// run executes the fetch synchronously and applies the result only if this
// fetch is still the current token. cancel is this fetch's own; releasing it
// here keeps a long-lived session context from accumulating child contexts
// across polls.
func (c *Coordinator) run(ctx context.Context, cancel context.CancelFunc, token uint64) {
	defer cancel()

	snapshot, err := c.fetch(ctx)

	c.mu.Lock()
	current := c.token == token
	if current {
		c.inflight = false
		c.cancel = nil
	}
	c.mu.Unlock()

	if !current {
		// Superseded by a manual poll; the result is stale by definition.
		return
	}
	if err != nil {
		if ctx.Err() == nil {
			slog.Warn("poll fetch failed", "error", err)
		}
		return
	}
	c.apply(snapshot)
}

// Run issues silent polls on a fixed interval until ctx is done. Manual may
// be called concurrently from another goroutine; the interval does not
// reset around manual polls.
func (c *Coordinator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Silent(ctx)
		}
	}
}
