// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poller coordinates an observer session's repeated tally/log fetches
so a dashboard can poll without request storms or stale-overwrite races.

Two kinds of poll:

  - Silent: background, on a fixed interval. Skipped entirely (not queued)
    while any fetch is in flight.
  - Manual: user-initiated (refresh button, filter change). Cancels and
    supersedes whatever is in flight; the superseded result is discarded
    even if it arrives later.

Each session holds at most one active request token. A fetch's result is
applied only if its token is still current when the fetch completes, which
closes the classic race where a slow background poll lands after a fast
manual one and reverts the display to stale data.

	c := poller.New(fetchTallies, updateView)
	go c.Run(ctx, 5*time.Second) // silent loop
	...
	c.Manual(ctx) // refresh button
*/
package poller
