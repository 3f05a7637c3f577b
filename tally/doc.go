// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally computes per-candidate and per-category standings from the
ledger's counts.

Compute is a pure function over ledger.AllCounts plus the roster; it keeps
no state of its own. Sorting is a stable descending sort on votes, so equal
counts keep roster order and the first-listed candidate wins ties. Repeated
calls on the same counts are byte-identical.
*/
package tally
