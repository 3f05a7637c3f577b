// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster holds the immutable candidate and category reference data
for the event.

The roster is a compile-time table: four categories (KING, QUEEN, MISTER,
MISS) and their candidates, in display order. The slice order is load-bearing:
tally tie-breaks resolve to the first-listed candidate.

Lookups:

	c, ok := roster.CandidateByID("k1")
	ok := roster.ValidCandidate("k1", roster.CategoryKing)
	kings := roster.CandidatesInCategory(roster.CategoryKing)

The core treats this data as a read-only lookup table; nothing here is
persisted or mutated at runtime.
*/
package roster
