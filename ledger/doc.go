// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the append-only durable store of admitted votes and the
single source of truth for tallies and logs.

# Append

Append is the one place the exactly-once invariant is enforced, not merely
checked. It holds the store mutex, opens a transaction, runs the admission
policy over a view of that same transaction, inserts, and commits:

	event, err := store.Append(ctx, ledger.AppendRequest{
		CandidateID: "k1",
		CategoryID:  roster.CategoryKing,
		Identity:    id,
	})

Rejections come back as *admission.Rejection with a user-facing reason code;
anything else is a storage failure. A failed Append is never retried
automatically - if the failure happened after commit, a retry would risk a
double admission.

Serialization is global rather than per identity-key. Vote volume at a
single-day event is small; the simplicity is worth more than the lost
parallelism. The schema's unique constraint remains as a durable backstop.

# Reads

Query (newest-first, paginated, category-filterable), AllCounts
(zero-filled per roster) and the admission view helpers run without the
mutex and only ever see committed state.

# WipeAll

WipeAll deletes the entire ledger and reports the count. It is the
administrator's explicit, confirmed action and is never invoked implicitly.
*/
package ledger
