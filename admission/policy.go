// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admission

import (
	"fmt"

	"github.com/danielhkuo/crowncast/identity"
	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/roster"
)

// Rejection is an expected, user-facing admission outcome. The Reason code
// is surfaced verbatim to the voter.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string {
	return "vote rejected: " + r.Reason
}

// AsRejection unwraps a Rejection from an error, if present.
func AsRejection(err error) (*Rejection, bool) {
	rej, ok := err.(*Rejection)
	return rej, ok
}

// LedgerView is the slice of ledger state the policy consults. The ledger
// implements it over the same transaction that performs the insert, which is
// what makes check-then-act atomic.
type LedgerView interface {
	// HasVote reports whether a vote with this identity-key already exists.
	HasVote(categoryID, address, fingerprint string) (bool, error)
	// CountByAddress counts votes from this address across all categories.
	CountByAddress(address string) (int, error)
}

// Evaluate runs the admission checks in order, cheapest first, and returns
// nil on admit or a *Rejection on the first failing check. Any other error
// is a storage failure.
//
// The check order is part of the contract: a closed system rejects before
// candidate validation, and the per-category dedup is reported before the
// cross-category rate limit.
func Evaluate(cfg models.SystemConfig, view LedgerView, candidateID, categoryID string, id identity.Identity) error {
	if !cfg.IsOpen {
		return &Rejection{Reason: models.ReasonSystemClosed}
	}

	if !roster.ValidCandidate(candidateID, categoryID) {
		return &Rejection{Reason: models.ReasonInvalidCandidate}
	}

	voted, err := view.HasVote(categoryID, id.Address, id.Fingerprint)
	if err != nil {
		return fmt.Errorf("dedup check failed: %w", err)
	}
	if voted {
		return &Rejection{Reason: models.ReasonAlreadyVotedCategory}
	}

	// Rate limit counts by address only, deliberately: many devices behind
	// one shared network may each vote once per category, but the address as
	// a whole is capped.
	count, err := view.CountByAddress(id.Address)
	if err != nil {
		return fmt.Errorf("rate limit check failed: %w", err)
	}
	if count >= cfg.MaxVotesPerIP {
		return &Rejection{Reason: models.ReasonRateLimitExceeded}
	}

	return nil
}
