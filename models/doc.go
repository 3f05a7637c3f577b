// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CastVoteRequest: candidateId, categoryId, fingerprint, hardwareId, voterId
  - UpdateSystemRequest: isOpen OR newMaxVotes (exactly one)
  - AdminAuthRequest: pin

# Response Types

Types for JSON responses:

  - CastVoteResponse: success, error
  - SystemStatusResponse: success, isOpen, maxVotesPerIp, error
  - AdminAuthResponse: success
  - AdminResetResponse: success, deleted
  - VoteLogsResponse: logs, pagination
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Candidate, Category: immutable reference data (see package roster)
  - VoteEvent: one admitted vote, the unit of durable state
  - SystemConfig: the open/closed flag and per-IP vote limit

# Reason Codes

Every failed vote or config update carries one of the reason constants
(SystemClosed, InvalidCandidate, AlreadyVotedCategory, RateLimitExceeded,
IdentityUnresolved, InvalidConfig, NotFound, Internal). They are surfaced
verbatim to the client and are part of the API contract.
*/
package models
