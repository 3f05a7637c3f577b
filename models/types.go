package models

import "time"

// Reason codes returned in the error field of a failed response.
// These are user-facing and stable; clients match on them.
const (
	ReasonSystemClosed         = "SystemClosed"
	ReasonInvalidCandidate     = "InvalidCandidate"
	ReasonAlreadyVotedCategory = "AlreadyVotedCategory"
	ReasonRateLimitExceeded    = "RateLimitExceeded"
	ReasonIdentityUnresolved   = "IdentityUnresolved"
	ReasonInvalidConfig        = "InvalidConfig"
	ReasonNotFound             = "NotFound"
	ReasonInternal             = "Internal"
)

// Vote limit bounds for SystemConfig.MaxVotesPerIP
const (
	DefaultMaxVotesPerIP = 3
	MinVotesPerIP        = 1
	MaxVotesPerIP        = 20
)

// Request types

type CastVoteRequest struct {
	CandidateID string `json:"candidateId"`
	CategoryID  string `json:"categoryId"`
	Fingerprint string `json:"fingerprint"`
	HardwareID  string `json:"hardwareId"`
	VoterID     string `json:"voterId,omitempty"`
}

// Exactly one of IsOpen or NewMaxVotes is expected per call.
type UpdateSystemRequest struct {
	IsOpen      *bool `json:"isOpen,omitempty"`
	NewMaxVotes *int  `json:"newMaxVotes,omitempty"`
}

type AdminAuthRequest struct {
	PIN string `json:"pin"`
}

// Response types

type CastVoteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SystemStatusResponse struct {
	Success       bool   `json:"success"`
	IsOpen        bool   `json:"isOpen"`
	MaxVotesPerIP int    `json:"maxVotesPerIp"`
	Error         string `json:"error,omitempty"`
}

type AdminAuthResponse struct {
	Success bool `json:"success"`
}

type AdminResetResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type VoteLogsResponse struct {
	Logs       []VoteEvent `json:"logs"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// Domain types

type Candidate struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Name       string `json:"name"`
	Class      string `json:"class"`
	CategoryID string `json:"categoryId"`
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// VoteEvent is the ledger record: one admitted vote. The identity fields
// are stored for audit display only; nothing is recomputed from them after
// insertion.
type VoteEvent struct {
	ID          int64     `json:"id"`
	CandidateID string    `json:"candidateId"`
	CategoryID  string    `json:"categoryId"`
	IPAddress   string    `json:"ipAddress"`
	Fingerprint string    `json:"fingerprint"`
	HardwareID  string    `json:"hardwareId"`
	VoterID     string    `json:"voterId"`
	Timestamp   time.Time `json:"timestamp"`
}

// SystemConfig is the mutable singleton gating all admissions.
type SystemConfig struct {
	IsOpen        bool `json:"isOpen"`
	MaxVotesPerIP int  `json:"maxVotesPerIp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
