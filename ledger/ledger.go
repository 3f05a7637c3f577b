// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/crowncast/admission"
	"github.com/danielhkuo/crowncast/identity"
	"github.com/danielhkuo/crowncast/models"
	"github.com/danielhkuo/crowncast/roster"
	"github.com/danielhkuo/crowncast/sysconfig"
)

// Pagination limits for Query
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Store is the append-only vote ledger and the single source of truth for
// tallies and logs. Appends are serialized globally: vote volume is modest
// and correctness matters far more than throughput here.
type Store struct {
	db     *sql.DB
	config *sysconfig.Store
	loc    *time.Location

	mu sync.Mutex // serializes Append against itself
}

// New returns a ledger over db. loc is the reference time zone voted
// timestamps are recorded in.
func New(db *sql.DB, config *sysconfig.Store, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{db: db, config: config, loc: loc}
}

// AppendRequest carries one vote attempt into the ledger.
type AppendRequest struct {
	CandidateID string
	CategoryID  string
	Identity    identity.Identity
}

// txView implements admission.LedgerView over the Append transaction, so
// the policy's checks and the insert see the same state.
type txView struct {
	ctx context.Context
	tx  *sql.Tx
}

func (v *txView) HasVote(categoryID, address, fingerprint string) (bool, error) {
	var exists bool
	err := v.tx.QueryRowContext(v.ctx, `
		SELECT EXISTS(
			SELECT 1 FROM vote_event
			WHERE category_id = $1 AND ip_address = $2 AND fingerprint = $3
		)
	`, categoryID, address, fingerprint).Scan(&exists)
	return exists, err
}

func (v *txView) CountByAddress(address string) (int, error) {
	var count int
	err := v.tx.QueryRowContext(v.ctx, `
		SELECT COUNT(*) FROM vote_event WHERE ip_address = $1
	`, address).Scan(&count)
	return count, err
}

// Append runs admission and, on admit, inserts the vote event as one atomic
// unit. Two concurrent calls for the same identity-key resolve to exactly
// one success and one AlreadyVotedCategory rejection.
func (s *Store) Append(ctx context.Context, req AppendRequest) (models.VoteEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.config.Get()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.VoteEvent{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := admission.Evaluate(cfg, &txView{ctx: ctx, tx: tx}, req.CandidateID, req.CategoryID, req.Identity); err != nil {
		return models.VoteEvent{}, err
	}

	event := models.VoteEvent{
		CandidateID: req.CandidateID,
		CategoryID:  req.CategoryID,
		IPAddress:   req.Identity.Address,
		Fingerprint: req.Identity.Fingerprint,
		HardwareID:  req.Identity.HardwareID,
		VoterID:     req.Identity.VoterID,
		Timestamp:   time.Now().In(s.loc),
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO vote_event (candidate_id, category_id, ip_address, fingerprint, hardware_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, event.CandidateID, event.CategoryID, event.IPAddress, event.Fingerprint,
		event.HardwareID, event.VoterID, event.Timestamp).Scan(&event.ID)
	if err != nil {
		// The unique constraint is the durable backstop for the per-category
		// dedup; report it as the same user-facing rejection.
		if isUniqueViolation(err) {
			return models.VoteEvent{}, &admission.Rejection{Reason: models.ReasonAlreadyVotedCategory}
		}
		return models.VoteEvent{}, fmt.Errorf("failed to insert vote event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.VoteEvent{}, fmt.Errorf("failed to commit vote event: %w", err)
	}

	slog.Info("vote admitted",
		"id", event.ID,
		"candidate", event.CandidateID,
		"category", event.CategoryID,
	)

	return event, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}

// Filter narrows a Query. Zero value means no filtering.
type Filter struct {
	CategoryID string
}

// Query returns vote events newest-first with the total count of the
// filtered set. page is 1-based; pageSize is clamped to 1..MaxPageSize.
func (s *Store) Query(ctx context.Context, f Filter, page, pageSize int) ([]models.VoteEvent, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	where := ""
	args := []interface{}{}
	if f.CategoryID != "" {
		where = "WHERE category_id = $1"
		args = append(args, f.CategoryID)
	}

	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote_event `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vote events: %w", err)
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`
		SELECT id, candidate_id, category_id, ip_address, fingerprint, hardware_id, voter_id, created_at
		FROM vote_event %s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, where, limitPos, limitPos+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vote events: %w", err)
	}
	defer rows.Close()

	events := make([]models.VoteEvent, 0, pageSize)
	for rows.Next() {
		var e models.VoteEvent
		if err := rows.Scan(&e.ID, &e.CandidateID, &e.CategoryID, &e.IPAddress,
			&e.Fingerprint, &e.HardwareID, &e.VoterID, &e.Timestamp); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read vote events: %w", err)
	}

	return events, total, nil
}

// AllCounts returns candidateID -> vote count, zero-filled so every roster
// candidate appears even with no votes.
func (s *Store) AllCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(roster.Candidates))
	for _, c := range roster.Candidates {
		counts[c.ID] = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT candidate_id, COUNT(*) FROM vote_event GROUP BY candidate_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote counts: %w", err)
	}

	return counts, nil
}

// WipeAll deletes every vote event and returns the number removed. This is
// the administrator's explicit, confirmed reset - nothing calls it
// implicitly.
func (s *Store) WipeAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM vote_event`)
	if err != nil {
		return 0, fmt.Errorf("failed to wipe ledger: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count wiped rows: %w", err)
	}

	slog.Warn("ledger wiped", "deleted", deleted)
	return deleted, nil
}
