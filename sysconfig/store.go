// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sysconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/crowncast/models"
)

// ErrInvalidConfig is returned for out-of-range limit values. The stored
// value is left unchanged.
var ErrInvalidConfig = errors.New("invalid system configuration value")

// Store owns the SystemConfig singleton: one durable row, one in-memory
// copy behind a RWMutex. Every mutation writes through to the database
// before swapping the in-memory copy, so a restart observes the last
// committed state and a concurrent Get sees old or new, never a mix.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	cur models.SystemConfig
}

// Load reads the singleton row and returns a ready Store.
func Load(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}

	row := db.QueryRowContext(ctx, `
		SELECT is_open, max_votes_per_ip FROM system_config WHERE id = 1
	`)
	if err := row.Scan(&s.cur.IsOpen, &s.cur.MaxVotesPerIP); err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	return s, nil
}

// Get returns a copy of the current configuration.
func (s *Store) Get() models.SystemConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// SetOpen toggles the voting gate and returns the updated configuration.
func (s *Store) SetOpen(ctx context.Context, open bool) (models.SystemConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		UPDATE system_config SET is_open = $1 WHERE id = 1
	`, open)
	if err != nil {
		return s.cur, fmt.Errorf("failed to persist is_open: %w", err)
	}

	s.cur.IsOpen = open
	return s.cur, nil
}

// SetLimit updates the per-IP vote limit. Values outside 1..20 fail with
// ErrInvalidConfig and leave the stored value unchanged.
func (s *Store) SetLimit(ctx context.Context, limit int) (models.SystemConfig, error) {
	if limit < models.MinVotesPerIP || limit > models.MaxVotesPerIP {
		return s.Get(), ErrInvalidConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		UPDATE system_config SET max_votes_per_ip = $1 WHERE id = 1
	`, limit)
	if err != nil {
		return s.cur, fmt.Errorf("failed to persist max_votes_per_ip: %w", err)
	}

	s.cur.MaxVotesPerIP = limit
	return s.cur, nil
}
