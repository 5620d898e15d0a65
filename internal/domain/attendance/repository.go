package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for check-in/check-out sessions.
type SessionRepository interface {
	// LockDay serializes all session writes for the key until the ambient
	// transaction ends. Row locks alone cannot close the check-in race:
	// when no open session exists there is no row to lock, and two
	// concurrent check-ins would both insert.
	LockDay(ctx context.Context, key DayKey) error

	// Create appends a new session for the employee's day.
	Create(ctx context.Context, session Session) (Session, error)

	// Update rewrites an existing session (used to close it).
	Update(ctx context.Context, session Session) error

	// GetOpenSession returns the day's open session, or nil if none exists.
	// Inside a transaction the row is locked to serialize concurrent
	// check-ins for the same key.
	GetOpenSession(ctx context.Context, key DayKey) (*Session, error)

	// ListByDay returns all sessions for the key ordered by check-in time.
	ListByDay(ctx context.Context, key DayKey) ([]Session, error)

	// HasSessions reports whether the key has at least one session.
	HasSessions(ctx context.Context, key DayKey) (bool, error)

	// ListOpenBefore returns sessions still open whose day precedes cutoff.
	// Used by the stale-session cron job.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Session, error)
}

// OverrideRepository defines data access for manual status overrides.
type OverrideRepository interface {
	// Get returns the override for the cell, or ErrOverrideNotFound.
	Get(ctx context.Context, key DayKey) (Override, error)

	// Upsert writes the cell, replacing any previous value.
	Upsert(ctx context.Context, override Override) (Override, error)
}
