// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reset

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/daily-pick/cliparse"
)

const dateLayout = "2006-01-02"

// Scheduler wipes all votes and items once per calendar day, lazily:
// MaybeReset is evaluated on request arrival, no background timers.
// Authority is process-local; the watermark is in-memory only and a
// restart simply re-fires the wipe on the next eligible request.
type Scheduler struct {
	db      *sql.DB
	loc     *time.Location
	resetAt time.Duration // offset from midnight in loc

	// now is swapped out by tests to simulate day-boundary crossings.
	now func() time.Time

	// lastReset holds the date (in loc) of the last completed wipe as
	// a "2006-01-02" string; empty means none this process lifetime.
	// Reads are lock-free; the transition is serialized by mu.
	mu        sync.Mutex
	lastReset atomic.Value
}

// New builds a Scheduler from config. An unknown RESET_TZ falls back
// to UTC. cfg.ResetTime is assumed validated by cliparse.
func New(conn *sql.DB, cfg cliparse.Config) *Scheduler {
	loc, err := time.LoadLocation(cfg.ResetTZ)
	if err != nil {
		slog.Warn("unknown RESET_TZ, falling back to UTC", "tz", cfg.ResetTZ)
		loc = time.UTC
	}

	t, err := time.Parse(cliparse.ResetTimeLayout, cfg.ResetTime)
	if err != nil {
		// cliparse rejects malformed values before we get here
		slog.Warn("unparseable RESET_TIME, falling back to 18:00:00", "value", cfg.ResetTime)
		t, _ = time.Parse(cliparse.ResetTimeLayout, "18:00:00")
	}

	s := &Scheduler{
		db:      conn,
		loc:     loc,
		resetAt: timeOfDay(t),
		now:     time.Now,
	}
	s.lastReset.Store("")
	return s
}

// SetNow replaces the scheduler's clock. Test hook for simulating
// day-boundary crossings; production code never calls this.
func (s *Scheduler) SetNow(now func() time.Time) {
	s.now = now
}

// Location returns the timezone the reset schedule is evaluated in.
func (s *Scheduler) Location() *time.Location {
	return s.loc
}

// LastReset returns the date of the last completed wipe in the reset
// timezone, or "" if none has run this process lifetime.
func (s *Scheduler) LastReset() string {
	return s.lastReset.Load().(string)
}

// MaybeReset deletes all votes and items if the configured reset time
// has passed and no reset ran yet today. Cheap when there is nothing
// to do: two time comparisons, no lock. Safe to call from concurrent
// request handlers; at most one caller performs the wipe per day.
//
// On a failed wipe the watermark is not advanced, so the next eligible
// request retries.
func (s *Scheduler) MaybeReset(ctx context.Context) error {
	now := s.now().In(s.loc)
	today := now.Format(dateLayout)

	if s.LastReset() == today {
		return nil
	}
	if timeOfDay(now) < s.resetAt {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the lock: another request may have completed the
	// wipe while we waited.
	if s.LastReset() == today {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM vote"); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM item"); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	// Advance only after the commit.
	s.lastReset.Store(today)
	slog.Info("daily reset executed", "date", today, "tz", s.loc.String())
	return nil
}

func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}
