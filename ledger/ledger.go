// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/daily-pick/db"
	"github.com/danielhkuo/daily-pick/models"
)

// Engine exposes the vote ledger operations. All mutations of items
// and votes go through here so the denormalized item.votes counter
// stays equal to the count of vote rows.
type Engine struct {
	db *sql.DB
}

func NewEngine(conn *sql.DB) *Engine {
	return &Engine{db: conn}
}

// ListItems returns all live items ordered by votes descending, ties
// broken by creation time ascending, each flagged with whether
// voterToken already voted for it.
func (e *Engine) ListItems(ctx context.Context, voterToken string) ([]models.ItemView, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT id, name, votes FROM item
		ORDER BY votes DESC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	views := []models.ItemView{}
	for rows.Next() {
		var v models.ItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	voted, err := e.votedItemIDs(ctx, voterToken)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].VotedByMe = voted[views[i].ID]
	}

	return views, nil
}

func (e *Engine) votedItemIDs(ctx context.Context, voterToken string) (map[string]bool, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT item_id FROM vote WHERE voter_token = $1
	`, voterToken)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	voted := make(map[string]bool)
	for rows.Next() {
		var itemID string
		if err := rows.Scan(&itemID); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		voted[itemID] = true
	}
	return voted, rows.Err()
}

// AddItem creates a new item with zero votes. The name is trimmed of
// surrounding whitespace; an empty result is models.ErrEmptyName and a
// case-insensitive collision with a live item is models.ErrDuplicateName.
func (e *Engine) AddItem(ctx context.Context, name string) (models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Item{}, models.ErrEmptyName
	}

	// Friendly pre-check. The unique index on LOWER(name) is the
	// authoritative guard; a race between two identical inserts still
	// resolves below.
	var exists bool
	err := e.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM item WHERE LOWER(name) = LOWER($1))
	`, name).Scan(&exists)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to check for duplicate item: %w", err)
	}
	if exists {
		return models.Item{}, models.ErrDuplicateName
	}

	it := models.Item{
		ID:        uuid.NewString(),
		Name:      name,
		Votes:     0,
		CreatedAt: time.Now().UTC(),
	}

	_, err = e.db.ExecContext(ctx, `
		INSERT INTO item (id, name, votes, created_at)
		VALUES ($1, $2, $3, $4)
	`, it.ID, it.Name, it.Votes, it.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.Item{}, models.ErrDuplicateName
		}
		return models.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}

	return it, nil
}

// CastVote records one vote by voterToken for itemID and returns the
// new tally. The vote row insert and the counter increment are one
// transaction: either both land or neither does.
//
// Returns models.ErrItemNotFound if no live item has that id and
// models.ErrAlreadyVoted if this voter already has a vote recorded for
// the item (resolved by the storage UNIQUE constraint, so concurrent
// duplicates cannot both succeed).
func (e *Engine) CastVote(ctx context.Context, itemID, voterToken string) (int, error) {
	var exists bool
	err := e.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM item WHERE id = $1)
	`, itemID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check item: %w", err)
	}
	if !exists {
		return 0, models.ErrItemNotFound
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (id, item_id, voter_token, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), itemID, voterToken, time.Now().UTC())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, models.ErrAlreadyVoted
		}
		// The item can vanish between the existence check and the
		// insert (daily reset); the foreign key catches that.
		if db.IsForeignKeyViolation(err) {
			return 0, models.ErrItemNotFound
		}
		return 0, fmt.Errorf("failed to insert vote: %w", err)
	}

	// Increment against the stored value, not a value read earlier, so
	// concurrent successful votes all land in the final count.
	var votes int
	err = tx.QueryRowContext(ctx, `
		UPDATE item SET votes = votes + 1 WHERE id = $1 RETURNING votes
	`, itemID).Scan(&votes)
	if err != nil {
		return 0, fmt.Errorf("failed to increment vote count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit vote: %w", err)
	}

	return votes, nil
}
