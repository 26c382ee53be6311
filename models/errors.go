// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Expected outcomes of ledger operations. Handlers map these to 4xx
// responses; anything else is a storage failure and becomes a 500.
var (
	// ErrEmptyName is returned when an item name is empty after trimming.
	ErrEmptyName = errors.New("item name is required")

	// ErrDuplicateName is returned when a live item already has the same
	// name under case-insensitive comparison.
	ErrDuplicateName = errors.New("item already exists")

	// ErrItemNotFound is returned when a vote targets an item id with no
	// live item.
	ErrItemNotFound = errors.New("item not found")

	// ErrAlreadyVoted is returned when a voter already has a recorded
	// vote for the item. Frequent and non-fatal.
	ErrAlreadyVoted = errors.New("already voted for this item")
)
