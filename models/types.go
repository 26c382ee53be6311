// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type AddItemRequest struct {
	Name string `json:"name"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Response types

type AddItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

type VoteResponse struct {
	ID    string `json:"id"`
	Votes int    `json:"votes"`
}

type LoginResponse struct {
	Ok bool `json:"ok"`
}

// Domain types

type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	VoterToken string    `json:"-"` // Never expose in JSON
	CreatedAt  time.Time `json:"created_at"`
}

// ItemView is an Item as seen by one voter: the tally plus whether
// that voter already has a recorded vote for it.
type ItemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Votes     int    `json:"votes"`
	VotedByMe bool   `json:"voted_by_me"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
