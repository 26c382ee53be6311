// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/daily-pick/ledger"
	"github.com/danielhkuo/daily-pick/middleware"
	"github.com/danielhkuo/daily-pick/models"
	"github.com/danielhkuo/daily-pick/reset"
)

type VoteHandler struct {
	engine *ledger.Engine
	sched  *reset.Scheduler
}

func NewVoteHandler(conn *sql.DB, sched *reset.Scheduler) *VoteHandler {
	return &VoteHandler{engine: ledger.NewEngine(conn), sched: sched}
}

// CastVote handles POST /api/items/{id}/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	if !maybeReset(w, r, h.sched) {
		return
	}

	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item id is required")
		return
	}

	sess := middleware.SessionFrom(r)

	votes, err := h.engine.CastVote(r.Context(), itemID, sess.VoterToken)
	if errors.Is(err, models.ErrItemNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if errors.Is(err, models.ErrAlreadyVoted) {
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted for this item")
		return
	}
	if err != nil {
		slog.Error("failed to cast vote", "error", err, "item_id", itemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	slog.Info("vote cast", "item_id", itemID, "votes", votes)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		ID:    itemID,
		Votes: votes,
	})
}
