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

type ItemHandler struct {
	engine *ledger.Engine
	sched  *reset.Scheduler
}

func NewItemHandler(conn *sql.DB, sched *reset.Scheduler) *ItemHandler {
	return &ItemHandler{engine: ledger.NewEngine(conn), sched: sched}
}

// ListItems handles GET /api/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	if !maybeReset(w, r, h.sched) {
		return
	}

	sess := middleware.SessionFrom(r)

	views, err := h.engine.ListItems(r.Context(), sess.VoterToken)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// AddItem handles POST /api/items
func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if !maybeReset(w, r, h.sched) {
		return
	}

	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.engine.AddItem(r.Context(), req.Name)
	if errors.Is(err, models.ErrEmptyName) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name required")
		return
	}
	if errors.Is(err, models.ErrDuplicateName) {
		middleware.ErrorResponse(w, http.StatusConflict, "This item is already in the list")
		return
	}
	if err != nil {
		slog.Error("failed to add item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	slog.Info("item added", "item_id", item.ID, "name", item.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddItemResponse{
		ID:    item.ID,
		Name:  item.Name,
		Votes: item.Votes,
	})
}

// maybeReset runs the daily reset check before a ledger operation. On
// a failed wipe it answers 500 (the watermark stays put, so the next
// request retries) and reports false so the handler stops: serving the
// operation would expose pre-reset data past the scheduled wipe time.
func maybeReset(w http.ResponseWriter, r *http.Request, sched *reset.Scheduler) bool {
	if err := sched.MaybeReset(r.Context()); err != nil {
		slog.Error("daily reset failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	return true
}
