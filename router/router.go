// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/daily-pick/cliparse"
	"github.com/danielhkuo/daily-pick/handlers"
	"github.com/danielhkuo/daily-pick/middleware"
	"github.com/danielhkuo/daily-pick/reset"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// One scheduler instance owns the daily-reset watermark
	sched := reset.New(db, cfg)

	// Initialize handlers
	itemHandler := handlers.NewItemHandler(db, sched)
	voteHandler := handlers.NewVoteHandler(db, sched)
	sessionHandler := handlers.NewSessionHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session (password gate)
	mux.HandleFunc("POST /login", middleware.WithLogging(middleware.WithSession(cfg, sessionHandler.Login)))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))

	// Ledger operations (require login)
	mux.HandleFunc("GET /api/items", middleware.WithLogging(middleware.WithSession(cfg, middleware.RequireLogin(itemHandler.ListItems))))
	mux.HandleFunc("POST /api/items", middleware.WithLogging(middleware.WithSession(cfg, middleware.RequireLogin(itemHandler.AddItem))))
	mux.HandleFunc("POST /api/items/{id}/vote", middleware.WithLogging(middleware.WithSession(cfg, middleware.RequireLogin(voteHandler.CastVote))))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("daily-pick API v1"))
	})

	return mux
}
