// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/daily-pick/cliparse"
)

// Open connects to the database selected by cfg.DatabaseType.
// Callers must have registered the matching driver (blank import).
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		return sql.Open("sqlite", SqliteDSN(cfg.DatabaseURL))
	default:
		return nil, fmt.Errorf("unknown database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}
}

// SqliteDSN turns a plain file path into a modernc.org/sqlite DSN with
// the pragmas the server depends on: busy_timeout so concurrent writers
// queue instead of failing, WAL for concurrent readers, foreign_keys so
// deleting an item cascades to its votes.
func SqliteDSN(path string) string {
	dsn := path
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
}

// IsUniqueViolation reports whether err is a uniqueness-constraint
// violation from either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}

// IsForeignKeyViolation reports whether err is a foreign-key violation
// from either supported driver. A vote insert hits this when its item
// was deleted between the existence check and the insert.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || // sqlite
		strings.Contains(msg, "violates foreign key constraint") // postgres
}
