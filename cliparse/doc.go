// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

# Precedence

CLI flags override environment variables, which override defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

Required (no default):

  - SESSION_SECRET (-session-secret): secret for signing session cookies
  - ADMIN_PASSWORD_HASH (-admin-hash): bcrypt hash of the access password

Optional:

  - PORT (-p): server port (default 8080)
  - DATABASE_URL (-d): connection string or sqlite path (default items.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - RESET_TZ (-reset-tz): IANA timezone for the daily reset
    (default Asia/Kolkata)
  - RESET_TIME (-reset-time): HH:MM:SS time of day for the daily reset
    (default 18:00:00)

# Validation

RESET_TIME must parse as HH:MM:SS or ParseFlags fails. RESET_TZ is not
validated here: an unknown zone name falls back to UTC when the reset
scheduler is constructed, so a typo degrades the schedule rather than
preventing startup.
*/
package cliparse
