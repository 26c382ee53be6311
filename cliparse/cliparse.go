package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// ResetTimeLayout is the accepted RESET_TIME format (time-of-day).
const ResetTimeLayout = "15:04:05"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSecret string
	AdminPassHash string
	ResetTZ       string
	ResetTime     string
}

// ParseFlags validates flags and sets defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("daily-pick", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Reset schedule
	fs.StringVar(&cfg.ResetTZ, "reset-tz", "", "IANA timezone for the daily reset")
	fs.StringVar(&cfg.ResetTime, "reset-time", "", "Time of day for the daily reset (HH:MM:SS)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.StringVar(&cfg.AdminPassHash, "admin-hash", "", "bcrypt hash of the access password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "items.db" // local sqlite file
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.ResetTZ == "" {
		cfg.ResetTZ = os.Getenv("RESET_TZ")
		if cfg.ResetTZ == "" {
			cfg.ResetTZ = "Asia/Kolkata"
		}
	}
	// An unknown timezone falls back to UTC later (reset.New); a malformed
	// reset time is a hard config error here.
	if cfg.ResetTime == "" {
		cfg.ResetTime = os.Getenv("RESET_TIME")
		if cfg.ResetTime == "" {
			cfg.ResetTime = "18:00:00"
		}
	}
	if _, err := time.Parse(ResetTimeLayout, cfg.ResetTime); err != nil {
		return Config{}, errors.New("invalid RESET_TIME (want HH:MM:SS)")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.AdminPassHash == "" {
		cfg.AdminPassHash = os.Getenv("ADMIN_PASSWORD_HASH")
	}
	if cfg.AdminPassHash == "" {
		return Config{}, errors.New("ADMIN_PASSWORD_HASH required")
	}

	return cfg, nil
}
