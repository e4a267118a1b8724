package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/seating"
	"github.com/joho/godotenv"
)

// Config captures environment driven settings for the dashboard service.
type Config struct {
	Port                string
	GinMode             string
	DatabaseURL         string
	DataPath            string
	ShufflePassword     string
	ShufflePasswordHash string
	CORSOrigins         []string
	TeamName            string
	Location            *time.Location
	Layout              seating.Layout
	SeatRoles           []string
	ReminderInterval    time.Duration
	ReminderRulesFile   string
	RemindersEnabled    bool
}

const (
	defaultPort     = "3000"
	defaultDataPath = "dashboard.db"
	defaultTeamName = "Team Agneto"
)

var envPaths = []string{".env", "../.env", "../../.env"}

// LoadDotEnv loads the first .env found in the working directory or its
// parents. Variables already set in the process are left alone.
func LoadDotEnv() {
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Load parses the current process environment. Invalid values are reported
// together.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", defaultPort),
		GinMode:             os.Getenv("GIN_MODE"),
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DataPath:            getEnv("DATA_PATH", defaultDataPath),
		ShufflePassword:     os.Getenv("SHUFFLE_PASSWORD"),
		ShufflePasswordHash: strings.TrimSpace(os.Getenv("SHUFFLE_PASSWORD_HASH")),
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", "*")),
		TeamName:            getEnv("TEAM_NAME", defaultTeamName),
		Location:            time.Local,
		Layout:              seating.DefaultLayout,
		SeatRoles:           append([]string(nil), seating.DefaultRoles...),
		ReminderInterval:    5 * time.Second,
		ReminderRulesFile:   strings.TrimSpace(os.Getenv("REMINDER_RULES_FILE")),
		RemindersEnabled:    true,
	}

	invalid := make([]string, 0, 2)

	if tz := strings.TrimSpace(os.Getenv("DASHBOARD_TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			invalid = append(invalid, "DASHBOARD_TIMEZONE")
		} else {
			cfg.Location = loc
		}
	}

	if v, ok, err := intEnv("SEAT_TOP_ROW"); err != nil {
		invalid = append(invalid, "SEAT_TOP_ROW")
	} else if ok {
		cfg.Layout.Top = v
	}

	if v, ok, err := intEnv("SEAT_BOTTOM_ROW"); err != nil {
		invalid = append(invalid, "SEAT_BOTTOM_ROW")
	} else if ok {
		cfg.Layout.Bottom = v
	}

	if raw := strings.TrimSpace(os.Getenv("SEAT_ROLES")); raw != "" {
		if raw == "*" {
			cfg.SeatRoles = nil
		} else {
			cfg.SeatRoles = splitList(raw)
		}
	}

	if raw := strings.TrimSpace(os.Getenv("REMINDER_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, "REMINDER_INTERVAL")
		} else {
			cfg.ReminderInterval = d
		}
	}

	if raw := strings.TrimSpace(os.Getenv("REMINDERS_ENABLED")); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, "REMINDERS_ENABLED")
		} else {
			cfg.RemindersEnabled = enabled
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment values: %s", strings.Join(invalid, ", "))
	}
	return cfg, nil
}

// intEnv parses a positive integer; ok is false when the variable is unset.
func intEnv(key string) (int, bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	if v <= 0 {
		return 0, false, fmt.Errorf("%s must be positive", key)
	}
	return v, true, nil
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
