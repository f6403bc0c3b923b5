package config

import (
	"os"
	"strconv"
	"time"

	"leadgate/internal/ratelimit"
	"leadgate/internal/redirect"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	DatabaseURL string

	// GroupURLs maps each redirect group to its WhatsApp destination.
	// The router depends only on this mapping, not on where it came from.
	GroupURLs     redirect.URLMap
	MastermindURL string

	RateLimitDisabled      bool
	RateLimitWindow        time.Duration
	RateLimitMax           int
	RateLimitSweepInterval time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. Unset or unparseable rate-limit knobs fall back to the limiter's
// defaults rather than failing startup.
func FromEnv() Server {
	addr := os.Getenv("LEADGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GroupURLs: redirect.URLMap{
			redirect.GroupStudentChannel:         os.Getenv("WHATSAPP_STUDENT_CHANNEL_URL"),
			redirect.GroupIndiaCommunity:         os.Getenv("WHATSAPP_INDIA_COMMUNITY_URL"),
			redirect.GroupInternationalCommunity: os.Getenv("WHATSAPP_INTERNATIONAL_COMMUNITY_URL"),
		},
		MastermindURL:          os.Getenv("WHATSAPP_MASTERMIND_URL"),
		RateLimitDisabled:      os.Getenv("RATE_LIMIT_DISABLED") == "true",
		RateLimitWindow:        durationFromEnv("RATE_LIMIT_WINDOW", ratelimit.DefaultWindow),
		RateLimitMax:           intFromEnv("RATE_LIMIT_MAX", ratelimit.DefaultLimit),
		RateLimitSweepInterval: durationFromEnv("RATE_LIMIT_SWEEP_INTERVAL", ratelimit.DefaultSweepInterval),
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intFromEnv(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
