// Package config resolves all environment-provided settings once at startup.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the service reads from the environment.
// Missing Twilio credentials are not an error here; sends simply fail
// soft at dispatch time.
type Config struct {
	ListenAddr string

	// Twilio credentials and the number SMS is sent from.
	AccountSID string
	AuthToken  string
	FromNumber string

	// OfficeNumber receives internal notifications (voicemail alerts,
	// emergency pages, callback requests).
	OfficeNumber string

	// OnCallNumber, when set, enables the emergency transfer option.
	OnCallNumber string

	MaxVoicemailSeconds int

	PracticeName    string
	OfficeHoursText string
	SchedulingLink  string
	DirectionsLink  string
}

// MaxVoicemailDuration returns the voicemail cap as a duration.
func (c *Config) MaxVoicemailDuration() time.Duration {
	return time.Duration(c.MaxVoicemailSeconds) * time.Second
}

// Load reads a .env file if present, then resolves the configuration
// from the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:          getenv("LISTEN_ADDR", ":8080"),
		AccountSID:          os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:           os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber:          os.Getenv("TWILIO_PHONE_NUMBER"),
		OfficeNumber:        os.Getenv("OFFICE_NOTIFY_NUMBER"),
		OnCallNumber:        os.Getenv("ON_CALL_NUMBER"),
		MaxVoicemailSeconds: getenvInt("MAX_VOICEMAIL_SECONDS", 180),
		PracticeName:        getenv("PRACTICE_NAME", "our office"),
		OfficeHoursText:     getenv("OFFICE_HOURS_TEXT", "Our office hours are Monday through Friday, 8 A M to 5 P M."),
		SchedulingLink:      os.Getenv("SCHEDULING_LINK"),
		DirectionsLink:      os.Getenv("DIRECTIONS_LINK"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
