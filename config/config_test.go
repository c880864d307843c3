package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN",
		"TWILIO_PHONE_NUMBER", "OFFICE_NOTIFY_NUMBER", "ON_CALL_NUMBER",
		"MAX_VOICEMAIL_SECONDS", "PRACTICE_NAME", "OFFICE_HOURS_TEXT",
		"SCHEDULING_LINK", "DIRECTIONS_LINK",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.MaxVoicemailSeconds != 180 {
		t.Errorf("MaxVoicemailSeconds = %d", cfg.MaxVoicemailSeconds)
	}
	if cfg.PracticeName != "our office" {
		t.Errorf("PracticeName = %q", cfg.PracticeName)
	}
	if cfg.AccountSID != "" || cfg.OnCallNumber != "" {
		t.Errorf("credentials should be empty: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("PRACTICE_NAME", "Sonoran Hills Dental")
	t.Setenv("MAX_VOICEMAIL_SECONDS", "90")
	t.Setenv("ON_CALL_NUMBER", "+15550100177")

	cfg := Load()
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.PracticeName != "Sonoran Hills Dental" {
		t.Errorf("PracticeName = %q", cfg.PracticeName)
	}
	if cfg.MaxVoicemailSeconds != 90 {
		t.Errorf("MaxVoicemailSeconds = %d", cfg.MaxVoicemailSeconds)
	}
	if cfg.MaxVoicemailDuration() != 90*time.Second {
		t.Errorf("MaxVoicemailDuration = %v", cfg.MaxVoicemailDuration())
	}
	if cfg.OnCallNumber != "+15550100177" {
		t.Errorf("OnCallNumber = %q", cfg.OnCallNumber)
	}
}

func TestGetenvIntRejectsGarbage(t *testing.T) {
	cases := map[string]int{
		"":    180,
		"abc": 180,
		"-5":  180,
		"0":   180,
		"240": 240,
	}
	for value, want := range cases {
		t.Setenv("MAX_VOICEMAIL_SECONDS", value)
		if got := getenvInt("MAX_VOICEMAIL_SECONDS", 180); got != want {
			t.Errorf("getenvInt(%q) = %d, want %d", value, got, want)
		}
	}
}
