// Package model defines the per-call session record and its store.
package model

import "time"

// Path is the top-level branch the caller chose at the gate.
type Path string

const (
	PathUnset     Path = ""
	PathEmergency Path = "emergency"
	PathBusiness  Path = "business"
)

// Intent annotates voicemail notifications with why the caller left
// a message.
type Intent string

const (
	IntentUnset       Intent = ""
	IntentAppointment Intent = "appointment"
	IntentBilling     Intent = "billing"
	IntentGeneral     Intent = "general"
	IntentEmergency   Intent = "emergency"
)

// ParseIntent maps a wire value to an Intent, defaulting to unset for
// anything unrecognized.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentAppointment, IntentBilling, IntentGeneral, IntentEmergency:
		return Intent(s)
	default:
		return IntentUnset
	}
}

// Session is the mutable record of answers collected during one call.
// Fields are append-only within a call: a later step may overwrite a
// field but nothing clears one.
type Session struct {
	CallSID      string    `json:"call_sid"`
	CallerNumber string    `json:"caller_number,omitempty"`
	Path         Path      `json:"path,omitempty"`
	Intent       Intent    `json:"intent,omitempty"`

	// PainLevel is 0 until collected; valid values are 1 through 9.
	// Set only on the emergency branch.
	PainLevel int `json:"pain_level,omitempty"`

	// SwellingBleedingTrauma is nil until the symptom question is
	// answered. Set only on the emergency branch.
	SwellingBleedingTrauma *bool `json:"swelling_bleeding_trauma,omitempty"`

	// RecordingURL is the provider's locator for a captured voicemail.
	RecordingURL string `json:"recording_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmergency reports whether the session followed the emergency path.
func (s *Session) IsEmergency() bool {
	return s.Path == PathEmergency
}
