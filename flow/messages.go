package flow

import (
	"fmt"
	"strconv"

	"github.com/nightlydental/frontdesk/config"
	"github.com/nightlydental/frontdesk/model"
)

// Notification and SMS bodies. Everything the office receives comes
// from here so the wording stays in one place.

func emergencyPageMessage(cfg *config.Config, s model.Session) string {
	return fmt.Sprintf(
		"%s emergency line: caller %s reports pain level %s, swelling, bleeding, or trauma: %s. Please call them back as soon as possible.",
		cfg.PracticeName, callerOrUnknown(s), painOrUnknown(s), yesNo(s.SwellingBleedingTrauma))
}

func voicemailMessage(cfg *config.Config, s model.Session, intent model.Intent, recordingURL string) string {
	ref := recordingURL
	if ref == "" {
		ref = "(no recording url)"
	}
	label := string(intent)
	if label == "" {
		label = "unspecified"
	}

	msg := fmt.Sprintf("New voicemail for %s from %s (intent: %s): %s",
		cfg.PracticeName, callerOrUnknown(s), label, ref)

	// Triage details ride along only for emergency voicemails.
	if intent == model.IntentEmergency || s.IsEmergency() {
		msg += fmt.Sprintf(" Pain level: %s. Swelling, bleeding, or trauma: %s.",
			painOrUnknown(s), yesNo(s.SwellingBleedingTrauma))
	}
	return msg
}

func callbackRequestMessage(cfg *config.Config, s model.Session) string {
	return fmt.Sprintf("Caller %s would like a call back from %s to schedule an appointment.",
		callerOrUnknown(s), cfg.PracticeName)
}

func schedulingLinkText(cfg *config.Config) string {
	return fmt.Sprintf("Book an appointment with %s: %s", cfg.PracticeName, cfg.SchedulingLink)
}

func schedulingNoticeMessage(cfg *config.Config, s model.Session) string {
	return fmt.Sprintf("Caller %s was sent the scheduling link.", callerOrUnknown(s))
}

func directionsText(cfg *config.Config) string {
	return fmt.Sprintf("Directions to %s: %s", cfg.PracticeName, cfg.DirectionsLink)
}

func directionsNoticeMessage(cfg *config.Config, s model.Session) string {
	return fmt.Sprintf("Caller %s was sent directions.", callerOrUnknown(s))
}

func callerOrUnknown(s model.Session) string {
	if s.CallerNumber == "" {
		return "(unknown number)"
	}
	return s.CallerNumber
}

func painOrUnknown(s model.Session) string {
	if s.PainLevel == 0 {
		return "unknown"
	}
	return strconv.Itoa(s.PainLevel)
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return "unknown"
	case *b:
		return "Yes"
	default:
		return "No"
	}
}
