package flow

import (
	"strings"
	"testing"

	"github.com/nightlydental/frontdesk/config"
	"github.com/nightlydental/frontdesk/model"
)

func testConfig() *config.Config {
	return &config.Config{
		PracticeName:        "Sonoran Hills Dental",
		OfficeHoursText:     "Our office hours are Monday through Friday, 8 A M to 5 P M.",
		SchedulingLink:      "https://example.com/book",
		DirectionsLink:      "https://maps.example.com/office",
		OfficeNumber:        "+15550100100",
		FromNumber:          "+15550100199",
		MaxVoicemailSeconds: 180,
	}
}

func TestVoicemailMessageTriageDetails(t *testing.T) {
	yes := true
	cases := []struct {
		name       string
		intent     model.Intent
		path       model.Path
		wantTriage bool
	}{
		{"emergency intent", model.IntentEmergency, model.PathEmergency, true},
		{"emergency path, other intent", model.IntentGeneral, model.PathEmergency, true},
		{"business general", model.IntentGeneral, model.PathBusiness, false},
		{"business billing", model.IntentBilling, model.PathBusiness, false},
		{"no path", model.IntentAppointment, model.PathUnset, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := model.Session{
				CallSID:                "CA1",
				CallerNumber:           "+15550001111",
				Path:                   c.path,
				Intent:                 c.intent,
				PainLevel:              6,
				SwellingBleedingTrauma: &yes,
			}

			msg := voicemailMessage(testConfig(), s, c.intent, "https://api.example.com/rec/RE1")

			if got := strings.Contains(msg, "Pain level: 6"); got != c.wantTriage {
				t.Errorf("pain detail present = %v, want %v\nmsg: %s", got, c.wantTriage, msg)
			}
			if !strings.Contains(msg, "+15550001111") {
				t.Errorf("caller number missing from message: %s", msg)
			}
		})
	}
}

func TestVoicemailMessageRecordingFallback(t *testing.T) {
	s := model.Session{CallSID: "CA1", CallerNumber: "+15550001111"}

	withURL := voicemailMessage(testConfig(), s, model.IntentGeneral, "https://api.example.com/rec/RE1")
	if strings.Contains(withURL, "(no recording url)") {
		t.Errorf("fallback used despite locator: %s", withURL)
	}
	if !strings.Contains(withURL, "https://api.example.com/rec/RE1") {
		t.Errorf("locator missing: %s", withURL)
	}

	withoutURL := voicemailMessage(testConfig(), s, model.IntentGeneral, "")
	if !strings.Contains(withoutURL, "(no recording url)") {
		t.Errorf("fallback missing: %s", withoutURL)
	}
}

func TestEmergencyPageMessage(t *testing.T) {
	yes := true
	s := model.Session{
		CallSID:                "CA1",
		CallerNumber:           "+15550001111",
		Path:                   model.PathEmergency,
		PainLevel:              5,
		SwellingBleedingTrauma: &yes,
	}

	msg := emergencyPageMessage(testConfig(), s)
	for _, want := range []string{"+15550001111", "pain level 5", "Yes", "call them back"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q: %s", want, msg)
		}
	}
}

func TestEmergencyPageMessageUnknowns(t *testing.T) {
	msg := emergencyPageMessage(testConfig(), model.Session{CallSID: "CA1"})
	if !strings.Contains(msg, "(unknown number)") {
		t.Errorf("missing caller fallback: %s", msg)
	}
	if !strings.Contains(msg, "pain level unknown") {
		t.Errorf("missing pain fallback: %s", msg)
	}
}

func TestYesNo(t *testing.T) {
	yes, no := true, false
	if got := yesNo(nil); got != "unknown" {
		t.Errorf("yesNo(nil) = %q", got)
	}
	if got := yesNo(&yes); got != "Yes" {
		t.Errorf("yesNo(true) = %q", got)
	}
	if got := yesNo(&no); got != "No" {
		t.Errorf("yesNo(false) = %q", got)
	}
}
