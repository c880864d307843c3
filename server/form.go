package server

import (
	"net/http"
	"strings"

	"github.com/nightlydental/frontdesk/flow"
	"github.com/nightlydental/frontdesk/model"
)

// parseInput extracts the webhook fields a step consumes. The provider
// sends application/x-www-form-urlencoded; the declared voicemail
// intent rides the query string across the recording round trip.
func parseInput(r *http.Request) flow.Input {
	_ = r.ParseForm()

	return flow.Input{
		CallSID:      r.PostFormValue("CallSid"),
		From:         normalizePhone(r.PostFormValue("From")),
		Digits:       strings.TrimSpace(r.PostFormValue("Digits")),
		RecordingURL: r.PostFormValue("RecordingUrl"),
		Intent:       model.ParseIntent(r.URL.Query().Get("intent")),
	}
}

func normalizePhone(s string) string {
	// The provider sometimes sends "anonymous" or empty; keep as-is.
	return strings.TrimSpace(s)
}
