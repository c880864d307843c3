package flow

import (
	"net/url"

	"github.com/nightlydental/frontdesk/model"
	"github.com/nightlydental/frontdesk/twiml"
)

// voicemailCapture records the declared intent and hands the call to
// the provider's recorder. The intent rides the action URL as a query
// parameter so the completion callback gets it back.
func (m *Machine) voicemailCapture(callSID string, intent model.Intent) *twiml.Response {
	m.setIntent(callSID, intent)

	action := PathRecordingComplete + "?intent=" + url.QueryEscape(string(intent))
	return (&twiml.Response{}).Append(
		m.say("Please leave your name and callback number after the tone. "+
			"Please do not include sensitive medical details. "+
			"When you're done, you can hang up."),
		&twiml.Record{
			Action:    action,
			Method:    "POST",
			MaxLength: m.cfg.MaxVoicemailDuration(),
			PlayBeep:  true,
		},
	)
}

// RecordingComplete is the provider's callback after voicemail capture
// ends. It stores the recording locator, notifies the office, and
// thanks the caller. A failed notification is logged only; by now the
// caller has finished their message.
func (m *Machine) RecordingComplete(in Input) *twiml.Response {
	intent := in.Intent
	session := m.store.Update(in.CallSID, func(s *model.Session) {
		if s.CallerNumber == "" && in.From != "" {
			s.CallerNumber = in.From
		}
		if in.RecordingURL != "" {
			s.RecordingURL = in.RecordingURL
		}
		if intent == model.IntentUnset {
			intent = s.Intent
		} else {
			s.Intent = intent
		}
	})

	m.notifyOffice(in.CallSID, voicemailMessage(m.cfg, session, intent, in.RecordingURL))

	return (&twiml.Response{}).Append(
		m.say("Thanks. Your message has been recorded. Goodbye."),
		&twiml.Hangup{},
	)
}
