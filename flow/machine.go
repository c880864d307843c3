// Package flow implements the call-flow state machine. Each step is a
// function of the session and the caller's latest input, producing the
// TwiML script to speak and the action the provider should take next.
// The HTTP layer is a thin adapter over the exported step methods.
package flow

import (
	"time"

	"go.uber.org/zap"

	"github.com/nightlydental/frontdesk/config"
	"github.com/nightlydental/frontdesk/model"
	"github.com/nightlydental/frontdesk/notify"
	"github.com/nightlydental/frontdesk/twiml"
)

// Webhook paths. Gather and Record actions reference these, and the
// HTTP layer mounts its handlers on the same constants so the two
// sides cannot drift apart.
const (
	PathVoice                      = "/voice"
	PathGate                       = "/gate"
	PathEmergencyPain              = "/emergency/pain"
	PathEmergencyPainSave          = "/emergency/pain-save"
	PathEmergencySymptoms          = "/emergency/symptoms"
	PathEmergencySymptomsSave      = "/emergency/symptoms-save"
	PathEmergencyRoute             = "/emergency/route"
	PathEmergencyRouteHandle       = "/emergency/route-handle"
	PathBusinessMenu               = "/business/menu"
	PathBusinessMenuHandle         = "/business/menu-handle"
	PathBusinessAppointments       = "/business/appointments"
	PathBusinessAppointmentsHandle = "/business/appointments-handle"
	PathBusinessBillingVoicemail   = "/business/billing-voicemail"
	PathBusinessGeneralInfo        = "/business/general-info"
	PathBusinessGeneralHandle      = "/business/general-handle"
	PathEndNav                     = "/end-nav"
	PathRecordingComplete          = "/recording-complete"
)

const (
	// gatherTimeout is how long the provider waits for a digit before
	// falling through to the verbs after the Gather.
	gatherTimeout = 7 * time.Second

	speakVoice = "alice"
)

// Input carries the webhook fields a step consumes.
type Input struct {
	CallSID      string
	From         string
	Digits       string
	RecordingURL string
	Intent       model.Intent
}

// Machine executes call-flow steps against the shared session store.
type Machine struct {
	cfg    *config.Config
	store  *model.Store
	sender notify.Sender
	logger *zap.Logger
}

// NewMachine wires the state machine to its collaborators.
func NewMachine(cfg *config.Config, store *model.Store, sender notify.Sender, logger *zap.Logger) *Machine {
	return &Machine{cfg: cfg, store: store, sender: sender, logger: logger}
}

// touch looks up (or creates) the session for the call and records the
// caller's number the first time a webhook carries it.
func (m *Machine) touch(in Input) model.Session {
	return m.store.Update(in.CallSID, func(s *model.Session) {
		if s.CallerNumber == "" && in.From != "" {
			s.CallerNumber = in.From
		}
	})
}

// notifyOffice sends an internal notification. Failures are logged and
// swallowed; the caller-facing flow does not depend on the result.
func (m *Machine) notifyOffice(callSID, body string) {
	ok, detail := m.sender.Send(m.cfg.OfficeNumber, body)
	if ok {
		m.logger.Info("office notified",
			zap.String("call_sid", callSID))
		return
	}
	m.logger.Error("office notification failed",
		zap.String("call_sid", callSID),
		zap.String("detail", detail))
}

func (m *Machine) say(text string) *twiml.Say {
	return &twiml.Say{Text: text, Voice: speakVoice}
}

// gatherOne collects a single digit and posts it to action, speaking
// the given lines while waiting.
func (m *Machine) gatherOne(action string, lines ...string) *twiml.Gather {
	g := &twiml.Gather{
		NumDigits: 1,
		Action:    action,
		Method:    "POST",
		Timeout:   gatherTimeout,
	}
	for _, line := range lines {
		g.Children = append(g.Children, m.say(line))
	}
	return g
}

func redirect(path string) *twiml.Redirect {
	return &twiml.Redirect{URL: path, Method: "POST"}
}

// reprompt speaks an apology and re-runs the same step so invalid
// input never silently advances the flow.
func (m *Machine) reprompt(step string) *twiml.Response {
	return (&twiml.Response{}).Append(
		m.say("Sorry, that wasn't a valid selection."),
		redirect(step),
	)
}
