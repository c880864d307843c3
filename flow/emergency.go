package flow

import (
	"github.com/nightlydental/frontdesk/model"
	"github.com/nightlydental/frontdesk/twiml"
)

// PainPrompt asks for the caller's pain level on the emergency branch.
func (m *Machine) PainPrompt(in Input) *twiml.Response {
	m.touch(in)

	return (&twiml.Response{}).Append(
		m.gatherOne(PathEmergencyPainSave,
			"On a scale of 1 to 9, how severe is your pain right now? "+
				"Press a single digit, with 9 being the worst."),
		m.say("Sorry, I didn't get that."),
		redirect(PathEmergencyPain),
	)
}

// PainSave validates and stores the pain level. Only the single digits
// 1 through 9 are accepted; anything else re-prompts.
func (m *Machine) PainSave(in Input) *twiml.Response {
	m.touch(in)

	level, ok := parsePainLevel(in.Digits)
	if !ok {
		return (&twiml.Response{}).Append(
			m.say("Sorry, please press a single digit between 1 and 9."),
			redirect(PathEmergencyPain),
		)
	}

	m.store.Update(in.CallSID, func(s *model.Session) {
		s.PainLevel = level
	})
	return (&twiml.Response{}).Append(redirect(PathEmergencySymptoms))
}

// SymptomsPrompt asks the yes/no swelling, bleeding, or trauma question.
func (m *Machine) SymptomsPrompt(in Input) *twiml.Response {
	m.touch(in)

	return (&twiml.Response{}).Append(
		m.gatherOne(PathEmergencySymptomsSave,
			"Do you have swelling, bleeding, or trauma to the face or mouth? "+
				"Press 1 for yes, or 2 for no."),
		m.say("Sorry, I didn't get that."),
		redirect(PathEmergencySymptoms),
	)
}

// SymptomsSave stores the symptom flag. Accepts 1 (yes) or 2 (no).
func (m *Machine) SymptomsSave(in Input) *twiml.Response {
	m.touch(in)

	var flag bool
	switch in.Digits {
	case "1":
		flag = true
	case "2":
		flag = false
	default:
		return (&twiml.Response{}).Append(
			m.say("Sorry, please press 1 for yes or 2 for no."),
			redirect(PathEmergencySymptoms),
		)
	}

	m.store.Update(in.CallSID, func(s *model.Session) {
		s.SwellingBleedingTrauma = &flag
	})
	return (&twiml.Response{}).Append(redirect(PathEmergencyRoute))
}

// RoutePrompt offers the emergency routing choices. The transfer
// option is spoken only when an on-call number is configured.
func (m *Machine) RoutePrompt(in Input) *twiml.Response {
	m.touch(in)

	prompt := "Press 1 to notify our on call team now and receive a call back. " +
		"Press 2 to leave a voicemail for the office."
	if m.cfg.OnCallNumber != "" {
		prompt += " Press 3 to be connected to our on call staff."
	}

	return (&twiml.Response{}).Append(
		m.gatherOne(PathEmergencyRouteHandle, prompt),
		m.say("Sorry, I didn't get that."),
		redirect(PathEmergencyRoute),
	)
}

// RouteHandle executes the emergency routing choice.
func (m *Machine) RouteHandle(in Input) *twiml.Response {
	session := m.touch(in)

	switch in.Digits {
	case "1":
		m.notifyOffice(in.CallSID, emergencyPageMessage(m.cfg, session))
		// The caller is always told the page went out; retrying or
		// apologizing here only adds friction to an emergency call.
		return (&twiml.Response{}).Append(
			m.say("Okay. We've sent your information to our on call team. "+
				"Someone will call you back as soon as possible."),
			redirect(PathEndNav),
		)
	case "2":
		return m.voicemailCapture(in.CallSID, model.IntentEmergency)
	case "3":
		if m.cfg.OnCallNumber != "" {
			return (&twiml.Response{}).Append(
				m.say("Connecting you now."),
				&twiml.Dial{Number: m.cfg.OnCallNumber},
			)
		}
		return m.reprompt(PathEmergencyRoute)
	default:
		return m.reprompt(PathEmergencyRoute)
	}
}

func parsePainLevel(digits string) (int, bool) {
	if len(digits) != 1 || digits[0] < '1' || digits[0] > '9' {
		return 0, false
	}
	return int(digits[0] - '0'), true
}
