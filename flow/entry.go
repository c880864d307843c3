package flow

import (
	"github.com/nightlydental/frontdesk/model"
	"github.com/nightlydental/frontdesk/twiml"
)

// Entry is the first step of every call: the emergency disclaimer
// followed by the top-level gate prompt. No input and invalid input
// both loop back here.
func (m *Machine) Entry(in Input) *twiml.Response {
	m.touch(in)

	resp := &twiml.Response{}
	resp.Append(
		m.say("If this is a life threatening emergency, hang up and dial 911."),
		m.gatherOne(PathGate,
			"Thanks for calling "+m.cfg.PracticeName+". "+
				"If you are calling about a dental emergency, press 1. "+
				"For appointments, billing, or general questions, press 2."),
		m.say("Sorry, I didn't get that."),
		redirect(PathVoice),
	)
	return resp
}

// Gate routes the caller onto the emergency or business branch. The
// entry gate is the one step whose invalid case loops back to the full
// disclaimer rather than re-prompting in place.
func (m *Machine) Gate(in Input) *twiml.Response {
	m.touch(in)

	switch in.Digits {
	case "1":
		m.store.Update(in.CallSID, func(s *model.Session) {
			s.Path = model.PathEmergency
		})
		return (&twiml.Response{}).Append(redirect(PathEmergencyPain))
	case "2":
		m.store.Update(in.CallSID, func(s *model.Session) {
			s.Path = model.PathBusiness
		})
		return (&twiml.Response{}).Append(redirect(PathBusinessMenu))
	default:
		return (&twiml.Response{}).Append(
			m.say("Sorry, that wasn't a valid selection."),
			redirect(PathVoice),
		)
	}
}

// EndNav is the universal "what next" step spoken after a completed
// action. It is self-actioned: a POST without digits renders the
// prompt, a POST with digits handles the choice. Anything other than
// the two menu digits ends the call.
func (m *Machine) EndNav(in Input) *twiml.Response {
	m.touch(in)

	switch in.Digits {
	case "":
		return (&twiml.Response{}).Append(
			m.gatherOne(PathEndNav,
				"To return to the main menu, press 1. "+
					"For appointments, billing, or general questions, press 2. "+
					"Otherwise, you may hang up."),
			m.say("Thanks for calling "+m.cfg.PracticeName+". Goodbye."),
			&twiml.Hangup{},
		)
	case "1":
		return (&twiml.Response{}).Append(redirect(PathVoice))
	case "2":
		return (&twiml.Response{}).Append(redirect(PathBusinessMenu))
	default:
		return (&twiml.Response{}).Append(
			m.say("Thanks for calling "+m.cfg.PracticeName+". Goodbye."),
			&twiml.Hangup{},
		)
	}
}
