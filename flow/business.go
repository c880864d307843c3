package flow

import (
	"go.uber.org/zap"

	"github.com/nightlydental/frontdesk/model"
	"github.com/nightlydental/frontdesk/twiml"
)

// MenuPrompt offers the business sub-branches.
func (m *Machine) MenuPrompt(in Input) *twiml.Response {
	m.touch(in)

	return (&twiml.Response{}).Append(
		m.gatherOne(PathBusinessMenuHandle,
			"For appointments, press 1. "+
				"For billing questions, press 2. "+
				"For office hours and directions, press 3."),
		m.say("Sorry, I didn't get that."),
		redirect(PathBusinessMenu),
	)
}

// MenuHandle records the chosen intent and routes to the sub-branch.
func (m *Machine) MenuHandle(in Input) *twiml.Response {
	m.touch(in)

	switch in.Digits {
	case "1":
		m.setIntent(in.CallSID, model.IntentAppointment)
		return (&twiml.Response{}).Append(redirect(PathBusinessAppointments))
	case "2":
		m.setIntent(in.CallSID, model.IntentBilling)
		return (&twiml.Response{}).Append(redirect(PathBusinessBillingVoicemail))
	case "3":
		m.setIntent(in.CallSID, model.IntentGeneral)
		return (&twiml.Response{}).Append(redirect(PathBusinessGeneralInfo))
	default:
		return m.reprompt(PathBusinessMenu)
	}
}

// AppointmentsPrompt offers the appointment actions.
func (m *Machine) AppointmentsPrompt(in Input) *twiml.Response {
	m.touch(in)

	return (&twiml.Response{}).Append(
		m.gatherOne(PathBusinessAppointmentsHandle,
			"To request a call back about an appointment, press 1. "+
				"To get a text with our scheduling link, press 2. "+
				"To leave a voicemail, press 3."),
		m.say("Sorry, I didn't get that."),
		redirect(PathBusinessAppointments),
	)
}

// AppointmentsHandle executes the appointment choice.
func (m *Machine) AppointmentsHandle(in Input) *twiml.Response {
	session := m.touch(in)

	switch in.Digits {
	case "1":
		m.notifyOffice(in.CallSID, callbackRequestMessage(m.cfg, session))
		return (&twiml.Response{}).Append(
			m.say("Okay. We've let the office know you'd like a call back about an appointment."),
			redirect(PathEndNav),
		)
	case "2":
		return m.textCaller(in, session,
			schedulingLinkText(m.cfg),
			schedulingNoticeMessage(m.cfg, session),
			"Text sent. You can book an appointment using the link we just sent you.",
			"We could not send a text right now. Please visit our website to book, or call back later.")
	case "3":
		return m.voicemailCapture(in.CallSID, model.IntentAppointment)
	default:
		return m.reprompt(PathBusinessAppointments)
	}
}

// BillingVoicemail routes billing callers straight to voicemail
// capture; there is no further menu.
func (m *Machine) BillingVoicemail(in Input) *twiml.Response {
	m.touch(in)
	return m.voicemailCapture(in.CallSID, model.IntentBilling)
}

// GeneralInfoPrompt speaks the office hours, then offers directions by
// text or voicemail.
func (m *Machine) GeneralInfoPrompt(in Input) *twiml.Response {
	m.touch(in)

	return (&twiml.Response{}).Append(
		m.say(m.cfg.OfficeHoursText),
		m.gatherOne(PathBusinessGeneralHandle,
			"To get directions by text, press 1. "+
				"To leave a voicemail, press 2."),
		m.say("Sorry, I didn't get that."),
		redirect(PathBusinessGeneralInfo),
	)
}

// GeneralHandle executes the general-info choice.
func (m *Machine) GeneralHandle(in Input) *twiml.Response {
	session := m.touch(in)

	switch in.Digits {
	case "1":
		return m.textCaller(in, session,
			directionsText(m.cfg),
			directionsNoticeMessage(m.cfg, session),
			"Directions text sent.",
			"We could not send a text right now. Please check our website for directions.")
	case "2":
		return m.voicemailCapture(in.CallSID, model.IntentGeneral)
	default:
		return m.reprompt(PathBusinessGeneralInfo)
	}
}

func (m *Machine) setIntent(callSID string, intent model.Intent) {
	m.store.Update(callSID, func(s *model.Session) {
		s.Intent = intent
	})
}

// textCaller sends body to the caller's own number, separately notifies
// the office that the action happened, and speaks the closing line
// matching the caller-SMS outcome before handing off to navigation.
func (m *Machine) textCaller(in Input, session model.Session, body, officeNote, okLine, failLine string) *twiml.Response {
	ok, detail := m.sender.Send(session.CallerNumber, body)
	if ok {
		m.logger.Info("caller texted",
			zap.String("call_sid", in.CallSID))
	} else {
		m.logger.Error("caller text failed",
			zap.String("call_sid", in.CallSID),
			zap.String("detail", detail))
	}

	m.notifyOffice(in.CallSID, officeNote)

	line := okLine
	if !ok {
		line = failLine
	}
	return (&twiml.Response{}).Append(
		m.say(line),
		redirect(PathEndNav),
	)
}
