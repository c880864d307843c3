// Package notify wraps outbound SMS delivery behind a contract that
// never fails loudly: every send returns a success flag and a
// diagnostic string, regardless of what went wrong. A broken
// notification channel must never become a caller-facing error.
package notify

import (
	"fmt"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Sender dispatches a single text message. Implementations must not
// panic or return through any channel other than the (ok, detail)
// pair.
type Sender interface {
	Send(to, body string) (ok bool, detail string)
}

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	from   string
	rest   *twilio.RestClient
	logger *zap.Logger
}

// NewTwilioSender builds a sender from credentials. Empty credentials
// are allowed; sends will report failure at dispatch time instead of
// failing startup.
func NewTwilioSender(accountSID, authToken, from string, logger *zap.Logger) *TwilioSender {
	s := &TwilioSender{from: from, logger: logger}
	if accountSID != "" && authToken != "" {
		s.rest = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}
	return s
}

// Send dispatches body to the destination number. It never panics and
// never returns an error value; all failure modes collapse into
// (false, reason).
func (s *TwilioSender) Send(to, body string) (ok bool, detail string) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			detail = fmt.Sprintf("panic during send: %v", r)
			s.logger.Error("sms send panicked", zap.Any("panic", r))
		}
	}()

	if s.rest == nil {
		return false, "missing env vars: TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN"
	}
	if s.from == "" {
		return false, "missing env var: TWILIO_PHONE_NUMBER"
	}
	if to == "" {
		return false, "no destination number"
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.rest.Api.CreateMessage(params); err != nil {
		if restErr, isRest := err.(*client.TwilioRestError); isRest {
			return false, fmt.Sprintf("twilio rejected send (code %d): %s", restErr.Code, restErr.Message)
		}
		return false, fmt.Sprintf("send failed: %v", err)
	}

	return true, "sent"
}
