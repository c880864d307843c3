// Package calltest drives a simulated phone call against the webhook
// handler the way the telephony provider would: it posts to webhook
// paths, parses the TwiML, speaks the prompts, presses scripted digits
// into gathers, and follows redirects until the call settles. It exists
// for tests.
package calltest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nightlydental/frontdesk/twiml"
)

// maxWebhooks bounds how many webhook round trips one call may make, so
// a flow bug that loops forever fails the test instead of hanging it.
const maxWebhooks = 25

// Caller simulates one inbound call.
type Caller struct {
	t       *testing.T
	handler http.Handler
	callSID string
	from    string

	script []string
	hops   int

	// Spoken collects every line the caller heard, in order.
	Spoken []string
	// Dialed is set when the call is transferred to a number.
	Dialed string
	// RecordAction is set when the flow starts a recording; the call
	// sits there until FinishRecording.
	RecordAction string
	// HungUp reports whether the flow ended the call.
	HungUp bool
}

// New creates a caller for the given handler and caller identity.
func New(t *testing.T, handler http.Handler, callSID, from string) *Caller {
	return &Caller{t: t, handler: handler, callSID: callSID, from: from}
}

// Press queues digits the caller will enter, one entry per gather.
func (c *Caller) Press(digits ...string) *Caller {
	c.script = append(c.script, digits...)
	return c
}

// Start begins the call at the given webhook path and runs it until it
// hangs up, starts a recording, transfers, or runs out of verbs.
func (c *Caller) Start(path string) {
	c.t.Helper()
	c.run(path, url.Values{})
}

// FinishRecording completes a pending recording, posting the locator
// (empty means the provider supplied none) to the recording action.
func (c *Caller) FinishRecording(recordingURL string) {
	c.t.Helper()
	if c.RecordAction == "" {
		c.t.Fatalf("no recording in progress")
	}
	form := url.Values{}
	if recordingURL != "" {
		form.Set("RecordingUrl", recordingURL)
	}
	action := c.RecordAction
	c.RecordAction = ""
	c.run(action, form)
}

// Heard reports whether any spoken line contains the substring.
func (c *Caller) Heard(substr string) bool {
	for _, line := range c.Spoken {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func (c *Caller) run(path string, form url.Values) {
	c.t.Helper()

	c.hops++
	if c.hops > maxWebhooks {
		c.t.Fatalf("call did not settle after %d webhooks; last path %s", maxWebhooks, path)
	}
	c.execute(c.post(path, form))
}

func (c *Caller) post(path string, form url.Values) *twiml.Response {
	c.t.Helper()

	form.Set("CallSid", c.callSID)
	form.Set("From", c.from)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		c.t.Fatalf("POST %s: status %d, body %s", path, rec.Code, rec.Body.String())
	}
	resp, err := twiml.Parse(rec.Body.Bytes())
	if err != nil {
		c.t.Fatalf("POST %s: invalid TwiML: %v\n%s", path, err, rec.Body.String())
	}
	return resp
}

func (c *Caller) execute(resp *twiml.Response) {
	c.t.Helper()

	for _, node := range resp.Children {
		switch n := node.(type) {
		case *twiml.Say:
			c.Spoken = append(c.Spoken, n.Text)
		case *twiml.Play:
			// nothing to hear in a simulated call
		case *twiml.Pause:
			// no waiting in a simulated call
		case *twiml.Gather:
			for _, child := range n.Children {
				if s, ok := child.(*twiml.Say); ok {
					c.Spoken = append(c.Spoken, s.Text)
				}
			}
			if len(c.script) > 0 {
				digits := c.script[0]
				c.script = c.script[1:]
				form := url.Values{}
				form.Set("Digits", digits)
				c.run(n.Action, form)
				return
			}
			// No scripted digits: the gather times out and the call
			// falls through to the verbs after it.
		case *twiml.Record:
			c.RecordAction = n.Action
			return
		case *twiml.Dial:
			c.Dialed = n.Number
			return
		case *twiml.Redirect:
			c.run(n.URL, url.Values{})
			return
		case *twiml.Hangup:
			c.HungUp = true
			return
		default:
			c.t.Fatalf("unsupported verb in simulated call: %T", node)
		}
	}
}
