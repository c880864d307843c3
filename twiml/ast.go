// Package twiml models the subset of TwiML this service speaks and
// provides a renderer for responses plus a parser used to assert on
// them in tests.
package twiml

import "time"

// Node is the interface for all TwiML AST nodes
type Node interface {
	isNode()
}

// Response is the root TwiML element
type Response struct {
	Children []Node
}

func (Response) isNode() {}

// Append adds verbs to the response and returns it for chaining.
func (r *Response) Append(nodes ...Node) *Response {
	r.Children = append(r.Children, nodes...)
	return r
}

// Say outputs text-to-speech
type Say struct {
	Text  string
	Voice string
}

func (Say) isNode() {}

// Play plays an audio file
type Play struct {
	URL string
}

func (Play) isNode() {}

// Pause waits for a specified duration
type Pause struct {
	Length time.Duration
}

func (Pause) isNode() {}

// Gather collects DTMF input and posts it to Action
type Gather struct {
	Timeout   time.Duration
	NumDigits int
	Action    string
	Method    string // "POST" or "GET"
	Children  []Node // Verbs spoken while gathering
}

func (Gather) isNode() {}

// Record records the caller's voice and posts the result to Action
type Record struct {
	MaxLength time.Duration
	PlayBeep  bool
	Action    string
	Method    string
}

func (Record) isNode() {}

// Dial connects the caller to another number
type Dial struct {
	Number string
}

func (Dial) isNode() {}

// Redirect fetches new TwiML from a URL
type Redirect struct {
	URL    string
	Method string
}

func (Redirect) isNode() {}

// Hangup ends the call
type Hangup struct{}

func (Hangup) isNode() {}
