package twiml

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRenderParseRoundTrip(t *testing.T) {
	orig := &Response{
		Children: []Node{
			&Say{Text: "If this is a life threatening emergency, hang up and dial 911.", Voice: "alice"},
			&Gather{
				Timeout:   7 * time.Second,
				NumDigits: 1,
				Action:    "/gate",
				Method:    "POST",
				Children: []Node{
					&Say{Text: "Press 1 for emergencies. Press 2 for everything else.", Voice: "alice"},
				},
			},
			&Say{Text: "Sorry, I didn't get that.", Voice: "alice"},
			&Redirect{URL: "/voice", Method: "POST"},
		},
	}

	data, err := Render(orig)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, data)
	}

	if !reflect.DeepEqual(parsed, orig) {
		t.Errorf("round trip mismatch:\nGot:  %#v\nWant: %#v\nXML:\n%s", parsed, orig, data)
	}
}

func TestRenderRecordAndHangup(t *testing.T) {
	orig := &Response{
		Children: []Node{
			&Say{Text: "Please leave a message after the tone.", Voice: "alice"},
			&Record{
				Action:    "/recording-complete?intent=billing",
				Method:    "POST",
				MaxLength: 180 * time.Second,
				PlayBeep:  true,
			},
			&Hangup{},
		},
	}

	data, err := Render(orig)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`maxLength="180"`,
		`playBeep="true"`,
		"<Hangup>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered TwiML missing %q:\n%s", want, out)
		}
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, orig) {
		t.Errorf("round trip mismatch:\nGot:  %#v\nWant: %#v", parsed, orig)
	}
}

func TestRenderDialAndPause(t *testing.T) {
	orig := &Response{
		Children: []Node{
			&Say{Text: "Connecting you now.", Voice: "alice"},
			&Pause{Length: 2 * time.Second},
			&Dial{Number: "+18045550123"},
		},
	}

	data, err := Render(orig)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, orig) {
		t.Errorf("round trip mismatch:\nGot:  %#v\nWant: %#v", parsed, orig)
	}
}

func TestRenderEmptyResponse(t *testing.T) {
	data, err := Render(&Response{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(string(data), "<Response></Response>") {
		t.Errorf("unexpected empty response rendering:\n%s", data)
	}
}

func TestParseRejectsUnknownElement(t *testing.T) {
	_, err := Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?><Response><Sms>hi</Sms></Response>`))
	if err == nil {
		t.Fatal("expected error for unknown element, got nil")
	}
}

func TestParseRejectsMissingResponse(t *testing.T) {
	_, err := Parse([]byte(`<?xml version="1.0" encoding="UTF-8"?><Say>hi</Say>`))
	if err == nil {
		t.Fatal("expected error for missing <Response>, got nil")
	}
}
