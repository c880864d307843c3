// Package server adapts provider webhooks onto the call-flow state
// machine: it parses the inbound form fields, invokes the step, and
// writes the rendered TwiML back.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nightlydental/frontdesk/config"
	"github.com/nightlydental/frontdesk/flow"
	"github.com/nightlydental/frontdesk/twiml"
)

// Server hosts the webhook endpoints.
type Server struct {
	Addr string

	cfg     *config.Config
	machine *flow.Machine
	logger  *zap.Logger
	mux     *http.ServeMux
	server  *http.Server
}

// New wires all webhook routes onto a fresh mux.
func New(cfg *config.Config, machine *flow.Machine, logger *zap.Logger) *Server {
	s := &Server{
		Addr:    cfg.ListenAddr,
		cfg:     cfg,
		machine: machine,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)

	s.step(flow.PathVoice, machine.Entry)
	s.step(flow.PathGate, machine.Gate)
	s.step(flow.PathEmergencyPain, machine.PainPrompt)
	s.step(flow.PathEmergencyPainSave, machine.PainSave)
	s.step(flow.PathEmergencySymptoms, machine.SymptomsPrompt)
	s.step(flow.PathEmergencySymptomsSave, machine.SymptomsSave)
	s.step(flow.PathEmergencyRoute, machine.RoutePrompt)
	s.step(flow.PathEmergencyRouteHandle, machine.RouteHandle)
	s.step(flow.PathBusinessMenu, machine.MenuPrompt)
	s.step(flow.PathBusinessMenuHandle, machine.MenuHandle)
	s.step(flow.PathBusinessAppointments, machine.AppointmentsPrompt)
	s.step(flow.PathBusinessAppointmentsHandle, machine.AppointmentsHandle)
	s.step(flow.PathBusinessBillingVoicemail, machine.BillingVoicemail)
	s.step(flow.PathBusinessGeneralInfo, machine.GeneralInfoPrompt)
	s.step(flow.PathBusinessGeneralHandle, machine.GeneralHandle)
	s.step(flow.PathEndNav, machine.EndNav)
	s.step(flow.PathRecordingComplete, machine.RecordingComplete)

	s.server = &http.Server{
		Addr:    s.Addr,
		Handler: s.mux,
	}

	return s
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("listening", zap.String("addr", s.Addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// step mounts a state-machine step at path. The provider POSTs
// form-encoded fields; anything else is rejected before reaching the
// machine.
func (s *Server) step(path string, fn func(flow.Input) *twiml.Response) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		in := parseInput(r)
		s.logger.Info("webhook",
			zap.String("path", path),
			zap.String("call_sid", in.CallSID),
			zap.String("digits", in.Digits))

		s.writeTwiML(w, fn(in))
	})
}

func (s *Server) writeTwiML(w http.ResponseWriter, resp *twiml.Response) {
	body, err := twiml.Render(resp)
	if err != nil {
		// Never hand the provider a broken document; it would play
		// "application error" to the caller.
		s.logger.Error("twiml render failed", zap.Error(err))
		body = []byte(`<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
			`<Response><Say>We're sorry, something went wrong. Please call back later.</Say><Hangup/></Response>` + "\n")
	}
	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write(body)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, map[string]any{
		"message": s.cfg.PracticeName + " backend is running.",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
