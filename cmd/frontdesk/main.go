// Command frontdesk runs the phone front-end for a dental practice:
// a webhook server that walks callers through emergency triage,
// appointment and billing menus, and voicemail capture.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nightlydental/frontdesk/config"
	"github.com/nightlydental/frontdesk/flow"
	"github.com/nightlydental/frontdesk/model"
	"github.com/nightlydental/frontdesk/notify"
	"github.com/nightlydental/frontdesk/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		// Not fatal: the flow still answers calls, sends just fail soft.
		logger.Warn("twilio credentials not configured; SMS sends will fail")
	}

	store := model.NewStore()
	sender := notify.NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.FromNumber, logger)
	machine := flow.NewMachine(cfg, store, sender, logger)
	srv := server.New(cfg, machine, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
}
