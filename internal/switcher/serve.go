package switcher

import (
	"fmt"

	"github.com/1broseidon/tabswitch/internal/logging"
	"github.com/1broseidon/tabswitch/internal/platform"
)

// Serve grabs Alt+Tab and Alt+Shift+Tab on the root window and runs a
// hold-mode session for every trigger until the event stream fails.
// The diagnostic log is truncated at the start of each session.
func Serve(b platform.Backend, logger *logging.Logger) error {
	if err := b.GrabTrigger(); err != nil {
		return fmt.Errorf("failed to grab trigger keys: %w", err)
	}
	logger.Slog().Info("waiting for trigger")

	for {
		ev, err := b.NextEvent()
		if err != nil {
			return err
		}
		if ev.Kind != platform.EventNavigate {
			continue
		}

		if err := logger.Reset(); err != nil {
			logger.Slog().Warn("failed to reset log", "error", err)
		}
		logger.Slog().Info("switcher triggered", "reverse", ev.Reverse)

		res, err := Run(b, logger.Slog(), ModeHold, ev.Reverse)
		if err != nil {
			return err
		}
		logger.Slog().Info("session finished", "phase", res.Phase.String())
	}
}
