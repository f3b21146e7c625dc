package switcher

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/tabswitch/internal/grid"
	"github.com/1broseidon/tabswitch/internal/platform"
)

// Result describes how a session ended.
type Result struct {
	Phase Phase
	// Target is the activated window; zero unless Phase is PhaseCommitted.
	Target platform.WindowID
	Title  string
}

// Session owns the switcher window for the lifetime of one invocation.
type Session struct {
	backend    platform.Backend
	logger     *slog.Logger
	mode       Mode
	candidates []Candidate
	layout     grid.Layout
	selection  Selection
	phase      Phase
	surface    platform.Surface
}

// NewSession prepares a session over the given candidates. Nothing is
// shown until Run.
func NewSession(b platform.Backend, logger *slog.Logger, mode Mode, candidates []Candidate, reverse bool) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	screenWidth, _ := b.ScreenSize()
	return &Session{
		backend:    b,
		logger:     logger,
		mode:       mode,
		candidates: candidates,
		layout:     grid.Compute(screenWidth, len(candidates)),
		selection:  InitialSelection(len(candidates), reverse),
		phase:      PhaseIdle,
	}
}

// Run collects candidates and runs a session to completion.
func Run(b platform.Backend, logger *slog.Logger, mode Mode, reverse bool) (Result, error) {
	candidates := Collect(b, logger)
	return NewSession(b, logger, mode, candidates, reverse).Run()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Selection returns the current highlight.
func (s *Session) Selection() Selection {
	return s.selection
}

// Layout returns the grid geometry.
func (s *Session) Layout() grid.Layout {
	return s.layout
}

// Selected returns the highlighted candidate.
func (s *Session) Selected() (Candidate, bool) {
	if s.selection.Index < 0 || s.selection.Index >= len(s.candidates) {
		return Candidate{}, false
	}
	return s.candidates[s.selection.Index], true
}

// Run shows the grid, handles input until the session closes, releases
// the window and then activates the selection if it was committed.
func (s *Session) Run() (Result, error) {
	if len(s.candidates) == 0 {
		s.phase = PhaseCancelled
		s.logger.Info("no windows to switch to")
		return Result{Phase: s.phase}, nil
	}

	if err := s.interact(); err != nil {
		return Result{Phase: s.phase}, err
	}

	res := Result{Phase: s.phase}
	if s.phase != PhaseCommitted {
		s.logger.Info("session cancelled")
		return res, nil
	}

	target, _ := s.Selected()
	res.Target = target.ID
	res.Title = target.Title
	s.logger.Info("activating window", "window", target.ID, "title", target.Title)
	if err := s.backend.Activate(target.ID); err != nil {
		s.logger.Warn("activation failed", "window", target.ID, "error", err)
	}
	return res, nil
}

func (s *Session) interact() error {
	if err := s.open(); err != nil {
		s.phase = PhaseCancelled
		return err
	}
	defer s.close()

	s.grab()
	if s.phase.Closed() {
		return nil
	}
	s.redraw()

	for !s.phase.Closed() {
		ev, err := s.backend.NextEvent()
		if err != nil {
			s.phase = PhaseCancelled
			return fmt.Errorf("failed to read event: %w", err)
		}
		s.Handle(ev)
	}
	return nil
}

func (s *Session) open() error {
	screenWidth, screenHeight := s.backend.ScreenSize()
	bounds := s.layout.Bounds(screenWidth, screenHeight)

	surface, err := s.backend.OpenSurface(bounds)
	if err != nil {
		return fmt.Errorf("failed to open switcher window: %w", err)
	}
	s.surface = surface
	s.phase = PhaseOpen
	s.logger.Debug("switcher opened",
		"mode", s.mode.String(),
		"candidates", len(s.candidates),
		"columns", s.layout.Columns,
		"rows", s.layout.Rows(),
		"selected", s.selection.Index,
	)
	return nil
}

// grab takes the keyboard. In hold mode a failed grab cancels the
// session, and a modifier already released commits it right away.
func (s *Session) grab() {
	if err := s.surface.GrabKeyboard(); err != nil {
		if s.mode == ModeHold {
			s.logger.Warn("keyboard grab failed, cancelling", "error", err)
			s.phase = PhaseCancelled
			return
		}
		s.logger.Warn("keyboard grab failed", "error", err)
		return
	}

	if s.mode == ModeHold && !s.backend.ModifierHeld() {
		s.logger.Debug("modifier released before grab, committing")
		s.phase = PhaseCommitted
	}
}

func (s *Session) close() {
	if s.surface == nil {
		return
	}
	s.surface.UngrabKeyboard()
	s.surface.Destroy()
	s.surface = nil
}

// Handle applies one event and reports whether the session is closed.
func (s *Session) Handle(ev platform.Event) bool {
	if s.phase != PhaseOpen {
		return s.phase.Closed()
	}

	switch ev.Kind {
	case platform.EventNavigate:
		s.selection = s.selection.Next(ev.Reverse)
		s.logger.Debug("navigate", "reverse", ev.Reverse, "selected", s.selection.Index)
		s.redraw()
	case platform.EventCancel:
		s.phase = PhaseCancelled
	case platform.EventConfirm:
		if s.mode == ModeKeyboard {
			s.phase = PhaseCommitted
		}
	case platform.EventTriggerReleased:
		if s.mode == ModeHold {
			s.phase = PhaseCommitted
		}
	case platform.EventExpose:
		s.redraw()
	}
	return s.phase.Closed()
}

func (s *Session) redraw() {
	if s.surface == nil {
		return
	}
	if err := render(s.surface, s.layout, s.candidates, s.selection.Index); err != nil {
		s.logger.Warn("render failed", "error", err)
	}
}
