package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/input"
	"github.com/Alia5/inputframe/internal/log"
	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/window/tcellwin"
)

// ErrNotTerminal is returned by interactive commands when stdin is not a
// terminal.
var ErrNotTerminal = errors.New("an interactive terminal is required")

// session is the live update loop shared by watch and record: poll the
// terminal, update the input core, redraw.
type session struct {
	win    *tcellwin.Window
	in     *input.Input
	logger *slog.Logger
	trace  log.EventLogger
	rate   time.Duration
	title  string

	// onFrame, if set, sees every polled batch before the update.
	onFrame func(f event.Frame) error

	frames int
}

func openScreen() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}
	return screen, nil
}

func newSession(screen tcell.Screen, logger *slog.Logger, trace log.EventLogger, rate time.Duration, hide bool) *session {
	s := &session{
		win:    tcellwin.New(screen, logger),
		in:     input.New(logger),
		logger: logger,
		trace:  trace,
		rate:   rate,
		title:  "inputframe",
	}
	s.in.SetHideCursor(hide)
	return s
}

// run ticks until ctx is done or the user quits with Esc or Ctrl+C.
// F2 toggles the desired cursor mode.
func (s *session) run(ctx context.Context) error {
	ticker := time.NewTicker(s.rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		quit, err := s.tick()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *session) tick() (bool, error) {
	events := s.win.Poll()
	ext := s.win.Extent()
	f := event.Frame{Width: ext.Width, Height: ext.Height, Events: events}

	s.trace.Log(s.title, f)
	if s.onFrame != nil {
		if err := s.onFrame(f); err != nil {
			return true, err
		}
	}

	if err := s.in.Update(s.win, ext, events); err != nil {
		s.logger.Debug("frame problems", "frame", s.frames, "error", err)
	}
	s.frames++

	snap := s.in.Snapshot()
	if snap.KeyPressed(keyboard.KeyEscape) ||
		(snap.KeyPressed(keyboard.KeyLeftCtrl) && snap.KeyPressed(keyboard.KeyC)) {
		return true, nil
	}
	if snap.KeyPressed(keyboard.KeyF2) {
		s.in.SetHideCursor(!s.in.HideCursor())
	}

	s.draw()
	return false, nil
}

func (s *session) draw() {
	screen := s.win.Screen()
	screen.Clear()

	r := newFrameReport(s.frames-1, s.win.Extent(), s.in, nil)
	lines := []string{
		fmt.Sprintf("%s  frame %d  %dx%d  cursor=%s  (F2 toggles grab, Esc quits)",
			s.title, r.Frame, r.Width, r.Height, r.CursorMode),
		"keys pressed:  " + joinOrDash(r.KeysPressed),
		"buttons down:  " + joinOrDash(r.ButtonsDown),
		fmt.Sprintf("pointer:       %v  delta %v  raw %v", r.PointerPosition, r.PointerDelta, r.RawPointerDelta),
		fmt.Sprintf("wheel:         %v", r.WheelDelta),
		fmt.Sprintf("text:          %q", r.Text),
	}
	for y, line := range lines {
		drawString(screen, 0, y, line, tcell.StyleDefault)
	}
	screen.Show()
}

func joinOrDash(ss []string) string {
	if len(ss) == 0 {
		return "-"
	}
	out := ss[0]
	for _, s := range ss[1:] {
		out += " " + s
	}
	return out
}

// drawString writes str at (x, y), advancing by each rune's cell width.
func drawString(screen tcell.Screen, x, y int, str string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range str {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
