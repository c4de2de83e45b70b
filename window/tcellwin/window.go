// Package tcellwin adapts a tcell terminal screen to the input core: it turns
// tcell events into raw event batches and implements input.Cursor on top of
// the terminal's mouse reporting and text cursor.
//
// Terminals report keys as they are typed and never report key-up, so every
// key event becomes a press immediately followed by a release in the same
// batch. KeysDown therefore never holds a key across frames; use KeysPressed.
//
// Coordinates and the extent are in character cells.
package tcellwin

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/input"
	"github.com/Alia5/inputframe/keyboard"
)

// ErrOutOfBounds is returned by SetCursorPosition for a cell outside the screen.
var ErrOutOfBounds = errors.New("position outside the screen")

// Window wraps an initialized tcell.Screen owned by the caller. It is not
// safe for concurrent use; Poll and the cursor methods belong to the update
// loop.
type Window struct {
	screen tcell.Screen
	logger *slog.Logger

	width, height int
	buttons       tcell.ButtonMask

	// last pointer cell; valid once havePointer is set
	px, py      int
	havePointer bool

	visible bool
	grabbed bool
}

// New wraps screen. The screen must already be initialized.
func New(screen tcell.Screen, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Window{screen: screen, logger: logger, visible: true}
	w.width, w.height = screen.Size()
	return w
}

// Screen returns the wrapped screen for drawing.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// Extent returns the screen size in cells as of the last Poll.
func (w *Window) Extent() input.Extent {
	return input.Extent{Width: w.width, Height: w.height}
}

// Poll drains every pending tcell event without blocking and returns the
// translated batch.
func (w *Window) Poll() []event.RawEvent {
	var out []event.RawEvent
	for w.screen.HasPendingEvent() {
		ev := w.screen.PollEvent()
		if ev == nil {
			break
		}
		out = w.Translate(out, ev)
	}
	return out
}

// Translate appends the raw events for a single tcell event to dst. Resize
// events update the extent and produce nothing.
func (w *Window) Translate(dst []event.RawEvent, ev tcell.Event) []event.RawEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		code, mods := translateKey(ev)
		if code == keyboard.KeyNone && ev.Key() != tcell.KeyRune {
			w.logger.Debug("no key code for terminal key", "key", ev.Name())
			return append(dst, event.Key{State: event.Pressed, Code: keyboard.KeyNone})
		}
		if code != keyboard.KeyNone {
			dst = tap(dst, code, mods)
		}
		if ev.Key() == tcell.KeyRune {
			dst = append(dst, event.Char{Rune: ev.Rune()})
		}
		return dst
	case *tcell.EventMouse:
		return w.translateMouse(dst, ev)
	case *tcell.EventResize:
		w.width, w.height = ev.Size()
		w.logger.Debug("screen resized", "width", w.width, "height", w.height)
	}
	return dst
}

func (w *Window) translateMouse(dst []event.RawEvent, ev *tcell.EventMouse) []event.RawEvent {
	x, y := ev.Position()
	if !w.havePointer || x != w.px || y != w.py {
		if w.havePointer {
			dst = append(dst, event.Motion{DX: float32(x - w.px), DY: float32(y - w.py)})
		}
		dst = append(dst, event.CursorMoved{X: float32(x), Y: float32(y)})
		w.px, w.py, w.havePointer = x, y, true
	}

	btn := ev.Buttons()
	changed := (btn ^ w.buttons) & buttonBits
	for _, bm := range buttonMasks {
		if changed&bm.mask == 0 {
			continue
		}
		st := event.Released
		if btn&bm.mask != 0 {
			st = event.Pressed
		}
		dst = append(dst, event.Button{State: st, Button: bm.button})
	}
	w.buttons = btn & buttonBits

	var wx, wy float32
	if btn&tcell.WheelUp != 0 {
		wy++
	}
	if btn&tcell.WheelDown != 0 {
		wy--
	}
	if btn&tcell.WheelLeft != 0 {
		wx--
	}
	if btn&tcell.WheelRight != 0 {
		wx++
	}
	if wx != 0 || wy != 0 {
		dst = append(dst, event.Wheel{Unit: event.Lines, X: wx, Y: wy})
	}
	return dst
}

// SetCursorVisible shows or hides the terminal text cursor. A shown cursor
// is placed at the last known pointer cell.
func (w *Window) SetCursorVisible(visible bool) error {
	w.visible = visible
	if !visible {
		w.screen.HideCursor()
		return nil
	}
	w.screen.ShowCursor(w.px, w.py)
	return nil
}

// SetCursorGrab turns terminal mouse reporting on (motion included) or off.
// With reporting off the terminal handles the mouse itself.
func (w *Window) SetCursorGrab(grab bool) error {
	w.grabbed = grab
	if grab {
		w.screen.EnableMouse(tcell.MouseMotionEvents)
		return nil
	}
	w.screen.DisableMouse()
	w.buttons = 0
	return nil
}

// SetCursorPosition moves the pointer reference to a cell. Terminals cannot
// warp the real mouse, so this only resets where the next motion delta is
// measured from and, if shown, where the text cursor sits.
func (w *Window) SetCursorPosition(x, y float32) error {
	cx, cy := int(x), int(y)
	if cx < 0 || cy < 0 || cx >= w.width || cy >= w.height {
		return fmt.Errorf("%w: %d,%d in %dx%d", ErrOutOfBounds, cx, cy, w.width, w.height)
	}
	w.px, w.py, w.havePointer = cx, cy, true
	if w.visible {
		w.screen.ShowCursor(cx, cy)
	}
	return nil
}

// Grabbed reports whether mouse reporting is on.
func (w *Window) Grabbed() bool {
	return w.grabbed
}
