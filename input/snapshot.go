// Package input folds batches of raw window and device events into a
// per-frame snapshot of keyboard, mouse and text state, and keeps the
// cursor hide/grab mode in line with what the caller asked for.
//
// One update per tick:
//
//	in := input.New(logger)
//	for running {
//		events := window.Poll()
//		_ = in.Update(window, window.Extent(), events)
//		if in.Snapshot().KeyPressed(keyboard.KeyEscape) { ... }
//	}
//
// Everything runs on the caller's goroutine; nothing in this package locks.
package input

import (
	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

// Vec2 is a pair of float32 components.
type Vec2 struct {
	X, Y float32
}

// Extent is the window inner size in pixels.
type Extent struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (e Extent) Valid() bool {
	return e.Width > 0 && e.Height > 0
}

// Center returns the reference point used for pointer deltas and recentering.
// Halves are taken in integer arithmetic.
func (e Extent) Center() Vec2 {
	return Vec2{X: float32(e.Width / 2), Y: float32(e.Height / 2)}
}

// Snapshot is the input state for the current frame.
//
// Level state (KeysDown, ButtonsDown, PointerPosition, HideCursor) carries
// over between frames. Everything else describes only the current frame and
// is reset by BeginFrame.
type Snapshot struct {
	// PointerPosition is the last known cursor position in window coordinates.
	PointerPosition Vec2
	// PointerDelta is the offset of the cursor from the window center,
	// normalized by the window size.
	PointerDelta Vec2
	// RawPointerDelta is the device-reported relative motion, unnormalized.
	RawPointerDelta Vec2
	// AxisMotion is the last per-axis motion sample, normalized like PointerDelta.
	AxisMotion Vec2
	// WheelDelta is the last scroll offset seen this frame.
	WheelDelta Vec2

	KeysDown     keyboard.KeySet
	KeysPressed  keyboard.KeySet
	KeysReleased keyboard.KeySet

	// Text holds the characters produced this frame, in order.
	Text []rune

	ButtonsDown     mouse.ButtonSet
	ButtonsPressed  mouse.ButtonSet
	ButtonsReleased mouse.ButtonSet

	// HideCursor is the desired cursor mode: hidden and grabbed when true.
	HideCursor bool
}

// NewSnapshot returns an empty snapshot with HideCursor set.
func NewSnapshot() *Snapshot {
	return &Snapshot{HideCursor: true}
}

// BeginFrame clears the per-frame fields. Calling it twice in a row is the
// same as calling it once.
func (s *Snapshot) BeginFrame() {
	s.PointerDelta = Vec2{}
	s.RawPointerDelta = Vec2{}
	s.AxisMotion = Vec2{}
	s.WheelDelta = Vec2{}
	s.KeysPressed.Clear()
	s.KeysReleased.Clear()
	s.ButtonsPressed = 0
	s.ButtonsReleased = 0
	s.Text = s.Text[:0]
}

// KeyDown reports whether k is held.
func (s *Snapshot) KeyDown(k keyboard.Key) bool { return s.KeysDown.Has(k) }

// KeyPressed reports whether k was pressed this frame.
func (s *Snapshot) KeyPressed(k keyboard.Key) bool { return s.KeysPressed.Has(k) }

// KeyReleased reports whether k was released this frame.
func (s *Snapshot) KeyReleased(k keyboard.Key) bool { return s.KeysReleased.Has(k) }

// ButtonDown reports whether b is held.
func (s *Snapshot) ButtonDown(b mouse.Button) bool { return s.ButtonsDown.Has(b) }

// ButtonPressed reports whether b was pressed this frame.
func (s *Snapshot) ButtonPressed(b mouse.Button) bool { return s.ButtonsPressed.Has(b) }

// ButtonReleased reports whether b was released this frame.
func (s *Snapshot) ButtonReleased(b mouse.Button) bool { return s.ButtonsReleased.Has(b) }

// TextString returns this frame's text input as a string.
func (s *Snapshot) TextString() string {
	return string(s.Text)
}

// Clone returns a deep copy that does not share the Text buffer.
func (s *Snapshot) Clone() Snapshot {
	c := *s
	c.Text = append([]rune(nil), s.Text...)
	return c
}
