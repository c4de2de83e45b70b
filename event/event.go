// Package event defines the raw window and device events consumed by the
// input reducer, and a compact binary encoding for recording them.
package event

import (
	"fmt"

	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

// RawEvent is one event as delivered by the windowing collaborator.
// The set of implementations is closed; consumers switch on the concrete type.
type RawEvent interface {
	isRawEvent()
}

// ElementState is the state of a key or button in a state-change event.
type ElementState uint8

const (
	Pressed ElementState = iota + 1
	Released
)

func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("ElementState(%d)", uint8(s))
	}
}

// ScrollUnit tells how a wheel delta is measured.
type ScrollUnit uint8

const (
	Lines ScrollUnit = iota + 1
	Pixels
)

func (u ScrollUnit) String() string {
	switch u {
	case Lines:
		return "lines"
	case Pixels:
		return "pixels"
	default:
		return fmt.Sprintf("ScrollUnit(%d)", uint8(u))
	}
}

// Key is a key state change. Code is keyboard.KeyNone when the platform
// key has no resolvable code.
type Key struct {
	State ElementState
	Code  keyboard.Key
}

// CursorMoved reports the absolute cursor position in window coordinates.
type CursorMoved struct {
	X, Y float32
}

// Motion is relative pointing-device motion, independent of the cursor.
type Motion struct {
	DX, DY float32
}

// Axis is a single-axis motion sample (0 = horizontal, 1 = vertical) in
// window coordinates.
type Axis struct {
	Axis  uint8
	Value float32
}

// Button is a mouse button state change.
type Button struct {
	State  ElementState
	Button mouse.Button
}

// Wheel is a scroll by (X, Y) in Unit.
type Wheel struct {
	Unit ScrollUnit
	X, Y float32
}

// Char is one character of composed text input.
type Char struct {
	Rune rune
}

// Unknown carries an event the decoder could frame but not interpret.
type Unknown struct {
	Tag     uint8
	Payload []byte
}

func (Key) isRawEvent()         {}
func (CursorMoved) isRawEvent() {}
func (Motion) isRawEvent()      {}
func (Axis) isRawEvent()        {}
func (Button) isRawEvent()      {}
func (Wheel) isRawEvent()       {}
func (Char) isRawEvent()        {}
func (Unknown) isRawEvent()     {}

func (e Key) String() string { return fmt.Sprintf("key %s %s", e.Code, e.State) }
func (e CursorMoved) String() string {
	return fmt.Sprintf("cursor (%g, %g)", e.X, e.Y)
}
func (e Motion) String() string { return fmt.Sprintf("motion (%g, %g)", e.DX, e.DY) }
func (e Axis) String() string   { return fmt.Sprintf("axis %d %g", e.Axis, e.Value) }
func (e Button) String() string {
	return fmt.Sprintf("button %s %s", e.Button, e.State)
}
func (e Wheel) String() string {
	return fmt.Sprintf("wheel (%g, %g) %s", e.X, e.Y, e.Unit)
}
func (e Char) String() string    { return fmt.Sprintf("char %q", e.Rune) }
func (e Unknown) String() string { return fmt.Sprintf("unknown tag 0x%02x", e.Tag) }

// Frame is the batch of events retrieved for one tick together with the
// window inner size at that tick.
type Frame struct {
	Width, Height int
	Events        []RawEvent
}

// Text returns one Char event per rune of s.
func Text(s string) []RawEvent {
	out := make([]RawEvent, 0, len(s))
	for _, r := range s {
		out = append(out, Char{Rune: r})
	}
	return out
}
