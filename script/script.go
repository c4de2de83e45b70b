// Package script reads scenario files describing input frames for the
// replay command. The same document shape is accepted as YAML, TOML or JSON:
//
//	window: {width: 800, height: 600}
//	hideCursor: false
//	frames:
//	  - events:
//	      - {kind: key, state: pressed, key: a}
//	      - {kind: cursor, x: 200, y: 150}
//	  - hideCursor: true
//	    events:
//	      - {kind: wheel, unit: line, y: -3}
//	      - {kind: text, text: "hi"}
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alia5/inputframe/event"
	"github.com/Alia5/inputframe/keyboard"
	"github.com/Alia5/inputframe/mouse"
)

// Window is a window extent in pixels.
type Window struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// Script is a whole scenario document.
type Script struct {
	Window     Window      `json:"window" yaml:"window" toml:"window"`
	HideCursor *bool       `json:"hideCursor,omitempty" yaml:"hideCursor,omitempty" toml:"hideCursor,omitempty"`
	Frames     []FrameSpec `json:"frames" yaml:"frames" toml:"frames"`
}

// FrameSpec is one update. Window and HideCursor override the script-level
// values from this frame on.
type FrameSpec struct {
	Window     *Window     `json:"window,omitempty" yaml:"window,omitempty" toml:"window,omitempty"`
	HideCursor *bool       `json:"hideCursor,omitempty" yaml:"hideCursor,omitempty" toml:"hideCursor,omitempty"`
	Events     []EventSpec `json:"events" yaml:"events" toml:"events"`
}

// EventSpec is a flat event entry; which fields matter depends on Kind.
//
//	key     state, key
//	cursor  x, y
//	motion  x, y
//	axis    axis, value
//	button  state, button (name or number)
//	wheel   unit (line|pixel), x, y
//	text    text
type EventSpec struct {
	Kind   string  `json:"kind" yaml:"kind" toml:"kind"`
	State  string  `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
	Key    string  `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Button string  `json:"button,omitempty" yaml:"button,omitempty" toml:"button,omitempty"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty" toml:"unit,omitempty"`
	X      Number  `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y      Number  `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Axis   uint8   `json:"axis,omitempty" yaml:"axis,omitempty" toml:"axis,omitempty"`
	Value  Number  `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Text   string  `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
}

// Number is a coordinate or sample value. TOML integers and floats are both
// accepted, so `x = 200` reads the same as `x: 200` in YAML.
type Number float32

// UnmarshalTOML implements toml.Unmarshaler.
func (n *Number) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*n = Number(v)
	case float64:
		*n = Number(v)
	default:
		return fmt.Errorf("expected a number, got %T", v)
	}
	return nil
}

// Step is a compiled frame: the events to feed and the desired cursor mode
// for that update.
type Step struct {
	event.Frame
	HideCursor bool
}

// ErrInvalidEvent marks an event entry that cannot be compiled.
var ErrInvalidEvent = errors.New("invalid event entry")

// EntryError locates a skipped event entry.
type EntryError struct {
	Frame, Index int
	Err          error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("frame %d event %d: %v", e.Frame, e.Index, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Steps compiles the script. Entries that cannot be turned into an event are
// skipped and returned joined; the steps are usable either way.
//
// Unknown key or button names are not errors here: they compile to events
// carrying keyboard.KeyNone or an out-of-range button, which the reducer
// reports as unmappable.
func (s *Script) Steps() ([]Step, error) {
	win := s.Window
	hide := true
	if s.HideCursor != nil {
		hide = *s.HideCursor
	}

	var errs []error
	steps := make([]Step, 0, len(s.Frames))
	for fi, f := range s.Frames {
		if f.Window != nil {
			win = *f.Window
		}
		if f.HideCursor != nil {
			hide = *f.HideCursor
		}
		st := Step{
			Frame:      event.Frame{Width: win.Width, Height: win.Height, Events: []event.RawEvent{}},
			HideCursor: hide,
		}
		for ei, es := range f.Events {
			evs, err := es.Events()
			if err != nil {
				errs = append(errs, &EntryError{Frame: fi, Index: ei, Err: err})
				continue
			}
			st.Events = append(st.Events, evs...)
		}
		steps = append(steps, st)
	}
	return steps, errors.Join(errs...)
}

// Events converts a single entry. A text entry yields one event per rune.
func (e EventSpec) Events() ([]event.RawEvent, error) {
	switch strings.ToLower(e.Kind) {
	case "key":
		st, err := parseState(e.State)
		if err != nil {
			return nil, err
		}
		code, _ := keyboard.ParseKey(e.Key)
		return []event.RawEvent{event.Key{State: st, Code: code}}, nil
	case "button":
		st, err := parseState(e.State)
		if err != nil {
			return nil, err
		}
		b, ok := mouse.ParseButton(e.Button)
		if !ok {
			b = mouse.MaxButtons
		}
		return []event.RawEvent{event.Button{State: st, Button: b}}, nil
	case "cursor":
		return []event.RawEvent{event.CursorMoved{X: float32(e.X), Y: float32(e.Y)}}, nil
	case "motion":
		return []event.RawEvent{event.Motion{DX: float32(e.X), DY: float32(e.Y)}}, nil
	case "axis":
		return []event.RawEvent{event.Axis{Axis: e.Axis, Value: float32(e.Value)}}, nil
	case "wheel":
		u, err := parseUnit(e.Unit)
		if err != nil {
			return nil, err
		}
		return []event.RawEvent{event.Wheel{Unit: u, X: float32(e.X), Y: float32(e.Y)}}, nil
	case "text":
		return event.Text(e.Text), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, e.Kind)
	}
}

func parseState(s string) (event.ElementState, error) {
	switch strings.ToLower(s) {
	case "pressed", "press", "down":
		return event.Pressed, nil
	case "released", "release", "up":
		return event.Released, nil
	default:
		return 0, fmt.Errorf("%w: unknown state %q", ErrInvalidEvent, s)
	}
}

func parseUnit(s string) (event.ScrollUnit, error) {
	switch strings.ToLower(s) {
	case "", "line", "lines":
		return event.Lines, nil
	case "pixel", "pixels":
		return event.Pixels, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidEvent, s)
	}
}
