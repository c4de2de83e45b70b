package input

import (
	"errors"

	"github.com/Alia5/inputframe/event"
)

// Reduce folds events into s in arrival order. BeginFrame must have been
// called for this update.
//
// Motion, axis and wheel samples overwrite each other: the last one in the
// batch wins. Key and button presses are passed through even when the key is
// already down, so platform key repeat shows up as repeated presses.
//
// The returned error joins *ConfigurationError and *UnmappableEventError
// values; it never means the update was abandoned.
func Reduce(s *Snapshot, ext Extent, events []event.RawEvent) error {
	var errs []error
	if err := checkExtent(ext); err != nil {
		errs = append(errs, err)
	}
	for _, ev := range events {
		if err := apply(s, ext, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkExtent(ext Extent) error {
	if ext.Valid() {
		return nil
	}
	return &ConfigurationError{Width: ext.Width, Height: ext.Height}
}

// apply performs the state transition for a single event.
func apply(s *Snapshot, ext Extent, ev event.RawEvent) error {
	switch e := ev.(type) {
	case event.Key:
		if !e.Code.Valid() {
			return &UnmappableEventError{Event: e}
		}
		switch e.State {
		case event.Pressed:
			s.KeysDown.Add(e.Code)
			s.KeysPressed.Add(e.Code)
		case event.Released:
			s.KeysDown.Remove(e.Code)
			s.KeysReleased.Add(e.Code)
		}
	case event.Button:
		if !e.Button.Valid() {
			return &UnmappableEventError{Event: e}
		}
		switch e.State {
		case event.Pressed:
			s.ButtonsDown.Add(e.Button)
			s.ButtonsPressed.Add(e.Button)
		case event.Released:
			s.ButtonsDown.Remove(e.Button)
			s.ButtonsReleased.Add(e.Button)
		}
	case event.CursorMoved:
		c := ext.Center()
		s.PointerDelta = Vec2{
			X: normalize(c.X-e.X, ext.Width),
			Y: normalize(c.Y-e.Y, ext.Height),
		}
		s.PointerPosition = Vec2{X: e.X, Y: e.Y}
	case event.Motion:
		s.RawPointerDelta = Vec2{X: e.DX, Y: e.DY}
	case event.Axis:
		c := ext.Center()
		switch e.Axis {
		case 0:
			s.AxisMotion.X = normalize(c.X-e.Value, ext.Width)
		case 1:
			s.AxisMotion.Y = normalize(c.Y-e.Value, ext.Height)
		}
	case event.Wheel:
		// Line and pixel deltas are both taken as-is.
		s.WheelDelta = Vec2{X: e.X, Y: e.Y}
	case event.Char:
		s.Text = append(s.Text, e.Rune)
	default:
		// event.Unknown and anything else: ignored.
	}
	return nil
}

// normalize divides v by size, or yields 0 when size is not positive.
func normalize(v float32, size int) float32 {
	if size <= 0 {
		return 0
	}
	return v / float32(size)
}
