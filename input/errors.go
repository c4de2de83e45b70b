package input

import (
	"errors"
	"fmt"

	"github.com/Alia5/inputframe/event"
)

// None of these abort an update; the snapshot is always fully updated and
// the errors describe what was degraded.
var (
	ErrConfiguration   = errors.New("invalid window extent")
	ErrUnmappableEvent = errors.New("unmappable event")
	ErrPlatformAction  = errors.New("cursor action rejected")
)

// ConfigurationError reports a non-positive window extent. Pointer deltas
// for the affected axis are reported as zero.
type ConfigurationError struct {
	Width, Height int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %dx%d", ErrConfiguration, e.Width, e.Height)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnmappableEventError reports an event naming a key or button with no known
// identifier. The event is dropped.
type UnmappableEventError struct {
	Event event.RawEvent
}

func (e *UnmappableEventError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnmappableEvent, e.Event)
}

func (e *UnmappableEventError) Unwrap() error { return ErrUnmappableEvent }

// CursorAction names a request made to the windowing collaborator.
type CursorAction string

const (
	ActionHide     CursorAction = "hide"
	ActionShow     CursorAction = "show"
	ActionGrab     CursorAction = "grab"
	ActionRelease  CursorAction = "release"
	ActionRecenter CursorAction = "recenter"
)

// PlatformActionError reports a cursor request the collaborator rejected.
// Reconciliation retries on the next update.
type PlatformActionError struct {
	Action CursorAction
	Err    error
}

func (e *PlatformActionError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrPlatformAction, e.Action, e.Err)
}

func (e *PlatformActionError) Unwrap() []error { return []error{ErrPlatformAction, e.Err} }
