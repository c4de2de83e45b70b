package input

import (
	"errors"
	"log/slog"

	"github.com/Alia5/inputframe/event"
)

// Input owns the snapshot and the cursor controller for one window.
type Input struct {
	snap   *Snapshot
	cursor *CursorController
	logger *slog.Logger

	// push-style state between Begin and End
	ext     Extent
	pending []error
}

// New returns an Input with empty state and HideCursor set. A nil logger
// discards output.
func New(logger *slog.Logger) *Input {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Input{
		snap:   NewSnapshot(),
		cursor: NewCursorController(logger),
		logger: logger,
	}
}

// Update runs one frame: clear transient state, fold events, reconcile the
// cursor. The returned error is informational; the snapshot is always
// updated.
func (in *Input) Update(c Cursor, ext Extent, events []event.RawEvent) error {
	in.Begin(ext)
	for _, ev := range events {
		in.Push(ev)
	}
	return in.End(c)
}

// Begin starts a frame for the given extent.
func (in *Input) Begin(ext Extent) {
	in.snap.BeginFrame()
	in.ext = ext
	in.pending = in.pending[:0]
	if err := checkExtent(ext); err != nil {
		in.logger.Warn("invalid window extent, pointer deltas are zero", "width", ext.Width, "height", ext.Height)
		in.pending = append(in.pending, err)
	}
}

// Push folds a single event into the current frame.
func (in *Input) Push(ev event.RawEvent) {
	if err := apply(in.snap, in.ext, ev); err != nil {
		in.logger.Debug("dropped event", "event", ev, "error", err)
		in.pending = append(in.pending, err)
	}
}

// End reconciles the cursor mode and returns every problem seen since Begin.
func (in *Input) End(c Cursor) error {
	if err := in.cursor.Reconcile(c, in.snap.HideCursor, in.ext); err != nil {
		in.pending = append(in.pending, err)
	}
	if len(in.pending) == 0 {
		return nil
	}
	return errors.Join(in.pending...)
}

// Snapshot returns the live snapshot. It is only valid until the next Begin
// or Update; use Clone to keep it.
func (in *Input) Snapshot() *Snapshot {
	return in.snap
}

// SetHideCursor sets the desired cursor mode, applied on the next update.
func (in *Input) SetHideCursor(hide bool) {
	in.snap.HideCursor = hide
}

// HideCursor returns the desired cursor mode.
func (in *Input) HideCursor() bool {
	return in.snap.HideCursor
}

// CursorMode returns the mode last applied to the real cursor.
func (in *Input) CursorMode() CursorMode {
	return in.cursor.Mode()
}
