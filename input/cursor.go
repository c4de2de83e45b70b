package input

import (
	"errors"
	"log/slog"
)

// Cursor is the set of cursor effects the windowing collaborator performs
// on behalf of the controller. Implementations are called on the update
// goroutine only.
type Cursor interface {
	SetCursorVisible(visible bool) error
	SetCursorGrab(grab bool) error
	SetCursorPosition(x, y float32) error
}

// CursorMode is the mode last applied to the real cursor.
type CursorMode uint8

const (
	// CursorFree: pointer visible and not confined.
	CursorFree CursorMode = iota
	// CursorGrabbed: pointer hidden and confined to the window.
	CursorGrabbed
)

func (m CursorMode) String() string {
	if m == CursorGrabbed {
		return "grabbed"
	}
	return "free"
}

// CursorController converges the physical cursor mode onto the desired one,
// at most one mode change per update.
type CursorController struct {
	mode   CursorMode
	logger *slog.Logger
}

// NewCursorController returns a controller in CursorFree mode.
func NewCursorController(logger *slog.Logger) *CursorController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CursorController{mode: CursorFree, logger: logger}
}

// Mode returns the mode last applied.
func (c *CursorController) Mode() CursorMode {
	return c.mode
}

// Reconcile applies at most one mode transition and, while grabbed, moves
// the pointer back to the window center. A nil cur changes the tracked mode
// without side effects.
//
// A failed transition leaves the mode unchanged so it is retried next
// update. A failed recenter is only logged. Both are returned as
// *PlatformActionError.
func (c *CursorController) Reconcile(cur Cursor, hide bool, ext Extent) error {
	var errs []error

	switch {
	case hide && c.mode == CursorFree:
		if err := c.transition(cur, ActionHide, ActionGrab, false, true); err != nil {
			errs = append(errs, err)
		} else {
			c.mode = CursorGrabbed
			c.logger.Debug("cursor grabbed")
		}
	case !hide && c.mode == CursorGrabbed:
		if err := c.transition(cur, ActionShow, ActionRelease, true, false); err != nil {
			errs = append(errs, err)
		} else {
			c.mode = CursorFree
			c.logger.Debug("cursor released")
		}
	}

	if hide && c.mode == CursorGrabbed && cur != nil && ext.Valid() {
		center := ext.Center()
		if err := cur.SetCursorPosition(center.X, center.Y); err != nil {
			c.logger.Debug("recenter cursor failed", "x", center.X, "y", center.Y, "error", err)
			errs = append(errs, &PlatformActionError{Action: ActionRecenter, Err: err})
		}
	}

	return errors.Join(errs...)
}

func (c *CursorController) transition(cur Cursor, visAction, grabAction CursorAction, visible, grab bool) error {
	if cur == nil {
		return nil
	}
	if err := cur.SetCursorVisible(visible); err != nil {
		c.logger.Debug("cursor visibility change failed", "action", visAction, "error", err)
		return &PlatformActionError{Action: visAction, Err: err}
	}
	if err := cur.SetCursorGrab(grab); err != nil {
		c.logger.Debug("cursor grab change failed", "action", grabAction, "error", err)
		return &PlatformActionError{Action: grabAction, Err: err}
	}
	return nil
}
