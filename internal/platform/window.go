package platform

import (
	"errors"

	"smartclock/internal/core/model"
)

// ErrPositionUnsupported indicates the windowing system does not let us place windows.
var ErrPositionUnsupported = errors.New("window positioning unsupported")

// WindowMover reads and changes the screen position of a native window.
// Handles are the values exposed by the toolkit's native window context
// (an X11 window id or a Win32 HWND).
type WindowMover interface {
	Origin(handle uintptr) (model.Point, error)
	Move(handle uintptr, origin model.Point) error
	MoveResize(handle uintptr, geometry model.Geometry) error
	ScreenSize() (model.Size, error)
	Close() error
}

// NewWindowMover returns the platform-specific mover.
func NewWindowMover() WindowMover {
	return newWindowMover()
}
