//go:build !linux && !windows

package platform

import "smartclock/internal/core/model"

type unsupportedMover struct{}

func newWindowMover() WindowMover {
	return unsupportedMover{}
}

func (unsupportedMover) Origin(uintptr) (model.Point, error) {
	return model.Point{}, ErrPositionUnsupported
}

func (unsupportedMover) Move(uintptr, model.Point) error {
	return ErrPositionUnsupported
}

func (unsupportedMover) MoveResize(uintptr, model.Geometry) error {
	return ErrPositionUnsupported
}

func (unsupportedMover) ScreenSize() (model.Size, error) {
	return model.Size{}, ErrPositionUnsupported
}

func (unsupportedMover) Close() error {
	return nil
}
