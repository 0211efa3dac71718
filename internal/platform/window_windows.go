//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"smartclock/internal/core/model"

	"golang.org/x/sys/windows"
)

const (
	smCxScreen = 0
	smCyScreen = 1

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetWindowRect    = user32.NewProc("GetWindowRect")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

type win32Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type win32Mover struct{}

func newWindowMover() WindowMover {
	return win32Mover{}
}

func (win32Mover) Origin(handle uintptr) (model.Point, error) {
	var rect win32Rect
	result, _, err := procGetWindowRect.Call(handle, uintptr(unsafe.Pointer(&rect)))
	if result == 0 {
		return model.Point{}, fmt.Errorf("get window rect: %w", err)
	}
	return model.Point{X: int(rect.Left), Y: int(rect.Top)}, nil
}

func (win32Mover) Move(handle uintptr, origin model.Point) error {
	return setWindowPos(handle, model.Geometry{X: origin.X, Y: origin.Y}, swpNoSize|swpNoZOrder|swpNoActivate)
}

func (win32Mover) MoveResize(handle uintptr, geometry model.Geometry) error {
	return setWindowPos(handle, geometry, swpNoZOrder|swpNoActivate)
}

func (win32Mover) ScreenSize() (model.Size, error) {
	width, _, _ := procGetSystemMetrics.Call(smCxScreen)
	height, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if width == 0 || height == 0 {
		return model.Size{}, fmt.Errorf("get system metrics: screen size unavailable")
	}
	return model.Size{Width: int(width), Height: int(height)}, nil
}

func (win32Mover) Close() error {
	return nil
}

func setWindowPos(handle uintptr, geometry model.Geometry, flags uintptr) error {
	result, _, err := procSetWindowPos.Call(
		handle,
		0,
		int32ToUintptr(int32(geometry.X)),
		int32ToUintptr(int32(geometry.Y)),
		uintptr(geometry.Width),
		uintptr(geometry.Height),
		flags,
	)
	if result == 0 {
		return fmt.Errorf("set window pos: %w", err)
	}
	return nil
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
