//go:build linux

package platform

import (
	"fmt"
	"os"
	"sync"

	"smartclock/internal/core/model"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

type x11Mover struct {
	mu   sync.Mutex
	conn *xgbutil.XUtil
}

func newWindowMover() WindowMover {
	return &x11Mover{}
}

func (mover *x11Mover) Origin(handle uintptr) (model.Point, error) {
	xu, err := mover.connection()
	if err != nil {
		return model.Point{}, err
	}
	geometry, err := xwindow.New(xu, xproto.Window(handle)).DecorGeometry()
	if err != nil {
		return model.Point{}, fmt.Errorf("x11 window geometry: %w", err)
	}
	return model.Point{X: geometry.X(), Y: geometry.Y()}, nil
}

func (mover *x11Mover) Move(handle uintptr, origin model.Point) error {
	xu, err := mover.connection()
	if err != nil {
		return err
	}
	windowID := xproto.Window(handle)
	if err := ewmh.MoveWindow(xu, windowID, origin.X, origin.Y); err != nil {
		// Window managers without _NET_MOVERESIZE_WINDOW still honour a configure request.
		xwindow.New(xu, windowID).Move(origin.X, origin.Y)
	}
	return nil
}

func (mover *x11Mover) MoveResize(handle uintptr, geometry model.Geometry) error {
	xu, err := mover.connection()
	if err != nil {
		return err
	}
	windowID := xproto.Window(handle)
	if err := ewmh.MoveresizeWindow(xu, windowID, geometry.X, geometry.Y, geometry.Width, geometry.Height); err != nil {
		xwindow.New(xu, windowID).MoveResize(geometry.X, geometry.Y, geometry.Width, geometry.Height)
	}
	return nil
}

func (mover *x11Mover) ScreenSize() (model.Size, error) {
	xu, err := mover.connection()
	if err != nil {
		return model.Size{}, err
	}
	root := xwindow.RootGeometry(xu)
	return model.Size{Width: root.Width(), Height: root.Height()}, nil
}

func (mover *x11Mover) Close() error {
	mover.mu.Lock()
	defer mover.mu.Unlock()
	if mover.conn != nil {
		mover.conn.Conn().Close()
		mover.conn = nil
	}
	return nil
}

func (mover *x11Mover) connection() (*xgbutil.XUtil, error) {
	mover.mu.Lock()
	defer mover.mu.Unlock()
	if mover.conn != nil {
		return mover.conn, nil
	}
	if os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("x11: DISPLAY not set: %w", ErrPositionUnsupported)
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11 connect: %w", err)
	}
	mover.conn = xu
	return xu, nil
}
