package clockface

import (
	"image/color"
	"log/slog"
	"math"
	"sync"

	"smartclock/internal/core/clock"
	"smartclock/internal/core/model"
	"smartclock/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/widget"
)

const dismissLabel = "✕"

var _ clock.Surface = (*Window)(nil)

// Window is the fyne clock face. It implements clock.Surface; every method
// may be called from the clock loop goroutine.
type Window struct {
	window      fyne.Window
	mover       platform.WindowMover
	logger      *slog.Logger
	background  *canvas.Rectangle
	timeLabel   *canvas.Text
	dateLabel   *canvas.Text
	statusLabel *canvas.Text
	dismiss     *widget.Button
	input       *inputLayer
	face        *faceLayout
	overlay     *dismissLayout
	root        *fyne.Container

	mu              sync.Mutex
	handle          uintptr
	origin          model.Point
	pendingGeometry *model.Geometry
	onModeChange    func(bool)
}

// New builds the clock window. Events from the window are delivered to sink.
func New(app fyne.App, mover platform.WindowMover, logger *slog.Logger, sink func(clock.Event)) *Window {
	if logger == nil {
		logger = slog.Default()
	}

	window := app.NewWindow("SmartClock")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	palette := model.DefaultPalette()
	fonts := model.DefaultFontSizes()

	background := canvas.NewRectangle(palette.Background)

	timeLabel := newLabel(palette.Time, fonts.Time)
	dateLabel := newLabel(palette.Date, fonts.Date)
	statusLabel := newLabel(palette.Status, fonts.Status)

	dismiss := widget.NewButton(dismissLabel, func() {
		sink(clock.Event{Type: clock.EventDismiss})
	})
	dismiss.Importance = widget.LowImportance
	dismiss.Hide()

	clockFace := &Window{
		window:      window,
		mover:       mover,
		logger:      logger,
		background:  background,
		timeLabel:   timeLabel,
		dateLabel:   dateLabel,
		statusLabel: statusLabel,
		dismiss:     dismiss,
	}

	clockFace.face = &faceLayout{}
	clockFace.overlay = &dismissLayout{}
	clockFace.input = newInputLayer(sink, clockFace.scale)

	labels := container.New(clockFace.face, timeLabel, dateLabel, statusLabel)
	dismissLayer := container.New(clockFace.overlay, dismiss)
	clockFace.root = container.NewStack(background, labels, clockFace.input, dismissLayer)
	window.SetContent(clockFace.root)

	window.SetCloseIntercept(func() {
		sink(clock.Event{Type: clock.EventCloseRequested})
	})

	return clockFace
}

// Show displays the window.
func (clockFace *Window) Show() {
	clockFace.window.Show()
}

// Raise brings the window to the front.
func (clockFace *Window) Raise() {
	fyne.Do(func() {
		clockFace.window.Show()
		clockFace.window.RequestFocus()
	})
}

// SetOnModeChange registers a callback fired after full-screen mode changes.
func (clockFace *Window) SetOnModeChange(handler func(fullscreen bool)) {
	clockFace.mu.Lock()
	defer clockFace.mu.Unlock()
	clockFace.onModeChange = handler
}

// AttachNative resolves the native window handle and applies any geometry
// requested before the window existed. It must run on the fyne main thread
// after the window is shown.
func (clockFace *Window) AttachNative() {
	handle := nativeHandle(clockFace.window)
	if handle == 0 {
		clockFace.logger.Debug("native window handle unavailable; positioning disabled")
		return
	}

	clockFace.mu.Lock()
	clockFace.handle = handle
	pending := clockFace.pendingGeometry
	clockFace.pendingGeometry = nil
	clockFace.mu.Unlock()

	if pending != nil {
		clockFace.moveResize(handle, *pending)
	}
}

// SetTitle sets the window title.
func (clockFace *Window) SetTitle(title string) {
	fyne.Do(func() {
		clockFace.window.SetTitle(title)
	})
}

// SetStatus sets the status line text.
func (clockFace *Window) SetStatus(text string) {
	fyne.Do(func() {
		setText(clockFace.statusLabel, text)
	})
}

// SetTime sets the time label text.
func (clockFace *Window) SetTime(text string) {
	fyne.Do(func() {
		setText(clockFace.timeLabel, text)
	})
}

// SetDate sets the date label text.
func (clockFace *Window) SetDate(text string) {
	fyne.Do(func() {
		setText(clockFace.dateLabel, text)
	})
}

// SetFontSizes resizes the three labels.
func (clockFace *Window) SetFontSizes(sizes model.FontSizes) {
	fyne.Do(func() {
		clockFace.timeLabel.TextSize = sizes.Time
		clockFace.dateLabel.TextSize = sizes.Date
		clockFace.statusLabel.TextSize = sizes.Status
		clockFace.root.Refresh()
	})
}

// SetPalette recolors the background and labels.
func (clockFace *Window) SetPalette(palette model.Palette) {
	fyne.Do(func() {
		clockFace.background.FillColor = palette.Background
		clockFace.timeLabel.Color = palette.Time
		clockFace.dateLabel.Color = palette.Date
		clockFace.statusLabel.Color = palette.Status
		clockFace.root.Refresh()
	})
}

// SetFullScreen switches the window mode and notifies the mode handler.
func (clockFace *Window) SetFullScreen(fullscreen bool) {
	fyne.Do(func() {
		clockFace.window.SetFullScreen(fullscreen)
	})

	clockFace.mu.Lock()
	handler := clockFace.onModeChange
	clockFace.mu.Unlock()
	if handler != nil {
		handler(fullscreen)
	}
}

// ShowDismiss shows the dismiss button at a screen pixel position. Without a
// platform screen size the position is kept as an inset from the right edge,
// so it follows the canvas once the full-screen relayout happens.
func (clockFace *Window) ShowDismiss(position model.Point) {
	screen, err := clockFace.mover.ScreenSize()
	anchorRight := err != nil || screen.Width <= 0
	inset := 0
	if anchorRight {
		inset = clockFace.canvasPixels().Width - position.X
	}

	fyne.Do(func() {
		scale := clockFace.scale()
		top := float32(position.Y) / scale
		if anchorRight {
			clockFace.overlay.setRightInset(float32(inset)/scale, top)
		} else {
			clockFace.overlay.setPosition(fyne.NewPos(float32(position.X)/scale, top))
		}
		clockFace.dismiss.Show()
		clockFace.root.Refresh()
	})
}

// HideDismiss hides the dismiss button.
func (clockFace *Window) HideDismiss() {
	fyne.Do(func() {
		clockFace.dismiss.Hide()
	})
}

// ScreenSize asks the platform for the screen size and falls back to the
// last laid out canvas size.
func (clockFace *Window) ScreenSize() model.Size {
	size, err := clockFace.mover.ScreenSize()
	if err == nil && size.Width > 0 {
		return size
	}
	return clockFace.canvasPixels()
}

func (clockFace *Window) canvasPixels() model.Size {
	canvasSize := clockFace.face.lastSize()
	scale := clockFace.scale()
	return model.Size{
		Width:  int(math.Round(float64(canvasSize.Width * scale))),
		Height: int(math.Round(float64(canvasSize.Height * scale))),
	}
}

// Origin returns the window origin in screen pixels.
func (clockFace *Window) Origin() model.Point {
	clockFace.mu.Lock()
	handle := clockFace.handle
	origin := clockFace.origin
	clockFace.mu.Unlock()

	if handle == 0 {
		return origin
	}
	current, err := clockFace.mover.Origin(handle)
	if err != nil {
		clockFace.logger.Debug("read window origin failed", "err", err)
		return origin
	}
	return current
}

// Move places the window origin, keeping its size.
func (clockFace *Window) Move(origin model.Point) {
	clockFace.mu.Lock()
	handle := clockFace.handle
	clockFace.origin = origin
	clockFace.mu.Unlock()

	if handle == 0 {
		return
	}
	if err := clockFace.mover.Move(handle, origin); err != nil {
		clockFace.logger.Debug("move window failed", "origin", origin, "err", err)
	}
}

// SetGeometry resizes and places the window. The native move runs on the
// fyne thread after the resize so it lands after any pending full-screen exit.
func (clockFace *Window) SetGeometry(geometry model.Geometry) {
	clockFace.mu.Lock()
	clockFace.origin = geometry.Origin()
	clockFace.mu.Unlock()

	fyne.Do(func() {
		scale := clockFace.scale()
		clockFace.window.Resize(fyne.NewSize(float32(geometry.Width)/scale, float32(geometry.Height)/scale))

		clockFace.mu.Lock()
		handle := clockFace.handle
		if handle == 0 {
			clockFace.pendingGeometry = &geometry
		}
		clockFace.mu.Unlock()

		if handle != 0 {
			clockFace.moveResize(handle, geometry)
		}
	})
}

// Close closes the window and releases the native mover.
func (clockFace *Window) Close() {
	clockFace.mu.Lock()
	clockFace.handle = 0
	clockFace.pendingGeometry = nil
	clockFace.mu.Unlock()

	fyne.Do(func() {
		clockFace.window.Close()
		if err := clockFace.mover.Close(); err != nil {
			clockFace.logger.Debug("close window mover", "err", err)
		}
	})
}

func (clockFace *Window) moveResize(handle uintptr, geometry model.Geometry) {
	if err := clockFace.mover.MoveResize(handle, geometry); err != nil {
		clockFace.logger.Debug("move window failed", "geometry", geometry, "err", err)
	}
}

func (clockFace *Window) scale() float32 {
	scale := clockFace.window.Canvas().Scale()
	if scale <= 0 {
		return 1
	}
	return scale
}

func newLabel(fill color.Color, size float32) *canvas.Text {
	label := canvas.NewText("", fill)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = size
	return label
}

func setText(label *canvas.Text, text string) {
	if label.Text == text {
		return
	}
	label.Text = text
	label.Refresh()
}

func nativeHandle(window fyne.Window) uintptr {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return 0
	}

	var handle uintptr
	nativeWindow.RunNative(func(context any) {
		switch value := context.(type) {
		case driver.X11WindowContext:
			handle = value.WindowHandle
		case *driver.X11WindowContext:
			handle = value.WindowHandle
		case driver.WindowsWindowContext:
			handle = value.HWND
		case *driver.WindowsWindowContext:
			handle = value.HWND
		}
	})
	return handle
}
