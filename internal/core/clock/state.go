package clock

import "smartclock/internal/core/model"

// WindowState is the single mutable record shared by the clock handlers.
type WindowState struct {
	Fullscreen bool
	// Windowed is the home rectangle restored whenever full screen is left.
	Windowed model.Geometry
	// Dragging and Anchor are only meaningful while Fullscreen is false.
	Dragging bool
	Anchor   model.Point
	// Running goes false once, on close, and is never reset.
	Running bool
}

// Surface is the toolkit side of the clock window.
// The loop calls it from a single goroutine; implementations marshal to their UI thread.
type Surface interface {
	SetTitle(title string)
	SetStatus(text string)
	SetTime(text string)
	SetDate(text string)
	SetFontSizes(sizes model.FontSizes)
	SetPalette(palette model.Palette)
	SetFullScreen(fullscreen bool)
	ShowDismiss(position model.Point)
	HideDismiss()
	ScreenSize() model.Size
	Origin() model.Point
	Move(origin model.Point)
	SetGeometry(geometry model.Geometry)
	Close()
}
