package clock

import (
	"sync"

	"smartclock/internal/core/model"
)

// fakeSurface records every call the controller makes.
type fakeSurface struct {
	mu            sync.Mutex
	title         string
	status        string
	timeText      string
	dateText      string
	fonts         model.FontSizes
	palette       model.Palette
	fullscreen    bool
	dismissShown  bool
	dismissAt     model.Point
	screen        model.Size
	geometry      model.Geometry
	geometryCalls int
	closed        int
	timeUpdates   int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{screen: model.Size{Width: 1920, Height: 1080}}
}

func (surface *fakeSurface) SetTitle(title string) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.title = title
}

func (surface *fakeSurface) SetStatus(text string) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.status = text
}

func (surface *fakeSurface) SetTime(text string) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.timeText = text
	surface.timeUpdates++
}

func (surface *fakeSurface) SetDate(text string) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.dateText = text
}

func (surface *fakeSurface) SetFontSizes(sizes model.FontSizes) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.fonts = sizes
}

func (surface *fakeSurface) SetPalette(palette model.Palette) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.palette = palette
}

func (surface *fakeSurface) SetFullScreen(fullscreen bool) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.fullscreen = fullscreen
}

func (surface *fakeSurface) ShowDismiss(position model.Point) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.dismissShown = true
	surface.dismissAt = position
}

func (surface *fakeSurface) HideDismiss() {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.dismissShown = false
}

func (surface *fakeSurface) ScreenSize() model.Size {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	return surface.screen
}

func (surface *fakeSurface) Origin() model.Point {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	return surface.geometry.Origin()
}

func (surface *fakeSurface) Move(origin model.Point) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.geometry.X = origin.X
	surface.geometry.Y = origin.Y
}

func (surface *fakeSurface) SetGeometry(geometry model.Geometry) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.geometry = geometry
	surface.geometryCalls++
}

func (surface *fakeSurface) Close() {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.closed++
}

// surfaceView is a lock-free copy of the recorded surface state.
type surfaceView struct {
	title         string
	status        string
	timeText      string
	dateText      string
	fonts         model.FontSizes
	fullscreen    bool
	dismissShown  bool
	dismissAt     model.Point
	geometry      model.Geometry
	geometryCalls int
	closed        int
	timeUpdates   int
}

func (surface *fakeSurface) snapshot() surfaceView {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	return surfaceView{
		title:         surface.title,
		status:        surface.status,
		timeText:      surface.timeText,
		dateText:      surface.dateText,
		fonts:         surface.fonts,
		fullscreen:    surface.fullscreen,
		dismissShown:  surface.dismissShown,
		dismissAt:     surface.dismissAt,
		geometry:      surface.geometry,
		geometryCalls: surface.geometryCalls,
		closed:        surface.closed,
		timeUpdates:   surface.timeUpdates,
	}
}
