package clockface

import (
	"image/color"
	"math"

	"smartclock/internal/core/clock"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// inputLayer is a transparent widget covering the window that turns pointer
// input into clock events with window-relative pixel positions.
type inputLayer struct {
	widget.BaseWidget
	sink  func(clock.Event)
	scale func() float32
}

var (
	_ fyne.DoubleTappable = (*inputLayer)(nil)
	_ fyne.Draggable      = (*inputLayer)(nil)
	_ desktop.Mouseable   = (*inputLayer)(nil)
)

func newInputLayer(sink func(clock.Event), scale func() float32) *inputLayer {
	layer := &inputLayer{sink: sink, scale: scale}
	layer.ExtendBaseWidget(layer)
	return layer
}

func (layer *inputLayer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (layer *inputLayer) DoubleTapped(*fyne.PointEvent) {
	layer.sink(clock.Event{Type: clock.EventDoubleClick})
}

func (layer *inputLayer) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := layer.pixels(event.Position)
	layer.sink(clock.Press(x, y))
}

func (layer *inputLayer) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	layer.sink(clock.Event{Type: clock.EventRelease})
}

func (layer *inputLayer) Dragged(event *fyne.DragEvent) {
	x, y := layer.pixels(event.Position)
	layer.sink(clock.Motion(x, y))
}

func (layer *inputLayer) DragEnd() {
	layer.sink(clock.Event{Type: clock.EventRelease})
}

func (layer *inputLayer) pixels(position fyne.Position) (int, int) {
	scale := float32(1)
	if layer.scale != nil {
		if value := layer.scale(); value > 0 {
			scale = value
		}
	}
	return int(math.Round(float64(position.X * scale))), int(math.Round(float64(position.Y * scale)))
}
