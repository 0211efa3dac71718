package clockface

import (
	"sync"

	"fyne.io/fyne/v2"
)

const (
	timePad   = float32(20)
	datePad   = float32(10)
	statusPad = float32(20)
)

// faceLayout stacks time and date from the top and pins status to the
// bottom, all horizontally centered. It records the last size it was given.
type faceLayout struct {
	mu   sync.Mutex
	size fyne.Size
}

func (layout *faceLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	layout.mu.Lock()
	layout.size = size
	layout.mu.Unlock()

	if len(objects) < 3 {
		return
	}
	timeText := objects[0]
	dateText := objects[1]
	statusText := objects[2]

	timeSize := timeText.MinSize()
	timeText.Move(fyne.NewPos(centered(size.Width, timeSize.Width), timePad))
	timeText.Resize(timeSize)

	dateSize := dateText.MinSize()
	dateY := timePad + timeSize.Height + timePad + datePad
	dateText.Move(fyne.NewPos(centered(size.Width, dateSize.Width), dateY))
	dateText.Resize(dateSize)

	statusSize := statusText.MinSize()
	statusY := size.Height - statusPad - statusSize.Height
	if statusY < dateY+dateSize.Height {
		statusY = dateY + dateSize.Height + datePad
	}
	statusText.Move(fyne.NewPos(centered(size.Width, statusSize.Width), statusY))
	statusText.Resize(statusSize)
}

func (layout *faceLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	width := float32(0)
	height := timePad*2 + datePad*2 + statusPad*2
	for _, object := range objects[:3] {
		minSize := object.MinSize()
		if minSize.Width > width {
			width = minSize.Width
		}
		height += minSize.Height
	}
	return fyne.NewSize(width, height)
}

func (layout *faceLayout) lastSize() fyne.Size {
	layout.mu.Lock()
	defer layout.mu.Unlock()
	return layout.size
}

// dismissLayout places its single object at an absolute position, pulled
// back inside the container when the position would clip it.
type dismissLayout struct {
	mu          sync.Mutex
	position    fyne.Position
	rightInset  float32
	anchorRight bool
}

func (layout *dismissLayout) setPosition(position fyne.Position) {
	layout.mu.Lock()
	defer layout.mu.Unlock()
	layout.position = position
	layout.anchorRight = false
}

// setRightInset anchors the object inset from the right edge of whatever
// size the next layout receives.
func (layout *dismissLayout) setRightInset(inset, top float32) {
	layout.mu.Lock()
	defer layout.mu.Unlock()
	layout.rightInset = inset
	layout.position = fyne.NewPos(0, top)
	layout.anchorRight = true
}

func (layout *dismissLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	layout.mu.Lock()
	position := layout.position
	if layout.anchorRight {
		position.X = size.Width - layout.rightInset
	}
	layout.mu.Unlock()

	button := objects[0]
	buttonSize := button.MinSize()
	if position.X+buttonSize.Width > size.Width {
		position.X = size.Width - buttonSize.Width
	}
	if position.Y+buttonSize.Height > size.Height {
		position.Y = size.Height - buttonSize.Height
	}
	if position.X < 0 {
		position.X = 0
	}
	if position.Y < 0 {
		position.Y = 0
	}
	button.Move(position)
	button.Resize(buttonSize)
}

func (layout *dismissLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

func centered(container, object float32) float32 {
	x := (container - object) / 2
	if x < 0 {
		return 0
	}
	return x
}
