package clock

import (
	"time"

	"smartclock/internal/core/model"
)

// EventType defines the kind of input the loop dispatches.
type EventType string

const (
	EventTick             EventType = "tick"
	EventDoubleClick      EventType = "double_click"
	EventToggleFullscreen EventType = "toggle_fullscreen"
	EventPress            EventType = "press"
	EventMotion           EventType = "motion"
	EventRelease          EventType = "release"
	EventCloseRequested   EventType = "close_requested"
	EventDismiss          EventType = "dismiss"
	EventConfigReload     EventType = "config_reload"
)

// Event is a single input delivered to the controller.
type Event struct {
	Type EventType
	// Position is window-relative and set for press and motion events.
	Position model.Point
	At       time.Time
	Config   *model.ClockConfig
}

// Tick returns a tick event for the given instant.
func Tick(at time.Time) Event {
	return Event{Type: EventTick, At: at}
}

// Press returns a button-press event at a window-relative position.
func Press(x, y int) Event {
	return Event{Type: EventPress, Position: model.Point{X: x, Y: y}}
}

// Motion returns a pointer-motion event at a window-relative position.
func Motion(x, y int) Event {
	return Event{Type: EventMotion, Position: model.Point{X: x, Y: y}}
}

// Reload returns a config reload event.
func Reload(config model.ClockConfig) Event {
	return Event{Type: EventConfigReload, Config: &config}
}
