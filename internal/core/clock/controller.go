package clock

import (
	"log/slog"
	"time"

	"smartclock/internal/core/locale"
	"smartclock/internal/core/model"
)

// Controller is the clock window state machine: time updates, full-screen
// toggling, dragging and closing. It is not safe for concurrent use; the
// Loop serializes every call.
type Controller struct {
	config  model.ClockConfig
	locale  locale.Locale
	surface Surface
	logger  *slog.Logger
	state   WindowState
	onClose func()
}

// NewController creates a controller in windowed, running state.
func NewController(config model.ClockConfig, surface Surface, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		config:  config,
		locale:  locale.Match(config.Locale),
		surface: surface,
		logger:  logger,
		state: WindowState{
			Windowed: config.Windowed,
			Running:  true,
		},
	}
}

// SetOnClose registers a callback fired once after the window is torn down.
func (controller *Controller) SetOnClose(handler func()) {
	controller.onClose = handler
}

// State returns a copy of the current window state.
func (controller *Controller) State() WindowState {
	return controller.state
}

// Running reports whether the clock is still live.
func (controller *Controller) Running() bool {
	return controller.state.Running
}

// Start renders the initial window and the first tick.
func (controller *Controller) Start(now time.Time) {
	controller.surface.SetTitle(controller.locale.Title)
	controller.surface.SetStatus(controller.locale.Status)
	controller.surface.SetPalette(controller.config.Palette)
	controller.surface.SetFontSizes(controller.config.Fonts)
	controller.surface.SetGeometry(controller.state.Windowed)
	if controller.config.StartFullscreen {
		controller.enterFullscreen()
	}
	controller.HandleTick(now)
}

// Dispatch routes an event to its handler.
func (controller *Controller) Dispatch(event Event) {
	switch event.Type {
	case EventTick:
		controller.HandleTick(event.At)
	case EventDoubleClick, EventToggleFullscreen:
		controller.HandleDoubleClick()
	case EventPress:
		controller.HandlePress(event.Position)
	case EventMotion:
		controller.HandleMotion(event.Position)
	case EventRelease:
		controller.HandleRelease()
	case EventCloseRequested, EventDismiss:
		controller.HandleClose()
	case EventConfigReload:
		if event.Config != nil {
			controller.ApplyConfig(*event.Config)
		}
	default:
		controller.logger.Debug("ignoring unknown event", "type", event.Type)
	}
}

// HandleTick pushes the time and date strings for now.
func (controller *Controller) HandleTick(now time.Time) {
	if !controller.state.Running {
		return
	}
	controller.surface.SetTime(controller.locale.FormatTime(now))
	controller.surface.SetDate(controller.locale.FormatDate(now))
}

// HandleDoubleClick flips between windowed and full-screen mode.
func (controller *Controller) HandleDoubleClick() {
	if !controller.state.Running {
		return
	}
	controller.state.Dragging = false
	if controller.state.Fullscreen {
		controller.exitFullscreen()
		return
	}
	controller.enterFullscreen()
}

// HandlePress anchors a drag at a window-relative cursor position.
func (controller *Controller) HandlePress(position model.Point) {
	if !controller.state.Running || controller.state.Fullscreen {
		return
	}
	controller.state.Anchor = position
	controller.state.Dragging = true
}

// HandleMotion moves the window so the anchor stays under the cursor.
func (controller *Controller) HandleMotion(position model.Point) {
	if !controller.state.Running || !controller.state.Dragging || controller.state.Fullscreen {
		return
	}
	origin := controller.surface.Origin().Add(position.Sub(controller.state.Anchor))
	controller.surface.Move(origin)
}

// HandleRelease ends any drag session.
func (controller *Controller) HandleRelease() {
	controller.state.Dragging = false
}

// HandleClose stops the clock and tears the window down. Later calls are no-ops.
func (controller *Controller) HandleClose() {
	if !controller.state.Running {
		return
	}
	controller.state.Running = false
	controller.state.Dragging = false
	controller.logger.Info("clock closing")
	controller.surface.Close()
	if controller.onClose != nil {
		controller.onClose()
	}
}

// ApplyConfig swaps appearance settings in place. A new windowed geometry is
// stored and takes effect the next time full screen is left.
func (controller *Controller) ApplyConfig(config model.ClockConfig) {
	if !controller.state.Running {
		return
	}
	if config.TickInterval != controller.config.TickInterval {
		controller.logger.Warn("tick interval changes need a restart", "interval", config.TickInterval)
		config.TickInterval = controller.config.TickInterval
	}
	controller.config = config
	controller.locale = locale.Match(config.Locale)
	controller.state.Windowed = config.Windowed

	controller.surface.SetTitle(controller.locale.Title)
	controller.surface.SetStatus(controller.locale.Status)
	controller.surface.SetPalette(config.Palette)
	controller.surface.SetFontSizes(controller.currentFonts())
	controller.logger.Debug("config applied", "locale", controller.locale.Tag, "geometry", config.Windowed)
}

func (controller *Controller) enterFullscreen() {
	controller.state.Fullscreen = true
	controller.surface.SetFullScreen(true)
	controller.surface.SetFontSizes(controller.config.FullscreenFonts)

	screen := controller.surface.ScreenSize()
	controller.surface.ShowDismiss(model.Point{
		X: screen.Width - controller.config.DismissInset,
		Y: controller.config.DismissTop,
	})
	controller.logger.Debug("entered full screen", "screen", screen)
}

func (controller *Controller) exitFullscreen() {
	controller.state.Fullscreen = false
	controller.surface.SetFontSizes(controller.config.Fonts)
	controller.surface.HideDismiss()
	controller.surface.SetFullScreen(false)
	controller.surface.SetGeometry(controller.state.Windowed)
	controller.logger.Debug("left full screen", "geometry", controller.state.Windowed)
}

func (controller *Controller) currentFonts() model.FontSizes {
	if controller.state.Fullscreen {
		return controller.config.FullscreenFonts
	}
	return controller.config.Fonts
}
