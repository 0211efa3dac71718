package preferences

import (
	"time"

	"smartclock/internal/core/locale"
	"smartclock/internal/core/model"
)

// Settings defines the user-editable clock preferences.
type Settings struct {
	Geometry        model.Geometry
	Locale          string
	StartFullscreen bool

	TimeSize   float32
	DateSize   float32
	StatusSize float32

	Palette model.Palette
}

// DefaultSettings returns default settings for the clock.
func DefaultSettings() Settings {
	fonts := model.DefaultFontSizes()
	return Settings{
		Geometry:   model.DefaultGeometry,
		Locale:     "",
		TimeSize:   fonts.Time,
		DateSize:   fonts.Date,
		StatusSize: fonts.Status,
		Palette:    model.DefaultPalette(),
	}
}

// Fonts returns the windowed label sizes.
func (settings Settings) Fonts() model.FontSizes {
	return model.FontSizes{Time: settings.TimeSize, Date: settings.DateSize, Status: settings.StatusSize}
}

// ClockConfig converts settings to the controller configuration.
// locales are fallbacks consulted in order when no locale is set, typically
// $LC_ALL, $LC_MESSAGES and $LANG. Names such as "C" are skipped.
func (settings Settings) ClockConfig(locales ...string) model.ClockConfig {
	config := model.DefaultClockConfig()
	config.Windowed = settings.Geometry
	config.Fonts = settings.Fonts()
	config.FullscreenFonts = config.Fonts.Fullscreen()
	config.Palette = settings.Palette
	config.StartFullscreen = settings.StartFullscreen
	config.TickInterval = time.Second

	config.Locale = settings.Locale
	for _, candidate := range locales {
		if config.Locale != "" {
			break
		}
		if locale.Usable(candidate) {
			config.Locale = candidate
		}
	}
	return config
}
