package model

import (
	"image/color"
	"time"
)

// DefaultGeometry is the windowed home rectangle.
var DefaultGeometry = Geometry{Width: 1024, Height: 512, X: 450, Y: 260}

// Palette defines the clock face colors.
type Palette struct {
	Background color.NRGBA
	Time       color.NRGBA
	Date       color.NRGBA
	Status     color.NRGBA
}

// DefaultPalette returns the black face with cyan time, white date and green status.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Time:       color.NRGBA{R: 0, G: 255, B: 255, A: 255},
		Date:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Status:     color.NRGBA{R: 0, G: 128, B: 0, A: 255},
	}
}

// ClockConfig contains runtime settings for the clock controller.
type ClockConfig struct {
	Windowed        Geometry
	Fonts           FontSizes
	FullscreenFonts FontSizes
	Palette         Palette
	Locale          string
	StartFullscreen bool

	TickInterval time.Duration
	// DismissInset is the distance of the dismiss control from the right screen edge.
	DismissInset int
	DismissTop   int
}

// DefaultClockConfig returns the reference configuration.
func DefaultClockConfig() ClockConfig {
	fonts := DefaultFontSizes()
	return ClockConfig{
		Windowed:        DefaultGeometry,
		Fonts:           fonts,
		FullscreenFonts: fonts.Fullscreen(),
		Palette:         DefaultPalette(),
		Locale:          "en",
		TickInterval:    time.Second,
		DismissInset:    100,
		DismissTop:      20,
	}
}
