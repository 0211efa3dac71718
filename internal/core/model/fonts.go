package model

import "math"

// FontSizes holds the text sizes of the three clock labels.
type FontSizes struct {
	Time   float32
	Date   float32
	Status float32
}

// Full-screen multipliers relative to windowed sizes (48→96, 15→30, 15→25).
const (
	FullscreenTimeScale   = float32(2)
	FullscreenDateScale   = float32(2)
	FullscreenStatusScale = float32(5) / 3
)

// DefaultFontSizes returns the windowed label sizes.
func DefaultFontSizes() FontSizes {
	return FontSizes{Time: 48, Date: 15, Status: 15}
}

// Fullscreen returns the sizes used in full-screen mode.
func (sizes FontSizes) Fullscreen() FontSizes {
	return sizes.Scale(FullscreenTimeScale, FullscreenDateScale, FullscreenStatusScale)
}

// Scale multiplies each size by its factor, rounded to whole points.
func (sizes FontSizes) Scale(timeFactor, dateFactor, statusFactor float32) FontSizes {
	return FontSizes{
		Time:   roundSize(sizes.Time * timeFactor),
		Date:   roundSize(sizes.Date * dateFactor),
		Status: roundSize(sizes.Status * statusFactor),
	}
}

func roundSize(value float32) float32 {
	return float32(math.Round(float64(value)))
}
