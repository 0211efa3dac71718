package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidGeometry indicates a geometry string that is not "<w>x<h>+<x>+<y>".
var ErrInvalidGeometry = errors.New("invalid geometry")

// Point is a position in pixels.
type Point struct {
	X int
	Y int
}

// Add returns the sum of two points.
func (point Point) Add(other Point) Point {
	return Point{X: point.X + other.X, Y: point.Y + other.Y}
}

// Sub returns the difference of two points.
func (point Point) Sub(other Point) Point {
	return Point{X: point.X - other.X, Y: point.Y - other.Y}
}

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// Geometry is a window rectangle: size plus top-left origin.
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Origin returns the top-left corner.
func (geometry Geometry) Origin() Point {
	return Point{X: geometry.X, Y: geometry.Y}
}

// Size returns the width and height.
func (geometry Geometry) Size() Size {
	return Size{Width: geometry.Width, Height: geometry.Height}
}

// String renders the geometry as "<w>x<h>+<x>+<y>". Negative offsets keep their sign.
func (geometry Geometry) String() string {
	return fmt.Sprintf("%dx%d%s%s", geometry.Width, geometry.Height, offset(geometry.X), offset(geometry.Y))
}

var geometryPattern = regexp.MustCompile(`^(\d+)x(\d+)(\+-?\d+|-\d+)(\+-?\d+|-\d+)$`)

// ParseGeometry parses "<w>x<h>+<x>+<y>". Offsets may be written "+-10" or "-10".
func ParseGeometry(value string) (Geometry, error) {
	match := geometryPattern.FindStringSubmatch(value)
	if match == nil {
		return Geometry{}, fmt.Errorf("parse %q: %w", value, ErrInvalidGeometry)
	}

	width, _ := strconv.Atoi(match[1])
	height, _ := strconv.Atoi(match[2])
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("parse %q: %w: size must be positive", value, ErrInvalidGeometry)
	}
	x, err := parseOffset(match[3])
	if err != nil {
		return Geometry{}, fmt.Errorf("parse %q: %w", value, err)
	}
	y, err := parseOffset(match[4])
	if err != nil {
		return Geometry{}, fmt.Errorf("parse %q: %w", value, err)
	}

	return Geometry{Width: width, Height: height, X: x, Y: y}, nil
}

func offset(value int) string {
	if value < 0 {
		return strconv.Itoa(value)
	}
	return "+" + strconv.Itoa(value)
}

func parseOffset(value string) (int, error) {
	sign := 1
	if value[0] == '-' {
		sign = -1
	}
	parsed, err := strconv.Atoi(value[1:])
	if err != nil {
		return 0, fmt.Errorf("%w: offset %q", ErrInvalidGeometry, value)
	}
	return sign * parsed, nil
}
