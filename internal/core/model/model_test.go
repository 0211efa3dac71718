package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Geometry
	}{
		{"reference", "1024x512+450+260", Geometry{Width: 1024, Height: 512, X: 450, Y: 260}},
		{"origin", "800x600+0+0", Geometry{Width: 800, Height: 600}},
		{"negative offsets", "640x480-10-20", Geometry{Width: 640, Height: 480, X: -10, Y: -20}},
		{"plus minus offset", "640x480+-10+5", Geometry{Width: 640, Height: 480, X: -10, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGeometry(tt.input)
			if err != nil {
				t.Fatalf("ParseGeometry(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseGeometry(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseGeometryRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "1024x512", "1024+450+260", "0x512+1+1", "axb+1+1", "1024x512+450", "640x480--10+0", "640x480+0--5"} {
		if _, err := ParseGeometry(input); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("ParseGeometry(%q) error = %v, want ErrInvalidGeometry", input, err)
		}
	}
}

func TestGeometryStringRoundTrip(t *testing.T) {
	for _, geometry := range []Geometry{
		DefaultGeometry,
		{Width: 300, Height: 200, X: -15, Y: 40},
	} {
		parsed, err := ParseGeometry(geometry.String())
		if err != nil {
			t.Fatalf("ParseGeometry(%q) error: %v", geometry.String(), err)
		}
		if parsed != geometry {
			t.Errorf("round trip of %q = %+v, want %+v", geometry.String(), parsed, geometry)
		}
	}
	if got := DefaultGeometry.String(); got != "1024x512+450+260" {
		t.Errorf("DefaultGeometry.String() = %q", got)
	}
}

func TestFullscreenFontSizes(t *testing.T) {
	got := DefaultFontSizes().Fullscreen()
	want := FontSizes{Time: 96, Date: 30, Status: 25}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fullscreen() mismatch (-want +got):\n%s", diff)
	}
}

func TestPointArithmetic(t *testing.T) {
	origin := Point{X: 450, Y: 260}
	delta := Point{X: 30, Y: 15}.Sub(Point{X: 10, Y: 5})
	if got := origin.Add(delta); got != (Point{X: 470, Y: 270}) {
		t.Errorf("Add = %+v", got)
	}
}
