package storage

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"smartclock/internal/core/model"
	"smartclock/internal/ui/preferences"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadSettingsFile error: %v", err)
	}
	if diff := cmp.Diff(preferences.DefaultSettings(), settings); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesAndIgnoresInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	writeFile(t, path, `
geometry: 800x400+10+20
locale: zh-Hans
start_fullscreen: true
time_size: 60
date_size: 1000
status_size: 0
time_color: "#ff8800"
date_color: not-a-color
background_color: "#102030"
`)

	settings, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile error: %v", err)
	}

	want := preferences.DefaultSettings()
	want.Geometry = model.Geometry{Width: 800, Height: 400, X: 10, Y: 20}
	want.Locale = "zh-Hans"
	want.StartFullscreen = true
	want.TimeSize = 60
	want.Palette.Time = color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 255}
	want.Palette.Background = color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}

	if diff := cmp.Diff(want, settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	writeFile(t, path, "geometry: [unterminated\n")

	settings, err := LoadSettingsFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if diff := cmp.Diff(preferences.DefaultSettings(), settings); diff != "" {
		t.Errorf("settings after error should be defaults (-want +got):\n%s", diff)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	saved := preferences.DefaultSettings()
	saved.Geometry = model.Geometry{Width: 500, Height: 250, X: -30, Y: 40}
	saved.Locale = "en"
	saved.Palette.Status = color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}

	if err := SaveSettingsFile(path, saved); err != nil {
		t.Fatalf("SaveSettingsFile error: %v", err)
	}
	loaded, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile error: %v", err)
	}
	if diff := cmp.Diff(saved, loaded); diff != "" {
		t.Errorf("reloaded settings (-saved +loaded):\n%s", diff)
	}
}

func TestWatchSettingsReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, settingsFileName)
	writeFile(t, path, "locale: en\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan preferences.Settings, 4)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := WatchSettings(ctx, path, logger, func(settings preferences.Settings) {
		changes <- settings
	}); err != nil {
		t.Fatalf("WatchSettings error: %v", err)
	}

	writeFile(t, path, "locale: zh-Hans\n")

	select {
	case settings := <-changes:
		if settings.Locale != "zh-Hans" {
			t.Errorf("reloaded locale = %q", settings.Locale)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchSettingsIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, settingsFileName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan preferences.Settings, 1)
	if err := WatchSettings(ctx, path, nil, func(settings preferences.Settings) {
		changes <- settings
	}); err != nil {
		t.Fatalf("WatchSettings error: %v", err)
	}

	writeFile(t, filepath.Join(dir, "other.yaml"), "locale: zh-Hans\n")

	select {
	case <-changes:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(2 * reloadDebounce):
	}
}
