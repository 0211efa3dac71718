package storage

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"smartclock/internal/core/model"
	"smartclock/internal/ui/preferences"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const (
	minFontSize = 6
	maxFontSize = 400
)

type yamlSettings struct {
	Geometry        string  `yaml:"geometry"`
	Locale          string  `yaml:"locale"`
	StartFullscreen bool    `yaml:"start_fullscreen"`
	TimeSize        float32 `yaml:"time_size"`
	DateSize        float32 `yaml:"date_size"`
	StatusSize      float32 `yaml:"status_size"`
	TimeColor       string  `yaml:"time_color"`
	DateColor       string  `yaml:"date_color"`
	StatusColor     string  `yaml:"status_color"`
	BackgroundColor string  `yaml:"background_color"`
}

// SettingsPath returns the XDG location of the settings file.
func SettingsPath(appName string) (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, settingsFileName))
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return path, nil
}

// LoadSettings reads user preferences from the XDG settings file.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from YAML.
// If the file does not exist, default settings are returned.
// Out-of-range or malformed values keep their defaults.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to YAML.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Geometry:        settings.Geometry.String(),
		Locale:          settings.Locale,
		StartFullscreen: settings.StartFullscreen,
		TimeSize:        settings.TimeSize,
		DateSize:        settings.DateSize,
		StatusSize:      settings.StatusSize,
		TimeColor:       formatColor(settings.Palette.Time),
		DateColor:       formatColor(settings.Palette.Date),
		StatusColor:     formatColor(settings.Palette.Status),
		BackgroundColor: formatColor(settings.Palette.Background),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if geometry, err := model.ParseGeometry(fileData.Geometry); err == nil {
		settings.Geometry = geometry
	}
	if validFontSize(fileData.TimeSize) {
		settings.TimeSize = fileData.TimeSize
	}
	if validFontSize(fileData.DateSize) {
		settings.DateSize = fileData.DateSize
	}
	if validFontSize(fileData.StatusSize) {
		settings.StatusSize = fileData.StatusSize
	}

	applyColor(&settings.Palette.Time, fileData.TimeColor)
	applyColor(&settings.Palette.Date, fileData.DateColor)
	applyColor(&settings.Palette.Status, fileData.StatusColor)
	applyColor(&settings.Palette.Background, fileData.BackgroundColor)

	settings.Locale = fileData.Locale
	settings.StartFullscreen = fileData.StartFullscreen
}

func validFontSize(size float32) bool {
	return size >= minFontSize && size <= maxFontSize
}

func applyColor(target *color.NRGBA, value string) {
	if value == "" {
		return
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return
	}
	r, g, b := parsed.RGB255()
	*target = color.NRGBA{R: r, G: g, B: b, A: 255}
}

func formatColor(value color.NRGBA) string {
	parsed, _ := colorful.MakeColor(value)
	return parsed.Hex()
}
