package platform

import (
	"fmt"
	"strings"

	"github.com/adrg/xdg"
)

// Service defines the OS integration used by the command line.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the user configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", fmt.Errorf("get config dir: no config home for this user")
	}
	return xdg.ConfigHome, nil
}

// autostartID turns a display name into a file or registry friendly id.
func autostartID(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "smartclock"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func validateAutostart(action, appName, execPath string, needPath bool) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("%s autostart: app name is empty", action)
	}
	if needPath && execPath == "" {
		return fmt.Errorf("%s autostart: exec path is empty", action)
	}
	return nil
}
