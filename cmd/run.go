package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartclock/internal/core/clock"
	"smartclock/internal/core/locale"
	"smartclock/internal/core/model"
	"smartclock/internal/logging"
	"smartclock/internal/platform"
	"smartclock/internal/storage"
	"smartclock/internal/ui/clockface"
	"smartclock/internal/ui/preferences"
	"smartclock/internal/ui/tray"
	"smartclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const shutdownWait = 2 * time.Second

type runOptions struct {
	fullscreen bool
	locale     string
	geometry   string
	configPath string
	debug      bool
}

func (options *runOptions) settingsPath() (string, error) {
	if options.configPath != "" {
		return options.configPath, nil
	}
	return storage.SettingsPath(configDir)
}

// apply layers command line flags over file settings.
func (options *runOptions) apply(settings *preferences.Settings) error {
	if options.geometry != "" {
		geometry, err := model.ParseGeometry(options.geometry)
		if err != nil {
			return fmt.Errorf("--geometry: %w", err)
		}
		settings.Geometry = geometry
	}
	if options.locale != "" {
		settings.Locale = options.locale
	}
	if options.fullscreen {
		settings.StartFullscreen = true
	}
	return nil
}

func (options *runOptions) clockConfig(settings preferences.Settings) model.ClockConfig {
	return settings.ClockConfig(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

func runClock(parent context.Context, options *runOptions) error {
	logger := logging.New(logging.Options{Debug: options.debug})

	configPath, err := options.settingsPath()
	if err != nil {
		return err
	}
	settings, err := storage.LoadSettingsFile(configPath)
	if err != nil {
		return err
	}
	if err := options.apply(&settings); err != nil {
		return err
	}
	config := options.clockConfig(settings)

	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.Info("clock already running; asked it to come forward", "err", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.AppLogo))

	mover := platform.NewWindowMover()
	var loop *clock.Loop
	post := func(event clock.Event) {
		if loop != nil {
			loop.Post(event)
		}
	}

	clockFace := clockface.New(fyneApp, mover, logging.WithComponent(logger, "clockface"), post)
	controller := clock.NewController(config, clockFace, logging.WithComponent(logger, "clock"))
	controller.SetOnClose(func() {
		fyne.Do(fyneApp.Quit)
	})
	loop = clock.NewLoop(controller, config.TickInterval)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = installTray(desktopApp, clockFace, post, trayStatus(config))
	} else {
		logger.Debug("system tray unsupported on this platform")
	}

	guard.OnActivate(clockFace.Raise)
	fyneApp.Lifecycle().SetOnStarted(clockFace.AttachNative)

	if err := storage.WatchSettings(ctx, configPath, logging.WithComponent(logger, "settings"), func(updated preferences.Settings) {
		if err := options.apply(&updated); err != nil {
			logger.Warn("reloaded settings rejected", "err", err)
			return
		}
		reloaded := options.clockConfig(updated)
		post(clock.Reload(reloaded))
		if trayManager != nil {
			fyne.Do(func() {
				trayManager.SetStatus(trayStatus(reloaded))
			})
		}
	}); err != nil {
		logger.Warn("settings live reload disabled", "err", err)
	}

	go func() {
		err := loop.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("clock loop stopped", "err", err)
		}
		if err != nil {
			fyne.Do(fyneApp.Quit)
		}
	}()

	logger.Info("clock started", "config", configPath, "geometry", config.Windowed, "locale", config.Locale)
	clockFace.Show()
	fyneApp.Run()

	cancel()
	waitForLoop(loop, logger)
	return nil
}

// trayStatus is the status line shown in the tray, in the clock's language.
func trayStatus(config model.ClockConfig) string {
	return locale.Match(config.Locale).Status
}

func installTray(desktopApp desktop.App, clockFace *clockface.Window, post func(clock.Event), status string) *tray.Manager {
	manager := tray.New(desktopApp, tray.Callbacks{
		OnShow: clockFace.Raise,
		OnToggleFullscreen: func() {
			post(clock.Event{Type: clock.EventToggleFullscreen})
		},
		OnQuit: func() {
			post(clock.Event{Type: clock.EventCloseRequested})
		},
	})
	manager.SetStatus(status)
	desktopApp.SetSystemTrayIcon(resources.MustLogo(resources.AppLogo))
	clockFace.SetOnModeChange(func(fullscreen bool) {
		fyne.Do(func() {
			manager.SetFullscreen(fullscreen)
		})
	})
	return manager
}

func waitForLoop(loop *clock.Loop, logger *slog.Logger) {
	select {
	case <-loop.Done():
	case <-time.After(shutdownWait):
		logger.Warn("clock loop did not stop in time")
	}
}
