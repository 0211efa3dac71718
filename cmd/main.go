package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"smartclock/internal/platform"
	"smartclock/internal/storage"
	"smartclock/internal/ui/preferences"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const (
	appName   = "SmartClock"
	appID     = "com.smartclock.app"
	configDir = "smartclock"
)

// Set by the release build.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	options := &runOptions{}

	rootCmd := &cobra.Command{
		Use:   "smartclock",
		Short: "Desktop digital clock",
		Long: `SmartClock shows the current time and date in a small window.

Double-click the clock to switch between windowed and full screen. Drag the
window to move it. Settings are read from a YAML file and reloaded when it
changes.`,
		Example: `  # Run with the saved settings
  smartclock

  # Start full screen with the Chinese face
  smartclock --fullscreen --locale zh-Hans

  # Place the window explicitly
  smartclock --geometry 800x400+100+100`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd.Context(), options)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&options.fullscreen, "fullscreen", false, "Start in full screen")
	rootCmd.Flags().StringVar(&options.locale, "locale", "", "Display language (en, zh-Hans); defaults to the settings file or $LANG")
	rootCmd.Flags().StringVar(&options.geometry, "geometry", "", "Windowed geometry as WIDTHxHEIGHT+X+Y")
	rootCmd.PersistentFlags().StringVar(&options.configPath, "config", "", "Settings file (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&options.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newConfigCmd(options), newAutostartCmd(platform.NewService()))

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s", version, commit)),
	); err != nil {
		os.Exit(1)
	}
}

func newConfigCmd(options *runOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := options.settingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := options.settingsPath()
			if err != nil {
				return err
			}
			return initSettings(cmd, path, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	configCmd.AddCommand(pathCmd, initCmd)
	return configCmd
}

func initSettings(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("check settings file: %w", err)
	}
	if err := storage.SaveSettingsFile(path, preferences.DefaultSettings()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func newAutostartCmd(service platform.Service) *cobra.Command {
	autostartCmd := &cobra.Command{
		Use:   "autostart",
		Short: "Start the clock at login",
	}

	enableCmd := &cobra.Command{
		Use:   "enable",
		Short: "Register the clock to start at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}
			if err := service.EnableAutostart(appName, execPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
			return nil
		},
	}

	disableCmd := &cobra.Command{
		Use:   "disable",
		Short: "Stop starting the clock at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.DisableAutostart(appName); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether autostart is registered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enabled, err := service.AutostartEnabled(appName)
			if err != nil {
				return err
			}
			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "enabled")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "disabled")
			}
			return nil
		},
	}

	autostartCmd.AddCommand(enableCmd, disableCmd, statusCmd)
	return autostartCmd
}
