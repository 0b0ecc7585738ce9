package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/petems/taskbar-toggle/internal/app"
	"github.com/petems/taskbar-toggle/internal/config"
	"github.com/petems/taskbar-toggle/internal/dialog"
	"github.com/petems/taskbar-toggle/internal/hotkey"
	"github.com/petems/taskbar-toggle/internal/logging"
	"github.com/petems/taskbar-toggle/internal/runloop"
	"github.com/petems/taskbar-toggle/internal/taskbar"
	"github.com/petems/taskbar-toggle/internal/tray"
	"github.com/rs/zerolog"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// A broken config file must not keep the taskbar from being managed;
	// Load still returns defaults alongside the error.
	cfg, cfgErr := config.Load()

	log := logging.NewWithLevel(cfg.LogLevel)
	if cfgErr != nil {
		log.Error().Err(cfgErr).Str("path", config.Path()).Msg("Failed to load config, using defaults")
	}

	log.Info().Str("version", Version).Str("commit", Commit).Msg("Taskbar toggle starting...")

	appCfg := app.Config{
		Shell:         taskbar.NewShell(),
		Keys:          hotkey.NewKeyState(),
		Hook:          hotkey.NewHook(),
		Loop:          runloop.New(),
		Combo:         hotkey.WinF12,
		RestoreOnExit: cfg.RestoreOnExit,
		Logger:        log,
	}

	var trayUI *tray.UI
	if cfg.Tray {
		trayUI = tray.New(nil, hotkey.WinF12.String(), Version, Commit, log)
		appCfg.StatusUpdater = trayUI
	}

	application := app.New(appCfg)
	if trayUI != nil {
		trayUI.SetApp(application)
	}

	// Setup shutdown signal handling; stopping the loop releases the hook
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("Shutting down...")
		application.Stop()
	}()

	if trayUI == nil {
		os.Exit(run(application, log))
	}

	// Tray UI takes the main thread; the hook gets its own loop thread.
	done := make(chan int, 1)
	go func() {
		done <- run(application, log)
		trayUI.Quit()
	}()

	trayUI.Run()
	application.Stop()
	os.Exit(<-done)
}

// hookFailed reports a failed hook installation to the user.
var hookFailed = dialog.HookFailed

// run serves the keyboard hook until the loop ends and returns the exit code.
func run(application *app.App, log zerolog.Logger) int {
	err := application.Run()
	switch {
	case err == nil:
		log.Info().Msg("Message loop ended")
		return 0
	case errors.Is(err, hotkey.ErrHookInstall):
		log.Error().Err(err).Msg("Failed to install keyboard hook")
		hookFailed()
		return 1
	default:
		log.Error().Err(err).Msg("Message loop failed")
		return 1
	}
}
