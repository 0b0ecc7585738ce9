package app

import (
	"github.com/petems/taskbar-toggle/internal/hotkey"
	"github.com/petems/taskbar-toggle/internal/runloop"
	"github.com/petems/taskbar-toggle/internal/taskbar"
	"github.com/rs/zerolog"
)

// StatusUpdater is an interface for reporting taskbar state (e.g., tray tooltip)
type StatusUpdater interface {
	SetState(state taskbar.State)
}

type Config struct {
	Shell         taskbar.Shell
	Keys          hotkey.KeyState
	Hook          hotkey.Hook
	Loop          runloop.Loop
	Combo         hotkey.Combo // Defaults to Win+F12
	RestoreOnExit bool
	Logger        zerolog.Logger
	StatusUpdater StatusUpdater // Optional - can be nil
}

// App is the visibility toggle service. All of its state is owned by the
// loop thread; other goroutines reach it through RequestToggle and Stop.
type App struct {
	toggler *taskbar.Toggler
	keys    hotkey.KeyState
	hook    hotkey.Hook
	loop    runloop.Loop
	combo   hotkey.Combo
	restore bool
	log     zerolog.Logger
	status  StatusUpdater
}

func New(cfg Config) *App {
	combo := cfg.Combo
	if combo.Key == 0 {
		combo = hotkey.WinF12
	}
	return &App{
		toggler: taskbar.NewToggler(cfg.Shell),
		keys:    cfg.Keys,
		hook:    cfg.Hook,
		loop:    cfg.Loop,
		combo:   combo,
		restore: cfg.RestoreOnExit,
		log:     cfg.Logger,
		status:  cfg.StatusUpdater,
	}
}

// InitializeAndHide hides the taskbar if it exists. A missing taskbar is
// expected while the shell is starting and is retried on the next toggle.
func (a *App) InitializeAndHide() {
	if a.toggler.InitializeAndHide() {
		a.log.Info().Msg("Taskbar hidden")
	} else {
		a.log.Debug().Str("class", taskbar.ClassName).Msg("Taskbar not found at startup")
	}
	a.notify()
}

// Toggle flips the taskbar between shown and hidden.
func (a *App) Toggle() {
	state, ok := a.toggler.Toggle()
	if !ok {
		a.log.Debug().Str("class", taskbar.ClassName).Msg("Taskbar not found, ignoring toggle")
		return
	}
	a.log.Info().Stringer("state", state).Msg("Toggled taskbar")
	a.notify()
}

// OnKeyEvent is the keyboard hook handler. It runs for every key event on
// the system, so it only filters and never blocks.
func (a *App) OnKeyEvent(ev hotkey.KeyEvent) {
	if a.combo.Matches(ev, a.keys) {
		a.Toggle()
	}
}

// RequestToggle schedules a toggle on the loop thread.
func (a *App) RequestToggle() error {
	return a.loop.Post(a.Toggle)
}

// Stop ends Run after pending work has been processed.
func (a *App) Stop() {
	a.loop.Stop()
}

// Run hides the taskbar, installs the keyboard hook on the loop thread and
// serves events until the loop stops. If the hook cannot be installed the
// error is returned and no events are served.
func (a *App) Run() error {
	start := func() error {
		a.InitializeAndHide()
		if err := a.hook.Install(a.OnKeyEvent); err != nil {
			return err
		}
		a.log.Info().Stringer("hotkey", a.combo).Msg("Keyboard hook installed")
		return nil
	}
	stop := func() {
		if err := a.hook.Uninstall(); err != nil {
			a.log.Error().Err(err).Msg("Failed to remove keyboard hook")
		} else {
			a.log.Info().Msg("Keyboard hook removed")
		}
		if a.restore && a.toggler.Restore() {
			a.log.Info().Msg("Taskbar restored")
			a.notify()
		}
	}
	return a.loop.Run(start, stop)
}

func (a *App) Hidden() bool {
	return a.toggler.Hidden()
}

func (a *App) State() taskbar.State {
	return a.toggler.State()
}

func (a *App) notify() {
	if a.status != nil {
		a.status.SetState(a.toggler.State())
	}
}
