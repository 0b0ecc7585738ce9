package tray

import (
	_ "embed"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/getlantern/systray"
	"github.com/petems/taskbar-toggle/internal/logging"
	"github.com/petems/taskbar-toggle/internal/taskbar"
	"github.com/rs/zerolog"
)

//go:embed icon.ico
var icon []byte

// Controller is the part of the app the tray menu drives.
type Controller interface {
	RequestToggle() error
	Stop()
}

type UI struct {
	app     Controller
	hotkey  string
	version string
	commit  string
	log     zerolog.Logger
	ready   chan struct{}
	done    chan struct{}

	mu    sync.Mutex
	state taskbar.State
	built bool

	// Menu items
	mToggle *systray.MenuItem
}

func New(app Controller, hotkey, version, commit string, log zerolog.Logger) *UI {
	return &UI{
		app:     app,
		hotkey:  hotkey,
		version: version,
		commit:  commit,
		log:     log,
		ready:   make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// SetApp sets the app reference (for circular dependency resolution)
func (u *UI) SetApp(app Controller) {
	u.app = app
}

// SetState records the taskbar state and refreshes the menu once it exists.
// It is called from the event loop thread.
func (u *UI) SetState(state taskbar.State) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = state
	if u.built {
		u.applyStateLocked()
	}
}

func (u *UI) applyStateLocked() {
	systray.SetTooltip(tooltipForState(u.state, u.hotkey))
	u.mToggle.SetTitle(toggleTitle(u.state))
}

// Run blocks until Quit is called. It must run on the main goroutine.
func (u *UI) Run() {
	defer close(u.done)
	systray.Run(u.onReady, u.onExit)
}

// Quit closes the tray once it has finished starting. It returns
// immediately if the tray has already exited.
func (u *UI) Quit() {
	select {
	case <-u.ready:
		systray.Quit()
	case <-u.done:
	}
}

func (u *UI) onReady() {
	systray.SetIcon(icon)
	systray.SetTitle("Taskbar Toggle")

	u.mToggle = systray.AddMenuItem(toggleTitle(taskbar.Unresolved), "Show or hide the taskbar")
	systray.AddSeparator()
	mLogs := systray.AddMenuItem("Open Logs", "View application logs")
	mAbout := systray.AddMenuItem(fmt.Sprintf("Taskbar Toggle %s", u.version), "About")
	mAbout.Disable()
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	u.mu.Lock()
	u.built = true
	u.applyStateLocked()
	u.mu.Unlock()
	close(u.ready)

	// Event loop
	go u.handleEvents(mLogs, mQuit)
}

func (u *UI) handleEvents(mLogs, mQuit *systray.MenuItem) {
	for {
		select {
		case <-u.mToggle.ClickedCh:
			u.toggle()
		case <-mLogs.ClickedCh:
			u.openLogs()
		case <-mQuit.ClickedCh:
			u.quit()
			return
		}
	}
}

func (u *UI) toggle() {
	if err := u.app.RequestToggle(); err != nil {
		u.log.Error().Err(err).Msg("Failed to request toggle")
	}
}

// quit stops the app; the caller closes the tray once the loop has exited
// and the keyboard hook is gone.
func (u *UI) quit() {
	u.log.Info().Msg("Quit requested from tray")
	u.app.Stop()
}

func (u *UI) openLogs() {
	path := logging.Path()
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		u.log.Error().Err(err).Str("path", path).Msg("Failed to open logs")
	}
}

func (u *UI) onExit() {
	u.log.Debug().Str("commit", u.commit).Msg("Tray closed")
}

// tooltipForState describes the taskbar state and the hotkey that flips it.
func tooltipForState(state taskbar.State, hotkey string) string {
	switch state {
	case taskbar.Hidden:
		return fmt.Sprintf("Taskbar hidden (%s to show)", hotkey)
	case taskbar.Shown:
		return fmt.Sprintf("Taskbar shown (%s to hide)", hotkey)
	default:
		return "Taskbar not found"
	}
}

func toggleTitle(state taskbar.State) string {
	if state == taskbar.Hidden {
		return "Show Taskbar"
	}
	return "Hide Taskbar"
}
