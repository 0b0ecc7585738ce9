package hotkey

import "errors"

// Virtual-key codes used by the taskbar hotkey.
const (
	VKLWin uint32 = 0x5B
	VKRWin uint32 = 0x5C
	VKF12  uint32 = 0x7B
)

var (
	// ErrHookInstall is returned when the system-wide keyboard hook cannot be set.
	ErrHookInstall = errors.New("failed to set keyboard hook")
	// ErrUnsupported is returned on platforms without low-level keyboard hooks.
	ErrUnsupported = errors.New("low-level keyboard hooks are not supported on this platform")
)

// KeyEvent is a single low-level keyboard event. Down is true only for key
// presses; releases and repeats of other message kinds arrive with Down false.
type KeyEvent struct {
	VKCode uint32
	Down   bool
}

// Handler receives every keyboard event on the system. It runs on the
// thread that installed the hook and must return promptly.
type Handler func(ev KeyEvent)

// Hook defines the interface for a system-wide low-level keyboard listener.
// Install and Uninstall must be called from the thread that pumps messages.
type Hook interface {
	Install(handler Handler) error
	Uninstall() error
}

// KeyState reports whether a key is physically held right now.
type KeyState interface {
	Pressed(vk uint32) bool
}
