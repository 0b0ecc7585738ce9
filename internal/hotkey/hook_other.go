//go:build !windows

package hotkey

import "fmt"

type unsupportedHook struct{}

// NewHook returns a hook that always fails to install on non-Windows platforms.
func NewHook() Hook {
	return unsupportedHook{}
}

func (unsupportedHook) Install(Handler) error {
	return fmt.Errorf("%w: %w", ErrHookInstall, ErrUnsupported)
}

func (unsupportedHook) Uninstall() error {
	return nil
}

type noKeyState struct{}

func NewKeyState() KeyState {
	return noKeyState{}
}

func (noKeyState) Pressed(uint32) bool { return false }
