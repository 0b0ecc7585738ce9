//go:build !windows

package taskbar

type noShell struct{}

// NewShell returns a shell that never finds a taskbar on non-Windows platforms.
func NewShell() Shell {
	return noShell{}
}

func (noShell) FindTaskbar() (Window, bool) { return 0, false }
func (noShell) Show(Window)                 {}
func (noShell) Hide(Window)                 {}
