package taskbar

// ClassName is the window class of the primary taskbar.
const ClassName = "Shell_TrayWnd"

// Window is an opaque OS window handle. The zero value means unresolved.
type Window uintptr

// Shell locates the taskbar and changes its visibility.
type Shell interface {
	FindTaskbar() (Window, bool)
	Show(w Window)
	Hide(w Window)
}

type State int

const (
	Unresolved State = iota
	Shown
	Hidden
)

func (s State) String() string {
	switch s {
	case Shown:
		return "shown"
	case Hidden:
		return "hidden"
	default:
		return "unresolved"
	}
}

// Toggler tracks the taskbar handle and the last visibility command sent to it.
// It is not safe for concurrent use; it belongs to the event loop thread.
type Toggler struct {
	shell  Shell
	window Window
	hidden bool
}

func NewToggler(shell Shell) *Toggler {
	return &Toggler{shell: shell}
}

// resolve looks the taskbar up once and caches the handle for the process
// lifetime. The handle is borrowed from the shell and never released.
func (t *Toggler) resolve() bool {
	if t.window != 0 {
		return true
	}
	w, ok := t.shell.FindTaskbar()
	if !ok || w == 0 {
		return false
	}
	t.window = w
	return true
}

// InitializeAndHide resolves the taskbar and hides it. It reports false when
// the taskbar does not exist yet, leaving the state unresolved.
func (t *Toggler) InitializeAndHide() bool {
	w, ok := t.shell.FindTaskbar()
	if !ok || w == 0 {
		return false
	}
	t.window = w
	t.shell.Hide(t.window)
	t.hidden = true
	return true
}

// Toggle flips the taskbar visibility. When the taskbar cannot be found it
// does nothing and reports false; the lookup is retried on the next call.
func (t *Toggler) Toggle() (State, bool) {
	if !t.resolve() {
		return Unresolved, false
	}
	if t.hidden {
		t.shell.Show(t.window)
		t.hidden = false
	} else {
		t.shell.Hide(t.window)
		t.hidden = true
	}
	return t.State(), true
}

// Restore shows the taskbar if this process hid it.
func (t *Toggler) Restore() bool {
	if t.window == 0 || !t.hidden {
		return false
	}
	t.shell.Show(t.window)
	t.hidden = false
	return true
}

func (t *Toggler) Hidden() bool {
	return t.hidden
}

func (t *Toggler) Window() Window {
	return t.window
}

func (t *Toggler) State() State {
	switch {
	case t.window == 0:
		return Unresolved
	case t.hidden:
		return Hidden
	default:
		return Shown
	}
}
