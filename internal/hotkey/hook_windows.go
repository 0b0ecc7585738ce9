//go:build windows

package hotkey

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	whKeyboardLL = 13
	wmKeyDown    = 0x0100
	keyDownBit   = 0x8000
)

// kbdllHookStruct mirrors KBDLLHOOKSTRUCT.
type kbdllHookStruct struct {
	VKCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procGetAsyncKeyState    = user32.NewProc("GetAsyncKeyState")
	procGetModuleHandle     = kernel32.NewProc("GetModuleHandleW")
)

type llHook struct {
	handle   uintptr
	handler  Handler
	callback uintptr
}

// NewHook creates a WH_KEYBOARD_LL hook. Events are delivered to the thread
// that calls Install, which must run a message loop.
func NewHook() Hook {
	return &llHook{}
}

func (h *llHook) Install(handler Handler) error {
	if h.handle != 0 {
		return fmt.Errorf("%w: already installed", ErrHookInstall)
	}
	if err := procSetWindowsHookEx.Find(); err != nil {
		return fmt.Errorf("%w: %w", ErrHookInstall, err)
	}

	h.handler = handler
	// Callbacks are never freed by the runtime; create one per hook.
	if h.callback == 0 {
		h.callback = windows.NewCallback(h.proc)
	}

	module, _, _ := procGetModuleHandle.Call(0)
	handle, _, err := procSetWindowsHookEx.Call(whKeyboardLL, h.callback, module, 0)
	if handle == 0 {
		return fmt.Errorf("%w: %w", ErrHookInstall, err)
	}
	h.handle = handle
	return nil
}

func (h *llHook) Uninstall() error {
	if h.handle == 0 {
		return nil
	}
	ok, _, err := procUnhookWindowsHookEx.Call(h.handle)
	h.handle = 0
	if ok == 0 {
		return fmt.Errorf("unhook keyboard hook: %w", err)
	}
	return nil
}

func (h *llHook) proc(nCode, wParam, lParam uintptr) uintptr {
	event := func() KeyEvent {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
		return KeyEvent{VKCode: kb.VKCode, Down: wParam == wmKeyDown}
	}
	next := func() uintptr {
		ret, _, _ := procCallNextHookEx.Call(h.handle, nCode, wParam, lParam)
		return ret
	}
	return dispatch(h.handler, int32(nCode), event, next)
}

type asyncKeyState struct{}

// NewKeyState queries key state with GetAsyncKeyState.
func NewKeyState() KeyState {
	return asyncKeyState{}
}

func (asyncKeyState) Pressed(vk uint32) bool {
	state, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(state)&keyDownBit != 0
}
