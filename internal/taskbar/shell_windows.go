//go:build windows

package taskbar

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	swHide = 0
	swShow = 5
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procFindWindow = user32.NewProc("FindWindowW")
	procShowWindow = user32.NewProc("ShowWindow")
)

type win32Shell struct {
	class *uint16
}

// NewShell returns the Win32 shell backed by FindWindowW and ShowWindow.
func NewShell() Shell {
	class, _ := windows.UTF16PtrFromString(ClassName)
	return &win32Shell{class: class}
}

func (s *win32Shell) FindTaskbar() (Window, bool) {
	hwnd, _, _ := procFindWindow.Call(uintptr(unsafe.Pointer(s.class)), 0)
	return Window(hwnd), hwnd != 0
}

func (s *win32Shell) Show(w Window) {
	// ShowWindow returns the previous visibility, not an error
	_, _, _ = procShowWindow.Call(uintptr(w), swShow)
}

func (s *win32Shell) Hide(w Window) {
	_, _, _ = procShowWindow.Call(uintptr(w), swHide)
}
