//go:build windows

package runloop

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	wmUser     = 0x0400
	wmApp      = 0x8000
	pmNoRemove = 0x0000
)

// msg mirrors the Win32 MSG structure.
type msg struct {
	Hwnd     uintptr
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       struct{ X, Y int32 }
	LPrivate uint32
}

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetMessage        = user32.NewProc("GetMessageW")
	procPeekMessage       = user32.NewProc("PeekMessageW")
	procTranslateMessage  = user32.NewProc("TranslateMessage")
	procDispatchMessage   = user32.NewProc("DispatchMessageW")
	procPostThreadMessage = user32.NewProc("PostThreadMessageW")
)

type messageLoop struct {
	q      queue
	thread uint32
}

// New returns a loop that pumps the Win32 message queue of its thread.
// Low-level hooks installed from start are serviced by this pump.
func New() Loop {
	return &messageLoop{}
}

func (l *messageLoop) Run(start func() error, stop func()) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var m msg
	// Force creation of the thread message queue so PostThreadMessageW
	// cannot race ahead of the first GetMessageW.
	_, _, _ = procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, wmUser, wmUser, pmNoRemove)
	l.thread = windows.GetCurrentThreadId()

	if start != nil {
		if err := start(); err != nil {
			return err
		}
	}
	if stop != nil {
		defer stop()
	}

	l.q.attach(l.wake)
	defer l.q.detach()

	if l.q.runPending() {
		return nil
	}

	for {
		ret, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return fmt.Errorf("get message: %w", err)
		case 0:
			// WM_QUIT
			return nil
		}

		if m.Hwnd == 0 && m.Message == wmApp {
			if l.q.runPending() {
				return nil
			}
			continue
		}

		_, _, _ = procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		_, _, _ = procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (l *messageLoop) wake() {
	_, _, _ = procPostThreadMessage.Call(uintptr(l.thread), wmApp, 0, 0)
}

func (l *messageLoop) Post(fn func()) error {
	return l.q.push(fn)
}

func (l *messageLoop) Stop() {
	l.q.stop()
}
