package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/petems/taskbar-toggle/internal/hotkey"
	"github.com/petems/taskbar-toggle/internal/runloop"
	"github.com/petems/taskbar-toggle/internal/taskbar"
	"github.com/rs/zerolog"
)

// Mock implementations for testing
type mockShell struct {
	present bool
	calls   []string
}

func (m *mockShell) FindTaskbar() (taskbar.Window, bool) {
	if !m.present {
		return 0, false
	}
	return 0xBEEF, true
}

func (m *mockShell) Show(taskbar.Window) { m.calls = append(m.calls, "show") }
func (m *mockShell) Hide(taskbar.Window) { m.calls = append(m.calls, "hide") }

type mockKeys map[uint32]bool

func (m mockKeys) Pressed(vk uint32) bool { return m[vk] }

// mockHook delivers synthetic events through the loop, the way the OS
// delivers them to the thread that installed the hook.
type mockHook struct {
	loop        runloop.Loop
	installErr  error
	handler     hotkey.Handler
	installs    int
	uninstalls  int
	deliveredTo int
}

func (m *mockHook) Install(handler hotkey.Handler) error {
	if m.installErr != nil {
		return m.installErr
	}
	m.installs++
	m.handler = handler
	return nil
}

func (m *mockHook) Uninstall() error {
	m.uninstalls++
	m.handler = nil
	return nil
}

func (m *mockHook) emit(ev hotkey.KeyEvent) {
	_ = m.loop.Post(func() {
		if m.handler != nil {
			m.deliveredTo++
			m.handler(ev)
		}
	})
}

type mockStatus struct {
	states []taskbar.State
}

func (m *mockStatus) SetState(state taskbar.State) {
	m.states = append(m.states, state)
}

var (
	press   = hotkey.KeyEvent{VKCode: hotkey.VKF12, Down: true}
	release = hotkey.KeyEvent{VKCode: hotkey.VKF12, Down: false}
)

func newTestApp(shell *mockShell, keys mockKeys) (*App, *mockHook, runloop.Loop) {
	loop := runloop.NewChannel()
	hook := &mockHook{loop: loop}
	a := New(Config{
		Shell:  shell,
		Keys:   keys,
		Hook:   hook,
		Loop:   loop,
		Logger: zerolog.Nop(),
	})
	return a, hook, loop
}

func TestStartupHidesAndHotkeyToggles(t *testing.T) {
	shell := &mockShell{present: true}
	a, hook, loop := newTestApp(shell, mockKeys{hotkey.VKLWin: true})

	var observed []bool
	record := func() { _ = loop.Post(func() { observed = append(observed, a.Hidden()) }) }

	record()
	hook.emit(press)
	hook.emit(release)
	record()
	hook.emit(press)
	hook.emit(release)
	record()
	a.Stop()

	if err := a.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []bool{true, false, true}
	if fmt.Sprint(observed) != fmt.Sprint(want) {
		t.Errorf("expected hidden sequence %v, got %v", want, observed)
	}
	if fmt.Sprint(shell.calls) != "[hide show hide]" {
		t.Errorf("unexpected visibility calls %v", shell.calls)
	}
	if hook.installs != 1 || hook.uninstalls != 1 {
		t.Errorf("expected hook installed and removed once, got %d/%d", hook.installs, hook.uninstalls)
	}
	if hook.deliveredTo != 4 {
		t.Errorf("expected all 4 events delivered, got %d", hook.deliveredTo)
	}
}

func TestToggleParity(t *testing.T) {
	a, _, _ := newTestApp(&mockShell{present: true}, mockKeys{})
	a.InitializeAndHide()

	for n := 0; n <= 7; n++ {
		if n > 0 {
			a.Toggle()
		}
		if a.Hidden() != (n%2 == 0) {
			t.Fatalf("after %d toggles expected hidden=%v", n, n%2 == 0)
		}
	}
}

func TestStartupWithoutTaskbar(t *testing.T) {
	shell := &mockShell{}
	a, hook, loop := newTestApp(shell, mockKeys{hotkey.VKRWin: true})

	var before taskbar.State
	var beforeHidden bool
	_ = loop.Post(func() {
		before = a.State()
		beforeHidden = a.Hidden()
		// The shell finishes loading after startup.
		shell.present = true
	})
	hook.emit(press)
	a.Stop()

	if err := a.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if before != taskbar.Unresolved || beforeHidden {
		t.Errorf("expected unresolved and not hidden before the hotkey, got %s hidden=%v", before, beforeHidden)
	}
	if a.State() != taskbar.Hidden {
		t.Errorf("expected first hotkey to hide the taskbar, got %s", a.State())
	}
	if fmt.Sprint(shell.calls) != "[hide]" {
		t.Errorf("expected a single hide, got %v", shell.calls)
	}
}

func TestHotkeyIgnoredWithoutTaskbar(t *testing.T) {
	shell := &mockShell{}
	a, _, _ := newTestApp(shell, mockKeys{hotkey.VKLWin: true})

	a.InitializeAndHide()
	a.OnKeyEvent(press)
	a.OnKeyEvent(press)

	if a.Hidden() || a.State() != taskbar.Unresolved {
		t.Errorf("expected no-op while the taskbar is absent, got %s", a.State())
	}
	if len(shell.calls) != 0 {
		t.Errorf("expected no visibility calls, got %v", shell.calls)
	}
}

func TestOnKeyEventFilter(t *testing.T) {
	tests := []struct {
		name       string
		event      hotkey.KeyEvent
		keys       mockKeys
		wantToggle bool
	}{
		{name: "win+F12 press", event: press, keys: mockKeys{hotkey.VKLWin: true}, wantToggle: true},
		{name: "release with win held", event: release, keys: mockKeys{hotkey.VKLWin: true, hotkey.VKRWin: true}, wantToggle: false},
		{name: "F12 without win", event: press, keys: mockKeys{}, wantToggle: false},
		{name: "other key with win", event: hotkey.KeyEvent{VKCode: 0x41, Down: true}, keys: mockKeys{hotkey.VKRWin: true}, wantToggle: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(&mockShell{present: true}, tt.keys)
			a.InitializeAndHide()

			a.OnKeyEvent(tt.event)

			toggled := !a.Hidden()
			if toggled != tt.wantToggle {
				t.Errorf("expected toggled=%v, got %v", tt.wantToggle, toggled)
			}
		})
	}
}

func TestHookInstallFailure(t *testing.T) {
	loop := runloop.NewChannel()
	hook := &mockHook{loop: loop, installErr: fmt.Errorf("%w: access denied", hotkey.ErrHookInstall)}
	a := New(Config{
		Shell:  &mockShell{present: true},
		Keys:   mockKeys{},
		Hook:   hook,
		Loop:   loop,
		Logger: zerolog.Nop(),
	})

	served := false
	_ = loop.Post(func() { served = true })

	err := a.Run()
	if !errors.Is(err, hotkey.ErrHookInstall) {
		t.Fatalf("expected ErrHookInstall, got %v", err)
	}
	if served {
		t.Error("loop must not serve events when the hook failed")
	}
	if hook.uninstalls != 0 {
		t.Error("hook that was never installed must not be removed")
	}
}

func TestRequestToggleRunsOnLoop(t *testing.T) {
	a, _, _ := newTestApp(&mockShell{present: true}, mockKeys{})

	if err := a.RequestToggle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Stop()

	if err := a.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Hidden() {
		t.Error("expected requested toggle to show the taskbar")
	}
	if err := a.RequestToggle(); !errors.Is(err, runloop.ErrStopped) {
		t.Errorf("expected ErrStopped after shutdown, got %v", err)
	}
}

func TestRestoreOnExit(t *testing.T) {
	tests := []struct {
		name       string
		restore    bool
		wantHidden bool
	}{
		{name: "restore enabled", restore: true, wantHidden: false},
		{name: "restore disabled", restore: false, wantHidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := runloop.NewChannel()
			status := &mockStatus{}
			a := New(Config{
				Shell:         &mockShell{present: true},
				Keys:          mockKeys{},
				Hook:          &mockHook{loop: loop},
				Loop:          loop,
				RestoreOnExit: tt.restore,
				Logger:        zerolog.Nop(),
				StatusUpdater: status,
			})
			a.Stop()

			if err := a.Run(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Hidden() != tt.wantHidden {
				t.Errorf("expected hidden=%v after exit, got %v", tt.wantHidden, a.Hidden())
			}
			if status.states[len(status.states)-1] != a.State() {
				t.Errorf("status %v does not end in %s", status.states, a.State())
			}
		})
	}
}

func TestStatusUpdates(t *testing.T) {
	status := &mockStatus{}
	a := New(Config{
		Shell:         &mockShell{present: true},
		Keys:          mockKeys{},
		Logger:        zerolog.Nop(),
		StatusUpdater: status,
	})

	a.InitializeAndHide()
	a.Toggle()
	a.Toggle()

	want := []taskbar.State{taskbar.Hidden, taskbar.Shown, taskbar.Hidden}
	if fmt.Sprint(status.states) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, status.states)
	}
}
