//go:build windows

package dialog

import "golang.org/x/sys/windows"

const (
	mbOK        = 0x00000000
	mbIconError = 0x00000010
)

// Fatal shows a blocking error message box.
func Fatal(title, message string) {
	t, _ := windows.UTF16PtrFromString(title)
	m, _ := windows.UTF16PtrFromString(message)
	_, _ = windows.MessageBox(0, m, t, mbOK|mbIconError)
}
