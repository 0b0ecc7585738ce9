package dialog

// Title and message shown when the keyboard hook cannot be installed.
const (
	HookFailedTitle   = "Error"
	HookFailedMessage = "Failed to set keyboard hook"
)

// HookFailed reports a failed hook installation to the user. It blocks
// until the user dismisses it.
func HookFailed() {
	Fatal(HookFailedTitle, HookFailedMessage)
}
