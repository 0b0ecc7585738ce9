//go:build !windows

package dialog

import (
	"fmt"
	"os"
)

// Fatal writes the error to stderr where no native message box exists.
func Fatal(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
