//go:build !windows

package runloop

// New returns the platform event loop. Without a native message queue it
// falls back to the channel loop.
func New() Loop {
	return NewChannel()
}
