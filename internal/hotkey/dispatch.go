package hotkey

// hcAction is the only hook code for which the event payload is valid.
const hcAction = 0

// dispatch runs handler for a hook invocation and then hands the event to
// the next hook in the chain. The event is forwarded whether or not the
// handler matched it, so no keystroke is ever swallowed.
func dispatch(handler Handler, nCode int32, ev func() KeyEvent, next func() uintptr) uintptr {
	if nCode >= hcAction && handler != nil {
		handler(ev())
	}
	return next()
}
