package runloop

import "runtime"

type channelLoop struct {
	q      queue
	signal chan struct{}
}

// NewChannel returns a portable loop driven only by posted work.
func NewChannel() Loop {
	return &channelLoop{signal: make(chan struct{}, 1)}
}

func (l *channelLoop) Run(start func() error, stop func()) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

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

	for {
		if l.q.runPending() {
			return nil
		}
		<-l.signal
	}
}

func (l *channelLoop) wake() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

func (l *channelLoop) Post(fn func()) error {
	return l.q.push(fn)
}

func (l *channelLoop) Stop() {
	l.q.stop()
}
