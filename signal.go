package sysio

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Signal disposition is inherently process-global state: installing a
// handler for a signal number overwrites the previous disposition for the
// entire process, regardless of which goroutine calls Set. Semantics are
// last-writer-wins per signal number. The registry below is the explicit
// model of that shared state; GetSignalHandler reads it without touching
// the installed disposition.

type handlerKind int

const (
	handlerDefault handlerKind = iota
	handlerIgnore
	handlerFunc
)

// SignalHandler is a value type describing a signal disposition: the
// platform default, ignore, or a callback. Copies carry the same
// disposition. Handlers are captured and applied; equality is not defined.
type SignalHandler struct {
	kind handlerKind
	fn   func(signum int)
}

// DefaultHandler returns the platform-default disposition.
func DefaultHandler() SignalHandler {
	return SignalHandler{kind: handlerDefault}
}

// IgnoreHandler returns the ignore disposition.
func IgnoreHandler() SignalHandler {
	return SignalHandler{kind: handlerIgnore}
}

// HandlerFunc returns a disposition that invokes fn with the signal number
// each time the signal is delivered. fn runs on a dedicated dispatch
// goroutine, not in signal context.
func HandlerFunc(fn func(signum int)) SignalHandler {
	return SignalHandler{kind: handlerFunc, fn: fn}
}

// Callback returns the captured callback, or nil for the default and
// ignore dispositions.
func (h SignalHandler) Callback() func(signum int) {
	return h.fn
}

type signalEntry struct {
	handler SignalHandler
	ch      chan os.Signal
	done    chan struct{}
}

var signalState = struct {
	sync.Mutex
	installed map[int]*signalEntry
}{installed: make(map[int]*signalEntry)}

// checkSignum validates a platform signal number. The runtime accepts
// signal numbers up to 63; anything else cannot be installed.
func checkSignum(signum int) error {
	if signum <= 0 || signum > 63 {
		return ioError("invalid signal number", nil)
	}
	return nil
}

// GetSignalHandler returns the currently installed disposition for the
// given signal number without altering it. A signal never touched through
// SetSignalHandler reports the default disposition.
func GetSignalHandler(signum int) (SignalHandler, error) {
	if err := checkSignum(signum); err != nil {
		return SignalHandler{}, err
	}
	signalState.Lock()
	defer signalState.Unlock()
	if e, ok := signalState.installed[signum]; ok {
		return e.handler, nil
	}
	return DefaultHandler(), nil
}

// SetSignalHandler installs a disposition for the given signal number and
// returns the previous one. The change affects the whole process.
func SetSignalHandler(signum int, handler SignalHandler) (SignalHandler, error) {
	if err := checkSignum(signum); err != nil {
		return SignalHandler{}, err
	}
	signalState.Lock()
	defer signalState.Unlock()

	prev := DefaultHandler()
	if e, ok := signalState.installed[signum]; ok {
		prev = e.handler
		if e.ch != nil {
			signal.Stop(e.ch)
			close(e.done)
		}
		delete(signalState.installed, signum)
	}

	sig := syscall.Signal(signum)
	switch handler.kind {
	case handlerDefault:
		signal.Reset(sig)
	case handlerIgnore:
		signal.Ignore(sig)
		signalState.installed[signum] = &signalEntry{handler: handler}
	case handlerFunc:
		ch := make(chan os.Signal, 1)
		done := make(chan struct{})
		signal.Notify(ch, sig)
		e := &signalEntry{handler: handler, ch: ch, done: done}
		go dispatchSignals(signum, handler.fn, ch, done)
		signalState.installed[signum] = e
	}
	return prev, nil
}

func dispatchSignals(signum int, fn func(int), ch chan os.Signal, done chan struct{}) {
	for {
		select {
		case <-ch:
			fn(signum)
		case <-done:
			return
		}
	}
}
