package core

import (
	"errors"
	"fmt"
)

// Transient driver failures. Drivers wrap these so retry logic can tell a
// "not there yet" from a structural failure.
var (
	ErrNoSuchElement = errors.New("no such element")
	ErrStaleElement  = errors.New("stale element reference")
	ErrNoSuchFrame   = errors.New("no such frame")
	ErrNoSuchWindow  = errors.New("no such window")
)

// ErrSearchAborted is returned when the operator declines every context
// offered by the context search. Distinct from not-found so callers can
// tell "doesn't exist" from "operator chose not to resolve it".
var ErrSearchAborted = errors.New("context search aborted by operator")

// IsTransient reports whether err is a driver failure expected to resolve
// itself with a short wait.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNoSuchElement) ||
		errors.Is(err, ErrStaleElement) ||
		errors.Is(err, ErrNoSuchFrame) ||
		errors.Is(err, ErrNoSuchWindow)
}

// ElementNotFoundError is the terminal miss: the retry budget ran out and,
// if the context search was consulted, no context matched either.
type ElementNotFoundError struct {
	XPath string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element not found: %s", e.XPath)
}
