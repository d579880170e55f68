package automation

import (
	"errors"
	"fmt"
)

// Kind classifies automation failures. Every OS-boundary error is wrapped
// into one of these kinds before it leaves this package; no raw platform
// error crosses the RPC boundary.
type Kind int

const (
	// KindAppNotFound: the bundle identifier does not resolve to any
	// installed application. Never retried.
	KindAppNotFound Kind = iota
	// KindAppNotRunning: the application never became observable as running
	// within the launch retry budget.
	KindAppNotRunning
	// KindPermissionDenied: the process lacks macOS accessibility
	// permission. Requires out-of-band user action; never retried.
	KindPermissionDenied
	// KindElementNotFound: the element ID is not in the registry (never
	// scanned, or invalidated by a later full scan).
	KindElementNotFound
	// KindInvalidRequest: a parameter is present but unusable, e.g. a
	// set-text target whose role cannot accept text.
	KindInvalidRequest
	// KindActionFailed: a click or set-text fallback chain exhausted every
	// strategy without success.
	KindActionFailed
)

func (k Kind) String() string {
	switch k {
	case KindAppNotFound:
		return "application not found"
	case KindAppNotRunning:
		return "application not running"
	case KindPermissionDenied:
		return "accessibility permission denied"
	case KindElementNotFound:
		return "element not found"
	case KindInvalidRequest:
		return "invalid request"
	case KindActionFailed:
		return "action failed"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged automation failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an automation Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

func appNotFoundError(appID string, err error) *Error {
	return &Error{Kind: KindAppNotFound, Msg: fmt.Sprintf("no installed application matches %q", appID), Err: err}
}

func appNotRunningError(appID string, attempts int) *Error {
	return &Error{Kind: KindAppNotRunning, Msg: fmt.Sprintf("%q did not appear in the running-process set after %d attempts", appID, attempts)}
}

func permissionError(err error) *Error {
	return &Error{Kind: KindPermissionDenied, Msg: "grant accessibility access in System Settings > Privacy & Security > Accessibility, then retry", Err: err}
}

func elementNotFoundError(id string) *Error {
	return &Error{Kind: KindElementNotFound, Msg: fmt.Sprintf("element %q is not registered; run a fresh UI scan and use an ID from its result", id)}
}

func invalidRequestError(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Msg: msg}
}

func actionFailedError(msg string) *Error {
	return &Error{Kind: KindActionFailed, Msg: msg}
}
