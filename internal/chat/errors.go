package chat

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type ErrorKind int

const (
	// Transient failures may succeed if the same request is sent again.
	Transient ErrorKind = iota
	Permanent
)

func (k ErrorKind) String() string {
	switch k {
	case Transient:
		return "transient"
	case Permanent:
		return "permanent"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var ErrEmptyCompletion = errors.New("completion returned no choices")

type CompletionError struct {
	Kind ErrorKind
	Err  error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s completion error: %v", e.Kind, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

func IsTransient(err error) bool {
	var cerr *CompletionError
	return errors.As(err, &cerr) && cerr.Kind == Transient
}

// ErrorKindOf returns the kind of a completion error. Errors that were not
// produced by an LLM are permanent.
func ErrorKindOf(err error) ErrorKind {
	var cerr *CompletionError
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return Permanent
}

func classifyStatus(code int) ErrorKind {
	switch {
	case code == http.StatusRequestTimeout, code == http.StatusConflict, code == http.StatusTooManyRequests:
		return Transient
	case code >= 500:
		return Transient
	default:
		return Permanent
	}
}

// classifyTransport recognizes timeouts and connection failures, which are
// transient regardless of the backend that produced them.
func classifyTransport(err error) (ErrorKind, bool) {
	if errors.Is(err, context.DeadlineExceeded) {
		return Transient, true
	}
	if errors.Is(err, context.Canceled) {
		return Permanent, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Transient, true
	}

	return Permanent, false
}

func newCompletionError(kind ErrorKind, format string, args ...any) *CompletionError {
	return &CompletionError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
