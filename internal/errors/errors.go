// Package errors provides structured error types for the popover engine.
// These errors record which operation failed and what category of failure it was.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindUnsupported
	KindConfig
	KindIO
	KindExists
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindUnsupported:
		return "unsupported configuration"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	case KindExists:
		return "already exists"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown error"
	}
}

// Error is the structured error type used across the module.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Popover errors
func UnsupportedSource(source string) error {
	return E(Op("popover.New"), KindUnsupported, fmt.Sprintf("presentation source %q is not implemented", source))
}

func InvalidAttributes(reason string) error {
	return E(Op("popover.New"), KindInvalid, reason)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

func ConfigExists(path string) error {
	return E(Op("config.WriteTemplate"), KindExists, fmt.Sprintf("%s already exists", path))
}

func ConfigWriteFailed(path string, err error) error {
	return E(Op("config.WriteTemplate"), KindIO, fmt.Sprintf("failed to write %s", path), err)
}

// Playground errors
func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindUnavailable, "system clipboard cannot be opened", err)
}

// Demo errors
func PopoverNotFound(tag string) error {
	return E(Op("demo.Drag"), KindNotFound, fmt.Sprintf("no popover tagged %q", tag))
}

func ScenarioNotFound(name string) error {
	return E(Op("demo.Get"), KindNotFound, fmt.Sprintf("unknown scenario %q", name))
}
