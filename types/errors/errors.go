package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// RootCodespace is the codespace for all errors defined in this package.
const RootCodespace = "sdk"

// UndefinedCodespace is reported for errors that were never registered.
const UndefinedCodespace = "undefined"

var (
	// ErrInternal is returned for unregistered errors and recovered panics.
	ErrInternal = Register(UndefinedCodespace, 1, "internal")

	ErrTxDecode          = Register(RootCodespace, 2, "tx parse error")
	ErrInvalidSequence   = Register(RootCodespace, 3, "invalid sequence")
	ErrUnauthorized      = Register(RootCodespace, 4, "unauthorized")
	ErrInsufficientFunds = Register(RootCodespace, 5, "insufficient funds")
	ErrUnknownRequest    = Register(RootCodespace, 6, "unknown request")
	ErrInvalidAddress    = Register(RootCodespace, 7, "invalid address")
	ErrInvalidPubKey     = Register(RootCodespace, 8, "invalid pubkey")
	ErrUnknownAddress    = Register(RootCodespace, 9, "unknown address")
	ErrInvalidCoins      = Register(RootCodespace, 10, "invalid coins")
	ErrOutOfGas          = Register(RootCodespace, 11, "out of gas")
	ErrInsufficientFee   = Register(RootCodespace, 13, "insufficient fee")
	ErrNoSignatures      = Register(RootCodespace, 15, "no signatures supplied")
	ErrInvalidRequest    = Register(RootCodespace, 18, "invalid request")
	ErrInvalidType       = Register(RootCodespace, 29, "invalid type")
	ErrNotFound          = Register(RootCodespace, 38, "not found")
	ErrUnknownRoute      = Register(RootCodespace, 41, "unknown route")
	ErrPanic             = Register(UndefinedCodespace, 111222, "panic")
)

var registry = map[string]*Error{}

// Register returns an error instance that should be used as the base for
// creating error instances during runtime. Registering the same
// codespace/code pair twice panics.
func Register(codespace string, code uint32, description string) *Error {
	key := errorKey(codespace, code)
	if _, ok := registry[key]; ok {
		panic(fmt.Sprintf("error with code %d is already registered in codespace %q", code, codespace))
	}
	err := &Error{codespace: codespace, code: code, desc: description}
	registry[key] = err
	return err
}

// Lookup returns the registered error for the given codespace and code.
func Lookup(codespace string, code uint32) (*Error, bool) {
	err, ok := registry[errorKey(codespace, code)]
	return err, ok
}

func errorKey(codespace string, code uint32) string {
	return fmt.Sprintf("%s:%d", codespace, code)
}

// Error is a registered error: a codespace, a code unique in it, and a
// short description.
type Error struct {
	codespace string
	code      uint32
	desc      string
}

func (e *Error) Error() string { return e.desc }

// ABCICode returns the code of this error.
func (e *Error) ABCICode() uint32 { return e.code }

// Codespace returns the codespace of this error.
func (e *Error) Codespace() string { return e.codespace }

// Is reports whether err is the same registered error as e.
func (e *Error) Is(err error) bool {
	target, ok := err.(*Error)
	if !ok {
		return false
	}
	if e == nil || target == nil {
		return e == target
	}
	return e.code == target.code && e.codespace == target.codespace
}

// Wrap extends this error with an additional description.
func (e *Error) Wrap(desc string) error { return Wrap(e, desc) }

// Wrapf extends this error with an additional formatted description.
func (e *Error) Wrapf(format string, args ...interface{}) error {
	return Wrapf(e, format, args...)
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error  { return e.parent }
func (e *wrappedError) Unwrap() error { return e.parent }

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Wrap extends err with an additional description. A stack trace is
// attached the first time an error is wrapped. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); !ok {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsOf reports whether err matches any of errs.
func IsOf(err error, errs ...error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// ABCIInfo returns the codespace, code and log reported to clients for
// err. Errors without a registered cause are reported as internal.
func ABCIInfo(err error) (codespace string, code uint32, log string) {
	if err == nil {
		return "", 0, ""
	}
	var registered *Error
	if errors.As(err, &registered) {
		return registered.codespace, registered.code, err.Error()
	}
	return ErrInternal.codespace, ErrInternal.code, err.Error()
}
