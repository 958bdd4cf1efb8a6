package runner

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRouteNotFound matches every RouteNotFoundError with errors.Is.
var ErrRouteNotFound = errors.New("route not found")

// kind is implemented by every error the dispatch layer returns.
type kind interface {
	error
	runnerError()
}

// EncodeError is returned when a message or query request cannot be
// serialized. Nothing was submitted.
type EncodeError struct {
	TypeURL string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.TypeURL, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError is returned when a response payload does not decode into
// the expected type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ExecuteError is returned when the simulator rejected or reverted a tx.
// Msg is the simulator diagnostic, verbatim. The signer's sequence may
// have advanced.
type ExecuteError struct {
	Msg string
}

func (e *ExecuteError) Error() string { return e.Msg }

// QueryError is returned when the simulator failed a query on an existing
// route. Msg is the simulator diagnostic, verbatim.
type QueryError struct {
	Msg string
}

func (e *QueryError) Error() string { return e.Msg }

// RouteNotFoundError is returned when no module serves the query path.
type RouteNotFoundError struct {
	Path string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("No route found for `%s`", e.Path)
}

func (e *RouteNotFoundError) Is(target error) bool { return target == ErrRouteNotFound }

// WorkflowError reports the step of a multi-step workflow that failed.
// It unwraps to the fault of that step.
type WorkflowError struct {
	Step string
	Err  error
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *WorkflowError) Unwrap() error { return e.Err }

func (*EncodeError) runnerError()        {}
func (*DecodeError) runnerError()        {}
func (*ExecuteError) runnerError()       {}
func (*QueryError) runnerError()         {}
func (*RouteNotFoundError) runnerError() {}
func (*WorkflowError) runnerError()      {}

// asExecuteError keeps dispatch error kinds as they are and reports
// anything else as an execution fault.
func asExecuteError(err error) error {
	var k kind
	if errors.As(err, &k) {
		return err
	}
	return &ExecuteError{Msg: err.Error()}
}

func asQueryError(err error) error {
	var k kind
	if errors.As(err, &k) {
		return err
	}
	return &QueryError{Msg: err.Error()}
}

func codecIndexError(i, n int) error {
	return errors.Errorf("message response %d out of range, tx returned %d", i, n)
}
