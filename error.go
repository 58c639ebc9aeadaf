package funcz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for failures the toolkit produces at its own decision
// points. Errors returned by caller-supplied functions are never wrapped in
// or replaced by these - they propagate unchanged.
var (
	// ErrArityMismatch reports that a callable received an incompatible
	// number of positional arguments.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrSignatureUnavailable reports that a callable's arity could not be
	// determined and no explicit declaration was supplied.
	ErrSignatureUnavailable = errors.New("signature unavailable")

	// ErrUnhashableArguments reports that the default memoization key could
	// not be derived because an argument is not comparable.
	ErrUnhashableArguments = errors.New("unhashable arguments")

	// ErrKeyNotFound reports a Get on a mapping with a missing key and no
	// default supplied.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange reports a Get on a sequence with an index outside
	// its bounds and no default supplied.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNonBooleanResult reports that Complement wrapped a callable whose
	// result was not a bool.
	ErrNonBooleanResult = errors.New("non-boolean result")
)

// CallError provides rich context about a toolkit failure. It wraps one of
// the sentinel errors above with the path of named wrappers the failure
// crossed, the arguments involved, and when it occurred.
//
// CallError is produced only at the toolkit's own decision points. A failure
// raised by a caller-supplied function is returned as-is by every wrapper;
// it never arrives dressed as a CallError.
//
// Error handling example:
//
//	v, err := curried.Call(1, 2, 3)
//	if err != nil {
//	    var callErr *funcz.CallError
//	    if errors.As(err, &callErr) {
//	        log.Printf("failed at: %s", strings.Join(callErr.Path, " -> "))
//	        log.Printf("args: %v", callErr.Args)
//	    }
//	}
type CallError struct {
	Timestamp time.Time
	Err       error
	Path      []Name
	Args      []any
}

// Error implements the error interface, providing a detailed error message.
func (e *CallError) Error() string {
	location := "callable"
	if len(e.Path) > 0 {
		location = strings.Join(e.Path, " -> ")
	}
	if len(e.Args) > 0 {
		return fmt.Sprintf("%s: %v (args: %v)", location, e.Err, e.Args)
	}
	return fmt.Sprintf("%s: %v", location, e.Err)
}

// Unwrap returns the underlying sentinel, supporting errors.Is and errors.As.
func (e *CallError) Unwrap() error {
	return e.Err
}

// newCallError wraps a sentinel with call context. Wrappers further out
// prepend their names via prependPath as the error bubbles.
func newCallError(name Name, sentinel error, args []any) *CallError {
	return &CallError{
		Timestamp: time.Now(),
		Err:       sentinel,
		Path:      []Name{name},
		Args:      args,
	}
}

// prependPath adds name to the front of err's path when err is a toolkit
// CallError. Caller-supplied errors are returned untouched.
func prependPath(name Name, err error) error {
	var callErr *CallError
	if errors.As(err, &callErr) {
		callErr.Path = append([]Name{name}, callErr.Path...)
		return callErr
	}
	return err
}
