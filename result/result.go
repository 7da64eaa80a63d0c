package result

/*
A Result is the outcome of a computation that may fail. It is matched like
a Maybe:

	var ok bool
	var err error
	switch m := r.Match(); m {
	case m.Ok(&ok):
	case m.Err(&err):
	}

Catch turns both returned errors and panics of a computation into an Err.
*/

import (
	"fmt"

	"github.com/pkg/errors"
)

// Result holds either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil err is replaced by ErrUnknown.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return result[T]{err: err}
}

// ErrUnknown stands in for a nil error passed to Err.
var ErrUnknown = errors.New("unknown error")

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// --- Catching failures -----------------------------------------------------

// PanicError is the error of an Err produced by Catch from a recovered panic.
type PanicError struct {
	Value any // value handed to panic()
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return "recovered from panic: " + err.Error()
	}
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value, if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Catch calls f and captures its outcome. A non-nil error returned by f as well
// as a panic during f both produce an Err; a panic is reported as *PanicError.
func Catch[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if x := recover(); x != nil {
			r = Err[T](errors.WithStack(&PanicError{Value: x}))
		}
	}()
	v, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Result.Match.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
