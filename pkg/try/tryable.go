package try

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/optry/pkg/opt"
)

// Tryable holds the outcome of a fallible computation: a value on success,
// a captured error on failure. Exactly one of the two states holds, fixed
// at construction.
type Tryable[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	success   bool
}

func Success[T any](v T) Tryable[T] {
	return Tryable[T]{
		value:     v,
		err:       nil,
		success:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Tryable[T] {
	return Tryable[T]{
		err:       err,
		success:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// IsSuccess reports whether the computation produced a value.
func (t Tryable[T]) IsSuccess() bool {
	return t.success
}

// IsFailure reports whether the computation produced an error. Always the
// negation of IsSuccess.
func (t Tryable[T]) IsFailure() bool {
	return !t.success
}

// Get returns the held value on a Success. On a Failure it returns the zero
// value and the captured error: the error stays inert until the caller asks
// for the value, then resurfaces here.
func (t Tryable[T]) Get() (T, error) {
	if !t.success {
		var zero T
		return zero, t.err
	}
	return t.value, nil
}

// MustGet returns the held value or panics with the captured error on a
// Failure.
func (t Tryable[T]) MustGet() T {
	v, err := t.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrElse returns the held value, or def on a Failure. Never fails.
func (t Tryable[T]) GetOrElse(def T) T {
	if !t.success {
		return def
	}
	return t.value
}

// Err returns the captured error, or nil on a Success.
func (t Tryable[T]) Err() error {
	return t.err
}

// Failed inverts the outcome. A Failure becomes a Success holding its
// captured error as a plain value. A Success becomes a Failure holding the
// shared unsupported-operation error "Success.failed": asking a success for
// its failure is itself a failed operation, not a fault. The receiver is
// left untouched.
func (t Tryable[T]) Failed() Tryable[error] {
	if !t.success {
		return Success(t.err)
	}
	return Failure[error](ErrSuccessFailed())
}

// ToOption collapses the outcome into an option: Success(v) becomes
// Some(v), Failure becomes None. The captured error is discarded; Option
// carries no error payload.
func (t Tryable[T]) ToOption() opt.Option[T] {
	if !t.success {
		return opt.None[T]()
	}
	return opt.Some(t.value)
}

// All ranges over the held value: a Success yields its one value exactly
// once, a Failure yields nothing. The sequence is re-rangeable; a second
// range over a Success yields the value again.
func (t Tryable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.success {
			yield(t.value)
		}
	}
}

// Id returns the identifier assigned at construction.
func (t Tryable[T]) Id() uuid.UUID {
	return t.id
}

// CreatedAt returns the construction time (UTC).
func (t Tryable[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Tryable[T]) String() string {
	if !t.success {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}
