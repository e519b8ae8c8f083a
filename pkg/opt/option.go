package opt

import "fmt"

// Option holds either one value of type T or nothing. The zero value is the
// empty option, so every empty Option[T] compares equal to None[T]().
type Option[T any] struct {
	value   T
	defined bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		defined: true,
	}
}

// None returns the empty option for T. Options have value semantics: the
// empty option is a single canonical value per type, shared by every caller.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsDefined reports whether the option holds a value.
func (o Option[T]) IsDefined() bool {
	return o.defined
}

// IsEmpty reports whether the option holds nothing. Always the negation of
// IsDefined.
func (o Option[T]) IsEmpty() bool {
	return !o.defined
}

// Get returns the held value. On an empty option it returns the zero value
// and the shared unimplemented-operation error: extracting from nothing is a
// programming error, and the caller decides whether to propagate it.
func (o Option[T]) Get() (T, error) {
	if !o.defined {
		var zero T
		return zero, ErrNothingGet()
	}
	return o.value, nil
}

// MustGet returns the held value or panics with the shared
// unimplemented-operation error on an empty option.
func (o Option[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrElse returns the held value, or def on an empty option. Never fails.
func (o Option[T]) GetOrElse(def T) T {
	if !o.defined {
		return def
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.defined {
		return "Nothing"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
