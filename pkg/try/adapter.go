package try

// Of runs f and captures its outcome: a normal return becomes a Success, a
// non-nil error becomes a Failure. A panic inside f is recovered and
// captured as a Failure too, so no fault crosses the call.
func Of[T any](f func() (T, error)) (t Tryable[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Failure[T](capture(r))
		}
	}()

	v, err := f()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Try wraps a fallible function into one that never fails: invoking the
// wrapper runs f and returns its outcome as a Tryable.
func Try[T any](f func() (T, error)) func() Tryable[T] {
	return func() Tryable[T] {
		return Of(f)
	}
}

// Try1 is Try for one-argument functions.
func Try1[A, T any](f func(A) (T, error)) func(A) Tryable[T] {
	return func(a A) Tryable[T] {
		return Of(func() (T, error) {
			return f(a)
		})
	}
}

// Try2 is Try for two-argument functions.
func Try2[A, B, T any](f func(A, B) (T, error)) func(A, B) Tryable[T] {
	return func(a A, b B) Tryable[T] {
		return Of(func() (T, error) {
			return f(a, b)
		})
	}
}

func capture(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
