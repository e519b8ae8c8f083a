package opt

import "github.com/ib-77/optry/pkg/single"

// UnimplementedOperationError signals an operation the receiving variant
// deliberately does not support.
type UnimplementedOperationError struct {
	Op string
}

func (e *UnimplementedOperationError) Error() string {
	return e.Op
}

var nothingGet = single.NewLazy(func() error {
	return &UnimplementedOperationError{Op: "Nothing.get"}
})

// ErrNothingGet returns the process-wide shared error produced by Get on an
// empty option. Every call returns the same instance.
func ErrNothingGet() error {
	return nothingGet.Get()
}
