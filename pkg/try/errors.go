package try

import (
	"fmt"

	"github.com/ib-77/optry/pkg/single"
)

// UnsupportedOperationError signals an operation the receiving variant does
// not support.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return e.Op
}

var successFailed = single.NewLazy(func() error {
	return &UnsupportedOperationError{Op: "Success.failed"}
})

// ErrSuccessFailed returns the process-wide shared error stored by Failed
// on a Success. Every call returns the same instance.
func ErrSuccessFailed() error {
	return successFailed.Get()
}

// PanicError wraps a non-error panic value recovered by the Try adapter.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
