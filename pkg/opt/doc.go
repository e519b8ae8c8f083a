// Package opt provides Option[T], a value that is either present (Some) or
// absent (None), replacing nil checks with explicit branching.
//
// Highlights:
// - Some/None: construct an Option[T]; the zero value is None
// - IsDefined/IsEmpty: discriminate the two variants
// - Get: extract the value, or the shared unimplemented-operation error
// - GetOrElse: extract with a fallback, never fails
//
// Option carries no error payload. For fallible computations whose error
// matters, see package try.
package opt
