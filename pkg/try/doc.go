// Package try provides Tryable[T], the outcome of a fallible computation:
// either a Success holding a value or a Failure holding the captured error.
//
// Highlights:
// - Success/Failure: construct a Tryable[T]
// - IsSuccess/IsFailure: discriminate the two variants
// - Get/GetOrElse: extract the value; Get resurfaces the captured error
// - Failed: invert the outcome, promoting a captured error to a value
// - ToOption: collapse into an opt.Option[T], discarding the error
// - All: range over the at-most-one held value
// - Of/Try/Try1/Try2: run or wrap fallible functions so errors and panics
//   are captured instead of propagating
package try
