// Package single provides process-wide single-instance primitives used to
// hand out well-known shared values.
//
// Highlights:
// - Lazy: a once-guarded cell whose constructor runs on first Get
// - Instance: build-once storage; later Call builders are ignored
// - Cache: a keyed map of Instances, created lazily and never evicted
//
// All primitives are safe for concurrent first access: check-then-create
// sequences run under a mutex or sync.Once.
package single
