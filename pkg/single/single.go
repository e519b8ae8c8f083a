package single

import "sync"

// Lazy is a single value constructed on first Get and shared afterwards.
// The constructor is bound at creation time.
type Lazy[T any] struct {
	once  sync.Once
	build func() T
	value T
}

func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

// Get constructs the value on the first call and returns the same value on
// every call after that.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.build()
		l.build = nil
	})
	return l.value
}

// Instance stores one value, constructed by the builder passed to the first
// Call. Builders passed to later Calls are silently ignored; every Call
// returns the original value. This is deliberate: once the instance exists,
// construction arguments no longer matter.
type Instance[T any] struct {
	mu    sync.Mutex
	built bool
	value T
}

func (i *Instance[T]) Call(build func() T) T {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.built {
		i.value = build()
		i.built = true
	}
	return i.value
}

// Built reports whether the underlying value has been constructed.
func (i *Instance[T]) Built() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.built
}

// Cache maps keys to single Instances. An entry is created on first Apply
// for its key and lives for the lifetime of the process.
type Cache[K comparable, T any] struct {
	mu        sync.Mutex
	instances map[K]*Instance[T]
}

func NewCache[K comparable, T any]() *Cache[K, T] {
	return &Cache[K, T]{instances: make(map[K]*Instance[T])}
}

// Apply returns the Instance for key, creating it if it does not exist yet.
// Repeated calls with the same key return the same Instance.
func (c *Cache[K, T]) Apply(key K) *Instance[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	inst, ok := c.instances[key]
	if !ok {
		inst = &Instance[T]{}
		c.instances[key] = inst
	}
	return inst
}

// Len reports how many keys have an Instance.
func (c *Cache[K, T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.instances)
}
