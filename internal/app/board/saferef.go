package board

import "sync"

// SafeRef is a concurrency-safe box around a value of type T. Readers and
// writers may touch it from any goroutine; Get returns the value under a
// read lock while Set and Update take the write lock.
//
// The zero value is usable and holds the zero value of T.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef seeded with val.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns the current value.
//
// Note that for pointer or slice types this returns a shared reference;
// callers that hand the value across an API boundary should copy it first.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Update applies fn to the value in place while holding the write lock.
// fn must not call back into the same SafeRef.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}
