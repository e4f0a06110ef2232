package singleton

import "sync"

// Lazy is the explained-simply variant: the whole pattern folded into one
// reusable cell. Wrap a constructor, call Get from anywhere, and sync.Once
// guarantees the constructor runs exactly once no matter how many goroutines
// race the first call. If you find yourself writing a package-level
// singleton, this is usually what you wanted instead, because the instance
// travels as a value you can scope and test.
type Lazy[T any] struct {
	build func() T
	once  sync.Once
	value T
}

// NewLazy wraps a constructor without calling it.
func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

// Get returns the value, constructing it on first use.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.build()
	})
	return l.value
}
