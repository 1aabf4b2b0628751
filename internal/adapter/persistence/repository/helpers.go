package repository

import "sync"

// collection is an ordered in-memory table keyed by id, newest first.
//
// Values are cloned on the way in and out so callers never share memory with
// the stored copy.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) string
	clone func(T) T
}

func newCollection[T any](idOf func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{idOf: idOf, clone: clone}
}

func (c *collection[T]) prepend(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(v)
	for _, it := range c.items {
		if c.idOf(it) == id {
			return false
		}
	}
	c.items = append([]T{c.clone(v)}, c.items...)
	return true
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if match(it) {
			return c.clone(it), true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) get(id string) (T, bool) {
	return c.find(func(it T) bool { return c.idOf(it) == id })
}

func (c *collection[T]) replace(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(v)
	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items[i] = c.clone(v)
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, c.clone(it))
	}
	return out
}
