// Package ring implements a fixed-size circular record of keys.
package ring

import "iter"

// A Ring remembers the most recent keys pushed to it,
// overwriting the oldest once full.
// Empty rings are represented as nil Ring pointers;
// pushing to them is a no-op.
type Ring[Key comparable] struct {
	seen  map[Key]int // Key -> occurrences within keys.
	keys  []Key
	next  int // Offset the next key is written to.
	count int
}

// New creates a ring which holds up to size keys.
func New[Key comparable](size int) *Ring[Key] {
	if size <= 0 {
		return nil
	}
	return &Ring[Key]{
		seen: make(map[Key]int, size),
		keys: make([]Key, size),
	}
}

// Push records key as the newest element,
// dropping the oldest if the ring is full.
func (r *Ring[Key]) Push(key Key) {
	if r == nil {
		return
	}
	if r.count == len(r.keys) {
		r.release(r.keys[r.next])
	} else {
		r.count++
	}
	r.keys[r.next] = key
	r.seen[key]++
	r.next = (r.next + 1) % len(r.keys)
}

func (r *Ring[Key]) release(key Key) {
	if n := r.seen[key]; n > 1 {
		r.seen[key] = n - 1
		return
	}
	delete(r.seen, key)
}

// Contains reports whether key is currently held by the ring.
func (r *Ring[Key]) Contains(key Key) bool {
	if r == nil {
		return false
	}
	_, ok := r.seen[key]
	return ok
}

// Len returns the number of keys held,
// counting repeated pushes individually.
func (r *Ring[_]) Len() int {
	if r == nil {
		return 0
	}
	return r.count
}

// All returns an iterator over the held keys, newest first.
func (r *Ring[Key]) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		if r == nil {
			return
		}
		size := len(r.keys)
		for i := 1; i <= r.count; i++ {
			if !yield(r.keys[(r.next-i+size)%size]) {
				return
			}
		}
	}
}
