// Package bucket implements an insertion-ordered set of keys
// backed by a flat slice and a key-to-slot side index.
package bucket

type (
	constError           string
	slot[Key comparable] struct {
		key  Key
		live bool
	}
	// Bucket holds keys in the order they were pushed (oldest first).
	// Removal of an arbitrary key leaves a dead slot behind,
	// which is skipped lazily and reclaimed by compaction.
	// The zero value is an empty bucket ready for use.
	Bucket[Key comparable] struct {
		index map[Key]int // Key -> offset within slots.
		slots []slot[Key]
		head  int // Offset of the oldest (possibly dead) slot.
	}
)

// ErrEmptyBucket is the panic value of [Bucket.PopFront]
// when called on an empty bucket.
const ErrEmptyBucket = constError("pop from empty bucket")

// Compaction is not attempted below this many slots.
const compactThreshold = 32

func (errStr constError) Error() string { return string(errStr) }

// Len returns the number of keys in the bucket.
func (b *Bucket[_]) Len() int { return len(b.index) }

// IsEmpty reports whether the bucket holds no keys.
func (b *Bucket[_]) IsEmpty() bool { return len(b.index) == 0 }

// Contains reports whether key is in the bucket.
func (b *Bucket[Key]) Contains(key Key) bool {
	_, ok := b.index[key]
	return ok
}

// PushBack appends key as the newest member of the bucket.
// If key was already present, it is moved to the back.
func (b *Bucket[Key]) PushBack(key Key) {
	if b.index == nil {
		b.index = make(map[Key]int)
	} else {
		b.Remove(key)
	}
	b.index[key] = len(b.slots)
	b.slots = append(b.slots, slot[Key]{key: key, live: true})
}

// Remove deletes key from the bucket,
// returning false if it was not present.
func (b *Bucket[Key]) Remove(key Key) bool {
	offset, ok := b.index[key]
	if !ok {
		return false
	}
	delete(b.index, key)
	b.slots[offset] = slot[Key]{}
	b.reclaim()
	return true
}

// Front returns the oldest key without removing it.
func (b *Bucket[Key]) Front() (Key, bool) {
	if b.IsEmpty() {
		var zero Key
		return zero, false
	}
	return b.slots[b.head].key, true
}

// PopFront removes and returns the oldest key.
// It panics with [ErrEmptyBucket] if the bucket is empty.
func (b *Bucket[Key]) PopFront() Key {
	if b.IsEmpty() {
		panic(ErrEmptyBucket)
	}
	key := b.slots[b.head].key
	delete(b.index, key)
	b.slots[b.head] = slot[Key]{}
	b.reclaim()
	return key
}

// reclaim restores the invariant that head points
// at a live slot (when any exist), and compacts
// the slice when dead slots outnumber live ones.
func (b *Bucket[_]) reclaim() {
	live := len(b.index)
	if live == 0 {
		b.slots = b.slots[:0]
		b.head = 0
		return
	}
	for !b.slots[b.head].live {
		b.head++
	}
	if total := len(b.slots); total >= compactThreshold &&
		total-live > live {
		b.compact()
	}
}

// compact moves live slots to the front of the slice
// and rewrites their offsets in the index.
func (b *Bucket[Key]) compact() {
	kept := b.slots[:0]
	for _, s := range b.slots[b.head:] {
		if !s.live {
			continue
		}
		b.index[s.key] = len(kept)
		kept = append(kept, s)
	}
	clear(b.slots[len(kept):])
	b.slots = kept
	b.head = 0
}
