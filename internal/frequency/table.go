// Package frequency maps access counts to buckets of keys.
//
// Position p of a [Table] holds the keys that have been
// accessed exactly p+1 times, oldest arrival first.
// Buckets are appended lazily and never removed,
// so an emptied position remains as a placeholder.
package frequency

import "github.com/djdv/go-lfu/internal/bucket"

type (
	constError string
	// Table is an append-only sequence of buckets,
	// along with a cursor to the lowest position
	// that may contain a key.
	// The zero value is an empty table ready for use.
	Table[Key comparable] struct {
		buckets []bucket.Bucket[Key]
		// All positions below lowest are empty.
		// It may lag behind the true minimum.
		lowest,
		length int
	}
)

const (
	// ErrEmptyTable is the panic value of [Table.LowestKey]
	// when the table holds no keys.
	ErrEmptyTable = constError("no keys in frequency table")
	// ErrMissingKey is the panic value of [Table.Advance]
	// when the key is not at the position given.
	ErrMissingKey = constError("key not found at frequency position")
)

func (errStr constError) Error() string { return string(errStr) }

// BucketAt returns the bucket at pos,
// appending empty buckets to the table if needed.
// The pointer is invalidated by later table growth.
func (t *Table[Key]) BucketAt(pos int) *bucket.Bucket[Key] {
	if grow := pos + 1 - len(t.buckets); grow > 0 {
		t.buckets = append(t.buckets, make([]bucket.Bucket[Key], grow)...)
	}
	return &t.buckets[pos]
}

// InsertNew adds key at the lowest frequency (position 0)
// and returns that position.
func (t *Table[Key]) InsertNew(key Key) int {
	const first = 0
	t.BucketAt(first).PushBack(key)
	t.lowest = first
	t.length++
	return first
}

// Advance moves key from position from to from+1,
// and returns the new position.
// It panics with [ErrMissingKey] if key is not at from.
func (t *Table[Key]) Advance(key Key, from int) int {
	if from >= len(t.buckets) ||
		!t.buckets[from].Remove(key) {
		panic(ErrMissingKey)
	}
	to := from + 1
	t.BucketAt(to).PushBack(key)
	return to
}

// LowestKey removes and returns the key which has been
// at the lowest populated frequency for the longest time.
// It panics with [ErrEmptyTable] if the table holds no keys.
func (t *Table[Key]) LowestKey() Key {
	if t.length == 0 {
		panic(ErrEmptyTable)
	}
	for t.buckets[t.lowest].IsEmpty() {
		t.lowest++
	}
	t.length--
	return t.buckets[t.lowest].PopFront()
}

// Remove deletes key from position pos,
// returning false if it was not there.
func (t *Table[Key]) Remove(key Key, pos int) bool {
	if pos >= len(t.buckets) ||
		!t.buckets[pos].Remove(key) {
		return false
	}
	t.length--
	return true
}

// Contains reports whether key is at position pos.
func (t *Table[Key]) Contains(key Key, pos int) bool {
	return pos < len(t.buckets) &&
		t.buckets[pos].Contains(key)
}

// Len returns the number of keys across all buckets.
func (t *Table[_]) Len() int { return t.length }

// Depth returns the number of buckets in the table,
// including empty ones.
func (t *Table[_]) Depth() int { return len(t.buckets) }

// Lowest returns the current position of the low cursor.
func (t *Table[_]) Lowest() int { return t.lowest }
