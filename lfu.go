package lfu

import (
	"github.com/djdv/go-lfu/internal/frequency"
	"github.com/djdv/go-lfu/internal/ring"
)

// Cache evicts the least frequently used key when full,
// breaking ties in favor of keeping the key that
// most recently reached the lowest frequency.
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Cache[Key comparable, Value any] struct {
	index    index[Key, Value]
	table    frequency.Table[Key]
	evicted  *ring.Ring[Key]
	capacity int
}

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Cache] which holds up to capacity keys.
// Capacity must be at least [MinimumCapacity].
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Cache[Key, Value]{
		index:    make(index[Key, Value], capacity),
		evicted:  ring.New[Key](capacity),
		capacity: capacity,
	}, nil
}

// Get returns the Value for key if it is present
// in the cache, and counts the access;
// otherwise it returns the zero value and false
// without modifying the cache.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	rec, ok := c.index.get(key)
	if !ok {
		var zero Value
		return zero, false
	}
	c.access(key, rec)
	return rec.value, true
}

// Set inserts or updates key with value.
// Updating an existing key counts as an access.
// Inserting into a full cache first evicts
// the least frequently used key.
func (c *Cache[Key, Value]) Set(key Key, value Value) error {
	if c.capacity < MinimumCapacity {
		return minCapacityError(c.capacity)
	}
	if rec, found := c.index.get(key); found {
		rec.value = value
		c.access(key, rec)
		return nil
	}
	if c.atCapacity() {
		c.evict()
	}
	c.index.put(key, record[Value]{
		value:    value,
		position: c.table.InsertNew(key),
	})
	if debugging {
		c.checkConsistency(key)
	}
	return nil
}

// Load returns the cached value for key (if present). Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, hit := c.Get(key); hit {
		return value, nil
	}
	if c.capacity < MinimumCapacity {
		var zero Value
		return zero, minCapacityError(c.capacity)
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	return value, c.Set(key, value)
}

// Remove deletes key from the cache,
// returning false if it was not present.
// Removed keys are not recorded as evicted.
func (c *Cache[Key, _]) Remove(key Key) bool {
	rec, ok := c.index.get(key)
	if !ok {
		return false
	}
	removed := c.table.Remove(key, rec.position)
	if debugging {
		assert(removed,
			"indexed key missing from its frequency bucket")
	}
	c.index.remove(key)
	return true
}

// Contains reports whether key is present,
// without counting an access.
func (c *Cache[Key, _]) Contains(key Key) bool {
	_, ok := c.index.get(key)
	return ok
}

// Frequency returns how many times key has been
// accessed since it was inserted, counting its insertion.
func (c *Cache[Key, _]) Frequency(key Key) (int, bool) {
	rec, ok := c.index.get(key)
	if !ok {
		return 0, false
	}
	return rec.position + 1, true
}

// EvictedRecently reports whether key was among the
// last [Cache.Capacity] keys evicted from the cache.
// Keys leave this history only by aging out of it.
func (c *Cache[Key, _]) EvictedRecently(key Key) bool {
	return c.evicted.Contains(key)
}

// Len returns the number of keys in the cache.
func (c *Cache[_, _]) Len() int { return c.index.len() }

// Capacity returns the maximum number of keys the cache holds.
func (c *Cache[_, _]) Capacity() int { return c.capacity }

func (c *Cache[_, _]) atCapacity() bool {
	return c.index.len() == c.capacity
}

// access moves key up one frequency and
// stores rec with its new position.
func (c *Cache[Key, Value]) access(key Key, rec record[Value]) {
	rec.position = c.table.Advance(key, rec.position)
	c.index.put(key, rec)
	if debugging {
		c.checkConsistency(key)
	}
}

// evict drops the key that has been at the lowest
// populated frequency the longest.
func (c *Cache[_, _]) evict() {
	victim := c.table.LowestKey()
	if debugging {
		_, indexed := c.index.get(victim)
		assert(indexed,
			"evicted key was not in the index")
	}
	c.index.remove(victim)
	c.evicted.Push(victim)
}

func (c *Cache[Key, _]) checkConsistency(key Key) {
	rec, _ := c.index.get(key)
	assert(c.table.Contains(key, rec.position),
		"index position does not match frequency bucket")
	assert(c.index.len() == c.table.Len(),
		"index and frequency table lengths differ")
	assert(c.index.len() <= c.capacity,
		"cache exceeds capacity")
}
