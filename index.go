package lfu

type (
	// record is the key index entry for a live key.
	record[Value any] struct {
		value    Value
		position int // Frequency table position; access count - 1.
	}
	index[Key comparable, Value any] map[Key]record[Value]
)

func (idx index[Key, Value]) get(key Key) (record[Value], bool) {
	rec, ok := idx[key]
	return rec, ok
}

func (idx index[Key, Value]) put(key Key, rec record[Value]) {
	idx[key] = rec
}

// remove is a no-op if key is absent.
func (idx index[Key, _]) remove(key Key) {
	delete(idx, key)
}

func (idx index[_, _]) len() int { return len(idx) }
