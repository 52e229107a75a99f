// Package lfu implements a fixed capacity [Cache] using
// the Least Frequently Used (LFU) replacement policy.
//
// The structure follows the [O(1) LFU paper], which describes
// a doubly linked list of frequency nodes, each holding
// a doubly linked list of keys. Here both lists are flat slices:
// a frequency node is an integer position in a table of buckets,
// and moving a key between nodes is a removal from bucket p
// followed by an append to bucket p+1.
// This makes Get and Set O(1) amortized rather than O(1) worst case,
// as buckets grow by appending and the lowest populated frequency
// is found by a cursor that only moves forward (except on insertion).
//
// The following is a summary (intended for maintainers).
//
// Glossary and invariants:
//
//   - Frequency
//
//     The number of accesses to a key since it was inserted.
//     Insertion counts as the first access, as does every Get hit
//     and every Set of an existing key.
//     Get misses are not counted anywhere.
//
//   - Bucket
//
//     The set of live keys sharing one frequency,
//     ordered by when they arrived at that frequency (oldest first).
//
//   - Frequency table
//
//     Buckets indexed by position, where position p holds
//     keys with frequency p+1. Buckets are appended on demand
//     and never removed; an emptied bucket remains as a placeholder.
//
//   - Key index
//
//     A map from key to its value and table position.
//     A key in the index is always in exactly the bucket
//     at its recorded position, and in no other bucket.
//
//   - Low cursor
//
//     Every table position below the cursor is empty.
//     It may lag behind the lowest populated position,
//     and is reset to 0 whenever a new key is inserted.
//
// Operations:
//
//   - Access
//
//     Moves a key from its bucket at p to the back of the bucket at p+1.
//
//   - Eviction
//
//     When a new key is added to a full cache, the cursor
//     advances past empty buckets and the oldest key of the first
//     populated bucket is removed. The key is remembered in a bounded
//     history (see [Cache.EvictedRecently]) and its value is dropped.
//
// Counts:
//
//   - len(index) == sum of bucket lengths <= capacity.
//
// Building with the `lfu_debug` tag enables assertions of
// these invariants after every mutation.
//
// [O(1) LFU paper]: http://dhruvbird.com/lfu.pdf
package lfu
