package lfu

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New],
// and from [Cache.Set] or [Cache.Load] on a cache
// not constructed by [New].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}
