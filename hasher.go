package linkedhashmap

import "hash/maphash"

// HashFunc maps a key to a hash. It must be a pure function of the key's value,
// and keys considered equal by the paired EqualFunc must hash identically.
type HashFunc[K any] func(key K) uint64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

func defaultHash[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

func defaultEqual[K comparable](a, b K) bool {
	return a == b
}
