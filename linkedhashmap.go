// Package linkedhashmap implements a hash map that iterates in key insertion
// order.
//
// Lookups, inserts and erases are O(1) on average. Iteration always yields
// entries in the order their keys were first inserted: storing a new value for
// an existing key, or looking a key up, never moves it. Erasing a key and
// inserting it again puts it at the back.
//
// A Map is not safe for concurrent use.
package linkedhashmap

// Pair is a key/value entry.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Map is a hash map that remembers key insertion order.
//
// Entries live in an arena and are threaded through two structures at once: a
// chained hash table keyed by the hash strategy, and a doubly linked list in
// insertion order. Every mutation updates both together.
type Map[K any, V any] struct {
	_ noCopy

	nodes   arena[K, V]
	buckets []int32
	head    int32
	tail    int32
	count   int

	// epoch is bumped by Clear and Assign; node iterators taken before that are
	// stale even if their slot got reused.
	epoch uint64

	hash  HashFunc[K]
	equal EqualFunc[K]
}

// noCopy lets go vet flag maps copied by value; iterators refer to the
// original instance.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

const nilStrategyMessage = "linkedhashmap: hash and equality strategies must both be non-nil"

// New creates a new Map for comparable keys, hashed with hash/maphash.
// options can either be one or several InitOption[K, V], or a single integer,
// which is then interpreted as a capacity hint, à la make(map[K]V, capacity).
func New[K comparable, V any](options ...any) *Map[K, V] {
	config := parseOptions[K, V](options)
	if config.hash == nil && config.equal == nil {
		config.hash = defaultHash[K]()
		config.equal = defaultEqual[K]
	}
	return newMap(config)
}

// NewWithHasher creates a new Map for any key type, using the given hash and
// equality strategies. Equal keys must hash identically. options are the same
// as for New.
func NewWithHasher[K any, V any](hash HashFunc[K], equal EqualFunc[K], options ...any) *Map[K, V] {
	config := parseOptions[K, V](options)
	if config.hash == nil && config.equal == nil {
		config.hash, config.equal = hash, equal
	}
	return newMap(config)
}

func newMap[K any, V any](config initConfig[K, V]) *Map[K, V] {
	if config.hash == nil || config.equal == nil {
		panic(nilStrategyMessage)
	}
	m := &Map[K, V]{
		head:  none,
		tail:  none,
		hash:  config.hash,
		equal: config.equal,
	}
	m.buckets = newBuckets(bucketsFor(max(config.capacity, len(config.initialData))))
	m.AddPairs(config.initialData...)
	return m
}

// Len returns the number of entries in the map.
// Len of a nil map is 0.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.Len() == 0
}

// At returns the value stored under key, or a *KeyNotFoundError if there is none.
func (m *Map[K, V]) At(key K) (V, error) {
	ptr, err := m.AtPtr(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return *ptr, nil
}

// AtPtr is like At, but returns a pointer to the stored value so it can be
// updated in place. The pointer is valid until the key is erased or the map is
// cleared.
func (m *Map[K, V]) AtPtr(key K) (*V, error) {
	idx, _ := m.lookup(key)
	if idx == none {
		return nil, &KeyNotFoundError[K]{key}
	}
	return &m.nodes.at(idx).value, nil
}

// GetOrInsert returns a pointer to the value stored under key. If the key is
// absent, it is first appended with the zero value, exactly as Insert would.
// The pointer is valid until the key is erased or the map is cleared.
func (m *Map[K, V]) GetOrInsert(key K) *V {
	idx, hash := m.lookup(key)
	if idx == none {
		var zero V
		idx = m.insertNew(key, zero, hash)
	}
	return &m.nodes.at(idx).value
}

// Get looks for the given key, and returns the value associated with it,
// or V's nil value if not found. The boolean it returns says whether the key is present in the map.
func (m *Map[K, V]) Get(key K) (val V, present bool) {
	if idx, _ := m.lookup(key); idx != none {
		return m.nodes.at(idx).value, true
	}
	return
}

// Value returns the value associated with the given key or the zero value.
func (m *Map[K, V]) Value(key K) (val V) {
	val, _ = m.Get(key)
	return
}

// Count returns 1 if key is in the map, 0 otherwise.
func (m *Map[K, V]) Count(key K) int {
	if idx, _ := m.lookup(key); idx != none {
		return 1
	}
	return 0
}

// Find returns an iterator to key's entry, or End() if there is none.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	idx, _ := m.lookup(key)
	return m.iteratorAt(idx)
}

// Insert adds key with value if key is not present yet, and returns an
// iterator to the new entry and true. If key is already present, nothing
// changes: the returned iterator points at the existing entry, whose value is
// left as it was, and the boolean is false.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	idx, hash := m.lookup(key)
	if idx != none {
		return m.iteratorAt(idx), false
	}
	return m.iteratorAt(m.insertNew(key, value, hash)), true
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`.
// An existing key keeps its position; a new key is appended.
func (m *Map[K, V]) Set(key K, value V) (val V, present bool) {
	idx, hash := m.lookup(key)
	if idx != none {
		n := m.nodes.at(idx)
		old := n.value
		n.value = value
		return old, true
	}
	m.insertNew(key, value, hash)
	return
}

// AddPairs allows setting multiple pairs at a time. It's equivalent to calling
// Set on each pair sequentially.
func (m *Map[K, V]) AddPairs(pairs ...Pair[K, V]) {
	for _, pair := range pairs {
		m.Set(pair.Key, pair.Value)
	}
}

// Erase removes the entry pos points at. It fails with ErrInvalidIterator if
// pos is the end sentinel, belongs to another map, or refers to an entry that
// no longer exists; the map is left untouched in that case.
func (m *Map[K, V]) Erase(pos Iterator[K, V]) error {
	const op = "erase"
	if pos.m == nil {
		return invalidIterator(op, reasonUnbound)
	}
	if pos.m != m {
		return invalidIterator(op, reasonForeign)
	}
	if pos.idx == none {
		return invalidIterator(op, reasonEnd)
	}
	if !pos.live() {
		return invalidIterator(op, reasonStale)
	}
	m.erase(pos.idx)
	return nil
}

// Delete removes the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Delete`.
func (m *Map[K, V]) Delete(key K) (val V, present bool) {
	idx, _ := m.lookup(key)
	if idx == none {
		return
	}
	val = m.nodes.at(idx).value
	m.erase(idx)
	return val, true
}

// Filter deletes every entry for which keep returns false. Order of the
// remaining entries is unchanged.
func (m *Map[K, V]) Filter(keep func(K, V) bool) {
	for idx := m.head; idx != none; {
		n := m.nodes.at(idx)
		next := n.next
		if !keep(n.key, n.value) {
			m.erase(idx)
		}
		idx = next
	}
}

// Clear removes every entry. The bucket table keeps its current size, and
// every iterator to an entry becomes invalid.
func (m *Map[K, V]) Clear() {
	m.nodes.reset()
	for i := range m.buckets {
		m.buckets[i] = none
	}
	m.head, m.tail = none, none
	m.count = 0
	m.epoch++
}

// Clone returns an independent copy of the map with the same strategies, the
// same bucket table size and the same order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	c := &Map[K, V]{
		head:    none,
		tail:    none,
		buckets: newBuckets(len(m.buckets)),
		hash:    m.hash,
		equal:   m.equal,
	}
	c.copyFrom(m)
	return c
}

// Assign replaces the contents of m with a copy of other, strategies included.
// Iterators to m's previous entries become invalid.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	m.Clear()
	if other == nil {
		return
	}
	m.hash, m.equal = other.hash, other.equal
	m.buckets = newBuckets(len(other.buckets))
	m.copyFrom(other)
}

func (m *Map[K, V]) copyFrom(other *Map[K, V]) {
	for idx := other.head; idx != none; {
		n := other.nodes.at(idx)
		m.insertNew(n.key, n.value, n.hash)
		idx = n.next
	}
}

// lookup returns the slot holding key, or none, along with key's hash. A nil
// map never calls the hash strategy.
func (m *Map[K, V]) lookup(key K) (int32, uint64) {
	if m == nil {
		return none, 0
	}
	hash := m.hash(key)
	return m.findHashed(key, hash), hash
}

// insertNew links a key known to be absent: the table grows first if needed,
// then the node is appended to the order list and pushed on its chain.
func (m *Map[K, V]) insertNew(key K, value V, hash uint64) int32 {
	m.maybeGrow()
	idx := m.nodes.alloc(key, value, hash)
	m.pushBack(idx)
	m.chainLink(idx)
	m.count++
	return idx
}

func (m *Map[K, V]) erase(idx int32) {
	m.chainUnlink(idx)
	m.remove(idx)
	m.nodes.release(idx)
	m.count--
}
