package linkedhashmap

import "iter"

// Iterator is a cursor into a map's insertion order. It is either positioned
// on an entry or on the end sentinel, one past the newest entry.
//
// An Iterator stays valid across inserts of other keys and table growth. It
// becomes invalid once its entry is erased, or the map is cleared or
// assigned; any use after that reports ErrInvalidIterator. The zero Iterator
// is bound to no map and every operation on it fails.
type Iterator[K any, V any] struct {
	m     *Map[K, V]
	idx   int32
	gen   uint32
	epoch uint64
}

// Begin returns an iterator to the oldest entry, or End() if the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	if m == nil {
		return m.iteratorAt(none)
	}
	return m.iteratorAt(m.head)
}

// End returns the end sentinel.
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.iteratorAt(none)
}

func (m *Map[K, V]) iteratorAt(idx int32) Iterator[K, V] {
	if idx == none {
		return Iterator[K, V]{m: m, idx: none}
	}
	return Iterator[K, V]{m: m, idx: idx, gen: m.nodes.at(idx).gen, epoch: m.epoch}
}

func (it Iterator[K, V]) live() bool {
	return it.epoch == it.m.epoch && it.m.nodes.alive(it.idx, it.gen)
}

func (it Iterator[K, V]) node(op string) (*node[K, V], error) {
	switch {
	case it.m == nil:
		return nil, invalidIterator(op, reasonUnbound)
	case it.idx == none:
		return nil, invalidIterator(op, reasonEnd)
	case !it.live():
		return nil, invalidIterator(op, reasonStale)
	}
	return it.m.nodes.at(it.idx), nil
}

// IsEnd reports whether it is its map's end sentinel. Begin and End of a nil
// map are both end sentinels.
func (it Iterator[K, V]) IsEnd() bool {
	return it.idx == none
}

// Valid reports whether it points at an entry that still exists.
func (it Iterator[K, V]) Valid() bool {
	return it.m != nil && it.idx != none && it.live()
}

// Equal reports whether both iterators come from the same map and sit on the
// same entry, or are both its end sentinel.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if it.m != other.m || it.idx != other.idx {
		return false
	}
	return it.idx == none || (it.gen == other.gen && it.epoch == other.epoch)
}

// Key returns the key of the entry it points at.
func (it Iterator[K, V]) Key() (K, error) {
	n, err := it.node("key")
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

// Value returns the value of the entry it points at.
func (it Iterator[K, V]) Value() (V, error) {
	n, err := it.node("value")
	if err != nil {
		var zero V
		return zero, err
	}
	return n.value, nil
}

// ValuePtr returns a pointer to the value of the entry it points at. The key
// cannot be changed through an iterator.
func (it Iterator[K, V]) ValuePtr() (*V, error) {
	n, err := it.node("value")
	if err != nil {
		return nil, err
	}
	return &n.value, nil
}

// Pair returns a copy of the entry it points at.
func (it Iterator[K, V]) Pair() (Pair[K, V], error) {
	n, err := it.node("pair")
	if err != nil {
		return Pair[K, V]{}, err
	}
	return Pair[K, V]{Key: n.key, Value: n.value}, nil
}

// Next moves it to the next newer entry, or to the end sentinel from the
// newest one. Advancing the end sentinel is an error. On error it is left
// unchanged.
func (it *Iterator[K, V]) Next() error {
	n, err := it.node("next")
	if err != nil {
		return err
	}
	*it = it.m.iteratorAt(n.next)
	return nil
}

// Prev moves it to the next older entry. From the end sentinel it moves to the
// newest entry. Stepping back from the oldest entry, or from the end sentinel
// of an empty map, is an error. On error it is left unchanged.
func (it *Iterator[K, V]) Prev() error {
	const op = "prev"
	if it.m == nil {
		return invalidIterator(op, reasonUnbound)
	}
	if it.idx == none {
		if it.m.tail == none {
			return invalidIterator(op, reasonEmpty)
		}
		*it = it.m.iteratorAt(it.m.tail)
		return nil
	}
	n, err := it.node(op)
	if err != nil {
		return err
	}
	if n.prev == none {
		return invalidIterator(op, reasonHead)
	}
	*it = it.m.iteratorAt(n.prev)
	return nil
}

// FromOldest returns an iterator over all the key-value pairs in the map, starting from the oldest pair.
// The entry just yielded may be deleted from within the loop. If the loop
// deletes both that entry and the next one, the range stops there.
func (m *Map[K, V]) FromOldest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		m.walk(m.head, true, yield)
	}
}

// FromNewest returns an iterator over all the key-value pairs in the map, starting from the newest pair.
// The entry just yielded may be deleted from within the loop. If the loop
// deletes both that entry and the previous one, the range stops there.
func (m *Map[K, V]) FromNewest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		m.walk(m.tail, false, yield)
	}
}

// KeysFromOldest returns an iterator over all the keys in the map, starting from the oldest pair.
func (m *Map[K, V]) KeysFromOldest() iter.Seq[K] {
	return keys(m.FromOldest())
}

// KeysFromNewest returns an iterator over all the keys in the map, starting from the newest pair.
func (m *Map[K, V]) KeysFromNewest() iter.Seq[K] {
	return keys(m.FromNewest())
}

// ValuesFromOldest returns an iterator over all the values in the map, starting from the oldest pair.
func (m *Map[K, V]) ValuesFromOldest() iter.Seq[V] {
	return values(m.FromOldest())
}

// ValuesFromNewest returns an iterator over all the values in the map, starting from the newest pair.
func (m *Map[K, V]) ValuesFromNewest() iter.Seq[V] {
	return values(m.FromNewest())
}

// From creates a new Map from an iterator over key-value pairs.
func From[K comparable, V any](i iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range i {
		m.Set(k, v)
	}
	return m
}

// walk yields entries from start in the given direction. After each yield it
// continues from the yielded entry if it survived, otherwise from the neighbour
// it had before the yield. The walk ends when neither survived, or when the
// loop cleared the map.
func (m *Map[K, V]) walk(start int32, forward bool, yield func(K, V) bool) {
	step := func(n *node[K, V]) int32 {
		if forward {
			return n.next
		}
		return n.prev
	}

	for idx := start; idx != none; {
		n := m.nodes.at(idx)
		gen, epoch := n.gen, m.epoch
		saved := step(n)
		var savedGen uint32
		if saved != none {
			savedGen = m.nodes.at(saved).gen
		}

		if !yield(n.key, n.value) {
			return
		}

		switch {
		case m.epoch != epoch:
			return
		case m.nodes.alive(idx, gen):
			idx = step(n)
		case m.nodes.alive(saved, savedGen):
			idx = saved
		default:
			return
		}
	}
}

func keys[K any, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

func values[K any, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
