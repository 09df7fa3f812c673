package linkedhashmap

const (
	defaultBuckets = 16

	// Grow once the table would be more than 3/4 full.
	loadFactorNum = 3
	loadFactorDen = 4
)

// bucketsFor returns the smallest power-of-two bucket count, at least
// defaultBuckets, that holds n entries without crossing the load factor.
func bucketsFor(n int) int {
	size := defaultBuckets
	for overLoad(n, size) {
		size <<= 1
	}
	return size
}

func overLoad(count, size int) bool {
	return count*loadFactorDen > size*loadFactorNum
}

func newBuckets(size int) []int32 {
	b := make([]int32, size)
	for i := range b {
		b[i] = none
	}
	return b
}

func (m *Map[K, V]) bucketOf(hash uint64) int {
	return int(hash & uint64(len(m.buckets)-1))
}

// findHashed scans the chain the hash falls in. Only the hash index is read.
func (m *Map[K, V]) findHashed(key K, hash uint64) int32 {
	for idx := m.buckets[m.bucketOf(hash)]; idx != none; {
		n := m.nodes.at(idx)
		if n.hash == hash && m.equal(n.key, key) {
			return idx
		}
		idx = n.chainNext
	}
	return none
}

// chainLink pushes idx at the head of its bucket chain.
func (m *Map[K, V]) chainLink(idx int32) {
	n := m.nodes.at(idx)
	b := m.bucketOf(n.hash)
	head := m.buckets[b]
	n.chainPrev = none
	n.chainNext = head
	if head != none {
		m.nodes.at(head).chainPrev = idx
	}
	m.buckets[b] = idx
}

func (m *Map[K, V]) chainUnlink(idx int32) {
	n := m.nodes.at(idx)
	if n.chainPrev != none {
		m.nodes.at(n.chainPrev).chainNext = n.chainNext
	} else {
		m.buckets[m.bucketOf(n.hash)] = n.chainNext
	}
	if n.chainNext != none {
		m.nodes.at(n.chainNext).chainPrev = n.chainPrev
	}
	n.chainPrev, n.chainNext = none, none
}

// maybeGrow doubles the table if one more entry would cross the load factor.
// It must only be called right before a genuinely new key is linked.
func (m *Map[K, V]) maybeGrow() {
	if !overLoad(m.count+1, len(m.buckets)) {
		return
	}
	m.rehash(len(m.buckets) << 1)
}

// rehash rebuilds every chain for a table of the given size by walking the
// order list. Order links are left untouched.
func (m *Map[K, V]) rehash(size int) {
	m.buckets = newBuckets(size)
	for idx := m.head; idx != none; idx = m.nodes.at(idx).next {
		m.chainLink(idx)
	}
}
