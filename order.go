package linkedhashmap

// pushBack appends idx after the current tail.
func (m *Map[K, V]) pushBack(idx int32) {
	n := m.nodes.at(idx)
	n.prev = m.tail
	n.next = none
	if m.tail != none {
		m.nodes.at(m.tail).next = idx
	} else {
		m.head = idx
	}
	m.tail = idx
}

// remove takes idx out of the order list, patching head and tail. The slot
// itself is not released.
func (m *Map[K, V]) remove(idx int32) {
	n := m.nodes.at(idx)
	if n.prev != none {
		m.nodes.at(n.prev).next = n.next
	} else {
		m.head = n.next
	}
	if n.next != none {
		m.nodes.at(n.next).prev = n.prev
	} else {
		m.tail = n.prev
	}
	n.prev, n.next = none, none
}
