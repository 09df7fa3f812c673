package linkedhashmap

import "math"

// none marks an absent link.
const none int32 = -1

const (
	blockShift = 6
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
)

const arenaFullMessage = "linkedhashmap: too many entries, slot indices are limited to math.MaxInt32"

// node is one key/value entry. It sits in one bucket chain and in the order list
// at the same time; both are threaded through slot indices rather than pointers.
type node[K any, V any] struct {
	key   K
	value V
	hash  uint64

	prev, next           int32 // insertion order
	chainPrev, chainNext int32 // bucket chain

	// gen is bumped every time the slot is released, so iterators holding an
	// older generation can tell their element is gone.
	gen  uint32
	live bool
}

// arena owns every node. Nodes are stored in fixed-size blocks so their
// addresses never move while the arena grows; value pointers handed out to
// callers stay usable until the element is erased. Freed slots are recycled
// LIFO.
type arena[K any, V any] struct {
	blocks [][]node[K, V]
	used   int32 // slots handed out at least once
	free   []int32
}

func (a *arena[K, V]) alloc(key K, value V, hash uint64) int32 {
	var idx int32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.used == math.MaxInt32 {
			panic(arenaFullMessage)
		}
		idx = a.used
		if int(idx>>blockShift) == len(a.blocks) {
			a.blocks = append(a.blocks, make([]node[K, V], blockSize))
		}
		a.used++
	}

	n := a.at(idx)
	n.key = key
	n.value = value
	n.hash = hash
	n.prev, n.next = none, none
	n.chainPrev, n.chainNext = none, none
	n.live = true
	return idx
}

func (a *arena[K, V]) release(idx int32) {
	n := a.at(idx)
	var zeroK K
	var zeroV V
	n.key, n.value = zeroK, zeroV
	n.prev, n.next = none, none
	n.chainPrev, n.chainNext = none, none
	n.live = false
	n.gen++
	a.free = append(a.free, idx)
}

func (a *arena[K, V]) at(idx int32) *node[K, V] {
	return &a.blocks[idx>>blockShift][idx&blockMask]
}

// alive reports whether idx still holds the element it held at generation gen.
func (a *arena[K, V]) alive(idx int32, gen uint32) bool {
	if idx < 0 || idx >= a.used {
		return false
	}
	n := a.at(idx)
	return n.live && n.gen == gen
}

// reset drops every node. Blocks are kept for reuse.
func (a *arena[K, V]) reset() {
	for _, b := range a.blocks {
		clear(b)
	}
	a.used = 0
	a.free = a.free[:0]
}
