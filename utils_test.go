package linkedhashmap

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertOrderedPairsEqual[K comparable, V any](
	t *testing.T, m *Map[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	assertOrderedPairsEqualFromNewest(t, m, expectedKeys, expectedValues)
	assertOrderedPairsEqualFromOldest(t, m, expectedKeys, expectedValues)
}

func assertOrderedPairsEqualFromNewest[K comparable, V any](
	t *testing.T, m *Map[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), m.Len()) {
		i := m.Len() - 1
		it := m.End()
		for it.Prev() == nil {
			pair, err := it.Pair()
			require.NoError(t, err)
			assert.Equal(t, expectedKeys[i], pair.Key, "from newest index=%d on key", i)
			assert.Equal(t, expectedValues[i], pair.Value, "from newest index=%d on value", i)
			i--
		}
		assert.Equal(t, -1, i, "walked back %d entries short", i+1)
	}
}

func assertOrderedPairsEqualFromOldest[K comparable, V any](
	t *testing.T, m *Map[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), m.Len()) {
		i := 0
		for it := m.Begin(); !it.IsEnd(); require.NoError(t, it.Next()) {
			pair, err := it.Pair()
			require.NoError(t, err)
			assert.Equal(t, expectedKeys[i], pair.Key, "from oldest index=%d on key", i)
			assert.Equal(t, expectedValues[i], pair.Value, "from oldest index=%d on value", i)
			i++
		}
		assert.Equal(t, len(expectedKeys), i)
	}
}

func assertLenEqual[K any, V any](t *testing.T, m *Map[K, V], expectedLen int) {
	t.Helper()

	assert.Equal(t, expectedLen, m.Len())
	// also check both internal structures, for good measure
	assertStructureConsistent(t, m)
}

// assertStructureConsistent walks the order list and every bucket chain and
// checks they hold the same live nodes, count of them included.
func assertStructureConsistent[K any, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()

	inList := make(map[int32]bool, m.count)
	prev := none
	for idx := m.head; idx != none; idx = m.nodes.at(idx).next {
		n := m.nodes.at(idx)
		require.True(t, n.live, "dead node %d in order list", idx)
		require.Equal(t, prev, n.prev, "broken prev link at %d", idx)
		require.False(t, inList[idx], "cycle in order list at %d", idx)
		inList[idx] = true
		prev = idx
	}
	assert.Equal(t, prev, m.tail, "tail does not match the last node")
	assert.Len(t, inList, m.count, "order list length")

	inChains := 0
	for b, head := range m.buckets {
		chainPrev := none
		for idx := head; idx != none; idx = m.nodes.at(idx).chainNext {
			n := m.nodes.at(idx)
			require.True(t, inList[idx], "node %d in bucket %d but not in order list", idx, b)
			require.Equal(t, b, m.bucketOf(n.hash), "node %d in wrong bucket", idx)
			require.Equal(t, chainPrev, n.chainPrev, "broken chain link at %d", idx)
			chainPrev = idx
			inChains++
		}
	}
	assert.Equal(t, m.count, inChains, "nodes reachable through buckets")
	assert.False(t, overLoad(m.count, len(m.buckets)), "load factor exceeded")
}

func randomHexString(t *testing.T, length int) string {
	t.Helper()

	b := length / 2
	randBytes := make([]byte, b)

	if n, err := rand.Read(randBytes); err != nil || n != b {
		if err == nil {
			err = fmt.Errorf("only got %v random bytes, expected %v", n, b)
		}
		t.Fatal(err)
	}

	return hex.EncodeToString(randBytes)
}

// collidingHash sends every key to the same bucket.
func collidingHash[K any](K) uint64 { return 42 }
