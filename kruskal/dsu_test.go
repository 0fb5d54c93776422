package kruskal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisjointSet(t *testing.T) {
	ds := newDisjointSet(6)
	assert.True(t, ds.union(0, 1))
	assert.True(t, ds.union(2, 3))
	assert.False(t, ds.union(1, 0))
	assert.NotEqual(t, ds.find(0), ds.find(2))

	assert.True(t, ds.union(1, 3))
	assert.Equal(t, ds.find(0), ds.find(2))
	assert.NotEqual(t, ds.find(0), ds.find(5))
}

func TestDisjointSet_LongChain(t *testing.T) {
	const n = 100000
	ds := newDisjointSet(n)
	for i := 1; i < n; i++ {
		ds.union(i-1, i)
	}
	root := ds.find(0)
	assert.Equal(t, root, ds.find(n-1))
	assert.Equal(t, root, ds.parent[ds.find(n/2)])
}

func TestDisjointSet_FindCompressesFully(t *testing.T) {
	// Hand-built chain 4 → 3 → 2 → 1 → 0.
	ds := newDisjointSet(5)
	for i := 1; i < 5; i++ {
		ds.parent[i] = i - 1
	}

	assert.Equal(t, 0, ds.find(4))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, ds.parent[i], "node %d", i)
	}
}

func TestPopRandom(t *testing.T) {
	r := rngFromSeed(0)
	list := []wall{{}, {}, {}}
	for i := 3; i > 0; i-- {
		popRandom(&list, r)
		assert.Len(t, list, i-1)
	}
}
