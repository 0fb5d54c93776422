package kruskal

// disjointSet is a union-find arena indexed like maze.Grid cells.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the root of u with full path compression: a first pass
// locates the root, a second pass points every node on the way at it.
// Iterative so that large grids cannot exhaust the stack.
func (ds *disjointSet) find(u int) int {
	// 1) Locate root
	root := u
	for ds.parent[root] != root {
		root = ds.parent[root]
	}

	// 2) Compress
	for ds.parent[u] != root {
		next := ds.parent[u]
		ds.parent[u] = root
		u = next
	}
	return root
}

// union merges the sets of u and v by rank.
// Returns false if they were already in the same set.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}
	return true
}
