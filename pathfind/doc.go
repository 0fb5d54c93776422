// Package pathfind wraps the dijkstra and dfs searches behind a per-grid
// result cache and provides path smoothing for display.
//
// Finder caches one Dijkstra path and one DFS path per grid. A cached path
// is returned as-is on every later call, whatever endpoints are requested,
// until Invalidate clears the cache. Callers that change the grid or ask for
// different endpoints must invalidate first.
//
// Smooth inserts the fractional midpoint between every consecutive pair of a
// path so a renderer can draw diagonal-capable motion. It never feeds back
// into navigation.
package pathfind
