// Package micromouse is a maze emulator for micromouse robots: it builds
// square mazes, stores them compactly, checks them with classic searches and
// drives a flood-fill mouse that discovers walls one cell at a time.
//
// Everything is organized as one package per concern:
//
//	maze/      — Grid, Cell, Pos, Direction, Path, goal region, ASCII rendering
//	kruskal/   — randomized Kruskal generation with a single goal entrance and k loops
//	bfs/       — multi-source breadth-first distance fields
//	dijkstra/  — shortest path with a binary heap
//	dfs/       — first-discovered depth-first path, loop counting
//	pathfind/  — cached Dijkstra/DFS queries and display smoothing
//	codec/     — binary maze format: 8-byte header + packed 2-bit codewords
//	navigator/ — incremental-discovery flood-fill engine, one step at a time
//	telemetry/ — "<W>x<H> <row> <col> <ORIENTATION> <wall>" event parsing
//	store/     — maze persistence on disk or in Redis
//	episode/   — generate → verify → navigate driver, parallel batches
//	config/, logging/ — YAML + env configuration, zap loggers
//
// The command-line front end lives in cmd/micromouse.
//
// Quick example, a 5×5 maze with its goal in the centre cell:
//
//	+---+---+---+---+---+
//	|           |       |
//	+   +---+   +   +---+
//	|   |       |       |
//	+   +   +---+---+   +
//	|   |   | G     |   |
//	+   +---+---+   +   +
//	|           |       |
//	+---+---+   +---+   +
//	|                   |
//	+---+---+---+---+---+
//
//	go install github.com/katalvlaran/micromouse/cmd/micromouse@latest
package micromouse
