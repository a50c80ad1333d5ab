// Package pathfind runs a uniform-cost (Dijkstra) search over a grid snapshot.
//
// Every step between neighboring cells costs 1, so the search degenerates to
// breadth-first order. The frontier is a binary min-heap keyed by
// (distance, discovery sequence): among cells at the same distance the one
// discovered first is expanded first, which makes the visitation order fully
// deterministic for a given snapshot.
//
// The engine never mutates its input. Each Run clones the snapshot, writes the
// traversal state (distance, visited flag, predecessor) into the clone and hands
// the clone back inside the Result, so two runs never observe each other.
//
// Complexity:
//
//   - Time:  O(N log N) for N cells (each cell is pushed at most once per improvement,
//     which for unit weights is once).
//   - Space: O(N).
//
// Neighbor expansion is 4-connected by default (up, down, left, right).
// WithConnectivity(Conn8) adds the four diagonals at the same unit cost.
//
// A blocked start is always expanded. Whether a blocked finish can be entered is
// an explicit policy: FinishRespectsWalls (default) treats it like any wall and the
// finish is then unreachable, FinishIgnoresWalls lets the search step onto it.
package pathfind
