// Package bfs runs breadth-first search over a core.Graph.
//
// BFS visits vertices in order of hop distance from a start vertex and
// records, for every vertex reached, its depth and the vertex it was first
// reached from. The search can be limited in depth, restricted by a neighbour
// filter and observed or aborted through an OnVisit hook.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
