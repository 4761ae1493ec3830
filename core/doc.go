// Package core provides the small, thread-safe in-memory Graph used by the
// traversal packages.
//
// The Graph G = (V,E) stores string-keyed vertices and unweighted edges:
//
//   - Undirected by default; WithDirected(true) stores only from→to links.
//   - Self-loops are rejected unless WithLoops is given.
//   - Parallel edges collapse: adding an existing pair is a no-op that returns
//     the existing Edge.ID.
//   - Deterministic iteration: Vertices(), Edges() and NeighborIDs() return
//     sorted results, so traversals built on top are reproducible.
//
// Core Methods:
//
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//	AddEdge(from, to string) (string, error) // O(1), auto-creates endpoints
//	HasEdge(from, to string) bool            // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	VertexCount(), EdgeCount() int           // O(1)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop when loops disabled
package core
