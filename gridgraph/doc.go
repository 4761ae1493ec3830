// Package gridgraph treats a rectangular 2D grid of integers as an implicit
// graph: every cell is a vertex and cells are adjacent under either
// four-connectivity (Conn4: N, E, S, W) or eight-connectivity (Conn8, adding
// the diagonals).
//
// Unlike core.Graph nothing is materialised: neighbours are computed from
// precomputed offsets, which keeps simulations such as the flashing-octopus
// cascade allocation-light. Cell values are mutable through Set and Add; the
// grid dimensions are fixed at construction.
//
// Complexity:
//
//   - NewGrid:   O(W×H) time and memory (deep copy of the input)
//   - Neighbors: O(d), d ∈ {4, 8}
//   - Points:    O(W×H)
package gridgraph
