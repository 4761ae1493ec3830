package core

import (
	"cmp"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from and to, creating both vertices when needed.
// Adding a pair that is already connected returns the existing edge ID.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.adjacency[from][to] = eid
	if !g.directed {
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// HasEdge reports whether from→to is traversable.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the IDs reachable in one step from id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := maps.Keys(nbs)
	slices.Sort(out)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := maps.Keys(g.vertices)
	slices.Sort(out)

	return out
}

// Edges returns every edge ordered by numeric ID (e1, e2, …).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := maps.Values(g.edges)
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Edge) int { return cmp.Compare(edgeSeq(a.ID), edgeSeq(b.ID)) })

	return out
}

func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
