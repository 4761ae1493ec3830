package dfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/core"
)

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph  *core.Graph
	opts   PathsOptions
	end    string
	visits Visits
	res    *PathsResult
	nbs    map[string][]string // neighbour cache; the graph is not mutated during a walk
}

// Paths enumerates walks from start to end admitted by the configured policy.
// The start vertex is always on the walk; whether it may be re-entered is up
// to the policy (SimplePaths forbids it). A walk terminates at end.
func Paths(g *core.Graph, start, end string, opts ...Option) (*PathsResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(end) {
		return nil, ErrEndVertexNotFound
	}

	w := &pathWalker{
		graph:  g,
		opts:   o,
		end:    end,
		visits: Visits{counts: make(map[string]int, g.VertexCount())},
		res:    &PathsResult{},
		nbs:    make(map[string][]string, g.VertexCount()),
	}
	if err := w.walk(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *pathWalker) neighbors(id string) ([]string, error) {
	if nbs, ok := w.nbs[id]; ok {
		return nbs, nil
	}
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	w.nbs[id] = nbs

	return nbs, nil
}

// walk pushes id, explores its admitted neighbours and pops it again.
func (w *pathWalker) walk(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visits.walk = append(w.visits.walk, id)
	w.visits.counts[id]++
	defer func() {
		w.visits.counts[id]--
		w.visits.walk = w.visits.walk[:len(w.visits.walk)-1]
	}()

	if id == w.end {
		return w.emit()
	}
	if w.opts.MaxDepth >= 0 && len(w.visits.walk)-1 >= w.opts.MaxDepth {
		return nil
	}

	nbs, err := w.neighbors(id)
	if err != nil {
		return err
	}
	for _, next := range nbs {
		if !w.opts.Admit(w.visits, next) {
			continue
		}
		if err = w.walk(next); err != nil {
			return err
		}
	}

	return nil
}

func (w *pathWalker) emit() error {
	w.res.Count++
	if w.opts.Collect {
		w.res.Paths = append(w.res.Paths, append([]string(nil), w.visits.walk...))
	}
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(w.visits.walk); err != nil {
			return fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}

	return nil
}
