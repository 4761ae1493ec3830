package caves

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/aoc2021/bfs"
	"github.com/katalvlaran/aoc2021/core"
	"github.com/katalvlaran/aoc2021/dfs"
	"github.com/katalvlaran/aoc2021/parse"
)

var (
	// ErrEdge is returned for a connection that is not of the form "a-b".
	ErrEdge = errors.New("caves: malformed connection")
	// ErrBigPair is returned when two big caves are directly connected.
	ErrBigPair = errors.New("caves: big caves connected to each other")
	// ErrPolicy is returned for an unknown Policy value.
	ErrPolicy = errors.New("caves: unknown policy")
)

// Policy limits how often small caves may appear on a route.
type Policy int

const (
	// VisitSmallOnce allows each small cave at most once.
	VisitSmallOnce Policy = iota
	// VisitOneSmallTwice allows one small cave twice, but never the start again.
	VisitOneSmallTwice
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case VisitSmallOnce:
		return "small-once"
	case VisitOneSmallTwice:
		return "one-small-twice"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Small reports whether name denotes a small cave. Only a name starting with
// an uppercase letter is big; "1a" is small. The empty name is neither.
func Small(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)

	return !unicode.IsUpper(r)
}

// System is a cave system.
type System struct {
	graph *core.Graph
}

// New builds a System from pairs of connected caves.
func New(edges [][2]string) (*System, error) {
	g := core.NewGraph()
	for _, e := range edges {
		if !Small(e[0]) && !Small(e[1]) {
			return nil, fmt.Errorf("%w: %s-%s", ErrBigPair, e[0], e[1])
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("caves: %s-%s: %w", e[0], e[1], err)
		}
	}

	return &System{graph: g}, nil
}

// ParseSystem reads one "a-b" connection per line.
func ParseSystem(s string) (*System, error) {
	edges, err := parse.Records(s, func(f []string) ([2]string, error) {
		if len(f) != 1 {
			return [2]string{}, ErrEdge
		}
		a, b, ok := strings.Cut(f[0], "-")
		if !ok || a == "" || b == "" || strings.Contains(b, "-") {
			return [2]string{}, fmt.Errorf("%w: %q", ErrEdge, f[0])
		}

		return [2]string{a, b}, nil
	})
	if err != nil {
		return nil, err
	}

	return New(edges)
}

// Graph exposes the underlying cave graph.
func (s *System) Graph() *core.Graph { return s.graph }

// Caves returns every cave name in sorted order.
func (s *System) Caves() []string { return s.graph.Vertices() }

func admit(start string, p Policy) (dfs.AdmitFunc, error) {
	switch p {
	case VisitSmallOnce:
		return func(v dfs.Visits, next string) bool {
			return !Small(next) || v.Count(next) == 0
		}, nil
	case VisitOneSmallTwice:
		return func(v dfs.Visits, next string) bool {
			switch {
			case next == start:
				return false
			case !Small(next) || v.Count(next) == 0:
				return true
			}
			// next would be the second visit; only one small cave gets one.
			return !v.Any(func(id string, n int) bool { return n > 1 && Small(id) })
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrPolicy, int(p))
	}
}

// Count returns the number of routes from start to end under p.
func (s *System) Count(start, end string, p Policy) (int, error) {
	return s.CountContext(context.Background(), start, end, p)
}

// CountContext is Count with cancellation.
func (s *System) CountContext(ctx context.Context, start, end string, p Policy) (int, error) {
	fn, err := admit(start, p)
	if err != nil {
		return 0, err
	}
	if ok, err := s.connected(ctx, start, end); err != nil || !ok {
		return 0, err
	}
	res, err := dfs.Paths(s.graph, start, end, dfs.WithContext(ctx), dfs.WithAdmit(fn))
	if err != nil {
		return 0, fmt.Errorf("caves: %w", err)
	}

	return res.Count, nil
}

// Walk returns every route from start to end that visits each small cave at
// most once, in the order they are found.
func (s *System) Walk(start, end string) ([][]string, error) {
	fn, _ := admit(start, VisitSmallOnce)
	res, err := dfs.Paths(s.graph, start, end, dfs.WithAdmit(fn), dfs.WithCollect())
	if err != nil {
		return nil, fmt.Errorf("caves: %w", err)
	}

	return res.Paths, nil
}

// connected reports whether end can be reached from start at all, so that
// disconnected systems skip the exhaustive walk.
func (s *System) connected(ctx context.Context, start, end string) (bool, error) {
	switch {
	case !s.graph.HasVertex(start):
		return false, fmt.Errorf("caves: %w", dfs.ErrStartVertexNotFound)
	case !s.graph.HasVertex(end):
		return false, fmt.Errorf("caves: %w", dfs.ErrEndVertexNotFound)
	}
	res, err := bfs.BFS(s.graph, start, bfs.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("caves: %w", err)
	}

	return res.Reached(end), nil
}

// Shortest returns a route from start to end through the fewest caves.
func (s *System) Shortest(start, end string) ([]string, error) {
	res, err := bfs.BFS(s.graph, start)
	if err != nil {
		return nil, fmt.Errorf("caves: %w", err)
	}
	path, err := res.PathTo(end)
	if err != nil {
		return nil, fmt.Errorf("caves: %w", err)
	}

	return path, nil
}
