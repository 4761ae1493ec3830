package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Paths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrEndVertexNotFound indicates that the end vertex ID does not exist.
	ErrEndVertexNotFound = errors.New("dfs: end vertex not found")
)

// Visits reports how many times each vertex occurs on the walk in progress.
// It is only valid for the duration of the AdmitFunc call that received it.
type Visits struct {
	counts map[string]int
	walk   []string
}

// Count returns how often id occurs on the current walk.
func (v Visits) Count(id string) int { return v.counts[id] }

// Walk returns the current walk from start. Callers must not modify it.
func (v Visits) Walk() []string { return v.walk }

// Any reports whether some vertex on the walk satisfies pred(id, count).
// Every distinct vertex is offered once.
func (v Visits) Any(pred func(id string, count int) bool) bool {
	for id, n := range v.counts {
		if n > 0 && pred(id, n) {
			return true
		}
	}

	return false
}

// AdmitFunc decides whether the walk may step into next.
type AdmitFunc func(v Visits, next string) bool

// Option configures optional behavior of Paths.
type Option func(*PathsOptions)

// PathsOptions holds configurable parameters for path enumeration.
type PathsOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Admit is the admission policy; defaults to SimplePaths.
	Admit AdmitFunc

	// OnPath, if non-nil, is called with every completed walk.
	// The slice is reused; copy it to retain it. An error aborts enumeration.
	OnPath func(path []string) error

	// Collect stores a copy of every completed walk in PathsResult.Paths.
	Collect bool

	// MaxDepth, if non-negative, bounds the number of edges in a walk.
	// Default is -1 (no limit).
	MaxDepth int
}

// SimplePaths admits a vertex only if the current walk has not visited it.
func SimplePaths(v Visits, next string) bool { return v.Count(next) == 0 }

// DefaultOptions returns PathsOptions with a background context, the
// SimplePaths policy, no hooks, no collection and no depth limit.
func DefaultOptions() PathsOptions {
	return PathsOptions{
		Ctx:      context.Background(),
		Admit:    SimplePaths,
		MaxDepth: -1,
	}
}

// WithContext sets the Context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *PathsOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAdmit installs a custom admission policy. Nil keeps the default.
func WithAdmit(fn AdmitFunc) Option {
	return func(o *PathsOptions) {
		if fn != nil {
			o.Admit = fn
		}
	}
}

// WithOnPath installs a hook called for each completed walk.
func WithOnPath(fn func(path []string) error) Option {
	return func(o *PathsOptions) {
		o.OnPath = fn
	}
}

// WithCollect makes Paths keep every completed walk.
func WithCollect() Option {
	return func(o *PathsOptions) {
		o.Collect = true
	}
}

// WithMaxDepth limits walks to at most limit edges.
func WithMaxDepth(limit int) Option {
	return func(o *PathsOptions) {
		o.MaxDepth = limit
	}
}

// PathsResult captures the outcome of Paths.
type PathsResult struct {
	// Count is the number of distinct walks from start to end.
	Count int

	// Paths holds every walk when WithCollect was given, in discovery order.
	Paths [][]string
}
