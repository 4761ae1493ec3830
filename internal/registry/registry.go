package registry

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps day numbers to puzzles. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[int]Puzzle
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{puzzles: make(map[int]Puzzle)}
}

// Register adds p.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 || p.Solve == nil {
		return fmt.Errorf("%w: day %d", ErrInvalidDay, p.Day)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.puzzles[p.Day]; ok {
		return fmt.Errorf("%w: day %d (%s)", ErrDuplicateDay, p.Day, prev.Name)
	}
	r.puzzles[p.Day] = p

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(p Puzzle) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the puzzle for day.
func (r *Registry) Lookup(day int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.puzzles[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return p, nil
}

// All returns every puzzle ordered by day.
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	days := maps.Keys(r.puzzles)
	slices.Sort(days)
	out := make([]Puzzle, len(days))
	for i, d := range days {
		out[i] = r.puzzles[d]
	}

	return out
}

// Select returns the puzzles for days in the given order, or all puzzles
// when days is empty. Repeated days are kept once.
func (r *Registry) Select(days []int) ([]Puzzle, error) {
	if len(days) == 0 {
		return r.All(), nil
	}
	seen := make(map[int]bool, len(days))
	out := make([]Puzzle, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		p, err := r.Lookup(d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Default is the process-wide registry that puzzles register into.
var Default = New()

// MustRegister registers p in Default.
func MustRegister(p Puzzle) { Default.MustRegister(p) }
