package polymer

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/aoc2021/parse"
)

// Polymer is a template with its insertion rules. Both are fixed at
// construction, so memoised counts never go stale.
// It is safe for concurrent use.
type Polymer struct {
	template []Element
	rules    map[Pair]Element

	mu   sync.Mutex
	memo map[memoKey]*Tally
}

// New returns a Polymer over copies of template and rules.
func New(template []Element, rules map[Pair]Element) *Polymer {
	r := make(map[Pair]Element, len(rules))
	maps.Copy(r, rules)

	return &Polymer{
		template: slices.Clone(template),
		rules:    r,
		memo:     make(map[memoKey]*Tally),
	}
}

// Template returns a copy of the starting template.
func (p *Polymer) Template() []Element { return slices.Clone(p.template) }

// Rules returns a copy of the insertion rules.
func (p *Polymer) Rules() map[Pair]Element { return maps.Clone(p.rules) }

// Rule returns the element inserted between pair, if any.
func (p *Polymer) Rule(pair Pair) (Element, bool) {
	e, ok := p.rules[pair]

	return e, ok
}

// ParsePolymer reads the template line followed by "AB -> C" rule lines.
// Blank lines are ignored.
func ParsePolymer(s string) (*Polymer, error) {
	lines := parse.Lines(s)
	if len(lines) == 0 {
		return nil, ErrTemplate
	}

	template := make([]Element, len(lines[0]))
	for i := 0; i < len(lines[0]); i++ {
		e, err := ParseElement(lines[0][i])
		if err != nil {
			return nil, fmt.Errorf("%w: template %q", err, lines[0])
		}
		template[i] = e
	}

	rules := make(map[Pair]Element, len(lines)-1)
	for n, line := range lines[1:] {
		pair, insert, err := parseRule(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", parse.ErrMalformed, n+2, err)
		}
		if prev, ok := rules[pair]; ok && prev != insert {
			return nil, fmt.Errorf("%w: %s -> %s and %s", ErrConflict, pair, prev, insert)
		}
		rules[pair] = insert
	}

	return New(template, rules), nil
}

func parseRule(line string) (Pair, Element, error) {
	var (
		l, r, m string
		arrow   string
	)
	if n, _ := fmt.Sscan(line, &l, &arrow, &m); n != 3 || arrow != "->" || len(l) != 2 || len(m) != 1 {
		return Pair{}, 0, fmt.Errorf("%w: %q", ErrRule, line)
	}
	r = l[1:]
	a, errA := ParseElement(l[0])
	b, errB := ParseElement(r[0])
	c, errC := ParseElement(m[0])
	for _, err := range []error{errA, errB, errC} {
		if err != nil {
			return Pair{}, 0, fmt.Errorf("%w: %q", err, line)
		}
	}

	return Pair{a, b}, c, nil
}

// Counts returns the element counts of the polymer after steps steps.
// It returns ErrOverflow when any count exceeds a uint64.
func (p *Polymer) Counts(steps int) (Tally, error) {
	var t Tally
	for _, e := range p.template {
		t[e.index()]++
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 1; i < len(p.template); i++ {
		in, err := p.inner(Pair{p.template[i-1], p.template[i]}, steps)
		if err == nil {
			err = t.add(in)
		}
		if err != nil {
			return Tally{}, fmt.Errorf("%w: %d steps", err, steps)
		}
	}

	return t, nil
}

var empty Tally

// inner counts the elements inserted between pair after steps steps.
// Only complete results are memoised. Callers hold p.mu.
func (p *Polymer) inner(pair Pair, steps int) (*Tally, error) {
	if steps <= 0 {
		return &empty, nil
	}
	m, ok := p.rules[pair]
	if !ok {
		return &empty, nil
	}
	key := memoKey{pair: pair, steps: steps}
	if t, ok := p.memo[key]; ok {
		return t, nil
	}

	t := new(Tally)
	t[m.index()]++
	for _, half := range []Pair{{pair[0], m}, {m, pair[1]}} {
		in, err := p.inner(half, steps-1)
		if err != nil {
			return nil, err
		}
		if err = t.add(in); err != nil {
			return nil, err
		}
	}
	p.memo[key] = t

	return t, nil
}

// Length returns the polymer length after steps steps without building it.
func (p *Polymer) Length(steps int) (uint64, error) {
	t, err := p.Counts(steps)
	if err != nil {
		return 0, err
	}
	n, err := t.Total()
	if err != nil {
		return 0, fmt.Errorf("%w: %d steps", err, steps)
	}

	return n, nil
}

// MinMax returns the least and most common elements after steps steps.
func (p *Polymer) MinMax(steps int) (least, most Element, err error) {
	t, err := p.Counts(steps)
	if err != nil {
		return 0, 0, err
	}
	least, most, _ = t.MinMax()

	return least, most, nil
}

// Spread returns the most common element's count minus the least common's.
func (p *Polymer) Spread(steps int) (uint64, error) {
	t, err := p.Counts(steps)
	if err != nil {
		return 0, err
	}
	least, most, ok := t.MinMax()
	if !ok {
		return 0, nil
	}

	return t.Of(most) - t.Of(least), nil
}

// Elements returns every element named by the template or the rules, sorted.
func (p *Polymer) Elements() []Element {
	all := append(maps.Values(p.rules), p.template...)
	for _, pair := range maps.Keys(p.rules) {
		all = append(all, pair[0], pair[1])
	}
	slices.Sort(all)

	return slices.Compact(all)
}

// Memoised reports how many (pair, steps) results are cached.
func (p *Polymer) Memoised() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.memo)
}
