package parse

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines splits s on newlines, trims every line and drops the empty ones.
func Lines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	return out
}

// Fields returns the whitespace separated fields of every line of s.
func Fields(s string) [][]string {
	lines := Lines(s)
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Fields(line)
	}

	return out
}

// Blocks splits s into sections separated by one or more blank lines.
// Each section keeps its own (trimmed) lines joined by "\n".
func Blocks(s string) []string {
	var (
		blocks  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// Records maps the fields of every line of s through fn.
// The first failing line aborts parsing; its 1-based index is reported.
func Records[T any](s string, fn func(fields []string) (T, error)) ([]T, error) {
	rows := Fields(s)
	out := make([]T, 0, len(rows))
	for i, fields := range rows {
		v, err := fn(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, i+1, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// Number parses a base-10 integer into T, rejecting values T cannot hold.
func Number[T constraints.Integer](s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	unsigned := ^zero > zero

	if unsigned {
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: %q: %w", ErrMalformed, s, err)
		}
		v := T(u)
		if uint64(v) != u {
			return zero, fmt.Errorf("%w: %q overflows %T", ErrMalformed, s, zero)
		}

		return v, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrMalformed, s, err)
	}
	v := T(n)
	if int64(v) != n {
		return zero, fmt.Errorf("%w: %q overflows %T", ErrMalformed, s, zero)
	}

	return v, nil
}

// Numbers parses a sep separated list of integers. An empty sep splits on
// any whitespace, including newlines. With a non-empty sep every field must
// hold a number, so "3,,4" is malformed; blank input yields an empty list.
func Numbers[T constraints.Integer](s, sep string) ([]T, error) {
	var parts []string
	switch trimmed := strings.TrimSpace(s); {
	case sep == "":
		parts = strings.Fields(s)
	case trimmed == "":
		return []T{}, nil
	default:
		parts = strings.Split(trimmed, sep)
	}
	out := make([]T, 0, len(parts))
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("%w: empty field %d in %q", ErrMalformed, i+1, s)
		}
		v, err := Number[T](p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Digits reads a grid of single decimal digits, one row per line.
func Digits(s string) ([][]int, error) {
	lines := Lines(s)
	grid := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: line %d: bogus digit %q", ErrMalformed, y+1, string(c))
			}
			row[x] = int(c - '0')
		}
		grid[y] = row
	}

	return grid, nil
}

// Must returns v as is. It panics if err is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
