// Package input provides puzzle inputs: the copies embedded in the binary,
// optionally replaced by dayNN.txt files from a directory.
package input

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrNoInput is returned when no input exists for a day.
var ErrNoInput = errors.New("input: no input for day")

//go:embed inputs/*.txt
var embedded embed.FS

// FileName returns the input file name for day, e.g. "day08.txt".
func FileName(day int) string { return fmt.Sprintf("day%02d.txt", day) }

// Source reads puzzle inputs.
type Source struct {
	dir string
}

// NewSource returns a Source that prefers files in dir over embedded inputs.
// An empty dir uses only the embedded inputs.
func NewSource(dir string) *Source { return &Source{dir: dir} }

// Read returns the input text for day.
func (s *Source) Read(day int) (string, error) {
	name := FileName(day)
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		switch {
		case err == nil:
			return string(data), nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("input: %w", err)
		}
	}

	data, err := embedded.ReadFile("inputs/" + name)
	if err != nil {
		return "", fmt.Errorf("%w %d", ErrNoInput, day)
	}

	return string(data), nil
}

// Embedded returns the days that have an embedded input, ascending.
func Embedded() []int {
	entries, err := embedded.ReadDir("inputs")
	if err != nil {
		return nil
	}
	days := make([]int, 0, len(entries))
	for _, e := range entries {
		n := strings.TrimSuffix(strings.TrimPrefix(e.Name(), "day"), ".txt")
		if d, err := strconv.Atoi(n); err == nil {
			days = append(days, d)
		}
	}
	slices.Sort(days)

	return days
}
