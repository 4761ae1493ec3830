package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid, gridgraph.Conn4)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{0, 1, 0}, {1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.Equal(t, 6, g.Len())
}

//----------------------------------------------------------------------------//
// Neighbourhood Tests
//----------------------------------------------------------------------------//

func TestNeighbors_Connectivity(t *testing.T) {
	vals := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	g4, err := gridgraph.NewGrid(vals, gridgraph.Conn4)
	require.NoError(t, err)
	g8, err := gridgraph.NewGrid(vals, gridgraph.Conn8)
	require.NoError(t, err)

	center := gridgraph.Point{X: 1, Y: 1}
	assert.Len(t, g4.Neighbors(center), 4)
	assert.Len(t, g8.Neighbors(center), 8)

	corner := gridgraph.Point{X: 0, Y: 0}
	assert.Equal(t, []gridgraph.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, g4.Neighbors(corner))
	assert.Equal(t, []gridgraph.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, g8.Neighbors(corner))
}

func TestMutationAndCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewGrid(src, gridgraph.Conn8)
	require.NoError(t, err)

	src[0][0] = 99
	p := gridgraph.Point{X: 0, Y: 0}
	assert.Equal(t, 1, g.At(p), "input is deep-copied")

	assert.Equal(t, 6, g.Add(p, 5))
	c := g.Clone()
	g.Set(p, 0)
	assert.Equal(t, 6, c.At(p), "clone is independent")
	assert.Equal(t, [][]int{{0, 2}, {3, 4}}, g.Values())
}

func TestPointsAndString(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 2}, {3, 4}}, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, g.Points())
	assert.Equal(t, "12\n34", g.String())

	g.Set(gridgraph.Point{X: 1, Y: 1}, 10)
	assert.Equal(t, "1 2\n3 10", g.String())
}
