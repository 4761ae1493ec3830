package caves_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/bfs"
	"github.com/katalvlaran/aoc2021/caves"
	"github.com/katalvlaran/aoc2021/dfs"
	"github.com/katalvlaran/aoc2021/parse"
)

const (
	smallSystem = `
start-A
start-b
A-c
A-b
b-d
A-end
b-end
`
	mediumSystem = `
dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`
	largeSystem = `
fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW
`
)

func TestCount(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		once, twice int
	}{
		{"small", smallSystem, 10, 36},
		{"medium", mediumSystem, 19, 103},
		{"large", largeSystem, 226, 3509},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sys, err := caves.ParseSystem(tc.input)
			require.NoError(t, err)

			n, err := sys.Count("start", "end", caves.VisitSmallOnce)
			require.NoError(t, err)
			assert.Equal(t, tc.once, n)

			n, err = sys.Count("start", "end", caves.VisitOneSmallTwice)
			require.NoError(t, err)
			assert.Equal(t, tc.twice, n)
		})
	}
}

func TestWalk(t *testing.T) {
	sys := parse.Must(caves.ParseSystem(smallSystem))
	paths, err := sys.Walk("start", "end")
	require.NoError(t, err)

	got := make([]string, len(paths))
	for i, p := range paths {
		got[i] = strings.Join(p, ",")
	}
	sort.Strings(got)
	want := []string{
		"start,A,b,A,c,A,end",
		"start,A,b,A,end",
		"start,A,b,end",
		"start,A,c,A,b,A,end",
		"start,A,c,A,b,end",
		"start,A,c,A,end",
		"start,A,end",
		"start,b,A,c,A,end",
		"start,b,A,end",
		"start,b,end",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestShortest(t *testing.T) {
	sys := parse.Must(caves.ParseSystem(largeSystem))
	path, err := sys.Shortest("start", "end")
	require.NoError(t, err)
	// several three-step routes exist; caves are explored in sorted order
	assert.Equal(t, []string{"start", "DX", "fs", "end"}, path)

	_, err = sys.Shortest("start", "nowhere")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestCount_Disconnected(t *testing.T) {
	sys := parse.Must(caves.ParseSystem("start-A\nA-b\nc-end"))
	for _, p := range []caves.Policy{caves.VisitSmallOnce, caves.VisitOneSmallTwice} {
		n, err := sys.Count("start", "end", p)
		require.NoError(t, err)
		assert.Zero(t, n, p.String())
	}
	_, err := sys.Count("start", "nowhere", caves.VisitSmallOnce)
	assert.ErrorIs(t, err, dfs.ErrEndVertexNotFound)
}

func TestSmall(t *testing.T) {
	assert.True(t, caves.Small("start"))
	assert.True(t, caves.Small("dc"))
	assert.False(t, caves.Small("HN"))
	assert.False(t, caves.Small(""))
	assert.True(t, caves.Small("1a"))
	assert.True(t, caves.Small("_x"))
}

func TestSmall_NonLetterIsNotRevisited(t *testing.T) {
	sys, err := caves.New([][2]string{{"start", "A"}, {"A", "1a"}, {"A", "end"}})
	require.NoError(t, err, "A-1a is a big-small edge")

	n, err := sys.Count("start", "end", caves.VisitSmallOnce)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSystem_Caves(t *testing.T) {
	sys := parse.Must(caves.ParseSystem(smallSystem))
	assert.Equal(t, []string{"A", "b", "c", "d", "end", "start"}, sys.Caves())
	assert.Equal(t, 7, sys.Graph().EdgeCount())
}

func TestErrors(t *testing.T) {
	_, err := caves.ParseSystem("start-A\nA-B")
	assert.ErrorIs(t, err, caves.ErrBigPair)

	_, err = caves.ParseSystem("start")
	assert.ErrorIs(t, err, caves.ErrEdge)
	assert.ErrorIs(t, err, parse.ErrMalformed)

	_, err = caves.ParseSystem("a-b-c")
	assert.ErrorIs(t, err, caves.ErrEdge)

	_, err = caves.ParseSystem("a-a")
	assert.Error(t, err)

	sys := parse.Must(caves.ParseSystem(smallSystem))
	_, err = sys.Count("nowhere", "end", caves.VisitSmallOnce)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = sys.Count("start", "end", caves.Policy(7))
	assert.ErrorIs(t, err, caves.ErrPolicy)
	assert.Equal(t, "Policy(7)", caves.Policy(7).String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sys.CountContext(ctx, "start", "end", caves.VisitOneSmallTwice)
	assert.ErrorIs(t, err, context.Canceled)
}

func BenchmarkCount_OneSmallTwice(b *testing.B) {
	sys := parse.Must(caves.ParseSystem(largeSystem))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Count("start", "end", caves.VisitOneSmallTwice); err != nil {
			b.Fatal(err)
		}
	}
}
