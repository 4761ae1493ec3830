package segments_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/segments"
)

const sample = `
be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
`

const single = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"

func TestCountUnique(t *testing.T) {
	entries, err := segments.ParseEntries(sample)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	counts := segments.CountUnique(entries)
	assert.Equal(t, [10]int{1: 8, 4: 6, 7: 5, 8: 7}, counts)
	assert.Equal(t, 26, counts[1]+counts[4]+counts[7]+counts[8])
}

func TestSolve_Wiring(t *testing.T) {
	entries := parse.Must(segments.ParseEntries(single))
	w, err := segments.Solve(entries[0])
	require.NoError(t, err)

	// top=d, top-left=e, top-right=a, middle=f, bottom-left=g, bottom-right=b, bottom=c
	var got [segments.NumSegments]string
	for s, wire := range w {
		got[s] = wire.String()
	}
	want := [segments.NumSegments]string{"d", "e", "a", "f", "g", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wiring mismatch (-want +got):\n%s", diff)
	}

	v, err := segments.Decode(entries[0])
	require.NoError(t, err)
	assert.Equal(t, 5353, v)
}

func TestDecode_Sample(t *testing.T) {
	entries := parse.Must(segments.ParseEntries(sample))
	want := []int{8394, 9781, 1197, 9361, 4873, 8418, 4548, 1625, 8717, 4315}

	got := make([]int, len(entries))
	for i, e := range entries {
		v, err := segments.Decode(e)
		require.NoError(t, err, "entry %d", i+1)
		got[i] = v
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded values mismatch (-want +got):\n%s", diff)
	}

	sum, err := segments.DecodeAll(entries)
	require.NoError(t, err)
	assert.Equal(t, 61229, sum)
}

func TestSolve_Errors(t *testing.T) {
	t.Run("ambiguous", func(t *testing.T) {
		e := parse.Must(segments.ParseEntries("ab dab eafb | ab"))[0]
		_, err := segments.Solve(e)
		assert.ErrorIs(t, err, segments.ErrAmbiguous)
	})
	t.Run("two ones", func(t *testing.T) {
		e := parse.Must(segments.ParseEntries("ab cd | ab"))[0]
		_, err := segments.Solve(e)
		assert.ErrorIs(t, err, segments.ErrContradiction)
	})
	t.Run("unknown digit", func(t *testing.T) {
		e := parse.Must(segments.ParseEntries(single))[0]
		w, err := segments.Solve(e)
		require.NoError(t, err)
		// "ad" lights top and top-right only.
		_, err = w.Digit(parse.Must(segments.ParsePattern("ad")))
		assert.ErrorIs(t, err, segments.ErrUnknownDigit)
	})
}

func TestParseEntries_Errors(t *testing.T) {
	_, err := segments.ParseEntries("ab cd ef")
	assert.ErrorIs(t, err, segments.ErrSeparator)
	assert.ErrorIs(t, err, parse.ErrMalformed)

	_, err = segments.ParseEntries("ab xy | ab")
	assert.ErrorIs(t, err, segments.ErrWire)

	_, err = segments.ParseEntries("aab | ab")
	assert.ErrorIs(t, err, segments.ErrWire)
}

func TestPattern(t *testing.T) {
	p, err := segments.ParsePattern("gfedcba")
	require.NoError(t, err)
	assert.Equal(t, segments.All, p)
	assert.Equal(t, 7, p.Len())
	assert.Equal(t, "abcdefg", p.String())

	p = parse.Must(segments.ParsePattern("fa"))
	assert.Equal(t, "af", p.String())
	assert.Equal(t, 2, p.Len())
}
