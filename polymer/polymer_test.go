package polymer_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/polymer"
)

const sample = `
NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
NC -> B
NB -> B
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
`

func TestCounts(t *testing.T) {
	p, err := polymer.ParsePolymer(sample)
	require.NoError(t, err)
	assert.Len(t, p.Rules(), 16)

	// NCNBCHB
	one, err := p.Counts(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), one.Of('N'))
	assert.Equal(t, uint64(2), one.Of('C'))
	assert.Equal(t, uint64(2), one.Of('B'))
	assert.Equal(t, uint64(1), one.Of('H'))

	ten, err := p.Counts(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1749), ten.Of('B'))
	assert.Equal(t, uint64(298), ten.Of('C'))
	assert.Equal(t, uint64(161), ten.Of('H'))
	assert.Equal(t, uint64(865), ten.Of('N'))
	total, err := ten.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(3073), total)
}

func TestLength(t *testing.T) {
	p := parse.Must(polymer.ParsePolymer(sample))
	for steps, want := range []uint64{4, 7, 13, 25, 49, 97} {
		t.Run(fmt.Sprintf("steps=%d", steps), func(t *testing.T) {
			got, err := p.Length(steps)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMinMax(t *testing.T) {
	p := parse.Must(polymer.ParsePolymer(sample))

	least, most, err := p.MinMax(10)
	require.NoError(t, err)
	assert.Equal(t, polymer.Element('H'), least)
	assert.Equal(t, polymer.Element('B'), most)
	spread, err := p.Spread(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1588), spread)

	least, most, err = p.MinMax(40)
	require.NoError(t, err)
	assert.Equal(t, "H", least.String())
	assert.Equal(t, "B", most.String())
	spread, err = p.Spread(40)
	require.NoError(t, err)
	assert.Equal(t, uint64(2188189693529), spread)
}

func TestMinMax_NoRules(t *testing.T) {
	p, err := polymer.ParsePolymer("NNNCCB")
	require.NoError(t, err)

	least, most, err := p.MinMax(0)
	require.NoError(t, err)
	assert.Equal(t, polymer.Element('B'), least)
	assert.Equal(t, polymer.Element('N'), most)
	tally, err := p.Counts(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tally.Of(least))
	assert.Equal(t, uint64(3), tally.Of(most))
	n, err := p.Length(25)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), n, "no rules means no growth")
}

func TestMemo(t *testing.T) {
	p := parse.Must(polymer.ParsePolymer(sample))
	assert.Zero(t, p.Memoised())

	_, err := p.Counts(10)
	require.NoError(t, err)
	afterTen := p.Memoised()
	assert.NotZero(t, afterTen)

	_, err = p.Counts(10)
	require.NoError(t, err)
	assert.Equal(t, afterTen, p.Memoised(), "repeat call hits the memo")

	_, err = p.Counts(40)
	require.NoError(t, err)
	assert.Greater(t, p.Memoised(), afterTen)
}

func TestRules_AreCopies(t *testing.T) {
	rules := map[polymer.Pair]polymer.Element{{'N', 'N'}: 'C'}
	template := []polymer.Element{'N', 'N'}
	p := polymer.New(template, rules)

	one, err := p.Counts(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), one.Of('C'))

	rules[polymer.Pair{'N', 'N'}] = 'B'
	p.Rules()[polymer.Pair{'N', 'N'}] = 'B'
	template[0] = 'B'
	p.Template()[1] = 'B'

	one, err = p.Counts(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), one.Of('C'), "memoised counts still match the rules")
	assert.Zero(t, one.Of('B'))
	assert.Equal(t, []polymer.Element{'N', 'N'}, p.Template())
	e, ok := p.Rule(polymer.Pair{'N', 'N'})
	require.True(t, ok)
	assert.Equal(t, polymer.Element('C'), e)

	// a polymer built from the changed rules sees them
	fresh, err := polymer.New([]polymer.Element{'N', 'N'}, rules).Counts(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), fresh.Of('B'))
}

func TestCounts_Overflow(t *testing.T) {
	p := polymer.New([]polymer.Element{'N', 'N'}, map[polymer.Pair]polymer.Element{{'N', 'N'}: 'N'})

	n, err := p.Length(63)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63+1, n)

	_, err = p.Length(64)
	assert.ErrorIs(t, err, polymer.ErrOverflow, "2^64+1 does not fit")

	_, err = p.Length(70)
	assert.ErrorIs(t, err, polymer.ErrOverflow)
	_, err = p.Spread(70)
	assert.ErrorIs(t, err, polymer.ErrOverflow)
	_, _, err = p.MinMax(70)
	assert.ErrorIs(t, err, polymer.ErrOverflow)

	// a failed count leaves the memo usable
	n, err = p.Length(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<10+1, n)
}

func TestTally_TotalOverflow(t *testing.T) {
	p := polymer.New([]polymer.Element{'A', 'B'}, map[polymer.Pair]polymer.Element{
		{'A', 'B'}: 'A', {'A', 'A'}: 'B', {'B', 'B'}: 'A', {'B', 'A'}: 'B',
	})
	// A and B stay balanced: at 64 steps each count fits but their sum does not
	tally, err := p.Counts(63)
	require.NoError(t, err)
	total, err := tally.Total()
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63+1, total)

	tally, err = p.Counts(64)
	require.NoError(t, err)
	_, err = tally.Total()
	assert.ErrorIs(t, err, polymer.ErrOverflow)
	_, err = p.Length(64)
	assert.ErrorIs(t, err, polymer.ErrOverflow)
}

func TestConcurrentCounts(t *testing.T) {
	p := parse.Must(polymer.ParsePolymer(sample))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			steps := 10 + 10*(i%4)
			for j := 0; j < 20; j++ {
				_, err := p.Counts(steps)
				assert.NoError(t, err)
				_, err = p.Spread(steps)
				assert.NoError(t, err)
				assert.Len(t, p.Elements(), 4)
				assert.Len(t, p.Rules(), 16)
			}
		}(i)
	}
	wg.Wait()

	spread, err := p.Spread(40)
	require.NoError(t, err)
	assert.Equal(t, uint64(2188189693529), spread)
}

func TestElements(t *testing.T) {
	p := parse.Must(polymer.ParsePolymer(sample))
	assert.Equal(t, []polymer.Element{'B', 'C', 'H', 'N'}, p.Elements())
}

func TestParsePolymer_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "\n\n", polymer.ErrTemplate},
		{"lowercase template", "NnCB", polymer.ErrElement},
		{"no arrow", "NNCB\nCH => B", polymer.ErrRule},
		{"long pair", "NNCB\nCHH -> B", polymer.ErrRule},
		{"bad insert", "NNCB\nCH -> 1", polymer.ErrElement},
		{"conflict", "NNCB\nCH -> B\nCH -> N", polymer.ErrConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := polymer.ParsePolymer(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func BenchmarkCounts40(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := parse.Must(polymer.ParsePolymer(sample))
		if _, err := p.Spread(40); err != nil {
			b.Fatal(err)
		}
	}
}
