package sonar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/sonar"
)

const sample = `
199
200
208
210
200
207
240
269
260
263
`

func TestIncreases(t *testing.T) {
	depths, err := sonar.ParseDepths(sample)
	require.NoError(t, err)
	assert.Equal(t, 7, sonar.Increases(depths))
}

func TestWindowIncreases(t *testing.T) {
	depths, err := sonar.ParseDepths(sample)
	require.NoError(t, err)

	n, err := sonar.WindowIncreases(depths, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = sonar.WindowIncreases(depths, 0)
	assert.ErrorIs(t, err, sonar.ErrWindow)
}

func TestWindowIncreases_Short(t *testing.T) {
	cases := []struct {
		name   string
		depths []uint32
		window int
		want   int
	}{
		{"empty", nil, 1, 0},
		{"single", []uint32{5}, 1, 0},
		{"exactly window", []uint32{1, 2, 3}, 3, 0},
		{"one past window", []uint32{1, 2, 3, 4}, 3, 1},
		{"equal is not increase", []uint32{4, 4, 4, 4}, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sonar.WindowIncreases(tc.depths, tc.window)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDepths_Malformed(t *testing.T) {
	_, err := sonar.ParseDepths("1\n2\nthree")
	assert.Error(t, err)
}
