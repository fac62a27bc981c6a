package seq_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-iter-utils/rng"
	"github.com/hasbyte1/go-iter-utils/seq"
)

func equalWeights(n int) ([]int, []float64) {
	items := make([]int, n)
	weights := make([]float64, n)
	for i := range items {
		items[i] = i
		weights[i] = 1
	}
	return items, weights
}

// scriptedSource replays fixed uniform draws.
type scriptedSource struct {
	floats []float64
}

func (s *scriptedSource) IntN(int) int { return 0 }

func (s *scriptedSource) Float64() float64 {
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func TestWeightedSampleOrderedByPriority(t *testing.T) {
	items := []string{"low", "high", "mid"}
	weights := []float64{1, 1, 1}

	// priority is ln(1-U)/w: U=0.1 ranks highest, U=0.9 lowest
	got, err := seq.WeightedSample(seq.Pairs(items, weights), len(items),
		&scriptedSource{floats: []float64{0.9, 0.1, 0.5}})
	require.NoError(t, err)
	require.Equal(t, []string{"high", "mid", "low"}, got)

	got, err = seq.WeightedSample(seq.Pairs(items, weights), 10,
		&scriptedSource{floats: []float64{0.9, 0.1, 0.5}})
	require.NoError(t, err)
	require.Equal(t, []string{"high", "mid", "low"}, got)

	got, err = seq.WeightedSample(seq.Pairs(items, weights), 2,
		&scriptedSource{floats: []float64{0.9, 0.1, 0.5}})
	require.NoError(t, err)
	require.Equal(t, []string{"high", "mid"}, got)
}

func TestWeightedSampleWeightScalesPriority(t *testing.T) {
	// same draw for both; the heavier weight shrinks |ln(1-U)|/w
	got, err := seq.WeightedSample(seq.Pairs([]string{"light", "heavy"}, []float64{1, 4}), 2,
		&scriptedSource{floats: []float64{0.5, 0.5}})
	require.NoError(t, err)
	require.Equal(t, []string{"heavy", "light"}, got)
}

func TestWeightedSampleFullIsPermutation(t *testing.T) {
	items, weights := equalWeights(50)
	got, err := seq.WeightedSample(seq.Pairs(items, weights), len(items), rng.New(1))
	require.NoError(t, err)
	require.ElementsMatch(t, items, got)
}

func TestWeightedSampleOversizedReturnsAll(t *testing.T) {
	items, weights := equalWeights(5)
	got, err := seq.WeightedSample(seq.Pairs(items, weights), 100, rng.New(2))
	require.NoError(t, err)
	require.ElementsMatch(t, items, got)
}

func TestWeightedSampleDistinctSubset(t *testing.T) {
	items, weights := equalWeights(30)
	for seed := int64(0); seed < 20; seed++ {
		got, err := seq.WeightedSample(seq.Pairs(items, weights), 7, rng.New(seed))
		require.NoError(t, err)
		require.Len(t, got, 7)

		seen := make(map[int]struct{}, len(got))
		for _, v := range got {
			require.Contains(t, items, v)
			_, dup := seen[v]
			require.False(t, dup, "item %d drawn twice", v)
			seen[v] = struct{}{}
		}
	}
}

func TestWeightedSampleZeroSize(t *testing.T) {
	items, weights := equalWeights(4)
	got, err := seq.WeightedSample(seq.Pairs(items, weights), 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWeightedSampleEmptyInput(t *testing.T) {
	got, err := seq.WeightedSample(seq.Pairs([]string{}, nil), 3)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWeightedSampleDeterministicWithSeed(t *testing.T) {
	weights := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}
	keys := slices.Sorted(maps.Keys(weights))
	pairs := func(yield func(string, float64) bool) {
		for _, k := range keys {
			if !yield(k, weights[k]) {
				return
			}
		}
	}

	first, err := seq.WeightedSample(pairs, 3, rng.New(99))
	require.NoError(t, err)
	second, err := seq.WeightedSample(pairs, 3, rng.New(99))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWeightedSampleFavoursHeavyItems(t *testing.T) {
	items := []string{"light", "heavy"}
	weights := []float64{1, 9}
	src := rng.New(5)

	heavy := 0
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		got, err := seq.WeightedSample(seq.Pairs(items, weights), 1, src)
		require.NoError(t, err)
		if got[0] == "heavy" {
			heavy++
		}
	}
	// expected share is 0.9
	share := float64(heavy) / rounds
	require.InDelta(t, 0.9, share, 0.03)
}

func TestWeightedSampleRejectsBadWeights(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN()} {
		got, err := seq.WeightedSample(seq.Pairs([]int{1, 2, 3}, []float64{1, w, 1}), 2)
		require.Nil(t, got)
		require.True(t, errors.Is(err, seq.ErrNonPositiveWeight), "weight %v", w)
		require.Contains(t, err.Error(), "item 1")
	}
}

func TestWeightedSampleRejectsNegativeSize(t *testing.T) {
	_, err := seq.WeightedSample(seq.Pairs([]int{1}, []float64{1}), -1)
	require.True(t, errors.Is(err, seq.ErrInvalidSize))
}

func TestPairsStopsAtShorter(t *testing.T) {
	require.Equal(t, 2, seq.Count2(seq.Pairs([]int{1, 2, 3}, []float64{1, 1})))
}
