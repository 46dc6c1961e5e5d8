package shufflepop

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always returns the same value, reduced into range.
type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }

// scriptedSource replays values in order, then repeats the last one.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[len(s.values)-1]
	if s.calls < len(s.values) {
		v = s.values[s.calls]
	}
	s.calls++
	return v % n
}

func TestTileAtThresholds(t *testing.T) {
	bag := NewBag(32, 3, 12, 1, 4)
	require.Equal(t, 52, bag.Total())

	tests := []struct {
		choice int
		want   Kind
	}{
		{0, KindInvalid},
		{1, KindSuite},
		{32, KindSuite},
		{33, KindStar},
		{35, KindStar},
		{36, KindMovement},
		{47, KindMovement},
		{48, KindSpeed},
		{49, KindDie},
		{52, KindDie},
		{53, KindInvalid},
	}
	for _, tt := range tests {
		got := bag.TileAt(tt.choice, constSource(0))
		assert.Equal(t, tt.want, got.Kind, "choice %d", tt.choice)
	}
}

func TestTileAtVariants(t *testing.T) {
	bag := NewBag(32, 3, 12, 1, 4)

	src := &scriptedSource{values: []int{2, 3}}
	assert.Equal(t, Suite(3, 4), bag.TileAt(1, src))

	assert.Equal(t, Move(Left), bag.TileAt(40, constSource(0)))
	assert.Equal(t, Move(Right), bag.TileAt(40, constSource(1)))

	for p := 0; p < NumPips; p++ {
		assert.Equal(t, Die(p), bag.TileAt(52, constSource(p)))
	}
}

func TestGrabUsesOneBasedIndex(t *testing.T) {
	// Intn(total) == 0 must land on the first kind, never the invalid tile.
	bag := NewBag(0, 1, 0, 0, 0)
	assert.Equal(t, Star(), bag.Grab(constSource(0)))

	bag = NewBag(0, 0, 0, 0, 1)
	for i := 0; i < 10; i++ {
		assert.True(t, bag.Grab(constSource(i)).IsDie())
	}
}

func TestGrabFrequencies(t *testing.T) {
	bag := NewBag(32, 3, 12, 1, 4)
	rng := rand.New(rand.NewSource(42))

	const draws = 200000
	counts := make(map[Kind]int)
	for i := 0; i < draws; i++ {
		counts[bag.Grab(rng).Kind]++
	}

	total := float64(bag.Total())
	for _, k := range []Kind{KindSuite, KindStar, KindMovement, KindSpeed, KindDie} {
		want := float64(bag.Weight(k)) / total
		got := float64(counts[k]) / draws
		assert.InDelta(t, want, got, 0.01, "kind %s", k)
	}
	assert.Zero(t, counts[KindInvalid])
	assert.Zero(t, counts[KindEmpty])
}

func TestGrabSkipsZeroWeightKinds(t *testing.T) {
	bag := NewBag(6, 1, 0, 0, 0)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		tile := bag.Grab(rng)
		assert.True(t, bag.Supports(tile.Kind), "unexpected %s", tile)
	}
}

func TestSuitesAreUniform(t *testing.T) {
	bag := NewBag(1, 0, 0, 0, 0)
	rng := rand.New(rand.NewSource(3))

	const draws = 64000
	var grid [NumSuits][NumColors]int
	for i := 0; i < draws; i++ {
		tile := bag.Grab(rng)
		grid[tile.Suit-1][tile.Color-1]++
	}
	want := float64(draws) / (NumSuits * NumColors)
	for s := range grid {
		for c := range grid[s] {
			assert.Less(t, math.Abs(float64(grid[s][c])-want), want*0.1, "suit %d color %d", s+1, c+1)
		}
	}
}

func TestNewBag(t *testing.T) {
	w := Weights{Suites: 10, Stars: 1, Movements: 3}
	bag := NewBagFromWeights(w)
	assert.Equal(t, w, bag.Weights())
	assert.Equal(t, 14, bag.Total())
	assert.True(t, bag.Supports(KindMovement))
	assert.False(t, bag.Supports(KindSpeed))
	assert.False(t, bag.Supports(KindEmpty))

	assert.Panics(t, func() { NewBag(0, 0, 0, 0, 0) })
	assert.Panics(t, func() { NewBag(1, -1, 0, 0, 0) })
}
