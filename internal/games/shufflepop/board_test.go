package shufflepop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardRingAddressing(t *testing.T) {
	var b Board

	b.Set(-1, -1, Star())
	assert.Equal(t, Star(), b.Get(Rows-1, Cols-1))
	assert.Equal(t, Star(), b.Get(3*Rows-1, 7*Cols-1))
	assert.Equal(t, Star(), b.Get(-Rows-1, -Cols-1))

	b.Set(Rows, Cols, Speed())
	assert.Equal(t, Speed(), b.Get(0, 0))

	b.Row(-2).At(Cols + 2).Kind = KindEmpty
	assert.True(t, b.Get(Rows-2, 2).IsGone())
}

func TestFillRowOnlyTouchesThatRow(t *testing.T) {
	var b Board
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.Set(r, c, Speed())
		}
	}

	b.FillRow(NewBag(0, 1, 0, 0, 0), constSource(0), -1)

	cells := b.Cells()
	for r := range cells {
		for c, tile := range cells[r] {
			if r == Rows-1 {
				assert.Equal(t, Star(), tile, "row %d col %d", r, c)
			} else {
				assert.Equal(t, Speed(), tile, "row %d col %d", r, c)
			}
		}
	}
}

func TestFillBoardUsesBagKinds(t *testing.T) {
	bag := NewBag(10, 1, 3, 0, 0)
	rng := rand.New(rand.NewSource(99))

	var b Board
	b.FillBoard(bag, rng)

	for r, row := range b.Cells() {
		for c, tile := range row {
			assert.NotEqual(t, KindInvalid, tile.Kind, "row %d col %d", r, c)
			assert.True(t, bag.Supports(tile.Kind), "row %d col %d: %s", r, c, tile)
		}
	}
}
