package shufflepop

import "github.com/vovakirdan/shufflepop/internal/core"

// Board dimensions.
const (
	Rows = 9
	Cols = 5
)

// SelectRow is the visible row, counted from the top, holding the selection point.
const SelectRow = Rows - 2

// Row is one board row. Column indexes wrap modulo Cols.
type Row [Cols]Tile

// At returns the cell at col mod Cols.
func (r *Row) At(col int) *Tile {
	return &r[core.Mod(col, Cols)]
}

// Board is a ring-indexed grid: logical rows are unbounded integers that map
// onto Rows physical slots by modulo, so the board can scroll forever in
// constant storage. A slot must be refilled before its logical row is reused.
type Board struct {
	rows [Rows]Row
}

// Row returns the physical row holding logical row r.
func (b *Board) Row(r int) *Row {
	return &b.rows[core.Mod(r, Rows)]
}

// At returns the cell at logical row r, column c. Every integer pair is a
// valid address.
func (b *Board) At(r, c int) *Tile {
	return b.Row(r).At(c)
}

// Get returns a copy of the tile at (r, c).
func (b *Board) Get(r, c int) Tile { return *b.At(r, c) }

// Set stores t at (r, c).
func (b *Board) Set(r, c int, t Tile) { *b.At(r, c) = t }

// FillRow overwrites every cell of logical row r with fresh draws.
func (b *Board) FillRow(bag Bag, rng Source, r int) {
	row := b.Row(r)
	for c := 0; c < Cols; c++ {
		row[c] = bag.Grab(rng)
	}
}

// FillBoard refills all physical rows.
func (b *Board) FillBoard(bag Bag, rng Source) {
	for r := 0; r < Rows; r++ {
		b.FillRow(bag, rng, r)
	}
}

// Cells returns a copy of the physical storage, slot order.
func (b *Board) Cells() [Rows]Row {
	return b.rows
}
