package shufflepop

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain sizes.
const (
	NumSuits  = 4
	NumColors = 4
	NumPips   = 6 // Die faces show 0..5 extra pips
)

// Kind identifies the variant a Tile holds.
type Kind uint8

// The zero Kind is KindInvalid, so a zero Tile is the sentinel tile.
const (
	KindInvalid Kind = iota
	KindSuite
	KindStar
	KindMovement
	KindSpeed
	KindDie
	KindEmpty
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSuite:
		return "suite"
	case KindStar:
		return "star"
	case KindMovement:
		return "movement"
	case KindSpeed:
		return "speed"
	case KindDie:
		return "die"
	case KindEmpty:
		return "empty"
	default:
		return "invalid"
	}
}

// Direction is the way a movement tile shifts the cursor.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

// Tile is an immutable value. Only the fields relevant to Kind are set:
// Suit and Color for suites, Dir for movements, Pips for dice.
type Tile struct {
	Kind  Kind
	Suit  uint8 // 1..NumSuits
	Color uint8 // 1..NumColors
	Dir   Direction
	Pips  uint8 // 0..NumPips-1
}

// Suite returns a suite tile. It panics on an out-of-range suit or color.
func Suite(suit, color int) Tile {
	if suit < 1 || suit > NumSuits || color < 1 || color > NumColors {
		panic(fmt.Sprintf("shufflepop: suite tile out of range: suit=%d color=%d", suit, color))
	}
	return Tile{Kind: KindSuite, Suit: uint8(suit), Color: uint8(color)}
}

// Star returns the wildcard tile.
func Star() Tile { return Tile{Kind: KindStar} }

// Move returns a movement tile.
func Move(dir Direction) Tile {
	if dir != Left && dir != Right {
		panic(fmt.Sprintf("shufflepop: invalid movement direction %d", dir))
	}
	return Tile{Kind: KindMovement, Dir: dir}
}

// Speed returns a speed tile.
func Speed() Tile { return Tile{Kind: KindSpeed} }

// Die returns a die tile. It panics when pips is outside 0..NumPips-1.
func Die(pips int) Tile {
	if pips < 0 || pips >= NumPips {
		panic(fmt.Sprintf("shufflepop: die pips out of range: %d", pips))
	}
	return Tile{Kind: KindDie, Pips: uint8(pips)}
}

// Empty returns a cleared slot.
func Empty() Tile { return Tile{Kind: KindEmpty} }

// IsStar reports whether t is the wildcard.
func (t Tile) IsStar() bool { return t.Kind == KindStar }

// IsSuite reports whether t takes part in matching. Stars count as suites.
func (t Tile) IsSuite() bool { return t.Kind == KindSuite || t.Kind == KindStar }

// IsMovement reports whether t is a movement tile.
func (t Tile) IsMovement() bool { return t.Kind == KindMovement }

// IsSpeed reports whether t is a speed tile.
func (t Tile) IsSpeed() bool { return t.Kind == KindSpeed }

// IsDie reports whether t is a die tile.
func (t Tile) IsDie() bool { return t.Kind == KindDie }

// IsGone reports whether t is an empty slot: not drawn, not interactable.
func (t Tile) IsGone() bool { return t.Kind == KindEmpty }

// InvalidComparisonError is the panic value of Match on non-suite tiles.
type InvalidComparisonError struct {
	A, B Tile
}

func (e *InvalidComparisonError) Error() string {
	return fmt.Sprintf("shufflepop: invalid comparison between %s and %s", e.A.Kind, e.B.Kind)
}

// Match reports whether two suite tiles share a suit or a color, or either is
// a star. It is symmetric. Calling it with a tile that is not IsSuite is a
// programming error and panics with *InvalidComparisonError.
func (t Tile) Match(other Tile) bool {
	if !t.IsSuite() || !other.IsSuite() {
		panic(&InvalidComparisonError{A: t, B: other})
	}
	if t.IsStar() || other.IsStar() {
		return true
	}
	return t.Suit == other.Suit || t.Color == other.Color
}

// Code returns the compact text form of the tile used in level files.
func (t Tile) Code() string {
	switch t.Kind {
	case KindSuite:
		return "S" + strconv.Itoa(int(t.Suit)) + strconv.Itoa(int(t.Color))
	case KindStar:
		return "*"
	case KindMovement:
		if t.Dir == Left {
			return "<"
		}
		return ">"
	case KindSpeed:
		return "+"
	case KindDie:
		return "D" + strconv.Itoa(int(t.Pips))
	case KindEmpty:
		return "_"
	default:
		return "E"
	}
}

// String implements fmt.Stringer.
func (t Tile) String() string { return t.Code() }

// ErrUnknownTileCode is returned by ParseTile for unrecognized codes.
var ErrUnknownTileCode = errors.New("shufflepop: unknown tile code")

// ParseTile decodes a tile code: S<suit><color>, "*", "<", ">", "+",
// D<pips>, and "_" or "" for an empty slot.
func ParseTile(code string) (Tile, error) {
	switch code {
	case "", "_":
		return Empty(), nil
	case "*":
		return Star(), nil
	case "<":
		return Move(Left), nil
	case ">":
		return Move(Right), nil
	case "+":
		return Speed(), nil
	}

	switch {
	case len(code) == 3 && code[0] == 'S':
		suit, color := int(code[1]-'0'), int(code[2]-'0')
		if suit >= 1 && suit <= NumSuits && color >= 1 && color <= NumColors {
			return Suite(suit, color), nil
		}
	case len(code) == 2 && code[0] == 'D':
		pips := int(code[1] - '0')
		if pips >= 0 && pips < NumPips {
			return Die(pips), nil
		}
	}
	return Tile{}, fmt.Errorf("%w: %q", ErrUnknownTileCode, code)
}

// MustParseTile is like ParseTile but panics on an unknown code.
func MustParseTile(code string) Tile {
	t, err := ParseTile(code)
	if err != nil {
		panic(err)
	}
	return t
}
