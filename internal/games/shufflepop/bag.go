package shufflepop

import "fmt"

// Source is the randomness a Bag draws from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Bag is an inexhaustible weighted tile generator. Weights are stored as
// cumulative thresholds: a draw picks a uniform index in [1, total] and takes
// the first kind whose threshold it does not exceed.
type Bag struct {
	suites    int
	stars     int
	movements int
	speeds    int
	dice      int
}

// Weights are the relative proportions a Bag is built from.
type Weights struct {
	Suites    int
	Stars     int
	Movements int
	Speeds    int
	Dice      int
}

// NewBag builds a bag from five non-negative weights. A zero weight means the
// kind is never generated. It panics if any weight is negative or all are zero.
func NewBag(suites, stars, movements, speeds, dice int) Bag {
	if suites < 0 || stars < 0 || movements < 0 || speeds < 0 || dice < 0 {
		panic(fmt.Sprintf("shufflepop: negative bag weight (%d, %d, %d, %d, %d)", suites, stars, movements, speeds, dice))
	}
	b := Bag{suites: suites}
	b.stars = b.suites + stars
	b.movements = b.stars + movements
	b.speeds = b.movements + speeds
	b.dice = b.speeds + dice
	if b.dice == 0 {
		panic("shufflepop: bag has no weight")
	}
	return b
}

// NewBagFromWeights is NewBag taking a Weights value.
func NewBagFromWeights(w Weights) Bag {
	return NewBag(w.Suites, w.Stars, w.Movements, w.Speeds, w.Dice)
}

// Total returns the sum of all weights.
func (b Bag) Total() int { return b.dice }

// Weights returns the per-kind weights the bag was built from.
func (b Bag) Weights() Weights {
	return Weights{
		Suites:    b.suites,
		Stars:     b.stars - b.suites,
		Movements: b.movements - b.stars,
		Speeds:    b.speeds - b.movements,
		Dice:      b.dice - b.speeds,
	}
}

// Weight returns the proportion of the given kind. Kinds the bag never
// produces have weight zero.
func (b Bag) Weight(k Kind) int {
	w := b.Weights()
	switch k {
	case KindSuite:
		return w.Suites
	case KindStar:
		return w.Stars
	case KindMovement:
		return w.Movements
	case KindSpeed:
		return w.Speeds
	case KindDie:
		return w.Dice
	default:
		return 0
	}
}

// Supports reports whether the bag can produce tiles of kind k.
func (b Bag) Supports(k Kind) bool { return b.Weight(k) > 0 }

// Grab draws one tile.
func (b Bag) Grab(rng Source) Tile {
	return b.TileAt(rng.Intn(b.Total())+1, rng)
}

// TileAt maps a draw index in [1, Total()] to a tile, using rng for the
// variant details (suit and color, direction, pips). Indexes outside the
// range yield an invalid tile.
func (b Bag) TileAt(choice int, rng Source) Tile {
	switch {
	case choice < 1:
		return Tile{}
	case choice <= b.suites:
		suit := rng.Intn(NumSuits) + 1
		color := rng.Intn(NumColors) + 1
		return Suite(suit, color)
	case choice <= b.stars:
		return Star()
	case choice <= b.movements:
		if rng.Intn(2) == 0 {
			return Move(Left)
		}
		return Move(Right)
	case choice <= b.speeds:
		return Speed()
	case choice <= b.dice:
		return Die(rng.Intn(NumPips))
	}
	return Tile{}
}
