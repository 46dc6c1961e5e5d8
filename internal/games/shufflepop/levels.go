package shufflepop

import (
	"fmt"

	"github.com/vovakirdan/shufflepop/internal/config"
)

// TitleScreen is the catalog index of the title screen.
const TitleScreen = 0

// Message is one scripted screen: the title or a tutorial level intro.
type Message struct {
	Title    string
	Text     string
	Bag      Bag
	Examples Row // Shown across the top of the intro screen
}

// Catalog holds the title screen followed by the tutorial levels.
type Catalog struct {
	messages []Message
}

// NewCatalog builds a catalog from messages. Index 0 must be the title screen.
func NewCatalog(messages []Message) Catalog {
	if len(messages) < 2 {
		panic("shufflepop: catalog needs a title screen and at least one level")
	}
	return Catalog{messages: append([]Message(nil), messages...)}
}

// CatalogFromConfig converts a level configuration into a catalog.
func CatalogFromConfig(cfg config.ShufflePopConfig) (Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return Catalog{}, err
	}

	messages := make([]Message, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		msg := Message{
			Title: lvl.Title,
			Text:  lvl.Text,
			Bag:   NewBag(lvl.Bag.Suites, lvl.Bag.Stars, lvl.Bag.Movements, lvl.Bag.Speeds, lvl.Bag.Dice),
		}
		for c := range msg.Examples {
			msg.Examples[c] = Empty()
		}
		for c, code := range lvl.Examples {
			t, err := ParseTile(code)
			if err != nil {
				return Catalog{}, fmt.Errorf("level %d example %d: %w", i, c, err)
			}
			msg.Examples[c] = t
		}
		messages[i] = msg
	}
	return NewCatalog(messages), nil
}

// DefaultCatalog returns the built-in title screen and five tutorial levels.
func DefaultCatalog() Catalog {
	c, err := CatalogFromConfig(config.Default())
	if err != nil {
		panic(fmt.Sprintf("shufflepop: default catalog: %v", err))
	}
	return c
}

// Len returns the number of entries including the title screen.
func (c Catalog) Len() int { return len(c.messages) }

// LastLevel returns the index of the final tutorial level.
func (c Catalog) LastLevel() int { return len(c.messages) - 1 }

// Message returns entry i. It panics when i is out of range.
func (c Catalog) Message(i int) Message {
	return c.messages[i]
}

// Messages returns a copy of all entries.
func (c Catalog) Messages() []Message {
	return append([]Message(nil), c.messages...)
}
