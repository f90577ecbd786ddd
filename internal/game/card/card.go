// Package card defines the playing cards and deck construction for the
// tableau game: 7 elemental suits of 13 ranks each, plus the synthetic
// wild sentinel used to seed foundations in randomly generated biomes.
package card

import (
	"fmt"

	"github.com/gardenfall/gardenfall-go/internal/game/rng"
)

// Element is one of the seven elements a suit maps to.
type Element string

const (
	ElementWater   Element = "W"
	ElementEarth   Element = "E"
	ElementAir     Element = "A"
	ElementFire    Element = "F"
	ElementLight   Element = "L"
	ElementDark    Element = "D"
	ElementNeutral Element = "N"
)

// Suit is the solitaire-facing name of an element.
type Suit string

const (
	SuitTides    Suit = "tides"
	SuitStones   Suit = "stones"
	SuitGales    Suit = "gales"
	SuitEmbers   Suit = "embers"
	SuitBeacons  Suit = "beacons"
	SuitShadows  Suit = "shadows"
	SuitWanderer Suit = "wanderer"
)

// Suits lists all suits in canonical deck order.
var Suits = []Suit{
	SuitTides,
	SuitStones,
	SuitGales,
	SuitEmbers,
	SuitBeacons,
	SuitShadows,
	SuitWanderer,
}

// Elements lists all elements in the order matching Suits.
var Elements = []Element{
	ElementWater,
	ElementEarth,
	ElementAir,
	ElementFire,
	ElementLight,
	ElementDark,
	ElementNeutral,
}

// SuitToElement and ElementToSuit form the fixed bijection between the
// two namings.
var (
	SuitToElement = map[Suit]Element{
		SuitTides:    ElementWater,
		SuitStones:   ElementEarth,
		SuitGales:    ElementAir,
		SuitEmbers:   ElementFire,
		SuitBeacons:  ElementLight,
		SuitShadows:  ElementDark,
		SuitWanderer: ElementNeutral,
	}
	ElementToSuit = map[Element]Suit{
		ElementWater:   SuitTides,
		ElementEarth:   SuitStones,
		ElementAir:     SuitGales,
		ElementFire:    SuitEmbers,
		ElementLight:   SuitBeacons,
		ElementDark:    SuitShadows,
		ElementNeutral: SuitWanderer,
	}
)

const (
	// RanksPerSuit is the number of ranks in each suit.
	RanksPerSuit = 13
	// FullDeckSize is 7 suits x 13 ranks.
	FullDeckSize = 91
	// WildSentinelRank marks the synthetic wild card.
	WildSentinelRank = 0
)

// RPGKind distinguishes deck cards that came from the RPG layer rather
// than the base deal.
type RPGKind string

const (
	RPGKindNone   RPGKind = ""
	RPGKindAction RPGKind = "action"
	RPGKindTrait  RPGKind = "trait"
)

// Card is immutable once dealt. Identity is ID; gameplay equality is by
// rank, suit and element (see Matches).
type Card struct {
	ID            string  `json:"id"`
	Rank          int     `json:"rank"` // 1..13, or 0 for the wild sentinel
	Suit          Suit    `json:"suit"`
	Element       Element `json:"element"`
	Cooldown      int     `json:"cooldown,omitempty"`
	RPGKind       RPGKind `json:"rpgCardKind,omitempty"`
	SourceActorID string  `json:"sourceActorId,omitempty"`
}

// Matches reports gameplay equality: same rank, suit and element.
func (c Card) Matches(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit && c.Element == other.Element
}

// IsWildSentinel reports whether this is the synthetic wild card.
func (c Card) IsWildSentinel() bool {
	return c.Rank == WildSentinelRank
}

// CreateDeck produces the canonical 91-card deck, suit-major rank-minor,
// with stable unique ids.
func CreateDeck() []Card {
	deck := make([]Card, 0, FullDeckSize)
	for _, suit := range Suits {
		for rank := 1; rank <= RanksPerSuit; rank++ {
			deck = append(deck, Card{
				ID:      fmt.Sprintf("card-%s-%d", suit, rank),
				Rank:    rank,
				Suit:    suit,
				Element: SuitToElement[suit],
			})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of deck. A non-empty seed makes the
// permutation a pure function of the seed; an empty seed shuffles
// non-deterministically. The input is never mutated.
func ShuffleDeck(deck []Card, seed string) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)

	var r *rng.SeededRandom
	if seed != "" {
		r = rng.NewSeededRandom(seed)
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] }, r)
	return out
}

// CreateWildSentinel synthesizes a wild card for random-biome foundation
// seeding. Its id namespace never collides with deck card ids.
func CreateWildSentinel(index int) Card {
	return Card{
		ID:      fmt.Sprintf("wild-%d", index),
		Rank:    WildSentinelRank,
		Suit:    SuitWanderer,
		Element: ElementNeutral,
	}
}
