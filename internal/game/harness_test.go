package game

import (
	"github.com/gardenfall/gardenfall-go/internal/game/actor"
	"github.com/gardenfall/gardenfall-go/internal/game/card"
	"github.com/gardenfall/gardenfall-go/internal/game/deck"
	"github.com/gardenfall/gardenfall-go/internal/game/orim"
)

// c builds a test card; the id encodes rank and suit so identities stay
// unique across piles.
func c(rank int, suit card.Suit) card.Card {
	return card.Card{
		ID:      "t-" + string(suit) + "-" + string(rune('a'+rank)),
		Rank:    rank,
		Suit:    suit,
		Element: card.SuitToElement[suit],
	}
}

// newBiomeState hand-builds a standard-mode biome snapshot with one
// party actor per foundation, each with the given stamina.
func newBiomeState(tableaus, foundations [][]card.Card, stamina int) *GameState {
	s := &GameState{
		Phase:           PhaseBiome,
		InteractionMode: InteractionClick,
		CurrentBiome:    "test",
		BiomeMode:       BiomeStandard,
		Tableaus:        tableaus,
		Foundations:     foundations,
		OrimDefinitions: map[string]*orim.Definition{},
		OrimInstances:   map[string]orim.Instance{},
		ActorDecks:      map[string]*deck.State{},
		NoRegret:        NoRegretStatus{Cooldown: 0, MaxCooldown: 3},
	}

	for range foundations {
		a := actor.New("rowan")
		a.Stamina = stamina
		a.StaminaMax = stamina
		s.Party = append(s.Party, a)
	}
	s.resetFoundationTracking()
	return s
}

// collectIDs gathers every deck-card id in the state, skipping wild
// sentinels, for conservation checks.
func collectIDs(s *GameState) map[string]int {
	ids := make(map[string]int)
	add := func(cs []card.Card) {
		for _, cc := range cs {
			if cc.IsWildSentinel() {
				continue
			}
			ids[cc.ID]++
		}
	}
	for _, pile := range s.Tableaus {
		add(pile)
	}
	for _, pile := range s.Foundations {
		add(pile)
	}
	add(s.Stock)
	add(s.Hand)
	for _, n := range s.Nodes {
		add(n.Cards)
	}
	return ids
}
