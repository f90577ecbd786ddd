package game

import (
	"fmt"

	"github.com/gardenfall/gardenfall-go/internal/game/card"
	"github.com/gardenfall/gardenfall-go/internal/game/orim"
)

// Deal shape for standard and random biomes.
const (
	tableauCount = 7
	tableauDepth = 4
)

// StartBiome enters a biome instance: shuffles the full deck (seeded
// when the state carries a seed) and deals it according to the mode.
// Returns nil when the state has no party or is already in a biome.
func StartBiome(s *GameState, biomeID string, mode BiomeMode) *GameState {
	if s == nil || len(s.Party) == 0 || s.Phase == PhaseBiome {
		return nil
	}
	if mode == BiomeNodeEdge {
		return startNodeBiome(s, biomeID)
	}

	out := s.Clone()
	out.Phase = PhaseBiome
	out.CurrentBiome = biomeID
	out.BiomeMode = mode
	out.History = nil
	out.RandomBiomeTurnNumber = 0

	seed := out.Seed
	if seed != "" {
		seed = seed + ":" + biomeID
	}
	deck := card.ShuffleDeck(card.CreateDeck(), seed)

	out.Foundations = make([][]card.Card, len(out.Party))
	switch mode {
	case BiomeRandom:
		// Random biomes seed every foundation with a wild sentinel; the
		// sentinel is synthetic and not part of the conservation set.
		for i := range out.Foundations {
			out.Foundations[i] = []card.Card{card.CreateWildSentinel(i)}
		}
		out.RandomBiomeTurnNumber = 1
	default:
		for i := range out.Foundations {
			out.Foundations[i] = []card.Card{deck[0]}
			deck = deck[1:]
		}
	}

	out.Tableaus = make([][]card.Card, tableauCount)
	for i := range out.Tableaus {
		n := tableauDepth
		if n > len(deck) {
			n = len(deck)
		}
		out.Tableaus[i] = append([]card.Card(nil), deck[:n]...)
		deck = deck[n:]
	}

	out.Stock = append([]card.Card(nil), deck...)
	out.Hand = nil

	out.resetFoundationTracking()
	if mode == BiomeStandard {
		out.Objectives = []Objective{
			{ID: "clear-tableaus", Description: "Play every tableau card"},
			{ID: "empty-stock", Description: "Exhaust the stock"},
		}
	} else {
		out.Objectives = nil
	}

	refreshObjectives(out)
	return out
}

// resetFoundationTracking zeroes token counts, combos and last-element
// tracking, sized to the current foundations.
func (s *GameState) resetFoundationTracking() {
	n := len(s.Foundations)
	s.FoundationTokens = make([]map[card.Element]int, n)
	for i := range s.FoundationTokens {
		s.FoundationTokens[i] = make(map[card.Element]int)
	}
	s.FoundationCombos = make([]int, n)
	s.FoundationLastElements = make([]card.Element, n)
}

// CompleteBiome leaves the current biome and returns to the garden.
// Returns nil when not in a biome. Won state is preserved on the way
// out so the caller can distinguish a cleared run from an abandon.
func CompleteBiome(s *GameState) *GameState {
	if s == nil || (s.Phase != PhaseBiome && s.Phase != PhaseWon) {
		return nil
	}

	out := s.Clone()
	out.Phase = PhaseGarden
	out.CurrentBiome = ""
	out.BiomeMode = ""
	out.Tableaus = nil
	out.Foundations = nil
	out.Stock = nil
	out.Hand = nil
	out.Nodes = nil
	out.Objectives = nil
	out.History = nil
	out.RandomBiomeTurnNumber = 0
	out.resetFoundationTracking()

	// Stamina refreshes back at the garden.
	for _, a := range out.Party {
		a.Stamina = a.StaminaMax
	}
	return out
}

// EndRandomBiomeTurn closes the current turn of a randomly generated
// biome: stamina refreshes, deck-card and rewind cooldowns tick down,
// and expired effects fall off. Returns nil outside random biomes.
func EndRandomBiomeTurn(s *GameState) *GameState {
	if s == nil || s.Phase != PhaseBiome || s.BiomeMode != BiomeRandom {
		return nil
	}

	out := s.Clone()

	// Turn-end traits see the closing turn's state, before the stamina
	// refresh and cooldown ticks.
	fireTriggers(out, orim.TimingTurnEnd)

	out.RandomBiomeTurnNumber++

	for _, a := range out.Party {
		a.Stamina = a.StaminaMax
	}

	for _, ds := range out.ActorDecks {
		for i := range ds.Cards {
			if ds.Cards[i].Cooldown > 0 {
				ds.Cards[i].Cooldown--
			}
		}
	}

	if out.NoRegret.Cooldown > 0 {
		out.NoRegret.Cooldown--
	}

	kept := out.ActiveEffects[:0]
	for _, eff := range out.ActiveEffects {
		eff.Duration--
		if eff.Duration > 0 {
			kept = append(kept, eff)
		}
	}
	out.ActiveEffects = kept

	fireTriggers(out, orim.TimingTurnStart)
	return out
}

// startNodeBiome deals a node-edge biome from its registered pattern.
func startNodeBiome(s *GameState, biomeID string) *GameState {
	pattern := PatternFor(biomeID)
	if pattern == nil {
		return nil
	}

	out := s.Clone()
	out.Phase = PhaseBiome
	out.CurrentBiome = biomeID
	out.BiomeMode = BiomeNodeEdge
	out.History = nil
	out.RandomBiomeTurnNumber = 0
	out.Objectives = nil

	seed := out.Seed
	if seed != "" {
		seed = seed + ":" + biomeID
	}
	deck := card.ShuffleDeck(card.CreateDeck(), seed)

	out.Foundations = make([][]card.Card, len(out.Party))
	for i := range out.Foundations {
		out.Foundations[i] = []card.Card{deck[0]}
		deck = deck[1:]
	}

	out.Nodes = make([]NodeState, len(pattern.Nodes))
	for i, pn := range pattern.Nodes {
		n := pn.CardCount
		if n > len(deck) {
			n = len(deck)
		}
		out.Nodes[i] = NodeState{
			ID:        pn.ID,
			X:         pn.X,
			Y:         pn.Y,
			Z:         pn.Z,
			Cards:     append([]card.Card(nil), deck[:n]...),
			BlockedBy: append([]string(nil), pn.BlockedBy...),
		}
		deck = deck[n:]
	}

	out.Tableaus = nil
	out.Stock = append([]card.Card(nil), deck...)
	out.Hand = nil
	out.resetFoundationTracking()
	return out
}

// NodeUnlocked reports whether every blocker of the node at index has
// been fully cleared.
func NodeUnlocked(s *GameState, index int) bool {
	if index < 0 || index >= len(s.Nodes) {
		return false
	}
	for _, blockerID := range s.Nodes[index].BlockedBy {
		blocker := findNode(s, blockerID)
		if blocker == nil || !blocker.Cleared() {
			return false
		}
	}
	return true
}

func findNode(s *GameState, id string) *NodeState {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}
	return nil
}

// BiomeLabel is a short human-readable description of the current
// biome instance, for logs.
func (s *GameState) BiomeLabel() string {
	if s.CurrentBiome == "" {
		return string(s.Phase)
	}
	return fmt.Sprintf("%s (%s)", s.CurrentBiome, s.BiomeMode)
}
