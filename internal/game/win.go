package game

import "github.com/gardenfall/gardenfall-go/internal/game/card"

// refreshObjectives re-derives standard-mode objective completion from
// the current piles. Rewinding recomputes from scratch, so objectives
// can flip back to unmet.
func refreshObjectives(s *GameState) {
	for i := range s.Objectives {
		switch s.Objectives[i].ID {
		case "clear-tableaus":
			s.Objectives[i].Met = pilesEmpty(s.Tableaus)
		case "empty-stock":
			s.Objectives[i].Met = len(s.Stock) == 0
		}
	}
}

func pilesEmpty(piles [][]card.Card) bool {
	for _, pile := range piles {
		if len(pile) > 0 {
			return false
		}
	}
	return true
}

// winPredicate selects the win rule for a biome mode. Product treats
// this as a strategy keyed by biome metadata, not a single rule.
func winPredicate(mode BiomeMode) func(*GameState) bool {
	switch mode {
	case BiomeNodeEdge:
		return func(s *GameState) bool {
			if len(s.Nodes) == 0 {
				return false
			}
			for i := range s.Nodes {
				if !s.Nodes[i].Cleared() {
					return false
				}
			}
			return true
		}
	case BiomeRandom:
		return func(s *GameState) bool {
			return pilesEmpty(s.Tableaus) && len(s.Stock) == 0 && len(s.Hand) == 0
		}
	default:
		return func(s *GameState) bool {
			if len(s.Objectives) == 0 {
				return false
			}
			for _, obj := range s.Objectives {
				if !obj.Met {
					return false
				}
			}
			return true
		}
	}
}

// CheckWin reports whether the current biome instance is won.
func CheckWin(s *GameState) bool {
	if s == nil || (s.Phase != PhaseBiome && s.Phase != PhaseWon) {
		return false
	}
	return winPredicate(s.BiomeMode)(s)
}

// CheckNoValidMoves reports whether no tableau-top, unlocked node-top,
// hand, or stock-top card can be played to any foundation under the
// current effects and stamina. Stuck is not terminal: the player may
// still rewind or abandon. Must be recomputed on every snapshot, since
// effects and stamina change legality.
func CheckNoValidMoves(s *GameState) bool {
	if s == nil || s.Phase != PhaseBiome {
		return false
	}

	try := func(c card.Card) bool {
		for fi := range s.Foundations {
			if canPlayOnFoundation(s, c, fi) {
				return true
			}
		}
		return false
	}

	for _, pile := range s.Tableaus {
		if len(pile) > 0 && try(pile[len(pile)-1]) {
			return false
		}
	}
	for ni := range s.Nodes {
		pile := s.Nodes[ni].Cards
		if len(pile) > 0 && NodeUnlocked(s, ni) && try(pile[len(pile)-1]) {
			return false
		}
	}
	for _, c := range s.Hand {
		if try(c) {
			return false
		}
	}
	if len(s.Stock) > 0 && try(s.Stock[len(s.Stock)-1]) {
		return false
	}
	return true
}
