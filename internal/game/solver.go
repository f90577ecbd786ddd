package game

import (
	"github.com/gardenfall/gardenfall-go/internal/game/card"
	"github.com/gardenfall/gardenfall-go/internal/game/rules"
)

// Move is one step of a solved sequence: play the top of tableau
// TableauIndex onto foundation FoundationIndex.
type Move struct {
	TableauIndex    int `json:"tableauIndex"`
	FoundationIndex int `json:"foundationIndex"`
}

// FindBestMoveSequence runs a bounded depth-first search over the move
// space and returns the longest sequence found, first-found winning
// ties. Inputs are treated as immutable: the search simulates on
// structural copies and never mutates caller-owned arrays.
func FindBestMoveSequence(tableaus, foundations [][]card.Card, activeEffects []rules.Effect, maxDepth int) []Move {
	if maxDepth <= 0 {
		return nil
	}
	t := clonePiles(tableaus)
	f := clonePiles(foundations)
	return searchMoves(t, f, activeEffects, maxDepth)
}

// SolveOptimally searches the entire reachable space with no depth cap
// and returns the single longest sequence. Complexity is combinatorial
// in the branching factor; callers bound instance sizes or budget the
// call themselves (there is no internal timeout).
func SolveOptimally(tableaus, foundations [][]card.Card, activeEffects []rules.Effect) []Move {
	t := clonePiles(tableaus)
	f := clonePiles(foundations)
	return searchMoves(t, f, activeEffects, -1)
}

// searchMoves owns its pile copies and backtracks in place. depth < 0
// means unbounded.
func searchMoves(tableaus, foundations [][]card.Card, effects []rules.Effect, depth int) []Move {
	if depth == 0 {
		return nil
	}

	var best []Move
	for ti := range tableaus {
		if len(tableaus[ti]) == 0 {
			continue
		}
		candidate := tableaus[ti][len(tableaus[ti])-1]

		for fi := range foundations {
			if len(foundations[fi]) == 0 {
				continue
			}
			top := foundations[fi][len(foundations[fi])-1]
			if !rules.CanPlayCard(candidate, top, effects) {
				continue
			}

			tableaus[ti] = tableaus[ti][:len(tableaus[ti])-1]
			foundations[fi] = append(foundations[fi], candidate)

			rest := searchMoves(tableaus, foundations, effects, depth-1)

			foundations[fi] = foundations[fi][:len(foundations[fi])-1]
			tableaus[ti] = append(tableaus[ti], candidate)

			if len(rest)+1 > len(best) {
				best = append([]Move{{TableauIndex: ti, FoundationIndex: fi}}, rest...)
			}
		}
	}
	return best
}

// AutoSolveBiome computes the optimal sequence for the current biome
// snapshot and applies it through the normal transitions, so stamina
// gating and bookkeeping still hold. Returns the furthest state
// reached; nil when the state is not in a standard or random biome.
func AutoSolveBiome(s *GameState) *GameState {
	if s == nil || s.Phase != PhaseBiome || s.BiomeMode == BiomeNodeEdge {
		return nil
	}

	moves := SolveOptimally(s.Tableaus, s.Foundations, s.ActiveEffects)
	out := s
	for _, m := range moves {
		next := PlayCard(out, m.TableauIndex, m.FoundationIndex)
		if next == nil {
			// The pure search ignores stamina; stop at the first play
			// the full rules reject.
			break
		}
		out = next
	}
	return out
}
