// Package rules decides play legality for foundation moves. It is kept
// orthogonal to actor resource state: stamina gating happens in the game
// state layer, not here.
package rules

import (
	"github.com/gardenfall/gardenfall-go/internal/game/card"
)

// EffectType identifies how an active effect alters play legality.
type EffectType string

const (
	// EffectTypeElementMatch allows any card whose element matches the
	// foundation top, regardless of rank adjacency.
	EffectTypeElementMatch EffectType = "element-match"
	// EffectTypeRankFree allows any rank as long as the suit matches.
	EffectTypeRankFree EffectType = "rank-free"
)

// Effect is an active gameplay modifier. Legality evaluation never
// mutates an effect; duration bookkeeping belongs to the state layer.
type Effect struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     EffectType `json:"type"`
	Duration int        `json:"duration"`
}

// CanPlayCard reports whether candidate may be placed on top of
// foundationTop. Baseline legality is rank adjacency (±1); active
// effects may relax it.
func CanPlayCard(candidate, foundationTop card.Card, activeEffects []Effect) bool {
	if candidate.IsWildSentinel() {
		return false
	}

	for _, eff := range activeEffects {
		switch eff.Type {
		case EffectTypeElementMatch:
			if candidate.Element == foundationTop.Element {
				return true
			}
		case EffectTypeRankFree:
			if candidate.Suit == foundationTop.Suit {
				return true
			}
		}
	}

	diff := candidate.Rank - foundationTop.Rank
	return diff == 1 || diff == -1
}

// CanPlayCardWithWild is CanPlayCard, except a wild-sentinel foundation
// top accepts any candidate. Used only in randomly generated biomes.
func CanPlayCardWithWild(candidate, foundationTop card.Card, activeEffects []Effect) bool {
	if foundationTop.IsWildSentinel() {
		return !candidate.IsWildSentinel()
	}
	return CanPlayCard(candidate, foundationTop, activeEffects)
}
