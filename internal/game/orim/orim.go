// Package orim models the ability system: orim definitions (abilities,
// utilities and traits attachable to actors and action-card slots), the
// instances bound into slots, and the condition trees that gate their
// activation.
package orim

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardenfall/gardenfall-go/internal/game/card"
)

// Category classifies what kind of orim a definition is.
type Category string

const (
	CategoryAbility Category = "ability"
	CategoryUtility Category = "utility"
	CategoryTrait   Category = "trait"
)

// Domain says which game layer an orim participates in.
type Domain string

const (
	DomainPuzzle Domain = "puzzle"
	DomainCombat Domain = "combat"
)

// Rarity orders orim power tiers from common to mythic.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// Rarities lists all rarities in ascending order. Forward-fill cost
// normalization walks this order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary, RarityMythic}

// ActivationTiming says when a conditional orim is evaluated.
type ActivationTiming string

const (
	TimingEquip     ActivationTiming = "equip"
	TimingPlay      ActivationTiming = "play"
	TimingTurnStart ActivationTiming = "turn-start"
	TimingTurnEnd   ActivationTiming = "turn-end"
)

// AbilityEffect is a single declarative effect carried by a definition.
type AbilityEffect struct {
	Kind      string `json:"kind"`
	Magnitude int    `json:"magnitude,omitempty"`
	Target    string `json:"target,omitempty"`
}

// Definition is the static template for an orim. All fields beyond ID,
// Name and Category are optional content data.
type Definition struct {
	ID                  string                     `json:"id"`
	Name                string                     `json:"name"`
	Description         string                     `json:"description,omitempty"`
	Category            Category                   `json:"category"`
	Domain              Domain                     `json:"domain,omitempty"`
	Rarity              Rarity                     `json:"rarity,omitempty"`
	PowerCost           int                        `json:"powerCost,omitempty"`
	Damage              int                        `json:"damage,omitempty"`
	Affinity            map[card.Element]int       `json:"affinity,omitempty"`
	Effects             []AbilityEffect            `json:"effects,omitempty"`
	EffectsByRarity     map[Rarity][]AbilityEffect `json:"effectsByRarity,omitempty"`
	Triggers            []*TriggerNode             `json:"triggers,omitempty"`
	ActivationTiming    ActivationTiming           `json:"activationTiming,omitempty"`
	ActivationCondition *TriggerNode               `json:"activationCondition,omitempty"`
	Lifecycle           *Lifecycle                 `json:"lifecycle,omitempty"`
}

// PrimaryElement returns the element with the highest affinity weight.
// Ties break on canonical element order so the result is stable. Returns
// Neutral when no affinity is declared.
func (d *Definition) PrimaryElement() card.Element {
	if len(d.Affinity) == 0 {
		return card.ElementNeutral
	}
	best := card.ElementNeutral
	bestWeight := -1
	for _, el := range card.Elements {
		if w, ok := d.Affinity[el]; ok && w > bestWeight {
			best = el
			bestWeight = w
		}
	}
	return best
}

// EffectsForRarity resolves the effect list for a rarity: the exact
// rarity entry first, then the common entry, then the flat Effects list.
func (d *Definition) EffectsForRarity(r Rarity) []AbilityEffect {
	if d.EffectsByRarity != nil {
		if effs, ok := d.EffectsByRarity[r]; ok {
			return effs
		}
		if effs, ok := d.EffectsByRarity[RarityCommon]; ok {
			return effs
		}
	}
	return d.Effects
}

// Instance is a concrete copy of a definition bound into a slot.
// Multiple instances may reference the same definition.
type Instance struct {
	ID           string `json:"id"`
	DefinitionID string `json:"definitionId"`
}

// NewInstanceID builds a globally unique instance id from the definition
// id, the current time and a random suffix.
func NewInstanceID(definitionID string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%d-%s", definitionID, time.Now().UnixNano(), suffix)
}

// NewInstance mints an Instance for the given definition.
func NewInstance(definitionID string) Instance {
	return Instance{
		ID:           NewInstanceID(definitionID),
		DefinitionID: definitionID,
	}
}
