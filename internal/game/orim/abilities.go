package orim

import "github.com/gardenfall/gardenfall-go/internal/game/card"

// AbilityRecord is a row of the static abilities content table. Records
// are authored data and are converted into Definitions on demand via
// rarity-gated effect selection.
type AbilityRecord struct {
	ID                  string
	Name                string
	Description         string
	Category            Category
	Domain              Domain
	PowerCost           int
	Damage              int
	Affinity            map[card.Element]int
	Effects             []AbilityEffect
	EffectsByRarity     map[Rarity][]AbilityEffect
	ActivationTiming    ActivationTiming
	ActivationCondition *TriggerNode
	Lifecycle           *Lifecycle
}

// ToDefinition converts the record into a Definition at the given
// rarity, selecting effects rarity-first, then common, then flat.
func (r *AbilityRecord) ToDefinition(rarity Rarity) *Definition {
	def := &Definition{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		Category:            r.Category,
		Domain:              r.Domain,
		Rarity:              rarity,
		PowerCost:           r.PowerCost,
		Damage:              r.Damage,
		Affinity:            r.Affinity,
		ActivationTiming:    r.ActivationTiming,
		ActivationCondition: r.ActivationCondition,
		Lifecycle:           r.Lifecycle,
	}

	if r.EffectsByRarity != nil {
		if effs, ok := r.EffectsByRarity[rarity]; ok {
			def.Effects = effs
			return def
		}
		if effs, ok := r.EffectsByRarity[RarityCommon]; ok {
			def.Effects = effs
			return def
		}
	}
	def.Effects = r.Effects
	return def
}

// abilities is the shipped ability content table. It is loaded once into
// an index; nothing mutates it at runtime.
var abilities = []AbilityRecord{
	{
		ID:          "ember-lash",
		Name:        "Ember Lash",
		Description: "A whip of sparks that scorches a single foe.",
		Category:    CategoryAbility,
		Domain:      DomainCombat,
		PowerCost:   2,
		Damage:      3,
		Affinity:    map[card.Element]int{card.ElementFire: 3, card.ElementAir: 1},
		EffectsByRarity: map[Rarity][]AbilityEffect{
			RarityCommon:    {{Kind: "damage", Magnitude: 3, Target: "enemy"}},
			RarityRare:      {{Kind: "damage", Magnitude: 5, Target: "enemy"}},
			RarityLegendary: {{Kind: "damage", Magnitude: 5, Target: "enemy"}, {Kind: "burn", Magnitude: 1, Target: "enemy"}},
		},
		Lifecycle: &Lifecycle{Discard: DiscardDiscard, CooldownMode: CooldownSeconds, CooldownValue: 4},
	},
	{
		ID:          "tide-ward",
		Name:        "Tide Ward",
		Description: "Water gathers into a shield around the caster.",
		Category:    CategoryAbility,
		Domain:      DomainCombat,
		PowerCost:   1,
		Affinity:    map[card.Element]int{card.ElementWater: 3},
		EffectsByRarity: map[Rarity][]AbilityEffect{
			RarityCommon: {{Kind: "armor", Magnitude: 2, Target: "self"}},
			RarityMythic: {{Kind: "armor", Magnitude: 4, Target: "self"}, {Kind: "heal", Magnitude: 2, Target: "self"}},
		},
		Lifecycle: &Lifecycle{Discard: DiscardReturn, CooldownMode: CooldownTurns, CooldownValue: 2},
	},
	{
		ID:          "stonewake",
		Name:        "Stonewake",
		Description: "Raises the earth to slow every enemy on the field.",
		Category:    CategoryUtility,
		Domain:      DomainPuzzle,
		PowerCost:   3,
		Affinity:    map[card.Element]int{card.ElementEarth: 2, card.ElementDark: 1},
		Effects:     []AbilityEffect{{Kind: "slow", Magnitude: 1, Target: "all-enemies"}},
		Lifecycle:   &Lifecycle{ExhaustScope: ExhaustBattle},
	},
	{
		ID:          "gale-step",
		Name:        "Gale Step",
		Description: "Ride the wind past the next obstacle.",
		Category:    CategoryUtility,
		Domain:      DomainPuzzle,
		PowerCost:   1,
		Affinity:    map[card.Element]int{card.ElementAir: 3},
		Effects:     []AbilityEffect{{Kind: "skip", Magnitude: 1}},
		Lifecycle:   &Lifecycle{Discard: DiscardRetain},
	},
	{
		ID:                  "oldwall-patience",
		Name:                "Old Wall Patience",
		Description:         "Holding the line all turn hardens the wall.",
		Category:            CategoryTrait,
		Domain:              DomainPuzzle,
		Affinity:            map[card.Element]int{card.ElementEarth: 2},
		Effects:             []AbilityEffect{{Kind: "armor", Magnitude: 1, Target: "self"}},
		ActivationTiming:    TimingTurnEnd,
		ActivationCondition: Condition(FieldActorStamina, OpEq, 0),
	},
	{
		ID:          "beacon-omen",
		Name:        "Beacon Omen",
		Description: "Light reveals the next favorable play.",
		Category:    CategoryTrait,
		Domain:      DomainPuzzle,
		Affinity:    map[card.Element]int{card.ElementLight: 2},
		Effects:     []AbilityEffect{{Kind: "hint", Magnitude: 1}},
	},
	{
		ID:          "umbral-feast",
		Name:        "Umbral Feast",
		Description: "Dark power grows as the caster's health wanes.",
		Category:    CategoryAbility,
		Domain:      DomainCombat,
		PowerCost:   2,
		Damage:      2,
		Affinity:    map[card.Element]int{card.ElementDark: 3},
		Effects:     []AbilityEffect{{Kind: "damage", Magnitude: 2, Target: "enemy"}, {Kind: "lifesteal", Magnitude: 1, Target: "self"}},
		Lifecycle:   &Lifecycle{Discard: DiscardBanish},
	},
}

var abilityIndex = func() map[string]*AbilityRecord {
	idx := make(map[string]*AbilityRecord, len(abilities))
	for i := range abilities {
		idx[abilities[i].ID] = &abilities[i]
	}
	return idx
}()

// AbilityByID looks up a record in the static table. Returns nil for
// unknown ids; callers skip silently per the content leniency contract.
func AbilityByID(id string) *AbilityRecord {
	return abilityIndex[id]
}
