package deck

import "github.com/gardenfall/gardenfall-go/internal/game/orim"

// templates maps actor definition ids to their authored decks. Loaded
// once; nothing mutates it at runtime.
var templates = map[string]*Template{
	"rowan": {
		Cards: []CardTemplate{
			{
				Value:        4,
				Cost:         2,
				CostByRarity: map[orim.Rarity]int{orim.RarityCommon: 2, orim.RarityLegendary: 5},
				SlotsPerCard: 2,
				StarterOrims: []StarterOrim{{OrimID: "ember-lash", Slot: 0, Locked: true}},
			},
			{
				Value:           2,
				Cost:            1,
				SlotsPerCard:    1,
				TurnPlayability: PlayableAnytime,
			},
		},
	},
	"maris": {
		Cards: []CardTemplate{
			{
				Value:        3,
				Cost:         1,
				SlotsPerCard: 1,
				StarterOrims: []StarterOrim{{OrimID: "tide-ward", Slot: 0}},
			},
			{
				Value: 5,
				Cost:  2,
				// Authoring quirk: no slot count declared but the lock
				// references slot 2; the builder widens to 3 slots.
				Locks:        []SlotLock{{Slot: 2}},
				StarterOrims: []StarterOrim{{OrimID: "gale-step", Slot: 1}},
			},
		},
	},
	"thorn": {
		Cards: []CardTemplate{
			{
				Value:        6,
				Cost:         3,
				SlotsPerCard: 1,
				NotDiscarded: true,
				StarterOrims: []StarterOrim{{OrimID: "stonewake", Slot: 0, Locked: true}},
			},
		},
	},
}

// TemplateFor returns the registered deck template for an actor
// definition, or nil when none is authored.
func TemplateFor(definitionID string) *Template {
	return templates[definitionID]
}
