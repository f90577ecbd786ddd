// Package deck builds per-actor decks of playable action cards from
// authored templates, attaching starter orim instances into slots and
// normalizing per-rarity cost curves.
package deck

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gardenfall/gardenfall-go/internal/game/orim"
)

// TurnPlayability restricts when a deck card may be played.
type TurnPlayability string

const (
	PlayableOnPlayerTurn TurnPlayability = "player"
	PlayableOnEnemyTurn  TurnPlayability = "enemy"
	PlayableAnytime      TurnPlayability = "anytime"
)

// Slot holds an orim instance on a deck card. Locked slots cannot be
// cleared or reassigned by the player.
type Slot struct {
	ID     string `json:"id"`
	OrimID string `json:"orimId,omitempty"` // instance id, empty when vacant
	Locked bool   `json:"locked"`
}

// CardInstance is a runtime action card in an actor's deck.
type CardInstance struct {
	ID              string              `json:"id"`
	Value           int                 `json:"value"`
	Cost            int                 `json:"cost"`
	CostByRarity    map[orim.Rarity]int `json:"costByRarity,omitempty"`
	EnabledRarity   orim.Rarity         `json:"enabledRarity,omitempty"`
	Active          bool                `json:"active"`
	NotDiscarded    bool                `json:"notDiscarded"`
	Discarded       bool                `json:"discarded"`
	TurnPlayability TurnPlayability     `json:"turnPlayability"`
	Slots           []Slot              `json:"slots"`
	Cooldown        int                 `json:"cooldown"`
	MaxCooldown     int                 `json:"maxCooldown"`
}

// State is the full deck of one actor.
type State struct {
	ActorID string         `json:"actorId"`
	Cards   []CardInstance `json:"cards"`
}

// StarterOrim seeds an orim into a slot when the deck is built.
type StarterOrim struct {
	OrimID string      `json:"orimId"`
	Slot   int         `json:"slot"`
	Rarity orim.Rarity `json:"rarity,omitempty"`
	Locked bool        `json:"locked,omitempty"`
}

// SlotLock marks a template slot as player-immutable.
type SlotLock struct {
	Slot int `json:"slot"`
}

// CardTemplate is one authored card in a deck template.
type CardTemplate struct {
	Value           int                 `json:"value"`
	Cost            int                 `json:"cost"`
	CostByRarity    map[orim.Rarity]int `json:"costByRarity,omitempty"`
	EnabledRarity   orim.Rarity         `json:"enabledRarity,omitempty"`
	SlotsPerCard    int                 `json:"slotsPerCard"`
	TurnPlayability TurnPlayability     `json:"turnPlayability,omitempty"`
	NotDiscarded    bool                `json:"notDiscarded,omitempty"`
	MaxCooldown     int                 `json:"maxCooldown,omitempty"`
	StarterOrims    []StarterOrim       `json:"starterOrims,omitempty"`
	Locks           []SlotLock          `json:"locks,omitempty"`
}

// Template is the authored deck for one actor definition.
type Template struct {
	Cards []CardTemplate `json:"cards"`
}

// NormalizeCostByRarity expands a sparse per-rarity cost table into a
// complete one by forward-filling: each explicit override updates the
// running anchor that later unspecified rarities inherit.
func NormalizeCostByRarity(base int, sparse map[orim.Rarity]int) map[orim.Rarity]int {
	out := make(map[orim.Rarity]int, len(orim.Rarities))
	anchor := base
	for _, r := range orim.Rarities {
		if v, ok := sparse[r]; ok {
			anchor = v
		}
		out[r] = anchor
	}
	return out
}

// slotCount widens the declared slot count to cover every slot index a
// starter or lock entry references, guarding against authoring errors.
func slotCount(tpl CardTemplate) int {
	n := tpl.SlotsPerCard
	if n < 1 {
		n = 1
	}
	for _, s := range tpl.StarterOrims {
		if s.Slot+1 > n {
			n = s.Slot + 1
		}
	}
	for _, l := range tpl.Locks {
		if l.Slot+1 > n {
			n = l.Slot + 1
		}
	}
	return n
}

// resolveStarter finds the definition a starter entry references: first
// in the supplied definitions, then in the static abilities table (at
// the starter's rarity, default common). Nil means skip silently.
func resolveStarter(s StarterOrim, orimDefs map[string]*orim.Definition) *orim.Definition {
	if def, ok := orimDefs[s.OrimID]; ok {
		return def
	}
	if rec := orim.AbilityByID(s.OrimID); rec != nil {
		rarity := s.Rarity
		if rarity == "" {
			rarity = orim.RarityCommon
		}
		return rec.ToDefinition(rarity)
	}
	return nil
}

// NewState builds an actor's deck from the template registered for its
// definition (or the override), minting starter orim instances into
// slots. The minted instances are returned so the caller can register
// them in the game state.
func NewState(actorID, definitionID string, orimDefs map[string]*orim.Definition, override *Template) (*State, []orim.Instance) {
	tpl := override
	if tpl == nil {
		tpl = TemplateFor(definitionID)
	}
	if tpl == nil {
		return &State{ActorID: actorID}, nil
	}

	state := &State{
		ActorID: actorID,
		Cards:   make([]CardInstance, 0, len(tpl.Cards)),
	}
	var minted []orim.Instance

	for ci, cardTpl := range tpl.Cards {
		n := slotCount(cardTpl)

		slots := make([]Slot, n)
		for si := range slots {
			slots[si] = Slot{ID: fmt.Sprintf("%s-c%d-s%d-%s", actorID, ci, si, uuid.NewString()[:8])}
		}
		for _, lock := range cardTpl.Locks {
			slots[lock.Slot].Locked = true
		}

		playability := cardTpl.TurnPlayability
		if playability == "" {
			playability = PlayableOnPlayerTurn
		}

		inst := CardInstance{
			ID:              fmt.Sprintf("deckcard-%s-%d-%s", actorID, ci, uuid.NewString()[:8]),
			Value:           cardTpl.Value,
			Cost:            cardTpl.Cost,
			CostByRarity:    NormalizeCostByRarity(cardTpl.Cost, cardTpl.CostByRarity),
			EnabledRarity:   cardTpl.EnabledRarity,
			Active:          true,
			NotDiscarded:    cardTpl.NotDiscarded,
			TurnPlayability: playability,
			MaxCooldown:     cardTpl.MaxCooldown,
		}

		for _, starter := range cardTpl.StarterOrims {
			def := resolveStarter(starter, orimDefs)
			if def == nil {
				continue // unresolvable content reference, deliberate leniency
			}
			oi := orim.NewInstance(def.ID)
			minted = append(minted, oi)
			slots[starter.Slot].OrimID = oi.ID
			if starter.Locked {
				slots[starter.Slot].Locked = true
			}

			if def.Lifecycle != nil {
				inst.NotDiscarded = def.Lifecycle.Reusable()
				inst.MaxCooldown = def.Lifecycle.MaxCooldown()
			}
		}

		inst.Slots = slots
		state.Cards = append(state.Cards, inst)
	}

	return state, minted
}

// AssignToSlot places an orim instance id into an unlocked slot of a
// deck card. Returns false without mutating anything when the target is
// missing or locked.
func AssignToSlot(state *State, cardID, slotID, orimInstanceID string) bool {
	for ci := range state.Cards {
		if state.Cards[ci].ID != cardID {
			continue
		}
		for si := range state.Cards[ci].Slots {
			slot := &state.Cards[ci].Slots[si]
			if slot.ID != slotID {
				continue
			}
			if slot.Locked {
				return false
			}
			slot.OrimID = orimInstanceID
			return true
		}
	}
	return false
}
