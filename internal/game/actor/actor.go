// Package actor resolves static actor definitions into runtime actors
// with fully derived stats, and provides display helpers.
package actor

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/gardenfall/gardenfall-go/internal/game/orim"
)

// Type distinguishes playable adventurers from npcs.
type Type string

const (
	TypeAdventurer Type = "adventurer"
	TypeNPC        Type = "npc"
)

// SlotTemplate declares a starting orim slot on a definition. A
// non-empty OrimID embeds an always-on trait reference.
type SlotTemplate struct {
	Locked bool   `json:"locked"`
	OrimID string `json:"orimId,omitempty"`
}

// Definition is the static template an Actor is spawned from. All base
// stats are optional; see the defaults table below.
type Definition struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Titles      []string       `json:"titles,omitempty"`
	Description string         `json:"description,omitempty"`
	Type        Type           `json:"type"`
	Glyph       string         `json:"glyph,omitempty"`
	Value       *int           `json:"value,omitempty"` // solitaire rank the foundation accepts
	Aliases     []string       `json:"aliases,omitempty"`
	OrimSlots   []SlotTemplate `json:"orimSlots,omitempty"`

	BaseStamina  *int `json:"baseStamina,omitempty"`
	BaseHP       *int `json:"baseHp,omitempty"`
	BaseArmor    *int `json:"baseArmor,omitempty"`
	BaseEvasion  *int `json:"baseEvasion,omitempty"`
	BaseAccuracy *int `json:"baseAccuracy,omitempty"`
	BasePower    *int `json:"basePower,omitempty"`
	BasePowerMax *int `json:"basePowerMax,omitempty"`
	BaseEnergy   *int `json:"baseEnergy,omitempty"`
	BaseDefense  *int `json:"baseDefense,omitempty"`
}

// Stat defaults applied when a base field is absent. Kept in one table
// so the values stay auditable.
const (
	DefaultValue    = 1
	DefaultStamina  = 3
	DefaultHP       = 10
	DefaultArmor    = 0
	DefaultEvasion  = 0
	DefaultAccuracy = 100
	DefaultPower    = 0
	DefaultPowerMax = 10
	DefaultEnergy   = 0
	DefaultDefense  = 0
)

func orDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// Slot is a runtime orim slot on an actor. Locked slots cannot be
// cleared or reassigned by the player.
type Slot struct {
	ID     string `json:"id"`
	OrimID string `json:"orimId,omitempty"`
	Locked bool   `json:"locked"`
}

// GridPosition places an actor on the party grid.
type GridPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Actor is a runtime instance of a Definition. It is created once per
// instantiation and mutated only through game state transitions.
type Actor struct {
	ID           string        `json:"id"`
	DefinitionID string        `json:"definitionId"`
	CurrentValue int           `json:"currentValue"`
	Level        int           `json:"level"`
	Stamina      int           `json:"stamina"`
	StaminaMax   int           `json:"staminaMax"`
	Energy       int           `json:"energy"`
	EnergyMax    int           `json:"energyMax"`
	HP           int           `json:"hp"`
	HPMax        int           `json:"hpMax"`
	Armor        int           `json:"armor"`
	SuperArmor   int           `json:"superArmor"`
	Defense      int           `json:"defense"`
	Evasion      int           `json:"evasion"`
	Accuracy     int           `json:"accuracy"`
	DamageTaken  int           `json:"damageTaken"`
	Power        int           `json:"power"`
	PowerMax     int           `json:"powerMax"`
	OrimSlots    []Slot        `json:"orimSlots"`
	GridPosition *GridPosition `json:"gridPosition,omitempty"`
}

var slotSeq atomic.Uint64

func nextSlotID(actorID string) string {
	return fmt.Sprintf("slot-%s-%d", actorID, slotSeq.Add(1))
}

var actorSeq atomic.Uint64

// New derives a runtime Actor from the named definition, applying the
// defaults table for absent base stats. Returns nil for unknown
// definitions. Template slots pre-filled with a definition id keep the
// reference for always-on traits; live orim instances are minted by the
// deck-assignment layer, not here.
func New(definitionID string) *Actor {
	def := GetDefinition(definitionID)
	if def == nil {
		return nil
	}

	id := fmt.Sprintf("actor-%s-%d", def.ID, actorSeq.Add(1))

	slots := make([]Slot, 0, len(def.OrimSlots))
	for _, tpl := range def.OrimSlots {
		slots = append(slots, Slot{
			ID:     nextSlotID(id),
			OrimID: tpl.OrimID,
			Locked: tpl.Locked,
		})
	}
	if len(slots) == 0 {
		slots = append(slots, Slot{ID: nextSlotID(id)})
	}

	stamina := orDefault(def.BaseStamina, DefaultStamina)
	hp := orDefault(def.BaseHP, DefaultHP)
	energy := orDefault(def.BaseEnergy, DefaultEnergy)

	return &Actor{
		ID:           id,
		DefinitionID: def.ID,
		CurrentValue: orDefault(def.Value, DefaultValue),
		Level:        1,
		Stamina:      stamina,
		StaminaMax:   stamina,
		Energy:       energy,
		EnergyMax:    energy,
		HP:           hp,
		HPMax:        hp,
		Armor:        orDefault(def.BaseArmor, DefaultArmor),
		Defense:      orDefault(def.BaseDefense, DefaultDefense),
		Evasion:      orDefault(def.BaseEvasion, DefaultEvasion),
		Accuracy:     orDefault(def.BaseAccuracy, DefaultAccuracy),
		Power:        orDefault(def.BasePower, DefaultPower),
		PowerMax:     orDefault(def.BasePowerMax, DefaultPowerMax),
		OrimSlots:    slots,
	}
}

// DisplayGlyph returns the definition's glyph when graphics are enabled,
// otherwise a deterministic single-letter fallback: the first
// alphanumeric rune of the last title token, uppercased.
func DisplayGlyph(def *Definition, graphicsEnabled bool) string {
	if def == nil {
		return "?"
	}
	if graphicsEnabled && def.Glyph != "" {
		return def.Glyph
	}

	source := def.Name
	if len(def.Titles) > 0 {
		source = def.Titles[len(def.Titles)-1]
	}
	tokens := strings.Fields(source)
	if len(tokens) > 0 {
		source = tokens[len(tokens)-1]
	}
	for _, r := range source {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return strings.ToUpper(string(r))
		}
	}
	return "?"
}

// TraitOrims lists the always-on orim definition ids embedded in an
// actor's slots, skipping ids the supplied resolver cannot resolve.
func TraitOrims(a *Actor, defs map[string]*orim.Definition) []*orim.Definition {
	var out []*orim.Definition
	for _, slot := range a.OrimSlots {
		if slot.OrimID == "" {
			continue
		}
		if def, ok := defs[slot.OrimID]; ok {
			out = append(out, def)
			continue
		}
		if rec := orim.AbilityByID(slot.OrimID); rec != nil {
			out = append(out, rec.ToDefinition(orim.RarityCommon))
		}
	}
	return out
}
