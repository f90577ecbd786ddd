package game

import (
	"github.com/gardenfall/gardenfall-go/internal/game/actor"
	"github.com/gardenfall/gardenfall-go/internal/game/orim"
)

// triggerSnapshot captures the fields a trigger condition may reference
// for the party member at foundation fi: the actor's stats, affinity
// weights summed over its always-on traits, and the bout counters
// tracked for its foundation.
func triggerSnapshot(s *GameState, fi int) orim.FieldSnapshot {
	a := s.Party[fi]
	snap := orim.FieldSnapshot{
		orim.FieldActorHP:      a.HP,
		orim.FieldActorStamina: a.Stamina,
		orim.FieldActorEnergy:  a.Energy,
		orim.FieldActorPower:   a.Power,
		orim.FieldActorArmor:   a.Armor,
		orim.FieldActorLevel:   a.Level,
		orim.FieldBoutTurn:     s.RandomBiomeTurnNumber,
	}

	if fi < len(s.FoundationCombos) {
		snap[orim.FieldBoutCombo] = s.FoundationCombos[fi]
	}
	if fi < len(s.FoundationTokens) {
		total := 0
		for _, n := range s.FoundationTokens[fi] {
			total += n
		}
		snap[orim.FieldBoutTokens] = total
	}

	for _, def := range actor.TraitOrims(a, s.OrimDefinitions) {
		for el, w := range def.Affinity {
			if f := orim.AffinityField(el); f != orim.FieldUnknown {
				snap[f] += w
			}
		}
	}
	return snap
}

// fireTriggers evaluates the trait orims of every party member whose
// activation timing matches, against that member's snapshot, and applies
// the passing self effects. Mutates out in place; callers pass a cloned
// state. A trait with no condition tree fires unconditionally.
func fireTriggers(out *GameState, timing orim.ActivationTiming) {
	for fi, a := range out.Party {
		var snap orim.FieldSnapshot
		for _, def := range actor.TraitOrims(a, out.OrimDefinitions) {
			if def.ActivationTiming != timing {
				continue
			}
			if snap == nil {
				snap = triggerSnapshot(out, fi)
			}
			if !orim.Evaluate(def.ActivationCondition, snap) {
				continue
			}
			applyTraitEffects(a, def.EffectsForRarity(def.Rarity))
		}
	}
}

// applyTraitEffects resolves the self-targeted effect kinds the core
// tracks. Combat and presentation kinds (damage, slow, hint) are carried
// on the definition for their own layers and skipped here.
func applyTraitEffects(a *actor.Actor, effects []orim.AbilityEffect) {
	for _, eff := range effects {
		switch eff.Kind {
		case "armor":
			a.Armor += eff.Magnitude
		case "heal":
			a.HP += eff.Magnitude
			if a.HP > a.HPMax {
				a.HP = a.HPMax
			}
		case "stamina":
			a.Stamina += eff.Magnitude
			if a.Stamina > a.StaminaMax {
				a.Stamina = a.StaminaMax
			}
		case "power":
			a.Power += eff.Magnitude
			if a.Power > a.PowerMax {
				a.Power = a.PowerMax
			}
		}
	}
}
