package game

import (
	"github.com/gardenfall/gardenfall-go/internal/game/actor"
	"github.com/gardenfall/gardenfall-go/internal/game/card"
	"github.com/gardenfall/gardenfall-go/internal/game/deck"
	"github.com/gardenfall/gardenfall-go/internal/game/orim"
	"github.com/gardenfall/gardenfall-go/internal/game/rules"
)

// ComboPolicy decides whether a play continues a foundation's combo
// streak. The product owner may swap this; the default is "same element
// as the previous play onto this foundation".
type ComboPolicy func(prev, played card.Element) bool

// SameElementCombo is the default combo policy.
func SameElementCombo(prev, played card.Element) bool {
	return prev != "" && prev == played
}

// activeComboPolicy is process-wide configuration, set once at startup.
var activeComboPolicy ComboPolicy = SameElementCombo

// SetComboPolicy overrides the combo continuation rule. Passing nil
// restores the default.
func SetComboPolicy(p ComboPolicy) {
	if p == nil {
		p = SameElementCombo
	}
	activeComboPolicy = p
}

// legalityFor returns the play predicate for the state's biome mode:
// random biomes honor the wild sentinel, every other mode does not.
func legalityFor(mode BiomeMode) func(candidate, top card.Card, effects []rules.Effect) bool {
	if mode == BiomeRandom {
		return rules.CanPlayCardWithWild
	}
	return rules.CanPlayCard
}

// canPlayOnFoundation applies the full gate for foundation fi: the
// foundation exists, its actor has stamina, and the candidate passes
// the mode's legality predicate. An empty foundation accepts only the
// actor's current value.
func canPlayOnFoundation(s *GameState, candidate card.Card, fi int) bool {
	if fi < 0 || fi >= len(s.Foundations) || fi >= len(s.Party) {
		return false
	}
	if s.Party[fi].Stamina <= 0 {
		return false
	}

	pile := s.Foundations[fi]
	if len(pile) == 0 {
		return candidate.Rank == s.Party[fi].CurrentValue
	}
	return legalityFor(s.BiomeMode)(candidate, pile[len(pile)-1], s.ActiveEffects)
}

// applyPlay commits a legality-checked play onto a cloned state:
// pushes the card, spends stamina, updates tokens and the combo streak,
// ticks the rewind cooldown, and records history.
func applyPlay(out *GameState, c card.Card, src playSource, srcIndex, fi int) {
	out.Foundations[fi] = append(out.Foundations[fi], c)
	out.Party[fi].Stamina--

	record := playRecord{
		Source:          src,
		SourceIndex:     srcIndex,
		FoundationIndex: fi,
		Card:            c,
		PrevCombo:       out.FoundationCombos[fi],
		PrevLastElement: out.FoundationLastElements[fi],
	}

	out.FoundationTokens[fi][c.Element]++
	if activeComboPolicy(out.FoundationLastElements[fi], c.Element) {
		out.FoundationCombos[fi]++
	} else {
		out.FoundationCombos[fi] = 1
	}
	out.FoundationLastElements[fi] = c.Element

	if out.NoRegret.Cooldown > 0 {
		out.NoRegret.Cooldown--
	}

	out.History = append(out.History, record)
	fireTriggers(out, orim.TimingPlay)
	refreshObjectives(out)
	if CheckWin(out) {
		out.Phase = PhaseWon
	}
}

// PlayCard moves the top card of tableau ti onto foundation fi.
// Returns nil when the move is rejected; the input is never mutated.
func PlayCard(s *GameState, ti, fi int) *GameState {
	if s == nil || s.Phase != PhaseBiome || s.BiomeMode == BiomeNodeEdge {
		return nil
	}
	if ti < 0 || ti >= len(s.Tableaus) || len(s.Tableaus[ti]) == 0 {
		return nil
	}
	candidate := s.Tableaus[ti][len(s.Tableaus[ti])-1]
	if !canPlayOnFoundation(s, candidate, fi) {
		return nil
	}

	out := s.Clone()
	out.Tableaus[ti] = out.Tableaus[ti][:len(out.Tableaus[ti])-1]
	applyPlay(out, candidate, sourceTableau, ti, fi)
	return out
}

// PlayFromHand plays the card at hand index hi onto foundation fi.
func PlayFromHand(s *GameState, hi, fi int) *GameState {
	if s == nil || s.Phase != PhaseBiome {
		return nil
	}
	if hi < 0 || hi >= len(s.Hand) {
		return nil
	}
	candidate := s.Hand[hi]
	if !canPlayOnFoundation(s, candidate, fi) {
		return nil
	}

	out := s.Clone()
	out.Hand = append(out.Hand[:hi], out.Hand[hi+1:]...)
	applyPlay(out, candidate, sourceHand, hi, fi)
	return out
}

// PlayFromStock plays the top of the stock onto foundation fi. Stock
// draws are last-in-first-out.
func PlayFromStock(s *GameState, fi int) *GameState {
	if s == nil || s.Phase != PhaseBiome {
		return nil
	}
	if len(s.Stock) == 0 {
		return nil
	}
	candidate := s.Stock[len(s.Stock)-1]
	if !canPlayOnFoundation(s, candidate, fi) {
		return nil
	}

	out := s.Clone()
	out.Stock = out.Stock[:len(out.Stock)-1]
	applyPlay(out, candidate, sourceStock, 0, fi)
	return out
}

// PlayCardInRandomBiome is the random-biome variant of PlayCard: the
// wild-sentinel legality applies and play is scoped to the per-turn
// structure closed by EndRandomBiomeTurn.
func PlayCardInRandomBiome(s *GameState, ti, fi int) *GameState {
	if s == nil || s.BiomeMode != BiomeRandom {
		return nil
	}
	return PlayCard(s, ti, fi)
}

// PlayCardInNodeBiome plays the top card of the node at ni onto
// foundation fi. The node must be unlocked: every node in its blockedBy
// set fully cleared.
func PlayCardInNodeBiome(s *GameState, ni, fi int) *GameState {
	if s == nil || s.Phase != PhaseBiome || s.BiomeMode != BiomeNodeEdge {
		return nil
	}
	if ni < 0 || ni >= len(s.Nodes) || len(s.Nodes[ni].Cards) == 0 {
		return nil
	}
	if !NodeUnlocked(s, ni) {
		return nil
	}
	candidate := s.Nodes[ni].Cards[len(s.Nodes[ni].Cards)-1]
	if !canPlayOnFoundation(s, candidate, fi) {
		return nil
	}

	out := s.Clone()
	node := &out.Nodes[ni]
	node.Cards = node.Cards[:len(node.Cards)-1]
	applyPlay(out, candidate, sourceNode, ni, fi)
	return out
}

// RewindLastCard undoes the most recent foundation play (the "No
// Regret" action). Rejected while the cooldown is running or when there
// is nothing to undo; triggering resets the cooldown to its maximum.
func RewindLastCard(s *GameState) *GameState {
	if s == nil || len(s.History) == 0 {
		return nil
	}
	if s.NoRegret.Cooldown > 0 {
		return nil
	}

	record := s.History[len(s.History)-1]
	fi := record.FoundationIndex
	pile := s.Foundations[fi]
	if len(pile) == 0 || pile[len(pile)-1].ID != record.Card.ID {
		return nil
	}

	out := s.Clone()
	out.Foundations[fi] = out.Foundations[fi][:len(out.Foundations[fi])-1]
	out.History = out.History[:len(out.History)-1]

	switch record.Source {
	case sourceTableau:
		out.Tableaus[record.SourceIndex] = append(out.Tableaus[record.SourceIndex], record.Card)
	case sourceHand:
		hi := record.SourceIndex
		if hi < 0 || hi > len(out.Hand) {
			hi = len(out.Hand)
		}
		out.Hand = append(out.Hand, card.Card{})
		copy(out.Hand[hi+1:], out.Hand[hi:])
		out.Hand[hi] = record.Card
	case sourceStock:
		out.Stock = append(out.Stock, record.Card)
	case sourceNode:
		out.Nodes[record.SourceIndex].Cards = append(out.Nodes[record.SourceIndex].Cards, record.Card)
	}

	out.Party[fi].Stamina++
	if out.Party[fi].Stamina > out.Party[fi].StaminaMax {
		out.Party[fi].Stamina = out.Party[fi].StaminaMax
	}

	out.FoundationTokens[fi][record.Card.Element]--
	if out.FoundationTokens[fi][record.Card.Element] <= 0 {
		delete(out.FoundationTokens[fi], record.Card.Element)
	}
	out.FoundationCombos[fi] = record.PrevCombo
	out.FoundationLastElements[fi] = record.PrevLastElement

	out.NoRegret.Cooldown = out.NoRegret.MaxCooldown
	if out.Phase == PhaseWon {
		out.Phase = PhaseBiome
	}
	refreshObjectives(out)
	return out
}

// AssignActorToQueue appends an actor definition to the garden queue.
// Unknown definitions and duplicates are rejected.
func AssignActorToQueue(s *GameState, defID string) *GameState {
	if s == nil || s.Phase != PhaseGarden {
		return nil
	}
	if actor.GetDefinition(defID) == nil {
		return nil
	}
	for _, queued := range s.ActorQueue {
		if queued == defID {
			return nil
		}
	}

	out := s.Clone()
	out.ActorQueue = append(out.ActorQueue, defID)
	return out
}

// AssignCardToMetaCardSlot binds an orim instance into an unlocked slot
// of one of the actor's deck cards. Returns nil when the instance is
// unknown or the slot rejects the assignment.
func AssignCardToMetaCardSlot(s *GameState, actorID, cardID, slotID, orimInstanceID string) *GameState {
	if s == nil {
		return nil
	}
	if _, ok := s.OrimInstances[orimInstanceID]; !ok {
		return nil
	}
	ds, ok := s.ActorDecks[actorID]
	if !ok || ds == nil {
		return nil
	}

	out := s.Clone()
	if !deck.AssignToSlot(out.ActorDecks[actorID], cardID, slotID, orimInstanceID) {
		return nil
	}
	fireTriggers(out, orim.TimingEquip)
	return out
}

// ToggleInteractionMode flips between click and drag-and-drop input.
func ToggleInteractionMode(s *GameState) *GameState {
	if s == nil {
		return nil
	}
	out := s.Clone()
	if out.InteractionMode == InteractionClick {
		out.InteractionMode = InteractionDnD
	} else {
		out.InteractionMode = InteractionClick
	}
	return out
}
