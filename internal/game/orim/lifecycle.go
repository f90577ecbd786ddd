package orim

// DiscardPolicy controls what happens to a deck card after it is played.
type DiscardPolicy string

const (
	DiscardDiscard DiscardPolicy = "discard"
	DiscardBanish  DiscardPolicy = "banish"
	DiscardReturn  DiscardPolicy = "return"
	DiscardRetain  DiscardPolicy = "retain"
)

// ExhaustScope says how long an exhausted card stays out of play.
type ExhaustScope string

const (
	ExhaustNone   ExhaustScope = ""
	ExhaustBattle ExhaustScope = "battle"
	ExhaustRest   ExhaustScope = "rest"
	ExhaustRun    ExhaustScope = "run"
)

// CooldownMode says how a cooldown value is interpreted.
type CooldownMode string

const (
	CooldownNone    CooldownMode = ""
	CooldownSeconds CooldownMode = "seconds"
	CooldownTurns   CooldownMode = "turns"
)

// Lifecycle describes the discard/exhaust/cooldown behavior a starter
// orim imposes on the deck card it is attached to.
type Lifecycle struct {
	Discard       DiscardPolicy `json:"discard,omitempty"`
	ExhaustScope  ExhaustScope  `json:"exhaustScope,omitempty"`
	CooldownMode  CooldownMode  `json:"cooldownMode,omitempty"`
	CooldownValue int           `json:"cooldownValue,omitempty"`
}

// Reusable reports whether a card carrying this lifecycle stays in the
// deck after play. Hard exhaust scopes always consume the card; any
// discard policy other than discard/banish keeps it.
func (l *Lifecycle) Reusable() bool {
	switch l.ExhaustScope {
	case ExhaustBattle, ExhaustRest, ExhaustRun:
		return false
	}
	switch l.Discard {
	case DiscardDiscard, DiscardBanish:
		return false
	}
	return true
}

// MaxCooldown returns the cooldown ceiling the lifecycle imposes: the
// declared value in seconds mode, zero otherwise.
func (l *Lifecycle) MaxCooldown() int {
	if l.CooldownMode == CooldownSeconds {
		return l.CooldownValue
	}
	return 0
}
