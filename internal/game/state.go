// Package game implements the state machine at the heart of the
// adventure: dealing, foundation play, biome progression, combo and
// token bookkeeping, and the guidance search over hypothetical futures.
//
// Every transition is a pure function taking a *GameState and returning
// a fresh one; illegal moves return nil and never mutate the input.
package game

import (
	"github.com/gardenfall/gardenfall-go/internal/game/actor"
	"github.com/gardenfall/gardenfall-go/internal/game/card"
	"github.com/gardenfall/gardenfall-go/internal/game/deck"
	"github.com/gardenfall/gardenfall-go/internal/game/orim"
	"github.com/gardenfall/gardenfall-go/internal/game/rules"
)

// Phase is the top-level game phase.
type Phase string

const (
	PhaseGarden  Phase = "garden"
	PhasePlaying Phase = "playing"
	PhaseBiome   Phase = "biome"
	PhaseWon     Phase = "won"
)

// BiomeMode selects the sub-mode of an adventure instance.
type BiomeMode string

const (
	BiomeStandard BiomeMode = "standard"
	BiomeRandom   BiomeMode = "randomlyGenerated"
	BiomeNodeEdge BiomeMode = "node-edge"
)

// InteractionMode is how the presentation layer interprets input. The
// core only stores it.
type InteractionMode string

const (
	InteractionClick InteractionMode = "click"
	InteractionDnD   InteractionMode = "dnd"
)

// NoRegretStatus gates the rewind action behind a cooldown counter.
type NoRegretStatus struct {
	Cooldown    int `json:"cooldown"`
	MaxCooldown int `json:"maxCooldown"`
}

// Objective is a tracked goal in standard-mode biomes.
type Objective struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Met         bool   `json:"met"`
}

// NodeState is one node of a node-edge biome: a positioned card stack
// unlocked once every node in BlockedBy has been cleared.
type NodeState struct {
	ID        string      `json:"id"`
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Z         float64     `json:"z"`
	Cards     []card.Card `json:"cards"`
	BlockedBy []string    `json:"blockedBy,omitempty"`
}

// Cleared reports whether the node has no cards left.
func (n *NodeState) Cleared() bool {
	return len(n.Cards) == 0
}

// playSource identifies where a played card came from, for rewind.
type playSource string

const (
	sourceTableau playSource = "tableau"
	sourceHand    playSource = "hand"
	sourceStock   playSource = "stock"
	sourceNode    playSource = "node"
)

// playRecord captures everything needed to undo one foundation play.
type playRecord struct {
	Source          playSource   `json:"source"`
	SourceIndex     int          `json:"sourceIndex"` // tableau/node/hand index; unused for stock
	FoundationIndex int          `json:"foundationIndex"`
	Card            card.Card    `json:"card"`
	PrevCombo       int          `json:"prevCombo"`
	PrevLastElement card.Element `json:"prevLastElement"`
}

// GameState is the immutable top-level aggregate. Consumers read it and
// call transition functions that return a new value; no function in
// this package mutates a previously returned GameState.
type GameState struct {
	Phase           Phase           `json:"phase"`
	InteractionMode InteractionMode `json:"interactionMode"`
	Seed            string          `json:"seed,omitempty"`

	CurrentBiome string    `json:"currentBiome,omitempty"`
	BiomeMode    BiomeMode `json:"biomeMode,omitempty"`

	Tableaus    [][]card.Card `json:"tableaus"`
	Foundations [][]card.Card `json:"foundations"`
	Stock       []card.Card   `json:"stock"`
	Hand        []card.Card   `json:"hand"`

	ActiveEffects []rules.Effect `json:"activeEffects"`

	Party           []*actor.Actor `json:"party"`
	AvailableActors []string       `json:"availableActors"`
	ActorQueue      []string       `json:"actorQueue"`

	FoundationTokens       []map[card.Element]int `json:"foundationTokens"`
	FoundationCombos       []int                  `json:"foundationCombos"`
	FoundationLastElements []card.Element         `json:"foundationLastElements"`

	OrimDefinitions map[string]*orim.Definition `json:"orimDefinitions"`
	OrimInstances   map[string]orim.Instance    `json:"orimInstances"`
	ActorDecks      map[string]*deck.State      `json:"actorDecks"`

	Objectives []Objective `json:"objectives,omitempty"`

	Nodes                 []NodeState `json:"nodes,omitempty"`
	RandomBiomeTurnNumber int         `json:"randomBiomeTurnNumber,omitempty"`

	NoRegret NoRegretStatus `json:"noRegretStatus"`

	History []playRecord `json:"history,omitempty"`
}

// Clone deep-copies the state. Transitions clone first, then mutate the
// copy, so caller-held snapshots stay valid.
func (s *GameState) Clone() *GameState {
	out := *s

	out.Tableaus = clonePiles(s.Tableaus)
	out.Foundations = clonePiles(s.Foundations)
	out.Stock = append([]card.Card(nil), s.Stock...)
	out.Hand = append([]card.Card(nil), s.Hand...)
	out.ActiveEffects = append([]rules.Effect(nil), s.ActiveEffects...)
	out.AvailableActors = append([]string(nil), s.AvailableActors...)
	out.ActorQueue = append([]string(nil), s.ActorQueue...)
	out.FoundationCombos = append([]int(nil), s.FoundationCombos...)
	out.FoundationLastElements = append([]card.Element(nil), s.FoundationLastElements...)
	out.Objectives = append([]Objective(nil), s.Objectives...)
	out.History = append([]playRecord(nil), s.History...)

	out.Party = make([]*actor.Actor, len(s.Party))
	for i, a := range s.Party {
		cp := *a
		cp.OrimSlots = append([]actor.Slot(nil), a.OrimSlots...)
		if a.GridPosition != nil {
			gp := *a.GridPosition
			cp.GridPosition = &gp
		}
		out.Party[i] = &cp
	}

	out.FoundationTokens = make([]map[card.Element]int, len(s.FoundationTokens))
	for i, tokens := range s.FoundationTokens {
		m := make(map[card.Element]int, len(tokens))
		for el, n := range tokens {
			m[el] = n
		}
		out.FoundationTokens[i] = m
	}

	// Definitions are read-only content; share the map entries but copy
	// the map itself so additions do not leak across snapshots.
	out.OrimDefinitions = make(map[string]*orim.Definition, len(s.OrimDefinitions))
	for id, def := range s.OrimDefinitions {
		out.OrimDefinitions[id] = def
	}
	out.OrimInstances = make(map[string]orim.Instance, len(s.OrimInstances))
	for id, inst := range s.OrimInstances {
		out.OrimInstances[id] = inst
	}

	out.ActorDecks = make(map[string]*deck.State, len(s.ActorDecks))
	for actorID, ds := range s.ActorDecks {
		cp := deck.State{ActorID: ds.ActorID, Cards: make([]deck.CardInstance, len(ds.Cards))}
		for i, c := range ds.Cards {
			cc := c
			cc.Slots = append([]deck.Slot(nil), c.Slots...)
			if c.CostByRarity != nil {
				cc.CostByRarity = make(map[orim.Rarity]int, len(c.CostByRarity))
				for r, v := range c.CostByRarity {
					cc.CostByRarity[r] = v
				}
			}
			cp.Cards[i] = cc
		}
		out.ActorDecks[actorID] = &cp
	}

	out.Nodes = make([]NodeState, len(s.Nodes))
	for i, n := range s.Nodes {
		cp := n
		cp.Cards = append([]card.Card(nil), n.Cards...)
		cp.BlockedBy = append([]string(nil), n.BlockedBy...)
		out.Nodes[i] = cp
	}

	return &out
}

func clonePiles(piles [][]card.Card) [][]card.Card {
	out := make([][]card.Card, len(piles))
	for i, pile := range piles {
		out[i] = append([]card.Card(nil), pile...)
	}
	return out
}

// Config seeds a new game.
type Config struct {
	Seed            string
	PartyDefIDs     []string // actor definitions to spawn into the party
	InteractionMode InteractionMode
	NoRegretMax     int
}

// DefaultNoRegretMax is the rewind cooldown ceiling when the config
// does not override it.
const DefaultNoRegretMax = 3

// InitializeGame creates the initial state in the garden phase with the
// party spawned, decks built, and orim instances registered. Unknown
// party definition ids are skipped silently.
func InitializeGame(cfg Config) *GameState {
	mode := cfg.InteractionMode
	if mode == "" {
		mode = InteractionClick
	}
	noRegretMax := cfg.NoRegretMax
	if noRegretMax <= 0 {
		noRegretMax = DefaultNoRegretMax
	}

	state := &GameState{
		Phase:           PhaseGarden,
		InteractionMode: mode,
		Seed:            cfg.Seed,
		AvailableActors: actor.DefinitionIDs(),
		OrimDefinitions: make(map[string]*orim.Definition),
		OrimInstances:   make(map[string]orim.Instance),
		ActorDecks:      make(map[string]*deck.State),
		NoRegret:        NoRegretStatus{Cooldown: 0, MaxCooldown: noRegretMax},
	}

	for _, defID := range cfg.PartyDefIDs {
		a := actor.New(defID)
		if a == nil {
			continue
		}
		state.Party = append(state.Party, a)

		ds, minted := deck.NewState(a.ID, a.DefinitionID, state.OrimDefinitions, nil)
		state.ActorDecks[a.ID] = ds
		for _, inst := range minted {
			state.OrimInstances[inst.ID] = inst
		}
	}

	return state
}
