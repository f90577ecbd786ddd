package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"github.com/gardenfall/gardenfall-go/internal/game/card"
)

// Checksum is a deterministic digest of a game state. Equal states
// always produce equal hashes, guarding saves and replays against
// divergence.
type Checksum struct {
	Hash      string // SHA-256 of the canonical representation
	Timestamp string // when the checksum was computed
	Version   int    // canonical-form version
}

const checksumVersion = 1

// ComputeChecksum builds the canonical representation of the state and
// hashes it. Map iteration order and wall-clock fields never influence
// the hash.
func ComputeChecksum(s *GameState) (*Checksum, error) {
	if s == nil {
		return nil, fmt.Errorf("game: cannot checksum nil state")
	}

	data := canonicalRepresentation(s)
	hash := sha256.Sum256(data)

	return &Checksum{
		Hash:      hex.EncodeToString(hash[:]),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Version:   checksumVersion,
	}, nil
}

// canonicalRepresentation renders the state as a stable byte sequence:
// slices in order, maps sorted by key.
func canonicalRepresentation(s *GameState) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GAME:%s|%s|%s|%s|%d|%d|%d\n",
		s.Phase, s.InteractionMode, s.CurrentBiome, s.BiomeMode,
		s.RandomBiomeTurnNumber, s.NoRegret.Cooldown, s.NoRegret.MaxCooldown)

	for ti, pile := range s.Tableaus {
		fmt.Fprintf(&buf, "TABLEAU:%d", ti)
		for _, c := range pile {
			fmt.Fprintf(&buf, "|%s", c.ID)
		}
		buf.WriteByte('\n')
	}
	for fi, pile := range s.Foundations {
		fmt.Fprintf(&buf, "FOUNDATION:%d", fi)
		for _, c := range pile {
			fmt.Fprintf(&buf, "|%s", c.ID)
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("STOCK")
	for _, c := range s.Stock {
		fmt.Fprintf(&buf, "|%s", c.ID)
	}
	buf.WriteByte('\n')
	buf.WriteString("HAND")
	for _, c := range s.Hand {
		fmt.Fprintf(&buf, "|%s", c.ID)
	}
	buf.WriteByte('\n')

	for _, eff := range s.ActiveEffects {
		fmt.Fprintf(&buf, "EFFECT:%s|%s|%d\n", eff.ID, eff.Type, eff.Duration)
	}

	for i, a := range s.Party {
		fmt.Fprintf(&buf, "ACTOR:%d|%s|%s|%d|%d|%d|%d|%d|%d\n",
			i, a.ID, a.DefinitionID, a.CurrentValue, a.Level,
			a.Stamina, a.HP, a.Power, a.DamageTaken)
		for _, slot := range a.OrimSlots {
			fmt.Fprintf(&buf, "  SLOT:%s|%s|%t\n", slot.ID, slot.OrimID, slot.Locked)
		}
	}

	for fi, tokens := range s.FoundationTokens {
		elements := make([]string, 0, len(tokens))
		for el := range tokens {
			elements = append(elements, string(el))
		}
		sort.Strings(elements)
		fmt.Fprintf(&buf, "TOKENS:%d", fi)
		for _, el := range elements {
			fmt.Fprintf(&buf, "|%s=%d", el, tokens[card.Element(el)])
		}
		buf.WriteByte('\n')
	}
	for fi, combo := range s.FoundationCombos {
		fmt.Fprintf(&buf, "COMBO:%d|%d|%s\n", fi, combo, s.FoundationLastElements[fi])
	}

	instanceIDs := make([]string, 0, len(s.OrimInstances))
	for id := range s.OrimInstances {
		instanceIDs = append(instanceIDs, id)
	}
	sort.Strings(instanceIDs)
	for _, id := range instanceIDs {
		fmt.Fprintf(&buf, "ORIM:%s|%s\n", id, s.OrimInstances[id].DefinitionID)
	}

	actorIDs := make([]string, 0, len(s.ActorDecks))
	for id := range s.ActorDecks {
		actorIDs = append(actorIDs, id)
	}
	sort.Strings(actorIDs)
	for _, actorID := range actorIDs {
		ds := s.ActorDecks[actorID]
		for _, c := range ds.Cards {
			fmt.Fprintf(&buf, "DECKCARD:%s|%s|%d|%d|%t|%t|%d|%d\n",
				actorID, c.ID, c.Value, c.Cost, c.Active, c.NotDiscarded, c.Cooldown, c.MaxCooldown)
			for _, slot := range c.Slots {
				fmt.Fprintf(&buf, "  SLOT:%s|%s|%t\n", slot.ID, slot.OrimID, slot.Locked)
			}
		}
	}

	for _, n := range s.Nodes {
		fmt.Fprintf(&buf, "NODE:%s", n.ID)
		for _, c := range n.Cards {
			fmt.Fprintf(&buf, "|%s", c.ID)
		}
		buf.WriteByte('\n')
	}

	for _, obj := range s.Objectives {
		fmt.Fprintf(&buf, "OBJECTIVE:%s|%t\n", obj.ID, obj.Met)
	}

	return buf.Bytes()
}
