package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardenfall/gardenfall-go/internal/game/card"
)

// Every shipped pattern must be a DAG: a topological sort must consume
// all nodes.
func TestShippedPatternsAcyclic(t *testing.T) {
	for _, id := range PatternIDs() {
		pattern := PatternFor(id)
		require.NotNil(t, pattern)

		indegree := make(map[string]int, len(pattern.Nodes))
		dependents := make(map[string][]string)
		for _, n := range pattern.Nodes {
			indegree[n.ID] += 0
			for _, blocker := range n.BlockedBy {
				indegree[n.ID]++
				dependents[blocker] = append(dependents[blocker], n.ID)
			}
		}

		var queue []string
		for nodeID, deg := range indegree {
			if deg == 0 {
				queue = append(queue, nodeID)
			}
		}
		visited := 0
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			visited++
			for _, dep := range dependents[cur] {
				indegree[dep]--
				if indegree[dep] == 0 {
					queue = append(queue, dep)
				}
			}
		}
		assert.Equal(t, len(pattern.Nodes), visited, "pattern %s has a cycle", id)

		// Blockers must reference real nodes.
		known := make(map[string]bool)
		for _, n := range pattern.Nodes {
			known[n.ID] = true
		}
		for _, n := range pattern.Nodes {
			for _, blocker := range n.BlockedBy {
				assert.True(t, known[blocker], "pattern %s: node %s blocked by unknown %s", id, n.ID, blocker)
			}
		}
	}
}

func startNodeBiomeForTest(t *testing.T, patternID string) *GameState {
	t.Helper()
	base := InitializeGame(Config{Seed: "nodes", PartyDefIDs: []string{"rowan", "maris"}})
	s := StartBiome(base, patternID, BiomeNodeEdge)
	require.NotNil(t, s, "pattern %s should start", patternID)
	return s
}

func TestStartNodeBiomeDeal(t *testing.T) {
	s := startNodeBiomeForTest(t, "pyramid")

	pattern := PatternFor("pyramid")
	require.Len(t, s.Nodes, len(pattern.Nodes))
	for i, n := range s.Nodes {
		assert.Len(t, n.Cards, pattern.Nodes[i].CardCount, "node %s card count", n.ID)
	}
	assert.Len(t, collectIDs(s), card.FullDeckSize, "nodes, foundations and stock hold the whole deck")

	assert.Nil(t, StartBiome(InitializeGame(Config{PartyDefIDs: []string{"rowan"}}), "no-such-pattern", BiomeNodeEdge))
}

func TestNodeUnlockOrdering(t *testing.T) {
	for _, id := range PatternIDs() {
		s := startNodeBiomeForTest(t, id)

		for i := range s.Nodes {
			blocked := false
			for _, blockerID := range s.Nodes[i].BlockedBy {
				if !findNode(s, blockerID).Cleared() {
					blocked = true
				}
			}
			assert.Equal(t, !blocked, NodeUnlocked(s, i), "pattern %s node %s", id, s.Nodes[i].ID)
		}
	}
}

func TestBlockedNodeRejectsPlay(t *testing.T) {
	s := startNodeBiomeForTest(t, "pyramid")

	// mid-left (index 3) is blocked by the uncleared base nodes; even a
	// legal card must be rejected.
	require.False(t, NodeUnlocked(s, 3))
	top := s.Foundations[0][0]
	s.Nodes[3].Cards[len(s.Nodes[3].Cards)-1] = c(top.Rank+1, top.Suit)
	assert.Nil(t, PlayCardInNodeBiome(s, 3, 0))
}

func TestNodePlayAndUnlockFlow(t *testing.T) {
	s := startNodeBiomeForTest(t, "cross")

	// Rig the center node and foundation so the whole stack is playable.
	s.Foundations[0] = []card.Card{c(4, card.SuitStones)}
	s.Nodes[0].Cards = []card.Card{c(7, card.SuitStones), c(6, card.SuitStones), c(5, card.SuitStones)}
	s.Party[0].Stamina = 10
	s.Party[0].StaminaMax = 10

	require.True(t, NodeUnlocked(s, 0), "root node starts unlocked")
	require.False(t, NodeUnlocked(s, 1), "satellites blocked by center")

	cur := s
	for i := 0; i < 3; i++ {
		next := PlayCardInNodeBiome(cur, 0, 0)
		require.NotNil(t, next)
		cur = next
	}

	assert.True(t, cur.Nodes[0].Cleared())
	for i := 1; i < len(cur.Nodes); i++ {
		assert.True(t, NodeUnlocked(cur, i), "clearing the center unlocks %s", cur.Nodes[i].ID)
	}

	// Purity: the original snapshot still shows the center stacked.
	assert.Len(t, s.Nodes[0].Cards, 3)
}

func TestCheckWinNodeEdge(t *testing.T) {
	s := startNodeBiomeForTest(t, "cross")
	assert.False(t, CheckWin(s))

	cleared := s.Clone()
	for i := range cleared.Nodes {
		cleared.Nodes[i].Cards = nil
	}
	assert.True(t, CheckWin(cleared))
}

func TestCheckWinRandomMode(t *testing.T) {
	base := InitializeGame(Config{Seed: "rw", PartyDefIDs: []string{"rowan"}})
	s := StartBiome(base, "wilds", BiomeRandom)
	require.NotNil(t, s)
	assert.False(t, CheckWin(s))

	done := s.Clone()
	for i := range done.Tableaus {
		done.Tableaus[i] = nil
	}
	done.Stock = nil
	done.Hand = nil
	assert.True(t, CheckWin(done))
}
