package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardenfall/gardenfall-go/internal/game/card"
	"github.com/gardenfall/gardenfall-go/internal/game/rules"
)

func TestSolveOptimallyKnownScenario(t *testing.T) {
	// Two tableaus, one foundation at 4. The optimal line is
	// 5, 6, 7 from alternating tableaus: exactly 3 moves.
	tableaus := [][]card.Card{
		{c(7, card.SuitStones), c(5, card.SuitStones)},
		{c(6, card.SuitStones)},
	}
	foundations := [][]card.Card{{c(4, card.SuitStones)}}

	moves := SolveOptimally(tableaus, foundations, nil)
	require.Len(t, moves, 3)
	assert.Equal(t, Move{TableauIndex: 0, FoundationIndex: 0}, moves[0])
	assert.Equal(t, Move{TableauIndex: 1, FoundationIndex: 0}, moves[1])
	assert.Equal(t, Move{TableauIndex: 0, FoundationIndex: 0}, moves[2])
}

func TestSolveOptimallyPicksLongestBranch(t *testing.T) {
	// Playing the 3 first dead-ends (nothing sits on 3 except 2 or 4,
	// both buried); the 5-then-6 line is longer.
	tableaus := [][]card.Card{
		{c(3, card.SuitStones)},
		{c(6, card.SuitStones), c(5, card.SuitStones)},
	}
	foundations := [][]card.Card{{c(4, card.SuitStones)}}

	moves := SolveOptimally(tableaus, foundations, nil)
	require.Len(t, moves, 2)
	assert.Equal(t, 1, moves[0].TableauIndex)
	assert.Equal(t, 1, moves[1].TableauIndex)
}

func TestFindBestMoveSequenceDepthCap(t *testing.T) {
	tableaus := [][]card.Card{
		{c(8, card.SuitStones), c(7, card.SuitStones), c(6, card.SuitStones), c(5, card.SuitStones)},
	}
	foundations := [][]card.Card{{c(4, card.SuitStones)}}

	assert.Len(t, FindBestMoveSequence(tableaus, foundations, nil, 2), 2)
	assert.Len(t, FindBestMoveSequence(tableaus, foundations, nil, 10), 4)
	assert.Nil(t, FindBestMoveSequence(tableaus, foundations, nil, 0))
}

func TestSolverDoesNotMutateInputs(t *testing.T) {
	tableaus := [][]card.Card{
		{c(7, card.SuitStones), c(5, card.SuitStones)},
		{c(6, card.SuitStones)},
	}
	foundations := [][]card.Card{{c(4, card.SuitStones)}}

	SolveOptimally(tableaus, foundations, nil)
	FindBestMoveSequence(tableaus, foundations, nil, 5)

	require.Len(t, tableaus[0], 2)
	assert.Equal(t, 5, tableaus[0][1].Rank)
	require.Len(t, foundations[0], 1)
	assert.Equal(t, 4, foundations[0][0].Rank)
}

func TestSolverHonorsEffects(t *testing.T) {
	tableaus := [][]card.Card{{c(11, card.SuitStones)}}
	foundations := [][]card.Card{{c(4, card.SuitStones)}}

	assert.Empty(t, SolveOptimally(tableaus, foundations, nil))

	effects := []rules.Effect{{ID: "e", Type: rules.EffectTypeElementMatch, Duration: 1}}
	assert.Len(t, SolveOptimally(tableaus, foundations, effects), 1)
}

func TestSolveOptimallyNoMoves(t *testing.T) {
	tableaus := [][]card.Card{{c(11, card.SuitGales)}}
	foundations := [][]card.Card{{c(4, card.SuitStones)}}
	assert.Empty(t, SolveOptimally(tableaus, foundations, nil))
}

func TestAutoSolveBiome(t *testing.T) {
	s := newBiomeState(
		[][]card.Card{
			{c(7, card.SuitStones), c(5, card.SuitStones)},
			{c(6, card.SuitStones)},
		},
		[][]card.Card{{c(4, card.SuitStones)}},
		5,
	)

	out := AutoSolveBiome(s)
	require.NotNil(t, out)
	assert.Len(t, out.Foundations[0], 4, "4 + the solved 5,6,7")
	assert.Equal(t, 2, out.Party[0].Stamina, "auto-solve spends stamina per play")

	// Conservation still holds after an auto-solve.
	assert.Equal(t, collectIDs(s), collectIDs(out))
}

func TestAutoSolveBiomeStopsAtStamina(t *testing.T) {
	s := newBiomeState(
		[][]card.Card{
			{c(7, card.SuitStones), c(5, card.SuitStones)},
			{c(6, card.SuitStones)},
		},
		[][]card.Card{{c(4, card.SuitStones)}},
		2,
	)

	out := AutoSolveBiome(s)
	require.NotNil(t, out)
	assert.Len(t, out.Foundations[0], 3, "only two plays fit the stamina budget")
	assert.Equal(t, 0, out.Party[0].Stamina)
}
