package game

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session pairs a live game with its replay recording.
type session struct {
	id     string
	state  *GameState
	replay *Replay
}

// Engine manages game sessions and drives them through the pure
// transition functions. Every successful transition swaps in the new
// snapshot and records it for replay; the previous snapshots stay valid
// for any reader still holding them.
type Engine struct {
	logger         *zap.Logger
	mu             sync.RWMutex
	sessions       map[string]*session
	solverMaxDepth int
}

// DefaultSolverMaxDepth bounds guidance searches when the config does
// not override it. The solver is synchronous and combinatorial; the cap
// is the engine's backpressure.
const DefaultSolverMaxDepth = 12

// NewEngine creates an engine.
func NewEngine(logger *zap.Logger, solverMaxDepth int) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if solverMaxDepth <= 0 {
		solverMaxDepth = DefaultSolverMaxDepth
	}
	return &Engine{
		logger:         logger,
		sessions:       make(map[string]*session),
		solverMaxDepth: solverMaxDepth,
	}
}

// CreateGame initializes a new session and returns its id.
func (e *Engine) CreateGame(cfg Config) string {
	state := InitializeGame(cfg)
	id := uuid.NewString()

	replay := NewReplay(id)
	replay.RecordState(state)

	e.mu.Lock()
	e.sessions[id] = &session{id: id, state: state, replay: replay}
	e.mu.Unlock()

	e.logger.Info("game created",
		zap.String("game_id", id),
		zap.Int("party_size", len(state.Party)),
		zap.String("seed", cfg.Seed),
	)
	return id
}

// State returns the current snapshot of a session, or nil.
func (e *Engine) State(gameID string) *GameState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if sess, ok := e.sessions[gameID]; ok {
		return sess.state
	}
	return nil
}

// ReplayFor returns the replay recording of a session, or nil.
func (e *Engine) ReplayFor(gameID string) *Replay {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if sess, ok := e.sessions[gameID]; ok {
		return sess.replay
	}
	return nil
}

// RemoveGame drops a session.
func (e *Engine) RemoveGame(gameID string) {
	e.mu.Lock()
	delete(e.sessions, gameID)
	e.mu.Unlock()

	e.logger.Info("game removed", zap.String("game_id", gameID))
}

// GameCount returns the number of live sessions.
func (e *Engine) GameCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.sessions)
}

// apply runs a transition against a session under the lock. A nil
// result from the transition is a rejected move, not an error.
func (e *Engine) apply(gameID, action string, fn func(*GameState) *GameState) (*GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("game: unknown session %s", gameID)
	}

	next := fn(sess.state)
	if next == nil {
		e.logger.Debug("move rejected",
			zap.String("game_id", gameID),
			zap.String("action", action),
		)
		return nil, nil
	}

	sess.state = next
	sess.replay.RecordState(next)

	e.logger.Debug("transition applied",
		zap.String("game_id", gameID),
		zap.String("action", action),
		zap.String("phase", string(next.Phase)),
		zap.String("biome", next.BiomeLabel()),
	)
	return next, nil
}

// StartBiome enters a biome for the session.
func (e *Engine) StartBiome(gameID, biomeID string, mode BiomeMode) (*GameState, error) {
	return e.apply(gameID, "start_biome", func(s *GameState) *GameState {
		return StartBiome(s, biomeID, mode)
	})
}

// CompleteBiome returns the session to the garden.
func (e *Engine) CompleteBiome(gameID string) (*GameState, error) {
	return e.apply(gameID, "complete_biome", CompleteBiome)
}

// PlayCard plays a tableau top onto a foundation.
func (e *Engine) PlayCard(gameID string, ti, fi int) (*GameState, error) {
	return e.apply(gameID, "play_card", func(s *GameState) *GameState {
		return PlayCard(s, ti, fi)
	})
}

// PlayFromHand plays a hand card onto a foundation.
func (e *Engine) PlayFromHand(gameID string, hi, fi int) (*GameState, error) {
	return e.apply(gameID, "play_from_hand", func(s *GameState) *GameState {
		return PlayFromHand(s, hi, fi)
	})
}

// PlayFromStock plays the stock top onto a foundation.
func (e *Engine) PlayFromStock(gameID string, fi int) (*GameState, error) {
	return e.apply(gameID, "play_from_stock", func(s *GameState) *GameState {
		return PlayFromStock(s, fi)
	})
}

// PlayCardInRandomBiome plays under wild-sentinel legality.
func (e *Engine) PlayCardInRandomBiome(gameID string, ti, fi int) (*GameState, error) {
	return e.apply(gameID, "play_card_random", func(s *GameState) *GameState {
		return PlayCardInRandomBiome(s, ti, fi)
	})
}

// PlayCardInNodeBiome plays an unlocked node top onto a foundation.
func (e *Engine) PlayCardInNodeBiome(gameID string, ni, fi int) (*GameState, error) {
	return e.apply(gameID, "play_card_node", func(s *GameState) *GameState {
		return PlayCardInNodeBiome(s, ni, fi)
	})
}

// EndRandomBiomeTurn closes the current random-biome turn.
func (e *Engine) EndRandomBiomeTurn(gameID string) (*GameState, error) {
	return e.apply(gameID, "end_random_turn", EndRandomBiomeTurn)
}

// RewindLastCard triggers the No Regret undo.
func (e *Engine) RewindLastCard(gameID string) (*GameState, error) {
	return e.apply(gameID, "rewind", RewindLastCard)
}

// AutoSolveBiome plays out the optimal sequence for the session.
func (e *Engine) AutoSolveBiome(gameID string) (*GameState, error) {
	return e.apply(gameID, "auto_solve", AutoSolveBiome)
}

// AssignActorToQueue queues an actor definition in the garden.
func (e *Engine) AssignActorToQueue(gameID, defID string) (*GameState, error) {
	return e.apply(gameID, "assign_actor", func(s *GameState) *GameState {
		return AssignActorToQueue(s, defID)
	})
}

// AssignCardToMetaCardSlot binds an orim instance into a deck slot.
func (e *Engine) AssignCardToMetaCardSlot(gameID, actorID, cardID, slotID, orimInstanceID string) (*GameState, error) {
	return e.apply(gameID, "assign_slot", func(s *GameState) *GameState {
		return AssignCardToMetaCardSlot(s, actorID, cardID, slotID, orimInstanceID)
	})
}

// ToggleInteractionMode flips the input mode.
func (e *Engine) ToggleInteractionMode(gameID string) (*GameState, error) {
	return e.apply(gameID, "toggle_interaction", ToggleInteractionMode)
}

// Guidance runs the bounded best-sequence search for the session's
// current snapshot, capped at the engine's configured depth.
func (e *Engine) Guidance(gameID string, maxDepth int) []Move {
	state := e.State(gameID)
	if state == nil {
		return nil
	}
	if maxDepth <= 0 || maxDepth > e.solverMaxDepth {
		maxDepth = e.solverMaxDepth
	}
	return FindBestMoveSequence(state.Tableaus, state.Foundations, state.ActiveEffects, maxDepth)
}
