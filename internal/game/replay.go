package game

import "sync"

// Replay records sequential GameState snapshots for playback. The
// recorded states are the same immutable values the engine hands out,
// so recording is cheap and navigation never copies.
type Replay struct {
	GameID       string
	States       []*GameState
	CurrentIndex int
	mu           sync.RWMutex
}

// NewReplay creates an empty replay for a game session.
func NewReplay(gameID string) *Replay {
	return &Replay{
		GameID: gameID,
		States: make([]*GameState, 0),
	}
}

// RecordState appends a snapshot.
func (r *Replay) RecordState(s *GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.States = append(r.States, s)
}

// Start resets playback to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CurrentIndex = 0
}

// Next advances playback and returns the state, or nil at the end.
func (r *Replay) Next() *GameState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex < len(r.States) {
		s := r.States[r.CurrentIndex]
		r.CurrentIndex++
		return s
	}
	return nil
}

// Previous steps playback back and returns the state, or nil at the
// beginning.
func (r *Replay) Previous() *GameState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return r.States[r.CurrentIndex]
	}
	return nil
}

// Skip advances playback by count states and returns the last one
// reached, or nil when already at the end.
func (r *Replay) Skip(count int) *GameState {
	r.mu.Lock()
	defer r.mu.Unlock()

	var last *GameState
	for i := 0; i < count && r.CurrentIndex < len(r.States); i++ {
		last = r.States[r.CurrentIndex]
		r.CurrentIndex++
	}
	return last
}

// Len returns the number of recorded states.
func (r *Replay) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.States)
}
