// Package repository persists game saves in Postgres. The stored shape
// is the GameState data model serialized verbatim as JSON, alongside
// its deterministic checksum for integrity verification on load.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/gardenfall/gardenfall-go/internal/config"
	"github.com/gardenfall/gardenfall-go/internal/game"
)

// NewDB opens a pgx connection pool from config.
func NewDB(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("repository: parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("repository: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository: ping: %w", err)
	}

	logger.Info("database pool opened", zap.Int32("max_conns", poolCfg.MaxConns))
	return pool, nil
}

const savesSchema = `
CREATE TABLE IF NOT EXISTS saves (
    game_id    TEXT PRIMARY KEY,
    state      JSONB NOT NULL,
    checksum   TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SaveStore reads and writes game saves.
type SaveStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewSaveStore creates a store over an open pool.
func NewSaveStore(pool *pgxpool.Pool, logger *zap.Logger) *SaveStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaveStore{pool: pool, logger: logger}
}

// EnsureSchema creates the saves table when missing.
func (s *SaveStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, savesSchema); err != nil {
		return fmt.Errorf("repository: ensure schema: %w", err)
	}
	return nil
}

// Save upserts a game's state together with its checksum.
func (s *SaveStore) Save(ctx context.Context, gameID string, state *game.GameState) error {
	if state == nil {
		return fmt.Errorf("repository: cannot save nil state")
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("repository: marshal state: %w", err)
	}
	sum, err := game.ComputeChecksum(state)
	if err != nil {
		return fmt.Errorf("repository: checksum: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO saves (game_id, state, checksum, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (game_id)
		DO UPDATE SET state = EXCLUDED.state, checksum = EXCLUDED.checksum, updated_at = now()`,
		gameID, payload, sum.Hash,
	)
	if err != nil {
		return fmt.Errorf("repository: save %s: %w", gameID, err)
	}

	s.logger.Debug("game saved",
		zap.String("game_id", gameID),
		zap.String("checksum", sum.Hash[:12]),
	)
	return nil
}

// Load reads a game's state and verifies the stored checksum against a
// recomputed one, guarding against divergence or corruption.
func (s *SaveStore) Load(ctx context.Context, gameID string) (*game.GameState, error) {
	var payload []byte
	var storedSum string
	err := s.pool.QueryRow(ctx,
		`SELECT state, checksum FROM saves WHERE game_id = $1`, gameID,
	).Scan(&payload, &storedSum)
	if err != nil {
		return nil, fmt.Errorf("repository: load %s: %w", gameID, err)
	}

	var state game.GameState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("repository: unmarshal %s: %w", gameID, err)
	}

	sum, err := game.ComputeChecksum(&state)
	if err != nil {
		return nil, fmt.Errorf("repository: checksum %s: %w", gameID, err)
	}
	if sum.Hash != storedSum {
		return nil, fmt.Errorf("repository: checksum mismatch for %s", gameID)
	}

	return &state, nil
}

// Delete removes a save.
func (s *SaveStore) Delete(ctx context.Context, gameID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM saves WHERE game_id = $1`, gameID); err != nil {
		return fmt.Errorf("repository: delete %s: %w", gameID, err)
	}
	return nil
}
