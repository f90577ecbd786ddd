// Package server exposes the game engine over a websocket gateway.
// Clients send JSON commands and receive full GameState snapshots; the
// engine's pure-transition contract means a rejected move simply
// returns the unchanged snapshot with a rejected flag.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gardenfall/gardenfall-go/internal/config"
	"github.com/gardenfall/gardenfall-go/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Command is a client request.
type Command struct {
	Type   string `json:"type"`
	GameID string `json:"game_id,omitempty"`

	Seed    string   `json:"seed,omitempty"`
	Party   []string `json:"party,omitempty"`
	BiomeID string   `json:"biome_id,omitempty"`
	Mode    string   `json:"mode,omitempty"`

	TableauIndex    int `json:"tableau_index,omitempty"`
	FoundationIndex int `json:"foundation_index,omitempty"`
	HandIndex       int `json:"hand_index,omitempty"`
	NodeIndex       int `json:"node_index,omitempty"`
	MaxDepth        int `json:"max_depth,omitempty"`

	ActorID        string `json:"actor_id,omitempty"`
	CardID         string `json:"card_id,omitempty"`
	SlotID         string `json:"slot_id,omitempty"`
	OrimInstanceID string `json:"orim_instance_id,omitempty"`

	DefinitionID string `json:"definition_id,omitempty"`
}

// Response is a server reply.
type Response struct {
	Type     string          `json:"type"`
	GameID   string          `json:"game_id,omitempty"`
	Rejected bool            `json:"rejected,omitempty"`
	Error    string          `json:"error,omitempty"`
	State    *game.GameState `json:"state,omitempty"`
	Moves    []game.Move     `json:"moves,omitempty"`
	NoMoves  bool            `json:"no_valid_moves,omitempty"`
}

// Gateway serves websocket clients against a shared engine.
type Gateway struct {
	engine *game.Engine
	cfg    config.WebSocketConfig
	logger *zap.Logger
	server *http.Server
}

// NewGateway creates a gateway.
func NewGateway(engine *game.Engine, cfg config.WebSocketConfig, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{engine: engine, cfg: cfg, logger: logger}
}

// Serve blocks serving websocket connections until Shutdown.
func (g *Gateway) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc(g.cfg.Path, g.handleWS)

	g.server = &http.Server{Addr: g.cfg.Address, Handler: mux}
	g.logger.Info("websocket gateway listening",
		zap.String("address", g.cfg.Address),
		zap.String("path", g.cfg.Path),
	)

	err := g.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the gateway gracefully.
func (g *Gateway) Shutdown(ctx context.Context) error {
	if g.server == nil {
		return nil
	}
	return g.server.Shutdown(ctx)
}

func (g *Gateway) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	g.logger.Debug("client connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn("client read error", zap.Error(err))
			}
			return
		}

		resp := g.dispatch(cmd)
		if err := conn.WriteJSON(resp); err != nil {
			g.logger.Warn("client write error", zap.Error(err))
			return
		}
	}
}

// dispatch maps a command onto the engine's transition API.
func (g *Gateway) dispatch(cmd Command) Response {
	switch cmd.Type {
	case "create_game":
		id := g.engine.CreateGame(game.Config{
			Seed:        cmd.Seed,
			PartyDefIDs: cmd.Party,
		})
		return Response{Type: "created", GameID: id, State: g.engine.State(id)}

	case "get_state":
		state := g.engine.State(cmd.GameID)
		if state == nil {
			return errResponse(cmd, "unknown game")
		}
		return stateResponse(cmd, state, false)

	case "start_biome":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.StartBiome(cmd.GameID, cmd.BiomeID, game.BiomeMode(cmd.Mode))
		})
	case "complete_biome":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.CompleteBiome(cmd.GameID)
		})
	case "play_card":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.PlayCard(cmd.GameID, cmd.TableauIndex, cmd.FoundationIndex)
		})
	case "play_from_hand":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.PlayFromHand(cmd.GameID, cmd.HandIndex, cmd.FoundationIndex)
		})
	case "play_from_stock":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.PlayFromStock(cmd.GameID, cmd.FoundationIndex)
		})
	case "play_card_random":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.PlayCardInRandomBiome(cmd.GameID, cmd.TableauIndex, cmd.FoundationIndex)
		})
	case "play_card_node":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.PlayCardInNodeBiome(cmd.GameID, cmd.NodeIndex, cmd.FoundationIndex)
		})
	case "end_random_turn":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.EndRandomBiomeTurn(cmd.GameID)
		})
	case "rewind":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.RewindLastCard(cmd.GameID)
		})
	case "auto_solve":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.AutoSolveBiome(cmd.GameID)
		})
	case "assign_actor":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.AssignActorToQueue(cmd.GameID, cmd.DefinitionID)
		})
	case "assign_slot":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.AssignCardToMetaCardSlot(cmd.GameID, cmd.ActorID, cmd.CardID, cmd.SlotID, cmd.OrimInstanceID)
		})
	case "toggle_interaction":
		return g.transition(cmd, func() (*game.GameState, error) {
			return g.engine.ToggleInteractionMode(cmd.GameID)
		})

	case "guidance":
		moves := g.engine.Guidance(cmd.GameID, cmd.MaxDepth)
		return Response{Type: "guidance", GameID: cmd.GameID, Moves: moves}

	default:
		return errResponse(cmd, "unknown command "+cmd.Type)
	}
}

func (g *Gateway) transition(cmd Command, fn func() (*game.GameState, error)) Response {
	next, err := fn()
	if err != nil {
		return errResponse(cmd, err.Error())
	}
	if next == nil {
		// Move rejected: resend the unchanged snapshot.
		return stateResponse(cmd, g.engine.State(cmd.GameID), true)
	}
	return stateResponse(cmd, next, false)
}

func stateResponse(cmd Command, state *game.GameState, rejected bool) Response {
	return Response{
		Type:     "state",
		GameID:   cmd.GameID,
		Rejected: rejected,
		State:    state,
		NoMoves:  game.CheckNoValidMoves(state),
	}
}

func errResponse(cmd Command, msg string) Response {
	return Response{Type: "error", GameID: cmd.GameID, Error: msg}
}
