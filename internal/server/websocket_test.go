package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gardenfall/gardenfall-go/internal/config"
	"github.com/gardenfall/gardenfall-go/internal/game"
)

func dialTestGateway(t *testing.T) (*websocket.Conn, func()) {
	t.Helper()

	engine := game.NewEngine(zap.NewNop(), 0)
	gw := NewGateway(engine, config.WebSocketConfig{Address: ":0", Path: "/ws"}, zap.NewNop())

	srv := httptest.NewServer(http.HandlerFunc(gw.handleWS))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func roundTrip(t *testing.T, conn *websocket.Conn, cmd Command) Response {
	t.Helper()

	require.NoError(t, conn.WriteJSON(cmd))
	var resp Response
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestGatewayCreateAndPlay(t *testing.T) {
	conn, cleanup := dialTestGateway(t)
	defer cleanup()

	created := roundTrip(t, conn, Command{
		Type:  "create_game",
		Seed:  "gateway-test",
		Party: []string{"rowan", "maris"},
	})
	require.Equal(t, "created", created.Type)
	require.NotEmpty(t, created.GameID)
	require.NotNil(t, created.State)
	assert.Len(t, created.State.Party, 2)

	started := roundTrip(t, conn, Command{
		Type:    "start_biome",
		GameID:  created.GameID,
		BiomeID: "glade",
		Mode:    "standard",
	})
	require.Equal(t, "state", started.Type)
	require.NotNil(t, started.State)
	assert.False(t, started.Rejected)
	assert.Len(t, started.State.Tableaus, 7)

	// Out-of-range tableau index is a rejection, not an error. The
	// gateway resends the unchanged snapshot.
	rejected := roundTrip(t, conn, Command{
		Type:            "play_card",
		GameID:          created.GameID,
		TableauIndex:    99,
		FoundationIndex: 0,
	})
	require.Equal(t, "state", rejected.Type)
	assert.True(t, rejected.Rejected)
	require.NotNil(t, rejected.State)
	assert.Equal(t, started.State.Phase, rejected.State.Phase)
	for fi := range started.State.Foundations {
		assert.Len(t, rejected.State.Foundations[fi], len(started.State.Foundations[fi]))
	}
}

func TestGatewayUnknownGameAndCommand(t *testing.T) {
	conn, cleanup := dialTestGateway(t)
	defer cleanup()

	resp := roundTrip(t, conn, Command{Type: "get_state", GameID: "nope"})
	assert.Equal(t, "error", resp.Type)
	assert.Contains(t, resp.Error, "unknown game")

	resp = roundTrip(t, conn, Command{Type: "frobnicate"})
	assert.Equal(t, "error", resp.Type)
	assert.Contains(t, resp.Error, "unknown command")
}

func TestGatewayGuidance(t *testing.T) {
	conn, cleanup := dialTestGateway(t)
	defer cleanup()

	created := roundTrip(t, conn, Command{
		Type:  "create_game",
		Seed:  "guidance-test",
		Party: []string{"rowan"},
	})
	require.Equal(t, "created", created.Type)

	roundTrip(t, conn, Command{
		Type:    "start_biome",
		GameID:  created.GameID,
		BiomeID: "glade",
		Mode:    "standard",
	})

	resp := roundTrip(t, conn, Command{
		Type:     "guidance",
		GameID:   created.GameID,
		MaxDepth: 4,
	})
	assert.Equal(t, "guidance", resp.Type)
	// The sequence may be empty when no legal plays exist off the deal;
	// the command itself must still succeed.
	assert.Empty(t, resp.Error)
}
