package spectator_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starfront-go/internal/adapters/spectator"
	"github.com/andrescamacho/starfront-go/internal/application/common"
	"github.com/andrescamacho/starfront-go/internal/application/turn"
	turnCommands "github.com/andrescamacho/starfront-go/internal/application/turn/commands"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

func startHub(t *testing.T) (*spectator.Hub, string) {
	t.Helper()
	hub := spectator.NewHub(8, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastsNotifications(t *testing.T) {
	// Arrange
	hub, url := startHub(t)
	a := dial(t, url)
	b := dial(t, url)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 10*time.Millisecond)

	// Act
	hub.Notify(world.Notification{Turn: 3, Ship: 7, Message: "Raider explodes", Sound: world.SoundExplosion})

	// Assert
	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Type    string                        `json:"type"`
			Payload spectator.NotificationPayload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "notification", msg.Type)
		assert.Equal(t, 3, msg.Payload.Turn)
		assert.Equal(t, 7, msg.Payload.Ship)
		assert.Equal(t, "Raider explodes", msg.Payload.Message)
		assert.Equal(t, "explosion", msg.Payload.Sound)
	}
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	// Arrange
	hub, url := startHub(t)
	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	// Act
	conn.Close()

	// Assert
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	// Arrange
	hub := spectator.NewHub(1, nil)

	// Act
	for i := 0; i < 300; i++ {
		hub.Publish("turn", map[string]int{"turn": i})
	}

	// Assert
	assert.Equal(t, 300-256, hub.Dropped())
}

func TestTurnFeed_PublishesTurnSummaries(t *testing.T) {
	// Arrange
	hub, url := startHub(t)
	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	m := common.NewMediator()
	m.Use(spectator.TurnFeed(hub))
	require.NoError(t, common.RegisterHandler[*turnCommands.AdvanceTurnCommand](m, common.HandlerFunc(
		func(ctx context.Context, request common.Request) (common.Response, error) {
			return &turnCommands.AdvanceTurnResponse{
				Report: turn.Report{Turn: 4, Destroyed: []shared.ShipID{2, 5}},
			}, nil
		})))

	// Act
	_, err := m.Send(context.Background(), &turnCommands.AdvanceTurnCommand{})
	require.NoError(t, err)

	// Assert
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg struct {
		Type    string                `json:"type"`
		Payload spectator.TurnPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "turn", msg.Type)
	assert.Equal(t, 4, msg.Payload.Turn)
	assert.Equal(t, []int{2, 5}, msg.Payload.Destroyed)
}
