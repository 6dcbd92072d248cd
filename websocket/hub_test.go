package websocket

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Withdrawal events are pushed from arbitrary request goroutines; every
// write must land on the connection intact. Run with -race.
func TestHubConcurrentWrites(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	adminID := primitive.NewObjectID()

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return HandleWebSocket(c, hub, adminID, "admin")
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := gws.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var welcome Event
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, "connected", welcome.Type)
	assert.Equal(t, adminID.Hex(), welcome.UserID)

	// Registration runs through the hub loop; wait until the client is
	// reachable
	require.Eventually(t, func() bool {
		return hub.SendToUser(adminID, Event{Type: "ping"}) == nil
	}, time.Second, 10*time.Millisecond)

	const senders = 25
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.BroadcastToAdmins(Event{
				Type:    EventTypeWithdrawalRequested,
				Message: "New withdrawal request",
			})
		}()
		go func() {
			defer wg.Done()
			hub.SendToUser(adminID, Event{
				Type:    EventTypeWithdrawalProcessed,
				Message: "Withdrawal processed",
			})
		}()
	}
	wg.Wait()

	// ping + one event per sender goroutine, all decodable
	for i := 0; i < 2*senders+1; i++ {
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
	}
}

func TestHubSendToUnknownUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	err := hub.SendToUser(primitive.NewObjectID(), Event{Type: "ping"})
	assert.Error(t, err)
}
