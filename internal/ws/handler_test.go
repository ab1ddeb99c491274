package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fantasy-auction/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newWSServer(t *testing.T) (*httptest.Server, *events.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := events.NewHub()
	router := gin.New()
	router.GET("/ws/:tournament_id", ServeTournament(hub))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)
	return srv, hub
}

func dialTournament(t *testing.T, srv *httptest.Server, tournamentID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + tournamentID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *events.Hub, tournamentID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.SubscriberCount(tournamentID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("tournament %s never reached %d subscribers", tournamentID, want)
}

func TestServeTournament_DeliversEvents(t *testing.T) {
	srv, hub := newWSServer(t)

	conn := dialTournament(t, srv, "t1")
	waitForSubscribers(t, hub, "t1", 1)

	hub.Publish("t1", events.NewNewBid("team1", 2_000_000, "alice"))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event events.NewBid
	require.NoError(t, json.Unmarshal(payload, &event))
	require.Equal(t, events.TypeNewBid, event.Type)
	require.Equal(t, "team1", event.TeamID)
	require.Equal(t, "alice", event.Username)
}

func TestServeTournament_IsolatesTournaments(t *testing.T) {
	srv, hub := newWSServer(t)

	conn1 := dialTournament(t, srv, "t1")
	conn2 := dialTournament(t, srv, "t2")
	waitForSubscribers(t, hub, "t1", 1)
	waitForSubscribers(t, hub, "t2", 1)

	hub.Publish("t2", events.NewAuctionCompleted("t2"))

	conn2.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn2.ReadMessage()
	require.NoError(t, err)

	var event events.AuctionCompleted
	require.NoError(t, json.Unmarshal(payload, &event))
	require.Equal(t, "t2", event.TournamentID)

	// The t1 observer sees nothing.
	conn1.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = conn1.ReadMessage()
	require.Error(t, err)
}

func TestServeTournament_DisconnectUnsubscribes(t *testing.T) {
	srv, hub := newWSServer(t)

	conn := dialTournament(t, srv, "t1")
	waitForSubscribers(t, hub, "t1", 1)

	conn.Close()
	waitForSubscribers(t, hub, "t1", 0)
}
