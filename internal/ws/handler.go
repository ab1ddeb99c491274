// Package ws bridges tournament event subscriptions onto WebSocket
// connections.
package ws

import (
	"net/http"
	"time"

	"fantasy-auction/internal/events"
	"fantasy-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeTournament returns the handler for GET /ws/:tournament_id. It
// upgrades the connection, subscribes it to the tournament's event stream
// and pumps events out until the client disconnects.
func ServeTournament(hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID := c.Param("tournament_id")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Warn("ws: upgrade failed", map[string]any{
				"tournament_id": tournamentID,
				"error":         err.Error(),
			})
			return
		}

		sub := hub.Subscribe(tournamentID)
		clientID := utils.GenerateID()
		utils.Info("ws: observer connected", map[string]any{
			"tournament_id": tournamentID,
			"client_id":     clientID,
		})

		go writePump(conn, sub)

		// Read loop exists only to notice the client going away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unsubscribe(sub)
		conn.Close()
		utils.Info("ws: observer disconnected", map[string]any{
			"tournament_id": tournamentID,
			"client_id":     clientID,
		})
	}
}

// writePump forwards hub messages to the socket until the subscription
// channel closes. A write failure just ends the pump; the read loop will
// observe the broken connection.
func writePump(conn *websocket.Conn, sub *events.Subscription) {
	for message := range sub.C {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	conn.WriteMessage(websocket.CloseMessage, []byte{})
}
