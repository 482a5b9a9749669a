package websocket

import (
	"log"
	"net/http"

	"travelindia-backend/internal/session"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		return true
	},
}

// HandleWebSocket upgrades the HTTP connection to a WebSocket. Browsers
// cannot set an Authorization header on the upgrade request, so the token
// travels as a query parameter and is verified the same way.
func HandleWebSocket(hub *Hub, provider *session.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := provider.Verify(tokenString)
		if err != nil {
			log.Printf("❌ Invalid token on WebSocket upgrade: %v", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade failed: %v", err)
			return
		}

		client := NewClient(claims.UserID, string(claims.UserType), conn, hub)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
