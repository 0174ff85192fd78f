package realtime

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/nur-collective/siyam/internal/http/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected group-view sockets and broadcasts feed events
// to all of them.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*client]struct{}),
	}
}

// Run owns the client set; it exits when ctx is cancelled and closes
// every connection on the way out.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			log.Info().Int("clients", len(h.clients)).Msg("group feed client connected")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				close(c.send)
				delete(h.clients, c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow consumer, drop it
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// Broadcast queues an event for every connected client. Never blocks;
// if the hub is saturated or not running the event is dropped and
// logged, consistent with the feed being best-effort.
func (h *Hub) Broadcast(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal feed event")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		log.Warn().Str("type", ev.Type).Msg("feed broadcast dropped")
	}
}

// HandleWS upgrades GET /live. Browsers cannot set an
// Authorization header on a websocket, so the JWT rides in the token
// query parameter.
func (h *Hub) HandleWS(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		userID, err := middleware.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error().Err(err).Msg("websocket upgrade failed")
			return
		}

		cl := &client{conn: conn, send: make(chan []byte, 16)}
		h.register <- cl
		log.Info().Int("user_id", userID).Msg("websocket connected")

		go func() {
			for msg := range cl.send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			conn.Close()
		}()

		go func() {
			defer func() {
				h.unregister <- cl
				conn.Close()
				log.Info().Int("user_id", userID).Msg("websocket disconnected")
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
