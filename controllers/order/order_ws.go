package orderControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lukwagoraymond/duzol-pharma/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed pushes order events to connected vendor dashboards. Every event
// goes to every client; filtering by vendor happens client-side.
type Feed struct {
	Logger *zap.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed(logger *zap.Logger) *Feed {
	return &Feed{
		Logger:  logger,
		clients: make(map[*websocket.Conn]bool),
	}
}

// GET /ws/orders
func (f *Feed) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			f.Logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		f.mu.Lock()
		f.clients[conn] = true
		f.mu.Unlock()

		// The read loop exists only to observe the close.
		go func() {
			defer func() {
				f.mu.Lock()
				delete(f.clients, conn)
				f.mu.Unlock()
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}

// Broadcast sends the order to all connected clients. A client whose
// write fails is dropped.
func (f *Feed) Broadcast(order models.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteJSON(order); err != nil {
			delete(f.clients, conn)
			conn.Close()
		}
	}
}
