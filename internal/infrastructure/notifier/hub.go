package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

const writeTimeout = 5 * time.Second

// client is one open websocket subscription.
type client struct {
	userID string
	conn   *websocket.Conn
}

// Hub fans notifications out to connected websocket clients. Delivery
// is best effort: a failed write drops the client, nothing is queued.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	logger  *logger.Logger
}

// NewHub creates a new notification hub
func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

var _ domain.Notifier = (*Hub)(nil)

// Publish sends the event to its target users, or to everyone when no
// targets are named.
func (h *Hub) Publish(event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal notification event",
			zap.String("type", string(event.Type)),
			zap.Error(err))
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		if len(event.UserIDs) == 0 || containsID(event.UserIDs, c.userID) {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		go h.send(c, payload)
	}
}

func (h *Hub) send(c *client, payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := c.conn.Write(ctx, websocket.MessageText, payload); err != nil {
		h.logger.Debug("Dropping websocket client after failed write",
			zap.String("user_id", c.userID),
			zap.Error(err))
		h.remove(c)
		_ = c.conn.Close(websocket.StatusPolicyViolation, "write failed")
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ConnectionCount reports the number of open subscriptions.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleConnection upgrades the request and keeps the subscription open
// until the peer goes away. Blocks for the connection's lifetime.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	c := &client{userID: userID, conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("Websocket client connected", zap.String("user_id", userID))

	// Drain the read side; clients only listen.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			break
		}
	}

	h.remove(c)
	_ = conn.Close(websocket.StatusNormalClosure, "")
	h.logger.Debug("Websocket client disconnected", zap.String("user_id", userID))
	return nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
