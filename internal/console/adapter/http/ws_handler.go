package http

import (
	"context"
	"sync"
	"time"

	"lostfound-admin/internal/console/usecase"
	"lostfound-admin/internal/shared/eventbus"
	"lostfound-admin/internal/shared/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const wsWriteTimeout = 10 * time.Second

// DashboardWSHandler streams dashboard statistics to connected staff clients.
// Each client receives a snapshot on connect and a fresh one whenever an item
// is deleted or a user status changes.
type DashboardWSHandler struct {
	usecase usecase.ConsoleUsecaseInterface
	bus     eventbus.EventBusInterface
	log     logger.Logger

	heartbeatInterval time.Duration
	connectionTimeout time.Duration

	mu      sync.Mutex
	clients map[string]*dashboardClient
	once    sync.Once
}

// dashboardClient serializes writes to one connection. The snapshot push, the
// event broadcast and the keepalive ping run on separate goroutines, and the
// underlying conn allows only a single writer at a time.
type dashboardClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *dashboardClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteJSON(v)
}

func (c *dashboardClient) writePing() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// NewDashboardWSHandler creates a new dashboard WebSocket handler.
func NewDashboardWSHandler(
	uc usecase.ConsoleUsecaseInterface,
	bus eventbus.EventBusInterface,
	log logger.Logger,
) *DashboardWSHandler {
	return &DashboardWSHandler{
		usecase:           uc,
		bus:               bus,
		log:               log,
		heartbeatInterval: 30 * time.Second,
		connectionTimeout: 90 * time.Second,
		clients:           make(map[string]*dashboardClient),
	}
}

// RegisterRoutes registers the dashboard WebSocket endpoint at path.
func (h *DashboardWSHandler) RegisterRoutes(router fiber.Router, path string) {
	h.once.Do(h.subscribe)

	router.Use(path, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	router.Get(path, websocket.New(h.handleConnection))
}

// subscribe wires the handler to console events once.
func (h *DashboardWSHandler) subscribe() {
	handler := func(ctx context.Context, event eventbus.Event) error {
		h.broadcastStats(ctx)
		return nil
	}
	h.bus.Subscribe(eventbus.EventTypeItemDeleted, handler)
	h.bus.Subscribe(eventbus.EventTypeUserStatusChanged, handler)
}

// statsMessage is the frame pushed to dashboard clients.
type statsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// handleConnection is called for each new dashboard client.
func (h *DashboardWSHandler) handleConnection(conn *websocket.Conn) {
	clientID := uuid.NewString()
	client := &dashboardClient{conn: conn}

	// The snapshot goes out before the client is visible to broadcasts, so
	// the first frame a client reads is always the snapshot.
	stats := h.usecase.DashboardStats(context.Background())
	if err := client.writeJSON(statsMessage{Type: "stats", Data: stats}); err != nil {
		h.log.Error("Failed to send initial stats",
			zap.String("clientID", clientID),
			zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[clientID] = client
	h.mu.Unlock()

	h.log.Info("Dashboard client connected", zap.String("clientID", clientID))

	done := make(chan struct{})
	defer func() {
		close(done)
		h.mu.Lock()
		delete(h.clients, clientID)
		h.mu.Unlock()
		h.log.Info("Dashboard client disconnected", zap.String("clientID", clientID))
	}()

	go h.keepAlive(clientID, client, done)

	// Dashboards only listen, so pongs are the liveness signal: each one
	// refreshes the read deadline before the next ping is due.
	conn.SetReadDeadline(time.Now().Add(h.connectionTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.connectionTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Error("Dashboard WebSocket error",
					zap.String("clientID", clientID),
					zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.connectionTimeout))
	}
}

// keepAlive pings the client until the read loop exits.
func (h *DashboardWSHandler) keepAlive(clientID string, client *dashboardClient, done <-chan struct{}) {
	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.writePing(); err != nil {
				h.log.Warn("Failed to ping dashboard client",
					zap.String("clientID", clientID),
					zap.Error(err))
				client.conn.Close()
				return
			}
		}
	}
}

// broadcastStats pushes a fresh snapshot to every connected client.
func (h *DashboardWSHandler) broadcastStats(ctx context.Context) {
	stats := h.usecase.DashboardStats(ctx)
	msg := statsMessage{Type: "stats", Data: stats}

	h.mu.Lock()
	targets := make(map[string]*dashboardClient, len(h.clients))
	for clientID, client := range h.clients {
		targets[clientID] = client
	}
	h.mu.Unlock()

	for clientID, client := range targets {
		if err := client.writeJSON(msg); err != nil {
			h.log.Error("Failed to push stats to client",
				zap.String("clientID", clientID),
				zap.Error(err))
			client.conn.Close()
			h.mu.Lock()
			delete(h.clients, clientID)
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected dashboard clients.
func (h *DashboardWSHandler) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
