package http

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"lostfound-admin/internal/console/domain/model"
	"lostfound-admin/internal/shared/eventbus"
	"lostfound-admin/internal/shared/logger"

	wsclient "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wsStatsFrame struct {
	Type string               `json:"type"`
	Data model.DashboardStats `json:"data"`
}

func startDashboardServer(t *testing.T, h *DashboardWSHandler) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h.RegisterRoutes(app, "/ws/dashboard")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "ws://" + ln.Addr().String() + "/ws/dashboard"
}

func dialDashboard(t *testing.T, url string) *wsclient.Conn {
	t.Helper()

	var conn *wsclient.Conn
	var err error
	for i := 0; i < 50; i++ {
		conn, _, err = wsclient.DefaultDialer.Dial(url, nil)
		if err == nil {
			t.Cleanup(func() { conn.Close() })
			return conn
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("failed to dial dashboard stream: %v", err)
	return nil
}

func readStatsFrame(t *testing.T, conn *wsclient.Conn) wsStatsFrame {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame wsStatsFrame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func waitForClient(t *testing.T, h *DashboardWSHandler) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestDashboardWS_InitialSnapshot(t *testing.T) {
	uc := &fakeConsoleUsecase{stats: model.DashboardStats{
		TotalUsers: 4,
		LostItems:  2,
		FoundItems: 1,
	}}
	h := NewDashboardWSHandler(uc, eventbus.NewEventBus(nil), logger.NewLogger())
	conn := dialDashboard(t, startDashboardServer(t, h))

	frame := readStatsFrame(t, conn)
	assert.Equal(t, "stats", frame.Type)
	assert.Equal(t, uc.stats, frame.Data)
}

func TestDashboardWS_IdleClientStaysConnected(t *testing.T) {
	uc := &fakeConsoleUsecase{stats: model.DashboardStats{TotalUsers: 1}}
	bus := eventbus.NewEventBus(nil)
	h := NewDashboardWSHandler(uc, bus, logger.NewLogger())
	h.heartbeatInterval = 20 * time.Millisecond
	h.connectionTimeout = 100 * time.Millisecond
	conn := dialDashboard(t, startDashboardServer(t, h))

	readStatsFrame(t, conn)
	waitForClient(t, h)

	// The client never writes; its default ping handler answers the server's
	// pings, which is what keeps the session alive.
	frames := make(chan wsStatsFrame, 8)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	go func() {
		for {
			var f wsStatsFrame
			if err := conn.ReadJSON(&f); err != nil {
				close(frames)
				return
			}
			frames <- f
		}
	}()

	// Sit quiet for several full deadline windows.
	time.Sleep(400 * time.Millisecond)
	require.Equal(t, 1, h.ClientCount(), "idle client must outlive the read deadline")

	require.NoError(t, bus.Publish(context.Background(),
		eventbus.NewBasicEvent(eventbus.EventTypeItemDeleted, nil)))

	select {
	case f, ok := <-frames:
		require.True(t, ok, "stream closed before the broadcast arrived")
		assert.Equal(t, "stats", f.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no stats frame after the idle period")
	}
}

func TestDashboardWS_ConcurrentBroadcasts(t *testing.T) {
	uc := &fakeConsoleUsecase{stats: model.DashboardStats{SuccessfulMatches: 3}}
	h := NewDashboardWSHandler(uc, eventbus.NewEventBus(nil), logger.NewLogger())
	conn := dialDashboard(t, startDashboardServer(t, h))

	readStatsFrame(t, conn)
	waitForClient(t, h)

	const broadcasts = 5
	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.broadcastStats(context.Background())
		}()
	}

	for i := 0; i < broadcasts; i++ {
		frame := readStatsFrame(t, conn)
		assert.Equal(t, "stats", frame.Type)
		assert.Equal(t, uc.stats, frame.Data)
	}

	wg.Wait()
	assert.Equal(t, 1, h.ClientCount())
}
