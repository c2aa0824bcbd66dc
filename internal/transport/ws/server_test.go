package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosocial-realtime/internal/chat/handler"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/config"
)

type fakeAuth struct{}

func (fakeAuth) Authenticate(r *http.Request) (common.Identity, error) {
	if r.URL.Query().Get("token") == "good" {
		return common.Identity{UserID: 1, Handle: "alice"}, nil
	}
	return common.Identity{}, common.ErrAuthentication
}

// echoHub sends every inbound frame straight back to its sender.
type echoHub struct {
	mu           sync.Mutex
	conns        []*handler.Connection
	frames       int
	refuse       error
	disconnected chan *handler.Connection
}

func newEchoHub() *echoHub {
	return &echoHub{disconnected: make(chan *handler.Connection, 8)}
}

func (h *echoHub) OnConnect(_ context.Context, c *handler.Connection) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.refuse != nil {
		return h.refuse
	}
	h.conns = append(h.conns, c)
	return nil
}

func (h *echoHub) OnDisconnect(_ context.Context, c *handler.Connection) {
	c.Close()
	h.disconnected <- c
}

func (h *echoHub) HandleFrame(_ context.Context, c *handler.Connection, data []byte) error {
	h.mu.Lock()
	h.frames++
	h.mu.Unlock()
	c.Send(data)
	return nil
}

func (h *echoHub) frameCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

func testRealtimeConfig() config.RealtimeConfig {
	return config.RealtimeConfig{
		SendBuffer:      8,
		PingPeriod:      time.Second,
		PongWait:        2 * time.Second,
		WriteWait:       time.Second,
		MaxFrameBytes:   1024,
		FramesPerSecond: 1000,
		FrameBurst:      1000,
		AllowedOrigins:  "*",
	}
}

func startServer(t *testing.T, hub Hub, cfg config.RealtimeConfig) (string, func()) {
	t.Helper()
	srv := NewServer(hub, fakeAuth{}, cfg, nil, nil)
	ts := httptest.NewServer(srv)
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	return url, func() {
		ts.Close()
		srv.Close()
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial(url+"/?token=good", nil)
	require.NoError(t, err)
	return c
}

func waitDisconnect(t *testing.T, h *echoHub) *handler.Connection {
	t.Helper()
	select {
	case c := <-h.disconnected:
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("OnDisconnect was not called")
		return nil
	}
}

func TestServer_RejectsBeforeUpgrade(t *testing.T) {
	hub := newEchoHub()
	url, stop := startServer(t, hub, testRealtimeConfig())
	defer stop()

	_, resp, err := websocket.DefaultDialer.Dial(url+"/?token=bad", nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, hub.conns)
}

func TestServer_RoundTripAndDisconnect(t *testing.T) {
	hub := newEchoHub()
	url, stop := startServer(t, hub, testRealtimeConfig())
	defer stop()

	client := dial(t, url)

	frame := []byte(`{"kind":"typing","isTyping":true,"recipientId":2}`)
	require.NoError(t, client.WriteMessage(websocket.TextMessage, frame))

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, got, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, frame, got)

	require.NoError(t, client.Close())
	conn := waitDisconnect(t, hub)
	assert.Equal(t, int64(1), conn.UserID)
	assert.Equal(t, "alice", conn.UserName)
}

func TestServer_RateLimitDropsExcessFrames(t *testing.T) {
	cfg := testRealtimeConfig()
	cfg.FramesPerSecond = 0.001
	cfg.FrameBurst = 1

	hub := newEchoHub()
	url, stop := startServer(t, hub, cfg)
	defer stop()

	client := dial(t, url)
	defer client.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte(`{"kind":"typing"}`)))
	}

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := client.ReadMessage()
	require.NoError(t, err)

	_ = client.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = client.ReadMessage()
	assert.Error(t, err, "only the first frame fits the burst")
	assert.Equal(t, 1, hub.frameCount())
}

// slowHub holds every frame for delay before echoing it.
type slowHub struct {
	*echoHub
	delay time.Duration
}

func (h *slowHub) HandleFrame(ctx context.Context, c *handler.Connection, data []byte) error {
	time.Sleep(h.delay)
	return h.echoHub.HandleFrame(ctx, c, data)
}

func TestServer_SlowFrameHandlingKeepsConnectionAlive(t *testing.T) {
	cfg := testRealtimeConfig()
	cfg.PongWait = 300 * time.Millisecond
	cfg.PingPeriod = time.Minute

	hub := &slowHub{echoHub: newEchoHub(), delay: 500 * time.Millisecond}
	url, stop := startServer(t, hub, cfg)
	defer stop()

	client := dial(t, url)
	defer client.Close()

	for i := 0; i < 2; i++ {
		frame := []byte(`{"kind":"typing","isTyping":true,"recipientId":2}`)
		require.NoError(t, client.WriteMessage(websocket.TextMessage, frame))

		_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, got, err := client.ReadMessage()
		require.NoError(t, err, "frame %d", i)
		assert.Equal(t, frame, got)
	}
	assert.Equal(t, 2, hub.frameCount())
}

func TestServer_OversizedFrameClosesConnection(t *testing.T) {
	cfg := testRealtimeConfig()
	cfg.MaxFrameBytes = 16

	hub := newEchoHub()
	url, stop := startServer(t, hub, cfg)
	defer stop()

	client := dial(t, url)
	defer client.Close()

	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte(strings.Repeat("x", 100))))

	waitDisconnect(t, hub)
	assert.Zero(t, hub.frameCount())
}

func TestServer_ClosedConnectionClosesSocket(t *testing.T) {
	hub := newEchoHub()
	url, stop := startServer(t, hub, testRealtimeConfig())
	defer stop()

	client := dial(t, url)
	defer client.Close()

	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.conns) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.mu.Lock()
	hub.conns[0].Close()
	hub.mu.Unlock()

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := client.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
	waitDisconnect(t, hub)
}

func TestServer_HubRefusal(t *testing.T) {
	hub := newEchoHub()
	hub.refuse = handler.ErrHubClosed
	url, stop := startServer(t, hub, testRealtimeConfig())
	defer stop()

	client := dial(t, url)
	defer client.Close()

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := client.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestServer_CheckOrigin(t *testing.T) {
	cfg := testRealtimeConfig()
	cfg.AllowedOrigins = "https://app.example"

	hub := newEchoHub()
	url, stop := startServer(t, hub, cfg)
	defer stop()

	_, resp, err := websocket.DefaultDialer.Dial(url+"/?token=good", http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	ok, _, err := websocket.DefaultDialer.Dial(url+"/?token=good", http.Header{"Origin": {"https://app.example"}})
	require.NoError(t, err)
	ok.Close()
}
