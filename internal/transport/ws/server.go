// Package ws serves realtime connections over gorilla/websocket and hands
// decoded traffic to the connection hub.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"gosocial-realtime/internal/chat/handler"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/config"
	applog "gosocial-realtime/internal/logger"
	"gosocial-realtime/internal/metrics"
)

// Hub is the part of handler.Hub the transport drives.
type Hub interface {
	OnConnect(ctx context.Context, conn *handler.Connection) error
	OnDisconnect(ctx context.Context, conn *handler.Connection)
	HandleFrame(ctx context.Context, conn *handler.Connection, data []byte) error
}

type Server struct {
	hub      Hub
	auth     common.RequestAuthenticator
	cfg      config.RealtimeConfig
	metrics  *metrics.Metrics
	log      *slog.Logger
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewServer(hub Hub, auth common.RequestAuthenticator, cfg config.RealtimeConfig, m *metrics.Metrics, log *slog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		hub:     hub,
		auth:    auth,
		cfg:     cfg,
		metrics: m,
		log:     applog.OrDefault(log).With("component", "ws"),
		ctx:     ctx,
		cancel:  cancel,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// ServeHTTP authenticates before upgrading; a rejected request never
// reaches the hub.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := s.auth.Authenticate(r)
	if err != nil {
		s.log.Info("rejected connection", "remote", r.RemoteAddr, "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	conn := handler.NewConnection(id.UserID, id.Handle, s.cfg.SendBuffer)
	if err := s.hub.OnConnect(s.ctx, conn); err != nil {
		s.log.Warn("hub refused connection", "user_id", id.UserID, "error", err)
		_ = wsConn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(s.cfg.WriteWait))
		_ = wsConn.Close()
		return
	}

	s.wg.Add(2)
	go s.writePump(wsConn, conn)
	go s.readPump(wsConn, conn)
}

func (s *Server) readPump(wsConn *websocket.Conn, conn *handler.Connection) {
	defer s.wg.Done()
	defer func() {
		s.hub.OnDisconnect(s.ctx, conn)
		_ = wsConn.Close()
	}()

	wsConn.SetReadLimit(s.cfg.MaxFrameBytes)
	_ = wsConn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	wsConn.SetPongHandler(func(string) error {
		return wsConn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	})

	limiter := rate.NewLimiter(rate.Limit(s.cfg.FramesPerSecond), s.cfg.FrameBurst)

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Info("connection read ended", "conn_id", conn.ID, "user_id", conn.UserID, "error", err)
			}
			return
		}
		if !limiter.Allow() {
			s.metrics.FrameDropped("rate_limited")
			s.log.Warn("rate limit exceeded, dropping frame", "conn_id", conn.ID, "user_id", conn.UserID)
			continue
		}
		// errors are logged by the hub; the connection stays open
		_ = s.hub.HandleFrame(s.ctx, conn, data)
		// a slow persist must not count against the peer's pong window
		_ = wsConn.SetReadDeadline(time.Now().Add(s.cfg.PongWait))
	}
}

func (s *Server) writePump(wsConn *websocket.Conn, conn *handler.Connection) {
	ticker := time.NewTicker(s.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = wsConn.Close()
		s.wg.Done()
	}()

	for {
		select {
		case data := <-conn.Outbound():
			_ = wsConn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
			if err := wsConn.WriteMessage(websocket.TextMessage, data); err != nil {
				conn.Close()
				return
			}
		case <-ticker.C:
			_ = wsConn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}
		case <-conn.Done():
			_ = wsConn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(s.cfg.WriteWait))
			return
		}
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.Origins() {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// Close cancels in-flight hub calls and waits for every pump to exit.
// Call it after the hub has closed its connections.
func (s *Server) Close() {
	s.cancel()
	s.wg.Wait()
}
