package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"gosocial-realtime/internal/chat/delta"
	"gosocial-realtime/internal/chat/service"
	"gosocial-realtime/internal/common"
	applog "gosocial-realtime/internal/logger"
	"gosocial-realtime/internal/metrics"
)

// Members answers group membership for history reads.
type Members interface {
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Deps is everything the REST surface reads from.
type Deps struct {
	Sync    delta.Engine
	Store   service.MessageStore
	Groups  Members
	Auth    common.RequestAuthenticator
	Metrics *metrics.Metrics

	// WS serves the websocket upgrade; it authenticates on its own.
	WS  http.Handler
	Log *slog.Logger
}

// NewRouter mounts the public probes, the websocket endpoint and the
// authenticated sync and history routes.
func NewRouter(d Deps) *mux.Router {
	log := applog.OrDefault(d.Log).With("component", "http")
	h := &Handlers{
		sync:    d.Sync,
		store:   d.Store,
		groups:  d.Groups,
		metrics: d.Metrics,
		log:     log,
	}

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware(log))

	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)
	router.Handle("/metrics", d.Metrics.Handler()).Methods(http.MethodGet)
	if d.WS != nil {
		router.Handle("/ws", d.WS).Methods(http.MethodGet)
	}

	api := router.NewRoute().Subrouter()
	api.Use(common.HTTPAuth(d.Auth))
	api.HandleFunc("/sync", h.GetDelta).Methods(http.MethodGet)

	messages := api.PathPrefix("/messages").Subrouter()
	messages.HandleFunc("/direct/{partnerId:[0-9]+}", h.GetDirectMessages).Methods(http.MethodGet)
	messages.HandleFunc("/group/{groupId:[0-9]+}", h.GetGroupMessages).Methods(http.MethodGet)
	messages.HandleFunc("/{messageId}", h.DeleteMessage).Methods(http.MethodDelete)

	return router
}
