package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/wire"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"gorm.io/gorm"

	"gosocial-realtime/internal/api"
	"gosocial-realtime/internal/chat/delta"
	"gosocial-realtime/internal/chat/handler"
	"gosocial-realtime/internal/chat/repository"
	"gosocial-realtime/internal/chat/service"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/config"
	"gosocial-realtime/internal/dbmongo"
	"gosocial-realtime/internal/dbmysql"
	"gosocial-realtime/internal/logger"
	"gosocial-realtime/internal/metrics"
	"gosocial-realtime/internal/presence"
	"gosocial-realtime/internal/rpc"
	"gosocial-realtime/internal/social"
	"gosocial-realtime/internal/transport/ws"
)

// Application is everything cmd/realtime-svc serves.
type Application struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB
	Hub     *handler.Hub
	WS      *ws.Server
	Router  *mux.Router
	GRPC    *grpc.Server
	Metrics *metrics.Metrics
}

var storageSet = wire.NewSet(
	ProvideDatabase,
	repository.NewMessageRepository,
	ProvideTombstones,
	social.NewFriendGraph,
	social.NewGroupDirectory,
)

var realtimeSet = wire.NewSet(
	ProvideClock,
	service.NewMessageStore,
	ProvideSyncEngine,
	presence.NewTracker,
	ProvideHub,
	ProvideWSServer,
)

var surfaceSet = wire.NewSet(
	ProvideJWT,
	ProvideRouter,
	ProvideGRPCServer,
)

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	log, closer, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(log)
	return log, func() { closer.Close() }, nil
}

func ProvideMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// ProvideDatabase connects and migrates before anything reads the schema;
// the clock seed queries the messages table.
func ProvideDatabase(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return prepareDatabase(db, dbmysql.Migrate, log)
}

func prepareDatabase(db *gorm.DB, migrate func(*gorm.DB) error, log *slog.Logger) (*gorm.DB, func(), error) {
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if err := migrate(db); err != nil {
		cleanup()
		return nil, nil, err
	}
	log.Info("database migration completed")
	return db, cleanup, nil
}

// ProvideTombstones picks the deletion log backend from TOMBSTONE_BACKEND.
func ProvideTombstones(cfg *config.Config, db *gorm.DB, log *slog.Logger) (repository.TombstoneRepository, func(), error) {
	if !cfg.UseMongoTombstones() {
		return repository.NewTombstoneRepository(db), func() {}, nil
	}

	client, err := dbmongo.NewMongoConnection(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Close(ctx)
	}

	store := client.Tombstones(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return store, cleanup, nil
}

// ProvideClock seeds the store clock past every stored timestamp so a
// restart never reissues one.
func ProvideClock(messages repository.MessageRepository, log *slog.Logger) (*service.Clock, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	latest, err := messages.LatestTimestamp(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed clock: %w", err)
	}
	clock := service.NewClock(time.Now)
	clock.Advance(latest)
	log.Info("store clock seeded", "latest_ts", latest)
	return clock, nil
}

func ProvideSyncEngine(messages repository.MessageRepository, tombstones repository.TombstoneRepository, groups social.GroupDirectory, clock *service.Clock, cfg *config.Config, log *slog.Logger) delta.Engine {
	return delta.NewEngine(messages, tombstones, groups, clock, cfg.Sync.PageSize, log)
}

func ProvideHub(store service.MessageStore, friends social.FriendGraph, groups social.GroupDirectory, tracker *presence.Tracker, m *metrics.Metrics, log *slog.Logger) *handler.Hub {
	return handler.NewHub(store, friends, groups, tracker, m, log)
}

func ProvideJWT(cfg *config.Config) (*common.JWT, error) {
	return common.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
}

func ProvideWSServer(hub *handler.Hub, auth *common.JWT, cfg *config.Config, m *metrics.Metrics, log *slog.Logger) *ws.Server {
	return ws.NewServer(hub, auth, cfg.Realtime, m, log)
}

func ProvideRouter(engine delta.Engine, store service.MessageStore, groups social.GroupDirectory, auth *common.JWT, m *metrics.Metrics, wsServer *ws.Server, log *slog.Logger) *mux.Router {
	return api.NewRouter(api.Deps{
		Sync:    engine,
		Store:   store,
		Groups:  groups,
		Auth:    auth,
		Metrics: m,
		WS:      wsServer,
		Log:     log,
	})
}

func ProvideGRPCServer(engine delta.Engine, tracker *presence.Tracker, auth *common.JWT, m *metrics.Metrics, log *slog.Logger) *grpc.Server {
	return rpc.NewGRPCServer(rpc.NewHandler(engine, tracker, m, log), auth, log)
}
