package rpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"gosocial-realtime/internal/chat/delta"
	"gosocial-realtime/internal/common"
	applog "gosocial-realtime/internal/logger"
	"gosocial-realtime/internal/metrics"
)

// OnlineFilter answers presence for a batch of users.
type OnlineFilter interface {
	FilterOnline(userIDs []int64) []int64
}

// Handler serves RealtimeService to sibling services.
type Handler struct {
	UnimplementedRealtimeServiceServer

	sync     delta.Engine
	presence OnlineFilter
	metrics  *metrics.Metrics
	log      *slog.Logger
}

func NewHandler(sync delta.Engine, presence OnlineFilter, m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		sync:     sync,
		presence: presence,
		metrics:  m,
		log:      applog.OrDefault(log).With("component", "grpc"),
	}
}

// NewGRPCServer wires the handler behind logging and bearer-token auth.
// Health and reflection stay public.
func NewGRPCServer(h *Handler, auth common.TokenAuthenticator, log *slog.Logger) *grpc.Server {
	log = applog.OrDefault(log).With("component", "grpc")
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingUnaryInterceptor(log),
			common.AuthInterceptor(auth, healthpb.Health_Check_FullMethodName),
		),
		grpc.StreamInterceptor(LoggingStreamInterceptor(log)),
	)
	RegisterRealtimeServiceServer(srv, h)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return srv
}

func (h *Handler) GetDelta(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, ok := common.IdentityFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no identity")
	}

	var lastTs int64
	if v, ok := req.GetFields()["last_ts"]; ok {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue < 0 || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, status.Error(codes.InvalidArgument, "last_ts must be a non-negative integer")
		}
		lastTs = int64(n.NumberValue)
	}

	out, err := h.sync.GetDelta(ctx, id.UserID, lastTs)
	if err != nil {
		return nil, h.toStatus(err)
	}
	h.metrics.SyncServed()

	return toStruct(out)
}

func (h *Handler) FilterOnline(ctx context.Context, req *structpb.ListValue) (*structpb.ListValue, error) {
	ids := make([]int64, 0, len(req.GetValues()))
	for _, v := range req.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue <= 0 || n.NumberValue != math.Trunc(n.NumberValue) {
			return nil, status.Error(codes.InvalidArgument, "user ids must be positive integers")
		}
		ids = append(ids, int64(n.NumberValue))
	}

	online := h.presence.FilterOnline(ids)
	out := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(online))}
	for _, uid := range online {
		out.Values = append(out.Values, structpb.NewNumberValue(float64(uid)))
	}
	return out, nil
}

func (h *Handler) toStatus(err error) error {
	code := common.GRPCCode(err)
	if code == codes.Internal {
		h.log.Error("rpc failed", "error", err)
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}

// toStruct keeps the wire shape identical to the REST sync response.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}
