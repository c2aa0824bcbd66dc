package rpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/presence"
)

type staticAuth struct{}

func (staticAuth) AuthenticateToken(token string) (common.Identity, error) {
	if token == "good" {
		return common.Identity{UserID: 1, Handle: "alice"}, nil
	}
	return common.Identity{}, common.ErrAuthentication
}

type fakeEngine struct {
	gotUser, gotTs int64
	delta          *models.Delta
	err            error
}

func (f *fakeEngine) GetDelta(ctx context.Context, userID, lastTs int64) (*models.Delta, error) {
	f.gotUser, f.gotTs = userID, lastTs
	return f.delta, f.err
}

func startServer(t *testing.T, engine *fakeEngine, tracker *presence.Tracker) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	srv := NewGRPCServer(NewHandler(engine, tracker, nil, nil), staticAuth{}, nil)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func authed(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestGetDelta(t *testing.T) {
	engine := &fakeEngine{delta: &models.Delta{
		Messages:   []*models.Message{{MessageID: "m1", SenderID: 2, Content: "hi", Timestamp: 1700000000123}},
		Tombstones: []models.Tombstone{},
		NextTs:     1700000000123,
		HasMore:    true,
	}}
	client := NewRealtimeServiceClient(startServer(t, engine, presence.NewTracker()))

	req, err := structpb.NewStruct(map[string]any{"last_ts": 1700000000000})
	require.NoError(t, err)

	resp, err := client.GetDelta(authed("good"), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), engine.gotUser)
	assert.Equal(t, int64(1700000000000), engine.gotTs)
	body := resp.AsMap()
	assert.Equal(t, float64(1700000000123), body["nextTs"])
	assert.Equal(t, true, body["hasMore"])
	require.Len(t, body["messages"], 1)
	first := body["messages"].([]any)[0].(map[string]any)
	assert.Equal(t, "m1", first["messageId"])
}

func TestGetDelta_Errors(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		lastTs any
		err    error
		code   codes.Code
	}{
		{name: "missing token", token: "", lastTs: 0, code: codes.Unauthenticated},
		{name: "bad token", token: "nope", lastTs: 0, code: codes.Unauthenticated},
		{name: "negative cursor", token: "good", lastTs: -1, code: codes.InvalidArgument},
		{name: "fractional cursor", token: "good", lastTs: 1.5, code: codes.InvalidArgument},
		{name: "string cursor", token: "good", lastTs: "10", code: codes.InvalidArgument},
		{name: "storage failure", token: "good", lastTs: 0, err: &common.PersistenceError{Op: "find since", Err: errors.New("x")}, code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{err: tt.err, delta: &models.Delta{}}
			client := NewRealtimeServiceClient(startServer(t, engine, presence.NewTracker()))
			req, err := structpb.NewStruct(map[string]any{"last_ts": tt.lastTs})
			require.NoError(t, err)

			ctx := context.Background()
			if tt.token != "" {
				ctx = authed(tt.token)
			}
			_, err = client.GetDelta(ctx, req)

			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestFilterOnline(t *testing.T) {
	tracker := presence.NewTracker()
	tracker.Connect(2)
	tracker.Connect(4)
	client := NewRealtimeServiceClient(startServer(t, &fakeEngine{}, tracker))

	req, err := structpb.NewList([]any{1, 2, 3, 4})
	require.NoError(t, err)

	resp, err := client.FilterOnline(authed("good"), req)

	require.NoError(t, err)
	assert.ElementsMatch(t, []any{float64(2), float64(4)}, resp.AsSlice())
}

func TestFilterOnline_RejectsNonIDs(t *testing.T) {
	client := NewRealtimeServiceClient(startServer(t, &fakeEngine{}, presence.NewTracker()))
	req, err := structpb.NewList([]any{"alice"})
	require.NoError(t, err)

	_, err = client.FilterOnline(authed("good"), req)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHealthIsPublic(t *testing.T) {
	conn := startServer(t, &fakeEngine{}, presence.NewTracker())

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
