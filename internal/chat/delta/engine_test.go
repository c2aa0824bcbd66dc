package delta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gosocial-realtime/internal/chat/delta/mocks"
	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/dbmysql"
)

type deps struct {
	messages   *mocks.MockMessageRepository
	tombstones *mocks.MockTombstoneRepository
	groups     *mocks.MockGroupLister
	clock      *mocks.MockWatermarker
}

func newEngine(t *testing.T, pageSize int) (Engine, deps) {
	ctrl := gomock.NewController(t)
	d := deps{
		messages:   mocks.NewMockMessageRepository(ctrl),
		tombstones: mocks.NewMockTombstoneRepository(ctrl),
		groups:     mocks.NewMockGroupLister(ctrl),
		clock:      mocks.NewMockWatermarker(ctrl),
	}
	return NewEngine(d.messages, d.tombstones, d.groups, d.clock, pageSize, nil), d
}

func ptr(v int64) *int64 { return &v }

func direct(id string, from, to, ts int64) *dbmysql.Message {
	return &dbmysql.Message{MessageID: id, SenderID: from, ReceiverID: ptr(to), Content: id, MessageType: "text", Timestamp: ts}
}

func group(id string, from, gid, ts int64) *dbmysql.Message {
	return &dbmysql.Message{MessageID: id, SenderID: from, GroupID: ptr(gid), Content: id, MessageType: "text", Timestamp: ts}
}

func TestEngine_GetDelta_OfflineUserGetsEverything(t *testing.T) {
	e, d := newEngine(t, 10)

	d.clock.EXPECT().Watermark().Return(int64(5_000))
	d.groups.EXPECT().GroupIDsForUser(gomock.Any(), int64(2)).Return(nil, nil)
	d.messages.EXPECT().
		FindSince(gomock.Any(), int64(2), gomock.Nil(), int64(0), int64(5_000), 11).
		Return([]*dbmysql.Message{
			direct("m1", 1, 2, 100),
			direct("m2", 1, 2, 200),
			direct("m3", 3, 2, 300),
		}, nil)
	d.tombstones.EXPECT().Since(gomock.Any(), int64(0), int64(5_000)).Return(nil, nil)

	got, err := e.GetDelta(context.Background(), 2, 0)
	require.NoError(t, err)

	require.Len(t, got.Messages, 3)
	assert.Equal(t, "m1", got.Messages[0].MessageID)
	assert.Equal(t, "m3", got.Messages[2].MessageID)
	assert.GreaterOrEqual(t, got.NextTs, got.Messages[2].Timestamp)
	assert.False(t, got.HasMore)
	assert.NotNil(t, got.Tombstones)
}

func TestEngine_GetDelta_SkipsMalformedRows(t *testing.T) {
	e, d := newEngine(t, 10)

	d.clock.EXPECT().Watermark().Return(int64(1_000))
	d.groups.EXPECT().GroupIDsForUser(gomock.Any(), int64(1)).Return([]int64{7}, nil)
	d.messages.EXPECT().
		FindSince(gomock.Any(), int64(1), []int64{7}, int64(10), int64(1_000), 11).
		Return([]*dbmysql.Message{
			direct("ok-direct", 1, 2, 20),
			{MessageID: "orphan", SenderID: 1, Timestamp: 30},
			{MessageID: "both", SenderID: 1, ReceiverID: ptr(2), GroupID: ptr(7), Timestamp: 35},
			group("ok-group", 4, 7, 40),
		}, nil)
	d.tombstones.EXPECT().Since(gomock.Any(), int64(10), int64(1_000)).
		Return([]models.Tombstone{{ItemID: "gone", ItemType: models.ItemTypeMessage, DeletedAt: 50}}, nil)

	got, err := e.GetDelta(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "ok-direct", got.Messages[0].MessageID)
	assert.Equal(t, int64(7), got.Messages[1].GroupID)
	assert.Len(t, got.Tombstones, 1)
}

func TestEngine_GetDelta_Paging(t *testing.T) {
	e, d := newEngine(t, 2)

	d.clock.EXPECT().Watermark().Return(int64(9_999))
	d.groups.EXPECT().GroupIDsForUser(gomock.Any(), int64(2)).Return(nil, nil)
	d.messages.EXPECT().
		FindSince(gomock.Any(), int64(2), gomock.Any(), int64(0), int64(9_999), 3).
		Return([]*dbmysql.Message{
			direct("m1", 1, 2, 100),
			direct("m2", 1, 2, 200),
			direct("m3", 1, 2, 300),
		}, nil)
	d.tombstones.EXPECT().Since(gomock.Any(), int64(0), int64(200)).Return(nil, nil)

	got, err := e.GetDelta(context.Background(), 2, 0)
	require.NoError(t, err)

	assert.True(t, got.HasMore)
	assert.Equal(t, int64(200), got.NextTs)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "m2", got.Messages[1].MessageID)
}

func TestEngine_GetDelta_CursorAhead(t *testing.T) {
	e, d := newEngine(t, 10)
	d.clock.EXPECT().Watermark().Return(int64(100))

	got, err := e.GetDelta(context.Background(), 2, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(500), got.NextTs)
	assert.Empty(t, got.Messages)
	assert.False(t, got.HasMore)
}

func TestEngine_GetDelta_Errors(t *testing.T) {
	t.Run("negative cursor", func(t *testing.T) {
		e, _ := newEngine(t, 10)
		_, err := e.GetDelta(context.Background(), 2, -1)
		assert.True(t, errors.Is(err, common.ErrValidation))
	})

	t.Run("group lookup fails", func(t *testing.T) {
		e, d := newEngine(t, 10)
		d.clock.EXPECT().Watermark().Return(int64(100))
		d.groups.EXPECT().GroupIDsForUser(gomock.Any(), int64(2)).Return(nil, errors.New("down"))

		_, err := e.GetDelta(context.Background(), 2, 0)
		assert.True(t, common.IsPersistence(err))
	})

	t.Run("message query fails", func(t *testing.T) {
		e, d := newEngine(t, 10)
		d.clock.EXPECT().Watermark().Return(int64(100))
		d.groups.EXPECT().GroupIDsForUser(gomock.Any(), int64(2)).Return(nil, nil)
		d.messages.EXPECT().FindSince(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("down"))

		_, err := e.GetDelta(context.Background(), 2, 0)
		assert.True(t, common.IsPersistence(err))
	})
}
