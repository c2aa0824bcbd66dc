package protocol

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/common"
)

func TestDecode_ClientKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, f Frame)
	}{
		{
			name:  "direct chat",
			input: `{"kind":"chat","cid":"c1","content":"hi","recipientId":2}`,
			check: func(t *testing.T, f Frame) {
				c, ok := f.(*Chat)
				require.True(t, ok)
				assert.Equal(t, "c1", c.CID)
				assert.Equal(t, int64(2), c.RecipientID)
				assert.NoError(t, c.Validate())
			},
		},
		{
			name:  "typing",
			input: `{"kind":"typing","senderId":9,"isTyping":true,"groupId":4}`,
			check: func(t *testing.T, f Frame) {
				ty := f.(*Typing)
				assert.True(t, ty.IsTyping)
				assert.Equal(t, int64(4), ty.GroupID)
				assert.NoError(t, ty.Validate())
			},
		},
		{
			name:  "delivery status",
			input: `{"kind":"delivery_status","cid":"c1","status":"READ","userId":2,"recipientId":1}`,
			check: func(t *testing.T, f Frame) {
				d := f.(*DeliveryStatus)
				assert.Equal(t, DeliveryRead, d.Status)
				assert.NoError(t, d.Validate())
			},
		},
		{
			name:  "signal keeps payload verbatim",
			input: `{"kind":"signal","type":"OFFER","receiverId":3,"payload":{"sdp":"v=0"}}`,
			check: func(t *testing.T, f Frame) {
				s := f.(*Signal)
				assert.Equal(t, SignalOffer, s.Type)
				assert.JSONEq(t, `{"sdp":"v=0"}`, string(s.Payload))
				assert.NoError(t, s.Validate())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			tt.check(t, f)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	inputs := map[string]string{
		"not json":         `{"kind":`,
		"missing kind":     `{"content":"hi"}`,
		"unknown kind":     `{"kind":"sticker"}`,
		"server-only ack":  `{"kind":"ack","id":"x","cid":"y","status":"SENT"}`,
		"server status":    `{"kind":"status","userId":1,"status":"online"}`,
		"presence list":    `{"kind":"presence_list","onlineUserIds":[1]}`,
		"wrong field type": `{"kind":"chat","recipientId":"two"}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			f, err := Decode([]byte(input))
			assert.Nil(t, f)
			assert.True(t, errors.Is(err, common.ErrMalformedFrame), "got %v", err)
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		v    interface{ Validate() error }
	}{
		{"chat without target", &Chat{Content: "x"}},
		{"chat with both targets", &Chat{Content: "x", RecipientID: 1, GroupID: 2}},
		{"chat without body", &Chat{RecipientID: 1}},
		{"chat with spaced cid", &Chat{Content: "x", RecipientID: 1, CID: "a b"}},
		{"chat with oversized messageId", &Chat{Content: "x", RecipientID: 1, MessageID: strings.Repeat("m", 65)}},
		{"typing without target", &Typing{IsTyping: true}},
		{"delivery bad status", &DeliveryStatus{CID: "c", Status: "SEEN", RecipientID: 1}},
		{"delivery without ids", &DeliveryStatus{Status: DeliveryRead, RecipientID: 1}},
		{"delivery without target", &DeliveryStatus{CID: "c", Status: DeliveryRead}},
		{"signal bad type", &Signal{Type: "RING", ReceiverID: 1}},
		{"signal without receiver", &Signal{Type: SignalOffer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.v.Validate(), common.ErrValidation))
		})
	}
}

func TestDeliveryStatus_GroupReceiptMayNameSender(t *testing.T) {
	d := &DeliveryStatus{MessageID: "srv-g", Status: DeliveryRead, RecipientID: 1, GroupID: 9}
	assert.NoError(t, d.Validate())
}

func TestEncode_ServerFrames(t *testing.T) {
	data, err := Encode(NewAck("m-1", "c-1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"ack","id":"m-1","cid":"c-1","status":"SENT"}`, string(data))

	data, err = Encode(NewStatus(5, false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"status","userId":5,"status":"offline"}`, string(data))

	data, err = Encode(NewPresenceList(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"presence_list","onlineUserIds":[]}`, string(data))

	data, err = Encode(&Typing{Kind: KindTyping, SenderID: 1, IsTyping: false, RecipientID: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"typing","senderId":1,"isTyping":false,"recipientId":2}`, string(data))
}

func TestChatFromMessage(t *testing.T) {
	m, err := models.NewGroup("m-1", 1, 7, models.Draft{ClientID: "c-1", MediaKey: "a.jpg"}, 123)
	require.NoError(t, err)

	data, err := Encode(ChatFromMessage(m, "alice"))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "chat", got["kind"])
	assert.Equal(t, "alice", got["senderName"])
	assert.Equal(t, float64(7), got["groupId"])
	assert.Equal(t, "image", got["messageType"])
	assert.NotContains(t, got, "receiverId")
	assert.Contains(t, got, "content")
}

func TestNewBusy(t *testing.T) {
	busy := NewBusy(&Signal{Kind: KindSignal, Type: SignalOffer, SenderID: 1, ReceiverID: 2})

	assert.Equal(t, SignalBusy, busy.Type)
	assert.Equal(t, int64(2), busy.SenderID)
	assert.Equal(t, int64(1), busy.ReceiverID)
	assert.Equal(t, KindSignal, busy.FrameKind())
}
