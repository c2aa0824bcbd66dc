package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/common"
	applog "gosocial-realtime/internal/logger"
	"gosocial-realtime/internal/metrics"
	"gosocial-realtime/internal/presence"
	"gosocial-realtime/internal/protocol"
)

var ErrHubClosed = errors.New("hub is shut down")

// MessageStore is the persistence the hub acknowledges against.
type MessageStore interface {
	SaveDirect(ctx context.Context, senderID, recipientID int64, draft models.Draft) (*models.Message, error)
	SaveGroup(ctx context.Context, senderID, groupID int64, draft models.Draft) (*models.Message, error)
}

type FriendGraph interface {
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

type GroupDirectory interface {
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Hub owns the live connections of this process. Fan-out happens before
// persistence; acks are sent only after persistence succeeds.
type Hub struct {
	store    MessageStore
	friends  FriendGraph
	groups   GroupDirectory
	presence *presence.Tracker
	metrics  *metrics.Metrics
	log      *slog.Logger
	newID    func() string

	mu     sync.RWMutex
	conns  map[int64][]*Connection
	closed bool
}

func NewHub(store MessageStore, friends FriendGraph, groups GroupDirectory, tracker *presence.Tracker, m *metrics.Metrics, log *slog.Logger) *Hub {
	return &Hub{
		store:    store,
		friends:  friends,
		groups:   groups,
		presence: tracker,
		metrics:  m,
		log:      applog.OrDefault(log).With("component", "hub"),
		newID:    uuid.NewString,
		conns:    make(map[int64][]*Connection),
	}
}

// OnConnect registers conn, announces the user to friends on their first
// connection, and sends conn the list of friends already online.
func (h *Hub) OnConnect(ctx context.Context, conn *Connection) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	h.conns[conn.UserID] = append(h.conns[conn.UserID], conn)
	h.mu.Unlock()

	conn.open()
	h.metrics.ConnectionOpened()

	first := h.presence.Connect(conn.UserID)
	h.metrics.SetOnlineUsers(h.presence.Count())

	friendIDs, err := h.friends.FriendIDs(ctx, conn.UserID)
	if err != nil {
		h.log.Error("failed to load friends", "user_id", conn.UserID, "error", err)
		friendIDs = nil
	}

	if first {
		h.deliver(protocol.NewStatus(conn.UserID, true), h.connectionsOf(friendIDs...))
	}
	h.deliver(protocol.NewPresenceList(h.presence.FilterOnline(friendIDs)), []*Connection{conn})

	h.log.Info("connection opened", "conn_id", conn.ID, "user_id", conn.UserID, "first", first)
	return nil
}

// OnDisconnect is idempotent; only the call that unregisters conn updates presence.
func (h *Hub) OnDisconnect(ctx context.Context, conn *Connection) {
	conn.Close()

	h.mu.Lock()
	list := h.conns[conn.UserID]
	idx := slices.Index(list, conn)
	if idx < 0 {
		h.mu.Unlock()
		return
	}
	list = slices.Delete(list, idx, idx+1)
	if len(list) == 0 {
		delete(h.conns, conn.UserID)
	} else {
		h.conns[conn.UserID] = list
	}
	h.mu.Unlock()

	h.metrics.ConnectionClosed()
	if conn.Evicted() {
		h.metrics.Evicted()
	}

	last := h.presence.Disconnect(conn.UserID)
	h.metrics.SetOnlineUsers(h.presence.Count())

	if last {
		friendIDs, err := h.friends.FriendIDs(ctx, conn.UserID)
		if err != nil {
			h.log.Error("failed to load friends", "user_id", conn.UserID, "error", err)
		}
		h.deliver(protocol.NewStatus(conn.UserID, false), h.connectionsOf(friendIDs...))
	}

	h.log.Info("connection closed", "conn_id", conn.ID, "user_id", conn.UserID, "last", last, "evicted", conn.Evicted())
}

// HandleFrame decodes and routes one inbound frame from conn. Errors are
// logged here and returned for the caller's information only; the
// connection stays open.
func (h *Hub) HandleFrame(ctx context.Context, conn *Connection, data []byte) error {
	frame, err := protocol.Decode(data)
	if err != nil {
		h.metrics.FrameDropped("malformed")
		h.log.Warn("dropping malformed frame", "conn_id", conn.ID, "user_id", conn.UserID, "error", err)
		return err
	}
	h.metrics.FrameReceived(string(frame.FrameKind()))

	switch f := frame.(type) {
	case *protocol.Chat:
		err = h.handleChat(ctx, conn, f)
	case *protocol.Typing:
		f.SenderID = conn.UserID
		if err = f.Validate(); err == nil {
			err = h.RouteTyping(ctx, f)
		}
	case *protocol.DeliveryStatus:
		f.UserID = conn.UserID
		if err = f.Validate(); err == nil {
			err = h.RouteDeliveryStatus(ctx, f)
		}
	case *protocol.Signal:
		f.SenderID = conn.UserID
		if err = f.Validate(); err == nil {
			h.RouteCallSignal(conn, f)
		}
	}

	if err != nil {
		h.metrics.FrameDropped(dropReason(err))
		h.log.Warn("frame not processed",
			"conn_id", conn.ID,
			"user_id", conn.UserID,
			"kind", frame.FrameKind(),
			"error", err,
		)
	}
	return err
}

func (h *Hub) handleChat(ctx context.Context, conn *Connection, f *protocol.Chat) error {
	if err := f.Validate(); err != nil {
		return err
	}
	f.SenderID = conn.UserID
	if f.CID == "" {
		f.CID = f.MessageID
	}
	if f.CID == "" {
		f.CID = h.newID()
	}

	if f.GroupID > 0 {
		return h.RouteGroup(ctx, conn, f)
	}
	return h.RouteDirect(ctx, conn, f)
}

// RouteDirect broadcasts to every connection of the recipient and the
// sender, persists, then acks the sender's connections.
func (h *Hub) RouteDirect(ctx context.Context, sender *Connection, f *protocol.Chat) error {
	recipientID := f.RecipientID
	live := h.liveFrame(sender, f)
	live.ReceiverID = recipientID
	h.deliver(live, h.connectionsOf(recipientID, sender.UserID))

	saved, err := h.persist(ctx, func(ctx context.Context) (*models.Message, error) {
		return h.store.SaveDirect(ctx, sender.UserID, recipientID, draftOf(f))
	})
	if err != nil {
		return err
	}

	h.deliver(protocol.NewAck(saved.MessageID, f.CID), h.connectionsOf(sender.UserID))
	return nil
}

// RouteGroup broadcasts to every connected member, persists, then acks the sender.
func (h *Hub) RouteGroup(ctx context.Context, sender *Connection, f *protocol.Chat) error {
	groupID := f.GroupID
	members, err := h.groups.MemberIDs(ctx, groupID)
	if err != nil {
		return fmt.Errorf("load members of group %d: %w", groupID, err)
	}
	if !slices.Contains(members, sender.UserID) {
		return fmt.Errorf("%w: user %d is not in group %d", common.ErrForbidden, sender.UserID, groupID)
	}

	live := h.liveFrame(sender, f)
	live.GroupID = groupID
	h.deliver(live, h.connectionsOf(members...))

	saved, err := h.persist(ctx, func(ctx context.Context) (*models.Message, error) {
		return h.store.SaveGroup(ctx, sender.UserID, groupID, draftOf(f))
	})
	if err != nil {
		return err
	}

	h.deliver(protocol.NewAck(saved.MessageID, f.CID), h.connectionsOf(sender.UserID))
	return nil
}

func (h *Hub) persist(ctx context.Context, save func(context.Context) (*models.Message, error)) (*models.Message, error) {
	start := time.Now()
	// the write outlives the sender's socket
	saved, err := save(context.WithoutCancel(ctx))
	h.metrics.ObservePersist(start, err)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (h *Hub) liveFrame(sender *Connection, f *protocol.Chat) *protocol.Chat {
	return &protocol.Chat{
		Kind:        protocol.KindChat,
		MessageID:   f.CID,
		CID:         f.CID,
		SenderID:    sender.UserID,
		SenderName:  sender.UserName,
		Content:     f.Content,
		Timestamp:   time.Now().UnixMilli(),
		MediaKey:    f.MediaKey,
		MessageType: string(common.ResolveMessageType(common.MessageType(f.MessageType), f.MediaKey)),
	}
}

// RouteTyping relays to the recipient, or to every other group member.
func (h *Hub) RouteTyping(ctx context.Context, f *protocol.Typing) error {
	targets, err := h.relayTargets(ctx, f.SenderID, f.RecipientID, f.GroupID)
	if err != nil {
		return err
	}
	h.deliver(f, targets)
	return nil
}

// RouteDeliveryStatus relays a receipt the same way as typing.
func (h *Hub) RouteDeliveryStatus(ctx context.Context, f *protocol.DeliveryStatus) error {
	targets, err := h.relayTargets(ctx, f.UserID, f.RecipientID, f.GroupID)
	if err != nil {
		return err
	}
	h.deliver(f, targets)
	return nil
}

func (h *Hub) relayTargets(ctx context.Context, senderID, recipientID, groupID int64) ([]*Connection, error) {
	if groupID <= 0 {
		return h.connectionsOf(recipientID), nil
	}
	members, err := h.groups.MemberIDs(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("load members of group %d: %w", groupID, err)
	}
	if !slices.Contains(members, senderID) {
		return nil, fmt.Errorf("%w: user %d is not in group %d", common.ErrForbidden, senderID, groupID)
	}
	others := slices.DeleteFunc(slices.Clone(members), func(id int64) bool { return id == senderID })
	return h.connectionsOf(others...), nil
}

// RouteCallSignal relays to the receiver's most recent connection. An OFFER
// to a user with no connection is answered with BUSY on origin.
func (h *Hub) RouteCallSignal(origin *Connection, f *protocol.Signal) {
	h.mu.RLock()
	list := h.conns[f.ReceiverID]
	var target *Connection
	if len(list) > 0 {
		target = list[len(list)-1]
	}
	h.mu.RUnlock()

	if target != nil {
		h.deliver(f, []*Connection{target})
		return
	}
	if f.Type == protocol.SignalOffer {
		h.deliver(protocol.NewBusy(f), []*Connection{origin})
		return
	}
	h.log.Debug("signal target offline", "receiver_id", f.ReceiverID, "type", f.Type)
}

// IsOnline and FilterOnline expose presence to the sync and RPC surfaces.
func (h *Hub) IsOnline(userID int64) bool {
	return h.presence.IsOnline(userID)
}

func (h *Hub) FilterOnline(userIDs []int64) []int64 {
	return h.presence.FilterOnline(userIDs)
}

// Shutdown closes every live connection and refuses new ones.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	var all []*Connection
	for _, list := range h.conns {
		all = append(all, list...)
	}
	h.mu.Unlock()

	for _, c := range all {
		c.Close()
	}
	h.log.Info("hub shut down", "connections", len(all))
}

// connectionsOf snapshots the open connections of userIDs; duplicates are ignored.
func (h *Hub) connectionsOf(userIDs ...int64) []*Connection {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[int64]bool, len(userIDs))
	var out []*Connection
	for _, id := range userIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, h.conns[id]...)
	}
	return out
}

func (h *Hub) deliver(f protocol.Frame, targets []*Connection) {
	if len(targets) == 0 {
		return
	}
	data, err := protocol.Encode(f)
	if err != nil {
		h.log.Error("failed to encode frame", "kind", f.FrameKind(), "error", err)
		return
	}
	for _, c := range targets {
		c.Send(data)
	}
}

func draftOf(f *protocol.Chat) models.Draft {
	return models.Draft{
		ClientID: f.CID,
		Content:  f.Content,
		MediaKey: f.MediaKey,
		Type:     common.MessageType(f.MessageType),
	}
}

func dropReason(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return "invalid"
	case errors.Is(err, common.ErrForbidden):
		return "forbidden"
	case common.IsPersistence(err):
		return "persistence"
	default:
		return "error"
	}
}
