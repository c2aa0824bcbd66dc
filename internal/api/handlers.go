package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/gorilla/mux"

	"gosocial-realtime/internal/chat/delta"
	"gosocial-realtime/internal/chat/models"
	"gosocial-realtime/internal/chat/service"
	"gosocial-realtime/internal/common"
	"gosocial-realtime/internal/metrics"
)

type Handlers struct {
	sync    delta.Engine
	store   service.MessageStore
	groups  Members
	metrics *metrics.Metrics
	log     *slog.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

type historyResponse struct {
	Messages []*models.Message `json:"messages"`
}

// GET /sync?last_ts=
func (h *Handlers) GetDelta(w http.ResponseWriter, r *http.Request) {
	id, ok := common.IdentityFrom(r.Context())
	if !ok {
		h.writeError(w, common.ErrAuthentication)
		return
	}

	lastTs, err := parseInt64(r.URL.Query().Get("last_ts"), 0)
	if err != nil || lastTs < 0 {
		h.writeError(w, common.Invalid("last_ts must be a non-negative integer"))
		return
	}

	out, err := h.sync.GetDelta(r.Context(), id.UserID, lastTs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.SyncServed()
	writeJSON(w, http.StatusOK, out)
}

// GET /messages/direct/{partnerId}?limit=&before=
func (h *Handlers) GetDirectMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := common.IdentityFrom(r.Context())
	if !ok {
		h.writeError(w, common.ErrAuthentication)
		return
	}
	partnerID, err := pathID(r, "partnerId")
	if err != nil {
		h.writeError(w, err)
		return
	}
	limit, before, err := pageParams(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	msgs, err := h.store.FindDirectMessages(r.Context(), id.UserID, partnerID, limit, before)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Messages: nonNil(msgs)})
}

// GET /messages/group/{groupId}?limit=&before=
func (h *Handlers) GetGroupMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := common.IdentityFrom(r.Context())
	if !ok {
		h.writeError(w, common.ErrAuthentication)
		return
	}
	groupID, err := pathID(r, "groupId")
	if err != nil {
		h.writeError(w, err)
		return
	}
	limit, before, err := pageParams(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.requireMember(r.Context(), groupID, id.UserID); err != nil {
		h.writeError(w, err)
		return
	}

	msgs, err := h.store.FindGroupMessages(r.Context(), groupID, limit, before)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Messages: nonNil(msgs)})
}

// DELETE /messages/{messageId}
func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := common.IdentityFrom(r.Context())
	if !ok {
		h.writeError(w, common.ErrAuthentication)
		return
	}
	messageID := mux.Vars(r)["messageId"]

	if err := h.store.DeleteMessage(r.Context(), id.UserID, messageID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) requireMember(ctx context.Context, groupID, userID int64) error {
	members, err := h.groups.MemberIDs(ctx, groupID)
	if err != nil {
		return &common.PersistenceError{Op: "group members", Err: err}
	}
	if !slices.Contains(members, userID) {
		return common.ErrForbidden
	}
	return nil
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	code := common.HTTPStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
		msg = "internal error"
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func pathID(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || v <= 0 {
		return 0, common.Invalid("%s must be a positive integer", name)
	}
	return v, nil
}

func pageParams(r *http.Request) (limit int, before int64, err error) {
	q := r.URL.Query()
	l, err := parseInt64(q.Get("limit"), 0)
	if err != nil || l < 0 {
		return 0, 0, common.Invalid("limit must be a non-negative integer")
	}
	before, err = parseInt64(q.Get("before"), 0)
	if err != nil || before < 0 {
		return 0, 0, common.Invalid("before must be a non-negative integer")
	}
	return int(l), before, nil
}

func parseInt64(raw string, def int64) (int64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func nonNil(msgs []*models.Message) []*models.Message {
	if msgs == nil {
		return []*models.Message{}
	}
	return msgs
}
