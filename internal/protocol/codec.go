package protocol

import (
	"encoding/json"
	"fmt"

	"gosocial-realtime/internal/common"
)

// Decode parses a client frame. Unknown kinds, server-only kinds and bad JSON
// are reported as common.ErrMalformedFrame.
func Decode(data []byte) (Frame, error) {
	var env struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedFrame, err)
	}

	var f Frame
	switch env.Kind {
	case KindChat:
		f = &Chat{}
	case KindTyping:
		f = &Typing{}
	case KindDeliveryStatus:
		f = &DeliveryStatus{}
	case KindSignal:
		f = &Signal{}
	case KindAck, KindStatus, KindPresenceList:
		return nil, fmt.Errorf("%w: kind %q is server-only", common.ErrMalformedFrame, env.Kind)
	case "":
		return nil, fmt.Errorf("%w: missing kind", common.ErrMalformedFrame)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", common.ErrMalformedFrame, env.Kind)
	}

	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedFrame, err)
	}
	return f, nil
}

func Encode(f Frame) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", f.FrameKind(), err)
	}
	return data, nil
}

// Validate checks the shape of an inbound chat frame.
func (c *Chat) Validate() error {
	if (c.RecipientID > 0) == (c.GroupID > 0) {
		return common.Invalid("chat frame needs exactly one of recipientId or groupId")
	}
	if c.Content == "" && c.MediaKey == "" {
		return common.Invalid("chat frame needs content or mediaKey")
	}
	// messageId stands in for a missing cid
	for _, id := range []string{c.CID, c.MessageID} {
		if err := common.ValidateClientID(id); err != nil {
			return err
		}
	}
	return common.ValidateMediaKey(c.MediaKey)
}

func (t *Typing) Validate() error {
	if (t.RecipientID > 0) == (t.GroupID > 0) {
		return common.Invalid("typing frame needs exactly one of recipientId or groupId")
	}
	return nil
}

func (d *DeliveryStatus) Validate() error {
	if d.Status != DeliveryDelivered && d.Status != DeliveryRead {
		return common.Invalid("unknown delivery status %q", d.Status)
	}
	if d.CID == "" && d.MessageID == "" {
		return common.Invalid("delivery status needs cid or messageId")
	}
	// group receipts also name the original sender in recipientId; the
	// group wins when both are set
	if d.RecipientID <= 0 && d.GroupID <= 0 {
		return common.Invalid("delivery status needs recipientId or groupId")
	}
	return nil
}

func (s *Signal) Validate() error {
	if !s.Type.IsValid() {
		return common.Invalid("unknown signal type %q", s.Type)
	}
	if s.ReceiverID <= 0 {
		return common.Invalid("signal needs receiverId")
	}
	return nil
}
