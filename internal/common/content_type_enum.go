package common

import (
	"path"
	"strings"
)

// MessageType classifies a chat message by its payload.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeVoice MessageType = "voice"
	MessageTypeVideo MessageType = "video"
	MessageTypeFile  MessageType = "file"
)

var mediaSuffixes = map[string]MessageType{
	".jpg":  MessageTypeImage,
	".jpeg": MessageTypeImage,
	".png":  MessageTypeImage,
	".gif":  MessageTypeImage,
	".webp": MessageTypeImage,
	".heic": MessageTypeImage,
	".m4a":  MessageTypeVoice,
	".aac":  MessageTypeVoice,
	".mp3":  MessageTypeVoice,
	".ogg":  MessageTypeVoice,
	".opus": MessageTypeVoice,
	".wav":  MessageTypeVoice,
	".amr":  MessageTypeVoice,
	".3gp":  MessageTypeVoice,
	".mp4":  MessageTypeVideo,
	".mov":  MessageTypeVideo,
	".webm": MessageTypeVideo,
	".mkv":  MessageTypeVideo,
	".avi":  MessageTypeVideo,
}

// String returns the string representation
func (mt MessageType) String() string {
	return string(mt)
}

// IsValid checks if the message type is one of the known kinds
func (mt MessageType) IsValid() bool {
	switch mt {
	case MessageTypeText, MessageTypeImage, MessageTypeVoice, MessageTypeVideo, MessageTypeFile:
		return true
	}
	return false
}

// DetectMessageType infers the type from an opaque media key's suffix.
// A message without a key is text; an unrecognised suffix is a file.
func DetectMessageType(mediaKey string) MessageType {
	if strings.TrimSpace(mediaKey) == "" {
		return MessageTypeText
	}
	ext := strings.ToLower(path.Ext(mediaKey))
	if mt, ok := mediaSuffixes[ext]; ok {
		return mt
	}
	return MessageTypeFile
}

// ResolveMessageType keeps an explicit valid type and falls back to inference otherwise.
func ResolveMessageType(explicit MessageType, mediaKey string) MessageType {
	explicit = MessageType(strings.ToLower(string(explicit)))
	if explicit.IsValid() {
		return explicit
	}
	return DetectMessageType(mediaKey)
}
