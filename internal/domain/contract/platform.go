package contract

import (
	"time"

	"github.com/rayprastya/stop-playing/internal/domain/entity"
)

// Notifier defines the interface for sending messages to users
// This allows mocking in tests while keeping the real implementation simple
type Notifier interface {
	// Notify sends a message addressed to the given user
	Notify(userID, text string) error
}

// VoiceGateway defines the interface for voice-channel operations
type VoiceGateway interface {
	// ResolveMember looks up a guild member; returns nil, nil when unknown
	ResolveMember(userID string) (*entity.Member, error)

	// Disconnect removes the user from whatever voice channel they are in.
	// Callers only invoke it for members known to be in voice.
	Disconnect(userID string) error
}

// Clock is the time source, injectable so tests can pin the instant
type Clock interface {
	NowUTC() time.Time
}
