package contract

import "github.com/rayprastya/stop-playing/internal/domain/entity"

//go:generate mockgen -package mocks -destination ../../../mocks/contract_mocks.go github.com/rayprastya/stop-playing/internal/domain/contract ScheduleStore,Notifier,VoiceGateway,Clock,DisconnectService

// ScheduleStore defines the contract for the schedule registry
type ScheduleStore interface {
	// Upsert stores the schedule, replacing any existing one for the same user
	Upsert(schedule *entity.Schedule)

	// Get returns the user's schedule, or nil when none exists
	Get(userID string) *entity.Schedule

	// Remove deletes the user's schedule; removing an absent one is a no-op
	Remove(userID string)

	// ForEach visits a snapshot of all schedules. Visitors may remove the
	// schedule they are handed without affecting the iteration.
	ForEach(fn func(schedule *entity.Schedule))
}
