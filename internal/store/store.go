package store

import (
	"sync"

	"github.com/rayprastya/stop-playing/internal/domain/entity"
)

// ScheduleStore keeps schedules in memory, keyed by user ID. State is
// deliberately volatile: a restart clears every registration.
type ScheduleStore struct {
	mu        sync.RWMutex
	schedules map[string]*entity.Schedule
}

func New() *ScheduleStore {
	return &ScheduleStore{
		schedules: make(map[string]*entity.Schedule),
	}
}

func (s *ScheduleStore) Upsert(schedule *entity.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[schedule.UserID] = schedule
}

func (s *ScheduleStore) Get(userID string) *entity.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedules[userID]
}

func (s *ScheduleStore) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.schedules, userID)
}

// ForEach visits a snapshot taken under the read lock, so visitors can call
// Remove (including on the schedule they were handed) without deadlocking or
// skipping entries.
func (s *ScheduleStore) ForEach(fn func(schedule *entity.Schedule)) {
	s.mu.RLock()
	snapshot := make([]*entity.Schedule, 0, len(s.schedules))
	for _, schedule := range s.schedules {
		snapshot = append(snapshot, schedule)
	}
	s.mu.RUnlock()

	for _, schedule := range snapshot {
		fn(schedule)
	}
}

// Len reports how many schedules are currently registered
func (s *ScheduleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schedules)
}
