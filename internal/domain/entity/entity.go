package entity

import "github.com/rayprastya/stop-playing/internal/domain"

// Schedule is one user's daily auto-disconnect registration. At most one
// exists per user; re-registering replaces it.
type Schedule struct {
	UserID      string
	TargetUTC   domain.TimeOfDay
	LocalTarget string // the "HH:MM" the user typed, kept for display
	Offset      int    // inferred UTC offset in minutes
}

// WarnAtUTC is the instant the advance warning should fire
func (s *Schedule) WarnAtUTC() domain.TimeOfDay {
	return s.TargetUTC.AddMinutes(-domain.WarnLeadMinutes)
}

// Member is the platform-agnostic view of a guild member
type Member struct {
	UserID   string
	Username string
	InVoice  bool
}
