package service

import (
	"fmt"
	"time"

	"github.com/rayprastya/stop-playing/internal/domain"
	"github.com/rayprastya/stop-playing/internal/domain/contract"
	"go.uber.org/zap"
)

// SweepConfig configures the legacy fixed-offset sweep: a static list of
// user IDs all disconnected at the same UTC instant every day.
type SweepConfig struct {
	UserIDs []string
	FireAt  domain.TimeOfDay
	// Label is the human wording for the fire instant, e.g. "1 AM"
	Label string
}

// sweepService predates per-user schedules and runs alongside them. It keeps
// no state: the target list comes from configuration and nothing is removed
// after firing. A user present here and in the schedule store can receive
// double warnings and double disconnect attempts when the instants collide.
type sweepService struct {
	notifier contract.Notifier
	voice    contract.VoiceGateway
	log      *zap.Logger
	cfg      SweepConfig
}

func newSweep(notifier contract.Notifier, voice contract.VoiceGateway, log *zap.Logger, cfg SweepConfig) *sweepService {
	return &sweepService{
		notifier: notifier,
		voice:    voice,
		log:      log,
		cfg:      cfg,
	}
}

func (s *sweepService) Tick(now time.Time) {
	if len(s.cfg.UserIDs) == 0 {
		return
	}

	tick := domain.FromTime(now)

	if tick == s.cfg.FireAt.AddMinutes(-domain.WarnLeadMinutes) {
		s.broadcastWarning()
	}
	if tick == s.cfg.FireAt {
		s.sweep()
	}
}

func (s *sweepService) broadcastWarning() {
	text := fmt.Sprintf("⏳ %d minutes left until auto-disconnect at %s.", domain.WarnLeadMinutes, s.cfg.Label)

	for _, userID := range s.cfg.UserIDs {
		if err := s.notifier.Notify(userID, text); err != nil {
			s.log.Error("failed to send sweep warning",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}
}

func (s *sweepService) sweep() {
	for _, userID := range s.cfg.UserIDs {
		member, err := s.voice.ResolveMember(userID)
		if err != nil {
			s.log.Error("failed to resolve member for sweep",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			continue
		}

		if member == nil || !member.InVoice {
			continue
		}

		if err := s.voice.Disconnect(userID); err != nil {
			s.log.Error("failed to disconnect user in sweep",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			continue
		}

		s.log.Info("user disconnected by sweep", zap.String("user_id", userID))
	}
}
