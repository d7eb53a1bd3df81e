package service

import (
	"fmt"
	"math"
	"time"

	"github.com/rayprastya/stop-playing/internal/domain"
	"github.com/rayprastya/stop-playing/internal/domain/contract"
	"github.com/rayprastya/stop-playing/internal/domain/entity"
	"go.uber.org/zap"
)

type disconnectService struct {
	store    contract.ScheduleStore
	notifier contract.Notifier
	voice    contract.VoiceGateway
	clock    contract.Clock
	log      *zap.Logger
}

func newDisconnect(store contract.ScheduleStore, notifier contract.Notifier, voice contract.VoiceGateway, clock contract.Clock, log *zap.Logger) *disconnectService {
	return &disconnectService{
		store:    store,
		notifier: notifier,
		voice:    voice,
		clock:    clock,
		log:      log,
	}
}

// Register stores a daily disconnect schedule for the user. The offset is
// inferred by comparing the claimed local wall time against the actual UTC
// wall time, so no timezone database is involved. Re-registering replaces
// the previous schedule.
func (s *disconnectService) Register(userID, target, currentLocal string) (string, error) {
	targetTime, err := domain.ParseTimeOfDay(target)
	if err != nil {
		return "", fmt.Errorf("failed to parse target time: %w", err)
	}

	currentTime, err := domain.ParseTimeOfDay(currentLocal)
	if err != nil {
		return "", fmt.Errorf("failed to parse current time: %w", err)
	}

	utcNow := domain.FromTime(s.clock.NowUTC())
	offset := domain.InferOffset(currentTime, utcNow)

	schedule := &entity.Schedule{
		UserID:      userID,
		TargetUTC:   targetTime.AddMinutes(-offset),
		LocalTarget: targetTime.String(),
		Offset:      offset,
	}
	s.store.Upsert(schedule)

	s.log.Info("schedule registered",
		zap.String("user_id", userID),
		zap.String("local_target", schedule.LocalTarget),
		zap.String("utc_target", schedule.TargetUTC.String()),
		zap.Int("offset_minutes", offset),
	)

	return fmt.Sprintf("✅ You will be disconnected daily at %s (your local time).\nTimezone offset detected: %s",
		schedule.LocalTarget, domain.FormatOffset(offset)), nil
}

// TimeLeft returns whole minutes until the user's disconnect instant,
// ceiling-rounded from the sub-minute current time. An instant exactly on
// the target counts as already passed and rolls a full day.
func (s *disconnectService) TimeLeft(userID string) (int, string, error) {
	schedule := s.store.Get(userID)
	if schedule == nil {
		return 0, "", domain.ErrNoSchedule
	}

	now := s.clock.NowUTC()
	return minutesUntil(schedule.TargetUTC, now), schedule.LocalTarget, nil
}

func minutesUntil(target domain.TimeOfDay, now time.Time) int {
	next := time.Date(now.Year(), now.Month(), now.Day(), target.Hour, target.Minute, 0, 0, time.UTC)
	if domain.FromTime(now).TotalMinutes() >= target.TotalMinutes() {
		next = next.AddDate(0, 0, 1)
	}
	return int(math.Ceil(next.Sub(now).Minutes()))
}

// Tick evaluates every schedule against the given instant. Warnings fire 15
// minutes ahead; at the instant itself the user is disconnected (if in
// voice) and the schedule is removed whether or not the disconnect call
// succeeded. No retry: a failed attempt is not re-fired.
func (s *disconnectService) Tick(now time.Time) {
	tick := domain.FromTime(now)

	s.store.ForEach(func(schedule *entity.Schedule) {
		if tick == schedule.WarnAtUTC() {
			s.warn(schedule)
		}
		if tick == schedule.TargetUTC {
			s.fire(schedule)
		}
	})
}

func (s *disconnectService) warn(schedule *entity.Schedule) {
	text := fmt.Sprintf("⏳ %d minutes left until your auto-disconnect at %s (your local time).",
		domain.WarnLeadMinutes, schedule.LocalTarget)

	if err := s.notifier.Notify(schedule.UserID, text); err != nil {
		// Schedule stays in place; the warning is advisory
		s.log.Error("failed to send disconnect warning",
			zap.String("user_id", schedule.UserID),
			zap.Error(err),
		)
	}
}

func (s *disconnectService) fire(schedule *entity.Schedule) {
	// The schedule is consumed by the attempt itself, even when the lookup
	// or disconnect call fails
	defer s.store.Remove(schedule.UserID)

	member, err := s.voice.ResolveMember(schedule.UserID)
	if err != nil {
		s.log.Error("failed to resolve member for disconnect",
			zap.String("user_id", schedule.UserID),
			zap.Error(err),
		)
		return
	}

	if member == nil || !member.InVoice {
		s.log.Info("user not in voice at disconnect time",
			zap.String("user_id", schedule.UserID),
		)
		return
	}

	if err := s.voice.Disconnect(schedule.UserID); err != nil {
		s.log.Error("failed to disconnect user",
			zap.String("user_id", schedule.UserID),
			zap.Error(err),
		)
		return
	}

	s.log.Info("user disconnected",
		zap.String("user_id", schedule.UserID),
		zap.String("utc_target", schedule.TargetUTC.String()),
	)
}
