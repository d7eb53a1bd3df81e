package scheduler

import (
	"time"

	"github.com/rayprastya/stop-playing/internal/domain/contract"
	"go.uber.org/zap"
)

// TickHandler is anything evaluated once per calendar minute
type TickHandler interface {
	Tick(now time.Time)
}

// UTCClock reads the wall clock
type UTCClock struct{}

func (UTCClock) NowUTC() time.Time {
	return time.Now().UTC()
}

// Scheduler drives its handlers once per calendar minute. Handlers run
// synchronously on the loop goroutine, so ticks never overlap.
type Scheduler struct {
	handlers []TickHandler
	clock    contract.Clock
	log      *zap.Logger
	stopChan chan struct{}
	running  bool
}

func New(clock contract.Clock, log *zap.Logger, handlers ...TickHandler) *Scheduler {
	return &Scheduler{
		handlers: handlers,
		clock:    clock,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting")
	go s.mainLoop()
}

func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *Scheduler) mainLoop() {
	// Align to the next minute boundary so each calendar minute is
	// evaluated exactly once
	now := s.clock.NowUTC()
	wait := now.Truncate(time.Minute).Add(time.Minute).Sub(now)

	timer := time.NewTimer(wait)
	select {
	case <-timer.C:
	case <-s.stopChan:
		timer.Stop()
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	s.tick(s.clock.NowUTC())

	for {
		select {
		case <-ticker.C:
			s.tick(s.clock.NowUTC())
		case <-s.stopChan:
			return
		}
	}
}

func (s *Scheduler) tick(now time.Time) {
	for _, handler := range s.handlers {
		handler.Tick(now)
	}
}
