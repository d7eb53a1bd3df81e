package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingHandler struct {
	name  string
	calls *[]string
}

func (h *recordingHandler) Tick(now time.Time) {
	*h.calls = append(*h.calls, h.name)
}

func TestScheduler_tick(t *testing.T) {
	t.Run("Should run handlers synchronously in registration order", func(t *testing.T) {
		var calls []string
		s := New(UTCClock{}, zap.NewNop(),
			&recordingHandler{name: "first", calls: &calls},
			&recordingHandler{name: "second", calls: &calls},
		)

		s.tick(time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC))

		assert.Equal(t, []string{"first", "second"}, calls)
	})
}

func TestScheduler_Lifecycle(t *testing.T) {
	t.Run("Should ignore Stop before Start", func(t *testing.T) {
		s := New(UTCClock{}, zap.NewNop())
		s.Stop()
	})

	t.Run("Should stop after Start", func(t *testing.T) {
		s := New(UTCClock{}, zap.NewNop())
		s.Start()
		s.Stop()
	})

	t.Run("Should ignore a second Start", func(t *testing.T) {
		s := New(UTCClock{}, zap.NewNop())
		s.Start()
		s.Start()
		s.Stop()
	})
}

func TestUTCClock(t *testing.T) {
	now := UTCClock{}.NowUTC()
	assert.Equal(t, time.UTC, now.Location())
}
