package service

import (
	"testing"

	"github.com/rayprastya/stop-playing/internal/store"
	"github.com/rayprastya/stop-playing/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockNotifier *mocks.MockNotifier
	mockVoice    *mocks.MockVoiceGateway
	mockClock    *mocks.MockClock
}

// newServiceTestMock wires a disconnect service onto a real in-memory store
// with mocked externals, so tests can assert store contents directly.
func newServiceTestMock(t *testing.T) (m allMocks, scheduleStore *store.ScheduleStore, svc *disconnectService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockNotifier: mocks.NewMockNotifier(ctrl),
		mockVoice:    mocks.NewMockVoiceGateway(ctrl),
		mockClock:    mocks.NewMockClock(ctrl),
	}

	scheduleStore = store.New()
	svc = newDisconnect(scheduleStore, m.mockNotifier, m.mockVoice, m.mockClock, zap.NewNop())
	require.NotNil(t, svc)

	return
}
