package service

import (
	"testing"
	"time"

	"github.com/rayprastya/stop-playing/internal/domain"
	"github.com/rayprastya/stop-playing/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_disconnectService_Register(t *testing.T) {
	type args struct {
		userID       string
		target       string
		currentLocal string
	}
	tests := []struct {
		name          string
		buildMock     func(m allMocks, args args)
		args          args
		wantTargetUTC domain.TimeOfDay
		wantOffset    int
		wantErr       bool
	}{
		{
			name: "Should register with a positive offset",
			args: args{
				userID:       "U1",
				target:       "22:00",
				currentLocal: "22:15",
			},
			buildMock: func(m allMocks, args args) {
				m.mockClock.EXPECT().
					NowUTC().
					Return(time.Date(2024, 5, 1, 14, 15, 0, 0, time.UTC)).Times(1)
			},
			wantTargetUTC: domain.TimeOfDay{Hour: 14, Minute: 0},
			wantOffset:    480,
		},
		{
			name: "Should register with a negative offset",
			args: args{
				userID:       "U1",
				target:       "22:00",
				currentLocal: "06:00",
			},
			buildMock: func(m allMocks, args args) {
				m.mockClock.EXPECT().
					NowUTC().
					Return(time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC)).Times(1)
			},
			wantTargetUTC: domain.TimeOfDay{Hour: 6, Minute: 0},
			wantOffset:    -480,
		},
		{
			name: "Should register with zero offset",
			args: args{
				userID:       "U1",
				target:       "23:30",
				currentLocal: "10:00",
			},
			buildMock: func(m allMocks, args args) {
				m.mockClock.EXPECT().
					NowUTC().
					Return(time.Date(2024, 5, 1, 10, 0, 30, 0, time.UTC)).Times(1)
			},
			wantTargetUTC: domain.TimeOfDay{Hour: 23, Minute: 30},
			wantOffset:    0,
		},
		{
			name: "Should reject an invalid target time",
			args: args{
				userID:       "U1",
				target:       "25:00",
				currentLocal: "22:15",
			},
			wantErr: true,
		},
		{
			name: "Should reject an invalid current time",
			args: args{
				userID:       "U1",
				target:       "22:00",
				currentLocal: "nope",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, scheduleStore, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			confirmation, err := svc.Register(tt.args.userID, tt.args.target, tt.args.currentLocal)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidTime)
				assert.Equal(t, 0, scheduleStore.Len(), "nothing should be stored on error")
				return
			}

			require.NoError(t, err)
			assert.Contains(t, confirmation, tt.args.target)
			assert.Contains(t, confirmation, domain.FormatOffset(tt.wantOffset))

			schedule := scheduleStore.Get(tt.args.userID)
			require.NotNil(t, schedule)
			assert.Equal(t, tt.wantTargetUTC, schedule.TargetUTC)
			assert.Equal(t, tt.args.target, schedule.LocalTarget)
			assert.Equal(t, tt.wantOffset, schedule.Offset)
		})
	}
}

func Test_disconnectService_Register_Replaces(t *testing.T) {
	m, scheduleStore, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockClock.EXPECT().
		NowUTC().
		Return(time.Date(2024, 5, 1, 14, 15, 0, 0, time.UTC)).Times(2)

	_, err := svc.Register("U1", "22:00", "22:15")
	require.NoError(t, err)

	_, err = svc.Register("U1", "23:00", "22:15")
	require.NoError(t, err)

	require.Equal(t, 1, scheduleStore.Len())
	schedule := scheduleStore.Get("U1")
	require.NotNil(t, schedule)
	assert.Equal(t, domain.TimeOfDay{Hour: 15, Minute: 0}, schedule.TargetUTC)
	assert.Equal(t, "23:00", schedule.LocalTarget)
}

func Test_disconnectService_TimeLeft(t *testing.T) {
	tests := []struct {
		name        string
		targetUTC   domain.TimeOfDay
		now         time.Time
		wantMinutes int
	}{
		{
			name:        "Should count across midnight",
			targetUTC:   domain.TimeOfDay{Hour: 0, Minute: 5},
			now:         time.Date(2024, 5, 1, 23, 50, 0, 0, time.UTC),
			wantMinutes: 15,
		},
		{
			name:        "Should roll a full day when the instant matches",
			targetUTC:   domain.TimeOfDay{Hour: 0, Minute: 5},
			now:         time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC),
			wantMinutes: 1440,
		},
		{
			name:        "Should count a same-day target",
			targetUTC:   domain.TimeOfDay{Hour: 14, Minute: 0},
			now:         time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
			wantMinutes: 60,
		},
		{
			name:        "Should ceiling-round a sub-minute remainder",
			targetUTC:   domain.TimeOfDay{Hour: 13, Minute: 45},
			now:         time.Date(2024, 5, 1, 13, 30, 30, 0, time.UTC),
			wantMinutes: 15,
		},
		{
			name:        "Should roll to tomorrow once the target has passed",
			targetUTC:   domain.TimeOfDay{Hour: 10, Minute: 0},
			now:         time.Date(2024, 5, 1, 10, 1, 0, 0, time.UTC),
			wantMinutes: 1439,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, scheduleStore, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			scheduleStore.Upsert(&entity.Schedule{
				UserID:      "U1",
				TargetUTC:   tt.targetUTC,
				LocalTarget: "22:00",
			})

			m.mockClock.EXPECT().NowUTC().Return(tt.now).Times(1)

			minutes, localTarget, err := svc.TimeLeft("U1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, "22:00", localTarget)
		})
	}

	t.Run("Should return ErrNoSchedule for an unknown user", func(t *testing.T) {
		_, _, svc, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		_, _, err := svc.TimeLeft("U1")
		assert.ErrorIs(t, err, domain.ErrNoSchedule)
	})
}

func Test_disconnectService_Tick(t *testing.T) {
	schedule := func() *entity.Schedule {
		return &entity.Schedule{
			UserID:      "U1",
			TargetUTC:   domain.TimeOfDay{Hour: 14, Minute: 0},
			LocalTarget: "22:00",
			Offset:      480,
		}
	}

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		now       time.Time
		wantKept  bool
	}{
		{
			name: "Should warn 15 minutes ahead and keep the schedule",
			now:  time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockNotifier.EXPECT().
					Notify("U1", gomock.Any()).
					DoAndReturn(func(userID, text string) error {
						require.Contains(t, text, "22:00")
						return nil
					}).Times(1)
			},
			wantKept: true,
		},
		{
			name: "Should keep the schedule when the warning fails",
			now:  time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockNotifier.EXPECT().
					Notify("U1", gomock.Any()).
					Return(assert.AnError).Times(1)
			},
			wantKept: true,
		},
		{
			name: "Should disconnect and remove at the target instant",
			now:  time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockVoice.EXPECT().
					ResolveMember("U1").
					Return(&entity.Member{UserID: "U1", InVoice: true}, nil).Times(1)
				m.mockVoice.EXPECT().
					Disconnect("U1").
					Return(nil).Times(1)
			},
		},
		{
			name: "Should remove without disconnecting when the user is not in voice",
			now:  time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockVoice.EXPECT().
					ResolveMember("U1").
					Return(&entity.Member{UserID: "U1", InVoice: false}, nil).Times(1)
			},
		},
		{
			name: "Should remove when the member is unknown",
			now:  time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockVoice.EXPECT().
					ResolveMember("U1").
					Return(nil, nil).Times(1)
			},
		},
		{
			name: "Should remove even when the member lookup fails",
			now:  time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockVoice.EXPECT().
					ResolveMember("U1").
					Return(nil, assert.AnError).Times(1)
			},
		},
		{
			name: "Should remove even when the disconnect call fails",
			now:  time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockVoice.EXPECT().
					ResolveMember("U1").
					Return(&entity.Member{UserID: "U1", InVoice: true}, nil).Times(1)
				m.mockVoice.EXPECT().
					Disconnect("U1").
					Return(assert.AnError).Times(1)
			},
		},
		{
			name:     "Should do nothing on an unrelated minute",
			now:      time.Date(2024, 5, 1, 12, 34, 0, 0, time.UTC),
			wantKept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, scheduleStore, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			scheduleStore.Upsert(schedule())
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			svc.Tick(tt.now)

			if tt.wantKept {
				assert.NotNil(t, scheduleStore.Get("U1"), "schedule should survive this tick")
			} else {
				assert.Nil(t, scheduleStore.Get("U1"), "schedule should be consumed by this tick")
			}
		})
	}
}

func Test_disconnectService_Tick_FailureIsolation(t *testing.T) {
	m, scheduleStore, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// Both users warn at the same minute; the first notification failing
	// must not prevent the second
	scheduleStore.Upsert(&entity.Schedule{UserID: "U1", TargetUTC: domain.TimeOfDay{Hour: 14, Minute: 0}, LocalTarget: "22:00"})
	scheduleStore.Upsert(&entity.Schedule{UserID: "U2", TargetUTC: domain.TimeOfDay{Hour: 14, Minute: 0}, LocalTarget: "21:00"})

	m.mockNotifier.EXPECT().Notify("U1", gomock.Any()).Return(assert.AnError).Times(1)
	m.mockNotifier.EXPECT().Notify("U2", gomock.Any()).Return(nil).Times(1)

	svc.Tick(time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC))

	assert.Equal(t, 2, scheduleStore.Len())
}

func Test_disconnectService_EndToEnd(t *testing.T) {
	m, scheduleStore, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	// Claimed local 22:15 against UTC 14:15 infers +480
	m.mockClock.EXPECT().
		NowUTC().
		Return(time.Date(2024, 5, 1, 14, 15, 0, 0, time.UTC)).Times(1)

	confirmation, err := svc.Register("U1", "22:00", "22:15")
	require.NoError(t, err)
	assert.Contains(t, confirmation, "22:00")
	assert.Contains(t, confirmation, "UTC+8:00")

	schedule := scheduleStore.Get("U1")
	require.NotNil(t, schedule)
	require.Equal(t, domain.TimeOfDay{Hour: 14, Minute: 0}, schedule.TargetUTC)

	// 13:45 UTC: exactly one warning, schedule kept
	m.mockNotifier.EXPECT().Notify("U1", gomock.Any()).Return(nil).Times(1)
	svc.Tick(time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC))
	require.NotNil(t, scheduleStore.Get("U1"))

	// 14:00 UTC: one disconnect attempt, schedule removed
	m.mockVoice.EXPECT().
		ResolveMember("U1").
		Return(&entity.Member{UserID: "U1", InVoice: true}, nil).Times(1)
	m.mockVoice.EXPECT().Disconnect("U1").Return(nil).Times(1)
	svc.Tick(time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC))
	require.Nil(t, scheduleStore.Get("U1"))

	// Next day at the same instant nothing happens
	svc.Tick(time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC))
}
