package service

import (
	"github.com/rayprastya/stop-playing/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Disconnect *disconnectService
	Sweep      *sweepService
}

func NewInstance(store contract.ScheduleStore, notifier contract.Notifier, voice contract.VoiceGateway, clock contract.Clock, log *zap.Logger, sweepCfg SweepConfig) *Instance {
	return &Instance{
		Disconnect: newDisconnect(store, notifier, voice, clock, log),
		Sweep:      newSweep(notifier, voice, log, sweepCfg),
	}
}
