package config

import (
	"go.uber.org/zap"
)

type Bootstrap struct {
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown() error {
	return b.Logger.Sync()
}
