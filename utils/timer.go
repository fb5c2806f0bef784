package utils

import (
	"time"

	"go.uber.org/zap"
)

// StartTimer logs the time elapsed between its call and the call of the returned
// stop func. Use it as `defer utils.StartTimer(log, "step")()`.
func StartTimer(log *zap.Logger, name string) (stop func()) {
	start := time.Now()
	return func() {
		log.Debug("timer", zap.String("name", name), zap.Duration("elapsed", time.Since(start)))
	}
}
