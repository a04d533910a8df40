package kind

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs l as the destination of debug traces for kind
// construction, merging, blending and constraint violations. Passing nil
// silences them again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *zap.Logger {
	return logger.Load()
}
