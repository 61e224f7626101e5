package wasm

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the package's diagnostic logger. It is a no-op logger
// until SetLogger is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger installs l as the package's diagnostic logger. Passing nil
// restores the no-op logger. Intended for host programs embedding this
// package that want visibility into binding collisions and similar
// construction-time diagnostics; it never gates correctness.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
