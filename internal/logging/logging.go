// Package logging sets up file-based diagnostics logging. The TUIs own
// stdout, so everything goes to a log file under the data directory.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Open creates a logger writing to the given file path. The parent
// directory is created if needed.
func Open(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		zap.InfoLevel,
	)
	return zap.New(core), nil
}

// Nop returns a no-op logger for tests and for callers that have no
// log destination.
func Nop() *zap.Logger {
	return zap.NewNop()
}
