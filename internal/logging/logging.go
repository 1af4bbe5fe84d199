package logging

import (
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// Init builds the process logger. Verbose enables debug-level console
// output; otherwise only warnings and errors surface, keeping reports quiet.
func Init(verbose bool) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	l, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// L returns the process logger, falling back to a no-op logger so library
// callers and tests never need Init.
func L() *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}
