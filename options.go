package connect4

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snowdrop4/spooky-connect4/internal/config"
	"github.com/snowdrop4/spooky-connect4/internal/domain"
)

type settings struct {
	cols      int
	rows      int
	tableSize int
	workers   int
	logger    *zap.Logger
}

// Option tweaks a new game. Defaults come from the environment (see
// internal/config) and fall back to the standard 7x6 board, a single
// search worker and a no-op logger.
type Option func(*settings)

// WithSize selects the board dimensions. Both sides must be at least 4 and
// the encoding must fit one machine word: cols*(rows+1) <= 64.
func WithSize(cols, rows int) Option {
	return func(s *settings) {
		s.cols = cols
		s.rows = rows
	}
}

// WithTableSize sets the solver's transposition table capacity in entries.
func WithTableSize(n int) Option {
	return func(s *settings) {
		s.tableSize = n
	}
}

// WithWorkers enables the parallel root split with n workers.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// WithLogger attaches a logger for solver diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

func defaultSettings() settings {
	cfg := config.Load()
	return settings{
		cols:      domain.StandardCols,
		rows:      domain.StandardRows,
		tableSize: cfg.TableSize,
		workers:   cfg.Workers,
		logger:    envLogger(cfg.LogLevel),
	}
}

// envLogger builds a logger when LOG_LEVEL is set; a library stays silent
// otherwise.
func envLogger(level string) *zap.Logger {
	if level == "" {
		return nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil
	}
	return l
}
