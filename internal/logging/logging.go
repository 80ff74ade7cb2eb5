// Package logging sets up the application logger and routes library
// tracing into it.
//
// The braille packages trace through schuko's tracing facade and never pick
// a logger themselves. Initialize installs a trace selector that forwards
// those traces to the global zap logger, so they show up in the server log.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldDurationMS = "duration_ms"
	FieldRemote     = "remote"
	FieldCells      = "cells"
	FieldError      = "error"
	FieldAddress    = "address"
)

// Logger is the global logger. It is a no-op logger until Initialize is
// called.
var Logger = zap.NewNop().Sugar()

// Options configure Initialize.
type Options struct {
	Level  string    // debug, info, warn or error
	JSON   bool      // JSON lines instead of console output
	Output io.Writer // defaults to stderr
}

// Initialize replaces the global logger and installs a trace selector for
// library tracing at the matching level.
func Initialize(opts Options) error {
	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if opts.Level == "" {
		level, err = zapcore.InfoLevel, nil
	}
	if err != nil {
		return err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(newEncoder(opts.JSON), zapcore.AddSync(out), level)
	Logger = zap.New(core).Sugar()
	tracing.SetTraceSelector(NewSelector(Logger, TraceLevelFor(level)))
	return nil
}

func newEncoder(json bool) zapcore.Encoder {
	if json {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeCaller = nil
	return zapcore.NewConsoleEncoder(cfg)
}

// TraceLevelFor maps a zap level to the closest trace level.
func TraceLevelFor(l zapcore.Level) tracing.TraceLevel {
	switch {
	case l <= zapcore.DebugLevel:
		return tracing.LevelDebug
	case l == zapcore.InfoLevel:
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// Sync flushes the global logger.
func Sync() {
	_ = Logger.Sync()
}
