package logging

import (
	"io"
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Trace implements tracing.Trace on top of a zap logger.
type Trace struct {
	log   atomic.Pointer[zap.SugaredLogger]
	level atomic.Uint32
}

var _ tracing.Trace = (*Trace)(nil)

// NewTrace creates a tracer writing to log, filtering at level.
func NewTrace(log *zap.SugaredLogger, level tracing.TraceLevel) *Trace {
	t := &Trace{}
	t.log.Store(log)
	t.level.Store(uint32(level))
	return t
}

func (t *Trace) Errorf(msg string, args ...interface{}) {
	t.log.Load().Errorf(msg, args...)
}

func (t *Trace) Infof(msg string, args ...interface{}) {
	if t.GetTraceLevel() >= tracing.LevelInfo {
		t.log.Load().Infof(msg, args...)
	}
}

func (t *Trace) Debugf(msg string, args ...interface{}) {
	if t.GetTraceLevel() >= tracing.LevelDebug {
		t.log.Load().Debugf(msg, args...)
	}
}

// P returns a tracer with an additional structured field.
func (t *Trace) P(key string, val interface{}) tracing.Trace {
	return NewTrace(t.log.Load().With(key, val), t.GetTraceLevel())
}

func (t *Trace) SetTraceLevel(level tracing.TraceLevel) {
	t.level.Store(uint32(level))
}

func (t *Trace) GetTraceLevel() tracing.TraceLevel {
	return tracing.TraceLevel(t.level.Load())
}

// SetOutput redirects the tracer to w, using a console encoder.
func (t *Trace) SetOutput(w io.Writer) {
	core := zapcore.NewCore(newEncoder(false), zapcore.AddSync(w), zapcore.DebugLevel)
	t.log.Store(zap.New(core).Sugar())
}

// Selector hands out tracers named by their key, all writing to the same
// logger.
type Selector struct {
	base  *zap.SugaredLogger
	level tracing.TraceLevel
}

// NewSelector creates a trace selector for tracing.SetTraceSelector.
func NewSelector(base *zap.SugaredLogger, level tracing.TraceLevel) *Selector {
	return &Selector{base: base, level: level}
}

func (s *Selector) Select(key string) tracing.Trace {
	return NewTrace(s.base.Named(key), s.level)
}
