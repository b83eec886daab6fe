package trace

import (
	"fmt"
	"io"
	"time"
)

// Tracer is the sink every Context (internal/sema) reports pass/phase
// timing to; the TAC Generator does not trace. Grounded on the
// teacher's Tracer interface (internal/trace/tracer.go) trimmed to
// the single stream-writer backend SPEC_FULL's --trace flag needs.
type Tracer interface {
	Emit(ev Event)
	Enabled() bool
	Level() Level
}

// Config selects a Tracer's verbosity and destination.
type Config struct {
	Level  Level
	Output io.Writer
}

// New builds a Tracer from cfg. A LevelOff config (or a nil Output at
// any other level) returns the no-op tracer.
func New(cfg Config) Tracer {
	if cfg.Level == LevelOff || cfg.Output == nil {
		return nopTracer{}
	}
	return &streamTracer{level: cfg.Level, out: cfg.Output}
}

type nopTracer struct{}

func (nopTracer) Emit(Event)        {}
func (nopTracer) Enabled() bool     { return false }
func (nopTracer) Level() Level      { return LevelOff }

type streamTracer struct {
	level Level
	out   io.Writer
}

func (t *streamTracer) Enabled() bool { return t.level != LevelOff }
func (t *streamTracer) Level() Level  { return t.level }

func (t *streamTracer) Emit(ev Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	ts := ev.Time.Format(time.RFC3339Nano)
	if ev.Note == "" {
		fmt.Fprintf(t.out, "[%s] %s %s %s\n", ts, ev.Scope, ev.Kind, ev.Name)
		return
	}
	fmt.Fprintf(t.out, "[%s] %s %s %s: %s\n", ts, ev.Scope, ev.Kind, ev.Name, ev.Note)
}

// Span emits a begin/end pair around fn, returning fn's error. The
// analyzer in internal/sema uses this to bracket each pass without
// hand-rolling the begin/end Emit calls.
func Span(t Tracer, scope Scope, name string, fn func() error) error {
	if !t.Enabled() {
		return fn()
	}
	t.Emit(Event{Time: time.Now(), Kind: KindSpanBegin, Scope: scope, Name: name})
	err := fn()
	note := ""
	if err != nil {
		note = err.Error()
	}
	t.Emit(Event{Time: time.Now(), Kind: KindSpanEnd, Scope: scope, Name: name, Note: note})
	return err
}
