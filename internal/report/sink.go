package report

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink receives report lines at info or debug level
type Sink interface {
	InfoEnabled() bool
	DebugEnabled() bool
	Info(line string)
	Debug(line string)
}

var (
	_ Sink = (*SlogSink)(nil)
	_ Sink = (*ZapSink)(nil)
	_ Sink = (*Recorder)(nil)
)

// SlogSink writes report lines as slog messages
type SlogSink struct {
	logger *slog.Logger
	ctx    context.Context
}

// NewSlogSink creates a sink on top of logger
func NewSlogSink(ctx context.Context, logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger, ctx: ctx}
}

func (s *SlogSink) InfoEnabled() bool { return s.logger.Enabled(s.ctx, slog.LevelInfo) }
func (s *SlogSink) DebugEnabled() bool { return s.logger.Enabled(s.ctx, slog.LevelDebug) }
func (s *SlogSink) Info(line string) { s.logger.InfoContext(s.ctx, line) }
func (s *SlogSink) Debug(line string) { s.logger.DebugContext(s.ctx, line) }

// ZapSink writes report lines through a zap logger
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink on top of logger
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger}
}

func (s *ZapSink) InfoEnabled() bool { return s.logger.Core().Enabled(zapcore.InfoLevel) }
func (s *ZapSink) DebugEnabled() bool { return s.logger.Core().Enabled(zapcore.DebugLevel) }
func (s *ZapSink) Info(line string) { s.logger.Info(line) }
func (s *ZapSink) Debug(line string) { s.logger.Debug(line) }

// Level selects which lines a Recorder keeps
type Level int

const (
	LevelOff Level = iota
	LevelInfo
	LevelDebug
)

// Line is one recorded report line
type Line struct {
	Debug bool
	Text  string
}

// Recorder keeps report lines in memory. It is safe for concurrent use.
type Recorder struct {
	level Level

	mu    sync.Mutex
	lines []Line
}

// NewRecorder creates a recorder accepting lines up to level
func NewRecorder(level Level) *Recorder {
	return &Recorder{level: level}
}

func (r *Recorder) InfoEnabled() bool { return r.level >= LevelInfo }
func (r *Recorder) DebugEnabled() bool { return r.level >= LevelDebug }

func (r *Recorder) Info(line string) {
	if r.InfoEnabled() {
		r.add(Line{Text: line})
	}
}

func (r *Recorder) Debug(line string) {
	if r.DebugEnabled() {
		r.add(Line{Debug: true, Text: line})
	}
}

func (r *Recorder) add(line Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// Lines returns a copy of the recorded lines
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Line(nil), r.lines...)
}

// Text returns the recorded line texts
func (r *Recorder) Text() []string {
	lines := r.Lines()
	text := make([]string, 0, len(lines))
	for _, l := range lines {
		text = append(text, l.Text)
	}
	return text
}

// Reset drops all recorded lines
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
