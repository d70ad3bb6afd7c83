package finding

import (
	"sync"

	"go.uber.org/zap"
)

// Sink receives findings. Implementations must be safe for concurrent
// appends; findings from one target arrive in emission order.
type Sink interface {
	Append(f Finding)
}

// MemorySink accumulates findings in memory, in arrival order.
type MemorySink struct {
	mu       sync.Mutex
	findings []Finding
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append adds a finding to the sink.
func (s *MemorySink) Append(f Finding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findings = append(s.findings, f)
}

// All returns a copy of the collected findings.
func (s *MemorySink) All() []Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Finding, len(s.findings))
	copy(out, s.findings)
	return out
}

// LogSink writes findings to the structured log. Vulnerability-grade
// findings log at warn, informational ones at info.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that logs every finding.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Append logs the finding.
func (s *LogSink) Append(f Finding) {
	fields := []zap.Field{
		zap.String("kind", string(f.Kind)),
		zap.String("severity", string(f.Severity)),
		zap.String("target", f.Target.String()),
		zap.String("description", f.Description),
	}
	if f.Severity == SeverityInfo {
		s.logger.Info(f.Name, fields...)
		return
	}
	s.logger.Warn(f.Name, fields...)
}

// MultiSink fans a finding out to several sinks in order.
type MultiSink []Sink

// Append delivers the finding to every member sink.
func (m MultiSink) Append(f Finding) {
	for _, s := range m {
		s.Append(f)
	}
}
