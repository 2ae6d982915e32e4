// Package diagnostics defines the side channel decoders report absorbed
// failures to. Decoders never surface these failures to their callers; a sink
// lets applications observe them without changing the skip-and-continue
// contract.
package diagnostics

import (
	"log/slog"
	"sync"
)

// Sink receives one report per dropped payload element.
type Sink interface {
	DecodeFailed(entity string, err error)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(entity string, err error)

// DecodeFailed delegates to the underlying function.
func (fn SinkFunc) DecodeFailed(entity string, err error) {
	if fn == nil {
		return
	}
	fn(entity, err)
}

// Discard drops every report.
var Discard Sink = SinkFunc(func(string, error) {})

// Slog returns a sink that writes warnings through logger. A nil logger falls
// back to slog.Default at report time.
func Slog(logger *slog.Logger) Sink {
	return slogSink{logger: logger}
}

type slogSink struct {
	logger *slog.Logger
}

func (s slogSink) DecodeFailed(entity string, err error) {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("decode failed, skipping item", slog.String("entity", entity), slog.Any("error", err))
}

// Report is a single recorded failure.
type Report struct {
	Entity string
	Err    error
}

// Recorder keeps reports in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

// DecodeFailed implements Sink.
func (r *Recorder) DecodeFailed(entity string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Entity: entity, Err: err})
}

// Reports returns a copy of everything recorded so far.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Entities lists the entity names in report order.
func (r *Recorder) Entities() []string {
	reports := r.Reports()
	out := make([]string, len(reports))
	for i, report := range reports {
		out[i] = report.Entity
	}
	return out
}
