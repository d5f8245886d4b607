package reporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Writer prints the messages of a failed pass, one per line, followed by the
// name of the focus field.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (r *Writer) Report(messages []string, focus *form.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(messages) > 0 {
		fmt.Fprintln(r.w, strings.Join(messages, "\n"))
	}
	if focus != nil {
		fmt.Fprintf(r.w, "focus: %s\n", focus.Name)
	}
}

// Log records a failed pass as a single structured log record.
type Log struct {
	log   *slog.Logger
	level slog.Level
}

// NewLog returns a reporter logging at level. A nil logger discards records.
func NewLog(l *slog.Logger, level slog.Level) *Log {
	if l == nil {
		l = logger.Discard()
	}
	return &Log{log: l, level: level}
}

func (r *Log) Report(messages []string, focus *form.Field) {
	attrs := []slog.Attr{
		slog.Int("failures", len(messages)),
		slog.Any("messages", messages),
	}
	if focus != nil {
		attrs = append(attrs, logger.Field(focus.Name))
	}
	r.log.LogAttrs(context.Background(), r.level, "validation failed", attrs...)
}

// Report is one recorded call.
type Report struct {
	Messages []string
	Focus    *form.Field
}

// Recorder keeps every report it receives. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(messages []string, focus *form.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{
		Messages: append([]string(nil), messages...),
		Focus:    focus,
	})
}

// Reports returns a copy of the recorded reports in arrival order.
func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Last returns the most recent report.
func (r *Recorder) Last() (Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reports) == 0 {
		return Report{}, false
	}
	return r.reports[len(r.reports)-1], true
}

// Len returns the number of recorded reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

type multi []rules.Reporter

func (m multi) Report(messages []string, focus *form.Field) {
	for _, r := range m {
		r.Report(messages, focus)
	}
}

// Multi fans a report out to every non-nil reporter in order.
func Multi(reporters ...rules.Reporter) rules.Reporter {
	out := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
