// Package obslog provides the scheduler core's structured logging,
// a thin wrapper over zerolog (the backend the teacher module's
// logiface-zerolog adapter targets) that keeps call sites terse and
// keeps the event vocabulary small and stable.
package obslog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is a structured event sink for the scheduler core. The zero
// value is not usable; construct with New.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing timestamped events to w as zerolog's
// JSON lines. A nil w defaults to os.Stderr.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Discard returns a Logger that drops every event; used as the
// default when a caller doesn't supply one.
func Discard() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

var (
	defaultOnce sync.Once
	defaultLog  *Logger
)

// Default returns a process-wide Logger writing to os.Stderr,
// constructed once on first use.
func Default() *Logger {
	defaultOnce.Do(func() { defaultLog = New(os.Stderr) })
	return defaultLog
}

// LoadStart logs the beginning of a load call.
func (l *Logger) LoadStart(paths []string, policy string) {
	l.zl.Info().Strs("paths", paths).Str("policy", policy).Msg("load start")
}

// LoadFailed logs a rolled-back load failure.
func (l *Logger) LoadFailed(reason string, err error) {
	l.zl.Warn().Str("reason", reason).Err(err).Msg("load failed")
}

// RunStart logs a scheduler Run invocation.
func (l *Logger) RunStart(policy string, queued int) {
	l.zl.Info().Str("policy", policy).Int("queued", queued).Msg("run start")
}

// RunRejected logs a rejected re-entrant Run call.
func (l *Logger) RunRejected(policy string) {
	l.zl.Warn().Str("policy", policy).Msg("run rejected: already running")
}

// Slice logs one scheduling decision: a PCB was dequeued and given a
// slice of up to max instructions.
func (l *Logger) Slice(pid, pc, end, max, queueLen int) {
	l.zl.Debug().
		Int("pid", pid).
		Int("pc", pc).
		Int("end", end).
		Int("quantum", max).
		Int("queue_len", queueLen).
		Msg("slice start")
}

// SliceDone logs the outcome of a slice: whether the process
// terminated or was re-enqueued, and the last interpreter code seen.
func (l *Logger) SliceDone(pid int, terminated bool, lastCode int) {
	l.zl.Debug().
		Int("pid", pid).
		Bool("terminated", terminated).
		Int("last_code", lastCode).
		Msg("slice done")
}

// InterpreterError logs a non-zero return from the execute-line hook.
func (l *Logger) InterpreterError(pid, pc, code int) {
	l.zl.Warn().Int("pid", pid).Int("pc", pc).Int("code", code).Msg("interpreter error")
}

// WorkerStarted logs a worker goroutine coming up in MT RR mode.
func (l *Logger) WorkerStarted(id int) {
	l.zl.Debug().Int("worker", id).Msg("worker started")
}

// WorkerStopped logs a worker goroutine exiting.
func (l *Logger) WorkerStopped(id int) {
	l.zl.Debug().Int("worker", id).Msg("worker stopped")
}

// RunDone logs completion of a Run call, including the supplemented
// RunStats summary.
func (l *Logger) RunDone(policy string, lastCode int, instructions, processes int) {
	l.zl.Info().
		Str("policy", policy).
		Int("last_code", lastCode).
		Int("instructions", instructions).
		Int("processes", processes).
		Msg("run done")
}
