// Package scheduler implements the five policy loops (FCFS, SJF, RR,
// RR30, AGING) that drain a ready queue against a code store, plus
// the two-worker concurrent variant for RR/RR30.
package scheduler

import (
	"sync"

	"github.com/sanadi3/427-A2/internal/codestore"
	"github.com/sanadi3/427-A2/internal/obslog"
	"github.com/sanadi3/427-A2/internal/pcb"
	"github.com/sanadi3/427-A2/internal/readyqueue"
	"github.com/sanadi3/427-A2/internal/schederr"
)

// ExecuteLine is the external interpreter hook. The scheduler never
// parses or inspects line; it only forwards mem_get_line's result and
// records the returned error code.
type ExecuteLine func(line string) int

// RunStats is the supplemented per-run summary (see SPEC_FULL.md):
// instructions and processes this Run call executed/completed, a
// read-only introspection addition with no effect on scheduling
// behavior.
type RunStats struct {
	Instructions int
	Processes    int
}

// Scheduler owns the ready queue, the shared code store, and the
// forced-first-pid one-shot, and dispatches Run to one of the five
// policy loops. The zero value is not usable; construct with New.
type Scheduler struct {
	store   *codestore.Store
	queue   *readyqueue.Queue
	execute ExecuteLine
	log     *obslog.Logger

	workerCount int
	concurrent  bool

	runMu   sync.Mutex
	running bool

	forcedFirst    int
	forcedFirstSet bool

	// mt holds the lock-guarded queue and worker bookkeeping used only
	// by the concurrent RR/RR30 path; built lazily on first use since
	// most Scheduler instances never take that path.
	mt     *readyqueue.Locked
	mtOnce sync.Once
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithWorkerCount overrides the fixed worker pool size used by the
// concurrent RR/RR30 path. spec.md fixes this at 2; tests may lower
// or (within the spec's "no more than two workers" non-goal) this is
// otherwise left at the spec default.
func WithWorkerCount(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithConcurrentRR opts RR/RR30 into the two-worker multithreaded
// mode described in spec.md §5. Default is single-threaded.
func WithConcurrentRR(enabled bool) Option {
	return func(s *Scheduler) { s.concurrent = enabled }
}

// WithLogger overrides the Scheduler's obslog sink. Default is
// obslog.Discard().
func WithLogger(l *obslog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Scheduler over store and queue, calling execute
// for every instruction it runs.
func New(store *codestore.Store, queue *readyqueue.Queue, execute ExecuteLine, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:       store,
		queue:       queue,
		execute:     execute,
		log:         obslog.Discard(),
		workerCount: 2,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetForcedFirst installs a one-shot pid that must be dequeued before
// the policy's normal selection on the next Run call.
func (s *Scheduler) SetForcedFirst(pid int) {
	s.forcedFirst = pid
	s.forcedFirstSet = true
}

// Run executes policy to completion against the Scheduler's queue,
// returning the last non-zero-or-not interpreter error code observed
// (0 if every instruction returned 0 or none ran) and the run's
// summary statistics. Re-entry while already running returns
// schederr.ErrAlreadyRunning immediately without touching state.
func (s *Scheduler) Run(policy Policy) (int, RunStats, error) {
	s.runMu.Lock()
	if s.running {
		s.runMu.Unlock()
		s.log.RunRejected(string(policy))
		return 1, RunStats{}, schederr.ErrAlreadyRunning
	}
	s.running = true
	s.runMu.Unlock()
	defer func() {
		s.runMu.Lock()
		s.running = false
		s.runMu.Unlock()
	}()

	s.log.RunStart(string(policy), s.queue.Len())

	var (
		lastCode int
		stats    RunStats
		err      error
	)
	switch policy {
	case FCFS:
		lastCode, stats = s.runFCFS()
	case SJF:
		lastCode, stats = s.runSJF()
	case AGING:
		lastCode, stats = s.runAging()
	case RR, RR30:
		if s.concurrent {
			lastCode, stats = s.runConcurrentRR(policy)
		} else {
			lastCode, stats = s.runRR(policy)
		}
	default:
		err = schederr.ErrPolicyNotImplemented
		lastCode = 1
	}

	s.log.RunDone(string(policy), lastCode, stats.Instructions, stats.Processes)
	return lastCode, stats, err
}

// popNext applies the forced-first one-shot (read-and-clear) ahead of
// fn, the policy's normal dequeue step.
func (s *Scheduler) popNext(fn func() *pcb.PCB) *pcb.PCB {
	if s.forcedFirstSet {
		if p := s.queue.PopPID(s.forcedFirst); p != nil {
			s.forcedFirstSet = false
			return p
		}
	}
	return fn()
}

// runSlice executes instructions at p.PC, p.PC+1, ... by calling
// execute for each, until either p.PC exceeds p.End or executed ==
// max (max < 0 means run to completion). p.PC advances unconditionally
// per instruction, whether or not the line was present. Returns the
// most recent non-null line's error code, or lastError if none ran.
func (s *Scheduler) runSlice(p *pcb.PCB, max int, lastError int) int {
	executed := 0
	for p.PC <= p.End && (max < 0 || executed < max) {
		if line, ok := s.store.GetLine(p.PC); ok {
			code := s.execute(line)
			lastError = code
			if code != 0 {
				s.log.InterpreterError(p.PID, p.PC, code)
			}
		}
		p.PC++
		executed++
	}
	return lastError
}

// finish frees p's code range; callers must have already removed p
// from the queue (it never re-enters the queue after this).
func (s *Scheduler) finish(p *pcb.PCB) {
	s.store.Cleanup(p.Start, p.End)
}
