// Package batchsched implements the core of a user-mode batch
// scheduler: a flat code store, process control blocks, a ready queue
// with five dequeue disciplines, and five scheduling policies (FCFS,
// SJF, RR, RR30, AGING), of which RR and RR30 have an opt-in
// two-worker concurrent variant.
//
// The command parser, shell variable store, and interactive REPL that
// would normally drive this package are out of scope: callers supply
// script paths, a policy token, and an ExecuteLine hook, and this
// package does the rest.
package batchsched

import (
	"github.com/sanadi3/427-A2/internal/codestore"
	"github.com/sanadi3/427-A2/internal/loader"
	"github.com/sanadi3/427-A2/internal/obslog"
	"github.com/sanadi3/427-A2/internal/pcb"
	"github.com/sanadi3/427-A2/internal/readyqueue"
	"github.com/sanadi3/427-A2/internal/schederr"
	"github.com/sanadi3/427-A2/internal/scheduler"
)

// Re-exported so callers don't need to import the internal packages
// directly.
type (
	// Policy is one of FCFS, SJF, RR, RR30, AGING.
	Policy = scheduler.Policy

	// ExecuteLine is the external interpreter hook: called once per
	// instruction, with the instruction's opaque text. The returned
	// int is an error code (0 == OK); this package never inspects the
	// text itself.
	ExecuteLine = scheduler.ExecuteLine

	// RunStats summarizes one LoadAndSchedule call: total instructions
	// executed and total processes completed. Pure introspection, with
	// no effect on scheduling behavior.
	RunStats = scheduler.RunStats
)

const (
	FCFS  = scheduler.FCFS
	SJF   = scheduler.SJF
	RR    = scheduler.RR
	RR30  = scheduler.RR30
	AGING = scheduler.AGING
)

// ParsePolicy matches a case-sensitive policy token ("FCFS", "SJF",
// "RR", "RR30", "AGING"). Any other token returns schederr.ErrBadPolicy
// (see the Diagnostic helper for the human-readable text).
var ParsePolicy = scheduler.ParsePolicy

// MemSize is the total number of instruction slots shared across all
// live programs.
const MemSize = codestore.MemSize

// MaxScripts is the maximum number of scripts a single LoadAndSchedule
// call accepts.
const MaxScripts = loader.MaxScripts

// Config configures a Scheduler instance. The zero value is not valid;
// build one with NewConfig.
type Config struct {
	workerCount int
	concurrent  bool
	logger      *obslog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithConcurrentRR opts RR/RR30 into the two-worker multithreaded
// mode. Default: single-threaded.
func WithConcurrentRR(enabled bool) Option {
	return func(c *Config) { c.concurrent = enabled }
}

// WithWorkerCount overrides the worker pool size used by concurrent
// RR/RR30 runs. Default: 2, per spec.md's fixed two-worker pool.
func WithWorkerCount(n int) Option {
	return func(c *Config) { c.workerCount = n }
}

// WithLogger sets the structured event sink. Default: discard.
func WithLogger(l *obslog.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// NewConfig builds a Config from the given options.
func NewConfig(opts ...Option) Config {
	c := Config{workerCount: 2}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Scheduler is the top-level handle a caller holds across one or more
// LoadAndSchedule calls: it owns the code store, ready queue, pid
// allocator, and the underlying policy-dispatching scheduler.
//
// Per spec.md §9's "explicit contexts" note, a Scheduler gathers what
// was module-level global state in the source (the queue, the code
// store, the pid counter, the run-active flag) into a single value
// constructed once and passed by reference everywhere it's needed.
type Scheduler struct {
	store   *codestore.Store
	queue   *readyqueue.Queue
	factory *pcb.Factory
	core    *scheduler.Scheduler
	log     *obslog.Logger
}

// New constructs a Scheduler. execute is called once per instruction
// across every LoadAndSchedule call made on the returned Scheduler.
func New(execute ExecuteLine, cfg Config) *Scheduler {
	log := cfg.logger
	if log == nil {
		log = obslog.Discard()
	}
	store := codestore.New()
	queue := readyqueue.New()
	return &Scheduler{
		store:   store,
		queue:   queue,
		factory: pcb.NewFactory(),
		core: scheduler.New(store, queue, execute,
			scheduler.WithWorkerCount(cfg.workerCount),
			scheduler.WithConcurrentRR(cfg.concurrent),
			scheduler.WithLogger(log),
		),
		log: log,
	}
}

// SetForcedFirst installs a one-shot pid that must be dequeued before
// the next Run's normal policy selection. Used only by batch mode,
// where a shell's own driver script must run before any user program
// even under SJF.
func (s *Scheduler) SetForcedFirst(pid int) {
	s.core.SetForcedFirst(pid)
}

// LoadAndSchedule loads 1-3 scripts (plain text files, one
// instruction per line) in order, builds a PCB per script, enqueues
// them (InsertSorted under AGING, AddTail otherwise), and runs policy
// to completion.
//
// On any load failure (duplicate path, unreadable file, or code-store
// exhaustion) nothing is loaded or enqueued, the scheduler is never
// invoked, and the returned error wraps one of the schederr sentinels;
// when loudErrors is true the corresponding diagnostic text is also
// logged at warn level.
func (s *Scheduler) LoadAndSchedule(paths []string, policy Policy, loudErrors bool) (int, RunStats, error) {
	s.log.LoadStart(paths, string(policy))

	ranges, err := loader.Load(s.store, paths)
	if err != nil {
		if loudErrors {
			s.log.LoadFailed(schederr.Diagnostic(err), err)
		}
		return 1, RunStats{}, err
	}

	return loader.Run(s.queue, s.factory, s.core, ranges, policy)
}
