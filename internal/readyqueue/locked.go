package readyqueue

import (
	"sync"

	"github.com/sanadi3/427-A2/internal/pcb"
)

// Locked wraps a Queue with the single mutex and single condition
// variable spec.md §5 mandates for the two-worker RR/RR30 mode: every
// queue mutation, plus the cooperating ActiveJobs counter and Quit
// flag, is guarded by one lock, and Cond broadcasts whenever queue
// state a waiter might care about changes.
//
// sync.Mutex/sync.Cond, rather than a channel-based queue, is used
// deliberately here: the protocol spec.md describes (wait while empty
// and not quitting; increment/decrement an activity counter around a
// slice; have the main goroutine poll until both queue-empty and
// activity-zero before broadcasting quit) is the textbook condvar
// pattern, and forcing it through channels would only reintroduce a
// condvar by hand.
type Locked struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    Queue

	activeJobs int
	quit       bool

	// forcedFirst is the one-shot pid that must be dequeued before
	// normal selection, read-and-cleared under mu per spec.md §9.
	forcedFirst    int
	forcedFirstSet bool
}

// NewLocked returns an empty, lock-guarded queue.
func NewLocked() *Locked {
	l := &Locked{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// SetForcedFirst installs a one-shot forced-first pid.
func (l *Locked) SetForcedFirst(pid int) {
	l.mu.Lock()
	l.forcedFirst = pid
	l.forcedFirstSet = true
	l.mu.Unlock()
}

// AddTail appends p and wakes any waiting worker.
func (l *Locked) AddTail(p *pcb.PCB) {
	l.mu.Lock()
	l.q.AddTail(p)
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Len reports the current queue length.
func (l *Locked) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Len()
}

// ActiveJobs reports the number of slices currently executing outside
// the lock across all workers.
func (l *Locked) ActiveJobs() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.activeJobs
}

// Quiescent reports whether the queue is empty and no worker is
// mid-slice: the condition the main goroutine waits for before
// setting Quit, per spec.md §5's race-avoidance note.
func (l *Locked) Quiescent() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.q.Empty() && l.activeJobs == 0
}

// Shutdown sets Quit and wakes every worker so they can observe it.
func (l *Locked) Shutdown() {
	l.mu.Lock()
	l.quit = true
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Reactivate clears Quit so a new worker pool can be started against
// this Locked queue, letting a single Scheduler reuse one Locked
// instance across repeated concurrent RR/RR30 runs instead of leaking
// a fresh one per call.
func (l *Locked) Reactivate() {
	l.mu.Lock()
	l.quit = false
	l.mu.Unlock()
}

// Acquire blocks until either work is available (forced-first pid or
// a non-empty queue) or Quit is set with an empty queue, then returns
// the next PCB to run (incrementing ActiveJobs on its behalf) and a
// bool reporting whether the worker should keep running. A false
// return means the worker observed quit-and-empty and should exit;
// the returned PCB is always nil in that case.
func (l *Locked) Acquire() (*pcb.PCB, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		if l.forcedFirstSet {
			if p := l.q.PopPID(l.forcedFirst); p != nil {
				l.forcedFirstSet = false
				l.activeJobs++
				return p, true
			}
		}
		if p := l.q.PopHead(); p != nil {
			l.activeJobs++
			return p, true
		}
		if l.quit {
			return nil, false
		}
		l.cond.Wait()
	}
}

// Release is called by a worker after finishing a slice for p. If
// terminated is true the PCB is not re-enqueued (the caller has
// already freed its code range); otherwise p is appended to the tail.
// Either way ActiveJobs is decremented and every waiter is woken.
func (l *Locked) Release(p *pcb.PCB, terminated bool) {
	l.mu.Lock()
	if !terminated {
		l.q.AddTail(p)
	}
	l.activeJobs--
	l.cond.Broadcast()
	l.mu.Unlock()
}
