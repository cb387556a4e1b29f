package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sanadi3/427-A2/internal/pcb"
	"github.com/sanadi3/427-A2/internal/readyqueue"
)

// runConcurrentRR implements the two-worker multithreaded RR/RR30
// mode described in spec.md §5: a single mutex/condvar-guarded queue
// (readyqueue.Locked), a fixed pool of workerCount workers, and a main
// goroutine that waits for the queue to go quiescent (empty and no
// worker mid-slice) before signaling quit and joining the workers.
func (s *Scheduler) runConcurrentRR(policy Policy) (int, RunStats) {
	s.mtOnce.Do(func() { s.mt = readyqueue.NewLocked() })
	mt := s.mt
	mt.Reactivate()

	// move every pending PCB from the single-threaded queue into the
	// lock-guarded one; this is the only point where the two queues'
	// contents overlap, and it happens before any worker is started.
	for {
		p := s.queue.PopHead()
		if p == nil {
			break
		}
		mt.AddTail(p)
	}
	if s.forcedFirstSet {
		mt.SetForcedFirst(s.forcedFirst)
		s.forcedFirstSet = false
	}

	quantum := policy.quantum()

	var (
		lastCode     int64 // atomically stores the most recent interpreter code
		instructions int64
		processes    int64
	)

	var wg sync.WaitGroup
	wg.Add(s.workerCount)
	for id := 0; id < s.workerCount; id++ {
		go func(id int) {
			defer wg.Done()
			s.log.WorkerStarted(id)
			for {
				p, ok := mt.Acquire()
				if !ok {
					s.log.WorkerStopped(id)
					return
				}
				s.runConcurrentSlice(p, quantum, &lastCode, &instructions, &processes)
				mt.Release(p, p.Done())
			}
		}(id)
	}

	// poll until the queue is quiescent, then signal the workers to
	// exit; per spec.md §5 this must check both queue-emptiness and
	// active-job-count, not emptiness alone.
	for !mt.Quiescent() {
		time.Sleep(time.Millisecond)
	}
	mt.Shutdown()
	wg.Wait()

	stats := RunStats{
		Instructions: int(atomic.LoadInt64(&instructions)),
		Processes:    int(atomic.LoadInt64(&processes)),
	}
	return int(atomic.LoadInt64(&lastCode)), stats
}

// runConcurrentSlice executes one quantum-bounded slice for p outside
// any lock, exactly like the single-threaded runSlice, and folds the
// results into the run-wide atomics.
func (s *Scheduler) runConcurrentSlice(p *pcb.PCB, quantum int, lastCode *int64, instructions, processes *int64) {
	before := p.PC
	s.log.Slice(p.PID, p.PC, p.End, quantum, -1)
	code := s.runSliceAtomic(p, quantum, lastCode)
	atomic.AddInt64(instructions, int64(p.PC-before))
	if p.Done() {
		s.log.SliceDone(p.PID, true, code)
		atomic.AddInt64(processes, 1)
		s.finish(p)
	} else {
		s.log.SliceDone(p.PID, false, code)
	}
}

// runSliceAtomic is runSlice's body, with the "last interpreter code"
// carried in an atomic instead of a plain local, since multiple
// workers execute slices concurrently and all contend to report the
// most-recently-observed code. Ordering among workers' codes isn't
// meaningful (spec.md §5 guarantees no ordering among independent
// processes under RR), so "most recent" here means "last writer
// wins", matching the single-threaded semantics of "the last
// interpreter return value observed".
func (s *Scheduler) runSliceAtomic(p *pcb.PCB, max int, lastCode *int64) int {
	executed := 0
	code := 0
	for p.PC <= p.End && (max < 0 || executed < max) {
		if line, ok := s.store.GetLine(p.PC); ok {
			code = s.execute(line)
			atomic.StoreInt64(lastCode, int64(code))
			if code != 0 {
				s.log.InterpreterError(p.PID, p.PC, code)
			}
		}
		p.PC++
		executed++
	}
	return code
}
