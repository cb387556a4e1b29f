package scheduler

// runAging implements the AGING policy: quantum of 1 instruction.
// After each slice, if the process isn't done it ages every waiter,
// then either keeps running (re-inserted at the front) if it's still
// tied-lowest-or-lower than the new head, or is inserted back into
// the queue by score if a waiter has strictly overtaken it.
func (s *Scheduler) runAging() (int, RunStats) {
	var stats RunStats
	lastCode := 0
	quantum := AGING.quantum()
	for {
		p := s.popNext(s.queue.PopHead)
		if p == nil {
			break
		}
		before := p.PC
		s.log.Slice(p.PID, p.PC, p.End, quantum, s.queue.Len())
		lastCode = s.runSlice(p, quantum, lastCode)
		stats.Instructions += p.PC - before

		if p.Done() {
			s.log.SliceDone(p.PID, true, lastCode)
			stats.Processes++
			s.finish(p)
			continue
		}
		s.log.SliceDone(p.PID, false, lastCode)

		s.queue.AgeAll()
		// p itself also ages by one tick per cycle: the comparison in
		// spec.md's scenario 5 trace only works out if the running
		// process's own score keeps pace with the instructions it has
		// already executed, not just its waiters' scores. See
		// DESIGN.md's note on this policy for the full reconciliation.
		p.Age()
		head := s.queue.PeekHead()
		if head == nil || head.JobLengthScore >= p.JobLengthScore {
			// no waiter has a strictly lower score: p keeps running.
			s.queue.AddHead(p)
		} else {
			s.queue.InsertSorted(p)
		}
	}
	return lastCode, stats
}
