package scheduler

// runRR implements single-threaded RR/RR30: pop head, run up to
// policy's quantum instructions, free if finished else re-append to
// tail, repeat until the queue is empty.
func (s *Scheduler) runRR(policy Policy) (int, RunStats) {
	var stats RunStats
	lastCode := 0
	quantum := policy.quantum()
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
		} else {
			s.log.SliceDone(p.PID, false, lastCode)
			s.queue.AddTail(p)
		}
	}
	return lastCode, stats
}
