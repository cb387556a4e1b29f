package scheduler

// runFCFS pops the queue head, runs it to completion, frees it, and
// repeats until the queue is empty.
func (s *Scheduler) runFCFS() (int, RunStats) {
	var stats RunStats
	lastCode := 0
	for {
		p := s.popNext(s.queue.PopHead)
		if p == nil {
			break
		}
		s.log.Slice(p.PID, p.PC, p.End, -1, s.queue.Len())
		lastCode = s.runSlice(p, -1, lastCode)
		s.log.SliceDone(p.PID, true, lastCode)
		stats.Instructions += p.PC - p.Start
		stats.Processes++
		s.finish(p)
	}
	return lastCode, stats
}
