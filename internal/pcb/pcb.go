// Package pcb implements the process control block: the per-process
// record carried through the ready queue, and the monotonic pid
// allocator that names it.
package pcb

// PCB describes one loaded script as a schedulable process.
type PCB struct {
	PID   int
	Start int // inclusive code-store index of first instruction
	End   int // inclusive code-store index of last instruction; End == Start-1 means empty
	PC    int // next instruction index to execute; Start <= PC <= End+1

	JobTime        int // static length at creation: End - Start + 1
	JobLengthScore int // aging score, floor 0, initially == JobTime

	// Next is owned exclusively by the readyqueue package; nothing
	// outside it should read or write this field.
	Next *PCB
}

// Factory assigns unique, monotonically increasing pids starting at
// 1. Per spec.md's "explicit contexts" guidance, a Factory belongs to
// a single SchedulerContext/Scheduler instance rather than being
// process-global, so two independent schedulers (e.g. in tests) don't
// share a pid sequence. Not safe for concurrent use without external
// locking; the scheduler core only ever creates PCBs from the loader,
// before any worker is started.
type Factory struct {
	next int
}

// NewFactory returns a Factory whose first allocation has pid 1.
func NewFactory() *Factory {
	return &Factory{next: 1}
}

// New allocates a PCB for the inclusive code range [start, end]. end
// == start-1 describes a zero-line (empty) program.
func (f *Factory) New(start, end int) *PCB {
	pid := f.next
	f.next++
	jobTime := end - start + 1
	return &PCB{
		PID:            pid,
		Start:          start,
		End:            end,
		PC:             start,
		JobTime:        jobTime,
		JobLengthScore: jobTime,
	}
}

// Done reports whether the PCB has executed its full program.
func (p *PCB) Done() bool {
	return p.PC > p.End
}

// Age decrements JobLengthScore by one, clamped at 0.
func (p *PCB) Age() {
	if p.JobLengthScore > 0 {
		p.JobLengthScore--
	}
}
