// Package codestore implements the scheduler core's flat instruction
// store: a fixed-capacity array of owned text lines addressed by
// integer index, so PCBs can reference program text by range instead
// of by pointer.
package codestore

// MemSize is the total number of instruction slots shared across all
// live programs, across one or more loaded scripts.
const MemSize = 1000

// Store is a dense, fixed-capacity array of text-line slots. The zero
// value is ready to use. Not safe for concurrent use; callers must
// serialize loads against each other and against any in-flight run
// (the scheduler core only ever loads before a run starts).
type Store struct {
	lines   [MemSize]*string
	codeIdx int
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Len reports the current append cursor (high-water mark), i.e. the
// number of slots from 0 that have ever been claimed and not yet
// compacted away.
func (s *Store) Len() int {
	return s.codeIdx
}

// LoadLine copies line into the next free slot, returning the index
// it was stored at, or -1 if the store is full.
func (s *Store) LoadLine(line string) int {
	if s.codeIdx >= MemSize {
		return -1
	}
	idx := s.codeIdx
	cp := line
	s.lines[idx] = &cp
	s.codeIdx++
	return idx
}

// GetLine returns the line stored at i, or "", false if i is out of
// bounds or the slot is empty.
func (s *Store) GetLine(i int) (string, bool) {
	if i < 0 || i >= MemSize || s.lines[i] == nil {
		return "", false
	}
	return *s.lines[i], true
}

// Cleanup releases every non-nil slot in the inclusive range [start,
// end], then retracts the append cursor while the slot immediately
// below it is nil. A range with end < start (an empty program) is a
// no-op.
func (s *Store) Cleanup(start, end int) {
	for i := start; i <= end; i++ {
		if i < 0 || i >= MemSize {
			continue
		}
		s.lines[i] = nil
	}
	for s.codeIdx > 0 && s.lines[s.codeIdx-1] == nil {
		s.codeIdx--
	}
}
