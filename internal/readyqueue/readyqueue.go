// Package readyqueue implements the scheduler core's ready queue: a
// singly linked list of PCBs supporting the five dequeue disciplines
// spec.md names (head, tail, shortest-job, by-pid, score-sorted
// insert with aging), plus a thread-safe wrapper for the two-worker
// RR mode.
package readyqueue

import (
	"github.com/sanadi3/427-A2/internal/pcb"
)

// Queue is a singly linked list of *pcb.PCB. The zero value is an
// empty, ready-to-use queue. Not safe for concurrent use; see Locked
// for the multithreaded variant.
type Queue struct {
	head *pcb.PCB
	tail *pcb.PCB
	n    int
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// Len reports the number of queued PCBs in O(1).
func (q *Queue) Len() int {
	return q.n
}

// Empty reports whether the queue holds no PCBs.
func (q *Queue) Empty() bool {
	return q.head == nil
}

// AddTail appends p to the end of the queue in O(1), preserving FIFO
// order among existing entries.
func (q *Queue) AddTail(p *pcb.PCB) {
	p.Next = nil
	if q.tail == nil {
		q.head = p
		q.tail = p
	} else {
		q.tail.Next = p
		q.tail = p
	}
	q.n++
}

// AddHead prepends p to the front of the queue in O(1); used to let a
// running process continue immediately.
func (q *Queue) AddHead(p *pcb.PCB) {
	p.Next = q.head
	q.head = p
	if q.tail == nil {
		q.tail = p
	}
	q.n++
}

// PopHead removes and returns the PCB at the front of the queue in
// O(1), or nil if the queue is empty.
func (q *Queue) PopHead() *pcb.PCB {
	p := q.head
	if p == nil {
		return nil
	}
	q.head = p.Next
	if q.head == nil {
		q.tail = nil
	}
	p.Next = nil
	q.n--
	return p
}

// PeekHead returns the PCB at the front of the queue without removing
// it, or nil if the queue is empty. Does not mutate the queue.
func (q *Queue) PeekHead() *pcb.PCB {
	return q.head
}

// PopShortest scans the queue in O(n) and removes the PCB with the
// smallest JobTime. Ties are broken by first-encountered from head
// (stable).
func (q *Queue) PopShortest() *pcb.PCB {
	if q.head == nil {
		return nil
	}
	best := q.head
	for p := q.head.Next; p != nil; p = p.Next {
		if p.JobTime < best.JobTime {
			best = p
		}
	}
	return q.popNode(best)
}

// PopPID scans the queue in O(n) and removes the PCB whose PID equals
// id, or returns nil if none matches.
func (q *Queue) PopPID(id int) *pcb.PCB {
	for p := q.head; p != nil; p = p.Next {
		if p.PID == id {
			return q.popNode(p)
		}
	}
	return nil
}

// popNode removes target from the list, wherever it is, in O(n) (it
// must walk from head to find target's predecessor), and returns it
// with its Next link cleared.
func (q *Queue) popNode(target *pcb.PCB) *pcb.PCB {
	if target == q.head {
		return q.PopHead()
	}
	prev := q.head
	for prev != nil && prev.Next != target {
		prev = prev.Next
	}
	if prev == nil {
		return nil
	}
	prev.Next = target.Next
	if target == q.tail {
		q.tail = prev
	}
	target.Next = nil
	q.n--
	return target
}

// InsertSorted places p so the queue remains non-decreasing in
// JobLengthScore, in O(n). Ties are broken by inserting p AFTER any
// existing entries with an equal score, so insertion order among
// equal scores is preserved (stable).
func (q *Queue) InsertSorted(p *pcb.PCB) {
	p.Next = nil
	if q.head == nil || p.JobLengthScore < q.head.JobLengthScore {
		q.AddHead(p)
		return
	}
	prev := q.head
	for prev.Next != nil && prev.Next.JobLengthScore <= p.JobLengthScore {
		prev = prev.Next
	}
	p.Next = prev.Next
	prev.Next = p
	if prev == q.tail {
		q.tail = p
	}
	q.n++
}

// AgeAll decrements every queued PCB's JobLengthScore by one, clamped
// at 0, in O(n). The currently running process, not being in the
// queue, is never aged by this call.
func (q *Queue) AgeAll() {
	for p := q.head; p != nil; p = p.Next {
		p.Age()
	}
}
