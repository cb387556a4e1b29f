package scheduler

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentRR_Determinism exercises spec.md §8 scenario 7: three
// 4-line programs under two-worker RR quantum 2 must execute every
// instruction exactly once, 12 total, and leave the queue and worker
// pool quiescent.
func TestConcurrentRR_Determinism(t *testing.T) {
	h := newHarness(WithConcurrentRR(true), WithWorkerCount(2))

	var mu sync.Mutex
	var seen []string
	h.sched.execute = func(line string) int {
		mu.Lock()
		seen = append(seen, line)
		mu.Unlock()
		return 0
	}

	a := h.load("A", 4)
	b := h.load("B", 4)
	c := h.load("C", 4)
	h.queue.AddTail(a)
	h.queue.AddTail(b)
	h.queue.AddTail(c)

	code, stats, err := h.sched.Run(RR)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, 12, stats.Instructions)
	assert.Equal(t, 3, stats.Processes)

	sort.Strings(seen)
	want := []string{"A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4", "C1", "C2", "C3", "C4"}
	assert.Equal(t, want, seen, "every instruction must execute exactly once")

	assert.Equal(t, 0, h.queue.Len())
	assert.Equal(t, 0, h.sched.mt.Len())
	assert.Equal(t, 0, h.sched.mt.ActiveJobs())
	assert.True(t, h.sched.mt.Quiescent())
}

// TestConcurrentRR_RepeatedRuns checks that the lock-guarded queue
// (built lazily, once) can be reused across more than one Run call;
// each Run starts its own workers and joins them before returning.
func TestConcurrentRR_RepeatedRuns(t *testing.T) {
	h := newHarness(WithConcurrentRR(true))
	var mu sync.Mutex
	var seen []string
	h.sched.execute = func(line string) int {
		mu.Lock()
		seen = append(seen, line)
		mu.Unlock()
		return 0
	}

	for i := 0; i < 3; i++ {
		seen = nil
		p := h.load("X", 2)
		h.queue.AddTail(p)
		_, stats, err := h.sched.Run(RR30)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Instructions)
		assert.ElementsMatch(t, []string{"X1", "X2"}, seen)
	}
}
