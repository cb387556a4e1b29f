// Package loader implements the scheduler core's load-and-schedule
// entry point: reading scripts into the code store, building PCBs,
// enqueuing them per policy, and handing off to the scheduler.
package loader

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/sanadi3/427-A2/internal/codestore"
	"github.com/sanadi3/427-A2/internal/pcb"
	"github.com/sanadi3/427-A2/internal/readyqueue"
	"github.com/sanadi3/427-A2/internal/schederr"
	"github.com/sanadi3/427-A2/internal/scheduler"
)

// MaxScripts is the maximum number of scripts a single load call may
// accept.
const MaxScripts = 3

// scriptRange is the code-store range one loaded script occupies.
type scriptRange struct {
	path       string
	start, end int
}

// Load reads each of paths (1-3 entries, in order, no duplicates) into
// store, one mem_load_script_line call per line. On any failure
// (duplicate path, open failure, or store exhaustion) every range
// this call recorded is released and an error is returned; the store
// and queue are left exactly as they were before the call, aside from
// a possibly-retracted high-water mark (spec.md §4.5's atomicity
// property).
//
// Reads happen concurrently via errgroup (the teacher's go.mod
// already requires golang.org/x/sync), but script line numbers are
// assigned into the store in path order regardless of goroutine
// completion order, by buffering each script's lines before claiming
// any code-store slots; this keeps the atomicity property simple
// (either a script's entire range is claimed contiguously, or none of
// it is) while still parallelizing the I/O-bound file reads.
func Load(store *codestore.Store, paths []string) ([]scriptRange, error) {
	if len(paths) == 0 || len(paths) > MaxScripts {
		return nil, fmt.Errorf("loader: %w: expected 1-%d scripts, got %d", schederr.ErrLoadFailure, MaxScripts, len(paths))
	}
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			return nil, fmt.Errorf("loader: %w: %s", schederr.ErrDuplicateProgram, p)
		}
		seen[p] = true
	}

	lineSets := make([][]string, len(paths))
	g := new(errgroup.Group)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			lines, err := readLines(path)
			if err != nil {
				return err
			}
			lineSets[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loader: %w: %v", schederr.ErrLoadFailure, err)
	}

	ranges := make([]scriptRange, 0, len(paths))
	for i, path := range paths {
		start := store.Len()
		end := start - 1
		for _, line := range lineSets[i] {
			idx := store.LoadLine(line)
			if idx < 0 {
				releaseAll(store, ranges)
				store.Cleanup(start, end)
				return nil, fmt.Errorf("loader: %w: code store exhausted loading %s", schederr.ErrLoadFailure, path)
			}
			end = idx
		}
		ranges = append(ranges, scriptRange{path: path, start: start, end: end})
	}
	return ranges, nil
}

// readLines reads path into a slice of lines, one per physical line,
// with no line-ending characters retained. A zero-line file is a
// valid, empty program.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// releaseAll frees every previously recorded range, for rollback on a
// mid-load failure.
func releaseAll(store *codestore.Store, ranges []scriptRange) {
	for _, r := range ranges {
		store.Cleanup(r.start, r.end)
	}
}

// Run builds one PCB per range (via factory), enqueues them (using
// InsertSorted for AGING, AddTail otherwise, in range order), and
// invokes sched.Run(policy).
//
// spec.md §4.2 and §4.5 describe a PCB-allocation failure path
// (surface a diagnostic, roll back); that models a malloc-style
// allocator, which has no equivalent failure mode for a Go struct
// literal, so there is nothing to roll back to here.
func Run(queue *readyqueue.Queue, factory *pcb.Factory, sched *scheduler.Scheduler, ranges []scriptRange, policy scheduler.Policy) (int, scheduler.RunStats, error) {
	pcbs := make([]*pcb.PCB, 0, len(ranges))
	for _, r := range ranges {
		pcbs = append(pcbs, factory.New(r.start, r.end))
	}

	for _, p := range pcbs {
		if policy == scheduler.AGING {
			queue.InsertSorted(p)
		} else {
			queue.AddTail(p)
		}
	}

	return sched.Run(policy)
}
