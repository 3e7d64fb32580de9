// Package sched implements a deterministic, single-threaded callback timer.
//
// Time is virtual: it only moves when the owner calls Advance, typically from
// a frontend's frame loop. Callbacks therefore run on the caller's goroutine,
// one at a time, in due-time order (ties in scheduling order), which keeps
// every state mutation serialized without locks and makes tests exact.
package sched

import (
	"container/heap"
	"time"
)

type entry struct {
	at  time.Duration
	seq uint64
	fn  func()
}

type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(*entry)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// Scheduler runs one-shot callbacks after a virtual delay.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending queue
}

// New creates a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int {
	return s.pending.Len()
}

// AfterFunc schedules fn to run once, d after the current virtual time.
// Negative delays are treated as zero.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	heap.Push(&s.pending, &entry{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves virtual time forward by d, running every callback that
// becomes due, including ones scheduled by callbacks during this call.
// It returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	ran := 0
	for s.pending.Len() > 0 && s.pending[0].at <= target {
		e := heap.Pop(&s.pending).(*entry)
		s.now = e.at
		e.fn()
		ran++
	}
	s.now = target
	return ran
}
