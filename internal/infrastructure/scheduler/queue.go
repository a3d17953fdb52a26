// Package scheduler provides port.Scheduler implementations that keep
// callbacks on the thread driving the docker.
package scheduler

import (
	"slices"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
)

// Queue is a deterministic scheduler. Callbacks never fire on their own:
// the owner calls RunDue (or Advance) from the docker's goroutine and due
// callbacks run there, in due order.
type Queue struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*entry
}

type entry struct {
	queue *Queue
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewQueue creates a queue whose clock starts at now.
func NewQueue(now time.Time) *Queue {
	return &Queue{now: now}
}

// AfterFunc schedules fn to run once the queue clock passes now+d.
func (q *Queue) AfterFunc(d time.Duration, fn func()) port.Timer {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	e := &entry{queue: q, due: q.now.Add(d), seq: q.seq, fn: fn}
	q.pending = append(q.pending, e)
	return e
}

// Stop cancels the callback. It returns false if it already ran or was stopped.
func (e *entry) Stop() bool {
	q := e.queue
	q.mu.Lock()
	defer q.mu.Unlock()
	if e.done {
		return false
	}
	e.done = true
	q.pending = slices.DeleteFunc(q.pending, func(p *entry) bool { return p == e })
	return true
}

// Now returns the queue clock.
func (q *Queue) Now() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.now
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Next returns when the earliest pending callback is due.
func (q *Queue) Next() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return time.Time{}, false
	}
	next := q.pending[0].due
	for _, e := range q.pending[1:] {
		if e.due.Before(next) {
			next = e.due
		}
	}
	return next, true
}

// RunDue moves the clock to now and runs every callback due by then,
// including ones scheduled by callbacks that are already due. It returns
// how many callbacks ran. The clock never goes backwards.
func (q *Queue) RunDue(now time.Time) int {
	q.mu.Lock()
	if now.After(q.now) {
		q.now = now
	}
	q.mu.Unlock()

	ran := 0
	for {
		e := q.popDue()
		if e == nil {
			return ran
		}
		e.fn()
		ran++
	}
}

// Advance moves the clock forward by d and runs due callbacks.
func (q *Queue) Advance(d time.Duration) int {
	return q.RunDue(q.Now().Add(d))
}

func (q *Queue) popDue() *entry {
	q.mu.Lock()
	defer q.mu.Unlock()
	idx := -1
	for i, e := range q.pending {
		if e.due.After(q.now) {
			continue
		}
		if idx < 0 || e.due.Before(q.pending[idx].due) ||
			(e.due.Equal(q.pending[idx].due) && e.seq < q.pending[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	e := q.pending[idx]
	e.done = true
	q.pending = slices.Delete(q.pending, idx, idx+1)
	return e
}

var _ port.Scheduler = (*Queue)(nil)
