// internal/timer/scheduler.go
package timer

import (
	"container/heap"
	"time"
)

// Handle is the cancellation handle of a scheduled callback.
type Handle struct {
	s         *Scheduler
	seq       uint64
	due       time.Duration
	interval  time.Duration
	fn        func()
	index     int // position in the queue, -1 when not queued
	cancelled bool
}

// Cancel stops the timer. It is safe to call more than once, on a timer that
// already fired, and from inside any callback.
func (h *Handle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	if h.index >= 0 {
		heap.Remove(&h.s.queue, h.index)
	}
}

// Active reports whether the timer can still fire.
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled && h.index >= 0
}

// Due returns the virtual time of the next firing.
func (h *Handle) Due() time.Duration {
	if h == nil {
		return 0
	}
	return h.due
}

// Scheduler is a virtual-time timer queue. It is driven by Advance and runs
// every callback on the caller's goroutine, so it is not safe for concurrent use.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	fired uint64
	queue timerQueue
}

// New creates a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time. Inside a callback it equals the
// callback's due time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d after the current virtual time.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	return s.push(d, 0, fn)
}

// Every runs fn every d until cancelled. The first run happens d from now.
func (s *Scheduler) Every(d time.Duration, fn func()) *Handle {
	if d <= 0 {
		panic("timer: non-positive interval for Every")
	}
	return s.push(d, d, fn)
}

func (s *Scheduler) push(d, interval time.Duration, fn func()) *Handle {
	s.seq++
	h := &Handle{
		s:        s,
		seq:      s.seq,
		due:      s.now + d,
		interval: interval,
		fn:       fn,
		index:    -1,
	}
	heap.Push(&s.queue, h)
	return h
}

// Advance moves virtual time forward by dt and fires every timer that falls
// due, in due-time order. Ties fire in scheduling order.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.due
		if next.interval > 0 {
			// Re-arm before the callback so it can cancel itself.
			next.due += next.interval
			s.seq++
			next.seq = s.seq
			heap.Push(&s.queue, next)
		}
		s.fired++
		next.fn()
	}
	s.now = target
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Fired returns how many callbacks have run since the scheduler was created.
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// CancelAll cancels every live timer.
func (s *Scheduler) CancelAll() {
	for len(s.queue) > 0 {
		s.queue[0].Cancel()
	}
}

type timerQueue []*Handle

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	h := x.(*Handle)
	h.index = len(*q)
	*q = append(*q, h)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	h := old[n-1]
	old[n-1] = nil
	h.index = -1
	*q = old[:n-1]
	return h
}
