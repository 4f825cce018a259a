package engine

import (
	"container/heap"
	"sync"
	"time"
)

// Task is a scheduled callback. Cancel marks it; the scheduler drops
// cancelled tasks when they surface.
type Task struct {
	at        time.Time
	seq       uint64
	fn        func()
	cancelled bool
}

// Scheduler runs callbacks after a delay. Callbacks never run
// concurrently with each other; loops reschedule themselves from inside
// their own callback. RunOn serializes outside work (HTTP handlers)
// against the callbacks.
type Scheduler interface {
	Clock
	Schedule(d time.Duration, fn func()) *Task
	Cancel(t *Task)
	RunOn(fn func())
}

// taskHeap orders tasks by due time, FIFO among equals.
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(*Task)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// TimerScheduler drains a timer heap on one goroutine. Schedule and
// Cancel are safe to call from any goroutine.
type TimerScheduler struct {
	clock Clock

	mu    sync.Mutex
	tasks taskHeap
	seq   uint64

	wake     chan struct{}
	done     chan struct{}
	finished chan struct{}
	once     sync.Once

	stopMu sync.Mutex
}

// NewTimerScheduler builds a scheduler over the given clock.
func NewTimerScheduler(clock Clock) *TimerScheduler {
	return &TimerScheduler{
		clock:    clock,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

func (s *TimerScheduler) Now() time.Time { return s.clock.Now() }

// Schedule queues fn to run after d.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) *Task {
	s.mu.Lock()
	s.seq++
	t := &Task{at: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.tasks, t)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return t
}

// Cancel keeps a pending task from running. Cancelling a finished or nil
// task is a no-op.
func (s *TimerScheduler) Cancel(t *Task) {
	if t == nil {
		return
	}
	s.mu.Lock()
	t.cancelled = true
	s.mu.Unlock()
}

// Run blocks, executing due tasks in order, until Stop.
func (s *TimerScheduler) Run() {
	defer close(s.finished)
	for {
		select {
		case <-s.done:
			return
		default:
		}
		next, wait := s.pop()
		if next != nil {
			next.fn()
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		case <-s.done:
			timer.Stop()
			return
		}
	}
}

// pop returns a due task, or how long to wait for the next one.
func (s *TimerScheduler) pop() (*Task, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for s.tasks.Len() > 0 {
		t := s.tasks[0]
		if t.cancelled {
			heap.Pop(&s.tasks)
			continue
		}
		if t.at.After(now) {
			return nil, t.at.Sub(now)
		}
		heap.Pop(&s.tasks)
		return t, 0
	}
	return nil, time.Hour
}

// RunOn runs fn on the loop goroutine and waits for it to finish, so
// callers never touch loop-owned state concurrently with a callback.
// Must not be called from inside a callback. If the scheduler stops
// before the task surfaces, fn runs inline once Run has exited; the
// once guard keeps a racing Run from executing it twice.
func (s *TimerScheduler) RunOn(fn func()) {
	var once sync.Once
	ran := make(chan struct{})
	s.Schedule(0, func() {
		once.Do(fn)
		close(ran)
	})
	select {
	case <-ran:
	case <-s.done:
		<-s.finished
		s.stopMu.Lock()
		once.Do(fn)
		s.stopMu.Unlock()
	}
}

// Stop ends Run. Pending tasks are abandoned.
func (s *TimerScheduler) Stop() {
	s.once.Do(func() { close(s.done) })
}

// ManualScheduler runs tasks only when Advance moves its clock, in due
// order, for deterministic tests.
type ManualScheduler struct {
	clock *ManualClock
	tasks taskHeap
	seq   uint64
}

// NewManualScheduler builds a hand-driven scheduler.
func NewManualScheduler(clock *ManualClock) *ManualScheduler {
	return &ManualScheduler{clock: clock}
}

func (s *ManualScheduler) Now() time.Time { return s.clock.Now() }

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{at: s.clock.Now().Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.tasks, t)
	return t
}

func (s *ManualScheduler) Cancel(t *Task) {
	if t != nil {
		t.cancelled = true
	}
}

// RunOn runs fn immediately; manual scheduling is single-goroutine.
func (s *ManualScheduler) RunOn(fn func()) { fn() }

// Advance moves the clock forward by d, running every task that comes due
// along the way. Tasks scheduled during a callback run too if they land
// inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.clock.now.Add(d)
	for s.tasks.Len() > 0 {
		t := s.tasks[0]
		if t.cancelled {
			heap.Pop(&s.tasks)
			continue
		}
		if t.at.After(target) {
			break
		}
		heap.Pop(&s.tasks)
		s.clock.now = t.at
		t.fn()
	}
	s.clock.now = target
}
