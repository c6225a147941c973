package session

import (
	"errors"
	"sync"
	"time"
)

var ErrSchedulerClosed = errors.New("scheduler closed")

type task struct {
	timer  *time.Timer
	cancel func()
	done   bool
}

// Scheduler runs delayed tasks owned by one session. Closing it stops every
// pending task and runs its cancel hook instead. Each task ends in exactly one
// of run or cancel.
type Scheduler struct {
	tasks  map[string]*task
	closed bool
	mutex  sync.Mutex
}

// NewScheduler returns an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[string]*task)}
}

// After runs run once d has elapsed. cancel, if not nil, runs instead when the
// task is cancelled first. Scheduling an id that is already pending cancels
// the earlier task.
func (s *Scheduler) After(id string, d time.Duration, run, cancel func()) error {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return ErrSchedulerClosed
	}
	prev := s.claim(id)

	t := &task{cancel: cancel}
	t.timer = time.AfterFunc(d, func() {
		s.mutex.Lock()
		if t.done {
			s.mutex.Unlock()
			return
		}
		t.done = true
		if s.tasks[id] == t {
			delete(s.tasks, id)
		}
		s.mutex.Unlock()

		run()
	})
	s.tasks[id] = t
	s.mutex.Unlock()

	runCancel(prev)
	return nil
}

// Cancel stops a pending task. It reports false if the task already ran or
// never existed.
func (s *Scheduler) Cancel(id string) bool {
	s.mutex.Lock()
	t := s.claim(id)
	s.mutex.Unlock()

	runCancel(t)
	return t != nil
}

// Pending is the number of tasks waiting to run
func (s *Scheduler) Pending() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.tasks)
}

// Close cancels every pending task and refuses new ones. It returns the ids
// of the cancelled tasks.
func (s *Scheduler) Close() []string {
	s.mutex.Lock()
	s.closed = true
	var (
		ids       []string
		cancelled []*task
	)
	for id := range s.tasks {
		if t := s.claim(id); t != nil {
			ids = append(ids, id)
			cancelled = append(cancelled, t)
		}
	}
	s.mutex.Unlock()

	for _, t := range cancelled {
		runCancel(t)
	}
	return ids
}

// claim removes a still-pending task so that it will not run. Caller holds the mutex.
func (s *Scheduler) claim(id string) *task {
	t, ok := s.tasks[id]
	if !ok {
		return nil
	}
	delete(s.tasks, id)
	if t.done {
		return nil
	}
	t.done = true
	t.timer.Stop()
	return t
}

func runCancel(t *task) {
	if t != nil && t.cancel != nil {
		t.cancel()
	}
}
