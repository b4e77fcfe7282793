package game

// The game defers several mutations (respawn, game over, wave spawn, beat
// resume) to a later point in simulation time. Each deferred action is a
// task owned by a Token; cancelling the token guarantees the task never
// fires, so a reset or game-over transition can invalidate anything still
// pending. Tasks advance on the simulation clock and run only at tick
// boundaries - there are no goroutine timers racing the game state.

type task struct {
	remaining float64
	fn        func()
	cancelled bool
	done      bool
}

// Token is the cancellation handle for a scheduled task.
type Token struct {
	t *task
}

// Cancel prevents the task from firing. Safe on nil and after firing.
func (tk *Token) Cancel() {
	if tk != nil && tk.t != nil {
		tk.t.cancelled = true
	}
}

// Pending reports whether the task is still waiting to fire.
func (tk *Token) Pending() bool {
	return tk != nil && tk.t != nil && !tk.t.done && !tk.t.cancelled
}

// Scheduler holds pending tasks and advances them with the simulation.
type Scheduler struct {
	tasks []*task
}

// After schedules fn to run once delay seconds of simulation time have
// elapsed. Returns the cancellation token.
func (s *Scheduler) After(delay float64, fn func()) *Token {
	t := &task{remaining: delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return &Token{t: t}
}

// Advance moves all pending tasks forward by dt and runs the ones that come
// due. Callbacks may schedule new tasks (they start counting next tick) and
// may cancel any task, including via CancelAll.
func (s *Scheduler) Advance(dt float64) {
	if dt <= 0 || len(s.tasks) == 0 {
		return
	}

	// Snapshot so callbacks appending or truncating s.tasks don't disturb
	// the iteration; flags keep cancelled tasks from firing mid-pass.
	snapshot := make([]*task, len(s.tasks))
	copy(snapshot, s.tasks)

	for _, t := range snapshot {
		if t.cancelled || t.done {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 0 {
			t.done = true
			t.fn()
		}
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = s.tasks[:0]
}

// Pending returns the number of tasks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}
