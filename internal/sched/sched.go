// Package sched implements the cooperative task loop the engine defers work
// onto. All interaction logic is synchronous on the caller's thread; the only
// asynchrony is tasks queued here and executed when the host pumps the loop.
package sched

import (
	"sort"
	"time"
)

// Scheduler queues deferred work. NextTick runs the function on the next loop
// pump; After runs it once the loop's clock has advanced past d.
type Scheduler interface {
	NextTick(fn func())
	After(d time.Duration, fn func())
}

type task struct {
	due time.Duration
	seq int
	fn  func()
}

// Loop is a single-threaded task queue with a virtual clock. The host drives
// it from its tick handler: Advance with the elapsed wall time, or Flush to
// run everything already due. Not safe for concurrent use.
type Loop struct {
	now   time.Duration
	seq   int
	tasks []task
}

// NewLoop returns an empty loop with its clock at zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's current virtual time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// NextTick schedules fn to run on the next Flush or Advance.
func (l *Loop) NextTick(fn func()) {
	l.schedule(l.now, fn)
}

// After schedules fn to run once the clock has advanced by at least d.
func (l *Loop) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	l.schedule(l.now+d, fn)
}

func (l *Loop) schedule(due time.Duration, fn func()) {
	if fn == nil {
		return
	}
	l.seq++
	l.tasks = append(l.tasks, task{due: due, seq: l.seq, fn: fn})
}

// Advance moves the clock forward by d and runs every task that became due,
// in due-time then FIFO order. Tasks queued by running tasks run too if they
// are due within the same advance.
func (l *Loop) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	l.now += d
	l.Flush()
}

// Flush runs every task due at the current clock, including tasks queued
// while flushing (next-tick chains drain completely).
func (l *Loop) Flush() {
	for {
		due := l.takeDue()
		if len(due) == 0 {
			return
		}
		for _, t := range due {
			t.fn()
		}
	}
}

// Pending reports how many tasks are still queued.
func (l *Loop) Pending() int {
	return len(l.tasks)
}

func (l *Loop) takeDue() []task {
	var due, rest []task
	for _, t := range l.tasks {
		if t.due <= l.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	l.tasks = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// Token cancels deferred continuations tied to a lifetime. Each visual
// element owns one token; destroying the element cancels it, so callbacks
// queued against the old element become no-ops instead of acting on a stale
// handle.
type Token struct {
	canceled bool
}

// NewToken returns a live token.
func NewToken() *Token {
	return &Token{}
}

// Cancel marks the token dead. Guarded functions scheduled with it will not
// run. Cancel is idempotent.
func (t *Token) Cancel() {
	t.canceled = true
}

// Canceled reports whether the token has been canceled. A nil token counts
// as canceled.
func (t *Token) Canceled() bool {
	return t == nil || t.canceled
}

// Guard wraps fn so it only runs while the token is live.
func Guard(t *Token, fn func()) func() {
	return func() {
		if t.Canceled() {
			return
		}
		fn()
	}
}
