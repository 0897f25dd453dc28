package motion

import (
	"context"
	"time"
)

// DefaultInterval is the tick interval hint used when none is configured:
// one tick per frame at 60 frames per second.
const DefaultInterval = time.Second / 60

// Driver arranges the next tick on behalf of a scheduler. The scheduler asks
// for exactly one pending tick at a time: after each tick runs it decides
// whether to ask again (it stops asking when its registry empties). A host
// with its own frame loop (a game engine update callback, a display link)
// should skip drivers entirely and call [Scheduler.Tick] from that loop.
type Driver interface {
	// ScheduleNext arranges for tick to be invoked once, about hint from
	// now.
	ScheduleNext(tick func(), hint time.Duration)
}

// TimerDriver schedules ticks with [time.AfterFunc]. The ticks fire on the
// timer goroutine; because the engine is single-threaded by contract, a host
// using TimerDriver must confine every other tween and scheduler call to
// callbacks running inside those ticks, or provide its own confinement.
type TimerDriver struct{}

// ScheduleNext invokes tick once after hint elapses.
func (TimerDriver) ScheduleNext(tick func(), hint time.Duration) {
	time.AfterFunc(hint, tick)
}

// Loop drives the scheduler on the calling goroutine at a fixed interval
// until ctx is done. Interval values of zero or less select
// [DefaultInterval]. This is the timer-based fallback for hosts without a
// frame loop of their own.
func (s *Scheduler) Loop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Advance()
		}
	}
}
