package motion

import "time"

// Clock returns the current time in milliseconds. The engine never reads
// wall-clock time except through this seam, which is what makes deterministic
// tests possible.
type Clock func() float64

var processStart = time.Now()

// wallClock is the default Clock: monotonic milliseconds since process start.
func wallClock() float64 {
	return float64(time.Since(processStart)) / float64(time.Millisecond)
}

// Scheduler owns the registry of playing tweens and advances them once per
// tick. The registry is an intrusive doubly-linked list threaded through the
// tweens themselves, so membership changes are O(1) and a tween is a member
// exactly while it is playing.
//
// The whole engine is single-threaded and cooperative: every registry
// mutation and all per-tick processing happen synchronously on whichever
// goroutine calls into it, and no call suspends. Hosts that drive a
// Scheduler from a goroutine (see [Scheduler.Loop] and [Driver]) must confine
// all other tween calls to that same goroutine.
type Scheduler struct {
	// Clock overrides the time source. Nil selects monotonic wall time in
	// milliseconds.
	Clock Clock
	// Driver, when set, is asked to arrange the next tick whenever tweens
	// are registered, and is left idle while the registry is empty.
	Driver Driver
	// Interval is the tick interval hint passed to Driver. Zero selects
	// [DefaultInterval].
	Interval time.Duration

	head, tail *Tween
	length     int
	armed      bool
}

// NewScheduler returns an empty scheduler using the wall clock.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// NewTween returns an idle tween owned by this scheduler, seeded with a copy
// of the initial state. Configure and play it through its own methods.
func (s *Scheduler) NewTween(initial State) *Tween {
	return &Tween{
		sched:   s,
		current: initial.clone(),
	}
}

// Start configures a new tween, plays it, and returns it together with its
// completion handle.
func (s *Scheduler) Start(cfg Config) (*Tween, Completion) {
	t := s.NewTween(nil)
	return t, t.Play(&cfg)
}

func (s *Scheduler) now() float64 {
	if s.Clock != nil {
		return s.Clock()
	}
	return wallClock()
}

// Len returns the number of currently playing tweens.
func (s *Scheduler) Len() int { return s.length }

// Tick advances every registered tween to the given absolute time
// (milliseconds on the scheduler's clock), rendering or completing each one.
// Tweens still inside their delay window are skipped; the state observers
// saw at play-start is still current. Tweens are processed in registration
// order. Each tween's successor is captured before the tween is processed,
// so a tween removing itself on natural completion cannot corrupt the
// traversal. A tween inserted during the tick may or may not be processed in
// the same tick, depending on where it lands relative to the traversal
// point; no stronger ordering is promised.
func (s *Scheduler) Tick(now float64) {
	for t := s.head; t != nil; {
		next := t.next
		if now >= t.timestamp+t.delay {
			s.process(t, now)
		}
		t = next
	}
}

// Advance is Tick at the scheduler clock's current time.
func (s *Scheduler) Advance() {
	s.Tick(s.now())
}

// Reset detaches every tween from the registry without firing completions.
// Intended for tests that reuse a scheduler across cases.
func (s *Scheduler) Reset() {
	for t := s.head; t != nil; {
		next := t.next
		t.next, t.prev = nil, nil
		t.playing = false
		t = next
	}
	s.head, s.tail = nil, nil
	s.length = 0
}

// insert appends t at the tail. Callers only insert tweens that are not
// currently linked; there is no duplicate protection.
func (s *Scheduler) insert(t *Tween) {
	t.prev = s.tail
	if s.tail != nil {
		s.tail.next = t
	} else {
		s.head = t
	}
	s.tail = t
	s.length++
	s.arm()
}

// remove detaches t in O(1), handling the head, tail, middle, and singleton
// cases, and nulls t's own links so it can be reinserted later.
func (s *Scheduler) remove(t *Tween) {
	if t.prev != nil {
		t.prev.next = t.next
	} else if s.head == t {
		s.head = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else if s.tail == t {
		s.tail = t.prev
	}
	t.next, t.prev = nil, nil
	s.length--
}

// process advances one tween to the given time. It runs regardless of
// registry membership; Seek uses that to render a position synchronously,
// including positions inside the delay window (which render the held
// starting state, where [Scheduler.Tick] skips them instead).
func (s *Scheduler) process(t *Tween, now float64) {
	if !t.configured {
		return
	}

	endTime := t.timestamp + t.delay + t.duration
	timeToCompute := now
	if timeToCompute > endTime {
		timeToCompute = endTime
	}
	hasEnded := timeToCompute >= endTime
	offset := t.duration - (endTime - timeToCompute)

	if hasEnded {
		// The final frame is the exact target state, never an eased
		// approximation of it.
		t.renderFn(t.target, t.data, offset)
		t.Stop(true)
		return
	}

	hasFilters := len(t.filters) > 0
	if hasFilters {
		t.applyHooks(hookBefore)
	}
	if timeToCompute < t.timestamp+t.delay {
		// Delay window reached through a direct process call (a seek): hold
		// the starting state rather than interpolating.
		for k, v := range t.original {
			t.current[k] = v
		}
	} else {
		interpolateInto(timeToCompute, t.current, t.original, t.target, t.duration, t.timestamp+t.delay, t.easing)
	}
	if hasFilters {
		t.applyHooks(hookAfter)
	}
	t.renderFn(t.current, t.data, offset)
}

// arm asks the driver to arrange the next tick. No-op without a driver, when
// a tick is already arranged, or when the registry is empty.
func (s *Scheduler) arm() {
	if s.Driver == nil || s.armed || s.head == nil {
		return
	}
	s.armed = true
	hint := s.Interval
	if hint <= 0 {
		hint = DefaultInterval
	}
	s.Driver.ScheduleNext(s.driverTick, hint)
}

// driverTick is the callback handed to the driver: advance once, then
// re-arm while any tween remains registered.
func (s *Scheduler) driverTick() {
	s.armed = false
	s.Advance()
	s.arm()
}
