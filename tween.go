package motion

// Tween is the lifecycle controller for one configured, time-bounded
// interpolation from an original state to a target state. It owns the
// tween's timing state and registry membership; the scheduler only ever
// holds non-owning links to it.
//
// The controller is a four-state machine: idle (configured, never played),
// playing (registered with the scheduler), paused (unregistered, pause time
// retained), and stopped (unregistered, replayable). Lifecycle methods are
// forgiving: pausing a paused tween, stopping a stopped one, or resuming a
// playing one are harmless no-ops, never errors.
type Tween struct {
	current  State
	original State
	target   State

	cfg        Config
	configured bool

	easing    composedEasing
	easingBuf map[string]easingRef

	timestamp float64
	started   bool
	delay     float64
	duration  float64

	playing  bool
	paused   bool
	pausedAt float64

	filters    []Filter
	filterData map[string]any

	data          any
	startFn       StartFunc
	renderFn      RenderFunc
	finishFn      FinishFunc
	newCompletion CompletionFactory
	completion    Completion

	sched *Scheduler
	next  *Tween
	prev  *Tween
}

// NewTween returns an idle tween on the [Default] scheduler, seeded with a
// copy of the initial state.
func NewTween(initial State) *Tween {
	return Default.NewTween(initial)
}

func noopStart(State, any)           {}
func noopRender(State, any, float64) {}

// Configure replaces the tween's configuration and returns the completion
// handle for the next play segment. The current state persists across
// configurations (Config.From overrides only the properties it names), the
// original state is snapshotted from it, and the target state fills
// unmentioned properties with their current values. Easing is composed here
// and cached until the next Configure; filter applicability is decided here,
// once. A playing tween is stopped (resolving its pending completion) before
// reconfiguration.
func (t *Tween) Configure(cfg Config) Completion {
	if t.playing {
		t.Stop(false)
	}
	t.cfg = cfg
	c := &t.cfg

	if t.current == nil {
		t.current = State{}
	}
	t.paused = false
	t.pausedAt = 0
	t.delay = c.Delay
	if t.delay < 0 {
		t.delay = 0
	}
	t.duration = c.Duration
	if t.duration <= 0 {
		t.duration = DefaultDuration
	}
	t.data = c.dataPayload()
	t.startFn = c.Start
	if t.startFn == nil {
		t.startFn = noopStart
	}
	t.renderFn = c.renderFunc()
	if t.renderFn == nil {
		t.renderFn = noopRender
	}
	t.finishFn = c.Finish
	t.newCompletion = c.NewCompletion
	if t.newCompletion == nil {
		t.newCompletion = NewPromise
	}

	for k, v := range c.From {
		t.current[k] = v
	}
	t.original = t.current.clone()
	t.target = t.current.clone()
	for k, v := range c.To {
		t.target[k] = v
	}

	composed := composeEasing(t.current, c.Easing, t.easingBuf)
	if composed.per != nil {
		t.easingBuf = composed.per
	}
	t.easing = composed

	t.filters = t.filters[:0]
	if t.current.hasString() {
		for _, rf := range registeredFilters {
			if rf.filter.Match(t) {
				t.filters = append(t.filters, rf.filter)
			}
		}
	}
	t.filterData = nil
	t.configured = true
	if len(t.filters) > 0 {
		t.applyHooks(hookCreated)
	}

	t.completion = t.newCompletion()
	return t.completion
}

// Play starts a fresh play segment and returns its completion handle.
// Starting never fails: a playing tween is stopped first (resolving its
// pending completion with the in-flight state), then reconfigured when cfg
// is non-nil (or never configured before) and started from the top. The
// start callback fires with a snapshot of the current state; when a delay is
// configured, one render is issued immediately so observers see the
// pre-motion state.
func (t *Tween) Play(cfg *Config) Completion {
	if t.playing {
		t.Stop(false)
	}
	if cfg != nil {
		t.Configure(*cfg)
	} else if !t.configured {
		t.Configure(Config{})
	}
	if t.completion == nil {
		// Replaying a consumed segment without reconfiguring still gets a
		// fresh completion handle.
		t.completion = t.newCompletion()
	}
	t.paused = false
	t.pausedAt = 0
	t.timestamp = t.now()
	t.started = true
	t.startFn(t.State(), t.data)
	if t.delay > 0 {
		t.renderFn(t.current, t.data, 0)
	}
	return t.resumeAt(t.timestamp)
}

// Resume continues a paused tween, shifting its start time forward by the
// time spent paused so paused time never counts against the animation. A
// never-started tween plays from the top; a playing tween is a no-op that
// returns the existing completion handle.
func (t *Tween) Resume() Completion {
	return t.resumeAt(t.now())
}

func (t *Tween) resumeAt(now float64) Completion {
	if !t.started {
		return t.Play(nil)
	}
	if t.playing {
		return t.completion
	}
	if t.paused {
		t.timestamp += now - t.pausedAt
		t.paused = false
		t.pausedAt = 0
	}
	t.playing = true
	t.sched.insert(t)
	return t.completion
}

// Pause freezes a playing tween in place and removes it from the registry.
// Not-playing tweens are a no-op.
func (t *Tween) Pause() *Tween {
	if !t.playing {
		return t
	}
	t.pausedAt = t.now()
	t.paused = true
	t.playing = false
	t.sched.remove(t)
	return t
}

// Seek moves the tween to the given elapsed time (clamped to non-negative)
// and synchronously processes one tick for this tween alone, so render
// observers reflect the new position immediately, whether or not the tween
// is playing. Seeking to an instant the tween is already at (the degenerate
// zero case) is a no-op.
func (t *Tween) Seek(ms float64) *Tween {
	if ms < 0 {
		ms = 0
	}
	now := t.now()
	if t.timestamp+ms == 0 {
		return t
	}
	t.timestamp = now - ms
	if t.paused {
		// Re-anchor the pause so a later Resume absorbs only the time spent
		// paused after the seek, not the span before it.
		t.pausedAt = now
	}
	t.started = true
	t.sched.process(t, now)
	return t
}

// Stop ends the current play segment. With gotoEnd the state jumps to the
// exact target (running the filter hooks, including the end-of-tween hook);
// without it the state freezes where it is. The pending completion resolves
// exactly once with the resulting state; the finish callback fires at the
// same moment. Stopping a not-playing tween is a no-op.
func (t *Tween) Stop(gotoEnd bool) *Tween {
	if !t.playing {
		return t
	}
	t.playing = false
	t.paused = false
	t.sched.remove(t)

	if gotoEnd {
		hasFilters := len(t.filters) > 0
		if hasFilters {
			t.applyHooks(hookBefore)
		}
		interpolateInto(1, t.current, t.original, t.target, 1, 0, t.easing)
		if hasFilters {
			t.applyHooks(hookAfter)
			t.applyHooks(hookAfterEnd)
		}
	}

	if c := t.completion; c != nil {
		t.completion = nil
		res := Result{Data: t.data, State: t.State(), Tween: t}
		// Captured before Resolve: a continuation may reconfigure the tween,
		// and the ended segment's finish callback must still be the one that
		// fires.
		fn := t.finishFn
		c.Resolve(res)
		if fn != nil {
			fn(res)
		}
	}
	return t
}

// Cancel ends the current play segment as a failure: the pending completion
// rejects exactly once with the state at the moment of cancellation, then
// the tween stops (with gotoEnd applied afterward, and no success
// continuation left to fire). Cancelling a not-playing tween is a no-op.
func (t *Tween) Cancel(gotoEnd bool) *Tween {
	if !t.playing {
		return t
	}
	if c := t.completion; c != nil {
		t.completion = nil
		c.Reject(Result{Data: t.data, State: t.State(), Tween: t})
	}
	return t.Stop(gotoEnd)
}

// IsPlaying reports whether the tween is currently registered and advancing.
func (t *Tween) IsPlaying() bool { return t.playing }

// State returns a snapshot copy of the tween's current state.
func (t *Tween) State() State { return t.current.clone() }

func (t *Tween) now() float64 { return t.sched.now() }

// --- Filter-facing surface ---

// CurrentState returns the live current state map. Filters may rewrite it in
// place; other callers should prefer [Tween.State].
func (t *Tween) CurrentState() State { return t.current }

// OriginalState returns the live play-start snapshot map.
func (t *Tween) OriginalState() State { return t.original }

// TargetState returns the live target state map.
func (t *Tween) TargetState() State { return t.target }

// CopyEasing assigns the curve resolved for src to dst. Filters that expand
// one property into several use it to carry the property's curve onto the
// synthetic properties. No-op under a uniform easing, which already covers
// every property.
func (t *Tween) CopyEasing(src, dst string) {
	if t.easing.per == nil {
		return
	}
	t.easing.per[dst] = t.easing.per[src]
}

// RemoveEasing deletes prop's per-property curve entry. No-op under a
// uniform easing.
func (t *Tween) RemoveEasing(prop string) {
	if t.easing.per == nil {
		return
	}
	delete(t.easing.per, prop)
}

// FilterData returns the per-tween scratch value a filter stored under key,
// or nil. The store is cleared on reconfiguration.
func (t *Tween) FilterData(key string) any {
	return t.filterData[key]
}

// SetFilterData stores a per-tween scratch value for a filter.
func (t *Tween) SetFilterData(key string, v any) {
	if t.filterData == nil {
		t.filterData = make(map[string]any)
	}
	t.filterData[key] = v
}
