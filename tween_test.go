package motion

import (
	"math"
	"testing"
)

// newTestScheduler returns a scheduler on a manually advanced clock.
func newTestScheduler() (*Scheduler, *float64) {
	now := new(float64)
	s := NewScheduler()
	s.Clock = func() float64 { return *now }
	return s, now
}

// renderRecorder captures every render invocation.
type renderRecorder struct {
	states  []State
	offsets []float64
}

func (r *renderRecorder) fn() RenderFunc {
	return func(state State, _ any, offset float64) {
		r.states = append(r.states, state.clone())
		r.offsets = append(r.offsets, offset)
	}
}

func (r *renderRecorder) last() State {
	if len(r.states) == 0 {
		return nil
	}
	return r.states[len(r.states)-1]
}

func stateX(t *testing.T, s State) float64 {
	t.Helper()
	x, ok := toFloat(s["x"])
	if !ok {
		t.Fatalf("x = %v, want numeric", s["x"])
	}
	return x
}

func TestLinearTweenMidpointAndCompletion(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}
	finishes := 0

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
		Finish:   func(Result) { finishes++ },
	})

	*now = 50
	s.Advance()
	if got := stateX(t, rec.last()); math.Abs(got-50) > 1e-9 {
		t.Errorf("x at elapsed 50 = %f, want 50", got)
	}
	if finishes != 0 {
		t.Fatal("finish fired before completion")
	}

	*now = 100
	s.Advance()
	if got := stateX(t, rec.last()); got != 100.0 {
		t.Errorf("x at elapsed 100 = %v, want exactly 100", rec.last()["x"])
	}
	if finishes != 1 {
		t.Errorf("finish fired %d times, want 1", finishes)
	}
	if tw.IsPlaying() {
		t.Error("tween still playing after completion")
	}
	if s.Len() != 0 {
		t.Errorf("scheduler Len = %d after completion, want 0", s.Len())
	}
}

func TestOvershootRendersExactTarget(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	// The tick lands well past the end time; the final frame must still be
	// the exact target value, not an eased approximation near it.
	*now = 1000
	s.Advance()
	if got := rec.last()["x"]; got != 100.0 {
		t.Errorf("final frame x = %v, want exactly 100", got)
	}
	if got := rec.offsets[len(rec.offsets)-1]; got != 100 {
		t.Errorf("final offset = %f, want clamped to duration 100", got)
	}
}

func TestDelayWindowHoldsOriginalState(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 10.0},
		Duration: 100,
		Delay:    50,
		Render:   rec.fn(),
	})

	// A delayed tween renders once immediately so observers see the
	// pre-motion state.
	if len(rec.states) != 1 {
		t.Fatalf("renders after delayed play = %d, want 1", len(rec.states))
	}
	if got := stateX(t, rec.last()); got != 0 {
		t.Errorf("pre-motion x = %f, want 0", got)
	}

	// Inside the delay window nothing is rendered.
	*now = 25
	s.Advance()
	if len(rec.states) != 1 {
		t.Errorf("renders at elapsed 25 = %d, want still 1", len(rec.states))
	}

	// 25 into the active phase.
	*now = 75
	s.Advance()
	if got := stateX(t, rec.last()); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("x at elapsed 75 = %f, want 2.5", got)
	}
	if got := rec.offsets[len(rec.offsets)-1]; math.Abs(got-25) > 1e-9 {
		t.Errorf("offset at elapsed 75 = %f, want 25", got)
	}
	if tw.IsPlaying() != true {
		t.Error("tween not playing during active phase")
	}
}

func TestPauseExcludesPausedTime(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	*now = 30
	s.Advance()
	tw.Pause()
	if s.Len() != 0 {
		t.Fatalf("scheduler Len = %d while paused, want 0", s.Len())
	}

	// A long real-time gap while paused must not count against the tween.
	*now = 1030
	tw.Resume()
	*now = 1080
	s.Advance()
	if got := stateX(t, rec.last()); math.Abs(got-80) > 1e-9 {
		t.Errorf("x after resume+50 = %f, want 80", got)
	}

	*now = 1100
	s.Advance()
	if got := rec.last()["x"]; got != 100.0 {
		t.Errorf("final x = %v, want exactly 100", got)
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	s, now := newTestScheduler()
	tw := s.NewTween(nil)
	tw.Play(&Config{To: State{}, Duration: 100})

	*now = 30
	tw.Pause()
	pausedAt := tw.pausedAt
	*now = 60
	tw.Pause() // second pause must not move the pause point
	if tw.pausedAt != pausedAt {
		t.Errorf("pausedAt moved on double pause: %f, want %f", tw.pausedAt, pausedAt)
	}
	if s.Len() != 0 {
		t.Errorf("scheduler Len = %d, want 0", s.Len())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s, _ := newTestScheduler()
	finishes := 0
	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Finish:   func(Result) { finishes++ },
	})

	tw.Stop(false)
	tw.Stop(false)
	if finishes != 1 {
		t.Errorf("finish fired %d times across double stop, want 1", finishes)
	}
}

func TestStopGotoEndProducesTarget(t *testing.T) {
	s, now := newTestScheduler()
	var final Result
	tw := s.NewTween(nil)
	done := tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
	})
	done.(*Promise).Then(func(r Result) { final = r })

	*now = 10
	s.Advance()
	tw.Stop(true)
	if got := stateX(t, final.State); got != 100 {
		t.Errorf("resolved state x = %f, want 100", got)
	}
	if got := stateX(t, tw.State()); got != 100 {
		t.Errorf("tween state x after goto-end = %f, want 100", got)
	}
}

func TestSeekRendersSynchronously(t *testing.T) {
	s, _ := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Configure(Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	// Seeking a non-playing tween still renders, without touching the
	// registry.
	tw.Seek(50)
	if len(rec.states) != 1 {
		t.Fatalf("renders after seek = %d, want 1", len(rec.states))
	}
	if got := stateX(t, rec.last()); math.Abs(got-50) > 1e-9 {
		t.Errorf("x after Seek(50) = %f, want 50", got)
	}
	if s.Len() != 0 {
		t.Errorf("scheduler Len = %d after seek, want 0", s.Len())
	}
	if tw.IsPlaying() {
		t.Error("seek must not start playback")
	}
}

func TestSeekZeroBeforeStartIsNoop(t *testing.T) {
	s, _ := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Configure(Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	tw.Seek(0)
	tw.Seek(0)
	if len(rec.states) != 0 {
		t.Errorf("renders after degenerate seeks = %d, want 0", len(rec.states))
	}
	if tw.started {
		t.Error("degenerate seek must not mark the tween started")
	}
}

func TestSeekClampsNegative(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	*now = 10
	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	*now = 60
	s.Advance()
	tw.Seek(-40)
	if got := stateX(t, rec.last()); got != 0 {
		t.Errorf("x after Seek(-40) = %f, want 0 (clamped to elapsed 0)", got)
	}
}

func TestCancelRejectsWithInFlightState(t *testing.T) {
	s, now := newTestScheduler()
	var rejectedWith State
	rejections, finishes := 0, 0

	tw := s.NewTween(nil)
	done := tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Finish:   func(Result) { finishes++ },
	})
	done.(*Promise).Catch(func(r Result) {
		rejections++
		rejectedWith = r.State
	})

	*now = 40
	s.Advance()
	tw.Cancel(false)

	if rejections != 1 {
		t.Fatalf("rejections = %d, want 1", rejections)
	}
	if got := stateX(t, rejectedWith); math.Abs(got-40) > 1e-9 {
		t.Errorf("rejected state x = %f, want in-flight 40, not target", got)
	}
	if finishes != 0 {
		t.Error("finish fired for a cancelled segment")
	}

	// The stop performed by cancel found no continuation left; a later
	// explicit stop must not fire anything either.
	tw.Stop(false)
	if rejections != 1 || finishes != 0 {
		t.Errorf("continuations after post-cancel stop: rejections=%d finishes=%d", rejections, finishes)
	}
}

func TestCancelGotoEndStillRejectsInFlightState(t *testing.T) {
	s, now := newTestScheduler()
	var rejectedWith State

	tw := s.NewTween(nil)
	done := tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
	})
	done.(*Promise).Catch(func(r Result) { rejectedWith = r.State })

	*now = 40
	s.Advance()
	tw.Cancel(true)

	if got := stateX(t, rejectedWith); math.Abs(got-40) > 1e-9 {
		t.Errorf("rejected state x = %f, want 40 (captured before goto-end)", got)
	}
	if got := stateX(t, tw.State()); got != 100 {
		t.Errorf("tween state x after cancel goto-end = %f, want 100", got)
	}
}

func TestPlayWhilePlayingRestarts(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}
	resolved := 0

	tw := s.NewTween(nil)
	first := tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})
	first.(*Promise).Then(func(Result) { resolved++ })

	*now = 50
	s.Advance()
	second := tw.Play(nil)
	if resolved != 1 {
		t.Fatalf("first segment resolutions = %d after restart, want 1", resolved)
	}
	if second == first {
		t.Fatal("restart reused the consumed completion handle")
	}

	// The restarted segment runs the full motion again from the top.
	*now = 100
	s.Advance()
	if got := stateX(t, rec.last()); math.Abs(got-50) > 1e-9 {
		t.Errorf("x at 50 into restarted segment = %f, want 50", got)
	}
}

func TestResumeNeverStartedPlays(t *testing.T) {
	s, _ := newTestScheduler()
	started := 0
	tw := s.NewTween(nil)
	tw.Configure(Config{
		From:     State{"x": 0.0},
		To:       State{"x": 1.0},
		Duration: 100,
		Start:    func(State, any) { started++ },
	})

	tw.Resume()
	if started != 1 {
		t.Errorf("start callbacks = %d, want 1 (resume of unstarted tween plays)", started)
	}
	if !tw.IsPlaying() {
		t.Error("tween not playing after resume-as-play")
	}
}

func TestResumeWhilePlayingReturnsSameHandle(t *testing.T) {
	s, _ := newTestScheduler()
	tw := s.NewTween(nil)
	done := tw.Play(&Config{To: State{}, Duration: 100})

	if again := tw.Resume(); again != done {
		t.Error("resume while playing returned a different completion handle")
	}
	if s.Len() != 1 {
		t.Errorf("scheduler Len = %d, want 1 (no duplicate registration)", s.Len())
	}
}

func TestStartCallbackGetsSnapshot(t *testing.T) {
	s, now := newTestScheduler()
	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 5.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Start: func(state State, _ any) {
			state["x"] = -999.0 // mutating the snapshot must not leak
		},
	})

	*now = 0
	s.Advance()
	if got := stateX(t, tw.State()); got != 5 {
		t.Errorf("x after mutated start snapshot = %f, want 5", got)
	}
}

func TestLegacyAliases(t *testing.T) {
	s, now := newTestScheduler()
	var gotData any
	steps := 0

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:       State{"x": 0.0},
		To:         State{"x": 1.0},
		Duration:   100,
		Attachment: "payload",
		Step: func(_ State, data any, _ float64) {
			steps++
			gotData = data
		},
	})

	*now = 50
	s.Advance()
	if steps == 0 {
		t.Fatal("Step alias was not used as the render callback")
	}
	if gotData != "payload" {
		t.Errorf("data = %v, want Attachment alias value", gotData)
	}
}

func TestToDefaultsToCurrentValue(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(State{"x": 3.0, "y": 7.0})
	tw.Play(&Config{
		To:       State{"x": 10.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	*now = 50
	s.Advance()
	if got, _ := toFloat(rec.last()["y"]); got != 7 {
		t.Errorf("unmentioned property y = %f mid-tween, want held at 7", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	s, _ := newTestScheduler()
	tw := s.NewTween(nil)
	tw.Configure(Config{})
	if tw.duration != DefaultDuration {
		t.Errorf("duration = %f, want default %f", tw.duration, DefaultDuration)
	}
	if tw.delay != 0 {
		t.Errorf("delay = %f, want 0", tw.delay)
	}
	if tw.easing.uniform == nil {
		t.Error("default easing did not resolve to the uniform linear fast path")
	}
}

func TestSeekWhilePausedAnchorsResume(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 100.0},
		Duration: 100,
		Render:   rec.fn(),
	})

	*now = 30
	s.Advance()
	tw.Pause()

	*now = 100
	tw.Seek(50)
	if got := stateX(t, rec.last()); got != 50 {
		t.Fatalf("x after seek = %v, want 50", rec.last()["x"])
	}

	*now = 200
	tw.Resume()
	*now = 210
	s.Advance()
	if got := stateX(t, rec.last()); got != 60 {
		t.Errorf("x at 10 into resumed motion = %v, want 60", rec.last()["x"])
	}
}

func TestSeekIntoDelayRendersStartingState(t *testing.T) {
	s, now := newTestScheduler()
	rec := &renderRecorder{}

	tw := s.NewTween(nil)
	tw.Play(&Config{
		From:     State{"x": 5.0},
		To:       State{"x": 10.0},
		Duration: 100,
		Delay:    50,
		Render:   rec.fn(),
	})

	renders := len(rec.states) // one immediate render, since a delay is set
	*now = 10
	tw.Seek(25)
	if len(rec.states) != renders+1 {
		t.Fatalf("seek into the delay window rendered %d times, want 1", len(rec.states)-renders)
	}
	if got := stateX(t, rec.last()); got != 5 {
		t.Errorf("x during delay = %v, want the starting 5", rec.last()["x"])
	}
}

func TestFinishStaysWithEndedSegmentAcrossReconfigure(t *testing.T) {
	s, now := newTestScheduler()

	oldFinishes, newFinishes := 0, 0
	tw := s.NewTween(nil)
	done := tw.Play(&Config{
		From:     State{"x": 0.0},
		To:       State{"x": 10.0},
		Duration: 100,
		Finish:   func(Result) { oldFinishes++ },
	})
	done.(*Promise).Then(func(Result) {
		tw.Configure(Config{
			From:     State{"x": 10.0},
			To:       State{"x": 20.0},
			Duration: 100,
			Finish:   func(Result) { newFinishes++ },
		})
	})

	*now = 100
	s.Advance()
	if oldFinishes != 1 {
		t.Errorf("ended segment's finish fired %d times, want 1", oldFinishes)
	}
	if newFinishes != 0 {
		t.Errorf("reconfigured finish fired %d times for the old segment, want 0", newFinishes)
	}
}
