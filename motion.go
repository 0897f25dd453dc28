package motion

// State maps property names to animatable values. Numeric properties hold any
// Go numeric type (they are normalized to float64 during interpolation).
// String properties carry embedded numeric components ("10px 20px",
// "rgb(255,0,0)", "#fff") and are expanded and reassembled around each
// interpolation step by an applicable [Filter].
type State map[string]any

// clone returns a shallow copy of the state map. A nil state clones to an
// empty, non-nil map so callers can always write into the result.
func (s State) clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// hasString reports whether any property value is a string, which is what
// makes the filter pipeline applicable at all.
func (s State) hasString() bool {
	for _, v := range s {
		if _, ok := v.(string); ok {
			return true
		}
	}
	return false
}

// DefaultDuration is the active-phase length, in milliseconds, used when a
// [Config] does not specify one.
const DefaultDuration = 500.0

// StartFunc is invoked once at play-start with a snapshot of the tween's
// state and the opaque data payload.
type StartFunc func(state State, data any)

// RenderFunc is invoked every tick with the tween's live state, the opaque
// data payload, and the elapsed offset within the active phase (0 at the
// start of motion, Duration at the final frame).
type RenderFunc func(state State, data any, offset float64)

// FinishFunc receives the successful outcome of a play segment. It fires at
// the same moment as the segment's [Completion] resolve, and like it, at most
// once per segment.
type FinishFunc func(Result)

// Result carries the outcome of a play segment to completion continuations.
type Result struct {
	// Data is the opaque payload configured on the tween.
	Data any
	// State is a snapshot of the tween's state at the moment the segment
	// ended (the target state for a natural completion, the in-flight state
	// for a cancellation).
	State State
	// Tween is the controller whose segment ended.
	Tween *Tween
}

// Config describes one tween. Pass it to [Tween.Configure], [Tween.Play], or
// [Start]. Each Configure call replaces the previous configuration wholesale;
// the zero value of every field selects its default.
type Config struct {
	// From seeds the tween's current state for the named properties before
	// play. Properties already present keep their prior current value when
	// absent from From.
	From State
	// To is the target state. Properties present in the current state but
	// absent from To keep their current value (a no-op tween for that
	// property).
	To State
	// Duration is the active-phase length in milliseconds. Zero or negative
	// selects [DefaultDuration].
	Duration float64
	// Delay is the pre-phase length in milliseconds. Negative is clamped
	// to zero.
	Delay float64
	// Easing selects per-property curves. The zero value selects the
	// default linear curve for every property. See [Curve], [Func], and
	// [PerProperty].
	Easing Easing
	// Start, Render, and Finish are the lifecycle callbacks. All are
	// optional.
	Start  StartFunc
	Render RenderFunc
	Finish FinishFunc
	// Step is a legacy alias for Render, consulted only when Render is nil.
	Step RenderFunc
	// Data is an opaque payload passed through to Start, Render, and the
	// completion continuations.
	Data any
	// Attachment is a legacy alias for Data, consulted only when Data is nil.
	Attachment any
	// NewCompletion overrides the completion-handle implementation created
	// for each configuration. Nil selects [NewPromise].
	NewCompletion CompletionFactory
}

// renderFunc returns the configured render callback, honoring the legacy
// Step alias.
func (c *Config) renderFunc() RenderFunc {
	if c.Render != nil {
		return c.Render
	}
	return c.Step
}

// dataPayload returns the configured opaque payload, honoring the legacy
// Attachment alias.
func (c *Config) dataPayload() any {
	if c.Data != nil {
		return c.Data
	}
	return c.Attachment
}

// Default is the package-level scheduler used by [NewTween], [Start], and
// [Interpolate]. It is an ordinary [Scheduler]; hosts that want isolated
// registries (or deterministic clocks in tests) create their own.
var Default = NewScheduler()

// Start configures a new tween on the [Default] scheduler, plays it, and
// returns it together with its completion handle.
func Start(cfg Config) (*Tween, Completion) {
	return Default.Start(cfg)
}
