package motion

// Filter is the interface for pluggable hook sets that transform tween state
// around the interpolation step, typically to make string-encoded properties
// ("10px", "rgb(255,0,0)") interpolable. A filter participates in a tween
// only when Match reports true at configuration time, and the whole pipeline
// is skipped entirely for tweens whose state is purely numeric.
//
// The four hook points are optional capabilities; a filter implements any of
// [TweenCreatedHook], [BeforeTweenHook], [AfterTweenHook], and
// [AfterTweenEndHook] that it needs:
//
//   - TweenCreated: once at configuration, after states and easing are set.
//   - BeforeTween: every tick, before interpolation.
//   - AfterTween: every tick, after interpolation.
//   - AfterTweenEnd: once, when a segment is stopped with goto-end.
//
// Hooks receive the tween controller and may read and rewrite its working
// state through [Tween.CurrentState], [Tween.OriginalState],
// [Tween.TargetState], [Tween.CopyEasing], [Tween.RemoveEasing], and the
// [Tween.FilterData] scratch store.
type Filter interface {
	// Match reports whether the filter applies to the configured tween.
	Match(t *Tween) bool
}

// TweenCreatedHook is implemented by filters that act once at configuration.
type TweenCreatedHook interface {
	TweenCreated(t *Tween)
}

// BeforeTweenHook is implemented by filters that act before each
// interpolation step.
type BeforeTweenHook interface {
	BeforeTween(t *Tween)
}

// AfterTweenHook is implemented by filters that act after each interpolation
// step.
type AfterTweenHook interface {
	AfterTween(t *Tween)
}

// AfterTweenEndHook is implemented by filters that act when a segment ends.
type AfterTweenEndHook interface {
	AfterTweenEnd(t *Tween)
}

// --- Filter registry ---

type namedFilter struct {
	name   string
	filter Filter
}

// registeredFilters holds the host-extensible filter set in registration
// order. Hooks run in reverse registration order; that ordering is a fixed
// contract, not incidental.
var registeredFilters []namedFilter

// RegisterFilter adds a filter under name, replacing (in place, keeping its
// position) any filter already registered under that name. The registry is
// consulted once per tween configuration.
func RegisterFilter(name string, f Filter) {
	for i, rf := range registeredFilters {
		if rf.name == name {
			registeredFilters[i].filter = f
			return
		}
	}
	registeredFilters = append(registeredFilters, namedFilter{name: name, filter: f})
}

// hookPoint identifies one of the four filter hook points.
type hookPoint uint8

const (
	hookCreated hookPoint = iota
	hookBefore
	hookAfter
	hookAfterEnd
)

// applyHooks invokes one hook point on the tween's applicable filters, in
// reverse registration order.
func (t *Tween) applyHooks(p hookPoint) {
	for i := len(t.filters) - 1; i >= 0; i-- {
		switch p {
		case hookCreated:
			if h, ok := t.filters[i].(TweenCreatedHook); ok {
				h.TweenCreated(t)
			}
		case hookBefore:
			if h, ok := t.filters[i].(BeforeTweenHook); ok {
				h.BeforeTween(t)
			}
		case hookAfter:
			if h, ok := t.filters[i].(AfterTweenHook); ok {
				h.AfterTween(t)
			}
		case hookAfterEnd:
			if h, ok := t.filters[i].(AfterTweenEndHook); ok {
				h.AfterTweenEnd(t)
			}
		}
	}
}
