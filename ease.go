package motion

import (
	"github.com/fogleman/ease"
)

// EasingFunc maps a normalized time position in [0, 1] to an eased position.
// The result is typically also in [0, 1] but is not required to be bounded;
// overshoot curves (back, elastic) intentionally leave the interval.
type EasingFunc func(position float64) float64

// DefaultCurve is the curve name used when an easing specification omits a
// property, or is omitted entirely.
const DefaultCurve = "linear"

// Easing specifies which curve (or curves) a tween uses. Construct one with
// [Curve], [Func], or [PerProperty]; the zero value selects [DefaultCurve]
// for every property.
type Easing struct {
	name string
	fn   EasingFunc
	per  map[string]Easing
}

// Curve selects a named curve from the curve registry, applied to every
// property. An unknown name is a configuration defect that surfaces when the
// curve is first evaluated, not when the tween is configured.
func Curve(name string) Easing { return Easing{name: name} }

// Func selects an explicit curve function, applied to every property.
func Func(fn EasingFunc) Easing { return Easing{fn: fn} }

// PerProperty assigns a curve per property name. Values must be [Curve] or
// [Func] easings; properties absent from the map fall back to [DefaultCurve].
func PerProperty(curves map[string]Easing) Easing { return Easing{per: curves} }

func (e Easing) isZero() bool { return e.name == "" && e.fn == nil && e.per == nil }

// --- Named-curve registry ---

// The registry is seeded with the fogleman/ease curve library under the
// conventional easeIn/easeOut/easeInOut names. Hosts may extend or replace
// entries at startup; the registry is not safe for mutation while tweens are
// being processed (the engine is single-threaded by contract).
var curves = map[string]EasingFunc{
	"linear":           ease.Linear,
	"easeInQuad":       ease.InQuad,
	"easeOutQuad":      ease.OutQuad,
	"easeInOutQuad":    ease.InOutQuad,
	"easeInCubic":      ease.InCubic,
	"easeOutCubic":     ease.OutCubic,
	"easeInOutCubic":   ease.InOutCubic,
	"easeInQuart":      ease.InQuart,
	"easeOutQuart":     ease.OutQuart,
	"easeInOutQuart":   ease.InOutQuart,
	"easeInQuint":      ease.InQuint,
	"easeOutQuint":     ease.OutQuint,
	"easeInOutQuint":   ease.InOutQuint,
	"easeInSine":       ease.InSine,
	"easeOutSine":      ease.OutSine,
	"easeInOutSine":    ease.InOutSine,
	"easeInExpo":       ease.InExpo,
	"easeOutExpo":      ease.OutExpo,
	"easeInOutExpo":    ease.InOutExpo,
	"easeInCirc":       ease.InCirc,
	"easeOutCirc":      ease.OutCirc,
	"easeInOutCirc":    ease.InOutCirc,
	"easeInElastic":    ease.InElastic,
	"easeOutElastic":   ease.OutElastic,
	"easeInOutElastic": ease.InOutElastic,
	"easeInBack":       ease.InBack,
	"easeOutBack":      ease.OutBack,
	"easeInOutBack":    ease.InOutBack,
	"easeInBounce":     ease.InBounce,
	"easeOutBounce":    ease.OutBounce,
	"easeInOutBounce":  ease.InOutBounce,
}

// RegisterCurve adds or replaces a named curve in the curve registry.
func RegisterCurve(name string, fn EasingFunc) {
	curves[name] = fn
}

// LookupCurve returns the registered curve for name, or nil.
func LookupCurve(name string) EasingFunc {
	return curves[name]
}

// --- Easing composition ---

// easingRef is one per-property curve slot. A nil fn defers the name lookup
// to evaluation time, so unknown names fail lazily when first evaluated.
type easingRef struct {
	name string
	fn   EasingFunc
}

// composedEasing is the resolved form of an easing specification: either a
// uniform curve evaluated once per tick for all properties, or a
// per-property map.
type composedEasing struct {
	uniform EasingFunc
	per     map[string]easingRef
}

// curveFor resolves the curve for a property at evaluation time. Unknown
// names panic here, never at configuration time.
func (e composedEasing) curveFor(prop string) EasingFunc {
	ref, ok := e.per[prop]
	if !ok {
		panic("motion: no easing resolved for property " + prop)
	}
	if ref.fn != nil {
		return ref.fn
	}
	fn := LookupCurve(ref.name)
	if fn == nil {
		panic("motion: unknown easing curve " + ref.name)
	}
	return fn
}

func refOf(e Easing) easingRef {
	if e.fn != nil {
		return easingRef{fn: e.fn}
	}
	name := e.name
	if name == "" {
		name = DefaultCurve
	}
	return easingRef{name: name}
}

// composeEasing resolves a raw easing specification against a property set.
// A specification naming exactly one registered curve resolves to the uniform
// fast path: that function is applied to every property with no per-property
// lookup. Everything else fills a per-property map, reusing into (when
// non-nil) to avoid reallocation across reconfiguration.
func composeEasing(props State, spec Easing, into map[string]easingRef) composedEasing {
	if spec.isZero() {
		spec = Curve(DefaultCurve)
	}

	if spec.per == nil && spec.fn == nil {
		if fn := LookupCurve(spec.name); fn != nil {
			return composedEasing{uniform: fn}
		}
	}

	if into == nil {
		into = make(map[string]easingRef, len(props))
	} else {
		clear(into)
	}

	if spec.per != nil {
		for prop := range props {
			sub, ok := spec.per[prop]
			if !ok {
				sub = Curve(DefaultCurve)
			}
			into[prop] = refOf(sub)
		}
	} else {
		// Single function, or a single unknown name carried per-property so
		// the failure surfaces at evaluation time.
		ref := refOf(spec)
		for prop := range props {
			into[prop] = ref
		}
	}
	return composedEasing{per: into}
}
