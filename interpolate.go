package motion

// toFloat normalizes a property value to float64. Strings (and anything else
// non-numeric) report ok == false; they are either expanded to numeric
// components by a filter before interpolation reaches them, or skipped.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// interpolateInto computes one interpolated frame, writing every property
// into current. probe is the absolute time to evaluate at; timestamp is the
// start of the active window (the raw start time already shifted past any
// delay). Probe times before the window clamp the normalized position to 0.
//
// With a uniform easing the curve is evaluated once and the eased position
// shared by every property. With per-property easing each property evaluates
// its own curve, so distinct curves yield distinct eased positions for the
// same real time; that is what makes staggered per-property motion work.
//
// Apart from writing into current, this is a pure function of its inputs.
func interpolateInto(probe float64, current, original, target State, duration, timestamp float64, easing composedEasing) {
	position := 0.0
	if probe >= timestamp {
		position = (probe - timestamp) / duration
	}

	if easing.uniform != nil {
		eased := easing.uniform(position)
		for prop := range current {
			ov, ok := toFloat(original[prop])
			if !ok {
				continue
			}
			tv, ok := toFloat(target[prop])
			if !ok {
				continue
			}
			current[prop] = ov + (tv-ov)*eased
		}
		return
	}

	for prop := range current {
		ov, ok := toFloat(original[prop])
		if !ok {
			continue
		}
		tv, ok := toFloat(target[prop])
		if !ok {
			continue
		}
		eased := easing.curveFor(prop)(position)
		current[prop] = ov + (tv-ov)*eased
	}
}

// Interpolate computes the single frame a tween from one state to another
// would render at the given normalized position, without scheduling anything.
// The filter pipeline runs around the computation, so string-encoded states
// ("#fff" to "#000", "0px" to "10px") interpolate the same way they would
// inside a playing tween. Properties absent from to hold their from value.
func Interpolate(from, to State, position float64, easing Easing) State {
	scratch := &Tween{
		sched:    Default,
		current:  from.clone(),
		original: from.clone(),
	}
	scratch.target = from.clone()
	for k, v := range to {
		scratch.target[k] = v
	}
	scratch.easing = composeEasing(scratch.current, easing, nil)

	if scratch.current.hasString() {
		for _, rf := range registeredFilters {
			if rf.filter.Match(scratch) {
				scratch.filters = append(scratch.filters, rf.filter)
			}
		}
	}

	hasFilters := len(scratch.filters) > 0
	if hasFilters {
		scratch.applyHooks(hookCreated)
		scratch.applyHooks(hookBefore)
	}
	interpolateInto(position, scratch.current, scratch.original, scratch.target, 1, 0, scratch.easing)
	if hasFilters {
		scratch.applyHooks(hookAfter)
		if position >= 1 {
			scratch.applyHooks(hookAfterEnd)
		}
	}
	return scratch.current
}
