// Package motion is a tween scheduling and interpolation engine.
//
// Given a starting state, a target state, a duration, and per-property
// easing curves, motion computes intermediate states at each tick of a drive
// loop and delivers them to a render callback. It animates flat maps of
// numeric properties, plus string properties with embedded numbers
// ("10px 20px", "#ff8800") via its filter pipeline. It renders to nothing:
// hosts receive plain state maps and draw them however they like.
//
// # Quick start
//
//	tween, done := motion.Start(motion.Config{
//		From:     motion.State{"x": 0},
//		To:       motion.State{"x": 100},
//		Duration: 500,
//		Easing:   motion.Curve("easeOutQuad"),
//		Render: func(state motion.State, _ any, _ float64) {
//			fmt.Println(state["x"])
//		},
//	})
//	_ = tween
//	done.(*motion.Promise).Then(func(r motion.Result) { fmt.Println("done") })
//
// Something has to tick the scheduler. With a frame loop of your own (a game
// engine's update callback), call [Scheduler.Tick] from it; without one, use
// [Scheduler.Loop] or set a [Driver].
//
// # Lifecycle
//
// Each [Tween] is a small state machine: [Tween.Play] starts a fresh
// segment, [Tween.Pause] and [Tween.Resume] freeze and continue it (paused
// time never counts against the animation), [Tween.Seek] jumps to a
// position, and [Tween.Stop] and [Tween.Cancel] end the segment as a success
// or a failure. Exactly one of the segment's completion continuations fires,
// exactly once, no matter how the segment ends. Misusing the state machine
// (double pause, stopping a stopped tween) is always a harmless no-op.
//
// # Easing
//
// Easing is per property: [Curve] names a registered curve, [Func] supplies
// one, and [PerProperty] mixes them per property name, so one property can
// overshoot while another glides. The registry is seeded with the
// [fogleman/ease] library under the conventional names ("linear",
// "easeInQuad", "easeOutBounce", ...) and is host-extensible via
// [RegisterCurve].
//
// # Timelines and scenes
//
// [Timeline] sequences configurations on one tween, optionally loaded from
// YAML; [Scene] fans play/pause/resume/stop out over a set of tweens.
//
// [fogleman/ease]: https://github.com/fogleman/ease
package motion
