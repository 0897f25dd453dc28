package motion

// Scene groups tweens so they can be controlled together. It owns nothing:
// tweens keep their own schedulers, configurations, and completion handles,
// and a scene is just a set that fans control calls out to its members.
type Scene struct {
	tweens []*Tween
}

// NewScene returns a scene containing the given tweens.
func NewScene(tweens ...*Tween) *Scene {
	return &Scene{tweens: append([]*Tween(nil), tweens...)}
}

// Tweens returns a copy of the scene's member list.
func (sc *Scene) Tweens() []*Tween {
	return append([]*Tween(nil), sc.tweens...)
}

// Add appends a tween to the scene and returns it.
func (sc *Scene) Add(t *Tween) *Tween {
	sc.tweens = append(sc.tweens, t)
	return t
}

// Remove takes a tween out of the scene (leaving it otherwise untouched) and
// returns it. Unknown tweens are a no-op.
func (sc *Scene) Remove(t *Tween) *Tween {
	for i, member := range sc.tweens {
		if member == t {
			sc.tweens = append(sc.tweens[:i], sc.tweens[i+1:]...)
			break
		}
	}
	return t
}

// Empty removes all members and returns them.
func (sc *Scene) Empty() []*Tween {
	removed := sc.tweens
	sc.tweens = nil
	return removed
}

// IsPlaying reports whether any member is currently playing.
func (sc *Scene) IsPlaying() bool {
	for _, t := range sc.tweens {
		if t.IsPlaying() {
			return true
		}
	}
	return false
}

// Play starts a fresh play segment on every member.
func (sc *Scene) Play() *Scene {
	for _, t := range sc.tweens {
		t.Play(nil)
	}
	return sc
}

// Pause pauses every member.
func (sc *Scene) Pause() *Scene {
	for _, t := range sc.tweens {
		t.Pause()
	}
	return sc
}

// Resume resumes every member.
func (sc *Scene) Resume() *Scene {
	for _, t := range sc.tweens {
		t.Resume()
	}
	return sc
}

// Stop stops every member, with or without jumping to its target state.
func (sc *Scene) Stop(gotoEnd bool) *Scene {
	for _, t := range sc.tweens {
		t.Stop(gotoEnd)
	}
	return sc
}
