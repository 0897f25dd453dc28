package motion

import "testing"

func sceneTween(s *Scheduler, from, to float64) *Tween {
	t := s.NewTween(nil)
	t.Configure(Config{
		From:     State{"x": from},
		To:       State{"x": to},
		Duration: 100,
	})
	return t
}

func TestSceneMembership(t *testing.T) {
	s, _ := newTestScheduler()
	a := sceneTween(s, 0, 1)
	b := sceneTween(s, 0, 2)

	sc := NewScene(a)
	if got := sc.Add(b); got != b {
		t.Error("Add did not return its argument")
	}
	if len(sc.Tweens()) != 2 {
		t.Fatalf("scene has %d members, want 2", len(sc.Tweens()))
	}

	members := sc.Tweens()
	members[0] = nil
	if sc.Tweens()[0] == nil {
		t.Error("Tweens exposed the internal slice")
	}

	sc.Remove(a)
	if got := sc.Tweens(); len(got) != 1 || got[0] != b {
		t.Errorf("members after Remove = %v, want just the second tween", got)
	}

	removed := sc.Empty()
	if len(removed) != 1 || len(sc.Tweens()) != 0 {
		t.Error("Empty did not drain the scene")
	}
}

func TestSceneControlsFanOut(t *testing.T) {
	s, now := newTestScheduler()
	a := sceneTween(s, 0, 10)
	b := sceneTween(s, 0, 20)
	sc := NewScene(a, b)

	sc.Play()
	if !sc.IsPlaying() || s.Len() != 2 {
		t.Fatalf("after Play: IsPlaying=%v Len=%d, want true and 2", sc.IsPlaying(), s.Len())
	}

	*now = 25
	sc.Pause()
	if sc.IsPlaying() || s.Len() != 0 {
		t.Fatalf("after Pause: IsPlaying=%v Len=%d, want false and 0", sc.IsPlaying(), s.Len())
	}

	sc.Resume()
	if !sc.IsPlaying() {
		t.Fatal("Resume did not restart the members")
	}

	sc.Stop(true)
	if sc.IsPlaying() || s.Len() != 0 {
		t.Error("Stop left members playing")
	}
	if x, _ := toFloat(a.CurrentState()["x"]); x != 10 {
		t.Errorf("member a stopped at x=%v, want 10", a.CurrentState()["x"])
	}
	if x, _ := toFloat(b.CurrentState()["x"]); x != 20 {
		t.Errorf("member b stopped at x=%v, want 20", b.CurrentState()["x"])
	}
}

func TestSceneIsPlayingWithMixedMembers(t *testing.T) {
	s, _ := newTestScheduler()
	a := sceneTween(s, 0, 1)
	b := sceneTween(s, 0, 1)
	sc := NewScene(a, b)

	a.Play(nil)
	if !sc.IsPlaying() {
		t.Error("IsPlaying = false with one playing member")
	}
	a.Stop(false)
	if sc.IsPlaying() {
		t.Error("IsPlaying = true with no playing members")
	}
}
