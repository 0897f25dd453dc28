package motion

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TimelineStep is one leg of a timeline: a target state plus the timing and
// easing to reach it with. Zero Duration selects [DefaultDuration]; an empty
// Easing selects the default curve.
type TimelineStep struct {
	To       State   `yaml:"to"`
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
	Easing   string  `yaml:"easing"`
}

// Timeline is an ordered sequence of steps played back to back on a single
// tween, each step starting from wherever the previous one ended. Timelines
// can be built in code or loaded from YAML with [LoadTimeline]:
//
//	steps:
//	  - to: {x: 100, y: 40}
//	    duration: 500
//	    easing: easeOutQuad
//	  - to: {x: 0}
//	    delay: 100
//	    duration: 250
type Timeline struct {
	Steps []TimelineStep `yaml:"steps"`
}

// LoadTimeline reads a YAML timeline definition and validates it.
func LoadTimeline(r io.Reader) (*Timeline, error) {
	var tl Timeline
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tl); err != nil {
		return nil, fmt.Errorf("motion: decoding timeline: %w", err)
	}
	if err := tl.validate(); err != nil {
		return nil, err
	}
	return &tl, nil
}

func (tl *Timeline) validate() error {
	if len(tl.Steps) == 0 {
		return errors.New("motion: timeline has no steps")
	}
	for i, step := range tl.Steps {
		if len(step.To) == 0 {
			return fmt.Errorf("motion: timeline step %d: missing to", i)
		}
		if step.Duration < 0 {
			return fmt.Errorf("motion: timeline step %d: negative duration", i)
		}
		if step.Delay < 0 {
			return fmt.Errorf("motion: timeline step %d: negative delay", i)
		}
	}
	return nil
}

// chainCompletion forwards segment outcomes to the timeline's chaining
// logic; it is how Run advances to the next step without claiming the
// tween's default promise.
type chainCompletion struct {
	resolve func(Result)
	reject  func(Result)
}

func (c chainCompletion) Resolve(r Result) { c.resolve(r) }
func (c chainCompletion) Reject(r Result)  { c.reject(r) }

// Run plays the timeline's steps on t, each step starting when the previous
// one completes. The tween's render callback and data payload carry over into
// every step, so a render function configured before Run keeps firing
// throughout. The returned promise resolves with the final step's result, or
// rejects with the in-flight result if any step is cancelled. The caller
// still drives t's scheduler; Run only sequences configurations.
func (tl *Timeline) Run(t *Tween) *Promise {
	render := t.cfg.renderFunc()
	data := t.cfg.dataPayload()
	done := &Promise{}
	var play func(i int)
	play = func(i int) {
		step := tl.Steps[i]
		cfg := Config{
			To:       step.To,
			Duration: step.Duration,
			Delay:    step.Delay,
			Render:   render,
			Data:     data,
			NewCompletion: func() Completion {
				return chainCompletion{
					resolve: func(r Result) {
						if i+1 < len(tl.Steps) {
							play(i + 1)
						} else {
							done.Resolve(r)
						}
					},
					reject: done.Reject,
				}
			},
		}
		if step.Easing != "" {
			cfg.Easing = Curve(step.Easing)
		}
		t.Play(&cfg)
	}
	if len(tl.Steps) == 0 {
		done.Resolve(Result{State: t.State(), Tween: t})
		return done
	}
	play(0)
	return done
}
