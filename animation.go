package thicket

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition eases between two values of a type registered with
// RegisterInterpolator: Color, Gradient and BorderColors out of the box.
// Call Update(dt) each frame and read Value.
//
// There is no global animation manager; callers run Update themselves.
type Transition struct {
	from, to any
	tween    *gween.Tween
	ratio    float64
	Done     bool
}

// NewTransition creates a transition from one value to another over duration
// seconds using the easing function. A nil fn means linear.
func NewTransition(from, to any, duration float32, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Transition{from: from, to: to}
	if duration <= 0 {
		t.ratio = 1
		t.Done = true
		return t
	}
	t.tween = gween.New(0, 1, duration, fn)
	return t
}

// Update advances the transition by dt seconds.
func (t *Transition) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.ratio = float64(val)
	if finished {
		t.ratio = 1
		t.Done = true
	}
}

// Ratio returns the eased progress. Overshooting easings may leave [0, 1].
func (t *Transition) Ratio() float64 { return t.ratio }

// Value returns the current blend. Types without an interpolator jump from
// the start value to the end value once the transition is done.
func (t *Transition) Value() any {
	v, _ := Interpolate(t.from, t.to, t.ratio)
	return v
}

// Reset rewinds the transition to its start.
func (t *Transition) Reset() {
	if t.tween == nil {
		return
	}
	t.tween.Reset()
	t.ratio = 0
	t.Done = false
}

// BorderTransition animates border colors, e.g. when a skinnable enters or
// leaves the hovered state.
type BorderTransition struct {
	Transition
}

// NewBorderTransition creates a transition between two sets of border
// colors.
func NewBorderTransition(from, to BorderColors, duration float32, fn ease.TweenFunc) *BorderTransition {
	return &BorderTransition{Transition: *NewTransition(from, to, duration, fn)}
}

// Colors returns the current border colors.
func (t *BorderTransition) Colors() BorderColors {
	from := t.from.(BorderColors)
	return from.Interpolated(t.to.(BorderColors), t.ratio)
}

// Target returns the colors the transition ends at.
func (t *BorderTransition) Target() BorderColors {
	return t.to.(BorderColors)
}

// Retarget starts over from the current colors towards to, so that a state
// change in the middle of a transition does not jump.
func (t *BorderTransition) Retarget(to BorderColors, duration float32, fn ease.TweenFunc) {
	*t = *NewBorderTransition(t.Colors(), to, duration, fn)
}
