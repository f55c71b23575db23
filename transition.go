package xrview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultTurnDuration is the turn transition length in seconds.
const defaultTurnDuration float32 = 0.85

// TurnTransition is one in-flight yaw transition. Transitions are created
// by RotationController and advanced by Update once per frame. Starting a
// new transition invalidates the previous one through the controller's
// generation counter: a stale transition's Update detects the mismatch
// and performs no mutation, even if the caller keeps pumping it.
type TurnTransition struct {
	ctrl  *RotationController
	gen   uint64
	tween *gween.Tween
	from  float64
	to    float64 // normalized target, committed exactly at completion
	done  bool
}

// Done reports whether this transition has completed or been superseded.
func (t *TurnTransition) Done() bool {
	return t.done
}

// Update advances the transition by dt seconds. Ticks of a superseded
// transition are inert. The final tick commits exactly the normalized
// target angle rather than the interpolated value, so repeated runs land
// on the same committed value with no residual interpolation error.
func (t *TurnTransition) Update(dt float32) {
	if t.done {
		return
	}
	if t.gen != t.ctrl.gen {
		t.done = true
		return
	}
	eased, finished := t.tween.Update(dt)
	if finished {
		t.ctrl.commit(t.to)
		t.done = true
		return
	}
	t.ctrl.show(NormalizeDegrees(t.from + float64(eased)))
}

// RotationController owns the model's yaw angle and drives smooth turns
// through short eased transitions. At most one transition is active at a
// time; TurnTo and TurnBy cancel any in-flight transition before starting
// the next, so rapid repeated triggers never stack.
type RotationController struct {
	renderer ModelRenderer

	step     float64 // degrees per TurnBy default increment
	duration float32 // seconds per transition

	angle     float64 // committed angle in [0, 360)
	displayed float64 // last angle applied to the renderer
	gen       uint64
	active    *TurnTransition
}

// NewRotationController creates a rotation controller. step is the
// default TurnBy increment in degrees (0 means 90). duration is the
// transition length in seconds; zero or negative means turns commit
// immediately with no interpolation.
func NewRotationController(renderer ModelRenderer, step float64, duration float32) *RotationController {
	if step == 0 {
		step = 90
	}
	return &RotationController{
		renderer: renderer,
		step:     step,
		duration: duration,
	}
}

// Angle returns the committed yaw angle in [0, 360). Mid-transition this
// is still the previous committed value; Displayed tracks the in-flight
// angle.
func (c *RotationController) Angle() float64 {
	return c.angle
}

// Displayed returns the yaw angle most recently applied to the renderer.
func (c *RotationController) Displayed() float64 {
	return c.displayed
}

// TurnTo starts an eased transition from the currently displayed angle to
// the given target. Any in-flight transition is cancelled first, so the
// new transition picks up from wherever the previous one left the model —
// no visual jump beyond what the new target implies.
func (c *RotationController) TurnTo(to float64) *TurnTransition {
	c.gen++
	from := NormalizeDegrees(c.displayed)
	target := NormalizeDegrees(to)
	delta := ShortestArc(from, target)

	if c.duration <= 0 {
		c.commit(target)
		t := &TurnTransition{ctrl: c, gen: c.gen, from: from, to: target, done: true}
		c.active = nil
		return t
	}

	t := &TurnTransition{
		ctrl:  c,
		gen:   c.gen,
		tween: gween.New(0, float32(delta), c.duration, ease.InOutCubic),
		from:  from,
		to:    target,
	}
	c.active = t
	return t
}

// TurnBy starts a transition by the given delta relative to the pending
// target: the active transition's destination if one is in flight,
// otherwise the committed angle. Four TurnBy(90) calls therefore always
// net a full turn, whether or not each is allowed to finish.
func (c *RotationController) TurnBy(delta float64) *TurnTransition {
	base := c.angle
	if c.active != nil && !c.active.done {
		base = c.active.to
	}
	return c.TurnTo(base + delta)
}

// Turn starts a transition by the controller's configured step.
func (c *RotationController) Turn() *TurnTransition {
	return c.TurnBy(c.step)
}

// Cancel invalidates any in-flight transition. The displayed angle stays
// wherever the last tick left it.
func (c *RotationController) Cancel() {
	c.gen++
	c.active = nil
}

// Update advances the active transition by dt seconds. Call once per
// frame from the host's visual update callback.
func (c *RotationController) Update(dt float32) {
	if c.active == nil {
		return
	}
	c.active.Update(dt)
	if c.active != nil && c.active.done {
		c.active = nil
	}
}

// show applies an interpolated angle to the renderer without committing it.
func (c *RotationController) show(angle float64) {
	c.displayed = angle
	c.renderer.SetYaw(angle)
	c.renderer.RequestRender()
}

// commit applies and records the exact normalized target angle.
func (c *RotationController) commit(angle float64) {
	c.angle = angle
	c.displayed = angle
	c.renderer.SetYaw(angle)
	c.renderer.RequestRender()
}
