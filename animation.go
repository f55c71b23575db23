package xrview

import (
	"strings"
	"time"
)

// defaultCrossFade is the blend duration used when switching animations.
const defaultCrossFade = 300 * time.Millisecond

// RoleMap holds the renderer-native animation identifier resolved for
// each semantic role. Resolved once per model load, read-only after.
type RoleMap struct {
	Chair   string
	Stretch string
}

// Name returns the renderer-native identifier for the given role.
func (m RoleMap) Name(role Role) string {
	if role == RoleStretch {
		return m.Stretch
	}
	return m.Chair
}

// ResolveRoles maps renderer-reported animation identifiers to semantic
// roles by fuzzy substring match. The chair role takes the first
// identifier containing "chair" (case-insensitive), falling back to the
// first identifier. The stretch role takes the first containing
// "stretch", falling back to the first identifier not already chosen for
// chair, falling back again to the first identifier. An empty name list
// yields a zero RoleMap.
func ResolveRoles(names []string) RoleMap {
	if len(names) == 0 {
		return RoleMap{}
	}
	chair := firstContaining(names, "chair")
	if chair == "" {
		chair = names[0]
	}
	stretch := firstContaining(names, "stretch")
	if stretch == "" {
		for _, name := range names {
			if name != chair {
				stretch = name
				break
			}
		}
	}
	if stretch == "" {
		stretch = names[0]
	}
	return RoleMap{Chair: chair, Stretch: stretch}
}

// firstContaining returns the first name containing the case-insensitive
// substring, or "".
func firstContaining(names []string, sub string) string {
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), sub) {
			return name
		}
	}
	return ""
}

// AnimationController toggles the model between the chair and stretch
// animations. Each toggle cross-fades to the target role, plays it for
// exactly one non-looping repetition, and freezes on the final frame when
// the host reports playback finished. No per-frame ticks are needed for
// this path — the blend is delegated to the renderer.
type AnimationController struct {
	renderer  ModelRenderer
	crossFade time.Duration

	roles   RoleMap
	current Role
	ready   bool
}

// NewAnimationController creates an animation controller. crossFade <= 0
// selects the default blend duration.
func NewAnimationController(renderer ModelRenderer, crossFade time.Duration) *AnimationController {
	if crossFade <= 0 {
		crossFade = defaultCrossFade
	}
	return &AnimationController{renderer: renderer, crossFade: crossFade}
}

// Ready reports whether roles have been resolved for a loaded model.
func (c *AnimationController) Ready() bool {
	return c.ready
}

// Roles returns the resolved role mapping.
func (c *AnimationController) Roles() RoleMap {
	return c.roles
}

// Current returns the role whose animation is active.
func (c *AnimationController) Current() Role {
	return c.current
}

// HandleModelLoad resolves roles from the renderer's animation list and
// starts the chair animation for a single non-looping repetition. A model
// with no animations leaves the controller inert: Toggle becomes a no-op
// and a warning is printed, but nothing else breaks.
func (c *AnimationController) HandleModelLoad() {
	names := c.renderer.AnimationNames()
	if len(names) == 0 {
		warnf("model has no animations; animation toggle disabled")
		c.ready = false
		return
	}
	c.roles = ResolveRoles(names)
	c.current = RoleChair
	c.ready = true
	c.renderer.SetAnimation(c.roles.Chair, false, 0)
	c.renderer.Play(1)
}

// Toggle cross-fades to the other role and plays it once, non-looping.
// No-op until a model with animations has loaded.
func (c *AnimationController) Toggle() {
	if !c.ready {
		return
	}
	target := RoleChair
	if c.current == RoleChair {
		target = RoleStretch
	}
	c.renderer.SetAnimation(c.roles.Name(target), false, c.crossFade)
	c.renderer.Play(1)
	c.current = target
}

// HandlePlaybackFinished pauses playback so the final pose stays locked.
func (c *AnimationController) HandlePlaybackFinished() {
	if !c.ready {
		return
	}
	c.renderer.Pause()
}
