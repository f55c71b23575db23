package xrview

// OverlayController keeps the overlay element subtree parented under the
// renderer's AR slot exactly while an AR session is active, and under the
// default host container at every other time, including failure and
// teardown. It also tracks the entry control's affordance state and the
// session status readout.
//
// All renderer-side failures are non-fatal here: the controller always
// converges back to hosted placement and a start affordance, and no error
// escapes its methods.
type OverlayController struct {
	overlay *Element
	host    *Element
	slot    *Element

	renderer ModelRenderer
	session  ARSession

	affordance Affordance
	mode       OverlayMode
	readout    string

	// OnReadout, when set, is called with the status readout text each
	// time it changes. Nil by default; zero cost when unused.
	OnReadout func(text string)
	// OnAffordance, when set, is called each time the entry control's
	// affordance state changes.
	OnAffordance func(a Affordance)
}

// NewOverlayController creates a placement controller for the given
// overlay subtree. The overlay starts parented under host.
// Panics if any element is nil or the overlay is already part of the
// slot's subtree.
func NewOverlayController(renderer ModelRenderer, overlay, host, slot *Element) *OverlayController {
	if overlay == nil || host == nil || slot == nil {
		panic("xrview: overlay controller requires overlay, host, and slot elements")
	}
	host.AddChild(overlay)
	return &OverlayController{
		overlay:  overlay,
		host:     host,
		slot:     slot,
		renderer: renderer,
	}
}

// Attached reports whether the overlay subtree is currently parented
// under the AR slot. The placement state is derived from the tree itself,
// never tracked separately.
func (c *OverlayController) Attached() bool {
	return c.overlay.Parent == c.slot
}

// Affordance returns the current entry control affordance state.
func (c *OverlayController) Affordance() Affordance {
	return c.affordance
}

// Mode returns the overlay presentation type negotiated for the active
// session, or OverlayNone when no session is active.
func (c *OverlayController) Mode() OverlayMode {
	return c.mode
}

// Readout returns the current status readout text.
func (c *OverlayController) Readout() string {
	return c.readout
}

// Attach moves the overlay subtree into the AR slot. Idempotent: if the
// overlay is already parented there, nothing changes. Safe to call with
// no session active — the renderer requires the overlay to be in its
// final position before session negotiation completes, so entry flows
// attach pre-emptively.
func (c *OverlayController) Attach() {
	if c.overlay.Parent == c.slot {
		return
	}
	c.slot.AddChild(c.overlay)
}

// Restore moves the overlay subtree back under the default host.
// Idempotent.
func (c *OverlayController) Restore() {
	if c.overlay.Parent == c.host {
		return
	}
	c.host.AddChild(c.overlay)
}

// HandleStatusChange processes one AR status notification and converges
// placement, affordance, and readout to match it. Redundant notifications
// are harmless.
func (c *OverlayController) HandleStatusChange(sc StatusChange) {
	switch sc.Status {
	case ARStatusSessionStarted:
		c.Attach()
		c.setAffordance(AffordanceExit)
		if c.mode != OverlayNone {
			c.setReadout("AR session active (" + string(c.mode) + " overlay)")
		} else {
			c.setReadout("AR session active")
		}
	case ARStatusFailed:
		c.Restore()
		c.session = nil
		c.mode = OverlayNone
		reason := sc.Reason
		if reason == "" {
			reason = "AR session failed"
		}
		c.setReadout(reason)
		c.setAffordance(AffordanceRetry)
	default:
		// not-presenting, session ended, or any transient status the
		// host introduces later.
		c.Restore()
		c.session = nil
		c.mode = OverlayNone
		c.setReadout("")
		c.setAffordance(AffordanceStart)
	}
}

// ToggleSession is the AR entry control's click handler.
//
// With a session active it requests termination and returns; placement
// and affordance are updated by the status notification the teardown
// produces, not here. On an unsupported platform it reports the
// unsupported state and does nothing further. Otherwise it attaches the
// overlay first — the renderer needs the element in its final position
// synchronously before it instantiates the platform overlay — and then
// requests entry; a rejected request restores placement and reports a
// generic start failure.
func (c *OverlayController) ToggleSession() {
	if c.session != nil {
		if err := c.session.End(); err != nil {
			warnf("AR session end: %v", err)
		}
		return
	}
	if !c.renderer.ARSupported() {
		c.setReadout("AR is not supported on this device")
		c.setAffordance(AffordanceUnsupported)
		return
	}
	c.Attach()
	session, mode, err := c.renderer.EnterAR()
	if err != nil {
		c.Restore()
		c.setReadout("Failed to start AR session")
		c.setAffordance(AffordanceRetry)
		return
	}
	c.session = session
	c.mode = mode
}

func (c *OverlayController) setAffordance(a Affordance) {
	if c.affordance == a {
		return
	}
	c.affordance = a
	if c.OnAffordance != nil {
		c.OnAffordance(a)
	}
}

func (c *OverlayController) setReadout(text string) {
	if c.readout == text {
		return
	}
	c.readout = text
	if c.OnReadout != nil {
		c.OnReadout(text)
	}
}
