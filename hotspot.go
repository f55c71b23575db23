package xrview

// defaultHotspotIdle is the seconds of inactivity after which hotspots hide.
const defaultHotspotIdle float32 = 2.0

// HotspotTimer shows screen-anchored hotspot elements while the user is
// active and hides them after an idle period. Any pointer or interaction
// notification counts as activity and restarts the idle clock.
type HotspotTimer struct {
	hotspots  []*Element
	idleAfter float32
	remaining float32
	visible   bool
}

// NewHotspotTimer creates a timer that hides hotspots idleAfter seconds
// past the last activity. idleAfter <= 0 selects the default. Hotspots
// start hidden until the first activity.
func NewHotspotTimer(idleAfter float32) *HotspotTimer {
	if idleAfter <= 0 {
		idleAfter = defaultHotspotIdle
	}
	return &HotspotTimer{idleAfter: idleAfter}
}

// Add registers a hotspot element and applies the current visibility.
func (h *HotspotTimer) Add(e *Element) {
	h.hotspots = append(h.hotspots, e)
	e.Visible = h.visible
}

// Visible reports whether hotspots are currently shown.
func (h *HotspotTimer) Visible() bool {
	return h.visible
}

// HandleActivity shows the hotspots and restarts the idle countdown.
func (h *HotspotTimer) HandleActivity() {
	h.remaining = h.idleAfter
	if h.visible {
		return
	}
	h.visible = true
	h.apply()
}

// Update advances the idle clock by dt seconds, hiding the hotspots once
// it runs out.
func (h *HotspotTimer) Update(dt float32) {
	if !h.visible {
		return
	}
	h.remaining -= dt
	if h.remaining > 0 {
		return
	}
	h.visible = false
	h.apply()
}

func (h *HotspotTimer) apply() {
	for _, e := range h.hotspots {
		if !e.IsDisposed() {
			e.Visible = h.visible
		}
	}
}
