package xrview

import "time"

// Config configures a Viewer. The zero value selects sane defaults for
// every field.
type Config struct {
	// TurnStep is the degrees rotated per rotate-control click. 0 means 90.
	TurnStep float64
	// TurnDuration is the rotation transition length in seconds.
	// 0 means the default; negative means turns commit immediately.
	TurnDuration float32
	// CrossFade is the animation blend duration. 0 means the default.
	CrossFade time.Duration
	// DimensionInterval is the seconds between bounding-box samples while
	// interacting. 0 means the default.
	DimensionInterval float32
	// HotspotIdle is the seconds of inactivity before hotspots hide.
	// 0 means the default.
	HotspotIdle float32
	// TextureURIs are the texture variant URIs the texture control cycles
	// through, after the model's original material.
	TextureURIs []string
	// MaxExposure caps the exposure slider value. 0 means 2.
	MaxExposure float64
}

// Viewer is the interaction controller for one product-viewer instance.
// It owns the overlay element tree and all sub-controllers; nothing is
// process-wide, so multiple independent viewers can coexist.
//
// The viewer is single-threaded: all notification handlers, control
// handlers, and Update must be called from the host UI loop.
type Viewer struct {
	renderer ModelRenderer

	host    *Element // default overlay parent
	slot    *Element // renderer's AR overlay slot
	overlay *Element // the relocatable overlay subtree
	hud     *Element

	placement *OverlayController
	rotation  *RotationController
	animation *AnimationController
	cache     *TextureCache
	textures  *TextureCycler
	poller    *DimensionPoller
	hotspots  *HotspotTimer

	exposure    float64
	maxExposure float64

	runner *ScriptRunner
}

// NewViewer creates a viewer driving the given renderer. The overlay
// subtree starts under the default host container.
func NewViewer(renderer ModelRenderer, cfg Config) *Viewer {
	if cfg.TurnDuration == 0 {
		cfg.TurnDuration = defaultTurnDuration
	}
	if cfg.MaxExposure <= 0 {
		cfg.MaxExposure = 2
	}

	host := NewElement("ui-host")
	slot := NewElement("ar-slot")
	overlay := NewElement("overlay")
	hud := NewDimensionHUD("dimension-hud")
	overlay.AddChild(hud)

	cache := NewTextureCache(renderer)
	poller := NewDimensionPoller(renderer, cfg.DimensionInterval)
	poller.BindHUD(hud)

	v := &Viewer{
		renderer:    renderer,
		host:        host,
		slot:        slot,
		overlay:     overlay,
		hud:         hud,
		placement:   NewOverlayController(renderer, overlay, host, slot),
		rotation:    NewRotationController(renderer, cfg.TurnStep, cfg.TurnDuration),
		animation:   NewAnimationController(renderer, cfg.CrossFade),
		cache:       cache,
		textures:    NewTextureCycler(renderer, cache, cfg.TextureURIs),
		poller:      poller,
		hotspots:    NewHotspotTimer(cfg.HotspotIdle),
		exposure:    1,
		maxExposure: cfg.MaxExposure,
	}
	return v
}

// --- Accessors ---

// Host returns the default overlay parent container.
func (v *Viewer) Host() *Element { return v.host }

// Slot returns the renderer's AR overlay slot container.
func (v *Viewer) Slot() *Element { return v.slot }

// Overlay returns the relocatable overlay subtree root.
func (v *Viewer) Overlay() *Element { return v.overlay }

// HUD returns the dimension readout element.
func (v *Viewer) HUD() *Element { return v.hud }

// Placement returns the overlay placement controller.
func (v *Viewer) Placement() *OverlayController { return v.placement }

// Rotation returns the rotation controller.
func (v *Viewer) Rotation() *RotationController { return v.rotation }

// Animation returns the animation controller.
func (v *Viewer) Animation() *AnimationController { return v.animation }

// Textures returns the texture variant cycler.
func (v *Viewer) Textures() *TextureCycler { return v.textures }

// Hotspots returns the hotspot visibility timer.
func (v *Viewer) Hotspots() *HotspotTimer { return v.hotspots }

// Exposure returns the current exposure value.
func (v *Viewer) Exposure() float64 { return v.exposure }

// --- Host notifications ---

// HandleModelLoad reacts to the host's model-load-complete notification:
// animation roles are resolved and the chair animation started, and the
// texture cycler is disabled when the model exposes no texture slot.
func (v *Viewer) HandleModelLoad() {
	v.animation.HandleModelLoad()
	if !v.renderer.HasTextureSlot() {
		warnf("model has no texture slot; texture cycling disabled")
		v.textures.SetEnabled(false)
	} else {
		v.textures.SetEnabled(true)
	}
}

// HandleStatusChange forwards an AR status notification to the placement
// controller.
func (v *Viewer) HandleStatusChange(sc StatusChange) {
	v.placement.HandleStatusChange(sc)
}

// HandlePlaybackFinished freezes the animation on its final frame.
func (v *Viewer) HandlePlaybackFinished() {
	v.animation.HandlePlaybackFinished()
}

// HandleInteractionStart begins dimension polling and counts as hotspot
// activity.
func (v *Viewer) HandleInteractionStart() {
	v.poller.HandleInteractionStart()
	v.hotspots.HandleActivity()
}

// HandleInteractionEnd stops dimension polling. The hotspot idle clock
// keeps running from the last activity.
func (v *Viewer) HandleInteractionEnd() {
	v.poller.HandleInteractionEnd()
}

// HandlePointer counts a raw pointer or select event as hotspot activity.
func (v *Viewer) HandlePointer() {
	v.hotspots.HandleActivity()
}

// --- Control handlers ---

// ToggleAR is the AR control's click handler.
func (v *Viewer) ToggleAR() {
	v.placement.ToggleSession()
}

// ToggleAnimation is the animation control's click handler.
func (v *Viewer) ToggleAnimation() {
	v.animation.Toggle()
}

// CycleTexture is the texture control's click handler.
func (v *Viewer) CycleTexture() {
	v.textures.Cycle()
}

// Rotate is the rotate control's click handler: one configured turn step.
func (v *Viewer) Rotate() {
	v.rotation.Turn()
}

// SetExposure is the exposure slider's input handler. Values are clamped
// to [0, MaxExposure].
func (v *Viewer) SetExposure(value float64) {
	if value < 0 {
		value = 0
	} else if value > v.maxExposure {
		value = v.maxExposure
	}
	v.exposure = value
	v.renderer.SetExposure(value)
	v.renderer.RequestRender()
}

// --- Frame pump ---

// Update advances every time-based controller by dt seconds. Call once
// per frame from the host's visual update callback.
func (v *Viewer) Update(dt float32) {
	if v.runner != nil {
		v.runner.step(v)
	}
	v.rotation.Update(dt)
	v.poller.Update(dt)
	v.hotspots.Update(dt)
}
