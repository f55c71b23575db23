package xrview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// defaultDimensionInterval is the seconds between bounding-box samples
// while the user is interacting.
const defaultDimensionInterval float32 = 0.25

// FormatDimensions renders a bounding box measured in meters as
// centimeters to one decimal place.
func FormatDimensions(d Vec3) string {
	return fmt.Sprintf("%.1f x %.1f x %.1f cm", d.X*100, d.Y*100, d.Z*100)
}

// DimensionPoller periodically samples the renderer's bounding box while
// the user is interacting with the model, and reports changes. Sampling
// is gated by interaction start/end notifications so an idle viewer costs
// nothing per frame.
type DimensionPoller struct {
	renderer ModelRenderer
	interval float32

	active  bool
	elapsed float32
	dims    Vec3
	sampled bool

	// OnChange, when set, is called with the new extent each time a
	// sample differs from the previous one.
	OnChange func(d Vec3)
}

// NewDimensionPoller creates a poller. interval <= 0 selects the default
// sample interval.
func NewDimensionPoller(renderer ModelRenderer, interval float32) *DimensionPoller {
	if interval <= 0 {
		interval = defaultDimensionInterval
	}
	return &DimensionPoller{renderer: renderer, interval: interval}
}

// Dimensions returns the most recently sampled extent.
func (p *DimensionPoller) Dimensions() Vec3 {
	return p.dims
}

// HandleInteractionStart begins polling. The first sample lands on the
// next Update tick.
func (p *DimensionPoller) HandleInteractionStart() {
	p.active = true
	p.elapsed = p.interval
}

// HandleInteractionEnd stops polling until the next interaction.
func (p *DimensionPoller) HandleInteractionEnd() {
	p.active = false
}

// Update advances the poll clock by dt seconds and samples when due.
func (p *DimensionPoller) Update(dt float32) {
	if !p.active {
		return
	}
	p.elapsed += dt
	if p.elapsed < p.interval {
		return
	}
	p.elapsed = 0
	d := p.renderer.BoundingBox()
	if p.sampled && d == p.dims {
		return
	}
	p.dims = d
	p.sampled = true
	if p.OnChange != nil {
		p.OnChange(d)
	}
}

// BindHUD routes dimension changes into hud: the formatted text is stored
// in hud.Text and, when the element carries a canvas, repainted onto it.
func (p *DimensionPoller) BindHUD(hud *Element) {
	p.OnChange = func(d Vec3) {
		hud.Text = FormatDimensions(d)
		if hud.Canvas != nil {
			hud.Canvas.Clear()
			ebitenutil.DebugPrint(hud.Canvas, hud.Text)
		}
	}
}

// NewDimensionHUD creates the dimension readout panel element.
func NewDimensionHUD(name string) *Element {
	// 160x16 fits "123.4 x 123.4 x 123.4 cm" in the debug font.
	return NewPanel(name, 160, 16)
}
