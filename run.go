package xrview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window for Run.
type RunConfig struct {
	Title  string
	Width  int // window width in pixels; 0 means 640
	Height int // window height in pixels; 0 means 480
}

// game adapts a Viewer to the ebiten game loop. Update pumps the viewer
// once per tick; Draw composites the visible overlay panel canvases.
type game struct {
	viewer *Viewer
	width  int
	height int
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.viewer.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	drawElement(screen, g.viewer.Overlay())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// drawElement draws e's canvas (if any) at its screen-anchored position,
// then recurses into children. Invisible subtrees are skipped entirely.
func drawElement(screen *ebiten.Image, e *Element) {
	if !e.Visible || e.IsDisposed() {
		return
	}
	if e.Canvas != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.X, e.Y)
		screen.DrawImage(e.Canvas, op)
	}
	for _, child := range e.Children() {
		drawElement(screen, child)
	}
}

// Run opens a window and drives the viewer from the ebiten frame loop
// until the window closes. The viewer's time-based controllers advance
// once per tick. Most hosts embed the viewer in their own game loop
// instead; Run is the quick-start path.
func Run(v *Viewer, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{viewer: v, width: cfg.Width, height: cfg.Height})
}
