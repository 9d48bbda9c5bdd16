// Package ebitengine hosts the shell in an ebiten-managed window.
//
// Ebiten drives its own Update/Draw loop, so the renderer adapts the
// clear/present contract onto it: the frame callback runs from Update and
// records the clear color, and Draw fills the screen with it. Presentation
// happens when ebiten flushes the frame.
package ebitengine

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"rasterwin/video"
)

// DriverName is the registry name of this driver.
const DriverName = "ebitengine"

func init() {
	video.Register(DriverName, func() video.Driver { return Driver{} })
}

// Driver opens a window through ebiten.
type Driver struct{}

func (Driver) Name() string { return DriverName }

func (Driver) Init() (video.Subsystem, error) { return &subsystem{}, nil }

type subsystem struct{}

func (s *subsystem) OpenWindow(cfg video.WindowConfig) (video.Window, error) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	// Intercept the close button so it surfaces as a quit event instead of
	// tearing the window down behind the shell's back.
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	return &window{width: cfg.Width, height: cfg.Height}, nil
}

func (s *subsystem) Quit() {}

type window struct {
	width, height int
}

func (w *window) CreateRenderer() (video.Renderer, error) {
	return &renderer{width: w.width, height: w.height}, nil
}

func (w *window) Destroy() error { return nil }

type renderer struct {
	width, height int
	pending       color.RGBA // draw color set this frame
	clear         color.RGBA // color Draw fills the screen with
}

func (r *renderer) SetDrawColor(c color.RGBA) { r.pending = c }
func (r *renderer) Clear() error              { r.clear = r.pending; return nil }
func (r *renderer) Present() error            { return nil }
func (r *renderer) Destroy() error            { return nil }

func (r *renderer) Loop(ctx context.Context, frame video.FrameFunc) error {
	return ebiten.RunGame(&game{r: r, ctx: ctx, frame: frame})
}

type game struct {
	r     *renderer
	ctx   context.Context
	frame video.FrameFunc
}

func (g *game) Update() error {
	var events []video.Event
	if g.ctx != nil && g.ctx.Err() != nil {
		events = append(events, video.Event{Type: video.EventQuit})
	}
	if ebiten.IsWindowBeingClosed() {
		events = append(events, video.Event{Type: video.EventQuit})
	}
	if err := g.frame(g.r, events); err != nil {
		if errors.Is(err, video.Stop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.r.clear)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.r.width, g.r.height
}
