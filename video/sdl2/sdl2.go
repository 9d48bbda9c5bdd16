// Package sdl2 provides the SDL-backed windowing driver.
package sdl2

import (
	"context"
	"errors"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"rasterwin/video"
)

// DriverName is the registry name of this driver.
const DriverName = "sdl2"

func init() {
	video.Register(DriverName, func() video.Driver { return Driver{} })
}

// Driver opens a real window through SDL's video subsystem.
type Driver struct{}

func (Driver) Name() string { return DriverName }

func (Driver) Init() (video.Subsystem, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	return &subsystem{}, nil
}

type subsystem struct{}

func (s *subsystem) OpenWindow(cfg video.WindowConfig) (video.Window, error) {
	w, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Width), int32(cfg.Height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, err
	}
	return &window{w: w}, nil
}

func (s *subsystem) Quit() { sdl.Quit() }

type window struct {
	w *sdl.Window
}

func (w *window) CreateRenderer() (video.Renderer, error) {
	r, err := sdl.CreateRenderer(w.w, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}
	return &renderer{r: r}, nil
}

func (w *window) Destroy() error { return w.w.Destroy() }

type renderer struct {
	r     *sdl.Renderer
	color color.RGBA
}

func (r *renderer) SetDrawColor(c color.RGBA) { r.color = c }

func (r *renderer) Clear() error {
	if err := r.r.SetDrawColor(r.color.R, r.color.G, r.color.B, r.color.A); err != nil {
		return err
	}
	return r.r.Clear()
}

func (r *renderer) Present() error {
	r.r.Present()
	return nil
}

func (r *renderer) Destroy() error { return r.r.Destroy() }

func (r *renderer) Loop(ctx context.Context, frame video.FrameFunc) error {
	for {
		var events []video.Event
		if ctx != nil && ctx.Err() != nil {
			events = append(events, video.Event{Type: video.EventQuit})
		}
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				events = append(events, video.Event{Type: video.EventQuit})
			}
		}
		if err := frame(r, events); err != nil {
			if errors.Is(err, video.Stop) {
				return nil
			}
			return err
		}
	}
}
