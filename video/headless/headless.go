// Package headless runs the shell without opening a window. It is used for
// CI runs and anywhere no display is available; the renderer records what
// the shell draws so callers can observe the loop.
package headless

import (
	"context"
	"errors"
	"image/color"
	"time"

	"rasterwin/video"
)

// DriverName is the registry name of this driver.
const DriverName = "headless"

func init() {
	video.Register(DriverName, func() video.Driver { return New(Config{}) })
}

// Config controls the no-window runner.
type Config struct {
	// Hz is the tick rate. Defaults to 60.
	Hz int
	// Ticks delivers a quit event after N iterations. 0 runs until the
	// context is cancelled.
	Ticks uint64
}

// Driver runs the frame loop against an in-memory renderer.
type Driver struct {
	cfg Config
}

// New returns a headless driver with the given config.
func New(cfg Config) *Driver { return &Driver{cfg: cfg} }

func (d *Driver) Name() string { return DriverName }

func (d *Driver) Init() (video.Subsystem, error) {
	cfg := d.cfg
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	return &subsystem{cfg: cfg}, nil
}

type subsystem struct {
	cfg Config
}

func (s *subsystem) OpenWindow(video.WindowConfig) (video.Window, error) {
	return &window{cfg: s.cfg}, nil
}

func (s *subsystem) Quit() {}

type window struct {
	cfg Config
}

func (w *window) CreateRenderer() (video.Renderer, error) {
	return &Renderer{cfg: w.cfg}, nil
}

func (w *window) Destroy() error { return nil }

// Renderer counts frames and remembers the last clear color.
type Renderer struct {
	cfg    Config
	color  color.RGBA
	drawn  color.RGBA
	frames uint64
}

func (r *Renderer) SetDrawColor(c color.RGBA) { r.color = c }

func (r *Renderer) Clear() error {
	r.drawn = r.color
	return nil
}

func (r *Renderer) Present() error {
	r.frames++
	return nil
}

func (r *Renderer) Destroy() error { return nil }

// Frames reports how many frames have been presented.
func (r *Renderer) Frames() uint64 { return r.frames }

// LastClear reports the color of the most recent clear.
func (r *Renderer) LastClear() color.RGBA { return r.drawn }

func (r *Renderer) Loop(ctx context.Context, frame video.FrameFunc) error {
	hz := r.cfg.Hz
	if hz <= 0 {
		hz = 60
	}
	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()

	var tick uint64
	for {
		tick++

		var events []video.Event
		if ctx != nil {
			select {
			case <-ctx.Done():
				events = append(events, video.Event{Type: video.EventQuit})
			default:
			}
		}
		if r.cfg.Ticks > 0 && tick > r.cfg.Ticks {
			events = append(events, video.Event{Type: video.EventQuit})
		}

		if err := frame(r, events); err != nil {
			if errors.Is(err, video.Stop) {
				return nil
			}
			return err
		}
		<-t.C
	}
}
