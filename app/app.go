// Package app runs the application shell: it owns the subsystem, window,
// and renderer lifecycle and the per-frame clear/present behavior.
package app

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"rasterwin/video"
)

// Defaults applied to a zero-value Config.
const (
	DefaultTitle  = "Software Rasterizer"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultClearColor is the dark blue-gray the screen is cleared to every
// frame.
var DefaultClearColor = color.RGBA{R: 20, G: 20, B: 30, A: 255}

// Config configures the shell. Zero values take the defaults above.
type Config struct {
	Title      string
	Width      int
	Height     int
	ClearColor color.RGBA
	Log        *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.ClearColor == (color.RGBA{}) {
		c.ClearColor = DefaultClearColor
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

// Run acquires the video subsystem, a window, and a renderer, in that
// order, then drives the frame loop until a quit event arrives. Every
// acquired handle is released in reverse order on every return path,
// including each acquisition-failure path.
func Run(ctx context.Context, drv video.Driver, cfg Config) error {
	cfg = cfg.withDefaults()
	log := cfg.Log.With("driver", drv.Name())

	sub, err := drv.Init()
	if err != nil {
		return fmt.Errorf("init video subsystem: %w", err)
	}
	defer sub.Quit()
	log.Debug("video subsystem ready")

	win, err := sub.OpenWindow(video.WindowConfig{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer func() {
		if err := win.Destroy(); err != nil {
			log.Warn("destroy window", "err", err)
		}
	}()
	log.Debug("window created", "width", cfg.Width, "height", cfg.Height)

	ren, err := win.CreateRenderer()
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer func() {
		if err := ren.Destroy(); err != nil {
			log.Warn("destroy renderer", "err", err)
		}
	}()

	log.Info("running", "title", cfg.Title)
	err = ren.Loop(ctx, func(c video.Canvas, events []video.Event) error {
		for _, ev := range events {
			if ev.Type == video.EventQuit {
				return video.Stop
			}
		}
		c.SetDrawColor(cfg.ClearColor)
		if err := c.Clear(); err != nil {
			return err
		}
		return c.Present()
	})
	if err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	log.Info("shutting down")
	return nil
}
