package headless

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"rasterwin/video"
)

func newRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()

	sub, err := New(cfg).Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	win, err := sub.OpenWindow(video.WindowConfig{Title: "test", Width: 64, Height: 64})
	if err != nil {
		t.Fatalf("OpenWindow: %v", err)
	}
	ren, err := win.CreateRenderer()
	if err != nil {
		t.Fatalf("CreateRenderer: %v", err)
	}
	return ren.(*Renderer)
}

func clearFrame(clear color.RGBA) video.FrameFunc {
	return func(c video.Canvas, events []video.Event) error {
		for _, ev := range events {
			if ev.Type == video.EventQuit {
				return video.Stop
			}
		}
		c.SetDrawColor(clear)
		if err := c.Clear(); err != nil {
			return err
		}
		return c.Present()
	}
}

func TestLoopStopsAfterTickBudget(t *testing.T) {
	ren := newRenderer(t, Config{Hz: 1000, Ticks: 3})

	clear := color.RGBA{R: 20, G: 20, B: 30, A: 255}
	if err := ren.Loop(context.Background(), clearFrame(clear)); err != nil {
		t.Fatalf("Loop: %v", err)
	}

	if got := ren.Frames(); got != 3 {
		t.Fatalf("Frames() = %d, want 3", got)
	}
	if got := ren.LastClear(); got != clear {
		t.Fatalf("LastClear() = %v, want %v", got, clear)
	}
}

func TestLoopDeliversQuitOnCancel(t *testing.T) {
	ren := newRenderer(t, Config{Hz: 1000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ren.Loop(ctx, clearFrame(color.RGBA{A: 255})); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if got := ren.Frames(); got != 0 {
		t.Fatalf("Frames() = %d, want 0 (quit before drawing)", got)
	}
}

func TestLoopPropagatesFrameError(t *testing.T) {
	ren := newRenderer(t, Config{Hz: 1000, Ticks: 10})

	boom := errors.New("boom")
	err := ren.Loop(context.Background(), func(video.Canvas, []video.Event) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Loop err = %v, want %v", err, boom)
	}
}

func TestInitDefaultsHz(t *testing.T) {
	sub, err := New(Config{}).Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	s, ok := sub.(*subsystem)
	if !ok {
		t.Fatalf("Init returned %T, want *subsystem", sub)
	}
	if s.cfg.Hz != 60 {
		t.Fatalf("Hz = %d, want 60", s.cfg.Hz)
	}
}
