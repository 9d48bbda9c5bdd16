// Package video abstracts the windowing stack behind a small driver
// interface so the shell can run against SDL, an ebiten-hosted window, or
// no window at all.
package video

import (
	"context"
	"errors"
	"image/color"
)

// Stop is returned by a FrameFunc to end the frame loop. Loop treats it as
// a clean shutdown and returns nil.
var Stop = errors.New("video: stop")

// EventType identifies a system event drained from the driver's queue.
type EventType uint8

const (
	EventUnknown EventType = iota
	// EventQuit is delivered when the user closes the window or the
	// driver's context is cancelled.
	EventQuit
)

// Event is a system event translated from the driver's native queue.
type Event struct {
	Type EventType
}

// WindowConfig describes the window a subsystem should open.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// FrameFunc runs once per loop iteration with the events drained since the
// previous iteration. Returning Stop ends the loop cleanly; any other
// non-nil error aborts it.
type FrameFunc func(c Canvas, events []Event) error

// Driver is the entry point to a windowing backend.
type Driver interface {
	Name() string
	Init() (Subsystem, error)
}

// Subsystem is the process-wide video initialization token. It must outlive
// every window opened through it.
type Subsystem interface {
	OpenWindow(cfg WindowConfig) (Window, error)
	Quit()
}

// Window is an open window. It must be destroyed before its subsystem is
// shut down.
type Window interface {
	CreateRenderer() (Renderer, error)
	Destroy() error
}

// Canvas is the per-frame drawing surface handed to a FrameFunc.
type Canvas interface {
	SetDrawColor(c color.RGBA)
	Clear() error
	Present() error
}

// Renderer is a rendering context scoped to one window. The renderer owns
// the frame loop: drivers with an internally driven loop (ebiten) and
// drivers polled from the outside (SDL) both fit behind Loop.
type Renderer interface {
	Canvas

	// Loop calls frame once per iteration until frame returns Stop (Loop
	// returns nil) or another error (returned as-is). Each iteration
	// receives all events pending since the previous one; cancelling ctx
	// is delivered as an EventQuit.
	Loop(ctx context.Context, frame FrameFunc) error

	Destroy() error
}
