package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"rasterwin/app"
	"rasterwin/internal/buildinfo"
	"rasterwin/video"
	"rasterwin/video/headless"

	_ "rasterwin/video/ebitengine"
	_ "rasterwin/video/sdl2"
)

func main() {
	var (
		driverName = flag.String("driver", "", "Windowing driver to use (default: best available).")
		title      = flag.String("title", app.DefaultTitle, "Window title.")
		width      = flag.Int("width", app.DefaultWidth, "Window width in pixels.")
		height     = flag.Int("height", app.DefaultHeight, "Window height in pixels.")
		noWindow   = flag.Bool("headless", false, "Run without a window.")
		hz         = flag.Int("hz", 60, "Tick rate in headless mode.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		debug      = flag.Bool("debug", false, "Enable debug logging.")
		version    = flag.Bool("version", false, "Print the build identifier and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short())
		return
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var (
		drv video.Driver
		err error
	)
	switch {
	case *noWindow:
		drv = headless.New(headless.Config{Hz: *hz, Ticks: *ticks})
	case *driverName != "":
		drv, err = video.Lookup(*driverName)
	default:
		drv, err = video.Default()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, drv, app.Config{
		Title:  *title + " (" + buildinfo.Short() + ")",
		Width:  *width,
		Height: *height,
		Log:    log,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
