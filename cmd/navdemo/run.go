package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/sdlhost"
	"github.com/BrandonKowalski/navstack/pkg/navstack/touch"
)

func runDemo(ctx context.Context, s settings) error {
	if s.LogFile != "" {
		navstack.SetLogPath(s.LogFile)
	}
	navstack.SetDebug(s.Debug)
	defer navstack.CloseLogger()
	logger := navstack.GetLogger()

	cfgs := navstack.DefaultConfigs()
	if s.Surfaces != "" {
		loaded, err := navstack.LoadConfigs(s.Surfaces)
		if err != nil {
			return err
		}
		cfgs = loaded
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()

	win, err := sdlhost.OpenWindow(s.Title, s.Width, s.Height, sdlhost.WindowOptions{
		Fullscreen: s.Fullscreen,
		Resizable:  !s.Fullscreen,
	})
	if err != nil {
		return err
	}
	if s.Background != "" {
		if err := win.LoadBackground(s.Background); err != nil {
			win.Close()
			return err
		}
	}
	width, height := win.Size()

	var (
		sources []sdlhost.PointerSource
		device  *touch.Device
	)
	if s.Touch.DevicePath != "" {
		cfg := s.Touch
		cfg.Width, cfg.Height = float32(width), float32(height)
		device, err = touch.Open(cfg)
		if err != nil {
			win.Close()
			return err
		}
		defer device.Close()
		device.Start(ctx)
		sources = append(sources, device)
	}

	host := sdlhost.NewHost(win, sources...)
	defer host.Close()

	var title titleDrawer
	if s.Font != "" {
		labels, err := sdlhost.NewLabels(s.Lang...)
		if err != nil {
			return fmt.Errorf("load labels: %w", err)
		}
		bar, err := sdlhost.NewTitleBar(win.Renderer, s.Font, labels)
		if err != nil {
			return err
		}
		defer bar.Destroy()
		title = bar
	}

	d := newDemo(cfgs, host.Compositor, title)
	logger.Info("Demo started", "width", width, "height", height, "touch", s.Touch.DevicePath != "", "title", title != nil)

	reported := false
	return host.Run(ctx, func(f *navstack.Frame) bool {
		if host.BackRequested() {
			d.back()
		}
		if device != nil && !reported {
			if err := device.Err(); err != nil {
				logger.Error("Touch input stopped", "error", err)
				reported = true
			}
		}
		return d.frame(f)
	})
}
