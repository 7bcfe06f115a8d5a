// Package touch reads a Linux touchscreen through evdev and feeds it to a
// navstack.PointerTracker. It serves handhelds whose SDL build has no touch
// support; the reader runs on its own goroutine and the frame loop polls the
// latest contact.
package touch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Config describes a touchscreen and how its axes map onto the display.
type Config struct {
	DevicePath string
	Grab       bool // Take the device exclusively

	// Display size in pixels that normalized positions are scaled to.
	Width  float32
	Height float32

	SwapXY  bool // Applied before inversion
	InvertX bool
	InvertY bool
}

// Device is an open touchscreen.
type Device struct {
	cfg    Config
	dev    *evdev.InputDevice
	folder *folder
	logger *slog.Logger

	state   atomic.Pointer[contact]
	err     atomic.Error
	running atomic.Bool
	closed  atomic.Bool

	// Poll side, frame loop only.
	presses  uint64
	releases uint64
	down     bool
}

// Open opens the device at cfg.DevicePath and reads its axis ranges.
func Open(cfg Config) (*Device, error) {
	if cfg.DevicePath == "" {
		return nil, navstack.NewInfrastructureError("open_touch", errors.New("no device path"))
	}

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, navstack.NewInfrastructureError("open_touch", err)
	}

	ranges, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, navstack.NewInfrastructureError("open_touch", err)
	}

	if cfg.Grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return nil, navstack.NewInfrastructureError("grab_touch", err)
		}
	}

	logger := internal.GetInternalLogger()
	name, _ := dev.Name()
	logger.Info("Opened touch device", "path", cfg.DevicePath, "name", name, "axes", len(ranges))

	return newDevice(cfg, dev, ranges, logger), nil
}

func newDevice(cfg Config, dev *evdev.InputDevice, ranges map[evdev.EvCode]evdev.AbsInfo, logger *slog.Logger) *Device {
	return &Device{
		cfg:    cfg,
		dev:    dev,
		folder: newFolder(cfg, ranges),
		logger: logger,
	}
}

// Start reads events on a new goroutine until ctx is done or the device
// fails. Calling Start on a running device does nothing.
func (d *Device) Start(ctx context.Context) {
	if !d.running.CompareAndSwap(false, true) {
		return
	}

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	go func() {
		defer d.running.Store(false)
		for {
			ev, err := d.dev.ReadOne()
			if err != nil {
				if !d.closed.Load() {
					d.logger.Error("Touch device read failed", "path", d.cfg.DevicePath, "error", err)
					d.err.Store(navstack.NewInfrastructureError("read_touch", err))
				}
				return
			}
			d.handle(ev)
		}
	}()
}

func (d *Device) handle(ev *evdev.InputEvent) {
	if c, ok := d.folder.apply(ev); ok {
		d.state.Store(&c)
	}
}

// Poll replays contact transitions since the last call into t.
func (d *Device) Poll(t *navstack.PointerTracker) {
	c := d.state.Load()
	if c == nil {
		return
	}
	pos := navstack.Pos{X: c.X * d.cfg.Width, Y: c.Y * d.cfg.Height}

	if d.down && c.Releases != d.releases {
		t.Release(pos)
		d.down = false
	}
	if c.Presses != d.presses {
		t.Press(pos)
		d.down = true
		if !c.Down {
			t.Release(pos)
			d.down = false
		}
	} else if d.down {
		t.Move(pos)
	}

	d.presses, d.releases = c.Presses, c.Releases
}

// Err returns the error that stopped the reader, if any.
func (d *Device) Err() error {
	return d.err.Load()
}

// Close releases the device. The reader goroutine stops on its next read.
func (d *Device) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	if d.cfg.Grab {
		d.dev.Ungrab()
	}
	return d.dev.Close()
}
