package touch

import "github.com/holoplot/go-evdev"

// contact is the published state of the primary touch contact. Positions
// are normalized to [0, 1] after axis transforms. Presses and Releases only
// grow, so a reader can tell how many transitions it missed.
type contact struct {
	X, Y     float32
	Down     bool
	Presses  uint64
	Releases uint64
}

// folder accumulates evdev events into contacts. Only slot 0 of a
// multi-touch device is followed.
type folder struct {
	cfg    Config
	ranges map[evdev.EvCode]evdev.AbsInfo

	slot    int32
	rawX    float32
	rawY    float32
	current contact
	dirty   bool
}

func newFolder(cfg Config, ranges map[evdev.EvCode]evdev.AbsInfo) *folder {
	return &folder{cfg: cfg, ranges: ranges}
}

// apply folds ev into the pending contact. At the end of each report it
// returns the contact to publish, if anything changed.
func (f *folder) apply(ev *evdev.InputEvent) (contact, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		f.applyAbs(ev.Code, ev.Value)

	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			f.setDown(ev.Value != 0)
		}

	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT || !f.dirty {
			return contact{}, false
		}
		f.dirty = false
		f.current.X, f.current.Y = f.transform(f.rawX, f.rawY)
		return f.current, true
	}
	return contact{}, false
}

func (f *folder) applyAbs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		f.slot = value

	case evdev.ABS_MT_TRACKING_ID:
		if f.slot == 0 {
			f.setDown(value >= 0)
		}

	case evdev.ABS_MT_POSITION_X:
		if f.slot == 0 {
			f.setAxis(&f.rawX, code, value)
		}

	case evdev.ABS_MT_POSITION_Y:
		if f.slot == 0 {
			f.setAxis(&f.rawY, code, value)
		}

	case evdev.ABS_X:
		f.setAxis(&f.rawX, code, value)

	case evdev.ABS_Y:
		f.setAxis(&f.rawY, code, value)
	}
}

func (f *folder) setAxis(dst *float32, code evdev.EvCode, value int32) {
	info, ok := f.ranges[code]
	if !ok || info.Maximum <= info.Minimum {
		return
	}
	n := float32(value-info.Minimum) / float32(info.Maximum-info.Minimum)
	*dst = min(max(n, 0), 1)
	f.dirty = true
}

func (f *folder) setDown(down bool) {
	if down == f.current.Down {
		return
	}
	f.current.Down = down
	if down {
		f.current.Presses++
	} else {
		f.current.Releases++
	}
	f.dirty = true
}

func (f *folder) transform(x, y float32) (float32, float32) {
	if f.cfg.SwapXY {
		x, y = y, x
	}
	if f.cfg.InvertX {
		x = 1 - x
	}
	if f.cfg.InvertY {
		y = 1 - y
	}
	return x, y
}
