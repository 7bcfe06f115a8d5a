package navstack

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BurntSushi/toml"
)

// Config parameterizes one surface. Use DefaultConfig, DefaultSheetConfig or
// DefaultDrawerConfig and override fields.
type Config struct {
	// IDSource distinguishes sibling surfaces mounted under the same parent.
	IDSource string

	// Axis the surface animates along. Stacks default to horizontal, sheets
	// are always vertical.
	Axis Axis

	// Directions a return gesture may take. Zero derives it from Axis:
	// left-to-right for horizontal, vertical for vertical.
	Directions DragDirection

	// Angle policy for classifying diagonal drags.
	Angle DragAngle

	// ReleaseThreshold is the fraction of travel a released drag must have
	// covered to commit. Must be in (0, 1].
	ReleaseThreshold float32

	// RestOffset is the offset of a settled stack. Default 0.
	RestOffset float32

	// ShowTitle makes the foreground call the render callback for
	// RegionTitle before RegionBody.
	ShowTitle bool

	// MaxDim is the alpha of the black overlay over a fully revealed
	// background. Default ~20%.
	MaxDim uint8

	// Parallax is how far the background trails, as a fraction of its
	// extent. Default 0.3.
	Parallax float32

	// Split is the sheet's resting top edge, in percent of the area height
	// from the top. Sheets only.
	Split uint8

	// DrawerWidth is the drawer's open offset. Drawers only.
	DrawerWidth float32
}

// DefaultConfig returns the configuration of a horizontal stack navigator:
// edge swipe left to right, vertical drags five times easier so scrolling
// content is not mistaken for navigation, 10% release threshold.
func DefaultConfig() Config {
	return Config{
		Axis:             AxisHorizontal,
		Directions:       DragLeftToRight,
		Angle:            VerticalNTimesEasier(5),
		ReleaseThreshold: constants.DefaultStackThreshold,
		ShowTitle:        true,
		MaxDim:           constants.DefaultMaxDim,
		Parallax:         constants.DefaultParallax,
	}
}

// DefaultSheetConfig returns the configuration of a bottom sheet resting
// halfway down the area, dismissed by dragging a quarter of its height.
func DefaultSheetConfig() Config {
	return Config{
		Axis:             AxisVertical,
		Directions:       DragVertical,
		Angle:            Balanced,
		ReleaseThreshold: constants.DefaultSheetThreshold,
		MaxDim:           constants.DefaultMaxDim,
		Split:            constants.DefaultSheetSplit,
	}
}

// DefaultDrawerConfig returns the configuration of a side drawer opening to
// drawerWidth.
func DefaultDrawerConfig(drawerWidth float32) Config {
	return Config{
		Axis:             AxisHorizontal,
		Directions:       DragLeftToRight,
		Angle:            VerticalNTimesEasier(5),
		ReleaseThreshold: constants.DefaultDrawerThreshold,
		MaxDim:           200,
		DrawerWidth:      drawerWidth,
	}
}

// directions returns the accepted return directions.
func (c Config) directions() DragDirection {
	if c.Directions != DragNone {
		return c.Directions
	}
	return c.Axis.returnDirection()
}

// returnDirection is the gesture that moves a surface on axis from rest
// toward displaced.
func (a Axis) returnDirection() DragDirection {
	if a == AxisVertical {
		return DragVertical
	}
	return DragLeftToRight
}

// Validate checks field ranges and that a return gesture is accepted.
func (c Config) Validate() error {
	if c.Axis != AxisHorizontal && c.Axis != AxisVertical {
		return invalidConfig("unknown axis %d", c.Axis)
	}
	if c.Directions&^DragAllDirections != 0 {
		return invalidConfig("unknown drag directions %#x", uint8(c.Directions))
	}
	if back := c.Axis.returnDirection(); !c.directions().Contains(back) {
		return invalidConfig("drag directions %v never return a %v surface", c.directions(), c.Axis)
	}
	if !(c.ReleaseThreshold > 0 && c.ReleaseThreshold <= 1) {
		return invalidConfig("release threshold %v not in (0, 1]", c.ReleaseThreshold)
	}
	if c.Parallax < 0 || c.Parallax > 1 {
		return invalidConfig("parallax %v not in [0, 1]", c.Parallax)
	}
	if c.Split > 100 {
		return invalidConfig("split %d%% exceeds 100", c.Split)
	}
	if c.DrawerWidth < 0 {
		return invalidConfig("drawer width %v is negative", c.DrawerWidth)
	}
	return nil
}

// Configs bundles the configuration of every surface kind, as loaded from a
// TOML file with optional [stack], [sheet] and [drawer] tables.
type Configs struct {
	Stack  Config
	Sheet  Config
	Drawer Config
}

// DefaultConfigs returns the defaults for every surface kind.
func DefaultConfigs() Configs {
	return Configs{
		Stack:  DefaultConfig(),
		Sheet:  DefaultSheetConfig(),
		Drawer: DefaultDrawerConfig(280),
	}
}

type configTable struct {
	IDSource         *string   `toml:"id_source"`
	Axis             *string   `toml:"axis"`
	Directions       *[]string `toml:"directions"`
	Angle            *string   `toml:"angle"`
	ReleaseThreshold *float32  `toml:"release_threshold"`
	RestOffset       *float32  `toml:"rest_offset"`
	ShowTitle        *bool     `toml:"show_title"`
	MaxDim           *uint8    `toml:"max_dim"`
	Parallax         *float32  `toml:"parallax"`
	Split            *uint8    `toml:"split"`
	DrawerWidth      *float32  `toml:"drawer_width"`
}

type configFile struct {
	Stack  *configTable `toml:"stack"`
	Sheet  *configTable `toml:"sheet"`
	Drawer *configTable `toml:"drawer"`
}

// LoadConfigs reads surface configurations from a TOML file, starting from
// DefaultConfigs.
func LoadConfigs(path string) (Configs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configs{}, fmt.Errorf("navstack: read config: %w", err)
	}
	return ParseConfigs(data)
}

// ParseConfigs decodes TOML surface configurations over DefaultConfigs.
func ParseConfigs(data []byte) (Configs, error) {
	var file configFile
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return Configs{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Configs{}, invalidConfig("unknown key %q", undecoded[0].String())
	}

	cfgs := DefaultConfigs()
	for _, section := range []struct {
		name  string
		table *configTable
		cfg   *Config
	}{
		{"stack", file.Stack, &cfgs.Stack},
		{"sheet", file.Sheet, &cfgs.Sheet},
		{"drawer", file.Drawer, &cfgs.Drawer},
	} {
		if section.table == nil {
			continue
		}
		if err := section.table.apply(section.cfg); err != nil {
			return Configs{}, fmt.Errorf("[%s]: %w", section.name, err)
		}
		if err := section.cfg.Validate(); err != nil {
			return Configs{}, fmt.Errorf("[%s]: %w", section.name, err)
		}
	}
	return cfgs, nil
}

func (t *configTable) apply(c *Config) error {
	if t.IDSource != nil {
		c.IDSource = *t.IDSource
	}
	if t.Axis != nil {
		axis, err := ParseAxis(*t.Axis)
		if err != nil {
			return err
		}
		c.Axis = axis
		// Directions follow the new axis unless the table names them.
		c.Directions = DragNone
	}
	if t.Directions != nil {
		dirs, err := ParseDragDirections(*t.Directions)
		if err != nil {
			return err
		}
		c.Directions = dirs
	}
	if t.Angle != nil {
		angle, err := ParseDragAngle(*t.Angle)
		if err != nil {
			return err
		}
		c.Angle = angle
	}
	if t.ReleaseThreshold != nil {
		c.ReleaseThreshold = *t.ReleaseThreshold
	}
	if t.RestOffset != nil {
		c.RestOffset = *t.RestOffset
	}
	if t.ShowTitle != nil {
		c.ShowTitle = *t.ShowTitle
	}
	if t.MaxDim != nil {
		c.MaxDim = *t.MaxDim
	}
	if t.Parallax != nil {
		c.Parallax = *t.Parallax
	}
	if t.Split != nil {
		c.Split = *t.Split
	}
	if t.DrawerWidth != nil {
		c.DrawerWidth = *t.DrawerWidth
	}
	return nil
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return AxisHorizontal, nil
	case "vertical":
		return AxisVertical, nil
	}
	return 0, invalidConfig("unknown axis %q", s)
}

// ParseDragDirections parses names as printed by DragDirection.String.
func ParseDragDirections(names []string) (DragDirection, error) {
	var dirs DragDirection
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "left-to-right":
			dirs |= DragLeftToRight
		case "right-to-left":
			dirs |= DragRightToLeft
		case "vertical":
			dirs |= DragVertical
		case "horizontal":
			dirs |= DragHorizontal
		case "all":
			dirs |= DragAllDirections
		default:
			return DragNone, invalidConfig("unknown drag direction %q", name)
		}
	}
	return dirs, nil
}

// ParseDragAngle parses "balanced" or "vertical-Nx".
func ParseDragAngle(s string) (DragAngle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "balanced" {
		return Balanced, nil
	}
	if rest, ok := strings.CutPrefix(s, "vertical-"); ok {
		if n, ok := strings.CutSuffix(rest, "x"); ok {
			v, err := strconv.ParseUint(n, 10, 8)
			if err == nil && v > 0 {
				return VerticalNTimesEasier(uint8(v)), nil
			}
		}
	}
	return Balanced, invalidConfig("unknown drag angle %q", s)
}
