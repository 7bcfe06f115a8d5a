// Package main provides navdemo, an SDL demo of a stack navigator with a
// title bar, a bottom sheet and a side drawer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "navdemo",
	Short: "Navdemo shows animated navigation surfaces in an SDL window",
	Long: `Navdemo opens a window with a three level stack of screens. Click a row
to push the next screen, swipe from the left edge or click the title to go
back, open the bottom sheet and drag it down to dismiss, or drag right on
the first screen to pull out the menu drawer.

Settings come from flags, NAVDEMO_* environment variables and a navdemo.toml
file, in that order of precedence.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(cmd, configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return runDemo(cmd.Context(), newSettings(v))
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./navdemo.toml or $XDG_CONFIG_HOME/navdemo/navdemo.toml)")
	flags.String("title", defaultTitle, "window title")
	flags.Int32("width", 0, "window width, 0 for the display width")
	flags.Int32("height", 0, "window height, 0 for the display height")
	flags.Bool("fullscreen", false, "open a fullscreen window")
	flags.String("surfaces", "", "TOML file with [stack], [sheet] and [drawer] surface settings")
	flags.String("background", "", "image drawn behind every screen")
	flags.String("font", "", "TTF font for the title bar; no title without it")
	flags.StringSlice("lang", nil, "preferred languages for labels, e.g. de,fr")
	flags.String("touch-device", "", "evdev touchscreen, e.g. /dev/input/event1")
	flags.Bool("touch-grab", false, "take the touchscreen exclusively")
	flags.Bool("touch-swap-xy", false, "swap touchscreen axes")
	flags.Bool("touch-invert-x", false, "invert the touchscreen x axis")
	flags.Bool("touch-invert-y", false, "invert the touchscreen y axis")
	flags.String("log-file", "", "also write logs to this file")
	flags.Bool("debug", false, "log transitions and gestures")
}
