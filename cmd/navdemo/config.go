package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack/touch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "navdemo"
	configFileType = "toml"
	envPrefix      = "NAVDEMO"

	defaultTitle = "navdemo"

	cfgKeyTitle        = "title"
	cfgKeyWidth        = "width"
	cfgKeyHeight       = "height"
	cfgKeyFullscreen   = "fullscreen"
	cfgKeySurfaces     = "surfaces"
	cfgKeyBackground   = "background"
	cfgKeyFont         = "font"
	cfgKeyLang         = "lang"
	cfgKeyTouchDevice  = "touch.device"
	cfgKeyTouchGrab    = "touch.grab"
	cfgKeyTouchSwapXY  = "touch.swap_xy"
	cfgKeyTouchInvertX = "touch.invert_x"
	cfgKeyTouchInvertY = "touch.invert_y"
	cfgKeyLogFile      = "log_file"
	cfgKeyDebug        = "debug"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"title":          cfgKeyTitle,
	"width":          cfgKeyWidth,
	"height":         cfgKeyHeight,
	"fullscreen":     cfgKeyFullscreen,
	"surfaces":       cfgKeySurfaces,
	"background":     cfgKeyBackground,
	"font":           cfgKeyFont,
	"lang":           cfgKeyLang,
	"touch-device":   cfgKeyTouchDevice,
	"touch-grab":     cfgKeyTouchGrab,
	"touch-swap-xy":  cfgKeyTouchSwapXY,
	"touch-invert-x": cfgKeyTouchInvertX,
	"touch-invert-y": cfgKeyTouchInvertY,
	"log-file":       cfgKeyLogFile,
	"debug":          cfgKeyDebug,
}

// settings is the resolved demo configuration.
type settings struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	Surfaces   string
	Background string
	Font       string
	Lang       []string
	Touch      touch.Config
	LogFile    string
	Debug      bool
}

// loadConfig layers flags and NAVDEMO_* variables over the config file. An
// explicit file must exist; a missing default file is not an error.
func loadConfig(cmd *cobra.Command, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyTitle, defaultTitle)
	v.SetConfigType(configFileType)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configFileName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func newSettings(v *viper.Viper) settings {
	return settings{
		Title:      v.GetString(cfgKeyTitle),
		Width:      v.GetInt32(cfgKeyWidth),
		Height:     v.GetInt32(cfgKeyHeight),
		Fullscreen: v.GetBool(cfgKeyFullscreen),
		Surfaces:   v.GetString(cfgKeySurfaces),
		Background: v.GetString(cfgKeyBackground),
		Font:       v.GetString(cfgKeyFont),
		Lang:       v.GetStringSlice(cfgKeyLang),
		Touch: touch.Config{
			DevicePath: v.GetString(cfgKeyTouchDevice),
			Grab:       v.GetBool(cfgKeyTouchGrab),
			SwapXY:     v.GetBool(cfgKeyTouchSwapXY),
			InvertX:    v.GetBool(cfgKeyTouchInvertX),
			InvertY:    v.GetBool(cfgKeyTouchInvertY),
		},
		LogFile: v.GetString(cfgKeyLogFile),
		Debug:   v.GetBool(cfgKeyDebug),
	}
}
