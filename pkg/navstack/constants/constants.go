// Package constants defines shared tunables and environment variable names
// used throughout the navstack packages.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar enables debug level internal logging when set to any value.
const DebugEnvVar = "NAVSTACK_DEBUG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// IsDebug returns true if NAVSTACK_DEBUG is set.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Gesture interpretation.
const (
	DragDeadzone   float32 = 8 // Motion below this on both axes is inconclusive
	ClickTolerance float32 = 6 // Pointer travel before a press counts as a drag
)

// Spring animation. Each step covers SpringFactor of the remaining distance,
// never less than SpringMinStep, and finishes once within SpringTolerance.
const (
	SpringFactor    float32 = 0.2
	SpringMinStep   float32 = 1.0
	SpringTolerance float32 = 0.5
)

// Transition rendering defaults.
const (
	DefaultMaxDim   uint8   = 51  // ~20% black over a fully revealed background
	DefaultParallax float32 = 0.3 // Background travel as a fraction of its extent
)

// Release thresholds as a fraction of travel.
const (
	DefaultStackThreshold  float32 = 0.1
	DefaultSheetThreshold  float32 = 0.25
	DefaultDrawerThreshold float32 = 0.1
)

// DefaultSheetSplit is the percentage from the top where an open sheet rests.
const DefaultSheetSplit uint8 = 50

// DefaultStaleFrames is how many frames an unrequested surface survives.
const DefaultStaleFrames uint64 = 600

// Development window size overrides.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// Host defaults.
const (
	DefaultLayerCacheSize        = 8  // Render-target textures kept alive between frames
	DefaultTitleHeight     int32 = 48 // Height of the default title bar
	DefaultFontSize              = 24
	DefaultFrameIntervalMs       = 16 // Frame pacing when VSync is unavailable
)
