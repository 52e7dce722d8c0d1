package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer everything in the viewer is drawn on.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// AssetConfig describes the model the viewer loads
type AssetConfig struct {
	ModelPath  string
	SceneIndex int
}

// OrbitConfig contains the camera rig's initial orbit parameters
type OrbitConfig struct {
	Radius    float64    // Distance from target, fixed after spawn
	MinRadius float64    // Radius is clamped to at least this on spawn
	Yaw       float64    // Radians
	Pitch     float64    // Radians
	PitchMin  float64    // Lower pitch clamp (radians)
	PitchMax  float64    // Upper pitch clamp (radians)
	Speed     float64    // Radians per second per unit of input
	Target    mgl64.Vec3 // Look-at point in world space
}

// LightConfig contains the camera spotlight configuration
type LightConfig struct {
	Offset         mgl64.Vec3 // Local offset from the camera
	Intensity      float64
	Range          float64
	InnerAngle     float64 // Radians, full intensity inside this cone
	OuterAngle     float64 // Radians, no light outside this cone
	ShadowsEnabled bool
	AimEpsilon     float64 // Squared distance below which aiming is skipped
}

// RenderConfig contains the software renderer settings
type RenderConfig struct {
	FieldOfView        float64 // Vertical, radians
	Near               float64
	Far                float64
	ClearColor         color.RGBA
	SurfaceColor       color.RGBA
	Ambient            float64 // Minimum brightness for lit surfaces
	ReferenceIntensity float64 // Spotlight intensity that maps to full brightness
}

// UIConfig contains the in-game label configuration
type UIConfig struct {
	HintText   string
	HintColor  color.RGBA
	HintMargin int
	HintSize   float64
}

// LoadingConfig contains loading screen configuration
type LoadingConfig struct {
	Text          string
	TextColor     color.RGBA
	PulseDuration float32 // Seconds for one fade in or out
	PulseMinAlpha float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Verbose    bool    // Development logging
	Overlay    bool    // Start with the debug overlay shown (F3 toggles)
	AxisLength float64 // World units for the origin gizmo
}

// Global configuration instances
var C *Config
var Asset AssetConfig
var Orbit OrbitConfig
var Light LightConfig
var Render RenderConfig
var UI UIConfig
var Loading LoadingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 205, A: 255}
	DarkGray  = color.RGBA{R: 24, G: 24, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Pc Case Visualizer",
	}

	Asset = AssetConfig{
		ModelPath:  "models/pc_case.glb",
		SceneIndex: 0,
	}

	Orbit = OrbitConfig{
		Radius:    900.0,
		MinRadius: 1.0,
		Yaw:       0.7,
		Pitch:     0.4,
		PitchMin:  0.05,
		PitchMax:  1.2,
		Speed:     1.5,
		Target:    mgl64.Vec3{0, 200, 0},
	}

	Light = LightConfig{
		Offset:         mgl64.Vec3{0, 50, 0},
		Intensity:      500_000.0,
		Range:          5000.0,
		InnerAngle:     0.35,
		OuterAngle:     0.6,
		ShadowsEnabled: true,
		AimEpsilon:     1e-4,
	}

	Render = RenderConfig{
		FieldOfView:        0.785398, // 45 degrees
		Near:               1.0,
		Far:                10000.0,
		ClearColor:         DarkGray,
		SurfaceColor:       LightGray,
		Ambient:            0.12,
		ReferenceIntensity: 500_000.0,
	}

	UI = UIConfig{
		HintText:   "Use 'A' and 'D' to rotate the object.",
		HintColor:  White,
		HintMargin: 5,
		HintSize:   16,
	}

	Loading = LoadingConfig{
		Text:          "Loading...",
		TextColor:     White,
		PulseDuration: 0.8,
		PulseMinAlpha: 0.25,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Verbose:    false,
		Overlay:    false,
		AxisLength: 100,
	}
}
