package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override format. Zero or missing fields keep the
// compiled-in defaults.
type File struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Asset struct {
		Model      string `yaml:"model"`
		SceneIndex *int   `yaml:"scene_index"`
	} `yaml:"asset"`

	Orbit struct {
		Radius *float64    `yaml:"radius"`
		Yaw    *float64    `yaml:"yaw"`
		Pitch  *float64    `yaml:"pitch"`
		Speed  *float64    `yaml:"speed"`
		Target *[3]float64 `yaml:"target"`
	} `yaml:"orbit"`

	Light struct {
		Intensity  *float64 `yaml:"intensity"`
		Range      *float64 `yaml:"range"`
		InnerAngle *float64 `yaml:"inner_angle"`
		OuterAngle *float64 `yaml:"outer_angle"`
	} `yaml:"light"`

	UI struct {
		Hint string `yaml:"hint"`
	} `yaml:"ui"`

	Debug struct {
		Verbose *bool `yaml:"verbose"`
		Overlay *bool `yaml:"overlay"`
	} `yaml:"debug"`
}

// LoadFile reads a YAML override file and applies it to the global config.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	f.Apply()
	return nil
}

// Apply copies every set field onto the global config.
func (f *File) Apply() {
	if f.Window.Width > 0 {
		C.Width = f.Window.Width
	}
	if f.Window.Height > 0 {
		C.Height = f.Window.Height
	}
	if f.Window.Title != "" {
		C.Title = f.Window.Title
	}

	if f.Asset.Model != "" {
		Asset.ModelPath = f.Asset.Model
	}
	if f.Asset.SceneIndex != nil {
		Asset.SceneIndex = *f.Asset.SceneIndex
	}

	if f.Orbit.Radius != nil {
		Orbit.Radius = *f.Orbit.Radius
	}
	if f.Orbit.Yaw != nil {
		Orbit.Yaw = *f.Orbit.Yaw
	}
	if f.Orbit.Pitch != nil {
		Orbit.Pitch = *f.Orbit.Pitch
	}
	if f.Orbit.Speed != nil {
		Orbit.Speed = *f.Orbit.Speed
	}
	if t := f.Orbit.Target; t != nil {
		Orbit.Target = *t
	}

	if f.Light.Intensity != nil {
		Light.Intensity = *f.Light.Intensity
	}
	if f.Light.Range != nil {
		Light.Range = *f.Light.Range
	}
	if f.Light.InnerAngle != nil {
		Light.InnerAngle = *f.Light.InnerAngle
	}
	if f.Light.OuterAngle != nil {
		Light.OuterAngle = *f.Light.OuterAngle
	}

	if f.UI.Hint != "" {
		UI.HintText = f.UI.Hint
	}

	if f.Debug.Verbose != nil {
		Debug.Verbose = *f.Debug.Verbose
	}
	if f.Debug.Overlay != nil {
		Debug.Overlay = *f.Debug.Overlay
	}
}
