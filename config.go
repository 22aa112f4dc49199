package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"infinite-canvas/canvas"
	"infinite-canvas/input"
)

const (
	// --- Window ---
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultWindowTitle  = "Infinite Canvas"

	// --- Camera & View ---
	DefaultOffsetX       = 0.0
	DefaultOffsetY       = 0.0
	DefaultScale         = 1.0
	DefaultZoomIntensity = input.DefaultZoomIntensity

	// --- Grid & Background ---
	GridSize = 50.0

	// --- HUD ---
	DefaultFontPath = "fonts/Roboto-Regular.ttf"
	HUDFontSize     = 14.0
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{30, 30, 35, 255}
	ColorGrid        = color.RGBA{255, 255, 255, 20}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorHUDText     = color.RGBA{220, 220, 220, 255}
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ViewConfig struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Scale   float64 `yaml:"scale"`
	// MinScale and MaxScale clamp zooming; zero leaves that side unbounded.
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
}

type InputConfig struct {
	ZoomIntensity float64 `yaml:"zoom_intensity"`
}

type Config struct {
	Window   WindowConfig `yaml:"window"`
	View     ViewConfig   `yaml:"view"`
	Input    InputConfig  `yaml:"input"`
	ShowGrid bool         `yaml:"show_grid"`
	ShowHUD  bool         `yaml:"show_hud"`
	FontPath string       `yaml:"font_path"`
	Debug    bool         `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window:   WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight, Title: DefaultWindowTitle},
		View:     ViewConfig{OffsetX: DefaultOffsetX, OffsetY: DefaultOffsetY, Scale: DefaultScale},
		Input:    InputConfig{ZoomIntensity: DefaultZoomIntensity},
		ShowGrid: true,
		ShowHUD:  true,
		FontPath: DefaultFontPath,
	}
}

// LoadConfig reads a YAML file over the defaults. Fields missing from the
// file keep their default values.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(cfg Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate rejects values the viewport cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.View.Scale <= 0 {
		return fmt.Errorf("view scale %v must be positive", c.View.Scale)
	}
	if c.View.MinScale < 0 || c.View.MaxScale < 0 {
		return fmt.Errorf("scale limits must not be negative")
	}
	if c.View.MaxScale > 0 && c.View.MinScale > c.View.MaxScale {
		return fmt.Errorf("min_scale %v exceeds max_scale %v", c.View.MinScale, c.View.MaxScale)
	}
	if c.Input.ZoomIntensity <= 0 || c.Input.ZoomIntensity >= 1 {
		return fmt.Errorf("zoom_intensity %v must be in (0, 1)", c.Input.ZoomIntensity)
	}
	return nil
}

// NewTransform builds the initial viewport transform described by c.
func (c Config) NewTransform() *canvas.Transform {
	return &canvas.Transform{
		Offset: canvas.Point{X: c.View.OffsetX, Y: c.View.OffsetY},
		Scale:  c.View.Scale,
		Limits: canvas.Limits{MinScale: c.View.MinScale, MaxScale: c.View.MaxScale},
	}
}
