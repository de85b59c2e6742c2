package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	OutputDir string `json:"output_dir"`
	Texture   string `json:"texture"`

	// Render settings
	Format      string  `json:"format"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	Frames      int     `json:"frames"`
	FrameRate   float32 `json:"frame_rate"`
	Workers     int     `json:"workers"`
	NoOverlay   bool    `json:"no_overlay"`

	// Camera
	FOV            float32     `json:"fov"`
	Near           float32     `json:"near"`
	Far            float32     `json:"far"`
	CameraPosition *[3]float32 `json:"camera_position"`
	CameraTarget   *[3]float32 `json:"camera_target"`

	ClearColor *[4]float32 `json:"clear_color"`

	// IKTarget is the centre the arm's end effector circles, IKOrbit the
	// radius of that circle.
	IKTarget *[3]float32 `json:"ik_target"`
	IKOrbit  float32     `json:"ik_orbit"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir     string
	OutputDir   string
	Format      string
	Texture     string
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "frames")
	} else if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
	}
	if c.Texture != "" && !filepath.IsAbs(c.Texture) {
		c.Texture = filepath.Join(c.BaseDir, c.Texture)
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatWebP
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	if c.FOV <= 0 {
		c.FOV = 60
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= 0 {
		c.Far = 100
	}
	if c.CameraPosition == nil {
		c.CameraPosition = &[3]float32{0, 1.5, 4}
	}
	if c.CameraTarget == nil {
		c.CameraTarget = &[3]float32{0, 1, 0}
	}
	if c.ClearColor == nil {
		c.ClearColor = &[4]float32{0, 1, 0, 1}
	}
	if c.IKTarget == nil {
		c.IKTarget = &[3]float32{0.5, 1.3, 0.4}
	}
	if c.IKOrbit <= 0 {
		c.IKOrbit = 0.3
	}
}

// Validate reports settings no renderer can honour. Call it after Resolve.
func (c *Config) Validate() error {
	switch {
	case c.Format != FormatWebP && c.Format != FormatTGA:
		return fmt.Errorf("config: format %q: %w", c.Format, ErrInvalid)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: size %dx%d: %w", c.Width, c.Height, ErrInvalid)
	case c.Near >= c.Far:
		return fmt.Errorf("config: near %v not below far %v: %w", c.Near, c.Far, ErrInvalid)
	case c.FOV >= 180:
		return fmt.Errorf("config: fov %v: %w", c.FOV, ErrInvalid)
	}
	return nil
}

// Aspect returns Width / Height.
func (c *Config) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}
