// Package config handles configuration loading and validation.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cornellbox/internal/engine/camera"
	"github.com/Faultbox/cornellbox/internal/logger"
)

// ErrInvalidConfig is wrapped by every Validate error.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// CameraConfig holds camera and mouse settings.
type CameraConfig struct {
	Mode            string  `yaml:"mode"` // orbit or fly
	DragRotateScale float32 `yaml:"drag_rotate_scale"`
	DragPanScale    float32 `yaml:"drag_pan_scale"`
	ScrollZoomScale float32 `yaml:"scroll_zoom_scale"`
	MoveSpeed       float32 `yaml:"move_speed"` // fly camera, units per second
}

// SceneConfig holds scene behavior settings.
type SceneConfig struct {
	Animate            bool   `yaml:"animate"`
	MirrorWallsEnabled bool   `yaml:"mirror_walls_enabled"`
	ShowHUD            bool   `yaml:"show_hud"`
	ScreenshotDir      string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1200,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Camera: CameraConfig{
			Mode:            camera.ModeOrbit.String(),
			DragRotateScale: 0.5,
			DragPanScale:    0.01,
			ScrollZoomScale: 2,
			MoveSpeed:       camera.DefaultMoveSpeed,
		},
		Scene: SceneConfig{
			Animate:            true,
			MirrorWallsEnabled: true,
			ShowHUD:            true,
			ScreenshotDir:      "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges. Errors wrap ErrInvalidConfig and name the
// offending field.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0:
		return invalid("graphics.width", c.Graphics.Width)
	case c.Graphics.Height <= 0:
		return invalid("graphics.height", c.Graphics.Height)
	case c.Graphics.FPSLimit <= 0:
		return invalid("graphics.fps_limit", c.Graphics.FPSLimit)
	case c.Camera.DragRotateScale <= 0:
		return invalid("camera.drag_rotate_scale", c.Camera.DragRotateScale)
	case c.Camera.DragPanScale <= 0:
		return invalid("camera.drag_pan_scale", c.Camera.DragPanScale)
	case c.Camera.ScrollZoomScale <= 0:
		return invalid("camera.scroll_zoom_scale", c.Camera.ScrollZoomScale)
	case c.Camera.MoveSpeed <= 0:
		return invalid("camera.move_speed", c.Camera.MoveSpeed)
	case !logger.ValidLevel(c.Logging.Level):
		return invalid("logging.level", c.Logging.Level)
	}
	if _, err := camera.ParseMode(c.Camera.Mode); err != nil {
		return fmt.Errorf("%w: camera.mode: %w", ErrInvalidConfig, err)
	}
	return nil
}

func invalid(field string, value any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, value)
}
