package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1200 {
		t.Errorf("expected width 1200, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Camera.Mode != "orbit" {
		t.Errorf("expected camera mode orbit, got %s", cfg.Camera.Mode)
	}
	if cfg.Camera.DragRotateScale != 0.5 || cfg.Camera.DragPanScale != 0.01 || cfg.Camera.ScrollZoomScale != 2 {
		t.Errorf("unexpected mouse scales: %+v", cfg.Camera)
	}
	if !cfg.Scene.Animate || !cfg.Scene.MirrorWallsEnabled || !cfg.Scene.ShowHUD {
		t.Errorf("unexpected scene defaults: %+v", cfg.Scene)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

camera:
  mode: fly
  move_speed: 3

scene:
  animate: false
  mirror_walls_enabled: false

logging:
  level: "debug"
  log_file: "cornellbox.log"
`)

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Camera.Mode != "fly" || cfg.Camera.MoveSpeed != 3 {
		t.Errorf("unexpected camera config: %+v", cfg.Camera)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Camera.DragRotateScale != 0.5 {
		t.Errorf("expected default drag_rotate_scale, got %v", cfg.Camera.DragRotateScale)
	}
	if cfg.Scene.Animate || cfg.Scene.MirrorWallsEnabled {
		t.Errorf("unexpected scene config: %+v", cfg.Scene)
	}
	if !cfg.Scene.ShowHUD {
		t.Error("expected show_hud to keep its default")
	}
	if cfg.Logging.LogFile != "cornellbox.log" {
		t.Errorf("expected log file 'cornellbox.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown key", "graphics:\n  widht: 800\n"},
		{"unknown section", "audio:\n  muted: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := loadFromFile(cfg, writeConfig(t, tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, writeConfig(t, "\n")); err != nil {
		t.Fatalf("empty file should be accepted: %v", err)
	}
	if cfg.Graphics.Width != Default().Graphics.Width {
		t.Error("empty file should keep defaults")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/cornellbox.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "graphics.width"},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }, "graphics.height"},
		{"zero fps", func(c *Config) { c.Graphics.FPSLimit = 0 }, "graphics.fps_limit"},
		{"zero pan scale", func(c *Config) { c.Camera.DragPanScale = 0 }, "camera.drag_pan_scale"},
		{"zero move speed", func(c *Config) { c.Camera.MoveSpeed = 0 }, "camera.move_speed"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad camera", func(c *Config) { c.Camera.Mode = "dolly" }, "camera.mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "camera and fps flags",
			setup: func() {
				*flagCamera = "fly"
				*flagFPS = 30
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.Mode != "fly" {
					t.Errorf("expected camera fly, got %s", cfg.Camera.Mode)
				}
				if cfg.Graphics.FPSLimit != 30 {
					t.Errorf("expected fps 30, got %d", cfg.Graphics.FPSLimit)
				}
			},
			teardown: func() {
				*flagCamera = ""
				*flagFPS = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	path := writeConfig(t, "graphics:\n  width: 1600\n  height: 900\n")

	*flagConfig = path
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagConfig = writeConfig(t, "camera:\n  mode: dolly\n")
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Camera.Mode = "fly"

	var buf bytes.Buffer
	if err := cfg.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	if !strings.Contains(buf.String(), "fps_limit: 60") {
		t.Errorf("expected fps_limit in output:\n%s", buf.String())
	}

	path := writeConfig(t, buf.String())
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
