package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the gallery config file, relative to the process working directory.
const DefaultPath = "config/gallery.yaml"

// FFmpegEnv overrides Media.FFmpeg when set.
const FFmpegEnv = "GALLERY_FFMPEG"

// Config is the whole gallery configuration. Missing keys keep their Default() values.
type Config struct {
	Window WindowConfig  `yaml:"window"`
	Camera CameraConfig  `yaml:"camera"`
	Lights LightConfig   `yaml:"lights"`
	Videos []VideoConfig `yaml:"videos"`
	Media  MediaConfig   `yaml:"media"`
	HUD    HUDConfig     `yaml:"hud"`
}

// WindowConfig sizes the raylib window. Fullscreen ignores Width and Height.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// CameraConfig is the start pose and first-person controls.
type CameraConfig struct {
	Start            [3]float32 `yaml:"start"`
	LookAt           [3]float32 `yaml:"look_at"`
	Fovy             float32    `yaml:"fovy"`
	EyeHeight        float32    `yaml:"eye_height"`
	MoveSpeed        float32    `yaml:"move_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
}

// LightConfig is one ambient term plus one directional light shining from Position toward the origin.
type LightConfig struct {
	AmbientIntensity     float32    `yaml:"ambient_intensity"`
	DirectionalPosition  [3]float32 `yaml:"directional_position"`
	DirectionalIntensity float32    `yaml:"directional_intensity"`
}

// VideoConfig places one video surface. Path may be a file or any URL ffmpeg can open.
type VideoConfig struct {
	Name     string     `yaml:"name"`
	Path     string     `yaml:"path"`
	Position [3]float32 `yaml:"position"`
}

// MediaConfig controls ffmpeg decoding: frame size and rate per surface, and the shared audio mixer.
type MediaConfig struct {
	FFmpeg     string `yaml:"ffmpeg"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	FrameRate  int    `yaml:"frame_rate"`
	Audio      bool   `yaml:"audio"`
	SampleRate int    `yaml:"sample_rate"`
}

// HUDConfig toggles the 2D overlay.
type HUDConfig struct {
	ShowFPS  bool `yaml:"show_fps"`
	ShowLog  bool `yaml:"show_log"`
	LogLines int  `yaml:"log_lines"`
}

// Default returns the stock gallery: three videos side by side in front of the start position.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "video gallery",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			Start:            [3]float32{0, 1.5, 4},
			LookAt:           [3]float32{0, 1.5, 0},
			Fovy:             50,
			EyeHeight:        1.5,
			MoveSpeed:        0.05,
			MouseSensitivity: 0.003,
		},
		Lights: LightConfig{
			AmbientIntensity:     1,
			DirectionalPosition:  [3]float32{10, 10, 5},
			DirectionalIntensity: 1,
		},
		Videos: []VideoConfig{
			{Name: "center", Path: "assets/videos/Download1.mp4", Position: [3]float32{0, 1.5, -5}},
			{Name: "right", Path: "assets/videos/Download2.mp4", Position: [3]float32{2.2, 1.5, -5}},
			{Name: "left", Path: "assets/videos/Download.mp4", Position: [3]float32{-2.2, 1.5, -5}},
		},
		Media: MediaConfig{
			FFmpeg:     "ffmpeg",
			Width:      256,
			Height:     512,
			FrameRate:  30,
			Audio:      true,
			SampleRate: 48000,
		},
		HUD: HUDConfig{
			ShowFPS:  false,
			ShowLog:  true,
			LogLines: 6,
		},
	}
}

// Load reads the config at path on top of Default(). A missing file is not an error and yields
// Default(); a file that does not parse or validate is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Ensure writes Default() to path when no file exists there and reports whether it did.
// Environment overrides are never written.
func Ensure(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := Save(path, Default()); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(FFmpegEnv); v != "" {
		c.Media.FFmpeg = v
	}
}

// Validate rejects values the renderer or decoder cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS <= 0:
		return fmt.Errorf("target_fps %d must be positive", c.Window.TargetFPS)
	case c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180:
		return fmt.Errorf("fovy %v out of range (0, 180)", c.Camera.Fovy)
	case c.Camera.MoveSpeed <= 0:
		return fmt.Errorf("move_speed %v must be positive", c.Camera.MoveSpeed)
	case c.Media.Width <= 0 || c.Media.Height <= 0:
		return fmt.Errorf("media size %dx%d must be positive", c.Media.Width, c.Media.Height)
	case c.Media.FrameRate <= 0:
		return fmt.Errorf("frame_rate %d must be positive", c.Media.FrameRate)
	case c.Media.Audio && c.Media.SampleRate <= 0:
		return fmt.Errorf("sample_rate %d must be positive", c.Media.SampleRate)
	}
	for i, v := range c.Videos {
		if v.Path == "" {
			return fmt.Errorf("videos[%d]: path is empty", i)
		}
	}
	return nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
