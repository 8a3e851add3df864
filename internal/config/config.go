package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is looked up in the config directory. It is optional.
const FileName = "cubeview.cfg.json"

type WindowConfig struct {
	Width     int32  `mapstructure:"width"`
	Height    int32  `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int32  `mapstructure:"targetFps"`
}

type CameraConfig struct {
	Position [3]float32 `mapstructure:"position"`
	Target   [3]float32 `mapstructure:"target"`
	Fovy     float32    `mapstructure:"fovy"`
}

type SceneryConfig struct {
	Name string `mapstructure:"name"`
	// Model is an optional mesh file; empty means a generated box of Size.
	Model        string     `mapstructure:"model"`
	Size         [3]float32 `mapstructure:"size"`
	Color        string     `mapstructure:"color"`
	Tilt         float32    `mapstructure:"tilt"`
	InitialAngle float32    `mapstructure:"initialAngle"`
}

type MarkerConfig struct {
	Name         string     `mapstructure:"name"`
	Size         float32    `mapstructure:"size"`
	Color        string     `mapstructure:"color"`
	Position     [3]float32 `mapstructure:"position"`
	ClampToFloor bool       `mapstructure:"clampToFloor"`
}

type SeedConfig struct {
	Enabled    bool       `mapstructure:"enabled"`
	Name       string     `mapstructure:"name"`
	Size       float32    `mapstructure:"size"`
	Color      string     `mapstructure:"color"`
	Position   [3]float32 `mapstructure:"position"`
	TargetPath []int      `mapstructure:"targetPath"`
}

type AnimConfig struct {
	AngleStep    float32    `mapstructure:"angleStep"`
	MoveStep     [3]float32 `mapstructure:"moveStep"`
	ShortestPath bool       `mapstructure:"shortestPath"`
	MaxTicks     int        `mapstructure:"maxTicks"`
}

type GestureConfig struct {
	Strategy    string  `mapstructure:"strategy"`
	TapSlop     float32 `mapstructure:"tapSlop"`
	MaxVertical float32 `mapstructure:"maxVertical"`
}

type DebugConfig struct {
	ShowPhysics bool `mapstructure:"showPhysics"`
	LogContacts bool `mapstructure:"logContacts"`
}

type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Window   WindowConfig  `mapstructure:"window"`
	Camera   CameraConfig  `mapstructure:"camera"`
	Scenery  SceneryConfig `mapstructure:"scenery"`
	Marker   MarkerConfig  `mapstructure:"marker"`
	Seed     SeedConfig    `mapstructure:"seed"`
	Anim     AnimConfig    `mapstructure:"anim"`
	Gesture  GestureConfig `mapstructure:"gesture"`
	Debug    DebugConfig   `mapstructure:"debug"`
}

// setDefaults mirrors the first prototype: a red 0.7 x 0.2 x 0.7 floor tilted
// a quarter of a half turn, a blue 0.1 cube and a small seed.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "cubeview")
	v.SetDefault("window.targetFps", 60)

	v.SetDefault("camera.position", []float32{0, 0.9, 1.4})
	v.SetDefault("camera.target", []float32{0, 0, 0})
	v.SetDefault("camera.fovy", 45)

	v.SetDefault("scenery.name", "scenery")
	v.SetDefault("scenery.model", "")
	v.SetDefault("scenery.size", []float32{0.7, 0.2, 0.7})
	v.SetDefault("scenery.color", "Red")
	v.SetDefault("scenery.tilt", 0.7853982)
	v.SetDefault("scenery.initialAngle", 3.926991)

	v.SetDefault("marker.name", "cube")
	v.SetDefault("marker.size", 0.1)
	v.SetDefault("marker.color", "Blue")
	v.SetDefault("marker.position", []float32{0, 0, 0.5})
	v.SetDefault("marker.clampToFloor", true)

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.name", "seed")
	v.SetDefault("seed.size", 0.06)
	v.SetDefault("seed.color", "Green")
	v.SetDefault("seed.position", []float32{-0.2, 0.13, -0.2})
	v.SetDefault("seed.targetPath", []int{0, 0})

	v.SetDefault("anim.angleStep", 0.05)
	v.SetDefault("anim.moveStep", []float32{0.015, 0.015, 0.015})
	v.SetDefault("anim.shortestPath", false)
	v.SetDefault("anim.maxTicks", 10000)

	v.SetDefault("gesture.strategy", "snap")
	v.SetDefault("gesture.tapSlop", 10)
	v.SetDefault("gesture.maxVertical", 0)

	v.SetDefault("debug.showPhysics", true)
	v.SetDefault("debug.logContacts", true)
}

// Load reads defaults, then FileName from configDir when present. An empty
// configDir skips the file.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configDir != "" {
		v.SetConfigName(FileName)
		v.SetConfigType("json")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would stall or break the scene.
func (c *Config) Validate() error {
	if c.Anim.AngleStep <= 0 {
		return fmt.Errorf("anim.angleStep must be positive, got %v", c.Anim.AngleStep)
	}
	if c.Anim.MaxTicks <= 0 {
		return fmt.Errorf("anim.maxTicks must be positive, got %d", c.Anim.MaxTicks)
	}
	if c.Anim.MoveStep == [3]float32{} {
		return errors.New("anim.moveStep must be non-zero")
	}
	if c.Scenery.Name == "" || c.Marker.Name == "" {
		return errors.New("scenery.name and marker.name are required")
	}
	if c.Scenery.Name == c.Marker.Name || (c.Seed.Enabled && (c.Seed.Name == c.Scenery.Name || c.Seed.Name == c.Marker.Name)) {
		return errors.New("scenery, marker and seed names must be distinct")
	}
	return nil
}
