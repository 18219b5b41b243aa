// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shadows  ShadowConfig   `yaml:"shadows"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	Exposure   float32 `yaml:"exposure"` // HDR tone-map exposure, fixed per level

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// FrustumConfig shapes the orthographic volume of the sun's shadow map. The
// side extents follow the level width plus Margin on each side.
type FrustumConfig struct {
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	Margin float32 `yaml:"margin"`
}

// ShadowConfig holds shadow map settings.
type ShadowConfig struct {
	SunResolution   int32         `yaml:"sun_resolution"`
	PointResolution int32         `yaml:"point_resolution"`
	FarPlane        float32       `yaml:"far_plane"` // point light depth range
	Frustum         FrustumConfig `yaml:"frustum"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Level            string  `yaml:"level"` // layout file; empty uses the built-in level
	BallSpeed        float32 `yaml:"ball_speed"`
	PaddleSpeed      float32 `yaml:"paddle_speed"`
	ExitThreshold    float32 `yaml:"exit_threshold"`
	ParticleLifetime float32 `yaml:"particle_lifetime"`
	Seed             int64   `yaml:"seed"` // 0 picks a time-based seed
	ShowFPS          bool    `yaml:"show_fps"`
}

// AssetsConfig holds model paths. An empty path selects a procedural primitive.
type AssetsConfig struct {
	IronBrick  string `yaml:"iron_brick"`
	WoodBrick  string `yaml:"wood_brick"`
	PaperBrick string `yaml:"paper_brick"`
	Paddle     string `yaml:"paddle"`
	Ball       string `yaml:"ball"`
	Background string `yaml:"background"`
	Quad       string `yaml:"quad"`
	Strict     bool   `yaml:"strict"` // reject degraded model loads
}

// AudioConfig holds sound effect settings. Empty clip paths fall back to
// synthesized tones.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`     // master
	SFXVolume  float64 `yaml:"sfx_volume"` // contact effects, scaled by master
	BounceClip string  `yaml:"bounce_clip"`
	BreakClip  string  `yaml:"break_clip"`
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
			Width:      1000,
			Height:     1000,
			Fullscreen: false,
			VSync:      true,
			Exposure:   1.0,

			ScreenshotDir: "screenshots",
		},
		Shadows: ShadowConfig{
			SunResolution:   1024,
			PointResolution: 1024,
			FarPlane:        25.0,
			Frustum: FrustumConfig{
				Near:   1.0,
				Far:    10.0,
				Margin: 0.5,
			},
		},
		Game: GameConfig{
			BallSpeed:        2.0,
			PaddleSpeed:      10.0,
			ExitThreshold:    12.0,
			ParticleLifetime: 0.25,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Volume:    0.5,
			SFXVolume: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Exposure <= 0 {
		errs = append(errs, fmt.Errorf("graphics: exposure %v must be positive", c.Graphics.Exposure))
	}
	if c.Shadows.SunResolution <= 0 || c.Shadows.PointResolution <= 0 {
		errs = append(errs, errors.New("shadows: resolutions must be positive"))
	}
	if c.Shadows.FarPlane <= 0 {
		errs = append(errs, fmt.Errorf("shadows: far_plane %v must be positive", c.Shadows.FarPlane))
	}
	f := c.Shadows.Frustum
	if f.Near >= f.Far || f.Margin < 0 {
		errs = append(errs, fmt.Errorf("shadows: degenerate frustum %+v", f))
	}
	if c.Game.ParticleLifetime <= 0 {
		errs = append(errs, fmt.Errorf("game: particle_lifetime %v must be positive", c.Game.ParticleLifetime))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume %v must be within 0..1", c.Audio.Volume))
	}
	if c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("audio: sfx_volume %v must be within 0..1", c.Audio.SFXVolume))
	}
	return errors.Join(errs...)
}
