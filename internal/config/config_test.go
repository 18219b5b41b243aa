package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1000 || cfg.Graphics.Height != 1000 {
		t.Errorf("expected 1000x1000 window, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.Exposure != 1.0 {
		t.Errorf("expected exposure 1.0, got %f", cfg.Graphics.Exposure)
	}
	if cfg.Shadows.SunResolution != 1024 || cfg.Shadows.PointResolution != 1024 {
		t.Errorf("expected 1024 shadow maps, got %d/%d", cfg.Shadows.SunResolution, cfg.Shadows.PointResolution)
	}
	if cfg.Game.ExitThreshold != 12.0 {
		t.Errorf("expected exit threshold 12, got %f", cfg.Game.ExitThreshold)
	}
	if cfg.Game.ParticleLifetime != 0.25 {
		t.Errorf("expected particle lifetime 0.25, got %f", cfg.Game.ParticleLifetime)
	}
	if cfg.Game.Level != "" {
		t.Errorf("expected built-in level by default, got %q", cfg.Game.Level)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 || cfg.Audio.SFXVolume != 1 {
		t.Errorf("expected audio enabled at 0.5, got %v/%v", cfg.Audio.Enabled, cfg.Audio.Volume)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  exposure: 2.5

shadows:
  sun_resolution: 2048
  far_plane: 40
  frustum:
    near: 0.5
    far: 30
    margin: 1

game:
  level: "levels/second.yaml"
  ball_speed: 3
  seed: 42

assets:
  ball: "res/sphere.glb"
  strict: true

logging:
  level: "debug"
  log_file: "breakout.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.VSync {
		t.Error("expected fullscreen on and vsync off")
	}
	if cfg.Graphics.Exposure != 2.5 {
		t.Errorf("expected exposure 2.5, got %f", cfg.Graphics.Exposure)
	}
	if cfg.Shadows.SunResolution != 2048 {
		t.Errorf("expected sun resolution 2048, got %d", cfg.Shadows.SunResolution)
	}
	// untouched keys keep their defaults
	if cfg.Shadows.PointResolution != 1024 {
		t.Errorf("expected point resolution default 1024, got %d", cfg.Shadows.PointResolution)
	}
	if cfg.Shadows.Frustum.Margin != 1 || cfg.Shadows.Frustum.Near != 0.5 {
		t.Errorf("unexpected frustum %+v", cfg.Shadows.Frustum)
	}
	if cfg.Game.Level != "levels/second.yaml" || cfg.Game.Seed != 42 {
		t.Errorf("unexpected game config %+v", cfg.Game)
	}
	if cfg.Game.ExitThreshold != 12 {
		t.Errorf("expected default exit threshold, got %f", cfg.Game.ExitThreshold)
	}
	if cfg.Assets.Ball != "res/sphere.glb" || !cfg.Assets.Strict {
		t.Errorf("unexpected assets config %+v", cfg.Assets)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "breakout.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"negative exposure", func(c *Config) { c.Graphics.Exposure = -1 }, "exposure"},
		{"zero resolution", func(c *Config) { c.Shadows.PointResolution = 0 }, "resolutions"},
		{"zero far plane", func(c *Config) { c.Shadows.FarPlane = 0 }, "far_plane"},
		{"inverted frustum", func(c *Config) { c.Shadows.Frustum.Near = 20 }, "frustum"},
		{"zero lifetime", func(c *Config) { c.Game.ParticleLifetime = 0 }, "particle_lifetime"},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }, "volume"},
		{"negative sfx volume", func(c *Config) { c.Audio.SFXVolume = -0.1 }, "sfx_volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Game.Level = "custom.yaml"
	cfg.Graphics.Exposure = 1.75
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Game.Level != "custom.yaml" || loaded.Graphics.Exposure != 1.75 {
		t.Errorf("reloaded config lost values: %+v", loaded.Game)
	}
}

func TestUserFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	path := UserFile()
	if path == "" {
		t.Fatal("UserFile returned empty string")
	}
	if !filepath.IsAbs(path) || filepath.Base(path) != "config.yaml" {
		t.Errorf("unexpected user config file %s", path)
	}
}

func TestLocate(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv(envConfig, "")

	if path := locate(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := locate(); path != fileName {
		t.Errorf("locate() = %q, want ./config.yaml", path)
	}

	t.Setenv(envConfig, "/elsewhere/breakout.yaml")
	if path := locate(); path != "/elsewhere/breakout.yaml" {
		t.Errorf("locate() = %q, want the environment override", path)
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(path, []byte("graphics:\n  widht: 800\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := loadFromFile(Default(), path); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if cfg.Graphics.Width != Default().Graphics.Width {
		t.Error("empty file changed defaults")
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
				if !cfg.Game.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "level flag",
			setup: func() { *flagLevel = "levels/hard.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Game.Level != "levels/hard.yaml" {
					t.Errorf("expected level override, got %s", cfg.Game.Level)
				}
			},
			teardown: func() { *flagLevel = "" },
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
			name:  "exposure flag",
			setup: func() { *flagExposure = 0.5 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Exposure != 0.5 {
					t.Errorf("expected exposure 0.5, got %f", cfg.Graphics.Exposure)
				}
			},
			teardown: func() { *flagExposure = 0 },
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled with mute flag")
				}
			},
			teardown: func() { *flagMute = false },
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
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("game:\n  particle_lifetime: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject a negative particle lifetime")
	}
}
