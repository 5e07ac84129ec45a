package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("embedded YAML and DefaultPongConfig differ:\n%+v\n%+v", cfg, DefaultPongConfig())
	}
}

func TestDefaultLevels(t *testing.T) {
	cfg := DefaultPongConfig()

	tests := []struct {
		level       int
		reachAt     int
		ballSpeed   float64
		hasObstacle bool
		obstacle    float64
	}{
		{1, 0, 4, false, 0},
		{2, 5, 4, true, 2},
		{3, 10, 6, true, 3},
	}

	for _, tc := range tests {
		l, ok := cfg.Level(tc.level)
		if !ok {
			t.Fatalf("level %d missing", tc.level)
		}
		if l.ReachAt != tc.reachAt || l.BallSpeed != tc.ballSpeed ||
			l.HasObstacle() != tc.hasObstacle || l.ObstacleSpeed != tc.obstacle {
			t.Errorf("level %d = %+v", tc.level, l)
		}
	}

	if _, ok := cfg.Level(4); ok {
		t.Error("level 4 should not exist by default")
	}
}

func TestLoadPongCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := "paddles:\n  ai_speed: 5\ncolors:\n  player: green\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}

	if cfg.Paddles.AISpeed != 5 {
		t.Errorf("AISpeed = %v, expected 5", cfg.Paddles.AISpeed)
	}
	if cfg.Colors.Player != "green" {
		t.Errorf("Player color = %q, expected green", cfg.Colors.Player)
	}
	// Untouched keys keep defaults
	if cfg.Paddles.PlayerSpeed != 6 || cfg.Canvas.Width != 800 || len(cfg.Levels) != 3 {
		t.Errorf("defaults should survive a partial file, got %+v", cfg)
	}
}

func TestLoadPongCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPong(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	data := `levels:
  - {level: 1, reach_at: 0, ball_speed: 4}
  - {level: 2, reach_at: 0, ball_speed: 4, obstacle_speed: 2}
`
	if err := os.WriteFile(invalid, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPong(invalid)
	if err == nil || !strings.Contains(err.Error(), "reach_at") {
		t.Errorf("non-increasing thresholds should fail validation, got %v", err)
	}
}

func TestLoadPongSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Paddles.AISpeed != 4 {
		t.Errorf("expected embedded default, got ai_speed %v", cfg.Paddles.AISpeed)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pong.yaml"), []byte("paddles:\n  ai_speed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadPong("")
	if cfg.Paddles.AISpeed != 2 {
		t.Errorf("expected local config, got ai_speed %v", cfg.Paddles.AISpeed)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".pong", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "pong.yaml"), []byte("paddles:\n  ai_speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadPong("")
	if cfg.Paddles.AISpeed != 7 {
		t.Errorf("expected user config, got ai_speed %v", cfg.Paddles.AISpeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PongConfig)
		wantErr string
	}{
		{"defaults", func(*PongConfig) {}, ""},
		{"zero canvas", func(c *PongConfig) { c.Canvas.Width = 0 }, "canvas"},
		{"paddle taller than canvas", func(c *PongConfig) { c.Paddles.Height = 600 }, "paddles: height"},
		{"no levels", func(c *PongConfig) { c.Levels = nil }, "at least one level"},
		{"too many levels", func(c *PongConfig) {
			for i := len(c.Levels); i < MaxLevels+1; i++ {
				c.Levels = append(c.Levels, LevelConfig{Level: i + 1, ReachAt: 5 * i, BallSpeed: 8})
			}
		}, "at most 9 levels"},
		{"levels out of order", func(c *PongConfig) { c.Levels[1].Level = 3 }, "expected level 2"},
		{"unknown color", func(c *PongConfig) { c.Colors.Obstacle = "mauve" }, "colors.obstacle"},
		{"unknown debug color", func(c *PongConfig) { c.Debug.PlayerColors = []string{"teal"} }, "debug.player_colors"},
		{"negative obstacle speed", func(c *PongConfig) { c.Levels[2].ObstacleSpeed = -1 }, "obstacle_speed"},
		{"zero ball speed preset", func(c *PongConfig) { c.Debug.BallSpeeds = []float64{0} }, "debug.ball_speeds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPongPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		aiSpeed     float64
		progression bool
	}{
		{DifficultyEasy, 3, true},
		{DifficultyNormal, 4, true},
		{DifficultyHard, 5, true},
		{DifficultyFixed, 4, false},
		{"", 4, true},
	}

	for _, tc := range tests {
		cfg := DefaultPongConfig()
		ApplyPongPreset(&cfg, tc.preset)
		if cfg.Paddles.AISpeed != tc.aiSpeed || cfg.Gameplay.Progression != tc.progression {
			t.Errorf("preset %q: ai_speed=%v progression=%v", tc.preset, cfg.Paddles.AISpeed, cfg.Gameplay.Progression)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) should succeed", name)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}
