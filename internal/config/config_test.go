package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendTerminal {
		t.Errorf("expected frontend %q, got %q", FrontendTerminal, cfg.Frontend)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.SoundsDir != DefaultSoundsDir {
		t.Errorf("expected sounds dir %q, got %q", DefaultSoundsDir, cfg.SoundsDir)
	}
	if cfg.Mute || cfg.Debug {
		t.Error("expected mute and debug off by default")
	}
	if cfg.Seed != 0 || cfg.Volume != 0 || cfg.LogFile != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{
		"--frontend", "window",
		"--fps", "60",
		"--sounds", "/tmp/sfx",
		"--volume", "-1.5",
		"--seed", "1234",
		"--log", "pong.log",
		"--debug",
	}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendWindow {
		t.Errorf("expected frontend %q, got %q", FrontendWindow, cfg.Frontend)
	}
	if cfg.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.FPS)
	}
	if cfg.SoundsDir != "/tmp/sfx" {
		t.Errorf("expected sounds dir '/tmp/sfx', got '%s'", cfg.SoundsDir)
	}
	if cfg.Volume != -1.5 {
		t.Errorf("expected volume -1.5, got %f", cfg.Volume)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.LogFile != "pong.log" {
		t.Errorf("expected log 'pong.log', got '%s'", cfg.LogFile)
	}
	if !cfg.Debug {
		t.Error("expected debug to be true")
	}
}

func TestParseArgs_MuteAllowsEmptySounds(t *testing.T) {
	cfg, err := ParseArgs([]string{"--mute", "--sounds", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Mute {
		t.Error("expected Mute to be true")
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown frontend", []string{"--frontend", "browser"}},
		{"fps zero", []string{"--fps", "0"}},
		{"fps too high", []string{"--fps", "1001"}},
		{"volume too low", []string{"--volume", "-6"}},
		{"volume too high", []string{"--volume", "2"}},
		{"empty sounds", []string{"--sounds", ""}},
		{"unknown flag", []string{"--server"}},
		{"stray argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseArgs(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseArgs_ValidFPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum fps", "1", 1},
		{"maximum fps", "1000", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--fps", tt.fps})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.FPS != tt.want {
				t.Errorf("expected fps %d, got %d", tt.want, cfg.FPS)
			}
		})
	}
}
