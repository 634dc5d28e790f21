package game

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.BoardWidth != 80 || cfg.BoardHeight != 22 {
		t.Errorf("Unexpected default board size %dx%d", cfg.BoardWidth, cfg.BoardHeight)
	}
	if cfg.PlayerClass != "wanderer" {
		t.Errorf("Unexpected default class %q", cfg.PlayerClass)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GRIDQUEST_SEED", "12345")
	t.Setenv("GRIDQUEST_BOARD_WIDTH", "40")
	t.Setenv("GRIDQUEST_BOARD_HEIGHT", "12")
	t.Setenv("GRIDQUEST_PLAYER_NAME", "Vex")
	t.Setenv("GRIDQUEST_PLAYER_CLASS", "rogue")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Seed != 12345 {
		t.Errorf("Expected seed 12345, got %d", cfg.Seed)
	}
	if cfg.BoardWidth != 40 || cfg.BoardHeight != 12 {
		t.Errorf("Unexpected board size %dx%d", cfg.BoardWidth, cfg.BoardHeight)
	}
	if cfg.PlayerName != "Vex" || cfg.PlayerClass != "rogue" {
		t.Errorf("Unexpected player settings %q/%q", cfg.PlayerName, cfg.PlayerClass)
	}
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	t.Setenv("GRIDQUEST_SEED", "not-a-number")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error for a non-numeric seed")
	}
}
