package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig differ:\nyaml: %+v\ncode: %+v", cfg, DefaultConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
player:
  lives: 7
combat:
  mode: projectile
zones:
  - name: Only Zone
    boss_threshold: 50
    boss_hp: 10
    enemy_speed_scale: 1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Combat.Mode != CombatProjectile {
		t.Errorf("mode = %q, expected projectile", cfg.Combat.Mode)
	}
	if len(cfg.Zones) != 1 || cfg.Zones[0].Name != "Only Zone" {
		t.Errorf("zones should be replaced, got %+v", cfg.Zones)
	}
	// Untouched sections keep defaults.
	if cfg.Arena != DefaultConfig().Arena {
		t.Errorf("arena = %+v, expected defaults", cfg.Arena)
	}
	if len(cfg.Enemies.Patterns) != len(AllPatterns) {
		t.Errorf("patterns = %v, expected defaults", cfg.Enemies.Patterns)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		enemyCD    int
		enemyFloor int
	}{
		{DifficultyEasy, 5, 94, 25},
		{DifficultyNormal, 3, 75, 20},
		{DifficultyHard, 2, 60, 16},
		{"", 3, 75, 20},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Player.Lives != tt.lives {
			t.Errorf("%q: lives = %d, expected %d", tt.preset, cfg.Player.Lives, tt.lives)
		}
		if cfg.Spawn.EnemyCooldown != tt.enemyCD {
			t.Errorf("%q: enemy cooldown = %d, expected %d", tt.preset, cfg.Spawn.EnemyCooldown, tt.enemyCD)
		}
		if cfg.Spawn.EnemyCooldownFloor != tt.enemyFloor {
			t.Errorf("%q: enemy floor = %d, expected %d", tt.preset, cfg.Spawn.EnemyCooldownFloor, tt.enemyFloor)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should yield empty")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative player size", func(c *Config) { c.Player.Width = -1 }, "player.width"},
		{"zero enemy height", func(c *Config) { c.Enemies.Height = 0 }, "enemies.height"},
		{"empty zones", func(c *Config) { c.Zones = nil }, "zone table is empty"},
		{"unknown pattern", func(c *Config) { c.Enemies.Patterns = []Pattern{"zigzag"} }, "zigzag"},
		{"unknown pickup", func(c *Config) { c.Pickups.Kinds = []PickupKind{"bomb"} }, "bomb"},
		{"unknown mode", func(c *Config) { c.Combat.Mode = "both" }, "combat mode"},
		{"enrage fraction", func(c *Config) { c.Boss.EnrageFraction = 1 }, "enrage_fraction"},
		{"zero boss hp", func(c *Config) { c.Zones[1].BossHP = 0 }, "zones[1].boss_hp"},
		{"short buff", func(c *Config) { c.Player.ShieldDuration = c.Player.HitGrace }, "buff durations"},
		{"bad formula", func(c *Config) { c.Spawn.EnemyCooldownFormula = "base +" }, "cooldown formula"},
		{"stationary no lifetime", func(c *Config) { c.Pickups.DriftSpeed = 0; c.Pickups.Lifetime = 0 }, "lifetime"},
		{"growing formula", func(c *Config) { c.Spawn.EnemyCooldownFormula = "base + 50*level" }, "grows from level"},
		{"formula grows with zone", func(c *Config) { c.Spawn.ItemCooldownFormula = "base + zone" }, "grows from zone"},
		{"formula fails at runtime", func(c *Config) { c.Spawn.EnemyCooldownFormula = "base - 100 / (3 - level)" }, "division by zero"},
		{"zero boss speed", func(c *Config) { c.Boss.Speed = 0 }, "boss.speed"},
		{"negative boss speed", func(c *Config) { c.Boss.Speed = -2 }, "boss.speed"},
		{"negative enraged speed", func(c *Config) { c.Boss.EnragedSpeed = -1 }, "boss.enraged_speed"},
		{"zero player speed", func(c *Config) { c.Player.Speed = 0 }, "player.speed"},
		{"rest band off arena", func(c *Config) { c.Boss.RestOffset = c.Arena.Width }, "boss.rest_offset"},
		{"negative rest offset", func(c *Config) { c.Boss.RestOffset = -10 }, "boss.rest_offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateAcceptsShrinkingFormula(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn.EnemyCooldownFormula = "base - step * (level - 1) - 10 * zone"
	cfg.Spawn.ItemCooldownFormula = "math.max(floor, base - 40 * zone)"
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Arena.Width = 0
	cfg.Player.Lives = 0
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "arena size") || !strings.Contains(msg, "player.lives") {
		t.Errorf("both problems should be reported, got %q", msg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Verdant Hollow") {
		t.Errorf("marshaled config misses zone table:\n%s", data)
	}
}

func TestShopPrice(t *testing.T) {
	shop := DefaultConfig().Shop
	if p, ok := shop.Price(PickupShield); !ok || p != shop.Shield {
		t.Errorf("shield price = %d, %v", p, ok)
	}
	if _, ok := shop.Price(PickupInvulnerability); ok {
		t.Error("invulnerability is not sold")
	}
}
