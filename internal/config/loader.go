package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the config directories.
const FileName = "zones.yaml"

// formulaCheckLevels is how many levels Validate samples a cooldown formula over.
const formulaCheckLevels = 30

// ErrInvalidConfig marks configuration values that cannot build a simulation.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.zonearcade/configs/zones.yaml -> ./configs/zones.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultZonesYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and parses a single configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file may
// override only the sections it cares about.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	// Lists replace rather than merge.
	cfg.Zones = nil
	cfg.Enemies.Patterns = nil
	cfg.Pickups.Kinds = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	def := DefaultConfig()
	if len(cfg.Zones) == 0 {
		cfg.Zones = def.Zones
	}
	if len(cfg.Enemies.Patterns) == 0 {
		cfg.Enemies.Patterns = def.Enemies.Patterns
	}
	if len(cfg.Pickups.Kinds) == 0 {
		cfg.Pickups.Kinds = def.Pickups.Kinds
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zonearcade", "configs", filename)
}

// UserConfigDir returns ~/.zonearcade/configs, or empty if home is unavailable.
func UserConfigDir() string {
	return filepath.Dir(userConfigPath(FileName))
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		scaleCooldowns(&cfg.Spawn, 1.25)
	case DifficultyHard:
		cfg.Player.Lives = 2
		scaleCooldowns(&cfg.Spawn, 0.8)
	}
}

func scaleCooldowns(s *Spawn, factor float64) {
	scale := func(v int) int { return int(math.Round(float64(v) * factor)) }
	s.EnemyCooldown = scale(s.EnemyCooldown)
	s.EnemyCooldownFloor = scale(s.EnemyCooldownFloor)
	s.ItemCooldown = scale(s.ItemCooldown)
	s.ItemCooldownFloor = scale(s.ItemCooldownFloor)
}

// Validate reports every value that would break the simulation.
// All problems are joined into one error wrapping ErrInvalidConfig.
func Validate(cfg Config) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if cfg.Arena.Width <= 0 || cfg.Arena.Height <= 0 {
		bad("arena size %gx%g must be positive", cfg.Arena.Width, cfg.Arena.Height)
	}
	sizes := []struct {
		name string
		v    float64
	}{
		{"player.width", cfg.Player.Width},
		{"player.height", cfg.Player.Height},
		{"enemies.width", cfg.Enemies.Width},
		{"enemies.height", cfg.Enemies.Height},
		{"pickups.width", cfg.Pickups.Width},
		{"pickups.height", cfg.Pickups.Height},
		{"projectiles.width", cfg.Projectiles.Width},
		{"projectiles.height", cfg.Projectiles.Height},
		{"boss.width", cfg.Boss.Width},
		{"boss.height", cfg.Boss.Height},
	}
	for _, sz := range sizes {
		if sz.v <= 0 {
			bad("%s must be positive, got %g", sz.name, sz.v)
		}
	}
	if cfg.Player.Width > cfg.Arena.Width || cfg.Player.Height > cfg.Arena.Height {
		bad("player %gx%g does not fit the arena", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Boss.Height > cfg.Arena.Height {
		bad("boss height %g exceeds arena height", cfg.Boss.Height)
	}
	if cfg.Player.Speed <= 0 {
		bad("player.speed must be positive, got %g", cfg.Player.Speed)
	}
	if cfg.Boss.Speed <= 0 {
		bad("boss.speed must be positive, got %g", cfg.Boss.Speed)
	}
	if cfg.Boss.EnragedSpeed < 0 {
		bad("boss.enraged_speed must not be negative, got %g", cfg.Boss.EnragedSpeed)
	}
	if cfg.Boss.RestOffset < 0 || cfg.Boss.RestOffset+cfg.Boss.Width > cfg.Arena.Width {
		bad("boss.rest_offset %g puts the resting band outside the arena", cfg.Boss.RestOffset)
	}
	if cfg.Player.Lives < 1 {
		bad("player.lives must be at least 1, got %d", cfg.Player.Lives)
	}
	if cfg.Player.HitGrace < 1 {
		bad("player.hit_grace must be at least 1, got %d", cfg.Player.HitGrace)
	}
	if cfg.Player.ShieldDuration <= cfg.Player.HitGrace || cfg.Player.WeaponDuration <= cfg.Player.HitGrace {
		bad("buff durations must be longer than player.hit_grace")
	}
	if cfg.Player.InvulnerabilityDuration < 1 {
		bad("player.invulnerability_duration must be at least 1")
	}
	if cfg.Enemies.BaseSpeed <= 0 {
		bad("enemies.base_speed must be positive")
	}
	if cfg.Enemies.MaxSpeed < cfg.Enemies.BaseSpeed {
		bad("enemies.max_speed must not be below base_speed")
	}
	if len(cfg.Enemies.Patterns) == 0 {
		bad("enemies.patterns is empty")
	}
	for _, p := range cfg.Enemies.Patterns {
		if !validPattern(p) {
			bad("unknown enemy pattern %q", p)
		}
	}
	for _, k := range cfg.Pickups.Kinds {
		if !validPickupKind(k) {
			bad("unknown pickup kind %q", k)
		}
	}
	if cfg.Pickups.DriftSpeed < 0 {
		bad("pickups.drift_speed must not be negative")
	}
	if cfg.Pickups.DriftSpeed == 0 && cfg.Pickups.Lifetime < 1 {
		bad("stationary pickups need a positive pickups.lifetime")
	}
	if cfg.Boss.EnrageFraction <= 0 || cfg.Boss.EnrageFraction >= 1 {
		bad("boss.enrage_fraction must be in (0, 1), got %g", cfg.Boss.EnrageFraction)
	}
	switch cfg.Combat.Mode {
	case CombatChip:
		if cfg.Boss.ChipDamage <= 0 {
			bad("boss.chip_damage must be positive in chip mode")
		}
	case CombatProjectile:
		if cfg.Boss.HitDamage <= 0 {
			bad("boss.hit_damage must be positive in projectile mode")
		}
		if cfg.Projectiles.Speed <= 0 {
			bad("projectiles.speed must be positive in projectile mode")
		}
	default:
		bad("unknown combat mode %q", cfg.Combat.Mode)
	}
	if cfg.Spawn.EnemyCooldownFloor < 1 || cfg.Spawn.ItemCooldownFloor < 1 {
		bad("spawn cooldown floors must be at least 1")
	}
	if cfg.Spawn.EnemyCooldownStep < 0 || cfg.Spawn.ItemCooldownStep < 0 {
		bad("spawn cooldown steps must not be negative")
	}
	if cfg.Spawn.MaxEnemies < 1 || cfg.Spawn.MaxEnemiesCap < cfg.Spawn.MaxEnemies {
		bad("spawn.max_enemies must be at least 1 and not above max_enemies_cap")
	}
	if cfg.Progression.TransitionFrames < 0 {
		bad("progression.transition_frames must not be negative")
	}
	if cfg.Progression.ScorePerTick < 0 {
		bad("progression.score_per_tick must not be negative")
	}
	if cfg.Shop.ExtraLife < 0 || cfg.Shop.Shield < 0 || cfg.Shop.Weapon < 0 {
		bad("shop prices must not be negative")
	}
	if len(cfg.Zones) == 0 {
		bad("zone table is empty")
	}
	for i, z := range cfg.Zones {
		if z.Name == "" {
			bad("zones[%d] has no name", i)
		}
		if z.BossThreshold < 1 {
			bad("zones[%d].boss_threshold must be at least 1", i)
		}
		if z.BossHP <= 0 {
			bad("zones[%d].boss_hp must be positive", i)
		}
		if z.EnemySpeedScale <= 0 {
			bad("zones[%d].enemy_speed_scale must be positive", i)
		}
	}
	for _, build := range []func() (*Ramp, error){cfg.Spawn.EnemyRamp, cfg.Spawn.ItemRamp} {
		r, err := build()
		if err == nil {
			err = r.Check(formulaCheckLevels, len(cfg.Zones))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
		}
	}

	return errors.Join(errs...)
}

func validPattern(p Pattern) bool {
	for _, known := range AllPatterns {
		if p == known {
			return true
		}
	}
	return false
}

func validPickupKind(k PickupKind) bool {
	for _, known := range AllPickupKinds {
		if k == known {
			return true
		}
	}
	return false
}
