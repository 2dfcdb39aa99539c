package config

import (
	_ "embed"
)

//go:embed defaults/zones.yaml
var defaultZonesYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultZonesYAML
}

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/zones.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Arena: Arena{Width: 800, Height: 400},
		Player: Player{
			X:                       60,
			Width:                   28,
			Height:                  28,
			Speed:                   4,
			Lives:                   3,
			HitGrace:                60,
			ShieldDuration:          300,
			WeaponDuration:          300,
			InvulnerabilityDuration: 240,
		},
		Enemies: Enemies{
			Width:         24,
			Height:        24,
			BaseSpeed:     3,
			SpeedPerLevel: 0.25,
			MaxSpeed:      9,
			Amplitude:     2,
			KillScore:     10,
			KillRunes:     1,
			Patterns:      append([]Pattern(nil), AllPatterns...),
		},
		Pickups: Pickups{
			Width:      20,
			Height:     20,
			DriftSpeed: 2,
			Lifetime:   300,
			Score:      5,
			Kinds:      append([]PickupKind(nil), AllPickupKinds...),
		},
		Projectiles: Projectiles{
			Width:    10,
			Height:   4,
			Speed:    9,
			Cooldown: 12,
		},
		Boss: Boss{
			Width:          80,
			Height:         80,
			Speed:          2,
			EnragedSpeed:   3.5,
			EnrageFraction: 0.5,
			RestOffset:     140,
			ChipDamage:     0.25,
			HitDamage:      4,
			KillScore:      250,
			KillRunes:      10,
		},
		Spawn: Spawn{
			EnemyCooldown:      75,
			EnemyCooldownStep:  5,
			EnemyCooldownFloor: 20,
			ItemCooldown:       420,
			ItemCooldownStep:   20,
			ItemCooldownFloor:  180,
			MaxEnemies:         4,
			MaxEnemiesPerLevel: 1,
			MaxEnemiesCap:      12,
		},
		Progression: Progression{
			ScorePerTick:     1,
			LevelEvery:       600,
			TransitionFrames: 120,
			BackgroundSpeed:  1.5,
		},
		Combat: Combat{Mode: CombatChip},
		Shop: Shop{
			ExtraLife: 30,
			Shield:    15,
			Weapon:    20,
		},
		Zones: []Zone{
			{Name: "Verdant Hollow", BossThreshold: 900, BossHP: 60, EnemySpeedScale: 1.0},
			{Name: "Ember Wastes", BossThreshold: 1100, BossHP: 80, EnemySpeedScale: 1.15},
			{Name: "Frost Spire", BossThreshold: 1300, BossHP: 100, EnemySpeedScale: 1.3},
			{Name: "Void Citadel", BossThreshold: 1500, BossHP: 130, EnemySpeedScale: 1.5},
		},
	}
}
