// Package config provides YAML-based game configuration loading,
// validation and difficulty management for Zone Arcade.
package config

// Config contains every gameplay parameter of a run.
// Colors and glyphs are presentation concerns and live with the renderer.
type Config struct {
	Arena       Arena       `yaml:"arena"`
	Player      Player      `yaml:"player"`
	Enemies     Enemies     `yaml:"enemies"`
	Pickups     Pickups     `yaml:"pickups"`
	Projectiles Projectiles `yaml:"projectiles"`
	Boss        Boss        `yaml:"boss"`
	Spawn       Spawn       `yaml:"spawn"`
	Progression Progression `yaml:"progression"`
	Combat      Combat      `yaml:"combat"`
	Shop        Shop        `yaml:"shop"`
	Zones       []Zone      `yaml:"zones"`
}

// Arena is the fixed-size play field in arena units.
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player defines the player entity and its status timers (in frames).
type Player struct {
	X                       float64 `yaml:"x"`
	Width                   float64 `yaml:"width"`
	Height                  float64 `yaml:"height"`
	Speed                   float64 `yaml:"speed"`
	Lives                   int     `yaml:"lives"`
	HitGrace                int     `yaml:"hit_grace"`
	ShieldDuration          int     `yaml:"shield_duration"`
	WeaponDuration          int     `yaml:"weapon_duration"`
	InvulnerabilityDuration int     `yaml:"invulnerability_duration"`
}

// Enemies defines spawned adversaries.
type Enemies struct {
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	BaseSpeed     float64   `yaml:"base_speed"`
	SpeedPerLevel float64   `yaml:"speed_per_level"`
	MaxSpeed      float64   `yaml:"max_speed"`
	Amplitude     float64   `yaml:"amplitude"`
	KillScore     int       `yaml:"kill_score"`
	KillRunes     int       `yaml:"kill_runes"`
	Patterns      []Pattern `yaml:"patterns"`
}

// Pickups defines collectible power-ups.
type Pickups struct {
	Width      float64      `yaml:"width"`
	Height     float64      `yaml:"height"`
	DriftSpeed float64      `yaml:"drift_speed"` // 0 = stationary
	Lifetime   int          `yaml:"lifetime"`    // frames, stationary pickups only
	Score      int          `yaml:"score"`
	Kinds      []PickupKind `yaml:"kinds"`
}

// Projectiles defines player-fired shots (projectile combat mode).
type Projectiles struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"` // frames between shots
}

// Boss defines the per-zone boss encounter. HP comes from the zone table.
type Boss struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	EnragedSpeed   float64 `yaml:"enraged_speed"`
	EnrageFraction float64 `yaml:"enrage_fraction"`
	RestOffset     float64 `yaml:"rest_offset"` // distance from right edge of the resting band
	ChipDamage     float64 `yaml:"chip_damage"` // hp per frame, chip mode
	HitDamage      float64 `yaml:"hit_damage"`  // hp per projectile, projectile mode
	KillScore      int     `yaml:"kill_score"`
	KillRunes      int     `yaml:"kill_runes"`
}

// Spawn defines SpawnDirector cooldowns (frames).
// The reset value ramps down by Step per level and per zone, never below Floor.
type Spawn struct {
	EnemyCooldown        int    `yaml:"enemy_cooldown"`
	EnemyCooldownStep    int    `yaml:"enemy_cooldown_step"`
	EnemyCooldownFloor   int    `yaml:"enemy_cooldown_floor"`
	EnemyCooldownFormula string `yaml:"enemy_cooldown_formula,omitempty"`
	ItemCooldown         int    `yaml:"item_cooldown"`
	ItemCooldownStep     int    `yaml:"item_cooldown_step"`
	ItemCooldownFloor    int    `yaml:"item_cooldown_floor"`
	ItemCooldownFormula  string `yaml:"item_cooldown_formula,omitempty"`
	MaxEnemies           int    `yaml:"max_enemies"`
	MaxEnemiesPerLevel   int    `yaml:"max_enemies_per_level"`
	MaxEnemiesCap        int    `yaml:"max_enemies_cap"`
}

// Progression defines score ticks, level milestones and zone transitions.
type Progression struct {
	ScorePerTick     int     `yaml:"score_per_tick"`
	LevelEvery       int     `yaml:"level_every"`
	TransitionFrames int     `yaml:"transition_frames"`
	BackgroundSpeed  float64 `yaml:"background_speed"`
}

// CombatMode selects the boss damage model. Modes are never blended.
type CombatMode string

const (
	// CombatChip drains boss hp every frame once it reached its resting band.
	CombatChip CombatMode = "chip"
	// CombatProjectile drains boss hp per projectile hit.
	CombatProjectile CombatMode = "projectile"
)

// Combat selects the combat mode.
type Combat struct {
	Mode CombatMode `yaml:"mode"`
}

// Shop is the fixed price table in runes.
type Shop struct {
	ExtraLife int `yaml:"extra_life"`
	Shield    int `yaml:"shield"`
	Weapon    int `yaml:"weapon"`
}

// Price returns the price of a shop item and whether it is sold.
func (s Shop) Price(kind PickupKind) (int, bool) {
	switch kind {
	case PickupExtraLife:
		return s.ExtraLife, true
	case PickupShield:
		return s.Shield, true
	case PickupWeapon:
		return s.Weapon, true
	default:
		return 0, false
	}
}

// Zone is one row of the zone table: a themed boss gate.
type Zone struct {
	Name            string  `yaml:"name"`
	BossThreshold   int     `yaml:"boss_threshold"` // points scored inside the zone
	BossHP          float64 `yaml:"boss_hp"`
	EnemySpeedScale float64 `yaml:"enemy_speed_scale"`
}

// Pattern is an enemy movement pattern.
type Pattern string

const (
	PatternHorizontal     Pattern = "horizontal"
	PatternSinusoidal     Pattern = "sinusoidal"
	PatternVerticalBounce Pattern = "vertical_bounce"
)

// AllPatterns lists every known movement pattern.
var AllPatterns = []Pattern{PatternHorizontal, PatternSinusoidal, PatternVerticalBounce}

// PickupKind is the type tag of a pickup or shop item.
type PickupKind string

const (
	PickupExtraLife       PickupKind = "extra_life"
	PickupShield          PickupKind = "shield"
	PickupWeapon          PickupKind = "weapon"
	PickupInvulnerability PickupKind = "invulnerability"
)

// AllPickupKinds lists every known pickup kind.
var AllPickupKinds = []PickupKind{PickupExtraLife, PickupShield, PickupWeapon, PickupInvulnerability}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
