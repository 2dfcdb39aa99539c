package sim

import "github.com/vovakirdan/zone-arcade/internal/core"

// PlayerView is the read-only state of the player.
type PlayerView struct {
	Box          core.Box
	Lives        int
	Invulnerable bool
	Shielded     bool
	Armed        bool
	JustHit      bool
	InvulnFrames int
	ShieldFrames int
	WeaponFrames int
}

// EnemyView is the read-only state of an enemy.
type EnemyView struct {
	Box     core.Box
	Pattern Pattern
}

// PickupView is the read-only state of a pickup.
type PickupView struct {
	Box  core.Box
	Kind PickupKind
}

// ProjectileView is the read-only state of a projectile.
type ProjectileView struct {
	Box core.Box
}

// BossView is the read-only state of the boss. HP is clamped at zero.
type BossView struct {
	Box     core.Box
	HP      float64
	StartHP float64
	Phase   BossPhase
	InRange bool
}

// HUD carries the values shown around the arena.
type HUD struct {
	Lives     int
	Score     int
	Level     int
	ZoneName  string
	ZoneIndex int
	ZoneCount int
	HasBoss   bool
	BossHP    float64 // clamped at zero
	Runes     int     // session wallet
}

// FrameResult is the immutable outcome of one step. Slices are freshly
// allocated and safe to keep.
type FrameResult struct {
	Frame          int
	Phase          Phase
	Player         PlayerView
	Enemies        []EnemyView
	Pickups        []PickupView
	Projectiles    []ProjectileView
	Boss           *BossView
	HUD            HUD
	Background     float64 // cosmetic scroll offset in arena units
	TransitionLeft int     // frames left in PhaseZoneComplete
	Events         []Event
}

func (s *Simulation) snapshot() FrameResult {
	invuln, shield, weapon := s.player.Timers()
	res := FrameResult{
		Frame: s.frame,
		Phase: s.phase,
		Player: PlayerView{
			Box:          s.player.Box,
			Lives:        s.player.Lives,
			Invulnerable: s.player.Invulnerable(),
			Shielded:     s.player.Shielded(),
			Armed:        s.player.Armed(),
			JustHit:      s.player.JustHit(),
			InvulnFrames: invuln,
			ShieldFrames: shield,
			WeaponFrames: weapon,
		},
		Enemies:        make([]EnemyView, 0, len(s.enemies)),
		Pickups:        make([]PickupView, 0, len(s.pickups)),
		Projectiles:    make([]ProjectileView, 0, len(s.projectiles)),
		Background:     s.background,
		TransitionLeft: s.transitionLeft,
		HUD: HUD{
			Lives:     s.player.Lives,
			Score:     s.score,
			Level:     s.level,
			ZoneName:  s.currentZone().Name,
			ZoneIndex: s.zone,
			ZoneCount: len(s.cfg.Zones),
			Runes:     s.session.Runes,
		},
	}

	for _, e := range s.enemies {
		if e.Active() {
			res.Enemies = append(res.Enemies, EnemyView{Box: e.Box, Pattern: e.Pattern})
		}
	}
	for _, p := range s.pickups {
		if p.Active() {
			res.Pickups = append(res.Pickups, PickupView{Box: p.Box, Kind: p.Kind})
		}
	}
	for _, p := range s.projectiles {
		if p.Active() {
			res.Projectiles = append(res.Projectiles, ProjectileView{Box: p.Box})
		}
	}
	if s.boss != nil {
		res.Boss = &BossView{
			Box:     s.boss.Box,
			HP:      s.boss.DisplayHP(),
			StartHP: s.boss.StartHP,
			Phase:   s.boss.Phase,
			InRange: s.boss.InRange(),
		}
		res.HUD.HasBoss = true
		res.HUD.BossHP = s.boss.DisplayHP()
	}
	return res
}
