package sim

import (
	"fmt"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// Player is the controlled entity.
//
// Status flags each have their own countdown in frames. Shield and weapon
// buffs also grant invulnerability for at least as long as they last, so
// shielded and armed always imply invulnerable.
type Player struct {
	Box   core.Box
	Lives int
	Speed float64

	arena Arena

	invulnerable bool
	shielded     bool
	armed        bool
	invulnTimer  int
	shieldTimer  int
	weaponTimer  int
	justHit      bool

	hitGrace       int
	shieldDuration int
	weaponDuration int
	invulnDuration int
}

// NewPlayer places a player at cfg.X, vertically centered in the arena.
func NewPlayer(cfg config.Player, arena Arena) (*Player, error) {
	box := core.NewBox(cfg.X, arena.Height/2-cfg.Height/2, cfg.Width, cfg.Height)
	if !box.Valid() {
		return nil, fmt.Errorf("%w: player %gx%g", ErrInvalidBox, cfg.Width, cfg.Height)
	}
	return &Player{
		Box:            box.ClampInto(arena.Width, arena.Height),
		Lives:          cfg.Lives,
		Speed:          cfg.Speed,
		arena:          arena,
		hitGrace:       cfg.HitGrace,
		shieldDuration: cfg.ShieldDuration,
		weaponDuration: cfg.WeaponDuration,
		invulnDuration: cfg.InvulnerabilityDuration,
	}, nil
}

// Advance moves the player along every held axis at full speed, keeps the
// box inside the arena and counts the status timers down by one frame.
func (p *Player) Advance(in core.InputFrame) {
	p.justHit = false

	if in.Has(core.ActionUp) {
		p.Box.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		p.Box.Y += p.Speed
	}
	if in.Has(core.ActionLeft) {
		p.Box.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.Box.X += p.Speed
	}
	p.Box = p.Box.ClampInto(p.arena.Width, p.arena.Height)

	p.tick()
}

func (p *Player) tick() {
	if p.shieldTimer > 0 {
		p.shieldTimer--
		if p.shieldTimer == 0 {
			p.shielded = false
		}
	}
	if p.weaponTimer > 0 {
		p.weaponTimer--
		if p.weaponTimer == 0 {
			p.armed = false
		}
	}
	if p.invulnTimer > 0 {
		p.invulnTimer--
		if p.invulnTimer == 0 {
			p.invulnerable = false
			p.shielded = false
			p.armed = false
			p.shieldTimer = 0
			p.weaponTimer = 0
		}
	}
}

// ApplyHit costs one life unless the player is invulnerable.
// It reports whether a life was lost.
func (p *Player) ApplyHit() bool {
	if p.invulnerable {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.justHit = true
	p.grantInvulnerability(p.hitGrace)
	return true
}

// ApplyPickup applies the effect of a collected pickup or shop item.
func (p *Player) ApplyPickup(kind PickupKind) {
	switch kind {
	case config.PickupExtraLife:
		p.Lives++
	case config.PickupShield:
		p.shielded = true
		p.shieldTimer = max(p.shieldTimer, p.shieldDuration)
		p.grantInvulnerability(p.shieldDuration)
	case config.PickupWeapon:
		p.armed = true
		p.weaponTimer = max(p.weaponTimer, p.weaponDuration)
		p.grantInvulnerability(p.weaponDuration)
	case config.PickupInvulnerability:
		p.grantInvulnerability(p.invulnDuration)
	}
}

func (p *Player) grantInvulnerability(frames int) {
	if frames <= 0 {
		return
	}
	p.invulnerable = true
	p.invulnTimer = max(p.invulnTimer, frames)
}

// Invulnerable reports whether hits are currently ignored.
func (p *Player) Invulnerable() bool { return p.invulnerable }

// Shielded reports whether the shield buff is active.
func (p *Player) Shielded() bool { return p.shielded }

// Armed reports whether contact destroys enemies.
func (p *Player) Armed() bool { return p.armed }

// JustHit reports whether a life was lost since the last Advance.
func (p *Player) JustHit() bool { return p.justHit }

// Timers returns the remaining invulnerability, shield and weapon frames.
func (p *Player) Timers() (invuln, shield, weapon int) {
	return p.invulnTimer, p.shieldTimer, p.weaponTimer
}
