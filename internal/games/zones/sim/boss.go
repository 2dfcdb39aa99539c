package sim

import (
	"fmt"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// BossPhase is the boss behavior phase. It only moves forward.
type BossPhase int

const (
	BossNormal BossPhase = iota
	BossEnraged
)

func (p BossPhase) String() string {
	if p == BossEnraged {
		return "enraged"
	}
	return "normal"
}

// Boss enters from the leading edge, settles in a resting band and patrols vertically.
type Boss struct {
	Box     core.Box
	HP      float64
	StartHP float64
	Phase   BossPhase

	speed          float64
	enragedSpeed   float64
	enrageFraction float64
	restX          float64
	dir            int
	inRange        bool
}

// NewBoss spawns a boss just outside the right edge, vertically centered.
func NewBoss(cfg config.Boss, arena Arena, hp float64) (*Boss, error) {
	box := core.NewBox(arena.Width, arena.Height/2-cfg.Height/2, cfg.Width, cfg.Height)
	if !box.Valid() {
		return nil, fmt.Errorf("%w: boss %gx%g", ErrInvalidBox, cfg.Width, cfg.Height)
	}
	restX := arena.Width - cfg.RestOffset - cfg.Width
	if restX < 0 {
		restX = 0
	}
	return &Boss{
		Box:            box,
		HP:             hp,
		StartHP:        hp,
		speed:          cfg.Speed,
		enragedSpeed:   cfg.EnragedSpeed,
		enrageFraction: cfg.EnrageFraction,
		restX:          restX,
		dir:            1,
	}, nil
}

// Speed returns the current movement speed.
func (b *Boss) Speed() float64 {
	if b.Phase == BossEnraged && b.enragedSpeed > 0 {
		return b.enragedSpeed
	}
	return b.speed
}

// Advance approaches the resting x position and bounces vertically.
func (b *Boss) Advance(arena Arena) {
	speed := b.Speed()

	if !b.inRange {
		b.Box.X -= speed
		if b.Box.X <= b.restX {
			b.Box.X = b.restX
			b.inRange = true
		}
	}

	b.Box.Y += float64(b.dir) * speed / 2
	if b.Box.Y <= 0 {
		b.Box.Y = 0
		b.dir = 1
	} else if b.Box.Bottom() >= arena.Height {
		b.Box.Y = arena.Height - b.Box.H
		b.dir = -1
	}
}

// InRange reports whether the boss has reached its resting band.
func (b *Boss) InRange() bool { return b.inRange }

// Damage removes hp and reports whether this call enraged the boss.
func (b *Boss) Damage(amount float64) bool {
	b.HP -= amount
	if b.Phase == BossNormal && b.HP < b.enrageFraction*b.StartHP {
		b.Phase = BossEnraged
		return true
	}
	return false
}

// Dead reports whether the boss has been defeated.
func (b *Boss) Dead() bool { return b.HP <= 0 }

// DisplayHP returns hp clamped at zero.
func (b *Boss) DisplayHP() float64 { return max(b.HP, 0) }
