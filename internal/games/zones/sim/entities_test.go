package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

var testArena = Arena{Width: 800, Height: 400}

func TestEnemyPatterns(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		e, _ := NewEnemy(core.NewBox(500, 100, 24, 24), 3, config.PatternHorizontal, 1, 2)
		e.Advance(testArena)
		if e.Box.X != 497 || e.Box.Y != 100 {
			t.Errorf("horizontal enemy at (%v, %v), expected (497, 100)", e.Box.X, e.Box.Y)
		}
	})

	t.Run("vertical bounce reverses", func(t *testing.T) {
		e, _ := NewEnemy(core.NewBox(500, 375, 24, 24), 4, config.PatternVerticalBounce, 1, 0)
		e.Advance(testArena)
		if e.Box.Bottom() != 400 || e.Dir != -1 {
			t.Fatalf("enemy should hit the floor and turn, y=%v dir=%d", e.Box.Y, e.Dir)
		}
		e.Advance(testArena)
		if e.Box.Y != 374 {
			t.Errorf("enemy should move up by speed/2, y=%v", e.Box.Y)
		}
	})

	t.Run("sinusoidal stays in arena", func(t *testing.T) {
		e, _ := NewEnemy(core.NewBox(800, 0, 24, 24), 2, config.PatternSinusoidal, 1, 30)
		for range 400 {
			e.Advance(testArena)
			if e.Box.Y < 0 || e.Box.Bottom() > 400 {
				t.Fatalf("sinusoidal enemy left the arena: y=%v", e.Box.Y)
			}
		}
	})
}

func TestEnemyRetiresOffTrailingEdge(t *testing.T) {
	e, _ := NewEnemy(core.NewBox(1, 100, 24, 24), 3, config.PatternHorizontal, 1, 0)
	for range 9 {
		if e.Gone() {
			t.Fatalf("enemy retired while still visible at x=%v", e.Box.X)
		}
		e.Advance(testArena)
	}
	if !e.Gone() {
		t.Errorf("enemy at x=%v should be retired", e.Box.X)
	}
}

func TestNewEntitiesRejectBadBoxes(t *testing.T) {
	bad := core.NewBox(0, 0, 0, 5)
	if _, err := NewEnemy(bad, 1, config.PatternHorizontal, 1, 0); !errors.Is(err, ErrInvalidBox) {
		t.Errorf("enemy: expected ErrInvalidBox, got %v", err)
	}
	if _, err := NewPickup(bad, config.PickupShield, 1, 0); !errors.Is(err, ErrInvalidBox) {
		t.Errorf("pickup: expected ErrInvalidBox, got %v", err)
	}
	if _, err := NewProjectile(bad, 1); !errors.Is(err, ErrInvalidBox) {
		t.Errorf("projectile: expected ErrInvalidBox, got %v", err)
	}
	cfg := config.DefaultConfig().Boss
	cfg.Height = -1
	if _, err := NewBoss(cfg, testArena, 10); !errors.Is(err, ErrInvalidBox) {
		t.Errorf("boss: expected ErrInvalidBox, got %v", err)
	}
}

func TestBossApproachesRestingBand(t *testing.T) {
	cfg := config.DefaultConfig().Boss
	b, err := NewBoss(cfg, testArena, 60)
	if err != nil {
		t.Fatal(err)
	}
	restX := testArena.Width - cfg.RestOffset - cfg.Width

	frames := 0
	for !b.InRange() {
		b.Advance(testArena)
		frames++
		if frames > 1000 {
			t.Fatal("boss never reached its resting band")
		}
	}
	if b.Box.X != restX {
		t.Errorf("boss rests at x=%v, expected %v", b.Box.X, restX)
	}
	for range 500 {
		b.Advance(testArena)
		if b.Box.X != restX {
			t.Fatal("boss left its resting band")
		}
		if b.Box.Y < 0 || b.Box.Bottom() > testArena.Height {
			t.Fatalf("boss left the arena vertically: y=%v", b.Box.Y)
		}
	}
}

func TestBossEnrageIsOneWay(t *testing.T) {
	cfg := config.DefaultConfig().Boss
	b, _ := NewBoss(cfg, testArena, 100)

	if b.Damage(50) {
		t.Fatal("hp at exactly half should not enrage")
	}
	if !b.Damage(1) {
		t.Fatal("hp below half should enrage")
	}
	if b.Phase != BossEnraged || b.Speed() != cfg.EnragedSpeed {
		t.Fatalf("phase=%v speed=%v", b.Phase, b.Speed())
	}

	for range 100 {
		b.Advance(testArena)
		if b.Damage(0.1) {
			t.Fatal("enrage reported twice")
		}
		if b.Phase != BossEnraged {
			t.Fatal("boss returned to normal")
		}
	}
}

func TestBossDisplayHPClamps(t *testing.T) {
	b, _ := NewBoss(config.DefaultConfig().Boss, testArena, 3)
	b.Damage(5)
	if !b.Dead() {
		t.Error("boss should be dead")
	}
	if b.DisplayHP() != 0 {
		t.Errorf("DisplayHP = %v, expected 0", b.DisplayHP())
	}
}

func TestPickupConsumedOnce(t *testing.T) {
	p, _ := NewPickup(core.NewBox(10, 10, 20, 20), config.PickupExtraLife, 2, 0)
	if !p.Consume() {
		t.Fatal("first consume should succeed")
	}
	if p.Consume() {
		t.Error("inactive pickup consumed twice")
	}
	if !p.Gone() {
		t.Error("consumed pickup should be pruned")
	}
}

func TestStationaryPickupExpires(t *testing.T) {
	p, _ := NewPickup(core.NewBox(300, 100, 20, 20), config.PickupShield, 0, 3)
	for i := range 2 {
		p.Advance()
		if !p.Active() {
			t.Fatalf("expired after %d frames", i+1)
		}
	}
	p.Advance()
	if p.Active() {
		t.Error("pickup should expire after its lifetime")
	}
	if p.Box.X != 300 {
		t.Errorf("stationary pickup moved to x=%v", p.Box.X)
	}
}

func TestProjectileLeavesArena(t *testing.T) {
	p, _ := NewProjectile(core.NewBox(785, 100, 10, 4), 9)
	p.Advance(testArena)
	if !p.Active() {
		t.Fatal("projectile at x=794 is still inside")
	}
	p.Advance(testArena)
	if p.Active() {
		t.Error("projectile past the right edge should deactivate")
	}
}
