package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	cfg := config.DefaultConfig()
	p, err := NewPlayer(cfg.Player, cfg.Arena)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewPlayerPosition(t *testing.T) {
	p := newTestPlayer(t)
	if p.Box.X != 60 || p.Box.Y != 400/2-14 {
		t.Errorf("player at (%v, %v), expected (60, 186)", p.Box.X, p.Box.Y)
	}
	if p.Lives != 3 {
		t.Errorf("lives = %d, expected 3", p.Lives)
	}
}

func TestNewPlayerRejectsBadSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Player.Width = -4
	if _, err := NewPlayer(cfg.Player, cfg.Arena); !errors.Is(err, ErrInvalidBox) {
		t.Errorf("expected ErrInvalidBox, got %v", err)
	}
}

func TestPlayerStaysInArena(t *testing.T) {
	p := newTestPlayer(t)
	rng := rand.New(rand.NewSource(3))
	moves := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	for frame := range 5000 {
		in := core.NewInputFrame()
		for _, a := range moves {
			if rng.Intn(3) == 0 {
				in.Set(a)
			}
		}
		// Long pushes against each wall.
		if frame%500 < 100 {
			in = core.InputOf(moves[(frame/500)%len(moves)])
		}
		p.Advance(in)

		if p.Box.X < 0 || p.Box.X > 800-p.Box.W || p.Box.Y < 0 || p.Box.Y > 400-p.Box.H {
			t.Fatalf("frame %d: player out of arena at (%v, %v)", frame, p.Box.X, p.Box.Y)
		}
	}
}

func TestPlayerDiagonalIsNotNormalized(t *testing.T) {
	p := newTestPlayer(t)
	x, y := p.Box.X, p.Box.Y
	p.Advance(core.InputOf(core.ActionDown, core.ActionRight))

	if p.Box.X != x+p.Speed || p.Box.Y != y+p.Speed {
		t.Errorf("diagonal move = (%v, %v), expected full speed on both axes", p.Box.X-x, p.Box.Y-y)
	}
}

func TestApplyHitGracePeriod(t *testing.T) {
	p := newTestPlayer(t)

	if !p.ApplyHit() {
		t.Fatal("first hit should cost a life")
	}
	if p.Lives != 2 || !p.Invulnerable() || !p.JustHit() {
		t.Fatalf("after hit: lives=%d invulnerable=%v justHit=%v", p.Lives, p.Invulnerable(), p.JustHit())
	}

	for i := 0; i < p.hitGrace-1; i++ {
		if p.ApplyHit() {
			t.Fatalf("hit during grace frame %d cost a life", i)
		}
		p.Advance(core.NewInputFrame())
	}
	if p.Lives != 2 {
		t.Fatalf("lives changed during grace: %d", p.Lives)
	}

	p.Advance(core.NewInputFrame())
	if p.Invulnerable() {
		t.Fatal("grace should end after hit_grace frames")
	}
	if !p.ApplyHit() || p.Lives != 1 {
		t.Errorf("hit after grace should cost a life, lives=%d", p.Lives)
	}
}

func TestStatusTimerDecay(t *testing.T) {
	cfg := config.DefaultConfig()
	tests := []struct {
		kind   PickupKind
		frames int
		flag   func(*Player) bool
	}{
		{config.PickupShield, cfg.Player.ShieldDuration, (*Player).Shielded},
		{config.PickupWeapon, cfg.Player.WeaponDuration, (*Player).Armed},
		{config.PickupInvulnerability, cfg.Player.InvulnerabilityDuration, (*Player).Invulnerable},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p := newTestPlayer(t)
			p.ApplyPickup(tt.kind)

			for i := 0; i < tt.frames-1; i++ {
				p.Advance(core.NewInputFrame())
				if !tt.flag(p) {
					t.Fatalf("flag cleared early after %d frames", i+1)
				}
				if !p.Invulnerable() {
					t.Fatalf("buff without invulnerability after %d frames", i+1)
				}
			}
			p.Advance(core.NewInputFrame())
			if tt.flag(p) || p.Invulnerable() || p.Shielded() || p.Armed() {
				t.Errorf("flags should clear after exactly %d frames", tt.frames)
			}
		})
	}
}

func TestPickupInvariantWithMixedBuffs(t *testing.T) {
	p := newTestPlayer(t)
	p.ApplyHit()
	p.ApplyPickup(config.PickupShield)
	p.Advance(core.NewInputFrame())
	p.ApplyPickup(config.PickupWeapon)

	for range 1000 {
		if (p.Shielded() || p.Armed()) && !p.Invulnerable() {
			t.Fatal("sub-flag set without invulnerability")
		}
		p.Advance(core.NewInputFrame())
	}
}

func TestApplyPickupExtraLife(t *testing.T) {
	p := newTestPlayer(t)
	p.ApplyPickup(config.PickupExtraLife)
	if p.Lives != 4 {
		t.Errorf("lives = %d, expected 4", p.Lives)
	}
	if p.Invulnerable() {
		t.Error("extra life should not grant invulnerability")
	}
}
