package sim

import (
	"testing"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// quietConfig returns the defaults with spawning pushed far into the future,
// so tests place every entity themselves.
func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Spawn.EnemyCooldown = 100000
	cfg.Spawn.ItemCooldown = 100000
	return cfg
}

func newTestSim(t *testing.T, mutate func(*config.Config), opts ...Option) *Simulation {
	t.Helper()
	cfg := quietConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, append([]Option{WithSeed(7)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// enemyAt places a horizontal enemy at the given position.
func enemyAt(t *testing.T, s *Simulation, x, y float64) *Enemy {
	t.Helper()
	e, err := NewEnemy(core.NewBox(x, y, s.cfg.Enemies.Width, s.cfg.Enemies.Height), 3, config.PatternHorizontal, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	s.enemies = append(s.enemies, e)
	return e
}

// bossInRange places the zone boss at its resting band, centered on y.
func bossInRange(t *testing.T, s *Simulation, x, y float64) *Boss {
	t.Helper()
	b, err := NewBoss(s.cfg.Boss, s.arena, s.currentZone().BossHP)
	if err != nil {
		t.Fatal(err)
	}
	b.Box.X, b.Box.Y = x, y
	b.restX = x
	b.inRange = true
	s.boss = b
	s.bossAppeared = true
	s.phase = PhaseBossFight
	return b
}

func step(t *testing.T, s *Simulation, in core.InputFrame) FrameResult {
	t.Helper()
	res, err := s.Step(in)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return res
}

func countEvents[E Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(E); ok {
			n++
		}
	}
	return n
}
