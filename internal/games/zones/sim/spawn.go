package sim

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// SpawnDirector decides when enemies and pickups enter the arena.
//
// Two countdowns run independently. A countdown at zero spawns as soon as
// spawning is permitted and is then reset from its ramp; otherwise it
// decrements once per frame.
type SpawnDirector struct {
	rng     *rand.Rand
	arena   Arena
	enemies config.Enemies
	pickups config.Pickups

	enemyRamp *config.Ramp
	itemRamp  *config.Ramp

	enemyCooldown int
	itemCooldown  int

	log    *log.Logger
	warned map[*config.Ramp]bool
}

// SpawnRequest is the run state a director tick depends on.
type SpawnRequest struct {
	Level          int
	Zone           int
	ZoneSpeedScale float64
	EnemiesAllowed bool // false once the boss appeared or at the enemy cap
}

// NewSpawnDirector builds a director with both countdowns primed for level 1, zone 0.
func NewSpawnDirector(cfg config.Config, rng *rand.Rand) (*SpawnDirector, error) {
	enemyRamp, err := cfg.Spawn.EnemyRamp()
	if err != nil {
		return nil, err
	}
	itemRamp, err := cfg.Spawn.ItemRamp()
	if err != nil {
		return nil, err
	}
	d := &SpawnDirector{
		rng:       rng,
		arena:     cfg.Arena,
		enemies:   cfg.Enemies,
		pickups:   cfg.Pickups,
		enemyRamp: enemyRamp,
		itemRamp:  itemRamp,
		log:       discardLogger(),
		warned:    make(map[*config.Ramp]bool),
	}
	d.Reset(1, 0)
	return d, nil
}

// Reset primes both countdowns for a level and zone.
func (d *SpawnDirector) Reset(level, zone int) {
	d.enemyCooldown = d.cooldown("enemy", d.enemyRamp, level, zone)
	d.itemCooldown = d.cooldown("item", d.itemRamp, level, zone)
}

// SetLogger sets where formula failures are reported.
func (d *SpawnDirector) SetLogger(l *log.Logger) {
	if l == nil {
		l = discardLogger()
	}
	d.log = l
}

// cooldown reads a ramp and warns once if its formula has failed.
func (d *SpawnDirector) cooldown(name string, r *config.Ramp, level, zone int) int {
	v := r.At(level, zone)
	if err := r.Err(); err != nil && !d.warned[r] {
		d.warned[r] = true
		d.log.Warn("cooldown formula failed, using the linear ramp", "ramp", name, "level", level, "zone", zone, "err", err)
	}
	return v
}

// Cooldowns returns the current enemy and item countdowns.
func (d *SpawnDirector) Cooldowns() (enemy, item int) {
	return d.enemyCooldown, d.itemCooldown
}

// Tick advances both countdowns and returns any entities spawned this frame.
func (d *SpawnDirector) Tick(req SpawnRequest) (*Enemy, *Pickup) {
	var enemy *Enemy
	if d.enemyCooldown <= 0 {
		if req.EnemiesAllowed {
			enemy = d.spawnEnemy(req)
			d.enemyCooldown = d.cooldown("enemy", d.enemyRamp, req.Level, req.Zone)
		}
	} else {
		d.enemyCooldown--
	}

	var pickup *Pickup
	if d.itemCooldown <= 0 {
		if len(d.pickups.Kinds) > 0 {
			pickup = d.spawnPickup()
			d.itemCooldown = d.cooldown("item", d.itemRamp, req.Level, req.Zone)
		}
	} else {
		d.itemCooldown--
	}

	return enemy, pickup
}

func (d *SpawnDirector) spawnEnemy(req SpawnRequest) *Enemy {
	w, h := d.enemies.Width, d.enemies.Height
	box := core.NewBox(d.arena.Width, d.randomY(h), w, h)
	pattern := d.enemies.Patterns[d.rng.Intn(len(d.enemies.Patterns))]
	dir := 1
	if d.rng.Intn(2) == 0 {
		dir = -1
	}
	speed := d.enemies.SpeedAt(req.Level, req.ZoneSpeedScale)

	// Sizes are validated with the config.
	e, _ := NewEnemy(box, speed, pattern, dir, d.enemies.Amplitude)
	return e
}

func (d *SpawnDirector) spawnPickup() *Pickup {
	w, h := d.pickups.Width, d.pickups.Height
	kind := d.pickups.Kinds[d.rng.Intn(len(d.pickups.Kinds))]

	x, ttl := d.arena.Width, 0
	if d.pickups.DriftSpeed == 0 {
		x = d.rng.Float64() * max(d.arena.Width-w, 0)
		ttl = d.pickups.Lifetime
	}
	p, _ := NewPickup(core.NewBox(x, d.randomY(h), w, h), kind, d.pickups.DriftSpeed, ttl)
	return p
}

func (d *SpawnDirector) randomY(h float64) float64 {
	return d.rng.Float64() * max(d.arena.Height-h, 0)
}
