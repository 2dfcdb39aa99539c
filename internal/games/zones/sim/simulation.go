package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// Simulation owns one run. It is not safe for concurrent use: a single
// frame driver calls Step once per tick and hands the FrameResult to readers.
// A restart discards the Simulation and builds a new one.
type Simulation struct {
	cfg     config.Config
	arena   Arena
	session *Session
	log     *log.Logger
	notify  func(Event)
	rng     *rand.Rand
	seed    int64

	player      *Player
	enemies     []*Enemy
	pickups     []*Pickup
	projectiles []*Projectile
	boss        *Boss
	director    *SpawnDirector

	phase          Phase
	level          int
	zone           int
	score          int
	zoneStartScore int
	nextLevelAt    int
	bossAppeared   bool
	runRunes       int
	frame          int
	background     float64
	transitionLeft int
	fireCooldown   int

	outbox []Event
}

// New validates cfg and builds a fresh run at level 1 in the first zone.
func New(cfg config.Config, opts ...Option) (*Simulation, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.session == nil {
		o.session = NewSession()
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	rng := rand.New(rand.NewSource(o.seed))
	player, err := NewPlayer(cfg.Player, cfg.Arena)
	if err != nil {
		return nil, err
	}
	director, err := NewSpawnDirector(cfg, rng)
	if err != nil {
		return nil, err
	}
	director.SetLogger(o.logger)

	s := &Simulation{
		cfg:         cfg,
		arena:       cfg.Arena,
		session:     o.session,
		log:         o.logger,
		notify:      o.listener,
		rng:         rng,
		seed:        o.seed,
		player:      player,
		director:    director,
		phase:       PhaseRunning,
		level:       1,
		nextLevelAt: cfg.Progression.LevelEvery,
	}
	s.log.Debug("run started", "seed", o.seed, "mode", cfg.Combat.Mode, "zones", len(cfg.Zones))
	return s, nil
}

// Step advances the run by one frame.
//
// In PhaseZoneComplete it only counts the transition delay down and then
// starts the next zone. In a terminal phase it returns ErrInvalidTransition
// and changes nothing.
func (s *Simulation) Step(in core.InputFrame) (FrameResult, error) {
	switch s.phase {
	case PhaseGameOver, PhaseWon:
		return FrameResult{}, fmt.Errorf("%w: step in phase %s", ErrInvalidTransition, s.phase)
	case PhaseZoneComplete:
		s.frame++
		s.scrollBackground()
		s.transitionLeft--
		if s.transitionLeft <= 0 {
			s.startNextZone()
		}
		return s.finish(), nil
	}

	s.frame++

	// 1. Decor.
	s.scrollBackground()

	// 2. Player.
	s.player.Advance(in)
	s.fire(in)

	// 3. Boss trigger.
	if !s.bossAppeared && s.score-s.zoneStartScore >= s.currentZone().BossThreshold {
		s.spawnBoss()
	}

	// 4. Spawns.
	enemy, pickup := s.director.Tick(SpawnRequest{
		Level:          s.level,
		Zone:           s.zone,
		ZoneSpeedScale: s.currentZone().EnemySpeedScale,
		EnemiesAllowed: !s.bossAppeared && s.liveEnemies() < s.cfg.Spawn.MaxEnemiesAt(s.level),
	})
	if enemy != nil {
		s.enemies = append(s.enemies, enemy)
	}
	if pickup != nil {
		s.pickups = append(s.pickups, pickup)
	}

	// 5. Motion.
	s.advanceEntities()

	// 6. Collisions.
	s.resolveCollisions()
	if s.phase == PhaseGameOver {
		return s.finish(), nil
	}

	// 7. Boss death.
	if s.boss != nil && s.boss.Dead() {
		s.defeatBoss()
		if s.phase != PhaseBossFight && s.phase != PhaseRunning {
			return s.finish(), nil
		}
	}

	// 8. Prune.
	s.prune()

	// 9. Score and level milestones.
	s.score += s.cfg.Progression.ScorePerTick
	s.checkLevelMilestone()

	// 10. Snapshot.
	return s.finish(), nil
}

// Snapshot returns the current state without advancing. Pending events stay queued.
func (s *Simulation) Snapshot() FrameResult {
	return s.snapshot()
}

// Purchase buys a shop item with the session's runes and applies it to the
// player. The shop is only open in PhaseZoneComplete; any other phase returns
// ErrInvalidTransition. Insufficient runes are reported in the result.
func (s *Simulation) Purchase(kind PickupKind) (PurchaseResult, error) {
	if s.phase != PhaseZoneComplete {
		return PurchaseResult{NewCurrency: s.session.Runes}, fmt.Errorf("%w: purchase in phase %s", ErrInvalidTransition, s.phase)
	}

	res := Purchase(kind, s.cfg.Shop, s.session.Runes)
	if !res.Success {
		s.log.Debug("purchase rejected", "item", kind, "reason", res.Reason, "runes", s.session.Runes)
		return res, nil
	}

	s.session.Runes = res.NewCurrency
	s.player.ApplyPickup(kind)
	s.log.Info("purchase", "item", kind, "cost", res.Cost, "runes", res.NewCurrency)
	s.emit(ShopPurchaseEvent{Kind: kind, Cost: res.Cost})
	return res, nil
}

// Phase returns the current run phase.
func (s *Simulation) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// Level returns the current difficulty level.
func (s *Simulation) Level() int { return s.level }

// Zone returns the current zone index.
func (s *Simulation) Zone() int { return s.zone }

// Seed returns the RNG seed of the run.
func (s *Simulation) Seed() int64 { return s.seed }

// Session returns the session the run belongs to.
func (s *Simulation) Session() *Session { return s.session }

// Player exposes the player entity.
func (s *Simulation) Player() *Player { return s.player }

// Mode returns the combat mode of the run.
func (s *Simulation) Mode() CombatMode { return s.cfg.Combat.Mode }

// Summary describes the run for the run log.
func (s *Simulation) Summary() core.RunSummary {
	outcome := core.OutcomeInProgress
	switch s.phase {
	case PhaseGameOver:
		outcome = core.OutcomeGameOver
	case PhaseWon:
		outcome = core.OutcomeWon
	}
	return core.RunSummary{
		Score:   s.score,
		Level:   s.level,
		Zone:    s.zone,
		Runes:   s.runRunes,
		Frames:  s.frame,
		Outcome: outcome,
	}
}

func (s *Simulation) currentZone() config.Zone {
	return s.cfg.Zones[s.zone]
}

func (s *Simulation) scrollBackground() {
	if s.cfg.Progression.BackgroundSpeed == 0 {
		return
	}
	s.background = math.Mod(s.background+s.cfg.Progression.BackgroundSpeed, s.arena.Width)
}

func (s *Simulation) fire(in core.InputFrame) {
	if s.cfg.Combat.Mode != config.CombatProjectile {
		return
	}
	if s.fireCooldown > 0 {
		s.fireCooldown--
	}
	if !in.Has(core.ActionFire) || s.fireCooldown > 0 {
		return
	}

	pc := s.cfg.Projectiles
	box := core.NewBox(s.player.Box.Right(), s.player.Box.Y+s.player.Box.H/2-pc.Height/2, pc.Width, pc.Height)
	p, err := NewProjectile(box, pc.Speed)
	if err != nil {
		return
	}
	s.projectiles = append(s.projectiles, p)
	s.fireCooldown = pc.Cooldown
}

func (s *Simulation) spawnBoss() {
	zone := s.currentZone()
	boss, err := NewBoss(s.cfg.Boss, s.arena, zone.BossHP)
	if err != nil {
		s.log.Error("boss spawn failed", "zone", zone.Name, "err", err)
		return
	}
	s.boss = boss
	s.bossAppeared = true
	s.phase = PhaseBossFight
	s.log.Info("boss spawned", "zone", zone.Name, "hp", zone.BossHP, "score", s.score)
	s.emit(BossSpawnedEvent{ZoneName: zone.Name, HP: zone.BossHP})
}

func (s *Simulation) advanceEntities() {
	for _, e := range s.enemies {
		if e.Active() {
			e.Advance(s.arena)
		}
	}
	for _, p := range s.pickups {
		if p.Active() {
			p.Advance()
		}
	}
	for _, p := range s.projectiles {
		if p.Active() {
			p.Advance(s.arena)
		}
	}
	if s.boss != nil {
		s.boss.Advance(s.arena)
		if s.cfg.Combat.Mode == config.CombatChip && s.boss.InRange() {
			s.damageBoss(s.cfg.Boss.ChipDamage)
		}
	}
}

func (s *Simulation) damageBoss(amount float64) {
	if s.boss.Damage(amount) {
		s.log.Info("boss enraged", "hp", s.boss.HP)
		s.emit(BossEnragedEvent{})
	}
}

// resolveCollisions runs the pairwise checks in a fixed order. The armed
// flag is read once; invulnerability is re-read per contact, so at most one
// life is lost per frame.
func (s *Simulation) resolveCollisions() {
	armed := s.player.Armed()

	// Player x enemies.
	for _, e := range s.enemies {
		if !e.Active() || !s.player.Box.Overlaps(e.Box) {
			continue
		}
		if armed {
			e.Destroy()
			s.addKill(s.cfg.Enemies.KillScore, s.cfg.Enemies.KillRunes)
			continue
		}
		if s.hitPlayer() {
			return
		}
	}

	// Player x pickups.
	for _, p := range s.pickups {
		if !p.Active() || !s.player.Box.Overlaps(p.Box) {
			continue
		}
		if p.Consume() {
			s.player.ApplyPickup(p.Kind)
			s.score += s.cfg.Pickups.Score
			s.log.Debug("pickup", "kind", p.Kind)
		}
	}

	// Projectiles x enemies, then boss.
	for _, p := range s.projectiles {
		if !p.Active() {
			continue
		}
		for _, e := range s.enemies {
			if e.Active() && p.Box.Overlaps(e.Box) {
				e.Destroy()
				p.Hit()
				s.addKill(s.cfg.Enemies.KillScore, s.cfg.Enemies.KillRunes)
				break
			}
		}
		if p.Active() && s.boss != nil && p.Box.Overlaps(s.boss.Box) {
			p.Hit()
			s.damageBoss(s.cfg.Boss.HitDamage)
		}
	}

	// Player x boss. Armed contact harms neither side.
	if s.boss != nil && !armed && s.player.Box.Overlaps(s.boss.Box) {
		s.hitPlayer()
	}
}

// hitPlayer applies a hit and reports whether the run ended.
func (s *Simulation) hitPlayer() bool {
	if !s.player.ApplyHit() {
		return false
	}
	s.log.Debug("player hit", "lives", s.player.Lives)
	s.emit(PlayerHitEvent{LivesLeft: s.player.Lives})
	if s.player.Lives > 0 {
		return false
	}

	s.phase = PhaseGameOver
	s.session.recordRun(s.score)
	s.log.Info("game over", "score", s.score, "level", s.level, "zone", s.currentZone().Name)
	s.emit(GameOverEvent{FinalScore: s.score})
	return true
}

func (s *Simulation) addKill(score, runes int) {
	s.score += score
	s.runRunes += runes
	s.session.Runes += runes
}

func (s *Simulation) defeatBoss() {
	zone := s.currentZone()
	s.boss = nil
	s.addKill(s.cfg.Boss.KillScore, s.cfg.Boss.KillRunes)
	s.levelUp()

	next := s.zone + 1
	if next >= len(s.cfg.Zones) {
		s.phase = PhaseWon
		s.session.recordRun(s.score)
		s.log.Info("run won", "score", s.score, "level", s.level)
		s.emit(WonEvent{TotalScore: s.score})
		return
	}

	s.enemies = nil
	s.pickups = nil
	s.projectiles = nil
	s.phase = PhaseZoneComplete
	s.transitionLeft = s.cfg.Progression.TransitionFrames
	s.log.Info("zone complete", "zone", zone.Name, "next", s.cfg.Zones[next].Name, "score", s.score)
	s.emit(ZoneCompleteEvent{ZoneName: zone.Name, NextIndex: next})

	if s.transitionLeft <= 0 {
		s.startNextZone()
	}
}

func (s *Simulation) startNextZone() {
	s.zone++
	s.zoneStartScore = s.score
	s.bossAppeared = false
	s.transitionLeft = 0
	s.phase = PhaseRunning
	s.director.Reset(s.level, s.zone)

	zone := s.currentZone()
	s.log.Info("zone started", "zone", zone.Name, "index", s.zone, "level", s.level)
	s.emit(ZoneStartedEvent{ZoneName: zone.Name, Index: s.zone})
}

func (s *Simulation) checkLevelMilestone() {
	every := s.cfg.Progression.LevelEvery
	if every <= 0 {
		return
	}
	for s.score >= s.nextLevelAt {
		s.nextLevelAt += every
		s.levelUp()
	}
}

func (s *Simulation) levelUp() {
	s.level++
	s.log.Debug("level up", "level", s.level)
	s.emit(LevelUpEvent{Level: s.level})
}

func (s *Simulation) prune() {
	s.enemies = pruneGone(s.enemies, (*Enemy).Gone)
	s.pickups = pruneGone(s.pickups, (*Pickup).Gone)
	s.projectiles = pruneGone(s.projectiles, func(p *Projectile) bool { return !p.Active() })
}

func pruneGone[T any](items []*T, gone func(*T) bool) []*T {
	kept := items[:0]
	for _, it := range items {
		if !gone(it) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

func (s *Simulation) liveEnemies() int {
	n := 0
	for _, e := range s.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

func (s *Simulation) emit(e Event) {
	s.outbox = append(s.outbox, e)
	if s.notify != nil {
		s.notify(e)
	}
}

// finish builds the frame result and hands over the queued events.
func (s *Simulation) finish() FrameResult {
	res := s.snapshot()
	res.Events = s.outbox
	s.outbox = nil
	return res
}
