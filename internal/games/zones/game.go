// Package zones implements Zone Arcade: dodge and fight your way through
// themed zones, each guarded by a boss. The simulation lives in package sim;
// this package adapts it to the arcade platform and draws it.
package zones

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
	"github.com/vovakirdan/zone-arcade/internal/games/zones/sim"
	"github.com/vovakirdan/zone-arcade/internal/registry"
)

// Variant IDs.
const (
	IDContact = "zones"
	IDRanged  = "zones_ranged"
)

func init() {
	registry.Register(IDContact, func() registry.Game { return New(config.CombatChip) })
	registry.Register(IDRanged, func() registry.Game { return New(config.CombatProjectile) })
}

// Settings shared by every instance, set from the CLI before games are created.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config as is.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to every simulation.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func currentSettings() (string, config.DifficultyPreset, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return configPath, difficultyPreset, logger
}

// LoadConfig loads, adjusts and validates the configuration for a combat mode.
func LoadConfig(mode config.CombatMode) (config.Config, error) {
	path, preset, _ := currentSettings()

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}
	cfg.Combat.Mode = mode
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Game adapts a sim.Simulation to registry.Game.
// The session outlives Reset, so runes survive a restart.
type Game struct {
	mode    config.CombatMode
	session *sim.Session
	log     *log.Logger

	cfg     config.Config
	sim     *sim.Simulation
	last    sim.FrameResult
	paused  bool

	notice    string
	noticeTTL int
	loadErr   error
}

// New creates a game for a combat mode.
func New(mode config.CombatMode) *Game {
	return &Game{
		mode:    mode,
		session: sim.NewSession(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == config.CombatProjectile {
		return IDRanged
	}
	return IDContact
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == config.CombatProjectile {
		return "Zone Arcade: Ranged"
	}
	return "Zone Arcade"
}

// Reset discards the current run and starts a new one with the same session.
// The configuration is reloaded, so edits on disk take effect.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	_, _, l := currentSettings()
	g.log = l.With("game", g.ID())
	g.paused = false
	g.notice = ""
	g.noticeTTL = 0

	cfg, err := LoadConfig(g.mode)
	if err != nil {
		g.log.Warn("config rejected, using defaults", "err", err)
		g.loadErr = err
		cfg = config.DefaultConfig()
		cfg.Combat.Mode = g.mode
	} else {
		g.loadErr = nil
	}
	g.cfg = cfg

	opts := []sim.Option{sim.WithSession(g.session), sim.WithLogger(g.log)}
	if runtime.Seed != 0 {
		opts = append(opts, sim.WithSeed(runtime.Seed))
	}
	s, err := sim.New(cfg, opts...)
	if err != nil {
		// Defaults always validate; this is a programming error.
		g.log.Error("simulation rejected config", "err", err)
		g.loadErr = err
		g.sim = nil
		return
	}
	g.sim = s
	g.last = s.Snapshot()
	if g.loadErr != nil {
		g.setNotice("config error, defaults loaded", 240)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}
	if g.noticeTTL > 0 {
		g.noticeTTL--
		if g.noticeTTL == 0 {
			g.notice = ""
		}
	}

	if g.last.Phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.last.Phase == sim.PhaseZoneComplete {
		g.shop(in)
	}

	res, err := g.sim.Step(in)
	if err != nil {
		g.log.Error("step failed", "err", err)
		return core.StepResult{State: g.State()}
	}
	g.last = res
	g.handleEvents(res.Events)

	return core.StepResult{State: g.State()}
}

var shopKeys = []struct {
	action core.Action
	kind   sim.PickupKind
	label  string
}{
	{core.ActionBuyLife, config.PickupExtraLife, "extra life"},
	{core.ActionBuyShield, config.PickupShield, "shield"},
	{core.ActionBuyWeapon, config.PickupWeapon, "weapon"},
}

func (g *Game) shop(in core.InputFrame) {
	for _, k := range shopKeys {
		if !in.Has(k.action) {
			continue
		}
		res, err := g.sim.Purchase(k.kind)
		if err != nil {
			g.log.Error("purchase failed", "err", err)
			return
		}
		if res.Success {
			g.setNotice(fmt.Sprintf("bought %s for %d runes", k.label, res.Cost), 90)
		} else {
			g.setNotice(fmt.Sprintf("%s: %s", k.label, res.Reason), 90)
		}
	}
}

func (g *Game) handleEvents(events []sim.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case sim.BossSpawnedEvent:
			g.setNotice("BOSS APPROACHING: "+ev.ZoneName, 120)
		case sim.BossEnragedEvent:
			g.setNotice("THE BOSS IS ENRAGED", 90)
		case sim.LevelUpEvent:
			g.setNotice(fmt.Sprintf("level %d", ev.Level), 60)
		case sim.ZoneStartedEvent:
			g.setNotice("ENTERING "+ev.ZoneName, 120)
		case sim.GameOverEvent, sim.WonEvent, sim.ZoneCompleteEvent:
			// Overlays cover these.
		}
	}
}

func (g *Game) setNotice(text string, ttl int) {
	g.notice = text
	g.noticeTTL = ttl
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.HUD.Score,
		GameOver: g.sim == nil || g.last.Phase.Terminal(),
		Paused:   g.paused,
	}
}

// RunSummary reports the finished (or current) run for the run log.
func (g *Game) RunSummary() core.RunSummary {
	if g.sim == nil {
		return core.RunSummary{Outcome: "error"}
	}
	return g.sim.Summary()
}

// Session returns the session shared by every run of this game.
func (g *Game) Session() *sim.Session {
	return g.session
}

// SessionID returns the ID of the session shared by every run.
func (g *Game) SessionID() string {
	return g.session.ID.String()
}

// Last returns the most recent frame result.
func (g *Game) Last() sim.FrameResult {
	return g.last
}
