package zones

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
	"github.com/vovakirdan/zone-arcade/internal/games/zones/sim"
)

// AutoplayOptions configures a headless run.
type AutoplayOptions struct {
	Seed      int64 // simulation seed
	InputSeed int64 // seed of the random player
	MaxFrames int
	Logger    *log.Logger
}

// AutoplayReport summarizes a headless run.
type AutoplayReport struct {
	Mode      config.CombatMode `yaml:"mode"`
	Seed      int64             `yaml:"seed"`
	InputSeed int64             `yaml:"input_seed"`
	Frames    int               `yaml:"frames"`
	Outcome   string            `yaml:"outcome"`
	Score     int               `yaml:"score"`
	Level     int               `yaml:"level"`
	Zone      string            `yaml:"zone"`
	ZoneIndex int               `yaml:"zone_index"`
	Lives     int               `yaml:"lives"`
	Runes     int               `yaml:"runes"`
	Purchases int               `yaml:"purchases"`
	Events    map[string]int    `yaml:"events"`
}

// Summary converts the report for the run log.
func (r AutoplayReport) Summary() core.RunSummary {
	return core.RunSummary{
		Score:   r.Score,
		Level:   r.Level,
		Zone:    r.ZoneIndex,
		Runes:   r.Runes,
		Frames:  r.Frames,
		Outcome: r.Outcome,
	}
}

// bot is a random player. It holds a direction for a while, then picks
// another, and fires whenever the mode allows it.
type bot struct {
	rng    *rand.Rand
	fire   bool
	dirs   []core.Action
	remain int
}

var botMoves = [][]core.Action{
	nil,
	{core.ActionUp},
	{core.ActionDown},
	{core.ActionLeft},
	{core.ActionRight},
	{core.ActionUp, core.ActionRight},
	{core.ActionDown, core.ActionRight},
	{core.ActionUp, core.ActionLeft},
	{core.ActionDown, core.ActionLeft},
}

func (b *bot) next() core.InputFrame {
	if b.remain <= 0 {
		b.dirs = botMoves[b.rng.Intn(len(botMoves))]
		b.remain = 10 + b.rng.Intn(30)
	}
	b.remain--

	in := core.InputOf(b.dirs...)
	if b.fire {
		in.Set(core.ActionFire)
	}
	return in
}

// shopOrder is what the bot tries to buy during a zone transition.
var shopOrder = []sim.PickupKind{config.PickupExtraLife, config.PickupShield, config.PickupWeapon}

// Autoplay runs a simulation with a random player until it ends or
// MaxFrames is reached.
func Autoplay(cfg config.Config, opts AutoplayOptions) (AutoplayReport, error) {
	logger := opts.Logger
	if logger == nil {
		_, _, logger = currentSettings()
	}

	events := make(map[string]int)
	s, err := sim.New(cfg,
		sim.WithSeed(opts.Seed),
		sim.WithLogger(logger),
		sim.WithListener(func(e sim.Event) { events[EventName(e)]++ }),
	)
	if err != nil {
		return AutoplayReport{}, err
	}

	b := &bot{
		rng:  rand.New(rand.NewSource(opts.InputSeed)),
		fire: cfg.Combat.Mode == config.CombatProjectile,
	}
	report := AutoplayReport{
		Mode:      cfg.Combat.Mode,
		Seed:      opts.Seed,
		InputSeed: opts.InputSeed,
		Events:    events,
	}

	res := s.Snapshot()
	shopped := false
	for res.Frame < opts.MaxFrames && !res.Phase.Terminal() {
		if res.Phase == sim.PhaseZoneComplete && !shopped {
			shopped = true
			for _, kind := range shopOrder {
				pr, err := s.Purchase(kind)
				if err != nil {
					return report, fmt.Errorf("autoplay: %w", err)
				}
				if pr.Success {
					report.Purchases++
					break
				}
			}
		}
		if res.Phase != sim.PhaseZoneComplete {
			shopped = false
		}

		res, err = s.Step(b.next())
		if err != nil {
			return report, fmt.Errorf("autoplay: frame %d: %w", res.Frame, err)
		}
	}

	sum := s.Summary()
	report.Frames = sum.Frames
	report.Outcome = sum.Outcome
	report.Score = sum.Score
	report.Level = sum.Level
	report.ZoneIndex = res.HUD.ZoneIndex
	report.Zone = res.HUD.ZoneName
	report.Lives = res.Player.Lives
	report.Runes = s.Session().Runes
	logger.Info("autoplay finished", "outcome", report.Outcome, "score", report.Score, "frames", report.Frames)
	return report, nil
}

// EventName returns the snake_case name of an event for reports and logs.
func EventName(e sim.Event) string {
	switch e.(type) {
	case sim.GameOverEvent:
		return "game_over"
	case sim.ZoneCompleteEvent:
		return "zone_complete"
	case sim.WonEvent:
		return "won"
	case sim.ShopPurchaseEvent:
		return "shop_purchase"
	case sim.ZoneStartedEvent:
		return "zone_started"
	case sim.BossSpawnedEvent:
		return "boss_spawned"
	case sim.BossEnragedEvent:
		return "boss_enraged"
	case sim.PlayerHitEvent:
		return "player_hit"
	case sim.LevelUpEvent:
		return "level_up"
	}
	return "unknown"
}
