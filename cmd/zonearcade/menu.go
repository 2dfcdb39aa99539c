package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/games/zones"
	"github.com/vovakirdan/zone-arcade/internal/platform/tui"
	"github.com/vovakirdan/zone-arcade/internal/registry"
	"github.com/vovakirdan/zone-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a variant picker menu",
	Long: `Start Zone Arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game ends, you return to the menu to play again.
Runes earned stay with the variant until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  zonearcade menu
  zonearcade menu --fps 30
  zonearcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	games := make(map[string]registry.Game)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if flagDifficulty == "" {
			preview, err := zones.LoadConfig(config.CombatChip)
			if err != nil {
				preview = config.DefaultConfig()
			}
			selection, err := tui.RunZonesModeSelector(preview.Zones, cfg)
			if err != nil {
				return err
			}
			if selection == nil {
				continue
			}
			zones.SetDifficultyPreset(string(selection.Preset))
		}

		game, ok := games[gameID]
		if !ok {
			game, err = registry.Create(gameID)
			if err != nil {
				logger.Error("cannot create game", "game", gameID, "err", err)
				continue
			}
			games[gameID] = game
		}

		// Fresh seed for each game unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
			logger.Error("game failed", "game", gameID, "err", err)
		}
	}
}
