package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
	"github.com/vovakirdan/zone-arcade/internal/games/zones"
	"github.com/vovakirdan/zone-arcade/internal/platform/tui"
	"github.com/vovakirdan/zone-arcade/internal/registry"
	"github.com/vovakirdan/zone-arcade/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing Zone Arcade. The default variant is "zones"
(contact combat); "zones_ranged" fights bosses with projectiles.

Controls:
  Arrows/WASD  - Move
  Space/F      - Fire (ranged variant)
  1/2/3        - Buy extra life/shield/weapon between zones
  P/Esc        - Pause
  R            - Restart (after the run ends)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Without --difficulty a difficulty picker is shown first.

Examples:
  zonearcade play
  zonearcade play zones_ranged --difficulty easy
  zonearcade play --config ./my-zones.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the run when the config file changes")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := zones.IDContact
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'zonearcade list' to see available variants", gameID)
	}

	cfg := runtimeConfig()

	if flagDifficulty == "" {
		preview, err := zones.LoadConfig(config.CombatChip)
		if err != nil {
			preview = config.DefaultConfig()
		}
		selection, err := tui.RunZonesModeSelector(preview.Zones, cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if selection == nil {
			return nil
		}
		zones.SetDifficultyPreset(string(selection.Preset))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var opts []tui.ModelOption
	opts = append(opts, tui.WithLogger(logger))
	if flagWatch {
		w, err := watchConfig()
		if err != nil {
			return fmt.Errorf("cannot watch config: %w", err)
		}
		defer w.Close()
		opts = append(opts, tui.WithConfigWatch(w, checkConfig))
	}

	if err := tui.Run(game, store, cfg, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// watchConfig watches --config, or the default config directories that exist.
func watchConfig() (*config.Watcher, error) {
	if flagConfig != "" {
		return config.WatchFile(flagConfig)
	}

	var dirs []string
	for _, dir := range []string{config.UserConfigDir(), filepath.Join(".", "configs")} {
		if dir == "" || dir == "." {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no config file or directory to watch, pass --config")
	}
	return config.WatchDirs(dirs...)
}

// checkConfig reports whether the configuration on disk can start a run.
func checkConfig() error {
	_, err := zones.LoadConfig(config.CombatChip)
	return err
}
