// zonearcade runs Zone Arcade, a side-scrolling zone crawler, in the terminal.
//
// Usage:
//
//	zonearcade list              - List available variants
//	zonearcade play [variant]    - Play a variant (default: zones)
//	zonearcade menu              - Start menu to pick variants interactively
//	zonearcade serve             - Start SSH server for remote play
//	zonearcade scores <variant>  - Show high scores and recent runs
//	zonearcade simulate          - Run a headless game with a random player
//	zonearcade config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.zonearcade/scores.db)
//	--config <path>        - Use a custom zones.yaml
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file (play/menu default: ~/.zonearcade/zonearcade.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/games/zones"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zonearcade",
	Short: "Zone Arcade - fight through themed zones in your terminal",
	Long: `Zone Arcade is a side-scrolling arcade game for the terminal.
Dodge enemies, grab pickups and beat the boss guarding each zone.

Available commands:
  list      - Show all available variants
  play      - Play a variant directly
  menu      - Interactive variant picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  simulate  - Headless run with a random player
  config    - Print or check the configuration

Examples:
  zonearcade play
  zonearcade play zones_ranged --difficulty hard
  zonearcade menu
  zonearcade serve --ssh :2222
  zonearcade simulate --seed 42 --frames 20000`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zonearcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom zones.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging and the game settings shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// The alt screen owns the terminal, so UI commands log to a file.
	var out io.Writer = os.Stderr
	path := flagLogFile
	if path == "" && drawsUI(cmd) {
		path = defaultLogPath()
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	} else if drawsUI(cmd) {
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "zonearcade",
		Level:           level,
	})

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	zones.SetConfigPath(flagConfig)
	zones.SetDifficultyPreset(flagDifficulty)
	zones.SetLogger(logger)
	return nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zonearcade", "zonearcade.log")
}

func drawsUI(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "play", "menu":
		return true
	}
	return false
}
