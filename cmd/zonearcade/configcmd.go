package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/games/zones"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new run would use, after the search
order and the difficulty preset are applied.

Search order: --config, ~/.zonearcade/configs/zones.yaml,
./configs/zones.yaml, then the built-in defaults.

Examples:
  zonearcade config > ~/.zonearcade/configs/zones.yaml
  zonearcade config --difficulty hard
  zonearcade config --defaults
  zonearcade config check ./my-zones.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a configuration file",
	Long: `Validate a zones.yaml file and report every problem found.
Without an argument the effective configuration is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigCheck,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.AddCommand(configCheckCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := zones.LoadConfig(config.CombatChip)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runConfigCheck(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		if _, err := zones.LoadConfig(config.CombatChip); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	}

	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d zones, %s combat)\n", args[0], len(cfg.Zones), cfg.Combat.Mode)
	return nil
}
