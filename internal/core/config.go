package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool // Run ended (lost or won)
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for the run log.
type RunSummary struct {
	Score   int
	Level   int
	Zone    int
	Runes   int
	Frames  int
	Outcome string
}

// Run outcomes.
const (
	OutcomeInProgress = "in_progress"
	OutcomeGameOver   = "game_over"
	OutcomeWon        = "won"
)
