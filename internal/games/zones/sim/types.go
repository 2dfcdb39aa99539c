// Package sim is the real-time simulation of Zone Arcade: entity motion,
// collision resolution, timed status effects, spawning and the
// level/zone/boss progression state machine.
//
// The package is deterministic for a given seed and input sequence and
// has no knowledge of rendering or terminals.
package sim

import (
	"errors"

	"github.com/vovakirdan/zone-arcade/internal/config"
)

// Aliases for the enumerations shared with the configuration tables.
type (
	Arena      = config.Arena
	Pattern    = config.Pattern
	PickupKind = config.PickupKind
	CombatMode = config.CombatMode
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in the current phase.
	ErrInvalidTransition = errors.New("sim: invalid transition")
	// ErrInvalidBox is returned when an entity is constructed with a non-positive size.
	ErrInvalidBox = errors.New("sim: invalid box")
)

// Phase is the run state of a Simulation.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseBossFight
	PhaseZoneComplete // transition delay before the next zone
	PhaseGameOver
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseBossFight:
		return "boss_fight"
	case PhaseZoneComplete:
		return "zone_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}
