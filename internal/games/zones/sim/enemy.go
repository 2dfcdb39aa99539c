package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// sinePeriod is the horizontal distance (arena units) per radian of a sinusoidal enemy.
const sinePeriod = 15.0

// Enemy drifts toward the trailing (left) edge following a fixed pattern.
type Enemy struct {
	Box       core.Box
	Speed     float64
	Pattern   Pattern
	Dir       int // vertical direction for VerticalBounce, -1 or +1
	Amplitude float64

	active bool
}

// NewEnemy creates an enemy. The pattern never changes afterwards.
func NewEnemy(box core.Box, speed float64, pattern Pattern, dir int, amplitude float64) (*Enemy, error) {
	if !box.Valid() {
		return nil, fmt.Errorf("%w: enemy %gx%g", ErrInvalidBox, box.W, box.H)
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return &Enemy{
		Box:       box,
		Speed:     speed,
		Pattern:   pattern,
		Dir:       dir,
		Amplitude: amplitude,
		active:    true,
	}, nil
}

// Advance moves the enemy one frame.
func (e *Enemy) Advance(arena Arena) {
	e.Box.X -= e.Speed

	switch e.Pattern {
	case config.PatternSinusoidal:
		e.Box.Y += math.Sin(e.Box.X/sinePeriod) * e.Amplitude
		e.Box.Y = core.ClampF(e.Box.Y, 0, arena.Height-e.Box.H)
	case config.PatternVerticalBounce:
		e.Box.Y += float64(e.Dir) * e.Speed / 2
		if e.Box.Y <= 0 {
			e.Box.Y = 0
			e.Dir = 1
		} else if e.Box.Bottom() >= arena.Height {
			e.Box.Y = arena.Height - e.Box.H
			e.Dir = -1
		}
	}
}

// Active reports whether the enemy is still alive.
func (e *Enemy) Active() bool { return e.active }

// Destroy marks the enemy for removal.
func (e *Enemy) Destroy() { e.active = false }

// Gone reports whether the enemy should leave the live set.
func (e *Enemy) Gone() bool {
	return !e.active || e.Box.Right() <= 0
}
