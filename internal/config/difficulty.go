package config

import (
	"fmt"
	"math"
	"sync"
)

// Ramp computes a spawn cooldown reset value that shrinks as the run progresses.
// The linear form is base - step*((level-1)+zone); an optional formula replaces it.
// Values never exceed Base, never drop below Floor, and never grow with level or zone.
type Ramp struct {
	Base    int
	Step    int
	Floor   int
	formula *Formula

	mu    sync.Mutex
	cache map[[2]int]int
	err   error
}

// NewRamp creates a ramp. An empty expr selects the linear form.
func NewRamp(base, step, floor int, expr string) (*Ramp, error) {
	r := &Ramp{Base: base, Step: step, Floor: floor}
	if expr != "" {
		f, err := CompileFormula(expr)
		if err != nil {
			return nil, err
		}
		r.formula = f
	}
	return r, nil
}

// EnemyRamp builds the enemy cooldown ramp of a spawn section.
func (s Spawn) EnemyRamp() (*Ramp, error) {
	return NewRamp(s.EnemyCooldown, s.EnemyCooldownStep, s.EnemyCooldownFloor, s.EnemyCooldownFormula)
}

// ItemRamp builds the pickup cooldown ramp of a spawn section.
func (s Spawn) ItemRamp() (*Ramp, error) {
	return NewRamp(s.ItemCooldown, s.ItemCooldownStep, s.ItemCooldownFloor, s.ItemCooldownFormula)
}

// Scripted reports whether the ramp evaluates a formula.
func (r *Ramp) Scripted() bool {
	return r.formula != nil
}

// At returns the cooldown for a level (>= 1) and zone index (>= 0).
// A scripted value is capped by every earlier level and zone, so a formula
// cannot make spawns slower as the run progresses. A formula that fails at
// runtime falls back to the linear form; Err reports the first failure.
func (r *Ramp) At(level, zone int) int {
	level, zone = max(level, 1), max(zone, 0)
	if r.formula == nil {
		return max(min(r.linear(level, zone), r.Base), r.Floor)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scriptedAt(level, zone)
}

func (r *Ramp) scriptedAt(level, zone int) int {
	key := [2]int{level, zone}
	if v, ok := r.cache[key]; ok {
		return v
	}

	v := r.linear(level, zone)
	fv, err := r.formula.Eval(FormulaVars{
		Base:  r.Base,
		Step:  r.Step,
		Floor: r.Floor,
		Level: level,
		Zone:  zone,
	})
	if err == nil {
		v = fv
	} else if r.err == nil {
		r.err = err
	}

	v = min(v, r.Base)
	if level > 1 {
		v = min(v, r.scriptedAt(level-1, zone))
	}
	if zone > 0 {
		v = min(v, r.scriptedAt(level, zone-1))
	}
	v = max(v, r.Floor)

	if r.cache == nil {
		r.cache = make(map[[2]int]int)
	}
	r.cache[key] = v
	return v
}

// Err returns the first runtime error of the formula, if any.
func (r *Ramp) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Check evaluates the formula on every level in [1, levels] and zone in
// [0, zones) and rejects it if it fails or grows along either axis.
func (r *Ramp) Check(levels, zones int) error {
	if r.formula == nil {
		return nil
	}
	levels, zones = max(levels, 1), max(zones, 1)

	vals := make([][]int, levels+1)
	for level := 1; level <= levels; level++ {
		vals[level] = make([]int, zones)
		for zone := range zones {
			v, err := r.formula.Eval(FormulaVars{
				Base:  r.Base,
				Step:  r.Step,
				Floor: r.Floor,
				Level: level,
				Zone:  zone,
			})
			if err != nil {
				return err
			}
			vals[level][zone] = v
			if level > 1 && v > vals[level-1][zone] {
				return fmt.Errorf("cooldown formula %q grows from level %d to %d in zone %d (%d -> %d)",
					r.formula, level-1, level, zone, vals[level-1][zone], v)
			}
			if zone > 0 && v > vals[level][zone-1] {
				return fmt.Errorf("cooldown formula %q grows from zone %d to %d at level %d (%d -> %d)",
					r.formula, zone-1, zone, level, vals[level][zone-1], v)
			}
		}
	}
	return nil
}

func (r *Ramp) linear(level, zone int) int {
	progress := max(level-1, 0) + max(zone, 0)
	return r.Base - r.Step*progress
}

// MaxEnemiesAt returns the live enemy cap for a level.
func (s Spawn) MaxEnemiesAt(level int) int {
	n := s.MaxEnemies + level*s.MaxEnemiesPerLevel
	if s.MaxEnemiesCap > 0 && n > s.MaxEnemiesCap {
		n = s.MaxEnemiesCap
	}
	return n
}

// SpeedAt returns the enemy speed for a level, scaled by the zone and capped at MaxSpeed.
func (e Enemies) SpeedAt(level int, zoneScale float64) float64 {
	if zoneScale <= 0 {
		zoneScale = 1
	}
	speed := (e.BaseSpeed + e.SpeedPerLevel*float64(max(level-1, 0))) * zoneScale
	if e.MaxSpeed > 0 {
		speed = math.Min(speed, e.MaxSpeed)
	}
	return speed
}
