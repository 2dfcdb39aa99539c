package sim

import (
	"fmt"

	"github.com/vovakirdan/zone-arcade/internal/core"
)

// Pickup is a collectible power-up. It is consumed at most once.
type Pickup struct {
	Box  core.Box
	Kind PickupKind

	drift  float64 // leftward speed, 0 for stationary pickups
	ttl    int     // frames left for stationary pickups, 0 = unlimited
	active bool
}

// NewPickup creates an active pickup.
func NewPickup(box core.Box, kind PickupKind, drift float64, ttl int) (*Pickup, error) {
	if !box.Valid() {
		return nil, fmt.Errorf("%w: pickup %gx%g", ErrInvalidBox, box.W, box.H)
	}
	return &Pickup{Box: box, Kind: kind, drift: drift, ttl: ttl, active: true}, nil
}

// Advance drifts the pickup and expires stationary ones.
func (p *Pickup) Advance() {
	if p.drift > 0 {
		p.Box.X -= p.drift
	}
	if p.ttl > 0 {
		p.ttl--
		if p.ttl == 0 {
			p.active = false
		}
	}
}

// Active reports whether the pickup can still be collected.
func (p *Pickup) Active() bool { return p.active }

// Consume deactivates the pickup. It reports false if it was already inactive.
func (p *Pickup) Consume() bool {
	if !p.active {
		return false
	}
	p.active = false
	return true
}

// Gone reports whether the pickup should leave the live set.
func (p *Pickup) Gone() bool {
	return !p.active || p.Box.Right() <= 0
}
