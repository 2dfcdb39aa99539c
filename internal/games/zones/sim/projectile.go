package sim

import (
	"fmt"

	"github.com/vovakirdan/zone-arcade/internal/core"
)

// Projectile is a single-use player shot travelling rightward.
type Projectile struct {
	Box   core.Box
	Speed float64

	active bool
}

// NewProjectile creates an active projectile.
func NewProjectile(box core.Box, speed float64) (*Projectile, error) {
	if !box.Valid() {
		return nil, fmt.Errorf("%w: projectile %gx%g", ErrInvalidBox, box.W, box.H)
	}
	return &Projectile{Box: box, Speed: speed, active: true}, nil
}

// Advance moves the projectile and deactivates it past the right edge.
func (p *Projectile) Advance(arena Arena) {
	p.Box.X += p.Speed
	if p.Box.X >= arena.Width {
		p.active = false
	}
}

// Active reports whether the projectile can still hit.
func (p *Projectile) Active() bool { return p.active }

// Hit deactivates the projectile after its first hit.
func (p *Projectile) Hit() { p.active = false }
