package sim

import (
	"io"

	"github.com/charmbracelet/log"
)

type options struct {
	seed     int64
	seeded   bool
	session  *Session
	logger   *log.Logger
	listener func(Event)
}

// Option configures a Simulation.
type Option func(*options)

// WithSeed fixes the RNG seed. Without it the run is seeded from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSession shares a session (rune wallet) with the simulation.
func WithSession(s *Session) Option {
	return func(o *options) { o.session = s }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithListener registers a callback that receives every event once, as it happens.
func WithListener(fn func(Event)) Option {
	return func(o *options) { o.listener = fn }
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
