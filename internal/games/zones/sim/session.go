package sim

import "github.com/google/uuid"

// Session is the state that outlives a single run: the rune wallet and
// run statistics. It is owned by the frame driver and handed to every
// Simulation it constructs, so a restart keeps the wallet.
type Session struct {
	ID        uuid.UUID
	Runes     int
	Runs      int
	BestScore int
}

// NewSession creates an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

func (s *Session) recordRun(score int) {
	s.Runs++
	if score > s.BestScore {
		s.BestScore = score
	}
}
