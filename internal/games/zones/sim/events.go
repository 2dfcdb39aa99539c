package sim

// Event is a one-shot notification emitted at a state transition.
// Each event is delivered once to the listener and once in a FrameResult.
type Event interface {
	simEvent()
}

// GameOverEvent is emitted when the last life is lost.
type GameOverEvent struct {
	FinalScore int
}

func (GameOverEvent) simEvent() {}

// ZoneCompleteEvent is emitted when a zone boss is defeated and another zone follows.
type ZoneCompleteEvent struct {
	ZoneName  string
	NextIndex int
}

func (ZoneCompleteEvent) simEvent() {}

// WonEvent is emitted when the boss of the last zone is defeated.
type WonEvent struct {
	TotalScore int
}

func (WonEvent) simEvent() {}

// ShopPurchaseEvent is emitted after a successful purchase.
type ShopPurchaseEvent struct {
	Kind PickupKind
	Cost int
}

func (ShopPurchaseEvent) simEvent() {}

// ZoneStartedEvent is emitted when the transition delay ends and the next zone begins.
type ZoneStartedEvent struct {
	ZoneName string
	Index    int
}

func (ZoneStartedEvent) simEvent() {}

// BossSpawnedEvent is emitted when the zone boss appears.
type BossSpawnedEvent struct {
	ZoneName string
	HP       float64
}

func (BossSpawnedEvent) simEvent() {}

// BossEnragedEvent is emitted when the boss switches to its enraged phase.
type BossEnragedEvent struct{}

func (BossEnragedEvent) simEvent() {}

// PlayerHitEvent is emitted when the player loses a life.
type PlayerHitEvent struct {
	LivesLeft int
}

func (PlayerHitEvent) simEvent() {}

// LevelUpEvent is emitted whenever the difficulty level increases.
type LevelUpEvent struct {
	Level int
}

func (LevelUpEvent) simEvent() {}
