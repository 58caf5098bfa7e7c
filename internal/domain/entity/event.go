package entity

// Event is a notification produced by a state transition.
// Transitions append events to an Events outbox; the host drains it once per tick.
type Event interface {
	isEvent()
}

// EnemyDestroyed is emitted once when a scored enemy dies
type EnemyDestroyed struct {
	ID    EntityID
	Kind  Kind
	Score int
	X, Y  float64
}

// PlayerHit is emitted when damage reaches the player's health
type PlayerHit struct {
	Damage   int
	Absorbed int
}

// PlayerDefeated is emitted once when the player's health reaches zero
type PlayerDefeated struct{}

// BombUsed is emitted when the player spends a bomb
type BombUsed struct {
	Remaining int
}

// PowerUpCollected is emitted when the player picks up a pickup
type PowerUpCollected struct {
	Type PickupType
}

// PowerUpExpired is emitted when a boost runs out of time
type PowerUpExpired struct {
	Type BoostType
}

// WaveStarted is emitted when a normal wave begins
type WaveStarted struct {
	Wave int
}

// WaveCompleted is emitted when any wave ends
type WaveCompleted struct {
	Wave int
}

// BossWaveStarted is emitted when the boss wave begins
type BossWaveStarted struct {
	Wave int
	Name string
}

// BossPhaseChanged is emitted when a boss escalates
type BossPhaseChanged struct {
	Phase int
	Text  string
}

// BossDefeated is emitted once when the boss dies
type BossDefeated struct {
	Name string
}

// LevelCleared is emitted after the boss wave completes
type LevelCleared struct {
	Level int
}

func (EnemyDestroyed) isEvent()   {}
func (PlayerHit) isEvent()        {}
func (PlayerDefeated) isEvent()   {}
func (BombUsed) isEvent()         {}
func (PowerUpCollected) isEvent() {}
func (PowerUpExpired) isEvent()   {}
func (WaveStarted) isEvent()      {}
func (WaveCompleted) isEvent()    {}
func (BossWaveStarted) isEvent()  {}
func (BossPhaseChanged) isEvent() {}
func (BossDefeated) isEvent()     {}
func (LevelCleared) isEvent()     {}

// Events is an ordered outbox of emitted events.
// A nil *Events discards everything added to it.
type Events []Event

// Add appends an event
func (e *Events) Add(ev Event) {
	if e == nil {
		return
	}
	*e = append(*e, ev)
}

// Drain returns the collected events and empties the outbox
func (e *Events) Drain() []Event {
	if e == nil {
		return nil
	}
	out := *e
	*e = nil
	return out
}
