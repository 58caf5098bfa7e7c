package entity

// BossPhase is one escalation tier of a boss.
// Threshold is the health fraction at or below which the phase is entered.
type BossPhase struct {
	Threshold    float64
	FireInterval float64
	Speed        float64
	BulletSpeed  float64
	// Angles are fan directions in radians measured from straight down.
	Angles []float64
	// Ring fires this many evenly spaced shots instead of a fan when > 0.
	Ring          int
	OriginOffsetY float64
	Text          string
}

// BossState tracks the phase machine of a boss enemy.
// The phase index only ever increases.
type BossState struct {
	Name   string
	Phase  int
	Phases []BossPhase
}

// NewBossState creates a boss state starting in phase 0
func NewBossState(name string, phases []BossPhase) *BossState {
	return &BossState{
		Name:   name,
		Phases: phases,
	}
}

// Current returns the active phase parameters
func (b *BossState) Current() BossPhase {
	if len(b.Phases) == 0 {
		return BossPhase{}
	}
	return b.Phases[b.Phase]
}

// Advance enters the deepest later phase whose threshold the fraction has crossed.
// A single call can skip phases. Returns true if the phase changed.
func (b *BossState) Advance(fraction float64) bool {
	next := b.Phase
	for i := b.Phase + 1; i < len(b.Phases); i++ {
		if fraction <= b.Phases[i].Threshold {
			next = i
		}
	}
	if next == b.Phase {
		return false
	}
	b.Phase = next
	return true
}
