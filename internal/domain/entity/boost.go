package entity

import "math"

// BoostType identifies a timed player modifier
type BoostType int

const (
	BoostAttack BoostType = iota
	BoostFireRate
	BoostMultiShot
)

func (t BoostType) String() string {
	switch t {
	case BoostAttack:
		return "attack"
	case BoostFireRate:
		return "fireRate"
	case BoostMultiShot:
		return "multiShot"
	default:
		return "unknown"
	}
}

// Boost is one levelable modifier. Level 0 means inactive.
type Boost struct {
	Level     int
	Remaining float64
}

// Active returns true if the boost currently applies
func (b Boost) Active() bool {
	return b.Level > 0
}

// Boosts holds one record per boost type
type Boosts struct {
	Attack    Boost
	FireRate  Boost
	MultiShot Boost
}

var boostTypes = [...]BoostType{BoostAttack, BoostFireRate, BoostMultiShot}

func (b *Boosts) get(t BoostType) *Boost {
	switch t {
	case BoostAttack:
		return &b.Attack
	case BoostFireRate:
		return &b.FireRate
	case BoostMultiShot:
		return &b.MultiShot
	}
	return nil
}

// Get returns the record for a boost type
func (b *Boosts) Get(t BoostType) Boost {
	if r := b.get(t); r != nil {
		return *r
	}
	return Boost{}
}

// Apply levels a boost up by one and adds increment seconds on top of what remains
func (b *Boosts) Apply(t BoostType, increment float64) {
	r := b.get(t)
	if r == nil {
		return
	}
	r.Level++
	r.Remaining += increment
}

// Tick counts down every active boost.
// Level is lowered to ceil(remaining/increment) when that is smaller,
// but never raised here; only Apply raises it.
func (b *Boosts) Tick(dt, increment float64, out *Events) {
	for _, t := range boostTypes {
		r := b.get(t)
		if !r.Active() {
			continue
		}
		r.Remaining -= dt
		if r.Remaining <= 0 {
			*r = Boost{}
			out.Add(PowerUpExpired{Type: t})
			continue
		}
		if increment <= 0 {
			continue
		}
		if expected := int(math.Ceil(r.Remaining / increment)); expected < r.Level {
			r.Level = expected
		}
	}
}

// Reset clears every boost
func (b *Boosts) Reset() {
	*b = Boosts{}
}
