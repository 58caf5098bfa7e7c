package entity

// Kind is the enemy variant tag
type Kind int

const (
	KindSmall Kind = iota
	KindMedium
	KindLarge
	KindTurret
	KindHazard
	KindBoss
)

var kindNames = [...]string{
	KindSmall:  "small",
	KindMedium: "medium",
	KindLarge:  "large",
	KindTurret: "turret",
	KindHazard: "hazard",
	KindBoss:   "boss",
}

// String returns the config name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a config name back to its Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds lists every enemy variant in declaration order
func Kinds() []Kind {
	return []Kind{KindSmall, KindMedium, KindLarge, KindTurret, KindHazard, KindBoss}
}

// MovementPolicy selects how a variant moves each tick
type MovementPolicy int

const (
	MoveDrift MovementPolicy = iota
	MoveSway
	MoveStationary
	MoveBounce
)

// AttackPattern selects how a variant fires
type AttackPattern int

const (
	AttackNone AttackPattern = iota
	AttackSingle
	AttackSpread
	AttackAimed
	AttackBossPhase
)

// Capabilities is the per-variant dispatch table entry.
type Capabilities struct {
	Movement MovementPolicy
	Attack   AttackPattern

	// Indestructible variants reject every damage application.
	Indestructible bool
	// Expires marks variants removed after a fixed lifetime.
	Expires bool
	// PhaseHook runs the boss phase check after each damage application.
	PhaseHook bool
	// Scored variants emit a destruction event when killed.
	Scored bool
}

var capabilities = [...]Capabilities{
	KindSmall:  {Movement: MoveDrift, Attack: AttackNone, Scored: true},
	KindMedium: {Movement: MoveSway, Attack: AttackSingle, Scored: true},
	KindLarge:  {Movement: MoveSway, Attack: AttackSpread, Scored: true},
	KindTurret: {Movement: MoveStationary, Attack: AttackAimed, Scored: true},
	KindHazard: {Movement: MoveDrift, Attack: AttackNone, Indestructible: true, Expires: true},
	KindBoss:   {Movement: MoveBounce, Attack: AttackBossPhase, PhaseHook: true, Scored: true},
}

// Capabilities returns the dispatch table entry for the kind
func (k Kind) Capabilities() Capabilities {
	if k < 0 || int(k) >= len(capabilities) {
		return Capabilities{}
	}
	return capabilities[k]
}
