package config

// RulesConfig is the root config for rules.yaml
type RulesConfig struct {
	Display    DisplayConfig     `yaml:"display"`
	Playfield  PlayfieldConfig   `yaml:"playfield"`
	Waves      WaveRules         `yaml:"waves"`
	SpawnTable []SpawnTierConfig `yaml:"spawnTable"`
	Boosts     BoostRules        `yaml:"boosts"`
	Pickups    PickupRules       `yaml:"pickups"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PlayfieldConfig sizes the simulation area. It usually matches the display.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// ExitMargin is how far past an edge an entity may travel before it is removed
	ExitMargin float64 `yaml:"exitMargin"`
}

// WaveRules drives the wave scheduler. Times are in seconds.
type WaveRules struct {
	Duration     float64 `yaml:"duration"`
	Break        float64 `yaml:"break"`
	BaseInterval float64 `yaml:"baseInterval"`
	IntervalStep float64 `yaml:"intervalStep"`
	MinInterval  float64 `yaml:"minInterval"`
	SpawnY       float64 `yaml:"spawnY"`
	SpawnMargin  float64 `yaml:"spawnMargin"`
	TurretMinY   float64 `yaml:"turretMinY"`
	TurretMaxY   float64 `yaml:"turretMaxY"`
	BossY        float64 `yaml:"bossY"`
	BossMargin   float64 `yaml:"bossMargin"`
}

// SpawnTierConfig applies to waves up to MaxWave. MaxWave 0 means every later wave.
type SpawnTierConfig struct {
	MaxWave int                 `yaml:"maxWave"`
	Weights []SpawnWeightConfig `yaml:"weights"`
}

type SpawnWeightConfig struct {
	Kind   string  `yaml:"kind"`
	Chance float64 `yaml:"chance"`
}

type BoostRules struct {
	Duration       float64 `yaml:"duration"`
	AttackPerLevel int     `yaml:"attackPerLevel"`
	FireRateFactor float64 `yaml:"fireRateFactor"`
	MaxShots       int     `yaml:"maxShots"`
}

type PickupRules struct {
	FallSpeed  float64           `yaml:"fallSpeed"`
	Size       float64           `yaml:"size"`
	DropChance float64           `yaml:"dropChance"`
	Heal       int               `yaml:"heal"`
	Shield     int               `yaml:"shield"`
	Bombs      int               `yaml:"bombs"`
	Table      []LootEntryConfig `yaml:"table"`
}

type LootEntryConfig struct {
	Type   string  `yaml:"type"`
	Chance float64 `yaml:"chance"`
}
