package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player      PlayerConfig           `yaml:"player"`
	EnemyBullet BulletConfig           `yaml:"enemyBullet"`
	Enemies     map[string]EnemyConfig `yaml:"enemies"`
	Boss        BossConfig             `yaml:"boss"`
}

type PlayerConfig struct {
	Stats  PlayerStats `yaml:"stats"`
	Shot   ShotConfig  `yaml:"shot"`
	Size   SizeConfig  `yaml:"size"`
	Margin float64     `yaml:"margin"`
	SpawnY float64     `yaml:"spawnY"`
}

type PlayerStats struct {
	MaxHealth    int     `yaml:"maxHealth"`
	Attack       int     `yaml:"attack"`
	Defense      int     `yaml:"defense"`
	Speed        float64 `yaml:"speed"`
	Bombs        int     `yaml:"bombs"`
	FireInterval float64 `yaml:"fireInterval"`
}

type ShotConfig struct {
	Speed    float64 `yaml:"speed"`
	Spacing  float64 `yaml:"spacing"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxScale float64 `yaml:"maxScale"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BulletConfig struct {
	Size float64 `yaml:"size"`
}

// EnemyConfig tunes one enemy variant. Keys of EntitiesConfig.Enemies are kind names.
type EnemyConfig struct {
	MaxHealth     int        `yaml:"maxHealth"`
	ContactDamage int        `yaml:"contactDamage"`
	Score         int        `yaml:"score"`
	Speed         float64    `yaml:"speed"`
	SwayAmplitude float64    `yaml:"swayAmplitude"`
	SwayFrequency float64    `yaml:"swayFrequency"`
	Lifetime      float64    `yaml:"lifetime"`
	FireInterval  float64    `yaml:"fireInterval"`
	BulletSpeed   float64    `yaml:"bulletSpeed"`
	BulletDamage  int        `yaml:"bulletDamage"`
	SpreadCount   int        `yaml:"spreadCount"`
	SpreadSpacing float64    `yaml:"spreadSpacing"`
	BarrelLength  float64    `yaml:"barrelLength"`
	Size          SizeConfig `yaml:"size"`
}

type BossConfig struct {
	Phases []BossPhaseConfig `yaml:"phases"`
}

// BossPhaseConfig describes one boss phase. Angles are radians from straight down.
type BossPhaseConfig struct {
	Threshold     float64   `yaml:"threshold"`
	FireInterval  float64   `yaml:"fireInterval"`
	Speed         float64   `yaml:"speed"`
	BulletSpeed   float64   `yaml:"bulletSpeed"`
	Angles        []float64 `yaml:"angles"`
	Ring          int       `yaml:"ring"`
	OriginOffsetY float64   `yaml:"originOffsetY"`
	Text          string    `yaml:"text"`
}
