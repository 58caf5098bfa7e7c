package config

// LevelsConfig is the root config for levels.yaml
type LevelsConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

type LevelConfig struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Theme       string `yaml:"theme"`
	NormalWaves int    `yaml:"normalWaves"`
	BossHP      int    `yaml:"bossHp"`
	BossName    string `yaml:"bossName"`
}

// Find returns the level with the given id.
// Unknown ids fall back to the first defined level; ok reports whether the id matched.
func (c *LevelsConfig) Find(id int) (lvl LevelConfig, ok bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	if len(c.Levels) == 0 {
		return LevelConfig{}, false
	}
	return c.Levels[0], false
}

// MaxID returns the highest level id
func (c *LevelsConfig) MaxID() int {
	maxID := 0
	for _, l := range c.Levels {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	return maxID
}
