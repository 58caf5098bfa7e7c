package config

// applyDefaults fills zero values with the stock tuning
func (c *RulesConfig) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 375
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 667
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = 1
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = 60
	}
	if c.Playfield.Width == 0 {
		c.Playfield.Width = float64(c.Display.ScreenWidth)
	}
	if c.Playfield.Height == 0 {
		c.Playfield.Height = float64(c.Display.ScreenHeight)
	}
	if c.Playfield.ExitMargin == 0 {
		c.Playfield.ExitMargin = 50
	}

	w := &c.Waves
	if w.Duration == 0 {
		w.Duration = 10
	}
	if w.Break == 0 {
		w.Break = 2
	}
	if w.BaseInterval == 0 {
		w.BaseInterval = 1.2
	}
	if w.MinInterval == 0 {
		w.MinInterval = 0.6
	}
	if w.SpawnY == 0 {
		w.SpawnY = -50
	}
	if w.SpawnMargin == 0 {
		w.SpawnMargin = 30
	}
	if w.TurretMaxY == 0 {
		w.TurretMinY, w.TurretMaxY = 80, 220
	}
	if w.BossY == 0 {
		w.BossY = 100
	}
	if w.BossMargin == 0 {
		w.BossMargin = 60
	}

	if c.Boosts.Duration == 0 {
		c.Boosts.Duration = 10
	}
	if c.Boosts.MaxShots == 0 {
		c.Boosts.MaxShots = 5
	}

	if c.Pickups.FallSpeed == 0 {
		c.Pickups.FallSpeed = 50
	}
	if c.Pickups.Size == 0 {
		c.Pickups.Size = 20
	}
}

func (c *EntitiesConfig) applyDefaults() {
	p := &c.Player
	if p.Margin == 0 {
		p.Margin = 20
	}
	if p.Size.Width == 0 {
		p.Size = SizeConfig{Width: 40, Height: 40}
	}
	if p.Shot.Width == 0 {
		p.Shot.Width, p.Shot.Height = 4, 8
	}
	if p.Shot.MaxScale == 0 {
		p.Shot.MaxScale = 3
	}
	if c.EnemyBullet.Size == 0 {
		c.EnemyBullet.Size = 6
	}
	for name, e := range c.Enemies {
		if e.Size.Width == 0 {
			e.Size = SizeConfig{Width: 30, Height: 30}
		}
		if e.SpreadCount == 0 {
			e.SpreadCount = 1
		}
		c.Enemies[name] = e
	}
}
