package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/skyraid/internal/application/state"
	"github.com/younwookim/skyraid/internal/domain/entity"
)

// Colors for rendering
var (
	colorPlayer      = color.RGBA{100, 200, 255, 255}
	colorShield      = color.RGBA{120, 220, 255, 90}
	colorPlayerShot  = color.RGBA{255, 240, 120, 255}
	colorEnemyShot   = color.RGBA{255, 90, 90, 255}
	colorFlash       = color.RGBA{255, 255, 255, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{100, 200, 100, 255}
	colorBossHealth  = color.RGBA{220, 60, 60, 255}
	colorText        = color.RGBA{240, 240, 240, 255}
	colorPauseShade  = color.RGBA{0, 0, 0, 128}
	colorDefeatShade = color.RGBA{100, 0, 0, 180}
	colorClearShade  = color.RGBA{0, 60, 20, 180}
)

var kindColors = map[entity.Kind]color.RGBA{
	entity.KindSmall:  {200, 100, 100, 255},
	entity.KindMedium: {220, 140, 60, 255},
	entity.KindLarge:  {170, 70, 170, 255},
	entity.KindTurret: {140, 140, 160, 255},
	entity.KindHazard: {90, 90, 90, 255},
	entity.KindBoss:   {180, 30, 60, 255},
}

var pickupColors = map[entity.PickupType]color.RGBA{
	entity.PickupHealth:        {80, 220, 80, 255},
	entity.PickupShield:        {80, 180, 255, 255},
	entity.PickupBomb:          {255, 120, 40, 255},
	entity.PickupAttackBoost:   {255, 60, 60, 255},
	entity.PickupFireRateBoost: {255, 220, 60, 255},
	entity.PickupMultiShot:     {200, 120, 255, 255},
}

var themeBackgrounds = map[string]color.RGBA{
	"city":   {26, 26, 46, 255},
	"desert": {60, 45, 25, 255},
	"jungle": {18, 45, 25, 255},
	"ocean":  {12, 30, 60, 255},
	"space":  {5, 5, 15, 255},
}

var hudFace font.Face = basicfont.Face7x13

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	bg, ok := themeBackgrounds[p.sim.Level().Theme]
	if !ok {
		bg = themeBackgrounds["city"]
	}
	screen.Fill(bg)

	var ox, oy float32
	if p.shake > 0 {
		ox = float32(p.shake * (2*p.shakeRNG.Float64() - 1))
		oy = float32(p.shake * (2*p.shakeRNG.Float64() - 1))
	}

	w := p.sim.World()
	for _, pk := range w.Pickups {
		if pk.Active {
			vector.DrawFilledCircle(screen, float32(pk.X)+ox, float32(pk.Y)+oy, float32(pk.Size/2), pickupColors[pk.Type], true)
		}
	}
	for _, e := range w.Enemies {
		if e.Active {
			p.drawEnemy(screen, e, ox, oy)
		}
	}
	for _, s := range w.EnemyShots {
		if s.Active {
			drawBox(screen, s.X, s.Y, s.Width, s.Height, ox, oy, colorEnemyShot)
		}
	}
	for _, s := range w.PlayerShots {
		if s.Active {
			drawBox(screen, s.X, s.Y, s.Width, s.Height, ox, oy, colorPlayerShot)
		}
	}
	if pl := w.Player; pl != nil && pl.Active {
		p.drawPlayer(screen, pl, ox, oy)
	}

	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorPauseShade, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, colorDefeatShade, p.resultText("GAME OVER", "Press Z to retry"))
	case state.StateLevelClear:
		p.drawOverlay(screen, colorClearShade, p.resultText("LEVEL CLEAR", "Press Z to continue"))
	}
}

// drawBox fills a rectangle centered on (x, y)
func drawBox(screen *ebiten.Image, x, y, w, h float64, ox, oy float32, c color.Color) {
	vector.DrawFilledRect(screen, float32(x-w/2)+ox, float32(y-h/2)+oy, float32(w), float32(h), c, false)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl *entity.Player, ox, oy float32) {
	c := color.Color(colorPlayer)
	if pl.HitTimer > 0 && int(pl.HitTimer*20)%2 == 0 {
		c = colorFlash
	}
	drawBox(screen, pl.X, pl.Y, pl.Stats.Width, pl.Stats.Height, ox, oy, c)

	if pl.Shield > 0 {
		r := float32(pl.Stats.Width) * 0.75
		vector.StrokeCircle(screen, float32(pl.X)+ox, float32(pl.Y)+oy, r, 2, colorShield, true)
	}
}

func (p *Playing) drawEnemy(screen *ebiten.Image, e *entity.Enemy, ox, oy float32) {
	c := color.Color(kindColors[e.Kind])
	if e.HitTimer > 0 {
		c = colorFlash
	}
	drawBox(screen, e.X, e.Y, e.Stats.Width, e.Stats.Height, ox, oy, c)

	if e.Kind == entity.KindTurret && e.Stats.BarrelLength > 0 {
		tipX, tipY := e.BarrelTip()
		vector.StrokeLine(screen, float32(e.X)+ox, float32(e.Y)+oy, float32(tipX)+ox, float32(tipY)+oy, 3, kindColors[entity.KindTurret], true)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	pl := p.sim.Player()

	// Health bar
	barX, barY := float32(10), float32(p.screenH-24)
	barW, barH := float32(120), float32(10)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	if pl != nil && pl.MaxHealth > 0 {
		ratio := max(float32(pl.Health)/float32(pl.MaxHealth), 0)
		vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorHealthFG, false)
	}

	status := fmt.Sprintf("SCORE %d  WAVE %d", p.sim.Score(), p.sim.Wave())
	text.Draw(screen, status, hudFace, 10, 20, colorText)

	if pl != nil {
		res := fmt.Sprintf("BOMB %d  SHIELD %d", pl.Bombs, pl.Shield)
		text.Draw(screen, res, hudFace, int(barX+barW)+10, int(barY)+10, colorText)
		p.drawBoosts(screen, pl)
	}

	if boss := p.sim.Boss(); boss != nil {
		bw := float32(p.screenW - 20)
		vector.DrawFilledRect(screen, 10, 30, bw, 6, colorHealthBG, false)
		vector.DrawFilledRect(screen, 10, 30, bw*float32(boss.HealthFraction()), 6, colorBossHealth, false)
	}

	if msg, ok := p.Banner(); ok {
		x := (p.screenW - len(msg)*7) / 2
		text.Draw(screen, msg, hudFace, x, p.screenH/3, colorText)
	}

	if p.store != nil {
		best := fmt.Sprintf("BEST %d", p.store.HighScore())
		text.Draw(screen, best, hudFace, p.screenW-len(best)*7-10, 20, colorText)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), p.screenW-60, p.screenH-40)
}

func (p *Playing) drawBoosts(screen *ebiten.Image, pl *entity.Player) {
	y := p.screenH - 44
	for _, t := range []entity.BoostType{entity.BoostAttack, entity.BoostFireRate, entity.BoostMultiShot} {
		b := pl.Boosts.Get(t)
		if !b.Active() {
			continue
		}
		text.Draw(screen, fmt.Sprintf("%s x%d %.0fs", t, b.Level, b.Remaining), hudFace, 10, y, colorText)
		y -= 14
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, shade color.Color, msg string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), shade, false)
	ebitenutil.DebugPrintAt(screen, msg, p.screenW/2-70, p.screenH/2-40)
}

func (p *Playing) resultText(title, prompt string) string {
	msg := fmt.Sprintf("%s\n\n%s\nScore: %d\nKills: %d", title, p.sim.Level().Name, p.sim.Score(), p.sim.Kills())
	if p.newBest {
		msg += "\nNEW HIGH SCORE!"
	}
	return msg + "\n\n" + prompt
}
