package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/skyraid/internal/application/simulation"
	"github.com/younwookim/skyraid/internal/domain/entity"
)

var (
	styleDefault    = tcell.StyleDefault
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayerShot = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyShot  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var kindGlyphs = map[entity.Kind]rune{
	entity.KindSmall:  'v',
	entity.KindMedium: 'V',
	entity.KindLarge:  'W',
	entity.KindTurret: 'T',
	entity.KindHazard: '#',
	entity.KindBoss:   'B',
}

var kindStyles = map[entity.Kind]tcell.Style{
	entity.KindSmall:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	entity.KindMedium: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	entity.KindLarge:  tcell.StyleDefault.Foreground(tcell.ColorPurple),
	entity.KindTurret: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	entity.KindHazard: tcell.StyleDefault.Foreground(tcell.ColorGray),
	entity.KindBoss:   tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
}

var pickupGlyphs = map[entity.PickupType]rune{
	entity.PickupHealth:        '+',
	entity.PickupShield:        'S',
	entity.PickupBomb:          'o',
	entity.PickupAttackBoost:   'A',
	entity.PickupFireRateBoost: 'F',
	entity.PickupMultiShot:     'M',
}

// viewport maps playfield coordinates onto terminal cells.
// The bottom row is reserved for the HUD.
type viewport struct {
	fieldW, fieldH float64
	cols, rows     int
}

// cell returns the cell for a playfield point and whether it is on screen
func (v viewport) cell(x, y float64) (int, int, bool) {
	if v.cols <= 0 || v.rows <= 1 || x < 0 || y < 0 || x >= v.fieldW || y >= v.fieldH {
		return 0, 0, false
	}
	cx := int(x / v.fieldW * float64(v.cols))
	cy := int(y / v.fieldH * float64(v.rows-1))
	return cx, cy, true
}

// render draws one frame of sim
func render(screen tcell.Screen, v viewport, sim *simulation.Simulation, status string) {
	screen.Clear()
	w := sim.World()

	put := func(x, y float64, r rune, st tcell.Style) {
		if cx, cy, ok := v.cell(x, y); ok {
			screen.SetContent(cx, cy, r, nil, st)
		}
	}

	for _, pk := range w.Pickups {
		if pk.Active {
			put(pk.X, pk.Y, pickupGlyphs[pk.Type], stylePickup)
		}
	}
	for _, e := range w.Enemies {
		if e.Active {
			put(e.X, e.Y, kindGlyphs[e.Kind], kindStyles[e.Kind])
		}
	}
	for _, s := range w.EnemyShots {
		if s.Active {
			put(s.X, s.Y, '*', styleEnemyShot)
		}
	}
	for _, s := range w.PlayerShots {
		if s.Active {
			put(s.X, s.Y, '|', stylePlayerShot)
		}
	}
	if p := w.Player; p != nil && p.Active {
		put(p.X, p.Y, 'A', stylePlayer)
	}

	drawText(screen, 0, v.rows-1, hudLine(sim, v.cols), styleHUD)
	if status != "" {
		drawText(screen, max((v.cols-len(status))/2, 0), (v.rows-1)/2, status, styleBanner)
	}
	screen.Show()
}

// hudLine formats the status bar, padded to width
func hudLine(sim *simulation.Simulation, width int) string {
	line := fmt.Sprintf(" L%d W%d  SCORE %d", sim.Level().ID, sim.Wave(), sim.Score())
	if p := sim.Player(); p != nil {
		line += fmt.Sprintf("  HP %d/%d  SH %d  BOMB %d", max(p.Health, 0), p.MaxHealth, p.Shield, p.Bombs)
	}
	if b := sim.Boss(); b != nil {
		line += fmt.Sprintf("  BOSS %d%%", int(b.HealthFraction()*100))
	}
	for len(line) < width {
		line += " "
	}
	return line
}

func drawText(screen tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, st)
	}
}
