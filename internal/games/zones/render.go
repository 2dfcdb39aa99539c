package zones

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
	"github.com/vovakirdan/zone-arcade/internal/games/zones/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerFlicker  = '░'
	EnemyChar      = '▓'
	BossChar       = '█'
	ProjectileChar = '━'
	StarChar       = '·'
	BorderChar     = '─'
)

// zonePalette colors the decor and the boss of each zone; it cycles for longer tables.
var zonePalette = []core.Color{
	core.ColorGreen,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorPurple,
	core.ColorTeal,
}

var patternColors = map[sim.Pattern]core.Color{
	config.PatternHorizontal:     core.ColorRed,
	config.PatternSinusoidal:     core.ColorMagenta,
	config.PatternVerticalBounce: core.ColorBrightRed,
}

var pickupGlyphs = map[sim.PickupKind]struct {
	r rune
	c core.Color
}{
	config.PickupExtraLife:       {'+', core.ColorBrightGreen},
	config.PickupShield:          {'S', core.ColorBrightBlue},
	config.PickupWeapon:          {'W', core.ColorBrightYellow},
	config.PickupInvulnerability: {'*', core.ColorBrightWhite},
}

// viewport maps arena units to screen cells. Row 0 is the HUD and the
// last row is the status line; the arena fills the rows between.
type viewport struct {
	top    int
	width  int
	height int
	sx, sy float64
}

func newViewport(dst *core.Screen, arena config.Arena) viewport {
	v := viewport{top: 1, width: dst.Width(), height: max(dst.Height()-2, 1)}
	if arena.Width > 0 && arena.Height > 0 {
		v.sx = float64(v.width) / arena.Width
		v.sy = float64(v.height) / arena.Height
	}
	return v
}

// rect converts a box to the cells it covers, at least one cell wide and tall.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, v.top+y0, max(x1-x0, 1), max(y1-y0, 1))
}

// clip keeps a rect inside the arena rows so entities never paint over the HUD.
func (v viewport) clip(r core.Rect) core.Rect {
	x0 := max(r.X, 0)
	y0 := max(r.Y, v.top)
	x1 := min(r.Right(), v.width)
	y1 := min(r.Bottom(), v.top+v.height)
	return core.NewRect(x0, y0, max(x1-x0, 0), max(y1-y0, 0))
}

func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	dst.FillRect(v.clip(v.rect(b)), r, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.sim == nil {
		g.drawCenteredMessage(dst, core.ColorBrightRed, "CONFIG ERROR", errorLine(g.loadErr))
		return
	}

	res := g.last
	v := newViewport(dst, g.cfg.Arena)
	zoneColor := zonePalette[res.HUD.ZoneIndex%len(zonePalette)]

	g.drawBackground(dst, v, res, zoneColor)

	for _, p := range res.Pickups {
		glyph, ok := pickupGlyphs[p.Kind]
		if !ok {
			glyph.r, glyph.c = '?', core.ColorWhite
		}
		v.fill(dst, p.Box, glyph.r, glyph.c)
	}
	for _, e := range res.Enemies {
		v.fill(dst, e.Box, EnemyChar, patternColors[e.Pattern])
	}
	if res.Boss != nil {
		color := zoneColor
		if res.Boss.Phase == sim.BossEnraged {
			color = core.ColorBrightRed
		}
		v.fill(dst, res.Boss.Box, BossChar, color)
	}
	for _, p := range res.Projectiles {
		v.fill(dst, p.Box, ProjectileChar, core.ColorBrightYellow)
	}
	g.drawPlayer(dst, v, res)

	g.drawHUD(dst, res)
	g.drawStatusLine(dst)

	switch {
	case res.Phase == sim.PhaseGameOver:
		g.drawCenteredMessage(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Zone %d  |  Press R to restart", res.HUD.Score, res.HUD.ZoneIndex+1))
	case res.Phase == sim.PhaseWon:
		g.drawCenteredMessage(dst, core.ColorBrightYellow, "ALL ZONES CLEARED",
			fmt.Sprintf("Final score: %d  |  Press R to play again", res.HUD.Score))
	case res.Phase == sim.PhaseZoneComplete:
		g.drawShop(dst, res)
	case g.paused:
		g.drawCenteredMessage(dst, core.ColorWhite, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawBackground(dst *core.Screen, v viewport, res sim.FrameResult, c core.Color) {
	dst.DrawHLine(0, v.top+v.height-1, v.width, BorderChar, c)

	if v.width == 0 {
		return
	}
	shift := int(res.Background * v.sx)
	for i := range v.width * v.height / 40 {
		x := ((i*37-shift)%v.width + v.width) % v.width
		y := v.top + (i*13)%max(v.height-1, 1)
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, res sim.FrameResult) {
	p := res.Player
	glyph, color := PlayerChar, core.ColorBrightCyan
	switch {
	case p.Armed:
		color = core.ColorBrightYellow
	case p.Shielded:
		color = core.ColorBrightBlue
	}
	// Flicker while only the grace period protects the player.
	if p.Invulnerable && !p.Armed && !p.Shielded && (res.Frame/4)%2 == 0 {
		glyph = PlayerFlicker
	}
	v.fill(dst, p.Box, glyph, color)
}

func (g *Game) drawHUD(dst *core.Screen, res sim.FrameResult) {
	h := res.HUD
	left := fmt.Sprintf(" ♥ %d  Score %d  Lvl %d  Zone %d/%d %s  Runes %d",
		h.Lives, h.Score, h.Level, h.ZoneIndex+1, h.ZoneCount, h.ZoneName, h.Runes)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	if h.HasBoss && res.Boss != nil {
		bar := healthBar(h.BossHP, res.Boss.StartHP, 12)
		text := fmt.Sprintf("BOSS %s %3.0f ", bar, math.Ceil(h.BossHP))
		color := zonePalette[h.ZoneIndex%len(zonePalette)]
		if res.Boss.Phase == sim.BossEnraged {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(dst.Width()-len([]rune(text)), 0, text, color)
	}
}

func (g *Game) drawStatusLine(dst *core.Screen) {
	y := dst.Height() - 1
	if g.notice != "" {
		dst.DrawTextColored(1, y, g.notice, core.ColorBrightYellow)
		return
	}
	help := "arrows/wasd move  p pause  q quit"
	if g.mode == config.CombatProjectile {
		help = "arrows/wasd move  space fire  p pause  q quit"
	}
	dst.DrawTextColored(1, y, help, core.ColorGray)
}

func (g *Game) drawShop(dst *core.Screen, res sim.FrameResult) {
	next := res.HUD.ZoneIndex + 1
	nextName := ""
	if next < len(g.cfg.Zones) {
		nextName = g.cfg.Zones[next].Name
	}
	lines := []string{
		fmt.Sprintf("ZONE CLEAR: %s", res.HUD.ZoneName),
		fmt.Sprintf("Next: %s in %ds", nextName, secondsLeft(res.TransitionLeft)),
		"",
		fmt.Sprintf("1) Extra life  %3d runes", g.cfg.Shop.ExtraLife),
		fmt.Sprintf("2) Shield      %3d runes", g.cfg.Shop.Shield),
		fmt.Sprintf("3) Weapon      %3d runes", g.cfg.Shop.Weapon),
		"",
		fmt.Sprintf("Runes: %d", res.HUD.Runes),
	}
	g.drawPanel(dst, zonePalette[res.HUD.ZoneIndex%len(zonePalette)], lines)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, c core.Color, title, subtitle string) {
	g.drawPanel(dst, c, []string{title, "", subtitle})
}

func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

func healthBar(hp, maxHP float64, width int) string {
	filled := 0
	if maxHP > 0 {
		filled = int(math.Ceil(hp / maxHP * float64(width)))
	}
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func secondsLeft(frames int) int {
	return (frames + 59) / 60
}

func errorLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}
