// Package render draws engine frames onto a tcell screen.
package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunslinger/component"
	"github.com/lixenwraith/gunslinger/constants"
	"github.com/lixenwraith/gunslinger/engine"
)

// TerminalRenderer handles all terminal rendering
// Render is called from the tick goroutine, SetPrompt and Redraw from the input loop
type TerminalRenderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	view   Viewport

	width  int
	height int

	last     engine.Frame
	hasFrame bool
	prompt   string
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(f engine.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = f
	r.hasFrame = true
	r.draw()
}

// SetPrompt updates the username shown on the menu and redraws
func (r *TerminalRenderer) SetPrompt(prompt string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompt = prompt
	if r.hasFrame {
		r.draw()
	}
}

// Redraw repaints the last frame after a resize
func (r *TerminalRenderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Sync()
	if r.hasFrame {
		r.draw()
	}
}

// FieldPoint maps a screen cell to field coordinates for mouse aiming
func (r *TerminalRenderer) FieldPoint(col, row int) (x, y int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasFrame {
		return 0, 0, false
	}
	return r.view.ToField(col, row)
}

// draw renders r.last, caller holds r.mu
func (r *TerminalRenderer) draw() {
	f := &r.last
	r.width, r.height = r.screen.Size()
	r.view = NewViewport(r.width, r.height, f.FieldWidth, f.FieldHeight)

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if r.width < constants.MinScreenWidth || r.height < constants.MinScreenHeight {
		r.drawCentered(r.height/2, "terminal too small", defaultStyle.Foreground(RgbStatusBar))
		r.screen.Show()
		return
	}

	switch f.State {
	case engine.StateMenu:
		r.drawMenu(f, defaultStyle)
	default:
		r.drawField(f, defaultStyle)
		r.drawStatusBar(f, defaultStyle)
		r.drawBanter(f, defaultStyle)
		if f.State == engine.StatePaused {
			r.drawCentered(r.view.OffsetY+r.view.Rows/2, " PAUSED  space resumes, esc leaves ",
				defaultStyle.Foreground(RgbStatusText).Background(RgbStatePaused))
		}
	}

	r.screen.Show()
}

// drawField draws the floor and every entity, players last so they stay visible
func (r *TerminalRenderer) drawField(f *engine.Frame, defaultStyle tcell.Style) {
	floor := defaultStyle.Background(RgbFieldFloor)
	for y := r.view.OffsetY; y < r.view.OffsetY+r.view.Rows; y++ {
		for x := 0; x < r.view.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, floor)
		}
	}

	obstacleStyle := floor.Foreground(RgbObstacle)
	for _, o := range f.Obstacles {
		c0, r0, c1, r1 := r.view.CellSpan(o.Bounds())
		r.fill(c0, r0, c1, r1, constants.ObstacleChar, obstacleStyle)
	}

	enemyStyle := floor.Foreground(RgbEnemy).Bold(true)
	for i := range f.Enemies {
		e := &f.Enemies[i]
		if !e.Alive {
			continue
		}
		c0, r0, c1, r1 := r.view.CellSpan(e.Bounds())
		r.fill(c0, r0, c1, r1, constants.EnemyChar, enemyStyle)
	}

	r.drawShots(f.EnemyShots, constants.EnemyShotChar, floor.Foreground(RgbEnemyShot))
	r.drawShots(f.PlayerShots, constants.PlayerShotChar, floor.Foreground(RgbPlayerShot))

	if f.HasPlayer {
		c0, r0, c1, r1 := r.view.CellSpan(f.Player.Bounds())
		r.fill(c0, r0, c1, r1, constants.PlayerChar, floor.Foreground(RgbPlayer).Bold(true))
	}
}

func (r *TerminalRenderer) drawShots(shots []component.Projectile, ch rune, style tcell.Style) {
	for i := range shots {
		if !shots[i].Active {
			continue
		}
		b := shots[i].Bounds()
		col, row := r.view.ToCell(float64(b.X)+float64(b.Width)/2, float64(b.Y)+float64(b.Height)/2)
		r.setFieldCell(col, row, ch, style)
	}
}

// drawStatusBar draws state, health, ammo and score on the top row
func (r *TerminalRenderer) drawStatusBar(f *engine.Frame, defaultStyle tcell.Style) {
	statusY := 0
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, defaultStyle)
	}

	stateText, stateBg := stateBadge(f.State)
	x := r.drawText(0, statusY, stateText, defaultStyle.Foreground(RgbStatusText).Background(stateBg))
	x++

	if f.HasPlayer {
		p := &f.Player
		x = r.drawText(x, statusY, "HP ", defaultStyle.Foreground(RgbStatusBar))
		x = r.drawHealthBar(x, statusY, p.Health, p.MaxHealth, defaultStyle)
		x = r.drawText(x, statusY, fmt.Sprintf(" %d ", p.Health), defaultStyle.Foreground(RgbStatusBar))
		x++
		x = r.drawText(x, statusY, fmt.Sprintf(" AMMO %d/%d ", p.Ammo, p.MaxAmmo),
			defaultStyle.Foreground(RgbStatusText).Background(RgbAmmoBg))
		x++
		r.drawText(x, statusY, fmt.Sprintf(" SCORE %d ", p.Score),
			defaultStyle.Foreground(RgbStatusText).Background(RgbScoreBg))
	}

	ticks := fmt.Sprintf("t%d", f.Ticks)
	r.drawText(r.width-len(ticks), statusY, ticks, defaultStyle.Foreground(RgbTicksText))
}

// drawHealthBar draws a fixed-width gauge colored by remaining health
func (r *TerminalRenderer) drawHealthBar(x, y, health, maxHealth int, defaultStyle tcell.Style) int {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	filled := int(ratio * constants.HealthBarWidth)
	if health > 0 && filled == 0 {
		filled = 1
	}

	fillStyle := defaultStyle.Foreground(GetHealthBarColor(ratio))
	emptyStyle := defaultStyle.Foreground(RgbTicksText)
	for i := 0; i < constants.HealthBarWidth; i++ {
		if i < filled {
			r.setCell(x+i, y, constants.BarFullChar, fillStyle)
		} else {
			r.setCell(x+i, y, constants.BarEmptyChar, emptyStyle)
		}
	}
	return x + constants.HealthBarWidth
}

// drawBanter draws the fading subtitle centred under the field
func (r *TerminalRenderer) drawBanter(f *engine.Frame, defaultStyle tcell.Style) {
	if f.Banter.Text == "" || f.Banter.Alpha <= 0 {
		return
	}
	style := defaultStyle.Foreground(FadeColor(RgbBanter, f.Banter.Alpha)).Italic(true)
	r.drawCentered(r.view.OffsetY+r.view.Rows, f.Banter.Text, style)
}

// drawMenu draws the title, name prompt, last result and leaderboard
func (r *TerminalRenderer) drawMenu(f *engine.Frame, defaultStyle tcell.Style) {
	y := max(r.height/6, 1)

	r.drawCentered(y, "G U N S L I N G E R", defaultStyle.Foreground(RgbTitle).Bold(true))
	y += 2
	r.drawCentered(y, fmt.Sprintf("Name: %s_", r.prompt), defaultStyle.Foreground(RgbMenu))
	y++
	r.drawCentered(y, "enter draw   arrows/wasd move   click fire   space pause   esc quit",
		defaultStyle.Foreground(RgbMenuDim))
	y += 2

	if res := f.LastResult; res != nil {
		line := fmt.Sprintf("Last: %s  score %d  hits %d/%d  missed %d  ammo %d",
			res.Username, res.Score, res.ShotsHit, res.ShotsFired, res.ShotsMissed, res.AmmoRemaining)
		r.drawCentered(y, line, defaultStyle.Foreground(RgbScoreBg))
		y += 2
	}

	if len(f.Leaderboard) == 0 {
		r.drawCentered(y, "no duels on record", defaultStyle.Foreground(RgbMenuDim))
		return
	}
	r.drawCentered(y, "WANTED", defaultStyle.Foreground(RgbTitle))
	y++
	for i, rec := range f.Leaderboard {
		if y >= r.height {
			break
		}
		r.drawCentered(y, fmt.Sprintf("%2d. %-16s %6d", i+1, rec.Username, rec.Score), defaultStyle.Foreground(RgbMenu))
		y++
	}
}

func stateBadge(s engine.State) (string, tcell.Color) {
	switch s {
	case engine.StatePlaying:
		return " PLAYING ", RgbStatePlaying
	case engine.StatePaused:
		return " PAUSED ", RgbStatePaused
	case engine.StateGameOver:
		return " GAME OVER ", RgbStateOver
	default:
		return " MENU ", RgbStateMenu
	}
}

func (r *TerminalRenderer) fill(c0, r0, c1, r1 int, ch rune, style tcell.Style) {
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			r.setFieldCell(x, y, ch, style)
		}
	}
}

// setFieldCell writes one cell, clipped to the field rows so entities never overwrite the HUD
func (r *TerminalRenderer) setFieldCell(x, y int, ch rune, style tcell.Style) {
	if y < r.view.OffsetY || y >= r.view.OffsetY+r.view.Rows {
		return
	}
	r.setCell(x, y, ch, style)
}

// setCell writes one cell, clipped to the screen
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawText writes text from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.setCell(x, y, ch, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	n := len([]rune(text))
	r.drawText(max((r.width-n)/2, 0), y, text, style)
}
