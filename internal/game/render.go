package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/physics"
	"github.com/vovakirdan/star-hopper/internal/session"
)

// Minimum screen size for a readable frame.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Glyphs
const (
	glyphStatic       = '▀'
	glyphMoving       = '≡'
	glyphVertical     = '▬'
	glyphDisappearing = '▒'
	glyphDecaying     = '░'
	glyphSpike        = '▲'
	glyphCoin         = '●'
	glyphToken        = '◆'
	glyphGoalOpen     = '▓'
	glyphGoalClosed   = '░'
	glyphPlayer       = '█'
	glyphSpark        = '*'
	glyphEmber        = '·'
)

const noTime = "-:--.--"

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64, top, rows int) viewport {
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
		top: top,
	}
}

// cells returns the cell rectangle covering r; never smaller than one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y*v.sy)) + v.top
	w = max(1, int(math.Ceil(r.Right()*v.sx))-x)
	h = max(1, int(math.Ceil(r.Bottom()*v.sy))+v.top-y)
	return x, y, w, h
}

func (v viewport) point(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y*v.sy)) + v.top
}

// Render draws the current frame into dst.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	switch c.mode {
	case ModeMenu:
		c.renderMenu(dst)
	case ModeLevelSelect:
		c.renderLevelSelect(dst)
	case ModePlaying:
		c.renderPlay(dst, c.Snapshot())
	case ModePaused:
		c.renderPlay(dst, c.Snapshot())
		drawCenteredBox(dst, "PAUSED", "P or ENTER to resume")
	case ModeComplete:
		c.renderComplete(dst)
	}
}

func (c *Controller) renderPlay(dst *core.Screen, snap Snapshot) {
	w, h := dst.Width(), dst.Height()
	prm := c.sess.Params()
	vp := newViewport(dst, prm.WorldW, prm.WorldH, 1, h-2)

	renderHUD(dst, snap)

	gx, gy, gw, gh := vp.cells(snap.Goal)
	if snap.GoalActive {
		dst.DrawRect(gx, gy, gw, gh, glyphGoalOpen, core.ColorBrightGreen)
	} else {
		dst.DrawRect(gx, gy, gw, gh, glyphGoalClosed, core.ColorGray)
	}

	for _, p := range snap.Platforms {
		if !p.Visible {
			continue
		}
		x, y, pw, _ := vp.cells(p.Box)
		glyph, color := platformStyle(p)
		dst.DrawHLine(x, y, pw, glyph, color)
	}

	for _, s := range snap.Spikes {
		x, y, sw, sh := vp.cells(s)
		dst.DrawHLine(x, y+sh-1, sw, glyphSpike, core.ColorRed)
	}

	for _, col := range snap.Collectibles {
		if col.Collected {
			continue
		}
		cx, cy := col.Box.Center()
		x, y := vp.point(core.Vec2{X: cx, Y: cy})
		if col.Kind == physics.KindToken {
			dst.SetColor(x, y, glyphToken, core.ColorBrightMagenta)
		} else {
			dst.SetColor(x, y, glyphCoin, core.ColorYellow)
		}
	}

	px, py, pw, ph := vp.cells(snap.Player.Box)
	dst.DrawRect(px, py, pw, ph, glyphPlayer, core.ColorBrightGreen)
	if snap.Player.FacingRight {
		dst.SetColor(px+pw-1, py, '▶', core.ColorWhite)
	} else {
		dst.SetColor(px, py, '◀', core.ColorWhite)
	}

	for _, p := range snap.Particles {
		x, y := vp.point(p.Pos)
		if p.Life > particleLife/2 {
			dst.SetColor(x, y, glyphSpark, core.ColorBrightMagenta)
		} else {
			dst.SetColor(x, y, glyphEmber, core.ColorMagenta)
		}
	}

	// Footer: banner or key hints
	if snap.Banner != "" {
		dst.DrawTextCenteredColor(h-1, snap.Banner, core.ColorBrightYellow)
	} else {
		hint := "←/→ move  SPACE jump  P pause  R restart  ESC menu"
		if len([]rune(hint)) > w {
			hint = "SPACE jump  P pause  ESC menu"
		}
		dst.DrawTextCenteredColor(h-1, hint, core.ColorGray)
	}
}

func platformStyle(p PlatformView) (rune, core.Color) {
	switch p.Kind {
	case PlatformMoving:
		return glyphMoving, core.ColorBrightCyan
	case PlatformVertical:
		return glyphVertical, core.ColorCyan
	case PlatformDisappearing:
		if p.Touched {
			c := core.ColorOrange
			if p.Life < 0.5 {
				c = c.Fade()
			}
			return glyphDecaying, c
		}
		return glyphDisappearing, core.ColorOrange
	default:
		return glyphStatic, core.ColorPurple
	}
}

// renderHUD draws level, score, deaths and timers on row 0.
func renderHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("Lv %d/%d %s", snap.Level+1, snap.LevelCount, snap.LevelName)
	dst.DrawTextColor(1, 0, left, core.ColorBrightCyan)

	mid := fmt.Sprintf("Score %d  Deaths %d", snap.Score, snap.Deaths)
	dst.DrawTextCenteredColor(0, mid, core.ColorWhite)

	right := session.FormatTime(snap.LevelTime)
	if snap.RunActive {
		right = fmt.Sprintf("%s (run %s)", right, session.FormatTime(snap.RunTime))
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
}

func (c *Controller) renderMenu(dst *core.Screen) {
	h := dst.Height()
	top := max(1, h/2-6)

	dst.DrawTextCenteredColor(top, "★  S T A R   H O P P E R  ★", core.ColorBrightGreen)
	dst.DrawTextCenteredColor(top+1, strings.Repeat("─", 28), core.ColorPurple)

	dst.DrawTextCentered(top+3, "ENTER / SPACE  start a run")
	dst.DrawTextCentered(top+4, "L              level select")
	dst.DrawTextCentered(top+5, "Q              quit")

	full, seg := c.recordLines()
	dst.DrawTextCenteredColor(top+7, full, core.ColorBrightYellow)
	dst.DrawTextCenteredColor(top+8, seg, core.ColorYellow)

	dst.DrawTextCenteredColor(h-1, "Collect every coin to open the portal", core.ColorGray)
}

func (c *Controller) renderLevelSelect(dst *core.Screen) {
	h := dst.Height()
	set := c.sess.Set()
	stats := c.sess.Stats()

	dst.DrawTextCenteredColor(0, "SELECT LEVEL", core.ColorBrightGreen)

	// Scroll so the cursor stays visible
	rows := h - 4
	first := 0
	if c.cursor >= rows {
		first = c.cursor - rows + 1
	}

	for i := first; i < set.Len() && i-first < rows; i++ {
		def := set.Levels[i]
		best := noTime
		tokens := ""
		if rec, ok := stats.Best(i); ok {
			best = session.FormatTime(rec.BestTime)
			if n := len(def.ChallengeTokens); n > 0 {
				tokens = fmt.Sprintf("%c %d/%d", glyphToken, rec.Tokens, n)
			}
		}

		mark := "  "
		color := core.ColorDefault
		if i == c.cursor {
			mark = "> "
			color = core.ColorBrightCyan
		}
		line := fmt.Sprintf("%s%d. %-24s %s  %s", mark, i+1, truncate(def.Name, 24), best, tokens)
		dst.DrawTextColor(2, 2+i-first, line, color)
	}

	full, seg := c.recordLines()
	dst.DrawTextColor(2, h-2, full+"   "+seg, core.ColorYellow)
	dst.DrawTextCenteredColor(h-1, "↑/↓ choose  ENTER play  1-9 pick  ESC back", core.ColorGray)
}

func (c *Controller) renderComplete(dst *core.Screen) {
	h := dst.Height()
	top := max(1, h/2-5)

	dst.DrawTextCenteredColor(top, "RUN COMPLETE", core.ColorBrightGreen)

	if run := c.lastRun; run != nil {
		if run.FullRun != nil {
			line := "Full run: " + session.FormatTime(run.FullRun.Time)
			if run.FullRun.NewBest {
				line += "  new best!"
			}
			dst.DrawTextCenteredColor(top+2, line, core.ColorBrightYellow)
		} else {
			dst.DrawTextCenteredColor(top+2, "Started mid-set: no full-run time", core.ColorGray)
		}
		dst.DrawTextCentered(top+4, fmt.Sprintf("Score %d   Deaths %d", run.Score, run.Deaths))
	}

	_, seg := c.recordLines()
	dst.DrawTextCenteredColor(top+5, seg, core.ColorYellow)
	dst.DrawTextCenteredColor(h-1, "ENTER to return to the menu", core.ColorGray)
}

// recordLines formats the full-run and segmented bests.
func (c *Controller) recordLines() (string, string) {
	full := "Best full run: " + noTime
	if t, ok := c.sess.BestFullRun(); ok {
		full = "Best full run: " + session.FormatTime(t)
	}
	seg := "Segmented best: " + noTime
	if t, ok := c.sess.SegmentedBest(); ok {
		seg = "Segmented best: " + session.FormatTime(t)
	}
	return full, seg
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
