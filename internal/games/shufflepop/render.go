package shufflepop

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/shufflepop/internal/core"
)

// Layout in screen cells.
const (
	tileW     = 4 // Columns per board column
	rowH      = 2 // Lines per board row
	barW      = 2
	boardW    = Cols*tileW + 2 // Including border
	boardH    = Rows*rowH + 2
	playW     = boardW + 1 + barW
	playH     = boardH + 2 // Board plus score line
	messageW  = 34
)

// Glyphs.
const (
	starGlyph    = '∗'
	dieGlyph     = '⚀' // ⚀..⚅ are consecutive code points
	speedGlyph   = '+'
	invalidGlyph = 'E'
	lastOpen     = '('
	lastClose    = ')'
	barGlyph     = '█'
	barEmpty     = '░'
)

var suitGlyphs = [NumSuits]rune{'♠', '♣', '♥', '♦'}

var suitColors = [NumColors]core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorGreen, // stands in for black on dark terminals
	core.ColorBrightBlue,
}

// Glyph returns the rune and color used to draw a tile.
// Empty tiles are drawn as a space.
func Glyph(t Tile) (rune, core.Color) {
	switch t.Kind {
	case KindSuite:
		return suitGlyphs[t.Suit-1], suitColors[t.Color-1]
	case KindStar:
		return starGlyph, core.ColorBrightWhite
	case KindMovement:
		if t.Dir == Left {
			return '<', core.ColorWhite
		}
		return '>', core.ColorWhite
	case KindSpeed:
		return speedGlyph, core.ColorOrange
	case KindDie:
		return dieGlyph + rune(t.Pips), core.ColorWhite
	case KindEmpty:
		return ' ', core.ColorDefault
	default:
		return invalidGlyph, core.ColorRed
	}
}

// Render draws the frame produced by the last tick.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.frame)
}

// RenderFrame draws f onto dst, centered.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	if dst.Width() < playW || dst.Height() < playH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", playW, playH), core.ColorGray)
		return
	}

	area := dst.Bounds().Centered(playW, playH)
	if f.Phase == PhasePlaying {
		drawBoard(dst, area, f)
		return
	}
	drawMessage(dst, area, f)
}

func drawBoard(dst *core.Screen, area core.Rect, f Frame) {
	board := core.NewRect(area.X, area.Y, boardW, boardH)
	dst.DrawBox(board, core.ColorGray)
	innerTop := board.Y + 1
	innerBottom := board.Bottom() - 1

	for i := range f.Cells {
		for c := range f.Cells[i] {
			cell := f.Cells[i][c]
			y := innerTop + int(math.Round(cell.Y*rowH))
			if y < innerTop || y >= innerBottom {
				continue
			}
			x := board.X + 1 + c*tileW
			if !cell.Tile.IsGone() {
				r, color := Glyph(cell.Tile)
				dst.SetWithColor(x+1, y, r, color)
			}
			if cell.Selected {
				dst.SetWithColor(x, y, '[', core.ColorBrightWhite)
				dst.SetWithColor(x+2, y, ']', core.ColorBrightWhite)
			}
		}
	}

	// Reference tile, half a row above the selection point.
	refY := innerTop + SelectRow*rowH - rowH/2
	refX := board.X + 1 + f.Cursor*tileW
	r, color := Glyph(f.Last)
	dst.SetWithColor(refX, refY, lastOpen, core.ColorWhite)
	dst.SetWithColor(refX+1, refY, r, color)
	dst.SetWithColor(refX+2, refY, lastClose, core.ColorWhite)

	drawPowerBar(dst, core.NewRect(board.Right()+1, innerTop, barW, innerBottom-innerTop), f)

	hud := fmt.Sprintf("%d", f.Score)
	dst.DrawTextColor(area.X, board.Bottom(), hud, core.ColorBrightWhite)
	lvl := fmt.Sprintf("L%d", f.Level)
	dst.DrawTextColor(area.Right()-len(lvl), board.Bottom(), lvl, core.ColorGray)
}

func drawPowerBar(dst *core.Screen, bar core.Rect, f Frame) {
	filled := int(math.Round(f.PowerFraction * float64(bar.H)))
	color := core.ColorWhite
	if f.Flash {
		color = core.ColorBrightRed
	}
	for i := 0; i < bar.H; i++ {
		y := bar.Bottom() - 1 - i
		r, c := barEmpty, core.ColorGray
		if i < filled {
			r, c = barGlyph, color
		}
		for x := bar.X; x < bar.Right(); x++ {
			dst.SetWithColor(x, y, r, c)
		}
	}
}

func drawMessage(dst *core.Screen, area core.Rect, f Frame) {
	if f.Message == nil {
		return
	}
	msg := f.Message

	// Example tiles across the top.
	examplesX := area.X + (area.W-Cols*tileW)/2
	for c, t := range msg.Examples {
		if t.IsGone() {
			continue
		}
		r, color := Glyph(t)
		dst.SetWithColor(examplesX+c*tileW+1, area.Y+1, r, color)
	}

	box := core.NewRect(area.X+(area.W-messageW)/2, area.Y+3, messageW, area.H-3)
	if box.X < 0 {
		box.X = 0
	}
	dst.DrawBox(box, core.ColorWhite)

	y := box.Y + 1
	if msg.Title != "" && f.Phase == PhaseTutorial {
		dst.DrawTextColor(box.X+2, y, strings.ToUpper(msg.Title), core.ColorBrightYellow)
		y += 2
	}
	for _, line := range strings.Split(msg.Text, "\n") {
		if y >= box.Bottom()-1 {
			break
		}
		dst.DrawTextColor(box.X+2, y, line, core.ColorBrightWhite)
		y++
	}

	if f.Phase == PhaseIntro && f.PreviousScore != 0 {
		y++
		dst.DrawTextColor(box.X+2, y, fmt.Sprintf("Previous Score: %d", f.PreviousScore), core.ColorBrightGreen)
	}
}
