// Package term draws the board in a terminal through tcell.
package term

import (
	"grid-snake/game/types"
	"grid-snake/ui/view"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so the board looks roughly square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 204, 0))
	headStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 60)).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(204, 0, 0))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var headGlyphs = map[types.Direction]rune{
	types.Up:    '^',
	types.Right: '>',
	types.Down:  'v',
	types.Left:  '<',
}

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Origin is the screen cell of grid point (0,0). The board is framed by a
// one-cell border starting at the top-left corner of the screen.
func Origin() (x, y int) {
	return 1, 1
}

// Cell maps a grid point to the left screen column and row it occupies.
func Cell(p types.Point) (x, y int) {
	ox, oy := Origin()
	return ox + p.X*cellWidth, oy + p.Y
}

func (r *Renderer) Draw(scene view.Scene) {
	r.screen.Clear()

	r.drawBorder(scene.Grid)

	if scene.HasFood {
		r.fill(scene.Food, '●', foodStyle)
	}

	for j := len(scene.Body) - 1; j >= 1; j-- {
		if scene.Grid.Contains(scene.Body[j]) {
			r.fill(scene.Body[j], '█', snakeStyle)
		}
	}
	if len(scene.Body) > 0 && scene.Grid.Contains(scene.Body[0]) {
		x, y := Cell(scene.Body[0])
		r.screen.SetContent(x, y, '█', nil, headStyle)
		r.screen.SetContent(x+1, y, headGlyphs[scene.Heading], nil, headStyle.Reverse(true))
	}

	style := textStyle
	if scene.Over {
		style = overStyle
	}
	_, oy := Origin()
	r.text(0, oy+scene.Grid.Height+1, scene.Status(), style)

	r.screen.Show()
}

func (r *Renderer) fill(p types.Point, ch rune, style tcell.Style) {
	x, y := Cell(p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawBorder(grid types.Grid) {
	right := grid.Width*cellWidth + 1
	bottom := grid.Height + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(0, 0, '┌', nil, borderStyle)
	r.screen.SetContent(right, 0, '┐', nil, borderStyle)
	r.screen.SetContent(0, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// KeySymbol names a key event for input.Bindings. Unknown keys map to "".
func KeySymbol(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// IsQuit reports whether the event asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
