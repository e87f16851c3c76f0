//go:build ebiten

// Package ebitenui runs a session inside an ebiten window.
package ebitenui

import (
	"image/color"
	"time"

	"grid-snake/app"
	"grid-snake/game/types"
	"grid-snake/ui/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const statusHeight = 16

var (
	snakeColor = color.RGBA{R: 0, G: 204, B: 0, A: 255}
	headColor  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	foodColor  = color.RGBA{R: 204, G: 0, B: 0, A: 255}
	background = color.RGBA{R: 16, G: 16, B: 16, A: 255}
)

var keySymbols = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyR:          "r",
}

// Game adapts an app.Session to the ebiten.Game interface.
type Game struct {
	session *app.Session
	layout  view.Layout

	snake *ebiten.Image
	head  *ebiten.Image
	food  *ebiten.Image

	keys []ebiten.Key
}

func New(session *app.Session, cellSize int) *Game {
	g := &Game{
		session: session,
		layout:  view.Layout{CellSize: cellSize, OffsetY: statusHeight},
	}
	g.snake = g.cellImage(snakeColor)
	g.head = g.cellImage(headColor)
	g.food = g.cellImage(foodColor)
	return g
}

func (g *Game) cellImage(c color.Color) *ebiten.Image {
	size := max(g.layout.CellSize-1, 1)
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

// WindowSize is the unscaled window size for the session's grid.
func (g *Game) WindowSize() (int, int) {
	w, h := g.layout.Size(g.session.Game().Grid)
	return w, h + statusHeight
}

// Update feeds pressed keys to the session and advances it by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if err := g.session.Key(keySymbols[k]); err != nil {
			return err
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	_, err := g.session.Frame(dt)
	return err
}

// Draw renders the board and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	scene := view.Capture(g.session.Game())

	if scene.HasFood {
		g.drawCell(screen, g.food, scene.Food)
	}
	for j := len(scene.Body) - 1; j >= 0; j-- {
		if !scene.Grid.Contains(scene.Body[j]) {
			continue
		}
		img := g.snake
		if j == 0 {
			img = g.head
		}
		g.drawCell(screen, img, scene.Body[j])
	}

	ebitenutil.DebugPrintAt(screen, scene.Status(), 2, 0)
}

func (g *Game) drawCell(screen, img *ebiten.Image, p types.Point) {
	x, y, _, _ := g.layout.Rect(p)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
