package ui

import (
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // Padding around game area

var (
	snakeColor = rl.Color{R: 0, G: 204, B: 0, A: 255}
	headColor  = rl.Color{R: 0, G: 255, B: 60, A: 255}
	foodColor  = rl.Color{R: 204, G: 0, B: 0, A: 255}
)

// Renderer draws a game into the current raylib window.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       view.Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	scene := view.Capture(g)

	fontSize := max(r.screenHeight/25, 10)
	r.layout = view.Fit(scene.Grid, int(r.screenWidth), int(r.screenHeight), borderPadding)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gw, gh := r.layout.Size(scene.Grid)
	rl.DrawRectangleLines(int32(r.layout.OffsetX-1), int32(r.layout.OffsetY-1), int32(gw+2), int32(gh+2), rl.DarkGray)

	if scene.HasFood {
		r.drawCell(scene.Food, foodColor)
	}

	for j := len(scene.Body) - 1; j >= 0; j-- {
		p := scene.Body[j]
		if !scene.Grid.Contains(p) {
			continue
		}
		if j == 0 {
			r.drawCell(p, headColor)
			r.drawHeading(p, scene.Heading)
			continue
		}
		r.drawCell(p, snakeColor)
	}

	color := rl.White
	if scene.Over {
		color = rl.Red
	}
	text := scene.Status()
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, int32(r.layout.OffsetY), fontSize, color)

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x, y, w, h := r.layout.Rect(p)
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), color)
}

// drawHeading marks the head with a small triangle pointing along the heading.
func (r *Renderer) drawHeading(p types.Point, dir types.Direction) {
	x, y, size, _ := r.layout.Rect(p)
	headX, headY := float32(x), float32(y)
	cell := float32(size)
	half := cell / 2

	switch dir {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	default:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	}
}

// KeySymbol names the raylib key for input.Bindings, or "" for keys the game ignores.
func KeySymbol(key int32) string {
	switch key {
	case rl.KeyUp:
		return "up"
	case rl.KeyDown:
		return "down"
	case rl.KeyLeft:
		return "left"
	case rl.KeyRight:
		return "right"
	case rl.KeyW:
		return "w"
	case rl.KeyA:
		return "a"
	case rl.KeyS:
		return "s"
	case rl.KeyD:
		return "d"
	case rl.KeyH:
		return "h"
	case rl.KeyJ:
		return "j"
	case rl.KeyK:
		return "k"
	case rl.KeyL:
		return "l"
	case rl.KeyR:
		return "r"
	default:
		return ""
	}
}
