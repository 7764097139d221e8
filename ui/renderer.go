package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-astar/game"
	"snake-astar/game/types"
	"snake-astar/pathfinding"
)

const hudHeight = 30

// Frame is the state shown around the board that the game does not own.
type Frame struct {
	Autopilot bool
	Paused    bool
	Path      pathfinding.Path
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	fontSize     int32
}

func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	r.screenWidth = int32(grid.Width) * r.cellSize
	r.screenHeight = int32(grid.Height)*r.cellSize + hudHeight
	r.fontSize = 20
	return r
}

// WindowSize is the window needed to show the whole board and the HUD.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

func (r *Renderer) Draw(g *game.Game, frame Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid(g.Grid)
	r.drawPath(frame.Path)
	if food, ok := g.Food(); ok {
		r.fillCell(food, rl.Red)
	}
	r.drawSnake(g)
	r.drawHUD(g, frame)

	rl.EndDrawing()
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, hudHeight + int32(p.Y)*r.cellSize
}

func (r *Renderer) fillCell(p types.Point, color rl.Color) {
	x, y := r.cellOrigin(p)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawGrid(grid types.Grid) {
	gridColor := rl.Color{R: 30, G: 30, B: 30, A: 255}
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			px, py := r.cellOrigin(types.Point{X: x, Y: y})
			rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, gridColor)
		}
	}
}

// drawPath marks the planned route with a dot per cell.
func (r *Renderer) drawPath(path pathfinding.Path) {
	dot := rl.Color{R: 80, G: 80, B: 160, A: 255}
	radius := float32(r.cellSize) / 6
	for _, p := range path {
		x, y := r.cellOrigin(p)
		rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, radius, dot)
	}
}

func (r *Renderer) drawSnake(g *game.Game) {
	snake := g.Snake
	base := rl.Color{R: snake.Color.R, G: snake.Color.G, B: snake.Color.B, A: 255}
	if snake.Dead {
		base = rl.Gray
	}
	for i, p := range snake.Body {
		color := base
		if i == len(snake.Body)-1 {
			color = rl.Color{
				R: brighten(base.R),
				G: brighten(base.G),
				B: brighten(base.B),
				A: 255,
			}
		}
		r.fillCell(p, color)
	}
	r.drawHeading(snake.Head(), snake.Direction)
}

func brighten(c uint8) uint8 {
	v := float32(c) * 1.3
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	x, y := r.cellOrigin(head)
	size := float32(r.cellSize)
	half := size / 2
	fx, fy := float32(x), float32(y)

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: fx + size, Y: fy + half}, rl.Vector2{X: fx + half, Y: fy}, rl.Vector2{X: fx + half, Y: fy + size}
	case types.Left:
		a, b, c = rl.Vector2{X: fx, Y: fy + half}, rl.Vector2{X: fx + half, Y: fy + size}, rl.Vector2{X: fx + half, Y: fy}
	case types.Down:
		a, b, c = rl.Vector2{X: fx + half, Y: fy + size}, rl.Vector2{X: fx + size, Y: fy + half}, rl.Vector2{X: fx, Y: fy + half}
	case types.Up:
		a, b, c = rl.Vector2{X: fx + half, Y: fy}, rl.Vector2{X: fx, Y: fy + half}, rl.Vector2{X: fx + size, Y: fy + half}
	default:
		return
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawHUD(g *game.Game, frame Frame) {
	rl.DrawRectangle(0, 0, r.screenWidth, hudHeight, rl.DarkGray)

	mode := "manual"
	if frame.Autopilot {
		mode = "autopilot"
	}
	stats := g.Stats()
	text := fmt.Sprintf("Score: %d  High: %d  Games: %d  Mode: %s",
		g.Snake.Score, stats.HighScore(), stats.GamesPlayed(), mode)
	rl.DrawText(text, 5, (hudHeight-r.fontSize)/2, r.fontSize, rl.White)

	var banner string
	switch {
	case g.Won:
		banner = "Board filled! Press R to restart"
	case g.Over:
		banner = fmt.Sprintf("Game over (%s). Press R to restart", g.Cause)
	case frame.Paused:
		banner = "Paused"
	}
	if banner != "" {
		width := rl.MeasureText(banner, r.fontSize)
		rl.DrawText(banner, (r.screenWidth-width)/2, r.screenHeight/2, r.fontSize, rl.White)
	}
}
