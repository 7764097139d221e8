package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-astar/game/types"
)

type Action int

const (
	ActionNone Action = iota
	ActionToggleAutopilot
	ActionPause
	ActionRestart
	ActionQuit
)

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

var actionKeys = []struct {
	key    int32
	action Action
}{
	{rl.KeyA, ActionToggleAutopilot},
	{rl.KeyP, ActionPause},
	{rl.KeyR, ActionRestart},
	{rl.KeyQ, ActionQuit},
	{rl.KeyEscape, ActionQuit},
}

// Input is what the keyboard produced during one frame.
type Input struct {
	Directions []types.Direction
	Actions    []Action
}

// PollInput reads the keys pressed since the previous frame.
func PollInput() Input {
	var in Input
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Directions = append(in.Directions, k.dir)
		}
	}
	for _, k := range actionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Actions = append(in.Actions, k.action)
		}
	}
	return in
}

func (in Input) Has(action Action) bool {
	for _, a := range in.Actions {
		if a == action {
			return true
		}
	}
	return false
}
