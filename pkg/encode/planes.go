// Package encode turns game states into the flat tensors and action
// indices a neural-net training pipeline consumes: a stack of binary piece
// planes over the last few positions plus a colour plane, and a move <->
// policy-index mapping.
package encode

import (
	connect4 "github.com/snowdrop4/spooky-connect4"
)

const (
	piecePlanes = 2 // one per side

	// HistoryLength is how many positions, newest first, the plane stack
	// covers.
	HistoryLength = 8

	// TotalInputPlanes is the tensor depth: piece planes per history step
	// plus the colour plane.
	TotalInputPlanes = HistoryLength*piecePlanes + 1
)

// GamePlanes encodes the game from the side to move's perspective. It
// returns the flat row-major data (row 0 is the bottom of the board) and
// the tensor shape as (planes, rows, cols). Plane 2t holds the
// perspective's stones t plies ago, plane 2t+1 the opponent's; history
// steps older than the game are all zero. The last plane is 1 everywhere
// when the perspective is Red.
func GamePlanes(g *connect4.Game) ([]float32, int, int, int) {
	perspective := g.Turn()
	cols, rows := g.Cols(), g.Rows()
	boardSize := rows * cols
	data := make([]float32, TotalInputPlanes*boardSize)

	snap := g.Clone()
	stepsBack := HistoryLength - 1
	if n := len(snap.History()); n < stepsBack {
		stepsBack = n
	}

	fillPlanes(data, snap, perspective, 0)
	for t := 1; t <= stepsBack; t++ {
		if err := snap.Undo(); err != nil {
			break
		}
		fillPlanes(data, snap, perspective, t)
	}

	if perspective == connect4.Red {
		offset := HistoryLength * piecePlanes * boardSize
		for i := 0; i < boardSize; i++ {
			data[offset+i] = 1
		}
	}
	return data, TotalInputPlanes, rows, cols
}

func fillPlanes(data []float32, g *connect4.Game, perspective connect4.Player, t int) {
	cols, rows := g.Cols(), g.Rows()
	boardSize := rows * cols
	own := t * piecePlanes * boardSize
	opp := own + boardSize

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			switch g.Cell(col, row) {
			case perspective:
				data[own+row*cols+col] = 1
			case perspective.Opponent():
				data[opp+row*cols+col] = 1
			}
		}
	}
}

// MoveIndex is the policy-head action index of a move: its column.
func MoveIndex(m connect4.Move) int {
	return m.Col
}

// DecodeMove maps an action index back to the move it would make in the
// current position, deriving the landing row. It reports false when the
// action is out of range or the column is full.
func DecodeMove(g *connect4.Game, action int) (connect4.Move, bool) {
	if action < 0 || action >= g.Cols() {
		return connect4.Move{}, false
	}
	row := g.Height(action)
	if row >= g.Rows() {
		return connect4.Move{}, false
	}
	return connect4.Move{Col: action, Row: row}, true
}
