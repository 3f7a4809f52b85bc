// Package connect4 is a Connect Four engine: a bitboard game state with an
// exact negamax solver behind a small, binding-friendly API. Columns are
// 0-based integers, scores are signed integers (0 draw, positive a forced
// win for the side to move, with faster wins scoring higher), and players
// are a two-value enumeration, so a foreign-function boundary can marshal
// everything without ceremony.
//
// Game is the only supported surface; the board, solver and table types
// underneath it are internal.
package connect4

import (
	"github.com/snowdrop4/spooky-connect4/internal/domain"
)

type Player = domain.Player

const (
	Empty  = domain.Empty
	Red    = domain.Red
	Yellow = domain.Yellow
)

type Outcome = domain.Outcome

const (
	RedWin    = domain.RedWin
	YellowWin = domain.YellowWin
	Draw      = domain.Draw
)

// Move records a played column and the row its token landed on.
type Move = domain.Move

const (
	// ErrInvalidMove flags a column out of range, or a query that needs a
	// playable column when none exists.
	ErrInvalidMove = domain.ErrInvalidMove
	// ErrColumnFull flags a drop into a full column.
	ErrColumnFull = domain.ErrColumnFull
	// ErrEmptyColumn flags an undo with nothing to undo.
	ErrEmptyColumn = domain.ErrEmptyColumn
	// ErrGameOver flags a move or search on a finished game.
	ErrGameOver = domain.ErrGameOver
	// ErrInvalidBoardSize flags dimensions outside the supported range.
	ErrInvalidBoardSize = domain.ErrInvalidBoardSize
)

const (
	StandardCols = domain.StandardCols
	StandardRows = domain.StandardRows
)
