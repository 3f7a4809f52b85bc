package connect4

import (
	"context"

	"github.com/snowdrop4/spooky-connect4/internal/bitboard"
	"github.com/snowdrop4/spooky-connect4/internal/domain"
	"github.com/snowdrop4/spooky-connect4/internal/solver"
)

// Game is a Connect Four game with its own solver. It is not safe for
// concurrent mutation; the solver underneath may still fan out internally.
type Game struct {
	geo     *bitboard.Geometry
	pos     bitboard.Position
	solver  *solver.Solver
	history []domain.Move
	over    bool
	outcome domain.Outcome
}

// NewGame starts an empty game. Red moves first.
func NewGame(opts ...Option) (*Game, error) {
	st := defaultSettings()
	for _, opt := range opts {
		opt(&st)
	}

	geo, err := bitboard.NewGeometry(st.cols, st.rows)
	if err != nil {
		return nil, err
	}
	return &Game{
		geo: geo,
		pos: bitboard.New(geo),
		solver: solver.New(solver.Config{
			TableSize: st.tableSize,
			Workers:   st.workers,
			Logger:    st.logger,
		}),
	}, nil
}

func (g *Game) Cols() int { return g.geo.Cols() }
func (g *Game) Rows() int { return g.geo.Rows() }

// Turn is the side to move. Meaningless once the game is over.
func (g *Game) Turn() Player { return g.pos.SideToMove() }

// Play drops the current player's token into col.
func (g *Game) Play(col int) error {
	if g.over {
		return domain.ErrGameOver
	}

	row := g.pos.Height(col)
	mover := g.pos.SideToMove()
	wins := g.pos.IsWinningMove(col)
	if err := g.pos.Play(col); err != nil {
		return err
	}
	g.history = append(g.history, domain.Move{Col: col, Row: row})

	if wins {
		g.over = true
		if mover == domain.Red {
			g.outcome = domain.RedWin
		} else {
			g.outcome = domain.YellowWin
		}
	} else if g.pos.IsFull() {
		g.over = true
		g.outcome = domain.Draw
	}
	return nil
}

// Undo takes back the last move, reopening a finished game if needed.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return domain.ErrEmptyColumn
	}
	last := g.history[len(g.history)-1]
	if err := g.pos.Undo(last.Col); err != nil {
		return err
	}
	g.history = g.history[:len(g.history)-1]
	g.over = false
	g.outcome = 0
	return nil
}

// Winner reports the winning side, if the game has one.
func (g *Game) Winner() (Player, bool) {
	if !g.over {
		return domain.Empty, false
	}
	return g.outcome.Winner()
}

// IsDraw reports whether the game ended with a full board and no winner.
func (g *Game) IsDraw() bool {
	return g.over && g.outcome.IsDraw()
}

func (g *Game) IsOver() bool { return g.over }

// Outcome returns the terminal result once the game is over.
func (g *Game) Outcome() (Outcome, bool) {
	if !g.over {
		return 0, false
	}
	return g.outcome, true
}

// LegalMoves lists the playable columns center-out. Empty once the game is
// over.
func (g *Game) LegalMoves() []int {
	if g.over {
		return nil
	}
	return g.pos.LegalMoves()
}

// Height is the number of tokens in col.
func (g *Game) Height(col int) int { return g.pos.Height(col) }

// Cell returns the owner of the token at (col, row), or Empty. Row 0 is
// the bottom.
func (g *Game) Cell(col, row int) Player { return g.pos.Cell(col, row) }

// History returns the moves played so far, oldest first.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// BestMove searches for the strongest column for the side to move. It
// fails with ErrGameOver after a win and ErrInvalidMove on a full board.
// Repeated calls on the same position return the same column.
func (g *Game) BestMove(ctx context.Context) (int, error) {
	return g.solver.BestMove(ctx, g.pos)
}

// Score is the exact evaluation of the current position for the side to
// move: 0 a draw, positive a forced win (higher = sooner), negative a
// forced loss (higher = later). Finished games score without searching.
func (g *Game) Score(ctx context.Context) (int, error) {
	return g.solver.Solve(ctx, g.pos)
}

// Clone copies the game state. The clone shares the solver and its
// transposition table, which is safe: cached entries only affect speed.
func (g *Game) Clone() *Game {
	out := *g
	out.history = make([]domain.Move, len(g.history))
	copy(out.history, g.history)
	return &out
}

// Reset clears the board for a new game, keeping the solver and whatever
// its table has learned.
func (g *Game) Reset() {
	g.pos = bitboard.New(g.geo)
	g.history = g.history[:0]
	g.over = false
	g.outcome = 0
}

func (g *Game) String() string {
	return g.pos.String()
}
