// Package solver computes exact Connect Four evaluations with a negamax
// search: alpha-beta pruning over the bitboard, transposition caching,
// heuristic move ordering and iterative null-window narrowing. The search
// is exhaustive, so the table and the ordering only ever change how fast an
// answer arrives, never which answer.
package solver

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/snowdrop4/spooky-connect4/internal/bitboard"
	"github.com/snowdrop4/spooky-connect4/internal/domain"
)

// Config carries the solver knobs. Zero values fall back to defaults.
type Config struct {
	// TableSize is the transposition table capacity in entries, rounded up
	// to a power of two.
	TableSize int
	// Workers splits the root branches across goroutines when > 1. The
	// transposition table is shared between them.
	Workers int
	Logger  *zap.Logger
}

const DefaultTableSize = 1 << 20

// Solver owns a transposition table and searches positions handed to it.
// Each Solver is independent; nothing is process-global, so tests can run
// solvers side by side without cross-contamination.
type Solver struct {
	table   *Table
	log     *zap.Logger
	workers int
	nodes   atomic.Int64
}

func New(cfg Config) *Solver {
	if cfg.TableSize <= 0 {
		cfg.TableSize = DefaultTableSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Solver{
		table:   NewTable(cfg.TableSize),
		log:     cfg.Logger,
		workers: cfg.Workers,
	}
}

// Nodes is the cumulative count of positions expanded by this solver.
func (s *Solver) Nodes() int64 { return s.nodes.Load() }

// Reset empties the transposition table and the node counter.
func (s *Solver) Reset() {
	s.table.Clear()
	s.nodes.Store(0)
}

// Solve returns the exact game-theoretic score of the position for the side
// to move: 0 for a draw, positive for a forced win (larger = faster),
// negative for a forced loss (larger = slower). Terminal positions are
// scored directly.
//
// The search narrows a [min,max] score window with null-window probes; ctx
// is checked between probes only, and an interrupted solve returns the
// midpoint of the window proven so far alongside ctx.Err().
func (s *Solver) Solve(ctx context.Context, p bitboard.Position) (int, error) {
	geo := p.Geometry()
	area := geo.Area()

	if _, won := p.Winner(); won {
		// The previous ply ended the game; the side to move has lost.
		return -(area + 2 - p.Moves()) / 2, nil
	}
	if p.IsFull() {
		return 0, nil
	}
	if p.CanWinNext() {
		return (area + 1 - p.Moves()) / 2, nil
	}

	start := time.Now()
	min := -(area - p.Moves()) / 2
	max := (area - 1 - p.Moves()) / 2
	for min < max {
		select {
		case <-ctx.Done():
			s.log.Debug("solve interrupted",
				zap.Int("min", min),
				zap.Int("max", max),
				zap.Int64("nodes", s.nodes.Load()))
			return (min + max) / 2, ctx.Err()
		default:
		}

		med := min + (max-min)/2
		if med <= 0 && min/2 < med {
			med = min / 2
		} else if med >= 0 && max/2 > med {
			med = max / 2
		}

		r := s.negamax(p, med, med+1)
		if r <= med {
			max = r
		} else {
			min = r
		}
	}

	s.log.Debug("solve finished",
		zap.Int("score", min),
		zap.Int("ply", p.Moves()),
		zap.Int64("nodes", s.nodes.Load()),
		zap.Duration("elapsed", time.Since(start)))
	return min, nil
}

// BestMove picks the legal column with the best negated child score.
// Immediate wins short-circuit the search, and ties keep the center-first
// exploration order. It fails with ErrGameOver on a finished game and
// ErrInvalidMove when no column is playable.
func (s *Solver) BestMove(ctx context.Context, p bitboard.Position) (int, error) {
	if _, won := p.Winner(); won {
		return -1, domain.ErrGameOver
	}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return -1, domain.ErrInvalidMove
	}
	for _, col := range moves {
		if p.IsWinningMove(col) {
			return col, nil
		}
	}

	start := time.Now()
	scores := make([]int, len(moves))
	if s.workers > 1 && len(moves) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i, col := range moves {
			i, col := i, col
			g.Go(func() error {
				child := p
				if err := child.Play(col); err != nil {
					return err
				}
				score, err := s.Solve(gctx, child)
				if err != nil {
					return err
				}
				scores[i] = -score
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return -1, err
		}
	} else {
		for i, col := range moves {
			child := p
			if err := child.Play(col); err != nil {
				return -1, err
			}
			score, err := s.Solve(ctx, child)
			if err != nil {
				return -1, err
			}
			scores[i] = -score
		}
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	s.log.Debug("best move",
		zap.Int("col", moves[best]),
		zap.Int("score", scores[best]),
		zap.Int("ply", p.Moves()),
		zap.Duration("elapsed", time.Since(start)))
	return moves[best], nil
}

// negamax is fail-soft alpha-beta. Preconditions: nobody has won yet and
// the side to move cannot win this ply (both checked before recursing, so
// wins surface one ply early via CanWinNext).
func (s *Solver) negamax(p bitboard.Position, alpha, beta int) int {
	s.nodes.Add(1)
	geo := p.Geometry()
	area := geo.Area()

	if p.CanWinNext() {
		return (area + 1 - p.Moves()) / 2
	}
	possible := p.PossibleNonLosingMoves()
	if possible == 0 {
		// Every move lets the opponent win next ply.
		return -(area - p.Moves()) / 2
	}
	if p.Moves() >= area-2 {
		return 0
	}

	// Without an immediate win, the score can only fall inside these
	// bounds; tightening the window here prunes before any expansion.
	minScore := -(area - 2 - p.Moves()) / 2
	maxScore := (area - 1 - p.Moves()) / 2
	if alpha < minScore {
		alpha = minScore
		if alpha >= beta {
			return alpha
		}
	}
	if beta > maxScore {
		beta = maxScore
		if alpha >= beta {
			return beta
		}
	}

	key, mirrored := p.Canonical()
	hint := -1
	if e, ok := s.table.Lookup(key); ok {
		if int(e.Lower) >= beta {
			return int(e.Lower)
		}
		if int(e.Upper) <= alpha {
			return int(e.Upper)
		}
		if l := int(e.Lower); l > alpha {
			alpha = l
		}
		if u := int(e.Upper); u < beta {
			beta = u
		}
		if alpha >= beta {
			return alpha
		}
		if e.Best >= 0 {
			hint = int(e.Best)
			if mirrored {
				hint = p.MirrorCol(hint)
			}
		}
	}

	// Candidate columns sorted by the open-threats heuristic; insertion
	// keeps the center-out order between equal scores, and a cached best
	// move jumps the queue.
	var cols [16]int
	var rank [16]int
	n := 0
	for _, col := range geo.MoveOrder() {
		if possible&geo.ColumnMask(col) == 0 {
			continue
		}
		sc := p.ScoreMove(col)
		if col == hint {
			sc = area // ahead of everything
		}
		i := n
		for i > 0 && rank[i-1] < sc {
			cols[i], rank[i] = cols[i-1], rank[i-1]
			i--
		}
		cols[i], rank[i] = col, sc
		n++
	}

	alpha0 := alpha
	bestScore := -area
	bestCol := -1
	for i := 0; i < n; i++ {
		child := p
		if err := child.Play(cols[i]); err != nil {
			continue // unreachable: cols come from the possible mask
		}
		score := -s.negamax(child, -beta, -alpha)
		if score > bestScore {
			bestScore, bestCol = score, cols[i]
		}
		if score >= beta {
			s.store(p, key, mirrored, Entry{
				Lower: int8(score),
				Upper: int8(maxScore),
				Best:  int8(cols[i]),
			})
			return score
		}
		if score > alpha {
			alpha = score
		}
	}

	e := Entry{Lower: int8(bestScore), Upper: int8(bestScore), Best: int8(bestCol)}
	if bestScore <= alpha0 {
		e.Lower = int8(minScore)
	}
	s.store(p, key, mirrored, e)
	return bestScore
}

func (s *Solver) store(p bitboard.Position, key uint64, mirrored bool, e Entry) {
	if mirrored && e.Best >= 0 {
		e.Best = int8(p.MirrorCol(int(e.Best)))
	}
	s.table.Store(key, e)
}
