// Package bitboard packs a Connect Four position into a pair of uint64
// bitsets, one word per position. Each column occupies rows+1 consecutive
// bits; the extra sentinel bit on top of every column catches full columns
// and stops shifted alignments from bleeding into the neighbouring column.
//
// For the standard 7x6 board the bit order is:
//
//	  6 13 20 27 34 41 48
//	 ---------------------
//	| 5 12 19 26 33 40 47 |
//	| 4 11 18 25 32 39 46 |
//	| 3 10 17 24 31 38 45 |
//	| 2  9 16 23 30 37 44 |
//	| 1  8 15 22 29 36 43 |
//	| 0  7 14 21 28 35 42 |
//	 ---------------------
package bitboard

import (
	"github.com/snowdrop4/spooky-connect4/internal/domain"
)

// Geometry holds the precomputed masks for one board size. Boards are
// limited to sizes whose encoding fits a single word: cols*(rows+1) <= 64,
// which covers the standard 7x6 board and everything up to 8x7 or 12x4.
type Geometry struct {
	cols int
	rows int
	area int

	bottom uint64 // row 0 of every column
	board  uint64 // every playable cell
	order  []int  // columns center-out, left neighbour before right
}

// NewGeometry validates the dimensions and precomputes the masks.
func NewGeometry(cols, rows int) (*Geometry, error) {
	if cols < domain.ToWin || rows < domain.ToWin {
		return nil, domain.ErrInvalidBoardSize
	}
	if cols*(rows+1) > 64 {
		return nil, domain.ErrInvalidBoardSize
	}

	g := &Geometry{
		cols: cols,
		rows: rows,
		area: cols * rows,
	}
	for col := 0; col < cols; col++ {
		g.bottom |= g.bottomMask(col)
	}
	g.board = g.bottom * ((1 << rows) - 1)

	// Exploration order: center column first, then alternating outward.
	// For 7 columns this yields 3,2,4,1,5,0,6.
	center := cols / 2
	g.order = make([]int, 0, cols)
	for k := 0; k < cols; k++ {
		col := center
		if k%2 == 1 {
			col = center - (k+1)/2
		} else if k > 0 {
			col = center + k/2
		}
		g.order = append(g.order, col)
	}
	return g, nil
}

// Standard returns the geometry of the classic 7x6 board.
func Standard() *Geometry {
	g, err := NewGeometry(domain.StandardCols, domain.StandardRows)
	if err != nil {
		panic(err) // standard dimensions are always valid
	}
	return g
}

func (g *Geometry) Cols() int { return g.cols }
func (g *Geometry) Rows() int { return g.rows }
func (g *Geometry) Area() int { return g.area }

// MoveOrder is the center-out column exploration order. Callers must not
// mutate the returned slice.
func (g *Geometry) MoveOrder() []int { return g.order }

// MinScore and MaxScore bound the game-theoretic score of any position on
// this board: a win with the last token scores 1, the fastest possible win
// (4 own tokens against 3) scores (area+1)/2 - 3.
func (g *Geometry) MinScore() int { return -g.area/2 + 3 }
func (g *Geometry) MaxScore() int { return (g.area+1)/2 - 3 }

// stride is the bit distance between horizontally adjacent cells.
func (g *Geometry) stride() int { return g.rows + 1 }

func (g *Geometry) bit(col, row int) uint64 {
	return 1 << (col*g.stride() + row)
}

// ColumnMask covers every playable cell of one column.
func (g *Geometry) ColumnMask(col int) uint64 {
	return ((1 << g.rows) - 1) << (col * g.stride())
}

func (g *Geometry) bottomMask(col int) uint64 {
	return 1 << (col * g.stride())
}

func (g *Geometry) topMask(col int) uint64 {
	return 1 << (col*g.stride() + g.rows - 1)
}

// winningCells returns a mask of every empty cell that would complete a
// 4-alignment for the given stones, including cells not yet reachable by
// gravity. Three shift-and-AND steps per direction, no cell scanning.
func (g *Geometry) winningCells(stones, occupied uint64) uint64 {
	// Vertical.
	r := (stones << 1) & (stones << 2) & (stones << 3)

	// Horizontal, then the two diagonals.
	for _, d := range [3]int{g.stride(), g.stride() - 1, g.stride() + 1} {
		p := (stones << d) & (stones << (2 * d))
		r |= p & (stones << (3 * d))
		r |= p & (stones >> d)
		p = (stones >> d) & (stones >> (2 * d))
		r |= p & (stones >> (3 * d))
		r |= p & (stones << d)
	}

	return r & (g.board ^ occupied)
}

// hasAlignment reports whether the stones contain four in a row in any
// direction.
func (g *Geometry) hasAlignment(stones uint64) bool {
	m := stones & (stones >> 1)
	if m&(m>>2) != 0 {
		return true
	}
	for _, d := range [3]int{g.stride(), g.stride() - 1, g.stride() + 1} {
		m = stones & (stones >> d)
		if m&(m>>(2*d)) != 0 {
			return true
		}
	}
	return false
}
