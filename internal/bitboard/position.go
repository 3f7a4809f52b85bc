package bitboard

import (
	"math/bits"
	"strings"

	"github.com/snowdrop4/spooky-connect4/internal/domain"
)

// Position is a compact board state: the side to move's stones, the mask of
// all stones, and the ply count. It is a small value type; searching copies
// it instead of undoing moves, so every return path leaves the caller's
// state untouched.
type Position struct {
	geo     *Geometry
	current uint64
	mask    uint64
	moves   int
}

// New returns the empty position for the given geometry.
func New(geo *Geometry) Position {
	return Position{geo: geo}
}

func (p Position) Geometry() *Geometry { return p.geo }

// Moves is the ply count: the number of tokens on the board.
func (p Position) Moves() int { return p.moves }

// SideToMove is Red on even plies.
func (p Position) SideToMove() domain.Player {
	if p.moves%2 == 0 {
		return domain.Red
	}
	return domain.Yellow
}

// Playable reports whether col is in range and not full.
func (p Position) Playable(col int) bool {
	if col < 0 || col >= p.geo.cols {
		return false
	}
	return p.mask&p.geo.topMask(col) == 0
}

// Play drops the current player's token into col.
func (p *Position) Play(col int) error {
	if col < 0 || col >= p.geo.cols {
		return domain.ErrInvalidMove
	}
	if p.mask&p.geo.topMask(col) != 0 {
		return domain.ErrColumnFull
	}
	p.current ^= p.mask
	p.mask |= p.mask + p.geo.bottomMask(col)
	p.moves++
	return nil
}

// Undo removes the top token of col. The caller guarantees LIFO discipline:
// the column must be the one played last, or the position silently corrupts
// whose stone is whose.
func (p *Position) Undo(col int) error {
	if col < 0 || col >= p.geo.cols {
		return domain.ErrInvalidMove
	}
	h := p.Height(col)
	if h == 0 {
		return domain.ErrEmptyColumn
	}
	p.mask ^= p.geo.bottomMask(col) << (h - 1)
	p.current ^= p.mask
	p.moves--
	return nil
}

// Height is the number of tokens in col.
func (p Position) Height(col int) int {
	if col < 0 || col >= p.geo.cols {
		return 0
	}
	return bits.OnesCount64(p.mask & p.geo.ColumnMask(col))
}

// Cell returns the owner of the token at (col, row), or Empty.
func (p Position) Cell(col, row int) domain.Player {
	if col < 0 || col >= p.geo.cols || row < 0 || row >= p.geo.rows {
		return domain.Empty
	}
	b := p.geo.bit(col, row)
	if p.mask&b == 0 {
		return domain.Empty
	}
	if p.current&b != 0 {
		return p.SideToMove()
	}
	return p.SideToMove().Opponent()
}

// IsFull reports whether every column is full.
func (p Position) IsFull() bool {
	return p.moves == p.geo.area
}

// Winner returns the side holding a 4-alignment, if any. At most one side
// can have one, since play stops the ply after it appears.
func (p Position) Winner() (domain.Player, bool) {
	if p.geo.hasAlignment(p.current) {
		return p.SideToMove(), true
	}
	if p.geo.hasAlignment(p.current ^ p.mask) {
		return p.SideToMove().Opponent(), true
	}
	return domain.Empty, false
}

// IsDraw is true once the board is full with no alignment.
func (p Position) IsDraw() bool {
	if !p.IsFull() {
		return false
	}
	_, won := p.Winner()
	return !won
}

// LegalMoves lists the playable columns center-out (3,2,4,1,5,0,6 on the
// standard board).
func (p Position) LegalMoves() []int {
	moves := make([]int, 0, p.geo.cols)
	for _, col := range p.geo.order {
		if p.mask&p.geo.topMask(col) == 0 {
			moves = append(moves, col)
		}
	}
	return moves
}

// possible is the mask of cells a token can land on this ply.
func (p Position) possible() uint64 {
	return (p.mask + p.geo.bottom) & p.geo.board
}

// IsWinningMove reports, without mutating the position, whether playing col
// completes a 4-alignment for the current player.
func (p Position) IsWinningMove(col int) bool {
	if !p.Playable(col) {
		return false
	}
	return p.geo.winningCells(p.current, p.mask)&p.possible()&p.geo.ColumnMask(col) != 0
}

// CanWinNext reports whether the current player has any winning move.
func (p Position) CanWinNext() bool {
	return p.geo.winningCells(p.current, p.mask)&p.possible() != 0
}

// PossibleNonLosingMoves masks the landing cells that do not hand the
// opponent an immediate win. Zero means every move loses on the spot.
func (p Position) PossibleNonLosingMoves() uint64 {
	possible := p.possible()
	opponentWins := p.geo.winningCells(p.current^p.mask, p.mask)

	forced := possible & opponentWins
	if forced != 0 {
		if forced&(forced-1) != 0 {
			// Two or more opponent threats cannot all be blocked.
			return 0
		}
		possible = forced
	}

	// Never play directly below an opponent winning cell.
	return possible &^ (opponentWins >> 1)
}

// ScoreMove is the move-ordering heuristic: the number of open
// 3-alignments the current player would own after playing col.
func (p Position) ScoreMove(col int) int {
	landing := (p.mask + p.geo.bottomMask(col)) & p.geo.ColumnMask(col)
	return bits.OnesCount64(p.geo.winningCells(p.current|landing, p.mask))
}

// Key is the canonical transposition key: the smaller of the position key
// and the key of its left-right mirror, so symmetric positions share table
// entries. current+mask encodes the board and the ply parity unambiguously.
func (p Position) Key() uint64 {
	key, _ := p.Canonical()
	return key
}

// Canonical returns the canonical key and whether it belongs to the
// mirrored orientation. Callers storing column data under the key must
// mirror the columns when the flag is set.
func (p Position) Canonical() (uint64, bool) {
	key := p.current + p.mask
	mc, mm := p.mirrored()
	if mirrored := mc + mm; mirrored < key {
		return mirrored, true
	}
	return key, false
}

// MirrorCol maps a column to its left-right mirror image.
func (p Position) MirrorCol(col int) int {
	return p.geo.cols - 1 - col
}

func (p Position) mirrored() (current, mask uint64) {
	g := p.geo
	for col := 0; col < g.cols/2; col++ {
		twin := g.cols - 1 - col
		shift := (twin - col) * g.stride()
		current |= (p.current & g.ColumnMask(col)) << shift
		current |= (p.current & g.ColumnMask(twin)) >> shift
		mask |= (p.mask & g.ColumnMask(col)) << shift
		mask |= (p.mask & g.ColumnMask(twin)) >> shift
	}
	if g.cols%2 == 1 {
		center := g.ColumnMask(g.cols / 2)
		current |= p.current & center
		mask |= p.mask & center
	}
	return current, mask
}

// String renders the board top row first, with column numbers underneath.
func (p Position) String() string {
	var b strings.Builder
	for row := p.geo.rows - 1; row >= 0; row-- {
		b.WriteByte('|')
		for col := 0; col < p.geo.cols; col++ {
			b.WriteRune(p.Cell(col, row).Rune())
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(' ')
	for col := 0; col < p.geo.cols; col++ {
		b.WriteByte(byte('0' + col%10))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}
