package bitboard

import (
	"github.com/snowdrop4/spooky-connect4/internal/domain"
)

// ParseMoves replays a sequence of 0-based column digits from the empty
// position. The final move may win; anything played after a win fails with
// ErrGameOver.
func ParseMoves(geo *Geometry, seq string) (Position, error) {
	p := New(geo)
	for _, c := range seq {
		if c < '0' || c > '9' {
			return Position{}, domain.ErrInvalidMove
		}
		if _, won := p.Winner(); won {
			return Position{}, domain.ErrGameOver
		}
		if err := p.Play(int(c - '0')); err != nil {
			return Position{}, err
		}
	}
	return p, nil
}
