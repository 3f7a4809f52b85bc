package connect4

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandardGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(WithTableSize(1 << 12))
	require.NoError(t, err)
	return g
}

func playAll(t *testing.T, g *Game, cols ...int) {
	t.Helper()
	for _, col := range cols {
		require.NoError(t, g.Play(col))
	}
}

func TestNewGameDefaults(t *testing.T) {
	g := newStandardGame(t)
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, Red, g.Turn())
	assert.False(t, g.IsOver())
	assert.False(t, g.IsDraw())
	assert.Empty(t, g.History())
	assert.Equal(t, []int{3, 2, 4, 1, 5, 0, 6}, g.LegalMoves())
}

func TestNewGameSizeValidation(t *testing.T) {
	_, err := NewGame(WithSize(3, 6))
	assert.ErrorIs(t, err, ErrInvalidBoardSize)
	_, err = NewGame(WithSize(13, 4))
	assert.ErrorIs(t, err, ErrInvalidBoardSize)

	g, err := NewGame(WithSize(12, 4), WithTableSize(1<<10))
	require.NoError(t, err)
	assert.Equal(t, 12, g.Cols())
	assert.Equal(t, 4, g.Rows())
}

func TestPlayRecordsHistory(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 3, 0)

	assert.Equal(t, []Move{{Col: 3, Row: 0}, {Col: 3, Row: 1}, {Col: 0, Row: 0}}, g.History())
	assert.Equal(t, Yellow, g.Turn())
	assert.Equal(t, Red, g.Cell(3, 0))
	assert.Equal(t, Yellow, g.Cell(3, 1))
	assert.Equal(t, Red, g.Cell(0, 0))
}

func TestPlayErrors(t *testing.T) {
	g := newStandardGame(t)
	assert.ErrorIs(t, g.Play(-1), ErrInvalidMove)
	assert.ErrorIs(t, g.Play(7), ErrInvalidMove)

	playAll(t, g, 2, 2, 2, 2, 2, 2)
	assert.ErrorIs(t, g.Play(2), ErrColumnFull)
	assert.False(t, g.IsOver())
}

func TestVerticalWinEndsGame(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4, 3, 4, 3, 4)
	require.False(t, g.IsOver())

	require.NoError(t, g.Play(3))
	assert.True(t, g.IsOver())

	winner, won := g.Winner()
	require.True(t, won)
	assert.Equal(t, Red, winner)
	assert.False(t, g.IsDraw())

	outcome, done := g.Outcome()
	require.True(t, done)
	assert.Equal(t, RedWin, outcome)

	assert.ErrorIs(t, g.Play(4), ErrGameOver)
	assert.Nil(t, g.LegalMoves())
	_, err := g.BestMove(context.Background())
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestDrawGame(t *testing.T) {
	g := newStandardGame(t)
	for i := 0; i < 6; i++ {
		playAll(t, g, 0, 1, 2)
	}
	for i := 0; i < 6; i++ {
		playAll(t, g, 3, 4, 5)
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Play(6))
	}
	require.False(t, g.IsOver())

	require.NoError(t, g.Play(6))
	assert.True(t, g.IsOver())
	assert.True(t, g.IsDraw())
	_, won := g.Winner()
	assert.False(t, won)

	outcome, done := g.Outcome()
	require.True(t, done)
	assert.Equal(t, Draw, outcome)

	score, err := g.Score(context.Background())
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestUndoRestoresState(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4, 3)

	require.NoError(t, g.Undo())
	require.NoError(t, g.Undo())
	require.NoError(t, g.Undo())

	assert.Empty(t, g.History())
	assert.Equal(t, Red, g.Turn())
	assert.Equal(t, Empty, g.Cell(3, 0))
	assert.Equal(t, 0, g.Height(3))

	assert.ErrorIs(t, g.Undo(), ErrEmptyColumn)
}

func TestUndoReopensFinishedGame(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4, 3, 4, 3, 4, 3)
	require.True(t, g.IsOver())

	require.NoError(t, g.Undo())
	assert.False(t, g.IsOver())
	_, won := g.Winner()
	assert.False(t, won)
	assert.Equal(t, Red, g.Turn())
	require.NoError(t, g.Play(3))
	assert.True(t, g.IsOver())
}

func TestBestMoveFindsWin(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4, 3, 4, 3, 4)

	col, err := g.BestMove(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, col)

	score, err := g.Score(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 18, score)
}

func TestScoreOfLostGame(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4, 3, 4, 3, 4, 3)

	score, err := g.Score(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -18, score)
}

func TestCloneIsIndependent(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4)

	c := g.Clone()
	require.NoError(t, c.Play(3))

	assert.Equal(t, 2, len(g.History()))
	assert.Equal(t, 3, len(c.History()))
	assert.Equal(t, 1, g.Height(3))
	assert.Equal(t, 2, c.Height(3))
}

func TestResetKeepsDimensions(t *testing.T) {
	g, err := NewGame(WithSize(5, 4), WithTableSize(1<<10))
	require.NoError(t, err)
	playAll(t, g, 2, 2, 1)

	g.Reset()
	assert.Empty(t, g.History())
	assert.Equal(t, Red, g.Turn())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 0, g.Height(2))
	assert.False(t, g.IsOver())
}

func TestWinAndDrawAreExclusive(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 4, 3, 4, 3, 4, 3)

	_, won := g.Winner()
	assert.True(t, won)
	assert.False(t, g.IsDraw())
}

func TestStringShowsBoard(t *testing.T) {
	g := newStandardGame(t)
	playAll(t, g, 3, 3)
	s := g.String()
	assert.Contains(t, s, "R")
	assert.Contains(t, s, "Y")
}
