package domain

// Player identifies a side. Red always moves first. The zero value marks an
// empty cell, so the whole enumeration stays trivially representable across
// a foreign-function boundary.
type Player int8

const (
	Empty  Player = 0
	Red    Player = 1
	Yellow Player = 2
)

func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (p Player) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	}
	return "empty"
}

// Rune is the single-character form used by board rendering.
func (p Player) Rune() rune {
	switch p {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	}
	return '.'
}

const (
	StandardCols = 7
	StandardRows = 6
	ToWin        = 4
)

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove      Error = "invalid move"
	ErrColumnFull       Error = "column is full"
	ErrEmptyColumn      Error = "column is empty"
	ErrGameOver         Error = "game is over"
	ErrInvalidBoardSize Error = "invalid board size"
)
