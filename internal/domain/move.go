package domain

import "fmt"

// Move is a column choice together with the row the token lands on. The
// column alone determines the move; the row is derived from the board and
// carried so histories can be replayed and rendered without re-simulation.
type Move struct {
	Col int
	Row int
}

func (m Move) String() string {
	return fmt.Sprintf("col %d row %d", m.Col, m.Row)
}
