package domain

// Outcome is the terminal result of a finished game.
type Outcome int8

const (
	RedWin Outcome = iota + 1
	YellowWin
	Draw
)

// Winner reports the winning side, if there is one.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case RedWin:
		return Red, true
	case YellowWin:
		return Yellow, true
	}
	return Empty, false
}

func (o Outcome) IsDraw() bool {
	return o == Draw
}

// Reward encodes the outcome as +1 for a Red win, -1 for a Yellow win and 0
// for a draw.
func (o Outcome) Reward() float32 {
	switch o {
	case RedWin:
		return 1
	case YellowWin:
		return -1
	}
	return 0
}

// RewardFor re-signs Reward from the given player's perspective.
func (o Outcome) RewardFor(p Player) float32 {
	r := o.Reward()
	if p == Yellow {
		return -r
	}
	return r
}

func (o Outcome) String() string {
	switch o {
	case RedWin:
		return "red wins"
	case YellowWin:
		return "yellow wins"
	case Draw:
		return "draw"
	}
	return "in progress"
}
