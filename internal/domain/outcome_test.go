package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeWinner(t *testing.T) {
	w, ok := RedWin.Winner()
	assert.True(t, ok)
	assert.Equal(t, Red, w)

	w, ok = YellowWin.Winner()
	assert.True(t, ok)
	assert.Equal(t, Yellow, w)

	_, ok = Draw.Winner()
	assert.False(t, ok)
	assert.True(t, Draw.IsDraw())
	assert.False(t, RedWin.IsDraw())
}

func TestOutcomeReward(t *testing.T) {
	assert.Equal(t, float32(1), RedWin.Reward())
	assert.Equal(t, float32(-1), YellowWin.Reward())
	assert.Equal(t, float32(0), Draw.Reward())

	assert.Equal(t, float32(-1), RedWin.RewardFor(Yellow))
	assert.Equal(t, float32(1), YellowWin.RewardFor(Yellow))
	assert.Equal(t, float32(0), Draw.RewardFor(Red))
}
