package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saradorri/gameplatform/internal/domain"
)

func TestDecideScoresAfterFinalRoll(t *testing.T) {
	d := Decide([]int{1, 2, 3, 4, 6}, MaxRolls, domain.ScoreSheet{})
	assert.True(t, d.ScoreNow)
	assert.Equal(t, domain.CategorySmallStraight, d.Category)
}

func TestDecideTakesBigScoreEarly(t *testing.T) {
	d := Decide([]int{6, 6, 6, 6, 6}, 1, domain.ScoreSheet{})
	assert.True(t, d.ScoreNow)
	assert.Equal(t, domain.CategoryYahtzee, d.Category)
}

func TestDecideHoldsMostCommonFace(t *testing.T) {
	d := Decide([]int{3, 3, 5, 2, 1}, 1, domain.ScoreSheet{})
	assert.False(t, d.ScoreNow)
	assert.Equal(t, domain.HoldFlags{true, true, false, false, false}, d.Holds)
}

func TestDecideSkipsUsedCategories(t *testing.T) {
	sheet := domain.ScoreSheet{domain.CategoryYahtzee: 50}
	d := Decide([]int{4, 4, 4, 4, 4}, MaxRolls, sheet)
	assert.True(t, d.ScoreNow)
	// yahtzee slot is taken; the tie between the 20-point slots is
	// broken by sheet order, landing on fours
	assert.Equal(t, domain.CategoryFours, d.Category)
}

func TestDecideIsDeterministic(t *testing.T) {
	dice := []int{2, 2, 5, 6, 1}
	sheet := domain.ScoreSheet{domain.CategoryChance: 18}
	first := Decide(dice, 2, sheet)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Decide(dice, 2, sheet))
	}
}

func TestDecideSacrificesWhenNothingScores(t *testing.T) {
	sheet := domain.ScoreSheet{}
	for _, cat := range domain.YahtzeeCategories {
		sheet[cat] = 1
	}
	sheet[domain.CategoryYahtzee] = domain.ScoreUnused

	d := Decide([]int{1, 2, 3, 4, 6}, MaxRolls, sheet)
	assert.True(t, d.ScoreNow)
	assert.Equal(t, domain.CategoryYahtzee, d.Category)
}
