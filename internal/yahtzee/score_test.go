package yahtzee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saradorri/gameplatform/internal/domain"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		category domain.YahtzeeCategory
		dice     []int
		want     int
	}{
		{"full house scores 25", domain.CategoryFullHouse, []int{5, 5, 5, 2, 2}, 25},
		{"chance sums all dice", domain.CategoryChance, []int{5, 5, 5, 2, 2}, 19},
		{"fives counts matching faces", domain.CategoryFives, []int{5, 5, 5, 2, 2}, 15},
		{"yahtzee misses on full house", domain.CategoryYahtzee, []int{5, 5, 5, 2, 2}, 0},
		{"ones", domain.CategoryOnes, []int{1, 1, 3, 4, 6}, 2},
		{"sixes with none", domain.CategorySixes, []int{1, 2, 3, 4, 5}, 0},
		{"three of a kind sums all", domain.CategoryThreeOfAKind, []int{4, 4, 4, 2, 6}, 20},
		{"three of a kind misses", domain.CategoryThreeOfAKind, []int{4, 4, 3, 2, 6}, 0},
		{"four of a kind sums all", domain.CategoryFourOfAKind, []int{4, 4, 4, 4, 6}, 22},
		{"four of a kind on yahtzee", domain.CategoryFourOfAKind, []int{3, 3, 3, 3, 3}, 15},
		{"full house misses on quad", domain.CategoryFullHouse, []int{4, 4, 4, 4, 2}, 0},
		{"small straight low", domain.CategorySmallStraight, []int{1, 2, 3, 4, 6}, 30},
		{"small straight with pair", domain.CategorySmallStraight, []int{2, 3, 4, 5, 5}, 30},
		{"small straight misses", domain.CategorySmallStraight, []int{1, 2, 3, 5, 6}, 0},
		{"large straight low", domain.CategoryLargeStraight, []int{5, 4, 3, 2, 1}, 40},
		{"large straight high", domain.CategoryLargeStraight, []int{2, 3, 4, 5, 6}, 40},
		{"large straight misses on pair", domain.CategoryLargeStraight, []int{1, 2, 3, 4, 4}, 0},
		{"yahtzee", domain.CategoryYahtzee, []int{6, 6, 6, 6, 6}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.category, tt.dice))
		})
	}
}

func TestUpperBonusAtExactThreshold(t *testing.T) {
	// three of each face: 3+6+9+12+15+18 = 63
	sheet := domain.ScoreSheet{
		domain.CategoryOnes:   3,
		domain.CategoryTwos:   6,
		domain.CategoryThrees: 9,
		domain.CategoryFours:  12,
		domain.CategoryFives:  15,
		domain.CategorySixes:  18,
	}
	assert.True(t, UpperComplete(sheet))
	assert.Equal(t, 63, UpperTotal(sheet))
	assert.GreaterOrEqual(t, UpperTotal(sheet), UpperBonusThreshold)

	total := SheetTotal(sheet, true, 0)
	assert.Equal(t, 63+35, total)
	// recomputation is idempotent
	assert.Equal(t, total, SheetTotal(sheet, true, 0))
}

func TestUpperSectionIgnoresUnusedSentinel(t *testing.T) {
	sheet := domain.ScoreSheet{
		domain.CategoryOnes: 3,
		domain.CategoryTwos: domain.ScoreUnused,
	}
	assert.False(t, UpperComplete(sheet))
	assert.Equal(t, 3, UpperTotal(sheet))
	assert.Equal(t, 3, SheetTotal(sheet, false, 0))
}

func TestSheetTotalIncludesYahtzeeBonuses(t *testing.T) {
	sheet := domain.ScoreSheet{
		domain.CategoryYahtzee: 50,
		domain.CategoryChance:  20,
	}
	assert.Equal(t, 70, SheetTotal(sheet, false, 0))
	assert.Equal(t, 270, SheetTotal(sheet, false, 2))
}

func TestRerollRespectsHolds(t *testing.T) {
	script := []int{6, 6, 6}
	i := 0
	roll := func() int { v := script[i%len(script)]; i++; return v }

	dice := domain.DiceValues{1, 2, 3, 4, 5}
	holds := domain.HoldFlags{true, false, true, false, false}
	out := Reroll(roll, dice, holds)

	assert.Equal(t, domain.DiceValues{1, 6, 3, 6, 6}, out)
	assert.Equal(t, domain.DiceValues{1, 2, 3, 4, 5}, dice, "input must not be mutated")
}

func TestRollAllProducesValidFaces(t *testing.T) {
	dice := RollAll(NewRoller())
	assert.Len(t, dice, DiceCount)
	for _, d := range dice {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 6)
	}
}
