package yahtzee

import (
	"math/rand"

	"github.com/saradorri/gameplatform/internal/domain"
)

// DiceCount is the number of dice in play.
const DiceCount = 5

// MaxRolls per turn, the first roll included.
const MaxRolls = 3

// Roller produces a single die face in 1..6. Tests substitute a
// scripted roller.
type Roller func() int

// NewRoller returns the production roller.
func NewRoller() Roller {
	return func() int { return rand.Intn(6) + 1 }
}

// RollAll rolls a fresh hand of five dice.
func RollAll(roll Roller) domain.DiceValues {
	dice := make(domain.DiceValues, DiceCount)
	for i := range dice {
		dice[i] = roll()
	}
	return dice
}

// Reroll replaces every die not marked held and returns the new hand.
// The input slice is not mutated.
func Reroll(roll Roller, dice domain.DiceValues, holds domain.HoldFlags) domain.DiceValues {
	out := make(domain.DiceValues, DiceCount)
	for i := 0; i < DiceCount; i++ {
		if i < len(holds) && holds[i] && i < len(dice) {
			out[i] = dice[i]
		} else {
			out[i] = roll()
		}
	}
	return out
}

// NewHolds returns a cleared hold set.
func NewHolds() domain.HoldFlags {
	return make(domain.HoldFlags, DiceCount)
}
