package yahtzee

import (
	"github.com/saradorri/gameplatform/internal/domain"
)

// Decision is the automated player's next action for the current dice:
// either score a category now or hold a subset and re-roll.
type Decision struct {
	ScoreNow bool
	Category domain.YahtzeeCategory
	Holds    domain.HoldFlags
}

// scoreNowThreshold: an immediately available score at or above this is
// taken without burning remaining rolls.
const scoreNowThreshold = 25

// Decide picks the automated player's action from the current dice,
// roll count and sheet. It is deterministic: identical inputs always
// yield the identical decision, so suppressed duplicate triggers cannot
// diverge from the run that proceeds.
func Decide(dice []int, rollCount int, sheet domain.ScoreSheet) Decision {
	best, points := bestOpenCategory(dice, sheet)

	if rollCount >= MaxRolls || points >= scoreNowThreshold {
		return Decision{ScoreNow: true, Category: best}
	}

	return Decision{Holds: holdMostCommon(dice)}
}

// bestOpenCategory returns the unused category worth the most points
// for the dice, in fixed sheet order on ties. When everything scores
// zero it sacrifices the earliest open category.
func bestOpenCategory(dice []int, sheet domain.ScoreSheet) (domain.YahtzeeCategory, int) {
	bestCat := domain.YahtzeeCategory("")
	bestPts := -1
	for _, cat := range domain.YahtzeeCategories {
		if sheet.Used(cat) {
			continue
		}
		if pts := Score(cat, dice); pts > bestPts {
			bestCat = cat
			bestPts = pts
		}
	}
	return bestCat, bestPts
}

// holdMostCommon keeps every die showing the most frequent face,
// preferring the higher face when frequencies tie.
func holdMostCommon(dice []int) domain.HoldFlags {
	counts := faceCounts(dice)
	keep := 0
	for face := 1; face <= 6; face++ {
		if counts[face] >= counts[keep] {
			keep = face
		}
	}
	holds := NewHolds()
	for i, d := range dice {
		if i < len(holds) {
			holds[i] = d == keep
		}
	}
	return holds
}
