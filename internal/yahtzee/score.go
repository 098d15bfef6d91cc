// Package yahtzee implements dice scoring and the automated player's
// decision function. It is persistence-free: the match engine feeds it
// sheets and dice and writes the results back.
package yahtzee

import (
	"github.com/saradorri/gameplatform/internal/domain"
)

const (
	// UpperBonusPoints is granted once when ones..sixes sum to 63+.
	UpperBonusPoints = 35
	// YahtzeePoints is the fixed score for five of a kind.
	YahtzeePoints = 50
	// YahtzeeBonusPoints rewards each additional yahtzee after a scored 50.
	YahtzeeBonusPoints = 100
	// UpperBonusThreshold is the upper-section sum needed for the bonus.
	UpperBonusThreshold = 63
)

// faceValue maps upper-section categories to the die face they count.
var faceValue = map[domain.YahtzeeCategory]int{
	domain.CategoryOnes:   1,
	domain.CategoryTwos:   2,
	domain.CategoryThrees: 3,
	domain.CategoryFours:  4,
	domain.CategoryFives:  5,
	domain.CategorySixes:  6,
}

// Score computes the points the five dice are worth in a category.
func Score(category domain.YahtzeeCategory, dice []int) int {
	counts := faceCounts(dice)

	if face, ok := faceValue[category]; ok {
		return counts[face] * face
	}

	switch category {
	case domain.CategoryThreeOfAKind:
		if maxCount(counts) >= 3 {
			return sum(dice)
		}
		return 0
	case domain.CategoryFourOfAKind:
		if maxCount(counts) >= 4 {
			return sum(dice)
		}
		return 0
	case domain.CategoryFullHouse:
		three, two := false, false
		for _, c := range counts {
			if c == 3 {
				three = true
			}
			if c == 2 {
				two = true
			}
		}
		if three && two {
			return 25
		}
		return 0
	case domain.CategorySmallStraight:
		for _, run := range [][]int{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}} {
			if containsRun(counts, run) {
				return 30
			}
		}
		return 0
	case domain.CategoryLargeStraight:
		for _, run := range [][]int{{1, 2, 3, 4, 5}, {2, 3, 4, 5, 6}} {
			if exactRun(counts, run) {
				return 40
			}
		}
		return 0
	case domain.CategoryYahtzee:
		if maxCount(counts) == 5 {
			return YahtzeePoints
		}
		return 0
	case domain.CategoryChance:
		return sum(dice)
	}
	return 0
}

// IsYahtzee reports five of a kind, used for the multi-yahtzee bonus.
func IsYahtzee(dice []int) bool {
	return maxCount(faceCounts(dice)) == 5
}

// UpperTotal sums the filled upper-section categories of a sheet.
func UpperTotal(sheet domain.ScoreSheet) int {
	total := 0
	for _, cat := range domain.UpperCategories {
		if s, ok := sheet[cat]; ok && s != domain.ScoreUnused {
			total += s
		}
	}
	return total
}

// UpperComplete reports whether all six upper categories are filled.
func UpperComplete(sheet domain.ScoreSheet) bool {
	for _, cat := range domain.UpperCategories {
		if s, ok := sheet[cat]; !ok || s == domain.ScoreUnused {
			return false
		}
	}
	return true
}

// SheetTotal recomputes a player's total from the sheet and bonuses.
// The function is pure; recomputing on an unchanged sheet yields the
// same number.
func SheetTotal(sheet domain.ScoreSheet, upperBonus bool, yahtzeeBonusCount int) int {
	total := 0
	for _, s := range sheet {
		if s != domain.ScoreUnused {
			total += s
		}
	}
	if upperBonus {
		total += UpperBonusPoints
	}
	return total + yahtzeeBonusCount*YahtzeeBonusPoints
}

func faceCounts(dice []int) [7]int {
	var counts [7]int
	for _, d := range dice {
		if d >= 1 && d <= 6 {
			counts[d]++
		}
	}
	return counts
}

func maxCount(counts [7]int) int {
	m := 0
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return m
}

func sum(dice []int) int {
	total := 0
	for _, d := range dice {
		total += d
	}
	return total
}

func containsRun(counts [7]int, run []int) bool {
	for _, face := range run {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}

func exactRun(counts [7]int, run []int) bool {
	want := make(map[int]bool, len(run))
	for _, face := range run {
		want[face] = true
	}
	for face := 1; face <= 6; face++ {
		if want[face] != (counts[face] > 0) {
			return false
		}
	}
	return true
}
