package game

import (
	"github.com/saradorri/gameplatform/internal/domain"
)

// NextActivePlayer computes the turn holder after a departure: the
// roster minus the departing player, walked in original join order,
// starting just past the current holder and wrapping. Returns nil when
// nobody remains. The roster must be in join order.
func NextActivePlayer(roster []string, departing, current string) *string {
	remaining := 0
	for _, id := range roster {
		if id != departing {
			remaining++
		}
	}
	if remaining == 0 {
		return nil
	}

	start := -1
	for i, id := range roster {
		if id == current {
			start = i
			break
		}
	}
	if start == -1 {
		// current holder already gone from the roster; hand to the
		// first surviving player
		for _, id := range roster {
			if id != departing {
				next := id
				return &next
			}
		}
		return nil
	}

	for step := 1; step <= len(roster); step++ {
		candidate := roster[(start+step)%len(roster)]
		if candidate != departing && candidate != current {
			next := candidate
			return &next
		}
	}

	// current is the only survivor
	if current != departing {
		next := current
		return &next
	}
	return nil
}

// PickActiveGame resolves "the user's active game" when participant
// rows point at several non-terminal games: running beats filling beats
// open, most recently created wins ties.
func PickActiveGame(games []*domain.Game) *domain.Game {
	rank := func(s domain.GameStatus) int {
		switch s {
		case domain.GameStatusRunning:
			return 3
		case domain.GameStatusFilling:
			return 2
		case domain.GameStatusOpen:
			return 1
		}
		return 0
	}

	var best *domain.Game
	for _, g := range games {
		if g.Status.IsTerminal() {
			continue
		}
		if best == nil ||
			rank(g.Status) > rank(best.Status) ||
			(rank(g.Status) == rank(best.Status) && g.CreatedAt.After(best.CreatedAt)) {
			best = g
		}
	}
	return best
}

// rosterIDs extracts user ids from participant rows in join order.
func rosterIDs(participants []*domain.GameParticipant) []string {
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.UserID)
	}
	return ids
}
