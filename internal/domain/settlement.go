package domain

// PlatformAccountID is the house account credited with commission on
// standalone games. Created by the seeder; holds a balance like any
// other user.
const PlatformAccountID = "platform"

// SettlementService finalizes a game that reached a terminal condition:
// it marks the game completed, credits the prize and commission through
// the ledger, updates player stats and writes the MatchResult snapshot.
// Called exactly once per game, by whichever engine detected the
// terminal state. A nil winnerID force-completes with no payout.
//
// A payout credit failure does not roll the game back; it is logged at
// error severity and queued for retry/reconciliation.
type SettlementService interface {
	Settle(gameID string, winnerID *string, scores map[string]int) error
}
