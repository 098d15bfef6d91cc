package domain

// EventType identifies a notification fanned out to listeners.
type EventType string

const (
	EventBalanceUpdate EventType = "balance_update"
	EventGameUpdate    EventType = "game_update"
	EventWinner        EventType = "winner_announcement"
	EventForfeit       EventType = "forfeit"
	EventAIAction      EventType = "ai_action"
)

// Event is a best-effort notification payload.
type Event struct {
	Type    EventType              `json:"type"`
	UserIDs []string               `json:"-"` // empty means broadcast
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Notifier is the fire-and-forget notification sink. Delivery failures
// never block or reverse a core state transition.
type Notifier interface {
	Publish(event Event)
}
