package domain

import "fmt"

// PayoutRail is the outbound mechanism delivering a computed payout to a
// winner's real balance. The core records the transaction and calls the
// rail; the rail's own settlement guarantees are external.
type PayoutRail interface {
	Send(req PayoutRequest) (PayoutResponse, error)
}

// PayoutRequest is an outbound transfer instruction.
type PayoutRequest struct {
	UserID    string `json:"userId"`
	Amount    string `json:"amount"` // canonical decimal string
	Reference string `json:"reference"`
}

// PayoutResponse acknowledges a rail transfer.
type PayoutResponse struct {
	TransferID string `json:"transferId"`
	Status     string `json:"status"`
}

// PayoutRailError is a rail failure with its transport status code.
type PayoutRailError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *PayoutRailError) Error() string {
	return fmt.Sprintf("payout rail: %s", e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *PayoutRailError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
