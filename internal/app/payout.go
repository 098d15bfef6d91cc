package app

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/payout"
)

func (a *application) InitPayoutRail() domain.PayoutRail {
	return payout.NewPayoutRail(a.config.Payout.URL, a.config.Payout.APIKey)
}
