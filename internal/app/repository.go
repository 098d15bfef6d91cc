package app

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepositories(db *gorm.DB) (
	domain.UserRepository,
	domain.TransactionRepository,
	domain.WebhookRepository,
	domain.GameRepository,
	domain.InvitationRepository,
	domain.YahtzeeRepository,
	domain.ChessRepository,
	domain.TournamentRepository,
	domain.MatchResultRepository,
	domain.OutboxRepository,
) {
	return repository.NewUserRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewWebhookRepository(db),
		repository.NewGameRepository(db),
		repository.NewInvitationRepository(db),
		repository.NewYahtzeeRepository(db),
		repository.NewChessRepository(db),
		repository.NewTournamentRepository(db),
		repository.NewMatchResultRepository(db),
		repository.NewOutboxRepository(db)
}
