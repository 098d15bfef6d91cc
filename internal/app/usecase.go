package app

import (
	"github.com/saradorri/gameplatform/internal/domain"
	"github.com/saradorri/gameplatform/internal/infrastructure/auth"
	"github.com/saradorri/gameplatform/internal/infrastructure/lock"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"github.com/saradorri/gameplatform/internal/usecase/chess"
	gameuc "github.com/saradorri/gameplatform/internal/usecase/game"
	"github.com/saradorri/gameplatform/internal/usecase/ledger"
	"github.com/saradorri/gameplatform/internal/usecase/tournament"
	"github.com/saradorri/gameplatform/internal/usecase/user"
	yahtzeeuc "github.com/saradorri/gameplatform/internal/usecase/yahtzee"
	"github.com/saradorri/gameplatform/internal/yahtzee"
	"gorm.io/gorm"
)

func (a *application) InitLedgerUseCase(
	tr domain.TransactionRepository,
	ur domain.UserRepository,
	wr domain.WebhookRepository,
	or domain.OutboxRepository,
	rail domain.PayoutRail,
	notifier domain.Notifier,
	locks *lock.KeyedLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.LedgerUseCase {
	return ledger.NewLedgerUseCase(tr, ur, wr, or, rail, notifier, locks, db, log)
}

func (a *application) InitSettlementService(
	gr domain.GameRepository,
	ur domain.UserRepository,
	tr domain.TransactionRepository,
	mr domain.MatchResultRepository,
	tour domain.TournamentRepository,
	ledgerUC domain.LedgerUseCase,
	or domain.OutboxRepository,
	notifier domain.Notifier,
	db *gorm.DB,
	log *logger.Logger,
) domain.SettlementService {
	return gameuc.NewSettlementService(gr, ur, tr, mr, tour, ledgerUC, or, notifier, db, log)
}

func (a *application) InitGameUseCase(
	gr domain.GameRepository,
	ur domain.UserRepository,
	ir domain.InvitationRepository,
	yr domain.YahtzeeRepository,
	cr domain.ChessRepository,
	mr domain.MatchResultRepository,
	ledgerUC domain.LedgerUseCase,
	settlement domain.SettlementService,
	notifier domain.Notifier,
	db *gorm.DB,
	log *logger.Logger,
) domain.GameUseCase {
	return gameuc.NewGameUseCase(gr, ur, ir, yr, cr, mr, ledgerUC, settlement, notifier, db, log)
}

func (a *application) InitYahtzeeUseCase(
	gameUC domain.GameUseCase,
	gr domain.GameRepository,
	yr domain.YahtzeeRepository,
	settlement domain.SettlementService,
	notifier domain.Notifier,
	locks *lock.KeyedLockManager,
	db *gorm.DB,
	log *logger.Logger,
) domain.YahtzeeUseCase {
	return yahtzeeuc.NewYahtzeeUseCase(gameUC, gr, yr, settlement, notifier, locks, yahtzee.NewRoller(), db, log)
}

func (a *application) InitChessUseCase(
	gameUC domain.GameUseCase,
	gr domain.GameRepository,
	cr domain.ChessRepository,
	settlement domain.SettlementService,
	notifier domain.Notifier,
	db *gorm.DB,
	log *logger.Logger,
) domain.ChessUseCase {
	return chess.NewChessUseCase(gameUC, gr, cr, settlement, notifier, db, log)
}

func (a *application) InitTournamentUseCase(
	tr domain.TournamentRepository,
	ur domain.UserRepository,
	gameUC domain.GameUseCase,
	notifier domain.Notifier,
	db *gorm.DB,
	log *logger.Logger,
) domain.TournamentUseCase {
	return tournament.NewTournamentUseCase(tr, ur, gameUC, notifier, db, log)
}

func (a *application) InitUserUseCase(
	ur domain.UserRepository,
	jwt auth.JWTService,
	log *logger.Logger,
) domain.UserUseCase {
	return user.NewUserUseCase(ur, jwt, log)
}
