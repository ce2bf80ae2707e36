package repository

import (
	"context"

	"swertres_backend/internal/model"
)

type BetRepository interface {
	// InsertBets - вставка пакета ставок одним запросом
	InsertBets(ctx context.Context, bets []model.Bet) error
	GetBetsByDate(ctx context.Context, betDate string) ([]model.Bet, error)
	GetBetsByDateAndUser(ctx context.Context, betDate string, userID int) ([]model.Bet, error)
}

type DrawResultRepository interface {
	GetByDate(ctx context.Context, drawDate string) ([]model.DrawResult, error)
	// GetBySlot возвращает nil, nil если результата на слот еще нет
	GetBySlot(ctx context.Context, drawDate, drawTime string) (*model.DrawResult, error)
	Insert(ctx context.Context, res *model.DrawResult) (id int, err error)
}

type BetLimitRepository interface {
	// Get возвращает nil, nil если лимит на ключ не настроен
	Get(ctx context.Context, betDate string, game model.GameTitle, combination string) (*model.BetLimit, error)
	GetByDate(ctx context.Context, betDate string) ([]model.BetLimit, error)
	// Upsert - обновление лимита по ключу, вставка при отсутствии
	Upsert(ctx context.Context, limit *model.BetLimit) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetChildren - прямые подчиненные узла
	GetChildren(ctx context.Context, parentID int) ([]model.User, error)
	// UpdateAllocation - атомарное обновление четырех полей аллокации
	UpdateAllocation(ctx context.Context, id int, upd model.AllocationUpdate) error
}
